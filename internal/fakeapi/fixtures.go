package fakeapi

import (
	"time"

	"github.com/google/uuid"

	"github.com/pubhub/pubhub.go/pkg/models"
)

// UserFixture builds a plausible platform user with a fresh id.
func UserFixture(name, email string, group models.Group) models.User {
	now := time.Now().UTC()
	return models.User{
		ID:          uuid.NewString(),
		Name:        name,
		Email:       email,
		GroupID:     group.ID,
		Group:       group,
		LastVisitAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// GroupFixture builds an available group with a fresh id.
func GroupFixture(name string) models.Group {
	return models.Group{
		ID:          uuid.NewString(),
		Name:        name,
		IsAvailable: true,
	}
}

// PublicationFixture builds a publication created at the given time,
// carrying the named categories in order.
func PublicationFixture(title, description string, createdAt time.Time, categories ...string) models.Publication {
	pub := models.Publication{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		UserID:      uuid.NewString(),
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	for i, name := range categories {
		pub.Categories = append(pub.Categories, models.PublicationCategory{
			ID:            uuid.NewString(),
			PublicationID: pub.ID,
			CategoryID:    uuid.NewString(),
			DisplayOrder:  i,
			Category:      models.Category{ID: uuid.NewString(), Name: name},
		})
	}
	return pub
}
