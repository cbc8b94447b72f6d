package models

import "time"

// Publication always has exactly one author reference (UserID).
type Publication struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	UserID          string `json:"user_id"`
	BackgroundColor string `json:"background_color"`
	IsDraft         bool   `json:"is_draft"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User       User                  `json:"User"`
	Categories []PublicationCategory `json:"PublicationCategories"`
}

// PublicationCategory is the join entity between a publication and a
// category, carrying display attributes. It always resolves to exactly
// one Category.
type PublicationCategory struct {
	ID              string `json:"id,omitempty"`
	PublicationID   string `json:"publication_id,omitempty"`
	CategoryID      string `json:"category_id,omitempty"`
	BackgroundColor string `json:"background_color"`
	TextColor       string `json:"text_color"`
	DisplayOrder    int    `json:"display_order,omitempty"`

	Category Category `json:"Category"`
}

// FavoritePublication is the per-user saved-publication association.
type FavoritePublication struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	PublicationID string `json:"publication_id"`

	Publication Publication `json:"Publication"`
}

type PublicationRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	UserID          string `json:"user_id"`
	BackgroundColor string `json:"background_color,omitempty"`

	Categories []PublicationCategory `json:"categories"`
}

type PublicationUpdateRequest struct {
	ID              string  `json:"id"`
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	BackgroundColor *string `json:"background_color"`

	Categories []PublicationCategory `json:"categories"`
}
