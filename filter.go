package pubhub

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pubhub/pubhub.go/pkg/models"
)

// Sort keys accepted by FilterUsersArray. Any other key returns the
// input unchanged.
const (
	UserSortID        = "id"
	UserSortName      = "name"
	UserSortEmail     = "email"
	UserSortGroup     = "group"
	UserSortStatus    = "status"
	UserSortLastVisit = "last_visit"
)

// localeCompare orders two strings with locale-aware collation, the
// counterpart of String.prototype.localeCompare in the platform's web
// client.
func localeCompare(a, b string) int {
	return collate.New(language.Und).CompareString(a, b)
}

// FilterPublications applies the listing filter to a publication
// snapshot. The date bucket is evaluated against the caller-supplied
// clock, never an ambient one. The category set is an AND predicate: a
// publication passes only if every requested category name appears
// among its category entries. An empty input yields an empty list no
// matter the filter; an empty category set passes everything.
func FilterPublications(arr []models.Publication, filter PublicationFilter, now time.Time) []models.Publication {
	if len(arr) == 0 {
		return []models.Publication{}
	}

	switch filter.Date {
	case DateFilterMonth:
		arr = publicationsSince(arr, now.AddDate(0, 0, -30))
	case DateFilterSixMonths:
		arr = publicationsSince(arr, now.AddDate(0, 0, -180))
	}

	if len(filter.Categories) > 0 {
		filtered := make([]models.Publication, 0, len(arr))
		for _, pub := range arr {
			if hasAllCategories(pub, filter.Categories) {
				filtered = append(filtered, pub)
			}
		}
		arr = filtered
	}

	return arr
}

func publicationsSince(arr []models.Publication, cutoff time.Time) []models.Publication {
	kept := make([]models.Publication, 0, len(arr))
	for _, pub := range arr {
		if !pub.CreatedAt.Before(cutoff) {
			kept = append(kept, pub)
		}
	}
	return kept
}

func hasAllCategories(pub models.Publication, wanted []models.PublicationCategory) bool {
	for _, want := range wanted {
		found := false
		for _, have := range pub.Categories {
			if have.Category.Name == want.Category.Name {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// FilterUsersArray sorts a user snapshot by one field. Text fields use
// locale-aware collation; status orders blocked accounts after
// unblocked ones; last_visit is newest first. The sort is stable and
// the input slice is never mutated. An unrecognized key returns the
// input as-is.
func FilterUsersArray(arr []models.User, sortKey string) []models.User {
	var less func(a, b models.User) bool

	switch sortKey {
	case UserSortID:
		less = func(a, b models.User) bool { return localeCompare(a.ID, b.ID) < 0 }
	case UserSortName:
		less = func(a, b models.User) bool { return localeCompare(a.Name, b.Name) < 0 }
	case UserSortEmail:
		less = func(a, b models.User) bool { return localeCompare(a.Email, b.Email) < 0 }
	case UserSortGroup:
		less = func(a, b models.User) bool { return localeCompare(a.Group.Name, b.Group.Name) < 0 }
	case UserSortStatus:
		less = func(a, b models.User) bool { return !a.IsBlocked && b.IsBlocked }
	case UserSortLastVisit:
		less = func(a, b models.User) bool { return a.LastVisitAt.After(b.LastVisitAt) }
	default:
		return arr
	}

	sorted := append([]models.User(nil), arr...)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	return sorted
}
