package pubhub

import (
	"context"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/pubhub/pubhub.go/pkg/gateway"
	"github.com/pubhub/pubhub.go/pkg/logger"
	"github.com/pubhub/pubhub.go/pkg/models"
)

const (
	errMsgFetchPub   = "Ошибка получения публикации, повторите попытку"
	errMsgFetchPubs  = "Ошибка получения публикаций, повторите попытку"
	errMsgCategories = "Ошибка получения категорий, повторите попытку"
	errMsgCreatePub  = "Ошибка созданий публикации, повторите попытку"
	errMsgUpdatePub  = "Ошибка изменения публикации, повторите попытку"
	errMsgDeletePub  = "Ошибка удаления публикации, повторите попытку"
	errMsgFavorites  = "Ошибка получения избранного, повторите попытку"
	errMsgCheckFav   = "Ошибка информации об избранном, повторите попытку"
	errMsgUpdateFav  = "Ошибка действия над сохраненной публикацией, повторите попытку"
)

// DateFilter buckets publications by age relative to the evaluation
// clock.
type DateFilter string

const (
	DateFilterNone      DateFilter = ""
	DateFilterMonth     DateFilter = "month"
	DateFilterSixMonths DateFilter = "six months"
)

// PublicationFilter is the active listing filter: an optional date
// bucket and a category set combined with AND semantics.
type PublicationFilter struct {
	Date       DateFilter
	Categories []models.PublicationCategory
}

// PublicationStore caches the publication listing and holds the active
// search query and filter. Mutations follow refresh-after-write: the
// cache is replaced by a full refetch, never patched in place, so it
// holds at most one record per id by construction.
type PublicationStore struct {
	storeState

	gw  gateway.Gateway
	log logger.Logger

	publications []models.Publication
	searchQuery  string
	filter       PublicationFilter
}

func NewPublicationStore(gw gateway.Gateway, log logger.Logger) *PublicationStore {
	if log == nil {
		log = logger.Discard{}
	}
	return &PublicationStore{gw: gw, log: log}
}

func (s *PublicationStore) SetSearchQuery(query string) {
	s.mu.Lock()
	s.searchQuery = query
	s.mu.Unlock()
}

func (s *PublicationStore) SearchQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchQuery
}

func (s *PublicationStore) SetFilter(filter PublicationFilter) {
	s.mu.Lock()
	s.filter = filter
	s.mu.Unlock()
}

func (s *PublicationStore) Filter() PublicationFilter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// Publications returns a snapshot of the raw cache, unsorted.
func (s *PublicationStore) Publications() []models.Publication {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Publication(nil), s.publications...)
}

// AllPublications is the listing view. With no active search it returns
// the cache ordered by creation time, newest first. With a search query
// it returns the matching subset in underlying cache order — the date
// sort is intentionally not applied on this branch, matching the
// platform's reference client.
func (s *PublicationStore) AllPublications() []models.Publication {
	s.mu.RLock()
	pubs := append([]models.Publication(nil), s.publications...)
	query := s.searchQuery
	s.mu.RUnlock()

	if query == "" {
		sort.SliceStable(pubs, func(i, j int) bool {
			return pubs[i].CreatedAt.After(pubs[j].CreatedAt)
		})
		return pubs
	}
	return SearchPublications(pubs, query)
}

// FetchPublication is read-through by id; the bulk cache is untouched.
func (s *PublicationStore) FetchPublication(ctx context.Context, id string) (*models.Publication, error) {
	defer s.begin()()

	var pub models.Publication
	if err := s.gw.Do(ctx, http.MethodGet, "/publication/"+id, nil, &pub); err != nil {
		s.recordFailure(err, errMsgFetchPub)
		return nil, err
	}
	return &pub, nil
}

// GetAllCategories returns the server-computed alphabetical category
// index as-is; it is never derived locally.
func (s *PublicationStore) GetAllCategories(ctx context.Context) (*models.CategorizedGroups, error) {
	defer s.begin()()

	var groups models.CategorizedGroups
	if err := s.gw.Do(ctx, http.MethodGet, "/publication/categories/all", nil, &groups); err != nil {
		s.recordFailure(err, errMsgCategories)
		return nil, err
	}
	return &groups, nil
}

// FetchAllPublications replaces the cache wholesale with the server's
// listing. Drafts are included or excluded server-side via is_draft.
func (s *PublicationStore) FetchAllPublications(ctx context.Context, isDraft bool) ([]models.Publication, error) {
	defer s.begin()()

	path := "/publication/all?is_draft=" + strconv.FormatBool(isDraft)

	var pubs []models.Publication
	if err := s.gw.Do(ctx, http.MethodGet, path, nil, &pubs); err != nil {
		s.recordFailure(err, errMsgFetchPubs)
		s.log.Warn("fetch publications failed", "error", err)
		return nil, err
	}

	s.mu.Lock()
	s.publications = pubs
	s.mu.Unlock()

	return pubs, nil
}

// FetchPublicationsByUserID lists one author's publications. Read-through:
// the result is returned to the caller without replacing the bulk cache.
func (s *PublicationStore) FetchPublicationsByUserID(ctx context.Context, id string, isDraft bool) ([]models.Publication, error) {
	defer s.begin()()

	path := "/publication/user/" + id + "/all?is_draft=" + strconv.FormatBool(isDraft)

	var pubs []models.Publication
	if err := s.gw.Do(ctx, http.MethodGet, path, nil, &pubs); err != nil {
		s.recordFailure(err, errMsgFetchPubs)
		return nil, err
	}
	return pubs, nil
}

// CreatePublication posts the new publication and resynchronizes the
// cache with a full refetch instead of inserting locally.
func (s *PublicationStore) CreatePublication(ctx context.Context, req models.PublicationRequest) (bool, error) {
	defer s.begin()()

	var resp models.MessageResponse
	if err := s.gw.Do(ctx, http.MethodPost, "/publication/create", req, &resp); err != nil {
		s.recordFailure(err, errMsgCreatePub)
		return false, err
	}

	_, _ = s.FetchAllPublications(ctx, false)
	return true, nil
}

// UpdatePublication follows the same refresh-after-write policy.
func (s *PublicationStore) UpdatePublication(ctx context.Context, req models.PublicationUpdateRequest) (bool, error) {
	defer s.begin()()

	var resp models.MessageResponse
	if err := s.gw.Do(ctx, http.MethodPut, "/publication/update", req, &resp); err != nil {
		s.recordFailure(err, errMsgUpdatePub)
		return false, err
	}

	_, _ = s.FetchAllPublications(ctx, false)
	return true, nil
}

// DeletePublication removes the record server-side; the cache entry
// disappears with the follow-up refetch.
func (s *PublicationStore) DeletePublication(ctx context.Context, id string) (bool, error) {
	defer s.begin()()

	var resp models.MessageResponse
	if err := s.gw.Do(ctx, http.MethodDelete, "/publication/"+id, nil, &resp); err != nil {
		s.recordFailure(err, errMsgDeletePub)
		return false, err
	}

	_, _ = s.FetchAllPublications(ctx, false)
	return true, nil
}

// GetAllFavorites lists the current user's saved publications. The
// result is not cached; failure yields an empty collection.
func (s *PublicationStore) GetAllFavorites(ctx context.Context) ([]models.FavoritePublication, error) {
	defer s.begin()()

	var favs []models.FavoritePublication
	if err := s.gw.Do(ctx, http.MethodGet, "/publication/saved/all", nil, &favs); err != nil {
		s.recordFailure(err, errMsgFavorites)
		return []models.FavoritePublication{}, err
	}
	return favs, nil
}

// CheckFavorite asks whether one publication is saved by the current
// user. Direct pass-through of the server's bare boolean; each check is
// its own round trip.
func (s *PublicationStore) CheckFavorite(ctx context.Context, publicationID string) bool {
	defer s.begin()()

	var saved bool
	if err := s.gw.Do(ctx, http.MethodGet, "/publication/saved/"+publicationID+"/check", nil, &saved); err != nil {
		s.recordFailure(err, errMsgCheckFav)
		return false
	}
	return saved
}

// UpdateFavorite saves or unsaves a publication for the current user.
func (s *PublicationStore) UpdateFavorite(ctx context.Context, publicationID string, save bool) error {
	defer s.begin()()

	path := "/publication/saved/" + publicationID + "?is_save=" + strconv.FormatBool(save)

	var resp models.MessageResponse
	if err := s.gw.Do(ctx, http.MethodPost, path, nil, &resp); err != nil {
		s.recordFailure(err, errMsgUpdateFav)
		return err
	}
	return nil
}

// SearchPublications returns the publications whose title or description
// contains the query as a case-insensitive substring, preserving input
// order.
func SearchPublications(arr []models.Publication, query string) []models.Publication {
	q := strings.ToLower(query)
	matched := make([]models.Publication, 0, len(arr))
	for _, pub := range arr {
		if strings.Contains(strings.ToLower(pub.Title), q) ||
			strings.Contains(strings.ToLower(pub.Description), q) {
			matched = append(matched, pub)
		}
	}
	return matched
}
