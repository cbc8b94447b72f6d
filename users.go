package pubhub

import (
	"context"
	"net/http"
	"sort"
	"strings"

	"github.com/pubhub/pubhub.go/pkg/gateway"
	"github.com/pubhub/pubhub.go/pkg/logger"
	"github.com/pubhub/pubhub.go/pkg/models"
)

const (
	errMsgCurrentUser = "Ошибка получения данных пользователя, повторите попытку авторизации"
	errMsgFetchUser   = "Ошибка получения данных пользователя, повторите попытку"
	errMsgFetchUsers  = "Ошибка получения пользователей, повторите попытку"
	errMsgCreateUser  = "Ошибка создания пользователя, повторите попытку"
	errMsgUpdateUser  = "Ошибка обновления пользователя, повторите попытку"
	errMsgDeleteUser  = "Ошибка удаления пользователя, повторите попытку"
	errMsgFetchGroups = "Ошибка получения групп, повторите попытку"
)

// UserStore caches the current user's profile, the account list (admin
// views) and the group reference collection. The bulk cache is replaced
// wholesale on every fetch and resynchronized from the server after
// every mutation; it is never patched locally.
type UserStore struct {
	storeState

	gw  gateway.Gateway
	log logger.Logger

	user   *models.User
	users  []models.User // nil when the server reports no accounts
	groups []models.Group
}

func NewUserStore(gw gateway.Gateway, log logger.Logger) *UserStore {
	if log == nil {
		log = logger.Discard{}
	}
	return &UserStore{gw: gw, log: log}
}

// SetUser replaces the cached current-user profile. Nil clears it.
func (s *UserStore) SetUser(user *models.User) {
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
}

func (s *UserStore) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Users returns a snapshot of the account cache.
func (s *UserStore) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User(nil), s.users...)
}

// Groups returns a snapshot of the group cache.
func (s *UserStore) Groups() []models.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Group(nil), s.groups...)
}

// FetchCurrentUser loads GET /user into the profile cache.
func (s *UserStore) FetchCurrentUser(ctx context.Context) (*models.User, error) {
	defer s.begin()()

	var user models.User
	if err := s.gw.Do(ctx, http.MethodGet, "/user", nil, &user); err != nil {
		s.recordFailure(err, errMsgCurrentUser)
		s.log.Warn("fetch current user failed", "error", err)
		return nil, err
	}

	s.SetUser(&user)
	return &user, nil
}

// FetchUserByID is read-through: it does not populate the bulk cache.
func (s *UserStore) FetchUserByID(ctx context.Context, id string) (*models.User, error) {
	defer s.begin()()

	var user models.User
	if err := s.gw.Do(ctx, http.MethodGet, "/user/"+id, nil, &user); err != nil {
		s.recordFailure(err, errMsgFetchUser)
		return nil, err
	}
	return &user, nil
}

// FetchUserByEmail is read-through, like FetchUserByID.
func (s *UserStore) FetchUserByEmail(ctx context.Context, email string) (*models.User, error) {
	defer s.begin()()

	var user models.User
	if err := s.gw.Do(ctx, http.MethodGet, "/user/email/"+email, nil, &user); err != nil {
		s.recordFailure(err, errMsgFetchUser)
		return nil, err
	}
	return &user, nil
}

// FetchAllUsers replaces the account cache wholesale with the server's
// response, ordered by group name. An empty response clears the cache
// to nil.
func (s *UserStore) FetchAllUsers(ctx context.Context) ([]models.User, error) {
	defer s.begin()()

	var users []models.User
	if err := s.gw.Do(ctx, http.MethodGet, "/user/all", nil, &users); err != nil {
		s.recordFailure(err, errMsgFetchUsers)
		s.log.Warn("fetch users failed", "error", err)
		return nil, err
	}

	s.mu.Lock()
	if len(users) > 0 {
		sorted := append([]models.User(nil), users...)
		sort.SliceStable(sorted, func(i, j int) bool {
			return localeCompare(sorted[i].Group.Name, sorted[j].Group.Name) < 0
		})
		s.users = sorted
	} else {
		s.users = nil
	}
	s.mu.Unlock()

	return users, nil
}

// CreateUser posts the new account and resynchronizes the cache with a
// full refetch (refresh-after-write).
func (s *UserStore) CreateUser(ctx context.Context, req models.CreateUserRequest) (bool, error) {
	defer s.begin()()

	var resp models.MessageResponse
	if err := s.gw.Do(ctx, http.MethodPost, "/user", req, &resp); err != nil {
		s.recordFailure(err, errMsgCreateUser)
		return false, err
	}

	_, _ = s.FetchAllUsers(ctx)
	return true, nil
}

// UpdateUser applies a partial update, then refetches the cache.
func (s *UserStore) UpdateUser(ctx context.Context, req models.UpdateUserRequest) (bool, error) {
	defer s.begin()()

	var resp models.MessageResponse
	if err := s.gw.Do(ctx, http.MethodPut, "/user", req, &resp); err != nil {
		s.recordFailure(err, errMsgUpdateUser)
		return false, err
	}

	_, _ = s.FetchAllUsers(ctx)
	return true, nil
}

// DeleteUser removes the account, then refetches the cache; the removed
// record disappears with the refresh rather than by local deletion.
func (s *UserStore) DeleteUser(ctx context.Context, id string) (bool, error) {
	defer s.begin()()

	var resp models.MessageResponse
	if err := s.gw.Do(ctx, http.MethodDelete, "/user/"+id, nil, &resp); err != nil {
		s.recordFailure(err, errMsgDeleteUser)
		return false, err
	}

	_, _ = s.FetchAllUsers(ctx)
	return true, nil
}

// FetchGroups loads GET /group/all into the group sub-collection.
func (s *UserStore) FetchGroups(ctx context.Context) ([]models.Group, error) {
	defer s.begin()()

	var groups []models.Group
	if err := s.gw.Do(ctx, http.MethodGet, "/group/all", nil, &groups); err != nil {
		s.recordFailure(err, errMsgFetchGroups)
		return nil, err
	}

	s.mu.Lock()
	s.groups = groups
	s.mu.Unlock()

	return groups, nil
}

// FilteredGroups derives the assignable groups: available only,
// alphabetical by name.
func (s *UserStore) FilteredGroups() []models.Group {
	s.mu.RLock()
	filtered := make([]models.Group, 0, len(s.groups))
	for _, g := range s.groups {
		if g.IsAvailable {
			filtered = append(filtered, g)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(filtered, func(i, j int) bool {
		return localeCompare(filtered[i].Name, filtered[j].Name) < 0
	})
	return filtered
}

// FilteredUsers derives the admin table view: the chosen sort first,
// then the free-text search over it. With no sort key the search runs
// directly against the unsorted cache.
func (s *UserStore) FilteredUsers(sortKey, query string) []models.User {
	users := s.Users()
	if sortKey != "" {
		users = FilterUsersArray(users, sortKey)
	}
	if query == "" {
		return users
	}

	q := strings.ToLower(query)
	matched := make([]models.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), q) ||
			strings.Contains(strings.ToLower(u.Email), q) {
			matched = append(matched, u)
		}
	}
	return matched
}
