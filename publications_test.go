package pubhub

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pubhub/pubhub.go/internal/fakeapi"
	"github.com/pubhub/pubhub.go/pkg/models"
)

func stubListing(srv *fakeapi.Server, pubs []models.Publication) {
	srv.Stub(http.MethodGet, "/publication/all?is_draft=false", 200, pubs)
}

func TestAllPublicationsSortsNewestFirst(t *testing.T) {
	client, srv := newTestClient(t)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	p1 := fakeapi.PublicationFixture("Go generics", "intro", base)
	p2 := fakeapi.PublicationFixture("Vue reactivity", "deep dive", base.Add(24*time.Hour))
	p3 := fakeapi.PublicationFixture("HTTP caching", "survey", base.Add(48*time.Hour))
	stubListing(srv, []models.Publication{p1, p3, p2})

	_, err := client.Publications.FetchAllPublications(context.Background(), false)
	require.NoError(t, err)

	listing := client.Publications.AllPublications()
	require.Len(t, listing, 3)
	assert.Equal(t, p3.ID, listing[0].ID)
	assert.Equal(t, p2.ID, listing[1].ID)
	assert.Equal(t, p1.ID, listing[2].ID)

	// The raw cache keeps the server's order.
	raw := client.Publications.Publications()
	assert.Equal(t, p1.ID, raw[0].ID)
}

func TestAllPublicationsSearchKeepsCacheOrder(t *testing.T) {
	client, srv := newTestClient(t)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	older := fakeapi.PublicationFixture("Go generics", "intro", base)
	newer := fakeapi.PublicationFixture("Go profiling", "pprof walkthrough", base.Add(24*time.Hour))
	other := fakeapi.PublicationFixture("Vue reactivity", "deep dive", base.Add(48*time.Hour))
	stubListing(srv, []models.Publication{older, newer, other})

	_, err := client.Publications.FetchAllPublications(context.Background(), false)
	require.NoError(t, err)

	client.Publications.SetSearchQuery("go")

	// The search branch matches case-insensitively and preserves the
	// cache's order; the date sort does not apply here.
	listing := client.Publications.AllPublications()
	require.Len(t, listing, 2)
	assert.Equal(t, older.ID, listing[0].ID)
	assert.Equal(t, newer.ID, listing[1].ID)

	client.Publications.SetSearchQuery("")
	listing = client.Publications.AllPublications()
	require.Len(t, listing, 3)
	assert.Equal(t, other.ID, listing[0].ID)
}

func TestSearchPublicationsMatchesDescription(t *testing.T) {
	base := time.Now()
	pubs := []models.Publication{
		fakeapi.PublicationFixture("Weekly digest", "covers WebAssembly news", base),
		fakeapi.PublicationFixture("Monthly digest", "covers database news", base),
	}

	matched := SearchPublications(pubs, "WEBASSEMBLY")
	require.Len(t, matched, 1)
	assert.Equal(t, "Weekly digest", matched[0].Title)

	assert.Empty(t, SearchPublications(pubs, "kubernetes"))
}

func TestCreatePublicationRefetchesListing(t *testing.T) {
	client, srv := newTestClient(t)

	created := fakeapi.PublicationFixture("Fresh", "just in", time.Now())
	srv.Stub(http.MethodPost, "/publication/create", 200, models.MessageResponse{Message: "created"})
	stubListing(srv, []models.Publication{created})

	ok, err := client.Publications.CreatePublication(context.Background(), models.PublicationRequest{
		Title:       "Fresh",
		Description: "just in",
	})
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, []string{
		"POST /publication/create",
		"GET /publication/all?is_draft=false",
	}, srv.Requests())
	assert.Len(t, client.Publications.Publications(), 1)
}

func TestDeletePublicationRemovesViaRefetch(t *testing.T) {
	client, srv := newTestClient(t)

	doomed := fakeapi.PublicationFixture("Doomed", "soon gone", time.Now())
	stubListing(srv, []models.Publication{doomed})

	_, err := client.Publications.FetchAllPublications(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, client.Publications.Publications(), 1)

	srv.Stub(http.MethodDelete, "/publication/"+doomed.ID, 200, models.MessageResponse{Message: "deleted"})
	stubListing(srv, []models.Publication{})

	ok, err := client.Publications.DeletePublication(context.Background(), doomed.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, client.Publications.Publications())
}

func TestUpdatePublicationFailureSkipsRefetch(t *testing.T) {
	client, srv := newTestClient(t)
	srv.StubError(http.MethodPut, "/publication/update", 400, "Некорректные данные")

	title := "X"
	ok, err := client.Publications.UpdatePublication(context.Background(), models.PublicationUpdateRequest{
		ID:    "p1",
		Title: &title,
	})
	assert.False(t, ok)
	require.Error(t, err)

	assert.Equal(t, []string{"PUT /publication/update"}, srv.Requests())
	assert.Equal(t, "Некорректные данные", client.Publications.Err())
}

func TestFetchPublicationsByUserIDIsReadThrough(t *testing.T) {
	client, srv := newTestClient(t)

	mine := fakeapi.PublicationFixture("Mine", "draft work", time.Now())
	srv.Stub(http.MethodGet, "/publication/user/u1/all?is_draft=true", 200, []models.Publication{mine})

	got, err := client.Publications.FetchPublicationsByUserID(context.Background(), "u1", true)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Empty(t, client.Publications.Publications())
}

func TestCheckFavoriteDecodesBareBoolean(t *testing.T) {
	client, srv := newTestClient(t)

	srv.Stub(http.MethodGet, "/publication/saved/p1/check", 200, true)
	assert.True(t, client.Publications.CheckFavorite(context.Background(), "p1"))

	srv.Stub(http.MethodGet, "/publication/saved/p2/check", 200, false)
	assert.False(t, client.Publications.CheckFavorite(context.Background(), "p2"))
}

func TestGetAllFavoritesFailureYieldsEmptyCollection(t *testing.T) {
	client, srv := newTestClient(t)
	srv.StubError(http.MethodGet, "/publication/saved/all", 500, "Внутренняя ошибка сервера")

	favs, err := client.Publications.GetAllFavorites(context.Background())
	require.Error(t, err)
	assert.NotNil(t, favs)
	assert.Empty(t, favs)
	assert.Equal(t, "Ошибка получения избранного, повторите попытку", client.Publications.Err())
}

func TestUpdateFavoriteEncodesSaveFlag(t *testing.T) {
	client, srv := newTestClient(t)

	srv.Stub(http.MethodPost, "/publication/saved/p1?is_save=true", 200, models.MessageResponse{Message: "saved"})
	require.NoError(t, client.Publications.UpdateFavorite(context.Background(), "p1", true))

	srv.Stub(http.MethodPost, "/publication/saved/p1?is_save=false", 200, models.MessageResponse{Message: "removed"})
	require.NoError(t, client.Publications.UpdateFavorite(context.Background(), "p1", false))
}

func TestGetAllCategoriesPassesThrough(t *testing.T) {
	client, srv := newTestClient(t)

	srv.Stub(http.MethodGet, "/publication/categories/all", 200, models.CategorizedGroups{
		Groups: []models.AlphabetGroup{
			{Letter: "G", Categories: []models.Category{{ID: "c1", Name: "Go"}}},
		},
	})

	groups, err := client.Publications.GetAllCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, groups.Groups, 1)
	assert.Equal(t, "G", groups.Groups[0].Letter)
}

func TestFetchPublicationTransportFailureSetsGenericMessage(t *testing.T) {
	client, srv := newTestClient(t)
	srv.FailNext(fakeapi.FailureDropConnection, 0)

	_, err := client.Publications.FetchPublication(context.Background(), "p1")
	require.Error(t, err)
	assert.Equal(t, "Ошибка получения публикации, повторите попытку", client.Publications.Err())
}
