package views_test

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorhub/mentorhub-client/internal/controllers"
	"github.com/mentorhub/mentorhub-client/internal/models"
	"github.com/mentorhub/mentorhub-client/internal/views"
)

const listDebounce = 30 * time.Millisecond

func mentorListHandler(t *testing.T, requests *[]models.MentorSearchRequest, mu *sync.Mutex) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/guest/mentors/search", func(w http.ResponseWriter, r *http.Request) {
		var req models.MentorSearchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		mu.Lock()
		*requests = append(*requests, req)
		mu.Unlock()
		json.NewEncoder(w).Encode([]models.Mentor{{MentorID: 1, FirstName: "Grace"}})
	})
	mux.HandleFunc("GET /api/reviews/mentor/1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Review{{ID: 10, MentorID: 1, Rating: 5}})
	})
	return mux
}

func TestMentorListView_OpenFiresInitialSearch(t *testing.T) {
	var (
		mu       sync.Mutex
		requests []models.MentorSearchRequest
		results  [][]models.Mentor
	)
	h := newHarness(t, mentorListHandler(t, &requests, &mu))

	view := views.NewMentorListView(h.mentors, h.store, h.nav, h.modal, listDebounce, func(batch []models.Mentor) {
		mu.Lock()
		results = append(results, batch)
		mu.Unlock()
	})
	defer view.Close()

	view.Open()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(results) == 1
	}, time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, requests, 1)
	// The default sort goes out translated for the server.
	assert.Equal(t, "averageRating", requests[0].SortBy)
	assert.Equal(t, "DESC", requests[0].SortDirection)
}

func TestMentorListView_ReopenServesSnapshot(t *testing.T) {
	var (
		mu       sync.Mutex
		requests []models.MentorSearchRequest
		results  [][]models.Mentor
	)
	h := newHarness(t, mentorListHandler(t, &requests, &mu))

	view := views.NewMentorListView(h.mentors, h.store, h.nav, h.modal, listDebounce, func(batch []models.Mentor) {
		mu.Lock()
		results = append(results, batch)
		mu.Unlock()
	})
	defer view.Close()

	assert.Nil(t, view.Open())
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(results) == 1
	}, time.Second, 10*time.Millisecond)

	// The second open returns the cached listing immediately while a
	// fresh search runs behind it.
	cached := view.Open()
	require.Len(t, cached, 1)
	assert.Equal(t, "Grace", cached[0].FirstName)
}

func TestMentorListView_EditFormDebounces(t *testing.T) {
	var (
		mu       sync.Mutex
		requests []models.MentorSearchRequest
	)
	h := newHarness(t, mentorListHandler(t, &requests, &mu))

	view := views.NewMentorListView(h.mentors, h.store, h.nav, h.modal, listDebounce, func([]models.Mentor) {})
	defer view.Close()

	view.EditForm(controllers.SearchForm{Keyword: "c"})
	view.EditForm(controllers.SearchForm{Keyword: "co"})
	view.EditForm(controllers.SearchForm{Keyword: "compilers"})

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(requests) == 1
	}, time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "compilers", requests[0].Query)
}

func TestMentorListView_OpenReviews(t *testing.T) {
	var (
		mu       sync.Mutex
		requests []models.MentorSearchRequest
	)
	h := newHarness(t, mentorListHandler(t, &requests, &mu))

	view := views.NewMentorListView(h.mentors, h.store, h.nav, h.modal, listDebounce, func([]models.Mentor) {})
	defer view.Close()

	panel, ok := view.OpenReviews(context.Background(), 1)
	require.True(t, ok)
	require.Len(t, panel.Reviews(), 1)
	assert.Equal(t, int64(10), panel.Reviews()[0].ID)
}

func TestMentorListView_MessageMentor_Guest(t *testing.T) {
	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	view := views.NewMentorListView(h.mentors, h.store, h.nav, h.modal, listDebounce, func([]models.Mentor) {})
	defer view.Close()

	view.MessageMentor(5)

	// The guest lands on login with the chat as the post-login target.
	assert.Equal(t, views.RouteLogin, h.nav.last())
	route, ok := h.store.TakePendingRedirect()
	require.True(t, ok)
	assert.Equal(t, "/chats/new/5", route)
}

func TestMentorListView_MessageMentor_Authenticated(t *testing.T) {
	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	h.store.SetCredential(studentToken(t))

	view := views.NewMentorListView(h.mentors, h.store, h.nav, h.modal, listDebounce, func([]models.Mentor) {})
	defer view.Close()

	view.MessageMentor(5)
	assert.Equal(t, "/chats/new/5", h.nav.last())
}
