package views

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/mentorhub/mentorhub-client/internal/api"
	"github.com/mentorhub/mentorhub-client/internal/controllers"
	"github.com/mentorhub/mentorhub-client/internal/models"
	"github.com/mentorhub/mentorhub-client/internal/session"
)

// snapshotKey holds the last directory listing so reopening the view shows
// results immediately while the fresh search runs.
const snapshotKey = "directory"

const snapshotTTL = 5 * time.Minute

// MentorListView is the directory surface: search form, result listing,
// per-mentor review modal, and the entry point into messaging a mentor.
// The directory itself is a guest surface; messaging and reviewing need a
// credential.
type MentorListView struct {
	mentors  *api.MentorClient
	search   *controllers.MentorSearch
	store    *session.Store
	nav      Navigator
	modal    ErrorPresenter
	snapshot *gocache.Cache
}

// NewMentorListView creates the directory view controller. onResults
// receives every fresh result set the debounced search emits.
func NewMentorListView(mentors *api.MentorClient, store *session.Store, nav Navigator, modal ErrorPresenter, debounce time.Duration, onResults func([]models.Mentor)) *MentorListView {
	v := &MentorListView{
		mentors:  mentors,
		store:    store,
		nav:      nav,
		modal:    modal,
		snapshot: gocache.New(snapshotTTL, snapshotTTL),
	}
	v.search = controllers.NewMentorSearch(mentors, debounce, func(results []models.Mentor) {
		v.snapshot.SetDefault(snapshotKey, results)
		onResults(results)
	}, func(err error) {
		presentFailure(err, store, nav, modal)
	})
	return v
}

// Open fires the initial unfiltered directory search and returns the last
// snapshot, if any, so the view has something to render while it runs.
func (v *MentorListView) Open() []models.Mentor {
	v.search.SearchNow(controllers.SearchForm{Sort: controllers.DefaultSort})

	if cached, ok := v.snapshot.Get(snapshotKey); ok {
		if results, ok := cached.([]models.Mentor); ok {
			return results
		}
	}
	return nil
}

// EditForm feeds a form change into the debounced search.
func (v *MentorListView) EditForm(form controllers.SearchForm) {
	v.search.OnChange(form)
}

// OpenReviews builds the review panel for one mentor's modal.
func (v *MentorListView) OpenReviews(ctx context.Context, mentorID int64) (*controllers.ReviewPanel, bool) {
	panel := controllers.NewReviewPanel(v.mentors, v.store, mentorID)
	if err := panel.Load(ctx); err != nil {
		presentFailure(err, v.store, v.nav, v.modal)
		return nil, false
	}
	return panel, true
}

// MessageMentor moves to the new-chat route for a mentor. A guest is sent
// to login first, with the chat as the post-login destination.
func (v *MentorListView) MessageMentor(mentorID int64) {
	route := NewChatRoute(mentorID)
	if !v.store.IsAuthenticated() {
		v.store.SetPendingRedirect(route)
		v.nav.Navigate(RouteLogin)
		return
	}
	v.nav.Navigate(route)
}

// Close stops the debounced search.
func (v *MentorListView) Close() {
	v.search.Close()
}
