package views

import (
	"context"
	"time"

	"github.com/mentorhub/mentorhub-client/internal/api"
	"github.com/mentorhub/mentorhub-client/internal/controllers"
	"github.com/mentorhub/mentorhub-client/internal/models"
	"github.com/mentorhub/mentorhub-client/internal/session"
	"github.com/mentorhub/mentorhub-client/pkg/errors"
)

// ChatListView lists the user's chat sessions with unread counts and a
// last-message preview, and opens individual sessions.
type ChatListView struct {
	chats *api.ChatClient
	store *session.Store
	nav   Navigator
	modal ErrorPresenter
	cfg   controllers.ChatSessionConfig

	clock func() time.Time
}

// NewChatListView creates the chat list view controller.
func NewChatListView(chats *api.ChatClient, store *session.Store, nav Navigator, modal ErrorPresenter, cfg controllers.ChatSessionConfig) *ChatListView {
	return &ChatListView{
		chats: chats,
		store: store,
		nav:   nav,
		modal: modal,
		cfg:   cfg,
		clock: time.Now,
	}
}

// Open fetches the session list. An unauthenticated open lands on login.
func (v *ChatListView) Open(ctx context.Context) ([]models.Chat, bool) {
	if !requireAuth(v.store, v.nav) {
		return nil, false
	}

	chats, err := v.chats.ListChats(ctx)
	if err != nil {
		presentFailure(err, v.store, v.nav, v.modal)
		return nil, false
	}
	return chats, true
}

// OpenChat opens an existing session and starts its poll loop. A failed
// initial load still hands back a live session: the poll is already
// running and retries the fetch on its next tick. Auth rejections close
// the session instead, since the credential is gone.
func (v *ChatListView) OpenChat(ctx context.Context, viewport controllers.Viewport, chatID int64) (*controllers.ChatSession, bool) {
	if !requireAuth(v.store, v.nav) {
		return nil, false
	}

	sess := controllers.NewChatSession(v.chats, viewport, v.store.Role(), v.cfg)
	if err := sess.OpenExisting(ctx, chatID); err != nil {
		presentFailure(err, v.store, v.nav, v.modal)
		if errors.IsAuthFailure(err) {
			sess.Close()
			return nil, false
		}
		return sess, true
	}
	return sess, true
}

// StartChat opens (or resumes) a session with a mentor. A mentor-role user
// is rejected before any request is made.
func (v *ChatListView) StartChat(ctx context.Context, viewport controllers.Viewport, mentorID int64) (*controllers.ChatSession, bool) {
	if !requireAuth(v.store, v.nav) {
		return nil, false
	}

	sess := controllers.NewChatSession(v.chats, viewport, v.store.Role(), v.cfg)
	if _, err := sess.OpenNew(ctx, mentorID); err != nil {
		presentFailure(err, v.store, v.nav, v.modal)
		if errors.Is(err, controllers.ErrMentorToMentorChat) {
			v.nav.Navigate(RouteMentors)
		}
		return nil, false
	}
	return sess, true
}

// FormatListTime renders a chat's last-message timestamp the way the list
// shows it: the time for today, "Yesterday" for yesterday, otherwise the
// date.
func (v *ChatListView) FormatListTime(t time.Time) string {
	now := v.clock()
	if sameDay(t, now) {
		return t.Format("15:04")
	}
	if sameDay(t, now.AddDate(0, 0, -1)) {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
