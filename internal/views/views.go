package views

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mentorhub/mentorhub-client/internal/session"
	"github.com/mentorhub/mentorhub-client/pkg/errors"
	"github.com/mentorhub/mentorhub-client/pkg/logger"
)

// Routes the views navigate between.
const (
	RouteLogin         = "/login"
	RouteRegister      = "/register"
	RouteCreateProfile = "/create-profile"
	RouteVerifyEmail   = "/verify-email"
	RouteProfile       = "/profile"
	RouteMentors       = "/mentors"
	RouteChats         = "/chats"
)

// ChatRoute builds the route for an open chat session.
func ChatRoute(chatID int64) string {
	return fmt.Sprintf("/chats/%d", chatID)
}

// NewChatRoute builds the route that opens a fresh chat with a mentor.
func NewChatRoute(mentorID int64) string {
	return fmt.Sprintf("/chats/new/%d", mentorID)
}

// Navigator moves the app between views. Implemented by the shell hosting
// the view controllers.
type Navigator interface {
	Navigate(route string)
}

// ErrorPresenter opens a blocking error modal scoped to the active view.
type ErrorPresenter interface {
	ShowError(message string)
}

const genericFailureMessage = "Something went wrong. Please try again."

// presentFailure routes an operation failure to the right surface: auth
// failures clear the session and land on the login view, validation and
// domain-rule rejections show their own message, anything else shows a
// generic one. Transport detail never reaches the user.
func presentFailure(err error, store *session.Store, nav Navigator, modal ErrorPresenter) {
	if errors.IsAuthFailure(err) {
		logger.Info("Session rejected, forcing logout", zap.Error(err))
		store.Clear()
		nav.Navigate(RouteLogin)
		return
	}

	switch {
	case errors.Is(err, errors.ErrValidation), errors.Is(err, errors.ErrDomainRule):
		modal.ShowError(UserMessage(err))
	default:
		logger.Error("Operation failed", zap.Error(err))
		modal.ShowError(genericFailureMessage)
	}
}

// UserMessage strips the sentinel suffix the error constructors append,
// leaving the part written for the user.
func UserMessage(err error) string {
	msg := err.Error()
	for _, sentinel := range []string{
		": " + errors.ErrValidation.Error(),
		": " + errors.ErrDomainRule.Error(),
	} {
		if len(msg) > len(sentinel) && msg[len(msg)-len(sentinel):] == sentinel {
			return msg[:len(msg)-len(sentinel)]
		}
	}
	return msg
}

// requireAuth redirects to login when no credential is stored. Views for
// authenticated surfaces call it on open.
func requireAuth(store *session.Store, nav Navigator) bool {
	if store.IsAuthenticated() {
		return true
	}
	nav.Navigate(RouteLogin)
	return false
}
