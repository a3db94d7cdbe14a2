package views

import (
	"context"
	"time"

	"github.com/mentorhub/mentorhub-client/internal/api"
	"github.com/mentorhub/mentorhub-client/internal/session"
	"github.com/mentorhub/mentorhub-client/pkg/errors"
)

// EmailVerificationView confirms the emailed token and offers a resend for
// the address stored during profile creation. After a successful
// confirmation it shows a success state and moves to login once the
// configured delay elapses.
type EmailVerificationView struct {
	auth          *api.AuthClient
	store         *session.Store
	nav           Navigator
	modal         ErrorPresenter
	redirectDelay time.Duration
}

// NewEmailVerificationView creates the verification view controller.
func NewEmailVerificationView(auth *api.AuthClient, store *session.Store, nav Navigator, modal ErrorPresenter, redirectDelay time.Duration) *EmailVerificationView {
	return &EmailVerificationView{
		auth:          auth,
		store:         store,
		nav:           nav,
		modal:         modal,
		redirectDelay: redirectDelay,
	}
}

// Confirm submits the emailed token. On success the login redirect is
// scheduled after the configured delay.
func (v *EmailVerificationView) Confirm(ctx context.Context, token string) {
	if token == "" {
		v.modal.ShowError(UserMessage(errors.ValidationError("token", "verification token is required")))
		return
	}

	if err := v.auth.ConfirmEmail(ctx, token); err != nil {
		presentFailure(err, v.store, v.nav, v.modal)
		return
	}

	time.AfterFunc(v.redirectDelay, func() {
		v.nav.Navigate(RouteLogin)
	})
}

// Resend asks for a fresh confirmation email for the stored address.
func (v *EmailVerificationView) Resend(ctx context.Context) {
	email := v.store.VerificationEmail()
	if email == "" {
		v.modal.ShowError(UserMessage(errors.ValidationError("email", "no address awaiting verification")))
		return
	}

	if err := v.auth.ResendVerification(ctx, email); err != nil {
		presentFailure(err, v.store, v.nav, v.modal)
	}
}
