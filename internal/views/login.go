package views

import (
	"context"

	"github.com/mentorhub/mentorhub-client/internal/api"
	"github.com/mentorhub/mentorhub-client/internal/models"
	"github.com/mentorhub/mentorhub-client/internal/session"
)

// LoginView drives the credential form. On success the token lands in the
// session store and the app moves to the stored redirect target, or the
// profile view by default.
type LoginView struct {
	auth  *api.AuthClient
	store *session.Store
	nav   Navigator
	modal ErrorPresenter
}

// NewLoginView creates the login view controller.
func NewLoginView(auth *api.AuthClient, store *session.Store, nav Navigator, modal ErrorPresenter) *LoginView {
	return &LoginView{auth: auth, store: store, nav: nav, modal: modal}
}

// Submit validates and sends the credentials. Invalid input never reaches
// the network.
func (v *LoginView) Submit(ctx context.Context, email, password string) {
	form := models.LoginRequest{Email: email, Password: password}
	if err := validateForm(form); err != nil {
		v.modal.ShowError(UserMessage(err))
		return
	}

	token, err := v.auth.Login(ctx, form)
	if err != nil {
		presentFailure(err, v.store, v.nav, v.modal)
		return
	}

	v.store.SetCredential(token)

	if route, ok := v.store.TakePendingRedirect(); ok {
		v.nav.Navigate(route)
		return
	}
	v.nav.Navigate(RouteProfile)
}
