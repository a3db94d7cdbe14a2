package views

import (
	"context"

	"github.com/mentorhub/mentorhub-client/internal/api"
	"github.com/mentorhub/mentorhub-client/internal/models"
	"github.com/mentorhub/mentorhub-client/internal/session"
)

// RegisterView drives account creation. On success it stashes the
// server-assigned user id, email and role for the profile-creation step and
// navigates there.
type RegisterView struct {
	auth  *api.AuthClient
	store *session.Store
	nav   Navigator
	modal ErrorPresenter
}

// NewRegisterView creates the registration view controller.
func NewRegisterView(auth *api.AuthClient, store *session.Store, nav Navigator, modal ErrorPresenter) *RegisterView {
	return &RegisterView{auth: auth, store: store, nav: nav, modal: modal}
}

// Submit validates and sends the registration form.
func (v *RegisterView) Submit(ctx context.Context, email, password, role string) {
	form := models.RegisterRequest{Email: email, Password: password, Role: role}
	if err := validateForm(form); err != nil {
		v.modal.ShowError(UserMessage(err))
		return
	}

	resp, err := v.auth.Register(ctx, form)
	if err != nil {
		presentFailure(err, v.store, v.nav, v.modal)
		return
	}

	v.store.SetRegistration(session.Registration{
		UserID: resp.UserID,
		Email:  email,
		Role:   role,
	})
	v.nav.Navigate(RouteCreateProfile)
}
