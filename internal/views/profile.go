package views

import (
	"context"

	"github.com/mentorhub/mentorhub-client/internal/api"
	"github.com/mentorhub/mentorhub-client/internal/models"
	"github.com/mentorhub/mentorhub-client/internal/session"
)

// ProfileView shows and edits the authenticated user's profile.
type ProfileView struct {
	profile *api.ProfileClient
	auth    *api.AuthClient
	store   *session.Store
	nav     Navigator
	modal   ErrorPresenter
}

// NewProfileView creates the profile view controller.
func NewProfileView(profile *api.ProfileClient, auth *api.AuthClient, store *session.Store, nav Navigator, modal ErrorPresenter) *ProfileView {
	return &ProfileView{profile: profile, auth: auth, store: store, nav: nav, modal: modal}
}

// Open fetches the profile and picture URL. An unauthenticated open lands
// on login instead.
func (v *ProfileView) Open(ctx context.Context) (*models.UserProfile, string, bool) {
	if !requireAuth(v.store, v.nav) {
		return nil, "", false
	}

	profile, err := v.profile.GetProfile(ctx)
	if err != nil {
		presentFailure(err, v.store, v.nav, v.modal)
		return nil, "", false
	}

	picture, err := v.profile.GetProfilePicture(ctx)
	if err != nil {
		presentFailure(err, v.store, v.nav, v.modal)
		return profile, "", true
	}

	return profile, picture.ProfilePictureURL, true
}

// Update applies a partial profile edit. Nil fields stay unchanged.
func (v *ProfileView) Update(ctx context.Context, req models.ProfileUpdateRequest) bool {
	if err := validateForm(req); err != nil {
		v.modal.ShowError(UserMessage(err))
		return false
	}

	if err := v.profile.UpdateProfile(ctx, req); err != nil {
		presentFailure(err, v.store, v.nav, v.modal)
		return false
	}
	return true
}

// UpdatePicture replaces the profile picture.
func (v *ProfileView) UpdatePicture(ctx context.Context, picture api.Upload) bool {
	if err := v.profile.UpdateProfilePicture(ctx, picture); err != nil {
		presentFailure(err, v.store, v.nav, v.modal)
		return false
	}
	return true
}

// DeleteAccount removes the account, clears the session, and lands on
// login. The caller confirms with the user before invoking this.
func (v *ProfileView) DeleteAccount(ctx context.Context) {
	if err := v.auth.DeleteAccount(ctx); err != nil {
		presentFailure(err, v.store, v.nav, v.modal)
		return
	}

	v.store.Clear()
	v.nav.Navigate(RouteLogin)
}

// Logout drops the credential and lands on login. Local only, no request.
func (v *ProfileView) Logout() {
	v.store.Clear()
	v.nav.Navigate(RouteLogin)
}
