package views

import (
	"context"

	"github.com/mentorhub/mentorhub-client/internal/api"
	"github.com/mentorhub/mentorhub-client/internal/models"
	"github.com/mentorhub/mentorhub-client/internal/session"
	"github.com/mentorhub/mentorhub-client/pkg/errors"
)

// ProfileCreateForm is everything the profile-creation view collects. The
// role-specific sub-form that applies is picked by the pending
// registration's role.
type ProfileCreateForm struct {
	FirstName string
	LastName  string
	Bio       string
	Age       int
	Student   models.StudentInfo
	Mentor    models.MentorInfo
	Picture   api.Upload
}

// ProfileCreateView drives the post-registration profile step. It depends
// on the registration transients left behind by RegisterView; opening it
// without one sends the user back to registration.
type ProfileCreateView struct {
	profile *api.ProfileClient
	store   *session.Store
	nav     Navigator
	modal   ErrorPresenter
}

// NewProfileCreateView creates the profile-creation view controller.
func NewProfileCreateView(profile *api.ProfileClient, store *session.Store, nav Navigator, modal ErrorPresenter) *ProfileCreateView {
	return &ProfileCreateView{profile: profile, store: store, nav: nav, modal: modal}
}

// Open checks a registration is pending and returns its role so the view
// can render the matching sub-form.
func (v *ProfileCreateView) Open() (role string, ok bool) {
	reg, ok := v.store.TakeRegistration()
	if !ok {
		v.nav.Navigate(RouteRegister)
		return "", false
	}
	return reg.Role, true
}

// Submit validates the common and role-specific fields and creates the
// profile. On success the registration transients are consumed and the user
// moves to email verification.
func (v *ProfileCreateView) Submit(ctx context.Context, form ProfileCreateForm) {
	reg, ok := v.store.TakeRegistration()
	if !ok {
		v.nav.Navigate(RouteRegister)
		return
	}

	req := models.ProfileRequest{
		UserID:    reg.UserID,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Bio:       form.Bio,
		Age:       form.Age,
	}
	if err := validateForm(req); err != nil {
		v.modal.ShowError(UserMessage(err))
		return
	}

	var studentInfo *models.StudentInfo
	var mentorInfo *models.MentorInfo
	switch reg.Role {
	case models.RoleStudent:
		if err := validateForm(form.Student); err != nil {
			v.modal.ShowError(UserMessage(err))
			return
		}
		studentInfo = &form.Student
	case models.RoleMentor:
		if err := validateForm(form.Mentor); err != nil {
			v.modal.ShowError(UserMessage(err))
			return
		}
		mentorInfo = &form.Mentor
	default:
		v.nav.Navigate(RouteRegister)
		return
	}

	if form.Picture.Reader == nil {
		v.modal.ShowError(UserMessage(errors.ValidationError("profilePicture", "a profile picture is required")))
		return
	}

	if err := v.profile.CreateProfile(ctx, req, studentInfo, mentorInfo, form.Picture); err != nil {
		presentFailure(err, v.store, v.nav, v.modal)
		return
	}

	v.store.SetVerificationEmail(reg.Email)
	v.store.ClearRegistration()
	v.nav.Navigate(RouteVerifyEmail)
}
