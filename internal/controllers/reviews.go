package controllers

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/mentorhub/mentorhub-client/internal/models"
	"github.com/mentorhub/mentorhub-client/pkg/errors"
)

// validate is the shared struct validator for form inputs.
var validate = validator.New()

// Identity exposes the locally derived session claims used for UX gating.
// These are hints, not an authorization boundary: the server re-checks
// ownership on every review mutation.
type Identity interface {
	IsAuthenticated() bool
	Role() string
	UserID() (int64, bool)
}

// ReviewAPI is the subset of the mentor client the review panel drives.
type ReviewAPI interface {
	GetMentorReviews(ctx context.Context, mentorID int64) ([]models.Review, error)
	CreateReview(ctx context.Context, req models.ReviewRequest) error
	UpdateReview(ctx context.Context, reviewID int64, req models.ReviewUpdateRequest) (*models.Review, error)
	DeleteReview(ctx context.Context, reviewID int64) error
}

// ReviewPanel presents a mentor's reviews and the owning student's
// create/edit/delete operations. The average-rating recompute is a
// server-side effect observed by reloading.
type ReviewPanel struct {
	api      ReviewAPI
	identity Identity
	mentorID int64

	mu      sync.Mutex
	reviews []models.Review
}

// NewReviewPanel creates a panel for one mentor's reviews.
func NewReviewPanel(api ReviewAPI, identity Identity, mentorID int64) *ReviewPanel {
	return &ReviewPanel{api: api, identity: identity, mentorID: mentorID}
}

// MentorID returns the mentor this panel belongs to.
func (p *ReviewPanel) MentorID() int64 {
	return p.mentorID
}

// Load fetches the mentor's reviews.
func (p *ReviewPanel) Load(ctx context.Context) error {
	reviews, err := p.api.GetMentorReviews(ctx, p.mentorID)
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.reviews = reviews
	p.mu.Unlock()
	return nil
}

// Reviews returns a snapshot of the loaded reviews.
func (p *ReviewPanel) Reviews() []models.Review {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.Review, len(p.reviews))
	copy(out, p.reviews)
	return out
}

// CanReview reports whether the review form should be offered: only an
// authenticated student can leave a review.
func (p *ReviewPanel) CanReview() bool {
	return p.identity.IsAuthenticated() && p.identity.Role() == models.RoleStudent
}

// Submit validates and creates a review, then reloads the list.
func (p *ReviewPanel) Submit(ctx context.Context, rating int, comment string) error {
	req := models.ReviewRequest{
		MentorID: p.mentorID,
		Rating:   rating,
		Comment:  comment,
	}
	if err := validate.Struct(req); err != nil {
		return errors.ValidationError("review", err.Error())
	}

	if err := p.api.CreateReview(ctx, req); err != nil {
		return err
	}
	return p.Load(ctx)
}

// Edit validates and updates an owned review, then reloads the list. The
// ownership check is a UX nicety; the server is the authority.
func (p *ReviewPanel) Edit(ctx context.Context, reviewID int64, rating int, comment string) error {
	if !p.ownsReview(reviewID) {
		return errors.DomainRuleError("You can only edit your own reviews")
	}

	req := models.ReviewUpdateRequest{Rating: rating, Comment: comment}
	if err := validate.Struct(req); err != nil {
		return errors.ValidationError("review", err.Error())
	}

	if _, err := p.api.UpdateReview(ctx, reviewID, req); err != nil {
		return err
	}
	return p.Load(ctx)
}

// Delete removes an owned review, then reloads the list.
func (p *ReviewPanel) Delete(ctx context.Context, reviewID int64) error {
	if !p.ownsReview(reviewID) {
		return errors.DomainRuleError("You can only delete your own reviews")
	}

	if err := p.api.DeleteReview(ctx, reviewID); err != nil {
		return err
	}
	return p.Load(ctx)
}

func (p *ReviewPanel) ownsReview(reviewID int64) bool {
	userID, ok := p.identity.UserID()
	if !ok {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.reviews {
		if p.reviews[i].ID == reviewID {
			return p.reviews[i].StudentID == userID
		}
	}
	return false
}
