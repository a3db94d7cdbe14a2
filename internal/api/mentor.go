package api

import (
	"context"
	"fmt"

	"github.com/mentorhub/mentorhub-client/internal/models"
)

// MentorClient fetches the mentor directory and manages reviews.
type MentorClient struct {
	core *Client
}

// NewMentorClient creates a mentor directory client over the shared
// request core.
func NewMentorClient(core *Client) *MentorClient {
	return &MentorClient{core: core}
}

// ListMentors fetches the unfiltered mentor directory. Guest endpoint, no
// credential required.
func (c *MentorClient) ListMentors(ctx context.Context) ([]models.Mentor, error) {
	var mentors []models.Mentor
	if err := c.core.getJSON(ctx, "listMentors", "/guest/mentors", false, &mentors); err != nil {
		return nil, err
	}
	return mentors, nil
}

// SearchMentors runs a server-side filtered, sorted directory search. The
// listing is replaced wholesale with the result.
func (c *MentorClient) SearchMentors(ctx context.Context, req models.MentorSearchRequest) ([]models.Mentor, error) {
	var mentors []models.Mentor
	if err := c.core.postJSON(ctx, "searchMentors", "/guest/mentors/search", false, req, &mentors); err != nil {
		return nil, err
	}
	return mentors, nil
}

// GetMentorReviews fetches all reviews for a mentor.
func (c *MentorClient) GetMentorReviews(ctx context.Context, mentorID int64) ([]models.Review, error) {
	var reviews []models.Review
	path := fmt.Sprintf("/reviews/mentor/%d", mentorID)
	if err := c.core.getJSON(ctx, "getMentorReviews", path, false, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// CreateReview submits a new review. The mentor's average rating is
// recomputed server-side; callers observe it by reloading.
func (c *MentorClient) CreateReview(ctx context.Context, req models.ReviewRequest) error {
	return c.core.postJSON(ctx, "createReview", "/reviews", true, req, nil)
}

// UpdateReview edits an existing review owned by the caller.
func (c *MentorClient) UpdateReview(ctx context.Context, reviewID int64, req models.ReviewUpdateRequest) (*models.Review, error) {
	var review models.Review
	path := fmt.Sprintf("/reviews/%d", reviewID)
	if err := c.core.putJSON(ctx, "updateReview", path, true, req, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// DeleteReview removes a review owned by the caller.
func (c *MentorClient) DeleteReview(ctx context.Context, reviewID int64) error {
	return c.core.delete(ctx, "deleteReview", fmt.Sprintf("/reviews/%d", reviewID), true)
}
