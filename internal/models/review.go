package models

import "time"

// Review is a student's review of a mentor. Only the owning student may
// edit or delete it; the server recomputes the mentor's average rating as a
// side effect of any mutation.
type Review struct {
	ID                       int64     `json:"id"`
	MentorID                 int64     `json:"mentorId"`
	StudentID                int64     `json:"studentId"`
	StudentFirstName         string    `json:"studentFirstName"`
	StudentLastName          string    `json:"studentLastName"`
	StudentProfilePictureURL string    `json:"studentProfilePictureUrl,omitempty"`
	Rating                   int       `json:"rating"`
	Comment                  string    `json:"comment"`
	CreatedAt                time.Time `json:"createdAt"`
	UpdatedAt                time.Time `json:"updatedAt"`
}

// ReviewRequest creates a review via POST /reviews.
type ReviewRequest struct {
	MentorID int64  `json:"mentorId" validate:"required"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comment  string `json:"comment" validate:"required,min=10,max=500"`
}

// ReviewUpdateRequest edits an existing review via PUT /reviews/{id}.
type ReviewUpdateRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required,min=10,max=500"`
}
