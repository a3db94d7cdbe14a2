package models

// ProfileRequest is the common part of the multipart profile creation.
type ProfileRequest struct {
	UserID    int64  `json:"userId" validate:"required"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Bio       string `json:"bio" validate:"required,max=500"`
	Age       int    `json:"age" validate:"required,min=18,max=120"`
}

// StudentInfo is the student-specific profile sub-record, sent as a JSON
// part of the multipart submission.
type StudentInfo struct {
	EducationLevel string `json:"educationLevel" validate:"required"`
	LearningGoals  string `json:"learningGoals" validate:"required"`
}

// MentorInfo is the mentor-specific profile sub-record.
type MentorInfo struct {
	HourlyRate           float64 `json:"hourlyRate" validate:"min=0"`
	Specialization       string  `json:"specialization" validate:"required"`
	ExperienceYears      int     `json:"experienceYears" validate:"min=0"`
	MentorTargetStudents string  `json:"mentorTargetStudents" validate:"required"`
}

// UserProfile is the authenticated user's profile as returned by
// GET /user/profile. Role-specific fields are zero for the other role.
type UserProfile struct {
	FirstName            string  `json:"firstName"`
	LastName             string  `json:"lastName,omitempty"`
	Bio                  string  `json:"bio,omitempty"`
	Age                  int     `json:"age,omitempty"`
	EducationLevel       string  `json:"educationLevel,omitempty"`
	LearningGoals        string  `json:"learningGoals,omitempty"`
	HourlyRate           float64 `json:"hourlyRate,omitempty"`
	Specialization       string  `json:"specialization,omitempty"`
	ExperienceYears      int     `json:"experienceYears,omitempty"`
	AverageRating        float64 `json:"averageRating,omitempty"`
	MentorTargetStudents string  `json:"mentorTargetStudents,omitempty"`
}

// ProfileUpdateRequest carries a partial profile update for
// PUT /user/update-profile. Nil fields are omitted from the request body.
type ProfileUpdateRequest struct {
	FirstName            *string  `json:"firstName,omitempty"`
	LastName             *string  `json:"lastName,omitempty"`
	Bio                  *string  `json:"bio,omitempty" validate:"omitempty,max=500"`
	Age                  *int     `json:"age,omitempty" validate:"omitempty,min=18,max=120"`
	EducationLevel       *string  `json:"educationLevel,omitempty"`
	LearningGoals        *string  `json:"learningGoals,omitempty"`
	HourlyRate           *float64 `json:"hourlyRate,omitempty" validate:"omitempty,min=0"`
	Specialization       *string  `json:"specialization,omitempty"`
	ExperienceYears      *int     `json:"experienceYears,omitempty" validate:"omitempty,min=0"`
	MentorTargetStudents *string  `json:"mentorTargetStudents,omitempty"`
}

// ProfilePicture is the response of GET /user/profile-picture.
type ProfilePicture struct {
	ProfilePictureURL string `json:"profilePictureUrl"`
}
