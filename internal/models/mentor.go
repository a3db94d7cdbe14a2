package models

// Mentor is a read-only directory listing entry, refreshed wholesale on
// every search.
type Mentor struct {
	MentorID             int64   `json:"mentorId"`
	ProfilePictureURL    string  `json:"profilePictureUrl"`
	FirstName            string  `json:"firstName"`
	LastName             string  `json:"lastName"`
	Bio                  string  `json:"bio"`
	Age                  int     `json:"age"`
	HourlyRate           float64 `json:"hourlyRate"`
	Specialization       string  `json:"specialization"`
	ExperienceYears      int     `json:"experienceYears"`
	AverageRating        float64 `json:"averageRating"`
	MentorTargetStudents string  `json:"mentorTargetStudents"`
}

// Sort directions accepted by POST /guest/mentors/search.
const (
	SortAscending  = "ASC"
	SortDescending = "DESC"
)

// MentorSearchRequest is the body of POST /guest/mentors/search. Zero-value
// fields are omitted so the server applies no constraint for them.
type MentorSearchRequest struct {
	Query          string   `json:"query,omitempty"`
	Specialization string   `json:"specialization,omitempty"`
	MinRating      *float64 `json:"minRating,omitempty"`
	MaxRating      *float64 `json:"maxRating,omitempty"`
	MinRate        *float64 `json:"minRate,omitempty"`
	MaxRate        *float64 `json:"maxRate,omitempty"`
	MinExperience  *int     `json:"minExperience,omitempty"`
	MaxExperience  *int     `json:"maxExperience,omitempty"`
	SortBy         string   `json:"sortBy,omitempty"`
	SortDirection  string   `json:"sortDirection,omitempty"`
}
