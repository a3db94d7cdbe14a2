package models

// Role values as issued by the server in the token's role claim.
const (
	RoleStudent = "ROLE_STUDENT"
	RoleMentor  = "ROLE_MENTOR"
)

// LoginRequest is the credential submission for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterRequest creates an account via POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=ROLE_STUDENT ROLE_MENTOR"`
}

// RegisterResponse carries the server-assigned user id needed for the
// follow-up profile creation.
type RegisterResponse struct {
	UserID int64 `json:"userId"`
}
