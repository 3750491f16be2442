package validator

// LoginRequest represents the login payload.
type LoginRequest struct {
	Surname  string `json:"surname" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=1"`
}

// UserCreateRequest represents the payload for creating a staff member.
// Facilitator is a pointer so that an explicit false still satisfies required.
type UserCreateRequest struct {
	Password    string `json:"password" validate:"required,min=1,max=20"`
	FirstName   string `json:"first_name" validate:"required,min=1,max=50"`
	LastName    string `json:"last_name" validate:"required,min=1,max=50"`
	DateOfBirth string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Province    string `json:"province" validate:"required,sa_province"`
	Gender      string `json:"gender" validate:"required,gender"`
	Facilitator *bool  `json:"facilitator" validate:"required"`
}

// UserUpdateRequest represents the payload for updating a staff member.
// Only the first and last name are mutable.
type UserUpdateRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=50"`
	LastName  string `json:"last_name" validate:"required,min=1,max=50"`
}
