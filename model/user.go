package model

// UserEntity represents the user table entity. Bookings and Reviews are
// loaded alongside the user on reads, never written through this struct.
type UserEntity struct {
	ID             string `db:"id" json:"id"`
	Username       string `db:"username" json:"username"`
	PasswordHash   string `db:"password_hash" json:"-"`
	Name           string `db:"name" json:"name"`
	Email          string `db:"email" json:"email"`
	PhoneNumber    string `db:"phone_number" json:"phoneNumber"`
	ProfilePicture string `db:"profile_picture" json:"profilePicture"`

	Bookings []BookingEntity `db:"-" json:"bookings"`
	Reviews  []ReviewEntity  `db:"-" json:"reviews"`
}

// UserSummary is the projection embedded in booking listings.
type UserSummary struct {
	ID    string `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
}

// UserFilter for querying users (exact matches)
type UserFilter struct {
	Username string
	Email    string
}

type UserCreateRequest struct {
	Username       string `json:"username" validate:"required"`
	Password       string `json:"password" validate:"required"`
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required"`
	PhoneNumber    string `json:"phoneNumber" validate:"required"`
	ProfilePicture string `json:"profilePicture" validate:"required"`
}

// UserUpdateRequest replaces the full field set minus the password.
type UserUpdateRequest struct {
	Username       string `json:"username" validate:"required"`
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required"`
	PhoneNumber    string `json:"phoneNumber" validate:"required"`
	ProfilePicture string `json:"profilePicture" validate:"required"`
}
