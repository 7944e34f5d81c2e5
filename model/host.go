package model

// HostEntity represents the host table entity
type HostEntity struct {
	ID             string `db:"id" json:"id"`
	Username       string `db:"username" json:"username"`
	PasswordHash   string `db:"password_hash" json:"-"`
	Name           string `db:"name" json:"name"`
	Email          string `db:"email" json:"email"`
	PhoneNumber    string `db:"phone_number" json:"phoneNumber"`
	ProfilePicture string `db:"profile_picture" json:"profilePicture"`
	AboutMe        string `db:"about_me" json:"aboutMe"`
}

// HostFilter for querying hosts (name is a substring match)
type HostFilter struct {
	Name string
}

type HostCreateRequest struct {
	Username       string `json:"username" validate:"required"`
	Password       string `json:"password" validate:"required"`
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required"`
	PhoneNumber    string `json:"phoneNumber" validate:"required"`
	ProfilePicture string `json:"profilePicture" validate:"required"`
	AboutMe        string `json:"aboutMe" validate:"required"`
}

type HostUpdateRequest struct {
	Username       string `json:"username" validate:"required"`
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required"`
	PhoneNumber    string `json:"phoneNumber" validate:"required"`
	ProfilePicture string `json:"profilePicture" validate:"required"`
	AboutMe        string `json:"aboutMe" validate:"required"`
}
