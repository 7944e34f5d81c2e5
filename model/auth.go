package model

// LoginRequest for user login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// Identity is the verified token payload attached to the request context.
type Identity struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}
