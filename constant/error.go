package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrMissingToken
	ErrInvalidToken
	ErrInvalidCredentials
	ErrDuplicateField
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:            "success",
	ErrInternal:           "An error occurred on the server, please double-check your request!",
	ErrNotFound:           "Resource not found",
	ErrInvalidRequest:     "Invalid request",
	ErrMissingToken:       "Access denied. Token not provided.",
	ErrInvalidToken:       "Invalid token",
	ErrInvalidCredentials: "Invalid credentials",
	ErrDuplicateField:     "Username or email already exists. Please choose a different one.",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:            http.StatusOK,
	ErrInternal:           http.StatusInternalServerError,
	ErrNotFound:           http.StatusNotFound,
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrMissingToken:       http.StatusUnauthorized,
	ErrInvalidToken:       http.StatusForbidden,
	ErrInvalidCredentials: http.StatusUnauthorized,
	ErrDuplicateField:     http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:            "0000",
	ErrInternal:           "0001",
	ErrNotFound:           "0002",
	ErrInvalidRequest:     "0003",
	ErrMissingToken:       "0004",
	ErrInvalidToken:       "0005",
	ErrInvalidCredentials: "0006",
	ErrDuplicateField:     "0007",
}
