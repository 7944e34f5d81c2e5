package constant

type contextKey int

const (
	// UserIDKey carries the authenticated user id through the request context.
	UserIDKey contextKey = iota
	// UsernameKey carries the authenticated username through the request context.
	UsernameKey
)
