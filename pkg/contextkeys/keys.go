package contextkeys

type contextKey string

const (
	// BearerTokenKey - токен UI-сессии, пробрасываемый в запись к удалённому API.
	BearerTokenKey contextKey = "BearerToken"
	RequestIDKey   contextKey = "RequestID"
)
