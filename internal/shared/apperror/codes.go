package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeStaleState   = "STALE_STATE"
	CodeInvalidState = "INVALID_STATE"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// Kinds reported to clients so they can decide between an inline message,
// a re-login prompt or a retry toast.
const (
	KindClient  = "client"
	KindAuth    = "auth"
	KindServer  = "server"
	KindNetwork = "network"
)
