package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgRequestTooLarge       = "Request body too large"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Garden error messages
	ErrMsgGardenNotFoundHTTP = "Garden not found"
	ErrMsgSnapshotUnreadable = "Saved garden could not be read"
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
)

// Success messages for API responses
const (
	MsgGardenReset = "Garden reset"
)

// Health responses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	MsgStoreUnavailable     = "garden store unavailable"
)

// Query parameters
const (
	QueryParamSessionID = "session_id"
)
