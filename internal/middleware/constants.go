package middleware

// HTTP Request Parameter Names
const (
	// QueryParamSessionID is the query parameter carrying the garden session
	QueryParamSessionID = "session_id"

	// BodyFieldSessionID is the JSON body field carrying the garden session
	BodyFieldSessionID = "session_id"
)

// Default Values
const (
	// EmptySessionID represents an empty or missing session ID
	EmptySessionID = ""

	// MaxPeekBytes bounds how much of a JSON body is buffered to find the session
	MaxPeekBytes = 64 << 10
)

// Log Messages
const (
	// LogMsgBodyPeekFailed indicates the request body could not be buffered
	LogMsgBodyPeekFailed = "Failed to read request body for session lookup"
)
