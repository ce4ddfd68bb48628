package postgres

// Garden snapshot queries
const (
	queryLoadSnapshot = `SELECT snapshot FROM garden_sessions WHERE session_id = $1`

	querySaveSnapshot = `
		INSERT INTO garden_sessions (session_id, snapshot, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (session_id) DO UPDATE
		SET snapshot = EXCLUDED.snapshot, updated_at = NOW()`

	queryDeleteSnapshot = `DELETE FROM garden_sessions WHERE session_id = $1`

	queryListSessions = `SELECT session_id FROM garden_sessions ORDER BY updated_at DESC LIMIT $1`
)

// Error Messages
const (
	ErrMsgFailedToLoadSnapshot   = "failed to load garden snapshot"
	ErrMsgFailedToSaveSnapshot   = "failed to save garden snapshot"
	ErrMsgFailedToDeleteSnapshot = "failed to delete garden snapshot"
	ErrMsgFailedToListSessions   = "failed to list garden sessions"
)
