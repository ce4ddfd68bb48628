package sse

// NotificationPayload is the SSE form of a garden notification
type NotificationPayload struct {
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// GardenUpdatedPayload tells a client which action changed its garden
type GardenUpdatedPayload struct {
	Action   string `json:"action"`
	Money    int    `json:"money"`
	XP       int    `json:"xp"`
	GridSize int    `json:"grid_size"`
}

// ConnectedPayload is sent once when a stream opens
type ConnectedPayload struct {
	ClientID  string   `json:"client_id"`
	Filters   []string `json:"filters"`
	SessionID string   `json:"session_id,omitempty"`
}
