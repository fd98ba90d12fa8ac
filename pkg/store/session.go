package store

// Session represents the active user session state in memory.
// Sessions are minted server-side on first contact and carry only the
// debug-mode flag; they are explicitly not durable.
type Session struct {
	ID        string `json:"id"`
	DebugMode bool   `json:"debug_mode"`
}
