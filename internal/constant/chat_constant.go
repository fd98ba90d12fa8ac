package constant

const (
	ChatMessageRoleUser   = "user"
	ChatMessageRoleBot    = "bot"
	ChatMessageRoleSystem = "system"

	// SessionHeader carries the opaque session id, minted server-side on
	// first contact.
	SessionHeader = "X-Session-Id"
)
