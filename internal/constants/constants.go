package constants

const (
	// Context/session keys
	ContextKeyUserID   = "user_id"
	ContextKeyQuestion = "question"

	SessionCookieName = "qa_session"

	MinPasswordLength = 8

	// MaxReplyDepth bounds reply composition at the API surface.
	// A top-level answer sits at depth 0; replies under a parent already
	// at this depth are rejected. Stored threads themselves are unbounded.
	MaxReplyDepth = 3
)
