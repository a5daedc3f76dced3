package handler

// Health status values
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// Log and error messages
const (
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgReadinessFailed = "Readiness check failed"
	ErrMsgNoSession       = "no game in progress"
)

// EnvVersion overrides the version reported by /version when no build stamp exists
const EnvVersion = "VERSION"
