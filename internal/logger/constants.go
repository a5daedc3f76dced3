package logger

// Log level names that need special handling
const (
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
)

// Log Format String Values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Service Configuration Values
const (
	DefaultServiceName = "myfarm"
	DefaultVersion     = "dev"
)

// EnvironmentDev turns on source locations in log records
const EnvironmentDev = "dev"

// Log Attribute Keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeySessionID   = "session_id"
)
