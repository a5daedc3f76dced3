package farm

// Harvest pricing factors
const (
	waterBonusRate      float32 = 0.2
	fertilizerBonusRate float32 = 0.5
	flowerMultiplier    float32 = 1.1
)

// Grid defaults
const (
	DefaultRows = 10
	DefaultCols = 5
	MaxSide     = 26
)

// Layout file errors
const (
	ErrMsgReadLayoutFailed  = "failed to read layout file: %w"
	ErrMsgParseLayoutFailed = "failed to parse layout YAML: %w"
	ErrMsgInvalidDimensions = "invalid farm dimensions %dx%d (each side must be 1..%d)"
	ErrMsgRockOutOfBounds   = "rock at %s is outside the %dx%d farm"
	ErrMsgTooManyRocks      = "cannot place %d rocks on %d plots"
)
