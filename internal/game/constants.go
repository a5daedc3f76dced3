package game

// FirstDay is the day a new game starts on
const FirstDay = 1

// Log messages
const (
	LogMsgSessionStarted  = "Game session started"
	LogMsgActionPerformed = "Action performed"
	LogMsgActionRejected  = "Action rejected"
	LogMsgDayAdvanced     = "Day advanced"
	LogMsgLevelUp         = "Farmer leveled up"
	LogMsgGameOver        = "Game over"
	LogMsgPublishFailed   = "Failed to publish game event"
)

// Error messages
const (
	ErrMsgInvalidCommandFmt = "%w: %s"
)
