package domain

// Event type constants used for event bus subscriptions and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "crop.harvested")
const (
	// EventTypeActionPerformed is published after every successful farmer verb
	EventTypeActionPerformed = "action.performed"

	// EventTypeActionRejected is published when a command fails a game rule
	EventTypeActionRejected = "action.rejected"

	// EventTypeCropHarvested is published after a harvest pays out
	EventTypeCropHarvested = "crop.harvested"

	// EventTypeFarmerLeveledUp is published when experience crosses one or more levels
	EventTypeFarmerLeveledUp = "farmer.leveled_up"

	// EventTypeFarmerRegistered is published when the farmer moves up a title
	EventTypeFarmerRegistered = "farmer.registered"

	// EventTypeDayAdvanced is published when the day counter ticks
	EventTypeDayAdvanced = "day.advanced"

	// EventTypeGameOver is published once when an end condition is reached
	EventTypeGameOver = "game.over"
)
