package domain

import "errors"

// ErrorKind groups game errors by the rule they violate
type ErrorKind string

const (
	KindStructural ErrorKind = "structural" // wrong plot state
	KindTiming     ErrorKind = "timing"     // matured, not yet matured, withered
	KindEconomic   ErrorKind = "economic"   // insufficient funds
	KindPlacement  ErrorKind = "placement"  // tree adjacency
	KindInput      ErrorKind = "input"      // bad coordinates, unknown verb, ineligible request
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Structural errors
	ErrMsgNotPlowed       = "plot is not plowed"
	ErrMsgAlreadyPlowed   = "plot already plowed"
	ErrMsgPlotOccupied    = "plot already has a crop in it"
	ErrMsgNoCrop          = "no crop in plot"
	ErrMsgHasRock         = "plot has a rock in it"
	ErrMsgNoRock          = "no rock to pickaxe"
	ErrMsgNoAvailablePlot = "no available plots to use action on"

	// Timing errors
	ErrMsgAlreadyMatured = "crop cannot be watered or fertilized at harvest date"
	ErrMsgNotMaturedYet  = "crop in plot has not matured yet"
	ErrMsgCropWithered   = "crop has withered"

	// Economy errors
	ErrMsgInsufficientFunds = "not enough objectcoins"

	// Placement errors
	ErrMsgTreeAdjacency = "trees need all adjacent plots empty"

	// Input errors
	ErrMsgInvalidCoordinates = "invalid plot coordinates"
	ErrMsgUnknownVerb        = "unknown action"
	ErrMsgUnknownCrop        = "unknown crop"
	ErrMsgLevelTooLow        = "level too low to register for the next title"
	ErrMsgMaxTitle           = "maximum title already reached"
	ErrMsgGameOver           = "game is over"
)

// GameError is an expected, recoverable action failure. Each violation has
// exactly one sentinel value; compare with errors.Is.
type GameError struct {
	Kind    ErrorKind
	Code    string
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

func newGameError(kind ErrorKind, code, msg string) *GameError {
	return &GameError{Kind: kind, Code: code, Message: msg}
}

var (
	// Structural errors
	ErrNotPlowed       = newGameError(KindStructural, "not_plowed", ErrMsgNotPlowed)
	ErrAlreadyPlowed   = newGameError(KindStructural, "already_plowed", ErrMsgAlreadyPlowed)
	ErrPlotOccupied    = newGameError(KindStructural, "plot_occupied", ErrMsgPlotOccupied)
	ErrNoCrop          = newGameError(KindStructural, "no_crop", ErrMsgNoCrop)
	ErrHasRock         = newGameError(KindStructural, "has_rock", ErrMsgHasRock)
	ErrNoRock          = newGameError(KindStructural, "no_rock", ErrMsgNoRock)
	ErrNoAvailablePlot = newGameError(KindStructural, "no_available_plot", ErrMsgNoAvailablePlot)

	// Timing errors
	ErrAlreadyMatured = newGameError(KindTiming, "already_matured", ErrMsgAlreadyMatured)
	ErrNotMaturedYet  = newGameError(KindTiming, "not_matured_yet", ErrMsgNotMaturedYet)
	ErrCropWithered   = newGameError(KindTiming, "crop_withered", ErrMsgCropWithered)

	// Economy errors
	ErrInsufficientFunds = newGameError(KindEconomic, "insufficient_funds", ErrMsgInsufficientFunds)

	// Placement errors
	ErrTreeAdjacency = newGameError(KindPlacement, "tree_adjacency", ErrMsgTreeAdjacency)

	// Input errors
	ErrInvalidCoordinates = newGameError(KindInput, "invalid_coordinates", ErrMsgInvalidCoordinates)
	ErrUnknownVerb        = newGameError(KindInput, "unknown_verb", ErrMsgUnknownVerb)
	ErrUnknownCrop        = newGameError(KindInput, "unknown_crop", ErrMsgUnknownCrop)
	ErrLevelTooLow        = newGameError(KindInput, "level_too_low", ErrMsgLevelTooLow)
	ErrMaxTitle           = newGameError(KindInput, "max_title", ErrMsgMaxTitle)
	ErrGameOver           = newGameError(KindInput, "game_over", ErrMsgGameOver)
)

// KindOf returns the kind of the first GameError in err's chain.
// ok is false for errors that are not game rule violations.
func KindOf(err error) (ErrorKind, bool) {
	var gameErr *GameError
	if errors.As(err, &gameErr) {
		return gameErr.Kind, true
	}
	return "", false
}

// CodeOf returns the stable code of a game error, or "internal" for anything else
func CodeOf(err error) string {
	var gameErr *GameError
	if errors.As(err, &gameErr) {
		return gameErr.Code
	}
	return "internal"
}

