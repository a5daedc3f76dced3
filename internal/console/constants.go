package console

import "time"

// Resolver cache sizing
const (
	ResolverCacheSize = 128
	ResolverCacheTTL  = 10 * time.Minute
)

// Fuzzy matching only kicks in for tokens at least this long
const minFuzzyLen = 2

// Screen text
const (
	Indent = "  "

	TextBanner       = "--------  MY FARM  --------"
	TextActionsTitle = "--------  ACTIONS  --------"
	TextPressEnter   = "Press /ENTER/ to start game."
	TextContinue     = "Press /ENTER/ to continue."
	TextExitOption   = "  [E]xit"
	TextGameOver     = "GAME OVER"
	TextAllWithered  = "All your plots had withered crops!"
	TextBankrupt     = "You ran out of money to buy seeds!"
	TextGameOverDay  = "It was day %d when the game ended."
	TextNewGame      = "Press [N] for a new game, or any other key to quit."
	TextGoodbye      = "Thanks for playing!"
)

// Prompts
const (
	PromptAction   = "Choose an action."
	PromptPlot     = "Which plot to %s? Enter row and column."
	PromptCrop     = "Which crop do you want?"
	PromptRegister = "Do you wish to register? Enter [Y] if so, anything else if not."
	PromptAdvance  = "Do you wish to advance the day? Enter [Y] if so, anything else if not."
)

// Log messages
const (
	LogMsgInputFailed = "Failed to read player input"
)

// Input feedback
const (
	MsgInvalidInput       = "Invalid input. Enter a row and a column."
	MsgInvalidCoordinates = "Invalid plot. Rows go 0-%d and columns 0-%d."
	MsgErrorPrefix        = "Error: "
)

// Result text
const (
	MsgPlowed       = "Plowed the plot at %s."
	MsgPlanted      = "Planted %s at %s for %d objectcoins."
	MsgWatered      = "Watered the %s at %s."
	MsgFertilized   = "Fertilized the %s at %s for %d objectcoins."
	MsgHarvested    = "Harvested %d %s at %s."
	MsgHarvestBase  = "  Base price:       %d"
	MsgHarvestWater = "  Water bonus:      %d"
	MsgHarvestFert  = "  Fertilizer bonus: %d"
	MsgHarvestTotal = "  Total:           +%d objectcoins"
	MsgShoveled     = "Shoveled the plot at %s."
	MsgShoveledCrop = "Shoveled the %s out of the plot at %s."
	MsgPickaxed     = "Broke the rock at %s."
	MsgRegistered   = "You are now a %s! Paid %d objectcoins."
	MsgNewDay       = "Day %d begins."
	MsgExperience   = "+%g EXP"
	MsgLevelUp      = "Level up! You reached level %d."
	MsgCanHarvest   = "The crop at %s can be harvested."
)

// Verb and crop menu letters. Crop letters live in their own namespace.
var (
	verbLetters = map[string]string{
		"p": "plow",
		"t": "plant",
		"w": "water",
		"f": "fertilize",
		"s": "shovel",
		"x": "pickaxe",
		"r": "register",
		"h": "harvest",
		"e": "advance",
	}

	verbSynonyms = map[string]string{
		"till":         "plow",
		"sow":          "plant",
		"fertilizer":   "fertilize",
		"dig":          "shovel",
		"mine":         "pickaxe",
		"end":          "advance",
		"end day":      "advance",
		"sleep":        "advance",
		"next":         "advance",
		"watering can": "water",
	}

	cropLetters = map[string]string{
		"t": "turnip",
		"c": "carrot",
		"p": "potato",
		"r": "rose",
		"u": "turnips",
		"s": "sunflower",
		"m": "mango",
		"a": "apple",
	}
)

// exitTokens leave the crop menu without planting
var exitTokens = map[string]bool{"e": true, "exit": true}
