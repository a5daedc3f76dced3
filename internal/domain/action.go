package domain

import "fmt"

// Verb is a player action the session can resolve
type Verb string

const (
	VerbPlow      Verb = "plow"
	VerbPlant     Verb = "plant"
	VerbWater     Verb = "water"
	VerbFertilize Verb = "fertilize"
	VerbHarvest   Verb = "harvest"
	VerbShovel    Verb = "shovel"
	VerbPickaxe   Verb = "pickaxe"
	VerbRegister  Verb = "register"
	VerbAdvance   Verb = "advance"
)

// AllVerbs lists verbs in menu order
var AllVerbs = []Verb{
	VerbPlow, VerbPlant, VerbWater, VerbFertilize, VerbHarvest,
	VerbShovel, VerbPickaxe, VerbRegister, VerbAdvance,
}

// Coord addresses a plot by zero-based row and column
type Coord struct {
	Row int `json:"row" validate:"min=0"`
	Col int `json:"col" validate:"min=0"`
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Command is one resolved player choice handed to the game session
type Command struct {
	Verb  Verb     `json:"verb" validate:"required,oneof=plow plant water fertilize harvest shovel pickaxe register advance"`
	Coord Coord    `json:"coord"`
	Crop  CropKind `json:"crop,omitempty" validate:"required_if=Verb plant"`
}

// HarvestResult is the payout breakdown of one harvest
type HarvestResult struct {
	Crop            string  `json:"crop"`
	ProducedUnits   int     `json:"produced_units"`
	BaseTotal       int     `json:"base_total"`
	WaterBonus      int     `json:"water_bonus"`
	FertilizerBonus int     `json:"fertilizer_bonus"`
	Total           int     `json:"total"`
	Experience      float64 `json:"experience"`
}

// ActionResult describes what a successful command changed
type ActionResult struct {
	Verb         Verb           `json:"verb"`
	Coord        *Coord         `json:"coord,omitempty"`
	Crop         string         `json:"crop,omitempty"`
	CoinsDelta   int            `json:"coins_delta"`
	XPGained     float64        `json:"xp_gained"`
	LevelsGained int            `json:"levels_gained"`
	Level        int            `json:"level"`
	Coins        int            `json:"coins"`
	Title        Title          `json:"title"`
	Harvest      *HarvestResult `json:"harvest,omitempty"`
	Day          int            `json:"day"`
}

// PlotState is the derived state of a plot on a given day
type PlotState int

const (
	PlotUnplowed PlotState = iota
	PlotRocked
	PlotPlowedEmpty
	PlotGrowing
	PlotMature
	PlotWithered
)

func (s PlotState) String() string {
	switch s {
	case PlotUnplowed:
		return "unplowed"
	case PlotRocked:
		return "rocked"
	case PlotPlowedEmpty:
		return "plowed"
	case PlotGrowing:
		return "growing"
	case PlotMature:
		return "mature"
	case PlotWithered:
		return "withered"
	default:
		return "unknown"
	}
}

// Plot display glyphs
const (
	GlyphUnplowed = '0'
	GlyphRock     = 'X'
	GlyphPlowed   = '#'
	GlyphWithered = '@'
)

// GameOverReason says which end condition fired
type GameOverReason string

const (
	GameOverNone        GameOverReason = ""
	GameOverAllWithered GameOverReason = "all_withered"
	GameOverBankrupt    GameOverReason = "bankrupt"
)
