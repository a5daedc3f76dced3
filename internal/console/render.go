package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/MyFarm_Go/internal/domain"
	"github.com/osse101/MyFarm_Go/internal/farmer"
	"github.com/osse101/MyFarm_Go/internal/game"
)

// Renderer writes game screens as plain text
type Renderer struct {
	w     io.Writer
	title cases.Caser
	upper cases.Caser
}

// NewRenderer creates a renderer writing to w
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{
		w:     w,
		title: cases.Title(language.English),
		upper: cases.Upper(language.English),
	}
}

func (r *Renderer) line(format string, args ...any) {
	fmt.Fprintf(r.w, Indent+format+"\n", args...)
}

func (r *Renderer) blank() {
	fmt.Fprintln(r.w)
}

// Prompt prints a question followed by the input marker
func (r *Renderer) Prompt(format string, args ...any) {
	r.line(format, args...)
	r.Marker()
}

// Marker prints the indent the player types after
func (r *Renderer) Marker() {
	fmt.Fprint(r.w, Indent)
}

// StartScreen shows the banner before the first game
func (r *Renderer) StartScreen() {
	r.line(TextBanner)
	r.Prompt(TextPressEnter)
}

// Status shows the farmer's stats, the field, and any harvest-ready plots
func (r *Renderer) Status(snap game.Snapshot) {
	r.blank()
	r.line(TextBanner)
	r.line("DAY: %d", snap.Day)
	r.line("TITLE: %s", r.upper.String(snap.Title.Name))
	r.line("OBJECTCOINS: %d", snap.Coins)
	r.line("LEVEL: %d", snap.Level)
	r.line("TOTAL EXP: %g", snap.TotalExperience)
	r.line("FARM:")
	r.Grid(snap.Glyphs)
	r.blank()
	for _, c := range snap.Harvestable {
		r.line(MsgCanHarvest, c)
	}
}

// Grid prints the field with row and column indices
func (r *Renderer) Grid(glyphs [][]rune) {
	if len(glyphs) == 0 {
		return
	}
	var b strings.Builder
	b.WriteString(Indent + "   ")
	for col := range glyphs[0] {
		fmt.Fprintf(&b, "%3d", col)
	}
	b.WriteByte('\n')
	for row, cells := range glyphs {
		fmt.Fprintf(&b, "%s%3d", Indent, row)
		for _, g := range cells {
			fmt.Fprintf(&b, "%3c", g)
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(r.w, b.String())
}

// Menu lists the actions. Pickaxe, register, and harvest only show when usable.
func (r *Renderer) Menu(snap game.Snapshot) {
	r.blank()
	r.line(TextActionsTitle)
	r.line("[P]LOW (Plow a plot)")
	r.line("PLAN[T] (Plant a crop in a plowed plot)")
	r.line("[W]ATERING CAN (Water a plot)")
	r.line("[F]ERTILIZER (Fertilize a plot for %d objectcoins)", farmer.FertilizerCost)
	r.line("[S]HOVEL (Shovel a plot for %d objectcoins)", farmer.ShovelCost)
	if snap.HasRock {
		r.line("PICKA[X]E (Mine a rock for %d objectcoins)", farmer.PickaxeCost)
	}
	if snap.CanRegister && snap.NextTitle != nil {
		r.line("[R]EGISTER (%s is available for registration)", snap.NextTitle.Name)
	}
	if len(snap.Harvestable) > 0 {
		r.line("[H]ARVEST (Harvest a matured crop)")
	}
	r.line("[E]ND DAY (Advances the day)")
}

// PlantOptions shows the seed shop with prices after the farmer's discount
func (r *Renderer) PlantOptions(f *farmer.Farmer) {
	r.blank()
	r.line("| %-11s | %-6s | %4s | %-11s | %-11s | %-7s | %5s | %5s | %4s |",
		"NAME", "TYPE", "DAYS", "WATER NEEDS", "FERTI NEEDS", "PRODUCT", "PRICE", "EXP", "COST")
	for _, spec := range domain.CropCatalog() {
		r.line("| %-11s | %-6s | %4d | %-11s | %-11s | %-7s | %5d | %5g | %4d |",
			menuLabel(spec.Name, cropLetterFor(spec.Name)),
			spec.Category,
			spec.DaysToMaturity,
			fmt.Sprintf("%d - %d", spec.WaterMin, spec.WaterMax),
			fmt.Sprintf("%d - %d", spec.FertilizerMin, spec.FertilizerMax),
			fmt.Sprintf("%d - %d", spec.ProductMin, spec.ProductMax),
			spec.BasePrice,
			spec.ExperienceReward,
			f.SeedCost(spec))
	}
	r.line(TextExitOption)
	r.blank()
}

// RegisterOffer shows the next tier's fee and perks
func (r *Renderer) RegisterOffer(next domain.TitleSpec) {
	r.blank()
	r.line("NEXT TITLE: %s", r.upper.String(next.Name))
	r.line("Registration fee: %d objectcoins", next.RegistrationFee)
	r.line("Earnings bonus per produce: +%d", next.EarningsBonus)
	r.line("Seed cost reduction: -%d", next.SeedCostReduction)
	r.line("Water bonus limit increase: +%d", next.WaterBonusCap)
	r.line("Fertilizer bonus limit increase: +%d", next.FertilizerBonusCap)
}

// Result describes a successful action
func (r *Renderer) Result(res domain.ActionResult) {
	at := ""
	if res.Coord != nil {
		at = res.Coord.String()
	}

	switch res.Verb {
	case domain.VerbPlow:
		r.line(MsgPlowed, at)
	case domain.VerbPlant:
		r.line(MsgPlanted, res.Crop, at, -res.CoinsDelta)
	case domain.VerbWater:
		r.line(MsgWatered, res.Crop, at)
	case domain.VerbFertilize:
		r.line(MsgFertilized, res.Crop, at, -res.CoinsDelta)
	case domain.VerbHarvest:
		r.harvest(res, at)
	case domain.VerbShovel:
		if res.Crop != "" {
			r.line(MsgShoveledCrop, res.Crop, at)
		} else {
			r.line(MsgShoveled, at)
		}
	case domain.VerbPickaxe:
		r.line(MsgPickaxed, at)
	case domain.VerbRegister:
		r.line(MsgRegistered, res.Title, -res.CoinsDelta)
	case domain.VerbAdvance:
		r.line(MsgNewDay, res.Day)
	default:
		r.line("%s %s", r.title.String(string(res.Verb)), at)
	}

	if res.XPGained > 0 {
		r.line(MsgExperience, res.XPGained)
	}
	if res.LevelsGained > 0 {
		r.line(MsgLevelUp, res.Level)
	}
}

func (r *Renderer) harvest(res domain.ActionResult, at string) {
	h := res.Harvest
	if h == nil {
		r.line(MsgHarvested, 0, res.Crop, at)
		return
	}
	r.line(MsgHarvested, h.ProducedUnits, h.Crop, at)
	r.line(MsgHarvestBase, h.BaseTotal)
	r.line(MsgHarvestWater, h.WaterBonus)
	r.line(MsgHarvestFert, h.FertilizerBonus)
	r.line(MsgHarvestTotal, h.Total)
}

// Error prints a rejected action or bad input. Game errors show their message,
// anything else its full text.
func (r *Renderer) Error(err error) {
	if err == nil {
		return
	}
	msg := err.Error()
	var gameErr *domain.GameError
	if errors.As(err, &gameErr) {
		msg = gameErr.Message
	}
	r.line("%s%s", MsgErrorPrefix, r.sentence(msg))
}

// Message prints one indented line
func (r *Renderer) Message(format string, args ...any) {
	r.line(format, args...)
}

// EndScreen shows why the game ended
func (r *Renderer) EndScreen(reason domain.GameOverReason, day int) {
	r.blank()
	switch reason {
	case domain.GameOverAllWithered:
		r.line(TextAllWithered)
	case domain.GameOverBankrupt:
		r.line(TextBankrupt)
	}
	r.blank()
	r.line(TextGameOver)
	r.line(TextGameOverDay, day)
	r.Prompt(TextNewGame)
}

// sentence capitalizes the first word of msg
func (r *Renderer) sentence(msg string) string {
	first, rest, found := strings.Cut(msg, " ")
	if !found {
		return r.title.String(msg)
	}
	return r.title.String(first) + " " + rest
}

// menuLabel brackets the menu letter inside name, as in "T[u]rnips"
func menuLabel(name, letter string) string {
	i := strings.Index(strings.ToLower(name), letter)
	if letter == "" || i < 0 {
		return name
	}
	return name[:i] + "[" + name[i:i+1] + "]" + name[i+1:]
}

func cropLetterFor(name string) string {
	lower := strings.ToLower(name)
	for letter, crop := range cropLetters {
		if crop == lower {
			return letter
		}
	}
	return ""
}
