package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/MyFarm_Go/internal/domain"
	"github.com/osse101/MyFarm_Go/internal/event"
	"github.com/osse101/MyFarm_Go/internal/farm"
	"github.com/osse101/MyFarm_Go/internal/farmer"
	"github.com/osse101/MyFarm_Go/internal/logger"
	"github.com/osse101/MyFarm_Go/internal/utils"
)

var validate = validator.New()

// Options configures a new session. Nil fields get defaults.
type Options struct {
	ID     string
	Farm   *farm.Farm
	Farmer *farmer.Farmer
	Bus    event.Bus
	Source utils.IntSource
}

// Session owns one game: the day counter, the farm, and the farmer. All state
// changes go through Execute, one command at a time.
type Session struct {
	id     string
	day    int
	farm   *farm.Farm
	farmer *farmer.Farmer
	bus    event.Bus
	src    utils.IntSource
	reason domain.GameOverReason
}

// NewSession starts a game on FirstDay
func NewSession(ctx context.Context, opts Options) *Session {
	s := &Session{
		id:     opts.ID,
		day:    FirstDay,
		farm:   opts.Farm,
		farmer: opts.Farmer,
		bus:    opts.Bus,
		src:    opts.Source,
	}
	if s.id == "" {
		s.id = logger.GenerateSessionID()
	}
	if s.farm == nil {
		s.farm = farm.New(farm.DefaultRows, farm.DefaultCols)
	}
	if s.farmer == nil {
		s.farmer = farmer.New(0, 0)
	}
	if s.src == nil {
		s.src = utils.DefaultSource()
	}

	logger.FromContext(s.Context(ctx)).Info(LogMsgSessionStarted,
		"rows", s.farm.Rows(),
		"cols", s.farm.Cols(),
		"coins", s.farmer.Coins(),
		"level", s.farmer.Level())
	return s
}

func (s *Session) ID() string             { return s.id }
func (s *Session) Day() int               { return s.day }
func (s *Session) Farm() *farm.Farm       { return s.farm }
func (s *Session) Farmer() *farmer.Farmer { return s.farmer }

// Context tags ctx with the session id for logging
func (s *Session) Context(ctx context.Context) context.Context {
	return logger.WithSessionID(ctx, s.id)
}

// IsOver reports whether an end condition has been reached
func (s *Session) IsOver() bool {
	return s.reason != domain.GameOverNone
}

// GameOverReason says why the game ended, or GameOverNone while it runs
func (s *Session) GameOverReason() domain.GameOverReason {
	return s.reason
}

// EndCheck evaluates the end conditions on the current day without latching them:
// every plot withered, or the farmer cannot buy the cheapest seed and nothing is
// still growing toward maturity.
func (s *Session) EndCheck() (domain.GameOverReason, bool) {
	if s.farm.AllWithered(s.day) {
		return domain.GameOverAllWithered, true
	}
	if !s.farmer.CanAffordCheapestSeed() && !s.farm.AnyGrowingUnmatured(s.day) {
		return domain.GameOverBankrupt, true
	}
	return domain.GameOverNone, false
}

// Available reports whether any plot on the farm could accept verb right now.
// It lets a caller skip asking for coordinates that cannot work.
func (s *Session) Available(verb domain.Verb) error {
	var ok bool
	switch verb {
	case domain.VerbPlow:
		ok = s.farm.AnyPlowable()
	case domain.VerbPlant:
		ok = s.farm.AnyPlantable()
	case domain.VerbWater, domain.VerbFertilize:
		ok = s.farm.AnyGrowingUnmatured(s.day)
	case domain.VerbHarvest:
		ok = s.farm.AnyHarvestable(s.day)
	case domain.VerbPickaxe:
		ok = s.farm.AnyRock()
	default:
		ok = true
	}
	if !ok {
		return domain.ErrNoAvailablePlot
	}
	return nil
}

// Execute validates and resolves one command. Rule violations come back as
// *domain.GameError and leave the game unchanged.
func (s *Session) Execute(ctx context.Context, cmd domain.Command) (domain.ActionResult, error) {
	ctx = s.Context(ctx)
	log := logger.FromContext(ctx)

	if s.IsOver() {
		return domain.ActionResult{}, domain.ErrGameOver
	}

	if err := validateCommand(cmd); err != nil {
		s.reject(ctx, cmd.Verb, err)
		return domain.ActionResult{}, err
	}

	res, err := s.dispatch(ctx, cmd)
	if err != nil {
		s.reject(ctx, cmd.Verb, err)
		return domain.ActionResult{}, err
	}

	log.Info(LogMsgActionPerformed,
		"verb", res.Verb,
		"coord", res.Coord,
		"crop", res.Crop,
		"coins_delta", res.CoinsDelta,
		"coins", res.Coins,
		"day", res.Day)
	s.publishResult(ctx, res)

	s.CheckGameOver(ctx)
	return res, nil
}

// CheckGameOver runs EndCheck and latches the result. The game-over event is
// published once, on the call that first sees the end.
func (s *Session) CheckGameOver(ctx context.Context) bool {
	if s.IsOver() {
		return true
	}
	reason, over := s.EndCheck()
	if !over {
		return false
	}

	ctx = s.Context(ctx)
	s.reason = reason
	logger.FromContext(ctx).Info(LogMsgGameOver, "reason", reason, "day", s.day, "coins", s.farmer.Coins(), "level", s.farmer.Level())
	s.publish(ctx, event.NewGameOverEvent(s.id, reason, s.day, s.farmer.Coins(), s.farmer.Level()))
	return true
}

func (s *Session) dispatch(ctx context.Context, cmd domain.Command) (domain.ActionResult, error) {
	f, fm, c, day := s.farmer, s.farm, cmd.Coord, s.day

	switch cmd.Verb {
	case domain.VerbPlow:
		return f.Plow(fm, c, day)
	case domain.VerbPlant:
		return f.Plant(fm, c, cmd.Crop, day)
	case domain.VerbWater:
		return f.Water(fm, c, day)
	case domain.VerbFertilize:
		return f.Fertilize(fm, c, day)
	case domain.VerbHarvest:
		return f.Harvest(fm, c, day, s.src)
	case domain.VerbShovel:
		return f.Shovel(fm, c, day)
	case domain.VerbPickaxe:
		return f.Pickaxe(fm, c, day)
	case domain.VerbRegister:
		return f.Register(day)
	case domain.VerbAdvance:
		return s.advanceDay(ctx), nil
	default:
		return domain.ActionResult{}, domain.ErrUnknownVerb
	}
}

// AdvanceDay ends the current day. It is the same as executing VerbAdvance.
func (s *Session) AdvanceDay(ctx context.Context) (domain.ActionResult, error) {
	return s.Execute(ctx, domain.Command{Verb: domain.VerbAdvance})
}

func (s *Session) advanceDay(ctx context.Context) domain.ActionResult {
	s.day++
	withered := s.farm.RefreshWither(s.day)

	logger.FromContext(ctx).Info(LogMsgDayAdvanced, "day", s.day, "new_withered", len(withered))
	s.publish(ctx, event.NewDayAdvancedEvent(s.id, s.day, len(withered)))

	return domain.ActionResult{
		Verb:  domain.VerbAdvance,
		Level: s.farmer.Level(),
		Coins: s.farmer.Coins(),
		Title: s.farmer.Title(),
		Day:   s.day,
	}
}

func (s *Session) publishResult(ctx context.Context, res domain.ActionResult) {
	if res.Verb == domain.VerbAdvance {
		return
	}
	s.publish(ctx, event.NewActionPerformedEvent(s.id, res))

	if res.Harvest != nil {
		s.publish(ctx, event.NewCropHarvestedEvent(s.id, *res.Harvest, res.Day))
	}
	if res.Verb == domain.VerbRegister {
		s.publish(ctx, event.NewRegisteredEvent(s.id, res.Title, -res.CoinsDelta))
	}
	if res.LevelsGained > 0 {
		oldLevel := res.Level - res.LevelsGained
		logger.FromContext(ctx).Info(LogMsgLevelUp, "old_level", oldLevel, "new_level", res.Level)
		s.publish(ctx, event.NewLevelUpEvent(s.id, oldLevel, res.Level))
	}
}

func (s *Session) reject(ctx context.Context, verb domain.Verb, err error) {
	logger.FromContext(ctx).Debug(LogMsgActionRejected, "verb", verb, "code", domain.CodeOf(err), "error", err)
	s.publish(ctx, event.NewActionRejectedEvent(s.id, verb, err, s.day))
}

func (s *Session) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

// validateCommand runs the struct tags on cmd and maps the first failure onto the
// matching game error.
func validateCommand(cmd domain.Command) error {
	err := validate.Struct(cmd)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf(ErrMsgInvalidCommandFmt, domain.ErrUnknownVerb, err.Error())
	}

	fe := verrs[0]
	switch fe.Field() {
	case "Row", "Col":
		return fmt.Errorf(ErrMsgInvalidCommandFmt, domain.ErrInvalidCoordinates, fe.Error())
	case "Crop":
		return fmt.Errorf(ErrMsgInvalidCommandFmt, domain.ErrUnknownCrop, fe.Error())
	default:
		return fmt.Errorf(ErrMsgInvalidCommandFmt, domain.ErrUnknownVerb, fe.Error())
	}
}
