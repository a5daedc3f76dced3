package console

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/osse101/MyFarm_Go/internal/domain"
	"github.com/osse101/MyFarm_Go/internal/game"
	"github.com/osse101/MyFarm_Go/internal/logger"
)

// SessionFactory starts a fresh game
type SessionFactory func(ctx context.Context) (*game.Session, error)

// App is the interactive prompt loop. It reads one line at a time, turns it into
// commands for the current session, and renders the outcome.
type App struct {
	in       *bufio.Scanner
	render   *Renderer
	resolver *Resolver
	newGame  SessionFactory

	pending error
	active  atomic.Bool
}

// NewApp wires an app reading from in and writing to out
func NewApp(in io.Reader, out io.Writer, newGame SessionFactory) *App {
	return &App{
		in:       bufio.NewScanner(in),
		render:   NewRenderer(out),
		resolver: NewResolver(),
		newGame:  newGame,
	}
}

// Active reports whether a game is in progress. Safe to call from other goroutines.
func (a *App) Active() bool {
	return a.active.Load()
}

// Run plays games until the player quits or input ends. Closed input is a normal
// exit; a cancelled context returns its error.
func (a *App) Run(ctx context.Context) error {
	a.render.StartScreen()
	if _, err := a.readLine(ctx); err != nil {
		return ignoreEOF(err)
	}

	for {
		s, err := a.newGame(ctx)
		if err != nil {
			return err
		}

		a.active.Store(true)
		err = a.play(ctx, s)
		a.active.Store(false)
		if err != nil {
			return ignoreEOF(err)
		}

		a.render.Status(s.Snapshot())
		a.render.EndScreen(s.GameOverReason(), s.Day())
		again, err := a.readLetter(ctx)
		if err != nil {
			return ignoreEOF(err)
		}
		if again != "n" {
			a.render.Message(TextGoodbye)
			return nil
		}
	}
}

// play runs one session until a game-over condition latches
func (a *App) play(ctx context.Context, s *game.Session) error {
	a.pending = nil
	for !s.CheckGameOver(ctx) {
		snap := s.Snapshot()
		a.render.Status(snap)
		a.render.Menu(snap)
		a.render.Error(a.pending)
		a.pending = nil

		a.render.Prompt(PromptAction)
		input, err := a.readLine(ctx)
		if err != nil {
			return err
		}
		verb, err := a.resolver.ResolveVerb(input)
		if err != nil {
			a.pending = err
			continue
		}

		if err := a.turn(ctx, s, verb); err != nil {
			if isInputClosed(ctx, err) {
				return err
			}
			a.pending = err
		}
	}
	return nil
}

// turn gathers whatever verb needs from the player and executes it
func (a *App) turn(ctx context.Context, s *game.Session, verb domain.Verb) error {
	if err := s.Available(verb); err != nil {
		return err
	}

	cmd := domain.Command{Verb: verb}
	switch verb {
	case domain.VerbRegister:
		if err := s.Farmer().CanRegister(); err != nil {
			return err
		}
		next, _ := s.Farmer().NextTitle()
		a.render.RegisterOffer(next)
		if ok, err := a.confirm(ctx, PromptRegister); err != nil || !ok {
			return err
		}

	case domain.VerbAdvance:
		if ok, err := a.confirm(ctx, PromptAdvance); err != nil || !ok {
			return err
		}

	case domain.VerbPlant:
		c, err := a.readCoord(ctx, s, verb)
		if err != nil {
			return err
		}
		plot, err := s.Farm().Plot(c.Row, c.Col)
		if err != nil {
			return err
		}
		if err := plot.CheckPlantable(); err != nil {
			return err
		}
		a.render.PlantOptions(s.Farmer())
		kind, ok, err := a.readCrop(ctx)
		if err != nil || !ok {
			return err
		}
		cmd.Coord, cmd.Crop = c, kind

	default:
		c, err := a.readCoord(ctx, s, verb)
		if err != nil {
			return err
		}
		cmd.Coord = c
	}

	res, err := s.Execute(ctx, cmd)
	if err != nil {
		return err
	}
	a.render.Result(res)

	if verb == domain.VerbHarvest {
		a.render.Prompt(TextContinue)
		if _, err := a.readLine(ctx); err != nil {
			return err
		}
	}
	return nil
}

// readCoord asks until the player names a plot on the farm. Non-numeric tokens
// are skipped, so "row 2 col 3" works.
func (a *App) readCoord(ctx context.Context, s *game.Session, verb domain.Verb) (domain.Coord, error) {
	fm := s.Farm()
	a.render.Prompt(PromptPlot, verb)
	for {
		input, err := a.readLine(ctx)
		if err != nil {
			return domain.Coord{}, err
		}

		nums := parseInts(input)
		switch {
		case len(nums) < 2:
			a.render.Message(MsgInvalidInput)
		case !fm.IsValid(nums[0], nums[1]):
			a.render.Message(MsgInvalidCoordinates, fm.Rows()-1, fm.Cols()-1)
		default:
			return domain.Coord{Row: nums[0], Col: nums[1]}, nil
		}
		a.render.Marker()
	}
}

// readCrop asks until the player picks a crop. ok is false when they exit the menu.
func (a *App) readCrop(ctx context.Context) (domain.CropKind, bool, error) {
	for {
		a.render.Prompt(PromptCrop)
		input, err := a.readLine(ctx)
		if err != nil {
			return 0, false, err
		}
		if exitTokens[normalize(input)] {
			return 0, false, nil
		}
		kind, err := a.resolver.ResolveCrop(input)
		if err != nil {
			a.render.Error(err)
			continue
		}
		return kind, true, nil
	}
}

func (a *App) confirm(ctx context.Context, prompt string) (bool, error) {
	a.render.Prompt("%s", prompt)
	letter, err := a.readLetter(ctx)
	if err != nil {
		return false, err
	}
	return letter == "y", nil
}

// readLetter returns the lowercased first letter of the next line
func (a *App) readLetter(ctx context.Context) (string, error) {
	input, err := a.readLine(ctx)
	if err != nil {
		return "", err
	}
	input = normalize(input)
	if input == "" {
		return "", nil
	}
	return input[:1], nil
}

func (a *App) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !a.in.Scan() {
		if err := a.in.Err(); err != nil {
			logger.FromContext(ctx).Error(LogMsgInputFailed, "error", err)
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(a.in.Text()), nil
}

func parseInts(input string) []int {
	var nums []int
	for _, tok := range strings.Fields(input) {
		if n, err := strconv.Atoi(tok); err == nil {
			nums = append(nums, n)
		}
	}
	return nums
}

func isInputClosed(ctx context.Context, err error) bool {
	return errors.Is(err, io.EOF) || ctx.Err() != nil
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
