package game

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MyFarm_Go/internal/domain"
	"github.com/osse101/MyFarm_Go/internal/event"
	"github.com/osse101/MyFarm_Go/internal/farm"
	"github.com/osse101/MyFarm_Go/internal/farmer"
)

func newTestSession(t *testing.T, bus event.Bus, rows, cols, coins, level int) *Session {
	t.Helper()
	return NewSession(context.Background(), Options{
		ID:     "test-session",
		Farm:   farm.New(rows, cols),
		Farmer: farmer.New(coins, level),
		Bus:    bus,
		Source: fixedSource{0},
	})
}

func cmd(verb domain.Verb, row, col int) domain.Command {
	return domain.Command{Verb: verb, Coord: domain.Coord{Row: row, Col: col}}
}

func plantCmd(kind domain.CropKind, row, col int) domain.Command {
	c := cmd(domain.VerbPlant, row, col)
	c.Crop = kind
	return c
}

func mustExecute(t *testing.T, s *Session, c domain.Command) domain.ActionResult {
	t.Helper()
	res, err := s.Execute(context.Background(), c)
	require.NoError(t, err, "command %v", c.Verb)
	return res
}

func TestNewSession_Defaults(t *testing.T) {
	s := NewSession(context.Background(), Options{})

	assert.NotEmpty(t, s.ID())
	assert.Equal(t, FirstDay, s.Day())
	assert.Equal(t, farm.DefaultRows, s.Farm().Rows())
	assert.Equal(t, farm.DefaultCols, s.Farm().Cols())
	assert.False(t, s.IsOver())
}

func TestSession_TurnipScenario(t *testing.T) {
	bus := new(MockBus)
	bus.On("Publish", mock.Anything, ofType(event.CropHarvested)).Return(nil).Once()
	bus.On("Publish", mock.Anything, ofType(event.DayAdvanced)).Return(nil).Twice()
	bus.On("Publish", mock.Anything, ofType(event.ActionPerformed)).Return(nil).Times(4)

	s := newTestSession(t, bus, 2, 2, 100, 0)

	mustExecute(t, s, cmd(domain.VerbPlow, 0, 0))
	res := mustExecute(t, s, plantCmd(domain.CropTurnip, 0, 0))
	assert.Equal(t, 95, res.Coins)
	mustExecute(t, s, cmd(domain.VerbWater, 0, 0))

	res, err := s.AdvanceDay(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Day)
	mustExecute(t, s, cmd(domain.VerbAdvance, 0, 0))
	assert.Equal(t, 3, s.Day())

	res = mustExecute(t, s, cmd(domain.VerbHarvest, 0, 0))
	require.NotNil(t, res.Harvest)
	assert.Equal(t, 6, res.Harvest.Total)
	assert.Equal(t, 101, s.Farmer().Coins())
	assert.False(t, s.IsOver())

	bus.AssertExpectations(t)
}

func TestSession_RejectedCommandLeavesStateAlone(t *testing.T) {
	bus := new(MockBus)
	bus.On("Publish", mock.Anything, mock.MatchedBy(func(e event.Event) bool {
		p, ok := e.Payload.(event.ActionRejectedPayloadV1)
		return ok && e.Type == event.ActionRejected && p.ErrorCode == "not_plowed"
	})).Return(nil).Once()

	s := newTestSession(t, bus, 2, 2, 100, 0)

	_, err := s.Execute(context.Background(), plantCmd(domain.CropTurnip, 1, 1))
	require.ErrorIs(t, err, domain.ErrNotPlowed)
	assert.Equal(t, 100, s.Farmer().Coins())
	assert.Equal(t, FirstDay, s.Day())

	bus.AssertExpectations(t)
}

func TestSession_CommandValidation(t *testing.T) {
	tests := []struct {
		name    string
		cmd     domain.Command
		wantErr error
	}{
		{name: "missing verb", cmd: domain.Command{}, wantErr: domain.ErrUnknownVerb},
		{name: "unknown verb", cmd: domain.Command{Verb: "dance"}, wantErr: domain.ErrUnknownVerb},
		{name: "negative row", cmd: cmd(domain.VerbPlow, -1, 0), wantErr: domain.ErrInvalidCoordinates},
		{name: "plant without crop", cmd: cmd(domain.VerbPlant, 0, 0), wantErr: domain.ErrUnknownCrop},
		{name: "off the grid", cmd: cmd(domain.VerbWater, 9, 9), wantErr: domain.ErrInvalidCoordinates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, nil, 2, 2, 100, 0)
			_, err := s.Execute(context.Background(), tt.cmd)
			require.ErrorIs(t, err, tt.wantErr)

			kind, ok := domain.KindOf(err)
			require.True(t, ok)
			assert.Equal(t, domain.KindInput, kind)
		})
	}
}

func TestSession_GameOverAllWithered(t *testing.T) {
	bus := new(MockBus)
	bus.On("Publish", mock.Anything, mock.MatchedBy(func(e event.Event) bool {
		p, ok := e.Payload.(event.GameOverPayloadV1)
		return ok && p.Reason == string(domain.GameOverAllWithered) && p.Day == 2
	})).Return(nil).Once()
	bus.On("Publish", mock.Anything, mock.Anything).Return(nil).Maybe()

	s := newTestSession(t, bus, 1, 1, 1000, 0)
	mustExecute(t, s, cmd(domain.VerbPlow, 0, 0))
	mustExecute(t, s, plantCmd(domain.CropRose, 0, 0))

	reason, over := s.EndCheck()
	assert.False(t, over)
	assert.Equal(t, domain.GameOverNone, reason)

	_, err := s.AdvanceDay(context.Background())
	require.NoError(t, err)

	assert.True(t, s.IsOver(), "the only plot withered, coins do not matter")
	assert.Equal(t, domain.GameOverAllWithered, s.GameOverReason())

	_, err = s.Execute(context.Background(), cmd(domain.VerbShovel, 0, 0))
	assert.ErrorIs(t, err, domain.ErrGameOver)

	bus.AssertExpectations(t)
}

func TestSession_GameOverBankrupt(t *testing.T) {
	s := newTestSession(t, nil, 1, 2, 5, 0)
	mustExecute(t, s, cmd(domain.VerbPlow, 0, 0))
	mustExecute(t, s, plantCmd(domain.CropTurnip, 0, 0))
	assert.False(t, s.IsOver(), "a growing crop keeps the game alive")

	mustExecute(t, s, cmd(domain.VerbWater, 0, 0))
	_, err := s.AdvanceDay(context.Background())
	require.NoError(t, err)
	assert.False(t, s.IsOver())

	_, err = s.AdvanceDay(context.Background())
	require.NoError(t, err)
	assert.True(t, s.IsOver(), "nothing is growing toward maturity and no seed is affordable")
	assert.Equal(t, domain.GameOverBankrupt, s.GameOverReason())
}

func TestSession_CheckGameOverOnStart(t *testing.T) {
	bus := new(MockBus)
	bus.On("Publish", mock.Anything, ofType(event.GameOver)).Return(nil).Once()

	s := newTestSession(t, bus, 1, 1, 4, 0)
	assert.True(t, s.CheckGameOver(context.Background()))
	assert.True(t, s.CheckGameOver(context.Background()), "latched, published once")

	bus.AssertExpectations(t)
}

func TestSession_PublishFailureDoesNotFailCommand(t *testing.T) {
	bus := new(MockBus)
	bus.On("Publish", mock.Anything, mock.Anything).Return(errors.New("bus down"))

	s := newTestSession(t, bus, 1, 1, 100, 0)
	_, err := s.Execute(context.Background(), cmd(domain.VerbPlow, 0, 0))
	assert.NoError(t, err)
}

func TestSession_LevelUpAndRegister(t *testing.T) {
	bus := new(MockBus)
	bus.On("Publish", mock.Anything, mock.MatchedBy(func(e event.Event) bool {
		p, ok := e.Payload.(event.RegisteredPayloadV1)
		return ok && p.Title == "Registered Farmer" && p.Fee == 200
	})).Return(nil).Once()
	bus.On("Publish", mock.Anything, mock.MatchedBy(func(e event.Event) bool {
		p, ok := e.Payload.(event.LevelUpPayloadV1)
		return ok && p.OldLevel == 5 && p.NewLevel == 6
	})).Return(nil).Once()
	bus.On("Publish", mock.Anything, mock.Anything).Return(nil).Maybe()

	rocks := make([]domain.Coord, 0, 7)
	for col := 0; col < 7; col++ {
		rocks = append(rocks, domain.Coord{Row: 0, Col: col})
	}
	s := NewSession(context.Background(), Options{
		Farm:   farm.NewWithRocks(1, 7, rocks),
		Farmer: farmer.New(1000, 5),
		Bus:    bus,
	})

	res := mustExecute(t, s, domain.Command{Verb: domain.VerbRegister})
	assert.Equal(t, domain.TitleRegisteredFarmer, res.Title)
	assert.Nil(t, res.Coord)

	for col := 0; col < 7; col++ {
		mustExecute(t, s, cmd(domain.VerbPickaxe, 0, col))
	}
	assert.Equal(t, 6, s.Farmer().Level())

	bus.AssertExpectations(t)
}

func TestSession_Available(t *testing.T) {
	s := NewSession(context.Background(), Options{
		Farm:   farm.NewWithRocks(1, 2, []domain.Coord{{Row: 0, Col: 1}}),
		Farmer: farmer.New(100, 0),
	})

	assert.NoError(t, s.Available(domain.VerbPlow))
	assert.ErrorIs(t, s.Available(domain.VerbPlant), domain.ErrNoAvailablePlot)
	assert.ErrorIs(t, s.Available(domain.VerbHarvest), domain.ErrNoAvailablePlot)
	assert.NoError(t, s.Available(domain.VerbPickaxe))
	assert.NoError(t, s.Available(domain.VerbRegister))

	mustExecute(t, s, cmd(domain.VerbPlow, 0, 0))
	assert.ErrorIs(t, s.Available(domain.VerbPlow), domain.ErrNoAvailablePlot, "the other plot has a rock")
	assert.NoError(t, s.Available(domain.VerbPlant))
}

func TestSession_Snapshot(t *testing.T) {
	s := newTestSession(t, nil, 1, 2, 100, 0)
	mustExecute(t, s, cmd(domain.VerbPlow, 0, 0))
	mustExecute(t, s, plantCmd(domain.CropRose, 0, 0))
	mustExecute(t, s, cmd(domain.VerbWater, 0, 0))
	_, err := s.AdvanceDay(context.Background())
	require.NoError(t, err)

	snap := s.Snapshot()
	assert.Equal(t, 2, snap.Day)
	assert.Equal(t, 95, snap.Coins)
	assert.Equal(t, [][]rune{{'R', '0'}}, snap.Glyphs)
	assert.Equal(t, []domain.Coord{{Row: 0, Col: 0}}, snap.Harvestable)
	assert.Equal(t, "Farmer", snap.Title.Name)
	require.NotNil(t, snap.NextTitle)
	assert.Equal(t, "Registered Farmer", snap.NextTitle.Name)
	assert.False(t, snap.CanRegister)
	assert.InDelta(t, 1.0, snap.TotalExperience, 1e-9)
	assert.False(t, snap.HasRock)
	assert.Equal(t, domain.GameOverNone, snap.GameOver)
}
