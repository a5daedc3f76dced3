package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/MyFarm_Go/internal/config"
	"github.com/osse101/MyFarm_Go/internal/event"
	"github.com/osse101/MyFarm_Go/internal/farm"
	"github.com/osse101/MyFarm_Go/internal/farmer"
	"github.com/osse101/MyFarm_Go/internal/game"
	"github.com/osse101/MyFarm_Go/internal/utils"
)

// GameFactory starts a fresh game session
type GameFactory func(ctx context.Context) (*game.Session, error)

// NewGameFactory returns a factory that builds sessions from cfg. Every session
// shares one random source, so a seeded run is reproducible across new games
// while successive games still differ.
func NewGameFactory(cfg *config.Config, bus event.Bus) GameFactory {
	src := utils.DefaultSource()
	if cfg.RandomSeed != 0 {
		src = utils.NewSeededSource(cfg.RandomSeed)
	}

	return func(ctx context.Context) (*game.Session, error) {
		layout, err := BuildLayout(cfg, src)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedLayout, err)
		}

		return game.NewSession(ctx, game.Options{
			Farm:   layout.Build(),
			Farmer: farmer.New(cfg.StartingCoins, cfg.StartingLevel),
			Bus:    bus,
			Source: src,
		}), nil
	}
}

// BuildLayout loads cfg.FarmLayoutFile when set, otherwise scatters cfg.RockCount
// rocks on a FarmRows x FarmCols grid.
func BuildLayout(cfg *config.Config, src utils.IntSource) (*farm.Layout, error) {
	if cfg.FarmLayoutFile != "" {
		layout, err := farm.LoadLayout(cfg.FarmLayoutFile)
		if err != nil {
			return nil, err
		}
		slog.Debug(LogMsgLayoutLoaded, "file", cfg.FarmLayoutFile, "rows", layout.Rows, "cols", layout.Cols, "rocks", len(layout.Rocks))
		return layout, nil
	}

	layout, err := farm.RandomLayout(cfg.FarmRows, cfg.FarmCols, cfg.RockCount, src)
	if err != nil {
		return nil, err
	}
	slog.Debug(LogMsgLayoutGenerated, "rows", layout.Rows, "cols", layout.Cols, "rocks", len(layout.Rocks))
	return layout, nil
}
