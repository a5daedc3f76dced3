package game

import (
	"github.com/osse101/MyFarm_Go/internal/domain"
)

// Snapshot is a read-only view of the session for rendering
type Snapshot struct {
	Day             int
	Coins           int
	Level           int
	Experience      float64
	TotalExperience float64
	Title           domain.TitleSpec
	NextTitle       *domain.TitleSpec
	CanRegister     bool
	Glyphs          [][]rune
	Harvestable     []domain.Coord
	HasRock         bool
	GameOver        domain.GameOverReason
}

// Snapshot captures the current state
func (s *Session) Snapshot() Snapshot {
	f := s.farmer
	snap := Snapshot{
		Day:             s.day,
		Coins:           f.Coins(),
		Level:           f.Level(),
		Experience:      f.Experience(),
		TotalExperience: f.TotalExperience(),
		Title:           f.Bonus(),
		CanRegister:     f.CanRegister() == nil,
		Glyphs:          s.farm.Glyphs(s.day),
		Harvestable:     s.farm.Harvestable(s.day),
		HasRock:         s.farm.AnyRock(),
		GameOver:        s.reason,
	}
	if next, ok := f.NextTitle(); ok {
		snap.NextTitle = &next
	}
	return snap
}
