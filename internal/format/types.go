package format

import (
	"fmt"
	"maps"
	"slices"

	"github.com/mauv0809/courtchart/internal/tournament"
)

// Entry is one row of a matchup table. Sides reference competitors by seed.
type Entry struct {
	Round int   `json:"round" yaml:"round"`
	Court int   `json:"court" yaml:"court"`
	SideA []int `json:"side_a" yaml:"side_a"`
	SideB []int `json:"side_b" yaml:"side_b"`
}

func doubles(round, court, a1, a2, b1, b2 int) Entry {
	return Entry{Round: round, Court: court, SideA: []int{a1, a2}, SideB: []int{b1, b2}}
}

func singles(round, court, a, b int) Entry {
	return Entry{Round: round, Court: court, SideA: []int{a}, SideB: []int{b}}
}

// Format is the fixed structure of a tournament for exactly one competitor count.
type Format struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Category      tournament.Category `json:"category"`
	RequiredCount int                 `json:"required_count"`
	RoundCount    int                 `json:"round_count"`
	CourtCount    int                 `json:"court_count"`
	Table         []Entry             `json:"table"`
	// AutomaticWins maps a seed to the number of wins it is credited without playing.
	AutomaticWins map[int]int `json:"automatic_wins,omitempty"`
	Notes         string      `json:"notes,omitempty"`
}

// SideSize returns the number of seeds on each side of a match.
func (f Format) SideSize() int {
	if f.Category == tournament.CategoryPair {
		return 1
	}
	return 2
}

// Rounds returns the number of rounds played by n competitors.
func (f Format) Rounds(n int) (int, error) {
	if err := f.checkCount(n); err != nil {
		return 0, err
	}
	return f.RoundCount, nil
}

// Courts returns the number of courts needed by n competitors.
func (f Format) Courts(n int) (int, error) {
	if err := f.checkCount(n); err != nil {
		return 0, err
	}
	return f.CourtCount, nil
}

// AutomaticWinsFor returns the bonus wins credited to a seed.
func (f Format) AutomaticWinsFor(seed int) int {
	return f.AutomaticWins[seed]
}

func (f Format) checkCount(n int) error {
	if n != f.RequiredCount {
		return fmt.Errorf("%w: %s supports %d competitors, got %d", ErrInvalidCompetitorCount, f.ID, f.RequiredCount, n)
	}
	return nil
}

// Validate checks the structural invariants of the matchup table.
func (f Format) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidFormat)
	}
	if _, err := tournament.RuleFor(f.Category); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidFormat, f.ID, err)
	}
	if f.RequiredCount < 2 || f.RoundCount < 1 || f.CourtCount < 1 {
		return fmt.Errorf("%w: %s has non-positive dimensions", ErrInvalidFormat, f.ID)
	}
	if len(f.Table) == 0 {
		return fmt.Errorf("%w: %s has an empty table", ErrInvalidFormat, f.ID)
	}

	type slot struct{ round, court int }
	slots := make(map[slot]bool, len(f.Table))
	booked := make(map[int]map[int]bool)
	for _, e := range f.Table {
		if e.Round < 1 || e.Round > f.RoundCount || e.Court < 1 || e.Court > f.CourtCount {
			return fmt.Errorf("%w: %s has entry at round %d court %d outside %dx%d", ErrInvalidFormat, f.ID, e.Round, e.Court, f.RoundCount, f.CourtCount)
		}
		key := slot{e.Round, e.Court}
		if slots[key] {
			return fmt.Errorf("%w: %s schedules round %d court %d twice", ErrInvalidFormat, f.ID, e.Round, e.Court)
		}
		slots[key] = true

		if len(e.SideA) != f.SideSize() || len(e.SideB) != f.SideSize() {
			return fmt.Errorf("%w: %s round %d court %d has sides of %d and %d seeds", ErrInvalidFormat, f.ID, e.Round, e.Court, len(e.SideA), len(e.SideB))
		}
		if booked[e.Round] == nil {
			booked[e.Round] = make(map[int]bool)
		}
		for _, seed := range slices.Concat(e.SideA, e.SideB) {
			if seed < 1 || seed > f.RequiredCount {
				return fmt.Errorf("%w: %s references seed %d outside 1..%d", ErrInvalidFormat, f.ID, seed, f.RequiredCount)
			}
			if booked[e.Round][seed] {
				return fmt.Errorf("%w: %s books seed %d twice in round %d", ErrInvalidFormat, f.ID, seed, e.Round)
			}
			booked[e.Round][seed] = true
		}
	}

	for seed, bonus := range f.AutomaticWins {
		if seed < 1 || seed > f.RequiredCount || bonus < 1 {
			return fmt.Errorf("%w: %s grants %d automatic wins to seed %d", ErrInvalidFormat, f.ID, bonus, seed)
		}
	}
	return nil
}

// clone returns a deep copy so registry entries never leak mutable state.
func (f Format) clone() Format {
	out := f
	out.Table = make([]Entry, len(f.Table))
	for i, e := range f.Table {
		out.Table[i] = Entry{
			Round: e.Round,
			Court: e.Court,
			SideA: slices.Clone(e.SideA),
			SideB: slices.Clone(e.SideB),
		}
	}
	if f.AutomaticWins != nil {
		out.AutomaticWins = maps.Clone(f.AutomaticWins)
	}
	return out
}
