// Package schedule turns a format's matchup table into concrete matches.
package schedule

import (
	"errors"
	"fmt"

	"github.com/mauv0809/courtchart/internal/format"
	"github.com/mauv0809/courtchart/internal/tournament"
)

var (
	ErrCompetitorCountMismatch = errors.New("competitor count does not match format")
	ErrInvalidSeeding          = errors.New("competitors are not seeded 1..n in order")
)

// Generate substitutes the competitors into the format's table, one match per entry.
// Competitors must be ordered by seed, seed 1 first.
func Generate(f format.Format, competitors []tournament.Competitor) ([]tournament.Match, error) {
	if len(competitors) != f.RequiredCount {
		return nil, fmt.Errorf("%w: %s needs %d competitors, got %d", ErrCompetitorCountMismatch, f.ID, f.RequiredCount, len(competitors))
	}
	ids := make(map[string]bool, len(competitors))
	for i, c := range competitors {
		if c.Seed != i+1 {
			return nil, fmt.Errorf("%w: position %d has seed %d", ErrInvalidSeeding, i+1, c.Seed)
		}
		if c.ID == "" || ids[c.ID] {
			return nil, fmt.Errorf("%w: seed %d has a missing or duplicate id %q", ErrInvalidSeeding, c.Seed, c.ID)
		}
		ids[c.ID] = true
	}

	matches := make([]tournament.Match, 0, len(f.Table))
	for _, e := range f.Table {
		matches = append(matches, tournament.Match{
			ID:    tournament.MatchID(e.Round, e.Court),
			Round: e.Round,
			Court: e.Court,
			SideA: side(competitors, e.SideA),
			SideB: side(competitors, e.SideB),
		})
	}
	return matches, nil
}

// GenerateByID looks the format up in the catalog before generating.
func GenerateByID(catalog *format.Catalog, id string, competitors []tournament.Competitor) (format.Format, []tournament.Match, error) {
	f, err := catalog.Lookup(id)
	if err != nil {
		return format.Format{}, nil, err
	}
	matches, err := Generate(f, competitors)
	if err != nil {
		return format.Format{}, nil, err
	}
	return f, matches, nil
}

func side(competitors []tournament.Competitor, seeds []int) tournament.Side {
	s := make(tournament.Side, len(seeds))
	for i, seed := range seeds {
		s[i] = competitors[seed-1]
	}
	return s
}
