// Package standings computes per-competitor win and point totals from recorded sets.
package standings

import (
	"cmp"
	"slices"

	"github.com/mauv0809/courtchart/internal/format"
	"github.com/mauv0809/courtchart/internal/tournament"
)

// Row is the standing of one competitor. Wins include automatic wins.
type Row struct {
	Competitor        tournament.Competitor `json:"competitor"`
	Wins              int                   `json:"wins"`
	Losses            int                   `json:"losses"`
	MatchesPlayed     int                   `json:"matches_played"`
	PointDifferential int                   `json:"point_differential"`
	AutomaticWins     int                   `json:"automatic_wins,omitempty"`
}

// Aggregate recomputes the standings from scratch, one row per competitor that
// appears in any match, ordered by seed. Sets count as matches in individual
// formats; matchups count once in pair formats.
func Aggregate(f format.Format, matches []tournament.Match, results []tournament.SetResult) ([]Row, error) {
	decisions, err := tournament.Decisions(f.Category, matches, results)
	if err != nil {
		return nil, err
	}

	rows := make(map[string]*Row)
	for _, m := range matches {
		for _, c := range slices.Concat(m.SideA, m.SideB) {
			if _, ok := rows[c.ID]; !ok {
				bonus := f.AutomaticWinsFor(c.Seed)
				rows[c.ID] = &Row{Competitor: c, Wins: bonus, AutomaticWins: bonus}
			}
		}
	}

	for _, d := range decisions {
		for _, side := range []tournament.SideIndex{tournament.SideA, tournament.SideB} {
			won, diff := d.Outcome(side)
			lost := d.Winner != tournament.NoSide && !won
			players := d.Match.SideA
			if side == tournament.SideB {
				players = d.Match.SideB
			}
			for _, c := range players {
				r := rows[c.ID]
				r.MatchesPlayed++
				r.PointDifferential += diff
				if won {
					r.Wins++
				}
				if lost {
					r.Losses++
				}
			}
		}
	}

	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, *r)
	}
	slices.SortFunc(out, func(a, b Row) int {
		if c := cmp.Compare(a.Competitor.Seed, b.Competitor.Seed); c != 0 {
			return c
		}
		return cmp.Compare(a.Competitor.ID, b.Competitor.ID)
	})
	return out, nil
}
