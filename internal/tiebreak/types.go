package tiebreak

import (
	"errors"

	"github.com/mauv0809/courtchart/internal/override"
	"github.com/mauv0809/courtchart/internal/standings"
	"github.com/mauv0809/courtchart/internal/tournament"
)

// ErrInvalidStandings is returned when two rows share a seed or a competitor.
var ErrInvalidStandings = errors.New("invalid standings")

// Standing is a row in its final position.
type Standing struct {
	standings.Row
	Position         int    `json:"position"`
	ManuallyResolved bool   `json:"manually_resolved"`
	OverrideReason   string `json:"override_reason,omitempty"`
}

// Stats are the wins and signed point differential over a subset of decisions.
type Stats struct {
	Wins              int `json:"wins"`
	PointDifferential int `json:"point_differential"`
}

func (s *Stats) add(won bool, diff int) {
	if won {
		s.Wins++
	}
	s.PointDifferential += diff
}

// MemberStats holds the criteria used to order one member of a tie group.
type MemberStats struct {
	Competitor tournament.Competitor `json:"competitor"`
	HeadToHead Stats                 `json:"head_to_head"`
	VsAbove    Stats                 `json:"vs_above"`
	Overall    int                   `json:"overall_point_differential"`
}

// Step records how one tie group was resolved.
type Step struct {
	WinsLevel        int                      `json:"wins_level"`
	Members          []tournament.Competitor  `json:"members"`
	Above            []tournament.Competitor  `json:"above"`
	Stats            []MemberStats            `json:"stats"`
	Computed         []int                    `json:"computed_order"`
	Final            []int                    `json:"final_order"`
	Override         *override.ManualOverride `json:"override,omitempty"`
	ManuallyResolved bool                     `json:"manually_resolved"`
}

// Resolution is the final order together with how it was reached.
type Resolution struct {
	Standings []Standing `json:"standings"`
	Steps     []Step     `json:"steps"`
	Trace     []string   `json:"trace"`
}

// Rows returns the standings rows in final order.
func (r *Resolution) Rows() []standings.Row {
	rows := make([]standings.Row, len(r.Standings))
	for i, s := range r.Standings {
		rows[i] = s.Row
	}
	return rows
}
