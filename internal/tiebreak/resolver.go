// Package tiebreak orders competitors that finish on the same number of wins.
//
// Rows are sorted by wins and point differential. Each maximal run of rows with
// equal wins is a tie group, ordered by head-to-head wins, head-to-head points,
// wins against the competitors ranked above the group, points against them, and
// finally overall point differential. A manual override replaces the computed
// order of the group at its wins level.
package tiebreak

import (
	"cmp"
	"fmt"
	"maps"
	"slices"

	"github.com/mauv0809/courtchart/internal/override"
	"github.com/mauv0809/courtchart/internal/standings"
	"github.com/mauv0809/courtchart/internal/tournament"
)

type tieGroup struct {
	wins       int
	start, end int
}

// Resolve returns the final order of the rows. Head-to-head and vs-above stats
// count the same unit as the standings: sets in individual formats, matchups in
// pair formats. Nothing is returned on error.
func Resolve(category tournament.Category, rows []standings.Row, matches []tournament.Match, results []tournament.SetResult, overrides []override.ManualOverride) (*Resolution, error) {
	if err := checkRows(rows); err != nil {
		return nil, err
	}
	byLevel, err := indexOverrides(overrides)
	if err != nil {
		return nil, err
	}
	decisions, err := tournament.Decisions(category, matches, results)
	if err != nil {
		return nil, err
	}

	working := baseline(rows)
	groups := findTieGroups(working)

	res := &Resolution{}
	if len(groups) == 0 {
		res.Trace = append(res.Trace, "No ties: the order follows wins and point differential.")
	}

	type mark struct {
		manual bool
		reason string
	}
	marks := make(map[int]mark)
	applied := make(map[int]bool)
	for _, g := range groups {
		members := slices.Clone(working[g.start:g.end])
		above := make([]tournament.Competitor, g.start)
		for i, r := range working[:g.start] {
			above[i] = r.Competitor
		}

		stats := collectStats(members, above, decisions)
		computed := rank(stats)

		step := Step{
			WinsLevel: g.wins,
			Members:   competitors(members),
			Above:     above,
			Stats:     stats,
			Computed:  computed,
			Final:     computed,
		}

		if o, ok := byLevel[g.wins]; ok {
			applied[g.wins] = true
			if err := checkPermutation(o, computed); err != nil {
				return nil, err
			}
			step.Override = &o
			step.Final = slices.Clone(o.ResolvedOrder)
			step.ManuallyResolved = !slices.Equal(step.Final, computed)
			for _, seed := range step.Final {
				marks[seed] = mark{manual: step.ManuallyResolved, reason: o.Reason}
			}
		}

		bySeed := make(map[int]standings.Row, len(members))
		for _, m := range members {
			bySeed[m.Competitor.Seed] = m
		}
		for i, seed := range step.Final {
			working[g.start+i] = bySeed[seed]
		}

		res.Steps = append(res.Steps, step)
		res.Trace = append(res.Trace, step.lines()...)
	}

	for _, level := range slices.Backward(slices.Sorted(maps.Keys(byLevel))) {
		if !applied[level] {
			res.Trace = append(res.Trace, fmt.Sprintf("Override for %d wins ignored: no tie at that level.", level))
		}
	}

	res.Standings = make([]Standing, len(working))
	for i, r := range working {
		m := marks[r.Competitor.Seed]
		res.Standings[i] = Standing{
			Row:              r,
			Position:         i + 1,
			ManuallyResolved: m.manual,
			OverrideReason:   m.reason,
		}
	}
	return res, nil
}

func checkRows(rows []standings.Row) error {
	seeds := make(map[int]bool, len(rows))
	ids := make(map[string]bool, len(rows))
	for _, r := range rows {
		if r.Competitor.Seed < 1 {
			return fmt.Errorf("%w: %s has seed %d", ErrInvalidStandings, r.Competitor.ID, r.Competitor.Seed)
		}
		if seeds[r.Competitor.Seed] {
			return fmt.Errorf("%w: seed %d appears twice", ErrInvalidStandings, r.Competitor.Seed)
		}
		if ids[r.Competitor.ID] {
			return fmt.Errorf("%w: competitor %s appears twice", ErrInvalidStandings, r.Competitor.ID)
		}
		seeds[r.Competitor.Seed] = true
		ids[r.Competitor.ID] = true
	}
	return nil
}

func indexOverrides(overrides []override.ManualOverride) (map[int]override.ManualOverride, error) {
	byLevel := make(map[int]override.ManualOverride, len(overrides))
	for _, o := range overrides {
		if _, dup := byLevel[o.WinsLevel]; dup {
			return nil, fmt.Errorf("%w: two overrides for %d wins", override.ErrInvalidOverride, o.WinsLevel)
		}
		byLevel[o.WinsLevel] = o
	}
	return byLevel, nil
}

func checkPermutation(o override.ManualOverride, groupSeeds []int) error {
	want := slices.Sorted(slices.Values(groupSeeds))
	got := slices.Sorted(slices.Values(o.ResolvedOrder))
	if !slices.Equal(want, got) {
		return fmt.Errorf("%w: order %v for %d wins is not a permutation of the tied seeds %v", override.ErrInvalidOverride, o.ResolvedOrder, o.WinsLevel, want)
	}
	return nil
}

// baseline sorts by wins, then point differential, then seed.
func baseline(rows []standings.Row) []standings.Row {
	out := slices.Clone(rows)
	slices.SortFunc(out, func(a, b standings.Row) int {
		if c := cmp.Compare(b.Wins, a.Wins); c != 0 {
			return c
		}
		if c := cmp.Compare(b.PointDifferential, a.PointDifferential); c != 0 {
			return c
		}
		return cmp.Compare(a.Competitor.Seed, b.Competitor.Seed)
	})
	return out
}

func findTieGroups(sorted []standings.Row) []tieGroup {
	var groups []tieGroup
	for start := 0; start < len(sorted); {
		end := start + 1
		for end < len(sorted) && sorted[end].Wins == sorted[start].Wins {
			end++
		}
		if end-start >= 2 {
			groups = append(groups, tieGroup{wins: sorted[start].Wins, start: start, end: end})
		}
		start = end
	}
	return groups
}

// rank orders the members by the tiebreak criteria and returns their seeds.
// Stats arrive in baseline order, so exact ties keep it.
func rank(stats []MemberStats) []int {
	ordered := slices.Clone(stats)
	slices.SortStableFunc(ordered, func(a, b MemberStats) int {
		return cmp.Or(
			cmp.Compare(b.HeadToHead.Wins, a.HeadToHead.Wins),
			cmp.Compare(b.HeadToHead.PointDifferential, a.HeadToHead.PointDifferential),
			cmp.Compare(b.VsAbove.Wins, a.VsAbove.Wins),
			cmp.Compare(b.VsAbove.PointDifferential, a.VsAbove.PointDifferential),
			cmp.Compare(b.Overall, a.Overall),
		)
	})
	seeds := make([]int, len(ordered))
	for i, s := range ordered {
		seeds[i] = s.Competitor.Seed
	}
	return seeds
}

func competitors(rows []standings.Row) []tournament.Competitor {
	out := make([]tournament.Competitor, len(rows))
	for i, r := range rows {
		out[i] = r.Competitor
	}
	return out
}
