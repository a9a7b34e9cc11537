package tiebreak

import (
	"fmt"
	"strings"

	"github.com/mauv0809/courtchart/internal/tournament"
)

func label(c tournament.Competitor) string {
	return fmt.Sprintf("%s (#%d)", c.DisplayName(), c.Seed)
}

func labels(cs []tournament.Competitor) string {
	if len(cs) == 0 {
		return "nobody"
	}
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = label(c)
	}
	return strings.Join(parts, ", ")
}

func (s Step) bySeeds(seeds []int) []tournament.Competitor {
	bySeed := make(map[int]tournament.Competitor, len(s.Members))
	for _, m := range s.Members {
		bySeed[m.Seed] = m
	}
	out := make([]tournament.Competitor, len(seeds))
	for i, seed := range seeds {
		out[i] = bySeed[seed]
	}
	return out
}

// lines renders the step for the reasoning trace.
func (s Step) lines() []string {
	out := []string{
		fmt.Sprintf("Tie at %d wins: %s", s.WinsLevel, labels(s.Members)),
		fmt.Sprintf("Ranked above: %s", labels(s.Above)),
	}
	for _, st := range s.Stats {
		out = append(out, fmt.Sprintf("%s: head-to-head %d W %+d pts, vs above %d W %+d pts, overall %+d pts",
			label(st.Competitor),
			st.HeadToHead.Wins, st.HeadToHead.PointDifferential,
			st.VsAbove.Wins, st.VsAbove.PointDifferential,
			st.Overall))
	}
	out = append(out, fmt.Sprintf("Computed order: %s", labels(s.bySeeds(s.Computed))))

	if s.Override != nil {
		verdict := "matches the computed order"
		if s.ManuallyResolved {
			verdict = "changes the computed order"
		}
		out = append(out,
			fmt.Sprintf("Manual override by %s (%s) %s", s.Override.ResolvedBy, s.Override.Reason, verdict),
			fmt.Sprintf("Final order: %s", labels(s.bySeeds(s.Final))),
		)
	}
	return out
}
