package tiebreak

import (
	"github.com/mauv0809/courtchart/internal/standings"
	"github.com/mauv0809/courtchart/internal/tournament"
)

// collectStats computes, per member, the record against opposing sides that
// contain another member and against opposing sides that contain a competitor
// ranked above the group. Partnering a member does not count.
func collectStats(members []standings.Row, above []tournament.Competitor, decisions []tournament.Decision) []MemberStats {
	inGroup := make(map[string]bool, len(members))
	for _, m := range members {
		inGroup[m.Competitor.ID] = true
	}
	isAbove := make(map[string]bool, len(above))
	for _, c := range above {
		isAbove[c.ID] = true
	}

	stats := make([]MemberStats, len(members))
	for i, m := range members {
		s := MemberStats{Competitor: m.Competitor, Overall: m.PointDifferential}
		for _, d := range decisions {
			side := d.SideOf(m.Competitor.ID)
			if side == tournament.NoSide {
				continue
			}
			opponents := d.Opponents(side)
			won, diff := d.Outcome(side)
			if containsAny(opponents, inGroup) {
				s.HeadToHead.add(won, diff)
			}
			if containsAny(opponents, isAbove) {
				s.VsAbove.add(won, diff)
			}
		}
		stats[i] = s
	}
	return stats
}

func containsAny(side tournament.Side, ids map[string]bool) bool {
	for _, c := range side {
		if ids[c.ID] {
			return true
		}
	}
	return false
}
