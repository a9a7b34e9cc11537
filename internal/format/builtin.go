package format

import (
	"fmt"

	"github.com/mauv0809/courtchart/internal/tournament"
)

// MonarchID returns the id of the Monarch of the Court format for n players.
func MonarchID(n int) string {
	return fmt.Sprintf("moc-%d", n)
}

// PairsID returns the id of the Swedish pairs format for n pairs.
func PairsID(n int) string {
	return fmt.Sprintf("pairs-%d", n)
}

// seeds 1 and 2 are compensated for never partnering each other
var topSeedBonus = map[int]int{1: 1, 2: 1}

func monarch(n, rounds, courts int, table []Entry, bonus map[int]int, notes string) Format {
	return Format{
		ID:            MonarchID(n),
		Name:          fmt.Sprintf("%d-player Monarch of the Court", n),
		Category:      tournament.CategoryIndividual,
		RequiredCount: n,
		RoundCount:    rounds,
		CourtCount:    courts,
		Table:         table,
		AutomaticWins: bonus,
		Notes:         notes,
	}
}

func pairs(n, rounds, courts int, table []Entry, notes string) Format {
	return Format{
		ID:            PairsID(n),
		Name:          fmt.Sprintf("%d pairs doubles tournament", n),
		Category:      tournament.CategoryPair,
		RequiredCount: n,
		RoundCount:    rounds,
		CourtCount:    courts,
		Table:         table,
		Notes:         notes,
	}
}

// Notes carry each schedule's seed-balance analysis.
const (
	notesMonarch5 = "Three format options available (Simple, Double Your Fun, Full Permutation).\n" +
		"Because Option A contains all the even-matchup possibilities, some pairings are repeated in Options B & C."
	notesMonarch6 = "Two options: Option A has pair 4&6 eliminated (one game missing), Option B has pairs 1&3, 2&5, and 4&6 eliminated.\n" +
		"The law of averages shows seeds #3 and #4 to be even, with seed #1 above seed #2, and seed #6 below seed #5.\n" +
		"All seeds lose at least once in the full permutation of possible matchups."
	notesTopPairOut = "One pair is eliminated to make the format come out evenly: pair 1&2.\n" +
		"The analysis assigns them a free win (W*) to compensate."
	notesMonarch8 = "Everyone plays against everyone else exactly twice, and with everyone else exactly once!\n\n" +
		"Analysis: Pair 1&2's power is mitigated by matching them against pair 7&8 in round 3."
	notesMonarch9 = "Check out the symmetry in the analysis!\n" +
		"Rounds 1 and 10 contain only one game."
	notesMonarch11 = notesTopPairOut + "\n\n" +
		"Seeds 1 & 2 receive one automatic win each to balance the fact they play one fewer match than other players."
	notesMonarch12 = "12-player format with 3 courts.\n" +
		"Analysis shows good balance with seed #1 having net 3 wins down to seed #12 with net 3 losses."
	notesMonarch13 = "Check out the great symmetry in the analysis!\n" +
		"All players get excellent balance with seeds #1-4 each having net 2 wins, through to seeds #10-13 each having net 2 losses."
	notesMonarch15 = "One pair, 1&2, is eliminated. The analysis assigns them a free win (W*).\n" +
		"The first round contains only one match.\n\n" +
		"Alternative: Can combine formats into pools (e.g., three 5-player formats, or one 7-player and one 8-player format)."
	notesMonarch16 = "Each player gets to play against most of the other players, more than utilizing two pools where half advance, " +
		"and with many more closely matched games.\n\n" +
		"Round 10 serves as a break for most players; only 1 match is in play."
)

func builtin() []Format {
	return []Format{
		monarch(5, 5, 1, monarch5, nil, notesMonarch5),
		monarch(6, 7, 1, monarch6, nil, notesMonarch6),
		monarch(7, 10, 1, monarch7, topSeedBonus, notesTopPairOut),
		monarch(8, 7, 2, monarch8, nil, notesMonarch8),
		monarch(9, 10, 2, monarch9, nil, notesMonarch9),
		monarch(10, 11, 2, monarch10, topSeedBonus, notesTopPairOut),
		monarch(11, 14, 2, monarch11, topSeedBonus, notesMonarch11),
		monarch(12, 11, 3, monarch12, nil, notesMonarch12),
		monarch(13, 13, 3, monarch13, nil, notesMonarch13),
		monarch(14, 15, 3, monarch14, topSeedBonus, notesTopPairOut),
		monarch(15, 18, 3, monarch15, topSeedBonus, notesMonarch15),
		monarch(16, 11, 4, monarch16, nil, notesMonarch16),

		pairs(2, 1, 1, swedishPairs2, "One best-of-5 matchup."),
		pairs(3, 3, 1, swedishPairs3, ""),
		pairs(4, 3, 2, swedishPairs4, ""),
		pairs(5, 5, 2, swedishPairs5, ""),
		pairs(6, 5, 3, swedishPairs6, ""),
		pairs(7, 7, 3, swedishPairs7, ""),
		pairs(8, 7, 4, swedishPairs8, ""),
		pairs(9, 9, 4, swedishPairs9, ""),
		pairs(10, 9, 5, swedishPairs10, ""),
	}
}
