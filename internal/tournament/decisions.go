package tournament

import (
	"cmp"
	"fmt"
	"slices"
)

// Decision is one counted unit of play: a set in individual formats, a whole
// matchup in pair formats.
type Decision struct {
	Match  Match
	Winner SideIndex
	// DiffA is the point differential from side A's perspective.
	DiffA int
}

// Outcome returns whether the given side won the decision and its signed differential.
func (d Decision) Outcome(side SideIndex) (won bool, diff int) {
	switch side {
	case SideA:
		return d.Winner == SideA, d.DiffA
	case SideB:
		return d.Winner == SideB, -d.DiffA
	default:
		return false, 0
	}
}

// SideOf returns the side the competitor plays on, or NoSide.
func (d Decision) SideOf(id string) SideIndex {
	switch {
	case d.Match.SideA.Contains(id):
		return SideA
	case d.Match.SideB.Contains(id):
		return SideB
	default:
		return NoSide
	}
}

// Opponents returns the side opposing the given side.
func (d Decision) Opponents(side SideIndex) Side {
	switch side {
	case SideA:
		return d.Match.SideB
	case SideB:
		return d.Match.SideA
	default:
		return nil
	}
}

// CountingRule turns the recorded sets of one match into counted decisions.
type CountingRule interface {
	Decide(match Match, sets []SetResult) []Decision
}

// RuleFor returns the counting rule for a format category.
func RuleFor(category Category) (CountingRule, error) {
	switch category {
	case CategoryIndividual:
		return setRule{}, nil
	case CategoryPair:
		return matchupRule{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
}

// setRule counts every set as an independent match.
type setRule struct{}

func (setRule) Decide(match Match, sets []SetResult) []Decision {
	decisions := make([]Decision, 0, len(sets))
	for _, s := range sets {
		decisions = append(decisions, Decision{
			Match:  match,
			Winner: s.Winner(),
			DiffA:  s.Differential(),
		})
	}
	return decisions
}

// matchupRule counts the whole matchup once, won by the side taking more sets.
type matchupRule struct{}

func (matchupRule) Decide(match Match, sets []SetResult) []Decision {
	if len(sets) == 0 {
		return nil
	}
	var setsA, setsB, diff int
	for _, s := range sets {
		switch s.Winner() {
		case SideA:
			setsA++
		case SideB:
			setsB++
		}
		diff += s.Differential()
	}

	winner := NoSide
	switch {
	case setsA > setsB:
		winner = SideA
	case setsB > setsA:
		winner = SideB
	case diff > 0:
		winner = SideA
	case diff < 0:
		winner = SideB
	}
	return []Decision{{Match: match, Winner: winner, DiffA: diff}}
}

// Decisions validates the set results against the matches and groups them into
// counted decisions using the category's counting rule. The output is ordered by
// (round, court, set number) whatever the order of the inputs.
func Decisions(category Category, matches []Match, results []SetResult) ([]Decision, error) {
	rule, err := RuleFor(category)
	if err != nil {
		return nil, err
	}

	type slot struct{ round, court int }
	byID := make(map[string]Match, len(matches))
	slots := make(map[slot]string, len(matches))
	for _, m := range matches {
		if _, ok := byID[m.ID]; ok {
			return nil, fmt.Errorf("%w: match %s is listed twice", ErrInconsistentSetResult, m.ID)
		}
		if other, ok := slots[slot{m.Round, m.Court}]; ok {
			return nil, fmt.Errorf("%w: matches %s and %s share round %d court %d", ErrInconsistentSetResult, other, m.ID, m.Round, m.Court)
		}
		byID[m.ID] = m
		slots[slot{m.Round, m.Court}] = m.ID
	}

	sets := make(map[string][]SetResult)
	seen := make(map[string]map[int]bool)
	for _, r := range results {
		if _, ok := byID[r.MatchID]; !ok {
			return nil, fmt.Errorf("%w: set %d refers to unknown match %q", ErrInconsistentSetResult, r.SetNumber, r.MatchID)
		}
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if seen[r.MatchID] == nil {
			seen[r.MatchID] = make(map[int]bool)
		}
		if seen[r.MatchID][r.SetNumber] {
			return nil, fmt.Errorf("%w: match %s has set %d recorded twice", ErrInconsistentSetResult, r.MatchID, r.SetNumber)
		}
		seen[r.MatchID][r.SetNumber] = true
		sets[r.MatchID] = append(sets[r.MatchID], r)
	}

	ordered := slices.Clone(matches)
	slices.SortFunc(ordered, func(a, b Match) int {
		if c := cmp.Compare(a.Round, b.Round); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Court, b.Court); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	var decisions []Decision
	for _, m := range ordered {
		matchSets := sets[m.ID]
		slices.SortFunc(matchSets, func(a, b SetResult) int {
			return cmp.Compare(a.SetNumber, b.SetNumber)
		})
		decisions = append(decisions, rule.Decide(m, matchSets)...)
	}
	return decisions, nil
}
