package tournament

import "fmt"

// Category distinguishes formats played by individual players from formats played by fixed pairs.
type Category string

const (
	// CategoryIndividual is used by Monarch of the Court formats. Each set counts as one match.
	CategoryIndividual Category = "INDIVIDUAL"
	// CategoryPair is used by the Swedish pair formats. Each matchup counts once.
	CategoryPair Category = "PAIR"
)

// Competitor is a player in individual formats or a pair in pair formats.
// Seed 1 is the top of the ranking.
type Competitor struct {
	ID   string `json:"id" yaml:"id" msgpack:"id"`
	Name string `json:"name,omitempty" yaml:"name,omitempty" msgpack:"name"`
	Seed int    `json:"seed" yaml:"seed" msgpack:"seed"`
}

// DisplayName returns the name when set, the id otherwise.
func (c Competitor) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.ID
}

// Side is one side of a match: one or two competitors.
type Side []Competitor

// Contains reports whether the competitor id plays on this side.
func (s Side) Contains(id string) bool {
	for _, c := range s {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Seeds returns the seeds on this side in table order.
func (s Side) Seeds() []int {
	seeds := make([]int, len(s))
	for i, c := range s {
		seeds[i] = c.Seed
	}
	return seeds
}

// Match is a single (round, court) assignment produced by the schedule generator.
type Match struct {
	ID    string `json:"id" yaml:"id" msgpack:"id"`
	Round int    `json:"round" yaml:"round" msgpack:"round"`
	Court int    `json:"court" yaml:"court" msgpack:"court"`
	SideA Side   `json:"side_a" yaml:"side_a" msgpack:"side_a"`
	SideB Side   `json:"side_b" yaml:"side_b" msgpack:"side_b"`
}

// MatchID builds the match reference used by set results.
func MatchID(round, court int) string {
	return fmt.Sprintf("r%d-c%d", round, court)
}

// SideIndex identifies a side of a match.
type SideIndex int

const (
	NoSide SideIndex = iota
	SideA
	SideB
)

func (s SideIndex) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	default:
		return "-"
	}
}

// SetResult is the raw score of one set of a match. The winner and the point
// differential are always derived from the scores.
type SetResult struct {
	MatchID   string `json:"match_id" yaml:"match_id" msgpack:"match_id"`
	SetNumber int    `json:"set_number" yaml:"set_number" msgpack:"set_number"`
	ScoreA    int    `json:"score_a" yaml:"score_a" msgpack:"score_a"`
	ScoreB    int    `json:"score_b" yaml:"score_b" msgpack:"score_b"`
}

// Winner returns the side with the higher score.
func (r SetResult) Winner() SideIndex {
	switch {
	case r.ScoreA > r.ScoreB:
		return SideA
	case r.ScoreB > r.ScoreA:
		return SideB
	default:
		return NoSide
	}
}

// Differential is ScoreA - ScoreB.
func (r SetResult) Differential() int {
	return r.ScoreA - r.ScoreB
}

// Validate checks the raw scores.
func (r SetResult) Validate() error {
	if r.SetNumber < 1 {
		return fmt.Errorf("%w: match %s has set number %d", ErrInconsistentSetResult, r.MatchID, r.SetNumber)
	}
	if r.ScoreA < 0 || r.ScoreB < 0 {
		return fmt.Errorf("%w: match %s set %d has a negative score", ErrInconsistentSetResult, r.MatchID, r.SetNumber)
	}
	if r.ScoreA == r.ScoreB {
		return fmt.Errorf("%w: match %s set %d is drawn %d-%d", ErrInconsistentSetResult, r.MatchID, r.SetNumber, r.ScoreA, r.ScoreB)
	}
	return nil
}
