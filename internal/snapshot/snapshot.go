// Package snapshot reads the tournament state handed to the service or CLI.
package snapshot

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/mauv0809/courtchart/internal/format"
	"github.com/mauv0809/courtchart/internal/override"
	"github.com/mauv0809/courtchart/internal/tournament"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSnapshot = errors.New("invalid snapshot")

// Snapshot is the current state of one tournament. Matches may be omitted, in
// which case they are generated from the format.
type Snapshot struct {
	TournamentID string                    `json:"tournament_id" yaml:"tournament_id"`
	FormatID     string                    `json:"format" yaml:"format"`
	Competitors  []tournament.Competitor   `json:"competitors" yaml:"competitors"`
	Matches      []tournament.Match        `json:"matches,omitempty" yaml:"matches,omitempty"`
	Results      []tournament.SetResult    `json:"results" yaml:"results"`
	Overrides    []override.ManualOverride `json:"overrides,omitempty" yaml:"overrides,omitempty"`
}

// Load reads a YAML or JSON snapshot file.
func Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a YAML or JSON snapshot and validates it.
func Decode(r io.Reader) (*Snapshot, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Snapshot
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidSnapshot)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the fields every consumer relies on.
func (s *Snapshot) Validate() error {
	if s.FormatID == "" {
		return fmt.Errorf("%w: format is required", ErrInvalidSnapshot)
	}
	if len(s.Competitors) == 0 {
		return fmt.Errorf("%w: competitors are required", ErrInvalidSnapshot)
	}
	ids := make(map[string]bool, len(s.Competitors))
	for _, c := range s.Competitors {
		if c.ID == "" {
			return fmt.Errorf("%w: competitor with seed %d has no id", ErrInvalidSnapshot, c.Seed)
		}
		if ids[c.ID] {
			return fmt.Errorf("%w: competitor %s listed twice", ErrInvalidSnapshot, c.ID)
		}
		ids[c.ID] = true
	}
	for _, o := range s.Overrides {
		if err := o.ValidateInline(); err != nil {
			return err
		}
	}
	return nil
}

// CheckMatches verifies supplied matches against the format and the competitor
// list. Each slot is used once within the format's rounds and courts, and every
// player is a listed competitor carrying its listed seed.
func (s *Snapshot) CheckMatches(f format.Format) error {
	if len(s.Competitors) != f.RequiredCount {
		return fmt.Errorf("%w: %s needs %d competitors, got %d", ErrInvalidSnapshot, f.ID, f.RequiredCount, len(s.Competitors))
	}
	seeds := make(map[string]int, len(s.Competitors))
	for _, c := range s.Competitors {
		seeds[c.ID] = c.Seed
	}

	type slot struct{ round, court int }
	ids := make(map[string]bool, len(s.Matches))
	slots := make(map[slot]bool, len(s.Matches))
	played := make(map[string]bool, len(s.Competitors))
	for _, m := range s.Matches {
		if m.ID == "" || ids[m.ID] {
			return fmt.Errorf("%w: match %q is missing an id or listed twice", ErrInvalidSnapshot, m.ID)
		}
		ids[m.ID] = true
		if m.Round < 1 || m.Round > f.RoundCount || m.Court < 1 || m.Court > f.CourtCount {
			return fmt.Errorf("%w: match %s is at round %d court %d, outside %d rounds and %d courts",
				ErrInvalidSnapshot, m.ID, m.Round, m.Court, f.RoundCount, f.CourtCount)
		}
		if slots[slot{m.Round, m.Court}] {
			return fmt.Errorf("%w: match %s reuses round %d court %d", ErrInvalidSnapshot, m.ID, m.Round, m.Court)
		}
		slots[slot{m.Round, m.Court}] = true

		inMatch := make(map[string]bool, 2*f.SideSize())
		for _, side := range []tournament.Side{m.SideA, m.SideB} {
			if len(side) != f.SideSize() {
				return fmt.Errorf("%w: match %s has a side of %d, %s plays %d per side",
					ErrInvalidSnapshot, m.ID, len(side), f.ID, f.SideSize())
			}
			for i, seed := range side.Seeds() {
				c := side[i]
				want, ok := seeds[c.ID]
				if !ok {
					return fmt.Errorf("%w: match %s names unknown competitor %q", ErrInvalidSnapshot, m.ID, c.ID)
				}
				if seed != want {
					return fmt.Errorf("%w: match %s gives %s seed %d, listed as seed %d", ErrInvalidSnapshot, m.ID, c.ID, seed, want)
				}
				if inMatch[c.ID] {
					return fmt.Errorf("%w: match %s names %s twice", ErrInvalidSnapshot, m.ID, c.ID)
				}
				inMatch[c.ID] = true
				played[c.ID] = true
			}
		}
	}

	for _, c := range s.Competitors {
		if !played[c.ID] {
			return fmt.Errorf("%w: competitor %s plays no match", ErrInvalidSnapshot, c.ID)
		}
	}
	return nil
}

// Seeded returns the competitors ordered by seed.
func (s *Snapshot) Seeded() []tournament.Competitor {
	out := slices.Clone(s.Competitors)
	slices.SortStableFunc(out, func(a, b tournament.Competitor) int {
		return cmp.Compare(a.Seed, b.Seed)
	})
	return out
}
