package snapshot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mauv0809/courtchart/internal/format"
	"github.com/mauv0809/courtchart/internal/override"
	"github.com/mauv0809/courtchart/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlSnapshot = `
tournament_id: spring-open
format: pairs-3
competitors:
  - {id: c, name: Cat & Dan, seed: 3}
  - {id: a, name: Ann & Bo, seed: 1}
  - {id: b, seed: 2}
results:
  - {match_id: r1-c1, set_number: 1, score_a: 21, score_b: 17}
overrides:
  - wins_level: 1
    resolved_order: [2, 1]
    reason: coin toss
    resolved_by: director
`

func TestDecodeYAML(t *testing.T) {
	s, err := Decode(strings.NewReader(yamlSnapshot))
	require.NoError(t, err)

	assert.Equal(t, "spring-open", s.TournamentID)
	assert.Equal(t, "pairs-3", s.FormatID)
	assert.Equal(t, []tournament.SetResult{{MatchID: "r1-c1", SetNumber: 1, ScoreA: 21, ScoreB: 17}}, s.Results)
	require.Len(t, s.Overrides, 1)
	assert.Equal(t, []int{2, 1}, s.Overrides[0].ResolvedOrder)

	seeded := s.Seeded()
	assert.Equal(t, []string{"a", "b", "c"}, []string{seeded[0].ID, seeded[1].ID, seeded[2].ID})
	assert.Equal(t, "c", s.Competitors[0].ID, "Seeded does not reorder the snapshot")
}

func TestDecodeJSON(t *testing.T) {
	body := `{"tournament_id": "t1", "format": "moc-5", ` +
		`"competitors": [{"id": "p1", "seed": 1}, {"id": "p2", "seed": 2}], ` +
		`"matches": [{"id": "r1-c1", "round": 1, "court": 1, "side_a": [{"id": "p1", "seed": 1}], "side_b": [{"id": "p2", "seed": 2}]}], ` +
		`"results": []}`

	s, err := Decode(strings.NewReader(body))
	require.NoError(t, err)
	require.Len(t, s.Matches, 1)
	assert.Equal(t, tournament.Side{{ID: "p2", Seed: 2}}, s.Matches[0].SideB)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlSnapshot), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, s.Competitors, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDecodeRejectsInvalidSnapshots(t *testing.T) {
	tests := map[string]string{
		"empty":           "",
		"unknown field":   "format: moc-5\ncompetitors: [{id: a, seed: 1}]\nplayers: 5\n",
		"missing format":  "competitors: [{id: a, seed: 1}]\n",
		"no competitors":  "format: moc-5\n",
		"missing id":      "format: moc-5\ncompetitors: [{seed: 1}]\n",
		"duplicate id":    "format: moc-5\ncompetitors: [{id: a, seed: 1}, {id: a, seed: 2}]\n",
		"malformed input": "format: [moc-5\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(body))
			assert.ErrorIs(t, err, ErrInvalidSnapshot)
		})
	}

	_, err := Decode(strings.NewReader("format: moc-5\ncompetitors: [{id: a, seed: 1}]\noverrides: [{wins_level: 1, resolved_order: [1], reason: r, resolved_by: d}]\n"))
	assert.ErrorIs(t, err, override.ErrInvalidOverride)
}

func TestCheckMatches(t *testing.T) {
	f, err := format.Default().Lookup("pairs-2")
	require.NoError(t, err)

	a := tournament.Competitor{ID: "a", Seed: 1}
	b := tournament.Competitor{ID: "b", Seed: 2}
	valid := tournament.Match{ID: "r1-c1", Round: 1, Court: 1, SideA: tournament.Side{a}, SideB: tournament.Side{b}}
	snap := func(matches ...tournament.Match) *Snapshot {
		return &Snapshot{FormatID: f.ID, Competitors: []tournament.Competitor{b, a}, Matches: matches}
	}

	assert.NoError(t, snap(valid).CheckMatches(f))

	tests := map[string]*Snapshot{
		"same id twice": snap(valid, valid),
		"same slot": snap(valid, tournament.Match{ID: "again", Round: 1, Court: 1,
			SideA: tournament.Side{b}, SideB: tournament.Side{a}}),
		"court outside the format": snap(tournament.Match{ID: "r1-c2", Round: 1, Court: 2,
			SideA: tournament.Side{a}, SideB: tournament.Side{b}}),
		"side too large": snap(tournament.Match{ID: "r1-c1", Round: 1, Court: 1,
			SideA: tournament.Side{a, b}, SideB: tournament.Side{b}}),
		"unknown competitor": snap(tournament.Match{ID: "r1-c1", Round: 1, Court: 1,
			SideA: tournament.Side{a}, SideB: tournament.Side{{ID: "z", Seed: 2}}}),
		"seed differs from the list": snap(tournament.Match{ID: "r1-c1", Round: 1, Court: 1,
			SideA: tournament.Side{{ID: "a", Seed: 2}}, SideB: tournament.Side{b}}),
		"plays itself": snap(tournament.Match{ID: "r1-c1", Round: 1, Court: 1,
			SideA: tournament.Side{a}, SideB: tournament.Side{a}}),
		"wrong competitor count": {FormatID: f.ID, Competitors: []tournament.Competitor{a}, Matches: []tournament.Match{valid}},
	}
	for name, s := range tests {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, s.CheckMatches(f), ErrInvalidSnapshot)
		})
	}
}
