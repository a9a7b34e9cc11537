package schedule

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mauv0809/courtchart/internal/format"
	"github.com/mauv0809/courtchart/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(n int) []tournament.Competitor {
	out := make([]tournament.Competitor, n)
	for i := range out {
		out[i] = tournament.Competitor{ID: fmt.Sprintf("c%d", i+1), Seed: i + 1}
	}
	return out
}

func TestGenerateMonarchOfTheCourtEight(t *testing.T) {
	competitors := seeded(8)
	f, matches, err := GenerateByID(format.Default(), "moc-8", competitors)
	require.NoError(t, err)
	assert.Equal(t, "moc-8", f.ID)
	require.Len(t, matches, 14)

	want := []tournament.Match{
		{
			ID: "r1-c1", Round: 1, Court: 1,
			SideA: tournament.Side{competitors[0], competitors[2]},
			SideB: tournament.Side{competitors[5], competitors[7]},
		},
		{
			ID: "r1-c2", Round: 1, Court: 2,
			SideA: tournament.Side{competitors[1], competitors[3]},
			SideB: tournament.Side{competitors[4], competitors[6]},
		},
	}
	if diff := cmp.Diff(want, matches[:2]); diff != "" {
		t.Errorf("round 1 mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateRejectsWrongCount(t *testing.T) {
	_, _, err := GenerateByID(format.Default(), "moc-8", seeded(7))
	assert.ErrorIs(t, err, ErrCompetitorCountMismatch)

	_, _, err = GenerateByID(format.Default(), "moc-99", seeded(7))
	assert.ErrorIs(t, err, format.ErrUnknownFormat)
}

func TestGenerateRejectsBadSeeding(t *testing.T) {
	f, err := format.Default().Lookup("pairs-3")
	require.NoError(t, err)

	reversed := seeded(3)
	reversed[0], reversed[2] = reversed[2], reversed[0]
	_, err = Generate(f, reversed)
	assert.ErrorIs(t, err, ErrInvalidSeeding)

	dup := seeded(3)
	dup[2].ID = dup[1].ID
	_, err = Generate(f, dup)
	assert.ErrorIs(t, err, ErrInvalidSeeding)
}

func TestGenerateEveryFormat(t *testing.T) {
	for _, f := range format.Default().All() {
		t.Run(f.ID, func(t *testing.T) {
			competitors := seeded(f.RequiredCount)
			first, err := Generate(f, competitors)
			require.NoError(t, err)
			assert.Len(t, first, len(f.Table))

			slots := make(map[string]bool)
			booked := make(map[int]map[string]bool)
			for _, m := range first {
				assert.False(t, slots[m.ID], "slot %s used twice", m.ID)
				slots[m.ID] = true
				if booked[m.Round] == nil {
					booked[m.Round] = make(map[string]bool)
				}
				for _, c := range append(append(tournament.Side{}, m.SideA...), m.SideB...) {
					assert.False(t, booked[m.Round][c.ID], "%s double booked in round %d", c.ID, m.Round)
					booked[m.Round][c.ID] = true
				}
				assert.Len(t, m.SideA, f.SideSize())
				assert.Len(t, m.SideB, f.SideSize())
			}

			second, err := Generate(f, seeded(f.RequiredCount))
			require.NoError(t, err)
			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("generate is not deterministic (-first +second):\n%s", diff)
			}
		})
	}
}
