package format

import (
	"testing"

	"github.com/mauv0809/courtchart/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	c := Default()
	all := c.All()
	require.Len(t, all, 21)

	for _, f := range all {
		t.Run(f.ID, func(t *testing.T) {
			assert.NoError(t, f.Validate())
		})
	}
}

func TestMonarchDimensions(t *testing.T) {
	tests := []struct {
		players int
		rounds  int
		courts  int
		matches int
	}{
		{5, 5, 1, 5},
		{6, 7, 1, 7},
		{7, 10, 1, 10},
		{8, 7, 2, 14},
		{9, 10, 2, 18},
		{10, 11, 2, 22},
		{11, 14, 2, 27},
		{12, 11, 3, 33},
		{13, 13, 3, 39},
		{14, 15, 3, 45},
		{15, 18, 3, 52},
		{16, 11, 4, 41},
	}

	for _, tt := range tests {
		t.Run(MonarchID(tt.players), func(t *testing.T) {
			f, err := Default().Lookup(MonarchID(tt.players))
			require.NoError(t, err)
			assert.Equal(t, tournament.CategoryIndividual, f.Category)
			assert.Equal(t, tt.rounds, f.RoundCount)
			assert.Equal(t, tt.courts, f.CourtCount)
			assert.Len(t, f.Table, tt.matches)
		})
	}
}

func TestMonarchPartnershipsNeverRepeat(t *testing.T) {
	for n := 5; n <= 16; n++ {
		f, err := Default().Lookup(MonarchID(n))
		require.NoError(t, err)

		seen := make(map[[2]int]bool)
		for _, e := range f.Table {
			for _, side := range [][]int{e.SideA, e.SideB} {
				key := [2]int{min(side[0], side[1]), max(side[0], side[1])}
				assert.False(t, seen[key], "%s repeats partnership %v", f.ID, key)
				seen[key] = true
			}
		}
	}
}

func TestMonarchTopSeedsCompensated(t *testing.T) {
	for _, n := range []int{7, 10, 11, 14, 15} {
		f, err := Default().Lookup(MonarchID(n))
		require.NoError(t, err)

		assert.Equal(t, 1, f.AutomaticWinsFor(1), f.ID)
		assert.Equal(t, 1, f.AutomaticWinsFor(2), f.ID)
		assert.Zero(t, f.AutomaticWinsFor(3), f.ID)
		for _, e := range f.Table {
			for _, side := range [][]int{e.SideA, e.SideB} {
				assert.NotEqual(t, []int{1, 2}, side, "%s partners seeds 1 and 2", f.ID)
				assert.NotEqual(t, []int{2, 1}, side, "%s partners seeds 1 and 2", f.ID)
			}
		}
	}

	f, err := Default().Lookup(MonarchID(8))
	require.NoError(t, err)
	assert.Empty(t, f.AutomaticWins)
}

func TestMonarchNotesCarryAnalysis(t *testing.T) {
	c := Default()
	for n := 5; n <= 16; n++ {
		f, err := c.Lookup(MonarchID(n))
		require.NoError(t, err)
		assert.NotEmpty(t, f.Notes, f.ID)
	}

	f, err := c.Lookup("moc-12")
	require.NoError(t, err)
	assert.Contains(t, f.Notes, "seed #12 with net 3 losses")

	f, err = c.Lookup("moc-13")
	require.NoError(t, err)
	assert.Contains(t, f.Notes, "seeds #10-13 each having net 2 losses")

	f, err = c.Lookup("moc-15")
	require.NoError(t, err)
	assert.Contains(t, f.Notes, "combine formats into pools")
}

func TestPairsAreFullRoundRobins(t *testing.T) {
	for n := 2; n <= 10; n++ {
		f, err := Default().Lookup(PairsID(n))
		require.NoError(t, err)
		assert.Equal(t, tournament.CategoryPair, f.Category)
		require.Len(t, f.Table, n*(n-1)/2, f.ID)

		met := make(map[[2]int]bool)
		for _, e := range f.Table {
			a, b := e.SideA[0], e.SideB[0]
			met[[2]int{min(a, b), max(a, b)}] = true
		}
		assert.Len(t, met, n*(n-1)/2, f.ID)

		// seeds 1 and 2 meet in the last round
		for _, e := range f.Table {
			if (e.SideA[0] == 1 && e.SideB[0] == 2) || (e.SideA[0] == 2 && e.SideB[0] == 1) {
				assert.Equal(t, f.RoundCount, e.Round, f.ID)
			}
		}
	}
}

func TestLookupUnknownFormat(t *testing.T) {
	_, err := Default().Lookup("moc-17")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestRoundsAndCourtsRequireSupportedCount(t *testing.T) {
	f, err := Default().Lookup("moc-8")
	require.NoError(t, err)

	rounds, err := f.Rounds(8)
	require.NoError(t, err)
	assert.Equal(t, 7, rounds)
	courts, err := f.Courts(8)
	require.NoError(t, err)
	assert.Equal(t, 2, courts)

	_, err = f.Rounds(9)
	assert.ErrorIs(t, err, ErrInvalidCompetitorCount)
	_, err = f.Courts(7)
	assert.ErrorIs(t, err, ErrInvalidCompetitorCount)
}

func TestForCount(t *testing.T) {
	f, err := Default().ForCount(tournament.CategoryPair, 4)
	require.NoError(t, err)
	assert.Equal(t, "pairs-4", f.ID)

	f, err = Default().ForCount(tournament.CategoryIndividual, 12)
	require.NoError(t, err)
	assert.Equal(t, "moc-12", f.ID)

	_, err = Default().ForCount(tournament.CategoryIndividual, 4)
	assert.ErrorIs(t, err, ErrInvalidCompetitorCount)
	_, err = Default().ForCount(tournament.CategoryPair, 11)
	assert.ErrorIs(t, err, ErrInvalidCompetitorCount)
}

func TestLookupReturnsCopies(t *testing.T) {
	f, err := Default().Lookup("moc-7")
	require.NoError(t, err)
	f.Table[0].SideA[0] = 99
	f.AutomaticWins[1] = 5

	again, err := Default().Lookup("moc-7")
	require.NoError(t, err)
	assert.Equal(t, 4, again.Table[0].SideA[0])
	assert.Equal(t, 1, again.AutomaticWins[1])
}

func TestNewCatalogRejectsInvalidTables(t *testing.T) {
	tests := []struct {
		name  string
		table []Entry
	}{
		{"seed out of range", []Entry{doubles(1, 1, 1, 2, 3, 5)}},
		{"duplicate slot", []Entry{doubles(1, 1, 1, 2, 3, 4), doubles(1, 1, 1, 3, 2, 4)}},
		{"double booked", []Entry{doubles(1, 1, 1, 2, 3, 4), doubles(1, 2, 1, 3, 2, 4)}},
		{"wrong side size", []Entry{singles(1, 1, 1, 2)}},
		{"court out of range", []Entry{doubles(1, 3, 1, 2, 3, 4)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := monarch(4, 1, 2, tt.table, nil, "")
			_, err := NewCatalog(f)
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}

	valid := monarch(4, 1, 1, []Entry{doubles(1, 1, 1, 4, 2, 3)}, nil, "")
	_, err := NewCatalog(valid, valid)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestSearch(t *testing.T) {
	c := Default()

	results := c.Search("moc-8")
	require.NotEmpty(t, results)
	assert.Equal(t, "moc-8", results[0].ID)

	results = c.Search("pairs")
	assert.Len(t, results, 9)
	for _, f := range results {
		assert.Equal(t, tournament.CategoryPair, f.Category)
	}

	assert.Len(t, c.Search("  "), 21)
	assert.Empty(t, c.Search("volleyball"))
}
