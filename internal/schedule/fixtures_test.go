package schedule

import (
	"testing"

	"github.com/fortuna/pallas/internal/names"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScheduleTSV = `fixture_id	stage_name	starting_at	home_team_name	away_team_name	group_name	home_team_id	away_team_id	GW
fx-100	Group Stage	2025-06-15 20:00:00	Chelsea	LAFC	Group D	18	147671	1
fx-101	Group Stage	2025-06-16 15:00:00	Real Madrid	Al Hilal	Group H	3468	7011	1
fx-900	Round of 16	2025-06-28 16:00:00	Winner Match 1	2nd Group B		0	0	4
`

func testCanon() *names.Canonicalizer {
	return names.NewCanonicalizer(map[string]string{
		"Chelsea":        "Chelsea FC",
		"Chelsea FC":     "Chelsea FC",
		"LAFC":           "LAFC",
		"Real Madrid":    "Real Madrid CF",
		"Real Madrid CF": "Real Madrid CF",
		"Al Hilal":       "Al Hilal SFC",
		"Al Hilal SFC":   "Al Hilal SFC",
	}, names.DefaultRules())
}

func TestBuildIndexResolvesPairs(t *testing.T) {
	idx, err := BuildIndex(testScheduleTSV, testCanon())
	require.NoError(t, err)

	fix, ok := idx.ResolvePair("Chelsea FC", "LAFC")
	require.True(t, ok)
	assert.Equal(t, "fx-100", fix.FixtureID)
	assert.Equal(t, "1", fix.Gameweek)
	assert.Equal(t, "2025-06-15", fix.Date)
	assert.Equal(t, "Chelsea FC", fix.HomeTeam)
}

func TestResolvePairIsOrderInvariant(t *testing.T) {
	idx, err := BuildIndex(testScheduleTSV, testCanon())
	require.NoError(t, err)

	forward, okF := idx.ResolvePair("Chelsea FC", "LAFC")
	reverse, okR := idx.ResolvePair("LAFC", "Chelsea FC")
	require.True(t, okF)
	require.True(t, okR)
	assert.Equal(t, forward, reverse)
}

func TestBuildIndexSkipsKnockoutPlaceholders(t *testing.T) {
	idx, err := BuildIndex(testScheduleTSV, testCanon())
	require.NoError(t, err)
	assert.Len(t, idx.Fixtures(), 2)
}

func TestResolveKickoffTriesSwappedLabels(t *testing.T) {
	idx, err := BuildIndex(testScheduleTSV, testCanon())
	require.NoError(t, err)

	ref, ok := idx.ResolveKickoff("Real Madrid CF", "Al Hilal SFC", "2025-06-16")
	require.True(t, ok)
	assert.Equal(t, "fx-101", ref.FixtureID)

	swapped, ok := idx.ResolveKickoff("Al Hilal SFC", "Real Madrid CF", "2025-06-16")
	require.True(t, ok)
	assert.Equal(t, ref, swapped)

	_, ok = idx.ResolveKickoff("Real Madrid CF", "Al Hilal SFC", "2025-06-17")
	assert.False(t, ok)
}

func TestBuildIndexMissingColumn(t *testing.T) {
	_, err := BuildIndex("fixture_id\tstarting_at\n1\t2025-06-15\n", testCanon())
	assert.Error(t, err)
}

func TestPlaceholderID(t *testing.T) {
	id := PlaceholderID("Chelsea FC", "LAFC", "2025-06-15")
	assert.Equal(t, "NO_ID_FOR_Chelsea FC_vs_LAFC_2025-06-15", id)
	assert.True(t, IsPlaceholderID(id))
	assert.False(t, IsPlaceholderID("fx-100"))
}
