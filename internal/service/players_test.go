package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchPlayerStats(t *testing.T) {
	s := NewStatsService(newTestTables(t))

	results, err := s.MatchPlayerStats()
	require.NoError(t, err)
	require.Len(t, results, 2)

	opener := results[0]
	assert.Equal(t, "fx-100", opener.FixtureID)
	assert.Equal(t, "cs_odds_direct", opener.XGSource)
	assert.InDelta(t, 0.646, opener.HomeTeamXG, 0.001)
	assert.InDelta(t, 0.415, opener.AwayTeamXG, 0.001)

	byName := make(map[string]PlayerCombinedStats)
	for _, p := range opener.Players {
		byName[p.PlayerName] = p
	}

	// Priced in the goalscorer market, so the direct price wins over the
	// Poisson projection.
	palmer, ok := byName["Cole Palmer"]
	require.True(t, ok)
	assert.Equal(t, "direct_odds", palmer.AGSProbSource)
	assert.InDelta(t, 40.0, palmer.AnytimeGoalscorerProbability, 0.001)
	assert.Equal(t, "estimated_poisson_from_cs_odds_direct", palmer.AASProbSource)
	assert.InDelta(t, 27.61, palmer.AnytimeAssistProbability, 0.05)
	assert.Equal(t, 0.0, palmer.CleanSheetProbability)

	// Defenders inherit their side's clean-sheet share.
	cucurella, ok := byName["Marc Cucurella"]
	require.True(t, ok)
	assert.InDelta(t, 58.46, cucurella.CleanSheetProbability, 0.01)
	assert.Equal(t, "direct_odds", cucurella.AGSProbSource)

	// Priced but absent from the season table, so appended with direct
	// odds only.
	bouanga, ok := byName["Denis Bouanga"]
	require.True(t, ok)
	assert.Equal(t, "direct_odds_only (not_in_excel)", bouanga.AGSProbSource)
	assert.InDelta(t, 28.57, bouanga.AnytimeGoalscorerProbability, 0.01)
	assert.Equal(t, "unavailable (not_in_excel)", bouanga.AASProbSource)
	assert.Equal(t, 0.0, bouanga.AnytimeAssistProbability)

	// No correct-score market for the second fixture in either orientation,
	// so expected goals come from the outright-based difficulty ratings.
	second := results[1]
	assert.Equal(t, "fx-101", second.FixtureID)
	assert.Equal(t, "fdr_outrights_estimation", second.XGSource)
	assert.Greater(t, second.HomeTeamXG, 0.0)
	assert.Greater(t, second.AwayTeamXG, 0.0)

	require.Len(t, second.Players, 1)
	mbappe := second.Players[0]
	assert.Equal(t, "Kylian Mbappé", mbappe.PlayerName)
	assert.Equal(t, "estimated_poisson_from_fdr_outrights_estimation", mbappe.AGSProbSource)
	assert.Greater(t, mbappe.AnytimeGoalscorerProbability, 0.0)
}

func TestMatchPlayerStatsSourceGates(t *testing.T) {
	tables := newTestTables(t)
	tables.Errs.Players = assert.AnError
	s := NewStatsService(tables)
	_, err := s.MatchPlayerStats()
	assert.ErrorIs(t, err, ErrSourceUnavailable)

	tables = newTestTables(t)
	tables.BaseFixtures = nil
	s = NewStatsService(tables)
	_, err = s.MatchPlayerStats()
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestPoissonScoreProbability(t *testing.T) {
	// Half the team's goals at 1.5 expected goals gives a 0.75 rate.
	assert.InDelta(t, 0.5276, poissonScoreProbability(5, 10, 1.5), 0.0001)

	assert.Equal(t, 0.0, poissonScoreProbability(5, 0, 1.5))
	assert.Equal(t, 0.0, poissonScoreProbability(-1, 10, 1.5))
	assert.Equal(t, 0.0, poissonScoreProbability(5, 10, 0))
	assert.Equal(t, 0.0, poissonScoreProbability(0, 10, 1.5))
}

func TestDirectGoalscorerOddsEvensUnusable(t *testing.T) {
	tables := newTestTables(t)
	tables.Goalscorers[0].Players[0].Odd = 1.0
	s := NewStatsService(tables)

	results, err := s.MatchPlayerStats()
	require.NoError(t, err)

	for _, p := range results[0].Players {
		if p.PlayerName != "Cole Palmer" {
			continue
		}
		// Price at evens is unusable and the projection takes over.
		assert.Equal(t, "estimated_poisson_from_cs_odds_direct", p.AGSProbSource)
		return
	}
	t.Fatal("Cole Palmer missing from projections")
}

func TestIsDefensivePosition(t *testing.T) {
	assert.True(t, isDefensivePosition("Goalkeeper"))
	assert.True(t, isDefensivePosition("Left-Back"))
	assert.True(t, isDefensivePosition("Defender (CB)"))
	assert.True(t, isDefensivePosition("centre-back"))
	assert.False(t, isDefensivePosition("Midfielder"))
	assert.False(t, isDefensivePosition(""))
}
