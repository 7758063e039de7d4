package service

import (
	"errors"
	"testing"
	"time"

	"github.com/fortuna/pallas/internal/ingest"
	"github.com/fortuna/pallas/internal/names"
	"github.com/fortuna/pallas/internal/odds"
	"github.com/fortuna/pallas/internal/refdata"
	"github.com/fortuna/pallas/internal/schedule"
	"github.com/fortuna/pallas/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const serviceTestTSV = `fixture_id	stage_name	starting_at	home_team_name	away_team_name	group_name	home_team_id	away_team_id	GW
fx-100	Group Stage	2025-06-15 20:00:00	Chelsea	LAFC	Group D	18	147671	1
fx-101	Group Stage	2025-06-16 15:00:00	Real Madrid	Al Hilal	Group H	3468	7011	1
`

var serviceTestOdds = odds.QuoteSet{
	{Outcome: "1-0", Odd: 2.0},
	{Outcome: "0-1", Odd: 4.0},
	{Outcome: "1-1", Odd: 5.0},
	{Outcome: "0-0", Odd: 7.5},
}

func newTestTables(t *testing.T) *store.Tables {
	t.Helper()

	canon := names.NewCanonicalizer(map[string]string{
		"Chelsea":        "Chelsea FC",
		"Chelsea FC":     "Chelsea FC",
		"LAFC":           "LAFC",
		"Real Madrid":    "Real Madrid CF",
		"Real Madrid CF": "Real Madrid CF",
		"Al Hilal":       "Al Hilal SFC",
		"Al Hilal SFC":   "Al Hilal SFC",
	}, names.DefaultRules())

	idx, err := schedule.BuildIndex(serviceTestTSV, canon)
	require.NoError(t, err)

	baseFixtures := []schedule.BaseFixture{
		{
			FixtureID: "fx-100", Gameweek: "1",
			HomeTeam: "Chelsea FC", AwayTeam: "LAFC",
			Date:    "2025-06-15",
			Kickoff: time.Date(2025, 6, 15, 20, 0, 0, 0, time.UTC),
			Stadium: "Mercedes-Benz Stadium, Atlanta, GA", Group: "D",
		},
		{
			FixtureID: "fx-101", Gameweek: "1",
			HomeTeam: "Real Madrid CF", AwayTeam: "Al Hilal SFC",
			Date:    "2025-06-16",
			Kickoff: time.Date(2025, 6, 16, 15, 0, 0, 0, time.UTC),
			Stadium: "Hard Rock Stadium, Miami Gardens, FL", Group: "H",
		},
	}

	return &store.Tables{
		Canon:        canon,
		Teams:        refdata.TeamDetails,
		Schedule:     idx,
		BaseFixtures: baseFixtures,
		History:      schedule.BuildHistoryContexts(baseFixtures),
		CorrectScores: []ingest.CorrectScoreMatch{
			{
				Match: "Chelsea vs LAFC", Date: "2025-06-15",
				Stadium: "Mercedes-Benz Stadium, Atlanta, GA",
				Odds:    serviceTestOdds,
			},
		},
		ScoreOdds: map[schedule.TripleKey]odds.QuoteSet{
			{Home: "Chelsea FC", Away: "LAFC", Date: "2025-06-15"}: serviceTestOdds,
		},
		Goalscorers: []ingest.GoalscorerMatch{
			{
				HomeTeam: "Chelsea", AwayTeam: "LAFC", Date: "2025-06-15",
				Stadium: "Mercedes-Benz Stadium, Atlanta, GA",
				Players: []ingest.GoalscorerPlayer{
					{Name: "Cole Palmer", Team: "Chelsea", Position: "Midfielder", Odd: 2.5, PlayerID: "p-1"},
					{Name: "Marc Cucurella", Team: "Chelsea", Position: "Left-Back", Odd: 15.0, PlayerID: "p-2"},
					{Name: "Denis Bouanga", Team: "LAFC", Position: "Forward", Odd: 3.5, PlayerID: "p-9"},
				},
			},
		},
		Players: map[string][]store.Player{
			"Chelsea FC": {
				{Name: "Cole Palmer", DisplayName: "C. Palmer", TeamCanonical: "Chelsea FC", Position: "Midfielder", PlayerID: "p-1", Goals: 5, Assists: 2},
				{Name: "Marc Cucurella", DisplayName: "M. Cucurella", TeamCanonical: "Chelsea FC", Position: "Left-Back", PlayerID: "p-2", Goals: 1, Assists: 1},
			},
			"Real Madrid CF": {
				{Name: "Kylian Mbappé", DisplayName: "K. Mbappé", TeamCanonical: "Real Madrid CF", Position: "Forward", PlayerID: "p-20", Goals: 8, Assists: 3},
			},
		},
		TeamSeason: map[string]store.SeasonTotals{
			"Chelsea FC":     {Goals: 10, Assists: 4},
			"LAFC":           {},
			"Real Madrid CF": {Goals: 16, Assists: 6},
			"Al Hilal SFC":   {Goals: 12, Assists: 5},
		},
		Outrights: []ingest.OutrightQuote{
			{RawTeamName: "Real Madrid", DecimalOdds: 2.0},
			{RawTeamName: "Chelsea", DecimalOdds: 4.0},
		},
	}
}

func TestTeamCleanSheets(t *testing.T) {
	s := NewStatsService(newTestTables(t))

	rows, err := s.TeamCleanSheets()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	home, away := rows[0], rows[1]
	assert.Equal(t, "Chelsea vs LAFC (2025-06-15 at Mercedes-Benz Stadium, Atlanta, GA)", home.MatchIdentifier)
	assert.Equal(t, "fx-100", home.FixtureID)
	assert.Equal(t, "1", home.Gameweek)
	assert.Equal(t, "Chelsea FC", home.TeamNameCanonical)
	assert.Equal(t, "Chelsea", home.TeamNameOriginal)
	assert.Equal(t, "CHE", home.ShortCode)

	// implied {0.5, 0.25, 0.2, 0.1333}: home keeps a clean sheet on 1-0 and
	// 0-0, away on 0-1 and 0-0.
	assert.InDelta(t, 58.46, home.CleanSheetPercentage, 0.01)
	assert.InDelta(t, 35.38, away.CleanSheetPercentage, 0.01)
}

func TestTeamCleanSheetsSourceUnavailable(t *testing.T) {
	tables := newTestTables(t)
	tables.Errs.CorrectScores = errors.New("missing file")

	s := NewStatsService(tables)
	_, err := s.TeamCleanSheets()
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestTeamCleanSheetsNoResults(t *testing.T) {
	tables := newTestTables(t)
	tables.CorrectScores = nil

	s := NewStatsService(tables)
	_, err := s.TeamCleanSheets()
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestTopCorrectScores(t *testing.T) {
	s := NewStatsService(newTestTables(t))

	results, err := s.TopCorrectScores()
	require.NoError(t, err)
	require.Len(t, results, 1)

	top := results[0].TopScores
	require.Len(t, top, 4)
	assert.Equal(t, "1-0", top[0].Score)
	assert.InDelta(t, 46.15, top[0].Percentage.(float64), 0.01)
	assert.Equal(t, "fx-100", results[0].FixtureID)
}

func TestPlayerCleanSheets(t *testing.T) {
	s := NewStatsService(newTestTables(t))

	results, err := s.PlayerCleanSheets()
	require.NoError(t, err)
	require.Len(t, results, 1)

	match := results[0]
	assert.Equal(t, "fx-100", match.FixtureID)
	// The identifier comes from the correct-score market, joined by pair
	// and date rather than the label string.
	assert.Equal(t, "Chelsea vs LAFC (2025-06-15 at Mercedes-Benz Stadium, Atlanta, GA)", match.MatchIdentifier)

	// Only the left-back qualifies; the midfielder and forward do not.
	require.Len(t, match.DefensivePlayers, 1)
	def := match.DefensivePlayers[0]
	assert.Equal(t, "Marc Cucurella", def.PlayerName)
	assert.Equal(t, "Chelsea FC", def.TeamNameCanonical)
	assert.InDelta(t, 58.46, def.CleanSheetPercentage, 0.01)
}

func TestBuildStrengthMetrics(t *testing.T) {
	tables := newTestTables(t)
	strengths := buildStrengthMetrics(tables)

	// implied {0.5, 0.25} normalize to {2/3, 1/3}; the favorite anchors 100.
	assert.InDelta(t, 100.0, strengths["Real Madrid CF"], 1e-9)
	assert.InDelta(t, 55.0, strengths["Chelsea FC"], 1e-9)

	// Unpriced teams fall back to the default.
	assert.Equal(t, defaultStrength, strengths["LAFC"])
	assert.Equal(t, defaultStrength, strengths["Al Hilal SFC"])
}

func TestBuildStrengthMetricsNoOutrights(t *testing.T) {
	tables := newTestTables(t)
	tables.Outrights = nil

	strengths := buildStrengthMetrics(tables)
	for team, v := range strengths {
		assert.Equal(t, defaultStrength, v, "team %s", team)
	}
}
