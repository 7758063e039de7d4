package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fortuna/pallas/internal/ingest"
	"github.com/fortuna/pallas/internal/names"
	"github.com/fortuna/pallas/internal/odds"
	"github.com/fortuna/pallas/internal/refdata"
	"github.com/fortuna/pallas/internal/schedule"
	"github.com/fortuna/pallas/internal/service"
	"github.com/fortuna/pallas/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const handlerTestTSV = `fixture_id	stage_name	starting_at	home_team_name	away_team_name	group_name	home_team_id	away_team_id	GW
fx-1	Group Stage	2025-06-15 20:00:00	Chelsea	LAFC	Group D	18	147671	1
`

func newTestHandler(t *testing.T, mutate func(*store.Tables)) *Handler {
	t.Helper()

	canon := names.NewCanonicalizer(map[string]string{
		"Chelsea": "Chelsea FC",
		"LAFC":    "LAFC",
	}, names.DefaultRules())

	idx, err := schedule.BuildIndex(handlerTestTSV, canon)
	require.NoError(t, err)

	tables := &store.Tables{
		Canon:    canon,
		Teams:    refdata.TeamDetails,
		Schedule: idx,
		CorrectScores: []ingest.CorrectScoreMatch{
			{
				Match: "Chelsea vs LAFC", Date: "2025-06-15", Stadium: "Mercedes-Benz Stadium",
				Odds: odds.QuoteSet{
					{Outcome: "1-0", Odd: 2.0},
					{Outcome: "0-0", Odd: 4.0},
				},
			},
		},
		TeamSeason: map[string]store.SeasonTotals{},
	}
	if mutate != nil {
		mutate(tables)
	}
	return NewHandler(service.NewStatsService(tables), nil)
}

func TestHealthCheck(t *testing.T) {
	h := newTestHandler(t, nil)

	rec := httptest.NewRecorder()
	h.HealthCheck(rec, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "pallas", body["service"])
	// No cache configured, so no cache field at all.
	_, present := body["cache"]
	assert.False(t, present)
}

func TestGetTeamCleanSheets(t *testing.T) {
	h := newTestHandler(t, nil)

	rec := httptest.NewRecorder()
	h.GetTeamCleanSheets(rec, httptest.NewRequest("GET", "/api/v1/team-clean-sheets", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var rows []service.TeamCleanSheetRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "Chelsea FC", rows[0].TeamNameCanonical)
	assert.Equal(t, "fx-1", rows[0].FixtureID)
}

func TestGetTeamCleanSheetsSourceUnavailable(t *testing.T) {
	h := newTestHandler(t, func(tables *store.Tables) {
		tables.Errs.CorrectScores = assert.AnError
	})

	rec := httptest.NewRecorder()
	h.GetTeamCleanSheets(rec, httptest.NewRequest("GET", "/api/v1/team-clean-sheets", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Failed to calculate team clean sheets", body["error"])
	assert.NotEmpty(t, body["details"])
}

func TestGetTopCorrectScoresNoResults(t *testing.T) {
	h := newTestHandler(t, func(tables *store.Tables) {
		tables.CorrectScores = nil
	})

	rec := httptest.NewRecorder()
	h.GetTopCorrectScores(rec, httptest.NewRequest("GET", "/api/v1/top-correct-scores", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetMatchPlayerStatsNoFixtures(t *testing.T) {
	h := newTestHandler(t, nil)

	rec := httptest.NewRecorder()
	h.GetMatchPlayerStats(rec, httptest.NewRequest("GET", "/api/v1/matches/player-stats", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCORSMiddleware(t *testing.T) {
	wrapped := CORSMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest("OPTIONS", "/api/v1/teams", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/teams", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecoveryMiddleware(t *testing.T) {
	wrapped := RecoveryMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
