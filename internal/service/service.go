// Package service computes the betting-odds statistics served by the API.
// All heavy derivation (team strengths, difficulty ratings, clean-sheet
// shares) happens once in the constructor; request handlers only read the
// precomputed caches.
package service

import (
	"errors"
	"log"

	"github.com/fortuna/pallas/internal/names"
	"github.com/fortuna/pallas/internal/odds"
	"github.com/fortuna/pallas/internal/schedule"
	"github.com/fortuna/pallas/internal/store"
)

var (
	// ErrSourceUnavailable means the snapshot source a query depends on
	// failed to load at startup.
	ErrSourceUnavailable = errors.New("source data unavailable")

	// ErrNoResults means the source loaded but produced no usable rows.
	ErrNoResults = errors.New("no results calculated")
)

// csKey identifies a match's clean-sheet entry by its canonical team pair
// and date. Pair order does not matter.
type csKey struct {
	Pair schedule.PairKey
	Date string
}

// csEntry caches one match's clean-sheet shares and display metadata.
type csEntry struct {
	Identifier string
	FixtureID  string
	Gameweek   string
	Shares     map[string]float64 // canonical team -> clean-sheet %
}

// agsQuote is one priced player resolved to a canonical team.
type agsQuote struct {
	Name          string
	TeamCanonical string
	Position      string
	Odd           float64
	PlayerID      string
	PlayerAPIID   string
}

// StatsService answers every statistics query from immutable tables and
// caches built at construction time.
type StatsService struct {
	tables *store.Tables

	strengths map[string]float64   // canonical team -> outright strength
	fdr       map[string]fdrRating // fixture id -> difficulty ratings
	csCache   map[csKey]csEntry    // canonical pair + date -> clean sheets
	agsByKey  map[csKey][]agsQuote // canonical pair + date -> priced players
}

// NewStatsService derives all per-fixture caches from the loaded tables.
func NewStatsService(t *store.Tables) *StatsService {
	s := &StatsService{
		tables:    t,
		strengths: buildStrengthMetrics(t),
		csCache:   make(map[csKey]csEntry),
		agsByKey:  make(map[csKey][]agsQuote),
	}
	s.buildCleanSheetCache()
	s.buildGoalscorerIndex()
	s.fdr = buildFDRRatings(t, s.strengths)
	log.Printf("✓ Stats caches ready: %d strengths, %d clean-sheet entries, %d difficulty ratings",
		len(s.strengths), len(s.csCache), len(s.fdr))
	return s
}

// buildCleanSheetCache derives clean-sheet shares for every correct-score
// market and keys them by canonical pair and date, so later lookups never
// depend on how a source spelled the match label.
func (s *StatsService) buildCleanSheetCache() {
	for _, m := range s.tables.CorrectScores {
		home, away, ok := splitVersus(m.Match)
		if !ok {
			continue
		}
		homeCanonical := s.tables.Canon.Canonicalize(home)
		awayCanonical := s.tables.Canon.Canonicalize(away)
		if names.IsSentinel(homeCanonical) || names.IsSentinel(awayCanonical) {
			continue
		}

		share := odds.CleanSheets(m.Odds)
		ref := s.resolvePair(homeCanonical, awayCanonical)
		key := csKey{Pair: schedule.NewPairKey(homeCanonical, awayCanonical), Date: m.Date}
		s.csCache[key] = csEntry{
			Identifier: m.MatchIdentifier(),
			FixtureID:  ref.FixtureID,
			Gameweek:   ref.Gameweek,
			Shares: map[string]float64{
				homeCanonical: share.Home,
				awayCanonical: share.Away,
			},
		}
	}
}

// buildGoalscorerIndex groups anytime-goalscorer quotes by canonical pair
// and date for direct-odds lookups during projection.
func (s *StatsService) buildGoalscorerIndex() {
	for _, m := range s.tables.Goalscorers {
		homeCanonical := s.tables.Canon.Canonicalize(m.HomeTeam)
		awayCanonical := s.tables.Canon.Canonicalize(m.AwayTeam)
		if names.IsSentinel(homeCanonical) || names.IsSentinel(awayCanonical) {
			continue
		}
		key := csKey{Pair: schedule.NewPairKey(homeCanonical, awayCanonical), Date: m.Date}
		for _, p := range m.Players {
			teamCanonical := s.tables.Canon.Canonicalize(p.Team)
			if names.IsSentinel(teamCanonical) {
				continue
			}
			s.agsByKey[key] = append(s.agsByKey[key], agsQuote{
				Name:          p.Name,
				TeamCanonical: teamCanonical,
				Position:      p.Position,
				Odd:           p.Odd,
				PlayerID:      p.PlayerID,
				PlayerAPIID:   p.PlayerAPIID,
			})
		}
	}
}

// resolvePair looks up the scheduled fixture for two canonical teams,
// returning sentinel ids when the pair is not on the schedule.
func (s *StatsService) resolvePair(team1, team2 string) schedule.FixtureRef {
	if fix, ok := s.tables.Schedule.ResolvePair(team1, team2); ok {
		return schedule.FixtureRef{FixtureID: fix.FixtureID, Gameweek: fix.Gameweek}
	}
	return schedule.FixtureRef{FixtureID: schedule.UnknownFixtureID, Gameweek: schedule.UnknownGameweek}
}

// lookupCleanSheets finds the cached clean-sheet entry for a pair, trying
// the exact date first and then any date for the same pairing. Group-stage
// pairs meet at most once, so the date-free fallback is safe.
func (s *StatsService) lookupCleanSheets(pair schedule.PairKey, date string) (csEntry, bool) {
	if entry, ok := s.csCache[csKey{Pair: pair, Date: date}]; ok {
		return entry, true
	}
	for key, entry := range s.csCache {
		if key.Pair == pair {
			return entry, true
		}
	}
	return csEntry{}, false
}
