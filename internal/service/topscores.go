package service

import (
	"github.com/fortuna/pallas/internal/names"
	"github.com/fortuna/pallas/internal/odds"
)

// MatchTopScores lists a match's most likely correct scores, best first.
type MatchTopScores struct {
	MatchIdentifier string                 `json:"match_identifier"`
	FixtureID       string                 `json:"fixture_id"`
	Gameweek        string                 `json:"GW"`
	TopScores       []odds.ScoreProbability `json:"top_scores"`
}

// TopCorrectScores normalizes each correct-score market and keeps the four
// most likely scorelines per match. A market with no usable odds yields a
// single placeholder entry so the match is still visible in the output.
func (s *StatsService) TopCorrectScores() ([]MatchTopScores, error) {
	if s.tables.Errs.CorrectScores != nil {
		return nil, ErrSourceUnavailable
	}

	var out []MatchTopScores
	for _, m := range s.tables.CorrectScores {
		homeRaw, awayRaw, ok := splitVersus(m.Match)
		if !ok {
			continue
		}
		homeCanonical := s.tables.Canon.Canonicalize(homeRaw)
		awayCanonical := s.tables.Canon.Canonicalize(awayRaw)
		if names.IsSentinel(homeCanonical) || names.IsSentinel(awayCanonical) {
			continue
		}

		ref := s.resolvePair(homeCanonical, awayCanonical)
		out = append(out, MatchTopScores{
			MatchIdentifier: m.MatchIdentifier(),
			FixtureID:       ref.FixtureID,
			Gameweek:        ref.Gameweek,
			TopScores:       odds.TopScores(m.Odds),
		})
	}
	if len(out) == 0 {
		return nil, ErrNoResults
	}
	return out, nil
}
