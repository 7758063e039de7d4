package service

import (
	"math"
	"strings"

	"github.com/fortuna/pallas/internal/odds"
	"github.com/fortuna/pallas/internal/refdata"
	"github.com/fortuna/pallas/internal/schedule"
)

// PlayerCombinedStats is one player's projected probabilities for a match:
// anytime goalscorer, anytime assist, and clean sheet. Each probability
// carries a source tag naming how it was derived.
type PlayerCombinedStats struct {
	PlayerName        string  `json:"player_name"`
	PlayerID          string  `json:"player_id,omitempty"`
	PlayerAPIID       string  `json:"player_api_id,omitempty"`
	TeamNameCanonical string  `json:"team_name_canonical"`
	TeamAPIID         int     `json:"team_api_id"`
	TeamShortCode     string  `json:"team_short_code"`
	Position          string  `json:"Position"`
	PlayerDisplayName string  `json:"player_display_name"`
	PlayerPrice       float64 `json:"player_price,omitempty"`
	PlayerImage       string  `json:"player_image,omitempty"`

	AnytimeGoalscorerProbability float64 `json:"anytime_goalscorer_probability"`
	AGSProbSource                string  `json:"ags_prob_source"`
	AnytimeAssistProbability     float64 `json:"anytime_assist_probability"`
	AASProbSource                string  `json:"aas_prob_source"`
	CleanSheetProbability        float64 `json:"clean_sheet_probability"`
}

// MatchCombinedStats is one fixture's expected goals plus the projections of
// every player involved on either side.
type MatchCombinedStats struct {
	FixtureID         string                `json:"fixture_id"`
	Gameweek          string                `json:"GW"`
	Date              string                `json:"date_str"`
	HomeTeamCanonical string                `json:"home_team_canonical"`
	AwayTeamCanonical string                `json:"away_team_canonical"`
	HomeTeamXG        float64               `json:"home_team_xg"`
	AwayTeamXG        float64               `json:"away_team_xg"`
	XGSource          string                `json:"xg_source"`
	Players           []PlayerCombinedStats `json:"players"`
}

// playerKey deduplicates players between the season table and the priced
// goalscorer market.
type playerKey struct {
	nameLower   string
	team        string
	playerID    string
	playerAPIID string
}

// MatchPlayerStats projects every base fixture: expected goals through the
// market fallback chain, then per-player probabilities. Players priced in
// the goalscorer market but absent from the season table are appended with
// direct odds only.
func (s *StatsService) MatchPlayerStats() ([]MatchCombinedStats, error) {
	if s.tables.Errs.Players != nil {
		return nil, ErrSourceUnavailable
	}
	if len(s.tables.BaseFixtures) == 0 {
		return nil, ErrNoResults
	}

	out := make([]MatchCombinedStats, 0, len(s.tables.BaseFixtures))
	for _, fix := range s.tables.BaseFixtures {
		homeXG, awayXG, xgSource := s.estimateXG(fix)

		pair := schedule.NewPairKey(fix.HomeTeam, fix.AwayTeam)
		var homeCS, awayCS float64
		if entry, ok := s.lookupCleanSheets(pair, fix.Date); ok {
			homeCS = entry.Shares[fix.HomeTeam]
			awayCS = entry.Shares[fix.AwayTeam]
		}

		match := MatchCombinedStats{
			FixtureID:         fix.FixtureID,
			Gameweek:          fix.Gameweek,
			Date:              fix.Date,
			HomeTeamCanonical: fix.HomeTeam,
			AwayTeamCanonical: fix.AwayTeam,
			HomeTeamXG:        odds.Round3(homeXG),
			AwayTeamXG:        odds.Round3(awayXG),
			XGSource:          xgSource,
			Players:           []PlayerCombinedStats{},
		}

		marketKey := csKey{Pair: pair, Date: fix.Date}
		processed := make(map[playerKey]bool)

		for _, side := range []struct {
			team   string
			teamXG float64
			teamCS float64
		}{
			{fix.HomeTeam, homeXG, homeCS},
			{fix.AwayTeam, awayXG, awayCS},
		} {
			totals := s.tables.TeamSeason[side.team]
			detail := s.tables.TeamDetail(side.team)
			for _, p := range s.tables.Players[side.team] {
				agsProb, agsSource := s.goalscorerProbability(p.Name, p.PlayerID, p.PlayerAPIID, side.team, marketKey, p.Goals, totals.Goals, side.teamXG, xgSource)
				aasProb, aasSource := assistProbability(p.Assists, totals.Assists, side.teamXG, xgSource)

				var csProb float64
				if isDefensivePosition(p.Position) {
					csProb = side.teamCS
				}

				match.Players = append(match.Players, PlayerCombinedStats{
					PlayerName:                   p.Name,
					PlayerID:                     p.PlayerID,
					PlayerAPIID:                  p.PlayerAPIID,
					TeamNameCanonical:            side.team,
					TeamAPIID:                    detail.APIID,
					TeamShortCode:                detail.ShortCode,
					Position:                     p.Position,
					PlayerDisplayName:            p.DisplayName,
					PlayerPrice:                  p.Price,
					PlayerImage:                  p.ImageURL,
					AnytimeGoalscorerProbability: agsProb,
					AGSProbSource:                agsSource,
					AnytimeAssistProbability:     aasProb,
					AASProbSource:                aasSource,
					CleanSheetProbability:        odds.Round2(csProb),
				})
				processed[playerKey{strings.ToLower(p.Name), side.team, p.PlayerID, p.PlayerAPIID}] = true
			}
		}

		// Players priced in the market but missing from the season table.
		for _, q := range s.agsByKey[marketKey] {
			if alreadyProcessed(processed, q) || q.Odd <= 1.0 {
				continue
			}

			var csProb float64
			if isDefensivePosition(q.Position) {
				switch q.TeamCanonical {
				case fix.HomeTeam:
					csProb = homeCS
				case fix.AwayTeam:
					csProb = awayCS
				}
			}

			detail := s.tables.TeamDetail(q.TeamCanonical)
			match.Players = append(match.Players, PlayerCombinedStats{
				PlayerName:                   q.Name,
				PlayerID:                     q.PlayerID,
				PlayerAPIID:                  q.PlayerAPIID,
				TeamNameCanonical:            q.TeamCanonical,
				TeamAPIID:                    detail.APIID,
				TeamShortCode:                detail.ShortCode,
				Position:                     q.Position,
				PlayerDisplayName:            q.Name,
				AnytimeGoalscorerProbability: odds.Round2(1.0 / q.Odd * 100.0),
				AGSProbSource:                "direct_odds_only (not_in_excel)",
				AnytimeAssistProbability:     0.0,
				AASProbSource:                "unavailable (not_in_excel)",
				CleanSheetProbability:        odds.Round2(csProb),
			})
			processed[playerKey{strings.ToLower(q.Name), q.TeamCanonical, q.PlayerID, q.PlayerAPIID}] = true
		}

		out = append(out, match)
	}
	return out, nil
}

// goalscorerProbability prefers a direct market price and falls back to a
// Poisson projection of the player's season share of the team's expected
// goals.
func (s *StatsService) goalscorerProbability(name, playerID, playerAPIID, team string, key csKey, playerGoals, teamGoals, teamXG float64, xgSource string) (float64, string) {
	if prob, ok := s.directGoalscorerOdds(name, playerID, playerAPIID, team, key); ok {
		return odds.Round2(prob * 100.0), "direct_odds"
	}

	prob := poissonScoreProbability(playerGoals, teamGoals, teamXG)
	source := "estimated_poisson_from_" + xgSource
	switch {
	case playerGoals > 0 && prob == 0:
		source += "_low_prob"
	case prob == 0:
		source += "_no_season_goals_or_low_xg"
	}
	return odds.Round2(prob * 100.0), source
}

// assistProbability is the Poisson projection over season assists. The
// snapshots carry no direct assist market.
func assistProbability(playerAssists, teamAssists, teamXG float64, xgSource string) (float64, string) {
	prob := poissonScoreProbability(playerAssists, teamAssists, teamXG)
	source := "estimated_poisson_from_" + xgSource
	switch {
	case playerAssists > 0 && prob == 0:
		source += "_low_prob"
	case prob == 0:
		source += "_no_season_assists_or_low_xg"
	}
	return odds.Round2(prob * 100.0), source
}

// poissonScoreProbability is P(at least one event) under a Poisson rate of
// the player's share of the team's expected goals.
func poissonScoreProbability(playerCount, teamCount, teamXG float64) float64 {
	if teamCount <= 0 || playerCount < 0 || teamXG <= 0 {
		return 0
	}
	lambda := (playerCount / teamCount) * teamXG
	if lambda <= 0 {
		return 0
	}
	return 1.0 - math.Exp(-lambda)
}

// directGoalscorerOdds finds a player's anytime-goalscorer price by player
// id, API id, or name plus team. The first match decides; a matched price
// at evens or shorter is unusable.
func (s *StatsService) directGoalscorerOdds(name, playerID, playerAPIID, team string, key csKey) (float64, bool) {
	nameLower := strings.ToLower(name)
	for _, q := range s.agsByKey[key] {
		matched := (playerID != "" && q.PlayerID == playerID && q.TeamCanonical == team) ||
			(playerAPIID != "" && q.PlayerAPIID == playerAPIID && q.TeamCanonical == team) ||
			(strings.ToLower(q.Name) == nameLower && q.TeamCanonical == team)
		if !matched {
			continue
		}
		if q.Odd > 1.0 {
			return 1.0 / q.Odd, true
		}
		return 0, false
	}
	return 0, false
}

// alreadyProcessed reports whether a priced player was already emitted from
// the season table. Ids win when both sides carry them; otherwise a
// name-and-team match with no ids on either side counts.
func alreadyProcessed(processed map[playerKey]bool, q agsQuote) bool {
	nameLower := strings.ToLower(q.Name)
	for key := range processed {
		if key.nameLower != nameLower || key.team != q.TeamCanonical {
			continue
		}
		if (q.PlayerID != "" && q.PlayerID == key.playerID) ||
			(q.PlayerAPIID != "" && q.PlayerAPIID == key.playerAPIID) ||
			(q.PlayerID == "" && q.PlayerAPIID == "" && key.playerID == "" && key.playerAPIID == "") {
			return true
		}
	}
	return false
}

// isDefensivePosition matches loosely so variants like "Defender (CB)"
// still count.
func isDefensivePosition(position string) bool {
	if position == "" {
		return false
	}
	posLower := strings.ToLower(position)
	for _, def := range refdata.DefensivePositions {
		if strings.Contains(posLower, strings.ToLower(def)) {
			return true
		}
	}
	return false
}
