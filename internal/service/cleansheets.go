package service

import (
	"slices"
	"strings"

	"github.com/fortuna/pallas/internal/names"
	"github.com/fortuna/pallas/internal/odds"
	"github.com/fortuna/pallas/internal/refdata"
	"github.com/fortuna/pallas/internal/schedule"
)

// TeamCleanSheetRow is one team's clean-sheet chance in one match. Every
// match produces two rows, one per side. The match identifier is a display
// label; fixture_id is the stable key.
type TeamCleanSheetRow struct {
	MatchIdentifier      string  `json:"match_identifier"`
	FixtureID            string  `json:"fixture_id"`
	Gameweek             string  `json:"GW"`
	TeamID               string  `json:"team_id"`
	TeamNameOriginal     string  `json:"team_name_original"`
	TeamNameCanonical    string  `json:"team_name_canonical"`
	ShortCode            string  `json:"short_code"`
	APIID                int     `json:"api_id"`
	CleanSheetPercentage float64 `json:"clean_sheet_percentage"`
	ImageURL             string  `json:"image_url"`
}

// TeamCleanSheets derives each side's clean-sheet percentage from the
// correct-score markets. Matches whose label cannot be resolved to two
// canonical teams are skipped.
func (s *StatsService) TeamCleanSheets() ([]TeamCleanSheetRow, error) {
	if s.tables.Errs.CorrectScores != nil {
		return nil, ErrSourceUnavailable
	}

	var rows []TeamCleanSheetRow
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

		share := odds.CleanSheets(m.Odds)
		ref := s.resolvePair(homeCanonical, awayCanonical)
		identifier := m.MatchIdentifier()

		homeDetail := s.tables.TeamDetail(homeCanonical)
		awayDetail := s.tables.TeamDetail(awayCanonical)
		rows = append(rows,
			TeamCleanSheetRow{
				MatchIdentifier:      identifier,
				FixtureID:            ref.FixtureID,
				Gameweek:             ref.Gameweek,
				TeamID:               homeDetail.TeamID,
				TeamNameOriginal:     homeRaw,
				TeamNameCanonical:    homeCanonical,
				ShortCode:            homeDetail.ShortCode,
				APIID:                homeDetail.APIID,
				CleanSheetPercentage: share.Home,
				ImageURL:             homeDetail.ImageURL,
			},
			TeamCleanSheetRow{
				MatchIdentifier:      identifier,
				FixtureID:            ref.FixtureID,
				Gameweek:             ref.Gameweek,
				TeamID:               awayDetail.TeamID,
				TeamNameOriginal:     awayRaw,
				TeamNameCanonical:    awayCanonical,
				ShortCode:            awayDetail.ShortCode,
				APIID:                awayDetail.APIID,
				CleanSheetPercentage: share.Away,
				ImageURL:             awayDetail.ImageURL,
			},
		)
	}
	if len(rows) == 0 {
		return nil, ErrNoResults
	}
	return rows, nil
}

// DefensivePlayerRow is a defender's clean-sheet chance in one match.
type DefensivePlayerRow struct {
	PlayerName           string  `json:"player_name"`
	PlayerID             string  `json:"player_id,omitempty"`
	PlayerAPIID          string  `json:"player_api_id,omitempty"`
	TeamNameCanonical    string  `json:"team_name_canonical"`
	TeamID               string  `json:"team_id"`
	TeamShortCode        string  `json:"team_short_code"`
	TeamAPIID            int     `json:"team_api_id"`
	Position             string  `json:"position"`
	CleanSheetPercentage float64 `json:"clean_sheet_percentage"`
	TeamImageURL         string  `json:"team_image_url"`
}

// MatchPlayerCleanSheets groups the defensive players of one match.
type MatchPlayerCleanSheets struct {
	MatchIdentifier  string               `json:"match_identifier"`
	FixtureID        string               `json:"fixture_id"`
	Gameweek         string               `json:"GW"`
	DefensivePlayers []DefensivePlayerRow `json:"defensive_players"`
}

// PlayerCleanSheets assigns each defensive player the clean-sheet chance of
// their side, drawn from the team-level cache. Players whose team matches
// neither side of their listed match get zero.
func (s *StatsService) PlayerCleanSheets() ([]MatchPlayerCleanSheets, error) {
	if s.tables.Errs.Goalscorers != nil {
		return nil, ErrSourceUnavailable
	}

	var out []MatchPlayerCleanSheets
	index := make(map[string]int) // match identifier -> position in out
	for _, m := range s.tables.Goalscorers {
		homeCanonical := s.tables.Canon.Canonicalize(m.HomeTeam)
		awayCanonical := s.tables.Canon.Canonicalize(m.AwayTeam)
		if names.IsSentinel(homeCanonical) || names.IsSentinel(awayCanonical) {
			continue
		}

		pair := schedule.NewPairKey(homeCanonical, awayCanonical)
		ref := s.resolvePair(homeCanonical, awayCanonical)

		var homeCS, awayCS float64
		identifier := m.HomeTeam + " vs " + m.AwayTeam + " (" + m.Date + " at " + m.Stadium + ")"
		if entry, ok := s.lookupCleanSheets(pair, m.Date); ok {
			identifier = entry.Identifier
			homeCS = entry.Shares[homeCanonical]
			awayCS = entry.Shares[awayCanonical]
		}

		pos, ok := index[identifier]
		if !ok {
			out = append(out, MatchPlayerCleanSheets{
				MatchIdentifier:  identifier,
				FixtureID:        ref.FixtureID,
				Gameweek:         ref.Gameweek,
				DefensivePlayers: []DefensivePlayerRow{},
			})
			pos = len(out) - 1
			index[identifier] = pos
		}

		for _, p := range m.Players {
			if p.Position == "" || !slices.Contains(refdata.DefensivePositions, p.Position) {
				continue
			}
			teamCanonical := s.tables.Canon.Canonicalize(p.Team)
			if names.IsSentinel(teamCanonical) {
				continue
			}
			var csPct float64
			switch teamCanonical {
			case homeCanonical:
				csPct = homeCS
			case awayCanonical:
				csPct = awayCS
			}
			detail := s.tables.TeamDetail(teamCanonical)
			out[pos].DefensivePlayers = append(out[pos].DefensivePlayers, DefensivePlayerRow{
				PlayerName:           p.Name,
				PlayerID:             p.PlayerID,
				PlayerAPIID:          p.PlayerAPIID,
				TeamNameCanonical:    teamCanonical,
				TeamID:               detail.TeamID,
				TeamShortCode:        detail.ShortCode,
				TeamAPIID:            detail.APIID,
				Position:             p.Position,
				CleanSheetPercentage: odds.Round2(csPct),
				TeamImageURL:         detail.ImageURL,
			})
		}
	}
	if len(out) == 0 {
		return nil, ErrNoResults
	}
	return out, nil
}

// splitVersus splits a "Home vs Away" label into its raw sides.
func splitVersus(matchStr string) (home, away string, ok bool) {
	parts := strings.SplitN(matchStr, " vs ", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	home = strings.TrimSpace(parts[0])
	away = strings.TrimSpace(parts[1])
	return home, away, home != "" && away != ""
}
