package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// GoalscorerPlayer is one priced player in an anytime-goalscorer market.
// Snapshot exports are inconsistent about id types (string in some runs,
// number in others), so both ids decode through flexID.
type GoalscorerPlayer struct {
	Name        string  `json:"player"`
	Team        string  `json:"team"`
	Position    string  `json:"position"`
	Odd         float64 `json:"odds"`
	PlayerID    string  `json:"player_id"`
	PlayerAPIID string  `json:"player_api_id"`
}

// GoalscorerMatch is one match block of the anytime-goalscorer snapshot.
type GoalscorerMatch struct {
	HomeTeam string             `json:"home_team"`
	AwayTeam string             `json:"away_team"`
	Date     string             `json:"date"`
	Stadium  string             `json:"stadium"`
	Players  []GoalscorerPlayer `json:"players"`
}

type goalscorerFile struct {
	Matches []goalscorerRawMatch `json:"matches"`
}

type goalscorerRawMatch struct {
	HomeTeam string          `json:"home_team"`
	AwayTeam string          `json:"away_team"`
	Date     string          `json:"date"`
	Stadium  string          `json:"stadium"`
	Players  json.RawMessage `json:"players"`
}

type goalscorerRawPlayer struct {
	Name        string    `json:"player"`
	Team        string    `json:"team"`
	Position    string    `json:"position"`
	Odd         flexFloat `json:"odds"`
	PlayerID    flexID    `json:"player_id"`
	PlayerAPIID flexID    `json:"player_api_id"`
}

// LoadGoalscorers reads the anytime-goalscorer odds snapshot. Match blocks
// missing a team or date are dropped; players without a name are dropped.
func LoadGoalscorers(path string) ([]GoalscorerMatch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading goalscorer snapshot: %w", err)
	}

	var file goalscorerFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decoding goalscorer snapshot %s: %w", path, err)
	}

	matches := make([]GoalscorerMatch, 0, len(file.Matches))
	for _, raw := range file.Matches {
		if raw.HomeTeam == "" || raw.AwayTeam == "" || raw.Date == "" {
			continue
		}
		m := GoalscorerMatch{
			HomeTeam: raw.HomeTeam,
			AwayTeam: raw.AwayTeam,
			Date:     raw.Date,
			Stadium:  raw.Stadium,
		}
		if m.Stadium == "" {
			m.Stadium = "N/A_Stadium"
		}
		if len(raw.Players) > 0 {
			var rawPlayers []goalscorerRawPlayer
			if err := json.Unmarshal(raw.Players, &rawPlayers); err != nil {
				// Player list unreadable; keep the match shell so fixture
				// level lookups still resolve.
				rawPlayers = nil
			}
			for _, rp := range rawPlayers {
				name := strings.TrimSpace(rp.Name)
				if name == "" {
					continue
				}
				m.Players = append(m.Players, GoalscorerPlayer{
					Name:        name,
					Team:        strings.TrimSpace(rp.Team),
					Position:    strings.TrimSpace(rp.Position),
					Odd:         float64(rp.Odd),
					PlayerID:    string(rp.PlayerID),
					PlayerAPIID: string(rp.PlayerAPIID),
				})
			}
		}
		matches = append(matches, m)
	}
	return matches, nil
}

// flexID decodes a JSON string, integer, or float into its string form.
// Null and absent values decode to "".
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == "" {
		*f = ""
		return nil
	}
	if s[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*f = flexID(strings.TrimSpace(v))
		return nil
	}
	// Numeric ids: keep the literal digits, trimming a float ".0" tail the
	// way spreadsheet round-trips tend to produce them.
	*f = flexID(strings.TrimSuffix(s, ".0"))
	return nil
}

// flexFloat decodes a JSON number or numeric string. Anything else
// decodes to zero.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == "" {
		*f = 0
		return nil
	}
	if s[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		num, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = flexFloat(num)
		return nil
	}
	var num float64
	if err := json.Unmarshal(data, &num); err != nil {
		*f = 0
		return nil
	}
	*f = flexFloat(num)
	return nil
}
