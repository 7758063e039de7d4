package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// PlayerRecord is one row of the season player reference table.
type PlayerRecord struct {
	Name        string
	DisplayName string
	Team        string
	Position    string
	PlayerID    string
	PlayerAPIID string
	Price       float64
	ImageURL    string
	Goals       float64
	Assists     float64
}

type playerRawRecord struct {
	Name        string    `json:"player_name"`
	DisplayName string    `json:"player_display_name"`
	Team        string    `json:"team"`
	Position    string    `json:"position"`
	PlayerID    flexID    `json:"player_id"`
	PlayerAPIID flexID    `json:"player_api_id"`
	Price       flexFloat `json:"player_price"`
	ImageURL    string    `json:"player_image"`
	Goals       flexFloat `json:"goals"`
	Assists     flexFloat `json:"assists"`
}

type playerFile struct {
	Players []playerRawRecord `json:"players"`
}

// LoadPlayers reads the season player reference table. Rows without a player
// name or a team are dropped; missing goal and assist counts read as zero.
func LoadPlayers(path string) ([]PlayerRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading player table: %w", err)
	}

	var file playerFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decoding player table %s: %w", path, err)
	}

	players := make([]PlayerRecord, 0, len(file.Players))
	for _, raw := range file.Players {
		name := strings.TrimSpace(raw.Name)
		team := strings.TrimSpace(raw.Team)
		if name == "" || team == "" {
			continue
		}
		display := strings.TrimSpace(raw.DisplayName)
		if display == "" {
			display = name
		}
		players = append(players, PlayerRecord{
			Name:        name,
			DisplayName: display,
			Team:        team,
			Position:    strings.TrimSpace(raw.Position),
			PlayerID:    string(raw.PlayerID),
			PlayerAPIID: string(raw.PlayerAPIID),
			Price:       float64(raw.Price),
			ImageURL:    strings.TrimSpace(raw.ImageURL),
			Goals:       float64(raw.Goals),
			Assists:     float64(raw.Assists),
		})
	}
	return players, nil
}
