package store

// Player is one season reference row keyed to a canonical team name.
type Player struct {
	Name          string  `json:"player_name"`
	DisplayName   string  `json:"player_display_name"`
	TeamCanonical string  `json:"team_name_canonical"`
	Position      string  `json:"position"`
	PlayerID      string  `json:"player_id,omitempty"`
	PlayerAPIID   string  `json:"player_api_id,omitempty"`
	Price         float64 `json:"player_price"`
	ImageURL      string  `json:"player_image,omitempty"`
	Goals         float64 `json:"goals"`
	Assists       float64 `json:"assists"`
}

// SeasonTotals aggregates a team's player goal and assist counts for the
// season. Poisson projections divide player counts by these totals.
type SeasonTotals struct {
	Goals   float64
	Assists float64
}
