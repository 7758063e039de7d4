package service

import (
	"sort"

	"github.com/fortuna/pallas/internal/schedule"
)

// TeamReference is one canonical team with its directory details.
type TeamReference struct {
	TeamNameCanonical string `json:"team_name_canonical"`
	TeamID            string `json:"team_id"`
	ShortCode         string `json:"short_code"`
	APIID             int    `json:"api_id"`
	ImageURL          string `json:"image_url"`
}

// Teams lists the canonical team directory sorted by name.
func (s *StatsService) Teams() []TeamReference {
	out := make([]TeamReference, 0, len(s.tables.Teams))
	for name, detail := range s.tables.Teams {
		out = append(out, TeamReference{
			TeamNameCanonical: name,
			TeamID:            detail.TeamID,
			ShortCode:         detail.ShortCode,
			APIID:             detail.APIID,
			ImageURL:          detail.ImageURL,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TeamNameCanonical < out[j].TeamNameCanonical })
	return out
}

// Fixtures lists the resolved base fixtures in kickoff order.
func (s *StatsService) Fixtures() []schedule.BaseFixture {
	out := make([]schedule.BaseFixture, len(s.tables.BaseFixtures))
	copy(out, s.tables.BaseFixtures)
	return out
}
