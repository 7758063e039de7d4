package service

import (
	"log"

	"github.com/fortuna/pallas/internal/names"
	"github.com/fortuna/pallas/internal/store"
)

// defaultStrength is assigned to any team without a usable outright price.
const defaultStrength = 10.0

// buildStrengthMetrics converts tournament-winner odds into a per-team
// strength on the 10..100 scale. Implied probabilities are normalized over
// the priced field, then rescaled so the favorite sits at 100. Teams in the
// schedule but not in the market get the default.
func buildStrengthMetrics(t *store.Tables) map[string]float64 {
	strengths := make(map[string]float64)
	for team := range t.TeamSeason {
		strengths[team] = defaultStrength
	}

	type pricedTeam struct {
		team    string
		implied float64
	}
	var priced []pricedTeam
	seen := make(map[string]bool)
	for _, q := range t.Outrights {
		canonical := t.Canon.Canonicalize(q.RawTeamName)
		if names.IsSentinel(canonical) || seen[canonical] || q.DecimalOdds <= 1.0 {
			continue
		}
		seen[canonical] = true
		priced = append(priced, pricedTeam{team: canonical, implied: 1.0 / q.DecimalOdds})
	}
	if len(priced) == 0 {
		log.Printf("⚠️  No priced outrights; every team gets default strength %.1f", defaultStrength)
		return strengths
	}

	var total float64
	for _, p := range priced {
		total += p.implied
	}
	if total < 1e-9 {
		return strengths
	}

	var maxNorm float64
	norms := make([]float64, len(priced))
	for i, p := range priced {
		norms[i] = p.implied / total
		if norms[i] > maxNorm {
			maxNorm = norms[i]
		}
	}
	if maxNorm < 1e-9 {
		return strengths
	}

	for i, p := range priced {
		strengths[p.team] = norms[i]/maxNorm*90.0 + 10.0
	}
	return strengths
}
