package service

import (
	"math"
	"strings"
	"time"

	"github.com/fortuna/pallas/internal/odds"
	"github.com/fortuna/pallas/internal/refdata"
	"github.com/fortuna/pallas/internal/schedule"
	"github.com/fortuna/pallas/internal/store"
)

// averageTotalGoals is the tournament-wide expected goals per match, split
// between the sides when no market gives a better estimate.
const averageTotalGoals = 2.7

// Expected-goals source tags, most trusted first.
const (
	xgSourceDirect   = "cs_odds_direct"
	xgSourceReversed = "cs_odds_reversed"
	xgSourceFDR      = "fdr_outrights_estimation"
	xgSourceDefault  = "default_average_fallback"
)

// fdrRating is a fixture's difficulty from each side's perspective, on a
// 1..99 scale where higher means a harder match.
type fdrRating struct {
	Home float64
	Away float64
}

// fdrWeights blends the three difficulty components.
var fdrWeights = struct {
	strength, venue, fatigue float64
}{0.70, 0.20, 0.10}

// buildFDRRatings precomputes the difficulty rating of every base fixture
// from opponent strength, venue advantage, and rest-day fatigue.
func buildFDRRatings(t *store.Tables, strengths map[string]float64) map[string]fdrRating {
	ratings := make(map[string]fdrRating, len(t.BaseFixtures))
	for i, fix := range t.BaseFixtures {
		var history schedule.HistoryContext
		if i < len(t.History) {
			history = t.History[i]
		}
		ratings[fix.FixtureID] = rateFixture(fix, strengths, history)
	}
	return ratings
}

func rateFixture(fix schedule.BaseFixture, strengths map[string]float64, history schedule.HistoryContext) fdrRating {
	if fix.Kickoff.IsZero() {
		return fdrRating{Home: 50.0, Away: 50.0}
	}

	// Difficulty is driven by the opponent's strength, not your own.
	homeBase := strengthOrDefault(strengths, fix.AwayTeam)
	awayBase := strengthOrDefault(strengths, fix.HomeTeam)

	homeVenue, awayVenue := venueImpact(fix.HomeTeam, fix.AwayTeam, fix.Stadium)

	matchDay := fix.Kickoff.Truncate(24 * time.Hour)
	lastHome := history[fix.HomeTeam]
	lastAway := history[fix.AwayTeam]
	homeFatigue := fatigueImpact(matchDay, lastHome, coastToCoast(fix.Stadium, lastHome))
	awayFatigue := fatigueImpact(matchDay, lastAway, coastToCoast(fix.Stadium, lastAway))

	homeRaw := fdrWeights.strength*homeBase + fdrWeights.venue*float64(homeVenue) + fdrWeights.fatigue*float64(homeFatigue)
	awayRaw := fdrWeights.strength*awayBase + fdrWeights.venue*float64(awayVenue) + fdrWeights.fatigue*float64(awayFatigue)

	return fdrRating{
		Home: round1(clamp(homeRaw/1.5+25, 1, 99)),
		Away: round1(clamp(awayRaw/1.5+25, 1, 99)),
	}
}

func strengthOrDefault(strengths map[string]float64, team string) float64 {
	if v, ok := strengths[team]; ok {
		return v
	}
	return defaultStrength
}

// venueImpact returns each side's difficulty adjustment when a club plays at
// its own home ground. The resident club gets an easier match, the visitor a
// harder one.
func venueImpact(homeCanonical, awayCanonical, stadium string) (home, away int) {
	resident, ok := refdata.HomeVenues[stadium]
	if !ok {
		return 0, 0
	}
	switch resident {
	case homeCanonical:
		return -12, 8
	case awayCanonical:
		return 8, -12
	}
	return 0, 0
}

// fatigueImpact scores a team's rest situation. No tournament history yet
// means a fully rested side. The clock-anomaly case of a negative rest gap
// is treated as maximal fatigue.
func fatigueImpact(matchDay time.Time, last *schedule.LastMatch, travelled bool) int {
	if last == nil || last.Date.IsZero() {
		return -10
	}
	restDays := int(matchDay.Sub(last.Date).Hours() / 24)
	if restDays < 0 {
		return 15
	}

	var score int
	switch {
	case restDays < 2:
		score = 15
	case restDays == 2:
		score = 8
	case restDays < 5:
		score = 0
	case restDays < 7:
		score = -5
	default:
		score = -10
	}
	if travelled {
		score += 5
	}
	return score
}

// coastToCoast reports whether the team crossed between the east and west
// venue groups since its previous match.
func coastToCoast(stadium string, last *schedule.LastMatch) bool {
	if last == nil || last.Venue == "" || stadium == "" {
		return false
	}
	return (isEastStadium(stadium) && isWestStadium(last.Venue)) ||
		(isWestStadium(stadium) && isEastStadium(last.Venue))
}

func isEastStadium(stadium string) bool { return containsStadium(refdata.EastStadiums, stadium) }
func isWestStadium(stadium string) bool { return containsStadium(refdata.WestStadiums, stadium) }

func containsStadium(list []string, stadium string) bool {
	needle := strings.ToLower(strings.TrimSpace(stadium))
	for _, s := range list {
		if strings.ToLower(strings.TrimSpace(s)) == needle {
			return true
		}
	}
	return false
}

// xgFromFDR splits the average match total between the sides in inverse
// proportion to their difficulty ratings. Each side keeps at least 0.1
// expected goals.
func xgFromFDR(r fdrRating) (homeXG, awayXG float64) {
	homeProxy := 1.0 / (r.Home + 0.1)
	awayProxy := 1.0 / (r.Away + 0.1)
	total := homeProxy + awayProxy
	if total < 1e-9 {
		return averageTotalGoals / 2.0, averageTotalGoals / 2.0
	}
	ratio := homeProxy / total
	return math.Max(0.1, ratio*averageTotalGoals), math.Max(0.1, (1.0-ratio)*averageTotalGoals)
}

// estimateXG resolves a fixture's expected goals through the fallback chain:
// its own correct-score market, the same market listed with the teams
// swapped, the difficulty-rating estimate, and finally an even split of the
// tournament average.
func (s *StatsService) estimateXG(fix schedule.BaseFixture) (homeXG, awayXG float64, source string) {
	if quotes, ok := s.tables.ScoreOdds[schedule.TripleKey{Home: fix.HomeTeam, Away: fix.AwayTeam, Date: fix.Date}]; ok {
		if h, a, valid := odds.ExpectedGoals(quotes); valid {
			return h, a, xgSourceDirect
		}
	}
	if quotes, ok := s.tables.ScoreOdds[schedule.TripleKey{Home: fix.AwayTeam, Away: fix.HomeTeam, Date: fix.Date}]; ok {
		if h, a, valid := odds.ExpectedGoals(quotes); valid {
			return a, h, xgSourceReversed
		}
	}
	if rating, ok := s.fdr[fix.FixtureID]; ok {
		h, a := xgFromFDR(rating)
		return odds.Round3(h), odds.Round3(a), xgSourceFDR
	}
	return averageTotalGoals / 2.0, averageTotalGoals / 2.0, xgSourceDefault
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
