package odds

import (
	"math"
	"sort"
)

// NoValidOdds is the sentinel used when a market has no usable quotes.
const NoValidOdds = "N/A"

// TopScoresLimit caps the ranked correct-score output per match.
const TopScoresLimit = 4

// OutcomeProbability is one outcome of a normalized distribution.
type OutcomeProbability struct {
	Outcome string
	Implied float64 // raw implied probability, 1/odd
	Percent float64 // overround-free share of the market, 0..100
}

// Distribution is the de-vigged probability distribution of a quote set.
// Entries keep the source order of the quotes.
type Distribution struct {
	Entries      []OutcomeProbability
	TotalImplied float64
}

// Normalize converts a quote set into implied probabilities and normalized
// percentages. Odds of zero or below contribute an implied probability of 0
// rather than failing. When every quote is degenerate, all percentages are 0
// and TotalImplied is 0; callers decide how to surface that.
func Normalize(quotes QuoteSet) Distribution {
	dist := Distribution{Entries: make([]OutcomeProbability, 0, len(quotes))}
	for _, q := range quotes {
		implied := 0.0
		if q.Odd > 0 {
			implied = 1.0 / q.Odd
		}
		dist.Entries = append(dist.Entries, OutcomeProbability{Outcome: q.Outcome, Implied: implied})
		dist.TotalImplied += implied
	}
	if dist.TotalImplied > 0 {
		for i := range dist.Entries {
			dist.Entries[i].Percent = dist.Entries[i].Implied / dist.TotalImplied * 100.0
		}
	}
	return dist
}

// CleanSheetShare holds both sides' clean-sheet percentages for one match.
// The two values are independent: a 0-0 counts toward both.
type CleanSheetShare struct {
	Home float64
	Away float64
}

// CleanSheets partitions a correct-score market by "did this side concede"
// and normalizes each partition against the full market total. Outcomes that
// are not in score format still count toward the denominator, matching the
// market's quoted overround.
func CleanSheets(quotes QuoteSet) CleanSheetShare {
	var total, homeCS, awayCS float64
	for _, q := range quotes {
		if q.Odd <= 0 {
			continue
		}
		implied := 1.0 / q.Odd
		total += implied

		homeGoals, awayGoals, err := ParseScore(q.Outcome)
		if err != nil {
			continue
		}
		if awayGoals == 0 {
			homeCS += implied
		}
		if homeGoals == 0 {
			awayCS += implied
		}
	}
	if total <= 0 {
		return CleanSheetShare{}
	}
	return CleanSheetShare{
		Home: Round2(homeCS / total * 100.0),
		Away: Round2(awayCS / total * 100.0),
	}
}

// ScoreProbability is one ranked correct-score outcome. Percentage is a
// float64 for real outcomes and the NoValidOdds string for the sentinel row.
type ScoreProbability struct {
	Score      string `json:"score"`
	Percentage any    `json:"percentage"`
}

// TopScores ranks a correct-score market by normalized percentage,
// descending, and returns at most TopScoresLimit entries. Ties keep source
// order. An empty or fully degenerate market yields a single sentinel row
// rather than an empty list.
func TopScores(quotes QuoteSet) []ScoreProbability {
	dist := Normalize(quotes)
	if dist.TotalImplied <= 0 {
		return []ScoreProbability{{Score: NoValidOdds, Percentage: NoValidOdds}}
	}

	ranked := make([]OutcomeProbability, len(dist.Entries))
	copy(ranked, dist.Entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Percent > ranked[j].Percent
	})

	limit := TopScoresLimit
	if len(ranked) < limit {
		limit = len(ranked)
	}
	out := make([]ScoreProbability, 0, limit)
	for _, entry := range ranked[:limit] {
		out = append(out, ScoreProbability{Score: entry.Outcome, Percentage: Round2(entry.Percent)})
	}
	return out
}

// ExpectedGoals derives each side's expected goals from a correct-score
// market as the normalized-probability-weighted average of quoted goals.
// Quotes at or below evens carry no information and are skipped. Returns
// ok=false when no usable score quote exists.
func ExpectedGoals(quotes QuoteSet) (homeXG, awayXG float64, ok bool) {
	type scoreProb struct {
		home, away int
		implied    float64
	}
	var entries []scoreProb
	var total float64
	for _, q := range quotes {
		if q.Odd <= 1.0 {
			continue
		}
		homeGoals, awayGoals, err := ParseScore(q.Outcome)
		if err != nil {
			continue
		}
		implied := 1.0 / q.Odd
		entries = append(entries, scoreProb{home: homeGoals, away: awayGoals, implied: implied})
		total += implied
	}
	if total <= 0 {
		return 0, 0, false
	}
	for _, e := range entries {
		norm := e.implied / total
		homeXG += float64(e.home) * norm
		awayXG += float64(e.away) * norm
	}
	return Round3(homeXG), Round3(awayXG), true
}

// Round2 rounds to two decimal places, the precision used for reported
// percentages.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round3 rounds to three decimal places, the precision used for expected
// goals.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
