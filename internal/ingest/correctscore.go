// Package ingest loads the market-odds snapshots and player reference data
// consumed by the stats pipeline. Loaders fail only when a whole source is
// missing or unreadable; malformed individual records are skipped so one bad
// row never aborts a batch.
package ingest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fortuna/pallas/internal/odds"
)

// CorrectScoreMatch is one match entry of the correct-score snapshot.
type CorrectScoreMatch struct {
	Match   string        `json:"match"` // e.g. "Chelsea vs LAFC"
	Date    string        `json:"date"`
	Stadium string        `json:"stadium"`
	Odds    odds.QuoteSet `json:"correct_score_odds"`
}

type correctScoreFile struct {
	Matches []CorrectScoreMatch `json:"matches"`
}

// LoadCorrectScores reads the correct-score odds snapshot. Entries without a
// match string or without any usable odds are dropped.
func LoadCorrectScores(path string) ([]CorrectScoreMatch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading correct-score snapshot: %w", err)
	}

	var file correctScoreFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decoding correct-score snapshot %s: %w", path, err)
	}

	matches := make([]CorrectScoreMatch, 0, len(file.Matches))
	for _, m := range file.Matches {
		if m.Match == "" || len(m.Odds) == 0 {
			continue
		}
		if m.Date == "" {
			m.Date = "N/A_Date"
		}
		if m.Stadium == "" {
			m.Stadium = "N/A_Stadium"
		}
		matches = append(matches, m)
	}
	return matches, nil
}

// MatchIdentifier renders the human-readable label for a match entry. It is
// a display value derived from the source record, never a lookup key.
func (m CorrectScoreMatch) MatchIdentifier() string {
	return fmt.Sprintf("%s (%s at %s)", m.Match, m.Date, m.Stadium)
}
