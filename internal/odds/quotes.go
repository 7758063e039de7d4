package odds

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Quote pairs an outcome label (a correct score such as "2-1", or a team
// name for outright markets) with a decimal odd.
type Quote struct {
	Outcome string  `json:"outcome"`
	Odd     float64 `json:"odd"`
}

// QuoteSet is a market's full odds listing in source order. Order matters:
// ranking ties are broken by source position.
type QuoteSet []Quote

// UnmarshalJSON decodes a JSON object of outcome -> odd, preserving key
// order. Odds quoted as numeric strings are coerced; entries whose value is
// not numeric at all are dropped, which keeps one bad quote from discarding
// the rest of the market.
func (qs *QuoteSet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("odds: expected object, got %v", tok)
	}

	out := QuoteSet{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		outcome, _ := keyTok.(string)

		valTok, err := dec.Token()
		if err != nil {
			return err
		}
		odd, ok := coerceOdd(valTok)
		if !ok {
			continue
		}
		out = append(out, Quote{Outcome: strings.TrimSpace(outcome), Odd: odd})
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}

	*qs = out
	return nil
}

func coerceOdd(tok json.Token) (float64, bool) {
	switch v := tok.(type) {
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	case float64:
		return v, true
	default:
		return 0, false
	}
}

// ParseScore splits a "home-away" score label into its goal counts.
func ParseScore(score string) (home, away int, err error) {
	parts := strings.Split(strings.TrimSpace(score), "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("odds: malformed score %q", score)
	}
	home, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("odds: malformed score %q: %w", score, err)
	}
	away, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("odds: malformed score %q: %w", score, err)
	}
	return home, away, nil
}
