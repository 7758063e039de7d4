package odds

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteSetPreservesKeyOrder(t *testing.T) {
	raw := []byte(`{"1-0": 2.0, "0-0": 7.5, "0-1": 4.0, "2-1": 9.0}`)

	var qs QuoteSet
	require.NoError(t, json.Unmarshal(raw, &qs))
	require.Len(t, qs, 4)

	got := make([]string, len(qs))
	for i, q := range qs {
		got[i] = q.Outcome
	}
	assert.Equal(t, []string{"1-0", "0-0", "0-1", "2-1"}, got)
}

func TestQuoteSetCoercion(t *testing.T) {
	raw := []byte(`{"1-0": 2.0, "0-1": "4.5", "1-1": "abc", "2-0": null}`)

	var qs QuoteSet
	require.NoError(t, json.Unmarshal(raw, &qs))

	// Non-numeric and null odds are dropped, valid string odds kept.
	require.Len(t, qs, 2)
	assert.Equal(t, Quote{Outcome: "1-0", Odd: 2.0}, qs[0])
	assert.Equal(t, Quote{Outcome: "0-1", Odd: 4.5}, qs[1])
}

func TestParseScore(t *testing.T) {
	home, away, err := ParseScore("2-1")
	require.NoError(t, err)
	assert.Equal(t, 2, home)
	assert.Equal(t, 1, away)

	_, _, err = ParseScore("2:1")
	assert.Error(t, err)

	_, _, err = ParseScore("x-y")
	assert.Error(t, err)

	_, _, err = ParseScore("")
	assert.Error(t, err)
}
