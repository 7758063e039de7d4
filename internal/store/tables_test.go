package store

import (
	"testing"

	"github.com/fortuna/pallas/internal/names"
	"github.com/stretchr/testify/assert"
)

func testTables() *Tables {
	canon := names.NewCanonicalizer(map[string]string{
		"Chelsea":        "Chelsea FC",
		"Chelsea FC":     "Chelsea FC",
		"LAFC":           "LAFC",
		"Real Madrid":    "Real Madrid CF",
		"Real Madrid CF": "Real Madrid CF",
	}, names.DefaultRules())
	return &Tables{Canon: canon}
}

func TestSplitMatchStringSeparators(t *testing.T) {
	tables := testTables()

	tests := []struct {
		in         string
		home, away string
		ok         bool
	}{
		{"Chelsea vs LAFC", "Chelsea FC", "LAFC", true},
		{"Chelsea - LAFC", "Chelsea FC", "LAFC", true},
		{"LAFC @ Chelsea", "LAFC", "Chelsea FC", true},
		{"Chelsea  LAFC", "Chelsea FC", "LAFC", true}, // double space
		{"Galatasaray vs Fenerbahce", "Galatasaray", "Fenerbahce", true}, // passthrough canonicals
		{"Chelsea vs ", "", "", false}, // empty side
		{"ChelseaLAFC", "", "", false},
		{"", "", "", false},
	}
	for _, tt := range tests {
		home, away, ok := tables.SplitMatchString(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		if tt.ok {
			assert.Equal(t, tt.home, home, "input %q", tt.in)
			assert.Equal(t, tt.away, away, "input %q", tt.in)
		}
	}
}

func TestTeamDetailFallsBackToDefault(t *testing.T) {
	tables := testTables()
	tables.Teams = nil

	detail := tables.TeamDetail("Nowhere FC")
	assert.Equal(t, "N/A_ID", detail.TeamID)
	assert.Equal(t, "N/A", detail.ShortCode)
}
