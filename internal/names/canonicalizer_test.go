package names

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAliases() map[string]string {
	return map[string]string{
		"Real Madrid":        "Real Madrid CF",
		"Real Madrid CF":     "Real Madrid CF",
		"Bayern Munich":      "FC Bayern München",
		"FC Bayern München":  "FC Bayern München",
		"Chelsea":            "Chelsea FC",
		"Chelsea FC":         "Chelsea FC",
		"Inter Miami":        "Inter Miami CF",
		"Inter Miami CF":     "Inter Miami CF",
		"18":                 "Chelsea FC",
	}
}

func TestCanonicalizeCascade(t *testing.T) {
	c := NewCanonicalizer(testAliases(), DefaultRules())

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"exact alias key", "Real Madrid", "Real Madrid CF"},
		{"exact canonical value", "Chelsea FC", "Chelsea FC"},
		{"case insensitive key", "real madrid", "Real Madrid CF"},
		{"surrounding whitespace", "  Chelsea  ", "Chelsea FC"},
		{"suffix normalized", "Real Madrid C.F.", "Real Madrid CF"},
		{"suffix and case normalized", "BAYERN MUNICH FC", "FC Bayern München"},
		{"numeric alias", "18", "Chelsea FC"},
		{"unknown passthrough", "Galatasaray SK", "Galatasaray SK"},
		{"empty input", "", "N/A_EmptyName"},
		{"whitespace only", "   ", "N/A_EmptyName"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Canonicalize(tt.in))
		})
	}
}

func TestCanonicalizeIdempotent(t *testing.T) {
	c := NewCanonicalizer(testAliases(), DefaultRules())

	inputs := []string{"Real Madrid", "real madrid", "Chelsea FC", "Unknown Team", "", "42", "Inter Miami"}
	for _, in := range inputs {
		once := c.Canonicalize(in)
		assert.Equal(t, once, c.Canonicalize(once), "input %q", in)
	}
}

func TestCanonicalizeIsTotal(t *testing.T) {
	c := NewCanonicalizer(testAliases(), DefaultRules())

	// No input may panic or return an empty string.
	inputs := []string{"", " ", ".", "-", "()", "12345", "a", "N/A_EmptyName"}
	for i := 0; i < 200; i++ {
		inputs = append(inputs, fmt.Sprintf("team-%d", i))
	}
	for _, in := range inputs {
		out := c.Canonicalize(in)
		require.NotEmpty(t, out, "input %q", in)
	}
}

func TestIsSentinel(t *testing.T) {
	assert.True(t, IsSentinel(EmptyName))
	assert.True(t, IsSentinel("N/A_ID"))
	assert.False(t, IsSentinel("Chelsea FC"))
	assert.False(t, IsSentinel(""))
}

func TestCanonicalizerCopiesAliasTable(t *testing.T) {
	aliases := testAliases()
	c := NewCanonicalizer(aliases, DefaultRules())

	aliases["Real Madrid"] = "Mutated"
	assert.Equal(t, "Real Madrid CF", c.Canonicalize("Real Madrid"))
}
