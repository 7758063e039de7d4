package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmericanToDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"+150", 2.5, true},
		{"-200", 1.5, true},
		{"+100", 2.0, true},
		{"-100", 2.0, true},
		{"+2500", 26.0, true},
		{"150", 0, false},
		{"+abc", 0, false},
		{"-0", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := americanToDecimal(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		if tt.ok {
			assert.InDelta(t, tt.want, got, 1e-9, "input %q", tt.in)
		}
	}
}

func TestParseOutrightHTML(t *testing.T) {
	html := `<html><body>
<div data-testid="outrights-table-row">
  <div data-testid="outrights-participant-name"><p>Real Madrid</p></div>
  <div data-testid="add-to-coupon-button"><p>+450</p></div>
</div>
<div data-testid="outrights-table-row">
  <div data-testid="outrights-participant-name"><p>Manchester City</p></div>
  <div data-testid="add-to-coupon-button"><p>4.20</p></div>
</div>
<div data-testid="outrights-table-row">
  <div data-testid="outrights-participant-name"><p>Chelsea</p></div>
  <div data-testid="add-to-coupon-button"><p>n/a</p></div>
</div>
</body></html>`
	path := filepath.Join(t.TempDir(), "outrights.html")
	require.NoError(t, os.WriteFile(path, []byte(html), 0o644))

	quotes, err := ParseOutrightHTML(path)
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.Equal(t, OutrightQuote{RawTeamName: "Real Madrid", DecimalOdds: 5.5}, quotes[0])
	assert.Equal(t, OutrightQuote{RawTeamName: "Manchester City", DecimalOdds: 4.2}, quotes[1])
}

func TestParseOutrightMarkdown(t *testing.T) {
	md := `# Outright Winner

![Real Madrid badge](https://cdn.example.com/rma.png)
Real Madrid
1
+450

![PSG badge](https://cdn.example.com/psg.png)
Paris Saint-Germain
2
-120
`
	path := filepath.Join(t.TempDir(), "odds.md")
	require.NoError(t, os.WriteFile(path, []byte(md), 0o644))

	quotes, err := ParseOutrightMarkdown(path)
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.Equal(t, "Real Madrid", quotes[0].RawTeamName)
	assert.InDelta(t, 5.5, quotes[0].DecimalOdds, 1e-9)
	assert.Equal(t, "Paris Saint-Germain", quotes[1].RawTeamName)
	assert.InDelta(t, 100.0/120.0+1.0, quotes[1].DecimalOdds, 1e-9)
}

func TestLoadOutrightsFallsBackToMarkdown(t *testing.T) {
	dir := t.TempDir()
	md := "![x](https://cdn.example.com/x.png)\nChelsea\n3\n+700\n"
	mdPath := filepath.Join(dir, "odds.md")
	require.NoError(t, os.WriteFile(mdPath, []byte(md), 0o644))

	quotes := LoadOutrights(filepath.Join(dir, "missing.html"), mdPath)
	require.Len(t, quotes, 1)
	assert.Equal(t, "Chelsea", quotes[0].RawTeamName)
}
