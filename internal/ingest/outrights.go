package ingest

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// OutrightQuote is one team's tournament-winner price in decimal odds.
type OutrightQuote struct {
	RawTeamName string
	DecimalOdds float64
}

// Markdown exports list each team as an image link, the team name, a rank
// number, then the American price on its own line.
var markdownOddsPattern = regexp.MustCompile(`!\[(?:.*?)\]\(https?://.*?\)\s*\n*\s*(.*?)\s*\n*\s*(?:\d+\.?\d*)\s*\n*\s*([+-]\d+)\s*`)

// ParseOutrightHTML extracts tournament-winner quotes from a saved odds page.
// Rows missing a team name or with an unparseable price are skipped.
func ParseOutrightHTML(path string) ([]OutrightQuote, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening outright HTML snapshot: %w", err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("parsing outright HTML snapshot %s: %w", path, err)
	}

	var quotes []OutrightQuote
	doc.Find(`div[data-testid="outrights-table-row"]`).Each(func(_ int, row *goquery.Selection) {
		name := strings.TrimSpace(row.Find(`div[data-testid="outrights-participant-name"] p`).First().Text())
		oddsText := strings.TrimSpace(row.Find(`div[data-testid="add-to-coupon-button"] p`).First().Text())
		if name == "" || oddsText == "" {
			return
		}
		decimal, ok := parsePrice(oddsText)
		if !ok {
			return
		}
		quotes = append(quotes, OutrightQuote{RawTeamName: name, DecimalOdds: decimal})
	})
	return quotes, nil
}

// ParseOutrightMarkdown extracts tournament-winner quotes from a Markdown
// export of the odds page. Only American prices are recognized here.
func ParseOutrightMarkdown(path string) ([]OutrightQuote, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading outright Markdown snapshot: %w", err)
	}

	var quotes []OutrightQuote
	for _, m := range markdownOddsPattern.FindAllStringSubmatch(string(data), -1) {
		name := strings.TrimSpace(m[1])
		oddsText := strings.TrimSpace(m[2])
		if name == "" {
			continue
		}
		decimal, ok := americanToDecimal(oddsText)
		if !ok {
			continue
		}
		quotes = append(quotes, OutrightQuote{RawTeamName: name, DecimalOdds: decimal})
	}
	return quotes, nil
}

// LoadOutrights tries the HTML snapshot first and falls back to the Markdown
// export when the HTML yields nothing. An empty result is not an error; the
// strength model has a default for teams without a price.
func LoadOutrights(htmlPath, mdPath string) []OutrightQuote {
	quotes, err := ParseOutrightHTML(htmlPath)
	if err != nil {
		log.Printf("⚠️  Outright HTML snapshot unavailable: %v", err)
	}
	if len(quotes) > 0 {
		return quotes
	}

	quotes, err = ParseOutrightMarkdown(mdPath)
	if err != nil {
		log.Printf("⚠️  Outright Markdown snapshot unavailable: %v", err)
	}
	if len(quotes) == 0 {
		log.Printf("⚠️  No outright odds loaded; team strengths fall back to defaults")
	}
	return quotes
}

// parsePrice accepts an American price ("+150", "-200") or a plain decimal
// price ("2.50") and returns decimal odds.
func parsePrice(text string) (float64, bool) {
	if strings.HasPrefix(text, "+") || strings.HasPrefix(text, "-") {
		return americanToDecimal(text)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// americanToDecimal converts an American price to decimal odds:
// +150 pays 1.5 units profit per unit staked, so 2.5 decimal; -200 requires
// 2 units staked per unit profit, so 1.5 decimal.
func americanToDecimal(text string) (float64, bool) {
	if len(text) < 2 {
		return 0, false
	}
	v, err := strconv.ParseFloat(text[1:], 64)
	if err != nil || v == 0 {
		return 0, false
	}
	switch text[0] {
	case '+':
		return v/100 + 1, true
	case '-':
		return 100/v + 1, true
	}
	return 0, false
}
