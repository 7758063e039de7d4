package schedule

import (
	"encoding/csv"
	"fmt"
	"log"
	"strings"

	"github.com/fortuna/pallas/internal/names"
)

// Sentinels for fixtures that could not be resolved. Absence of a fixture is
// a normal, representable state, never an error.
const (
	UnknownFixtureID = "N/A_FID"
	UnknownGameweek  = "N/A_GW"
)

// Fixture is one scheduled match from the fixture schedule.
type Fixture struct {
	FixtureID string `json:"fixture_id"`
	Gameweek  string `json:"gameweek"`
	Date      string `json:"date"`
	Group     string `json:"group"`
	HomeTeam  string `json:"home_team"` // canonical
	AwayTeam  string `json:"away_team"` // canonical
	HomeRaw   string `json:"-"`
	AwayRaw   string `json:"-"`
}

// PairKey identifies a match by its unordered participant pair. Ordering the
// two names makes lookups independent of which side a source labels "home".
type PairKey struct {
	A, B string
}

// NewPairKey builds the order-invariant key for two canonical names.
func NewPairKey(team1, team2 string) PairKey {
	if team1 > team2 {
		team1, team2 = team2, team1
	}
	return PairKey{A: team1, B: team2}
}

// TripleKey identifies a match by its order-sensitive home/away labelling
// plus kickoff date (YYYY-MM-DD).
type TripleKey struct {
	Home, Away, Date string
}

// FixtureRef is the minimal resolution result for the date-keyed lookup.
type FixtureRef struct {
	FixtureID string
	Gameweek  string
}

// Index backs fixture resolution with two lookup tables: an unordered-pair
// table (sufficient within a single group stage, where two teams meet at
// most once) and an order-sensitive (home, away, date) table for paths that
// need exact scheduling disambiguation.
type Index struct {
	byPair   map[PairKey]Fixture
	byTriple map[TripleKey]FixtureRef
}

// BuildIndex parses the tab-separated fixture schedule and constructs both
// lookup tables. Rows with knockout placeholder slots ("Winner Match ...",
// "1st Group ...") and rows whose names canonicalize to a sentinel are
// skipped. A duplicate unordered pair is a data-integrity gap: the last row
// wins, and the collision is logged.
func BuildIndex(scheduleTSV string, canon *names.Canonicalizer) (*Index, error) {
	reader := csv.NewReader(strings.NewReader(scheduleTSV))
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing fixture schedule: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("fixture schedule is empty")
	}

	cols := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"fixture_id", "starting_at", "home_team_name", "away_team_name", "group_name", "GW"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("fixture schedule missing column %q", required)
		}
	}

	idx := &Index{
		byPair:   make(map[PairKey]Fixture),
		byTriple: make(map[TripleKey]FixtureRef),
	}

	for _, row := range rows[1:] {
		if len(row) <= cols["GW"] {
			continue
		}
		homeRaw := strings.TrimSpace(row[cols["home_team_name"]])
		awayRaw := strings.TrimSpace(row[cols["away_team_name"]])
		if homeRaw == "" || awayRaw == "" || isPlaceholderSlot(homeRaw) || isPlaceholderSlot(awayRaw) {
			continue
		}

		home := canon.Canonicalize(homeRaw)
		away := canon.Canonicalize(awayRaw)
		if names.IsSentinel(home) || names.IsSentinel(away) {
			continue
		}

		startingAt := strings.TrimSpace(row[cols["starting_at"]])
		date := startingAt
		if i := strings.IndexByte(startingAt, ' '); i > 0 {
			date = startingAt[:i]
		}

		fixture := Fixture{
			FixtureID: strings.TrimSpace(row[cols["fixture_id"]]),
			Gameweek:  strings.TrimSpace(row[cols["GW"]]),
			Date:      date,
			Group:     strings.TrimSpace(row[cols["group_name"]]),
			HomeTeam:  home,
			AwayTeam:  away,
			HomeRaw:   homeRaw,
			AwayRaw:   awayRaw,
		}

		pair := NewPairKey(home, away)
		if existing, ok := idx.byPair[pair]; ok {
			log.Printf("⚠️  Duplicate fixture for pair %s / %s: replacing %s with %s", pair.A, pair.B, existing.FixtureID, fixture.FixtureID)
		}
		idx.byPair[pair] = fixture
		idx.byTriple[TripleKey{Home: home, Away: away, Date: date}] = FixtureRef{
			FixtureID: fixture.FixtureID,
			Gameweek:  fixture.Gameweek,
		}
	}

	return idx, nil
}

// ResolvePair finds the fixture for two canonical names, in either order.
func (idx *Index) ResolvePair(team1, team2 string) (Fixture, bool) {
	fixture, ok := idx.byPair[NewPairKey(team1, team2)]
	return fixture, ok
}

// ResolveKickoff finds the fixture id and gameweek for an exact (home, away,
// date) labelling; the swapped labelling is tried before giving up.
func (idx *Index) ResolveKickoff(home, away, date string) (FixtureRef, bool) {
	if ref, ok := idx.byTriple[TripleKey{Home: home, Away: away, Date: date}]; ok {
		return ref, true
	}
	if ref, ok := idx.byTriple[TripleKey{Home: away, Away: home, Date: date}]; ok {
		return ref, true
	}
	return FixtureRef{}, false
}

// Fixtures returns every indexed fixture. The slice is freshly allocated.
func (idx *Index) Fixtures() []Fixture {
	out := make([]Fixture, 0, len(idx.byPair))
	for _, fixture := range idx.byPair {
		out = append(out, fixture)
	}
	return out
}

// PlaceholderID builds the synthetic fixture id used when resolution fails.
func PlaceholderID(home, away, date string) string {
	return fmt.Sprintf("NO_ID_FOR_%s_vs_%s_%s", home, away, date)
}

// IsPlaceholderID reports whether a fixture id is a synthetic placeholder.
func IsPlaceholderID(id string) bool {
	return strings.HasPrefix(id, "NO_ID_FOR_")
}

func isPlaceholderSlot(name string) bool {
	return strings.Contains(name, "Winner Match") ||
		strings.Contains(name, "1st Group") ||
		strings.Contains(name, "2nd Group")
}
