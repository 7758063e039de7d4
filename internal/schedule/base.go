package schedule

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/fortuna/pallas/internal/names"
	"github.com/fortuna/pallas/internal/refdata"
)

// BaseFixture is a venue-annotated fixture used by the combined-stats path:
// the stadium list joined against the schedule index for id and gameweek.
type BaseFixture struct {
	FixtureID string    `json:"fixture_id"`
	Gameweek  string    `json:"gameweek"`
	HomeTeam  string    `json:"home_team"` // canonical
	AwayTeam  string    `json:"away_team"` // canonical
	Date      string    `json:"date"`      // YYYY-MM-DD
	Kickoff   time.Time `json:"kickoff"`
	Stadium   string    `json:"stadium"`
	Group     string    `json:"group"`
}

// BuildBaseFixtures canonicalizes the stadium fixture list, resolves each
// row against the schedule index, and returns the result sorted by kickoff
// and de-duplicated. Rows that fail to parse or canonicalize are skipped
// individually. Rows the index cannot resolve keep a synthetic placeholder
// id rather than being dropped.
func BuildBaseFixtures(raw []refdata.StadiumFixture, canon *names.Canonicalizer, idx *Index) []BaseFixture {
	fixtures := make([]BaseFixture, 0, len(raw))
	for _, row := range raw {
		home := canon.Canonicalize(row.HomeTeam)
		away := canon.Canonicalize(row.AwayTeam)
		if home == away || names.IsSentinel(home) || names.IsSentinel(away) {
			continue
		}
		if row.Date == "" || row.Time == "" {
			continue
		}

		kickoff, err := parseKickoff(row.Date, row.Time)
		if err != nil {
			log.Printf("⚠️  Skipping fixture %s vs %s: %v", row.HomeTeam, row.AwayTeam, err)
			continue
		}

		ref, ok := idx.ResolveKickoff(home, away, row.Date)
		if !ok {
			ref = FixtureRef{
				FixtureID: PlaceholderID(home, away, row.Date),
				Gameweek:  UnknownGameweek,
			}
		}

		fixtures = append(fixtures, BaseFixture{
			FixtureID: ref.FixtureID,
			Gameweek:  ref.Gameweek,
			HomeTeam:  home,
			AwayTeam:  away,
			Date:      row.Date,
			Kickoff:   kickoff,
			Stadium:   row.Stadium,
			Group:     row.Group,
		})
	}

	sort.SliceStable(fixtures, func(i, j int) bool {
		return fixtures[i].Kickoff.Before(fixtures[j].Kickoff)
	})

	return dedupeBaseFixtures(fixtures)
}

// parseKickoff combines a date and 12-hour clock time. A literal "24:00"
// rolls over to midnight of the following day.
func parseKickoff(date, clock string) (time.Time, error) {
	if clock == "24:00" {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			return time.Time{}, fmt.Errorf("parsing date %q: %w", date, err)
		}
		return day.AddDate(0, 0, 1), nil
	}
	kickoff, err := time.Parse("2006-01-02 03:04 PM", date+" "+clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing kickoff %q %q: %w", date, clock, err)
	}
	return kickoff, nil
}

// dedupeBaseFixtures keeps the first occurrence per fixture id, falling back
// to the (home, away, date) triple for placeholder ids.
func dedupeBaseFixtures(fixtures []BaseFixture) []BaseFixture {
	seen := make(map[string]bool, 2*len(fixtures))
	out := make([]BaseFixture, 0, len(fixtures))
	for _, fixture := range fixtures {
		fallback := fmt.Sprintf("%s|%s|%s", fixture.HomeTeam, fixture.AwayTeam, fixture.Date)
		if !IsPlaceholderID(fixture.FixtureID) {
			if seen[fixture.FixtureID] {
				continue
			}
			seen[fixture.FixtureID] = true
			seen[fallback] = true
		} else {
			if seen[fallback] {
				continue
			}
			seen[fallback] = true
		}
		out = append(out, fixture)
	}
	return out
}
