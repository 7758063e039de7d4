package schedule

import "time"

// LastMatch records where and when a team last played, for rest-day and
// travel fatigue estimation.
type LastMatch struct {
	Date  time.Time
	Venue string
}

// HistoryContext maps each participant of one fixture to its previous
// match, or nil when the fixture is that team's tournament opener.
type HistoryContext map[string]*LastMatch

// BuildHistoryContexts walks the chronologically sorted base fixtures and
// snapshots, per fixture, what each side's previous match was at that point
// in the tournament. The returned slice is parallel to the input.
func BuildHistoryContexts(fixtures []BaseFixture) []HistoryContext {
	last := make(map[string]*LastMatch)
	contexts := make([]HistoryContext, 0, len(fixtures))

	for _, fixture := range fixtures {
		ctx := HistoryContext{
			fixture.HomeTeam: copyLastMatch(last[fixture.HomeTeam]),
			fixture.AwayTeam: copyLastMatch(last[fixture.AwayTeam]),
		}
		contexts = append(contexts, ctx)

		if fixture.Stadium != "" && !fixture.Kickoff.IsZero() {
			day := fixture.Kickoff.Truncate(24 * time.Hour)
			played := &LastMatch{Date: day, Venue: fixture.Stadium}
			last[fixture.HomeTeam] = played
			last[fixture.AwayTeam] = played
		}
	}
	return contexts
}

func copyLastMatch(m *LastMatch) *LastMatch {
	if m == nil {
		return nil
	}
	clone := *m
	return &clone
}
