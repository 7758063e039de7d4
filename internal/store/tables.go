// Package store assembles the immutable in-memory tables every request reads
// from. Tables are built once at startup from the snapshot files and the
// compiled-in schedule, then shared without further mutation.
package store

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/fortuna/pallas/internal/ingest"
	"github.com/fortuna/pallas/internal/names"
	"github.com/fortuna/pallas/internal/odds"
	"github.com/fortuna/pallas/internal/refdata"
	"github.com/fortuna/pallas/internal/schedule"
)

// Sources are the snapshot file locations the tables load from.
type Sources struct {
	CorrectScorePath string
	GoalscorerPath   string
	PlayerTablePath  string
	OutrightHTMLPath string
	OutrightMDPath   string
}

// SourceErrors records which snapshot sources failed to load. A nil field
// means the source loaded; queries that depend on a failed source report it
// as unavailable instead of returning empty results.
type SourceErrors struct {
	CorrectScores error
	Goalscorers   error
	Players       error
}

// Tables is the complete read-only dataset behind the API.
type Tables struct {
	Canon        *names.Canonicalizer
	Teams        map[string]refdata.TeamDetail
	Schedule     *schedule.Index
	BaseFixtures []schedule.BaseFixture
	History      []schedule.HistoryContext

	CorrectScores []ingest.CorrectScoreMatch
	ScoreOdds     map[schedule.TripleKey]odds.QuoteSet
	Goalscorers   []ingest.GoalscorerMatch
	Outrights     []ingest.OutrightQuote

	Players    map[string][]Player
	TeamSeason map[string]SeasonTotals

	Errs SourceErrors
}

// BuildTables loads every source and assembles the dataset. A failed odds or
// player source is recorded in Errs rather than aborting startup, so the
// endpoints that do not depend on it keep working. Only a broken schedule is
// fatal, since every lookup needs it.
func BuildTables(src Sources, rules names.Rules) (*Tables, error) {
	canon := names.NewCanonicalizer(refdata.AliasTable(), rules)

	idx, err := schedule.BuildIndex(refdata.FixtureScheduleTSV, canon)
	if err != nil {
		return nil, fmt.Errorf("building fixture index: %w", err)
	}

	t := &Tables{
		Canon:      canon,
		Teams:      refdata.TeamDetails,
		Schedule:   idx,
		ScoreOdds:  make(map[schedule.TripleKey]odds.QuoteSet),
		Players:    make(map[string][]Player),
		TeamSeason: make(map[string]SeasonTotals),
	}

	t.BaseFixtures = schedule.BuildBaseFixtures(refdata.StadiumFixtures, canon, idx)
	t.History = schedule.BuildHistoryContexts(t.BaseFixtures)
	log.Printf("✓ Fixture index ready: %d scheduled, %d base fixtures", len(idx.Fixtures()), len(t.BaseFixtures))

	// Teams appearing in the base fixtures always have season totals, even
	// when the player table has no rows for them.
	for _, fix := range t.BaseFixtures {
		t.TeamSeason[fix.HomeTeam] = SeasonTotals{}
		t.TeamSeason[fix.AwayTeam] = SeasonTotals{}
	}

	t.CorrectScores, t.Errs.CorrectScores = ingest.LoadCorrectScores(src.CorrectScorePath)
	if t.Errs.CorrectScores != nil {
		log.Printf("⚠️  Correct-score source unavailable: %v", t.Errs.CorrectScores)
	} else {
		t.indexScoreOdds()
		log.Printf("✓ Correct-score odds loaded: %d matches, %d keyed by kickoff", len(t.CorrectScores), len(t.ScoreOdds))
	}

	t.Goalscorers, t.Errs.Goalscorers = ingest.LoadGoalscorers(src.GoalscorerPath)
	if t.Errs.Goalscorers != nil {
		log.Printf("⚠️  Goalscorer source unavailable: %v", t.Errs.Goalscorers)
	} else {
		log.Printf("✓ Goalscorer odds loaded: %d matches", len(t.Goalscorers))
	}

	players, err := ingest.LoadPlayers(src.PlayerTablePath)
	t.Errs.Players = err
	if err != nil {
		log.Printf("⚠️  Player table unavailable: %v", err)
	} else {
		t.indexPlayers(players)
		log.Printf("✓ Player table loaded: %d players across %d teams", len(players), len(t.Players))
	}

	t.Outrights = ingest.LoadOutrights(src.OutrightHTMLPath, src.OutrightMDPath)
	if len(t.Outrights) > 0 {
		log.Printf("✓ Outright odds loaded: %d teams priced", len(t.Outrights))
	}

	return t, nil
}

// indexScoreOdds keys each correct-score market by its canonical
// (home, away, date) kickoff so expected-goals estimation can find it without
// re-parsing match strings per request.
func (t *Tables) indexScoreOdds() {
	for _, m := range t.CorrectScores {
		home, away, ok := t.SplitMatchString(m.Match)
		if !ok || m.Date == "" {
			continue
		}
		t.ScoreOdds[schedule.TripleKey{Home: home, Away: away, Date: m.Date}] = m.Odds
	}
}

// indexPlayers groups player rows by canonical team and accumulates the
// per-team season totals. Rows for teams that never canonicalize are dropped.
func (t *Tables) indexPlayers(players []ingest.PlayerRecord) {
	for _, p := range players {
		teamCanonical := t.Canon.Canonicalize(p.Team)
		if names.IsSentinel(teamCanonical) {
			continue
		}
		t.Players[teamCanonical] = append(t.Players[teamCanonical], Player{
			Name:          p.Name,
			DisplayName:   p.DisplayName,
			TeamCanonical: teamCanonical,
			Position:      p.Position,
			PlayerID:      p.PlayerID,
			PlayerAPIID:   p.PlayerAPIID,
			Price:         p.Price,
			ImageURL:      p.ImageURL,
			Goals:         p.Goals,
			Assists:       p.Assists,
		})
		totals := t.TeamSeason[teamCanonical]
		totals.Goals += p.Goals
		totals.Assists += p.Assists
		t.TeamSeason[teamCanonical] = totals
	}
}

// TeamDetail returns the reference details for a canonical team name, or the
// placeholder detail when the team is unknown.
func (t *Tables) TeamDetail(canonical string) refdata.TeamDetail {
	if d, ok := t.Teams[canonical]; ok {
		return d
	}
	return refdata.DefaultTeamDetail
}

var doubleSpaceSplit = regexp.MustCompile(`\s{2,}`)

// SplitMatchString resolves a raw "Home vs Away" label into two canonical
// team names. It accepts " vs ", " - " and " @ " separators, then falls back
// to a run of two or more spaces. Labels that cannot be split into two
// canonical teams report !ok.
func (t *Tables) SplitMatchString(matchStr string) (home, away string, ok bool) {
	matchStr = strings.TrimSpace(matchStr)
	if matchStr == "" {
		return "", "", false
	}

	var parts []string
	for _, sep := range []string{" vs ", " - ", " @ "} {
		if strings.Contains(matchStr, sep) {
			parts = strings.SplitN(matchStr, sep, 2)
			break
		}
	}
	if parts == nil {
		parts = doubleSpaceSplit.Split(matchStr, 2)
	}
	if len(parts) != 2 {
		return "", "", false
	}

	home = t.Canon.Canonicalize(strings.TrimSpace(parts[0]))
	away = t.Canon.Canonicalize(strings.TrimSpace(parts[1]))
	if names.IsSentinel(home) || names.IsSentinel(away) {
		return "", "", false
	}
	return home, away, true
}
