// Package report assembles the JSON match report consumed by frontends and
// the leaderboard tooling: per-player scores and ratings plus a team
// summary, under a stable versioned envelope.
package report

import (
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"frag-rating/model"
	"frag-rating/rating"
)

// EngineVersion identifies the scoring generation a report was built with.
const EngineVersion = "2.0.0"

// Report is the full match report envelope.
type Report struct {
	Meta        Meta              `json:"meta"`
	Players     map[string]Player `json:"players"`
	TeamSummary TeamSummary       `json:"team_summary"`
}

// Meta identifies the match and the scoring generation.
type Meta struct {
	ReportID  string `json:"report_id"`
	MatchID   string `json:"match_id"`
	Map       string `json:"map"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// Player is one player's section of the report.
type Player struct {
	Name   string            `json:"name"`
	Role   model.Role        `json:"role"`
	Rating int               `json:"rating"`
	Scores model.ScoreBundle `json:"scores"`
	Stats  StatLine          `json:"stats"`
}

// StatLine carries the headline stats shown alongside the scores.
type StatLine struct {
	Kills             int     `json:"kills"`
	Deaths            int     `json:"deaths"`
	KDR               float64 `json:"kdr"`
	ADR               float64 `json:"adr"`
	HSPercent         float64 `json:"hs_percent"`
	UntradeableDeaths int     `json:"untradeable_deaths"`
	TradeableDeaths   int     `json:"tradeable_deaths"`
	EntryKills        int     `json:"entry_kills"`
	EntryDeaths       int     `json:"entry_deaths"`
	Multikills        int     `json:"multikills"`
	EnemiesBlinded    int     `json:"enemies_blinded"`
	UtilityDamage     int     `json:"utility_damage"`
	Clutches1v1Won    int     `json:"clutches_1v1_won"`
	Clutches1vNWon    int     `json:"clutches_1vN_won"`
}

// TeamSummary aggregates the lobby.
type TeamSummary struct {
	TotalKills      int     `json:"total_kills"`
	TotalDeaths     int     `json:"total_deaths"`
	KDRatio         float64 `json:"kd_ratio"`
	PlayersAnalyzed int     `json:"players_analyzed"`
}

// Build scores every player and assembles the match report. An empty
// matchID gets a fresh UUID; the report itself is identified by a
// time-ordered ULID. cal must be non-nil.
func Build(matchID, mapName string, players []*model.PlayerMatchStats, cal rating.CalibrationProvider) *Report {
	if matchID == "" {
		matchID = uuid.NewString()
	}

	r := &Report{
		Meta: Meta{
			ReportID:  ulid.Make().String(),
			MatchID:   matchID,
			Map:       mapName,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Version:   EngineVersion,
		},
		Players:     make(map[string]Player, len(players)),
		TeamSummary: summarize(players),
	}

	for _, p := range players {
		result := rating.ComputePlayerRating(p, cal)

		key := p.SteamID
		if key == "" {
			key = p.Name
		}
		r.Players[key] = Player{
			Name:   p.Name,
			Role:   p.Role,
			Rating: result.FinalRating,
			Scores: result.Scores,
			Stats:  statLine(p),
		}

		log.WithFields(log.Fields{
			"player": p.Name,
			"role":   p.Role,
			"rating": result.FinalRating,
		}).Debug("Scored player")
	}
	return r
}

// JSON renders the report with indentation, matching the on-disk format
// the frontend consumes.
func (r *Report) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "encoding match report")
	}
	return data, nil
}

func statLine(p *model.PlayerMatchStats) StatLine {
	deaths := p.Deaths()
	deathDivisor := deaths
	if deathDivisor < 1 {
		deathDivisor = 1
	}
	return StatLine{
		Kills:             p.TotalKills,
		Deaths:            deaths,
		KDR:               round2(float64(p.TotalKills) / float64(deathDivisor)),
		ADR:               round1(p.DamagePerRound),
		HSPercent:         round1(p.HeadshotPercentage * 100),
		UntradeableDeaths: p.UntradeableDeaths,
		TradeableDeaths:   p.TradeableDeaths,
		EntryKills:        p.OpeningKillsWon,
		EntryDeaths:       p.EntryDeaths,
		Multikills:        p.Multikills,
		EnemiesBlinded:    p.EnemiesBlinded,
		UtilityDamage:     p.UtilityDamage,
		Clutches1v1Won:    p.Clutches1v1Won,
		Clutches1vNWon:    p.Clutches1vNWon,
	}
}

func summarize(players []*model.PlayerMatchStats) TeamSummary {
	totalKills := 0
	totalDeaths := 0
	for _, p := range players {
		totalKills += p.TotalKills
		totalDeaths += p.Deaths()
	}
	deathDivisor := totalDeaths
	if deathDivisor < 1 {
		deathDivisor = 1
	}
	return TeamSummary{
		TotalKills:      totalKills,
		TotalDeaths:     totalDeaths,
		KDRatio:         round2(float64(totalKills) / float64(deathDivisor)),
		PlayersAnalyzed: len(players),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
