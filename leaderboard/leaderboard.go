// Package leaderboard aggregates per-match rating results into season
// standings with calibration adjustments for consistency and role
// saturation.
package leaderboard

import (
	"sort"

	log "github.com/sirupsen/logrus"

	"frag-rating/calibration"
	"frag-rating/model"
)

// PlayerResult is one player's outcome from a single match.
type PlayerResult struct {
	Name      string
	Role      model.Role
	RawImpact float64
	Rating    int
}

// Standing is one row of the season leaderboard.
type Standing struct {
	Name         string
	Role         model.Role
	Games        int
	AvgRawImpact float64
	AvgRating    float64

	// AdjustedRating is the average rating after the consistency and
	// role-saturation deductions.
	AdjustedRating     float64
	ConsistencyPenalty float64
	SaturationPenalty  float64

	MapRatings map[string]float64
	MapGames   map[string]int
}

type playerAgg struct {
	name         string
	role         model.Role
	rawSum       float64
	ratings      []float64
	mapRatingSum map[string]float64
	mapGames     map[string]int
}

// Table accumulates match results for one season. Not safe for concurrent
// writers.
type Table struct {
	players map[string]*playerAgg
}

// New returns an empty season table.
func New() *Table {
	return &Table{players: make(map[string]*playerAgg)}
}

// Add records one match's results. Players are keyed by name; the most
// recently seen role wins.
func (t *Table) Add(matchID, mapName string, results []PlayerResult) {
	for _, r := range results {
		agg := t.players[r.Name]
		if agg == nil {
			agg = &playerAgg{
				name:         r.Name,
				mapRatingSum: make(map[string]float64),
				mapGames:     make(map[string]int),
			}
			t.players[r.Name] = agg
		}
		if r.Role != "" {
			agg.role = r.Role
		}
		agg.rawSum += r.RawImpact
		agg.ratings = append(agg.ratings, float64(r.Rating))
		if mapName != "" {
			agg.mapRatingSum[mapName] += float64(r.Rating)
			agg.mapGames[mapName]++
		}
	}

	log.WithFields(log.Fields{
		"match_id": matchID,
		"map":      mapName,
		"players":  len(results),
	}).Debug("Recorded match results")
}

// RoleCounts tallies the current role of every tracked player.
func (t *Table) RoleCounts() map[model.Role]int {
	counts := make(map[model.Role]int, len(t.players))
	for _, agg := range t.players {
		if agg.role != "" {
			counts[agg.role]++
		}
	}
	return counts
}

// Standings returns the season rows sorted by average raw impact
// descending, names ascending on ties. Raw impact orders the board because
// it is the uncapped signal; the displayed rating saturates at role caps.
func (t *Table) Standings() []Standing {
	roleCounts := t.RoleCounts()

	rows := make([]Standing, 0, len(t.players))
	for _, agg := range t.players {
		games := len(agg.ratings)
		if games == 0 {
			continue
		}

		ratingSum := 0.0
		for _, r := range agg.ratings {
			ratingSum += r
		}
		avgRating := ratingSum / float64(games)

		consistency := calibration.ConsistencyPenalty(agg.ratings)
		saturation := calibration.RoleSaturationPenalty(agg.role, roleCounts)

		mapRatings := make(map[string]float64, len(agg.mapRatingSum))
		for m, sum := range agg.mapRatingSum {
			mapRatings[m] = sum / float64(agg.mapGames[m])
		}
		mapGames := make(map[string]int, len(agg.mapGames))
		for m, g := range agg.mapGames {
			mapGames[m] = g
		}

		rows = append(rows, Standing{
			Name:               agg.name,
			Role:               agg.role,
			Games:              games,
			AvgRawImpact:       agg.rawSum / float64(games),
			AvgRating:          avgRating,
			AdjustedRating:     avgRating + consistency + saturation,
			ConsistencyPenalty: consistency,
			SaturationPenalty:  saturation,
			MapRatings:         mapRatings,
			MapGames:           mapGames,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].AvgRawImpact != rows[j].AvgRawImpact {
			return rows[i].AvgRawImpact > rows[j].AvgRawImpact
		}
		return rows[i].Name < rows[j].Name
	})
	return rows
}
