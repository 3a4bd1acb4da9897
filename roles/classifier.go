// Package roles assigns match roles from aggregated player stats using a
// strict rule hierarchy: weapon identity first, then opening-duel volume,
// then utility focus, then isolation, with Anchor as the fallback.
package roles

import (
	"sort"

	"frag-rating/model"
)

// PlayerProfile carries the aggregated stats the classifier reads for one
// player.
type PlayerProfile struct {
	Name                string
	Kills               int
	AWPKills            int
	EntryKills          int
	EntryDeaths         int
	FlashesThrown       int
	AvgTeammateDistance float64 // Average distance to nearest teammates, units
}

// Classify assigns a role to every player in the lobby. Rules fire in
// priority order and the first match wins:
//
//  1. AWPer: at least a quarter of kills with the AWP, minimum volume.
//  2. Entry: among the lobby's top four by opening-duel involvement with
//     enough attempts, provided the duels were actually won sometimes.
//     High volume with a terrible success rate is bad positioning, not
//     entry fragging, and reclassifies straight to Anchor.
//  3. Support: flash volume well above the lobby average.
//  4. Lurker: plays far from the team.
//  5. Anchor: everyone else, playing for trades and late rounds.
//
// The result is deterministic: opening-involvement ties break by name.
func Classify(players []PlayerProfile) map[string]model.Role {
	results := make(map[string]model.Role, len(players))
	if len(players) == 0 {
		return results
	}

	totalFlashes := 0
	for _, p := range players {
		totalFlashes += p.FlashesThrown
	}
	avgFlashes := float64(totalFlashes) / float64(len(players))

	// Top 4 by opening involvement, roughly two entries per team.
	byInvolvement := make([]PlayerProfile, len(players))
	copy(byInvolvement, players)
	sort.Slice(byInvolvement, func(i, j int) bool {
		ai := byInvolvement[i].EntryKills + byInvolvement[i].EntryDeaths
		aj := byInvolvement[j].EntryKills + byInvolvement[j].EntryDeaths
		if ai != aj {
			return ai > aj
		}
		return byInvolvement[i].Name < byInvolvement[j].Name
	})
	topEntry := make(map[string]bool, 4)
	for i := 0; i < len(byInvolvement) && i < 4; i++ {
		topEntry[byInvolvement[i].Name] = true
	}

	for _, p := range players {
		totalKills := p.Kills
		if totalKills < 1 {
			totalKills = 1
		}
		awpRatio := float64(p.AWPKills) / float64(totalKills)

		entryAttempts := p.EntryKills + p.EntryDeaths
		attemptDivisor := entryAttempts
		if attemptDivisor < 1 {
			attemptDivisor = 1
		}
		entrySuccessRate := float64(p.EntryKills) / float64(attemptDivisor)

		role := model.RoleAnchor
		switch {
		case awpRatio >= 0.25 && p.AWPKills >= 2:
			role = model.RoleAWPer
		case topEntry[p.Name] && entryAttempts >= 3:
			if entrySuccessRate >= 0.25 || p.EntryKills >= 2 {
				role = model.RoleEntry
			} else {
				// Dying first without winning duels is not entry fragging.
				role = model.RoleAnchor
			}
		case float64(p.FlashesThrown) > avgFlashes*1.2 && p.FlashesThrown >= 3:
			role = model.RoleSupport
		case p.AvgTeammateDistance > 800:
			role = model.RoleLurker
		}
		results[p.Name] = role
	}
	return results
}
