package predict

import "frag-rating/model"

// RoundTracker accumulates what is known about the current round and
// hands the win model a RoundFeatures snapshot on demand. Construct it
// once per lineup, then Reset at each freeze time.
type RoundTracker struct {
	lineup   []model.Role
	features RoundFeatures
}

// NewRoundTracker creates a tracker for a lineup. Role counts are fixed
// until the lineup changes; everything else is per-round state.
func NewRoundTracker(lineup []model.Role) *RoundTracker {
	t := &RoundTracker{lineup: append([]model.Role(nil), lineup...)}
	t.Reset()
	return t
}

// Reset returns the tracker to a fresh round with the lineup's role
// counts, dropping economy, mistakes, and the strategy call.
func (t *RoundTracker) Reset() {
	f := DefaultRoundFeatures()
	if len(t.lineup) > 0 {
		f.TeamAlive = len(t.lineup)
	}
	for _, role := range t.lineup {
		switch role {
		case model.RoleEntry, model.RoleTrader:
			f.EntryCount++
		case model.RoleSupport, model.RoleRotator:
			f.SupportCount++
		case model.RoleLurker:
			f.LurkCount++
		case model.RoleAnchor, model.RoleSiteAnchor:
			f.AnchorCount++
		}
		// AWPers have no composition bucket.
	}
	t.features = f
}

// SetEconomy records both teams' average equipment value.
func (t *RoundTracker) SetEconomy(team, enemy int) {
	t.features.TeamEconomy = team
	t.features.EnemyEconomy = enemy
}

// CallStrategy records the round's strategy call, e.g. EXECUTE_B.
func (t *RoundTracker) CallStrategy(strategy string) {
	t.features.Strategy = strategy
}

// SetSide records which side the lineup is playing.
func (t *RoundTracker) SetSide(tSide bool) {
	t.features.TSide = tSide
}

// RecordTeamDeath removes one player from the tracked team.
func (t *RoundTracker) RecordTeamDeath() {
	if t.features.TeamAlive > 0 {
		t.features.TeamAlive--
	}
}

// RecordEnemyDeath removes one player from the enemy team.
func (t *RoundTracker) RecordEnemyDeath() {
	if t.features.EnemyAlive > 0 {
		t.features.EnemyAlive--
	}
}

// RecordMistake counts a mistake by the tracked team this round.
func (t *RoundTracker) RecordMistake(highSeverity bool) {
	t.features.MistakeCount++
	if highSeverity {
		t.features.HighSeverityCount++
	}
}

// Features returns a snapshot of the current round state.
func (t *RoundTracker) Features() RoundFeatures {
	return t.features
}
