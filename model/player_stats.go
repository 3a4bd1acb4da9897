package model

// PlayerMatchStats holds the aggregated per-player, per-match inputs for the
// rating engine. All fields are produced upstream by the feature extractor;
// the engine never mutates them.
type PlayerMatchStats struct {
	SteamID string
	Name    string

	Role         Role
	MapName      string
	RoundsPlayed int

	// Aim inputs
	HeadshotPercentage      float64 // 0-1
	KillsPerRound           float64
	DamagePerRound          float64
	CounterStrafePercentage float64 // 0-100 movement quality, 0 = not measured

	// Positioning inputs
	UntradeableDeathRatio float64 // 0-1, deaths with no trade support possible
	TradeSuccessRate      float64 // 0-1
	SurvivalRate          float64 // 0-1

	// Utility inputs
	EnemiesBlinded int
	UtilityDamage  int
	FlashesThrown  int

	// Impact inputs
	OpeningKillsWon   int
	OpeningKillsLost  int
	EntryDeaths       int
	KillsInWonRounds  int
	KillsInLostRounds int
	ExitFrags         int
	SwingScore        float64 // pre-weighted upstream
	TotalWPA          float64 // sum of round win-probability deltas
	Multikills        int
	Clutches1v1Won    int
	Clutches1vNWon    int
	TradeableDeaths   int
	UntradeableDeaths int

	TotalKills     int
	KDR            float64
	KASTPercentage float64 // 0-1
}

// Deaths returns the total death count for the match.
func (p *PlayerMatchStats) Deaths() int {
	return p.TradeableDeaths + p.UntradeableDeaths
}
