package rating

import (
	"math"

	"frag-rating/model"
)

// ComputeImpactScore combines opening duels, round-context kills, clutches,
// win probability added and death context into a raw impact value. The stage
// order is load-bearing: caps and taxes assume every bonus before them has
// already been applied.
//
// Returns the uncapped raw value for calibration diagnostics and the
// clamped 0-100 value for display.
func ComputeImpactScore(p *model.PlayerMatchStats) (trueRaw float64, clamped int) {
	// === Kill points ===
	// Kills that carried won rounds dominate; kills in lost rounds barely
	// register and exit frags subtract. Capped above, open below.
	killPoints := float64(p.KillsInWonRounds)*WonRoundKillPoints +
		float64(p.KillsInLostRounds)*LostRoundKillPoints -
		float64(p.ExitFrags)*ExitFragKillCost
	killPoints = math.Min(killPoints, KillPointsCap)

	// === Entry points ===
	// Taking the opening duel counts even when lost; dying as entry costs.
	entryPoints := float64(p.OpeningKillsWon)*OpeningKillPoints +
		float64(p.OpeningKillsLost)*OpeningLossPoints -
		float64(p.EntryDeaths)*EntryDeathCost
	entryPoints = math.Min(entryPoints, EntryPointsCap)

	// === Clutch points ===
	clutchPoints := float64(p.Clutches1v1Won)*Clutch1v1Points +
		float64(p.Clutches1vNWon)*Clutch1vNPoints +
		float64(p.Multikills)*MultikillPoints
	clutchPoints = math.Min(clutchPoints, ClutchPointsCap)

	// === Death penalty ===
	// Untradeable deaths are eight times a traded one. Past the over-death
	// threshold every extra death stacks a progressive surcharge.
	deathPenalty := float64(p.TradeableDeaths)*TradeableDeathCost +
		float64(p.UntradeableDeaths)*UntradeableDeathCost
	totalDeaths := p.TradeableDeaths + p.UntradeableDeaths
	if totalDeaths >= OverDeathThreshold {
		deathPenalty += float64(totalDeaths-OverDeathThreshold+1) * OverDeathSurcharge
	}

	// === Round bonus ===
	roundBonus := 0.0
	if p.KillsInWonRounds >= 5 {
		roundBonus = 8.0
	}

	// Swing is pre-weighted upstream and passes through untouched.
	swingBonus := p.SwingScore

	// === WPA bonus ===
	// Diminishing returns above 2.5 WPA keep stacked hero rounds from
	// running away with the score.
	effectiveWPA := p.TotalWPA
	if effectiveWPA > 2.5 {
		effectiveWPA = 2.5 + (effectiveWPA-2.5)*0.5
	}
	wpaBonus := effectiveWPA * WPAPointValue

	// Exit-frag discount: players farming retreating opponents give back WPA
	// credit. A high swing score marks rotator-style late kills that earned
	// their value, so the discount softens.
	if p.ExitFrags > 3 {
		discount := float64(p.ExitFrags-3) * 3.5
		if p.SwingScore > 5 {
			discount *= 0.4
		}
		wpaBonus = math.Max(0, wpaBonus-discount)
	}

	raw := killPoints + entryPoints + clutchPoints + roundBonus + swingBonus + wpaBonus - deathPenalty

	// Soft cap: compress the excess rather than flattening it so monster
	// matches still order correctly at the top.
	if raw > ImpactSoftCap {
		raw = ImpactSoftCap + (raw-ImpactSoftCap)*ImpactSoftCapFactor
	}

	trueRaw = raw
	processed := raw

	// Lone-wolf penalty: dying untradeable twice as often as traded means
	// the player fought disconnected from the team.
	if p.TradeableDeaths > 0 && p.UntradeableDeaths > p.TradeableDeaths*2 {
		processed *= 0.85
	}

	// Sanity caps against utility-only or low-volume inflation.
	if p.TotalKills < 10 && processed > 70 {
		processed = 70
	}
	if p.KDR < 0.8 && processed > 60 {
		processed = 60
	}

	// Death tax tiers are mutually exclusive; only the heaviest applies.
	if totalDeaths >= DeathTaxHeavyDeaths {
		processed *= DeathTaxHeavyMult
	} else if totalDeaths >= DeathTaxMediumDeaths {
		processed *= DeathTaxMediumMult
	} else if totalDeaths >= DeathTaxLightDeaths {
		processed *= DeathTaxLightMult
	}

	return trueRaw, clampScore(processed)
}
