package model

import "encoding/json"

// UtilityScore is either a 0-100 utility score or "unavailable" when the
// player produced no utility data at all. Unavailable is not the same as a
// score of 0, which means utility was used but scored poorly.
type UtilityScore struct {
	score     int
	available bool
}

// UtilityValue wraps a computed 0-100 utility score.
func UtilityValue(score int) UtilityScore {
	return UtilityScore{score: score, available: true}
}

// UtilityUnavailable is the no-data sentinel.
func UtilityUnavailable() UtilityScore {
	return UtilityScore{}
}

// Value returns the score and whether one is present.
func (u UtilityScore) Value() (int, bool) {
	return u.score, u.available
}

// Available reports whether the player produced any utility data.
func (u UtilityScore) Available() bool {
	return u.available
}

// MarshalJSON encodes the unavailable sentinel as null.
func (u UtilityScore) MarshalJSON() ([]byte, error) {
	if !u.available {
		return []byte("null"), nil
	}
	return json.Marshal(u.score)
}

// UnmarshalJSON decodes null back into the unavailable sentinel.
func (u *UtilityScore) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*u = UtilityScore{}
		return nil
	}
	var score int
	if err := json.Unmarshal(data, &score); err != nil {
		return err
	}
	*u = UtilityScore{score: score, available: true}
	return nil
}

// ScoreBundle carries the category sub-scores for one player. Every displayed
// field is an integer in 0-100; RawImpact is the unbounded diagnostic value
// and is never shown to end users.
type ScoreBundle struct {
	RawAim      int          `json:"raw_aim"`
	Aim         int          `json:"aim"`
	Positioning int          `json:"positioning"`
	Utility     UtilityScore `json:"utility"`
	Impact      int          `json:"impact"`
	RawImpact   float64      `json:"raw_impact"`
}

// UnmarshalJSON fills RawImpact from the impact score, then 50, when the
// field is missing, so bundles from older reports still calibrate.
func (s *ScoreBundle) UnmarshalJSON(data []byte) error {
	type bundle struct {
		RawAim      int          `json:"raw_aim"`
		Aim         int          `json:"aim"`
		Positioning int          `json:"positioning"`
		Utility     UtilityScore `json:"utility"`
		Impact      *int         `json:"impact"`
		RawImpact   *float64     `json:"raw_impact"`
	}
	var b bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return err
	}
	s.RawAim = b.RawAim
	s.Aim = b.Aim
	s.Positioning = b.Positioning
	s.Utility = b.Utility
	switch {
	case b.Impact != nil:
		s.Impact = *b.Impact
	default:
		s.Impact = 0
	}
	switch {
	case b.RawImpact != nil:
		s.RawImpact = *b.RawImpact
	case b.Impact != nil:
		s.RawImpact = float64(*b.Impact)
	default:
		s.RawImpact = 50
	}
	return nil
}

// RatingResult is the engine's final output for one player.
type RatingResult struct {
	Scores      ScoreBundle `json:"scores"`
	FinalRating int         `json:"final_rating"`
}
