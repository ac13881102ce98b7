package scoring

import "github.com/riskibarqy/fantasy-scoring/internal/domain/player"

// MinutesPolicy selects how appearance minutes turn into points.
type MinutesPolicy string

const (
	// MinutesPolicyPerBlock awards points for every full block of minutes played.
	MinutesPolicyPerBlock MinutesPolicy = "per_block"
	// MinutesPolicyFlatThreshold awards a flat appearance point and a higher
	// value once the player passes the threshold.
	MinutesPolicyFlatThreshold MinutesPolicy = "flat_threshold"
)

// PositionWeights holds one point value per position column.
type PositionWeights struct {
	GK  int `yaml:"gk"`
	DEF int `yaml:"def"`
	MID int `yaml:"mid"`
	FWD int `yaml:"fwd"`
}

// For returns the column for pos. Unknown positions use the midfielder column.
func (w PositionWeights) For(pos player.Position) int {
	switch pos.Normalize() {
	case player.PositionGoalkeeper:
		return w.GK
	case player.PositionDefender:
		return w.DEF
	case player.PositionForward:
		return w.FWD
	default:
		return w.MID
	}
}

// Rules is the scoring rule table. It is a value type; callers pass it
// explicitly and the calculator never mutates it.
type Rules struct {
	MinutesPolicy         MinutesPolicy `yaml:"minutes_policy" validate:"oneof=per_block flat_threshold"`
	MinutesBlock          int           `yaml:"minutes_block" validate:"gt=0"`
	PointsPerMinutesBlock int           `yaml:"points_per_minutes_block"`
	FlatAppearancePoints  int           `yaml:"flat_appearance_points"`
	FlatThresholdMinutes  int           `yaml:"flat_threshold_minutes" validate:"gte=0"`
	FlatThresholdPoints   int           `yaml:"flat_threshold_points"`

	GoalPoints           PositionWeights `yaml:"goal_points"`
	AssistPoints         int             `yaml:"assist_points"`
	CleanSheetPoints     PositionWeights `yaml:"clean_sheet_points"`
	GoalsConcededBlock   int             `yaml:"goals_conceded_block" validate:"gt=0"`
	GoalsConcededPenalty PositionWeights `yaml:"goals_conceded_penalty"`
	YellowCardPoints     int             `yaml:"yellow_card_points"`
	RedCardPoints        int             `yaml:"red_card_points"`
	PenaltySavePoints    PositionWeights `yaml:"penalty_save_points"`
	PenaltyMissPoints    int             `yaml:"penalty_miss_points"`

	CaptainMultiplier       float64 `yaml:"captain_multiplier" validate:"gt=0"`
	ViceCaptainMultiplier   float64 `yaml:"vice_captain_multiplier" validate:"gt=0"`
	TripleCaptainMultiplier float64 `yaml:"triple_captain_multiplier" validate:"gt=0"`

	BonusAwards []int `yaml:"bonus_awards" validate:"max=10,dive,gte=0"`
}

// DefaultRules returns the canonical rule table.
func DefaultRules() Rules {
	return Rules{
		MinutesPolicy:         MinutesPolicyPerBlock,
		MinutesBlock:          15,
		PointsPerMinutesBlock: 1,
		FlatAppearancePoints:  1,
		FlatThresholdMinutes:  60,
		FlatThresholdPoints:   2,

		GoalPoints:           PositionWeights{GK: 6, DEF: 6, MID: 5, FWD: 4},
		AssistPoints:         3,
		CleanSheetPoints:     PositionWeights{GK: 4, DEF: 4, MID: 1, FWD: 0},
		GoalsConcededBlock:   2,
		GoalsConcededPenalty: PositionWeights{GK: -1, DEF: -1},
		YellowCardPoints:     -1,
		RedCardPoints:        -3,
		PenaltySavePoints:    PositionWeights{GK: 5},
		PenaltyMissPoints:    -2,

		CaptainMultiplier:       2,
		ViceCaptainMultiplier:   1.5,
		TripleCaptainMultiplier: 3,

		BonusAwards: []int{3, 2, 1},
	}
}

// Awards returns a copy of the bonus award ladder.
func (r Rules) Awards() []int {
	out := make([]int, len(r.BonusAwards))
	copy(out, r.BonusAwards)
	return out
}
