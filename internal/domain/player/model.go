package player

import "strings"

// Position represents football position categories used in fantasy rules.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

var positionAliases = map[string]Position{
	"GK":         PositionGoalkeeper,
	"G":          PositionGoalkeeper,
	"GOALKEEPER": PositionGoalkeeper,
	"DEF":        PositionDefender,
	"D":          PositionDefender,
	"DEFENDER":   PositionDefender,
	"MID":        PositionMidfielder,
	"M":          PositionMidfielder,
	"MIDFIELDER": PositionMidfielder,
	"FWD":        PositionForward,
	"F":          PositionForward,
	"FW":         PositionForward,
	"FORWARD":    PositionForward,
	"ATT":        PositionForward,
	"ATTACKER":   PositionForward,
	"STRIKER":    PositionForward,
}

// NormalizePosition maps provider labels onto a Position.
// Unknown or empty values fall back to midfielder.
func NormalizePosition(raw string) Position {
	key := strings.ToUpper(strings.TrimSpace(raw))
	if pos, ok := positionAliases[key]; ok {
		return pos
	}
	return PositionMidfielder
}

// Normalize returns p when it is a known position, midfielder otherwise.
func (p Position) Normalize() Position {
	if _, ok := AllPositions[p]; ok {
		return p
	}
	return NormalizePosition(string(p))
}

// Player is a real athlete whose match stats feed fantasy scoring.
type Player struct {
	ID       string
	LeagueID string
	TeamID   string
	Name     string
	Position Position
}
