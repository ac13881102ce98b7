package fantasy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/fantasy-scoring/internal/domain/player"
)

var (
	ErrConflictingRole         = errors.New("conflicting roster role flags")
	ErrUnknownRole             = errors.New("unknown roster role")
	ErrUnknownChip             = errors.New("unknown chip")
	ErrMultipleCaptains        = errors.New("roster has more than one captain")
	ErrMultipleViceCaptains    = errors.New("roster has more than one vice captain")
	ErrDuplicatePlayerInRoster = errors.New("duplicate player in roster")
)

// Role is the single slot a roster entry occupies for a gameweek.
type Role string

const (
	RoleStarter     Role = "STARTER"
	RoleCaptain     Role = "CAPTAIN"
	RoleViceCaptain Role = "VICE_CAPTAIN"
	RoleSubstitute  Role = "SUBSTITUTE"
)

func ParseRole(raw string) (Role, error) {
	role := Role(strings.ToUpper(strings.TrimSpace(raw)))
	switch role {
	case RoleStarter, RoleCaptain, RoleViceCaptain, RoleSubstitute:
		return role, nil
	case "":
		return RoleStarter, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownRole, raw)
	}
}

// RoleFromFlags converts the boolean captain/vice/substitute columns
// used by older roster exports into a Role.
func RoleFromFlags(isCaptain, isViceCaptain, isSubstitute bool) (Role, error) {
	set := 0
	for _, flag := range []bool{isCaptain, isViceCaptain, isSubstitute} {
		if flag {
			set++
		}
	}
	if set > 1 {
		return "", fmt.Errorf("%w: captain=%t vice_captain=%t substitute=%t", ErrConflictingRole, isCaptain, isViceCaptain, isSubstitute)
	}

	switch {
	case isCaptain:
		return RoleCaptain, nil
	case isViceCaptain:
		return RoleViceCaptain, nil
	case isSubstitute:
		return RoleSubstitute, nil
	default:
		return RoleStarter, nil
	}
}

func (r Role) IsSubstitute() bool {
	return r == RoleSubstitute
}

// Chip is a once-per-season booster attached to one gameweek roster.
type Chip string

const (
	ChipNone          Chip = ""
	ChipTripleCaptain Chip = "TRIPLE_CAPTAIN"
	ChipBenchBoost    Chip = "BENCH_BOOST"
)

func ParseChip(raw string) (Chip, error) {
	chip := Chip(strings.ToUpper(strings.TrimSpace(raw)))
	switch chip {
	case ChipNone, ChipTripleCaptain, ChipBenchBoost:
		return chip, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownChip, raw)
	}
}

// RosterEntry is one player slot in a fantasy team's gameweek roster.
type RosterEntry struct {
	PlayerID string
	Position player.Position
	Role     Role
}

// Roster is a fantasy team's player selection for one gameweek.
type Roster struct {
	LeagueID string
	TeamID   string
	Gameweek int
	Chip     Chip
	Entries  []RosterEntry
}

func (r Roster) PlayerIDs() []string {
	out := make([]string, 0, len(r.Entries))
	for _, entry := range r.Entries {
		out = append(out, entry.PlayerID)
	}
	return out
}

// ValidateRoster checks that the roster names at most one captain,
// at most one vice captain and every player only once.
func ValidateRoster(roster Roster) error {
	if roster.TeamID == "" {
		return fmt.Errorf("team id is required")
	}
	if roster.Gameweek <= 0 {
		return fmt.Errorf("gameweek must be greater than zero")
	}
	if _, err := ParseChip(string(roster.Chip)); err != nil {
		return err
	}

	var captains, vices int
	seen := make(map[string]struct{}, len(roster.Entries))
	for _, entry := range roster.Entries {
		if entry.PlayerID == "" {
			return fmt.Errorf("player id is required")
		}
		if _, exists := seen[entry.PlayerID]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicatePlayerInRoster, entry.PlayerID)
		}
		seen[entry.PlayerID] = struct{}{}

		if _, err := ParseRole(string(entry.Role)); err != nil {
			return err
		}
		switch entry.Role {
		case RoleCaptain:
			captains++
		case RoleViceCaptain:
			vices++
		}
	}
	if captains > 1 {
		return fmt.Errorf("%w: team=%s count=%d", ErrMultipleCaptains, roster.TeamID, captains)
	}
	if vices > 1 {
		return fmt.Errorf("%w: team=%s count=%d", ErrMultipleViceCaptains, roster.TeamID, vices)
	}

	return nil
}
