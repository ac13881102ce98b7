package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrScoringInProgress     = errors.New("scoring run already in progress")

	ErrGameweekNotFound = fmt.Errorf("gameweek has no fixtures: %w", ErrNotFound)
	ErrTeamNotFound     = fmt.Errorf("team roster not found: %w", ErrNotFound)
)
