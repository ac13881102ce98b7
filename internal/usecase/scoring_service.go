package usecase

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/fantasy-scoring/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-scoring/internal/domain/fixture"
	"github.com/riskibarqy/fantasy-scoring/internal/domain/player"
	"github.com/riskibarqy/fantasy-scoring/internal/domain/playerstats"
	"github.com/riskibarqy/fantasy-scoring/internal/domain/scoring"
	idgen "github.com/riskibarqy/fantasy-scoring/internal/platform/id"
	"github.com/riskibarqy/fantasy-scoring/internal/platform/logging"
	"github.com/riskibarqy/fantasy-scoring/internal/platform/resilience"
)

const (
	FailureKindPlayer = "player"
	FailureKindTeam   = "team"

	runOutcomeOK      = "ok"
	runOutcomePartial = "partial"
	runOutcomeError   = "error"
)

// RunLocker guards a gameweek run across processes. TryLock reports false
// when another holder owns key.
type RunLocker interface {
	TryLock(ctx context.Context, key string) (func(context.Context) error, bool, error)
}

// RunRecorder receives the counters of a finished gameweek run.
type RunRecorder interface {
	ObserveRun(outcome string, playersScored, playersFailed, teamsScored, teamsFailed int, elapsed time.Duration)
}

type ScoringFailure struct {
	Kind  string `json:"kind"`
	ID    string `json:"id"`
	Error string `json:"error"`
}

// GameweekRun is the outcome of scoring one (league, gameweek). Teams holds
// the stored rows sorted by team id; anything that could not be stored is
// listed in Failures.
type GameweekRun struct {
	RunID       string                       `json:"run_id"`
	LeagueID    string                       `json:"league_id"`
	Gameweek    int                          `json:"gameweek"`
	Provisional bool                         `json:"provisional"`
	Players     int                          `json:"players_scored"`
	Teams       []scoring.TeamGameweekPoints `json:"teams"`
	Failures    []ScoringFailure             `json:"failures"`
	StartedAt   time.Time                    `json:"started_at"`
	FinishedAt  time.Time                    `json:"finished_at"`
}

func (r GameweekRun) HasFailures() bool {
	return len(r.Failures) > 0
}

type gameweekInput struct {
	LeagueID string `validate:"required"`
	Gameweek int    `validate:"gt=0"`
}

type teamGameweekInput struct {
	LeagueID string `validate:"required"`
	TeamID   string `validate:"required"`
	Gameweek int    `validate:"gt=0"`
}

type teamInput struct {
	LeagueID string `validate:"required"`
	TeamID   string `validate:"required"`
}

type ScoringOption func(*ScoringService)

func WithRunLocker(locker RunLocker) ScoringOption {
	return func(s *ScoringService) {
		if locker != nil {
			s.locker = locker
		}
	}
}

func WithRunRecorder(recorder RunRecorder) ScoringOption {
	return func(s *ScoringService) {
		s.recorder = recorder
	}
}

func WithMaxWorkers(workers int) ScoringOption {
	return func(s *ScoringService) {
		s.maxWorkers = workers
	}
}

func WithClock(now func() time.Time) ScoringOption {
	return func(s *ScoringService) {
		if now != nil {
			s.now = now
		}
	}
}

type ScoringService struct {
	fixtureRepo     fixture.Repository
	playerRepo      player.Repository
	playerStatsRepo playerstats.Repository
	rosterRepo      fantasy.Repository
	scoringRepo     scoring.Repository
	rules           scoring.Rules
	idGen           idgen.Generator
	logger          *logging.Logger
	validator       *validator.Validate
	locker          RunLocker
	recorder        RunRecorder
	maxWorkers      int
	now             func() time.Time
	runFlight       resilience.SingleFlight[GameweekRun]
}

func NewScoringService(
	fixtureRepo fixture.Repository,
	playerRepo player.Repository,
	playerStatsRepo playerstats.Repository,
	rosterRepo fantasy.Repository,
	scoringRepo scoring.Repository,
	rules scoring.Rules,
	idGen idgen.Generator,
	logger *logging.Logger,
	opts ...ScoringOption,
) *ScoringService {
	if logger == nil {
		logger = logging.Default()
	}

	s := &ScoringService{
		fixtureRepo:     fixtureRepo,
		playerRepo:      playerRepo,
		playerStatsRepo: playerStatsRepo,
		rosterRepo:      rosterRepo,
		scoringRepo:     scoringRepo,
		rules:           rules,
		idGen:           idGen,
		logger:          logger,
		validator:       validator.New(),
		locker:          noopLocker{},
		maxWorkers:      defaultScoringWorkers,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CalculateGameweekPoints scores every player and fantasy team of a
// gameweek and stores the results. Concurrent calls for the same gameweek
// in this process share one run; a run held by another process yields
// ErrScoringInProgress. Storage failures are collected per player or team
// and do not stop the run.
func (s *ScoringService) CalculateGameweekPoints(ctx context.Context, leagueID string, gameweek int) (GameweekRun, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.CalculateGameweekPoints")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if err := s.validate(ctx, gameweekInput{LeagueID: leagueID, Gameweek: gameweek}); err != nil {
		return GameweekRun{}, err
	}

	key := runLockKey(leagueID, gameweek)
	run, err, shared := s.runFlight.Do(key, func() (GameweekRun, error) {
		var out GameweekRun
		lockErr := s.withRunLock(ctx, key, func(ctx context.Context) error {
			var runErr error
			out, runErr = s.calculateGameweek(ctx, leagueID, gameweek)
			return runErr
		})
		return out, lockErr
	})
	if shared {
		s.logger.DebugContext(ctx, "joined in-flight scoring run", "league_id", leagueID, "gameweek", gameweek, "run_id", run.RunID)
	}
	return run, err
}

// CalculateTeamGameweekPoints scores a single team. Bonus is still ranked
// across every player of each match; only the team row is stored.
func (s *ScoringService) CalculateTeamGameweekPoints(ctx context.Context, leagueID, teamID string, gameweek int) (scoring.TeamGameweekPoints, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.CalculateTeamGameweekPoints")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	teamID = strings.TrimSpace(teamID)
	if err := s.validate(ctx, teamGameweekInput{LeagueID: leagueID, TeamID: teamID, Gameweek: gameweek}); err != nil {
		return scoring.TeamGameweekPoints{}, err
	}

	var out scoring.TeamGameweekPoints
	err := s.withRunLock(ctx, runLockKey(leagueID, gameweek), func(ctx context.Context) error {
		roster, found, err := s.rosterRepo.GetRoster(ctx, leagueID, teamID, gameweek)
		if err != nil {
			return fmt.Errorf("get roster: %w", err)
		}
		if !found {
			return fmt.Errorf("%w: league=%s team=%s gameweek=%d", ErrTeamNotFound, leagueID, teamID, gameweek)
		}
		if err := fantasy.ValidateRoster(roster); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		scored, err := s.scorePlayers(ctx, leagueID, gameweek)
		if err != nil {
			return err
		}

		out = s.scoreTeam(roster, scored)
		if err := s.scoringRepo.UpsertTeamGameweekPoints(ctx, out); err != nil {
			return fmt.Errorf("upsert team gameweek points: %w", err)
		}
		return nil
	})
	if err != nil {
		return scoring.TeamGameweekPoints{}, err
	}

	s.logger.InfoContext(ctx, "team gameweek points stored",
		"league_id", leagueID,
		"team_id", teamID,
		"gameweek", gameweek,
		"points", out.Points,
		"provisional", out.Provisional,
	)
	return out, nil
}

// GetTeamSeasonSummary derives season totals from stored team rows.
func (s *ScoringService) GetTeamSeasonSummary(ctx context.Context, leagueID, teamID string) (scoring.SeasonSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.GetTeamSeasonSummary")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	teamID = strings.TrimSpace(teamID)
	if err := s.validate(ctx, teamInput{LeagueID: leagueID, TeamID: teamID}); err != nil {
		return scoring.SeasonSummary{}, err
	}

	rows, err := s.scoringRepo.ListTeamGameweekPoints(ctx, leagueID, teamID)
	if err != nil {
		return scoring.SeasonSummary{}, fmt.Errorf("list team gameweek points: %w", err)
	}
	return scoring.Summarize(leagueID, teamID, rows), nil
}

func (s *ScoringService) GetTeamGameweekPoints(ctx context.Context, leagueID, teamID string, gameweek int) (scoring.TeamGameweekPoints, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.GetTeamGameweekPoints")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	teamID = strings.TrimSpace(teamID)
	if err := s.validate(ctx, teamGameweekInput{LeagueID: leagueID, TeamID: teamID, Gameweek: gameweek}); err != nil {
		return scoring.TeamGameweekPoints{}, err
	}

	row, found, err := s.scoringRepo.GetTeamGameweekPoints(ctx, leagueID, teamID, gameweek)
	if err != nil {
		return scoring.TeamGameweekPoints{}, fmt.Errorf("get team gameweek points: %w", err)
	}
	if !found {
		return scoring.TeamGameweekPoints{}, fmt.Errorf("%w: team gameweek points league=%s team=%s gameweek=%d", ErrNotFound, leagueID, teamID, gameweek)
	}
	return row, nil
}

type scoredGameweek struct {
	provisional  bool
	calculatedAt time.Time
	records      []scoring.PlayerGameweekPoints
	byPlayer     map[string]scoring.PlayerGameweekPoints
}

func (s *ScoringService) calculateGameweek(ctx context.Context, leagueID string, gameweek int) (GameweekRun, error) {
	startedAt := s.now().UTC()
	runID, err := s.idGen.NewID()
	if err != nil {
		return GameweekRun{}, fmt.Errorf("generate run id: %w", err)
	}

	logger := s.logger.With("run_id", runID, "league_id", leagueID, "gameweek", gameweek)
	run := GameweekRun{
		RunID:     runID,
		LeagueID:  leagueID,
		Gameweek:  gameweek,
		Teams:     []scoring.TeamGameweekPoints{},
		Failures:  []ScoringFailure{},
		StartedAt: startedAt,
	}

	scored, err := s.scorePlayers(ctx, leagueID, gameweek)
	if err != nil {
		s.finishRun(ctx, logger, &run, err)
		return run, err
	}
	run.Provisional = scored.provisional

	playerErrs, err := runTasks(ctx, s.maxWorkers, len(scored.records), func(ctx context.Context, i int) error {
		return s.scoringRepo.UpsertPlayerGameweekPoints(ctx, scored.records[i])
	})
	if err != nil {
		s.finishRun(ctx, logger, &run, err)
		return run, err
	}
	for i, playerErr := range playerErrs {
		if playerErr != nil {
			run.Failures = append(run.Failures, ScoringFailure{Kind: FailureKindPlayer, ID: scored.records[i].PlayerID, Error: playerErr.Error()})
			continue
		}
		run.Players++
	}

	rosters, err := s.rosterRepo.ListRostersByGameweek(ctx, leagueID, gameweek)
	if err != nil {
		err = fmt.Errorf("list rosters: %w", err)
		s.finishRun(ctx, logger, &run, err)
		return run, err
	}

	teams := make([]scoring.TeamGameweekPoints, len(rosters))
	teamErrs, err := runTasks(ctx, s.maxWorkers, len(rosters), func(ctx context.Context, i int) error {
		if err := fantasy.ValidateRoster(rosters[i]); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		result := s.scoreTeam(rosters[i], scored)
		if err := s.scoringRepo.UpsertTeamGameweekPoints(ctx, result); err != nil {
			return err
		}
		teams[i] = result
		return nil
	})
	if err != nil {
		s.finishRun(ctx, logger, &run, err)
		return run, err
	}
	for i, teamErr := range teamErrs {
		if teamErr != nil {
			run.Failures = append(run.Failures, ScoringFailure{Kind: FailureKindTeam, ID: rosters[i].TeamID, Error: teamErr.Error()})
			logger.WarnContext(ctx, "team scoring failed", "team_id", rosters[i].TeamID, "error", teamErr)
			continue
		}
		run.Teams = append(run.Teams, teams[i])
	}

	slices.SortFunc(run.Teams, func(a, b scoring.TeamGameweekPoints) int {
		return cmp.Compare(a.TeamID, b.TeamID)
	})
	slices.SortFunc(run.Failures, func(a, b ScoringFailure) int {
		if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	s.finishRun(ctx, logger, &run, nil)
	return run, nil
}

// scorePlayers builds every player's record for the gameweek. Bonus is
// ranked per fixture before records are summed.
func (s *ScoringService) scorePlayers(ctx context.Context, leagueID string, gameweek int) (scoredGameweek, error) {
	fixtures, err := s.fixtureRepo.ListByLeagueAndGameweek(ctx, leagueID, gameweek)
	if err != nil {
		return scoredGameweek{}, fmt.Errorf("list fixtures: %w", err)
	}
	if len(fixtures) == 0 {
		return scoredGameweek{}, fmt.Errorf("%w: league=%s gameweek=%d", ErrGameweekNotFound, leagueID, gameweek)
	}

	playable := make([]fixture.Fixture, 0, len(fixtures))
	fixtureIDs := make([]string, 0, len(fixtures))
	for _, item := range fixtures {
		if fixture.IsCancelledLikeStatus(item.Status) {
			continue
		}
		playable = append(playable, item)
		fixtureIDs = append(fixtureIDs, item.ID)
	}

	stats, err := s.playerStatsRepo.ListMatchStatsByFixtures(ctx, fixtureIDs)
	if err != nil {
		return scoredGameweek{}, fmt.Errorf("list match stats: %w", err)
	}

	positions, err := s.playerPositions(ctx, leagueID, stats)
	if err != nil {
		return scoredGameweek{}, err
	}

	statsByFixture := playerstats.GroupByFixture(stats)
	matches := make([]scoring.MatchScores, 0, len(playable))
	for _, item := range playable {
		matches = append(matches, scoring.ScoreMatch(s.rules, item.ID, statsByFixture[item.ID], positions))
	}

	out := scoredGameweek{
		provisional:  !fixture.AllSettled(fixtures),
		calculatedAt: s.now().UTC(),
		records:      scoring.BuildPlayerGameweekPoints(leagueID, gameweek, matches),
	}
	out.byPlayer = make(map[string]scoring.PlayerGameweekPoints, len(out.records))
	for i := range out.records {
		out.records[i].CalculatedAt = out.calculatedAt
		out.byPlayer[out.records[i].PlayerID] = out.records[i]
	}
	return out, nil
}

func (s *ScoringService) playerPositions(ctx context.Context, leagueID string, stats []playerstats.MatchStat) (map[string]player.Position, error) {
	ids := make([]string, 0, len(stats))
	seen := make(map[string]struct{}, len(stats))
	for _, stat := range stats {
		if stat.PlayerID == "" {
			continue
		}
		if _, ok := seen[stat.PlayerID]; ok {
			continue
		}
		seen[stat.PlayerID] = struct{}{}
		ids = append(ids, stat.PlayerID)
	}

	players, err := s.playerRepo.GetByIDs(ctx, leagueID, ids)
	if err != nil {
		return nil, fmt.Errorf("get players by ids: %w", err)
	}

	out := make(map[string]player.Position, len(players))
	for _, item := range players {
		out[item.ID] = item.Position.Normalize()
	}
	return out, nil
}

func (s *ScoringService) scoreTeam(roster fantasy.Roster, scored scoredGameweek) scoring.TeamGameweekPoints {
	result := scoring.AggregateTeam(s.rules, roster, scored.byPlayer)
	result.Provisional = scored.provisional
	result.CalculatedAt = scored.calculatedAt
	return result
}

func (s *ScoringService) withRunLock(ctx context.Context, key string, fn func(context.Context) error) error {
	unlock, acquired, err := s.locker.TryLock(ctx, key)
	if err != nil {
		return fmt.Errorf("%w: acquire scoring lock: %v", ErrDependencyUnavailable, err)
	}
	if !acquired {
		return fmt.Errorf("%w: %s", ErrScoringInProgress, key)
	}
	defer func() {
		if err := unlock(context.WithoutCancel(ctx)); err != nil {
			s.logger.WarnContext(ctx, "release scoring lock failed", "key", key, "error", err)
		}
	}()

	return fn(ctx)
}

func (s *ScoringService) finishRun(ctx context.Context, logger *logging.Logger, run *GameweekRun, runErr error) {
	run.FinishedAt = s.now().UTC()
	elapsed := run.FinishedAt.Sub(run.StartedAt)

	teamsFailed, playersFailed := 0, 0
	for _, failure := range run.Failures {
		if failure.Kind == FailureKindTeam {
			teamsFailed++
			continue
		}
		playersFailed++
	}

	outcome := runOutcomeOK
	switch {
	case runErr != nil:
		outcome = runOutcomeError
	case run.HasFailures():
		outcome = runOutcomePartial
	}
	if s.recorder != nil {
		s.recorder.ObserveRun(outcome, run.Players, playersFailed, len(run.Teams), teamsFailed, elapsed)
	}

	if runErr != nil {
		logger.ErrorContext(ctx, "gameweek scoring failed", "error", runErr, "duration_ms", elapsed.Milliseconds())
		return
	}
	logger.InfoContext(ctx, "gameweek scoring finished",
		"outcome", outcome,
		"provisional", run.Provisional,
		"players_scored", run.Players,
		"players_failed", playersFailed,
		"teams_scored", len(run.Teams),
		"teams_failed", teamsFailed,
		"duration_ms", elapsed.Milliseconds(),
	)
}

func (s *ScoringService) validate(ctx context.Context, payload any) error {
	if err := s.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", ErrInvalidInput, err)
	}
	return nil
}

func runLockKey(leagueID string, gameweek int) string {
	return "scoring:gameweek:" + leagueID + ":" + strconv.Itoa(gameweek)
}

type noopLocker struct{}

func (noopLocker) TryLock(context.Context, string) (func(context.Context) error, bool, error) {
	return func(context.Context) error { return nil }, true, nil
}
