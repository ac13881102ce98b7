package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/urfave/cli/v2"

	"github.com/riskibarqy/fantasy-scoring/internal/app"
	"github.com/riskibarqy/fantasy-scoring/internal/config"
	"github.com/riskibarqy/fantasy-scoring/internal/platform/logging"
)

const shutdownTimeout = 10 * time.Second

var errRunHasFailures = errors.New("gameweek run finished with failures")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCLI(os.Stdout).RunContext(ctx, os.Args); err != nil {
		logging.Default().Error("scoring command failed", "error", err)
		_ = logging.Default().Sync()
		os.Exit(1)
	}
}

func newCLI(out io.Writer) *cli.App {
	leagueFlag := &cli.StringFlag{Name: "league", Aliases: []string{"l"}, Usage: "league public id", Required: true}
	teamFlag := &cli.StringFlag{Name: "team", Aliases: []string{"t"}, Usage: "fantasy team public id", Required: true}
	gameweekFlag := &cli.IntFlag{Name: "gameweek", Aliases: []string{"g"}, Usage: "gameweek number", Required: true}

	return &cli.App{
		Name:      "scoring",
		Usage:     "calculate and inspect fantasy gameweek points",
		Writer:    out,
		ErrWriter: os.Stderr,
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "score every player and fantasy team for a gameweek",
				Flags: []cli.Flag{leagueFlag, gameweekFlag},
				Action: withApp(func(c *cli.Context, a *app.App) error {
					run, err := a.Scoring.CalculateGameweekPoints(c.Context, c.String("league"), c.Int("gameweek"))
					if pushErr := a.PushMetrics(c.Context); pushErr != nil {
						a.Logger.WarnContext(c.Context, "push scoring metrics failed", "error", pushErr)
					}
					if err != nil {
						return err
					}
					if err := writeJSON(c.App.Writer, run); err != nil {
						return err
					}
					if run.HasFailures() {
						return fmt.Errorf("%w: %d failure(s)", errRunHasFailures, len(run.Failures))
					}
					return nil
				}),
			},
			{
				Name:  "team",
				Usage: "re-score one fantasy team for a gameweek",
				Flags: []cli.Flag{leagueFlag, teamFlag, gameweekFlag},
				Action: withApp(func(c *cli.Context, a *app.App) error {
					points, err := a.Scoring.CalculateTeamGameweekPoints(c.Context, c.String("league"), c.String("team"), c.Int("gameweek"))
					if err != nil {
						return err
					}
					return writeJSON(c.App.Writer, points)
				}),
			},
			{
				Name:  "points",
				Usage: "print the stored points of a fantasy team for a gameweek",
				Flags: []cli.Flag{leagueFlag, teamFlag, gameweekFlag},
				Action: withApp(func(c *cli.Context, a *app.App) error {
					points, err := a.Scoring.GetTeamGameweekPoints(c.Context, c.String("league"), c.String("team"), c.Int("gameweek"))
					if err != nil {
						return err
					}
					return writeJSON(c.App.Writer, points)
				}),
			},
			{
				Name:  "summary",
				Usage: "print the season summary of a fantasy team",
				Flags: []cli.Flag{leagueFlag, teamFlag},
				Action: withApp(func(c *cli.Context, a *app.App) error {
					summary, err := a.Scoring.GetTeamSeasonSummary(c.Context, c.String("league"), c.String("team"))
					if err != nil {
						return err
					}
					return writeJSON(c.App.Writer, summary)
				}),
			},
		},
	}
}

// withApp loads config, builds the app for one command and always closes it.
func withApp(fn func(c *cli.Context, a *app.App) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logger := logging.NewJSON(cfg.LogLevel).With("service", cfg.ServiceName, "version", cfg.ServiceVersion)
		logging.SetDefault(logger)
		defer func() { _ = logger.Sync() }()

		a, err := app.New(c.Context, cfg, logger)
		if err != nil {
			return fmt.Errorf("build app: %w", err)
		}
		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := a.Close(closeCtx); err != nil {
				logger.Warn("close app failed", "error", err)
			}
		}()

		return fn(c, a)
	}
}

func writeJSON(w io.Writer, value any) error {
	encoder := sonic.ConfigStd.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
