// Package main provides the entry point for privrun. It resolves the single
// positional argument into a command, gates the privileged command behind an
// elevation mechanism, runs the privileged action, and reports through
// leveled console messages.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/privrun/privrun/internal/cli"
	"github.com/privrun/privrun/internal/config"
	"github.com/privrun/privrun/internal/console"
	"github.com/privrun/privrun/internal/executor"
	"github.com/privrun/privrun/internal/logging"
	"github.com/privrun/privrun/internal/privilege"
	"github.com/privrun/privrun/internal/terminal"
)

func main() {
	if err := run(logging.GenerateRunID(), os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// run executes one invocation end to end. Every failure surfaces as an error
// after being reported on the console; nothing is caught or retried.
func run(runID string, args []string) error {
	logger := logging.Setup(logging.TraceEnabled(), runID, nil)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	inv := cli.NewInvocation(args)
	command := cli.Resolve(inv.First())
	logger.Debug("resolved command", "arg", inv.First(), "command", command.String())

	// Help and unrecognized input both print usage and succeed; the
	// privilege gate is never consulted.
	if command != cli.CommandRun {
		cli.Usage(os.Stdout)
		return nil
	}

	cfg, err := config.NewLoader().LoadFromEnv()
	if err != nil {
		// Preferences failed to load, so report with default styling.
		console.New(console.NewStyles(newCapabilities(config.Default()))).
			Error("failed to load preferences: %v", err)
		return err
	}

	cns := console.New(console.NewStyles(newCapabilities(cfg)))
	return runCommand(ctx, logger, cfg, cns)
}

// runCommand drives the gate-then-execute flow for the privileged command.
func runCommand(ctx context.Context, logger *slog.Logger, cfg *config.Config, cns *console.Console) error {
	manager := privilege.NewManager(logger, privilege.WithMechanism(cfg.Mechanism))

	if manager.EffectiveUID() != 0 {
		cns.Info("elevated privileges required, validating credentials via %s", cfg.Mechanism)
	}

	grant, err := manager.Elevate(ctx)
	if err != nil {
		switch {
		case errors.Is(err, privilege.ErrMechanismNotFound):
			cns.Error("%s could not be found on the search path", cfg.Mechanism)
		case errors.Is(err, privilege.ErrElevationDenied):
			cns.Error("unable to obtain elevated privileges via %s", cfg.Mechanism)
		default:
			cns.Error("privilege elevation failed: %v", err)
		}
		return err
	}

	if grant.State == privilege.StateAlreadyElevated {
		cns.Warn("process is already running with elevated privileges")
	}

	result, err := executor.NewRunner().Run(ctx, executor.NewAction(cfg.Action, grant))
	if err != nil {
		cns.Error("privileged command failed: %v", err)
		return err
	}

	cns.Info("running privileged commands as %s", result.Output())

	metrics := manager.Metrics()
	logger.Debug("elevation metrics",
		"attempts", metrics.ElevationAttempts,
		"successes", metrics.ElevationSuccesses,
		"failures", metrics.ElevationFailures,
		"total_elevation_time", metrics.TotalElevationTime,
	)

	cns.Completed("done")
	return nil
}

// newCapabilities maps the configured color mode onto terminal detection.
func newCapabilities(cfg *config.Config) terminal.Capabilities {
	return terminal.NewCapabilities(terminal.Options{
		PreferenceOptions: terminal.PreferenceOptions{
			ForceColor:   cfg.Color == config.ColorAlways,
			DisableColor: cfg.Color == config.ColorNever,
		},
	})
}
