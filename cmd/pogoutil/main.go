package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/osse101/pogoutil/internal/config"
	"github.com/osse101/pogoutil/internal/enum"
	"github.com/osse101/pogoutil/internal/inventory"
	"github.com/osse101/pogoutil/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	initLogger(cfg)

	ctx := logger.WithRunID(context.Background(), logger.GenerateRunID())
	if err := run(ctx, cfg, os.Args[1:], os.Stdout); err != nil {
		logger.FromContext(ctx).Error("Command failed", "error", err)
		os.Exit(1)
	}
}

// initLogger starts from the environment preset and applies the app configuration
func initLogger(cfg *config.Config) {
	lc := logger.ConfigFor(cfg.Environment)
	lc.Level = cfg.LogLevel
	lc.Format = cfg.LogFormat
	lc.ServiceName = cfg.ServiceName
	lc.Version = cfg.Version
	logger.InitLogger(lc)
}

func loadEnums(cfg *config.Config) (*enum.Registry, error) {
	if cfg.EnumsPath == "" {
		return enum.Default(cfg.LabelCacheSize)
	}
	return enum.LoadFile(cfg.EnumsPath, cfg.LabelCacheSize)
}

// run dispatches args to a command writing its output to out
func run(ctx context.Context, cfg *config.Config, args []string, out io.Writer) error {
	enums, err := loadEnums(cfg)
	if err != nil {
		return err
	}

	commands := newCommandRegistry(&env{
		out:     out,
		decoder: inventory.NewDecoder(),
		enums:   enums,
	})

	if len(args) == 0 {
		commands.PrintHelp(out)
		return fmt.Errorf("%w: no command given", errUsage)
	}

	cmd, ok := commands.Get(args[0])
	if !ok {
		commands.PrintHelp(out)
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}

	logger.FromContext(ctx).Debug("Running command", "command", cmd.Name(), "args", args[1:])
	if err := cmd.Run(args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			return err
		}
		return fmt.Errorf("%s: %w", cmd.Name(), err)
	}
	return nil
}
