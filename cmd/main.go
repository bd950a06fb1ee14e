// Package main provides the CLI entrypoint for the drills study toolkit.
// It wires subcommands (list, run, explain), loads configuration, and
// initializes logging, optionally routed through a rotating file sink.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	"drills/internal/config"
	"drills/pkg/logger"
	"drills/pkg/rotate"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// setupLogging configures the process logger, attaching a rotating file sink
// when the config asks for one. It returns a cleanup function that flushes
// and closes the sink.
func setupLogging(cfg *config.Config) func() {
	if !cfg.Log.ToFile {
		logger.Setup(cfg.Environment)

		return func() {}
	}

	sink, err := rotate.New(rotate.Options{
		Path:       filepath.Join(cfg.Log.Dir, cfg.Log.Filename),
		MaxBytes:   cfg.Log.MaxBytes,
		MaxBackups: cfg.Log.MaxBackups,
		Compress:   cfg.Log.Compress,
	})
	if err != nil {
		log.Fatal("could not open log file sink: ", err)
	}

	logger.SetupWithSink(cfg.Environment, sink)

	return func() {
		_ = sink.Sync()
		_ = sink.Close()
	}
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:   "drills",
		Short: "Runnable study drills for error handling, file I/O and logging",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	closeSink := setupLogging(cfg)
	defer closeSink()

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		listCommand(cfg),
		runCommand(cfg),
		explainCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		closeSink()
		os.Exit(1) //nolint: gocritic
	}
}
