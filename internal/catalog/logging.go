package catalog

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"drills/pkg/drill"
	"drills/pkg/rotate"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// drillLogger builds a zap logger that writes plain, timestamp-free console
// entries to w at the given level, so drill output stays deterministic.
func drillLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)

	return zap.New(core)
}

func loggingDrills() []drill.Drill {
	return []drill.Drill{
		{
			ID:       "logging/levels",
			Topic:    drill.TopicLogging,
			Question: "Which log entries survive when the logger is set to info level?",
			Answer: "Entries at or above the configured level. Debug entries are " +
				"dropped by an info-level logger; info, warn and error pass through.",
			Run: func(_ context.Context, w io.Writer, _ drill.Env) error {
				log := drillLogger(w, zapcore.InfoLevel)
				defer func() { _ = log.Sync() }()

				log.Debug("debug entry, dropped at info level")
				log.Info("info entry")
				log.Warn("warn entry")
				log.Error("error entry")

				return nil
			},
		},
		{
			ID:       "logging/rotate",
			Topic:    drill.TopicLogging,
			Question: "How do you keep a log file from growing without bound?",
			Answer: "Rotate it: once the active file would exceed a configured byte " +
				"threshold, rename it to a numbered backup and start fresh, keeping " +
				"only a bounded number of backups.",
			Run: func(_ context.Context, w io.Writer, env drill.Env) error {
				path := filepath.Join(env.Workdir, "app.log")
				sink, err := rotate.New(rotate.Options{Path: path, MaxBytes: 256, MaxBackups: 2})
				if err != nil {
					return err
				}
				defer func() { _ = sink.Close() }()

				log := drillLogger(sink, zapcore.InfoLevel)
				for i := 0; i < 20; i++ {
					log.Info("rotation filler entry", zap.Int("seq", i))
				}
				if err := log.Sync(); err != nil {
					return err
				}

				backups := sink.Backups()
				fmt.Fprintf(w, "active file: %s\n", filepath.Base(path))
				fmt.Fprintf(w, "retained backups: %d (bounded by MaxBackups=2)\n", len(backups))
				for _, b := range backups {
					fmt.Fprintf(w, "  %s\n", filepath.Base(b))
				}

				return nil
			},
		},
	}
}
