// Package runner executes a selection of drills sequentially, capturing each
// drill's output and turning panics into failed results so one broken drill
// never takes down the run.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"drills/internal/config"
	"drills/pkg/drill"
	"drills/pkg/logger"

	"go.uber.org/zap"
)

// Options configure a run. These settings are typically derived from
// application configuration.
type Options struct {
	// DataDir is where per-run scratch directories are created. Empty means
	// the system temp directory.
	DataDir string
	// StopOnFailure halts the run after the first drill that errors.
	StopOnFailure bool
	// KeepWorkdir leaves the per-run scratch directory in place after the
	// run, for inspection.
	KeepWorkdir bool
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		DataDir:       cfg.Runner.DataDir,
		StopOnFailure: cfg.Runner.StopOnFailure,
		KeepWorkdir:   cfg.Runner.KeepWorkdir,
	}
}

// Runner executes drills one at a time, in order.
type Runner struct {
	options Options
}

// New constructs a Runner.
func New(options Options) *Runner {
	return &Runner{options: options}
}

// Run executes the given drills sequentially and returns a report with one
// result per executed drill. Prose-only drills are skipped. A drill error is
// recorded in its result and, unless StopOnFailure is set, the run continues;
// Run itself only errors when the run cannot proceed at all (scratch
// directory creation, context cancellation).
func (r *Runner) Run(ctx context.Context, drills []drill.Drill) (*drill.Report, error) {
	report := &drill.Report{
		RunID:   drill.NewRunID(),
		Started: time.Now(),
	}
	ctx = logger.WithFields(ctx, zap.String("runID", report.RunID.String()))

	workdir, err := os.MkdirTemp(r.options.DataDir, "drills-run-")
	if err != nil {
		return nil, fmt.Errorf("could not create run workdir: %w", err)
	}
	if !r.options.KeepWorkdir {
		defer func() {
			if err := os.RemoveAll(workdir); err != nil {
				logger.Warn(ctx, "could not remove run workdir", zap.Error(err))
			}
		}()
	}

	for i, d := range drills {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("run interrupted: %w", err)
		}

		if !d.Runnable() {
			logger.Debug(ctx, "skipping prose-only drill", zap.String("drill", d.ID))

			continue
		}

		res := r.runOne(ctx, d, workdir, i)
		report.Results = append(report.Results, res)

		if res.Failed() {
			logger.Error(ctx, "drill failed",
				zap.String("drill", d.ID),
				zap.Duration("duration", res.Duration),
				zap.Error(res.Err))
			if r.options.StopOnFailure {
				break
			}

			continue
		}

		logger.Info(ctx, "drill completed",
			zap.String("drill", d.ID),
			zap.Duration("duration", res.Duration))
	}

	return report, nil
}

// runOne executes a single drill in its own scratch subdirectory, recovering
// panics into the result error.
func (r *Runner) runOne(ctx context.Context, d drill.Drill, workdir string, seq int) (res drill.Result) {
	res.DrillID = d.ID
	started := time.Now()

	var buf bytes.Buffer
	defer func() {
		res.Output = buf.String()
		res.Duration = time.Since(started)
		if p := recover(); p != nil {
			res.Err = fmt.Errorf("drill %q panicked: %v", d.ID, p)
		}
	}()

	dir := filepath.Join(workdir, fmt.Sprintf("%03d-%s", seq, pathSafe(d.ID)))
	if err := os.MkdirAll(dir, 0750); err != nil {
		res.Err = fmt.Errorf("could not create drill workdir: %w", err)

		return res
	}

	if err := d.Run(ctx, &buf, drill.Env{Workdir: dir}); err != nil {
		res.Err = fmt.Errorf("drill %q: %w", d.ID, err)
	}

	return res
}

// pathSafe flattens a drill ID into a directory-name-safe form.
func pathSafe(id string) string {
	out := []rune(id)
	for i, c := range out {
		if c == '/' || c == '\\' {
			out[i] = '_'
		}
	}

	return string(out)
}
