package main

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"drills/internal/catalog"
	"drills/internal/config"
	"drills/internal/runner"
	"drills/pkg/drill"
	"drills/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// selectDrills resolves CLI arguments to drills. No arguments means the whole
// catalog.
func selectDrills(reg *catalog.Registry, args []string) ([]drill.Drill, error) {
	if len(args) == 0 {
		return reg.All(), nil
	}

	out := make([]drill.Drill, 0, len(args))
	for _, id := range args {
		d, ok := reg.Get(id)
		if !ok {
			return nil, fmt.Errorf("unknown drill %q (try: drills list)", id)
		}
		out = append(out, d)
	}

	return out, nil
}

func runCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "run [drill...]",
		Short:        "Runs drills and prints their output (all drills when none are named)",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			selected, err := selectDrills(catalog.Builtin(), args)
			if err != nil {
				return err
			}

			r := runner.New(runner.NewOptions(cfg))
			report, err := r.Run(ctx, selected)
			if report != nil {
				printReport(cmd, report)
			}
			if err != nil {
				logger.Error(ctx, "run did not finish", zap.Error(err))

				return err
			}

			if n := report.Failed(); n > 0 {
				return fmt.Errorf("%d of %d drills failed", n, len(report.Results))
			}

			return nil
		},
	}

	return cmd
}

func printReport(cmd *cobra.Command, report *drill.Report) {
	w := cmd.OutOrStdout()

	for _, res := range report.Results {
		fmt.Fprintf(w, "--- %s (%s)\n", res.DrillID, res.Duration)
		if out := strings.TrimRight(res.Output, "\n"); out != "" {
			fmt.Fprintln(w, out)
		}
		if res.Failed() {
			fmt.Fprintf(w, "FAILED: %v\n", res.Err)
		}
	}

	fmt.Fprintf(w, "\nrun %s: %d drills, %d failed\n", report.RunID, len(report.Results), report.Failed())
}
