package main

import (
	"fmt"

	"drills/internal/catalog"
	"drills/internal/config"

	"github.com/spf13/cobra"
)

func explainCommand(_ *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain <drill>",
		Short: "Prints a drill's question and answer without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, ok := catalog.Builtin().Get(args[0])
			if !ok {
				return fmt.Errorf("unknown drill %q (try: drills list)", args[0])
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s [%s]\n\n", d.ID, d.Topic)
			fmt.Fprintf(w, "Q: %s\n\n", d.Question)
			fmt.Fprintf(w, "A: %s\n", d.Answer)

			return nil
		},
	}

	return cmd
}
