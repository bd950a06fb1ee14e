package main

import (
	"fmt"

	"drills/internal/catalog"
	"drills/internal/config"
	"drills/pkg/drill"

	"github.com/spf13/cobra"
)

func listCommand(_ *config.Config) *cobra.Command {
	var topic string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lists the available drills",
		Run: func(cmd *cobra.Command, _ []string) {
			reg := catalog.Builtin()

			ds := reg.All()
			if topic != "" {
				ds = reg.ByTopic(drill.Topic(topic))
			}

			for _, d := range ds {
				kind := "runnable"
				if !d.Runnable() {
					kind = "prose"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-18s %-8s %-9s %s\n", d.ID, d.Topic, kind, d.Question)
			}
		},
	}

	cmd.Flags().StringVarP(&topic, "topic", "t", "", "Only list drills of this topic (errors, files, logging, memory)")

	return cmd
}
