package main

import (
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree; tests get a fresh one per run.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "capacitytrace",
		Short: "Trace the size and capacity of a dynamic array through scripted operations.",
		Long: `capacitytrace replays a YAML script of push/insert/erase/reserve/... ops ` +
			`against a dynamic array and prints one row per step with its size, ` +
			`capacity and any reallocation the op caused.`,
		SilenceUsage: true,
	}
	root.AddCommand(newRunCmd())

	return root
}
