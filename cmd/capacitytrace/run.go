package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvseq/replay"
)

func newRunCmd() *cobra.Command {
	var showValues, verbose bool

	cmd := &cobra.Command{
		Use:   "run <script.yaml>",
		Short: "Replay a script and print the capacity trace.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			script, err := replay.LoadFile(args[0])
			if err != nil {
				return err
			}
			trace, runErr := replay.Run(cmd.Context(), script, replay.WithLogger(logger))
			if trace != nil {
				if err := trace.WriteTable(cmd.OutOrStdout(), showValues); err != nil {
					return err
				}
			}

			return runErr
		},
	}
	cmd.Flags().BoolVar(&showValues, "values", false, "print the live elements after every step")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every reallocation")

	return cmd
}
