package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/guessr/internal/setdiff"
)

var (
	diffMode       string
	diffTrim       bool
	diffIgnoreCase bool
	diffSkipBlank  bool
	diffCount      bool
)

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff A B",
		Short: "Print lines of A that are missing from B",
		Long: "Compare two line-oriented files as sets. Useful for checking that every\n" +
			"answer list entry is also in the accepted word list.",
		Args: cobra.ExactArgs(2),
		RunE: runDiffCmd,
	}
	cmd.Flags().StringVar(&diffMode, "mode", string(setdiff.OnlyA), "only-a, only-b, both or symmetric")
	cmd.Flags().BoolVar(&diffTrim, "trim", true, "trim surrounding whitespace")
	cmd.Flags().BoolVar(&diffIgnoreCase, "ignore-case", false, "compare lines case-insensitively")
	cmd.Flags().BoolVar(&diffSkipBlank, "skip-blank", true, "ignore blank lines")
	cmd.Flags().BoolVar(&diffCount, "count", false, "print line counts to stderr")
	return cmd
}

func runDiffCmd(cmd *cobra.Command, args []string) error {
	mode, err := setdiff.ParseMode(diffMode)
	if err != nil {
		return err
	}
	opts := setdiff.Options{
		Mode:       mode,
		Trim:       diffTrim,
		IgnoreCase: diffIgnoreCase,
		SkipBlank:  diffSkipBlank,
	}
	res, err := setdiff.CompareFiles(cmd.Context(), args[0], args[1], opts)
	if err != nil {
		return fmt.Errorf("failed to compare: %w", err)
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	for _, line := range res.Lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if diffCount {
		_, err := fmt.Fprintf(cmd.ErrOrStderr(), "%s: %d lines, %s: %d lines, %s: %d\n",
			args[0], res.CountA, args[1], res.CountB, mode, len(res.Lines))
		if err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
