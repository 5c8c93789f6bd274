package cmd

import (
	"github.com/spf13/cobra"
)

// NewCmdTop creates the top command: print one leaderboard page without
// the interactive browser.
func NewCmdTop(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "top [query-string]",
		Short: "Print a leaderboard page (same view as the browser, non-interactive)",
		Long: `Fetches one leaderboard page and prints it. Accepts the same shared
view link argument and flags as the root command, so a link copied out
of the browser reproduces the same listing here.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTop(cmd, args, opts)
		},
	}

	addBrowseFlags(cmd, opts)
	return cmd
}

func runTop(cmd *cobra.Command, args []string, opts *Options) error {
	rt, err := setupRuntime(opts)
	if err != nil {
		return err
	}

	s, _, err := resolveState(rt.cfg, opts, args)
	if err != nil {
		return err
	}

	return printPage(cmd, rt, s, opts)
}
