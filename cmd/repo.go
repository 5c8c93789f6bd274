package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gitstars/starboard/internal/output"
)

// NewCmdRepo creates the repo command: print one repository's detail
// record and history summary.
func NewCmdRepo(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repo <owner/name>",
		Short: "Show one repository's stats and metric history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepo(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.Server, "server", "", "Leaderboard server URL (overrides config)")
	cmd.Flags().StringVarP(&opts.Format, "output", "o", "", "Output format (table, json, markdown)")
	cmd.Flags().CountVarP(&opts.Verbosity, "verbose", "v", "Increase verbosity (-v info, -vv debug, -vvv trace)")
	return cmd
}

func runRepo(cmd *cobra.Command, name string, opts *Options) error {
	rt, err := setupRuntime(opts)
	if err != nil {
		return err
	}

	detail, hist, err := rt.client.RepoWithHistory(cmd.Context(), name)
	if err != nil {
		return err
	}

	format := opts.Format
	if format == "" {
		format = rt.cfg.DefaultFormat
	}
	formatter := output.NewFormatter(output.Format(format))
	return formatter.FormatRepo(detail, hist, cmd.OutOrStdout())
}
