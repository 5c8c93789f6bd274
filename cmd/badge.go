package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitstars/starboard/internal/badge"
)

// NewCmdBadge creates the badge command: print the README badge markdown
// for a repository's global rank.
func NewCmdBadge(opts *Options) *cobra.Command {
	var endpointOnly bool

	cmd := &cobra.Command{
		Use:   "badge <owner/name>",
		Short: "Print the global-rank badge markdown for a repository",
		Long: `Prints ready-to-paste README markdown for a shields.io badge showing
the repository's global star rank. The badge queries the leaderboard
server, so it stays current without regenerating.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setupRuntime(opts)
			if err != nil {
				return err
			}
			if endpointOnly {
				fmt.Fprintln(cmd.OutOrStdout(), badge.EndpointURL(rt.cfg.ServerURL, args[0]))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), badge.Markdown(rt.cfg.ServerURL, args[0]))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Server, "server", "", "Leaderboard server URL (overrides config)")
	cmd.Flags().BoolVar(&endpointOnly, "endpoint", false, "Print only the shields.io endpoint URL")
	return cmd
}
