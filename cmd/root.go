package cmd

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gitstars/starboard/config"
	"github.com/gitstars/starboard/internal/cache"
	"github.com/gitstars/starboard/internal/client"
	"github.com/gitstars/starboard/internal/log"
	"github.com/gitstars/starboard/internal/output"
	"github.com/gitstars/starboard/internal/state"
	"github.com/gitstars/starboard/internal/tui"
)

// New creates the root command with all subcommands registered.
func New() *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:   "starboard [query-string]",
		Short: "Browse the open-source repository leaderboard",
		Long: `An interactive browser for a repository star leaderboard. Page through
repositories ranked by stars, forks, watchers, disk usage, or trending star
gains, filter by name, language, or topic, and inspect per-repo metric history.

The optional argument is a shared view link's query string, e.g.
"page=3&metric=forks&language=Go", restoring that exact view.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, args, opts)
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	addBrowseFlags(rootCmd, opts)

	rootCmd.AddCommand(NewCmdTop(opts))
	rootCmd.AddCommand(NewCmdRepo(opts))
	rootCmd.AddCommand(NewCmdBadge(opts))
	rootCmd.AddCommand(NewCmdConfig())
	rootCmd.AddCommand(NewCmdVersion())

	return rootCmd
}

// addBrowseFlags adds the shared view flags to a command.
func addBrowseFlags(cmd *cobra.Command, opts *Options) {
	cmd.Flags().StringVar(&opts.Server, "server", "", "Leaderboard server URL (overrides config)")
	cmd.Flags().StringVarP(&opts.Metric, "metric", "m", "", "Ranking metric (stars, forks, watchers, diskUsage, trending24h/3d/7d/30d)")
	cmd.Flags().IntVar(&opts.Page, "page", 0, "Page number (1-based)")
	cmd.Flags().StringVarP(&opts.Search, "search", "q", "", "Filter by name substring")
	cmd.Flags().StringVar(&opts.Language, "language", "", "Filter by exact language")
	cmd.Flags().StringVar(&opts.Topic, "topic", "", "Filter by exact topic")
	cmd.Flags().StringVar(&opts.View, "view", "", "Layout (table, cards)")
	cmd.Flags().StringVarP(&opts.Format, "output", "o", "", "Non-interactive output format (table, json, markdown)")
	cmd.Flags().CountVarP(&opts.Verbosity, "verbose", "v", "Increase verbosity (-v info, -vv debug, -vvv trace)")
	cmd.Flags().Var(newTUIFlag(opts), "tui", "Enable/disable the interactive browser (default: auto-detect)")
}

// runtime bundles what every command needs: resolved config, the API
// client, and a session cache.
type runtime struct {
	cfg     *config.Config
	client  *client.Client
	session tui.Session
}

// setupRuntime loads config, initializes logging, and builds the client.
func setupRuntime(opts *Options) (*runtime, error) {
	log.Initialize(opts.Verbosity, os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if opts.Server != "" {
		cfg.ServerURL = opts.Server
	}
	cfg.ServerURL = strings.TrimRight(cfg.ServerURL, "/")

	c := client.New(cfg.ServerURL, time.Duration(cfg.TimeoutSeconds)*time.Second)
	log.Debug("runtime ready", "server", cfg.ServerURL, "timeout", cfg.TimeoutSeconds)

	return &runtime{
		cfg:    cfg,
		client: c,
		session: tui.Session{
			Client: c,
			Cache:  cache.New(cache.DefaultMaxEntries),
			Server: cfg.ServerURL,
		},
	}, nil
}

// resolveState builds the initial view state: config defaults, then the
// deep-link argument, then explicit flags, in increasing precedence.
func resolveState(cfg *config.Config, opts *Options, args []string) (state.ViewState, state.Intents, error) {
	s := state.Default()
	if m := state.Metric(cfg.DefaultMetric); m.Valid() {
		s.Metric = m
	}
	if cfg.DefaultView == string(state.ViewCards) {
		s.View = state.ViewCards
	}

	var intents state.Intents
	if len(args) == 1 {
		raw := strings.TrimPrefix(args[0], "?")
		link := state.Parse(raw)
		// The deep link speaks for every field it carries; keep config
		// defaults only for fields the link omits.
		s = mergeLink(s, link, raw)
		intents = state.ParseIntents(raw)
	}

	if opts.Metric != "" {
		m := state.Metric(opts.Metric)
		if !m.Valid() {
			return s, intents, fmt.Errorf("unknown metric %q", opts.Metric)
		}
		s = s.WithMetric(m)
	}
	if opts.Page > 0 {
		s.Page = opts.Page
	}
	if opts.Search != "" || opts.Language != "" || opts.Topic != "" {
		s = s.WithFilters(
			firstNonEmpty(opts.Search, s.Search),
			firstNonEmpty(opts.Language, s.Language),
			firstNonEmpty(opts.Topic, s.Topic),
		)
		if opts.Page > 0 {
			s.Page = opts.Page
		}
	}
	if opts.View != "" {
		switch state.ViewMode(opts.View) {
		case state.ViewTable, state.ViewCards:
			s.View = state.ViewMode(opts.View)
		default:
			return s, intents, fmt.Errorf("unknown view %q", opts.View)
		}
	}

	return s, intents, nil
}

// mergeLink overlays the parsed link on the defaults, keeping default
// values for parameters absent from the raw query.
func mergeLink(base state.ViewState, link state.ViewState, raw string) state.ViewState {
	s := link
	vals, err := url.ParseQuery(raw)
	if err != nil {
		return s
	}
	if !vals.Has("metric") {
		s.Metric = base.Metric
	}
	if !vals.Has("view") {
		s.View = base.View
	}
	return s
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// runBrowse starts the interactive browser, or prints one page when the
// TUI is disabled or unavailable.
func runBrowse(cmd *cobra.Command, args []string, opts *Options) error {
	rt, err := setupRuntime(opts)
	if err != nil {
		return err
	}

	s, intents, err := resolveState(rt.cfg, opts, args)
	if err != nil {
		return err
	}

	if !shouldUseTUI(opts) {
		return printPage(cmd, rt, s, opts)
	}

	restore := silenceLogsForTUI(opts)
	defer restore()
	return tui.Run(rt.session, tui.WithState(s), tui.WithIntents(intents))
}

// silenceLogsForTUI discards log output while the TUI owns the terminal;
// a stray stderr line would corrupt the alt-screen display. The returned
// func restores stderr logging.
func silenceLogsForTUI(opts *Options) func() {
	log.Initialize(opts.Verbosity, io.Discard)
	return func() {
		log.Initialize(opts.Verbosity, os.Stderr)
	}
}

// printPage fetches and prints a single leaderboard page without the TUI.
func printPage(cmd *cobra.Command, rt *runtime, s state.ViewState, opts *Options) error {
	page, err := rt.client.Leaderboard(cmd.Context(), s)
	if err != nil {
		return err
	}
	format := opts.Format
	if format == "" {
		format = rt.cfg.DefaultFormat
	}
	formatter := output.NewFormatter(output.Format(format))
	return formatter.FormatPage(page, s, cmd.OutOrStdout())
}
