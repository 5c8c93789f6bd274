package cmd

// Options holds the shared command-line options for the starboard CLI.
type Options struct {
	Server    string // Leaderboard server base URL
	Format    string // Non-interactive output format (table, json, markdown)
	Metric    string // Ranking metric
	View      string // TUI layout (table, cards)
	Page      int    // 1-based page number
	Search    string // Name substring filter
	Language  string // Exact language filter
	Topic     string // Exact topic filter
	Verbosity int
	TUI       *bool // nil = auto-detect, true = force TUI, false = disable TUI
}

// Option is a functional option for configuring Options.
type Option func(*Options)

// NewOptions creates a new Options with defaults and applies any provided options.
func NewOptions(opts ...Option) *Options {
	o := &Options{
		Page: 1,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithServer sets the leaderboard server base URL.
func WithServer(server string) Option {
	return func(o *Options) {
		o.Server = server
	}
}

// WithFormat sets the output format (table, json, markdown).
func WithFormat(format string) Option {
	return func(o *Options) {
		o.Format = format
	}
}

// WithMetric sets the ranking metric.
func WithMetric(metric string) Option {
	return func(o *Options) {
		o.Metric = metric
	}
}

// WithView sets the TUI layout (table, cards).
func WithView(view string) Option {
	return func(o *Options) {
		o.View = view
	}
}

// WithPage sets the 1-based page number.
func WithPage(page int) Option {
	return func(o *Options) {
		o.Page = page
	}
}

// WithSearch sets the name substring filter.
func WithSearch(q string) Option {
	return func(o *Options) {
		o.Search = q
	}
}

// WithLanguage sets the exact language filter.
func WithLanguage(language string) Option {
	return func(o *Options) {
		o.Language = language
	}
}

// WithTopic sets the exact topic filter.
func WithTopic(topic string) Option {
	return func(o *Options) {
		o.Topic = topic
	}
}

// WithVerbosity sets the verbosity level.
func WithVerbosity(v int) Option {
	return func(o *Options) {
		o.Verbosity = v
	}
}

// WithTUI controls TUI mode (nil = auto-detect, true = force, false = disable).
func WithTUI(tui *bool) Option {
	return func(o *Options) {
		o.TUI = tui
	}
}
