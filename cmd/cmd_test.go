package cmd

import (
	"bytes"
	"testing"

	"github.com/gitstars/starboard/config"
	"github.com/gitstars/starboard/internal/log"
	"github.com/gitstars/starboard/internal/state"
)

func TestNew(t *testing.T) {
	cmd := New()
	if cmd == nil {
		t.Fatal("New() returned nil")
	}
	if cmd.Use != "starboard [query-string]" {
		t.Errorf("unexpected Use: %q", cmd.Use)
	}
}

func TestSubcommandConstructors(t *testing.T) {
	opts := &Options{}
	tests := []struct {
		name string
		use  string
	}{
		{"top", NewCmdTop(opts).Use},
		{"repo", NewCmdRepo(opts).Use},
		{"badge", NewCmdBadge(opts).Use},
		{"config", NewCmdConfig().Use},
		{"version", NewCmdVersion().Use},
	}
	for _, tt := range tests {
		if tt.use == "" {
			t.Errorf("%s command has empty Use", tt.name)
		}
	}
}

func TestSetVersionInfo(t *testing.T) {
	SetVersionInfo("1.0.0", "abc123", "2026-01-01")
	if version != "1.0.0" || commit != "abc123" || date != "2026-01-01" {
		t.Errorf("version info = %s/%s/%s", version, commit, date)
	}
}

func TestTUIFlag(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"true", "true", false},
		{"1", "true", false},
		{"false", "false", false},
		{"no", "false", false},
		{"auto", "auto", false},
		{"maybe", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			opts := &Options{}
			f := newTUIFlag(opts)
			err := f.Set(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Set(%q) error = %v", tt.input, err)
			}
			if got := f.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveState(t *testing.T) {
	cfg := &config.Config{DefaultMetric: "forks", DefaultView: "cards"}

	t.Run("config defaults apply", func(t *testing.T) {
		s, _, err := resolveState(cfg, &Options{}, nil)
		if err != nil {
			t.Fatal(err)
		}
		if s.Metric != state.MetricForks {
			t.Errorf("Metric = %q, want forks from config", s.Metric)
		}
		if s.View != state.ViewCards {
			t.Errorf("View = %q, want cards from config", s.View)
		}
		if s.Page != 1 {
			t.Errorf("Page = %d, want 1", s.Page)
		}
	})

	t.Run("deep link overrides config where present", func(t *testing.T) {
		s, _, err := resolveState(cfg, &Options{}, []string{"page=3&metric=stars&language=Go"})
		if err != nil {
			t.Fatal(err)
		}
		if s.Page != 3 || s.Metric != state.MetricStars || s.Language != "Go" {
			t.Errorf("state = %+v", s)
		}
		// view absent from the link, config default survives
		if s.View != state.ViewCards {
			t.Errorf("View = %q, want cards preserved", s.View)
		}
	})

	t.Run("similarly named parameter is not a metric", func(t *testing.T) {
		s, _, err := resolveState(cfg, &Options{}, []string{"xmetric=stars&page=2"})
		if err != nil {
			t.Fatal(err)
		}
		// No metric key in the link, so the config default survives
		if s.Metric != state.MetricForks {
			t.Errorf("Metric = %q, want forks from config", s.Metric)
		}
		if s.Page != 2 {
			t.Errorf("Page = %d, want 2", s.Page)
		}
	})

	t.Run("deep link carries intents", func(t *testing.T) {
		_, intents, err := resolveState(cfg, &Options{}, []string{"highlight=owner/repo&open=owner/repo"})
		if err != nil {
			t.Fatal(err)
		}
		if name, ok := intents.TakeHighlight(); !ok || name != "owner/repo" {
			t.Errorf("TakeHighlight = %q, %v", name, ok)
		}
		if name, ok := intents.TakeOpen(); !ok || name != "owner/repo" {
			t.Errorf("TakeOpen = %q, %v", name, ok)
		}
	})

	t.Run("flags override deep link", func(t *testing.T) {
		opts := &Options{Metric: "watchers", Page: 7}
		s, _, err := resolveState(cfg, opts, []string{"page=3&metric=stars"})
		if err != nil {
			t.Fatal(err)
		}
		if s.Metric != state.MetricWatchers {
			t.Errorf("Metric = %q, want flag override", s.Metric)
		}
		if s.Page != 7 {
			t.Errorf("Page = %d, want 7", s.Page)
		}
	})

	t.Run("invalid metric flag rejected", func(t *testing.T) {
		if _, _, err := resolveState(cfg, &Options{Metric: "velocity"}, nil); err == nil {
			t.Error("expected error for unknown metric")
		}
	})

	t.Run("invalid view flag rejected", func(t *testing.T) {
		if _, _, err := resolveState(cfg, &Options{View: "mosaic"}, nil); err == nil {
			t.Error("expected error for unknown view")
		}
	})
}

func TestSilenceLogsForTUI(t *testing.T) {
	var buf bytes.Buffer
	log.Initialize(0, &buf)

	restore := silenceLogsForTUI(&Options{})
	// Warn and Error bypass the verbosity gate, so they are exactly the
	// lines that would leak under the alt screen
	log.Warn("fetch failed", "error", "boom")
	log.Error("fetch failed", "error", "boom")
	if buf.Len() != 0 {
		t.Errorf("log output leaked while the TUI owns the terminal: %q", buf.String())
	}

	restore()
}

func TestNewOptions(t *testing.T) {
	forceTUI := true
	opts := NewOptions(
		WithServer("http://localhost:8000"),
		WithMetric("trending7d"),
		WithPage(2),
		WithTUI(&forceTUI),
	)
	if opts.Server != "http://localhost:8000" {
		t.Errorf("Server = %q", opts.Server)
	}
	if opts.Metric != "trending7d" {
		t.Errorf("Metric = %q", opts.Metric)
	}
	if opts.Page != 2 {
		t.Errorf("Page = %d", opts.Page)
	}
	if opts.TUI == nil || !*opts.TUI {
		t.Error("TUI should be forced on")
	}
}
