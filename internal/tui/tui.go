// Package tui implements the interactive leaderboard browser on Bubble
// Tea: a paged repository list in table or card layout, a filter form,
// and a detail modal with metric history charts.
package tui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/gitstars/starboard/internal/cache"
	"github.com/gitstars/starboard/internal/client"
)

// Session bundles the shared dependencies of one interactive run. The
// cache lives for the session and is only touched from the event loop.
type Session struct {
	Client *client.Client
	Cache  cache.Store
	Server string
}

// Run starts the interactive browser and blocks until it exits.
func Run(s Session, opts ...BrowseOption) error {
	model := NewBrowseModel(s.Client, s.Cache, s.Server, opts...)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// ShouldUseTUI returns true if the TUI should be used based on environment.
func ShouldUseTUI() bool {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}

	ciVars := []string{
		"CI",
		"GITHUB_ACTIONS",
		"JENKINS_URL",
		"TRAVIS",
		"CIRCLECI",
		"GITLAB_CI",
		"BUILDKITE",
	}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return false
		}
	}

	return true
}
