// Package output renders leaderboard data for non-interactive use:
// plain-terminal tables, JSON for scripting, and markdown.
package output

import (
	"io"

	"github.com/gitstars/starboard/internal/model"
	"github.com/gitstars/starboard/internal/state"
)

// Format selects an output renderer.
type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Formatter renders a leaderboard page or a repository detail.
type Formatter interface {
	FormatPage(page *model.LeaderboardPage, s state.ViewState, w io.Writer) error
	FormatRepo(detail *model.RepoDetail, hist *model.History, w io.Writer) error
}

// NewFormatter creates the formatter for the given format, defaulting to
// the table renderer.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	case FormatMarkdown:
		return &MarkdownFormatter{}
	default:
		return &TableFormatter{}
	}
}
