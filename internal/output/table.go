package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/gitstars/starboard/internal/format"
	"github.com/gitstars/starboard/internal/model"
	"github.com/gitstars/starboard/internal/state"
)

// Column widths for the leaderboard table.
const (
	colRank     = 5
	colRepo     = 36
	colCount    = 10
	colNew      = 9
	colLanguage = 12
)

// TableFormatter renders human-readable terminal tables.
type TableFormatter struct{}

var (
	headerColor = color.New(color.Bold)
	dimColor    = color.New(color.FgHiBlack)
	starColor   = color.New(color.FgYellow)
	newColor    = color.New(color.FgGreen)
)

// hyperlink wraps text in an OSC 8 terminal hyperlink when stdout is a
// terminal.
func hyperlink(text, url string) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return text
	}
	return fmt.Sprintf("\033]8;;%s\033\\%s\033]8;;\033\\", url, text)
}

// FormatPage renders one leaderboard page with global ranks.
func (f *TableFormatter) FormatPage(page *model.LeaderboardPage, s state.ViewState, w io.Writer) error {
	if len(page.Items) == 0 {
		fmt.Fprintln(w, "No repositories matched.")
		return nil
	}

	trending := s.Metric.Trending()

	headerColor.Fprintf(w, "%-*s  %-*s  %*s  %*s  %*s",
		colRank, "Rank",
		colRepo, "Repository",
		colCount, "Stars",
		colCount, "Forks",
		colCount, "Watchers")
	if trending {
		headerColor.Fprintf(w, "  %*s", colNew, "New")
	}
	headerColor.Fprintf(w, "  %-*s\n", colLanguage, "Language")

	width := colRank + colRepo + 3*colCount + colLanguage + 10
	if trending {
		width += colNew + 2
	}
	fmt.Fprintln(w, strings.Repeat("─", width))

	for i, item := range page.Items {
		name, nameWidth := format.TruncateToWidth(item.Name, colRepo)
		name = format.PadRight(hyperlink(name, "https://github.com/"+item.Name), nameWidth, colRepo)

		fmt.Fprintf(w, "%-*d  %s  %s  %*s  %*s",
			colRank, model.GlobalRank(page.Page, i),
			name,
			starColor.Sprintf("%*s", colCount, format.Count(item.Stars)),
			colCount, format.Count(item.Forks),
			colCount, format.Count(item.Watchers))
		if trending {
			fmt.Fprintf(w, "  %s", newColor.Sprintf("%*s", colNew, format.NewStars(item.NewStars)))
		}

		lang := item.Language
		if lang == "" {
			lang = format.Missing
		}
		fmt.Fprintf(w, "  %-*s", colLanguage, lang)
		if item.Archived {
			fmt.Fprintf(w, "  %s", dimColor.Sprint("archived"))
		}
		fmt.Fprintln(w)
	}

	dimColor.Fprintf(w, "\nPage %d of %d  (%s repositories, metric: %s)\n",
		page.Page, page.TotalPages, format.Count(page.Total), s.Metric)
	return nil
}

// FormatRepo renders the detail record plus a short history summary.
func (f *TableFormatter) FormatRepo(detail *model.RepoDetail, hist *model.History, w io.Writer) error {
	headerColor.Fprintln(w, detail.Name)
	if detail.Archived {
		dimColor.Fprintln(w, "archived")
	}
	if detail.Description != "" {
		fmt.Fprintln(w, detail.Description)
	}
	fmt.Fprintln(w)

	row := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(w, "%-12s %s\n", label, value)
	}

	if detail.GlobalRank != nil {
		row("Rank", "#"+format.Count(*detail.GlobalRank))
	}
	row("Stars", format.Count(detail.Stars))
	row("Forks", format.Count(detail.Forks))
	row("Watchers", format.Count(detail.Watchers))
	row("Disk", format.DiskKB(detail.DiskKB))
	row("Language", detail.Language)
	row("Homepage", detail.Homepage)
	if len(detail.Topics) > 0 {
		row("Topics", strings.Join(detail.Topics, ", "))
	}
	row("Created", format.Date(detail.CreatedAt))
	row("Last push", format.Date(detail.PushedAt))

	if hist != nil && len(hist.Segments) > 0 {
		first := hist.Segments[0]
		last := hist.Segments[len(hist.Segments)-1]
		fmt.Fprintln(w)
		dimColor.Fprintf(w, "%d history segments, %s .. %s (stars %s -> %s)\n",
			len(hist.Segments),
			format.Date(first.StartFetchedAt), format.Date(last.EndFetchedAt),
			format.Count(first.Stars), format.Count(last.Stars))
	}
	return nil
}
