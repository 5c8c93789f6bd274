package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/gitstars/starboard/internal/format"
	"github.com/gitstars/starboard/internal/model"
	"github.com/gitstars/starboard/internal/state"
)

// MarkdownFormatter formats output as Markdown tables, ready to paste into
// an issue or README.
type MarkdownFormatter struct{}

// FormatPage outputs a leaderboard page as a Markdown table.
func (f *MarkdownFormatter) FormatPage(page *model.LeaderboardPage, s state.ViewState, w io.Writer) error {
	if len(page.Items) == 0 {
		fmt.Fprintln(w, "No repositories found.")
		return nil
	}

	fmt.Fprintf(w, "# Top repositories by %s\n\n", s.Metric)
	if s.HasFilters() {
		fmt.Fprintf(w, "*Filters: %s*\n\n", filterSummary(s))
	}

	trending := s.Metric.Trending()
	if trending {
		fmt.Fprintln(w, "| Rank | Repository | Stars | New | Forks | Language |")
		fmt.Fprintln(w, "|-----:|------------|------:|----:|------:|----------|")
	} else {
		fmt.Fprintln(w, "| Rank | Repository | Stars | Forks | Watchers | Language |")
		fmt.Fprintln(w, "|-----:|------------|------:|------:|---------:|----------|")
	}

	for i, item := range page.Items {
		rank := model.GlobalRank(page.Page, i)
		repo := fmt.Sprintf("[%s](https://github.com/%s)", escapePipes(item.Name), item.Name)
		if item.Archived {
			repo += " *(archived)*"
		}
		lang := item.Language
		if lang == "" {
			lang = format.Missing
		}
		if trending {
			fmt.Fprintf(w, "| %d | %s | %s | %s | %s | %s |\n",
				rank, repo,
				format.Count(item.Stars),
				format.NewStars(item.NewStars),
				format.Count(item.Forks),
				escapePipes(lang),
			)
		} else {
			fmt.Fprintf(w, "| %d | %s | %s | %s | %s | %s |\n",
				rank, repo,
				format.Count(item.Stars),
				format.Count(item.Forks),
				format.Count(item.Watchers),
				escapePipes(lang),
			)
		}
	}

	fmt.Fprintf(w, "\n*Page %d of %d (%s repositories)*\n", page.Page, page.TotalPages, format.Count(page.Total))
	return nil
}

// FormatRepo outputs a single repository's details as Markdown.
func (f *MarkdownFormatter) FormatRepo(detail *model.RepoDetail, hist *model.History, w io.Writer) error {
	fmt.Fprintf(w, "# [%s](https://github.com/%s)\n\n", detail.Name, detail.Name)
	if detail.Description != "" {
		fmt.Fprintf(w, "%s\n\n", detail.Description)
	}

	fmt.Fprintln(w, "| | |")
	fmt.Fprintln(w, "|---|---|")
	if detail.GlobalRank != nil {
		fmt.Fprintf(w, "| Global rank | #%s |\n", format.Count(*detail.GlobalRank))
	}
	fmt.Fprintf(w, "| Stars | %s |\n", format.Count(detail.Stars))
	fmt.Fprintf(w, "| Forks | %s |\n", format.Count(detail.Forks))
	fmt.Fprintf(w, "| Watchers | %s |\n", format.Count(detail.Watchers))
	fmt.Fprintf(w, "| Disk usage | %s |\n", format.DiskKB(detail.DiskKB))
	fmt.Fprintf(w, "| Language | %s |\n", orMissing(detail.Language))
	fmt.Fprintf(w, "| Created | %s |\n", format.Date(detail.CreatedAt))
	fmt.Fprintf(w, "| Pushed | %s |\n", format.Date(detail.PushedAt))
	if detail.Homepage != "" {
		fmt.Fprintf(w, "| Homepage | <%s> |\n", detail.Homepage)
	}
	if len(detail.Topics) > 0 {
		fmt.Fprintf(w, "| Topics | %s |\n", formatTopics(detail.Topics))
	}
	fmt.Fprintln(w)

	if hist != nil && len(hist.Segments) > 0 {
		first := hist.Segments[0]
		last := hist.Segments[len(hist.Segments)-1]
		fmt.Fprintf(w, "History: %d segments, %s to %s, %s stars then, %s now.\n",
			len(hist.Segments),
			format.Date(first.StartFetchedAt),
			format.Date(last.EndFetchedAt),
			format.Count(first.Stars),
			format.Count(last.Stars),
		)
	}
	return nil
}

func filterSummary(s state.ViewState) string {
	var parts []string
	if s.Search != "" {
		parts = append(parts, fmt.Sprintf("search `%s`", s.Search))
	}
	if s.Language != "" {
		parts = append(parts, fmt.Sprintf("language `%s`", s.Language))
	}
	if s.Topic != "" {
		parts = append(parts, fmt.Sprintf("topic `%s`", s.Topic))
	}
	return strings.Join(parts, ", ")
}

func formatTopics(topics []string) string {
	quoted := make([]string, len(topics))
	for i, t := range topics {
		quoted[i] = "`" + t + "`"
	}
	return strings.Join(quoted, " ")
}

func orMissing(s string) string {
	if s == "" {
		return format.Missing
	}
	return s
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
