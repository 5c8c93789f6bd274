package tui

import (
	"fmt"
	"strings"

	"github.com/gitstars/starboard/internal/format"
	"github.com/gitstars/starboard/internal/model"
	"github.com/gitstars/starboard/internal/state"
)

// Column widths for the leaderboard table.
const (
	colRank     = 6
	colRepo     = 34
	colCount    = 10
	colNew      = 8
	colLanguage = 12

	maxCardTopics = 5
)

// chromeLines is the number of lines the header and footer consume.
const chromeLines = 6

// renderBrowseView renders the leaderboard in the current view mode.
func renderBrowseView(m BrowseModel) string {
	var b strings.Builder

	b.WriteString(renderTitleBar(m))
	b.WriteString("\n")

	if m.banner != "" {
		b.WriteString(bannerStyle.Render("fetch failed: " + m.banner + "  (esc to dismiss, r to retry)"))
		b.WriteString("\n")
	}

	switch {
	case m.loading && m.page == nil:
		b.WriteString(fmt.Sprintf("\n  %s Loading leaderboard...\n", m.spinner.View()))
	case m.page != nil && len(m.items) == 0:
		b.WriteString("\n  " + dimStyle.Render("No repositories matched the current filters.") + "\n")
	case m.state.View == state.ViewCards:
		b.WriteString(renderCards(m))
	default:
		b.WriteString(renderTable(m))
	}

	b.WriteString("\n")
	b.WriteString(renderFooter(m))
	return b.String()
}

// renderTitleBar shows the metric, filters, and load state.
func renderTitleBar(m BrowseModel) string {
	title := titleStyle.Render("starboard") + dimStyle.Render("  ·  metric: ") + string(m.state.Metric)
	if m.state.HasFilters() {
		var filters []string
		if m.state.Search != "" {
			filters = append(filters, "q="+m.state.Search)
		}
		if m.state.Language != "" {
			filters = append(filters, "lang="+m.state.Language)
		}
		if m.state.Topic != "" {
			filters = append(filters, "topic="+m.state.Topic)
		}
		title += dimStyle.Render("  ·  " + strings.Join(filters, " "))
	}
	if m.loading && m.page != nil {
		title += "  " + m.spinner.View()
	}
	return title
}

// renderTable renders the page as aligned columns with a cursor row.
func renderTable(m BrowseModel) string {
	var b strings.Builder
	trending := m.state.Metric.Trending()

	header := fmt.Sprintf("%-*s %-*s %*s %*s %*s",
		colRank, sortLabel(m, model.SortRank, "Rank"),
		colRepo, sortLabel(m, model.SortName, "Repository"),
		colCount, sortLabel(m, model.SortStars, "Stars"),
		colCount, sortLabel(m, model.SortForks, "Forks"),
		colCount, sortLabel(m, model.SortWatchers, "Watchers"))
	if trending {
		header += fmt.Sprintf(" %*s", colNew, sortLabel(m, model.SortNewStars, "New"))
	}
	header += fmt.Sprintf(" %-*s", colLanguage, sortLabel(m, model.SortLanguage, "Language"))
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	start, end := scrollWindow(m.cursor, len(m.items), m.windowHeight-chromeLines)
	for i := start; i < end; i++ {
		item := m.items[i]
		rank := displayRank(m, item)

		name, _ := format.TruncateToWidth(item.ShortName(), colRepo)
		line := fmt.Sprintf("%-*s %-*s %*s %*s %*s",
			colRank, rank,
			colRepo, name,
			colCount, format.Count(item.Stars),
			colCount, format.Count(item.Forks),
			colCount, format.Count(item.Watchers))
		if trending {
			line += fmt.Sprintf(" %*s", colNew, format.NewStars(item.NewStars))
		}
		lang := item.Language
		if lang == "" {
			lang = format.Missing
		}
		line += fmt.Sprintf(" %-*s", colLanguage, lang)

		switch {
		case i == m.cursor:
			b.WriteString(selectedStyle.Render(line))
		case item.Archived:
			b.WriteString(dimStyle.Render(line))
		default:
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderCards renders the page as bordered cards, one repo per card.
func renderCards(m BrowseModel) string {
	var b strings.Builder

	// Cards are taller than rows; show a window around the cursor.
	perScreen := (m.windowHeight - chromeLines) / 5
	if perScreen < 1 {
		perScreen = 1
	}
	start, end := scrollWindow(m.cursor, len(m.items), perScreen)

	for i := start; i < end; i++ {
		item := m.items[i]

		var c strings.Builder
		c.WriteString(titleStyle.Render(item.Name))
		c.WriteString(dimStyle.Render(fmt.Sprintf("  %s", displayRank(m, item))))
		if item.Archived {
			c.WriteString("  " + archivedStyle.Render("archived"))
		}
		c.WriteString("\n")

		if item.Description != "" {
			desc, _ := format.TruncateToWidth(item.Description, 70)
			c.WriteString(desc)
			c.WriteString("\n")
		}

		stats := fmt.Sprintf("%s %s  %s forks  %s watchers  %s",
			starStyle.Render("★"), format.Count(item.Stars),
			format.Count(item.Forks), format.Count(item.Watchers),
			format.DiskKB(item.DiskKB))
		if m.state.Metric.Trending() && item.NewStars != nil {
			stats += "  " + trendStyle.Render(format.NewStars(item.NewStars)+" new")
		}
		c.WriteString(stats)

		meta := item.Language
		if item.Homepage != "" {
			if meta != "" {
				meta += "  "
			}
			meta += item.Homepage
		}
		if meta != "" {
			c.WriteString("\n" + dimStyle.Render(meta))
		}

		if len(item.Topics) > 0 {
			topics := item.Topics
			if len(topics) > maxCardTopics {
				topics = topics[:maxCardTopics]
			}
			c.WriteString("\n" + topicStyle.Render(strings.Join(topics, " ")))
		}

		style := cardStyle
		if i == m.cursor {
			style = cardSelectedStyle
		}
		b.WriteString(style.Render(c.String()))
		b.WriteString("\n")
	}

	return b.String()
}

// displayRank formats the item's global rank. Under a non-rank sort the
// rank shown is still the item's position in the server ordering, found
// by its index in the unsorted page.
func displayRank(m BrowseModel, item model.RepoSummary) string {
	if m.page == nil {
		return ""
	}
	for i, orig := range m.page.Items {
		if orig.Name == item.Name {
			return fmt.Sprintf("#%d", model.GlobalRank(m.page.Page, i))
		}
	}
	return ""
}

// sortLabel decorates a column header with the active sort direction.
func sortLabel(m BrowseModel, col model.SortColumn, label string) string {
	if m.sortCol != col {
		return label
	}
	if m.sortDesc {
		return label + "▼"
	}
	return label + "▲"
}

// scrollWindow clamps a window of size around the cursor to [0, total).
func scrollWindow(cursor, total, size int) (start, end int) {
	if size < 1 {
		size = 1
	}
	if total <= size {
		return 0, total
	}
	start = cursor - size/2
	if start < 0 {
		start = 0
	}
	end = start + size
	if end > total {
		end = total
		start = end - size
	}
	return start, end
}

// renderFooter shows paging and keys.
func renderFooter(m BrowseModel) string {
	var b strings.Builder
	if m.page != nil {
		b.WriteString(dimStyle.Render(fmt.Sprintf("Page %d of %d  ·  %s repositories",
			m.page.Page, m.page.TotalPages, format.Count(m.page.Total))))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("n/p page · m metric · v view · s/S sort · f filter · enter detail · y copy link · r reload · q quit"))
	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.statusMsg))
	}
	return b.String()
}

// renderFilterForm renders the three-field filter form.
func renderFilterForm(m BrowseModel) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Filters"))
	b.WriteString("\n\n")

	labels := [fieldCount]string{"Search", "Language", "Topic"}
	for i, ti := range m.inputs {
		b.WriteString(labelStyle.Render(labels[i]))
		b.WriteString(ti.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab next field · enter apply · esc cancel"))
	return modalStyle.Render(b.String())
}
