package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gitstars/starboard/internal/cache"
	"github.com/gitstars/starboard/internal/chart"
	"github.com/gitstars/starboard/internal/format"
	"github.com/gitstars/starboard/internal/model"
)

// chart sizing in terminal cells
const (
	chartWidth  = 56
	chartHeight = 7
)

// detailModel holds the state of the repo detail modal. Charts are
// rendered fresh from the history on every view; nothing from a previous
// repo's modal survives into the next one.
type detailModel struct {
	name    string
	server  string
	loading bool
	err     error
	entry   *cache.DetailEntry
}

func newDetailModel(name, server string) detailModel {
	return detailModel{name: name, server: server}
}

func (d *detailModel) setEntry(entry *cache.DetailEntry) {
	d.entry = entry
	d.loading = false
	d.err = nil
}

// view renders the modal centered in the window.
func (d detailModel) view(width, height int, spinnerFrame string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(d.name))
	b.WriteString("\n\n")

	switch {
	case d.loading:
		b.WriteString(fmt.Sprintf("%s Loading...\n", spinnerFrame))
	case d.err != nil:
		b.WriteString(errorStyle.Render(d.err.Error()))
		b.WriteString("\n")
	case d.entry != nil:
		b.WriteString(d.renderDetail())
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("esc close · c copy badge · b browser"))

	modal := modalStyle.Render(b.String())
	if width > 0 && height > 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modal)
	}
	return modal
}

func (d detailModel) renderDetail() string {
	detail := d.entry.Detail
	var b strings.Builder

	if detail.Description != "" {
		b.WriteString(detail.Description)
		b.WriteString("\n")
	}
	if detail.Archived {
		b.WriteString(archivedStyle.Render("archived"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	row := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(labelStyle.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}

	// The rank row only exists for ranked repositories.
	if detail.GlobalRank != nil {
		row("Rank", "#"+format.Count(*detail.GlobalRank))
	}
	row("Stars", starStyle.Render(format.Count(detail.Stars)))
	row("Forks", format.Count(detail.Forks))
	row("Watchers", format.Count(detail.Watchers))
	row("Disk", format.DiskKB(detail.DiskKB))
	row("Language", detail.Language)
	row("Homepage", detail.Homepage)
	if len(detail.Topics) > 0 {
		row("Topics", topicStyle.Render(strings.Join(detail.Topics, " ")))
	}
	row("Created", format.Date(detail.CreatedAt))
	row("Last push", format.Date(detail.PushedAt))

	b.WriteString("\n")
	b.WriteString(d.renderCharts())
	return b.String()
}

// renderCharts draws the four metric histories on a shared time axis
// pinned to the first and last observation across all series.
func (d detailModel) renderCharts() string {
	var segments []model.HistorySegment
	if d.entry.History != nil {
		segments = d.entry.History.Segments
	}
	if len(segments) == 0 {
		return dimStyle.Render("no history recorded yet")
	}

	stars := chart.Build(segments, chart.Stars)
	forks := chart.Build(segments, chart.Forks)
	watchers := chart.Build(segments, chart.Watchers)
	disk := chart.Build(segments, chart.Disk)

	minT, maxT, ok := chart.Bounds(stars, forks, watchers, disk)
	if !ok {
		return dimStyle.Render("no history recorded yet")
	}

	var b strings.Builder
	b.WriteString(chart.Render("Stars", stars, chartWidth, chartHeight, minT, maxT))
	b.WriteString("\n")
	b.WriteString(chart.Render("Forks", forks, chartWidth, chartHeight, minT, maxT))
	b.WriteString("\n")
	b.WriteString(chart.Render("Watchers", watchers, chartWidth, chartHeight, minT, maxT))
	b.WriteString("\n")
	b.WriteString(chart.Render("Disk (KB)", disk, chartWidth, chartHeight, minT, maxT))
	return b.String()
}
