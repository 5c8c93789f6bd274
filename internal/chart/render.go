package chart

import (
	"strings"
	"time"

	plot "github.com/chriskim06/drawille-go"

	"github.com/gitstars/starboard/internal/format"
)

// Render draws one series as a braille line chart of the given cell
// dimensions, with the time axis pinned to [minT, maxT] and a label line
// underneath. A fresh canvas is created per call, so repeated renders
// never accumulate state from earlier openings.
func Render(title string, s Series, width, height int, minT, maxT time.Time) string {
	if width < 8 || height < 2 {
		return ""
	}
	if len(s.Points) == 0 {
		return title + "\n" + "(no data)"
	}

	// Braille cells hold 2x4 dots, so sample at dot resolution.
	samples := Resample(s, width*2, minT, maxT)

	canvas := plot.NewCanvas(width, height)
	canvas.NumDataPoints = len(samples)
	canvas.ShowAxis = false
	canvas.Fill([][]float64{samples})

	lo, hi := samples[0], samples[0]
	for _, v := range samples[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	var b strings.Builder
	b.WriteString(title + "  " + format.Count(int(lo)) + " .. " + format.Count(int(hi)))
	b.WriteString("\n")
	b.WriteString(strings.TrimRight(canvas.String(), "\n"))
	b.WriteString("\n")
	b.WriteString(axisLabels(width, minT, maxT))
	return b.String()
}

// axisLabels renders the pinned first/last timestamps under the chart,
// falling back to dates alone when the chart is narrow.
func axisLabels(width int, minT, maxT time.Time) string {
	left := minT.UTC().Format("2006-01-02")
	right := maxT.UTC().Format("2006-01-02")
	gap := width - len(left) - len(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}
