// Package chart turns metric history segments into step-function line
// charts rendered on braille canvases.
package chart

import (
	"time"

	"github.com/gitstars/starboard/internal/model"
)

// Point is one chart point on the shared linear time axis.
type Point struct {
	T time.Time
	V float64
}

// Series is an ordered sequence of points for one metric.
type Series struct {
	Points []Point
}

// Extractor picks one metric value out of a segment. The bool is false
// when the segment has no value for the metric (nullable disk sizes), in
// which case the segment contributes no points.
type Extractor func(model.HistorySegment) (float64, bool)

// Metric extractors for the four charts.
var (
	Stars    Extractor = func(s model.HistorySegment) (float64, bool) { return float64(s.Stars), true }
	Forks    Extractor = func(s model.HistorySegment) (float64, bool) { return float64(s.Forks), true }
	Watchers Extractor = func(s model.HistorySegment) (float64, bool) { return float64(s.Watchers), true }
	Disk     Extractor = func(s model.HistorySegment) (float64, bool) {
		if s.DiskKB == nil {
			return 0, false
		}
		return float64(*s.DiskKB), true
	}
)

// Build converts segments into chart points for one metric. Each segment
// emits a point at its start; a second point at its end is emitted only
// when the end timestamp differs, collapsing single-observation segments
// to one point. Segments with unparseable timestamps are skipped.
func Build(segments []model.HistorySegment, pick Extractor) Series {
	var s Series
	for _, seg := range segments {
		v, ok := pick(seg)
		if !ok {
			continue
		}
		start, err := time.Parse(time.RFC3339, seg.StartFetchedAt)
		if err != nil {
			continue
		}
		s.Points = append(s.Points, Point{T: start, V: v})
		if seg.EndFetchedAt != seg.StartFetchedAt {
			if end, err := time.Parse(time.RFC3339, seg.EndFetchedAt); err == nil {
				s.Points = append(s.Points, Point{T: end, V: v})
			}
		}
	}
	return s
}

// Bounds returns the first and last observed timestamps across all given
// series; the shared x-axis is pinned to these. ok is false when no
// series has any points.
func Bounds(series ...Series) (minT, maxT time.Time, ok bool) {
	for _, s := range series {
		for _, p := range s.Points {
			if !ok {
				minT, maxT, ok = p.T, p.T, true
				continue
			}
			if p.T.Before(minT) {
				minT = p.T
			}
			if p.T.After(maxT) {
				maxT = p.T
			}
		}
	}
	return minT, maxT, ok
}

// Resample projects the step function onto n evenly spaced samples over
// [minT, maxT]: each sample holds the value of the latest point at or
// before its time, and samples before the first point hold the first
// value. The result feeds a fixed-width canvas while preserving the
// linear time axis.
func Resample(s Series, n int, minT, maxT time.Time) []float64 {
	if n <= 0 || len(s.Points) == 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 || !maxT.After(minT) {
		for i := range out {
			out[i] = s.Points[len(s.Points)-1].V
		}
		return out
	}

	span := maxT.Sub(minT)
	idx := 0
	for i := range out {
		at := maxT
		if i < n-1 {
			at = minT.Add(time.Duration(int64(span) / int64(n-1) * int64(i)))
		}
		for idx+1 < len(s.Points) && !s.Points[idx+1].T.After(at) {
			idx++
		}
		out[i] = s.Points[idx].V
	}
	return out
}
