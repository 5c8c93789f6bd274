package chart

import (
	"testing"
	"time"

	"github.com/gitstars/starboard/internal/model"
)

func seg(start, end string, stars int) model.HistorySegment {
	return model.HistorySegment{
		StartFetchedAt: start,
		EndFetchedAt:   end,
		Stars:          stars,
	}
}

func TestBuildDeduplicatesSinglePointSegments(t *testing.T) {
	s := Build([]model.HistorySegment{
		seg("2024-01-01T00:00:00Z", "2024-01-01T00:00:00Z", 10),
	}, Stars)

	if len(s.Points) != 1 {
		t.Fatalf("equal start/end emitted %d points, want 1", len(s.Points))
	}
	if s.Points[0].V != 10 {
		t.Errorf("point value = %v, want 10", s.Points[0].V)
	}
}

func TestBuildEmitsTwoPointsForSpanningSegments(t *testing.T) {
	s := Build([]model.HistorySegment{
		seg("2024-01-01T00:00:00Z", "2024-01-05T00:00:00Z", 10),
	}, Stars)

	if len(s.Points) != 2 {
		t.Fatalf("spanning segment emitted %d points, want 2", len(s.Points))
	}
	if s.Points[0].V != s.Points[1].V {
		t.Errorf("points differ in value: %v vs %v, want equal y", s.Points[0].V, s.Points[1].V)
	}
	if !s.Points[1].T.After(s.Points[0].T) {
		t.Error("second point must carry the later timestamp")
	}
}

func TestBuildSkipsNullDisk(t *testing.T) {
	kb := 500
	segments := []model.HistorySegment{
		{StartFetchedAt: "2024-01-01T00:00:00Z", EndFetchedAt: "2024-01-01T00:00:00Z"},
		{StartFetchedAt: "2024-01-02T00:00:00Z", EndFetchedAt: "2024-01-02T00:00:00Z", DiskKB: &kb},
	}

	s := Build(segments, Disk)
	if len(s.Points) != 1 {
		t.Fatalf("null-disk segment contributed points: got %d, want 1", len(s.Points))
	}
	if s.Points[0].V != 500 {
		t.Errorf("disk point = %v, want 500", s.Points[0].V)
	}
}

func TestBoundsSpanAllSeries(t *testing.T) {
	a := Build([]model.HistorySegment{seg("2024-01-02T00:00:00Z", "2024-01-03T00:00:00Z", 1)}, Stars)
	b := Build([]model.HistorySegment{seg("2024-01-01T00:00:00Z", "2024-01-05T00:00:00Z", 2)}, Stars)

	minT, maxT, ok := Bounds(a, b)
	if !ok {
		t.Fatal("Bounds reported no points")
	}
	if got := minT.Format(time.RFC3339); got != "2024-01-01T00:00:00Z" {
		t.Errorf("min = %s, want first observed timestamp", got)
	}
	if got := maxT.Format(time.RFC3339); got != "2024-01-05T00:00:00Z" {
		t.Errorf("max = %s, want last observed timestamp", got)
	}
}

func TestBoundsEmpty(t *testing.T) {
	if _, _, ok := Bounds(Series{}, Series{}); ok {
		t.Error("Bounds of empty series reported ok")
	}
}

func TestResampleStepFunction(t *testing.T) {
	s := Build([]model.HistorySegment{
		seg("2024-01-01T00:00:00Z", "2024-01-01T00:00:00Z", 10),
		seg("2024-01-03T00:00:00Z", "2024-01-05T00:00:00Z", 20),
	}, Stars)
	minT, maxT, _ := Bounds(s)

	out := Resample(s, 5, minT, maxT)
	want := []float64{10, 10, 20, 20, 20}
	if len(out) != len(want) {
		t.Fatalf("Resample returned %d samples, want %d", len(out), len(want))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("sample %d = %v, want %v (full: %v)", i, out[i], want[i], out)
		}
	}
}

func TestResampleDegenerate(t *testing.T) {
	s := Build([]model.HistorySegment{seg("2024-01-01T00:00:00Z", "2024-01-01T00:00:00Z", 7)}, Stars)
	minT, maxT, _ := Bounds(s)

	out := Resample(s, 4, minT, maxT)
	for i, v := range out {
		if v != 7 {
			t.Errorf("sample %d = %v, want constant 7", i, v)
		}
	}
	if got := Resample(Series{}, 4, minT, maxT); got != nil {
		t.Errorf("Resample of empty series = %v, want nil", got)
	}
}
