package state

import (
	"strings"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want ViewState
	}{
		{"empty", "", Default()},
		{"leading question mark", "?", Default()},
		{"full", "?page=2&metric=forks&q=db&language=Go&topic=cli&view=cards",
			ViewState{Page: 2, Metric: MetricForks, Search: "db", Language: "Go", Topic: "cli", View: ViewCards}},
		{"malformed page", "page=abc", Default()},
		{"zero page", "page=0", Default()},
		{"negative page", "page=-3", Default()},
		{"unknown metric", "metric=commits", Default()},
		{"unknown view", "view=grid", Default()},
		{"trending metric", "metric=trending7d", ViewState{Page: 1, Metric: MetricTrending7d, View: ViewTable}},
		{"garbage query", "%zz", Default()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		s    ViewState
	}{
		{"default", Default()},
		{"paged", ViewState{Page: 7, Metric: MetricWatchers, View: ViewTable}},
		{"filtered", ViewState{Page: 3, Metric: MetricStars, Search: "kube", Language: "Go", Topic: "k8s", View: ViewCards}},
		{"trending", ViewState{Page: 1, Metric: MetricTrending1d, View: ViewCards}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.s.Encode())
			if got != tt.s {
				t.Errorf("Parse(Encode()) = %+v, want %+v", got, tt.s)
			}
		})
	}
}

func TestCanonicalOmission(t *testing.T) {
	// Empty filters must be absent from the encoded form, so a state
	// parsed from "lang=" style parameters re-encodes without them.
	s := Parse("?page=1&metric=stars&q=&language=&topic=&view=table")
	enc := s.Encode()
	for _, param := range []string{"q=", "language=", "topic="} {
		if strings.Contains(enc, param) {
			t.Errorf("Encode() = %q, should omit empty %q", enc, param)
		}
	}
}

func TestAPIValuesOmitView(t *testing.T) {
	s := ViewState{Page: 2, Metric: MetricForks, Language: "Go", View: ViewCards}
	v := s.APIValues()
	if v.Get("view") != "" {
		t.Errorf("APIValues() includes view=%q, want absent", v.Get("view"))
	}
	if v.Get("language") != "Go" || v.Get("page") != "2" || v.Get("metric") != "forks" {
		t.Errorf("APIValues() = %v, missing expected parameters", v)
	}
}

func TestTransitions(t *testing.T) {
	s := Default()

	if got := s.PrevPage(); got.Page != 1 {
		t.Errorf("PrevPage() at page 1 = %d, want clamped to 1", got.Page)
	}
	if got := s.NextPage(5); got.Page != 2 {
		t.Errorf("NextPage(5) = %d, want 2", got.Page)
	}
	if got := (ViewState{Page: 5, Metric: MetricStars, View: ViewTable}).NextPage(5); got.Page != 5 {
		t.Errorf("NextPage at last page = %d, want clamped to 5", got.Page)
	}
	if got := (ViewState{Page: 9, Metric: MetricStars, View: ViewTable}).NextPage(0); got.Page != 10 {
		t.Errorf("NextPage with unknown total = %d, want 10", got.Page)
	}

	s = ViewState{Page: 4, Metric: MetricStars, View: ViewTable}
	if got := s.WithMetric(MetricForks); got.Page != 1 || got.Metric != MetricForks {
		t.Errorf("WithMetric = %+v, want page reset and metric forks", got)
	}
	if got := s.WithFilters("a", "Go", "web"); got.Page != 1 || !got.HasFilters() {
		t.Errorf("WithFilters = %+v, want page reset and filters set", got)
	}
	if got := s.ToggleView().ToggleView(); got.View != s.View {
		t.Errorf("ToggleView twice = %v, want %v", got.View, s.View)
	}
}

func TestIntentsConsumedOnce(t *testing.T) {
	in := ParseIntents("?highlight=foo%2Fbar&open=foo%2Fbar")

	name, ok := in.TakeHighlight()
	if !ok || name != "foo/bar" {
		t.Fatalf("TakeHighlight() = %q, %v; want foo/bar, true", name, ok)
	}
	if _, ok := in.TakeHighlight(); ok {
		t.Error("TakeHighlight() second call should report consumed")
	}

	name, ok = in.TakeOpen()
	if !ok || name != "foo/bar" {
		t.Fatalf("TakeOpen() = %q, %v; want foo/bar, true", name, ok)
	}
	if _, ok := in.TakeOpen(); ok {
		t.Error("TakeOpen() second call should report consumed")
	}
}

func TestIntentsAbsent(t *testing.T) {
	in := ParseIntents("?page=2")
	if _, ok := in.TakeHighlight(); ok {
		t.Error("TakeHighlight() with no hint should report absent")
	}
	if _, ok := in.TakeOpen(); ok {
		t.Error("TakeOpen() with no hint should report absent")
	}
}
