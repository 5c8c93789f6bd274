// Package state holds the view state shared between the renderers and the
// data client, and its round-trip to URL query parameters. The query string
// is the shareable representation of "what is currently displayed": the
// client accepts one as a deep link and can emit the current one for
// copying.
package state

import (
	"net/url"
	"strconv"
	"strings"
)

// Metric is the ranking dimension requested from the server.
type Metric string

const (
	MetricStars      Metric = "stars"
	MetricForks      Metric = "forks"
	MetricWatchers   Metric = "watchers"
	MetricDiskUsage  Metric = "diskUsage"
	MetricTrending1d Metric = "trending24h"
	MetricTrending3d Metric = "trending3d"
	MetricTrending7d Metric = "trending7d"
	MetricTrending30 Metric = "trending30d"
)

// Metrics lists the supported metrics in display order.
func Metrics() []Metric {
	return []Metric{
		MetricStars, MetricForks, MetricWatchers, MetricDiskUsage,
		MetricTrending1d, MetricTrending3d, MetricTrending7d, MetricTrending30,
	}
}

// Valid reports whether m is a metric the server accepts.
func (m Metric) Valid() bool {
	for _, known := range Metrics() {
		if m == known {
			return true
		}
	}
	return false
}

// Trending reports whether m ranks by star delta over a window. Trending
// responses carry the new-stars field.
func (m Metric) Trending() bool {
	return strings.HasPrefix(string(m), "trending")
}

// ViewMode selects how the loaded page is presented.
type ViewMode string

const (
	ViewTable ViewMode = "table"
	ViewCards ViewMode = "cards"
)

// ViewState captures everything needed to reproduce the current display.
// The zero value is not meaningful; use Default or Parse.
type ViewState struct {
	Page     int
	Metric   Metric
	Search   string
	Language string
	Topic    string
	View     ViewMode
}

// Default returns the initial view state: page 1 of the star leaderboard
// in table mode, no filters.
func Default() ViewState {
	return ViewState{Page: 1, Metric: MetricStars, View: ViewTable}
}

// Parse builds a ViewState from a raw query string (with or without the
// leading "?"). Malformed or unknown values silently fall back to
// defaults; there is no error path, matching address-bar semantics.
func Parse(rawQuery string) ViewState {
	s := Default()
	vals, err := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))
	if err != nil {
		return s
	}
	if page, err := strconv.Atoi(vals.Get("page")); err == nil && page >= 1 {
		s.Page = page
	}
	if m := Metric(vals.Get("metric")); m.Valid() {
		s.Metric = m
	}
	s.Search = vals.Get("q")
	s.Language = vals.Get("language")
	s.Topic = vals.Get("topic")
	if v := ViewMode(vals.Get("view")); v == ViewTable || v == ViewCards {
		s.View = v
	}
	return s
}

// Values serializes the state to its canonical query parameters. Page,
// metric, and view are always written; empty filters are omitted entirely
// so that equivalent states produce identical strings.
func (s ViewState) Values() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(s.Page))
	v.Set("metric", string(s.Metric))
	v.Set("view", string(s.View))
	if s.Search != "" {
		v.Set("q", s.Search)
	}
	if s.Language != "" {
		v.Set("language", s.Language)
	}
	if s.Topic != "" {
		v.Set("topic", s.Topic)
	}
	return v
}

// Encode returns the canonical query string, without a leading "?".
func (s ViewState) Encode() string {
	return s.Values().Encode()
}

// APIValues returns the parameters for the leaderboard endpoint. The view
// mode is presentation-only and never reaches the server.
func (s ViewState) APIValues() url.Values {
	v := s.Values()
	v.Del("view")
	return v
}

// HasFilters reports whether any of the three filters are active.
func (s ViewState) HasFilters() bool {
	return s.Search != "" || s.Language != "" || s.Topic != ""
}

// NextPage advances one page, clamped to totalPages when it is known
// (totalPages <= 0 means unknown and only the lower bound applies).
func (s ViewState) NextPage(totalPages int) ViewState {
	if totalPages > 0 && s.Page >= totalPages {
		return s
	}
	s.Page++
	return s
}

// PrevPage steps back one page, never below 1.
func (s ViewState) PrevPage() ViewState {
	if s.Page > 1 {
		s.Page--
	}
	return s
}

// WithMetric switches the ranking metric and resets to the first page.
func (s ViewState) WithMetric(m Metric) ViewState {
	s.Metric = m
	s.Page = 1
	return s
}

// WithFilters replaces all three filters and resets to the first page.
func (s ViewState) WithFilters(search, language, topic string) ViewState {
	s.Search = search
	s.Language = language
	s.Topic = topic
	s.Page = 1
	return s
}

// WithTopic sets only the topic filter (used when a topic badge is
// selected in card view) and resets to the first page.
func (s ViewState) WithTopic(topic string) ViewState {
	s.Topic = topic
	s.Page = 1
	return s
}

// ToggleView flips between table and card presentation.
func (s ViewState) ToggleView() ViewState {
	if s.View == ViewTable {
		s.View = ViewCards
	} else {
		s.View = ViewTable
	}
	return s
}
