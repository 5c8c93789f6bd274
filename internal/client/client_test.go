package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gitstars/starboard/internal/state"
)

func TestLeaderboardQueryParameters(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"items":[{"n":"foo/bar","s":10,"f":2,"w":3,"l":"Go","t":["cli"]}],"total":1,"page":1,"totalPages":1}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	s := state.ViewState{Page: 2, Metric: state.MetricForks, Language: "Go", View: state.ViewCards}
	page, err := c.Leaderboard(context.Background(), s)
	if err != nil {
		t.Fatalf("Leaderboard() error: %v", err)
	}

	if got := gotQuery["page"]; len(got) != 1 || got[0] != "2" {
		t.Errorf("page parameter = %v, want [2]", got)
	}
	if got := gotQuery["metric"]; len(got) != 1 || got[0] != "forks" {
		t.Errorf("metric parameter = %v, want [forks]", got)
	}
	if got := gotQuery["language"]; len(got) != 1 || got[0] != "Go" {
		t.Errorf("language parameter = %v, want [Go]", got)
	}
	if _, present := gotQuery["view"]; present {
		t.Error("view parameter must not reach the server")
	}
	if _, present := gotQuery["q"]; present {
		t.Error("empty q parameter must be omitted")
	}

	if len(page.Items) != 1 || page.Items[0].Name != "foo/bar" {
		t.Errorf("decoded page = %+v, want one item foo/bar", page)
	}
}

func TestStatusErrorDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Repo not found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.Repo(context.Background(), "nope/nope")
	if err == nil {
		t.Fatal("Repo() expected error for 404")
	}

	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("error %T, want *StatusError", err)
	}
	if se.Status != 404 || se.Message != "Repo not found" {
		t.Errorf("StatusError = %+v, want 404 / Repo not found", se)
	}
	if !NotFound(err) {
		t.Error("NotFound() = false, want true")
	}
}

func TestRepoWithHistoryAllOrNothing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/repo/history" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"n":"foo/bar","s":10,"f":2,"w":3,"g":7}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	detail, hist, err := c.RepoWithHistory(context.Background(), "foo/bar")
	if err == nil {
		t.Fatal("RepoWithHistory() expected error when history fails")
	}
	if detail != nil || hist != nil {
		t.Errorf("partial results returned (detail=%v hist=%v), want both discarded", detail, hist)
	}
}

func TestRepoWithHistorySuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/repo":
			_, _ = w.Write([]byte(`{"n":"foo/bar","s":10,"f":2,"w":3,"g":null}`))
		case "/api/repo/history":
			_, _ = w.Write([]byte(`{"nameWithOwner":"foo/bar","segments":[{"startFetchedAt":"2024-01-01T00:00:00Z","endFetchedAt":"2024-01-02T00:00:00Z","s":9,"f":2,"w":3,"d":100}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	detail, hist, err := c.RepoWithHistory(context.Background(), "foo/bar")
	if err != nil {
		t.Fatalf("RepoWithHistory() error: %v", err)
	}
	if detail.GlobalRank != nil {
		t.Errorf("GlobalRank = %v, want nil for unranked", *detail.GlobalRank)
	}
	if len(hist.Segments) != 1 || hist.Segments[0].Stars != 9 {
		t.Errorf("history = %+v, want one segment with 9 stars", hist)
	}
}

func TestMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items": [`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	if _, err := c.Leaderboard(context.Background(), state.Default()); err == nil {
		t.Error("Leaderboard() expected decode error for truncated body")
	}
}
