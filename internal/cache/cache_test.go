package cache

import (
	"fmt"
	"testing"

	"github.com/gitstars/starboard/internal/model"
	"github.com/gitstars/starboard/internal/state"
)

func TestKeyDistinguishesAllFiveFields(t *testing.T) {
	base := state.ViewState{Page: 1, Metric: state.MetricStars, View: state.ViewTable}

	variants := []state.ViewState{
		{Page: 2, Metric: state.MetricStars, View: state.ViewTable},
		{Page: 1, Metric: state.MetricForks, View: state.ViewTable},
		{Page: 1, Metric: state.MetricStars, Search: "x", View: state.ViewTable},
		{Page: 1, Metric: state.MetricStars, Language: "Go", View: state.ViewTable},
		{Page: 1, Metric: state.MetricStars, Topic: "cli", View: state.ViewTable},
	}

	baseKey := Key(base)
	seen := map[string]int{baseKey: -1}
	for i, v := range variants {
		k := Key(v)
		if k == baseKey {
			t.Errorf("variant %d produced the base key %q", i, k)
		}
		if prev, dup := seen[k]; dup {
			t.Errorf("variants %d and %d collide on key %q", prev, i, k)
		}
		seen[k] = i
	}
}

func TestKeyIgnoresViewMode(t *testing.T) {
	table := state.ViewState{Page: 3, Metric: state.MetricForks, Language: "Go", View: state.ViewTable}
	cards := table
	cards.View = state.ViewCards

	if Key(table) != Key(cards) {
		t.Errorf("Key differs across view modes: %q vs %q", Key(table), Key(cards))
	}
}

func TestPageRoundTrip(t *testing.T) {
	c := New(0)
	key := Key(state.Default())

	if _, ok := c.GetPage(key); ok {
		t.Fatal("GetPage on empty cache reported a hit")
	}

	page := &model.LeaderboardPage{Page: 1, Total: 1, TotalPages: 1,
		Items: []model.RepoSummary{{Name: "foo/bar"}}}
	c.PutPage(key, page)

	got, ok := c.GetPage(key)
	if !ok || got != page {
		t.Errorf("GetPage = %v, %v; want the stored page", got, ok)
	}
}

func TestDetailRoundTrip(t *testing.T) {
	c := New(0)
	e := &DetailEntry{Detail: &model.RepoDetail{RepoSummary: model.RepoSummary{Name: "foo/bar"}}}
	c.PutDetail("foo/bar", e)

	got, ok := c.GetDetail("foo/bar")
	if !ok || got != e {
		t.Errorf("GetDetail = %v, %v; want the stored entry", got, ok)
	}
	if _, ok := c.GetDetail("other/repo"); ok {
		t.Error("GetDetail for unknown name reported a hit")
	}
}

func TestLRUEviction(t *testing.T) {
	c := New(3)
	for i := 0; i < 3; i++ {
		c.PutPage(fmt.Sprintf("k%d", i), &model.LeaderboardPage{Page: i})
	}

	// Touch k0 so k1 becomes the eviction candidate.
	if _, ok := c.GetPage("k0"); !ok {
		t.Fatal("k0 missing before eviction")
	}
	c.PutPage("k3", &model.LeaderboardPage{Page: 3})

	if _, ok := c.GetPage("k1"); ok {
		t.Error("k1 should have been evicted as least recently used")
	}
	for _, k := range []string{"k0", "k2", "k3"} {
		if _, ok := c.GetPage(k); !ok {
			t.Errorf("%s should have survived eviction", k)
		}
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
}

func TestPutOverwrites(t *testing.T) {
	c := New(2)
	c.PutPage("k", &model.LeaderboardPage{Page: 1})
	c.PutPage("k", &model.LeaderboardPage{Page: 2})

	got, _ := c.GetPage("k")
	if got.Page != 2 {
		t.Errorf("overwrite kept page %d, want 2", got.Page)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d after overwrite, want 1", c.Len())
	}
}
