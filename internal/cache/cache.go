// Package cache provides the session-scoped response cache. Entries live
// for the life of the process with no TTL: acceptable staleness given the
// service's six-hour refresh cadence, and a forced refresh always bypasses
// reads. Size is bounded by LRU eviction, matching the cap the original
// service used for its own response cache.
package cache

import (
	"container/list"
	"encoding/json"

	"github.com/gitstars/starboard/internal/model"
	"github.com/gitstars/starboard/internal/state"
)

// DefaultMaxEntries bounds the cache. At one entry per distinct query
// signature this is far more than a session can realistically produce.
const DefaultMaxEntries = 10000

// Key is the canonical cache key for a leaderboard query: the JSON
// encoding of the five request-relevant state fields in fixed order. The
// view mode never participates, so table and card renderings of the same
// query share an entry.
func Key(s state.ViewState) string {
	b, err := json.Marshal(struct {
		Page     int    `json:"page"`
		Metric   string `json:"metric"`
		Q        string `json:"q"`
		Language string `json:"language"`
		Topic    string `json:"topic"`
	}{s.Page, string(s.Metric), s.Search, s.Language, s.Topic})
	if err != nil {
		// Marshal of a flat struct of strings and ints cannot fail.
		panic(err)
	}
	return string(b)
}

// DetailEntry bundles the two responses the detail view needs; they are
// cached together because they are only ever fetched together.
type DetailEntry struct {
	Detail  *model.RepoDetail
	History *model.History
}

// Store defines the cache operations the fetch layer depends on, so tests
// can substitute their own.
type Store interface {
	GetPage(key string) (*model.LeaderboardPage, bool)
	PutPage(key string, page *model.LeaderboardPage)
	GetDetail(name string) (*DetailEntry, bool)
	PutDetail(name string, entry *DetailEntry)
	Len() int
}

var _ Store = (*Cache)(nil)

// Cache is an in-memory LRU over both response kinds. It is not safe for
// concurrent use; all access happens on the UI event loop, matching the
// single-owner rule for shared display state.
type Cache struct {
	max     int
	order   *list.List // front = most recently used
	entries map[string]*list.Element
}

type entry struct {
	key   string
	value any
}

// New creates an empty cache holding at most max entries. A non-positive
// max falls back to DefaultMaxEntries.
func New(max int) *Cache {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	return &Cache{
		max:     max,
		order:   list.New(),
		entries: make(map[string]*list.Element),
	}
}

// GetPage returns the cached leaderboard page for a canonical key.
func (c *Cache) GetPage(key string) (*model.LeaderboardPage, bool) {
	v, ok := c.get("page:" + key)
	if !ok {
		return nil, false
	}
	page, ok := v.(*model.LeaderboardPage)
	return page, ok
}

// PutPage stores a leaderboard page under its canonical key. An existing
// entry is overwritten; concurrent identical fetches may both store, last
// write wins with identical values.
func (c *Cache) PutPage(key string, page *model.LeaderboardPage) {
	c.put("page:"+key, page)
}

// GetDetail returns the cached detail+history bundle for a repository.
func (c *Cache) GetDetail(name string) (*DetailEntry, bool) {
	v, ok := c.get("repo:" + name)
	if !ok {
		return nil, false
	}
	d, ok := v.(*DetailEntry)
	return d, ok
}

// PutDetail stores a detail+history bundle.
func (c *Cache) PutDetail(name string, e *DetailEntry) {
	c.put("repo:"+name, e)
}

// Len returns the number of live entries.
func (c *Cache) Len() int {
	return c.order.Len()
}

func (c *Cache) get(key string) (any, bool) {
	el, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*entry).value, true
}

func (c *Cache) put(key string, value any) {
	if el, ok := c.entries[key]; ok {
		el.Value.(*entry).value = value
		c.order.MoveToFront(el)
		return
	}
	c.entries[key] = c.order.PushFront(&entry{key: key, value: value})
	if c.order.Len() > c.max {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*entry).key)
	}
}
