package model

import (
	"sort"
	"strings"
)

// SortColumn identifies a sortable leaderboard column. Sorting is purely
// client-side and applies to the currently loaded page only; the server
// ordering is recovered by sorting on SortRank ascending.
type SortColumn string

const (
	SortRank     SortColumn = "rank"
	SortName     SortColumn = "name"
	SortStars    SortColumn = "stars"
	SortForks    SortColumn = "forks"
	SortWatchers SortColumn = "watchers"
	SortLanguage SortColumn = "language"
	SortNewStars SortColumn = "new"
)

// SortItems returns a new slice holding items ordered by the given column.
// Name comparison uses the last path segment, case-insensitively. Missing
// values (empty language, nil counters) compare as the lowest value. Ties
// keep no guaranteed order.
func SortItems(items []RepoSummary, col SortColumn, desc bool) []RepoSummary {
	out := make([]RepoSummary, len(items))
	copy(out, items)

	if col == SortRank {
		// Rank is positional in the server response; nothing to compare.
		if desc {
			for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
				out[i], out[j] = out[j], out[i]
			}
		}
		return out
	}

	less := lessFunc(col)
	sort.Slice(out, func(i, j int) bool {
		if desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func lessFunc(col SortColumn) func(a, b RepoSummary) bool {
	switch col {
	case SortName:
		return func(a, b RepoSummary) bool {
			return strings.ToLower(a.ShortName()) < strings.ToLower(b.ShortName())
		}
	case SortForks:
		return func(a, b RepoSummary) bool { return a.Forks < b.Forks }
	case SortWatchers:
		return func(a, b RepoSummary) bool { return a.Watchers < b.Watchers }
	case SortLanguage:
		return func(a, b RepoSummary) bool {
			// Empty language sorts below everything.
			al, bl := strings.ToLower(a.Language), strings.ToLower(b.Language)
			if (al == "") != (bl == "") {
				return al == ""
			}
			return al < bl
		}
	case SortNewStars:
		return func(a, b RepoSummary) bool { return intPtrLess(a.NewStars, b.NewStars) }
	default: // SortStars
		return func(a, b RepoSummary) bool { return a.Stars < b.Stars }
	}
}

// intPtrLess orders nil below any value.
func intPtrLess(a, b *int) bool {
	if (a == nil) != (b == nil) {
		return a == nil
	}
	if a == nil {
		return false
	}
	return *a < *b
}
