// Package model defines the wire types served by the leaderboard API.
package model

import "strings"

// PageSize is the fixed number of items per leaderboard page.
const PageSize = 100

// RepoSummary is a single leaderboard row. The JSON tags mirror the
// service's compact field names.
type RepoSummary struct {
	Name        string   `json:"n"`
	Stars       int      `json:"s"`
	Forks       int      `json:"f"`
	Watchers    int      `json:"w"`
	DiskKB      *int     `json:"d"`
	Description string   `json:"a"`
	Homepage    string   `json:"h"`
	CreatedAt   string   `json:"c"`
	PushedAt    string   `json:"p"`
	Archived    bool     `json:"i"`
	Language    string   `json:"l"`
	Topics      []string `json:"t"`

	// NewStars is only present on trending leaderboards: the star delta
	// over the requested window.
	NewStars *int `json:"ns,omitempty"`
}

// ShortName returns the repository name without the owner prefix.
func (r RepoSummary) ShortName() string {
	if i := strings.LastIndex(r.Name, "/"); i >= 0 {
		return r.Name[i+1:]
	}
	return r.Name
}

// Owner returns the owner portion of the name, or "" if the name has no
// owner prefix.
func (r RepoSummary) Owner() string {
	if i := strings.Index(r.Name, "/"); i >= 0 {
		return r.Name[:i]
	}
	return ""
}

// RepoDetail is the full repository record returned by /api/repo.
type RepoDetail struct {
	RepoSummary

	// GlobalRank is the repository's position in the all-time star
	// ranking. Nil for repositories outside the ranked set.
	GlobalRank *int `json:"g"`
}

// LeaderboardPage is the /api/leaderboard response envelope.
type LeaderboardPage struct {
	Items      []RepoSummary `json:"items"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
}

// GlobalRank returns the 1-based global rank of the item at index i on
// page p, given the fixed page size.
func GlobalRank(page, index int) int {
	return (page-1)*PageSize + index + 1
}

// HistorySegment is one sampled observation interval. Consecutive
// segments are chronologically ordered; a segment whose start and end
// coincide was observed at a single fetch run.
type HistorySegment struct {
	StartFetchedAt string `json:"startFetchedAt"`
	EndFetchedAt   string `json:"endFetchedAt"`
	Stars          int    `json:"s"`
	Forks          int    `json:"f"`
	Watchers       int    `json:"w"`
	DiskKB         *int   `json:"d"`
}

// History is the /api/repo/history response envelope.
type History struct {
	Name     string           `json:"nameWithOwner"`
	Segments []HistorySegment `json:"segments"`
}
