package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gitstars/starboard/internal/cache"
	"github.com/gitstars/starboard/internal/client"
	"github.com/gitstars/starboard/internal/model"
	"github.com/gitstars/starboard/internal/state"
)

// pageLoadedMsg delivers a leaderboard page. seq ties the response to the
// request that produced it; the model drops messages whose seq is not the
// latest issued, so a slow response can never overwrite a newer one.
type pageLoadedMsg struct {
	seq   int
	state state.ViewState
	page  *model.LeaderboardPage
}

// pageErrMsg reports a failed page fetch for request seq.
type pageErrMsg struct {
	seq int
	err error
}

// detailLoadedMsg delivers a repo detail plus its full history. The two
// are fetched together; this message only exists when both succeeded.
type detailLoadedMsg struct {
	name  string
	entry *cache.DetailEntry
}

// detailErrMsg reports a failed detail fetch.
type detailErrMsg struct {
	name string
	err  error
}

// initMsg triggers the initial page load. Init cannot mutate the model,
// so the first fetch is issued from Update like every later one.
type initMsg struct{}

// clearStatusMsg clears the transient status line.
type clearStatusMsg struct{}

// fetchPage requests one leaderboard page from the server. Cache lookups
// happen in Update before this command is issued; the command itself only
// talks to the network.
func fetchPage(c *client.Client, s state.ViewState, seq int) tea.Cmd {
	return func() tea.Msg {
		page, err := c.Leaderboard(context.Background(), s)
		if err != nil {
			return pageErrMsg{seq: seq, err: err}
		}
		return pageLoadedMsg{seq: seq, state: s, page: page}
	}
}

// fetchDetail requests a repo's detail and history together.
func fetchDetail(c *client.Client, name string) tea.Cmd {
	return func() tea.Msg {
		detail, hist, err := c.RepoWithHistory(context.Background(), name)
		if err != nil {
			return detailErrMsg{name: name, err: err}
		}
		return detailLoadedMsg{name: name, entry: &cache.DetailEntry{Detail: detail, History: hist}}
	}
}

// clearStatusAfter clears the status line after a delay.
func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
