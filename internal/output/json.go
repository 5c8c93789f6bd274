package output

import (
	"encoding/json"
	"io"

	"github.com/gitstars/starboard/internal/model"
	"github.com/gitstars/starboard/internal/state"
)

// JSONFormatter emits the API envelopes unchanged, for piping into jq and
// friends.
type JSONFormatter struct {
	Pretty bool
}

func (f *JSONFormatter) encoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	if f.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc
}

// FormatPage outputs the leaderboard page as JSON.
func (f *JSONFormatter) FormatPage(page *model.LeaderboardPage, _ state.ViewState, w io.Writer) error {
	return f.encoder(w).Encode(page)
}

// FormatRepo outputs the detail and history together.
func (f *JSONFormatter) FormatRepo(detail *model.RepoDetail, hist *model.History, w io.Writer) error {
	return f.encoder(w).Encode(struct {
		Repo    *model.RepoDetail `json:"repo"`
		History *model.History    `json:"history,omitempty"`
	}{detail, hist})
}
