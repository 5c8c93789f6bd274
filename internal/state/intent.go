package state

import (
	"net/url"
	"strings"
)

// Intents are one-shot UI hints carried by a deep link: highlight a row
// and/or open a detail view. Each is consumable exactly once, so repeated
// renders cannot re-trigger the scroll or re-open the modal.
type Intents struct {
	highlight     string
	open          string
	highlightUsed bool
	openUsed      bool
}

// ParseIntents extracts the highlight/open hints from a raw query string.
func ParseIntents(rawQuery string) Intents {
	vals, err := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))
	if err != nil {
		return Intents{}
	}
	return Intents{
		highlight: vals.Get("highlight"),
		open:      vals.Get("open"),
	}
}

// TakeHighlight returns the repository name to highlight. The second
// return is true only on the first call with a non-empty hint.
func (i *Intents) TakeHighlight() (string, bool) {
	if i.highlightUsed || i.highlight == "" {
		return "", false
	}
	i.highlightUsed = true
	return i.highlight, true
}

// TakeOpen returns the repository name to open in the detail view. The
// second return is true only on the first call with a non-empty hint.
func (i *Intents) TakeOpen() (string, bool) {
	if i.openUsed || i.open == "" {
		return "", false
	}
	i.openUsed = true
	return i.open, true
}
