// Package badge builds shields.io endpoint badges for the service's rank
// endpoint. The client never fetches /api/rank itself; it only embeds the
// URL so shields.io does.
package badge

import (
	"fmt"
	"net/url"
)

const shieldsEndpoint = "https://img.shields.io/endpoint"

// EndpointURL returns the shields.io URL that renders the global-rank
// badge for a repository served at server.
func EndpointURL(server, name string) string {
	// The slash in owner/repo is legal in a query value, so the name is
	// left bare here and escaped once with the enclosing rank URL.
	rank := fmt.Sprintf("%s/api/rank?name=%s", server, name)
	return shieldsEndpoint + "?url=" + url.QueryEscape(rank)
}

// Markdown returns a markdown image link: the badge image links back to
// the repository's short URL on the leaderboard site.
func Markdown(server, name string) string {
	return fmt.Sprintf("[![global rank](%s)](%s/%s)", EndpointURL(server, name), server, name)
}
