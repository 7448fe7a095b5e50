// Package maplink builds external map-provider URLs for locations. The
// client opens these in a new browsing context; no response is ever
// consumed, so nothing here performs network calls.
package maplink

import "net/url"

// SearchURL returns a map search link for a single address.
func SearchURL(address string) string {
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(address)
}

// DirectionsURL returns a directions link from one address to another.
func DirectionsURL(from, to string) string {
	return "https://www.google.com/maps/dir/?api=1&origin=" + url.QueryEscape(from) +
		"&destination=" + url.QueryEscape(to)
}
