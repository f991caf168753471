// Package pathutil maps request paths onto a fixed set of route labels so
// that metrics cardinality stays bounded.
package pathutil

import "strings"

// Unmatched is the label for any path outside the known routes.
const Unmatched = "/other"

// routes lists every path the API serves.
var routes = map[string]struct{}{
	"/":               {},
	"/api/location":   {},
	"/api/weather":    {},
	"/api/movie":      {},
	"/api/proverb":    {},
	"/api/hot-topics": {},
	"/api/wallpaper":  {},
	"/api/games":      {},
	"/api/gradients":  {},
	"/health":         {},
	"/ready":          {},
	"/live":           {},
	"/metrics":        {},
}

// NormalizePath strips the query and a trailing slash, then returns the path
// itself when it is a known route and Unmatched otherwise. Scanners probing
// random paths therefore share a single label.
//
//	NormalizePath("/api/weather?lat=1")  // "/api/weather"
//	NormalizePath("/api/movie/")         // "/api/movie"
//	NormalizePath("/wp-admin.php")       // "/other"
func NormalizePath(path string) string {
	if i := strings.IndexByte(path, '?'); i != -1 {
		path = path[:i]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}
	if _, ok := routes[path]; ok {
		return path
	}
	return Unmatched
}

// ExpectedCardinality is the number of distinct labels NormalizePath emits.
func ExpectedCardinality() int {
	return len(routes) + 1
}
