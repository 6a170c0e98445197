// Package pathutil normalizes request paths for use as metrics labels,
// preventing label cardinality explosion.
package pathutil

import "strings"

// NormalizePath canonicalizes a URL path for use as a Prometheus label.
// Query parameters and trailing slashes are stripped so variants of the
// same route collapse into one label value.
//
// The current API has no parameterized routes (/weatherforecast,
// /health, /alive, /metrics are all static); if a route with an ID or
// date segment is added, its template mapping belongs here.
//
// Examples:
//
//	NormalizePath("/weatherforecast")        // "/weatherforecast"
//	NormalizePath("/weatherforecast/")       // "/weatherforecast"
//	NormalizePath("/weatherforecast?x=1")    // "/weatherforecast"
//	NormalizePath("/health")                 // "/health"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}
	return path
}
