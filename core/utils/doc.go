// Package utils provides small shared helpers that do not fit into a
// domain-specific package, mostly tolerant conversions of scraped text.
package utils
