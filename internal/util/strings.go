// Package util provides small formatting helpers shared by the CLI.
package util

import (
	"fmt"
	"strings"
)

// JoinOrNone joins strings with ", " or returns "none" for empty slices.
func JoinOrNone(items []string) string {
	return JoinOrDefault(items, "none")
}

// JoinOrDefault joins strings with ", " or returns the default value for empty slices.
func JoinOrDefault(items []string, def string) string {
	if len(items) == 0 {
		return def
	}
	return strings.Join(items, ", ")
}

// Pluralize returns singular if count is 1, otherwise plural.
func Pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}

// Count renders "1 tick", "3 ticks" and so on.
func Count(n int, singular, plural string) string {
	return fmt.Sprintf("%d %s", n, Pluralize(n, singular, plural))
}
