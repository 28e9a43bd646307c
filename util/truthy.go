package util

import "strings"

// Truthy reports whether an environment-style string value reads as
// enabled.
func Truthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes", "on":
		return true
	default:
		return false
	}
}
