package planner

import "strings"

// MatchesDestination decides whether an item location is compatible with the
// requested destination. Matching is case-insensitive, whitespace-trimmed,
// and bidirectional: "Riyadh" matches "Riyadh Region" and vice versa. An
// empty (unresolved) location never matches an explicit destination.
func MatchesDestination(itemLocation, requestedDestination string) bool {
	location := strings.ToLower(strings.TrimSpace(itemLocation))
	destination := strings.ToLower(strings.TrimSpace(requestedDestination))
	if location == "" || destination == "" {
		return false
	}
	return strings.Contains(location, destination) || strings.Contains(destination, location)
}
