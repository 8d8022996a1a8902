package services

import "strings"

// MaxInterests bounds the interest list stored per adopter.
const MaxInterests = 50

// NormalizeInterests trims tags, drops blanks and duplicates, and keeps the
// caller's order. Tags are compared case-sensitively, like startup categories.
func NormalizeInterests(raw []string) []string {
	items := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, tag := range raw {
		value := strings.TrimSpace(tag)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		items = append(items, value)
	}
	return items
}
