package services

import "strings"

// NormalizeTags trims tags, drops blanks and duplicates, keeping first-seen order.
func NormalizeTags(raw []string) []string {
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

// SharesTag reports whether categories and interests intersect. One shared
// tag is enough; comparison is exact.
func SharesTag(categories []string, interests []string) bool {
	if len(categories) == 0 || len(interests) == 0 {
		return false
	}
	wanted := make(map[string]struct{}, len(interests))
	for _, interest := range interests {
		wanted[interest] = struct{}{}
	}
	for _, category := range categories {
		if _, ok := wanted[category]; ok {
			return true
		}
	}
	return false
}
