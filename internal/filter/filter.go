// Package filter implements the search filter over the in-memory user set.
package filter

import (
	"strings"

	"github.com/davrell/roster/internal/directory"
)

// Apply returns the subset of users whose name, email, company name, or
// username contains term, case-insensitively. An empty or whitespace-only
// term returns the input unchanged. Result order preserves input order.
func Apply(users []directory.User, term string) []directory.User {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return users
	}
	matched := make([]directory.User, 0, len(users))
	for _, u := range users {
		if matches(u, needle) {
			matched = append(matched, u)
		}
	}
	return matched
}

func matches(u directory.User, needle string) bool {
	for _, field := range []string{u.Name, u.Email, u.Company.Name, u.Username} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
