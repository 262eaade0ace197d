package domain

import (
	"regexp"
	"strings"
)

var userIDRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]{0,63}$`)

// NormalizeUserID lowercases and trims a user name and rejects anything that
// cannot be used as a single path segment.
func NormalizeUserID(userID string) (string, error) {
	id := strings.ToLower(strings.TrimSpace(userID))
	if !userIDRegex.MatchString(id) || strings.Contains(id, "..") {
		return "", ErrInvalidUserID
	}
	return id, nil
}
