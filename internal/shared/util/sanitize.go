package util

import (
	"errors"
	"strings"
)

// SanitizeFileName removes path separators and rejects traversal patterns.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errors.New("invalid file name")
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" {
		return "", errors.New("invalid file name")
	}
	return s, nil
}

// SanitizeCaseID validates a case identifier destined for a storage key
// segment. Unlike file names, anything path-like is rejected outright rather
// than rewritten: a mangled case id would silently point at a different key
// prefix.
func SanitizeCaseID(id string) (string, error) {
	s := strings.TrimSpace(id)
	if s == "" || strings.Contains(s, "..") ||
		strings.ContainsAny(s, "/\\") {
		return "", errors.New("invalid case id")
	}
	return s, nil
}
