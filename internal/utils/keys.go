package utils

import (
	"strings"

	"github.com/google/uuid"
	"github.com/sidereusnuntius/goblog/internal/domain"
)

var extensions = map[string]string{
	domain.MimeJPEG: ".jpg",
	domain.MimePNG:  ".png",
}

// NewStorageKey returns a fresh, unguessable key for an asset of the given type. Keys never contain a slash, so
// they are valid for every storage backend.
func NewStorageKey(mimeType string) string {
	return uuid.NewString() + extensions[mimeType]
}

// CollapseSpaces trims s and replaces every run of whitespace inside it by a single space.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
