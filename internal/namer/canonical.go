package namer

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxNameLength is the upper bound for a sanitized folder or file name.
const MaxNameLength = 200

var (
	// ErrEmptyName indicates sanitization left nothing usable.
	ErrEmptyName = errors.New("name empty after sanitization")

	// ErrNameTooLong indicates the sanitized name exceeds MaxNameLength.
	ErrNameTooLong = errors.New("name too long")
)

var (
	canonicalRe   = regexp.MustCompile(`^.+\s\(\d{4}\)\s\[imdbid-tt\d{7,}\]$`)
	controlRe     = regexp.MustCompile(`[\x00-\x1f]`)
	imdbIDRe      = regexp.MustCompile(`^tt\d{7,}$`)
	imdbIDShapeRe = regexp.MustCompile(`^tt\d{7,8}$`)
)

// IsCanonical reports whether a folder name already carries the target
// "Title (YYYY) [imdbid-ttXXXXXXX]" shape.
func IsCanonical(name string) bool {
	return canonicalRe.MatchString(name)
}

// ValidIMDBID reports whether id is a well-formed IMDb identifier of the
// form expected in canonical names.
func ValidIMDBID(id string) bool {
	return imdbIDRe.MatchString(id)
}

// ValidIMDBLookupID reports whether id has the stricter 7-8 digit shape
// accepted for manual override lookups.
func ValidIMDBLookupID(id string) bool {
	return imdbIDShapeRe.MatchString(id)
}

// Sanitize makes a computed name safe for the filesystem: filesystem-reserved
// characters and control characters are removed, whitespace collapsed,
// leading/trailing dots and spaces trimmed. It fails rather than truncating
// when the result is empty or too long.
func Sanitize(name string) (string, error) {
	if name == "" {
		return "", ErrEmptyName
	}
	for _, c := range `<>:"/\|?*` {
		name = strings.ReplaceAll(name, string(c), "")
	}
	name = controlRe.ReplaceAllString(name, "")
	name = multiSpaceRe.ReplaceAllString(name, " ")
	name = strings.Trim(name, ". ")
	if name == "" {
		return "", ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}

// BuildCanonical assembles and sanitizes the canonical folder name for a
// title, year and IMDb id.
func BuildCanonical(title, year, imdbID string) (string, error) {
	return Sanitize(fmt.Sprintf("%s (%s) [imdbid-%s]", title, year, imdbID))
}
