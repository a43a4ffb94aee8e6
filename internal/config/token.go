package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var hexKeyRe = regexp.MustCompile(`(?i)^[a-f0-9]{32}$`)

// ResolveToken finds the TMDB access token: explicit flag value first, then
// the TMDB_ACCESS_TOKEN and TMDB_API_TOKEN environment variables, then the
// ~/.tmdb_token file. Empty means nothing was found.
func ResolveToken(flagValue string) string {
	if flagValue != "" {
		return strings.TrimSpace(flagValue)
	}
	for _, env := range []string{"TMDB_ACCESS_TOKEN", "TMDB_API_TOKEN"} {
		if v := os.Getenv(env); v != "" {
			return strings.TrimSpace(v)
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	data, err := os.ReadFile(filepath.Join(home, ".tmdb_token"))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// ValidToken reports whether a token looks like a v4 read access token
// (JWT, "eyJ…" with two dots) or a v3 API key (32 hex digits).
func ValidToken(token string) bool {
	if token == "" {
		return false
	}
	if strings.HasPrefix(token, "eyJ") && strings.Count(token, ".") == 2 {
		return true
	}
	return hexKeyRe.MatchString(token)
}
