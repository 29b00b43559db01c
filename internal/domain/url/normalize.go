// Package url normalizes user-typed locations.
package url

import (
	"net/url"
	"strings"
)

var knownSchemes = []string{"http://", "https://", "file://", "about:", "data:"}

func hasKnownScheme(input string) bool {
	for _, scheme := range knownSchemes {
		if strings.HasPrefix(input, scheme) {
			return true
		}
	}
	return false
}

// Normalize trims input and adds https:// to bare host-like strings.
// Anything else is returned unchanged.
func Normalize(input string) string {
	input = strings.TrimSpace(input)
	if input == "" || hasKnownScheme(input) {
		return input
	}
	if LooksLikeURL(input) {
		return "https://" + input
	}
	return input
}

// LooksLikeURL reports whether input is a location rather than free text.
func LooksLikeURL(input string) bool {
	if input == "" {
		return false
	}
	if hasKnownScheme(input) {
		return true
	}
	return strings.Contains(input, ".") && !strings.Contains(input, " ")
}

// ExtractDomain returns the host of rawURL without a leading "www.".
func ExtractDomain(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return strings.TrimPrefix(parsed.Host, "www.")
}
