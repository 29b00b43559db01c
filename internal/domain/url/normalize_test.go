package url

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"bare domain", "example.com", "https://example.com"},
		{"domain with path", "example.com/a/b", "https://example.com/a/b"},
		{"keeps http", "http://example.com", "http://example.com"},
		{"keeps about", "about:blank", "about:blank"},
		{"keeps file", "file:///tmp/x.html", "file:///tmp/x.html"},
		{"trims spaces", "  example.com ", "https://example.com"},
		{"free text", "hello world", "hello world"},
		{"single word", "localhost", "localhost"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestLooksLikeURL(t *testing.T) {
	assert.True(t, LooksLikeURL("github.com"))
	assert.True(t, LooksLikeURL("about:blank"))
	assert.False(t, LooksLikeURL("go to github.com"))
	assert.False(t, LooksLikeURL(""))
}

func TestExtractDomain(t *testing.T) {
	assert.Equal(t, "example.com", ExtractDomain("https://www.example.com/x"))
	assert.Equal(t, "sub.example.com:8080", ExtractDomain("http://sub.example.com:8080"))
	assert.Empty(t, ExtractDomain("not a url"))
}
