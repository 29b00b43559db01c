package download

import (
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "report.pdf", "report.pdf"},
		{"spaces kept", "my report.pdf", "my report.pdf"},
		{"parent traversal", "../../../etc/passwd", "passwd"},
		{"absolute", "/etc/shadow", "shadow"},
		{"windows separators", "..\\..\\Windows\\win.ini", "win.ini"},
		{"hidden file", ".profile", ".profile"},
		{"dot", ".", FallbackName},
		{"dot dot", "..", FallbackName},
		{"empty", "", FallbackName},
		{"trailing slash", "dir/", "dir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanName(tt.input))
		})
	}
}

func TestCleanNameForType(t *testing.T) {
	assert.Equal(t, "report.pdf", CleanNameForType("report", "application/pdf"))
	assert.Equal(t, "report.pdf", CleanNameForType("../report", "application/pdf; charset=binary"))
	assert.Equal(t, "notes.md", CleanNameForType("notes.md", "text/plain"))
	assert.Equal(t, "blob", CleanNameForType("blob", ""))
}

func TestExtensionForType(t *testing.T) {
	assert.Equal(t, "", ExtensionForType(""))
	assert.Equal(t, "", ExtensionForType("not a type"))
	assert.Equal(t, "", ExtensionForType("application/x-browse-unknown"))
	assert.Equal(t, ".html", ExtensionForType("text/html; charset=utf-8"))
	assert.Equal(t, ".jpg", ExtensionForType("image/jpeg"))
}

func TestNameFromURI(t *testing.T) {
	assert.Equal(t, "file.zip", NameFromURI("https://example.org/pub/file.zip?x=1"))
	assert.Equal(t, FallbackName, NameFromURI("https://example.org/"))
	assert.Equal(t, FallbackName, NameFromURI(""))
	assert.Equal(t, FallbackName, NameFromURI("data:text/plain;base64,SGVsbG8="))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Data URI", DisplayName("DATA:image/png;base64,AAAA", "image.png"))
	assert.Equal(t, "book.epub", DisplayName("https://example.org/get?id=1", "book.epub"))
	assert.Equal(t, "get", DisplayName("https://example.org/get?id=1", ""))
}

func TestPlaceholderTitle(t *testing.T) {
	assert.Equal(t, "Downloading a.txt from https://h/a.txt", PlaceholderTitle("https://h/a.txt", "a.txt"))
	assert.Equal(t, "Downloading Data URI from Data URI", PlaceholderTitle("data:,hello", "x"))
	assert.Equal(t, "From: https://h/a.txt", SourceDescription("https://h/a.txt"))
}

func TestUniqueName(t *testing.T) {
	taken := map[string]bool{
		path.Join("/dl", "a.txt"):     true,
		path.Join("/dl", "a (1).txt"): true,
	}
	exists := func(p string) bool { return taken[p] }

	assert.Equal(t, "b.txt", UniqueName("/dl", "b.txt", exists))
	assert.Equal(t, "a (2).txt", UniqueName("/dl", "a.txt", exists))
}
