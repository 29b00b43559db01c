package download

import (
	"fmt"
	"mime"
	"net/url"
	"path"
	"strings"
	"time"
)

// FallbackName is used when neither the engine nor the URI yields a usable name.
const FallbackName = "download"

const dataURILabel = "Data URI"

// extensionOverrides pins extensions for types whose system mime database
// order varies between distributions.
var extensionOverrides = map[string]string{
	"application/octet-stream": ".bin",
	"application/xhtml+xml":    ".xhtml",
	"audio/mpeg":               ".mp3",
	"image/jpeg":               ".jpg",
	"image/svg+xml":            ".svg",
	"text/html":                ".html",
	"text/plain":               ".txt",
	"text/xml":                 ".xml",
	"video/mp4":                ".mp4",
}

// CleanName reduces an engine-suggested name to a bare file name that cannot
// escape the instance directory.
func CleanName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = strings.TrimSpace(path.Base(name))
	switch name {
	case "", ".", "..", "/":
		return FallbackName
	}
	return name
}

// CleanNameForType is CleanName plus an extension derived from mimeType when
// the name has none.
func CleanNameForType(name, mimeType string) string {
	clean := CleanName(name)
	if path.Ext(clean) != "" {
		return clean
	}
	return clean + ExtensionForType(mimeType)
}

// ExtensionForType returns the preferred extension for a media type, or "".
// Parameters such as "; charset=binary" are ignored.
func ExtensionForType(mimeType string) string {
	if mimeType == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return ""
	}
	if ext, ok := extensionOverrides[mediaType]; ok {
		return ext
	}
	exts, err := mime.ExtensionsByType(mediaType)
	if err != nil || len(exts) == 0 {
		return ""
	}
	return exts[0]
}

// IsDataURI reports whether uri carries its payload inline.
func IsDataURI(uri string) bool {
	return len(uri) >= 5 && strings.EqualFold(uri[:5], "data:")
}

// NameFromURI derives a file name from the last path segment of uri.
func NameFromURI(uri string) string {
	if uri == "" || IsDataURI(uri) {
		return FallbackName
	}
	p := uri
	if parsed, err := url.Parse(uri); err == nil {
		p = parsed.Path
	}
	return CleanName(p)
}

// DisplayName is the name shown to the user for a transfer. Inline data URIs
// would otherwise print their whole payload.
func DisplayName(sourceURI, suggested string) string {
	if IsDataURI(sourceURI) {
		return dataURILabel
	}
	if suggested != "" {
		return CleanName(suggested)
	}
	return NameFromURI(sourceURI)
}

// DisplaySource is the origin shown next to a transfer's name.
func DisplaySource(sourceURI string) string {
	if IsDataURI(sourceURI) {
		return dataURILabel
	}
	return sourceURI
}

// PlaceholderTitle is the record title while a transfer is running.
func PlaceholderTitle(sourceURI, suggested string) string {
	return fmt.Sprintf("Downloading %s from %s", DisplayName(sourceURI, suggested), DisplaySource(sourceURI))
}

// SourceDescription is the record description once a transfer has finished.
func SourceDescription(sourceURI string) string {
	return "From: " + DisplaySource(sourceURI)
}

// UniqueName returns name, or name with a " (N)" suffix before its extension,
// such that dir/result does not exist according to exists.
func UniqueName(dir, name string, exists func(path string) bool) string {
	if !exists(path.Join(dir, name)) {
		return name
	}

	ext := path.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for i := 1; i < 1000; i++ {
		candidate := fmt.Sprintf("%s (%d)%s", stem, i, ext)
		if !exists(path.Join(dir, candidate)) {
			return candidate
		}
	}
	return fmt.Sprintf("%s-%d%s", stem, time.Now().UnixNano(), ext)
}
