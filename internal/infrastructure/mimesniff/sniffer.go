// Package mimesniff classifies downloaded payloads by their content.
package mimesniff

import (
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/bnema/browse/internal/application/port"
)

// Sniffer implements port.ContentSniffer with magic-number detection.
type Sniffer struct{}

// New returns a content sniffer.
func New() *Sniffer {
	return &Sniffer{}
}

// DetectFile returns the media type of the file at path, without parameters.
// Unknown content is reported as application/octet-stream.
func (s *Sniffer) DetectFile(path string) (string, error) {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return "", fmt.Errorf("sniff %s: %w", path, err)
	}
	base, _, _ := strings.Cut(mt.String(), ";")
	return base, nil
}

var _ port.ContentSniffer = (*Sniffer)(nil)
