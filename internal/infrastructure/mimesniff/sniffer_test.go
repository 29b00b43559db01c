package mimesniff_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/browse/internal/infrastructure/mimesniff"
)

func TestSniffer_DetectFile(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]struct {
		content []byte
		want    string
	}{
		"pdf":   {[]byte("%PDF-1.7\n1 0 obj\n"), "application/pdf"},
		"png":   {[]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), "image/png"},
		"text":  {[]byte("hello world\n"), "text/plain"},
		"bytes": {[]byte{0x00, 0x01, 0x02, 0xff, 0xfe}, "application/octet-stream"},
	}

	sniffer := mimesniff.New()
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, tc.content, 0o600))

			got, err := sniffer.DetectFile(path)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSniffer_MissingFile(t *testing.T) {
	_, err := mimesniff.New().DetectFile(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
