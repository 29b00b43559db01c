package port

// ContentSniffer classifies file content by inspecting its bytes.
type ContentSniffer interface {
	// DetectFile returns the media type of the file at path.
	DetectFile(path string) (string, error)
}
