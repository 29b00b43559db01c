package entity

import "time"

// DownloadStatus is the lifecycle state of a download.
type DownloadStatus string

const (
	DownloadCreated   DownloadStatus = "created"
	DownloadStarted   DownloadStatus = "started"
	DownloadFinished  DownloadStatus = "finished"
	DownloadCancelled DownloadStatus = "cancelled"
	DownloadError     DownloadStatus = "error"
)

// IsTerminal reports whether no further transition can leave this status.
func (s DownloadStatus) IsTerminal() bool {
	return s == DownloadFinished || s == DownloadCancelled || s == DownloadError
}

// DownloadRecord is the observable state of one transfer.
type DownloadRecord struct {
	ID                string
	SourceURI         string
	SuggestedFilename string
	DestinationPath   string
	Status            DownloadStatus
	ProgressPercent   int
	Size              int64  // bytes, set once finished
	ObjectID          string // empty until the journal object exists
	StartedAt         time.Time
	FinishedAt        time.Time
}

// Journal metadata keys.
const (
	MetaTitle       = "title"
	MetaDescription = "description"
	MetaProgress    = "progress"
	MetaMimeType    = "mime_type"
	MetaKeep        = "keep"
	MetaSource      = "source"
	MetaSize        = "size"
)

// JournalObject is a record of the persistent object store: metadata plus an
// optional payload file.
type JournalObject struct {
	ID        string
	Metadata  map[string]string
	FilePath  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewJournalObject returns an object with an initialized metadata map.
func NewJournalObject(id string) *JournalObject {
	return &JournalObject{ID: id, Metadata: make(map[string]string)}
}

// Clone copies the object including its metadata map.
func (o *JournalObject) Clone() *JournalObject {
	if o == nil {
		return nil
	}
	meta := make(map[string]string, len(o.Metadata))
	for k, v := range o.Metadata {
		meta[k] = v
	}
	c := *o
	c.Metadata = meta
	return &c
}
