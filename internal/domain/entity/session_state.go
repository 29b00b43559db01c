package entity

import (
	"encoding/json"
	"time"
)

// SessionState is one window's persisted session blob as stored in the database.
// Data holds the serialized WindowSession in whatever generation it was written;
// it is decoded only at restore time.
type SessionState struct {
	SessionID SessionID
	Data      json.RawMessage
	TabCount  int
	SavedAt   time.Time
}

// SessionInfo provides summary information for session listings.
type SessionInfo struct {
	SessionID  SessionID
	TabCount   int
	EntryCount int
	Titles     []string
	SavedAt    time.Time
	Readable   bool
}
