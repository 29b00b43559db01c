package entity

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// SessionID uniquely identifies a saved browser session (one activity instance).
// Format: YYYYMMDD_HHMMSS_xxxx.
type SessionID string

// NewSessionID generates a session ID stamped with now.
func NewSessionID(now time.Time) SessionID {
	random := make([]byte, 2)
	_, _ = rand.Read(random)
	return SessionID(now.Format("20060102_150405") + "_" + hex.EncodeToString(random))
}

// ShortID returns the random suffix of the ID.
func (id SessionID) ShortID() string {
	s := string(id)
	if len(s) < 4 {
		return s
	}
	return s[len(s)-4:]
}
