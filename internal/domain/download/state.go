// Package download holds the transfer lifecycle as a pure state machine plus
// the naming rules for downloaded files.
package download

import (
	"github.com/bnema/browse/internal/domain/entity"
)

// EventType identifies what happened to a transfer.
type EventType int

const (
	EventStarted EventType = iota
	EventProgress
	EventFinished
	EventFailed
	EventCancel
	EventRecordDeleted
	EventAcknowledge
)

func (t EventType) String() string {
	switch t {
	case EventStarted:
		return "started"
	case EventProgress:
		return "progress"
	case EventFinished:
		return "finished"
	case EventFailed:
		return "failed"
	case EventCancel:
		return "cancel"
	case EventRecordDeleted:
		return "record_deleted"
	case EventAcknowledge:
		return "acknowledge"
	default:
		return "unknown"
	}
}

// Event is one input to Transition.
type Event struct {
	Type    EventType
	Percent int   // EventProgress
	Show    bool  // EventAcknowledge: the user asked to open the record
	Err     error // EventFailed
}

// Effect is a side effect the caller must perform after a transition, in order.
type Effect int

const (
	EffectPrepareDestination Effect = iota
	EffectCreateRecord
	EffectWatchRecord
	EffectRegister
	EffectNotifyStarted
	EffectWriteProgress
	EffectDismissStarted
	EffectSniffContentType
	EffectFinalizeRecord
	EffectPersistRecord
	EffectNotifyCompleted
	EffectCancelTransfer
	EffectDeleteRecord
	EffectRemoveTempFile
	EffectReleaseRecord
	EffectDeregister
	EffectLogFailure
	EffectNotifyFailed
	EffectShowInJournal
)

var effectNames = [...]string{
	EffectPrepareDestination: "prepare_destination",
	EffectCreateRecord:       "create_record",
	EffectWatchRecord:        "watch_record",
	EffectRegister:           "register",
	EffectNotifyStarted:      "notify_started",
	EffectWriteProgress:      "write_progress",
	EffectDismissStarted:     "dismiss_started",
	EffectSniffContentType:   "sniff_content_type",
	EffectFinalizeRecord:     "finalize_record",
	EffectPersistRecord:      "persist_record",
	EffectNotifyCompleted:    "notify_completed",
	EffectCancelTransfer:     "cancel_transfer",
	EffectDeleteRecord:       "delete_record",
	EffectRemoveTempFile:     "remove_temp_file",
	EffectReleaseRecord:      "release_record",
	EffectDeregister:         "deregister",
	EffectLogFailure:         "log_failure",
	EffectNotifyFailed:       "notify_failed",
	EffectShowInJournal:      "show_in_journal",
}

func (e Effect) String() string {
	if int(e) < len(effectNames) {
		return effectNames[e]
	}
	return "unknown"
}

// Machine is the state of one transfer. The zero value is a new transfer.
type Machine struct {
	Status   entity.DownloadStatus
	Progress int
	// Released is set once a finished transfer's local resources were cleaned up.
	Released bool
}

// NewMachine returns a machine in the created state.
func NewMachine() Machine {
	return Machine{Status: entity.DownloadCreated}
}

// State returns the status, treating the zero value as created.
func (m Machine) State() entity.DownloadStatus {
	if m.Status == "" {
		return entity.DownloadCreated
	}
	return m.Status
}

// Terminal reports whether the transfer can no longer change state.
func (m Machine) Terminal() bool {
	return m.State().IsTerminal()
}

// Transition applies e to m. It never performs I/O: the returned effects
// describe what the caller has to do. Events that make no sense in the
// current state return m unchanged and no effects.
func Transition(m Machine, e Event) (Machine, []Effect) {
	switch m.State() {
	case entity.DownloadCreated:
		return fromCreated(m, e)
	case entity.DownloadStarted:
		return fromStarted(m, e)
	case entity.DownloadFinished:
		return fromFinished(m, e)
	default:
		return m, nil
	}
}

func fromCreated(m Machine, e Event) (Machine, []Effect) {
	switch e.Type {
	case EventStarted:
		m.Status = entity.DownloadStarted
		return m, []Effect{
			EffectPrepareDestination,
			EffectCreateRecord,
			EffectWatchRecord,
			EffectRegister,
			EffectNotifyStarted,
		}
	case EventCancel:
		m.Status = entity.DownloadCancelled
		return m, []Effect{EffectCancelTransfer}
	case EventFailed:
		m.Status = entity.DownloadError
		return m, []Effect{EffectLogFailure, EffectNotifyFailed}
	default:
		return m, nil
	}
}

func fromStarted(m Machine, e Event) (Machine, []Effect) {
	switch e.Type {
	case EventProgress:
		m.Progress = clampPercent(e.Percent)
		return m, []Effect{EffectWriteProgress}
	case EventFinished:
		m.Status = entity.DownloadFinished
		m.Progress = 100
		return m, []Effect{
			EffectDismissStarted,
			EffectSniffContentType,
			EffectFinalizeRecord,
			EffectPersistRecord,
			EffectDeregister,
			EffectNotifyCompleted,
		}
	case EventCancel:
		m.Status = entity.DownloadCancelled
		return m, []Effect{
			EffectCancelTransfer,
			EffectDismissStarted,
			EffectDeleteRecord,
			EffectRemoveTempFile,
			EffectReleaseRecord,
			EffectDeregister,
		}
	case EventRecordDeleted:
		m.Status = entity.DownloadCancelled
		return m, []Effect{
			EffectCancelTransfer,
			EffectDismissStarted,
			EffectRemoveTempFile,
			EffectReleaseRecord,
			EffectDeregister,
		}
	case EventFailed:
		m.Status = entity.DownloadError
		return m, []Effect{
			EffectDismissStarted,
			EffectLogFailure,
			EffectDeleteRecord,
			EffectRemoveTempFile,
			EffectReleaseRecord,
			EffectDeregister,
			EffectNotifyFailed,
		}
	default:
		return m, nil
	}
}

func fromFinished(m Machine, e Event) (Machine, []Effect) {
	if m.Released {
		return m, nil
	}
	switch e.Type {
	case EventAcknowledge:
		m.Released = true
		effects := make([]Effect, 0, 4)
		if e.Show {
			effects = append(effects, EffectShowInJournal)
		}
		return m, append(effects, EffectRemoveTempFile, EffectReleaseRecord, EffectDeregister)
	case EventRecordDeleted:
		m.Released = true
		return m, []Effect{EffectRemoveTempFile, EffectReleaseRecord, EffectDeregister}
	default:
		return m, nil
	}
}

func clampPercent(p int) int {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return p
	}
}
