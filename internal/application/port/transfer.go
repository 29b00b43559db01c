package port

import "context"

// TransferEventType identifies a transfer engine notification.
type TransferEventType int

const (
	// TransferStarted is sent once the engine knows the suggested name. The
	// listener sets the destination while handling it.
	TransferStarted TransferEventType = iota
	// TransferProgress carries a completion percentage.
	TransferProgress
	// TransferFinished is sent after the payload is fully written.
	TransferFinished
	// TransferFailed carries an engine error code.
	TransferFailed
)

// String returns a human-readable name for the event type.
func (t TransferEventType) String() string {
	switch t {
	case TransferStarted:
		return "started"
	case TransferProgress:
		return "progress"
	case TransferFinished:
		return "finished"
	case TransferFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// TransferEvent is one engine notification.
type TransferEvent struct {
	Type    TransferEventType
	Percent int   // TransferProgress
	Code    int   // TransferFailed
	Err     error // TransferFailed
}

// TransferListener receives the engine notifications of one transfer, in order.
type TransferListener interface {
	OnTransferEvent(ctx context.Context, event TransferEvent)
}

// Transfer is one download handled by an external engine.
type Transfer interface {
	SourceURI() string
	SuggestedFilename() string

	// SetDestination chooses where the payload is written.
	SetDestination(path string)
	Destination() string

	// Start begins the transfer and returns without waiting for it.
	Start(ctx context.Context, listener TransferListener) error

	// Cancel aborts the transfer. It does not wait for the engine and no
	// event is guaranteed to follow.
	Cancel()
}
