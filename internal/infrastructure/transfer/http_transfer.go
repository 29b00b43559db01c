package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/url"
	"os"
	"path"
	"sync"

	"golang.org/x/time/rate"

	"github.com/bnema/browse/internal/application/port"
	"github.com/bnema/browse/internal/logging"
)

// ErrAlreadyStarted is returned when Start is called twice.
var ErrAlreadyStarted = errors.New("transfer already started")

// HTTPTransfer downloads one URI. Events are delivered to the listener from
// a single goroutine, in order. After Cancel no further events are sent.
type HTTPTransfer struct {
	engine *Engine
	uri    string

	mu        sync.Mutex
	suggested string
	dest      string
	started   bool
	cancel    context.CancelFunc

	done chan struct{}
}

var _ port.Transfer = (*HTTPTransfer)(nil)

func (t *HTTPTransfer) SourceURI() string { return t.uri }

// SuggestedFilename is derived from the URL until response headers arrive,
// then from Content-Disposition when the server sends one.
func (t *HTTPTransfer) SuggestedFilename() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.suggested
}

func (t *HTTPTransfer) SetDestination(p string) {
	t.mu.Lock()
	t.dest = p
	t.mu.Unlock()
}

func (t *HTTPTransfer) Destination() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dest
}

// Start launches the transfer goroutine.
func (t *HTTPTransfer) Start(ctx context.Context, listener port.TransferListener) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started {
		return ErrAlreadyStarted
	}
	t.started = true

	runCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	go t.run(runCtx, listener)
	return nil
}

// Cancel aborts the transfer without waiting for it to stop.
func (t *HTTPTransfer) Cancel() {
	t.mu.Lock()
	cancel := t.cancel
	t.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Done is closed when the transfer goroutine has exited.
func (t *HTTPTransfer) Done() <-chan struct{} {
	return t.done
}

func (t *HTTPTransfer) run(ctx context.Context, listener port.TransferListener) {
	defer close(t.done)
	defer t.Cancel()

	log := logging.FromContext(ctx).With().Str("uri", logging.TruncateURL(t.uri, 80)).Logger()

	emit := func(ev port.TransferEvent) {
		if ctx.Err() != nil {
			return
		}
		listener.OnTransferEvent(ctx, ev)
	}
	fail := func(code int, err error) {
		log.Debug().Err(err).Int("code", code).Msg("transfer failed")
		emit(port.TransferEvent{Type: port.TransferFailed, Code: code, Err: err})
	}

	resp, err := t.engine.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(t.uri)
	if err != nil {
		fail(CodeNetwork, err)
		return
	}
	body := resp.RawBody()
	defer func() { _ = body.Close() }()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		fail(resp.StatusCode(), fmt.Errorf("HTTP %s", resp.Status()))
		return
	}

	if name := nameFromDisposition(resp.Header().Get("Content-Disposition")); name != "" {
		t.mu.Lock()
		t.suggested = name
		t.mu.Unlock()
	}

	emit(port.TransferEvent{Type: port.TransferStarted})
	if ctx.Err() != nil {
		return
	}

	dest := t.Destination()
	if dest == "" {
		fail(CodeNoDestination, errors.New("no destination chosen"))
		return
	}

	f, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		fail(CodeWrite, err)
		return
	}

	total := resp.RawResponse.ContentLength
	pr := &progressReader{
		r:     body,
		total: total,
		every: rate.Sometimes{Interval: t.engine.progressInterval},
		emit: func(pct int) {
			emit(port.TransferEvent{Type: port.TransferProgress, Percent: pct})
		},
	}

	buf := make([]byte, copyBufferSize)
	_, copyErr := io.CopyBuffer(f, pr, buf)
	closeErr := f.Close()

	if ctx.Err() != nil {
		log.Debug().Msg("transfer cancelled")
		return
	}
	if copyErr != nil {
		fail(CodeNetwork, copyErr)
		return
	}
	if closeErr != nil {
		fail(CodeWrite, closeErr)
		return
	}

	log.Debug().Int64("bytes", pr.read).Msg("transfer finished")
	emit(port.TransferEvent{Type: port.TransferFinished})
}

// progressReader reports whole percentages, spaced by every.
type progressReader struct {
	r     io.Reader
	total int64
	read  int64
	last  int
	every rate.Sometimes
	emit  func(pct int)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.read += int64(n)
	if p.total > 0 && n > 0 {
		pct := int(p.read * 100 / p.total)
		if pct > 100 {
			pct = 100
		}
		if pct != p.last && pct < 100 {
			p.every.Do(func() {
				p.last = pct
				p.emit(pct)
			})
		}
	}
	return n, err
}

func nameFromDisposition(header string) string {
	if header == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil || params["filename"] == "" {
		return ""
	}
	return path.Base(params["filename"])
}

func nameFromURL(uri string) string {
	u, err := url.Parse(uri)
	if err != nil || u.Path == "" || u.Path == "/" {
		return ""
	}
	return path.Base(u.Path)
}
