package transfer

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/browse/internal/application/port"
	"github.com/bnema/browse/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// recordingListener chooses dest on Started and records every event.
type recordingListener struct {
	transfer *HTTPTransfer
	dest     string

	mu      sync.Mutex
	events  []port.TransferEvent
	onStart func()
}

func (l *recordingListener) OnTransferEvent(_ context.Context, ev port.TransferEvent) {
	if ev.Type == port.TransferStarted {
		l.transfer.SetDestination(l.dest)
		if l.onStart != nil {
			l.onStart()
		}
	}
	l.mu.Lock()
	l.events = append(l.events, ev)
	l.mu.Unlock()
}

func (l *recordingListener) types() []port.TransferEventType {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]port.TransferEventType, 0, len(l.events))
	for _, ev := range l.events {
		out = append(out, ev.Type)
	}
	return out
}

func (l *recordingListener) last() port.TransferEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.events[len(l.events)-1]
}

func waitDone(t *testing.T, tr *HTTPTransfer) {
	t.Helper()
	select {
	case <-tr.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("transfer did not stop")
	}
}

func TestHTTPTransfer_DownloadsWithDispositionName(t *testing.T) {
	payload := bytes.Repeat([]byte("x"), 256*1024)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="report.pdf"`)
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	engine := NewEngine(Config{ProgressInterval: time.Nanosecond})
	tr := engine.NewTransfer(srv.URL + "/files/download")
	assert.Equal(t, "download", tr.SuggestedFilename())

	l := &recordingListener{transfer: tr, dest: filepath.Join(t.TempDir(), "out.pdf")}
	require.NoError(t, tr.Start(testContext(), l))
	waitDone(t, tr)

	assert.Equal(t, "report.pdf", tr.SuggestedFilename())
	types := l.types()
	require.NotEmpty(t, types)
	assert.Equal(t, port.TransferStarted, types[0])
	assert.Equal(t, port.TransferFinished, types[len(types)-1])

	got, err := os.ReadFile(l.dest)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	assert.ErrorIs(t, tr.Start(testContext(), l), ErrAlreadyStarted)
}

func TestHTTPTransfer_HTTPErrorFails(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	tr := NewEngine(Config{}).NewTransfer(srv.URL + "/missing.zip")
	l := &recordingListener{transfer: tr, dest: filepath.Join(t.TempDir(), "missing.zip")}
	require.NoError(t, tr.Start(testContext(), l))
	waitDone(t, tr)

	assert.Equal(t, []port.TransferEventType{port.TransferFailed}, l.types())
	assert.Equal(t, http.StatusNotFound, l.last().Code)
	assert.NoFileExists(t, l.dest)
}

func TestHTTPTransfer_NoDestinationFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("data"))
	}))
	defer srv.Close()

	tr := NewEngine(Config{}).NewTransfer(srv.URL + "/a.txt")
	l := &recordingListener{transfer: tr}
	require.NoError(t, tr.Start(testContext(), l))
	waitDone(t, tr)

	assert.Equal(t, []port.TransferEventType{port.TransferStarted, port.TransferFailed}, l.types())
	assert.Equal(t, CodeNoDestination, l.last().Code)
}

func TestHTTPTransfer_CancelStopsWithoutEvents(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "1000000")
		_, _ = w.Write([]byte("partial"))
		w.(http.Flusher).Flush()
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer srv.Close()
	defer close(release)

	tr := NewEngine(Config{}).NewTransfer(srv.URL + "/big.iso")
	l := &recordingListener{transfer: tr, dest: filepath.Join(t.TempDir(), "big.iso")}
	l.onStart = tr.Cancel
	require.NoError(t, tr.Start(testContext(), l))
	waitDone(t, tr)

	assert.Equal(t, []port.TransferEventType{port.TransferStarted}, l.types())
}

func TestNameHelpers(t *testing.T) {
	assert.Equal(t, "a b.txt", nameFromDisposition(`attachment; filename="a b.txt"`))
	assert.Equal(t, "passwd", nameFromDisposition(`attachment; filename="../../etc/passwd"`))
	assert.Empty(t, nameFromDisposition(`inline`))
	assert.Empty(t, nameFromDisposition(""))

	assert.Equal(t, "file.tar.gz", nameFromURL("https://example.com/dl/file.tar.gz?x=1"))
	assert.Empty(t, nameFromURL("https://example.com/"))
	assert.Empty(t, nameFromURL("https://example.com"))
}
