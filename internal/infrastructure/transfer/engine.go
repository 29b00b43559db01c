// Package transfer implements port.Transfer over HTTP with resty.
package transfer

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Failure codes reported in port.TransferEvent.Code. HTTP error statuses are
// reported as the status code itself.
const (
	CodeNetwork       = 1
	CodeWrite         = 2
	CodeNoDestination = 3
)

const (
	defaultUserAgent        = "browse/1.0"
	defaultProgressInterval = 250 * time.Millisecond
	copyBufferSize          = 32 * 1024
)

// Config tunes the HTTP engine.
type Config struct {
	// HeaderTimeout bounds the wait for response headers. The body has no
	// deadline. Zero disables the limit.
	HeaderTimeout time.Duration
	UserAgent     string
	// ProgressInterval is the minimum spacing of progress events.
	ProgressInterval time.Duration
}

// Engine creates HTTP transfers sharing one client.
type Engine struct {
	client           *resty.Client
	progressInterval time.Duration
}

// NewEngine builds an engine from cfg.
func NewEngine(cfg Config) *Engine {
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.ProgressInterval <= 0 {
		cfg.ProgressInterval = defaultProgressInterval
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.ResponseHeaderTimeout = cfg.HeaderTimeout

	client := resty.New().
		SetTransport(transport).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "*/*").
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(10))

	return &Engine{client: client, progressInterval: cfg.ProgressInterval}
}

// NewTransfer prepares a transfer of uri. Nothing is fetched until Start.
func (e *Engine) NewTransfer(uri string) *HTTPTransfer {
	return &HTTPTransfer{
		engine:    e,
		uri:       uri,
		suggested: nameFromURL(uri),
		done:      make(chan struct{}),
	}
}
