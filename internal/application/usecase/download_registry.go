package usecase

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/browse/internal/logging"
)

// ActiveDownload is what the registry needs from a running download.
type ActiveDownload interface {
	ID() string
	Cancel(ctx context.Context)
	// Done is closed once the download reached a terminal state.
	Done() <-chan struct{}
}

// DownloadRegistry tracks the downloads in flight and gates shutdown on them.
// It is owned by the application; there is no process-wide instance.
type DownloadRegistry struct {
	mu     sync.Mutex
	active map[string]ActiveDownload
	order  []string
}

// NewDownloadRegistry creates an empty registry.
func NewDownloadRegistry() *DownloadRegistry {
	return &DownloadRegistry{active: make(map[string]ActiveDownload)}
}

// Register adds a download. Registering the same ID twice is a no-op.
func (r *DownloadRegistry) Register(d ActiveDownload) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.active[d.ID()]; ok {
		return
	}
	r.active[d.ID()] = d
	r.order = append(r.order, d.ID())
}

// Deregister removes a download. Unknown IDs are ignored.
func (r *DownloadRegistry) Deregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.active[id]; !ok {
		return
	}
	delete(r.active, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Active returns the registered downloads in registration order.
func (r *DownloadRegistry) Active() []ActiveDownload {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]ActiveDownload, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.active[id])
	}
	return out
}

// Len returns the number of active downloads.
func (r *DownloadRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.active)
}

// CanShutdown reports whether no download is in flight.
func (r *DownloadRegistry) CanShutdown() bool {
	return r.Len() == 0
}

// CancelAll cancels every active download and waits until each reached a
// terminal state or ctx is done.
func (r *DownloadRegistry) CancelAll(ctx context.Context) error {
	active := r.Active()
	if len(active) == 0 {
		return nil
	}

	logging.FromContext(ctx).Info().Int("count", len(active)).Msg("cancelling active downloads")

	g, gctx := errgroup.WithContext(ctx)
	for _, d := range active {
		g.Go(func() error {
			d.Cancel(gctx)
			select {
			case <-d.Done():
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	}
	return g.Wait()
}
