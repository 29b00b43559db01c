package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/bnema/browse/internal/application/port"
	"github.com/bnema/browse/internal/domain/entity"
	"github.com/bnema/browse/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// fakeSurface is an in-memory navigation surface.
type fakeSurface struct {
	entries    []entity.HistoryEntry
	current    int
	replaceErr error
	navigated  []string
	replaced   int
}

func (s *fakeSurface) GetHistoryEntries() []entity.HistoryEntry { return s.entries }
func (s *fakeSurface) GetCurrentIndex() int                      { return s.current }

func (s *fakeSurface) ReplaceHistory(_ context.Context, entries []entity.HistoryEntry, currentIndex int) error {
	if s.replaceErr != nil {
		return s.replaceErr
	}
	s.replaced++
	s.entries = entries
	s.current = currentIndex
	return nil
}

func (s *fakeSurface) Navigate(_ context.Context, url string) error {
	s.navigated = append(s.navigated, url)
	s.entries = append(s.entries[:min(s.current+1, len(s.entries))], entity.HistoryEntry{URL: url})
	s.current = len(s.entries) - 1
	return nil
}

// fakeWindow hands out fakeSurfaces. newSurface, when set, builds each new tab.
type fakeWindow struct {
	tabs       []*fakeSurface
	closed     []*fakeSurface
	newSurface func(index int) *fakeSurface
	created    int
}

func (w *fakeWindow) Tabs() []port.NavigationSurface {
	out := make([]port.NavigationSurface, 0, len(w.tabs))
	for _, t := range w.tabs {
		out = append(out, t)
	}
	return out
}

func (w *fakeWindow) CloseTab(_ context.Context, tab port.NavigationSurface) error {
	for i, t := range w.tabs {
		if t == tab {
			w.closed = append(w.closed, t)
			w.tabs = append(w.tabs[:i], w.tabs[i+1:]...)
			return nil
		}
	}
	return errors.New("unknown tab")
}

func (w *fakeWindow) NewTab(context.Context) (port.NavigationSurface, error) {
	s := &fakeSurface{}
	if w.newSurface != nil {
		s = w.newSurface(w.created)
	}
	w.created++
	w.tabs = append(w.tabs, s)
	return s, nil
}

// fakeObjectStore is an in-memory journal.
type fakeObjectStore struct {
	mu           sync.Mutex
	objects      map[string]*entity.JournalObject
	writes       []writeCall
	deleted      []string
	subscribers  map[string]func(string)
	unsubscribed int
	nextID       int
	createErr    error
	writeErr     error
}

type writeCall struct {
	metadata map[string]string
	opts     port.WriteOptions
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{
		objects:     make(map[string]*entity.JournalObject),
		subscribers: make(map[string]func(string)),
	}
}

func (s *fakeObjectStore) Create(context.Context) (*entity.JournalObject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.nextID++
	obj := entity.NewJournalObject(fmt.Sprintf("obj-%d", s.nextID))
	s.objects[obj.ID] = obj.Clone()
	return obj, nil
}

func (s *fakeObjectStore) Write(_ context.Context, obj *entity.JournalObject, opts port.WriteOptions) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return s.writeErr
	}
	s.writes = append(s.writes, writeCall{metadata: obj.Clone().Metadata, opts: opts})
	s.objects[obj.ID] = obj.Clone()
	return nil
}

func (s *fakeObjectStore) Get(_ context.Context, id string) (*entity.JournalObject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.objects[id].Clone(), nil
}

func (s *fakeObjectStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	s.deleted = append(s.deleted, id)
	delete(s.objects, id)
	fn := s.subscribers[id]
	s.mu.Unlock()
	if fn != nil {
		go fn(id)
	}
	return nil
}

func (s *fakeObjectStore) SubscribeDeleted(id string, fn func(string)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
		s.unsubscribed++
	}
}

// deleteExternally removes an object the way another program would, and
// waits for the subscriber to run.
func (s *fakeObjectStore) deleteExternally(id string) {
	s.mu.Lock()
	delete(s.objects, id)
	fn := s.subscribers[id]
	s.mu.Unlock()
	if fn != nil {
		fn(id)
	}
}

func (s *fakeObjectStore) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.writes)
}

func (s *fakeObjectStore) lastWrite() writeCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes[len(s.writes)-1]
}

// fakeNotifier records notices; tests answer them explicitly.
type fakeNotifier struct {
	mu        sync.Mutex
	notices   []port.Notice
	callbacks []func(string)
	dismissed []port.NotificationID
}

func (n *fakeNotifier) Show(_ context.Context, notice port.Notice, onResponse func(string)) port.NotificationID {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice)
	n.callbacks = append(n.callbacks, onResponse)
	return port.NotificationID(fmt.Sprintf("notice-%d", len(n.notices)))
}

func (n *fakeNotifier) Dismiss(_ context.Context, id port.NotificationID) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.dismissed = append(n.dismissed, id)
}

func (n *fakeNotifier) titles() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, 0, len(n.notices))
	for _, notice := range n.notices {
		out = append(out, notice.Title)
	}
	return out
}

func (n *fakeNotifier) respond(index int, action string) {
	n.mu.Lock()
	cb := n.callbacks[index]
	n.mu.Unlock()
	cb(action)
}

// fakeFS tracks created directories, existing files and removals.
type fakeFS struct {
	mu       sync.Mutex
	existing map[string]bool
	sizes    map[string]int64
	dirs     []string
	removed  []string
	mkdirErr error
	sizeErr  error
}

func newFakeFS() *fakeFS {
	return &fakeFS{existing: make(map[string]bool), sizes: make(map[string]int64)}
}

func (f *fakeFS) Exists(_ context.Context, path string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.existing[path], nil
}

func (f *fakeFS) GetSize(_ context.Context, path string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sizeErr != nil {
		return 0, f.sizeErr
	}
	return f.sizes[path], nil
}

func (f *fakeFS) CreateExclusive(_ context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.existing[path] {
		return fs.ErrExist
	}
	f.existing[path] = true
	return nil
}

func (f *fakeFS) MkdirAll(_ context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mkdirErr != nil {
		return f.mkdirErr
	}
	f.dirs = append(f.dirs, path)
	return nil
}

func (f *fakeFS) Remove(_ context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, path)
	delete(f.existing, path)
	return nil
}

func (f *fakeFS) removedPaths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.removed...)
}
