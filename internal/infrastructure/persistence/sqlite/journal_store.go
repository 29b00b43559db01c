package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bnema/browse/internal/application/port"
	"github.com/bnema/browse/internal/domain/entity"
	"github.com/bnema/browse/internal/logging"
)

// ErrObjectNotFound is returned for journal objects that do not exist.
var ErrObjectNotFound = errors.New("journal object not found")

// JournalStore is the SQLite-backed journal of downloaded files. Metadata
// lives in the journal_objects table; payloads handed over with
// TransferOwnership are moved under blobDir.
type JournalStore struct {
	db      *sql.DB
	blobDir string
	now     func() time.Time

	mu      sync.Mutex
	subs    map[string]map[uint64]func(string)
	nextSub uint64
}

var _ port.ObjectStore = (*JournalStore)(nil)

// NewJournalStore creates a journal store keeping owned payloads in blobDir.
func NewJournalStore(db *sql.DB, blobDir string) (*JournalStore, error) {
	if blobDir == "" {
		return nil, errors.New("journal blob directory cannot be empty")
	}
	if err := os.MkdirAll(blobDir, dbDirPerm); err != nil {
		return nil, fmt.Errorf("create journal blob directory: %w", err)
	}
	return &JournalStore{
		db:      db,
		blobDir: blobDir,
		now:     time.Now,
		subs:    make(map[string]map[uint64]func(string)),
	}, nil
}

// Create allocates a new, empty object.
func (s *JournalStore) Create(ctx context.Context) (*entity.JournalObject, error) {
	obj := entity.NewJournalObject(uuid.NewString())
	now := s.now()
	obj.CreatedAt = now
	obj.UpdatedAt = now

	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO journal_objects (id, metadata, file_path, created_at, updated_at) VALUES (?, '{}', '', ?, ?)`,
		obj.ID, now.UnixNano(), now.UnixNano(),
	); err != nil {
		return nil, fmt.Errorf("create journal object: %w", err)
	}

	logging.FromContext(ctx).Debug().Str("object_id", obj.ID).Msg("journal object created")
	return obj, nil
}

// Write persists metadata and, with TransferOwnership, moves the payload
// file into the store. obj.FilePath is updated to the stored location.
func (s *JournalStore) Write(ctx context.Context, obj *entity.JournalObject, opts port.WriteOptions) error {
	if obj == nil || obj.ID == "" {
		return errors.New("journal object has no id")
	}

	stored, err := s.Get(ctx, obj.ID)
	if err != nil {
		return err
	}

	filePath := stored.FilePath
	moved := false
	if opts.TransferOwnership && obj.FilePath != "" && obj.FilePath != stored.FilePath {
		target := s.blobPath(obj.ID, obj.FilePath)
		if err := moveFile(obj.FilePath, target); err != nil {
			return fmt.Errorf("take ownership of %s: %w", obj.FilePath, err)
		}
		filePath = target
		moved = true
	}

	meta, err := json.Marshal(obj.Metadata)
	if err != nil {
		return fmt.Errorf("encode journal metadata: %w", err)
	}

	now := s.now()
	res, err := s.db.ExecContext(ctx,
		`UPDATE journal_objects SET metadata = ?, file_path = ?, updated_at = ? WHERE id = ?`,
		string(meta), filePath, now.UnixNano(), obj.ID)
	if err == nil {
		var n int64
		if n, err = res.RowsAffected(); err == nil && n == 0 {
			err = ErrObjectNotFound
		}
	}
	if err != nil {
		if moved {
			_ = os.Remove(filePath)
		}
		return fmt.Errorf("write journal object %s: %w", obj.ID, err)
	}

	obj.FilePath = filePath
	obj.UpdatedAt = now
	return nil
}

// Get returns a copy of the stored object.
func (s *JournalStore) Get(ctx context.Context, id string) (*entity.JournalObject, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, metadata, file_path, created_at, updated_at FROM journal_objects WHERE id = ?`, id)
	obj, err := scanJournalObject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, id)
		}
		return nil, fmt.Errorf("get journal object: %w", err)
	}
	return obj, nil
}

// List returns every object, newest first.
func (s *JournalStore) List(ctx context.Context) ([]*entity.JournalObject, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, metadata, file_path, created_at, updated_at FROM journal_objects ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list journal objects: %w", err)
	}
	defer func() { _ = rows.Close() }()

	objects := []*entity.JournalObject{}
	for rows.Next() {
		obj, err := scanJournalObject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan journal object: %w", err)
		}
		objects = append(objects, obj)
	}
	return objects, rows.Err()
}

// Delete removes an object, its owned payload, and notifies subscribers.
func (s *JournalStore) Delete(ctx context.Context, id string) error {
	log := logging.FromContext(ctx)

	obj, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM journal_objects WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete journal object: %w", err)
	}

	if obj.FilePath != "" && s.owns(obj.FilePath) {
		if err := os.Remove(obj.FilePath); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("path", obj.FilePath).Msg("failed to remove journal payload")
		}
	}

	log.Debug().Str("object_id", id).Msg("journal object deleted")
	s.notifyDeleted(id)
	return nil
}

// SubscribeDeleted registers fn to run on its own goroutine once the object
// is deleted. Subscriptions are dropped after firing.
func (s *JournalStore) SubscribeDeleted(id string, fn func(id string)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSub++
	key := s.nextSub
	if s.subs[id] == nil {
		s.subs[id] = make(map[uint64]func(string))
	}
	s.subs[id][key] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if m, ok := s.subs[id]; ok {
			delete(m, key)
			if len(m) == 0 {
				delete(s.subs, id)
			}
		}
	}
}

func (s *JournalStore) notifyDeleted(id string) {
	s.mu.Lock()
	subs := s.subs[id]
	delete(s.subs, id)
	s.mu.Unlock()

	for _, fn := range subs {
		go fn(id)
	}
}

func (s *JournalStore) blobPath(id, original string) string {
	return filepath.Join(s.blobDir, id+filepath.Ext(original))
}

func (s *JournalStore) owns(path string) bool {
	rel, err := filepath.Rel(s.blobDir, path)
	return err == nil && !strings.HasPrefix(rel, "..") && !filepath.IsAbs(rel)
}

func scanJournalObject(row rowScanner) (*entity.JournalObject, error) {
	var (
		id        string
		meta      string
		filePath  string
		createdAt int64
		updatedAt int64
	)
	if err := row.Scan(&id, &meta, &filePath, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	obj := entity.NewJournalObject(id)
	if err := json.Unmarshal([]byte(meta), &obj.Metadata); err != nil {
		return nil, fmt.Errorf("decode metadata of %s: %w", id, err)
	}
	if obj.Metadata == nil {
		obj.Metadata = make(map[string]string)
	}
	obj.FilePath = filePath
	obj.CreatedAt = time.Unix(0, createdAt)
	obj.UpdatedAt = time.Unix(0, updatedAt)
	return obj, nil
}

// moveFile renames src to dst, copying across filesystems.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return err
	}
	return os.Remove(src)
}
