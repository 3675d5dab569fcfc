package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/oryizon/storefront/internal/domain/shared"
	"github.com/oryizon/storefront/internal/domain/shop"
)

// entry is one journaled order plus its sync state
type entry struct {
	Order      shop.Order `json:"order"`
	Synced     bool       `json:"synced"`
	RecordedAt time.Time  `json:"recorded_at"`
	SyncedAt   *time.Time `json:"synced_at,omitempty"`
}

// FileJournal is a local durable order journal backed by a single JSON
// file. Every mutation rewrites the file through a temp-file rename, so
// a crash mid-write never corrupts the journal.
//
// The journal is append-only from the caller's perspective: orders are
// never removed, only flagged as synced.
type FileJournal struct {
	mu      sync.Mutex
	path    string
	entries []entry
	logger  *zap.Logger
}

// NewFileJournal opens (or creates) the journal at path
func NewFileJournal(path string, logger *zap.Logger) (*FileJournal, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create journal directory: %w", err)
		}
	}

	j := &FileJournal{
		path:   path,
		logger: logger,
	}

	if err := j.load(); err != nil {
		return nil, err
	}

	return j, nil
}

// Append records a new order as unsynced
func (j *FileJournal) Append(ctx context.Context, order *shop.Order) error {
	if order == nil {
		return shared.NewDomainError("INVALID_INPUT", "Order cannot be nil")
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	for _, e := range j.entries {
		if e.Order.ID == order.ID {
			return shared.ErrAlreadyExists
		}
	}

	j.entries = append(j.entries, entry{
		Order:      *order,
		RecordedAt: time.Now(),
	})

	return j.flush()
}

// FindByReference resolves an order by ID or order number
func (j *FileJournal) FindByReference(ctx context.Context, ref string) (*shop.Order, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	for i := range j.entries {
		if j.entries[i].Order.MatchesReference(ref) {
			order := j.entries[i].Order
			return &order, nil
		}
	}

	return nil, shared.ErrNotFound
}

// Pending lists unsynced orders, oldest first
func (j *FileJournal) Pending(ctx context.Context) ([]shop.Order, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	var pending []shop.Order
	for i := range j.entries {
		if !j.entries[i].Synced {
			pending = append(pending, j.entries[i].Order)
		}
	}

	return pending, nil
}

// MarkSynced flags an order as confirmed in the remote store
func (j *FileJournal) MarkSynced(ctx context.Context, orderID string) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	for i := range j.entries {
		if j.entries[i].Order.ID == orderID {
			if j.entries[i].Synced {
				return nil
			}
			now := time.Now()
			j.entries[i].Synced = true
			j.entries[i].SyncedAt = &now
			return j.flush()
		}
	}

	return shared.ErrNotFound
}

// UpdateStatus rewrites the status on a journaled order so lookups that
// fall back to the journal serve the corrected value
func (j *FileJournal) UpdateStatus(ctx context.Context, orderID string, status shop.OrderStatus) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	for i := range j.entries {
		if j.entries[i].Order.ID == orderID {
			if j.entries[i].Order.Status == status {
				return nil
			}
			j.entries[i].Order.Status = status
			j.entries[i].Order.UpdatedAt = time.Now()
			return j.flush()
		}
	}

	return shared.ErrNotFound
}

// load reads the journal file into memory. A missing file is an empty
// journal; a corrupt file is an error the operator must resolve.
func (j *FileJournal) load() error {
	data, err := os.ReadFile(j.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			j.entries = nil
			return nil
		}
		return fmt.Errorf("read journal: %w", err)
	}

	if len(data) == 0 {
		j.entries = nil
		return nil
	}

	var entries []entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("parse journal %s: %w", j.path, err)
	}

	j.entries = entries
	j.logger.Info("order journal loaded",
		zap.String("path", j.path),
		zap.Int("entries", len(entries)),
	)
	return nil
}

// flush writes the journal atomically. Callers must hold the mutex.
func (j *FileJournal) flush() error {
	data, err := json.MarshalIndent(j.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode journal: %w", err)
	}

	tmp := j.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write journal: %w", err)
	}
	if err := os.Rename(tmp, j.path); err != nil {
		return fmt.Errorf("commit journal: %w", err)
	}

	return nil
}
