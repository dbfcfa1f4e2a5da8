package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"
)

const (
	FileName = "availabilities.json"

	defaultWriteAttempts = 3
	defaultRetryDelay    = 100 * time.Millisecond

	filePerm = 0o644
)

// FileRepository keeps all records in one JSON array file.
// Writes go to a temp file renamed over the target.
type FileRepository struct {
	logger *slog.Logger
	path   string
	mu     sync.Mutex

	writeAttempts int
	retryDelay    time.Duration
}

// NewFileRepository creates a repository under dir, creating dir if needed.
func NewFileRepository(dir string, logger *slog.Logger) (*FileRepository, error) {
	if dir == "" {
		return nil, errors.New("empty dir")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	return &FileRepository{
		logger: logger.With("component", "file_repository"),
		path:   filepath.Join(dir, FileName),

		writeAttempts: defaultWriteAttempts,
		retryDelay:    defaultRetryDelay,
	}, nil
}

func (r *FileRepository) Path() string {
	return r.path
}

// List returns all records in the order they were added.
func (r *FileRepository) List(ctx context.Context) ([]Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.read(ctx)
}

func (r *FileRepository) Add(ctx context.Context, record Record) error {
	if record.ID == "" {
		return errEmptyID("FileRepository.Add")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.read(ctx)
	if err != nil {
		return err
	}

	return r.write(ctx, append(records, record))
}

func (r *FileRepository) Update(ctx context.Context, id string, patch Patch) (*Record, error) {
	if id == "" {
		return nil, errEmptyID("FileRepository.Update")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.read(ctx)
	if err != nil {
		return nil, err
	}

	ix := slices.IndexFunc(records, func(record Record) bool { return record.ID == id })
	if ix == -1 {
		return nil, ErrNotFound
	}

	patch.apply(&records[ix])

	if err := r.write(ctx, records); err != nil {
		return nil, err
	}

	updated := records[ix]

	return &updated, nil
}

func (r *FileRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errEmptyID("FileRepository.Delete")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.read(ctx)
	if err != nil {
		return err
	}

	filtered := slices.DeleteFunc(
		slices.Clone(records),
		func(record Record) bool { return record.ID == id },
	)
	if len(filtered) == len(records) {
		return ErrNotFound
	}

	return r.write(ctx, filtered)
}

func (r *FileRepository) FindByID(ctx context.Context, id string) (*Record, error) {
	if id == "" {
		return nil, errEmptyID("FileRepository.FindByID")
	}

	records, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		if record.ID == id {
			return &record, nil
		}
	}

	return nil, ErrNotFound
}

// read must be called with mu held. A missing file is created empty.
func (r *FileRepository) read(ctx context.Context) ([]Record, error) {
	content, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Record{}, r.write(ctx, []Record{})
		}

		return nil, fmt.Errorf("failed to read %s: %w", r.path, err)
	}

	if len(content) == 0 {
		return []Record{}, nil
	}

	var records []Record
	if err := json.Unmarshal(content, &records); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", r.path, err)
	}

	if records == nil {
		records = []Record{}
	}

	return records, nil
}

// write must be called with mu held.
func (r *FileRepository) write(ctx context.Context, records []Record) error {
	content, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}

	var errWrite error

	for attempt := 1; attempt <= r.writeAttempts; attempt++ {
		if errWrite = r.writeAtomic(content); errWrite == nil {
			return nil
		}

		r.logger.Warn("write attempt failed",
			"attempt", attempt,
			"path", r.path,
			"error", errWrite)

		if attempt == r.writeAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.retryDelay):
		}
	}

	return fmt.Errorf("failed to write %s after %d attempts: %w", r.path, r.writeAttempts, errWrite)
}

func (r *FileRepository) writeAtomic(content []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(r.path), "availabilities-*.tmp")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}

	// CreateTemp opens with 0600.
	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return nil
}

var _ Repository = (*FileRepository)(nil)
