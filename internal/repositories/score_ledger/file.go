package score_ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hosogai/enkai/internal/models"
)

// Config holds configuration for the file-backed ledger repository
type Config struct {
	// Path is the location of the JSON ledger file
	Path string
}

// fileRepository implements the Repository interface using a single
// JSON array file. The whole array is rewritten on every mutation; a
// process-local mutex guards the read-modify-write cycle.
type fileRepository struct {
	path string
	mu   sync.Mutex
}

// NewFile creates a new file-backed ledger repository. The ledger file
// is initialized to an empty array if it does not exist yet.
func NewFile(cfg *Config) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Path == "" {
		return nil, errors.New("ledger path cannot be empty")
	}

	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create ledger directory: %w", err)
		}
	}

	if _, err := os.Stat(cfg.Path); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(cfg.Path, []byte("[]"), 0o644); err != nil {
			return nil, fmt.Errorf("failed to initialize ledger file: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat ledger file: %w", err)
	}

	return &fileRepository{
		path: cfg.Path,
	}, nil
}

// ListRecords retrieves every record in the ledger
func (r *fileRepository) ListRecords(ctx context.Context, input *ListRecordsInput) (*ListRecordsOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}

	return &ListRecordsOutput{
		Records: records,
	}, nil
}

// WriteRecords replaces the ledger contents with the given records
func (r *fileRepository) WriteRecords(ctx context.Context, input *WriteRecordsInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	records := input.Records
	if records == nil {
		records = []*models.ScoreRecord{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ledger records: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write ledger file: %w", err)
	}

	return nil
}

func (r *fileRepository) load() ([]*models.ScoreRecord, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger file: %w", err)
	}

	records := []*models.ScoreRecord{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ledger records: %w", err)
	}

	return records, nil
}
