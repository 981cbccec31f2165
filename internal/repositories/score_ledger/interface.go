package score_ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/hosogai/enkai/internal/repositories/score_ledger Repository

import (
	"context"
)

// Repository defines the interface for score record persistence
type Repository interface {
	// ListRecords retrieves every record in the ledger
	ListRecords(ctx context.Context, input *ListRecordsInput) (*ListRecordsOutput, error)

	// WriteRecords replaces the ledger contents with the given records
	WriteRecords(ctx context.Context, input *WriteRecordsInput) error
}
