package score_ledger

import "github.com/hosogai/enkai/internal/models"

// ListRecordsInput contains parameters for listing ledger records
type ListRecordsInput struct{}

// ListRecordsOutput contains the result of listing ledger records
type ListRecordsOutput struct {
	Records []*models.ScoreRecord
}

// WriteRecordsInput contains parameters for rewriting the ledger
type WriteRecordsInput struct {
	Records []*models.ScoreRecord
}
