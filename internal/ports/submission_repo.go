package ports

import (
	"context"

	"voicebank/internal/models"
)

type SubmissionRepository interface {
	// TryInsert writes the submission and its provenance in one transaction.
	// Returns ErrDuplicateContent when a row with the same content hash
	// already exists; the submission's ID and CreatedAt are filled on success.
	TryInsert(ctx context.Context, sub *models.AudioSubmission, prov *models.SubmissionProvenance) error

	GetByID(ctx context.Context, id int64) (*models.AudioSubmission, error)
	GetByHash(ctx context.Context, contentHash string) (*models.AudioSubmission, error)
	Count(ctx context.Context) (int, error)

	// Remove deletes a submission; its provenance row goes with it.
	Remove(ctx context.Context, id int64) (bool, error)
}
