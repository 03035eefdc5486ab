package infra

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"voicebank/internal/models"
	"voicebank/internal/ports"
)

const pgUniqueViolation = "23505"

type PostgresSubmissionRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresSubmissionRepo(pool *pgxpool.Pool) ports.SubmissionRepository {
	return &PostgresSubmissionRepo{pool: pool}
}

// TryInsert writes the submission row and its provenance row in a single
// transaction. The content-hash uniqueness is enforced by the database
// constraint, so a concurrent insert of the same content loses the race with
// a unique violation rather than producing a second row; both the pre-check
// hit and the violation surface as ports.ErrDuplicateContent.
func (r *PostgresSubmissionRepo) TryInsert(ctx context.Context, sub *models.AudioSubmission, prov *models.SubmissionProvenance) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin submit tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var existing int64
	err = tx.QueryRow(ctx,
		`SELECT id FROM audio_submissions WHERE content_hash = $1`,
		sub.ContentHash,
	).Scan(&existing)
	if err == nil {
		return ports.ErrDuplicateContent
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("check content hash: %w", err)
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO audio_submissions (title, encoded_audio, content_hash, transcript, description, sample_rate)
         VALUES ($1, $2, $3, $4, $5, $6)
         RETURNING id, created_at`,
		sub.Title,
		sub.EncodedAudio,
		sub.ContentHash,
		sub.Transcript,
		sub.Description,
		sub.SampleRate,
	).Scan(&sub.ID, &sub.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ports.ErrDuplicateContent
		}
		return fmt.Errorf("insert submission: %w", err)
	}

	prov.SubmissionID = sub.ID
	err = tx.QueryRow(ctx,
		`INSERT INTO submission_provenance (submission_id, ip_address, username, user_agent)
         VALUES ($1, $2, $3, $4)
         RETURNING id, recorded_at`,
		prov.SubmissionID,
		prov.IPAddress,
		prov.Username,
		prov.UserAgent,
	).Scan(&prov.ID, &prov.RecordedAt)
	if err != nil {
		return fmt.Errorf("insert provenance: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		if isUniqueViolation(err) {
			return ports.ErrDuplicateContent
		}
		return fmt.Errorf("commit submit tx: %w", err)
	}
	return nil
}

func (r *PostgresSubmissionRepo) GetByID(ctx context.Context, id int64) (*models.AudioSubmission, error) {
	return r.getOne(ctx,
		`SELECT id, title, encoded_audio, content_hash, transcript, description, sample_rate, created_at
         FROM audio_submissions WHERE id = $1`, id)
}

func (r *PostgresSubmissionRepo) GetByHash(ctx context.Context, contentHash string) (*models.AudioSubmission, error) {
	return r.getOne(ctx,
		`SELECT id, title, encoded_audio, content_hash, transcript, description, sample_rate, created_at
         FROM audio_submissions WHERE content_hash = $1`, contentHash)
}

func (r *PostgresSubmissionRepo) getOne(ctx context.Context, query string, arg any) (*models.AudioSubmission, error) {
	var sub models.AudioSubmission
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&sub.ID,
		&sub.Title,
		&sub.EncodedAudio,
		&sub.ContentHash,
		&sub.Transcript,
		&sub.Description,
		&sub.SampleRate,
		&sub.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get submission: %w", err)
	}
	return &sub, nil
}

func (r *PostgresSubmissionRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(1) FROM audio_submissions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count submissions: %w", err)
	}
	return n, nil
}

// Remove deletes a submission; the provenance row is removed by the cascade.
func (r *PostgresSubmissionRepo) Remove(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM audio_submissions WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete submission: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
