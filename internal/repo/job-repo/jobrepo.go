package jobrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/obralink/obralink/internal/domain"
	"github.com/obralink/obralink/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanJob(row pgx.Row) (*domain.JobOffer, error) {
	var job domain.JobOffer
	err := row.Scan(
		&job.ID, &job.CreatorID, &job.Title, &job.Description, &job.Budget,
		&job.Status, &job.IsDelayed, &job.StartConfirmedAt, &job.ExpectedCompletionAt,
		&job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *Repository) Create(ctx context.Context, job *domain.JobOffer) (*domain.JobOffer, error) {
	query := `
        INSERT INTO job_offers (creator_id, title, description, budget, status)
        VALUES ($1, $2, $3, $4, 'OPEN')
        RETURNING id, creator_id, title, description, budget, status, is_delayed, start_confirmed_at, expected_completion_at, created_at, updated_at
    `
	created, err := scanJob(r.db.QueryRow(ctx, query, job.CreatorID, job.Title, job.Description, job.Budget))
	if err != nil {
		zap.L().Error("failed to create job offer", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, jobID int) (*domain.JobOffer, error) {
	query := `
        SELECT id, creator_id, title, description, budget, status, is_delayed, start_confirmed_at, expected_completion_at, created_at, updated_at
        FROM job_offers
        WHERE id = $1
    `
	job, err := scanJob(r.db.QueryRow(ctx, query, jobID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get job offer", zap.Error(err))
		return nil, err
	}
	return job, nil
}

// GetByIDForUpdate locks the job row so concurrent workflow steps on the same
// job serialize.
func (r *Repository) GetByIDForUpdate(ctx context.Context, jobID int) (*domain.JobOffer, error) {
	query := `
        SELECT id, creator_id, title, description, budget, status, is_delayed, start_confirmed_at, expected_completion_at, created_at, updated_at
        FROM job_offers
        WHERE id = $1
        FOR UPDATE
    `
	job, err := scanJob(r.db.QueryRow(ctx, query, jobID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to lock job offer row", zap.Error(err))
		return nil, err
	}
	return job, nil
}

func (r *Repository) List(ctx context.Context, status string) ([]domain.JobOffer, error) {
	query := `
        SELECT id, creator_id, title, description, budget, status, is_delayed, start_confirmed_at, expected_completion_at, created_at, updated_at
        FROM job_offers
        WHERE ($1 = '' OR status = $1)
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		zap.L().Error("failed to list job offers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.JobOffer
	for rows.Next() {
		var job domain.JobOffer
		err := rows.Scan(
			&job.ID, &job.CreatorID, &job.Title, &job.Description, &job.Budget,
			&job.Status, &job.IsDelayed, &job.StartConfirmedAt, &job.ExpectedCompletionAt,
			&job.CreatedAt, &job.UpdatedAt,
		)
		if err != nil {
			zap.L().Error("failed to scan job offer row", zap.Error(err))
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// UpdateStatus moves a job between states, guarded by the expected current
// state. Reports whether a row actually changed.
func (r *Repository) UpdateStatus(ctx context.Context, jobID int, from, to string) (bool, error) {
	query := `
        UPDATE job_offers
        SET status = $3, updated_at = now()
        WHERE id = $1 AND status = $2
    `
	tag, err := r.db.Exec(ctx, query, jobID, from, to)
	if err != nil {
		zap.L().Error("failed to update job status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// MarkWinner clears any previous winner flag, marks the bid as winning and
// moves the job to IN_PROGRESS with its schedule stamped, atomically.
func (r *Repository) MarkWinner(ctx context.Context, jobID, bidID int, start, expected time.Time) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		clear := `
            UPDATE bids
            SET is_winner = FALSE, updated_at = now()
            WHERE job_id = $1 AND is_winner = TRUE
        `
		if _, err := r.db.Exec(ctx, clear, jobID); err != nil {
			zap.L().Error("failed to clear winner flags", zap.Error(err))
			return err
		}

		win := `
            UPDATE bids
            SET is_winner = TRUE, updated_at = now()
            WHERE id = $1 AND job_id = $2
        `
		if _, err := r.db.Exec(ctx, win, bidID, jobID); err != nil {
			zap.L().Error("failed to mark winning bid", zap.Error(err))
			return err
		}

		job := `
            UPDATE job_offers
            SET status = 'IN_PROGRESS', start_confirmed_at = $2, expected_completion_at = $3, updated_at = now()
            WHERE id = $1 AND status = 'OPEN'
        `
		if _, err := r.db.Exec(ctx, job, jobID, start, expected); err != nil {
			zap.L().Error("failed to move job to IN_PROGRESS", zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) SetDelayed(ctx context.Context, jobID int, delayed bool) error {
	query := `
        UPDATE job_offers
        SET is_delayed = $2, updated_at = now()
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, jobID, delayed); err != nil {
		zap.L().Error("failed to set delayed flag", zap.Error(err))
		return err
	}
	return nil
}

// FindDeadlineCandidates returns IN_PROGRESS jobs whose delayed flag disagrees
// with the schedule, so the sweeper only writes when something changed.
func (r *Repository) FindDeadlineCandidates(ctx context.Context, limit uint32) ([]domain.JobOffer, error) {
	query := `
        SELECT id, creator_id, title, description, budget, status, is_delayed, start_confirmed_at, expected_completion_at, created_at, updated_at
        FROM job_offers
        WHERE status = 'IN_PROGRESS'
          AND expected_completion_at IS NOT NULL
          AND is_delayed <> (expected_completion_at < now())
        ORDER BY expected_completion_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("failed to find deadline candidates", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.JobOffer
	for rows.Next() {
		var job domain.JobOffer
		err := rows.Scan(
			&job.ID, &job.CreatorID, &job.Title, &job.Description, &job.Budget,
			&job.Status, &job.IsDelayed, &job.StartConfirmedAt, &job.ExpectedCompletionAt,
			&job.CreatedAt, &job.UpdatedAt,
		)
		if err != nil {
			zap.L().Error("failed to scan deadline candidate", zap.Error(err))
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}
