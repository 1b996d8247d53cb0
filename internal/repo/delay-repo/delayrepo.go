package delayrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/obralink/obralink/internal/domain"
	"github.com/obralink/obralink/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanRegistry(row pgx.Row) (*domain.DelayRegistry, error) {
	var d domain.DelayRegistry
	err := row.Scan(
		&d.ID, &d.BidID, &d.DaysDelayed, &d.Reason, &d.Status,
		&d.AcceptedByClient, &d.PenaltyApplied, &d.ReviewedBy, &d.ReviewedAt, &d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) Create(ctx context.Context, registry *domain.DelayRegistry) (*domain.DelayRegistry, error) {
	query := `
        INSERT INTO delay_registries (bid_id, days_delayed, reason, status)
        VALUES ($1, $2, $3, 'PENDING')
        RETURNING id, bid_id, days_delayed, reason, status, accepted_by_client, penalty_applied, reviewed_by, reviewed_at, created_at
    `
	created, err := scanRegistry(r.db.QueryRow(ctx, query, registry.BidID, registry.DaysDelayed, registry.Reason))
	if err != nil {
		zap.L().Error("failed to create delay registry", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, registryID int) (*domain.DelayRegistry, error) {
	query := `
        SELECT id, bid_id, days_delayed, reason, status, accepted_by_client, penalty_applied, reviewed_by, reviewed_at, created_at
        FROM delay_registries
        WHERE id = $1
    `
	registry, err := scanRegistry(r.db.QueryRow(ctx, query, registryID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get delay registry", zap.Error(err))
		return nil, err
	}
	return registry, nil
}

func (r *Repository) FindPendingByBid(ctx context.Context, bidID int) (*domain.DelayRegistry, error) {
	query := `
        SELECT id, bid_id, days_delayed, reason, status, accepted_by_client, penalty_applied, reviewed_by, reviewed_at, created_at
        FROM delay_registries
        WHERE bid_id = $1 AND status = 'PENDING'
        ORDER BY created_at DESC
        LIMIT 1
    `
	registry, err := scanRegistry(r.db.QueryRow(ctx, query, bidID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to find pending delay registry", zap.Error(err))
		return nil, err
	}
	return registry, nil
}

// MarkReviewed resolves a PENDING registry. Returns nil without error when the
// registry was already resolved, so review is a one-shot transition.
func (r *Repository) MarkReviewed(ctx context.Context, registryID int, status string, reviewerID int, acceptedByClient bool) (*domain.DelayRegistry, error) {
	query := `
        UPDATE delay_registries
        SET status = $2, reviewed_by = $3, accepted_by_client = $4, reviewed_at = now()
        WHERE id = $1 AND status = 'PENDING'
        RETURNING id, bid_id, days_delayed, reason, status, accepted_by_client, penalty_applied, reviewed_by, reviewed_at, created_at
    `
	registry, err := scanRegistry(r.db.QueryRow(ctx, query, registryID, status, reviewerID, acceptedByClient))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to mark delay registry reviewed", zap.Error(err))
		return nil, err
	}
	return registry, nil
}

// SetPenaltyApplied flips the penalty flag at most once. Reports whether this
// call won the flip.
func (r *Repository) SetPenaltyApplied(ctx context.Context, registryID int, applied bool) (bool, error) {
	query := `
        UPDATE delay_registries
        SET penalty_applied = $2
        WHERE id = $1 AND penalty_applied <> $2
    `
	tag, err := r.db.Exec(ctx, query, registryID, applied)
	if err != nil {
		zap.L().Error("failed to set penalty flag", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) ListByProfessional(ctx context.Context, professionalID int) ([]domain.DelayRegistry, error) {
	query := `
        SELECT d.id, d.bid_id, d.days_delayed, d.reason, d.status, d.accepted_by_client, d.penalty_applied, d.reviewed_by, d.reviewed_at, d.created_at
        FROM delay_registries d
        JOIN bids b ON b.id = d.bid_id
        WHERE b.professional_id = $1
        ORDER BY d.created_at DESC
    `
	return r.list(ctx, query, professionalID)
}

func (r *Repository) ListByCreator(ctx context.Context, creatorID int) ([]domain.DelayRegistry, error) {
	query := `
        SELECT d.id, d.bid_id, d.days_delayed, d.reason, d.status, d.accepted_by_client, d.penalty_applied, d.reviewed_by, d.reviewed_at, d.created_at
        FROM delay_registries d
        JOIN bids b ON b.id = d.bid_id
        JOIN job_offers j ON j.id = b.job_id
        WHERE j.creator_id = $1
        ORDER BY d.created_at DESC
    `
	return r.list(ctx, query, creatorID)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.DelayRegistry, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to list delay registries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var registries []domain.DelayRegistry
	for rows.Next() {
		var d domain.DelayRegistry
		err := rows.Scan(
			&d.ID, &d.BidID, &d.DaysDelayed, &d.Reason, &d.Status,
			&d.AcceptedByClient, &d.PenaltyApplied, &d.ReviewedBy, &d.ReviewedAt, &d.CreatedAt,
		)
		if err != nil {
			zap.L().Error("failed to scan delay registry row", zap.Error(err))
			return nil, err
		}
		registries = append(registries, d)
	}
	return registries, nil
}
