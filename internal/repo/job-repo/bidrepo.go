package jobrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/obralink/obralink/internal/domain"
	"go.uber.org/zap"
)

func scanBid(row pgx.Row) (*domain.Bid, error) {
	var bid domain.Bid
	err := row.Scan(
		&bid.ID, &bid.JobID, &bid.ProfessionalID, &bid.Amount, &bid.EstimatedDays,
		&bid.Pitch, &bid.IsActive, &bid.IsWinner, &bid.CreatedAt, &bid.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &bid, nil
}

func (r *Repository) CreateBid(ctx context.Context, bid *domain.Bid) (*domain.Bid, error) {
	query := `
        INSERT INTO bids (job_id, professional_id, amount, estimated_days, pitch)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, job_id, professional_id, amount, estimated_days, pitch, is_active, is_winner, created_at, updated_at
    `
	created, err := scanBid(r.db.QueryRow(ctx, query,
		bid.JobID, bid.ProfessionalID, bid.Amount, bid.EstimatedDays, bid.Pitch,
	))
	if err != nil {
		zap.L().Error("failed to create bid", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) GetBidByID(ctx context.Context, bidID int) (*domain.Bid, error) {
	query := `
        SELECT id, job_id, professional_id, amount, estimated_days, pitch, is_active, is_winner, created_at, updated_at
        FROM bids
        WHERE id = $1
    `
	bid, err := scanBid(r.db.QueryRow(ctx, query, bidID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get bid", zap.Error(err))
		return nil, err
	}
	return bid, nil
}

func (r *Repository) ListBidsByJob(ctx context.Context, jobID int) ([]domain.Bid, error) {
	query := `
        SELECT id, job_id, professional_id, amount, estimated_days, pitch, is_active, is_winner, created_at, updated_at
        FROM bids
        WHERE job_id = $1 AND is_active = TRUE
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		zap.L().Error("failed to list bids", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bids []domain.Bid
	for rows.Next() {
		var bid domain.Bid
		err := rows.Scan(
			&bid.ID, &bid.JobID, &bid.ProfessionalID, &bid.Amount, &bid.EstimatedDays,
			&bid.Pitch, &bid.IsActive, &bid.IsWinner, &bid.CreatedAt, &bid.UpdatedAt,
		)
		if err != nil {
			zap.L().Error("failed to scan bid row", zap.Error(err))
			return nil, err
		}
		bids = append(bids, bid)
	}
	return bids, nil
}

func (r *Repository) FindActiveBid(ctx context.Context, jobID, professionalID int) (*domain.Bid, error) {
	query := `
        SELECT id, job_id, professional_id, amount, estimated_days, pitch, is_active, is_winner, created_at, updated_at
        FROM bids
        WHERE job_id = $1 AND professional_id = $2 AND is_active = TRUE
    `
	bid, err := scanBid(r.db.QueryRow(ctx, query, jobID, professionalID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to find active bid", zap.Error(err))
		return nil, err
	}
	return bid, nil
}

func (r *Repository) GetWinningBid(ctx context.Context, jobID int) (*domain.Bid, error) {
	query := `
        SELECT id, job_id, professional_id, amount, estimated_days, pitch, is_active, is_winner, created_at, updated_at
        FROM bids
        WHERE job_id = $1 AND is_winner = TRUE
    `
	bid, err := scanBid(r.db.QueryRow(ctx, query, jobID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get winning bid", zap.Error(err))
		return nil, err
	}
	return bid, nil
}
