package walletrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

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

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var w domain.Wallet
	err := row.Scan(&w.ID, &w.UserID, &w.Kind, &w.Balance, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, kind, balance, created_at, updated_at
        FROM wallets
        WHERE user_id = $1
    `
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get wallet by user", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (r *Repository) GetByID(ctx context.Context, walletID int) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, kind, balance, created_at, updated_at
        FROM wallets
        WHERE id = $1
    `
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, walletID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// GetForUpdate locks the wallet row for the rest of the enclosing transaction.
func (r *Repository) GetForUpdate(ctx context.Context, walletID int) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, kind, balance, created_at, updated_at
        FROM wallets
        WHERE id = $1
        FOR UPDATE
    `
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, walletID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to lock wallet row", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (r *Repository) CreateForUser(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        INSERT INTO wallets (user_id, kind, balance)
        VALUES ($1, 'USER', 0)
        RETURNING id, user_id, kind, balance, created_at, updated_at
    `
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (r *Repository) GetEscrow(ctx context.Context) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, kind, balance, created_at, updated_at
        FROM wallets
        WHERE kind = 'ESCROW'
    `
	wallet, err := scanWallet(r.db.QueryRow(ctx, query))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get escrow wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// CreateEscrow inserts the singleton platform wallet. A concurrent creator
// wins the partial unique index; the loser falls back to reading the row.
func (r *Repository) CreateEscrow(ctx context.Context) (*domain.Wallet, error) {
	query := `
        INSERT INTO wallets (user_id, kind, balance)
        VALUES (NULL, 'ESCROW', 0)
        ON CONFLICT DO NOTHING
        RETURNING id, user_id, kind, balance, created_at, updated_at
    `
	wallet, err := scanWallet(r.db.QueryRow(ctx, query))
	if errors.Is(err, pgx.ErrNoRows) {
		return r.GetEscrow(ctx)
	}
	if err != nil {
		zap.L().Error("failed to create escrow wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// Debit decreases the balance, guarded against going negative. Returns nil
// without error when the guard rejects the update.
func (r *Repository) Debit(ctx context.Context, walletID int, amount decimal.Decimal) (*domain.Wallet, error) {
	query := `
        UPDATE wallets
        SET balance = balance - $1, updated_at = now()
        WHERE id = $2 AND balance >= $1
        RETURNING id, user_id, kind, balance, created_at, updated_at
    `
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, amount, walletID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to debit wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (r *Repository) Credit(ctx context.Context, walletID int, amount decimal.Decimal) (*domain.Wallet, error) {
	query := `
        UPDATE wallets
        SET balance = balance + $1, updated_at = now()
        WHERE id = $2
        RETURNING id, user_id, kind, balance, created_at, updated_at
    `
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, amount, walletID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to credit wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}
