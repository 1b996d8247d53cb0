package escrowtxrepo

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

func scanTx(row pgx.Row) (*domain.EscrowTransaction, error) {
	var tx domain.EscrowTransaction
	err := row.Scan(
		&tx.ID, &tx.JobID, &tx.BidID, &tx.Type, &tx.Status, &tx.Amount,
		&tx.FromWalletID, &tx.ToWalletID, &tx.Description, &tx.CreatedAt, &tx.ReleasedAt,
	)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// Create appends a new ledger row. Status and ReleasedAt come from the caller:
// deposits enter LOCKED, releases/fees/refunds enter RELEASED with a timestamp.
func (r *Repository) Create(ctx context.Context, tx *domain.EscrowTransaction) (*domain.EscrowTransaction, error) {
	query := `
        INSERT INTO escrow_transactions (job_id, bid_id, type, status, amount, from_wallet_id, to_wallet_id, description, released_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, job_id, bid_id, type, status, amount, from_wallet_id, to_wallet_id, description, created_at, released_at
    `
	created, err := scanTx(r.db.QueryRow(ctx, query,
		tx.JobID, tx.BidID, tx.Type, tx.Status, tx.Amount,
		tx.FromWalletID, tx.ToWalletID, tx.Description, tx.ReleasedAt,
	))
	if err != nil {
		zap.L().Error("failed to create escrow transaction", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// FindOpenDeposit returns the unique LOCKED deposit of the given kind for the
// (job, bid) pair, locking it for the rest of the enclosing transaction.
func (r *Repository) FindOpenDeposit(ctx context.Context, jobID, bidID int, txType string) (*domain.EscrowTransaction, error) {
	query := `
        SELECT id, job_id, bid_id, type, status, amount, from_wallet_id, to_wallet_id, description, created_at, released_at
        FROM escrow_transactions
        WHERE job_id = $1 AND bid_id = $2 AND type = $3 AND status = 'LOCKED'
        FOR UPDATE
    `
	tx, err := scanTx(r.db.QueryRow(ctx, query, jobID, bidID, txType))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to find open deposit", zap.Error(err))
		return nil, err
	}
	return tx, nil
}

func (r *Repository) ListLocked(ctx context.Context, jobID, bidID int) ([]domain.EscrowTransaction, error) {
	query := `
        SELECT id, job_id, bid_id, type, status, amount, from_wallet_id, to_wallet_id, description, created_at, released_at
        FROM escrow_transactions
        WHERE job_id = $1 AND bid_id = $2 AND status = 'LOCKED'
        ORDER BY created_at ASC
        FOR UPDATE
    `
	return r.list(ctx, query, jobID, bidID)
}

func (r *Repository) ListByJobAndBid(ctx context.Context, jobID, bidID int) ([]domain.EscrowTransaction, error) {
	query := `
        SELECT id, job_id, bid_id, type, status, amount, from_wallet_id, to_wallet_id, description, created_at, released_at
        FROM escrow_transactions
        WHERE job_id = $1 AND bid_id = $2
        ORDER BY created_at ASC
    `
	return r.list(ctx, query, jobID, bidID)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.EscrowTransaction, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to list escrow transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.EscrowTransaction
	for rows.Next() {
		var tx domain.EscrowTransaction
		err := rows.Scan(
			&tx.ID, &tx.JobID, &tx.BidID, &tx.Type, &tx.Status, &tx.Amount,
			&tx.FromWalletID, &tx.ToWalletID, &tx.Description, &tx.CreatedAt, &tx.ReleasedAt,
		)
		if err != nil {
			zap.L().Error("failed to scan escrow transaction row", zap.Error(err))
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// MarkReleased transitions LOCKED -> RELEASED. Returns nil without error when
// the row is no longer LOCKED, so a concurrent duplicate release loses cleanly.
func (r *Repository) MarkReleased(ctx context.Context, txID int) (*domain.EscrowTransaction, error) {
	query := `
        UPDATE escrow_transactions
        SET status = 'RELEASED', released_at = now()
        WHERE id = $1 AND status = 'LOCKED'
        RETURNING id, job_id, bid_id, type, status, amount, from_wallet_id, to_wallet_id, description, created_at, released_at
    `
	tx, err := scanTx(r.db.QueryRow(ctx, query, txID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to mark transaction released", zap.Error(err))
		return nil, err
	}
	return tx, nil
}

func (r *Repository) MarkRefunded(ctx context.Context, txID int) (*domain.EscrowTransaction, error) {
	query := `
        UPDATE escrow_transactions
        SET status = 'REFUNDED', released_at = now()
        WHERE id = $1 AND status = 'LOCKED'
        RETURNING id, job_id, bid_id, type, status, amount, from_wallet_id, to_wallet_id, description, created_at, released_at
    `
	tx, err := scanTx(r.db.QueryRow(ctx, query, txID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to mark transaction refunded", zap.Error(err))
		return nil, err
	}
	return tx, nil
}

// LockedTotalByWallet sums the LOCKED deposits debited from the given wallet.
func (r *Repository) LockedTotalByWallet(ctx context.Context, walletID int) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM escrow_transactions
        WHERE from_wallet_id = $1 AND status = 'LOCKED'
    `
	var total decimal.Decimal
	err := r.db.QueryRow(ctx, query, walletID).Scan(&total)
	if err != nil {
		zap.L().Error("failed to sum locked funds", zap.Error(err))
		return decimal.Zero, err
	}
	return total, nil
}

// ListForReport returns every ledger row with the denormalized names the CSV
// export needs. The escrow wallet has no owner and reports as 'escrow'.
func (r *Repository) ListForReport(ctx context.Context) ([]domain.TransactionReportRow, error) {
	query := `
        SELECT t.id, t.job_id, t.bid_id, t.type, t.status, t.amount,
               t.from_wallet_id, t.to_wallet_id, t.description, t.created_at, t.released_at,
               j.title,
               COALESCE(uf.login, 'escrow'),
               COALESCE(ut.login, 'escrow')
        FROM escrow_transactions t
        JOIN job_offers j ON j.id = t.job_id
        JOIN wallets wf ON wf.id = t.from_wallet_id
        JOIN wallets wt ON wt.id = t.to_wallet_id
        LEFT JOIN users uf ON uf.id = wf.user_id
        LEFT JOIN users ut ON ut.id = wt.user_id
        ORDER BY t.created_at ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to list report rows", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var report []domain.TransactionReportRow
	for rows.Next() {
		var row domain.TransactionReportRow
		err := rows.Scan(
			&row.ID, &row.JobID, &row.BidID, &row.Type, &row.Status, &row.Amount,
			&row.FromWalletID, &row.ToWalletID, &row.Description, &row.CreatedAt, &row.ReleasedAt,
			&row.JobTitle, &row.FromOwner, &row.ToOwner,
		)
		if err != nil {
			zap.L().Error("failed to scan report row", zap.Error(err))
			return nil, err
		}
		report = append(report, row)
	}
	return report, nil
}
