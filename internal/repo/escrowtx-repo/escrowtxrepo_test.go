package escrowtxrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/obralink/obralink/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var txColumns = []string{
	"id", "job_id", "bid_id", "type", "status", "amount",
	"from_wallet_id", "to_wallet_id", "description", "created_at", "released_at",
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	t.Run("Inserts a locked deposit", func(t *testing.T) {
		amount := decimal.RequireFromString("30000.00")
		rows := pgxmock.NewRows(txColumns).
			AddRow(31, 12, 5, "INITIAL_DEPOSIT", "LOCKED", amount, 4, 1, "initial deposit (30%) for job #12", timeNow, nil)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO escrow_transactions")).
			WithArgs(12, 5, "INITIAL_DEPOSIT", "LOCKED", amount, 4, 1, "initial deposit (30%) for job #12", (*time.Time)(nil)).
			WillReturnRows(rows)

		created, err := repo.Create(context.Background(), &domain.EscrowTransaction{
			JobID:        12,
			BidID:        5,
			Type:         domain.TxTypeInitialDeposit,
			Status:       domain.TxStatusLocked,
			Amount:       amount,
			FromWalletID: 4,
			ToWalletID:   1,
			Description:  "initial deposit (30%) for job #12",
		})
		assert.NoError(t, err)
		assert.Equal(t, 31, created.ID)
		assert.Equal(t, domain.TxStatusLocked, created.Status)
		assert.Nil(t, created.ReleasedAt)
	})

	t.Run("Unique index rejects a duplicate deposit", func(t *testing.T) {
		amount := decimal.RequireFromString("30000.00")
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO escrow_transactions")).
			WithArgs(12, 5, "INITIAL_DEPOSIT", "LOCKED", amount, 4, 1, "", (*time.Time)(nil)).
			WillReturnError(errors.New("duplicate key value violates unique constraint \"escrow_transactions_open_deposit\""))

		created, err := repo.Create(context.Background(), &domain.EscrowTransaction{
			JobID:        12,
			BidID:        5,
			Type:         domain.TxTypeInitialDeposit,
			Status:       domain.TxStatusLocked,
			Amount:       amount,
			FromWalletID: 4,
			ToWalletID:   1,
		})
		assert.Error(t, err)
		assert.Nil(t, created)
	})
}

func TestRepository_FindOpenDeposit(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Locked deposit exists",
			mockSetup: func() {
				rows := pgxmock.NewRows(txColumns).
					AddRow(31, 12, 5, "INITIAL_DEPOSIT", "LOCKED", decimal.RequireFromString("30000.00"), 4, 1, "", timeNow, nil)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE job_id = $1 AND bid_id = $2 AND type = $3 AND status = 'LOCKED' FOR UPDATE")).
					WithArgs(12, 5, "INITIAL_DEPOSIT").
					WillReturnRows(rows)
			},
			found: true,
		},
		{
			name: "No open deposit",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE job_id = $1 AND bid_id = $2 AND type = $3 AND status = 'LOCKED' FOR UPDATE")).
					WithArgs(12, 5, "INITIAL_DEPOSIT").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE job_id = $1 AND bid_id = $2 AND type = $3 AND status = 'LOCKED' FOR UPDATE")).
					WithArgs(12, 5, "INITIAL_DEPOSIT").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			tx, err := repo.FindOpenDeposit(context.Background(), 12, 5, domain.TxTypeInitialDeposit)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.NotNil(t, tx)
				assert.Equal(t, 31, tx.ID)
			} else {
				assert.Nil(t, tx)
			}
		})
	}
}

func TestRepository_MarkReleased(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	t.Run("Flips LOCKED to RELEASED", func(t *testing.T) {
		rows := pgxmock.NewRows(txColumns).
			AddRow(31, 12, 5, "INITIAL_DEPOSIT", "RELEASED", decimal.RequireFromString("30000.00"), 4, 1, "", timeNow, &timeNow)
		mock.ExpectQuery(regexp.QuoteMeta("SET status = 'RELEASED', released_at = now() WHERE id = $1 AND status = 'LOCKED'")).
			WithArgs(31).
			WillReturnRows(rows)

		tx, err := repo.MarkReleased(context.Background(), 31)
		assert.NoError(t, err)
		assert.Equal(t, domain.TxStatusReleased, tx.Status)
		assert.NotNil(t, tx.ReleasedAt)
	})

	t.Run("Loses cleanly when the row is no longer locked", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SET status = 'RELEASED', released_at = now() WHERE id = $1 AND status = 'LOCKED'")).
			WithArgs(31).
			WillReturnError(pgx.ErrNoRows)

		tx, err := repo.MarkReleased(context.Background(), 31)
		assert.NoError(t, err)
		assert.Nil(t, tx)
	})
}

func TestRepository_ListLocked(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	t.Run("Returns both tranches", func(t *testing.T) {
		rows := pgxmock.NewRows(txColumns).
			AddRow(31, 12, 5, "INITIAL_DEPOSIT", "LOCKED", decimal.RequireFromString("30000.00"), 4, 1, "", timeNow, nil).
			AddRow(32, 12, 5, "REMAINING_DEPOSIT", "LOCKED", decimal.RequireFromString("70000.00"), 4, 1, "", timeNow, nil)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE job_id = $1 AND bid_id = $2 AND status = 'LOCKED'")).
			WithArgs(12, 5).
			WillReturnRows(rows)

		txs, err := repo.ListLocked(context.Background(), 12, 5)
		assert.NoError(t, err)
		assert.Len(t, txs, 2)
		assert.Equal(t, domain.TxTypeInitialDeposit, txs[0].Type)
		assert.Equal(t, domain.TxTypeRemainingDeposit, txs[1].Type)
	})

	t.Run("Empty when nothing is locked", func(t *testing.T) {
		rows := pgxmock.NewRows(txColumns)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE job_id = $1 AND bid_id = $2 AND status = 'LOCKED'")).
			WithArgs(12, 5).
			WillReturnRows(rows)

		txs, err := repo.ListLocked(context.Background(), 12, 5)
		assert.NoError(t, err)
		assert.Empty(t, txs)
	})
}

func TestRepository_LockedTotalByWallet(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Sums locked deposits", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"coalesce"}).AddRow(decimal.RequireFromString("100000.00"))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(amount), 0) FROM escrow_transactions WHERE from_wallet_id = $1 AND status = 'LOCKED'")).
			WithArgs(4).
			WillReturnRows(rows)

		total, err := repo.LockedTotalByWallet(context.Background(), 4)
		assert.NoError(t, err)
		assert.True(t, decimal.RequireFromString("100000.00").Equal(total))
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(amount), 0) FROM escrow_transactions WHERE from_wallet_id = $1 AND status = 'LOCKED'")).
			WithArgs(4).
			WillReturnError(errors.New("database error"))

		total, err := repo.LockedTotalByWallet(context.Background(), 4)
		assert.Error(t, err)
		assert.True(t, decimal.Zero.Equal(total))
	})
}
