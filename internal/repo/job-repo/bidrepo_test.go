package jobrepo

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

var bidColumns = []string{
	"id", "job_id", "professional_id", "amount", "estimated_days",
	"pitch", "is_active", "is_winner", "created_at", "updated_at",
}

func TestRepository_CreateBid(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name      string
		bid       *domain.Bid
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successful creation",
			bid: &domain.Bid{
				JobID:          12,
				ProfessionalID: 9,
				Amount:         decimal.RequireFromString("100000.00"),
				EstimatedDays:  14,
				Pitch:          "Done plenty of these",
			},
			mockSetup: func() {
				rows := pgxmock.NewRows(bidColumns).
					AddRow(5, 12, 9, decimal.RequireFromString("100000.00"), 14,
						"Done plenty of these", true, false, timeNow, timeNow)
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bids (job_id, professional_id, amount, estimated_days, pitch) VALUES ($1, $2, $3, $4, $5)")).
					WithArgs(12, 9, decimal.RequireFromString("100000.00"), 14, "Done plenty of these").
					WillReturnRows(rows)
			},
		},
		{
			name: "Database error",
			bid: &domain.Bid{
				JobID:          12,
				ProfessionalID: 9,
				Amount:         decimal.RequireFromString("100000.00"),
				EstimatedDays:  14,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bids")).
					WithArgs(12, 9, decimal.RequireFromString("100000.00"), 14, "").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			created, err := repo.CreateBid(context.Background(), tt.bid)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 5, created.ID)
				assert.True(t, created.IsActive)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetBidByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	t.Run("Bid exists", func(t *testing.T) {
		rows := pgxmock.NewRows(bidColumns).
			AddRow(5, 12, 9, decimal.RequireFromString("100000.00"), 14,
				"Done plenty of these", true, true, timeNow, timeNow)
		mock.ExpectQuery(regexp.QuoteMeta("FROM bids WHERE id = $1")).
			WithArgs(5).
			WillReturnRows(rows)

		bid, err := repo.GetBidByID(context.Background(), 5)
		assert.NoError(t, err)
		assert.Equal(t, 5, bid.ID)
		assert.Equal(t, 12, bid.JobID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Bid does not exist", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM bids WHERE id = $1")).
			WithArgs(99).
			WillReturnError(pgx.ErrNoRows)

		bid, err := repo.GetBidByID(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, bid)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_ListBidsByJob(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	t.Run("Active bids only", func(t *testing.T) {
		rows := pgxmock.NewRows(bidColumns).
			AddRow(5, 12, 9, decimal.RequireFromString("100000.00"), 14,
				"Done plenty of these", true, false, timeNow, timeNow).
			AddRow(6, 12, 10, decimal.RequireFromString("95000.00"), 21,
				"", true, false, timeNow, timeNow)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE job_id = $1 AND is_active = TRUE ORDER BY created_at DESC")).
			WithArgs(12).
			WillReturnRows(rows)

		bids, err := repo.ListBidsByJob(context.Background(), 12)
		assert.NoError(t, err)
		assert.Len(t, bids, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE job_id = $1 AND is_active = TRUE")).
			WithArgs(12).
			WillReturnError(errors.New("database error"))

		bids, err := repo.ListBidsByJob(context.Background(), 12)
		assert.Error(t, err)
		assert.Nil(t, bids)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FindActiveBid(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	t.Run("Professional already has a bid", func(t *testing.T) {
		rows := pgxmock.NewRows(bidColumns).
			AddRow(5, 12, 9, decimal.RequireFromString("100000.00"), 14,
				"Done plenty of these", true, false, timeNow, timeNow)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE job_id = $1 AND professional_id = $2 AND is_active = TRUE")).
			WithArgs(12, 9).
			WillReturnRows(rows)

		bid, err := repo.FindActiveBid(context.Background(), 12, 9)
		assert.NoError(t, err)
		assert.Equal(t, 5, bid.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No active bid", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE job_id = $1 AND professional_id = $2 AND is_active = TRUE")).
			WithArgs(12, 10).
			WillReturnError(pgx.ErrNoRows)

		bid, err := repo.FindActiveBid(context.Background(), 12, 10)
		assert.NoError(t, err)
		assert.Nil(t, bid)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_GetWinningBid(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	t.Run("Winner exists", func(t *testing.T) {
		rows := pgxmock.NewRows(bidColumns).
			AddRow(5, 12, 9, decimal.RequireFromString("100000.00"), 14,
				"Done plenty of these", true, true, timeNow, timeNow)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE job_id = $1 AND is_winner = TRUE")).
			WithArgs(12).
			WillReturnRows(rows)

		bid, err := repo.GetWinningBid(context.Background(), 12)
		assert.NoError(t, err)
		assert.True(t, bid.IsWinner)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No winner yet", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE job_id = $1 AND is_winner = TRUE")).
			WithArgs(12).
			WillReturnError(pgx.ErrNoRows)

		bid, err := repo.GetWinningBid(context.Background(), 12)
		assert.NoError(t, err)
		assert.Nil(t, bid)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
