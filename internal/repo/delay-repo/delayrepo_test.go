package delayrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
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

var registryColumns = []string{
	"id", "bid_id", "days_delayed", "reason", "status",
	"accepted_by_client", "penalty_applied", "reviewed_by", "reviewed_at", "created_at",
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	t.Run("Successful creation", func(t *testing.T) {
		rows := pgxmock.NewRows(registryColumns).
			AddRow(21, 5, 4, "supplier strike", "PENDING",
				false, false, (*int)(nil), (*time.Time)(nil), timeNow)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO delay_registries (bid_id, days_delayed, reason, status) VALUES ($1, $2, $3, 'PENDING')")).
			WithArgs(5, 4, "supplier strike").
			WillReturnRows(rows)

		created, err := repo.Create(context.Background(), &domain.DelayRegistry{
			BidID:       5,
			DaysDelayed: 4,
			Reason:      "supplier strike",
		})
		assert.NoError(t, err)
		assert.Equal(t, 21, created.ID)
		assert.Equal(t, "PENDING", created.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO delay_registries")).
			WithArgs(5, 4, "supplier strike").
			WillReturnError(errors.New("database error"))

		created, err := repo.Create(context.Background(), &domain.DelayRegistry{
			BidID:       5,
			DaysDelayed: 4,
			Reason:      "supplier strike",
		})
		assert.Error(t, err)
		assert.Nil(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	t.Run("Registry exists", func(t *testing.T) {
		rows := pgxmock.NewRows(registryColumns).
			AddRow(21, 5, 4, "supplier strike", "PENDING",
				false, false, (*int)(nil), (*time.Time)(nil), timeNow)
		mock.ExpectQuery(regexp.QuoteMeta("FROM delay_registries WHERE id = $1")).
			WithArgs(21).
			WillReturnRows(rows)

		registry, err := repo.GetByID(context.Background(), 21)
		assert.NoError(t, err)
		assert.Equal(t, 21, registry.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Registry does not exist", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM delay_registries WHERE id = $1")).
			WithArgs(99).
			WillReturnError(pgx.ErrNoRows)

		registry, err := repo.GetByID(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, registry)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FindPendingByBid(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	t.Run("Pending registry exists", func(t *testing.T) {
		rows := pgxmock.NewRows(registryColumns).
			AddRow(21, 5, 4, "supplier strike", "PENDING",
				false, false, (*int)(nil), (*time.Time)(nil), timeNow)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE bid_id = $1 AND status = 'PENDING' ORDER BY created_at DESC LIMIT 1")).
			WithArgs(5).
			WillReturnRows(rows)

		registry, err := repo.FindPendingByBid(context.Background(), 5)
		assert.NoError(t, err)
		assert.Equal(t, 21, registry.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Nothing pending", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE bid_id = $1 AND status = 'PENDING'")).
			WithArgs(5).
			WillReturnError(pgx.ErrNoRows)

		registry, err := repo.FindPendingByBid(context.Background(), 5)
		assert.NoError(t, err)
		assert.Nil(t, registry)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_MarkReviewed(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()
	reviewerID := 3

	t.Run("Resolves a pending registry", func(t *testing.T) {
		rows := pgxmock.NewRows(registryColumns).
			AddRow(21, 5, 4, "supplier strike", "ACCEPTED",
				true, false, &reviewerID, &timeNow, timeNow)
		mock.ExpectQuery(regexp.QuoteMeta("SET status = $2, reviewed_by = $3, accepted_by_client = $4, reviewed_at = now() WHERE id = $1 AND status = 'PENDING'")).
			WithArgs(21, "ACCEPTED", 3, true).
			WillReturnRows(rows)

		registry, err := repo.MarkReviewed(context.Background(), 21, "ACCEPTED", 3, true)
		assert.NoError(t, err)
		assert.Equal(t, "ACCEPTED", registry.Status)
		assert.True(t, registry.AcceptedByClient)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Already resolved", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1 AND status = 'PENDING'")).
			WithArgs(21, "REJECTED", 3, false).
			WillReturnError(pgx.ErrNoRows)

		registry, err := repo.MarkReviewed(context.Background(), 21, "REJECTED", 3, false)
		assert.NoError(t, err)
		assert.Nil(t, registry)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_SetPenaltyApplied(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Wins the flip", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("SET penalty_applied = $2 WHERE id = $1 AND penalty_applied <> $2")).
			WithArgs(21, true).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		flipped, err := repo.SetPenaltyApplied(context.Background(), 21, true)
		assert.NoError(t, err)
		assert.True(t, flipped)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Flag already set", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("SET penalty_applied = $2 WHERE id = $1 AND penalty_applied <> $2")).
			WithArgs(21, true).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		flipped, err := repo.SetPenaltyApplied(context.Background(), 21, true)
		assert.NoError(t, err)
		assert.False(t, flipped)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_ListByProfessional(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	t.Run("Returns the professional's registries", func(t *testing.T) {
		rows := pgxmock.NewRows(registryColumns).
			AddRow(21, 5, 4, "supplier strike", "PENDING",
				false, false, (*int)(nil), (*time.Time)(nil), timeNow)
		mock.ExpectQuery(regexp.QuoteMeta("JOIN bids b ON b.id = d.bid_id WHERE b.professional_id = $1")).
			WithArgs(9).
			WillReturnRows(rows)

		registries, err := repo.ListByProfessional(context.Background(), 9)
		assert.NoError(t, err)
		assert.Len(t, registries, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_ListByCreator(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	t.Run("Returns registries across the creator's jobs", func(t *testing.T) {
		rows := pgxmock.NewRows(registryColumns).
			AddRow(21, 5, 4, "supplier strike", "PENDING",
				false, false, (*int)(nil), (*time.Time)(nil), timeNow).
			AddRow(22, 6, 2, "material shortage", "ACCEPTED",
				true, false, (*int)(nil), (*time.Time)(nil), timeNow)
		mock.ExpectQuery(regexp.QuoteMeta("JOIN job_offers j ON j.id = b.job_id WHERE j.creator_id = $1")).
			WithArgs(3).
			WillReturnRows(rows)

		registries, err := repo.ListByCreator(context.Background(), 3)
		assert.NoError(t, err)
		assert.Len(t, registries, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE j.creator_id = $1")).
			WithArgs(3).
			WillReturnError(errors.New("database error"))

		registries, err := repo.ListByCreator(context.Background(), 3)
		assert.Error(t, err)
		assert.Nil(t, registries)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
