package escrowservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/obralink/obralink/internal/domain"
	"github.com/obralink/obralink/internal/service/walletservice"
)

func NewMock(t *testing.T) (*Service, *MockLedger, *MockTxLog, *MockJobRepo, *MockTXManager) {
	ctrl := gomock.NewController(t)
	ledger := NewMockLedger(ctrl)
	txLog := NewMockTxLog(ctrl)
	jobRepo := NewMockJobRepo(ctrl)
	txManager := NewMockTXManager(ctrl)
	service := New(ledger, txLog, jobRepo, txManager)
	defer ctrl.Finish()
	return service, ledger, txLog, jobRepo, txManager
}

func passthroughTx(txManager *MockTXManager) {
	txManager.EXPECT().
		Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestTrancheAmounts(t *testing.T) {
	tests := []struct {
		name              string
		bidAmount         string
		expectedInitial   string
		expectedRemaining string
		expectedFee       string
	}{
		{
			name:              "Round amounts",
			bidAmount:         "100000.00",
			expectedInitial:   "30000.00",
			expectedRemaining: "70000.00",
			expectedFee:       "5000.00",
		},
		{
			name:              "Amount that needs rounding",
			bidAmount:         "33333.33",
			expectedInitial:   "10000.00",
			expectedRemaining: "23333.33",
			expectedFee:       "1666.67",
		},
		{
			name:              "Small amount",
			bidAmount:         "0.10",
			expectedInitial:   "0.03",
			expectedRemaining: "0.07",
			expectedFee:       "0.01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := d(tt.bidAmount)
			initial := InitialAmount(total)
			remaining := RemainingAmount(total)
			fee := FeeAmount(total)

			assert.True(t, d(tt.expectedInitial).Equal(initial), "initial: got %s", initial)
			assert.True(t, d(tt.expectedRemaining).Equal(remaining), "remaining: got %s", remaining)
			assert.True(t, d(tt.expectedFee).Equal(fee), "fee: got %s", fee)

			// everything the client paid ends up with the professional,
			// the platform, or back with the client
			net := remaining.Sub(fee)
			paidOut := initial.Add(net).Add(fee)
			diff := total.Sub(paidOut).Abs()
			assert.True(t, diff.LessThanOrEqual(d("0.02")), "conservation broken by %s", diff)
		})
	}
}

func TestLockInitialDeposit(t *testing.T) {
	const (
		jobID          = 12
		bidID          = 5
		clientWalletID = 4
		escrowWalletID = 1
		professionalID = 9
	)

	openJob := func() *domain.JobOffer {
		return &domain.JobOffer{ID: jobID, CreatorID: 3, Status: domain.JobStatusOpen}
	}
	activeBid := func() *domain.Bid {
		return &domain.Bid{ID: bidID, JobID: jobID, ProfessionalID: professionalID, Amount: d("100000.00"), EstimatedDays: 14, IsActive: true}
	}
	escrowWallet := &domain.Wallet{ID: escrowWalletID, Kind: domain.WalletKindEscrow}

	service, ledger, txLog, jobRepo, txManager := NewMock(t)
	passthroughTx(txManager)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Locks 30 percent and marks the winner",
			prepareMock: func() {
				jobRepo.EXPECT().GetByIDForUpdate(gomock.Any(), jobID).Return(openJob(), nil)
				jobRepo.EXPECT().GetBidByID(gomock.Any(), bidID).Return(activeBid(), nil)
				txLog.EXPECT().FindOpenDeposit(gomock.Any(), jobID, bidID, domain.TxTypeInitialDeposit).Return(nil, nil)
				ledger.EXPECT().GetOrCreateEscrowWallet(gomock.Any()).Return(escrowWallet, nil)
				ledger.EXPECT().Debit(gomock.Any(), clientWalletID, d("30000.00")).Return(&domain.Wallet{ID: clientWalletID}, nil)
				ledger.EXPECT().Credit(gomock.Any(), escrowWalletID, d("30000.00")).Return(escrowWallet, nil)
				txLog.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tx *domain.EscrowTransaction) (*domain.EscrowTransaction, error) {
						assert.Equal(t, domain.TxTypeInitialDeposit, tx.Type)
						assert.Equal(t, domain.TxStatusLocked, tx.Status)
						assert.True(t, d("30000.00").Equal(tx.Amount))
						assert.Equal(t, clientWalletID, tx.FromWalletID)
						assert.Equal(t, escrowWalletID, tx.ToWalletID)
						tx.ID = 31
						return tx, nil
					})
				jobRepo.EXPECT().MarkWinner(gomock.Any(), jobID, bidID, gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "Rejects a job that is not open",
			prepareMock: func() {
				job := openJob()
				job.Status = domain.JobStatusInProgress
				jobRepo.EXPECT().GetByIDForUpdate(gomock.Any(), jobID).Return(job, nil)
			},
			expectedError: &WrongJobStatusError{Status: domain.JobStatusInProgress, Want: domain.JobStatusOpen},
		},
		{
			name: "Rejects a second deposit",
			prepareMock: func() {
				jobRepo.EXPECT().GetByIDForUpdate(gomock.Any(), jobID).Return(openJob(), nil)
				jobRepo.EXPECT().GetBidByID(gomock.Any(), bidID).Return(activeBid(), nil)
				txLog.EXPECT().FindOpenDeposit(gomock.Any(), jobID, bidID, domain.TxTypeInitialDeposit).
					Return(&domain.EscrowTransaction{ID: 31, Status: domain.TxStatusLocked}, nil)
			},
			expectedError: ErrDuplicateDeposit,
		},
		{
			name: "Rejects a bid from another job",
			prepareMock: func() {
				jobRepo.EXPECT().GetByIDForUpdate(gomock.Any(), jobID).Return(openJob(), nil)
				bid := activeBid()
				bid.JobID = 99
				jobRepo.EXPECT().GetBidByID(gomock.Any(), bidID).Return(bid, nil)
			},
			expectedError: ErrInvalidBid,
		},
		{
			name: "Stops on insufficient funds before any ledger row",
			prepareMock: func() {
				jobRepo.EXPECT().GetByIDForUpdate(gomock.Any(), jobID).Return(openJob(), nil)
				jobRepo.EXPECT().GetBidByID(gomock.Any(), bidID).Return(activeBid(), nil)
				txLog.EXPECT().FindOpenDeposit(gomock.Any(), jobID, bidID, domain.TxTypeInitialDeposit).Return(nil, nil)
				ledger.EXPECT().GetOrCreateEscrowWallet(gomock.Any()).Return(escrowWallet, nil)
				ledger.EXPECT().Debit(gomock.Any(), clientWalletID, d("30000.00")).
					Return(nil, &walletservice.InsufficientFundsError{Required: d("30000.00"), Available: d("12000.00")})
			},
			expectedError: &walletservice.InsufficientFundsError{Required: d("30000.00"), Available: d("12000.00")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			deposit, err := service.LockInitialDeposit(context.Background(), jobID, bidID, clientWalletID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, deposit)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 31, deposit.ID)
			}
		})
	}
}

func TestReleaseInitialPayment(t *testing.T) {
	const (
		jobID          = 12
		bidID          = 5
		escrowWalletID = 1
		profWalletID   = 7
		professionalID = 9
	)

	now := time.Now()
	runningJob := func() *domain.JobOffer {
		return &domain.JobOffer{ID: jobID, Status: domain.JobStatusInProgress}
	}
	winningBid := func() *domain.Bid {
		return &domain.Bid{ID: bidID, JobID: jobID, ProfessionalID: professionalID, Amount: d("100000.00"), IsActive: true, IsWinner: true}
	}
	escrowWallet := &domain.Wallet{ID: escrowWalletID, Kind: domain.WalletKindEscrow}
	profWallet := &domain.Wallet{ID: profWalletID}
	openDeposit := func() *domain.EscrowTransaction {
		return &domain.EscrowTransaction{ID: 31, JobID: jobID, BidID: bidID, Type: domain.TxTypeInitialDeposit, Status: domain.TxStatusLocked, Amount: d("30000.00"), FromWalletID: 4, ToWalletID: escrowWalletID}
	}

	service, ledger, txLog, jobRepo, txManager := NewMock(t)
	passthroughTx(txManager)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Moves the locked tranche to the professional",
			prepareMock: func() {
				jobRepo.EXPECT().GetByIDForUpdate(gomock.Any(), jobID).Return(runningJob(), nil)
				jobRepo.EXPECT().GetBidByID(gomock.Any(), bidID).Return(winningBid(), nil)
				txLog.EXPECT().FindOpenDeposit(gomock.Any(), jobID, bidID, domain.TxTypeInitialDeposit).Return(openDeposit(), nil)
				ledger.EXPECT().GetOrCreateEscrowWallet(gomock.Any()).Return(escrowWallet, nil)
				ledger.EXPECT().GetOrCreateWallet(gomock.Any(), professionalID).Return(profWallet, nil)
				ledger.EXPECT().Debit(gomock.Any(), escrowWalletID, d("30000.00")).Return(escrowWallet, nil)
				ledger.EXPECT().Credit(gomock.Any(), profWalletID, d("30000.00")).Return(profWallet, nil)
				released := openDeposit()
				released.Status = domain.TxStatusReleased
				released.ReleasedAt = &now
				txLog.EXPECT().MarkReleased(gomock.Any(), 31).Return(released, nil)
				txLog.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tx *domain.EscrowTransaction) (*domain.EscrowTransaction, error) {
						assert.Equal(t, domain.TxTypeInitialRelease, tx.Type)
						assert.Equal(t, domain.TxStatusReleased, tx.Status)
						assert.True(t, d("30000.00").Equal(tx.Amount))
						assert.Equal(t, escrowWalletID, tx.FromWalletID)
						assert.Equal(t, profWalletID, tx.ToWalletID)
						return tx, nil
					})
			},
		},
		{
			name: "Refuses a bid that is not the winner",
			prepareMock: func() {
				jobRepo.EXPECT().GetByIDForUpdate(gomock.Any(), jobID).Return(runningJob(), nil)
				bid := winningBid()
				bid.IsWinner = false
				jobRepo.EXPECT().GetBidByID(gomock.Any(), bidID).Return(bid, nil)
			},
			expectedError: ErrNotWinningBid,
		},
		{
			name: "Reports an already released deposit",
			prepareMock: func() {
				jobRepo.EXPECT().GetByIDForUpdate(gomock.Any(), jobID).Return(runningJob(), nil)
				jobRepo.EXPECT().GetBidByID(gomock.Any(), bidID).Return(winningBid(), nil)
				txLog.EXPECT().FindOpenDeposit(gomock.Any(), jobID, bidID, domain.TxTypeInitialDeposit).Return(nil, nil)
				released := openDeposit()
				released.Status = domain.TxStatusReleased
				txLog.EXPECT().ListByJobAndBid(gomock.Any(), jobID, bidID).Return([]domain.EscrowTransaction{*released}, nil)
			},
			expectedError: ErrDuplicateRelease,
		},
		{
			name: "Reports missing funds when nothing was locked",
			prepareMock: func() {
				jobRepo.EXPECT().GetByIDForUpdate(gomock.Any(), jobID).Return(runningJob(), nil)
				jobRepo.EXPECT().GetBidByID(gomock.Any(), bidID).Return(winningBid(), nil)
				txLog.EXPECT().FindOpenDeposit(gomock.Any(), jobID, bidID, domain.TxTypeInitialDeposit).Return(nil, nil)
				txLog.EXPECT().ListByJobAndBid(gomock.Any(), jobID, bidID).Return(nil, nil)
			},
			expectedError: ErrNoLockedFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			release, err := service.ReleaseInitialPayment(context.Background(), jobID, bidID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, release)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, release)
			}
		})
	}
}

func TestReleaseFinalPayment(t *testing.T) {
	const (
		jobID          = 12
		bidID          = 5
		escrowWalletID = 1
		profWalletID   = 7
		professionalID = 9
	)

	now := time.Now()
	runningJob := func() *domain.JobOffer {
		return &domain.JobOffer{ID: jobID, Status: domain.JobStatusInProgress}
	}
	winningBid := &domain.Bid{ID: bidID, JobID: jobID, ProfessionalID: professionalID, Amount: d("100000.00"), IsActive: true, IsWinner: true}
	escrowWallet := &domain.Wallet{ID: escrowWalletID, Kind: domain.WalletKindEscrow}
	profWallet := &domain.Wallet{ID: profWalletID}
	remainingDeposit := &domain.EscrowTransaction{ID: 32, JobID: jobID, BidID: bidID, Type: domain.TxTypeRemainingDeposit, Status: domain.TxStatusLocked, Amount: d("70000.00"), FromWalletID: 4, ToWalletID: escrowWalletID}

	service, ledger, txLog, jobRepo, txManager := NewMock(t)
	passthroughTx(txManager)

	t.Run("Pays net amount, keeps the fee, closes the job", func(t *testing.T) {
		jobRepo.EXPECT().GetByIDForUpdate(gomock.Any(), jobID).Return(runningJob(), nil)
		jobRepo.EXPECT().GetBidByID(gomock.Any(), bidID).Return(winningBid, nil)
		txLog.EXPECT().FindOpenDeposit(gomock.Any(), jobID, bidID, domain.TxTypeRemainingDeposit).Return(remainingDeposit, nil)
		ledger.EXPECT().GetOrCreateEscrowWallet(gomock.Any()).Return(escrowWallet, nil)
		ledger.EXPECT().GetOrCreateWallet(gomock.Any(), professionalID).Return(profWallet, nil)
		ledger.EXPECT().Debit(gomock.Any(), escrowWalletID, d("70000.00")).Return(escrowWallet, nil)
		ledger.EXPECT().Credit(gomock.Any(), profWalletID, d("65000.00")).Return(profWallet, nil)
		ledger.EXPECT().Credit(gomock.Any(), escrowWalletID, d("5000.00")).Return(escrowWallet, nil)
		released := *remainingDeposit
		released.Status = domain.TxStatusReleased
		released.ReleasedAt = &now
		txLog.EXPECT().MarkReleased(gomock.Any(), 32).Return(&released, nil)
		txLog.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx *domain.EscrowTransaction) (*domain.EscrowTransaction, error) {
				assert.Equal(t, domain.TxTypeFinalRelease, tx.Type)
				assert.True(t, d("65000.00").Equal(tx.Amount))
				return tx, nil
			})
		txLog.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx *domain.EscrowTransaction) (*domain.EscrowTransaction, error) {
				assert.Equal(t, domain.TxTypePlatformFee, tx.Type)
				assert.True(t, d("5000.00").Equal(tx.Amount))
				return tx, nil
			})
		jobRepo.EXPECT().UpdateStatus(gomock.Any(), jobID, domain.JobStatusInProgress, domain.JobStatusClosed).Return(true, nil)

		release, fee, err := service.ReleaseFinalPayment(context.Background(), jobID, bidID)
		assert.NoError(t, err)
		assert.True(t, d("65000.00").Equal(release.Amount))
		assert.True(t, d("5000.00").Equal(fee.Amount))
	})

	t.Run("Refuses a closed job", func(t *testing.T) {
		job := runningJob()
		job.Status = domain.JobStatusClosed
		jobRepo.EXPECT().GetByIDForUpdate(gomock.Any(), jobID).Return(job, nil)

		_, _, err := service.ReleaseFinalPayment(context.Background(), jobID, bidID)
		var wrongStatus *WrongJobStatusError
		assert.ErrorAs(t, err, &wrongStatus)
	})
}

func TestRefundToClient(t *testing.T) {
	const (
		jobID          = 12
		bidID          = 5
		clientWalletID = 4
		escrowWalletID = 1
	)

	now := time.Now()
	runningJob := func() *domain.JobOffer {
		return &domain.JobOffer{ID: jobID, Status: domain.JobStatusInProgress}
	}
	activeBid := &domain.Bid{ID: bidID, JobID: jobID, ProfessionalID: 9, Amount: d("100000.00"), IsActive: true, IsWinner: true}
	escrowWallet := &domain.Wallet{ID: escrowWalletID, Kind: domain.WalletKindEscrow}

	service, ledger, txLog, jobRepo, txManager := NewMock(t)
	passthroughTx(txManager)

	t.Run("Returns both locked tranches and cancels the job", func(t *testing.T) {
		locked := []domain.EscrowTransaction{
			{ID: 31, Type: domain.TxTypeInitialDeposit, Status: domain.TxStatusLocked, Amount: d("30000.00"), FromWalletID: clientWalletID, ToWalletID: escrowWalletID},
			{ID: 32, Type: domain.TxTypeRemainingDeposit, Status: domain.TxStatusLocked, Amount: d("70000.00"), FromWalletID: clientWalletID, ToWalletID: escrowWalletID},
		}
		jobRepo.EXPECT().GetByIDForUpdate(gomock.Any(), jobID).Return(runningJob(), nil)
		jobRepo.EXPECT().GetBidByID(gomock.Any(), bidID).Return(activeBid, nil)
		txLog.EXPECT().ListLocked(gomock.Any(), jobID, bidID).Return(locked, nil)
		ledger.EXPECT().GetOrCreateEscrowWallet(gomock.Any()).Return(escrowWallet, nil)

		for _, deposit := range locked {
			deposit := deposit
			ledger.EXPECT().Debit(gomock.Any(), escrowWalletID, deposit.Amount).Return(escrowWallet, nil)
			ledger.EXPECT().Credit(gomock.Any(), clientWalletID, deposit.Amount).Return(&domain.Wallet{ID: clientWalletID}, nil)
			refunded := deposit
			refunded.Status = domain.TxStatusRefunded
			refunded.ReleasedAt = &now
			txLog.EXPECT().MarkRefunded(gomock.Any(), deposit.ID).Return(&refunded, nil)
			txLog.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, tx *domain.EscrowTransaction) (*domain.EscrowTransaction, error) {
					assert.Equal(t, domain.TxTypeRefund, tx.Type)
					assert.Equal(t, clientWalletID, tx.ToWalletID)
					return tx, nil
				})
		}
		jobRepo.EXPECT().UpdateStatus(gomock.Any(), jobID, domain.JobStatusInProgress, domain.JobStatusCancelled).Return(true, nil)

		refunds, err := service.RefundToClient(context.Background(), jobID, bidID, "work abandoned")
		assert.NoError(t, err)
		assert.Len(t, refunds, 2)
		total := refunds[0].Amount.Add(refunds[1].Amount)
		assert.True(t, d("100000.00").Equal(total))
	})

	t.Run("Errors when nothing is locked", func(t *testing.T) {
		jobRepo.EXPECT().GetByIDForUpdate(gomock.Any(), jobID).Return(runningJob(), nil)
		jobRepo.EXPECT().GetBidByID(gomock.Any(), bidID).Return(activeBid, nil)
		txLog.EXPECT().ListLocked(gomock.Any(), jobID, bidID).Return(nil, nil)

		_, err := service.RefundToClient(context.Background(), jobID, bidID, "dispute")
		assert.ErrorIs(t, err, ErrNoLockedFunds)
	})

	t.Run("Propagates repo errors", func(t *testing.T) {
		jobRepo.EXPECT().GetByIDForUpdate(gomock.Any(), jobID).Return(nil, errors.New("db error"))

		_, err := service.RefundToClient(context.Background(), jobID, bidID, "dispute")
		assert.EqualError(t, err, "db error")
	})
}

func TestLockRemainingAmount(t *testing.T) {
	const (
		jobID          = 12
		bidID          = 5
		clientWalletID = 4
		escrowWalletID = 1
	)

	runningJob := func() *domain.JobOffer {
		return &domain.JobOffer{ID: jobID, Status: domain.JobStatusInProgress}
	}
	winningBid := &domain.Bid{ID: bidID, JobID: jobID, ProfessionalID: 9, Amount: d("100000.00"), IsActive: true, IsWinner: true}
	escrowWallet := &domain.Wallet{ID: escrowWalletID, Kind: domain.WalletKindEscrow}

	service, ledger, txLog, jobRepo, txManager := NewMock(t)
	passthroughTx(txManager)

	t.Run("Locks the 70 percent tranche", func(t *testing.T) {
		jobRepo.EXPECT().GetByIDForUpdate(gomock.Any(), jobID).Return(runningJob(), nil)
		jobRepo.EXPECT().GetBidByID(gomock.Any(), bidID).Return(winningBid, nil)
		txLog.EXPECT().ListByJobAndBid(gomock.Any(), jobID, bidID).Return([]domain.EscrowTransaction{
			{ID: 31, Type: domain.TxTypeInitialDeposit, Status: domain.TxStatusReleased},
		}, nil)
		ledger.EXPECT().GetOrCreateEscrowWallet(gomock.Any()).Return(escrowWallet, nil)
		ledger.EXPECT().Debit(gomock.Any(), clientWalletID, d("70000.00")).Return(&domain.Wallet{ID: clientWalletID}, nil)
		ledger.EXPECT().Credit(gomock.Any(), escrowWalletID, d("70000.00")).Return(escrowWallet, nil)
		txLog.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx *domain.EscrowTransaction) (*domain.EscrowTransaction, error) {
				assert.Equal(t, domain.TxTypeRemainingDeposit, tx.Type)
				assert.Equal(t, domain.TxStatusLocked, tx.Status)
				assert.True(t, d("70000.00").Equal(tx.Amount))
				return tx, nil
			})

		deposit, err := service.LockRemainingAmount(context.Background(), jobID, bidID, clientWalletID)
		assert.NoError(t, err)
		assert.True(t, d("70000.00").Equal(deposit.Amount))
	})

	t.Run("Refuses a second remaining deposit", func(t *testing.T) {
		jobRepo.EXPECT().GetByIDForUpdate(gomock.Any(), jobID).Return(runningJob(), nil)
		jobRepo.EXPECT().GetBidByID(gomock.Any(), bidID).Return(winningBid, nil)
		txLog.EXPECT().ListByJobAndBid(gomock.Any(), jobID, bidID).Return([]domain.EscrowTransaction{
			{ID: 32, Type: domain.TxTypeRemainingDeposit, Status: domain.TxStatusLocked},
		}, nil)

		_, err := service.LockRemainingAmount(context.Background(), jobID, bidID, clientWalletID)
		assert.ErrorIs(t, err, ErrDuplicateDeposit)
	})
}
