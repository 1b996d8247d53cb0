package escrowservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/obralink/obralink/internal/domain"
	"go.uber.org/zap"
)

// Ledger is the wallet surface the orchestrator drives. Debit fails with
// walletservice.InsufficientFundsError before any state changes.
type Ledger interface {
	GetOrCreateWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	GetOrCreateEscrowWallet(ctx context.Context) (*domain.Wallet, error)
	Debit(ctx context.Context, walletID int, amount decimal.Decimal) (*domain.Wallet, error)
	Credit(ctx context.Context, walletID int, amount decimal.Decimal) (*domain.Wallet, error)
}

type TxLog interface {
	Create(ctx context.Context, tx *domain.EscrowTransaction) (*domain.EscrowTransaction, error)
	FindOpenDeposit(ctx context.Context, jobID, bidID int, txType string) (*domain.EscrowTransaction, error)
	ListLocked(ctx context.Context, jobID, bidID int) ([]domain.EscrowTransaction, error)
	ListByJobAndBid(ctx context.Context, jobID, bidID int) ([]domain.EscrowTransaction, error)
	MarkReleased(ctx context.Context, txID int) (*domain.EscrowTransaction, error)
	MarkRefunded(ctx context.Context, txID int) (*domain.EscrowTransaction, error)
	ListForReport(ctx context.Context) ([]domain.TransactionReportRow, error)
}

type JobRepo interface {
	GetByIDForUpdate(ctx context.Context, jobID int) (*domain.JobOffer, error)
	GetBidByID(ctx context.Context, bidID int) (*domain.Bid, error)
	MarkWinner(ctx context.Context, jobID, bidID int, start, expected time.Time) error
	UpdateStatus(ctx context.Context, jobID int, from, to string) (bool, error)
}

type TXManager interface {
	Begin(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the staged escrow protocol: lock 30%, release it on work
// start while locking the remaining 70%, release the remainder minus the 5%
// platform fee on completion, or refund whatever is still locked. Every step
// runs as one database transaction keyed on the locked job row.
type Service struct {
	ledger    Ledger
	txLog     TxLog
	jobRepo   JobRepo
	txManager TXManager
}

func New(ledger Ledger, txLog TxLog, jobRepo JobRepo, txManager TXManager) *Service {
	return &Service{
		ledger:    ledger,
		txLog:     txLog,
		jobRepo:   jobRepo,
		txManager: txManager,
	}
}

// Tranche shares of the total agreed price. All three are computed from
// bid.Amount with round-half-up to 2 decimals, never from a locked sub-amount.
var (
	initialShare   = decimal.RequireFromString("0.30")
	remainingShare = decimal.RequireFromString("0.70")
	feeShare       = decimal.RequireFromString("0.05")
)

var (
	ErrJobNotFound      = errors.New("job offer not found")
	ErrBidNotFound      = errors.New("bid not found")
	ErrInvalidBid       = errors.New("bid does not belong to this job or is not active")
	ErrNotWinningBid    = errors.New("bid is not the winning bid for this job")
	ErrDuplicateDeposit = errors.New("deposit of this kind is already recorded for the job")
	ErrDuplicateRelease = errors.New("funds were already released for this step")
	ErrNoLockedFunds    = errors.New("no locked funds found for this job and bid")
)

// WrongJobStatusError reports the state that blocked a workflow step, so the
// caller can explain what the job would need to be in.
type WrongJobStatusError struct {
	Status string
	Want   string
}

func (e *WrongJobStatusError) Error() string {
	return fmt.Sprintf("job is %s, operation requires %s", e.Status, e.Want)
}

func share(total, fraction decimal.Decimal) decimal.Decimal {
	return total.Mul(fraction).Round(2)
}

// InitialAmount is the 30% tranche locked when a bid is accepted.
func InitialAmount(bidAmount decimal.Decimal) decimal.Decimal {
	return share(bidAmount, initialShare)
}

// RemainingAmount is the 70% tranche locked when work starts.
func RemainingAmount(bidAmount decimal.Decimal) decimal.Decimal {
	return share(bidAmount, remainingShare)
}

// FeeAmount is the 5% platform commission, always a share of the total.
func FeeAmount(bidAmount decimal.Decimal) decimal.Decimal {
	return share(bidAmount, feeShare)
}

func (s *Service) lockJob(ctx context.Context, jobID int, want string) (*domain.JobOffer, error) {
	job, err := s.jobRepo.GetByIDForUpdate(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	if job.Status != want {
		return nil, &WrongJobStatusError{Status: job.Status, Want: want}
	}
	return job, nil
}

func (s *Service) getBid(ctx context.Context, jobID, bidID int) (*domain.Bid, error) {
	bid, err := s.jobRepo.GetBidByID(ctx, bidID)
	if err != nil {
		return nil, err
	}
	if bid == nil {
		return nil, ErrBidNotFound
	}
	if bid.JobID != jobID || !bid.IsActive {
		return nil, ErrInvalidBid
	}
	return bid, nil
}

func (s *Service) professionalWallet(ctx context.Context, bid *domain.Bid) (*domain.Wallet, error) {
	return s.ledger.GetOrCreateWallet(ctx, bid.ProfessionalID)
}

// LockInitialDeposit debits 30% of the bid amount from the client into escrow
// and marks the bid as the winner, moving the job to IN_PROGRESS. Financial
// state and job state change in the same transaction.
func (s *Service) LockInitialDeposit(ctx context.Context, jobID, bidID, clientWalletID int) (*domain.EscrowTransaction, error) {
	var deposit *domain.EscrowTransaction

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		job, err := s.lockJob(ctx, jobID, domain.JobStatusOpen)
		if err != nil {
			return err
		}
		bid, err := s.getBid(ctx, jobID, bidID)
		if err != nil {
			return err
		}

		open, err := s.txLog.FindOpenDeposit(ctx, jobID, bidID, domain.TxTypeInitialDeposit)
		if err != nil {
			return err
		}
		if open != nil {
			return ErrDuplicateDeposit
		}

		initial := InitialAmount(bid.Amount)
		escrow, err := s.ledger.GetOrCreateEscrowWallet(ctx)
		if err != nil {
			return err
		}

		if _, err := s.ledger.Debit(ctx, clientWalletID, initial); err != nil {
			return err
		}
		if _, err := s.ledger.Credit(ctx, escrow.ID, initial); err != nil {
			return err
		}

		deposit, err = s.txLog.Create(ctx, &domain.EscrowTransaction{
			JobID:        jobID,
			BidID:        bidID,
			Type:         domain.TxTypeInitialDeposit,
			Status:       domain.TxStatusLocked,
			Amount:       initial,
			FromWalletID: clientWalletID,
			ToWalletID:   escrow.ID,
			Description:  fmt.Sprintf("initial deposit (30%%) for job #%d", jobID),
		})
		if err != nil {
			return err
		}

		start := time.Now()
		expected := start.AddDate(0, 0, bid.EstimatedDays)
		if err := s.jobRepo.MarkWinner(ctx, job.ID, bid.ID, start, expected); err != nil {
			return err
		}

		zap.L().Info("initial deposit locked",
			zap.Int("jobID", jobID), zap.Int("bidID", bidID), zap.String("amount", initial.String()))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deposit, nil
}

// ReleaseInitialPayment moves the locked 30% from escrow to the professional.
// One logical release produces two ledger rows: the deposit flips to RELEASED
// and an INITIAL_RELEASE row records the payout.
func (s *Service) ReleaseInitialPayment(ctx context.Context, jobID, bidID int) (*domain.EscrowTransaction, error) {
	var release *domain.EscrowTransaction

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.lockJob(ctx, jobID, domain.JobStatusInProgress); err != nil {
			return err
		}
		bid, err := s.getBid(ctx, jobID, bidID)
		if err != nil {
			return err
		}
		if !bid.IsWinner {
			return ErrNotWinningBid
		}

		open, err := s.txLog.FindOpenDeposit(ctx, jobID, bidID, domain.TxTypeInitialDeposit)
		if err != nil {
			return err
		}
		if open == nil {
			return s.depositGoneErr(ctx, jobID, bidID, domain.TxTypeInitialDeposit)
		}

		escrow, err := s.ledger.GetOrCreateEscrowWallet(ctx)
		if err != nil {
			return err
		}
		profWallet, err := s.professionalWallet(ctx, bid)
		if err != nil {
			return err
		}

		if _, err := s.ledger.Debit(ctx, escrow.ID, open.Amount); err != nil {
			return err
		}
		if _, err := s.ledger.Credit(ctx, profWallet.ID, open.Amount); err != nil {
			return err
		}

		released, err := s.txLog.MarkReleased(ctx, open.ID)
		if err != nil {
			return err
		}
		if released == nil {
			return ErrDuplicateRelease
		}

		release, err = s.txLog.Create(ctx, &domain.EscrowTransaction{
			JobID:        jobID,
			BidID:        bidID,
			Type:         domain.TxTypeInitialRelease,
			Status:       domain.TxStatusReleased,
			Amount:       open.Amount,
			FromWalletID: escrow.ID,
			ToWalletID:   profWallet.ID,
			Description:  fmt.Sprintf("initial payment (30%%) released for job #%d", jobID),
			ReleasedAt:   released.ReleasedAt,
		})
		if err != nil {
			return err
		}

		zap.L().Info("initial payment released",
			zap.Int("jobID", jobID), zap.Int("bidID", bidID), zap.String("amount", open.Amount.String()))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return release, nil
}

// LockRemainingAmount debits the 70% tranche from the client into escrow once
// work is underway.
func (s *Service) LockRemainingAmount(ctx context.Context, jobID, bidID, clientWalletID int) (*domain.EscrowTransaction, error) {
	var deposit *domain.EscrowTransaction

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.lockJob(ctx, jobID, domain.JobStatusInProgress); err != nil {
			return err
		}
		bid, err := s.getBid(ctx, jobID, bidID)
		if err != nil {
			return err
		}
		if !bid.IsWinner {
			return ErrNotWinningBid
		}

		history, err := s.txLog.ListByJobAndBid(ctx, jobID, bidID)
		if err != nil {
			return err
		}
		for _, tx := range history {
			if tx.Type == domain.TxTypeRemainingDeposit {
				return ErrDuplicateDeposit
			}
		}

		remaining := RemainingAmount(bid.Amount)
		escrow, err := s.ledger.GetOrCreateEscrowWallet(ctx)
		if err != nil {
			return err
		}

		if _, err := s.ledger.Debit(ctx, clientWalletID, remaining); err != nil {
			return err
		}
		if _, err := s.ledger.Credit(ctx, escrow.ID, remaining); err != nil {
			return err
		}

		deposit, err = s.txLog.Create(ctx, &domain.EscrowTransaction{
			JobID:        jobID,
			BidID:        bidID,
			Type:         domain.TxTypeRemainingDeposit,
			Status:       domain.TxStatusLocked,
			Amount:       remaining,
			FromWalletID: clientWalletID,
			ToWalletID:   escrow.ID,
			Description:  fmt.Sprintf("remaining deposit (70%%) for job #%d", jobID),
		})
		if err != nil {
			return err
		}

		zap.L().Info("remaining amount locked",
			zap.Int("jobID", jobID), zap.Int("bidID", bidID), zap.String("amount", remaining.String()))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deposit, nil
}

// ReleaseFinalPayment pays the professional the locked remainder minus the 5%
// platform fee, retains the fee in escrow, and closes the job. Returns the
// FINAL_RELEASE and PLATFORM_FEE rows.
func (s *Service) ReleaseFinalPayment(ctx context.Context, jobID, bidID int) (*domain.EscrowTransaction, *domain.EscrowTransaction, error) {
	var release, feeTx *domain.EscrowTransaction

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		job, err := s.lockJob(ctx, jobID, domain.JobStatusInProgress)
		if err != nil {
			return err
		}
		bid, err := s.getBid(ctx, jobID, bidID)
		if err != nil {
			return err
		}
		if !bid.IsWinner {
			return ErrNotWinningBid
		}

		open, err := s.txLog.FindOpenDeposit(ctx, jobID, bidID, domain.TxTypeRemainingDeposit)
		if err != nil {
			return err
		}
		if open == nil {
			return s.depositGoneErr(ctx, jobID, bidID, domain.TxTypeRemainingDeposit)
		}

		fee := FeeAmount(bid.Amount)
		net := open.Amount.Sub(fee)

		escrow, err := s.ledger.GetOrCreateEscrowWallet(ctx)
		if err != nil {
			return err
		}
		profWallet, err := s.professionalWallet(ctx, bid)
		if err != nil {
			return err
		}

		if _, err := s.ledger.Debit(ctx, escrow.ID, open.Amount); err != nil {
			return err
		}
		if _, err := s.ledger.Credit(ctx, profWallet.ID, net); err != nil {
			return err
		}
		// the fee never leaves the platform, it flows straight back into escrow
		if _, err := s.ledger.Credit(ctx, escrow.ID, fee); err != nil {
			return err
		}

		released, err := s.txLog.MarkReleased(ctx, open.ID)
		if err != nil {
			return err
		}
		if released == nil {
			return ErrDuplicateRelease
		}

		release, err = s.txLog.Create(ctx, &domain.EscrowTransaction{
			JobID:        jobID,
			BidID:        bidID,
			Type:         domain.TxTypeFinalRelease,
			Status:       domain.TxStatusReleased,
			Amount:       net,
			FromWalletID: escrow.ID,
			ToWalletID:   profWallet.ID,
			Description:  fmt.Sprintf("final payment for job #%d", jobID),
			ReleasedAt:   released.ReleasedAt,
		})
		if err != nil {
			return err
		}

		feeTx, err = s.txLog.Create(ctx, &domain.EscrowTransaction{
			JobID:        jobID,
			BidID:        bidID,
			Type:         domain.TxTypePlatformFee,
			Status:       domain.TxStatusReleased,
			Amount:       fee,
			FromWalletID: escrow.ID,
			ToWalletID:   escrow.ID,
			Description:  fmt.Sprintf("platform fee (5%%) for job #%d", jobID),
			ReleasedAt:   released.ReleasedAt,
		})
		if err != nil {
			return err
		}

		moved, err := s.jobRepo.UpdateStatus(ctx, job.ID, domain.JobStatusInProgress, domain.JobStatusClosed)
		if err != nil {
			return err
		}
		if !moved {
			return &WrongJobStatusError{Status: job.Status, Want: domain.JobStatusInProgress}
		}

		zap.L().Info("final payment released",
			zap.Int("jobID", jobID), zap.Int("bidID", bidID),
			zap.String("net", net.String()), zap.String("fee", fee.String()))
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return release, feeTx, nil
}

// RefundToClient returns every still-locked deposit to the wallet it came
// from and cancels the job. Handles partial progress: one or both tranches
// may be locked when the dispute lands.
func (s *Service) RefundToClient(ctx context.Context, jobID, bidID int, reason string) ([]domain.EscrowTransaction, error) {
	var refunds []domain.EscrowTransaction

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		job, err := s.lockJob(ctx, jobID, domain.JobStatusInProgress)
		if err != nil {
			return err
		}
		if _, err := s.getBid(ctx, jobID, bidID); err != nil {
			return err
		}

		locked, err := s.txLog.ListLocked(ctx, jobID, bidID)
		if err != nil {
			return err
		}
		if len(locked) == 0 {
			return ErrNoLockedFunds
		}

		escrow, err := s.ledger.GetOrCreateEscrowWallet(ctx)
		if err != nil {
			return err
		}

		for _, deposit := range locked {
			if _, err := s.ledger.Debit(ctx, escrow.ID, deposit.Amount); err != nil {
				return err
			}
			if _, err := s.ledger.Credit(ctx, deposit.FromWalletID, deposit.Amount); err != nil {
				return err
			}

			refunded, err := s.txLog.MarkRefunded(ctx, deposit.ID)
			if err != nil {
				return err
			}
			if refunded == nil {
				return ErrDuplicateRelease
			}

			refund, err := s.txLog.Create(ctx, &domain.EscrowTransaction{
				JobID:        jobID,
				BidID:        bidID,
				Type:         domain.TxTypeRefund,
				Status:       domain.TxStatusReleased,
				Amount:       deposit.Amount,
				FromWalletID: escrow.ID,
				ToWalletID:   deposit.FromWalletID,
				Description:  fmt.Sprintf("refund of %s for job #%d: %s", deposit.Type, jobID, reason),
				ReleasedAt:   refunded.ReleasedAt,
			})
			if err != nil {
				return err
			}
			refunds = append(refunds, *refund)
		}

		moved, err := s.jobRepo.UpdateStatus(ctx, job.ID, domain.JobStatusInProgress, domain.JobStatusCancelled)
		if err != nil {
			return err
		}
		if !moved {
			return &WrongJobStatusError{Status: job.Status, Want: domain.JobStatusInProgress}
		}

		zap.L().Info("job refunded",
			zap.Int("jobID", jobID), zap.Int("bidID", bidID), zap.Int("deposits", len(refunds)))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return refunds, nil
}

// depositGoneErr tells apart "already released" from "never locked" for a
// missing open deposit.
func (s *Service) depositGoneErr(ctx context.Context, jobID, bidID int, txType string) error {
	history, err := s.txLog.ListByJobAndBid(ctx, jobID, bidID)
	if err != nil {
		return err
	}
	for _, tx := range history {
		if tx.Type == txType && tx.Status != domain.TxStatusLocked {
			return ErrDuplicateRelease
		}
	}
	return ErrNoLockedFunds
}

// TransactionsForJob exposes the ledger history for a (job, bid) pair.
func (s *Service) TransactionsForJob(ctx context.Context, jobID, bidID int) ([]domain.EscrowTransaction, error) {
	return s.txLog.ListByJobAndBid(ctx, jobID, bidID)
}

// TransactionReport returns the full ledger joined with job titles and wallet
// owners for the CSV export.
func (s *Service) TransactionReport(ctx context.Context) ([]domain.TransactionReportRow, error) {
	return s.txLog.ListForReport(ctx)
}
