package walletservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/obralink/obralink/internal/domain"
	"go.uber.org/zap"
)

type WalletRepo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Wallet, error)
	GetByID(ctx context.Context, walletID int) (*domain.Wallet, error)
	GetForUpdate(ctx context.Context, walletID int) (*domain.Wallet, error)
	CreateForUser(ctx context.Context, userID int) (*domain.Wallet, error)
	GetEscrow(ctx context.Context) (*domain.Wallet, error)
	CreateEscrow(ctx context.Context) (*domain.Wallet, error)
	Debit(ctx context.Context, walletID int, amount decimal.Decimal) (*domain.Wallet, error)
	Credit(ctx context.Context, walletID int, amount decimal.Decimal) (*domain.Wallet, error)
}

type EscrowTxRepo interface {
	LockedTotalByWallet(ctx context.Context, walletID int) (decimal.Decimal, error)
}

type Service struct {
	walletRepo   WalletRepo
	escrowTxRepo EscrowTxRepo
}

func New(walletRepo WalletRepo, escrowTxRepo EscrowTxRepo) *Service {
	return &Service{
		walletRepo:   walletRepo,
		escrowTxRepo: escrowTxRepo,
	}
}

var (
	ErrInvalidAmount  = errors.New("amount must be positive")
	ErrWalletNotFound = errors.New("wallet not found")
)

// InsufficientFundsError carries the exact shortfall so callers can tell the
// client how much more balance is needed, in any format they like.
type InsufficientFundsError struct {
	Required  decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: need %s", e.Shortfall())
}

func (e *InsufficientFundsError) Shortfall() decimal.Decimal {
	return e.Required.Sub(e.Available)
}

// EscrowSummary is the wallet screen breakdown: spendable balance plus the
// funds this wallet currently has locked in escrow deposits.
type EscrowSummary struct {
	Wallet *domain.Wallet
	Locked decimal.Decimal
}

func (s *Service) GetOrCreateWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	if wallet != nil {
		return wallet, nil
	}
	wallet, err = s.walletRepo.CreateForUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// GetOrCreateEscrowWallet resolves the singleton platform wallet, creating it
// with zero balance on first use.
func (s *Service) GetOrCreateEscrowWallet(ctx context.Context) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetEscrow(ctx)
	if err != nil {
		zap.L().Error("failed to get escrow wallet", zap.Error(err))
		return nil, err
	}
	if wallet != nil {
		return wallet, nil
	}
	wallet, err = s.walletRepo.CreateEscrow(ctx)
	if err != nil {
		zap.L().Error("failed to create escrow wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (s *Service) HasSufficientBalance(ctx context.Context, walletID int, amount decimal.Decimal) (bool, error) {
	wallet, err := s.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return false, err
	}
	if wallet == nil {
		return false, ErrWalletNotFound
	}
	return wallet.Balance.GreaterThanOrEqual(amount), nil
}

// Debit takes amount off the wallet. The balance guard lives in the UPDATE
// itself; when it rejects, the structured error reports the exact shortfall.
func (s *Service) Debit(ctx context.Context, walletID int, amount decimal.Decimal) (*domain.Wallet, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	wallet, err := s.walletRepo.Debit(ctx, walletID, amount)
	if err != nil {
		return nil, err
	}
	if wallet != nil {
		return wallet, nil
	}

	current, err := s.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrWalletNotFound
	}
	return nil, &InsufficientFundsError{Required: amount, Available: current.Balance}
}

func (s *Service) Credit(ctx context.Context, walletID int, amount decimal.Decimal) (*domain.Wallet, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	wallet, err := s.walletRepo.Credit(ctx, walletID, amount)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}
	return wallet, nil
}

// Deposit tops up a user wallet from an external card. Card validation is the
// handler's concern; the ledger only sees the credited amount.
func (s *Service) Deposit(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Wallet, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	wallet, err := s.GetOrCreateWallet(ctx, userID)
	if err != nil {
		return nil, err
	}
	credited, err := s.Credit(ctx, wallet.ID, amount)
	if err != nil {
		zap.L().Error("failed to credit deposit", zap.Error(err))
		return nil, err
	}
	zap.L().Info("wallet deposit", zap.Int("userID", userID), zap.String("amount", amount.String()))
	return credited, nil
}

func (s *Service) GetEscrowSummary(ctx context.Context, userID int) (*EscrowSummary, error) {
	wallet, err := s.GetOrCreateWallet(ctx, userID)
	if err != nil {
		return nil, err
	}
	locked, err := s.escrowTxRepo.LockedTotalByWallet(ctx, wallet.ID)
	if err != nil {
		zap.L().Error("failed to sum locked funds", zap.Error(err))
		return nil, err
	}
	return &EscrowSummary{
		Wallet: wallet,
		Locked: locked,
	}, nil
}
