package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// Profile roles: PERSONA and CONSORCIO post jobs, OFICIO bids on them.
const (
	RolePersona   string = "PERSONA"
	RoleConsorcio string = "CONSORCIO"
	RoleOficio    string = "OFICIO"
)

type UserProfile struct {
	ID           int       `db:"id"`
	UserID       int       `db:"user_id"`
	Role         string    `db:"role"`
	Zone         string    `db:"zone"`
	Score        float64   `db:"score"`
	PenaltyCount int       `db:"penalty_count"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

const (
	WalletKindUser   string = "USER"
	WalletKindEscrow string = "ESCROW"
)

// Wallet holds a balance in the internal currency unit (2 decimal places).
// UserID is nil only for the singleton platform escrow wallet.
type Wallet struct {
	ID        int             `db:"id"`
	UserID    *int            `db:"user_id"`
	Kind      string          `db:"kind"`
	Balance   decimal.Decimal `db:"balance"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

const (
	JobStatusOpen       string = "OPEN"
	JobStatusInProgress string = "IN_PROGRESS"
	JobStatusClosed     string = "CLOSED"
	JobStatusCancelled  string = "CANCELLED"
)

type JobOffer struct {
	ID                   int             `db:"id"`
	CreatorID            int             `db:"creator_id"`
	Title                string          `db:"title"`
	Description          string          `db:"description"`
	Budget               decimal.Decimal `db:"budget"`
	Status               string          `db:"status"`
	IsDelayed            bool            `db:"is_delayed"`
	StartConfirmedAt     *time.Time      `db:"start_confirmed_at"`
	ExpectedCompletionAt *time.Time      `db:"expected_completion_at"`
	CreatedAt            time.Time       `db:"created_at"`
	UpdatedAt            time.Time       `db:"updated_at"`
}

type Bid struct {
	ID             int             `db:"id"`
	JobID          int             `db:"job_id"`
	ProfessionalID int             `db:"professional_id"`
	Amount         decimal.Decimal `db:"amount"`
	EstimatedDays  int             `db:"estimated_days"`
	Pitch          string          `db:"pitch"`
	IsActive       bool            `db:"is_active"`
	IsWinner       bool            `db:"is_winner"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

const (
	TxTypeInitialDeposit   string = "INITIAL_DEPOSIT"
	TxTypeRemainingDeposit string = "REMAINING_DEPOSIT"
	TxTypeInitialRelease   string = "INITIAL_RELEASE"
	TxTypeFinalRelease     string = "FINAL_RELEASE"
	TxTypePlatformFee      string = "PLATFORM_FEE"
	TxTypeRefund           string = "REFUND"
)

const (
	TxStatusLocked   string = "LOCKED"
	TxStatusReleased string = "RELEASED"
	TxStatusRefunded string = "REFUNDED"
)

// EscrowTransaction is an append-only ledger row. Only Status and ReleasedAt
// move after creation, and only forward: LOCKED -> RELEASED | REFUNDED.
type EscrowTransaction struct {
	ID           int             `db:"id"`
	JobID        int             `db:"job_id"`
	BidID        int             `db:"bid_id"`
	Type         string          `db:"type"`
	Status       string          `db:"status"`
	Amount       decimal.Decimal `db:"amount"`
	FromWalletID int             `db:"from_wallet_id"`
	ToWalletID   int             `db:"to_wallet_id"`
	Description  string          `db:"description"`
	CreatedAt    time.Time       `db:"created_at"`
	ReleasedAt   *time.Time      `db:"released_at"`
}

const (
	DelayStatusPending  string = "PENDING"
	DelayStatusAccepted string = "ACCEPTED"
	DelayStatusRejected string = "REJECTED"
)

// DelayRegistry is a professional's justification for a missed deadline.
// DaysDelayed is frozen at creation and never recomputed.
type DelayRegistry struct {
	ID               int        `db:"id"`
	BidID            int        `db:"bid_id"`
	DaysDelayed      int        `db:"days_delayed"`
	Reason           string     `db:"reason"`
	Status           string     `db:"status"`
	AcceptedByClient bool       `db:"accepted_by_client"`
	PenaltyApplied   bool       `db:"penalty_applied"`
	ReviewedBy       *int       `db:"reviewed_by"`
	ReviewedAt       *time.Time `db:"reviewed_at"`
	CreatedAt        time.Time  `db:"created_at"`
}

// TransactionReportRow carries the denormalized fields the CSV export needs
// so the read path does not re-derive business rules.
type TransactionReportRow struct {
	EscrowTransaction
	JobTitle  string `db:"job_title"`
	FromOwner string `db:"from_owner"`
	ToOwner   string `db:"to_owner"`
}
