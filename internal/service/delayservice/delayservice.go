package delayservice

import (
	"context"
	"errors"

	"github.com/obralink/obralink/internal/domain"
	"go.uber.org/zap"
)

type DelayRepo interface {
	Create(ctx context.Context, registry *domain.DelayRegistry) (*domain.DelayRegistry, error)
	GetByID(ctx context.Context, registryID int) (*domain.DelayRegistry, error)
	FindPendingByBid(ctx context.Context, bidID int) (*domain.DelayRegistry, error)
	MarkReviewed(ctx context.Context, registryID int, status string, reviewerID int, acceptedByClient bool) (*domain.DelayRegistry, error)
	SetPenaltyApplied(ctx context.Context, registryID int, applied bool) (bool, error)
	ListByProfessional(ctx context.Context, professionalID int) ([]domain.DelayRegistry, error)
	ListByCreator(ctx context.Context, creatorID int) ([]domain.DelayRegistry, error)
}

type ProfileRepo interface {
	ApplyPenalty(ctx context.Context, userID int, penalty float64) (*domain.UserProfile, error)
}

// Jobs is the lifecycle surface the engine reads from. DaysDelayed counts
// whole days past the expected completion stamp.
type Jobs interface {
	GetJob(ctx context.Context, jobID int) (*domain.JobOffer, error)
	GetBid(ctx context.Context, bidID int) (*domain.Bid, error)
	DaysDelayed(job *domain.JobOffer) int
}

type TXManager interface {
	Begin(ctx context.Context, fn func(ctx context.Context) error) error
}

var (
	ErrRegistryNotFound = errors.New("delay registry not found")
	ErrBidNotFound      = errors.New("bid not found")
	ErrNotWinningBid    = errors.New("only the winning bid can report a delay")
	ErrJobNotDelayed    = errors.New("job is not past its expected completion date")
	ErrAlreadyPending   = errors.New("a pending delay report already exists for this bid")
	ErrAlreadyReviewed  = errors.New("delay report was already reviewed")
	ErrNotReporter      = errors.New("only the reporting professional can file this delay")
)

// Penalty per rejected delay: 0.1 score points per day of delay, capped at a
// full point. The cap keeps a single bad job from wiping a reputation.
const (
	penaltyPerDay = 0.1
	penaltyCap    = 1.0
)

// PenaltyFor converts frozen delay days into a score deduction.
func PenaltyFor(daysDelayed int) float64 {
	penalty := float64(daysDelayed) * penaltyPerDay
	if penalty > penaltyCap {
		return penaltyCap
	}
	return penalty
}

type Service struct {
	delayRepo DelayRepo
	profiles  ProfileRepo
	jobs      Jobs
	txManager TXManager
}

func New(delayRepo DelayRepo, profiles ProfileRepo, jobs Jobs, txManager TXManager) *Service {
	return &Service{
		delayRepo: delayRepo,
		profiles:  profiles,
		jobs:      jobs,
		txManager: txManager,
	}
}

// CreateDelayReport files a justification for a missed deadline. The delay in
// days is computed once, here, and frozen in the registry row so a later
// review judges the delay as it stood when reported.
func (s *Service) CreateDelayReport(ctx context.Context, bidID, professionalID int, reason string) (*domain.DelayRegistry, error) {
	var registry *domain.DelayRegistry

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		bid, err := s.jobs.GetBid(ctx, bidID)
		if err != nil {
			return err
		}
		if bid == nil {
			return ErrBidNotFound
		}
		if !bid.IsWinner || !bid.IsActive {
			return ErrNotWinningBid
		}
		if bid.ProfessionalID != professionalID {
			return ErrNotReporter
		}

		job, err := s.jobs.GetJob(ctx, bid.JobID)
		if err != nil {
			return err
		}
		days := s.jobs.DaysDelayed(job)
		if days <= 0 {
			return ErrJobNotDelayed
		}

		pending, err := s.delayRepo.FindPendingByBid(ctx, bidID)
		if err != nil {
			return err
		}
		if pending != nil {
			return ErrAlreadyPending
		}

		registry, err = s.delayRepo.Create(ctx, &domain.DelayRegistry{
			BidID:       bidID,
			DaysDelayed: days,
			Reason:      reason,
			Status:      domain.DelayStatusPending,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("delay reported",
		zap.Int("bidID", bidID), zap.Int("daysDelayed", registry.DaysDelayed))
	return registry, nil
}

// AcceptDelay closes the report in the professional's favor. No penalty is
// applied, ever, on acceptance.
func (s *Service) AcceptDelay(ctx context.Context, registryID, reviewerID int) (*domain.DelayRegistry, error) {
	return s.review(ctx, registryID, reviewerID, domain.DelayStatusAccepted, true)
}

// RejectDelay closes the report against the professional and applies the
// score penalty exactly once.
func (s *Service) RejectDelay(ctx context.Context, registryID, reviewerID int) (*domain.DelayRegistry, error) {
	var reviewed *domain.DelayRegistry

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		reviewed, err = s.markReviewed(ctx, registryID, reviewerID, domain.DelayStatusRejected, false)
		if err != nil {
			return err
		}
		return s.applyPenalty(ctx, reviewed)
	})
	if err != nil {
		return nil, err
	}
	return reviewed, nil
}

func (s *Service) review(ctx context.Context, registryID, reviewerID int, status string, accepted bool) (*domain.DelayRegistry, error) {
	var reviewed *domain.DelayRegistry

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		reviewed, err = s.markReviewed(ctx, registryID, reviewerID, status, accepted)
		return err
	})
	if err != nil {
		return nil, err
	}
	return reviewed, nil
}

func (s *Service) markReviewed(ctx context.Context, registryID, reviewerID int, status string, accepted bool) (*domain.DelayRegistry, error) {
	registry, err := s.delayRepo.GetByID(ctx, registryID)
	if err != nil {
		return nil, err
	}
	if registry == nil {
		return nil, ErrRegistryNotFound
	}

	reviewed, err := s.delayRepo.MarkReviewed(ctx, registryID, status, reviewerID, accepted)
	if err != nil {
		return nil, err
	}
	if reviewed == nil {
		return nil, ErrAlreadyReviewed
	}

	zap.L().Info("delay reviewed",
		zap.Int("registryID", registryID), zap.String("status", status))
	return reviewed, nil
}

// applyPenalty deducts the score exactly once per registry. The flag flip is
// a compare-and-set, so a retried rejection cannot double-charge.
func (s *Service) applyPenalty(ctx context.Context, registry *domain.DelayRegistry) error {
	flipped, err := s.delayRepo.SetPenaltyApplied(ctx, registry.ID, true)
	if err != nil {
		return err
	}
	if !flipped {
		return nil
	}

	bid, err := s.jobs.GetBid(ctx, registry.BidID)
	if err != nil {
		return err
	}
	if bid == nil {
		return ErrBidNotFound
	}

	penalty := PenaltyFor(registry.DaysDelayed)
	profile, err := s.profiles.ApplyPenalty(ctx, bid.ProfessionalID, penalty)
	if err != nil {
		return err
	}

	zap.L().Info("penalty applied",
		zap.Int("registryID", registry.ID),
		zap.Int("userID", bid.ProfessionalID),
		zap.Float64("penalty", penalty),
		zap.Float64("score", profile.Score))
	return nil
}

func (s *Service) GetDelayReport(ctx context.Context, registryID int) (*domain.DelayRegistry, error) {
	registry, err := s.delayRepo.GetByID(ctx, registryID)
	if err != nil {
		return nil, err
	}
	if registry == nil {
		return nil, ErrRegistryNotFound
	}
	return registry, nil
}

func (s *Service) ListByProfessional(ctx context.Context, professionalID int) ([]domain.DelayRegistry, error) {
	return s.delayRepo.ListByProfessional(ctx, professionalID)
}

func (s *Service) ListByCreator(ctx context.Context, creatorID int) ([]domain.DelayRegistry, error) {
	return s.delayRepo.ListByCreator(ctx, creatorID)
}
