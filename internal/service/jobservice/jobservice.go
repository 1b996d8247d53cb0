package jobservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/obralink/obralink/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, job *domain.JobOffer) (*domain.JobOffer, error)
	GetByID(ctx context.Context, jobID int) (*domain.JobOffer, error)
	List(ctx context.Context, status string) ([]domain.JobOffer, error)
	SetDelayed(ctx context.Context, jobID int, delayed bool) error
	FindDeadlineCandidates(ctx context.Context, limit uint32) ([]domain.JobOffer, error)
	CreateBid(ctx context.Context, bid *domain.Bid) (*domain.Bid, error)
	GetBidByID(ctx context.Context, bidID int) (*domain.Bid, error)
	ListBidsByJob(ctx context.Context, jobID int) ([]domain.Bid, error)
	FindActiveBid(ctx context.Context, jobID, professionalID int) (*domain.Bid, error)
	GetWinningBid(ctx context.Context, jobID int) (*domain.Bid, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var (
	ErrJobNotFound      = errors.New("job offer not found")
	ErrBidNotFound      = errors.New("bid not found")
	ErrJobNotOpen       = errors.New("job offer no longer accepts bids")
	ErrBidAlreadyExists = errors.New("professional already has an active bid on this job")
	ErrInvalidBid       = errors.New("bid amount and estimated days must be positive")
)

func (s *Service) CreateJob(ctx context.Context, creatorID int, title, description string, budget decimal.Decimal) (*domain.JobOffer, error) {
	if !budget.IsPositive() {
		return nil, errors.New("budget must be positive")
	}
	job := &domain.JobOffer{
		CreatorID:   creatorID,
		Title:       title,
		Description: description,
		Budget:      budget,
	}
	created, err := s.repo.Create(ctx, job)
	if err != nil {
		zap.L().Error("can't create job offer", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) GetJob(ctx context.Context, jobID int) (*domain.JobOffer, error) {
	job, err := s.repo.GetByID(ctx, jobID)
	if err != nil {
		zap.L().Error("can't get job offer", zap.Error(err))
		return nil, err
	}
	return job, nil
}

func (s *Service) ListJobs(ctx context.Context, status string) ([]domain.JobOffer, error) {
	jobs, err := s.repo.List(ctx, status)
	if err != nil {
		zap.L().Error("can't list job offers", zap.Error(err))
		return nil, err
	}
	return jobs, nil
}

func (s *Service) GetBid(ctx context.Context, bidID int) (*domain.Bid, error) {
	bid, err := s.repo.GetBidByID(ctx, bidID)
	if err != nil {
		zap.L().Error("can't get bid", zap.Error(err))
		return nil, err
	}
	return bid, nil
}

func (s *Service) ListBids(ctx context.Context, jobID int) ([]domain.Bid, error) {
	bids, err := s.repo.ListBidsByJob(ctx, jobID)
	if err != nil {
		zap.L().Error("can't list bids", zap.Error(err))
		return nil, err
	}
	return bids, nil
}

func (s *Service) GetWinningBid(ctx context.Context, jobID int) (*domain.Bid, error) {
	bid, err := s.repo.GetWinningBid(ctx, jobID)
	if err != nil {
		zap.L().Error("can't get winning bid", zap.Error(err))
		return nil, err
	}
	if bid == nil {
		return nil, ErrBidNotFound
	}
	return bid, nil
}

// CanReceiveBids reports whether the job is still collecting bids.
func (s *Service) CanReceiveBids(job *domain.JobOffer) bool {
	return job.Status == domain.JobStatusOpen
}

func (s *Service) SubmitBid(ctx context.Context, jobID, professionalID int, amount decimal.Decimal, estimatedDays int, pitch string) (*domain.Bid, error) {
	if !amount.IsPositive() || estimatedDays < 1 {
		return nil, ErrInvalidBid
	}

	job, err := s.repo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	if !s.CanReceiveBids(job) {
		zap.L().Info("bid rejected, job not open", zap.Int("jobID", jobID), zap.String("status", job.Status))
		return nil, ErrJobNotOpen
	}

	existing, err := s.repo.FindActiveBid(ctx, jobID, professionalID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrBidAlreadyExists
	}

	bid := &domain.Bid{
		JobID:          jobID,
		ProfessionalID: professionalID,
		Amount:         amount,
		EstimatedDays:  estimatedDays,
		Pitch:          pitch,
	}
	created, err := s.repo.CreateBid(ctx, bid)
	if err != nil {
		zap.L().Error("can't create bid", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// DaysDelayed returns whole days elapsed past the expected completion date,
// or 0 when the job is not running late.
func (s *Service) DaysDelayed(job *domain.JobOffer) int {
	if job.Status != domain.JobStatusInProgress || job.ExpectedCompletionAt == nil {
		return 0
	}
	overrun := time.Since(*job.ExpectedCompletionAt)
	if overrun <= 0 {
		return 0
	}
	return int(overrun.Hours() / 24)
}

// CheckDeadline compares now against the expected completion date and
// persists the delayed flag only when it changed.
func (s *Service) CheckDeadline(ctx context.Context, jobID int) (bool, error) {
	job, err := s.repo.GetByID(ctx, jobID)
	if err != nil {
		return false, err
	}
	if job == nil {
		return false, ErrJobNotFound
	}
	if job.Status != domain.JobStatusInProgress || job.ExpectedCompletionAt == nil {
		return false, nil
	}

	delayed := time.Now().After(*job.ExpectedCompletionAt)
	if delayed != job.IsDelayed {
		if err := s.repo.SetDelayed(ctx, jobID, delayed); err != nil {
			return false, err
		}
		zap.L().Info("job delayed flag changed", zap.Int("jobID", jobID), zap.Bool("delayed", delayed))
	}
	return delayed, nil
}

func (s *Service) FindDeadlineCandidates(ctx context.Context, limit uint32) ([]domain.JobOffer, error) {
	jobs, err := s.repo.FindDeadlineCandidates(ctx, limit)
	if err != nil {
		zap.L().Error("can't find deadline candidates", zap.Error(err))
		return nil, err
	}
	return jobs, nil
}
