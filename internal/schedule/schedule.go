package schedule

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/obralink/obralink/internal/config"
	"github.com/obralink/obralink/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Jobs is the slice of the lifecycle service the sweeper drives.
type Jobs interface {
	FindDeadlineCandidates(ctx context.Context, limit uint32) ([]domain.JobOffer, error)
	CheckDeadline(ctx context.Context, jobID int) (bool, error)
}

var sweepingJobs sync.Map

// Service periodically reconciles the is_delayed flag on running jobs with
// their expected completion dates, so clients see delays without waiting for
// the professional to report one.
type Service struct {
	jobs          Jobs
	limit         uint32
	workerPool    WorkerPoolI
	sweepInterval time.Duration
}

func New(cfg *config.Config, jobs Jobs) *Service {
	return &Service{
		jobs:          jobs,
		limit:         1000,
		workerPool:    NewWorkerPool(10),
		sweepInterval: time.Duration(cfg.SweepInterval) * time.Second,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Deadline sweeper started", zap.Duration("interval", s.sweepInterval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping deadline sweeper")
			s.workerPool.Close()
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	jobs, err := s.jobs.FindDeadlineCandidates(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch jobs for deadline check", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, job := range jobs {
		job := job

		if _, loaded := sweepingJobs.LoadOrStore(job.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer sweepingJobs.Delete(job.ID)
				return s.checkJob(ctx, job)
			})
			if err != nil {
				sweepingJobs.Delete(job.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error sweeping deadlines", zap.Error(err))
	}
}

func (s *Service) checkJob(ctx context.Context, job domain.JobOffer) error {
	delayed, err := s.jobs.CheckDeadline(ctx, job.ID)
	if err != nil {
		return err
	}
	if delayed != job.IsDelayed {
		zap.L().Info("Job delay flag updated",
			zap.Int("jobID", job.ID), zap.Bool("delayed", delayed))
	}
	return nil
}
