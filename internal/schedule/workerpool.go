package schedule

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

type Task func() error

// WorkerPool bounds how many deadline checks run at once so a large sweep
// cannot exhaust database connections.
type WorkerPool struct {
	tasks     chan Task
	closeOnce sync.Once
}

func NewWorkerPool(size int) *WorkerPool {
	wp := &WorkerPool{tasks: make(chan Task, size)}
	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	for task := range wp.tasks {
		if err := task(); err != nil {
			zap.L().Error("Deadline check failed", zap.Error(err))
		}
	}
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.tasks <- task:
		return nil
	}
}

func (wp *WorkerPool) Close() {
	wp.closeOnce.Do(func() {
		close(wp.tasks)
	})
}
