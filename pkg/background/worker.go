package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"dashboard/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// Task - периодическая задача воркера.
type Task interface {
	// TTL - пауза между запусками. Неположительное значение отключает периодический запуск.
	TTL() time.Duration
	Do(context.Context) error
	Info() string
}

type workerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Worker struct {
	log   workerLogger
	tasks []Task
	wg    sync.WaitGroup
}

func New(log workerLogger, tasks ...Task) *Worker {
	return &Worker{
		log:   log,
		tasks: tasks,
	}
}

// Start прогоняет каждую задачу один раз синхронно и при успехе запускает
// периодическое выполнение до отмены ctx. Ошибка или паника на прогреве
// возвращается вызывающему, фоновые запуски тогда не стартуют.
func (w *Worker) Start(ctx context.Context) error {
	warmUp, warmUpCtx := errgroup.WithContext(ctx)
	for _, task := range w.tasks {
		warmUp.Go(func() error {
			w.log.Info("warm up background task", logger.NewField("task", task.Info()))
			return w.safeDo(warmUpCtx, task)
		})
	}

	if err := warmUp.Wait(); err != nil {
		return fmt.Errorf("warm up background tasks: %w", err)
	}

	for _, task := range w.tasks {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			w.loop(ctx, task)
		}()
	}
	return nil
}

// Wait блокируется до остановки всех периодических задач.
func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) loop(ctx context.Context, task Task) {
	ttl := task.TTL()
	if ttl <= 0 {
		w.log.Warn("non-positive TTL, periodic execution disabled",
			logger.NewField("task", task.Info()),
			logger.NewField("ttl", ttl),
		)
		return
	}

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("background task stopped", logger.NewField("task", task.Info()))
			return
		case <-ticker.C:
			if err := w.safeDo(ctx, task); err != nil {
				w.log.Error("background task failed",
					logger.NewField("task", task.Info()),
					logger.NewField("error", err),
				)
			}
		}
	}
}

func (w *Worker) safeDo(ctx context.Context, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			err = fmt.Errorf("task %s panicked: %v", task.Info(), r)
			w.log.Error("background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", string(stack)),
			)
		}
	}()
	return task.Do(ctx)
}
