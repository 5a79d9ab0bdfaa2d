package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

// NotifyFunc вызывается перед каждой паузой между попытками.
type NotifyFunc func(err error, wait time.Duration)

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// 0 - без ограничения по количеству, только по MaxElapsedTime
	MaxRetries uint64

	// Если nil - ретраятся все ошибки, если не nil - только те где функция вернула true
	ShouldRetry ShouldRetryFunc

	Notify NotifyFunc
}

// Probe - конфиг для проверок доступности зависимостей при старте сервиса.
func Probe(initial, maxElapsed time.Duration) Config {
	return Config{
		InitialInterval: initial,
		MaxInterval:     30 * time.Second,
		MaxElapsedTime:  maxElapsed,
		Randomization:   0.5,
		Multiplier:      2,
	}
}
