package token_bucket

import (
	"sync"
	"time"
)

type Limiter interface {
	Allow() bool
}

type Clock func() time.Time

type Option func(*TokenBucket)

// WithClock подменяет источник времени, используется в тестах.
func WithClock(clock Clock) Option {
	return func(t *TokenBucket) {
		t.now = clock
	}
}

// TokenBucket пропускает не больше capacity запросов подряд и восстанавливает
// refillRate токенов в секунду. Дробные токены копятся между вызовами.
type TokenBucket struct {
	mu         sync.Mutex
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
	now        Clock
}

func NewTokenBucket(capacity int, refillRate float64, opts ...Option) *TokenBucket {
	tb := &TokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(tb)
	}
	tb.lastRefill = tb.now()
	return tb
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

func (t *TokenBucket) refill() {
	now := t.now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	t.tokens = min(t.capacity, t.tokens+elapsed*t.refillRate)
	t.lastRefill = now
}
