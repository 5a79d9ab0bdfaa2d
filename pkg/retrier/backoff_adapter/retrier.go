package backoff_adapter

import (
	"context"

	"dashboard/pkg/retrier"
	"github.com/cenkalti/backoff/v4"
)

type Retrier struct {
	config retrier.Config
}

func New(config retrier.Config) *Retrier {
	return &Retrier{config: config}
}

func (r *Retrier) ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error {
	var policy backoff.BackOff = backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(r.config.InitialInterval),
		backoff.WithMaxInterval(r.config.MaxInterval),
		backoff.WithMaxElapsedTime(r.config.MaxElapsedTime),
		backoff.WithRandomizationFactor(r.config.Randomization),
		backoff.WithMultiplier(r.config.Multiplier),
	)
	if r.config.MaxRetries > 0 {
		policy = backoff.WithMaxRetries(policy, r.config.MaxRetries)
	}

	operation := func() error {
		err := fn(ctx)
		if err != nil && r.config.ShouldRetry != nil && !r.config.ShouldRetry(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	if r.config.Notify != nil {
		return backoff.RetryNotify(operation, backoff.WithContext(policy, ctx), backoff.Notify(r.config.Notify))
	}
	return backoff.Retry(operation, backoff.WithContext(policy, ctx))
}
