package ai

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	DefaultRetryBaseDelay = time.Second
	DefaultMaxRetries     = 3
)

// RetryPolicy retries rate-limited calls with exponential backoff: BaseDelay,
// then doubling, for at most MaxRetries retries after the first attempt.
type RetryPolicy struct {
	BaseDelay  time.Duration
	MaxRetries int

	// OnRetry, when set, is called before each wait.
	OnRetry func(attempt int, delay time.Duration, err error)
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{BaseDelay: DefaultRetryBaseDelay, MaxRetries: DefaultMaxRetries}
}

// Do runs op until it succeeds, returns an error that is not rate limiting,
// exhausts the retry budget, or ctx is done.
func (p RetryPolicy) Do(ctx context.Context, op func(ctx context.Context) error) error {
	b := p.backOff()
	for attempt := 0; ; attempt++ {
		err := op(ctx)
		if err == nil {
			return nil
		}
		if !IsRateLimited(err) || attempt >= p.MaxRetries {
			return err
		}

		delay := b.NextBackOff()
		if p.OnRetry != nil {
			p.OnRetry(attempt+1, delay, err)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return errors.Join(err, ctx.Err())
		case <-timer.C:
		}
	}
}

func (p RetryPolicy) backOff() *backoff.ExponentialBackOff {
	base := p.BaseDelay
	if base <= 0 {
		base = DefaultRetryBaseDelay
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = base
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxInterval = base << 10
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

// IsRateLimited reports whether err signals HTTP 429 or an exhausted quota.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == http.StatusTooManyRequests {
		return true
	}
	if st, ok := status.FromError(err); ok && st.Code() == codes.ResourceExhausted {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Error 429") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED") ||
		strings.Contains(strings.ToLower(msg), "quota")
}
