package data

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter paces outbound provider calls with a token bucket so a large
// ticker list cannot trip the provider's rate limits.
type Limiter struct {
	bucket *rate.Limiter
}

// NewLimiter builds a limiter allowing rps sustained requests per
// second with the given burst. A non-positive rps disables pacing.
func NewLimiter(rps float64, burst int) *Limiter {
	if rps <= 0 {
		return &Limiter{bucket: rate.NewLimiter(rate.Inf, 1)}
	}
	if burst < 1 {
		burst = 1
	}
	return &Limiter{bucket: rate.NewLimiter(rate.Limit(rps), burst)}
}

// Wait blocks until a request token is available or ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.bucket.Wait(ctx)
}
