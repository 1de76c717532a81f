// Package ratelimit throttles requests per client key, either inside the
// process or shared across replicas through Redis.
package ratelimit

import (
	"context"
	"time"
)

// Limiter decides whether one more request for key is allowed right now.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// WindowFor converts a token-bucket rate into the fixed window that admits
// burst requests at the same average rate.
func WindowFor(rps float64, burst int) time.Duration {
	if rps <= 0 || burst <= 0 {
		return time.Second
	}
	return time.Duration(float64(burst) / rps * float64(time.Second))
}
