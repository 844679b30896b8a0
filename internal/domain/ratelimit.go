package domain

import (
	"context"
	"time"
)

// RateLimitDecision resultado de consultar el limitador para una clave.
type RateLimitDecision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// RateLimiter ventana fija por clave. limit <= 0 desactiva el límite.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (RateLimitDecision, error)
}
