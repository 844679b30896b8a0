// Package redis implementa el limitador de intentos de login sobre Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/trictux/trictux-api/internal/domain"
)

var _ domain.RateLimiter = (*RateLimiter)(nil)

// allowScript incrementa el contador de la ventana y fija su expiración en el primer hit.
var allowScript = goredis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
return {current, ttl}
`)

// RateLimiter ventana fija con contador atómico en Redis.
type RateLimiter struct {
	client *goredis.Client
	prefix string
	now    func() time.Time
}

// Options conexión y prefijo de claves.
type Options struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
	Now      func() time.Time
}

// NewRateLimiter crea el cliente. No abre conexión hasta el primer uso; ver Ping.
func NewRateLimiter(opts Options) (*RateLimiter, error) {
	if opts.Addr == "" {
		return nil, errors.New("redis: addr es obligatorio")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Prefix == "" {
		opts.Prefix = "trictux:ratelimit:"
	}
	client := goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	return &RateLimiter{client: client, prefix: opts.Prefix, now: opts.Now}, nil
}

// Ping verifica la conexión.
func (r *RateLimiter) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close libera el cliente.
func (r *RateLimiter) Close() error {
	return r.client.Close()
}

// Allow cuenta un intento para key dentro de la ventana.
func (r *RateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (domain.RateLimitDecision, error) {
	if limit <= 0 {
		return domain.RateLimitDecision{Allowed: true, Limit: limit, Remaining: limit}, nil
	}
	windowMillis := window.Milliseconds()
	if windowMillis <= 0 {
		windowMillis = 1000
	}
	result, err := allowScript.Run(ctx, r.client, []string{r.prefix + key}, windowMillis).Result()
	if err != nil {
		return domain.RateLimitDecision{}, fmt.Errorf("redis: rate limit: %w", err)
	}
	return decide(result, limit, r.now())
}

// decide interpreta la respuesta {current, ttl} del script.
func decide(result any, limit int, now time.Time) (domain.RateLimitDecision, error) {
	values, ok := result.([]any)
	if !ok || len(values) < 2 {
		return domain.RateLimitDecision{}, errors.New("redis: respuesta de rate limit inesperada")
	}
	current, ok := values[0].(int64)
	if !ok {
		return domain.RateLimitDecision{}, errors.New("redis: contador inválido")
	}
	ttlMillis, _ := values[1].(int64)
	resetAt := now
	if ttlMillis > 0 {
		resetAt = now.Add(time.Duration(ttlMillis) * time.Millisecond)
	}
	remaining := max(limit-int(current), 0)
	return domain.RateLimitDecision{
		Allowed:   current <= int64(limit),
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}, nil
}
