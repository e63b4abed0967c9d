package provider

import (
	"errors"
	"time"

	"github.com/nfty-labs/marketapi/base/ctx"
)

var (
	ErrNotFound = errors.New("Cache not found")
)

// Provider is the raw byte-level cache a Service is layered on.
type Provider interface {
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Incr(c ctx.Ctx, key string, val int) (int64, time.Duration, error)
	Del(c ctx.Ctx, key string) error
}
