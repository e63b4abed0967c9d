package repository

import (
	"sync"

	bCtx "github.com/nfty-labs/marketapi/base/ctx"
	"github.com/nfty-labs/marketapi/domain/marketplace"
)

// configRepo holds the single mutable FeeConfig behind a mutex. Update
// runs the mutation on a working copy, the stored value only changes
// when the mutation and the invariant check both pass.
type configRepo struct {
	mu  sync.RWMutex
	cfg marketplace.FeeConfig
}

func NewConfigRepo(initial marketplace.FeeConfig) marketplace.ConfigRepo {
	return &configRepo{cfg: initial}
}

func (r *configRepo) Get(ctx bCtx.Ctx) (marketplace.FeeConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.cfg, nil
}

func (r *configRepo) Update(ctx bCtx.Ctx, fn func(*marketplace.FeeConfig) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.cfg
	if err := fn(&next); err != nil {
		ctx.WithField("err", err).Warn("config update rejected")
		return err
	}
	r.cfg = next
	return nil
}
