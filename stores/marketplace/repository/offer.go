package repository

import (
	"math/big"
	"sync"
	"time"

	bCtx "github.com/nfty-labs/marketapi/base/ctx"
	"github.com/nfty-labs/marketapi/base/log"
	"github.com/nfty-labs/marketapi/domain"
	"github.com/nfty-labs/marketapi/domain/marketplace"
)

// offerRepo keeps offers and the per-seller sale history in process
// memory under one lock, so every settlement sees and mutates a single
// consistent copy of the marketplace state. Snapshot and Restore give
// the settlement engine all-or-nothing semantics over that state.
type offerRepo struct {
	mu         sync.RWMutex
	offers     map[domain.AssetId]marketplace.Offer
	saleCounts map[domain.Address]int64
}

func NewOfferRepo() marketplace.Repo {
	return &offerRepo{
		offers:     make(map[domain.AssetId]marketplace.Offer),
		saleCounts: make(map[domain.Address]int64),
	}
}

func cloneOffer(o marketplace.Offer) marketplace.Offer {
	if o.Price != nil {
		o.Price = new(big.Int).Set(o.Price)
	}
	return o
}

func (r *offerRepo) Create(ctx bCtx.Ctx, assetId domain.AssetId, price *big.Int, now time.Time, expiry time.Duration) (*marketplace.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := assetId.ToLower()

	if existing, ok := r.offers[id]; ok && !existing.Resulted {
		ctx.WithField("assetId", id).Warn("offer already exists")
		return nil, domain.ErrDuplicateOffer
	}

	endTime := now.Add(expiry)
	if !endTime.After(now) {
		ctx.WithFields(log.Fields{
			"assetId": id,
			"expiry":  expiry,
		}).Warn("invalid offer window")
		return nil, domain.ErrInvalidWindow
	}

	offer := marketplace.Offer{
		AssetId:   id,
		Price:     new(big.Int).Set(price),
		StartTime: now,
		EndTime:   endTime,
		Resulted:  false,
	}
	r.offers[id] = offer

	res := cloneOffer(offer)
	return &res, nil
}

func (r *offerRepo) Cancel(ctx bCtx.Ctx, assetId domain.AssetId) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := assetId.ToLower()
	offer, ok := r.offers[id]
	if !ok {
		return domain.ErrOfferNotFound
	}
	if offer.Resulted {
		return domain.ErrAlreadyResulted
	}
	delete(r.offers, id)
	return nil
}

func (r *offerRepo) MarkResulted(ctx bCtx.Ctx, assetId domain.AssetId) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := assetId.ToLower()
	offer, ok := r.offers[id]
	if !ok {
		return domain.ErrOfferNotFound
	}
	offer.Resulted = true
	r.offers[id] = offer
	return nil
}

func (r *offerRepo) Get(ctx bCtx.Ctx, assetId domain.AssetId) (*marketplace.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	offer, ok := r.offers[assetId.ToLower()]
	if !ok {
		return &marketplace.Offer{}, nil
	}
	res := cloneOffer(offer)
	return &res, nil
}

func (r *offerRepo) SaleCount(ctx bCtx.Ctx, seller domain.Address) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.saleCounts[seller.ToLower()], nil
}

func (r *offerRepo) IncrementSaleCount(ctx bCtx.Ctx, seller domain.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.saleCounts[seller.ToLower()]++
	return nil
}

func (r *offerRepo) Snapshot(ctx bCtx.Ctx, assetId domain.AssetId, seller domain.Address) (*marketplace.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap := &marketplace.Snapshot{
		Seller:    seller.ToLower(),
		SaleCount: r.saleCounts[seller.ToLower()],
	}
	snap.Offer.AssetId = assetId.ToLower()
	if offer, ok := r.offers[assetId.ToLower()]; ok {
		snap.Offer = cloneOffer(offer)
		snap.HasOffer = true
	}
	return snap, nil
}

func (r *offerRepo) Restore(ctx bCtx.Ctx, snap *marketplace.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if snap.HasOffer {
		r.offers[snap.Offer.AssetId] = cloneOffer(snap.Offer)
	} else {
		delete(r.offers, snap.Offer.AssetId)
	}
	r.saleCounts[snap.Seller] = snap.SaleCount
	return nil
}
