package marketplace

import (
	"math/big"
	"time"

	"github.com/nfty-labs/marketapi/base/ctx"
	"github.com/nfty-labs/marketapi/domain"
)

// Offer is a fixed-price listing of one asset for a bounded time window.
// At most one unresolved offer exists per asset. Resulted becomes true
// exactly once, on successful purchase.
type Offer struct {
	AssetId   domain.AssetId `json:"assetId"`
	Price     *big.Int       `json:"price"`
	StartTime time.Time      `json:"startTime"`
	EndTime   time.Time      `json:"endTime"`
	Resulted  bool           `json:"resulted"`
}

// Exists reports whether the record denotes a stored offer. Absent
// offers read back as the zero value, EndTime is the sentinel.
func (o *Offer) Exists() bool {
	return !o.EndTime.IsZero()
}

// Snapshot captures the mutable marketplace state touched by a single
// settlement so a failed one can be rolled back without partial effects.
type Snapshot struct {
	Offer     Offer
	HasOffer  bool
	Seller    domain.Address
	SaleCount int64
}

// Repo owns the Offer records and the per-seller sale history. No other
// component mutates them directly.
type Repo interface {
	// Create stores a new offer, failing with ErrDuplicateOffer while an
	// unresolved offer exists and ErrInvalidWindow when endTime <= now.
	Create(c ctx.Ctx, assetId domain.AssetId, price *big.Int, now time.Time, expiry time.Duration) (*Offer, error)
	// Cancel erases the offer record entirely so the asset can be
	// re-offered immediately. Resulted offers are history, not
	// cancellable, ErrAlreadyResulted.
	Cancel(c ctx.Ctx, assetId domain.AssetId) error
	// MarkResulted flips the resulted flag. Idempotency is the settlement
	// engine's responsibility.
	MarkResulted(c ctx.Ctx, assetId domain.AssetId) error
	// Get returns the zero-value Offer when absent, callers distinguish
	// absence with Offer.Exists.
	Get(c ctx.Ctx, assetId domain.AssetId) (*Offer, error)

	SaleCount(c ctx.Ctx, seller domain.Address) (int64, error)
	IncrementSaleCount(c ctx.Ctx, seller domain.Address) error

	Snapshot(c ctx.Ctx, assetId domain.AssetId, seller domain.Address) (*Snapshot, error)
	Restore(c ctx.Ctx, snap *Snapshot) error
}

// Receipt reports how a completed purchase settled.
type Receipt struct {
	ReceiptId         string          `json:"receiptId"`
	AssetId           domain.AssetId  `json:"assetId"`
	Buyer             domain.Address  `json:"buyer"`
	Seller            domain.Address  `json:"seller"`
	Designer          domain.Address  `json:"designer"`
	Price             *big.Int        `json:"price"`
	PlatformFee       *big.Int        `json:"platformFee"`
	Discount          *big.Int        `json:"discount"`
	SecondaryShare    domain.PerMille `json:"secondaryShare"`
	PrimaryPaid       *big.Int        `json:"primaryPaid"`
	SecondaryPaid     *big.Int        `json:"secondaryPaid"`
	PlatformPrimary   *big.Int        `json:"platformPrimary"`
	DesignerPrimary   *big.Int        `json:"designerPrimary"`
	PlatformSecondary *big.Int        `json:"platformSecondary"`
	DesignerSecondary *big.Int        `json:"designerSecondary"`
	SoldAt            time.Time       `json:"soldAt"`
}

type BuyRequest struct {
	AssetId        domain.AssetId
	SecondaryShare domain.PerMille
	SuppliedValue  *big.Int
	Buyer          domain.Principal
}

// UseCase is the offer lifecycle and settlement engine.
type UseCase interface {
	CreateOffer(c ctx.Ctx, caller domain.Principal, assetId domain.AssetId, price *big.Int) (*Offer, error)
	CreateOfferOnBehalfOfOwner(c ctx.Ctx, caller domain.Principal, assetId domain.AssetId, price *big.Int) (*Offer, error)
	BuyOffer(c ctx.Ctx, req *BuyRequest) (*Receipt, error)
	CancelOffer(c ctx.Ctx, caller domain.Principal, assetId domain.AssetId) error
	GetOffer(c ctx.Ctx, assetId domain.AssetId) (*Offer, error)
}
