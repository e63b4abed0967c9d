package marketplace

import (
	"math/big"
	"time"

	"github.com/nfty-labs/marketapi/base/ctx"
	"github.com/nfty-labs/marketapi/domain"
)

// FeeConfig is the process-wide marketplace configuration. Invariant,
// enforced on every mutation: DiscountRate < InitialRate and
// DiscountRate < RegularRate, so a fee can never go negative from the
// static configuration alone.
type FeeConfig struct {
	// InitialRate applies to a seller's first completed sale
	InitialRate domain.PerMille `json:"initialPlatformFeeRate"`
	// RegularRate applies once the seller has sold before
	RegularRate domain.PerMille `json:"regularPlatformFeeRate"`
	// DiscountRate reduces the platform's take when the buyer pays in
	// the secondary currency
	DiscountRate domain.PerMille `json:"secondaryPayDiscountRate"`
	// ExpiryDuration sets each new offer's endTime relative to creation
	ExpiryDuration time.Duration `json:"offerExpiryDuration"`

	Paused            bool           `json:"paused"`
	PlatformRecipient domain.Address `json:"platformFeeRecipient"`
}

// Validate checks the cross-field invariant.
func (c *FeeConfig) Validate() error {
	if c.DiscountRate >= c.InitialRate || c.DiscountRate >= c.RegularRate {
		return domain.ErrConfigInvariant
	}
	return nil
}

// ConfigRepo holds the single mutable FeeConfig. Update applies the
// mutation atomically, the stored value is untouched when fn errors.
type ConfigRepo interface {
	Get(c ctx.Ctx) (FeeConfig, error)
	Update(c ctx.Ctx, fn func(*FeeConfig) error) error
}

// FeeBreakdown is the output of the fee calculator. PlatformFee is net
// of the discount already.
type FeeBreakdown struct {
	PlatformFee  *big.Int
	Discount     *big.Int
	PrimaryDue   *big.Int
	SecondaryDue *big.Int
}

// AdminUseCase mutates the marketplace configuration. Every setter is
// gated on admin privilege and re-validates the FeeConfig invariant
// against the other current values before committing.
type AdminUseCase interface {
	GetConfig(c ctx.Ctx) (FeeConfig, error)
	UpdateInitialPlatformFee(c ctx.Ctx, caller domain.Principal, rate domain.PerMille) error
	UpdateRegularPlatformFee(c ctx.Ctx, caller domain.Principal, rate domain.PerMille) error
	UpdateDiscountToPayInSecondary(c ctx.Ctx, caller domain.Principal, rate domain.PerMille) error
	UpdateExpiryDuration(c ctx.Ctx, caller domain.Principal, d time.Duration) error
	UpdatePlatformFeeRecipient(c ctx.Ctx, caller domain.Principal, recipient domain.Address) error
	TogglePause(c ctx.Ctx, caller domain.Principal) (bool, error)
}
