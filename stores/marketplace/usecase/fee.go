package usecase

import (
	"math/big"

	"github.com/nfty-labs/marketapi/domain"
	"github.com/nfty-labs/marketapi/domain/marketplace"
)

// perMilleOf computes amount*rate/1000 with integer division truncating
// toward zero.
func perMilleOf(amount *big.Int, rate domain.PerMille) *big.Int {
	res := new(big.Int).Mul(amount, rate.BigInt())
	return res.Quo(res, domain.Big1000)
}

// ComputeFee applies the per-mille fee schedule to a purchase. All
// arithmetic is integer big.Int, every division truncates toward zero
// and happens in the documented order so results are reproducible.
//
// The returned PlatformFee is already net of the secondary-pay discount.
// soldBefore selects between the initial and regular rate tiers.
func ComputeFee(cfg *marketplace.FeeConfig, price *big.Int, share domain.PerMille, swapRate *big.Int, soldBefore bool) (*marketplace.FeeBreakdown, error) {
	if price == nil || price.Sign() <= 0 {
		return nil, domain.ErrBadParamInput
	}
	if !share.Valid() {
		return nil, domain.ErrInvalidShare
	}

	rate := cfg.InitialRate
	if soldBefore {
		rate = cfg.RegularRate
	}

	platformFee := perMilleOf(price, rate)
	discount := big.NewInt(0)
	primaryDue := new(big.Int).Set(price)
	secondaryDue := big.NewInt(0)

	if share > 0 {
		// share-weighted first, rate-weighted second
		discount = perMilleOf(perMilleOf(price, share), cfg.DiscountRate)
		if discount.Cmp(platformFee) > 0 {
			return nil, domain.ErrFeeUnderflow
		}
		platformFee.Sub(platformFee, discount)

		secondaryExchangeValue := new(big.Int).Mul(price, swapRate)
		secondaryExchangeValue.Sub(secondaryExchangeValue, discount)

		secondaryDue = perMilleOf(secondaryExchangeValue, share)
		primaryDue = perMilleOf(price, domain.PerMille(domain.PerMilleDenominator)-share)
	}

	return &marketplace.FeeBreakdown{
		PlatformFee:  platformFee,
		Discount:     discount,
		PrimaryDue:   primaryDue,
		SecondaryDue: secondaryDue,
	}, nil
}

// splitSettlement distributes the dues between the platform recipient
// and the designer, proportionally to the primary/secondary payment
// split so both sides conserve funds exactly.
func splitSettlement(fee *marketplace.FeeBreakdown, share domain.PerMille, swapRate *big.Int) (platformPrimary, designerPrimary, platformSecondary, designerSecondary *big.Int) {
	platformPrimary = perMilleOf(fee.PlatformFee, domain.PerMille(domain.PerMilleDenominator)-share)
	designerPrimary = new(big.Int).Sub(fee.PrimaryDue, platformPrimary)

	platformSecondary = new(big.Int).Mul(fee.PlatformFee, swapRate)
	platformSecondary = perMilleOf(platformSecondary, share)
	designerSecondary = new(big.Int).Sub(fee.SecondaryDue, platformSecondary)
	return
}
