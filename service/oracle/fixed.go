package oracle

import (
	"math/big"

	"github.com/nfty-labs/marketapi/base/ctx"
	"github.com/nfty-labs/marketapi/domain"
)

type fixedImpl struct {
	rate *big.Int
}

// NewFixed returns a SwapOracle answering with a constant
// secondary-per-primary multiplier. A rate of 1 means one primary unit
// swaps to one secondary unit.
func NewFixed(rate *big.Int) domain.SwapOracle {
	if rate == nil || rate.Sign() <= 0 {
		rate = domain.DefaultSwapRate
	}
	return &fixedImpl{rate: new(big.Int).Set(rate)}
}

func (im *fixedImpl) Rate(c ctx.Ctx) (*big.Int, error) {
	return new(big.Int).Set(im.rate), nil
}
