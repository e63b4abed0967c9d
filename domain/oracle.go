package domain

import (
	"math/big"

	"github.com/nfty-labs/marketapi/base/ctx"
)

// SwapOracle supplies the secondary-units-per-primary-unit conversion
// rate used when part of a purchase is paid in the secondary currency.
// The production integration is pluggable, the bundled implementation
// is a fixed-rate placeholder until a live oracle is wired.
type SwapOracle interface {
	Rate(c ctx.Ctx) (*big.Int, error)
}
