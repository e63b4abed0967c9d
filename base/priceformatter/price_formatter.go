package priceformatter

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// PriceFormatter renders raw integer currency amounts into display
// strings. Settlement math stays on big.Int, decimals are for humans
// and the activity feed only.
type PriceFormatter interface {
	FormatPrimary(value *big.Int) decimal.Decimal
	FormatSecondary(value *big.Int) decimal.Decimal
}

type impl struct {
	primaryDecimals   int32
	secondaryDecimals int32
}

func New(primaryDecimals, secondaryDecimals int32) PriceFormatter {
	return &impl{
		primaryDecimals:   primaryDecimals,
		secondaryDecimals: secondaryDecimals,
	}
}

func (f *impl) FormatPrimary(value *big.Int) decimal.Decimal {
	return decimal.NewFromBigInt(value, -f.primaryDecimals)
}

func (f *impl) FormatSecondary(value *big.Int) decimal.Decimal {
	return decimal.NewFromBigInt(value, -f.secondaryDecimals)
}
