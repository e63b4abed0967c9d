package domain

import (
	"math/big"
	"strings"
)

// Table is a mongo collection name
type Table string

const (
	TableAssets     Table = "assets"
	TableAgents     Table = "agents"
	TableActivities Table = "marketplace_activities"
)

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

// AssetId is the opaque identifier of a listed asset
type AssetId string

func (i AssetId) String() string {
	return string(i)
}

func (i AssetId) ToLower() AssetId {
	return AssetId(strings.ToLower(string(i)))
}

// PerMille is a proportion in thousandths, the denominator used by all
// fee rates and payment splits
type PerMille int64

const PerMilleDenominator int64 = 1000

func (p PerMille) Valid() bool {
	return p >= 0 && p <= PerMille(PerMilleDenominator)
}

func (p PerMille) BigInt() *big.Int {
	return big.NewInt(int64(p))
}

// Principal identifies a caller. IsContract is a capability tag supplied
// by the execution environment at token issuance, programmatic principals
// carry it and are barred from purchasing.
type Principal struct {
	Address    Address `json:"address"`
	IsContract bool    `json:"isContract"`
}

var (
	Big0             = big.NewInt(0)
	Big1000          = big.NewInt(PerMilleDenominator)
	DefaultSwapRate  = big.NewInt(1)
	PrimaryDecimals  = int32(18)
	SecondaryDecimal = int32(18)
)
