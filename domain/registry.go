package domain

import (
	"math/big"

	"github.com/nfty-labs/marketapi/base/ctx"
)

// Asset is the registry's view of a listed asset. Creator is the
// original designer and receives sale proceeds net of platform fee.
type Asset struct {
	AssetId       AssetId `json:"assetId" bson:"assetId"`
	Owner         Address `json:"owner" bson:"owner"`
	Creator       Address `json:"creator" bson:"creator"`
	Approved      Address `json:"approved" bson:"approved"`
	LastSalePrice string  `json:"lastSalePrice" bson:"lastSalePrice"`
}

func (a *Asset) ToId() *AssetIdSelector {
	return &AssetIdSelector{AssetId: a.AssetId}
}

type AssetIdSelector struct {
	AssetId AssetId `bson:"assetId"`
}

// AssetRegistry owns asset ownership, approval state and the recorded
// sale price. Ownership transfer is atomic per asset.
type AssetRegistry interface {
	FindOne(c ctx.Ctx, id AssetId) (*Asset, error)
	Upsert(c ctx.Ctx, asset *Asset) error
	// IsApproved reports whether operator currently holds transfer
	// approval for the asset
	IsApproved(c ctx.Ctx, id AssetId, operator Address) (bool, error)
	RecordSalePrice(c ctx.Ctx, id AssetId, price *big.Int) error
	TransferOwnership(c ctx.Ctx, id AssetId, from, to Address) error
}
