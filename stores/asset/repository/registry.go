package repository

import (
	"math/big"

	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/nfty-labs/marketapi/base/ctx"
	"github.com/nfty-labs/marketapi/base/database/mongoclient"
	"github.com/nfty-labs/marketapi/base/log"
	"github.com/nfty-labs/marketapi/domain"
	"github.com/nfty-labs/marketapi/service/query"
)

type assetRegistryRepo struct {
	q query.Mongo
}

func NewAssetRegistryRepo(q query.Mongo) domain.AssetRegistry {
	return &assetRegistryRepo{q: q}
}

func (r *assetRegistryRepo) FindOne(ctx bCtx.Ctx, id domain.AssetId) (*domain.Asset, error) {
	asset := &domain.Asset{}
	qry := bson.M{"assetId": id.ToLower()}
	if err := r.q.FindOne(ctx, domain.TableAssets, qry, asset); err == query.ErrNotFound {
		return nil, nil
	} else if err != nil {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return asset, nil
}

func (r *assetRegistryRepo) Upsert(ctx bCtx.Ctx, asset *domain.Asset) error {
	selector, err := mongoclient.MakeBsonM(asset.ToId())
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.q.Upsert(ctx, domain.TableAssets, selector, asset); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  asset.ToId(),
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (r *assetRegistryRepo) IsApproved(ctx bCtx.Ctx, id domain.AssetId, operator domain.Address) (bool, error) {
	asset, err := r.FindOne(ctx, id)
	if err != nil {
		return false, err
	}
	if asset == nil {
		return false, domain.ErrAssetNotFound
	}
	return asset.Approved.Equals(operator), nil
}

func (r *assetRegistryRepo) RecordSalePrice(ctx bCtx.Ctx, id domain.AssetId, price *big.Int) error {
	selector := bson.M{"assetId": id.ToLower()}
	update := bson.M{"lastSalePrice": price.String()}
	if err := r.q.Patch(ctx, domain.TableAssets, selector, update); err == query.ErrNotFound {
		return domain.ErrAssetNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}

func (r *assetRegistryRepo) TransferOwnership(ctx bCtx.Ctx, id domain.AssetId, from, to domain.Address) error {
	// the owner guard in the selector makes the handover atomic
	selector := bson.M{"assetId": id.ToLower(), "owner": from.ToLower()}
	update := bson.M{"owner": to.ToLower()}
	if err := r.q.Patch(ctx, domain.TableAssets, selector, update); err == query.ErrNotFound {
		return domain.ErrNotOwner
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"id":   id,
			"from": from,
			"to":   to,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}
