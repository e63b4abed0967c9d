package repository

import (
	bCtx "github.com/nfty-labs/marketapi/base/ctx"
	"github.com/nfty-labs/marketapi/base/log"
	"github.com/nfty-labs/marketapi/domain"
	"github.com/nfty-labs/marketapi/domain/marketplace"
	"github.com/nfty-labs/marketapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

func makeFindActivityQuery(optFns ...marketplace.FindActivityOptions) (bson.M, error) {
	opts, err := marketplace.GetFindActivityOptions(optFns...)
	if err != nil {
		return nil, err
	}

	qry := bson.M{}

	if opts.AssetId != nil {
		qry["assetId"] = *opts.AssetId
	}

	if opts.Account != nil {
		qry["$or"] = bson.A{
			bson.M{"account": *opts.Account},
			bson.M{"to": *opts.Account},
		}
	}

	if len(opts.Types) > 1 {
		qry["type"] = bson.M{"$in": opts.Types}
	} else if len(opts.Types) > 0 {
		qry["type"] = opts.Types[0]
	}

	return qry, nil
}

type activityRepo struct {
	q query.Mongo
}

func NewActivityRepo(q query.Mongo) marketplace.ActivityRepo {
	return &activityRepo{q: q}
}

func (r *activityRepo) Insert(ctx bCtx.Ctx, a *marketplace.Activity) error {
	if err := r.q.Insert(ctx, domain.TableActivities, a); err != nil {
		ctx.WithFields(log.Fields{
			"activity": a,
			"err":      err,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *activityRepo) FindAll(ctx bCtx.Ctx, optFns ...marketplace.FindActivityOptions) ([]marketplace.Activity, error) {
	opts, err := marketplace.GetFindActivityOptions(optFns...)
	if err != nil {
		ctx.WithField("err", err).Error("marketplace.GetFindActivityOptions failed")
		return nil, err
	}

	qry, err := makeFindActivityQuery(optFns...)
	if err != nil {
		ctx.WithField("err", err).Error("makeFindActivityQuery failed")
		return nil, err
	}

	offset := 0
	limit := 0

	if opts.Offset != nil {
		offset = *opts.Offset
	}

	if opts.Limit != nil {
		limit = *opts.Limit
	}

	res := []marketplace.Activity{}

	err = r.q.Search(ctx, domain.TableActivities, offset, limit, "-time", qry, &res)

	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).WithField("query", qry).Error("q.Search failed")
		return nil, err
	}

	return res, nil
}

func (r *activityRepo) Count(ctx bCtx.Ctx, optFns ...marketplace.FindActivityOptions) (int, error) {
	qry, err := makeFindActivityQuery(optFns...)
	if err != nil {
		ctx.WithField("err", err).Error("makeFindActivityQuery failed")
		return 0, err
	}

	cnt, err := r.q.Count(ctx, domain.TableActivities, qry)
	if err != nil {
		ctx.WithField("err", err).WithField("query", qry).Error("q.Count failed")
		return 0, err
	}

	return cnt, nil
}
