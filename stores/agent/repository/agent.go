package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/nfty-labs/marketapi/base/ctx"
	"github.com/nfty-labs/marketapi/base/log"
	"github.com/nfty-labs/marketapi/domain"
	"github.com/nfty-labs/marketapi/service/query"
)

type agentRepo struct {
	q query.Mongo
}

func NewAgentRepo(q query.Mongo) domain.AgentRepo {
	return &agentRepo{q: q}
}

func (r *agentRepo) FindOne(ctx bCtx.Ctx, address domain.Address) (*domain.Agent, error) {
	agent := &domain.Agent{}
	qry := bson.M{"address": address.ToLower()}
	if err := r.q.FindOne(ctx, domain.TableAgents, qry, agent); err == query.ErrNotFound {
		return nil, nil
	} else if err != nil {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return agent, nil
}

func (r *agentRepo) Upsert(ctx bCtx.Ctx, agent *domain.Agent) error {
	selector := bson.M{"address": agent.Address.ToLower()}
	if err := r.q.Upsert(ctx, domain.TableAgents, selector, agent); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"agent": agent,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (r *agentRepo) Remove(ctx bCtx.Ctx, address domain.Address) error {
	selector := bson.M{"address": address.ToLower()}
	if err := r.q.Remove(ctx, domain.TableAgents, selector); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("q.Remove failed")
		return err
	}
	return nil
}
