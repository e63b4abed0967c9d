package usecase

import (
	bCtx "github.com/nfty-labs/marketapi/base/ctx"
	"github.com/nfty-labs/marketapi/domain"
)

// gateImpl resolves admin privilege from static configuration and
// agent privilege from the agent collection.
type gateImpl struct {
	admins    map[domain.Address]struct{}
	agentRepo domain.AgentRepo
}

func NewAccessGate(adminAddresses []string, agentRepo domain.AgentRepo) domain.AccessGate {
	admins := make(map[domain.Address]struct{}, len(adminAddresses))
	for _, a := range adminAddresses {
		admins[domain.Address(a).ToLower()] = struct{}{}
	}
	return &gateImpl{
		admins:    admins,
		agentRepo: agentRepo,
	}
}

func (im *gateImpl) IsAdmin(ctx bCtx.Ctx, address domain.Address) (bool, error) {
	_, ok := im.admins[address.ToLower()]
	return ok, nil
}

func (im *gateImpl) IsAgent(ctx bCtx.Ctx, address domain.Address) (bool, error) {
	agent, err := im.agentRepo.FindOne(ctx, address)
	if err != nil {
		ctx.WithField("err", err).Error("agentRepo.FindOne failed")
		return false, err
	}
	return agent != nil, nil
}
