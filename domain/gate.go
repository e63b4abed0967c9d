package domain

import (
	"time"

	"github.com/nfty-labs/marketapi/base/ctx"
)

// AccessGate answers privilege questions about principals. Admins come
// from static configuration, agents are managed at runtime.
type AccessGate interface {
	IsAdmin(c ctx.Ctx, address Address) (bool, error)
	IsAgent(c ctx.Ctx, address Address) (bool, error)
}

// Agent is an operator account granted the agent privilege.
type Agent struct {
	Address   Address   `json:"address" bson:"address"`
	GrantedBy Address   `json:"grantedBy" bson:"grantedBy"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

type AgentRepo interface {
	FindOne(c ctx.Ctx, address Address) (*Agent, error)
	Upsert(c ctx.Ctx, agent *Agent) error
	Remove(c ctx.Ctx, address Address) error
}
