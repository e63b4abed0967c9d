package healthcheck

import (
	"github.com/nfty-labs/marketapi/base/ctx"
)

// HealthCheckRepo pings the underlying datastores
type HealthCheckRepo interface {
	PingDB(c ctx.Ctx) error
}

// HealthCheckUsecase represent the healthcheck's usecase
type HealthCheckUsecase interface {
	Check(c ctx.Ctx) error
}
