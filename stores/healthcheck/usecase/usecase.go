package usecase

import (
	"github.com/nfty-labs/marketapi/base/ctx"
	hcdomain "github.com/nfty-labs/marketapi/domain/healthcheck"
)

type impl struct {
	repo hcdomain.HealthCheckRepo
}

// New creates the HealthCheckUsecase backed by the given repo
func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		repo: repo,
	}
}

func (im *impl) Check(context ctx.Ctx) error {
	return im.repo.PingDB(context)
}
