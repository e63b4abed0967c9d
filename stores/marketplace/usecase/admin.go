package usecase

import (
	"time"

	bCtx "github.com/nfty-labs/marketapi/base/ctx"
	"github.com/nfty-labs/marketapi/domain"
	"github.com/nfty-labs/marketapi/domain/marketplace"
)

type AdminUseCaseCfg struct {
	ConfigRepo marketplace.ConfigRepo
	Gate       domain.AccessGate
}

type adminImpl struct {
	configRepo marketplace.ConfigRepo
	gate       domain.AccessGate
}

func NewAdminUseCase(cfg *AdminUseCaseCfg) marketplace.AdminUseCase {
	return &adminImpl{
		configRepo: cfg.ConfigRepo,
		gate:       cfg.Gate,
	}
}

func (im *adminImpl) requireAdmin(ctx bCtx.Ctx, caller domain.Principal) error {
	admin, err := im.gate.IsAdmin(ctx, caller.Address)
	if err != nil {
		ctx.WithField("err", err).Error("gate.IsAdmin failed")
		return err
	}
	if !admin {
		return domain.ErrNotAdmin
	}
	return nil
}

func (im *adminImpl) GetConfig(ctx bCtx.Ctx) (marketplace.FeeConfig, error) {
	return im.configRepo.Get(ctx)
}

func (im *adminImpl) UpdateInitialPlatformFee(ctx bCtx.Ctx, caller domain.Principal, rate domain.PerMille) error {
	if err := im.requireAdmin(ctx, caller); err != nil {
		return err
	}
	if !rate.Valid() {
		return domain.ErrBadParamInput
	}
	return im.configRepo.Update(ctx, func(cfg *marketplace.FeeConfig) error {
		cfg.InitialRate = rate
		return cfg.Validate()
	})
}

func (im *adminImpl) UpdateRegularPlatformFee(ctx bCtx.Ctx, caller domain.Principal, rate domain.PerMille) error {
	if err := im.requireAdmin(ctx, caller); err != nil {
		return err
	}
	if !rate.Valid() {
		return domain.ErrBadParamInput
	}
	return im.configRepo.Update(ctx, func(cfg *marketplace.FeeConfig) error {
		cfg.RegularRate = rate
		return cfg.Validate()
	})
}

func (im *adminImpl) UpdateDiscountToPayInSecondary(ctx bCtx.Ctx, caller domain.Principal, rate domain.PerMille) error {
	if err := im.requireAdmin(ctx, caller); err != nil {
		return err
	}
	if !rate.Valid() {
		return domain.ErrBadParamInput
	}
	return im.configRepo.Update(ctx, func(cfg *marketplace.FeeConfig) error {
		cfg.DiscountRate = rate
		return cfg.Validate()
	})
}

func (im *adminImpl) UpdateExpiryDuration(ctx bCtx.Ctx, caller domain.Principal, d time.Duration) error {
	if err := im.requireAdmin(ctx, caller); err != nil {
		return err
	}
	if d <= 0 {
		return domain.ErrInvalidWindow
	}
	return im.configRepo.Update(ctx, func(cfg *marketplace.FeeConfig) error {
		cfg.ExpiryDuration = d
		return nil
	})
}

func (im *adminImpl) UpdatePlatformFeeRecipient(ctx bCtx.Ctx, caller domain.Principal, recipient domain.Address) error {
	if err := im.requireAdmin(ctx, caller); err != nil {
		return err
	}
	if recipient.IsEmpty() {
		return domain.ErrInvalidAddress
	}
	return im.configRepo.Update(ctx, func(cfg *marketplace.FeeConfig) error {
		cfg.PlatformRecipient = recipient.ToLower()
		return nil
	})
}

func (im *adminImpl) TogglePause(ctx bCtx.Ctx, caller domain.Principal) (bool, error) {
	if err := im.requireAdmin(ctx, caller); err != nil {
		return false, err
	}
	paused := false
	err := im.configRepo.Update(ctx, func(cfg *marketplace.FeeConfig) error {
		cfg.Paused = !cfg.Paused
		paused = cfg.Paused
		return nil
	})
	if err != nil {
		ctx.WithField("err", err).Error("configRepo.Update failed")
		return false, err
	}
	return paused, nil
}
