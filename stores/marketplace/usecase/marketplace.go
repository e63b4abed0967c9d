package usecase

import (
	"math/big"
	"sync/atomic"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"

	bCtx "github.com/nfty-labs/marketapi/base/ctx"
	"github.com/nfty-labs/marketapi/base/log"
	"github.com/nfty-labs/marketapi/base/metrics"
	"github.com/nfty-labs/marketapi/base/priceformatter"
	"github.com/nfty-labs/marketapi/domain"
	"github.com/nfty-labs/marketapi/domain/marketplace"
)

type MarketplaceUseCaseCfg struct {
	OfferRepo      marketplace.Repo
	ConfigRepo     marketplace.ConfigRepo
	ActivityRepo   marketplace.ActivityRepo
	AssetRegistry  domain.AssetRegistry
	ValueLedger    domain.ValueLedger
	PrimaryLedger  domain.PrimaryLedger
	Oracle         domain.SwapOracle
	Gate           domain.AccessGate
	Clock          clock.Clock
	PriceFormatter priceformatter.PriceFormatter
	Metrics        metrics.Service

	// EngineAddress is the operator account the registry approval and
	// the secondary-currency allowance are granted to.
	EngineAddress domain.Address
}

type marketplaceImpl struct {
	offerRepo      marketplace.Repo
	configRepo     marketplace.ConfigRepo
	activityRepo   marketplace.ActivityRepo
	registry       domain.AssetRegistry
	valueLedger    domain.ValueLedger
	primaryLedger  domain.PrimaryLedger
	oracle         domain.SwapOracle
	gate           domain.AccessGate
	clock          clock.Clock
	priceFormatter priceformatter.PriceFormatter
	met            metrics.Service
	engineAddress  domain.Address

	// settling guards buy and cancel against synchronous reentry from
	// ledger payout callbacks
	settling int32
}

func NewMarketplaceUseCase(cfg *MarketplaceUseCaseCfg) marketplace.UseCase {
	return &marketplaceImpl{
		offerRepo:      cfg.OfferRepo,
		configRepo:     cfg.ConfigRepo,
		activityRepo:   cfg.ActivityRepo,
		registry:       cfg.AssetRegistry,
		valueLedger:    cfg.ValueLedger,
		primaryLedger:  cfg.PrimaryLedger,
		oracle:         cfg.Oracle,
		gate:           cfg.Gate,
		clock:          cfg.Clock,
		priceFormatter: cfg.PriceFormatter,
		met:            cfg.Metrics,
		engineAddress:  cfg.EngineAddress,
	}
}

func (im *marketplaceImpl) enterSettlement() error {
	if !atomic.CompareAndSwapInt32(&im.settling, 0, 1) {
		return domain.ErrReentrantCall
	}
	return nil
}

func (im *marketplaceImpl) leaveSettlement() {
	atomic.StoreInt32(&im.settling, 0)
}

func (im *marketplaceImpl) insertActivity(ctx bCtx.Ctx, t marketplace.ActivityType, assetId domain.AssetId, account, to domain.Address, price *big.Int) {
	a := &marketplace.Activity{
		ActivityId: uuid.New().String(),
		AssetId:    assetId.ToLower(),
		Type:       t,
		Account:    account.ToLower(),
		To:         to.ToLower(),
		Time:       im.clock.Now(),
	}
	if price != nil {
		a.Price = price.String()
		a.DisplayPrice = im.priceFormatter.FormatPrimary(price).String()
	}
	// advisory only, a failed insert never fails the operation
	if err := im.activityRepo.Insert(ctx, a); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"activity": a,
		}).Error("activityRepo.Insert failed")
	}
}

func (im *marketplaceImpl) createOffer(ctx bCtx.Ctx, owner domain.Address, assetId domain.AssetId, price *big.Int) (*marketplace.Offer, error) {
	cfg, err := im.configRepo.Get(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("configRepo.Get failed")
		return nil, err
	}
	if cfg.Paused {
		return nil, domain.ErrPaused
	}

	if price == nil || price.Sign() <= 0 {
		return nil, domain.ErrBadParamInput
	}

	asset, err := im.registry.FindOne(ctx, assetId)
	if err != nil {
		ctx.WithField("err", err).Error("registry.FindOne failed")
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrAssetNotFound
	}
	if !asset.Owner.Equals(owner) {
		return nil, domain.ErrNotOwner
	}

	if approved, err := im.registry.IsApproved(ctx, assetId, im.engineAddress); err != nil {
		ctx.WithField("err", err).Error("registry.IsApproved failed")
		return nil, err
	} else if !approved {
		return nil, domain.ErrApprovalRevoked
	}

	offer, err := im.offerRepo.Create(ctx, assetId, price, im.clock.Now(), cfg.ExpiryDuration)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"assetId": assetId,
		}).Error("offerRepo.Create failed")
		return nil, err
	}

	im.insertActivity(ctx, marketplace.ActivityTypeList, assetId, owner, domain.Address(""), price)
	im.met.BumpSum("marketplace.offer.create", 1)

	return offer, nil
}

func (im *marketplaceImpl) CreateOffer(ctx bCtx.Ctx, caller domain.Principal, assetId domain.AssetId, price *big.Int) (*marketplace.Offer, error) {
	return im.createOffer(ctx, caller.Address, assetId, price)
}

func (im *marketplaceImpl) CreateOfferOnBehalfOfOwner(ctx bCtx.Ctx, caller domain.Principal, assetId domain.AssetId, price *big.Int) (*marketplace.Offer, error) {
	if admin, err := im.gate.IsAdmin(ctx, caller.Address); err != nil {
		ctx.WithField("err", err).Error("gate.IsAdmin failed")
		return nil, err
	} else if !admin {
		if agent, err := im.gate.IsAgent(ctx, caller.Address); err != nil {
			ctx.WithField("err", err).Error("gate.IsAgent failed")
			return nil, err
		} else if !agent {
			return nil, domain.ErrNotAdmin
		}
	}

	asset, err := im.registry.FindOne(ctx, assetId)
	if err != nil {
		ctx.WithField("err", err).Error("registry.FindOne failed")
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrAssetNotFound
	}

	return im.createOffer(ctx, asset.Owner, assetId, price)
}

func (im *marketplaceImpl) GetOffer(ctx bCtx.Ctx, assetId domain.AssetId) (*marketplace.Offer, error) {
	offer, err := im.offerRepo.Get(ctx, assetId)
	if err != nil {
		ctx.WithField("err", err).Error("offerRepo.Get failed")
		return nil, err
	}
	if !offer.Exists() {
		return nil, domain.ErrOfferNotFound
	}
	return offer, nil
}

func (im *marketplaceImpl) CancelOffer(ctx bCtx.Ctx, caller domain.Principal, assetId domain.AssetId) error {
	if err := im.enterSettlement(); err != nil {
		return err
	}
	defer im.leaveSettlement()

	if admin, err := im.gate.IsAdmin(ctx, caller.Address); err != nil {
		ctx.WithField("err", err).Error("gate.IsAdmin failed")
		return err
	} else if !admin {
		if agent, err := im.gate.IsAgent(ctx, caller.Address); err != nil {
			ctx.WithField("err", err).Error("gate.IsAgent failed")
			return err
		} else if !agent {
			return domain.ErrNotAdmin
		}
	}

	offer, err := im.offerRepo.Get(ctx, assetId)
	if err != nil {
		ctx.WithField("err", err).Error("offerRepo.Get failed")
		return err
	}
	if !offer.Exists() {
		return domain.ErrOfferNotFound
	}
	if offer.Resulted {
		return domain.ErrAlreadyResulted
	}

	if err := im.offerRepo.Cancel(ctx, assetId); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"assetId": assetId,
		}).Error("offerRepo.Cancel failed")
		return err
	}

	im.insertActivity(ctx, marketplace.ActivityTypeCancel, assetId, caller.Address, domain.Address(""), offer.Price)
	im.met.BumpSum("marketplace.offer.cancel", 1)

	return nil
}

// undoJournal collects compensating writes for the completed settlement
// steps so a later failure can roll everything back in reverse order.
type undoJournal struct {
	undos []func(bCtx.Ctx)
}

func (j *undoJournal) add(fn func(bCtx.Ctx)) {
	j.undos = append(j.undos, fn)
}

func (j *undoJournal) rollback(ctx bCtx.Ctx) {
	for i := len(j.undos) - 1; i >= 0; i-- {
		j.undos[i](ctx)
	}
}

func (im *marketplaceImpl) BuyOffer(ctx bCtx.Ctx, req *marketplace.BuyRequest) (*marketplace.Receipt, error) {
	if err := im.enterSettlement(); err != nil {
		return nil, err
	}
	defer im.leaveSettlement()

	defer im.met.BumpTime("marketplace.buy.time").End()

	receipt, err := im.buy(ctx, req)
	if err != nil {
		im.met.BumpSum("marketplace.buy.err", 1)
		return nil, err
	}
	im.met.BumpSum("marketplace.buy", 1)
	return receipt, nil
}

func (im *marketplaceImpl) buy(ctx bCtx.Ctx, req *marketplace.BuyRequest) (*marketplace.Receipt, error) {
	if req.Buyer.IsContract {
		return nil, domain.ErrContractCallerForbidden
	}

	cfg, err := im.configRepo.Get(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("configRepo.Get failed")
		return nil, err
	}
	if cfg.Paused {
		return nil, domain.ErrPaused
	}

	if approved, err := im.registry.IsApproved(ctx, req.AssetId, im.engineAddress); err != nil {
		ctx.WithField("err", err).Error("registry.IsApproved failed")
		return nil, err
	} else if !approved {
		return nil, domain.ErrApprovalRevoked
	}

	asset, err := im.registry.FindOne(ctx, req.AssetId)
	if err != nil {
		ctx.WithField("err", err).Error("registry.FindOne failed")
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrAssetNotFound
	}

	offer, err := im.offerRepo.Get(ctx, req.AssetId)
	if err != nil {
		ctx.WithField("err", err).Error("offerRepo.Get failed")
		return nil, err
	}
	if !offer.Exists() {
		return nil, domain.ErrOfferNotFound
	}
	if offer.Resulted {
		return nil, domain.ErrAlreadyResulted
	}

	// window is end-inclusive
	now := im.clock.Now()
	if now.Before(offer.StartTime) || now.After(offer.EndTime) {
		return nil, domain.ErrOutsideWindow
	}

	if !req.SecondaryShare.Valid() {
		return nil, domain.ErrInvalidShare
	}

	swapRate, err := im.oracle.Rate(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("oracle.Rate failed")
		return nil, err
	}

	seller := asset.Owner
	saleCount, err := im.offerRepo.SaleCount(ctx, seller)
	if err != nil {
		ctx.WithField("err", err).Error("offerRepo.SaleCount failed")
		return nil, err
	}

	fee, err := ComputeFee(&cfg, offer.Price, req.SecondaryShare, swapRate, saleCount > 0)
	if err != nil {
		return nil, err
	}

	// funds checks before any state mutation
	if req.SuppliedValue == nil || req.SuppliedValue.Cmp(fee.PrimaryDue) < 0 {
		return nil, domain.ErrInsufficientFunds
	}
	var prevAllowance *big.Int
	if fee.SecondaryDue.Sign() > 0 {
		if balance, err := im.valueLedger.BalanceOf(ctx, req.Buyer.Address); err != nil {
			ctx.WithField("err", err).Error("valueLedger.BalanceOf failed")
			return nil, err
		} else if balance.Cmp(fee.SecondaryDue) < 0 {
			return nil, domain.ErrInsufficientFunds
		}
		allowance, err := im.valueLedger.Allowance(ctx, req.Buyer.Address, im.engineAddress)
		if err != nil {
			ctx.WithField("err", err).Error("valueLedger.Allowance failed")
			return nil, err
		}
		if allowance.Cmp(fee.SecondaryDue) < 0 {
			return nil, domain.ErrInsufficientAllowance
		}
		// kept for the rollback journal, a reverted buy hands the
		// consumed allowance back so a retry starts from scratch
		prevAllowance = allowance
	}

	snap, err := im.offerRepo.Snapshot(ctx, req.AssetId, seller)
	if err != nil {
		ctx.WithField("err", err).Error("offerRepo.Snapshot failed")
		return nil, err
	}

	journal := &undoJournal{}
	journal.add(func(c bCtx.Ctx) {
		if err := im.offerRepo.Restore(c, snap); err != nil {
			c.WithField("err", err).Error("offerRepo.Restore failed")
		}
	})

	// internal effects settle before any value leaves the engine
	if err := im.offerRepo.MarkResulted(ctx, req.AssetId); err != nil {
		ctx.WithField("err", err).Error("offerRepo.MarkResulted failed")
		return nil, err
	}
	if err := im.offerRepo.IncrementSaleCount(ctx, seller); err != nil {
		ctx.WithField("err", err).Error("offerRepo.IncrementSaleCount failed")
		journal.rollback(ctx)
		return nil, err
	}

	if err := im.registry.RecordSalePrice(ctx, req.AssetId, offer.Price); err != nil {
		ctx.WithField("err", err).Error("registry.RecordSalePrice failed")
		journal.rollback(ctx)
		return nil, err
	}
	prevAsset := *asset
	journal.add(func(c bCtx.Ctx) {
		if err := im.registry.Upsert(c, &prevAsset); err != nil {
			c.WithField("err", err).Error("registry.Upsert rollback failed")
		}
	})

	if err := im.registry.TransferOwnership(ctx, req.AssetId, seller, req.Buyer.Address); err != nil {
		ctx.WithField("err", err).Error("registry.TransferOwnership failed")
		journal.rollback(ctx)
		return nil, err
	}

	platformPrimary, designerPrimary, platformSecondary, designerSecondary := splitSettlement(fee, req.SecondaryShare, swapRate)
	designer := asset.Creator

	// secondary pulls are compensable, they run before the primary
	// payouts which hand control to external recipients
	if platformSecondary.Sign() > 0 {
		if err := im.valueLedger.TransferFrom(ctx, im.engineAddress, req.Buyer.Address, cfg.PlatformRecipient, platformSecondary); err != nil {
			ctx.WithField("err", err).Error("valueLedger.TransferFrom failed")
			journal.rollback(ctx)
			return nil, err
		}
		journal.add(func(c bCtx.Ctx) {
			if err := im.valueLedger.Transfer(c, cfg.PlatformRecipient, req.Buyer.Address, platformSecondary); err != nil {
				c.WithField("err", err).Error("valueLedger.Transfer rollback failed")
			}
			if err := im.valueLedger.Approve(c, req.Buyer.Address, im.engineAddress, prevAllowance); err != nil {
				c.WithField("err", err).Error("valueLedger.Approve rollback failed")
			}
		})
	}
	if designerSecondary.Sign() > 0 {
		if err := im.valueLedger.TransferFrom(ctx, im.engineAddress, req.Buyer.Address, designer, designerSecondary); err != nil {
			ctx.WithField("err", err).Error("valueLedger.TransferFrom failed")
			journal.rollback(ctx)
			return nil, err
		}
		journal.add(func(c bCtx.Ctx) {
			if err := im.valueLedger.Transfer(c, designer, req.Buyer.Address, designerSecondary); err != nil {
				c.WithField("err", err).Error("valueLedger.Transfer rollback failed")
			}
			if err := im.valueLedger.Approve(c, req.Buyer.Address, im.engineAddress, prevAllowance); err != nil {
				c.WithField("err", err).Error("valueLedger.Approve rollback failed")
			}
		})
	}

	if platformPrimary.Sign() > 0 {
		if err := im.primaryLedger.Transfer(ctx, cfg.PlatformRecipient, platformPrimary); err != nil {
			ctx.WithField("err", err).Error("primaryLedger.Transfer failed")
			journal.rollback(ctx)
			return nil, err
		}
		journal.add(func(c bCtx.Ctx) {
			if err := im.primaryLedger.Reclaim(c, cfg.PlatformRecipient, platformPrimary); err != nil {
				c.WithField("err", err).Error("primaryLedger.Reclaim rollback failed")
			}
		})
	}
	if designerPrimary.Sign() > 0 {
		if err := im.primaryLedger.Transfer(ctx, designer, designerPrimary); err != nil {
			ctx.WithField("err", err).Error("primaryLedger.Transfer failed")
			journal.rollback(ctx)
			return nil, err
		}
		journal.add(func(c bCtx.Ctx) {
			if err := im.primaryLedger.Reclaim(c, designer, designerPrimary); err != nil {
				c.WithField("err", err).Error("primaryLedger.Reclaim rollback failed")
			}
		})
	}

	receipt := &marketplace.Receipt{
		ReceiptId:         uuid.New().String(),
		AssetId:           req.AssetId.ToLower(),
		Buyer:             req.Buyer.Address.ToLower(),
		Seller:            seller.ToLower(),
		Designer:          designer.ToLower(),
		Price:             offer.Price,
		PlatformFee:       fee.PlatformFee,
		Discount:          fee.Discount,
		SecondaryShare:    req.SecondaryShare,
		PrimaryPaid:       fee.PrimaryDue,
		SecondaryPaid:     fee.SecondaryDue,
		PlatformPrimary:   platformPrimary,
		DesignerPrimary:   designerPrimary,
		PlatformSecondary: platformSecondary,
		DesignerSecondary: designerSecondary,
		SoldAt:            now,
	}

	im.insertActivity(ctx, marketplace.ActivityTypeBuy, req.AssetId, seller, req.Buyer.Address, offer.Price)

	return receipt, nil
}
