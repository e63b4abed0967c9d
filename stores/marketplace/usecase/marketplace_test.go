package usecase

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/nfty-labs/marketapi/base/ctx"
	"github.com/nfty-labs/marketapi/base/metrics"
	"github.com/nfty-labs/marketapi/base/priceformatter"
	"github.com/nfty-labs/marketapi/domain"
	dmocks "github.com/nfty-labs/marketapi/domain/mocks"
	"github.com/nfty-labs/marketapi/domain/marketplace"
	mpmocks "github.com/nfty-labs/marketapi/domain/marketplace/mocks"
	"github.com/nfty-labs/marketapi/service/oracle"
	marketRepo "github.com/nfty-labs/marketapi/stores/marketplace/repository"
	tokenRepo "github.com/nfty-labs/marketapi/stores/token/repository"
)

const (
	engineAddr   = domain.Address("0xengine")
	platformAddr = domain.Address("0xplatform")
	sellerAddr   = domain.Address("0xseller")
	designerAddr = domain.Address("0xdesigner")
	buyerAddr    = domain.Address("0xbuyer")
	adminAddr    = domain.Address("0xadmin")
	assetId      = domain.AssetId("asset-1")
)

type fakeRegistry struct {
	assets map[domain.AssetId]*domain.Asset
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{assets: make(map[domain.AssetId]*domain.Asset)}
}

func (f *fakeRegistry) FindOne(c bCtx.Ctx, id domain.AssetId) (*domain.Asset, error) {
	a, ok := f.assets[id.ToLower()]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeRegistry) Upsert(c bCtx.Ctx, asset *domain.Asset) error {
	cp := *asset
	f.assets[asset.AssetId.ToLower()] = &cp
	return nil
}

func (f *fakeRegistry) IsApproved(c bCtx.Ctx, id domain.AssetId, operator domain.Address) (bool, error) {
	a, ok := f.assets[id.ToLower()]
	if !ok {
		return false, domain.ErrAssetNotFound
	}
	return a.Approved.Equals(operator), nil
}

func (f *fakeRegistry) RecordSalePrice(c bCtx.Ctx, id domain.AssetId, price *big.Int) error {
	a, ok := f.assets[id.ToLower()]
	if !ok {
		return domain.ErrAssetNotFound
	}
	a.LastSalePrice = price.String()
	return nil
}

func (f *fakeRegistry) TransferOwnership(c bCtx.Ctx, id domain.AssetId, from, to domain.Address) error {
	a, ok := f.assets[id.ToLower()]
	if !ok {
		return domain.ErrAssetNotFound
	}
	if !a.Owner.Equals(from) {
		return domain.ErrNotOwner
	}
	a.Owner = to.ToLower()
	return nil
}

type failingPrimaryLedger struct {
	err error
}

func (l *failingPrimaryLedger) Transfer(c bCtx.Ctx, to domain.Address, amount *big.Int) error {
	return l.err
}

func (l *failingPrimaryLedger) Reclaim(c bCtx.Ctx, from domain.Address, amount *big.Int) error {
	return nil
}

// haltingPrimaryLedger pays out normally a fixed number of times and
// rejects every transfer after that.
type haltingPrimaryLedger struct {
	ledger    *tokenRepo.PrimaryLedgerRepo
	remaining int
	err       error
}

func (l *haltingPrimaryLedger) Transfer(c bCtx.Ctx, to domain.Address, amount *big.Int) error {
	if l.remaining <= 0 {
		return l.err
	}
	l.remaining--
	return l.ledger.Transfer(c, to, amount)
}

func (l *haltingPrimaryLedger) Reclaim(c bCtx.Ctx, from domain.Address, amount *big.Int) error {
	return l.ledger.Reclaim(c, from, amount)
}

// reentrantPrimaryLedger re-enters the engine from inside a payout, the
// way a hostile recipient would.
type reentrantPrimaryLedger struct {
	uc  marketplace.UseCase
	req *marketplace.BuyRequest

	innerErr error
}

func (l *reentrantPrimaryLedger) Transfer(c bCtx.Ctx, to domain.Address, amount *big.Int) error {
	_, l.innerErr = l.uc.BuyOffer(c, l.req)
	return l.innerErr
}

func (l *reentrantPrimaryLedger) Reclaim(c bCtx.Ctx, from domain.Address, amount *big.Int) error {
	return nil
}

type marketplaceTestSuite struct {
	suite.Suite

	offerRepo     marketplace.Repo
	configRepo    marketplace.ConfigRepo
	activityRepo  *mpmocks.ActivityRepo
	registry      *fakeRegistry
	valueLedger   *tokenRepo.ValueLedgerRepo
	primaryLedger *tokenRepo.PrimaryLedgerRepo
	gate          *dmocks.AccessGate
	clk           *clock.Mock
	t0            time.Time

	im marketplace.UseCase
}

func TestMarketplaceTestSuite(t *testing.T) {
	suite.Run(t, new(marketplaceTestSuite))
}

func (s *marketplaceTestSuite) SetupTest() {
	s.offerRepo = marketRepo.NewOfferRepo()
	s.configRepo = marketRepo.NewConfigRepo(marketplace.FeeConfig{
		InitialRate:       120,
		RegularRate:       50,
		DiscountRate:      20,
		ExpiryDuration:    24 * time.Hour,
		PlatformRecipient: platformAddr,
	})
	s.activityRepo = &mpmocks.ActivityRepo{}
	s.activityRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	s.registry = newFakeRegistry()
	s.valueLedger = tokenRepo.NewValueLedgerRepo()
	s.primaryLedger = tokenRepo.NewPrimaryLedgerRepo()
	s.gate = &dmocks.AccessGate{}
	s.clk = clock.NewMock()
	s.t0 = time.Date(2022, 3, 1, 12, 0, 0, 0, time.UTC)
	s.clk.Set(s.t0)

	s.registry.assets[assetId] = &domain.Asset{
		AssetId:  assetId,
		Owner:    sellerAddr,
		Creator:  designerAddr,
		Approved: engineAddr,
	}

	s.im = s.makeUseCase(s.primaryLedger)
}

func (s *marketplaceTestSuite) makeUseCase(primary domain.PrimaryLedger) marketplace.UseCase {
	return NewMarketplaceUseCase(&MarketplaceUseCaseCfg{
		OfferRepo:      s.offerRepo,
		ConfigRepo:     s.configRepo,
		ActivityRepo:   s.activityRepo,
		AssetRegistry:  s.registry,
		ValueLedger:    s.valueLedger,
		PrimaryLedger:  primary,
		Oracle:         oracle.NewFixed(big.NewInt(1)),
		Gate:           s.gate,
		Clock:          s.clk,
		PriceFormatter: priceformatter.New(18, 18),
		Metrics:        metrics.New("test"),
		EngineAddress:  engineAddr,
	})
}

func (s *marketplaceTestSuite) setPaused(paused bool) {
	err := s.configRepo.Update(bCtx.Background(), func(cfg *marketplace.FeeConfig) error {
		cfg.Paused = paused
		return nil
	})
	s.Require().NoError(err)
}

func (s *marketplaceTestSuite) seller() domain.Principal {
	return domain.Principal{Address: sellerAddr}
}

func (s *marketplaceTestSuite) buyer() domain.Principal {
	return domain.Principal{Address: buyerAddr}
}

func (s *marketplaceTestSuite) TestCreateOffer() {
	ctx := bCtx.Background()

	offer, err := s.im.CreateOffer(ctx, s.seller(), assetId, big.NewInt(100000))
	s.NoError(err)
	s.Equal(assetId, offer.AssetId)
	s.Equal(s.t0, offer.StartTime)
	s.Equal(s.t0.Add(24*time.Hour), offer.EndTime)

	_, err = s.im.CreateOffer(ctx, s.seller(), assetId, big.NewInt(100000))
	s.Equal(domain.ErrDuplicateOffer, err)
}

func (s *marketplaceTestSuite) TestCreateOfferNotOwner() {
	ctx := bCtx.Background()

	_, err := s.im.CreateOffer(ctx, s.buyer(), assetId, big.NewInt(100000))
	s.Equal(domain.ErrNotOwner, err)
}

func (s *marketplaceTestSuite) TestCreateOfferUnknownAsset() {
	ctx := bCtx.Background()

	_, err := s.im.CreateOffer(ctx, s.seller(), "unknown", big.NewInt(100000))
	s.Equal(domain.ErrAssetNotFound, err)
}

func (s *marketplaceTestSuite) TestCreateOfferApprovalRevoked() {
	ctx := bCtx.Background()

	s.registry.assets[assetId].Approved = "0xother"
	_, err := s.im.CreateOffer(ctx, s.seller(), assetId, big.NewInt(100000))
	s.Equal(domain.ErrApprovalRevoked, err)
}

func (s *marketplaceTestSuite) TestCreateOfferInvalidPrice() {
	ctx := bCtx.Background()

	_, err := s.im.CreateOffer(ctx, s.seller(), assetId, big.NewInt(0))
	s.Equal(domain.ErrBadParamInput, err)

	_, err = s.im.CreateOffer(ctx, s.seller(), assetId, nil)
	s.Equal(domain.ErrBadParamInput, err)
}

func (s *marketplaceTestSuite) TestCreateOfferPaused() {
	ctx := bCtx.Background()

	s.setPaused(true)
	_, err := s.im.CreateOffer(ctx, s.seller(), assetId, big.NewInt(100000))
	s.Equal(domain.ErrPaused, err)
}

func (s *marketplaceTestSuite) TestCreateOfferOnBehalfOfOwner() {
	ctx := bCtx.Background()

	s.gate.On("IsAdmin", mock.Anything, adminAddr).Return(true, nil)

	offer, err := s.im.CreateOfferOnBehalfOfOwner(ctx, domain.Principal{Address: adminAddr}, assetId, big.NewInt(100000))
	s.NoError(err)
	s.Equal(assetId, offer.AssetId)
}

func (s *marketplaceTestSuite) TestCreateOfferOnBehalfRequiresPrivilege() {
	ctx := bCtx.Background()

	s.gate.On("IsAdmin", mock.Anything, buyerAddr).Return(false, nil)
	s.gate.On("IsAgent", mock.Anything, buyerAddr).Return(false, nil)

	_, err := s.im.CreateOfferOnBehalfOfOwner(ctx, s.buyer(), assetId, big.NewInt(100000))
	s.Equal(domain.ErrNotAdmin, err)
}

func (s *marketplaceTestSuite) TestBuyOfferAllPrimary() {
	ctx := bCtx.Background()
	price := big.NewInt(100000)

	_, err := s.im.CreateOffer(ctx, s.seller(), assetId, price)
	s.Require().NoError(err)

	receipt, err := s.im.BuyOffer(ctx, &marketplace.BuyRequest{
		AssetId:       assetId,
		SuppliedValue: price,
		Buyer:         s.buyer(),
	})
	s.NoError(err)
	s.Equal(buyerAddr, receipt.Buyer)
	s.Equal(sellerAddr, receipt.Seller)
	s.Equal(designerAddr, receipt.Designer)
	s.Equal(big.NewInt(12000), receipt.PlatformFee)
	s.Equal(big.NewInt(0), receipt.Discount)
	s.Equal(big.NewInt(100000), receipt.PrimaryPaid)
	s.Equal(big.NewInt(0), receipt.SecondaryPaid)
	s.Equal(s.t0, receipt.SoldAt)

	// proceeds land with the platform and the designer
	s.Equal(big.NewInt(12000), s.primaryLedger.CreditOf(platformAddr))
	s.Equal(big.NewInt(88000), s.primaryLedger.CreditOf(designerAddr))

	// ownership and sale price recorded
	asset, _ := s.registry.FindOne(ctx, assetId)
	s.Equal(buyerAddr, asset.Owner)
	s.Equal("100000", asset.LastSalePrice)

	// resulted offers cannot be bought twice
	_, err = s.im.BuyOffer(ctx, &marketplace.BuyRequest{
		AssetId:       assetId,
		SuppliedValue: price,
		Buyer:         s.buyer(),
	})
	s.Equal(domain.ErrAlreadyResulted, err)
}

func (s *marketplaceTestSuite) TestBuyOfferFullSecondaryShare() {
	ctx := bCtx.Background()
	price := big.NewInt(100000)

	_, err := s.im.CreateOffer(ctx, s.seller(), assetId, price)
	s.Require().NoError(err)

	s.valueLedger.Mint(ctx, buyerAddr, big.NewInt(98000))
	s.valueLedger.Approve(ctx, buyerAddr, engineAddr, big.NewInt(98000))

	receipt, err := s.im.BuyOffer(ctx, &marketplace.BuyRequest{
		AssetId:        assetId,
		SecondaryShare: 1000,
		SuppliedValue:  big.NewInt(0),
		Buyer:          s.buyer(),
	})
	s.NoError(err)
	s.Equal(big.NewInt(2000), receipt.Discount)
	s.Equal(big.NewInt(10000), receipt.PlatformFee)
	s.Equal(big.NewInt(0), receipt.PrimaryPaid)
	s.Equal(big.NewInt(98000), receipt.SecondaryPaid)

	platformBalance, _ := s.valueLedger.BalanceOf(ctx, platformAddr)
	designerBalance, _ := s.valueLedger.BalanceOf(ctx, designerAddr)
	buyerBalance, _ := s.valueLedger.BalanceOf(ctx, buyerAddr)
	s.Equal(big.NewInt(10000), platformBalance)
	s.Equal(big.NewInt(88000), designerBalance)
	s.Equal(big.NewInt(0), buyerBalance)
}

func (s *marketplaceTestSuite) TestBuyOfferRepeatSaleUsesRegularRate() {
	ctx := bCtx.Background()
	price := big.NewInt(100000)

	s.Require().NoError(s.offerRepo.IncrementSaleCount(ctx, sellerAddr))

	_, err := s.im.CreateOffer(ctx, s.seller(), assetId, price)
	s.Require().NoError(err)

	receipt, err := s.im.BuyOffer(ctx, &marketplace.BuyRequest{
		AssetId:       assetId,
		SuppliedValue: price,
		Buyer:         s.buyer(),
	})
	s.NoError(err)
	s.Equal(big.NewInt(5000), receipt.PlatformFee)

	cnt, err := s.offerRepo.SaleCount(ctx, sellerAddr)
	s.NoError(err)
	s.Equal(int64(2), cnt)
}

func (s *marketplaceTestSuite) TestBuyOfferPreconditions() {
	ctx := bCtx.Background()
	price := big.NewInt(100000)

	// contract principals may not purchase
	_, err := s.im.BuyOffer(ctx, &marketplace.BuyRequest{
		AssetId:       assetId,
		SuppliedValue: price,
		Buyer:         domain.Principal{Address: buyerAddr, IsContract: true},
	})
	s.Equal(domain.ErrContractCallerForbidden, err)

	// no offer listed yet
	_, err = s.im.BuyOffer(ctx, &marketplace.BuyRequest{
		AssetId:       assetId,
		SuppliedValue: price,
		Buyer:         s.buyer(),
	})
	s.Equal(domain.ErrOfferNotFound, err)

	_, err = s.im.CreateOffer(ctx, s.seller(), assetId, price)
	s.Require().NoError(err)

	// paused blocks purchases
	s.setPaused(true)
	_, err = s.im.BuyOffer(ctx, &marketplace.BuyRequest{
		AssetId:       assetId,
		SuppliedValue: price,
		Buyer:         s.buyer(),
	})
	s.Equal(domain.ErrPaused, err)
	s.setPaused(false)

	// share outside the per-mille range
	_, err = s.im.BuyOffer(ctx, &marketplace.BuyRequest{
		AssetId:        assetId,
		SecondaryShare: 1001,
		SuppliedValue:  price,
		Buyer:          s.buyer(),
	})
	s.Equal(domain.ErrInvalidShare, err)

	// primary shortfall
	_, err = s.im.BuyOffer(ctx, &marketplace.BuyRequest{
		AssetId:       assetId,
		SuppliedValue: big.NewInt(99999),
		Buyer:         s.buyer(),
	})
	s.Equal(domain.ErrInsufficientFunds, err)

	// secondary balance shortfall
	_, err = s.im.BuyOffer(ctx, &marketplace.BuyRequest{
		AssetId:        assetId,
		SecondaryShare: 1000,
		SuppliedValue:  big.NewInt(0),
		Buyer:          s.buyer(),
	})
	s.Equal(domain.ErrInsufficientFunds, err)

	// balance present, allowance missing
	s.valueLedger.Mint(ctx, buyerAddr, big.NewInt(98000))
	_, err = s.im.BuyOffer(ctx, &marketplace.BuyRequest{
		AssetId:        assetId,
		SecondaryShare: 1000,
		SuppliedValue:  big.NewInt(0),
		Buyer:          s.buyer(),
	})
	s.Equal(domain.ErrInsufficientAllowance, err)

	// approval revoked after listing
	s.registry.assets[assetId].Approved = "0xother"
	_, err = s.im.BuyOffer(ctx, &marketplace.BuyRequest{
		AssetId:       assetId,
		SuppliedValue: price,
		Buyer:         s.buyer(),
	})
	s.Equal(domain.ErrApprovalRevoked, err)
}

func (s *marketplaceTestSuite) TestBuyOfferWindowEndInclusive() {
	ctx := bCtx.Background()
	price := big.NewInt(100000)

	_, err := s.im.CreateOffer(ctx, s.seller(), assetId, price)
	s.Require().NoError(err)

	// buying at exactly endTime succeeds
	s.clk.Set(s.t0.Add(24 * time.Hour))
	_, err = s.im.BuyOffer(ctx, &marketplace.BuyRequest{
		AssetId:       assetId,
		SuppliedValue: price,
		Buyer:         s.buyer(),
	})
	s.NoError(err)
}

func (s *marketplaceTestSuite) TestBuyOfferAfterWindow() {
	ctx := bCtx.Background()
	price := big.NewInt(100000)

	_, err := s.im.CreateOffer(ctx, s.seller(), assetId, price)
	s.Require().NoError(err)

	s.clk.Set(s.t0.Add(24*time.Hour + time.Second))
	_, err = s.im.BuyOffer(ctx, &marketplace.BuyRequest{
		AssetId:       assetId,
		SuppliedValue: price,
		Buyer:         s.buyer(),
	})
	s.Equal(domain.ErrOutsideWindow, err)
}

func (s *marketplaceTestSuite) TestBuyOfferRollbackOnPayoutFailure() {
	ctx := bCtx.Background()
	price := big.NewInt(100000)

	_, err := s.im.CreateOffer(ctx, s.seller(), assetId, price)
	s.Require().NoError(err)

	s.valueLedger.Mint(ctx, buyerAddr, big.NewInt(49500))
	s.valueLedger.Approve(ctx, buyerAddr, engineAddr, big.NewInt(49500))

	im := s.makeUseCase(&failingPrimaryLedger{err: errors.New("payout rejected")})

	_, err = im.BuyOffer(ctx, &marketplace.BuyRequest{
		AssetId:        assetId,
		SecondaryShare: 500,
		SuppliedValue:  big.NewInt(50000),
		Buyer:          s.buyer(),
	})
	s.Error(err)

	// no partial settlement is observable
	offer, err := s.offerRepo.Get(ctx, assetId)
	s.NoError(err)
	s.True(offer.Exists())
	s.False(offer.Resulted)

	cnt, err := s.offerRepo.SaleCount(ctx, sellerAddr)
	s.NoError(err)
	s.Equal(int64(0), cnt)

	asset, _ := s.registry.FindOne(ctx, assetId)
	s.Equal(sellerAddr, asset.Owner)
	s.Equal("", asset.LastSalePrice)

	buyerBalance, _ := s.valueLedger.BalanceOf(ctx, buyerAddr)
	s.Equal(big.NewInt(49500), buyerBalance)
	platformBalance, _ := s.valueLedger.BalanceOf(ctx, platformAddr)
	s.Equal(big.NewInt(0), platformBalance)

	// the consumed allowance is handed back, a retry starts from scratch
	allowance, _ := s.valueLedger.Allowance(ctx, buyerAddr, engineAddr)
	s.Equal(big.NewInt(49500), allowance)

	// same request against a working ledger settles normally
	receipt, err := s.im.BuyOffer(ctx, &marketplace.BuyRequest{
		AssetId:        assetId,
		SecondaryShare: 500,
		SuppliedValue:  big.NewInt(50000),
		Buyer:          s.buyer(),
	})
	s.NoError(err)
	s.Equal(big.NewInt(100000), receipt.Price)
}

func (s *marketplaceTestSuite) TestBuyOfferRollbackOnPartialPayout() {
	ctx := bCtx.Background()
	price := big.NewInt(100000)

	_, err := s.im.CreateOffer(ctx, s.seller(), assetId, price)
	s.Require().NoError(err)

	// platform payout lands, designer payout is rejected
	im := s.makeUseCase(&haltingPrimaryLedger{
		ledger:    s.primaryLedger,
		remaining: 1,
		err:       errors.New("payout rejected"),
	})

	_, err = im.BuyOffer(ctx, &marketplace.BuyRequest{
		AssetId:       assetId,
		SuppliedValue: price,
		Buyer:         s.buyer(),
	})
	s.Error(err)

	// the platform primary payout must be reverted with the rest of the
	// settlement, otherwise the fee could be collected twice
	s.Equal(big.NewInt(0), s.primaryLedger.CreditOf(platformAddr))
	s.Equal(big.NewInt(0), s.primaryLedger.CreditOf(designerAddr))

	offer, err := s.offerRepo.Get(ctx, assetId)
	s.NoError(err)
	s.True(offer.Exists())
	s.False(offer.Resulted)

	cnt, err := s.offerRepo.SaleCount(ctx, sellerAddr)
	s.NoError(err)
	s.Equal(int64(0), cnt)

	asset, _ := s.registry.FindOne(ctx, assetId)
	s.Equal(sellerAddr, asset.Owner)
	s.Equal("", asset.LastSalePrice)
}

func (s *marketplaceTestSuite) TestBuyOfferReentrancyRejected() {
	ctx := bCtx.Background()
	price := big.NewInt(100000)

	_, err := s.im.CreateOffer(ctx, s.seller(), assetId, price)
	s.Require().NoError(err)

	ledger := &reentrantPrimaryLedger{}
	im := s.makeUseCase(ledger)
	req := &marketplace.BuyRequest{
		AssetId:       assetId,
		SuppliedValue: price,
		Buyer:         s.buyer(),
	}
	ledger.uc = im
	ledger.req = req

	_, err = im.BuyOffer(ctx, req)
	s.Equal(domain.ErrReentrantCall, err)
	s.Equal(domain.ErrReentrantCall, ledger.innerErr)

	// the reentrant payout aborts the outer settlement cleanly
	offer, err := s.offerRepo.Get(ctx, assetId)
	s.NoError(err)
	s.False(offer.Resulted)

	asset, _ := s.registry.FindOne(ctx, assetId)
	s.Equal(sellerAddr, asset.Owner)
}

func (s *marketplaceTestSuite) TestCancelOffer() {
	ctx := bCtx.Background()
	price := big.NewInt(100000)

	s.gate.On("IsAdmin", mock.Anything, adminAddr).Return(true, nil)
	admin := domain.Principal{Address: adminAddr}

	s.Equal(domain.ErrOfferNotFound, s.im.CancelOffer(ctx, admin, assetId))

	_, err := s.im.CreateOffer(ctx, s.seller(), assetId, price)
	s.Require().NoError(err)

	// pause never blocks cancel
	s.setPaused(true)
	s.NoError(s.im.CancelOffer(ctx, admin, assetId))
	s.setPaused(false)

	// cancelled asset can be listed again right away
	_, err = s.im.CreateOffer(ctx, s.seller(), assetId, price)
	s.NoError(err)
}

func (s *marketplaceTestSuite) TestCancelOfferRequiresPrivilege() {
	ctx := bCtx.Background()

	s.gate.On("IsAdmin", mock.Anything, buyerAddr).Return(false, nil)
	s.gate.On("IsAgent", mock.Anything, buyerAddr).Return(false, nil)

	_, err := s.im.CreateOffer(ctx, s.seller(), assetId, big.NewInt(100000))
	s.Require().NoError(err)

	s.Equal(domain.ErrNotAdmin, s.im.CancelOffer(ctx, s.buyer(), assetId))
}

func (s *marketplaceTestSuite) TestCancelResultedOffer() {
	ctx := bCtx.Background()
	price := big.NewInt(100000)

	s.gate.On("IsAdmin", mock.Anything, adminAddr).Return(true, nil)

	_, err := s.im.CreateOffer(ctx, s.seller(), assetId, price)
	s.Require().NoError(err)

	_, err = s.im.BuyOffer(ctx, &marketplace.BuyRequest{
		AssetId:       assetId,
		SuppliedValue: price,
		Buyer:         s.buyer(),
	})
	s.Require().NoError(err)

	err = s.im.CancelOffer(ctx, domain.Principal{Address: adminAddr}, assetId)
	s.Equal(domain.ErrAlreadyResulted, err)
}

func (s *marketplaceTestSuite) TestGetOffer() {
	ctx := bCtx.Background()

	_, err := s.im.GetOffer(ctx, assetId)
	s.Equal(domain.ErrOfferNotFound, err)

	_, err = s.im.CreateOffer(ctx, s.seller(), assetId, big.NewInt(100000))
	s.Require().NoError(err)

	offer, err := s.im.GetOffer(ctx, assetId)
	s.NoError(err)
	s.Equal(assetId, offer.AssetId)
}
