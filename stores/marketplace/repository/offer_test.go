package repository

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	bCtx "github.com/nfty-labs/marketapi/base/ctx"
	"github.com/nfty-labs/marketapi/domain"
	"github.com/nfty-labs/marketapi/domain/marketplace"
)

type offerRepoTestSuite struct {
	suite.Suite

	im  marketplace.Repo
	now time.Time
}

func TestOfferRepoTestSuite(t *testing.T) {
	suite.Run(t, new(offerRepoTestSuite))
}

func (s *offerRepoTestSuite) SetupTest() {
	s.im = NewOfferRepo()
	s.now = time.Date(2022, 3, 1, 12, 0, 0, 0, time.UTC)
}

func (s *offerRepoTestSuite) TestCreate() {
	ctx := bCtx.Background()
	assetId := domain.AssetId("asset-1")
	price := big.NewInt(1000)

	offer, err := s.im.Create(ctx, assetId, price, s.now, time.Hour)
	s.NoError(err)
	s.Equal(assetId, offer.AssetId)
	s.Equal(price, offer.Price)
	s.Equal(s.now, offer.StartTime)
	s.Equal(s.now.Add(time.Hour), offer.EndTime)
	s.False(offer.Resulted)

	// unresolved offer blocks a second listing
	_, err = s.im.Create(ctx, assetId, price, s.now, time.Hour)
	s.Equal(domain.ErrDuplicateOffer, err)

	// mutating the returned offer must not leak into the store
	offer.Price.SetInt64(1)
	stored, err := s.im.Get(ctx, assetId)
	s.NoError(err)
	s.Equal(big.NewInt(1000), stored.Price)
}

func (s *offerRepoTestSuite) TestCreateInvalidWindow() {
	ctx := bCtx.Background()

	_, err := s.im.Create(ctx, "asset-1", big.NewInt(1000), s.now, 0)
	s.Equal(domain.ErrInvalidWindow, err)

	_, err = s.im.Create(ctx, "asset-1", big.NewInt(1000), s.now, -time.Hour)
	s.Equal(domain.ErrInvalidWindow, err)
}

func (s *offerRepoTestSuite) TestCreateAfterResulted() {
	ctx := bCtx.Background()
	assetId := domain.AssetId("asset-1")

	_, err := s.im.Create(ctx, assetId, big.NewInt(1000), s.now, time.Hour)
	s.NoError(err)
	s.NoError(s.im.MarkResulted(ctx, assetId))

	// resulted offers do not block a fresh listing
	offer, err := s.im.Create(ctx, assetId, big.NewInt(2000), s.now, time.Hour)
	s.NoError(err)
	s.False(offer.Resulted)
	s.Equal(big.NewInt(2000), offer.Price)
}

func (s *offerRepoTestSuite) TestCancel() {
	ctx := bCtx.Background()
	assetId := domain.AssetId("asset-1")

	s.Equal(domain.ErrOfferNotFound, s.im.Cancel(ctx, assetId))

	_, err := s.im.Create(ctx, assetId, big.NewInt(1000), s.now, time.Hour)
	s.NoError(err)
	s.NoError(s.im.Cancel(ctx, assetId))

	offer, err := s.im.Get(ctx, assetId)
	s.NoError(err)
	s.False(offer.Exists())

	// cancelled asset can be re-offered immediately
	_, err = s.im.Create(ctx, assetId, big.NewInt(1000), s.now, time.Hour)
	s.NoError(err)
}

func (s *offerRepoTestSuite) TestCancelResulted() {
	ctx := bCtx.Background()
	assetId := domain.AssetId("asset-1")

	_, err := s.im.Create(ctx, assetId, big.NewInt(1000), s.now, time.Hour)
	s.NoError(err)
	s.NoError(s.im.MarkResulted(ctx, assetId))

	// resulted offers are history, even a direct cancel cannot erase them
	s.Equal(domain.ErrAlreadyResulted, s.im.Cancel(ctx, assetId))

	offer, err := s.im.Get(ctx, assetId)
	s.NoError(err)
	s.True(offer.Exists())
	s.True(offer.Resulted)
}

func (s *offerRepoTestSuite) TestMarkResulted() {
	ctx := bCtx.Background()
	assetId := domain.AssetId("asset-1")

	s.Equal(domain.ErrOfferNotFound, s.im.MarkResulted(ctx, assetId))

	_, err := s.im.Create(ctx, assetId, big.NewInt(1000), s.now, time.Hour)
	s.NoError(err)
	s.NoError(s.im.MarkResulted(ctx, assetId))

	offer, err := s.im.Get(ctx, assetId)
	s.NoError(err)
	s.True(offer.Resulted)
}

func (s *offerRepoTestSuite) TestGetAbsent() {
	ctx := bCtx.Background()

	offer, err := s.im.Get(ctx, "unknown")
	s.NoError(err)
	s.False(offer.Exists())
}

func (s *offerRepoTestSuite) TestSaleCount() {
	ctx := bCtx.Background()
	seller := domain.Address("0xSeller")

	cnt, err := s.im.SaleCount(ctx, seller)
	s.NoError(err)
	s.Equal(int64(0), cnt)

	s.NoError(s.im.IncrementSaleCount(ctx, seller))
	s.NoError(s.im.IncrementSaleCount(ctx, seller))

	// address comparison is case insensitive
	cnt, err = s.im.SaleCount(ctx, domain.Address("0xseller"))
	s.NoError(err)
	s.Equal(int64(2), cnt)
}

func (s *offerRepoTestSuite) TestSnapshotRestore() {
	ctx := bCtx.Background()
	assetId := domain.AssetId("asset-1")
	seller := domain.Address("0xseller")

	_, err := s.im.Create(ctx, assetId, big.NewInt(1000), s.now, time.Hour)
	s.NoError(err)
	s.NoError(s.im.IncrementSaleCount(ctx, seller))

	snap, err := s.im.Snapshot(ctx, assetId, seller)
	s.NoError(err)
	s.True(snap.HasOffer)
	s.Equal(int64(1), snap.SaleCount)

	s.NoError(s.im.MarkResulted(ctx, assetId))
	s.NoError(s.im.IncrementSaleCount(ctx, seller))

	s.NoError(s.im.Restore(ctx, snap))

	offer, err := s.im.Get(ctx, assetId)
	s.NoError(err)
	s.False(offer.Resulted)
	s.Equal(big.NewInt(1000), offer.Price)

	cnt, err := s.im.SaleCount(ctx, seller)
	s.NoError(err)
	s.Equal(int64(1), cnt)
}
