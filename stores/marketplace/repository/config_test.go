package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	bCtx "github.com/nfty-labs/marketapi/base/ctx"
	"github.com/nfty-labs/marketapi/domain"
	"github.com/nfty-labs/marketapi/domain/marketplace"
)

type configRepoTestSuite struct {
	suite.Suite

	im marketplace.ConfigRepo
}

func TestConfigRepoTestSuite(t *testing.T) {
	suite.Run(t, new(configRepoTestSuite))
}

func (s *configRepoTestSuite) SetupTest() {
	s.im = NewConfigRepo(marketplace.FeeConfig{
		InitialRate:       120,
		RegularRate:       50,
		DiscountRate:      20,
		ExpiryDuration:    24 * time.Hour,
		PlatformRecipient: domain.Address("0xplatform"),
	})
}

func (s *configRepoTestSuite) TestGet() {
	ctx := bCtx.Background()

	cfg, err := s.im.Get(ctx)
	s.NoError(err)
	s.Equal(domain.PerMille(120), cfg.InitialRate)
	s.Equal(domain.PerMille(50), cfg.RegularRate)
	s.False(cfg.Paused)
}

func (s *configRepoTestSuite) TestUpdate() {
	ctx := bCtx.Background()

	err := s.im.Update(ctx, func(cfg *marketplace.FeeConfig) error {
		cfg.RegularRate = 60
		return cfg.Validate()
	})
	s.NoError(err)

	cfg, err := s.im.Get(ctx)
	s.NoError(err)
	s.Equal(domain.PerMille(60), cfg.RegularRate)
}

func (s *configRepoTestSuite) TestUpdateRejectedKeepsOldValue() {
	ctx := bCtx.Background()

	err := s.im.Update(ctx, func(cfg *marketplace.FeeConfig) error {
		// discount >= regular rate violates the invariant
		cfg.DiscountRate = 50
		return cfg.Validate()
	})
	s.Equal(domain.ErrConfigInvariant, err)

	cfg, err := s.im.Get(ctx)
	s.NoError(err)
	s.Equal(domain.PerMille(20), cfg.DiscountRate)
}
