package usecase

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/nfty-labs/marketapi/domain"
	"github.com/nfty-labs/marketapi/domain/marketplace"
)

type feeTestSuite struct {
	suite.Suite

	cfg      *marketplace.FeeConfig
	swapRate *big.Int
}

func TestFeeTestSuite(t *testing.T) {
	suite.Run(t, new(feeTestSuite))
}

func (s *feeTestSuite) SetupTest() {
	s.cfg = &marketplace.FeeConfig{
		InitialRate:  120,
		RegularRate:  50,
		DiscountRate: 20,
	}
	s.swapRate = big.NewInt(1)
}

func eth(v int64) *big.Int {
	// v in milli-units, scaled to 18 decimals
	res := big.NewInt(v)
	return res.Mul(res, new(big.Int).Exp(big.NewInt(10), big.NewInt(15), nil))
}

func (s *feeTestSuite) TestFirstSaleAllPrimary() {
	// 0.1 primary at the 120/1000 initial rate
	fee, err := ComputeFee(s.cfg, eth(100), 0, s.swapRate, false)
	s.NoError(err)
	s.Equal(eth(12), fee.PlatformFee)
	s.Equal(big.NewInt(0), fee.Discount)
	s.Equal(eth(100), fee.PrimaryDue)
	s.Equal(big.NewInt(0), fee.SecondaryDue)

	platformPrimary, designerPrimary, platformSecondary, designerSecondary := splitSettlement(fee, 0, s.swapRate)
	s.Equal(eth(12), platformPrimary)
	s.Equal(eth(88), designerPrimary)
	s.Equal(big.NewInt(0), platformSecondary)
	s.Equal(big.NewInt(0), designerSecondary)
}

func (s *feeTestSuite) TestRepeatSaleUsesRegularRate() {
	fee, err := ComputeFee(s.cfg, eth(100), 0, s.swapRate, true)
	s.NoError(err)
	s.Equal(eth(5), fee.PlatformFee)
}

func (s *feeTestSuite) TestFullSecondaryShareWithDiscount() {
	// 0.1 primary fully paid in secondary, 20/1000 discount
	fee, err := ComputeFee(s.cfg, eth(100), 1000, s.swapRate, false)
	s.NoError(err)
	s.Equal(eth(2), fee.Discount)
	s.Equal(eth(10), fee.PlatformFee)
	s.Equal(big.NewInt(0), fee.PrimaryDue)
	s.Equal(eth(98), fee.SecondaryDue)

	platformPrimary, designerPrimary, platformSecondary, designerSecondary := splitSettlement(fee, 1000, s.swapRate)
	s.Equal(big.NewInt(0), platformPrimary)
	s.Equal(big.NewInt(0), designerPrimary)
	s.Equal(eth(10), platformSecondary)
	s.Equal(eth(88), designerSecondary)
}

func (s *feeTestSuite) TestMixedShareConservesFunds() {
	price := eth(100)
	share := domain.PerMille(500)

	fee, err := ComputeFee(s.cfg, price, share, s.swapRate, false)
	s.NoError(err)

	platformPrimary, designerPrimary, platformSecondary, designerSecondary := splitSettlement(fee, share, s.swapRate)

	// primary side pays out exactly what the buyer supplied
	s.Equal(fee.PrimaryDue, new(big.Int).Add(platformPrimary, designerPrimary))
	// secondary side pays out exactly what was pulled
	s.Equal(fee.SecondaryDue, new(big.Int).Add(platformSecondary, designerSecondary))
	// the platform's take across both sides is the net fee
	platformTotal := new(big.Int).Add(platformPrimary, platformSecondary)
	s.Equal(fee.PlatformFee, platformTotal)
}

func (s *feeTestSuite) TestFeeUnderflow() {
	cfg := &marketplace.FeeConfig{
		InitialRate:  120,
		RegularRate:  5,
		DiscountRate: 4,
	}
	// repeat sale: 5/1000 fee, full-share discount 4/1000 leaves a fee
	fee, err := ComputeFee(cfg, eth(100), 1000, s.swapRate, true)
	s.NoError(err)
	s.Equal(1, fee.PlatformFee.Sign())

	// discount exceeding the fee must never produce a negative fee
	cfg.DiscountRate = 10
	cfg.InitialRate = 11
	_, err = ComputeFee(cfg, eth(100), 1000, s.swapRate, true)
	s.Equal(domain.ErrFeeUnderflow, err)
}

func (s *feeTestSuite) TestInvalidShare() {
	_, err := ComputeFee(s.cfg, eth(100), 1001, s.swapRate, false)
	s.Equal(domain.ErrInvalidShare, err)

	_, err = ComputeFee(s.cfg, eth(100), -1, s.swapRate, false)
	s.Equal(domain.ErrInvalidShare, err)
}

func (s *feeTestSuite) TestInvalidPrice() {
	_, err := ComputeFee(s.cfg, big.NewInt(0), 0, s.swapRate, false)
	s.Equal(domain.ErrBadParamInput, err)

	_, err = ComputeFee(s.cfg, nil, 0, s.swapRate, false)
	s.Equal(domain.ErrBadParamInput, err)
}

func (s *feeTestSuite) TestPurity() {
	price := eth(100)
	before := new(big.Int).Set(price)

	_, err := ComputeFee(s.cfg, price, 500, s.swapRate, false)
	s.NoError(err)
	s.Equal(before, price)
}

func (s *feeTestSuite) TestTruncation() {
	// 999 * 120 / 1000 = 119.88 truncates to 119
	fee, err := ComputeFee(s.cfg, big.NewInt(999), 0, s.swapRate, false)
	s.NoError(err)
	s.Equal(big.NewInt(119), fee.PlatformFee)
}
