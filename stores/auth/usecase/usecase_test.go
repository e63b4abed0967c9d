package usecase

import (
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/nfty-labs/marketapi/base/ctx"
	"github.com/nfty-labs/marketapi/domain"
)

type authTestSuite struct {
	suite.Suite

	im domain.AuthUsecase
}

func TestAuthTestSuite(t *testing.T) {
	suite.Run(t, new(authTestSuite))
}

func (s *authTestSuite) SetupTest() {
	s.im = New("secret", clock.New())
}

func (s *authTestSuite) TestSignAndParse() {
	ctx := bCtx.Background()

	token, err := s.im.SignToken(ctx, domain.Principal{Address: "0xAlice"})
	s.NoError(err)
	s.NotEmpty(token)

	principal, err := s.im.ParseToken(ctx, token)
	s.NoError(err)
	s.Equal(domain.Address("0xalice"), principal.Address)
	s.False(principal.IsContract)
}

func (s *authTestSuite) TestContractTagSurvivesRoundTrip() {
	ctx := bCtx.Background()

	token, err := s.im.SignToken(ctx, domain.Principal{Address: "0xbot", IsContract: true})
	s.NoError(err)

	principal, err := s.im.ParseToken(ctx, token)
	s.NoError(err)
	s.True(principal.IsContract)
}

func (s *authTestSuite) TestEmptyAddress() {
	ctx := bCtx.Background()

	_, err := s.im.SignToken(ctx, domain.Principal{})
	s.Equal(domain.ErrInvalidAddress, err)
}

func (s *authTestSuite) TestParseGarbage() {
	ctx := bCtx.Background()

	_, err := s.im.ParseToken(ctx, "not-a-token")
	s.Error(err)
}

func (s *authTestSuite) TestParseWrongSecret() {
	ctx := bCtx.Background()

	other := New("other-secret", clock.New())
	token, err := other.SignToken(ctx, domain.Principal{Address: "0xalice"})
	s.NoError(err)

	_, err = s.im.ParseToken(ctx, token)
	s.Error(err)
}
