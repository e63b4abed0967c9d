package usecase

import (
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/golang-jwt/jwt"

	bCtx "github.com/nfty-labs/marketapi/base/ctx"
	"github.com/nfty-labs/marketapi/domain"
)

const tokenLifetime = 24 * time.Hour

type impl struct {
	jwtSecret []byte
	clock     clock.Clock
}

func New(jwtSecret string, clk clock.Clock) domain.AuthUsecase {
	return &impl{
		jwtSecret: []byte(jwtSecret),
		clock:     clk,
	}
}

// SignToken issues a bearer token for the principal. The isContract
// capability tag is fixed at issuance, callers cannot shed it later.
func (im *impl) SignToken(ctx bCtx.Ctx, principal domain.Principal) (string, error) {
	if principal.Address.IsEmpty() {
		return "", domain.ErrInvalidAddress
	}

	claims := domain.JwtCustomClaims{
		Address:    principal.Address.ToLowerStr(),
		IsContract: principal.IsContract,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: im.clock.Now().Add(tokenLifetime).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		ctx.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(ctx bCtx.Ctx, str string) (domain.Principal, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})

	if token != nil {
		if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
			return domain.Principal{
				Address:    domain.Address(claims.Address),
				IsContract: claims.IsContract,
			}, nil
		}
	}

	return domain.Principal{}, err
}
