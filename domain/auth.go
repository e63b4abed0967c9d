package domain

import (
	"github.com/golang-jwt/jwt"
	"github.com/nfty-labs/marketapi/base/ctx"
)

type JwtCustomClaims struct {
	Address    string `json:"data"` // name data for backward compatibility
	IsContract bool   `json:"isContract"`
	jwt.StandardClaims
}

type AuthUsecase interface {
	SignToken(ctx ctx.Ctx, principal Principal) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (Principal, error)
}
