package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	bCtx "github.com/nfty-labs/marketapi/base/ctx"
	"github.com/nfty-labs/marketapi/base/delivery"
	"github.com/nfty-labs/marketapi/domain"
)

type AuthMiddleware struct {
	auth domain.AuthUsecase
	gate domain.AccessGate
}

func New(auth domain.AuthUsecase, gate domain.AccessGate) *AuthMiddleware {
	return &AuthMiddleware{
		auth: auth,
		gate: gate,
	}
}

func (m *AuthMiddleware) Auth() echo.MiddlewareFunc {
	return middleware.KeyAuth(m.validateAuthToken)
}

func (m *AuthMiddleware) OptionalAuth() echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Skipper: func(c echo.Context) bool {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			return len(auth) == 0
		},
		Validator: m.validateAuthToken,
	})
}

func (m *AuthMiddleware) IsAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Get("ctx").(bCtx.Ctx)
			principal := c.Get("principal").(domain.Principal)

			if res, err := m.gate.IsAdmin(ctx, principal.Address); err != nil {
				return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
			} else if !res {
				return delivery.MakeJsonResp(c, http.StatusMethodNotAllowed, "require admin privilege")
			}
			return next(c)
		}
	}
}

func (m *AuthMiddleware) IsAdminOrAgent() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Get("ctx").(bCtx.Ctx)
			principal := c.Get("principal").(domain.Principal)

			if res, err := m.gate.IsAdmin(ctx, principal.Address); err != nil {
				return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
			} else if res {
				return next(c)
			}

			if res, err := m.gate.IsAgent(ctx, principal.Address); err != nil {
				return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
			} else if !res {
				return delivery.MakeJsonResp(c, http.StatusMethodNotAllowed, "require admin or agent privilege")
			}
			return next(c)
		}
	}
}

func (m *AuthMiddleware) validateAuthToken(key string, c echo.Context) (bool, error) {
	ctx := c.Get("ctx").(bCtx.Ctx)
	if principal, err := m.auth.ParseToken(ctx, key); err != nil {
		ctx.WithField("err", err).Error("auth.ParseToken failed")
		return false, err
	} else {
		c.Set("principal", principal)
		return true, nil
	}
}
