package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	bCtx "github.com/nfty-labs/marketapi/base/ctx"
	"github.com/nfty-labs/marketapi/base/delivery"
	"github.com/nfty-labs/marketapi/domain"
)

type authHandler struct {
	auth domain.AuthUsecase
}

func New(e *echo.Echo, auth domain.AuthUsecase) {
	handler := &authHandler{
		auth: auth,
	}
	g := e.Group("/auth")
	g.POST("/sign", handler.sign)
}

func (h *authHandler) sign(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	type params struct {
		Address    domain.Address `json:"address" validate:"required,address"`
		IsContract bool           `json:"isContract"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid address")
	}

	principal := domain.Principal{
		Address:    p.Address,
		IsContract: p.IsContract,
	}

	if tkn, err := h.auth.SignToken(ctx, principal); err != nil {
		ctx.WithField("err", err).Error("auth.SignToken failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, tkn)
	}
}
