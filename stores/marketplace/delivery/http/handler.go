package http

import (
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	bCtx "github.com/nfty-labs/marketapi/base/ctx"
	"github.com/nfty-labs/marketapi/base/delivery"
	"github.com/nfty-labs/marketapi/domain"
	"github.com/nfty-labs/marketapi/domain/keys"
	"github.com/nfty-labs/marketapi/domain/marketplace"
	"github.com/nfty-labs/marketapi/middleware"
	"github.com/nfty-labs/marketapi/service/cache"
	authMiddleware "github.com/nfty-labs/marketapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	marketplace  marketplace.UseCase
	admin        marketplace.AdminUseCase
	activityRepo marketplace.ActivityRepo
	cache        cache.Service
}

func New(
	e *echo.Echo,
	authMiddleware *authMiddleware.AuthMiddleware,
	uc marketplace.UseCase,
	admin marketplace.AdminUseCase,
	activityRepo marketplace.ActivityRepo,
	cacheService cache.Service,
) {
	h := &handler{
		marketplace:  uc,
		admin:        admin,
		activityRepo: activityRepo,
		cache:        cacheService,
	}

	g := e.Group("/marketplace")

	g.POST("/offers", h.createOffer, authMiddleware.Auth())

	g.POST("/offers/on-behalf", h.createOfferOnBehalf, authMiddleware.Auth(), authMiddleware.IsAdminOrAgent())

	g.POST("/offers/:assetId/buy", h.buyOffer, authMiddleware.Auth())

	g.DELETE("/offers/:assetId", h.cancelOffer, authMiddleware.Auth(), authMiddleware.IsAdminOrAgent())

	g.GET("/offers/:assetId", h.getOffer)

	g.GET("/activities", h.getActivities)

	g.GET("/config", h.getConfig, middleware.CacheHttp(30*time.Second))

	gc := e.Group("/marketplace/config", authMiddleware.Auth(), authMiddleware.IsAdmin())

	gc.PATCH("/initial-fee", h.updateInitialFee)

	gc.PATCH("/regular-fee", h.updateRegularFee)

	gc.PATCH("/secondary-discount", h.updateSecondaryDiscount)

	gc.PATCH("/expiry", h.updateExpiry)

	gc.PATCH("/recipient", h.updateRecipient)

	gc.POST("/pause", h.togglePause)
}

func principalOf(c echo.Context) domain.Principal {
	return c.Get("principal").(domain.Principal)
}

func parsePrice(raw string) (*big.Int, error) {
	price, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, domain.ErrBadParamInput
	}
	return price, nil
}

func (h *handler) createOffer(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	type params struct {
		AssetId domain.AssetId `json:"assetId" validate:"required"`
		Price   string         `json:"price" validate:"required"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	price, err := parsePrice(p.Price)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if offer, err := h.marketplace.CreateOffer(ctx, principalOf(c), p.AssetId, price); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, offer)
	}
}

func (h *handler) createOfferOnBehalf(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	type params struct {
		AssetId domain.AssetId `json:"assetId" validate:"required"`
		Price   string         `json:"price" validate:"required"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	price, err := parsePrice(p.Price)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if offer, err := h.marketplace.CreateOfferOnBehalfOfOwner(ctx, principalOf(c), p.AssetId, price); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, offer)
	}
}

func (h *handler) buyOffer(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	type params struct {
		SecondaryShare domain.PerMille `json:"secondaryShare"`
		SuppliedValue  string          `json:"suppliedValue" validate:"required"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	suppliedValue, ok := new(big.Int).SetString(p.SuppliedValue, 10)
	if !ok {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	req := &marketplace.BuyRequest{
		AssetId:        domain.AssetId(c.Param("assetId")),
		SecondaryShare: p.SecondaryShare,
		SuppliedValue:  suppliedValue,
		Buyer:          principalOf(c),
	}

	if receipt, err := h.marketplace.BuyOffer(ctx, req); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, receipt)
	}
}

func (h *handler) cancelOffer(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	assetId := domain.AssetId(c.Param("assetId"))

	if err := h.marketplace.CancelOffer(ctx, principalOf(c), assetId); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) getOffer(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	assetId := domain.AssetId(c.Param("assetId"))

	if offer, err := h.marketplace.GetOffer(ctx, assetId); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, offer)
	}
}

type activitiesRes struct {
	Activities []marketplace.Activity `json:"activities"`
	Count      int                    `json:"count"`
}

func (h *handler) getActivities(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	type params struct {
		Offset  int             `query:"offset"`
		Limit   int             `query:"limit"`
		AssetId *domain.AssetId `query:"assetId"`
		Account *domain.Address `query:"account"`
		Type    string          `query:"type"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if p.Limit <= 0 || p.Limit > 100 {
		p.Limit = 20
	}

	opts := []marketplace.FindActivityOptions{
		marketplace.ActivityWithPagination(p.Offset, p.Limit),
	}

	if p.AssetId != nil {
		opts = append(opts, marketplace.ActivityWithAssetId(*p.AssetId))
	}

	if p.Account != nil {
		opts = append(opts, marketplace.ActivityWithAccount(*p.Account))
	}

	if p.Type != "" {
		opts = append(opts, marketplace.ActivityWithTypes(marketplace.ActivityType(p.Type)))
	}

	key := keys.CacheKey(keys.PfxActivities, keys.MD5(fmt.Sprintf("%+v", p)))

	res := &activitiesRes{}
	err := h.cache.GetByFunc(ctx, key, res, func() (interface{}, error) {
		activities, err := h.activityRepo.FindAll(ctx, opts...)
		if err != nil {
			return nil, err
		}
		count, err := h.activityRepo.Count(ctx, opts...)
		if err != nil {
			return nil, err
		}
		return &activitiesRes{Activities: activities, Count: count}, nil
	})
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getConfig(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	if cfg, err := h.admin.GetConfig(ctx); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, cfg)
	}
}

func (h *handler) updateRate(c echo.Context, update func(bCtx.Ctx, domain.Principal, domain.PerMille) error) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	type params struct {
		Rate domain.PerMille `json:"rate"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := update(ctx, principalOf(c), p.Rate); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) updateInitialFee(c echo.Context) error {
	return h.updateRate(c, h.admin.UpdateInitialPlatformFee)
}

func (h *handler) updateRegularFee(c echo.Context) error {
	return h.updateRate(c, h.admin.UpdateRegularPlatformFee)
}

func (h *handler) updateSecondaryDiscount(c echo.Context) error {
	return h.updateRate(c, h.admin.UpdateDiscountToPayInSecondary)
}

func (h *handler) updateExpiry(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	type params struct {
		Duration string `json:"duration" validate:"required"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	d, err := time.ParseDuration(p.Duration)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid duration")
	}

	if err := h.admin.UpdateExpiryDuration(ctx, principalOf(c), d); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) updateRecipient(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	type params struct {
		Recipient domain.Address `json:"recipient" validate:"required,address"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid address")
	}

	if err := h.admin.UpdatePlatformFeeRecipient(ctx, principalOf(c), p.Recipient); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) togglePause(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	if paused, err := h.admin.TogglePause(ctx, principalOf(c)); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, map[string]bool{"paused": paused})
	}
}
