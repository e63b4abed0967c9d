package main

import (
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/nfty-labs/marketapi/base/ctx"
	"github.com/nfty-labs/marketapi/base/database/mongoclient"
	"github.com/nfty-labs/marketapi/base/log"
	"github.com/nfty-labs/marketapi/base/metrics"
	"github.com/nfty-labs/marketapi/base/priceformatter"
	bValidator "github.com/nfty-labs/marketapi/base/validator"
	"github.com/nfty-labs/marketapi/domain"
	"github.com/nfty-labs/marketapi/domain/marketplace"
	mmiddleware "github.com/nfty-labs/marketapi/middleware"
	"github.com/nfty-labs/marketapi/service/cache"
	"github.com/nfty-labs/marketapi/service/cache/provider/primitive"
	"github.com/nfty-labs/marketapi/service/oracle"
	"github.com/nfty-labs/marketapi/service/query"
	agent_repository "github.com/nfty-labs/marketapi/stores/agent/repository"
	agent_usecase "github.com/nfty-labs/marketapi/stores/agent/usecase"
	asset_repository "github.com/nfty-labs/marketapi/stores/asset/repository"
	auth_delivery "github.com/nfty-labs/marketapi/stores/auth/delivery/http"
	auth_middleware "github.com/nfty-labs/marketapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/nfty-labs/marketapi/stores/auth/usecase"
	hc_delivery "github.com/nfty-labs/marketapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/nfty-labs/marketapi/stores/healthcheck/repository"
	hc_usecase "github.com/nfty-labs/marketapi/stores/healthcheck/usecase"
	marketplace_delivery "github.com/nfty-labs/marketapi/stores/marketplace/delivery/http"
	marketplace_repository "github.com/nfty-labs/marketapi/stores/marketplace/repository"
	marketplace_usecase "github.com/nfty-labs/marketapi/stores/marketplace/usecase"
	token_repository "github.com/nfty-labs/marketapi/stores/token/repository"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init in-process cache
	context.Info("init cache")
	cacheProvider := primitive.NewPrimitive("marketapi", viper.GetInt("cache.sizeMB"))
	activityCache := cache.New(cache.ServiceConfig{
		Ttl:   viper.GetDuration("cache.activityTtl"),
		Pfx:   "marketplace",
		Cache: cacheProvider,
	})

	mmiddleware.SetupCache()

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, cacheProvider)
	offerRepo := marketplace_repository.NewOfferRepo()
	configRepo := marketplace_repository.NewConfigRepo(marketplace.FeeConfig{
		InitialRate:       domain.PerMille(viper.GetInt64("marketplace.initialPlatformFeeRate")),
		RegularRate:       domain.PerMille(viper.GetInt64("marketplace.regularPlatformFeeRate")),
		DiscountRate:      domain.PerMille(viper.GetInt64("marketplace.secondaryPayDiscountRate")),
		ExpiryDuration:    viper.GetDuration("marketplace.offerExpiryDuration"),
		PlatformRecipient: domain.Address(viper.GetString("marketplace.platformFeeRecipient")).ToLower(),
	})
	activityRepo := marketplace_repository.NewActivityRepo(q)
	assetRegistry := asset_repository.NewAssetRegistryRepo(q)
	valueLedger := token_repository.NewValueLedgerRepo()
	primaryLedger := token_repository.NewPrimaryLedgerRepo()
	agentRepo := agent_repository.NewAgentRepo(q)

	adminAddresses := viper.GetStringSlice("admin.addresses")
	gate := agent_usecase.NewAccessGate(adminAddresses, agentRepo)

	swapOracle := oracle.NewFixed(big.NewInt(viper.GetInt64("marketplace.swapRate")))
	priceFormatter := priceformatter.New(
		viper.GetInt32("marketplace.primaryDecimals"),
		viper.GetInt32("marketplace.secondaryDecimals"),
	)

	hc := hc_usecase.New(hcRepo)
	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"), clock.New())
	marketplaceUC := marketplace_usecase.NewMarketplaceUseCase(&marketplace_usecase.MarketplaceUseCaseCfg{
		OfferRepo:      offerRepo,
		ConfigRepo:     configRepo,
		ActivityRepo:   activityRepo,
		AssetRegistry:  assetRegistry,
		ValueLedger:    valueLedger,
		PrimaryLedger:  primaryLedger,
		Oracle:         swapOracle,
		Gate:           gate,
		Clock:          clock.New(),
		PriceFormatter: priceFormatter,
		Metrics:        metrics.New("marketplace"),
		EngineAddress:  domain.Address(viper.GetString("marketplace.engineAddress")).ToLower(),
	})
	adminUC := marketplace_usecase.NewAdminUseCase(&marketplace_usecase.AdminUseCaseCfg{
		ConfigRepo: configRepo,
		Gate:       gate,
	})

	authMiddleware := auth_middleware.New(auth, gate)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth)
	marketplace_delivery.New(e, authMiddleware, marketplaceUC, adminUC, activityRepo, activityCache)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
