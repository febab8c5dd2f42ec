package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"

	"github.com/demarket/goapi/base/ctx"
	"github.com/demarket/goapi/base/env"
	"github.com/demarket/goapi/base/log"
	bValidator "github.com/demarket/goapi/base/validator"
	"github.com/demarket/goapi/domain"
	mmiddleware "github.com/demarket/goapi/middleware"
	"github.com/demarket/goapi/service/chain"
	"github.com/demarket/goapi/service/chain/contract"
	hc_delivery "github.com/demarket/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/demarket/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/demarket/goapi/stores/healthcheck/usecase"
	item_delivery "github.com/demarket/goapi/stores/item/delivery/http"
	item_usecase "github.com/demarket/goapi/stores/item/usecase"
	transaction_delivery "github.com/demarket/goapi/stores/transaction/delivery/http"
	transaction_usecase "github.com/demarket/goapi/stores/transaction/usecase"
)

func init() {
	// .env is optional, the container env usually carries everything
	_ = godotenv.Load()

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

// envKey resolves a per-environment config key, letting the matching
// environment variable (e.g. SEPOLIA_RPC_URL) override the yaml value.
func envKey(activeEnv, key, envSuffix string) string {
	if v := os.Getenv(strings.ToUpper(activeEnv) + envSuffix); v != "" {
		return v
	}
	return viper.GetString(fmt.Sprintf("environments.%s.%s", activeEnv, key))
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

	// init chain service
	activeEnv := env.ActiveEnv()
	context.WithField("activeEnv", activeEnv).Info("init chain client")
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrl:          envKey(activeEnv, "rpcUrl", "_RPC_URL"),
		PrivateKey:      envKey(activeEnv, "privateKey", "_PRIVATE_KEY"),
		ContractAddress: envKey(activeEnv, "contractAddress", "_CONTRACT_ADDRESS"),
		ActiveEnv:       activeEnv,
	})
	if err != nil {
		context.WithField("err", err).Panic("failed to init chain client")
	}

	contractAddress := domain.Address(envKey(activeEnv, "contractAddress", "_CONTRACT_ADDRESS"))
	marketplace := contract.NewMarketplace(chainService, contractAddress)
	erc20Factory := contract.NewErc20Factory(chainService)

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(chainService)
	hc := hc_usecase.New(hcRepo)
	item := item_usecase.New(marketplace)
	transaction := transaction_usecase.New(marketplace, erc20Factory, chainService)

	hc_delivery.New(e, hc, marketplace.Address())
	item_delivery.New(e, item)
	transaction_delivery.New(e, transaction)

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
