package main

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/olympusreit/gateway/internal/chain"
	"github.com/olympusreit/gateway/internal/config"
	"github.com/olympusreit/gateway/internal/httpapi"
	"github.com/olympusreit/gateway/internal/reit"
)

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger().Level(lvl)
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := newLogger(cfg.LogLevel)

	// Read endpoints cannot serve without these; fail fast.
	if cfg.RPCURL == "" || cfg.ContractAddress == "" {
		log.Fatal().Msg("RPC_URL and CONTRACT_ADDRESS must be set")
	}
	if !common.IsHexAddress(cfg.ContractAddress) {
		log.Fatal().Str("contract", cfg.ContractAddress).Msg("CONTRACT_ADDRESS is not a valid address")
	}

	client, err := chain.Dial(context.Background(), chain.Options{
		RPCURL:     cfg.RPCURL,
		PKHex:      cfg.AdminPKHex,
		RatePerSec: cfg.RPCRatePerSec,
		Attempts:   cfg.CallAttempts,
		Log:        log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("node connection failed")
	}
	defer client.Close()

	contract := reit.NewContract(common.HexToAddress(cfg.ContractAddress))
	reader := reit.NewReader(client, contract, cfg.InfoCacheTTL)
	quoter := reit.NewQuoter(reader)
	builder := reit.NewBuilder(quoter, contract)
	executor := reit.NewExecutor(client, contract, log)

	if !executor.Ready() {
		log.Warn().Msg("no ADMIN_PRIVATE_KEY configured; admin endpoints will refuse to execute")
	}

	handlers := httpapi.NewHandlers(client, reader, quoter, builder, executor)
	router := httpapi.NewRouter(handlers, cfg.AdminAPIKey, log)

	log.Info().
		Str("addr", cfg.ListenAddr).
		Str("contract", cfg.ContractAddress).
		Str("chainId", client.ChainID().String()).
		Msg("gateway listening")
	if err := http.ListenAndServe(cfg.ListenAddr, router); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
