// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/ziflex/lecho/v2"
	"golang.org/x/time/rate"

	"github.com/optakt/blink-actions/api/actions"
	"github.com/optakt/blink-actions/blink/assembler"
	"github.com/optakt/blink-actions/blink/catalog"
	"github.com/optakt/blink-actions/blink/composer"
	"github.com/optakt/blink-actions/blink/configuration"
	"github.com/optakt/blink-actions/blink/cosigner"
	"github.com/optakt/blink-actions/blink/keys"
	"github.com/optakt/blink-actions/blink/oracle"
	"github.com/optakt/blink-actions/blink/submitter"
	"github.com/optakt/blink-actions/blink/transactor"
	"github.com/optakt/blink-actions/service/metrics"
)

const (
	success = 0
	failure = 1
)

func main() {
	os.Exit(run())
}

func run() int {

	// Signal catching for clean shutdown.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	// Command line parameter initialization.
	var (
		flagBaseURL    string
		flagCacheSize  uint64
		flagCommitment string
		flagEnvFile    string
		flagKeyVar     string
		flagLevel      string
		flagMetrics    string
		flagPort       uint16
		flagProxies    []string
		flagRate       float64
		flagRetries    uint64
		flagRPC        string
		flagTimeout    time.Duration
	)

	pflag.StringVarP(&flagBaseURL, "base-url", "b", "", "public URL used to render action links (derived from requests if empty)")
	pflag.Uint64Var(&flagCacheSize, "cache-size", oracle.DefaultConfig.CacheSize, "maximum size of the ledger read cache in bytes")
	pflag.StringVarP(&flagCommitment, "commitment", "c", string(configuration.DefaultCommitment), "commitment level used for every ledger read")
	pflag.StringVarP(&flagEnvFile, "env-file", "e", ".env", "dotenv file to load environment variables from")
	pflag.StringVarP(&flagKeyVar, "key-var", "k", keys.DefaultVariable, "environment variable holding the server secret key")
	pflag.StringVarP(&flagLevel, "level", "l", "info", "log output level")
	pflag.StringVarP(&flagMetrics, "metrics", "m", "", "address to expose metrics on (disabled if empty)")
	pflag.Uint16VarP(&flagPort, "port", "p", 3000, "port to host the actions API on")
	pflag.StringSliceVar(&flagProxies, "trusted-proxy", nil, "CIDR ranges of reverse proxies whose forwarded client addresses are trusted")
	pflag.Float64Var(&flagRate, "rate", 1, "maximum number of server-side executions per second and client")
	pflag.Uint64Var(&flagRetries, "retries", oracle.DefaultConfig.Retries, "number of retries for failed ledger reads")
	pflag.StringVarP(&flagRPC, "rpc", "r", "", "ledger RPC endpoint (defaults to SOLANA_RPC, then mainnet-beta)")
	pflag.DurationVarP(&flagTimeout, "timeout", "t", oracle.DefaultConfig.Timeout, "timeout of a single ledger read")

	pflag.Parse()

	// Logger initialization.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Error().Str("level", flagLevel).Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)
	elog := lecho.From(log)

	// Environment and server key initialization.
	err = keys.LoadEnvironment(flagEnvFile)
	if err != nil {
		log.Error().Str("env_file", flagEnvFile).Err(err).Msg("could not load environment")
		return failure
	}
	key, err := keys.FromEnvironment(flagKeyVar)
	if err != nil {
		log.Error().Str("key_var", flagKeyVar).Err(err).Msg("could not load server key")
		return failure
	}
	log.Info().Str("server", key.String()).Msg("server key loaded")

	endpoint := flagRPC
	if endpoint == "" {
		endpoint = os.Getenv("SOLANA_RPC")
	}
	if endpoint == "" {
		endpoint = rpc.MainNetBeta_RPC
	}

	commitment := rpc.CommitmentType(flagCommitment)
	switch commitment {
	case rpc.CommitmentProcessed, rpc.CommitmentConfirmed, rpc.CommitmentFinalized:
	default:
		log.Error().Str("commitment", flagCommitment).Msg("invalid commitment level")
		return failure
	}

	proxies := make([]*net.IPNet, 0, len(flagProxies))
	for _, cidr := range flagProxies {
		_, proxy, err := net.ParseCIDR(cidr)
		if err != nil {
			log.Error().Str("proxy", cidr).Err(err).Msg("could not parse trusted proxy range")
			return failure
		}
		proxies = append(proxies, proxy)
	}

	cat := catalog.Default()
	err = cat.Validate()
	if err != nil {
		log.Error().Err(err).Msg("invalid action catalog")
		return failure
	}

	// Actions API initialization.
	client := rpc.New(endpoint)
	registry := prometheus.NewRegistry()
	read, err := oracle.New(client,
		oracle.WithCommitment(commitment),
		oracle.WithTimeout(flagTimeout),
		oracle.WithRetries(flagRetries),
		oracle.WithCacheSize(flagCacheSize),
	)
	if err != nil {
		log.Error().Err(err).Msg("could not initialize oracle")
		return failure
	}
	timed := metrics.NewOracle(registry, read)
	submit := submitter.New(log, client, submitter.WithCommitment(commitment))
	transact := transactor.New(
		cat,
		timed,
		composer.New(configuration.Default(), key.PublicKey()),
		assembler.New(),
		cosigner.New(key, timed),
		submit,
		key.PublicKey(),
	)
	ctrl := actions.NewServer(log, cat, metrics.NewTransactor(registry, transact, cat.Names()), actions.WithBaseURL(flagBaseURL))

	server := echo.New()
	server.HideBanner = true
	server.HidePort = true
	server.IPExtractor = actions.Extractor(proxies...)
	server.Logger = elog
	server.Use(lecho.Middleware(lecho.Config{Logger: elog}))
	server.Use(middleware.Recover())
	server.Use(ctrl.Headers)

	limit := actions.Limiter(rate.Limit(flagRate), server.IPExtractor)
	body := middleware.BodyLimit("4K")

	server.GET("/actions.json", ctrl.Rules)
	server.GET("/api/actions/:blink", ctrl.Discover)
	server.OPTIONS("/api/actions/:blink", ctrl.Preflight)
	server.POST("/api/actions/:blink", ctrl.Build, body)
	server.OPTIONS("/api/actions/:blink/execute", ctrl.Preflight)
	server.POST("/api/actions/:blink/execute", ctrl.Execute, body, limit)

	var expose *metrics.Server
	if flagMetrics != "" {
		expose = metrics.NewServer(log, flagMetrics, registry)
	}

	// This section launches the main executing components in their own
	// goroutine, so they can run concurrently. Afterwards, we wait for an
	// interrupt signal in order to proceed with the next section.
	done := make(chan struct{})
	failed := make(chan struct{})
	go func() {
		log.Info().Str("rpc", endpoint).Msg("blink action server starting")
		err := server.Start(fmt.Sprint(":", flagPort))
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("blink action server failed")
			close(failed)
		} else {
			close(done)
		}
		log.Info().Msg("blink action server stopped")
	}()
	if expose != nil {
		go func() {
			err := expose.Start()
			if err != nil {
				log.Warn().Err(err).Msg("metrics server failed")
			}
		}()
	}

	select {
	case <-sig:
		log.Info().Msg("blink action server stopping")
	case <-done:
		log.Info().Msg("blink action server done")
	case <-failed:
		log.Warn().Msg("blink action server aborted")
		return failure
	}
	go func() {
		<-sig
		log.Warn().Msg("forcing exit")
		os.Exit(1)
	}()

	// The following code starts a shut down with a certain timeout and makes
	// sure that the main executing components are shutting down within the
	// allocated shutdown time. Dispatched transactions that are still waiting
	// for confirmation are abandoned once the server is down.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	err = server.Shutdown(ctx)
	if err != nil {
		log.Error().Err(err).Msg("could not shut down actions API")
		return failure
	}
	if expose != nil {
		err = expose.Stop(ctx)
		if err != nil {
			log.Error().Err(err).Msg("could not shut down metrics server")
			return failure
		}
	}
	submit.Stop()

	return success
}
