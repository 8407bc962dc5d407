package cmd

import (
	"errors"
	"fmt"
	"houseprice/internal/apiclient"
	"houseprice/internal/config"
	"houseprice/internal/core"
	"houseprice/internal/dashboard"
	"houseprice/internal/db"
	"houseprice/internal/http/handler"
	"houseprice/internal/http/handler/middleware"
	"houseprice/internal/http/payload"
	"houseprice/internal/http/server"
	"houseprice/internal/metrics"
	"houseprice/internal/predict"
	"houseprice/internal/repository"
	"houseprice/pkg/jwt"
	"houseprice/pkg/log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Start runs the given subcommand. Without one it serves the API and the dashboard.
func Start(args []string) error {
	if len(args) > 0 && args[0] == "healthcheck" {
		return Healthcheck()
	}
	if len(args) > 0 {
		return fmt.Errorf("unknown command %q", args[0])
	}

	config, err := config.NewApp()
	if err != nil {
		log.NewZapLogger("houseprice", zapcore.InfoLevel).Errorw("failed to create config", "error", err)
		return err
	}

	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		return err
	}
	logger := log.NewZapLogger("houseprice", level)
	defer logger.Sync()

	dbConn, err := db.NewGormDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}
	defer dbConn.Close()

	// repository
	repo := repository.NewRepository(dbConn)
	if err = repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	promMetrics := metrics.New()

	estimator, err := newEstimator(logger, config)
	if err != nil {
		logger.Errorw("failed to load predictor", "predictor", config.Predictor, "error", err)
		return err
	}

	pricer := core.NewPricer(
		logger,
		repo,
		jwtService,
		promMetrics.InstrumentEstimator(config.Predictor, estimator),
		config.TokenTTL)

	// api
	pricerHlr := handler.NewPricerHandler(
		logger,
		payload.DecodeValidator{},
		pricer)

	authenticator := middleware.NewAuthenticator(logger, pricer)
	limiter := middleware.NewRateLimiter(logger, config.AuthRateLimit, config.AuthRateBurst)

	apiMux := http.NewServeMux()
	pricerHlr.Routes(apiMux, authenticator.Require, limiter.Limit)
	apiMux.Handle(handler.Metrics, promMetrics.Handler())

	apiHdlr := promMetrics.InstrumentHandler(apiMux)
	apiHdlr = middleware.WithLogging(logger.Named("api"), apiHdlr)
	apiHdlr = middleware.WithRequestID(apiHdlr)

	// dashboard
	dash, err := dashboard.New(
		logger,
		apiclient.New(config.APIURL, apiclient.DefaultTimeout),
		config.SecureCookies)
	if err != nil {
		logger.Errorw("failed to build dashboard", "error", err)
		return err
	}

	dashMux := http.NewServeMux()
	dash.Routes(dashMux)

	dashHdlr := middleware.WithLogging(logger.Named("dashboard"), dashMux)
	dashHdlr = middleware.WithRequestID(dashHdlr)

	return run(logger,
		server.NewHTTP(logger, "api", apiHdlr, config.APIPort),
		server.NewHTTP(logger, "dashboard", dashHdlr, config.DashboardPort))
}

// newEstimator builds the configured predictor. The pipeline is loaded here so a
// missing artifact stops the process instead of failing requests.
func newEstimator(logger *zap.SugaredLogger, cfg config.App) (core.Estimator, error) {
	if cfg.Predictor != config.PredictorPipeline {
		logger.Infow("using formula predictor")
		return predict.DefaultFormula(), nil
	}

	pipeline := predict.NewLazyPipeline(cfg.ModelPath)
	if err := pipeline.Warm(); err != nil {
		return nil, fmt.Errorf("warm pipeline: %w", err)
	}

	logger.Infow("using pipeline predictor", "model_path", pipeline.Path())
	return pipeline, nil
}

func run(logger *zap.SugaredLogger, servers ...*server.HTTPServer) error {
	// expect a signal to gracefully shutdown the servers
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(sig)

	errChan := make(chan error, len(servers))
	for _, srv := range servers {
		go func() {
			errChan <- <-srv.Run()
		}()
	}

	var err error
	select {
	case s := <-sig:
		logger.Infow("shutdown signal received", "signal", s.String())
	case err = <-errChan:
		logger.Errorw("server stopped unexpectedly", "error", err)
	}

	var sdErrs []error
	for _, srv := range servers {
		sdErrs = append(sdErrs, srv.Shutdown())
	}
	if sdErr := errors.Join(sdErrs...); sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
