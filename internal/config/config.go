package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	errEnvVarNotFound error = errors.New("environment variable not found")
	errEnvVarInvalid  error = errors.New("environment variable invalid")
)

const (
	jwtSecretEnvKey      = "JWT_SECRET"
	dbConnEnvKey         = "DB_CONNECTION_URL"
	apiPortEnvKey        = "API_PORT"
	dashboardPortEnvKey  = "DASHBOARD_PORT"
	apiURLEnvKey         = "API_URL"
	tokenTTLEnvKey       = "TOKEN_TTL"
	predictorEnvKey      = "PREDICTOR"
	modelPathEnvKey      = "MODEL_PATH"
	logLevelEnvKey       = "LOG_LEVEL"
	authRateLimitEnvKey  = "AUTH_RATE_LIMIT"
	authRateBurstEnvKey  = "AUTH_RATE_BURST"
	secureCookiesEnvKey  = "SECURE_COOKIES"
	healthcheckAddrsKey  = "HEALTHCHECK_ADDRS"
	defaultDBConnection  = "sqlite://data.db"
	defaultAPIPort       = "8001"
	defaultDashboardPort = "8501"
	defaultTokenTTL      = 60 * time.Minute
)

const (
	PredictorFormula  = "formula"
	PredictorPipeline = "pipeline"
)

type App struct {
	JWTSecret       string
	DBConnectionURL string
	APIPort         string
	DashboardPort   string
	APIURL          string
	TokenTTL        time.Duration
	Predictor       string
	ModelPath       string
	LogLevel        string
	AuthRateLimit   float64
	AuthRateBurst   int
	SecureCookies   bool
}

type Healthcheck struct {
	Addrs []string
}

// LoadDotEnv reads .env from the working directory when it exists. Variables
// already set in the environment win.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

func NewApp() (App, error) {
	if err := LoadDotEnv(); err != nil {
		return App{}, err
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok || jwtSecret == "" {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	apiPort := lookupOr(apiPortEnvKey, defaultAPIPort)
	app := App{
		JWTSecret:       jwtSecret,
		DBConnectionURL: lookupOr(dbConnEnvKey, defaultDBConnection),
		APIPort:         apiPort,
		DashboardPort:   lookupOr(dashboardPortEnvKey, defaultDashboardPort),
		APIURL:          lookupOr(apiURLEnvKey, "http://localhost:"+apiPort),
		Predictor:       strings.ToLower(lookupOr(predictorEnvKey, PredictorFormula)),
		ModelPath:       lookupOr(modelPathEnvKey, ""),
		LogLevel:        lookupOr(logLevelEnvKey, "info"),
	}

	var err error
	if app.TokenTTL, err = parseEnv(tokenTTLEnvKey, defaultTokenTTL, time.ParseDuration); err != nil {
		return App{}, err
	}
	if app.TokenTTL <= 0 {
		return App{}, fmt.Errorf("%w: %s must be positive", errEnvVarInvalid, tokenTTLEnvKey)
	}
	if app.AuthRateLimit, err = parseEnv(authRateLimitEnvKey, 5, parseFloat); err != nil {
		return App{}, err
	}
	if app.AuthRateBurst, err = parseEnv(authRateBurstEnvKey, 10, strconv.Atoi); err != nil {
		return App{}, err
	}
	if app.SecureCookies, err = parseEnv(secureCookiesEnvKey, false, strconv.ParseBool); err != nil {
		return App{}, err
	}

	if app.Predictor != PredictorFormula && app.Predictor != PredictorPipeline {
		return App{}, fmt.Errorf("%w: %s must be %q or %q", errEnvVarInvalid, predictorEnvKey, PredictorFormula, PredictorPipeline)
	}

	return app, nil
}

// NewHealthcheck only needs the ports, so it works without the API secrets.
func NewHealthcheck() (Healthcheck, error) {
	if err := LoadDotEnv(); err != nil {
		return Healthcheck{}, err
	}

	list, ok := os.LookupEnv(healthcheckAddrsKey)
	if !ok || strings.TrimSpace(list) == "" {
		list = strings.Join([]string{
			net.JoinHostPort("127.0.0.1", lookupOr(apiPortEnvKey, defaultAPIPort)),
			net.JoinHostPort("127.0.0.1", lookupOr(dashboardPortEnvKey, defaultDashboardPort)),
		}, ",")
	}

	var addrs []string
	for _, addr := range strings.Split(list, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			addrs = append(addrs, addr)
		}
	}
	return Healthcheck{Addrs: addrs}, nil
}

func lookupOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func parseEnv[T any](key string, fallback T, parse func(string) (T, error)) (T, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback, nil
	}

	v, err := parse(raw)
	if err != nil {
		return fallback, fmt.Errorf("%w: %s=%q: %w", errEnvVarInvalid, key, raw, err)
	}
	return v, nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
