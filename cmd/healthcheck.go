package cmd

import (
	"context"
	"houseprice/internal/config"
	"houseprice/internal/healthcheck"
)

// Healthcheck succeeds only when the API and the dashboard both accept connections.
func Healthcheck() error {
	cfg, err := config.NewHealthcheck()
	if err != nil {
		return err
	}

	probe := healthcheck.NewProbe(cfg.Addrs, healthcheck.DefaultTimeout)
	return probe.Check(context.Background())
}
