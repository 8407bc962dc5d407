package dashboard

import (
	"context"
	"houseprice/internal/apiclient"
	"houseprice/internal/core"
	"houseprice/internal/predict"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name APIClient . APIClient
type APIClient interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (apiclient.Token, error)
	Me(ctx context.Context, token string) (core.UserProfile, error)
	Refresh(ctx context.Context, token string) (apiclient.Token, error)
	Predict(ctx context.Context, token string, features predict.Features) (core.PredictionRecord, error)
	Records(ctx context.Context, token string) ([]core.PredictionRecord, error)
	Delete(ctx context.Context, token string, id uint) error
}
