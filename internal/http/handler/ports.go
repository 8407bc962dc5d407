package handler

import (
	"context"
	"houseprice/internal/core"
	"houseprice/internal/predict"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name PricingService . PricingService
type PricingService interface {
	Register(ctx context.Context, msg core.AuthMessage) error
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	Me(ctx context.Context, username string) (core.UserProfile, error)
	Refresh(ctx context.Context, username string) (string, error)
	Predict(ctx context.Context, features predict.Features) (core.PredictionRecord, error)
	ListRecords(ctx context.Context) ([]core.PredictionRecord, error)
	DeleteRecord(ctx context.Context, id uint) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
	DecodeFormPayload(r *http.Request, object any) error
}
