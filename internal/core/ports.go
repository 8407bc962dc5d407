package core

import (
	"context"
	"houseprice/internal/predict"
	"houseprice/internal/repository"
	tokenIssuer "houseprice/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, username, passwordHash string) (repository.User, error)
	GetUserFromDB(ctx context.Context, username string) (repository.User, error)
	SavePrediction(ctx context.Context, prediction repository.Prediction) (repository.Prediction, error)
	GetPredictions(ctx context.Context) ([]repository.Prediction, error)
	DeletePrediction(ctx context.Context, id uint) error
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name Estimator . Estimator
type Estimator interface {
	Estimate(ctx context.Context, features predict.Features) (float64, error)
}
