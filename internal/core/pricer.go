package core

import (
	"context"
	"errors"
	"fmt"
	"houseprice/internal/predict"
	"houseprice/internal/repository"
	tokenIssuer "houseprice/pkg/jwt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrIncorrectPassword error = errors.New("incorrect password")
	ErrUserNotFound      error = errors.New("user not found")
	ErrUserExists        error = errors.New("username already registered")
	ErrUnauthenticated   error = errors.New("could not validate credentials")
	ErrRecordNotFound    error = errors.New("record not found")
)

// Pricer registers and authenticates users, prices properties and keeps the
// prediction history.
type Pricer struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer JWTIssuer
	estimator Estimator
	tokenTTL  time.Duration
}

func NewPricer(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer, estimator Estimator, tokenTTL time.Duration) *Pricer {
	return &Pricer{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
		estimator: estimator,
		tokenTTL:  tokenTTL,
	}
}

// Register stores a new user with a bcrypt hash of the password.
func (p *Pricer) Register(ctx context.Context, msg AuthMessage) error {
	_, err := p.repo.GetUserFromDB(ctx, msg.Username)
	if err == nil {
		return ErrUserExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return fmt.Errorf("get user from db: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if _, err = p.repo.CreateUser(ctx, msg.Username, string(hash)); err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return ErrUserExists
		}
		return fmt.Errorf("create user: %w", err)
	}

	p.logs.Infow("user registered", "username", msg.Username)
	return nil
}

// Authenticate checks the credentials against the stored hash and returns a signed token.
func (p *Pricer) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := p.repo.GetUserFromDB(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	return p.issueToken(user.Username)
}

// Identify resolves a bearer token to the username it was issued for. The user
// must still exist.
func (p *Pricer) Identify(ctx context.Context, token string) (string, error) {
	claims, err := p.jwtIssuer.Validate(token)
	if err != nil {
		return "", fmt.Errorf("validate jwt token: %w: %w", err, ErrUnauthenticated)
	}

	username, _ := claims["sub"].(string)
	if username == "" {
		return "", fmt.Errorf("token without subject: %w", ErrUnauthenticated)
	}

	if _, err = p.repo.GetUserFromDB(ctx, username); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", fmt.Errorf("unknown subject %q: %w", username, ErrUnauthenticated)
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	return username, nil
}

func (p *Pricer) Me(ctx context.Context, username string) (UserProfile, error) {
	user, err := p.repo.GetUserFromDB(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserProfile{}, ErrUserNotFound
		}
		return UserProfile{}, fmt.Errorf("get user from db: %w", err)
	}

	return UserProfile{
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}, nil
}

// Refresh issues a new token for an already identified user.
func (p *Pricer) Refresh(_ context.Context, username string) (string, error) {
	return p.issueToken(username)
}

// Predict prices the property and stores the result.
func (p *Pricer) Predict(ctx context.Context, features predict.Features) (PredictionRecord, error) {
	price, err := p.estimator.Estimate(ctx, features)
	if err != nil {
		return PredictionRecord{}, fmt.Errorf("estimate price: %w", err)
	}

	saved, err := p.repo.SavePrediction(ctx, repository.Prediction{
		Suburb:        features.Suburb,
		PropertyType:  features.PropertyType,
		Bedrooms:      features.Bedrooms,
		Bathrooms:     features.Bathrooms,
		Parking:       features.Parking,
		LandSize:      features.LandSize,
		BuildingSize:  features.BuildingSize,
		Postcode:      features.Postcode,
		SchoolsNearby: features.SchoolsNearby,
		Price:         price,
	})
	if err != nil {
		return PredictionRecord{}, fmt.Errorf("save prediction: %w", err)
	}

	p.logs.Infow("prediction stored", "id", saved.ID, "price", saved.Price)
	return predictionToRecord(saved), nil
}

// ListRecords returns every stored prediction, newest first.
func (p *Pricer) ListRecords(ctx context.Context) ([]PredictionRecord, error) {
	predictions, err := p.repo.GetPredictions(ctx)
	if err != nil {
		return nil, fmt.Errorf("get predictions: %w", err)
	}

	records := make([]PredictionRecord, len(predictions))
	for i, prediction := range predictions {
		records[i] = predictionToRecord(prediction)
	}
	return records, nil
}

func (p *Pricer) DeleteRecord(ctx context.Context, id uint) error {
	err := p.repo.DeletePrediction(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPredictionNotFound) {
			return ErrRecordNotFound
		}
		return fmt.Errorf("delete prediction: %w", err)
	}

	p.logs.Infow("prediction deleted", "id", id)
	return nil
}

func (p *Pricer) issueToken(username string) (string, error) {
	tokenInfo := tokenIssuer.TokenInfo{
		Subject:    username,
		Expiration: p.tokenTTL,
	}
	token := p.jwtIssuer.Generate(tokenInfo)
	signed, err := p.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

func predictionToRecord(prediction repository.Prediction) PredictionRecord {
	return PredictionRecord{
		ID:            prediction.ID,
		Suburb:        prediction.Suburb,
		PropertyType:  prediction.PropertyType,
		Bedrooms:      prediction.Bedrooms,
		Bathrooms:     prediction.Bathrooms,
		Parking:       prediction.Parking,
		LandSize:      prediction.LandSize,
		BuildingSize:  prediction.BuildingSize,
		Postcode:      prediction.Postcode,
		SchoolsNearby: prediction.SchoolsNearby,
		Price:         prediction.Price,
		CreatedAt:     prediction.CreatedAt,
	}
}
