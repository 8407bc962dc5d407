package repository

import (
	"context"
	"errors"
	"fmt"
	"houseprice/internal/db"
)

var (
	ErrUserNotFound       error = errors.New("user not found")
	ErrUserExists         error = errors.New("user already exists")
	ErrPredictionNotFound error = errors.New("prediction not found")
)

const newestFirst = "id desc"

type Repository struct {
	db Storage
}

func NewRepository(db Storage) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Migrate() error {
	err := r.db.MigrateModels(&User{}, &Prediction{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *Repository) CreateUser(ctx context.Context, username, passwordHash string) (User, error) {
	user := User{
		Username:     username,
		PasswordHash: passwordHash,
	}

	err := r.db.Create(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return User{}, ErrUserExists
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (r *Repository) GetUserFromDB(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *Repository) SavePrediction(ctx context.Context, prediction Prediction) (Prediction, error) {
	err := r.db.Create(ctx, &prediction)
	if err != nil {
		return Prediction{}, fmt.Errorf("save prediction: %w", err)
	}

	return prediction, nil
}

func (r *Repository) GetPredictions(ctx context.Context) ([]Prediction, error) {
	predictions := []Prediction{}
	err := r.db.GetAll(ctx, newestFirst, &predictions)
	if err != nil {
		return nil, fmt.Errorf("get predictions: %w", err)
	}

	return predictions, nil
}

func (r *Repository) DeletePrediction(ctx context.Context, id uint) error {
	err := r.db.DeleteByID(ctx, &Prediction{}, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrPredictionNotFound
		}
		return fmt.Errorf("delete prediction: %w", err)
	}

	return nil
}
