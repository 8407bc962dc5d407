package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicate      = errors.New("record already exists")
	ErrUnsupportedDSN = errors.New("unsupported database connection url")
)

type GormDB struct {
	db *gorm.DB
}

// NewGormDB opens a connection for dsn. postgres:// URLs and key=value strings go
// to postgres, sqlite:// and file: URLs go to sqlite.
func NewGormDB(dsn string) (*GormDB, error) {
	dialector, err := Dialector(dsn)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &GormDB{
		db: db,
	}, nil
}

// Wrap adapts an already opened gorm connection.
func Wrap(db *gorm.DB) *GormDB {
	return &GormDB{
		db: db,
	}
}

func Dialector(dsn string) (gorm.Dialector, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"), strings.Contains(dsn, "host="):
		return postgres.Open(dsn), nil
	case strings.HasPrefix(dsn, "sqlite://"):
		path := strings.TrimPrefix(dsn, "sqlite://")
		// sqlite:///data.db is relative, sqlite:////var/data.db is absolute
		path = strings.TrimPrefix(path, "/")
		if path == "" {
			return nil, fmt.Errorf("%w: missing sqlite path in %q", ErrUnsupportedDSN, dsn)
		}
		return sqlite.Open(path), nil
	case strings.HasPrefix(dsn, "file:"):
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
	}
}

func (f *GormDB) MigrateModels(models ...any) error {
	err := f.db.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *GormDB) Create(ctx context.Context, record any) error {
	err := f.db.WithContext(ctx).Create(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("insert to table: %w", ErrDuplicate)
		}
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *GormDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.db.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

// GetAll loads every row of the entity's table into entities, sorted by orderBy.
func (f *GormDB) GetAll(ctx context.Context, orderBy string, entities any) error {
	tx := f.db.WithContext(ctx)
	if orderBy != "" {
		tx = tx.Order(orderBy)
	}

	if err := tx.Find(entities).Error; err != nil {
		return fmt.Errorf("getting all records: %w", err)
	}
	return nil
}

// DeleteByID removes the row with the given primary key. ErrNotFound is returned
// when nothing was deleted.
func (f *GormDB) DeleteByID(ctx context.Context, model any, id uint) error {
	tx := f.db.WithContext(ctx).Delete(model, id)
	if tx.Error != nil {
		return fmt.Errorf("deleting record %d: %w", id, tx.Error)
	}

	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (f *GormDB) Close() error {
	sqlDB, err := f.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("close sql db conn: %w", err)
	}
	return nil
}
