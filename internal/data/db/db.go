package db

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/yungbote/creatorhub-backend/internal/platform/logger"
)

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

type Config struct {
	Driver     string         `yaml:"driver"`
	Postgres   PostgresConfig `yaml:"postgres"`
	SQLitePath string         `yaml:"sqlite_path"`
}

// Service is an opened database.
type Service interface {
	DB() *gorm.DB
	Dialect() string
}

// Open connects to the configured driver and applies migrations.
func Open(log *logger.Logger, cfg Config) (Service, error) {
	var (
		svc Service
		err error
	)
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", DialectPostgres:
		svc, err = NewPostgresService(log, cfg.Postgres)
	case DialectSQLite:
		svc, err = NewSQLiteService(log, cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}
	if err := Migrate(svc.DB()); err != nil {
		return nil, err
	}
	return svc, nil
}

func gormConfig(log *logger.Logger) *gorm.Config {
	var writer gormLogger.Writer = log
	if log == nil {
		writer = logger.Nop()
	}
	return &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
		Logger: gormLogger.New(writer, gormLogger.Config{
			SlowThreshold:             1 * time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		}),
	}
}
