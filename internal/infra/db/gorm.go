package db

import (
	"fmt"

	"cartlab/internal/config"
	"cartlab/internal/domain/model"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect はDBに接続して *gorm.DB を返す。
func Connect(cfg config.Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)}

	switch cfg.DBDriver {
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.SQLitePath), gcfg)
	case "postgres", "":
		return gorm.Open(postgres.Open(cfg.PostgresDSN()), gcfg)
	default:
		return nil, fmt.Errorf("unsupported db driver: %s", cfg.DBDriver)
	}
}

// テーブル作成
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(&model.Todo{})
}
