package client

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/GoArmGo/BookingApp/internal/config"
)

// NewGormClient открывает GORM-подключение к той же базе.
// Его использует хранилище пользователей. TranslateError нужен,
// чтобы нарушение уникальности приходило как gorm.ErrDuplicatedKey.
func NewGormClient(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	start := time.Now()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		logger.Error("failed to open gorm connection", "error", err)
		return nil, fmt.Errorf("ошибка открытия GORM-соединения с БД: %w", err)
	}

	logger.Info("gorm connection established successfully",
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return db, nil
}
