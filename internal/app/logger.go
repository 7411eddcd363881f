package app

import (
	"fmt"

	"go.uber.org/zap"
)

// initLogger создает логгер с уровнем из конфигурации.
// Уровень debug включает режим разработки с читаемым выводом.
func initLogger(logLevel string) (*zap.Logger, error) {
	if logLevel == "debug" {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("failed to init logger: %w", err)
		}
		return logger, nil
	}

	cfg := zap.NewProductionConfig()
	level, err := zap.ParseAtomicLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level %q: %w", logLevel, err)
	}
	cfg.Level = level

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	return logger, nil
}
