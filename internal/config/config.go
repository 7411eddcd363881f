package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress        string        // Адрес и порт запуска сервиса
	DatabaseURI       string        // URI подключения к БД
	EnrichmentAddress string        // Адрес сервиса обогащения профилей
	JWTSecret         string        // Секретный ключ для JWT
	JWTTokenTTL       time.Duration // Время жизни JWT токена
	LogLevel          string        // Уровень логирования

	// Worker Pool конфигурация
	WorkerPoolSize     int           // Количество воркеров синхронизации
	WorkerQueueSize    int           // Размер очереди листингов
	WorkerScanInterval time.Duration // Интервал сканирования устаревших листингов
	SyncStaleAfter     time.Duration // Возраст, после которого листинг считается устаревшим

	// Кеш настроек площадки
	SettingsCacheTTL time.Duration

	// Валидация
	MinPasswordLength int // Минимальная длина пароля
}

// Load загружает конфигурацию из переменных окружения и флагов
// Приоритет: env переменные > флаги > дефолтные значения
func Load() (*Config, error) {
	// .env подхватывается для локальной разработки, отсутствие файла не ошибка
	_ = godotenv.Load()

	cfg := &Config{
		JWTTokenTTL:        24 * time.Hour,
		LogLevel:           "info",
		WorkerPoolSize:     3,
		WorkerQueueSize:    100,
		WorkerScanInterval: time.Minute,
		SyncStaleAfter:     6 * time.Hour,
		SettingsCacheTTL:   5 * time.Minute,
		MinPasswordLength:  6,
	}

	// Определяем флаги
	flag.StringVar(&cfg.RunAddress, "a", ":8080", "address and port to run server")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	flag.StringVar(&cfg.EnrichmentAddress, "r", "", "profile enrichment service address")
	flag.Parse()

	// Переменные окружения имеют приоритет над флагами
	if envRunAddr, ok := os.LookupEnv("RUN_ADDRESS"); ok {
		cfg.RunAddress = envRunAddr
	}

	if envDBURI, ok := os.LookupEnv("DATABASE_URI"); ok {
		cfg.DatabaseURI = envDBURI
	}

	if envEnrichmentAddr, ok := os.LookupEnv("ENRICHMENT_ADDRESS"); ok {
		cfg.EnrichmentAddress = envEnrichmentAddr
	}

	// JWT секрет (только из env, не из флагов для безопасности)
	if envJWTSecret, ok := os.LookupEnv("JWT_SECRET"); ok {
		cfg.JWTSecret = envJWTSecret
	} else {
		cfg.JWTSecret = "default-secret-key-change-in-production"
	}

	// Уровень логирования
	if envLogLevel, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = envLogLevel
	}

	// Worker Pool конфигурация из env
	if envWorkerPoolSize, ok := os.LookupEnv("WORKER_POOL_SIZE"); ok {
		if size, err := strconv.Atoi(envWorkerPoolSize); err == nil && size > 0 {
			cfg.WorkerPoolSize = size
		}
	}

	if envWorkerQueueSize, ok := os.LookupEnv("WORKER_QUEUE_SIZE"); ok {
		if size, err := strconv.Atoi(envWorkerQueueSize); err == nil && size > 0 {
			cfg.WorkerQueueSize = size
		}
	}

	if envScanInterval, ok := os.LookupEnv("WORKER_SCAN_INTERVAL"); ok {
		if interval, err := time.ParseDuration(envScanInterval); err == nil && interval > 0 {
			cfg.WorkerScanInterval = interval
		}
	}

	if envStaleAfter, ok := os.LookupEnv("SYNC_STALE_AFTER"); ok {
		if interval, err := time.ParseDuration(envStaleAfter); err == nil && interval > 0 {
			cfg.SyncStaleAfter = interval
		}
	}

	if envCacheTTL, ok := os.LookupEnv("SETTINGS_CACHE_TTL"); ok {
		if ttl, err := time.ParseDuration(envCacheTTL); err == nil && ttl > 0 {
			cfg.SettingsCacheTTL = ttl
		}
	}

	// Валидация обязательных параметров
	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI is required (use -d flag or DATABASE_URI env)")
	}

	if cfg.EnrichmentAddress == "" {
		return nil, fmt.Errorf("enrichment service address is required (use -r flag or ENRICHMENT_ADDRESS env)")
	}

	return cfg, nil
}
