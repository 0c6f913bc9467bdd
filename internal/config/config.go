package config

import (
	"fmt"
	"os"
	"strconv"
)

// 永続ストアのドライバ
const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	JWTSecret string // JWT署名シークレット
	GoEnv     string // dev/prod

	StorageDriver string // file / postgres / redis
	DataDir       string // fileドライバの保存先

	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     int

	RedisAddr string // host:port
	RedisDB   int
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		Port:      os.Getenv("PORT"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		GoEnv:     os.Getenv("GO_ENV"),

		StorageDriver: os.Getenv("STORAGE_DRIVER"),
		DataDir:       os.Getenv("DATA_DIR"),
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.GoEnv == "" {
		return Config{}, fmt.Errorf("GO_ENV is required")
	}

	if cfg.StorageDriver == "" {
		cfg.StorageDriver = DriverFile
	}

	switch cfg.StorageDriver {
	case DriverFile:
		if cfg.DataDir == "" {
			cfg.DataDir = "./data"
		}

	case DriverPostgres:
		pgPort, err := mustAtoi("POSTGRES_PORT")
		if err != nil {
			return Config{}, err
		}
		cfg.PostgresUser = os.Getenv("POSTGRES_USER")
		cfg.PostgresPassword = os.Getenv("POSTGRES_PASSWORD")
		cfg.PostgresDB = os.Getenv("POSTGRES_DB")
		cfg.PostgresHost = os.Getenv("POSTGRES_HOST")
		cfg.PostgresPort = pgPort

		if cfg.PostgresUser == "" {
			return Config{}, fmt.Errorf("POSTGRES_USER is required")
		}
		if cfg.PostgresPassword == "" {
			return Config{}, fmt.Errorf("POSTGRES_PASSWORD is required")
		}
		if cfg.PostgresDB == "" {
			return Config{}, fmt.Errorf("POSTGRES_DB is required")
		}
		if cfg.PostgresHost == "" {
			return Config{}, fmt.Errorf("POSTGRES_HOST is required")
		}

	case DriverRedis:
		cfg.RedisAddr = os.Getenv("REDIS_ADDR")
		if cfg.RedisAddr == "" {
			return Config{}, fmt.Errorf("REDIS_ADDR is required")
		}
		if v := os.Getenv("REDIS_DB"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return Config{}, fmt.Errorf("REDIS_DB must be number: %w", err)
			}
			cfg.RedisDB = n
		}

	default:
		return Config{}, fmt.Errorf("STORAGE_DRIVER must be file, postgres or redis")
	}

	return cfg, nil
}

func mustAtoi(key string) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
