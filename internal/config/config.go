package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Configはアプリ全体の設定
type Config struct {
	Port  string // サーバーポート（8080）
	GoEnv string // dev/prod（ログ形式）
	FEURL string // CORSで許可するフロントURL（*で全許可）

	DBDriver    string // postgres / sqlite
	DatabaseURL string // あれば最優先

	PostgresHost     string
	PostgresPort     int
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	SQLitePath string // DB_DRIVER=sqlite のとき

	TodoAPIURL string // CLIの接続先
}

// Loadは環境変数から読む（.envはmainで読み込み済み）
func Load() (Config, error) {
	pgPort, err := atoiOr("POSTGRES_PORT", 5432)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:  getenv("PORT", "8080"),
		GoEnv: getenv("GO_ENV", "dev"),
		FEURL: getenv("FE_URL", "*"),

		DBDriver:    strings.ToLower(getenv("DB_DRIVER", "postgres")),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresPort:     pgPort,
		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "todos"),
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		SQLitePath: getenv("SQLITE_PATH", "file::memory:?cache=shared"),

		TodoAPIURL: getenv("TODO_API_URL", "http://localhost:8080/api/todos"),
	}

	//値チェック
	if _, err := strconv.Atoi(strings.TrimPrefix(cfg.Port, ":")); err != nil {
		return Config{}, fmt.Errorf("PORT must be number: %w", err)
	}
	if cfg.DBDriver != "postgres" && cfg.DBDriver != "sqlite" {
		return Config{}, fmt.Errorf("DB_DRIVER must be postgres or sqlite: %q", cfg.DBDriver)
	}

	return cfg, nil
}

// ":8080" 形式
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func (c Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresSSLMode,
	)
}

func getenv(key string, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func atoiOr(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
