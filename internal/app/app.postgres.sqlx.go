package app

import (
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/zhou-jk/flashsale-api/internal/shared/config"
)

func providePostgresSQLX(cfg config.Provider) (*sqlx.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbConfigString(cfg, "host"),
		dbConfigInt(cfg, "port"),
		dbConfigString(cfg, "user"),
		dbConfigString(cfg, "password"),
		dbConfigString(cfg, "name"),
		dbConfigString(cfg, "ssl_mode"),
	)

	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db: failed to open postgres connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("db: failed to ping postgres: %w", err)
	}

	return db, nil
}

func dbConfigString(cfg config.Provider, key string) string {
	yamlKey := fmt.Sprintf("database.%s", key)
	if cfg.IsSet(yamlKey) {
		return cfg.GetString(yamlKey)
	}

	return cfg.GetString(dbEnvKey(key))
}

func dbConfigInt(cfg config.Provider, key string) int {
	yamlKey := fmt.Sprintf("database.%s", key)
	if cfg.IsSet(yamlKey) {
		return cfg.GetInt(yamlKey)
	}

	return cfg.GetInt(dbEnvKey(key))
}

func dbEnvKey(key string) string {
	normalizedKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return fmt.Sprintf("DATABASE_%s", normalizedKey)
}
