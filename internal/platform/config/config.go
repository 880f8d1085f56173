// Package config は環境変数からのアプリケーション設定の読み込みを提供します。
package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Config はサーバーとデータベースの設定を保持します。
// 各フィールドはenvタグで環境変数に対応付けられます。
type Config struct {
	ServerPort uint   `env:"SERVER_PORT" envDefault:"8080"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     uint   `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"addressbook"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	// RunMigrations がtrueの場合、起動時にスキーマのAutoMigrateを実行します。
	RunMigrations bool `env:"RUN_MIGRATIONS" envDefault:"true"`
}

// Load は環境変数を解析してConfigを生成します。
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// DSN はPostgreSQL接続文字列を組み立てます。
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

// Addr はHTTPサーバーのリッスンアドレスを返します。
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.ServerPort)
}
