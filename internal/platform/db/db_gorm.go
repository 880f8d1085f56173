// Package db はGORM経由のデータベース接続を提供します。
package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"addressbook_backend/internal/feature/addressbook/domain/entity"
	"addressbook_backend/internal/platform/config"
)

// OpenDB はPostgreSQLへの接続を確立して返します。
// コンテナ起動直後などDBが未準備の場合に備え、60秒を上限にリトライします。
// cfg.RunMigrationsがtrueの場合はスキーマのAutoMigrateを実行します。
func OpenDB(cfg *config.Config) *gorm.DB {
	dsn := cfg.DSN()

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		if err := db.AutoMigrate(&entity.UserAddress{}); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
