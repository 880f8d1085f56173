package main

import (
	"log"
	"log/slog"

	"addressbook_backend/internal/app/router"
	"addressbook_backend/internal/feature/addressbook/adapters"
	addresshandler "addressbook_backend/internal/feature/addressbook/transport/handler"
	"addressbook_backend/internal/feature/addressbook/usecase"
	"addressbook_backend/internal/platform/config"
	infradb "addressbook_backend/internal/platform/db"
)

func main() {
	// 設定
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// db
	db := infradb.OpenDB(cfg)

	// Repository
	addressRepo := adapters.NewAddressRepository(db)

	// Usecase
	addressUC := usecase.NewAddressUsecase(addressRepo)

	// Handler
	addressH := addresshandler.NewAddressHandler(addressUC)

	// ルータ生成
	r := router.NewRouter(addressH)

	slog.Info("address directory listening", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal(err)
	}
}
