package main

import (
	"context"
	"flag"
	"log"
	"net/http"

	"go.uber.org/zap"

	"gearguard/internal/integrations/gearguard"
	"gearguard/internal/repositories"
	"gearguard/pkg/config"
	applogger "gearguard/pkg/logger"
	"gearguard/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 НАПОЛНЕНИЕ API ДЕМО-ДАННЫМИ                  ")
	log.Println("======================================================")

	force := flag.Bool("force", false, "Записать демо-данные, даже если в API уже есть команды")
	flag.Parse()

	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log.Level, cfg.Log.File)
	defer logger.Sync()

	httpClient := &http.Client{Timeout: cfg.API.Timeout}
	tokens := gearguard.Chain{
		gearguard.StaticToken(cfg.API.Token),
		gearguard.NewPasswordLogin(cfg.API.BaseURL, cfg.API.Username, cfg.API.Password, httpClient,
			repositories.NewMemoryCacheRepository(), cfg.API.TokenTTL, logger),
	}
	provider := gearguard.New(cfg.API.BaseURL, httpClient, tokens, logger)

	log.Println("📦 API:", cfg.API.BaseURL)
	seeded, err := seeders.SeedAPI(context.Background(), provider, seeders.DemoPlant(), *force, logger)
	if err != nil {
		logger.Fatal("❌ Ошибка наполнения", zap.Error(err))
	}
	if seeded {
		log.Println("✅ Наполнение завершено!")
	}
}
