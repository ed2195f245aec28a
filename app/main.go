// Файл: main.go

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"gearguard/internal/integrations"
	"gearguard/internal/integrations/gearguard"
	"gearguard/internal/integrations/mock"
	"gearguard/internal/listeners"
	"gearguard/internal/repositories"
	"gearguard/internal/routes"
	"gearguard/internal/services"
	"gearguard/internal/store"
	"gearguard/pkg/config"
	"gearguard/pkg/customvalidator"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/eventbus"
	applogger "gearguard/pkg/logger"
	"gearguard/pkg/metrics"
	"gearguard/pkg/utils"
	"gearguard/pkg/websocket"
	"gearguard/seeders"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// Окно, в котором несколько перезагрузок подряд уходят в UI одним сообщением.
const notifyWindow = 200 * time.Millisecond

func main() {
	// 1. Конфиг и логгер
	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log.Level, cfg.Log.File)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Echo и middleware
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("!!! ОБНАРУЖЕНА ПАНИКА (PANIC) !!!",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Внутренняя ошибка сервера", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, echo.HeaderXRequestID},
		AllowCredentials: true,
		ExposeHeaders:    []string{"Content-Disposition", echo.HeaderXRequestID},
	}))

	// 3. Валидатор
	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("Ошибка регистрации кастомных правил валидации", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	// 4. Кеш токенов: Redis, если задан адрес, иначе память процесса
	var cacheRepo repositories.CacheRepositoryInterface
	if cfg.Redis.Address != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		if _, err := redisClient.Ping(ctx).Result(); err != nil {
			logger.Fatal("не удалось подключиться к Redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
		}
		cacheRepo = repositories.NewRedisCacheRepository(redisClient)
	} else {
		logger.Info("REDIS_ADDRESS не задан, токены кешируются в памяти")
		cacheRepo = repositories.NewMemoryCacheRepository()
	}

	// 5. Провайдер удалённого API
	httpClient := &http.Client{Timeout: cfg.API.Timeout}
	tokens := gearguard.Chain{
		gearguard.SessionToken{},
		gearguard.StaticToken(cfg.API.Token),
		gearguard.NewPasswordLogin(cfg.API.BaseURL, cfg.API.Username, cfg.API.Password, httpClient, cacheRepo, cfg.API.TokenTTL, logger),
	}

	// Демо-режим работает без удалённого API на встроенных данных
	demo := mock.NewMockProvider()
	demo.Seed(seeders.DemoPlant())

	registry := integrations.NewRegistry()
	for _, p := range []integrations.DataProvider{
		gearguard.New(cfg.API.BaseURL, httpClient, tokens, logger),
		demo,
	} {
		if err := registry.Register(p); err != nil {
			logger.Fatal("не удалось зарегистрировать провайдера", zap.Error(err))
		}
	}
	if err := registry.SetActive(cfg.API.Provider); err != nil {
		logger.Fatal("неизвестный провайдер", zap.Error(err), zap.Strings("available", registry.Names()))
	}
	provider, _ := registry.Active()
	logger.Info("Провайдер данных выбран", zap.String("provider", provider.Name()), zap.String("base_url", cfg.API.BaseURL))

	// 6. Хранилище снимка, события, WebSocket
	bus := eventbus.New(logger)
	m := metrics.New()
	snapshotStore := store.New(provider, bus, m, logger)

	hub := websocket.NewHub(logger)
	go hub.Run(ctx)

	wsNotificationService := services.NewWebSocketNotificationService(hub, logger)
	listeners.NewSnapshotListener(wsNotificationService, notifyWindow, logger).Register(bus)

	// Первая загрузка: ошибка не мешает запуску, UI увидит пустой снимок
	if err := snapshotStore.Load(ctx); err != nil {
		logger.Error("Первичная загрузка данных не удалась", zap.Error(err))
	}

	// 7. Сервисы и роуты
	maintenanceService := services.NewMaintenanceService(provider, snapshotStore, v, m, logger)
	dashboardService := services.NewDashboardService(snapshotStore, logger)
	reportService := services.NewReportService(snapshotStore, logger)

	routes.InitRouter(e, maintenanceService, dashboardService, reportService, hub, m, &routes.Loggers{
		Main:        logger,
		Maintenance: logger.Named("maintenance"),
		Dashboard:   logger.Named("dashboard"),
		Report:      logger.Named("report"),
	})

	// 8. Запуск сервера
	go func() {
		logger.Info("🚀 Сервер запущен", zap.String("port", cfg.Server.Port))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Ошибка запуска сервера", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ошибка остановки сервера", zap.Error(err))
	}
	logger.Info("Сервер остановлен")
}
