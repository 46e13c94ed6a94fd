package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/faisalthe1/AI-Study-Planner/api/handler"
	"github.com/faisalthe1/AI-Study-Planner/internal/config"
	"github.com/faisalthe1/AI-Study-Planner/internal/infrastructure/buffer"
	"github.com/faisalthe1/AI-Study-Planner/internal/infrastructure/monitor"
	pgInfra "github.com/faisalthe1/AI-Study-Planner/internal/infrastructure/postgres"
	redisInfra "github.com/faisalthe1/AI-Study-Planner/internal/infrastructure/redis"
	"github.com/faisalthe1/AI-Study-Planner/internal/middleware"
	"github.com/faisalthe1/AI-Study-Planner/internal/router"
	"github.com/faisalthe1/AI-Study-Planner/internal/services"
	"github.com/faisalthe1/AI-Study-Planner/internal/services/lifecycle"
	"github.com/faisalthe1/AI-Study-Planner/pkg/httpcontext"
	"github.com/faisalthe1/AI-Study-Planner/pkg/logger"
	"github.com/faisalthe1/AI-Study-Planner/repository/postgres"
	redisRepo "github.com/faisalthe1/AI-Study-Planner/repository/redis"
	authUC "github.com/faisalthe1/AI-Study-Planner/usecase/auth"
	courseUC "github.com/faisalthe1/AI-Study-Planner/usecase/course"
	plannerUC "github.com/faisalthe1/AI-Study-Planner/usecase/planner"
	profileUC "github.com/faisalthe1/AI-Study-Planner/usecase/profile"
	sessionUC "github.com/faisalthe1/AI-Study-Planner/usecase/studysession"
	taskUC "github.com/faisalthe1/AI-Study-Planner/usecase/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register("postgres", func(ctx context.Context) error {
		pool.Close()
		return nil
	})

	redisClient, err := redisInfra.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	manager.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})

	bufferStore, err := buffer.Open(cfg.Buffer.Path, "buffer")
	if err != nil {
		zapLogger.Fatal("failed to open buffer store", zap.Error(err))
	}
	manager.Register("buffer", func(ctx context.Context) error {
		return bufferStore.Close()
	})

	mon := monitor.New(pool, redisClient, bufferStore, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	userRepo := postgres.NewUserRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	courseRepo := postgres.NewCourseRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	studySessionRepo := postgres.NewStudySessionRepository(pool)
	authSessionRepo := redisRepo.NewAuthSessionRepository(redisClient, cfg.Auth.SessionTTL)

	bufferProcessor := services.NewBufferProcessor(
		bufferStore,
		mon,
		profileRepo,
		courseRepo,
		taskRepo,
		zapLogger,
		services.ProcessorConfig{
			Interval:   cfg.Buffer.SyncInterval,
			BatchSize:  50,
			MaxRetries: cfg.Buffer.MaxRetry,
		},
	)
	bufferProcessor.Start()
	manager.Register("buffer_processor", func(ctx context.Context) error {
		bufferProcessor.Stop(ctx)
		return nil
	})

	bufferBridge := services.NewBufferBridge(bufferProcessor)

	authUseCase := authUC.New(userRepo, profileRepo, authSessionRepo, cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, zapLogger)
	profileUseCase := profileUC.New(profileRepo, bufferBridge, zapLogger)
	courseUseCase := courseUC.New(courseRepo, bufferBridge, zapLogger)
	taskUseCase := taskUC.New(taskRepo, bufferBridge, zapLogger)
	sessionUseCase := sessionUC.New(studySessionRepo, zapLogger)
	plannerUseCase := plannerUC.New(taskRepo, studySessionRepo, profileRepo, zapLogger)

	if cfg.Planner.ReplanEnabled {
		replanner := services.NewReplanner(profileRepo, plannerUseCase, zapLogger, services.ReplannerConfig{
			Spec:        cfg.Planner.ReplanCron,
			HorizonDays: cfg.Planner.HorizonDays,
			Timeout:     cfg.Planner.ReplanTimeout,
		})
		replanner.Start()
		manager.Register("replanner", func(ctx context.Context) error {
			replanner.Stop(ctx)
			return nil
		})
	}

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Auth:      apiHandler.NewAuthHandler(authUseCase, ctxAdapter, zapLogger, cfg.Auth.SessionTTL),
		Profile:   apiHandler.NewProfileHandler(profileUseCase, ctxAdapter, zapLogger),
		Course:    apiHandler.NewCourseHandler(courseUseCase, ctxAdapter, zapLogger),
		Task:      apiHandler.NewTaskHandler(taskUseCase, ctxAdapter, zapLogger),
		Session:   apiHandler.NewSessionHandler(sessionUseCase, ctxAdapter, zapLogger),
		Planner:   apiHandler.NewPlannerHandler(plannerUseCase, ctxAdapter, zapLogger),
		Dashboard: apiHandler.NewDashboardHandler(taskUseCase, sessionUseCase, ctxAdapter, zapLogger),
		Health:    apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	authMiddleware := middleware.JWTAuth(cfg.Auth.JWTSecret, zapLogger)
	r := router.New(handlers, authMiddleware)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
