package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"kiosk/config"
	_ "kiosk/docs"
	"kiosk/internal/domain"
	"kiosk/internal/jobs"
	"kiosk/internal/metrics"
	"kiosk/internal/repository"
	"kiosk/internal/service"
	"kiosk/internal/storage"
	"kiosk/internal/transport/rest"
	"kiosk/internal/transport/websocket"
	"kiosk/pkg/auth"
	"kiosk/pkg/database"
	"kiosk/pkg/logger"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Secretaria Digital Amanhecer API
// @version 1.0
// @description API do totem de autoatendimento da clínica

// @BasePath /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.NewLogger(cfg.Environment, cfg.LogLevel, cfg.Name, cfg.Version)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	location, err := time.LoadLocation(cfg.Kiosk.Timezone)
	if err != nil {
		log.Fatal("Fuso horário inválido", zap.String("timezone", cfg.Kiosk.Timezone), zap.Error(err))
	}

	specialistRepo, closeDB := specialistRepository(ctx, cfg, log)
	defer closeDB()

	catalog, err := service.LoadCatalog(ctx, specialistRepo, log)
	if err != nil {
		log.Fatal("Não foi possível carregar o catálogo de especialistas", zap.Error(err))
	}

	var photos storage.PhotoStorage = storage.StaticStorage{}
	if cfg.S3.Enabled() {
		s3Storage, err := storage.NewS3Storage(ctx, cfg.S3, log)
		if err != nil {
			log.Fatal("Não foi possível inicializar o armazenamento S3", zap.Error(err))
		}
		photos = s3Storage
		log.Info("Armazenamento S3 inicializado", zap.String("endpoint", cfg.S3.Endpoint))
	} else {
		log.Warn("S3 não configurado, fotos dos especialistas não serão exibidas")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	kioskMetrics := metrics.NewKioskMetrics(registry)

	displayHub := websocket.NewDisplayHub(log)
	go displayHub.Run(ctx)

	sessions, err := repository.NewSessionLRURepository(cfg.Kiosk.SessionCapacity, func(s *domain.Session) {
		displayHub.Drop(s.ID)
	})
	if err != nil {
		log.Fatal("Não foi possível criar o registro de sessões", zap.Error(err))
	}

	services := service.NewServices(service.Deps{
		Repos:        repository.NewRepositories(specialistRepo, sessions),
		Catalog:      catalog,
		Logger:       log,
		Config:       cfg,
		Location:     location,
		Photos:       photos,
		Tokens:       auth.NewTokenManager(cfg.JWT.SigningKey, cfg.JWT.SessionTTL),
		Fingerprints: auth.NewFingerprinter(cfg.JWT.SigningKey),
		Metrics:      kioskMetrics,
		Renderer:     displayHub,
		Effects:      displayHub,
	})

	scheduler := jobs.NewScheduler(services.Kiosk, log)
	if err := scheduler.Start(cfg.Kiosk.SweepSchedule); err != nil {
		log.Fatal("Não foi possível agendar a limpeza de sessões", zap.Error(err))
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	rest.NewHandler(services, log, cfg, displayHub).InitRoutes(router)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	srv := &http.Server{
		Addr:           ":" + cfg.HTTP.Port,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderMB << 20,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Erro ao iniciar o servidor", zap.Error(err))
		}
	}()

	log.Info("Servidor iniciado", zap.String("addr", srv.Addr))

	<-ctx.Done()
	log.Info("Desligando o servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	scheduler.Stop(shutdownCtx)

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Erro ao desligar o servidor", zap.Error(err))
	}

	log.Info("Servidor desligado com sucesso")
}

// specialistRepository picks the catalog source. The returned func releases
// the database pool, if one was opened.
func specialistRepository(ctx context.Context, cfg *config.Config, log *zap.Logger) (repository.SpecialistRepository, func()) {
	if cfg.Kiosk.CatalogSource != config.CatalogSourcePostgres {
		log.Info("Usando catálogo de especialistas em memória")
		return repository.NewSpecialistMemoryRepository(), func() {}
	}

	db, err := database.NewPostgresDB(ctx, cfg.Postgres, log)
	if err != nil {
		log.Fatal("Não foi possível conectar ao banco de dados", zap.Error(err))
	}

	log.Info("Executando migrações do banco de dados")
	if err := database.RunMigrations(ctx, db, cfg.Postgres.MigrationsDir, log); err != nil {
		db.Close()
		log.Fatal("Erro ao executar as migrações", zap.Error(err))
	}
	log.Info("Migrações executadas com sucesso")

	return repository.NewSpecialistPostgresRepository(db), db.Close
}
