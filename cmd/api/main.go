package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/cjstore-api/docs"
	"github.com/jhoicas/cjstore-api/internal/application/auth"
	"github.com/jhoicas/cjstore-api/internal/application/ports"
	"github.com/jhoicas/cjstore-api/internal/application/usecase"
	"github.com/jhoicas/cjstore-api/internal/domain/featureflag"
	"github.com/jhoicas/cjstore-api/internal/domain/repository"
	infracache "github.com/jhoicas/cjstore-api/internal/infrastructure/cache"
	"github.com/jhoicas/cjstore-api/internal/infrastructure/kv"
	"github.com/jhoicas/cjstore-api/internal/infrastructure/localstore"
	infrapdf "github.com/jhoicas/cjstore-api/internal/infrastructure/pdf"
	"github.com/jhoicas/cjstore-api/internal/infrastructure/postgres"
	infrasitemap "github.com/jhoicas/cjstore-api/internal/infrastructure/sitemap"
	infrastorage "github.com/jhoicas/cjstore-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/cjstore-api/internal/interfaces/http"
	"github.com/jhoicas/cjstore-api/pkg/config"
	"github.com/jhoicas/cjstore-api/pkg/logger"
)

// repositories puertos de persistencia del driver elegido y su cierre.
type repositories struct {
	users    repository.UserRepository
	stores   repository.StoreRepository
	products repository.ProductRepository
	tx       repository.TxRunner
	close    func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	ctx := context.Background()
	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("persistencia")
	}
	defer repos.close()

	var productCache ports.ProductCache = infracache.Nop{}
	if cfg.Redis.Enabled() {
		client, err := infracache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer client.Close()
		productCache = infracache.NewRedisProductCache(client, cfg.Redis.TTL)
		log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.Redis.TTL).Msg("caché de catálogos en Redis")
	}

	var images ports.ImageStorage
	var localImages *infrastorage.LocalDisk
	switch cfg.Images.Backend {
	case config.ImageStorageS3:
		s3Disk, err := infrastorage.NewS3Disk(ctx, cfg.Images.S3, cfg.Images.BaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("almacenamiento S3")
		}
		images = s3Disk
	default:
		localImages = infrastorage.NewLocalDisk(cfg.Images.LocalRoot, cfg.Images.BaseURL)
		images = localImages
	}

	overrides := make(map[featureflag.Flag]bool, len(cfg.Features))
	for name, on := range cfg.Features {
		overrides[featureflag.Flag(name)] = on
	}
	features := usecase.NewFeatureService(featureflag.New(overrides))

	authUC := auth.NewAuthUseCase(repos.users, repos.stores, repos.tx, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	storeUC := usecase.NewStoreUseCase(repos.stores, repos.users, repos.tx)
	productUC := usecase.NewProductUseCase(repos.products, repos.stores, repos.users, productCache, images)
	storefrontUC := usecase.NewStorefrontUseCase(repos.stores, repos.products, productCache, features)
	dashboardUC := usecase.NewDashboardUseCase(repos.products, repos.stores, repos.users)
	paymentUC := usecase.NewPaymentUseCase(repos.products, features)
	exportUC := usecase.NewCatalogExportUseCase(
		repos.stores, repos.products, repos.users, productCache,
		infrapdf.NewCatalogPDFGenerator(cfg.App.PublicBaseURL),
		infrasitemap.NewGenerator(),
		cfg.App.PublicBaseURL,
	)

	metrics := httpRouter.NewMetrics("cjstore")

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    int(usecase.MaxImageBytes) + 1<<20,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger())
	app.Use(metrics.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: docs.SwaggerJSON,
		Path:        "docs",
		Title:       "CJStore API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": cfg.Storage.Driver})
	})
	if localImages != nil {
		app.Static(cfg.Images.BaseURL, localImages.Root())
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		StoreUC:      storeUC,
		ProductUC:    productUC,
		StorefrontUC: storefrontUC,
		DashboardUC:  dashboardUC,
		PaymentUC:    paymentUC,
		ExportUC:     exportUC,
		Features:     features,
		Metrics:      metrics,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openRepositories abre el driver de persistencia configurado. Solo uno por despliegue.
func openRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	if cfg.Storage.Driver == config.DriverLocal {
		store, err := kv.OpenBolt(cfg.Storage.LocalDBPath)
		if err != nil {
			return nil, err
		}
		blobs := localstore.NewBlobs(store, cfg.Storage.SeedDemoData)
		return &repositories{
			users:    localstore.NewUserRepository(blobs),
			stores:   localstore.NewStoreRepository(blobs),
			products: localstore.NewProductRepository(blobs),
			tx:       localstore.NewTxRunner(blobs),
			close:    func() { _ = store.Close() },
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if err := postgres.RunMigrations(pool); err != nil {
		pool.Close()
		return nil, err
	}
	return &repositories{
		users:    postgres.NewUserRepository(pool),
		stores:   postgres.NewStoreRepository(pool),
		products: postgres.NewProductRepository(pool),
		tx:       postgres.NewTxRunner(pool),
		close:    pool.Close,
	}, nil
}
