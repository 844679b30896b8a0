package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"

	_ "github.com/trictux/trictux-api/docs"
	appanalytics "github.com/trictux/trictux-api/internal/application/analytics"
	"github.com/trictux/trictux-api/internal/application/auth"
	"github.com/trictux/trictux-api/internal/application/report"
	"github.com/trictux/trictux-api/internal/application/usecase"
	"github.com/trictux/trictux-api/internal/domain"
	"github.com/trictux/trictux-api/internal/domain/repository"
	"github.com/trictux/trictux-api/internal/infrastructure/memory"
	infrapdf "github.com/trictux/trictux-api/internal/infrastructure/pdf"
	"github.com/trictux/trictux-api/internal/infrastructure/postgres"
	infraredis "github.com/trictux/trictux-api/internal/infrastructure/redis"
	httpRouter "github.com/trictux/trictux-api/internal/interfaces/http"
	"github.com/trictux/trictux-api/pkg/config"
	"github.com/trictux/trictux-api/pkg/logger"
)

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
		Str("store", cfg.App.StoreDriver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, txRunner, closeStore := openStore(ctx, cfg, log)
	defer closeStore()

	// Limitador de login: opcional, solo si hay Redis configurado.
	var limiter domain.RateLimiter
	if cfg.Redis.Enabled() {
		rl, err := infraredis.NewRateLimiter(infraredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("configurar Redis")
		}
		if err := rl.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis no responde; el limitador dejará pasar los intentos")
		}
		defer rl.Close()
		limiter = rl
	}

	accounts := auth.NewAccountService(store, txRunner, log.Component("accounts"))
	resolver := auth.NewRoleResolver(store)
	authUC := auth.NewAuthUseCase(store, accounts, resolver, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// PDF: informe de estado del proyecto
	reportUC := report.NewProjectReportUseCase(store, infrapdf.NewMarotoReportGenerator())

	app := httpRouter.NewApp(cfg.App.Name, log.Component("http"))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Trictux API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		Verifier:    auth.NewSessionVerifier(store.Users, cfg.JWT.Secret),
		Resolver:    resolver,
		UserUC:      usecase.NewUserUseCase(store),
		CompanyUC:   usecase.NewCompanyUseCase(store, accounts),
		ClientUC:    usecase.NewClientUseCase(store),
		EmployeeUC:  usecase.NewEmployeeUseCase(store, accounts),
		ProjectUC:   usecase.NewProjectUseCase(store, txRunner),
		TaskUC:      usecase.NewTaskUseCase(store),
		DashboardUC: appanalytics.NewDashboardUseCase(store),
		ReportUC:    reportUC,
		Cookie:      httpRouter.CookieSettings{Name: cfg.Cookie.Name, Secure: cfg.Cookie.Secure},
		LoginLimit: httpRouter.LoginLimit{
			Limiter: limiter,
			Max:     cfg.Redis.LoginLimit,
			Window:  cfg.Redis.LoginWindow,
		},
		Log: log.Component("http"),
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

// openStore abre el almacenamiento configurado. En memoria no hay transacciones:
// el alta de cuentas usa compensación.
func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (*repository.Store, repository.TxRunner, func()) {
	if cfg.App.StoreDriver == config.StoreMemory {
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		return memory.NewStore(), nil, func() {}
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}
	return postgres.NewStore(pool), postgres.NewTxRunner(pool), pool.Close
}
