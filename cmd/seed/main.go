// seed crea la cuenta owner inicial a partir de SEED_OWNER_EMAIL / SEED_OWNER_PASSWORD.
// Es idempotente: si la cuenta ya existe no la modifica.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"time"

	"github.com/trictux/trictux-api/internal/application/auth"
	"github.com/trictux/trictux-api/internal/infrastructure/postgres"
	"github.com/trictux/trictux-api/pkg/config"
	"github.com/trictux/trictux-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	if cfg.Seed.OwnerEmail == "" || cfg.Seed.OwnerPassword == "" {
		log.Fatal().Msg("SEED_OWNER_EMAIL y SEED_OWNER_PASSWORD son obligatorios")
	}
	if cfg.App.StoreDriver != config.StorePostgres {
		log.Fatal().Str("store", cfg.App.StoreDriver).Msg("seed solo tiene sentido sobre PostgreSQL")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	store := postgres.NewStore(pool)
	accounts := auth.NewAccountService(store, postgres.NewTxRunner(pool), log)
	authUC := auth.NewAuthUseCase(store, accounts, auth.NewRoleResolver(store), auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	user, created, err := authUC.EnsureOwner(ctx, cfg.Seed.OwnerEmail, cfg.Seed.OwnerPassword, cfg.Seed.OwnerName)
	if err != nil {
		log.Fatal().Err(err).Msg("crear owner")
	}
	log.Info().Str("email", user.Email).Bool("created", created).Msg("owner listo")
}
