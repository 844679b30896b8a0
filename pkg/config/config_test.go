package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_SinSecretoFalla(t *testing.T) {
	v := viper.New()
	_, err := fromViper(v)
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "s3cr3t")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, StorePostgres, cfg.App.StoreDriver)
	assert.Equal(t, 7*24*60, cfg.JWT.Expiration)
	assert.Equal(t, "trictux_token", cfg.Cookie.Name)
	assert.False(t, cfg.Cookie.Secure)
	assert.Equal(t, 7*24*time.Hour, cfg.Cookie.MaxAge)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestFromViper_ProductionCookieSegura(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "s3cr3t")
	v.Set("APP_ENV", "production")
	v.Set("HTTP_PORT", "9090")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.True(t, cfg.Cookie.Secure)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestFromViper_DriverDesconocido(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "s3cr3t")
	v.Set("STORE_DRIVER", "mongo")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w/rd", DBName: "trictux", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw%2Frd@db:5432/trictux?sslmode=disable", c.ConnectionString())
}
