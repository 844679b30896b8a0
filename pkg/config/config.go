package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Drivers de almacenamiento soportados.
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// ErrMissingJWTSecret se devuelve cuando JWT_SECRET no está configurado: no hay secreto por defecto.
var ErrMissingJWTSecret = errors.New("config: JWT_SECRET es obligatorio")

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	DB     DBConfig
	JWT    JWTConfig
	Cookie CookieConfig
	HTTP   HTTPConfig
	Redis  RedisConfig
	Seed   SeedConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env         string // development, staging, production
	Name        string
	LogLevel    string
	StoreDriver string // postgres | memory
}

// IsProduction informa si la app corre en producción.
func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	MinConns    int
	AutoMigrate bool
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// CookieConfig cookie que transporta la credencial firmada.
type CookieConfig struct {
	Name   string
	Secure bool
	MaxAge time.Duration
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RedisConfig limitador de intentos de login. Addr vacío lo desactiva.
type RedisConfig struct {
	Addr        string
	Password    string
	DB          int
	LoginLimit  int
	LoginWindow time.Duration
}

// Enabled informa si hay Redis configurado.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// SeedConfig cuenta owner inicial creada por cmd/seed.
type SeedConfig struct {
	OwnerEmail    string
	OwnerPassword string
	OwnerName     string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Falla si falta JWT_SECRET.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	env := getString(v, "APP_ENV", "development")
	jwtExp := getInt(v, "JWT_EXPIRATION_MINUTES", 7*24*60)

	cfg := &Config{
		App: AppConfig{
			Env:         env,
			Name:        getString(v, "APP_NAME", "trictux-api"),
			LogLevel:    getString(v, "LOG_LEVEL", "info"),
			StoreDriver: getString(v, "STORE_DRIVER", StorePostgres),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "trictux"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			MaxConns:    getInt(v, "DB_MAX_CONNS", 10),
			MinConns:    getInt(v, "DB_MIN_CONNS", 1),
			AutoMigrate: getBool(v, "DB_AUTO_MIGRATE", true),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: jwtExp,
			Issuer:     getString(v, "JWT_ISSUER", "trictux"),
		},
		Cookie: CookieConfig{
			Name:   getString(v, "COOKIE_NAME", "trictux_token"),
			Secure: getBool(v, "COOKIE_SECURE", env == "production"),
			MaxAge: 7 * 24 * time.Hour,
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Redis: RedisConfig{
			Addr:        getString(v, "REDIS_ADDR", ""),
			Password:    getString(v, "REDIS_PASSWORD", ""),
			DB:          getInt(v, "REDIS_DB", 0),
			LoginLimit:  getInt(v, "LOGIN_RATE_LIMIT", 10),
			LoginWindow: time.Duration(getInt(v, "LOGIN_RATE_WINDOW_SECONDS", 60)) * time.Second,
		},
		Seed: SeedConfig{
			OwnerEmail:    getString(v, "SEED_OWNER_EMAIL", ""),
			OwnerPassword: getString(v, "SEED_OWNER_PASSWORD", ""),
			OwnerName:     getString(v, "SEED_OWNER_NAME", "Owner"),
		},
	}

	if cfg.JWT.Secret == "" {
		return nil, ErrMissingJWTSecret
	}
	switch cfg.App.StoreDriver {
	case StorePostgres, StoreMemory:
	default:
		return nil, fmt.Errorf("config: STORE_DRIVER desconocido %q", cfg.App.StoreDriver)
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(v.GetString(key))
		if err != nil {
			return def
		}
		return b
	}
	return def
}
