package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/lib/pq"
)

const (
	defaultHTTPPort             = "8080"
	defaultTokenTTL             = 24 * time.Hour
	defaultTokenCleanupSchedule = "0 */5 * * * *"
	defaultShutdownTimeout      = 10 * time.Second
)

type Config struct {
	HTTPPort    string
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSslMode   string

	LogLevel slog.Level

	TokenTTL             time.Duration
	TokenCleanupSchedule string

	AdminUsername string
	AdminEmail    string
	AdminPassword string

	ShutdownTimeout time.Duration
}

// LoadConfig reads the configuration from the environment after loading the
// optional env files (".env" by default). Variables already set win.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return ConfigFromEnv(os.Getenv)
}

// ConfigFromEnv builds the configuration from getenv.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		HTTPPort:             valueOr(getenv("HTTP_PORT"), defaultHTTPPort),
		DatabaseURL:          getenv("DATABASE_URL"),
		DBHost:               valueOr(getenv("DB_HOST"), "localhost"),
		DBPort:               valueOr(getenv("DB_PORT"), "5432"),
		DBUser:               getenv("DB_USER"),
		DBPassword:           getenv("DB_PASSWORD"),
		DBName:               getenv("DB_NAME"),
		DBSslMode:            valueOr(getenv("DB_SSLMODE"), "disable"),
		TokenCleanupSchedule: valueOr(getenv("TOKEN_CLEANUP_SCHEDULE"), defaultTokenCleanupSchedule),
		AdminUsername:        getenv("ADMIN_USERNAME"),
		AdminEmail:           getenv("ADMIN_EMAIL"),
		AdminPassword:        getenv("ADMIN_PASSWORD"),
	}

	var errs []error

	if err := cfg.LogLevel.UnmarshalText([]byte(valueOr(getenv("LOG_LEVEL"), "info"))); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	var err error
	if cfg.TokenTTL, err = durationOr(getenv("TOKEN_TTL"), defaultTokenTTL); err != nil {
		errs = append(errs, fmt.Errorf("TOKEN_TTL: %w", err))
	}
	if cfg.ShutdownTimeout, err = durationOr(getenv("SHUTDOWN_TIMEOUT"), defaultShutdownTimeout); err != nil {
		errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err))
	}

	if (cfg.AdminUsername == "") != (cfg.AdminPassword == "") {
		errs = append(errs, errors.New("ADMIN_USERNAME and ADMIN_PASSWORD must be set together"))
	}

	if _, err = cfg.DSN(); err != nil {
		errs = append(errs, err)
	}

	if err = errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN returns the PostgreSQL connection string. DATABASE_URL wins over the
// DB_* variables and is converted to key/value form.
func (c Config) DSN() (string, error) {
	if c.DatabaseURL != "" {
		dsn, err := pq.ParseURL(c.DatabaseURL)
		if err != nil {
			return "", fmt.Errorf("DATABASE_URL: %w", err)
		}
		return dsn, nil
	}

	if c.DBUser == "" || c.DBName == "" {
		return "", errors.New("either DATABASE_URL or DB_USER and DB_NAME must be set")
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		quoteDSN(c.DBHost), quoteDSN(c.DBPort), quoteDSN(c.DBUser),
		quoteDSN(c.DBPassword), quoteDSN(c.DBName), quoteDSN(c.DBSslMode),
	), nil
}

// HasAdmin reports whether a bootstrap admin is configured.
func (c Config) HasAdmin() bool {
	return c.AdminUsername != "" && c.AdminPassword != ""
}

func valueOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func durationOr(v string, def time.Duration) (time.Duration, error) {
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s is not positive", d)
	}
	return d, nil
}

func quoteDSN(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(v) + "'"
}
