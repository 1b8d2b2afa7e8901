package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envBindings mantiene los nombres de env heredados (BOT_TOKEN, VET_*) además
// de los generados por el replacer (p.ej. TELEGRAM_TOKEN).
var envBindings = map[string][]string{
	"telegram.token":         {"TELEGRAM_TOKEN", "BOT_TOKEN"},
	"referral.phone":         {"REFERRAL_PHONE", "VET_PHONE_NUMBER"},
	"referral.chat":          {"REFERRAL_CHAT", "VET_CHAT_LINK"},
	"http.port":              {"HTTP_PORT", "PORT"},
	"storage.postgres.dsn":   {"STORAGE_POSTGRES_DSN", "DB_DSN"},
	"logging.level":          {"LOGGING_LEVEL", "LOG_LEVEL"},
	"logging.format":         {"LOGGING_FORMAT", "LOG_FORMAT"},
	"app.name":               {"APP_NAME"},
	"sessions.redis.address": {"SESSIONS_REDIS_ADDRESS", "REDIS_ADDR"},
}

// Load lee configs/config.yaml (opcional), .env (opcional) y variables de entorno.
func Load() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	return build(v)
}

// LoadFromFile carga un archivo puntual (útil en tests y despliegues con ruta fija).
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return build(v)
}

func build(v *viper.Viper) (*Config, error) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for key, names := range envBindings {
		args := append([]string{key}, names...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	// Las keys que solo vienen por env necesitan un default para que Unmarshal las vea.
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "pet-triage")
	v.SetDefault("app.environment", "development")
	v.SetDefault("http.port", "8080")
	v.SetDefault("http.read_timeout", 5000)
	v.SetDefault("http.write_timeout", 10000)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("storage.driver", StorageMemory)
	v.SetDefault("storage.postgres.dsn", "")
	v.SetDefault("storage.postgres.migrate", true)
	v.SetDefault("storage.file.base_dir", "data")
	v.SetDefault("sessions.driver", SessionsMemory)
	v.SetDefault("sessions.redis.address", "")
	v.SetDefault("sessions.redis.password", "")
	v.SetDefault("sessions.redis.db", 0)
	v.SetDefault("sessions.idle_ttl", 0)
	v.SetDefault("telegram.enabled", false)
	v.SetDefault("telegram.token", "")
	v.SetDefault("telegram.api_base_url", "https://api.telegram.org")
	v.SetDefault("telegram.poll_timeout", 30)
	v.SetDefault("referral.phone", "09xxxxxxxxx")
	v.SetDefault("referral.chat", "@YourVetUsername")
}

func applyDefaults(cfg *Config) {
	if cfg.Storage.Postgres.MaxOpenConns == 0 {
		cfg.Storage.Postgres.MaxOpenConns = 10
	}
	if cfg.Storage.Postgres.MaxIdleConns == 0 {
		cfg.Storage.Postgres.MaxIdleConns = 5
	}
	if cfg.Telegram.PollTimeout <= 0 {
		cfg.Telegram.PollTimeout = 30
	}
	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	cfg.Sessions.Driver = strings.ToLower(strings.TrimSpace(cfg.Sessions.Driver))

	// Compat: si hay token del bot pero telegram.enabled no se tocó, se habilita.
	if strings.TrimSpace(cfg.Telegram.Token) != "" && os.Getenv("TELEGRAM_ENABLED") == "" {
		cfg.Telegram.Enabled = true
	}
}

func validateConfig(cfg *Config) error {
	switch cfg.Storage.Driver {
	case StorageMemory, StorageFile:
	case StoragePostgres:
		if strings.TrimSpace(cfg.Storage.Postgres.DSN) == "" {
			return fmt.Errorf("storage.postgres.dsn is required for driver %q", StoragePostgres)
		}
	default:
		return fmt.Errorf("unknown storage.driver %q", cfg.Storage.Driver)
	}

	switch cfg.Sessions.Driver {
	case SessionsMemory:
	case SessionsRedis:
		if strings.TrimSpace(cfg.Sessions.Redis.Address) == "" {
			return fmt.Errorf("sessions.redis.address is required for driver %q", SessionsRedis)
		}
	default:
		return fmt.Errorf("unknown sessions.driver %q", cfg.Sessions.Driver)
	}

	if cfg.Telegram.Enabled && strings.TrimSpace(cfg.Telegram.Token) == "" {
		return errors.New("telegram.token (BOT_TOKEN) is required when telegram is enabled")
	}
	return nil
}

// loadEnvFile busca un .env en el cwd o en la raíz del proyecto (go.mod).
func loadEnvFile() {
	paths := []string{".env"}
	if root := findProjectRoot(); root != "" {
		paths = append(paths, filepath.Join(root, ".env"))
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			return
		}
	}
}

func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
