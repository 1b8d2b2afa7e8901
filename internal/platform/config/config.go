package config

import "time"

// Config es la configuración completa del servicio.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Sessions SessionsConfig `mapstructure:"sessions"`
	Telegram TelegramConfig `mapstructure:"telegram"`
	Referral ReferralConfig `mapstructure:"referral"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

type HTTPConfig struct {
	Port         string `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // milliseconds
	WriteTimeout int    `mapstructure:"write_timeout"` // milliseconds
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Storage drivers para perfiles y casos.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageFile     = "file"
)

type StorageConfig struct {
	Driver   string         `mapstructure:"driver"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	File     FileConfig     `mapstructure:"file"`
}

type PostgresConfig struct {
	DSN          string `mapstructure:"dsn"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	Migrate      bool   `mapstructure:"migrate"`
}

type FileConfig struct {
	BaseDir string `mapstructure:"base_dir"`
}

// Session store drivers.
const (
	SessionsMemory = "memory"
	SessionsRedis  = "redis"
)

type SessionsConfig struct {
	Driver string      `mapstructure:"driver"`
	Redis  RedisConfig `mapstructure:"redis"`
	// IdleTTL en segundos; 0 = las sesiones no expiran.
	IdleTTL int `mapstructure:"idle_ttl"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type TelegramConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Token       string `mapstructure:"token"`
	APIBaseURL  string `mapstructure:"api_base_url"`
	PollTimeout int    `mapstructure:"poll_timeout"` // seconds (long polling)
}

type ReferralConfig struct {
	Phone string `mapstructure:"phone"`
	Chat  string `mapstructure:"chat"`
}

// GetDuration convierte milisegundos de config a time.Duration.
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}

// SessionIdleTTL devuelve el TTL de sesiones inactivas (0 = sin expiración).
func (c SessionsConfig) SessionIdleTTL() time.Duration {
	if c.IdleTTL <= 0 {
		return 0
	}
	return time.Duration(c.IdleTTL) * time.Second
}
