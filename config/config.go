package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Address string `mapstructure:"address"`
	// Mode is the gin mode: "release", "debug" or "test".
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig selects the relational store.
type DatabaseConfig struct {
	// Driver is either "mysql" or "sqlite".
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

// AuthConfig holds the bearer token settings.
type AuthConfig struct {
	Secret        string        `mapstructure:"secret"`
	Issuer        string        `mapstructure:"issuer"`
	Audience      string        `mapstructure:"audience"`
	TokenLifetime time.Duration `mapstructure:"token_lifetime"`
}

// LogConfig controls the zerolog output.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// FirebaseConfig enables the Firestore mirror when ProjectID is set.
type FirebaseConfig struct {
	ProjectID       string `mapstructure:"project_id"`
	CredentialsFile string `mapstructure:"credentials_file"`
}

// SchedulerConfig holds the cron spec of the housekeeping job. An empty
// spec disables the scheduler.
type SchedulerConfig struct {
	Spec string `mapstructure:"spec"`
}

// Config is the top-level application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Log       LogConfig       `mapstructure:"log"`
	Firebase  FirebaseConfig  `mapstructure:"firebase"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

const envPrefix = "SMARTTASKS"

// MinSecretLength is the shortest HMAC secret accepted for signing tokens.
const MinSecretLength = 32

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("database.driver", "mysql")
	// Undated tasks store the zero time, which NO_ZERO_DATE would refuse.
	v.SetDefault("database.dsn", "root:root@tcp(127.0.0.1:3306)/smarttasks?charset=utf8mb4&parseTime=True&loc=UTC&sql_mode=%27STRICT_TRANS_TABLES%27")
	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.issuer", "smarttasks")
	v.SetDefault("auth.audience", "smarttasks-api")
	v.SetDefault("auth.token_lifetime", 120*time.Minute)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", "")
	v.SetDefault("firebase.project_id", "")
	v.SetDefault("firebase.credentials_file", "")
	v.SetDefault("scheduler.spec", "@every 1h")
}

// Load reads the configuration. A .env file in the working directory is
// loaded into the environment first, then the optional YAML file at path,
// then SMARTTASKS_* environment variables override both.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			var pathErr *os.PathError
			if !errors.As(err, &notFound) && !errors.As(err, &pathErr) {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first setting that would prevent the server from
// starting.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return errors.New("database dsn is required")
	}
	if len(c.Auth.Secret) < MinSecretLength {
		return fmt.Errorf("auth secret must be at least %d characters", MinSecretLength)
	}
	if c.Auth.TokenLifetime <= 0 {
		return errors.New("auth token lifetime must be positive")
	}
	return nil
}
