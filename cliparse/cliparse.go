package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Supported database drivers
const (
	DatabasePostgres = "postgres"
	DatabaseSQLite   = "sqlite"
)

type Config struct {
	Port            int           `koanf:"port"`
	DatabaseURL     string        `koanf:"database_url"`
	DatabaseType    string        `koanf:"database_type"`
	LogLevel        string        `koanf:"log_level"`
	LogFormat       string        `koanf:"log_format"`
	InitSchema      bool          `koanf:"init_schema"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	LeaderboardSize int           `koanf:"leaderboard_size"`
	RecentLimit     int           `koanf:"recent_limit"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// envKeys lists the koanf keys that may be set from the environment.
// The variable name is the upper-cased key (DATABASE_URL -> database_url).
var envKeys = map[string]bool{
	"port":              true,
	"database_url":      true,
	"database_type":     true,
	"log_level":         true,
	"log_format":        true,
	"init_schema":       true,
	"max_open_conns":    true,
	"max_idle_conns":    true,
	"conn_max_lifetime": true,
	"leaderboard_size":  true,
	"recent_limit":      true,
	"shutdown_timeout":  true,
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		Port:            3000,
		DatabaseType:    DatabasePostgres,
		LogLevel:        "info",
		LogFormat:       "auto",
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
		LeaderboardSize: 10,
		RecentLimit:     10,
		ShutdownTimeout: 10 * time.Second,
	}
}

// ParseFlags builds the configuration from (low to high precedence)
// defaults, an optional YAML file, the environment (after loading .env)
// and command-line flags.
func ParseFlags(args []string) (Config, error) {
	var (
		port         int
		databaseURL  string
		databaseType string
		configFile   string
		envFile      string
		logLevel     string
		logFormat    string
		initSchema   bool
	)

	fs := flag.NewFlagSet("icpc-scoreboard", flag.ContinueOnError)

	fs.IntVar(&port, "p", 0, "Server port")
	fs.StringVar(&databaseURL, "d", "", "Database URL")
	fs.StringVar(&databaseType, "t", "", "Database type (postgres or sqlite)")
	fs.StringVar(&configFile, "c", "", "YAML config file")
	fs.StringVar(&envFile, "env-file", ".env", "Dotenv file loaded before reading the environment")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&logFormat, "log-format", "", "Log format (auto, text, json)")
	fs.BoolVar(&initSchema, "init-schema", false, "Create tables if they do not exist")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if envFile != "" {
		// Existing environment variables win over the file.
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	if configFile == "" {
		configFile = os.Getenv("CONFIG_FILE")
	}

	cfg, err := load(configFile)
	if err != nil {
		return Config{}, err
	}

	// CLI flags override everything else
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "p":
			cfg.Port = port
		case "d":
			cfg.DatabaseURL = databaseURL
		case "t":
			cfg.DatabaseType = databaseType
		case "log-level":
			cfg.LogLevel = logLevel
		case "log-format":
			cfg.LogFormat = logFormat
		case "init-schema":
			cfg.InitSchema = initSchema
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// load layers the YAML file (if any) and the environment over Default.
func load(configFile string) (Config, error) {
	k := koanf.New(".")

	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("failed to load config file %s: %w", configFile, err)
		}
	}

	envProvider := env.Provider("", ".", func(s string) string {
		key := strings.ToLower(s)
		if envKeys[key] {
			return key
		}
		return ""
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	switch c.DatabaseType {
	case DatabasePostgres, DatabaseSQLite:
	default:
		return fmt.Errorf("unsupported database type %q (want postgres or sqlite)", c.DatabaseType)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.LeaderboardSize <= 0 {
		return errors.New("leaderboard_size must be positive")
	}
	if c.RecentLimit <= 0 {
		return errors.New("recent_limit must be positive")
	}
	return nil
}
