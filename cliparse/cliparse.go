package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/danielhkuo/polls/db"
)

type Config struct {
	Env          string   `yaml:"env" env:"APP_ENV" env-default:"local"`
	Port         int      `yaml:"port" env:"PORT" env-default:"3318"`
	DatabaseURL  string   `yaml:"database_url" env:"DATABASE_URL"`
	DatabaseType string   `yaml:"database_type" env:"DATABASE_TYPE" env-default:"sqlite"`
	CORSOrigins  []string `yaml:"cors_origins" env:"CORS_ORIGINS" env-separator:"," env-default:"*"`
}

// ParseFlags builds the config from an optional YAML file, the environment,
// and CLI flags, in increasing order of precedence.
func ParseFlags(args []string) (Config, error) {
	var (
		cfg        Config
		configPath string
		port       int
		dbURL      string
		dbType     string
		env        string
		origins    string
	)

	fs := flag.NewFlagSet("polls", flag.ContinueOnError)

	fs.StringVar(&configPath, "c", "", "Path to YAML config file")
	fs.IntVar(&port, "p", 0, "Server port")
	fs.StringVar(&dbURL, "d", "", "Database URL")
	fs.StringVar(&dbType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&env, "env", "", "Environment (local, dev, prod)")
	fs.StringVar(&origins, "cors", "", "Comma-separated allowed CORS origins")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}

	// cleanenv applies env vars on top of the file, then defaults
	if configPath != "" {
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return Config{}, fmt.Errorf("cannot read config %s: %w", configPath, err)
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, fmt.Errorf("cannot read env: %w", err)
		}
	}

	// Explicit flags win
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "p":
			cfg.Port = port
		case "d":
			cfg.DatabaseURL = dbURL
		case "t":
			cfg.DatabaseType = dbType
		case "env":
			cfg.Env = env
		case "cors":
			cfg.CORSOrigins = splitList(origins)
		}
	})

	if cfg.Port <= 0 {
		return Config{}, errors.New("invalid port")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	if err := db.ValidateDialect(cfg.DatabaseType); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
