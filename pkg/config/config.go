package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const envFile = "./configs/.env"

var (
	once     sync.Once
	instance *Config
)

type Config struct {
	API      APIConfig
	Postgres PostgresConfig
	JWT      JWTConfig
	Log      LogConfig
}

type APIConfig struct {
	Address         string        `env:"API_ADDRESS"          env-default:":8080"`
	ReadTimeout     time.Duration `env:"API_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `env:"API_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `env:"API_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `env:"API_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type PostgresConfig struct {
	Address  string `env:"PG_ADDRESS"   env-default:"localhost:5432"`
	Username string `env:"PG_USER"      env-required:"true"`
	Password string `env:"PG_PASSWORD"  env-required:"true"`
	DB       string `env:"PG_DB"        env-default:"cocoon"`
	SSLMode  string `env:"PG_SSLMODE"   env-default:"disable"`
	MaxConns int32  `env:"PG_MAX_CONNS" env-default:"10"`
}

// ConnString builds the DSN used by the pgx pool and the migrations.
func (c *PostgresConfig) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s?sslmode=%s", c.Username, c.Password, c.Address, c.DB, c.SSLMode)
}

type JWTConfig struct {
	Secret   string        `env:"JWT_SECRET"    env-required:"true"`
	TokenTTL time.Duration `env:"JWT_TOKEN_TTL" env-default:"1h"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL"  env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"json"`
}

// Load reads ./configs/.env when it exists, then the environment.
// Variables already set in the environment win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.New("loading envs error: " + err.Error())
	}
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, errors.New("reading config error: " + err.Error())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if len(c.JWT.Secret) < 16 {
		return errors.New("config: JWT_SECRET must be at least 16 characters")
	}
	if c.JWT.TokenTTL <= 0 {
		return errors.New("config: JWT_TOKEN_TTL must be positive")
	}
	if c.Postgres.MaxConns < 0 {
		return errors.New("config: PG_MAX_CONNS must not be negative")
	}
	return nil
}

// New loads the process-wide configuration once. Invalid configuration is fatal.
func New() *Config {
	once.Do(func() {
		cfg, err := Load()
		if err != nil {
			log.Fatal(err)
		}
		instance = cfg
	})
	return instance
}
