package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string   `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string   `yaml:"socket-port" env:"SOCKET_PORT" env-default:"8080"`
	Redis      Redis    `yaml:"redis"`
	Postgres   Postgres `yaml:"postgres"`
	Game       Game     `yaml:"game"`
}

type Redis struct {
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

// Postgres holds the results archive settings. An empty DSN disables the archive.
type Postgres struct {
	DSN             string        `yaml:"dsn" env:"POSTGRES_DSN" env-default:""`
	MaxOpenConns    int           `yaml:"max-open-conns" env-default:"10"`
	MaxIdleConns    int           `yaml:"max-idle-conns" env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"conn-max-lifetime" env-default:"30m"`
}

type Game struct {
	// MoveRetries bounds optimistic retries when two writers race on the same game.
	MoveRetries int           `yaml:"move-retries" env:"GAME_MOVE_RETRIES" env-default:"5"`
	RecordTTL   time.Duration `yaml:"record-ttl" env:"GAME_RECORD_TTL" env-default:"24h"`
	BotEnabled  bool          `yaml:"bot-enabled" env:"GAME_BOT_ENABLED" env-default:"true"`
}

// Load - reads the config file and applies environment overrides.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

func (that *Postgres) Enabled() bool {
	return that.DSN != ""
}
