package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"

	OpeningRandom = "random"
	OpeningSearch = "search"
)

var (
	ErrUnknownDriver     = errors.New("unknown storage driver")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrUnknownLogLevel   = errors.New("unknown log level")
	ErrUnknownOpening    = errors.New("unknown opening")
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"TRIS_LOG_LEVEL" env-default:"info"`
	Storage  Storage `yaml:"storage"`
	Redis    Redis   `yaml:"redis"`
	Game     Game    `yaml:"game"`
}

type Storage struct {
	Driver string `yaml:"driver" env:"TRIS_STORAGE_DRIVER" env-default:"memory"`
}

type Redis struct {
	Host string        `yaml:"host" env:"TRIS_REDIS_HOST" env-default:"localhost"`
	Port string        `yaml:"port" env:"TRIS_REDIS_PORT" env-default:"6379"`
	TTL  time.Duration `yaml:"ttl" env:"TRIS_REDIS_TTL" env-default:"1h"`
}

type Game struct {
	Difficulty string `yaml:"difficulty" env:"TRIS_DIFFICULTY" env-default:"hard"`
	Opening    string `yaml:"opening" env:"TRIS_OPENING" env-default:"random"`
}

// RandomOpening reports whether the bot opens on a random cell instead of searching.
func (that *Game) RandomOpening() bool {
	return that.Opening == OpeningRandom
}

// Load reads the YAML file at path with environment overrides. A missing
// file is not an error: the environment and defaults are used alone.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if _, statErr := os.Stat(path); statErr == nil {
		err = cleanenv.ReadConfig(path, config)
	} else {
		err = cleanenv.ReadEnv(config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
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

func (that *Config) Validate() error {
	switch that.Storage.Driver {
	case DriverMemory, DriverRedis:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, that.Storage.Driver)
	}

	switch that.Game.Difficulty {
	case "easy", "medium", "hard":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDifficulty, that.Game.Difficulty)
	}

	switch that.Game.Opening {
	case OpeningRandom, OpeningSearch:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOpening, that.Game.Opening)
	}

	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, that.LogLevel)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
