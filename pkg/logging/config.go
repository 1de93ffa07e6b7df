package logging

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var (
	ErrParseConfig   = errors.New("logging: failed to parse config from environment")
	ErrInvalidFormat = errors.New("logging: invalid log format")
	ErrReadLevels    = errors.New("logging: failed to read levels file")
	ErrParseLevels   = errors.New("logging: failed to parse levels file")
)

// Config is the registry configuration read from the environment.
type Config struct {
	Level      slog.Level `env:"LOGCALL_LOG_LEVEL" envDefault:"debug"`
	Format     Format     `env:"LOGCALL_LOG_FORMAT" envDefault:"text"`
	AddSource  bool       `env:"LOGCALL_LOG_SOURCE" envDefault:"true"`
	LevelsFile string     `env:"LOGCALL_LOG_LEVELS_FILE"`
}

var defaultEnvLoaded sync.Once

// LoadConfig reads the registry configuration from the environment. A .env
// file in the working directory is loaded once, first; its absence is fine.
func LoadConfig() (Config, error) {
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParseConfig, err)
	}
	switch cfg.Format {
	case FormatJSON, FormatText:
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidFormat, cfg.Format)
	}
	return cfg, nil
}

// Options translates the config into factory options.
func (c Config) Options() []Option {
	return []Option{
		WithLevel(c.Level),
		WithFormat(c.Format),
		WithAddSource(c.AddSource),
	}
}

// Bootstrap configures the registry from the environment, including
// per-logger levels when LOGCALL_LOG_LEVELS_FILE names a YAML file.
func Bootstrap() error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	Configure(cfg.Options()...)
	if cfg.LevelsFile == "" {
		return nil
	}
	levels, err := LoadLevels(cfg.LevelsFile)
	if err != nil {
		return err
	}
	ApplyLevels(levels)
	return nil
}

// levelsFile is the YAML shape of a per-logger level file:
//
//	loggers:
//	  app.http: info
//	  app.worker: warn
type levelsFile struct {
	Loggers map[string]string `yaml:"loggers"`
}

// LoadLevels reads a YAML file mapping logger names to levels.
func LoadLevels(path string) (map[string]slog.Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadLevels, err)
	}
	var file levelsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Join(ErrParseLevels, err)
	}
	levels := make(map[string]slog.Level, len(file.Loggers))
	for name, raw := range file.Loggers {
		level, err := ParseLevel(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: logger %q: %v", ErrParseLevels, name, err)
		}
		levels[name] = level
	}
	return levels, nil
}

// ParseLevel parses a level name ("debug", "info", "warn", "error",
// optionally with an offset like "debug-4") into a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, err
	}
	return level, nil
}

// ApplyLevels sets each named logger's level, as if by SetLevel.
func ApplyLevels(levels map[string]slog.Level) {
	for name, level := range levels {
		SetLevel(name, level)
	}
}
