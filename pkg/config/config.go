package config

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/JJ-Intelligence/N-In-A-Row/pkg/game"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v2"
)

const envPrefix = "NROW_"

const (
	OutputText = "text"
	OutputJSON = "json"
)

var ErrInvalidOutput = errors.New("output must be 'text' or 'json'")

type Config struct {
	BoardSize int    `mapstructure:"board_size"`
	Connect   int    `mapstructure:"connect"`
	LogLevel  string `mapstructure:"log_level"`
	Output    string `mapstructure:"output"`
}

func Default() Config {
	return Config{
		BoardSize: 3,
		Connect:   3,
		LogLevel:  "warn",
		Output:    OutputText,
	}
}

// Rules builds the game rules, validating board size and connect length.
func (c Config) Rules() (game.Rules, error) {
	return game.NewRules(c.BoardSize, c.Connect)
}

// Level parses LogLevel.
func (c Config) Level() (zapcore.Level, error) {
	var level zapcore.Level
	err := level.UnmarshalText([]byte(c.LogLevel))
	return level, err
}

func (c Config) Validate() error {
	if _, err := c.Rules(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if c.Output != OutputText && c.Output != OutputJSON {
		return ErrInvalidOutput
	}
	return nil
}

// ParseConfig reads the YAML file at path, if it exists, then applies NROW_*
// environment overrides on top of the defaults.
func ParseConfig(path string) (*Config, error) {
	raw := make(map[string]interface{})
	if path != "" {
		configFile, err := ioutil.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("unable to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(configFile, &raw); err != nil {
				return nil, fmt.Errorf("unable to parse yaml config: %w", err)
			}
		}
	}

	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		kv := strings.SplitN(strings.TrimPrefix(env, envPrefix), "=", 2)
		raw[strings.ToLower(kv[0])] = kv[1]
	}

	cfg := Default()
	if err := Decode(raw, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Decode merges raw settings into cfg. Strings are converted to numbers where
// the field needs one, so environment values decode cleanly.
func Decode(raw map[string]interface{}, cfg *Config) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           cfg,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("unable to decode config: %w", err)
	}
	return nil
}
