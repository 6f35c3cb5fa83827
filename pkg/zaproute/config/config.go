// Package config loads zaproute settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/zaproute/pkg/zaproute/constants"
)

// QueryKeyword is the query parameter used for route sync. In TOML it is
// either a string, true for the default keyword, or false to disable sync.
type QueryKeyword string

// UnmarshalTOML implements toml.Unmarshaler.
func (k *QueryKeyword) UnmarshalTOML(v any) error {
	switch value := v.(type) {
	case bool:
		if value {
			*k = constants.DefaultQueryKeyword
		} else {
			*k = ""
		}
	case string:
		*k = QueryKeyword(strings.TrimSpace(value))
	default:
		return fmt.Errorf("query_keyword: want string or bool, got %T", v)
	}
	return nil
}

// Enabled reports whether query sync is on.
func (k QueryKeyword) Enabled() bool {
	return k != ""
}

// Config is the full file layout.
type Config struct {
	QueryKeyword QueryKeyword `toml:"query_keyword"`
	Index        string       `toml:"index"`
	Language     string       `toml:"language"`
	Server       Server       `toml:"server"`
	Log          Log          `toml:"log"`
}

// Server configures the web host.
type Server struct {
	Addr       string        `toml:"addr"`
	SessionTTL time.Duration `toml:"session_ttl"`
}

// Log configures logging.
type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		QueryKeyword: constants.DefaultQueryKeyword,
		Server: Server{
			Addr:       constants.DefaultAddr,
			SessionTTL: constants.DefaultSessionTTL,
		},
		Log: Log{Level: "info"},
	}
}

// Parse decodes TOML on top of the defaults. Unknown keys are an error.
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return Config{}, fmt.Errorf("decode config: unknown keys %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the file at path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values the decoder cannot.
func (c Config) Validate() error {
	if c.Server.SessionTTL <= 0 {
		return fmt.Errorf("server.session_ttl must be positive, got %s", c.Server.SessionTTL)
	}
	if c.Server.Addr == "" {
		return errors.New("server.addr must not be empty")
	}
	return nil
}
