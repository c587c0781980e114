// Package config provides application configuration with multi-source
// priority.
//
// Sources (highest to lowest):
//  1. Environment variables (runtime override)
//  2. Config file (~/.sharebot/config.yaml)
//  3. Default values
//
// Security: the platform token is never logged; the config directory uses
// 0750 permissions. Validation is fail-fast with sentinel errors checked
// via errors.Is().
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

var (
	// ErrMissingAPIKey indicates GEMINI_API_KEY is not set.
	ErrMissingAPIKey = errors.New("missing API key")

	// ErrInvalidModelName indicates the model name is empty or malformed.
	ErrInvalidModelName = errors.New("invalid model name")

	// ErrInvalidTemperature indicates the temperature is out of range.
	ErrInvalidTemperature = errors.New("invalid temperature")

	// ErrInvalidListenAddr indicates the gateway listen address is empty.
	ErrInvalidListenAddr = errors.New("invalid listen address")
)

// DefaultModelName is the Gemini model used when no override is configured.
const DefaultModelName = "gemini-2.5-flash"

// Config stores application configuration.
// SECURITY: sensitive fields are masked in MarshalJSON; update it when
// adding secrets.
type Config struct {
	// Generative model configuration
	ModelName   string  `mapstructure:"model_name" json:"model_name"`
	Temperature float32 `mapstructure:"temperature" json:"temperature"`

	// Chat platform gateway
	PlatformToken string `mapstructure:"platform_token" json:"platform_token"` // SENSITIVE: masked in MarshalJSON
	ListenAddr    string `mapstructure:"listen_addr" json:"listen_addr"`

	// Artifact packaging
	ArchiveDir string `mapstructure:"archive_dir" json:"archive_dir"` // "" = system temp dir
}

// Load loads configuration.
// Priority: environment variables > configuration file > default values.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting user home directory: %w", err)
	}

	configDir := filepath.Join(home, ".sharebot")
	if err := os.MkdirAll(configDir, 0o750); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	setDefaults(v)
	bindEnvVariables(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is not an error; defaults apply.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		slog.Debug("configuration file not found, using defaults",
			"search_paths", []string{configDir, "."})
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("model_name", DefaultModelName)
	v.SetDefault("temperature", 0.7)
	v.SetDefault("listen_addr", "127.0.0.1:3400")
	v.SetDefault("archive_dir", "")
}

// bindEnvVariables binds environment overrides explicitly.
//
// GEMINI_API_KEY is read directly by the Genkit plugin, not via Viper;
// Validate only checks its presence.
func bindEnvVariables(v *viper.Viper) {
	mustBind := func(key, envVar string) {
		if err := v.BindEnv(key, envVar); err != nil {
			panic(fmt.Sprintf("BUG: failed to bind %q to %q: %v", key, envVar, err))
		}
	}

	mustBind("model_name", "GEMINI_MODEL")
	mustBind("platform_token", "SHAREBOT_PLATFORM_TOKEN")
	mustBind("listen_addr", "SHAREBOT_LISTEN_ADDR")
	mustBind("archive_dir", "SHAREBOT_ARCHIVE_DIR")
}

// Validate checks all configuration values. It is called by Load but
// exported for tests and for callers constructing Config directly.
func (c *Config) Validate() error {
	name := strings.TrimSpace(c.ModelName)
	if name == "" || strings.ContainsAny(name, " \t\n") {
		return fmt.Errorf("%w: %q", ErrInvalidModelName, c.ModelName)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("%w: %v (must be in [0, 2])", ErrInvalidTemperature, c.Temperature)
	}
	if strings.TrimSpace(c.ListenAddr) == "" {
		return ErrInvalidListenAddr
	}
	return nil
}

// ValidateAPIKey checks that the Gemini credential is present in the
// environment. Kept separate from Validate so offline commands (version,
// help) can load config without a key.
func (c *Config) ValidateAPIKey() error {
	if os.Getenv("GEMINI_API_KEY") == "" && os.Getenv("GOOGLE_API_KEY") == "" {
		return fmt.Errorf("%w: set GEMINI_API_KEY", ErrMissingAPIKey)
	}
	return nil
}

// FullModelName returns the provider-qualified model name for Genkit.
// A name already containing "/" is returned as-is.
func (c *Config) FullModelName() string {
	if strings.Contains(c.ModelName, "/") {
		return c.ModelName
	}
	return "googleai/" + c.ModelName
}

// maskedValue replaces secrets in serialized config.
const maskedValue = "████████"

func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	return maskedValue
}

// MarshalJSON implements json.Marshaler with explicit secret masking.
func (c Config) MarshalJSON() ([]byte, error) {
	type alias Config
	a := alias(c)
	a.PlatformToken = maskSecret(a.PlatformToken)
	data, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// String implements Stringer to prevent accidental printing of secrets.
func (c Config) String() string {
	data, err := c.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("Config{error: %v}", err)
	}
	return string(data)
}
