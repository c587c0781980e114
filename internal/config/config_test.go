package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func validConfig() Config {
	return Config{
		ModelName:   DefaultModelName,
		Temperature: 0.7,
		ListenAddr:  "127.0.0.1:3400",
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "valid defaults", mutate: func(c *Config) {}},
		{name: "empty model name", mutate: func(c *Config) { c.ModelName = "" }, wantErr: ErrInvalidModelName},
		{name: "whitespace model name", mutate: func(c *Config) { c.ModelName = "   " }, wantErr: ErrInvalidModelName},
		{name: "model name with spaces", mutate: func(c *Config) { c.ModelName = "gemini 2.5" }, wantErr: ErrInvalidModelName},
		{name: "temperature below range", mutate: func(c *Config) { c.Temperature = -0.1 }, wantErr: ErrInvalidTemperature},
		{name: "temperature above range", mutate: func(c *Config) { c.Temperature = 2.5 }, wantErr: ErrInvalidTemperature},
		{name: "temperature at upper bound", mutate: func(c *Config) { c.Temperature = 2 }},
		{name: "zero temperature", mutate: func(c *Config) { c.Temperature = 0 }},
		{name: "empty listen addr", mutate: func(c *Config) { c.ListenAddr = "" }, wantErr: ErrInvalidListenAddr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateAPIKey(t *testing.T) {
	cfg := validConfig()

	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")
	if err := cfg.ValidateAPIKey(); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("ValidateAPIKey() error = %v, want ErrMissingAPIKey", err)
	}

	t.Setenv("GEMINI_API_KEY", "test-key")
	if err := cfg.ValidateAPIKey(); err != nil {
		t.Errorf("ValidateAPIKey() error = %v, want nil", err)
	}

	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "test-key")
	if err := cfg.ValidateAPIKey(); err != nil {
		t.Errorf("ValidateAPIKey() with GOOGLE_API_KEY error = %v, want nil", err)
	}
}

func TestFullModelName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		model string
		want  string
	}{
		{name: "bare name gets provider prefix", model: "gemini-2.5-flash", want: "googleai/gemini-2.5-flash"},
		{name: "qualified name kept", model: "vertexai/gemini-2.5-pro", want: "vertexai/gemini-2.5-pro"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			cfg.ModelName = tt.model
			if got := cfg.FullModelName(); got != tt.want {
				t.Errorf("FullModelName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSecretsMasked(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.PlatformToken = "super-secret-token"

	s := cfg.String()
	if strings.Contains(s, "super-secret-token") {
		t.Errorf("String() leaked the platform token: %s", s)
	}
	if !strings.Contains(s, maskedValue) {
		t.Errorf("String() = %s, want the mask in place of the token", s)
	}

	// Empty secrets stay empty rather than masked.
	cfg.PlatformToken = ""
	if strings.Contains(cfg.String(), maskedValue) {
		t.Error("an unset token should not be rendered as masked")
	}
}

func TestEnvOverridesMustBind(t *testing.T) {
	t.Parallel()

	// bindEnvVariables panics only on programmer error; binding the real
	// key set must not panic.
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("bindEnvVariables panicked: %v", r)
		}
	}()
	bindEnvVariables(viper.New())
}
