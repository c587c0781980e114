package llm

import (
	"testing"

	"github.com/firebase/genkit/go/genkit"

	"github.com/sharebot0/sharebot/internal/log"
)

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	valid := Config{
		Genkit:    &genkit.Genkit{},
		ModelName: "googleai/gemini-2.5-flash",
		Logger:    log.NewNop(),
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing genkit", mutate: func(c *Config) { c.Genkit = nil }, wantErr: true},
		{name: "missing model name", mutate: func(c *Config) { c.ModelName = "" }, wantErr: true},
		{name: "missing logger", mutate: func(c *Config) { c.Logger = nil }, wantErr: true},
		{name: "zero temperature is fine", mutate: func(c *Config) { c.Temperature = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid
			tt.mutate(&cfg)

			_, err := New(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
