// Package app provides application initialization and dependency wiring.
//
// App is the container that builds the Genkit instance, the model client,
// the code generation orchestrator, the session store, the packager, and
// the bot handler, in dependency order.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/googlegenai"

	"github.com/sharebot0/sharebot/internal/artifact"
	"github.com/sharebot0/sharebot/internal/bot"
	"github.com/sharebot0/sharebot/internal/codegen"
	"github.com/sharebot0/sharebot/internal/config"
	"github.com/sharebot0/sharebot/internal/llm"
	"github.com/sharebot0/sharebot/internal/session"
)

// App is the core application container.
type App struct {
	Config   *config.Config
	Genkit   *genkit.Genkit
	Model    *llm.Client
	Codegen  *codegen.Service
	Sessions *session.Store
	Packager *artifact.Packager
	Bot      *bot.Handler

	logger *slog.Logger
}

// Setup creates and initializes the application.
func Setup(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if err := cfg.ValidateAPIKey(); err != nil {
		return nil, err
	}

	a := &App{Config: cfg, logger: logger}

	g, err := provideGenkit(ctx)
	if err != nil {
		return nil, err
	}
	a.Genkit = g

	model, err := llm.New(llm.Config{
		Genkit:      g,
		ModelName:   cfg.FullModelName(),
		Temperature: cfg.Temperature,
		Logger:      logger.With("component", "llm"),
	})
	if err != nil {
		return nil, fmt.Errorf("creating model client: %w", err)
	}
	a.Model = model

	gen, err := codegen.New(codegen.Config{
		Model:  model,
		Logger: logger.With("component", "codegen"),
	})
	if err != nil {
		return nil, fmt.Errorf("creating code generator: %w", err)
	}
	a.Codegen = gen

	a.Sessions = session.NewStore(logger.With("component", "session"))
	a.Packager = artifact.NewPackager(cfg.ArchiveDir, logger.With("component", "packager"))

	handler, err := bot.New(bot.Config{
		Generator: gen,
		Model:     model,
		Images:    model,
		Sessions:  a.Sessions,
		Packager:  a.Packager,
		Logger:    logger.With("component", "bot"),
	})
	if err != nil {
		return nil, fmt.Errorf("creating bot handler: %w", err)
	}
	a.Bot = handler

	logger.Info("application initialized", "model", cfg.FullModelName())
	return a, nil
}

// provideGenkit initializes Genkit with the Google AI plugin.
// The plugin reads GEMINI_API_KEY from the environment.
func provideGenkit(ctx context.Context) (*genkit.Genkit, error) {
	g := genkit.Init(ctx, genkit.WithPlugins(&googlegenai.GoogleAI{}))
	if g == nil {
		return nil, errors.New("initializing genkit with googleai provider")
	}
	return g, nil
}

// Close releases application resources. The pipeline holds no external
// connections; this exists for symmetry with Setup and future resources.
func (a *App) Close() error {
	a.logger.Info("shutting down application")
	return nil
}
