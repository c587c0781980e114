// Package codegen orchestrates code generation: prompt construction, the
// generative service call, and extraction of the best fenced block, with one
// bounded format retry.
package codegen

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sharebot0/sharebot/internal/artifact"
	"github.com/sharebot0/sharebot/internal/extract"
	"github.com/sharebot0/sharebot/internal/lang"
)

// Completer is the generative text service as consumed by the orchestrator:
// one prompt string in, one completion string out. Implemented by llm.Client.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Config contains all required parameters for the Service.
type Config struct {
	Model  Completer
	Logger *slog.Logger
}

func (cfg Config) validate() error {
	if cfg.Model == nil {
		return errors.New("model is required")
	}
	if cfg.Logger == nil {
		return errors.New("logger is required")
	}
	return nil
}

// Service drives the generate and improve pipelines.
// It is the only creator of artifacts; callers receive them and never
// mutate them.
type Service struct {
	model  Completer
	logger *slog.Logger
}

// New creates a Service from cfg.
func New(cfg Config) (*Service, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Service{model: cfg.Model, logger: cfg.Logger}, nil
}

// attempt is one prompt/complete/extract pass of the generate pipeline.
type attempt struct {
	stage  string
	prompt string
}

// Generate produces a code artifact for the question, or reports false when
// neither attempt yields a usable fenced block.
//
// The pipeline is exactly two bounded attempts: the first-pass prompt, then
// — only if extraction fails — the strict-format retry. At most two model
// calls happen per invocation, never more. A failed model call is treated as
// an empty completion (which fails extraction) rather than a propagated
// error; the original behavior treats "service unreachable" and "model said
// nothing useful" identically, and that equivalence is kept on purpose.
func (s *Service) Generate(ctx context.Context, question string, hint lang.Tag) (*artifact.Artifact, bool) {
	if hint == "" {
		hint = lang.Guess(question)
	}

	attempts := [2]attempt{
		{stage: "first_pass", prompt: FirstPassPrompt(hint, question)},
		{stage: "strict_retry", prompt: StrictRetryPrompt(hint, question)},
	}

	for _, att := range attempts {
		text := s.complete(ctx, att.stage, att.prompt)
		if a, ok := extract.Best(text, hint); ok {
			s.logger.Debug("generated code artifact",
				"stage", att.stage,
				"language", a.Language,
				"length", a.Length)
			return a, true
		}
	}

	s.logger.Info("no code block extracted after retry", "hint", hint)
	return nil, false
}

// Improve runs a single improvement pass over existing code: one prompt, one
// model call, one extraction. No retry.
func (s *Service) Improve(ctx context.Context, language lang.Tag, code, description, changes string) (*artifact.Artifact, bool) {
	text := s.complete(ctx, "improve", ImprovePrompt(language, code, description, changes))
	a, ok := extract.Best(text, language)
	if ok {
		s.logger.Debug("improved code artifact",
			"language", a.Language,
			"length", a.Length)
	}
	return a, ok
}

// complete calls the model, degrading any service failure to an empty
// completion so it folds into extraction failure downstream.
func (s *Service) complete(ctx context.Context, stage, prompt string) string {
	text, err := s.model.Complete(ctx, prompt)
	if err != nil {
		s.logger.Warn("model call failed, treating as empty completion",
			"stage", stage,
			"error", err)
		return ""
	}
	return text
}
