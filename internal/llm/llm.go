// Package llm is the boundary adapter for the generative text service.
//
// It wraps a Genkit Gemini model behind two small operations: Complete (one
// prompt string in, one completion string out, no streaming) and ReadImage
// (image URL in, recognized text out). Transport and API failures surface as
// ordinary errors here; the orchestrator decides how to degrade them.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"google.golang.org/genai"
)

// Config contains all required parameters for the client.
type Config struct {
	Genkit      *genkit.Genkit
	ModelName   string  // Provider-qualified model name (e.g. "googleai/gemini-2.5-flash")
	Temperature float32 // 0 keeps the model default
	Logger      *slog.Logger
}

// validate checks if all required parameters are present.
func (cfg Config) validate() error {
	if cfg.Genkit == nil {
		return errors.New("genkit instance is required")
	}
	if cfg.ModelName == "" {
		return errors.New("model name is required")
	}
	if cfg.Logger == nil {
		return errors.New("logger is required")
	}
	return nil
}

// Client calls the Gemini model through Genkit.
// All configuration is captured immutably at construction time, so a Client
// is safe for concurrent use.
type Client struct {
	g           *genkit.Genkit
	modelName   string
	temperature float32
	logger      *slog.Logger
}

// New creates a Client from cfg.
func New(cfg Config) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Client{
		g:           cfg.Genkit,
		modelName:   cfg.ModelName,
		temperature: cfg.Temperature,
		logger:      cfg.Logger,
	}, nil
}

// Complete sends a single prompt and returns the model's text completion.
// The returned text may be empty; that is not an error. A non-nil error
// means the service call itself failed (transport, auth, quota).
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	opts := []ai.GenerateOption{
		ai.WithPrompt("%s", prompt),
		ai.WithModelName(c.modelName),
	}
	if c.temperature > 0 {
		opts = append(opts, ai.WithConfig(&genai.GenerateContentConfig{
			Temperature: genai.Ptr(c.temperature),
		}))
	}

	resp, err := genkit.Generate(ctx, c.g, opts...)
	if err != nil {
		return "", fmt.Errorf("generating completion: %w", err)
	}

	text := resp.Text()
	c.logger.Debug("completion received",
		"prompt_len", len(prompt),
		"response_len", len(text))
	return text, nil
}

// readImagePrompt asks the model to act as a plain OCR engine for the two
// languages the bot serves.
const readImagePrompt = "Extract all Arabic and English text visible in this image. " +
	"Return only the recognized text, with no commentary. " +
	"If the image contains no readable text, return nothing."

// ReadImage downloads the image behind url and returns the text recognized
// in it. An empty result means no readable text was found; that is reported
// as empty output, not as an error.
func (c *Client) ReadImage(ctx context.Context, url string) (string, error) {
	part, err := fetchImagePart(ctx, url)
	if err != nil {
		return "", err
	}

	resp, err := genkit.Generate(ctx, c.g,
		ai.WithModelName(c.modelName),
		ai.WithMessages(ai.NewUserMessage(part, ai.NewTextPart(readImagePrompt))),
	)
	if err != nil {
		return "", fmt.Errorf("reading image text: %w", err)
	}
	return strings.TrimSpace(resp.Text()), nil
}
