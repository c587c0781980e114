// Package bot implements the chat-triggered code assistant pipeline: it
// turns inbound platform events into replies carrying generated code
// artifacts, and runs the two-step improve workflow.
//
// The platform gateway (message/interaction delivery, widget rendering) is
// an external collaborator; this package only consumes the neutral event
// types in types.go and produces Reply payloads.
package bot

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/sharebot0/sharebot/internal/artifact"
	"github.com/sharebot0/sharebot/internal/intent"
	"github.com/sharebot0/sharebot/internal/lang"
	"github.com/sharebot0/sharebot/internal/session"
)

// User-visible reply strings. The bot answers in the deployment's language.
const (
	msgGenerateFailed   = "❌ ما قدرت أجهز الكود."
	msgExtractFailed    = "❌ ما قدرت أستخرج كود."
	msgImproveFailed    = "❌ ما قدرت أطلع كود محسّن."
	msgNoCodeToImprove  = "⚠️ ما لقيت كود للتحسين."
	msgImageUnreadable  = "❌ ما قدرت أقرأ النص من الصورة."
	msgUnexpectedError  = "❌ خطأ غير متوقع."
	msgModelErrorPrefix = "❌ خطأ من Gemini: "
)

// Generator is the code generation orchestrator as consumed by the bot.
// Implemented by codegen.Service.
type Generator interface {
	Generate(ctx context.Context, question string, hint lang.Tag) (*artifact.Artifact, bool)
	Improve(ctx context.Context, language lang.Tag, code, description, changes string) (*artifact.Artifact, bool)
}

// Completer answers plain questions with free text. Implemented by llm.Client.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ImageReader extracts text from an image attachment. Implemented by
// llm.Client.
type ImageReader interface {
	ReadImage(ctx context.Context, url string) (string, error)
}

// Config contains all required parameters for the Handler.
type Config struct {
	Generator Generator
	Model     Completer
	Images    ImageReader
	Sessions  *session.Store
	Packager  *artifact.Packager
	Logger    *slog.Logger
}

func (cfg Config) validate() error {
	if cfg.Generator == nil {
		return errors.New("generator is required")
	}
	if cfg.Model == nil {
		return errors.New("model is required")
	}
	if cfg.Images == nil {
		return errors.New("image reader is required")
	}
	if cfg.Sessions == nil {
		return errors.New("session store is required")
	}
	if cfg.Packager == nil {
		return errors.New("packager is required")
	}
	if cfg.Logger == nil {
		return errors.New("logger is required")
	}
	return nil
}

// Handler processes inbound events. Each event is handled independently;
// Handler holds no per-event state and is safe for concurrent use.
type Handler struct {
	generator Generator
	model     Completer
	images    ImageReader
	sessions  *session.Store
	packager  *artifact.Packager
	logger    *slog.Logger
}

// New creates a Handler from cfg.
func New(cfg Config) (*Handler, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Handler{
		generator: cfg.Generator,
		model:     cfg.Model,
		images:    cfg.Images,
		sessions:  cfg.Sessions,
		packager:  cfg.Packager,
		logger:    cfg.Logger,
	}, nil
}

// mentionRe strips platform mention markup (<@id>, <@!id>) from the text.
var mentionRe = regexp.MustCompile(`<@!?(\d+)>`)

// HandleMessage processes one inbound message and returns the reply to
// send, or nil when the message should be ignored.
//
// Failures of any kind — including panics — are caught here, logged, and
// answered with a generic failure reply: a single request must never crash
// the process.
func (h *Handler) HandleMessage(ctx context.Context, msg Message) (reply *Reply) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("panic handling message", "panic", r, "author_id", msg.AuthorID)
			reply = &Reply{Content: msgUnexpectedError}
		}
	}()

	r, err := h.handleMessage(ctx, msg)
	if err != nil {
		h.logger.Error("handling message", "error", err, "author_id", msg.AuthorID)
		return &Reply{Content: msgUnexpectedError}
	}
	return r
}

func (h *Handler) handleMessage(ctx context.Context, msg Message) (*Reply, error) {
	if msg.AuthorIsBot || !msg.MentionsBot {
		return nil, nil
	}

	if img, ok := firstImage(msg.Attachments); ok {
		return h.handleImage(ctx, img)
	}

	question := strings.TrimSpace(mentionRe.ReplaceAllString(msg.Text, ""))
	if question == "" {
		return nil, nil
	}

	switch intent.Classify(question) {
	case intent.ProjectRequest:
		return h.handleProject(ctx, msg.AuthorID, question)
	case intent.CodeRequest:
		return h.handleCode(ctx, msg.AuthorID, question)
	default:
		return h.handleQuestion(ctx, question)
	}
}

// handleProject generates code and delivers it as a zipped project bundle.
func (h *Handler) handleProject(ctx context.Context, authorID, question string) (*Reply, error) {
	hint := lang.Guess(question)
	a, ok := h.generator.Generate(ctx, question, hint)
	if !ok {
		return &Reply{Content: msgGenerateFailed}, nil
	}

	zipPath, err := h.packager.BundleProject(a, time.Now())
	if err != nil {
		return nil, err
	}

	h.logger.Info("delivered project bundle",
		"author_id", authorID,
		"language", a.Language,
		"archive", zipPath)
	return &Reply{
		Embed:    statusEmbed(question, "📦 تم إنشاء مشروع كامل ("+string(a.Language)+")"),
		FilePath: zipPath,
		Button:   improveButton(),
	}, nil
}

// handleCode generates code and delivers it as a single file, recording it
// as the author's last artifact.
func (h *Handler) handleCode(ctx context.Context, authorID, question string) (*Reply, error) {
	hint := lang.Guess(question)
	a, ok := h.generator.Generate(ctx, question, hint)
	if !ok {
		return &Reply{Content: msgExtractFailed}, nil
	}

	file := artifact.SingleFile(a, time.Now())
	h.sessions.Put(authorID, a)

	h.logger.Info("delivered code file",
		"author_id", authorID,
		"language", a.Language,
		"file", file.Name)
	return &Reply{
		Embed:  statusEmbed(question, "📄 تم إنشاء كود ("+string(a.Language)+")"),
		File:   &file,
		Button: improveButton(),
	}, nil
}

// handleQuestion answers a plain question with model text.
func (h *Handler) handleQuestion(ctx context.Context, question string) (*Reply, error) {
	return &Reply{Embed: statusEmbed(question, h.ask(ctx, question))}, nil
}

// handleImage runs the OCR branch: read the attachment's text, then answer
// it briefly. An unreadable image is a direct user-visible reply, not an
// error; no retry.
func (h *Handler) handleImage(ctx context.Context, img Attachment) (*Reply, error) {
	text, err := h.images.ReadImage(ctx, img.URL)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return &Reply{Content: msgImageUnreadable}, nil
	}

	answer := h.ask(ctx, "هذا نص من صورة:\n"+text+"\nأجب عنه باختصار.")
	return &Reply{Embed: statusEmbed("[صورة]", answer)}, nil
}

// ask degrades model failures to descriptive error text instead of an
// error: for prose replies the error message simply becomes the answer the
// user sees, as in the original behavior.
func (h *Handler) ask(ctx context.Context, prompt string) string {
	text, err := h.model.Complete(ctx, prompt)
	if err != nil {
		h.logger.Warn("model call failed for prose reply", "error", err)
		return msgModelErrorPrefix + err.Error()
	}
	return text
}

// firstImage returns the first attachment with an image content type.
func firstImage(atts []Attachment) (Attachment, bool) {
	for _, a := range atts {
		if strings.HasPrefix(a.ContentType, "image/") {
			return a, true
		}
	}
	return Attachment{}, false
}
