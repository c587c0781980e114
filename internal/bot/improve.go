package bot

// improve.go is the two-step improve workflow: the trigger button attached
// to a delivered artifact opens a structured form; submitting the form runs
// one improvement pass and overwrites the user's last artifact.
//
// The workflow is stateless across the trigger/submit boundary: the
// platform's form-correlation mechanism guarantees a submission is
// attributed to the user who pressed the button, so nothing is recorded
// between the two events.

import (
	"context"
	"strings"
	"time"

	"github.com/sharebot0/sharebot/internal/artifact"
	"github.com/sharebot0/sharebot/internal/extract"
	"github.com/sharebot0/sharebot/internal/lang"
)

// Fixed component identifiers; the platform echoes these back on
// interaction events.
const (
	ImproveButtonID = "improve_code:start"
	ImproveFormID   = "improve_code:modal"

	fieldDesc    = "improve_field:desc"
	fieldChanges = "improve_field:changes"
	fieldCode    = "improve_field:code"
)

// improveButton is the trigger control attached to delivered artifacts.
func improveButton() *Button {
	return &Button{
		CustomID: ImproveButtonID,
		Label:    "تحسين الكود",
		Emoji:    "🛠️",
	}
}

// improveForm describes the three-field form the platform presents after
// the trigger button: a general description, the required change
// instructions, and optional pasted code.
func improveForm() *Form {
	return &Form{
		CustomID: ImproveFormID,
		Title:    "🛠️ تحسين الكود",
		Fields: []FormField{
			{CustomID: fieldDesc, Label: "الوصف العام", Required: true},
			{CustomID: fieldChanges, Label: "التعديلات المطلوبة", Paragraph: true, Required: true},
			{CustomID: fieldCode, Label: "الكود (اختياري)", Paragraph: true},
		},
	}
}

// HandleInteraction processes a button activation or form submission and
// returns the reply, or nil for interactions the bot does not own.
// Like HandleMessage, all failures are contained per event.
func (h *Handler) HandleInteraction(ctx context.Context, in Interaction) (reply *Reply) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("panic handling interaction", "panic", r, "user_id", in.UserID)
			reply = &Reply{Content: msgUnexpectedError, Ephemeral: true}
		}
	}()

	switch {
	case in.IsButton && in.CustomID == ImproveButtonID:
		return &Reply{ShowForm: improveForm()}
	case in.IsForm && in.CustomID == ImproveFormID:
		return h.handleImproveSubmit(ctx, in)
	default:
		return nil
	}
}

// handleImproveSubmit resolves the code to improve, runs one improvement
// pass, and on success overwrites the user's last artifact so improvements
// can be chained.
func (h *Handler) handleImproveSubmit(ctx context.Context, in Interaction) *Reply {
	desc := strings.TrimSpace(in.Fields[fieldDesc])
	changes := strings.TrimSpace(in.Fields[fieldChanges])
	pasted := strings.TrimSpace(in.Fields[fieldCode])

	language, source := h.improveSource(in.UserID, pasted)
	if source == "" {
		return &Reply{Content: msgNoCodeToImprove, Ephemeral: true}
	}

	improved, ok := h.generator.Improve(ctx, language, source, desc, changes)
	if !ok {
		return &Reply{Content: msgImproveFailed, Ephemeral: true}
	}

	file := artifact.ImprovedFile(improved, time.Now())
	h.sessions.Put(in.UserID, improved)

	h.logger.Info("delivered improved code",
		"user_id", in.UserID,
		"language", improved.Language,
		"file", file.Name)
	return &Reply{
		Embed:     improvedEmbed(string(improved.Language), file.Name),
		File:      &file,
		Ephemeral: true,
	}
}

// improveSource selects the code to improve. Pasted code wins: a fenced
// block is extracted from it when present, otherwise the whole paste is
// treated as raw code with an inferred language. Without a paste, the
// user's last session artifact is used. Empty source means nothing to
// improve.
func (h *Handler) improveSource(userID, pasted string) (lang.Tag, string) {
	if pasted != "" {
		if a, ok := extract.Best(pasted, lang.Default); ok {
			return a.Language, a.Code
		}
		return lang.Guess(pasted), pasted
	}

	if last, ok := h.sessions.Get(userID); ok && last.Artifact != nil && last.Artifact.Code != "" {
		return last.Artifact.Language, last.Artifact.Code
	}
	return lang.Default, ""
}
