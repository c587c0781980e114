package api

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/sharebot0/sharebot/internal/bot"
)

// Wire types for the gateway. The bot package stays free of JSON concerns;
// these DTOs are the only serialization surface.

type attachmentRequest struct {
	ContentType string `json:"content_type"`
	URL         string `json:"url"`
}

type messageRequest struct {
	AuthorID    string              `json:"author_id"`
	AuthorIsBot bool                `json:"author_is_bot"`
	MentionsBot bool                `json:"mentions_bot"`
	Text        string              `json:"text"`
	Attachments []attachmentRequest `json:"attachments,omitempty"`
}

type interactionRequest struct {
	UserID   string            `json:"user_id"`
	CustomID string            `json:"custom_id"`
	IsButton bool              `json:"is_button"`
	IsForm   bool              `json:"is_form"`
	Fields   map[string]string `json:"fields,omitempty"`
}

type embedFieldResponse struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type embedResponse struct {
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Color       int                  `json:"color"`
	Fields      []embedFieldResponse `json:"fields"`
	Timestamp   time.Time            `json:"timestamp"`
}

type fileResponse struct {
	Name string `json:"name"`
	Data string `json:"data"` // base64
}

type buttonResponse struct {
	CustomID string `json:"custom_id"`
	Label    string `json:"label"`
	Emoji    string `json:"emoji"`
}

type formFieldResponse struct {
	CustomID  string `json:"custom_id"`
	Label     string `json:"label"`
	Paragraph bool   `json:"paragraph"`
	Required  bool   `json:"required"`
}

type formResponse struct {
	CustomID string              `json:"custom_id"`
	Title    string              `json:"title"`
	Fields   []formFieldResponse `json:"fields"`
}

type replyResponse struct {
	Content   string          `json:"content,omitempty"`
	Embed     *embedResponse  `json:"embed,omitempty"`
	File      *fileResponse   `json:"file,omitempty"`
	FilePath  string          `json:"file_path,omitempty"`
	Button    *buttonResponse `json:"button,omitempty"`
	ShowForm  *formResponse   `json:"show_form,omitempty"`
	Ephemeral bool            `json:"ephemeral,omitempty"`
}

// eventHandler adapts HTTP requests to bot events.
type eventHandler struct {
	logger *slog.Logger
	bot    *bot.Handler
}

func (eh *eventHandler) message(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid message body")
		return
	}

	msg := bot.Message{
		AuthorID:    req.AuthorID,
		AuthorIsBot: req.AuthorIsBot,
		MentionsBot: req.MentionsBot,
		Text:        req.Text,
	}
	for _, a := range req.Attachments {
		msg.Attachments = append(msg.Attachments, bot.Attachment{
			ContentType: a.ContentType,
			URL:         a.URL,
		})
	}

	eh.respond(w, eh.bot.HandleMessage(r.Context(), msg))
}

func (eh *eventHandler) interaction(w http.ResponseWriter, r *http.Request) {
	var req interactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid interaction body")
		return
	}

	eh.respond(w, eh.bot.HandleInteraction(r.Context(), bot.Interaction{
		UserID:   req.UserID,
		CustomID: req.CustomID,
		IsButton: req.IsButton,
		IsForm:   req.IsForm,
		Fields:   req.Fields,
	}))
}

// respond serializes a bot reply; a nil reply (ignored event) is 204.
func (eh *eventHandler) respond(w http.ResponseWriter, reply *bot.Reply) {
	if reply == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, toReplyResponse(reply))
}

func toReplyResponse(r *bot.Reply) replyResponse {
	resp := replyResponse{
		Content:   r.Content,
		FilePath:  r.FilePath,
		Ephemeral: r.Ephemeral,
	}
	if r.Embed != nil {
		e := embedResponse{
			Title:       r.Embed.Title,
			Description: r.Embed.Description,
			Color:       r.Embed.Color,
			Timestamp:   r.Embed.Timestamp,
		}
		for _, f := range r.Embed.Fields {
			e.Fields = append(e.Fields, embedFieldResponse(f))
		}
		resp.Embed = &e
	}
	if r.File != nil {
		resp.File = &fileResponse{
			Name: r.File.Name,
			Data: base64.StdEncoding.EncodeToString(r.File.Data),
		}
	}
	if r.Button != nil {
		b := buttonResponse(*r.Button)
		resp.Button = &b
	}
	if r.ShowForm != nil {
		f := formResponse{
			CustomID: r.ShowForm.CustomID,
			Title:    r.ShowForm.Title,
		}
		for _, ff := range r.ShowForm.Fields {
			f.Fields = append(f.Fields, formFieldResponse(ff))
		}
		resp.ShowForm = &f
	}
	return resp
}
