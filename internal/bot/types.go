package bot

import (
	"time"

	"github.com/sharebot0/sharebot/internal/artifact"
)

// Message is an inbound chat message event as delivered by the platform
// gateway.
type Message struct {
	AuthorID    string
	AuthorIsBot bool
	MentionsBot bool
	Text        string
	Attachments []Attachment
}

// Attachment is one file attached to an inbound message.
type Attachment struct {
	ContentType string
	URL         string
}

// Interaction is an inbound component interaction: a button activation or a
// structured form submission, correlated to a user by the platform.
type Interaction struct {
	UserID   string
	CustomID string
	IsButton bool
	IsForm   bool
	Fields   map[string]string // form field values, keyed by field custom ID
}

// Reply is the outbound payload handed back to the platform gateway.
// At most one of File and FilePath is set; ShowForm is exclusive with the
// other delivery fields.
type Reply struct {
	Content   string         // plain text (warnings and failures)
	Embed     *Embed         // status embed
	File      *artifact.File // in-memory attachment (single-file delivery)
	FilePath  string         // on-disk attachment (project archives)
	Button    *Button        // interactive control attached to the reply
	ShowForm  *Form          // directive: present this form to the user
	Ephemeral bool           // visible only to the interacting user
}

// Embed is the status card shown with replies.
type Embed struct {
	Title       string
	Description string
	Color       int
	Fields      []EmbedField
	Timestamp   time.Time
}

// EmbedField is one name/value row of an embed.
type EmbedField struct {
	Name   string
	Value  string
	Inline bool
}

// Button is an interactive control the platform renders under a reply.
type Button struct {
	CustomID string
	Label    string
	Emoji    string
}

// Form describes a structured input form (platform modal).
type Form struct {
	CustomID string
	Title    string
	Fields   []FormField
}

// FormField is one input of a Form.
type FormField struct {
	CustomID  string
	Label     string
	Paragraph bool // multi-line input
	Required  bool
}
