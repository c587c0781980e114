package bot

import "time"

// Embed colors.
const (
	colorOnline  = 0x00ff88
	colorOffline = 0xff0000
)

// fieldValueMax is the platform's limit for one embed field value.
const fieldValueMax = 1024

// statusEmbed builds the standard status card: bot status, the user's
// question, and the outcome note.
func statusEmbed(question, note string) *Embed {
	return &Embed{
		Title:       "| ShareBot Status",
		Description: "📢 حالة البوت والرد على سؤالك",
		Color:       colorOnline,
		Fields: []EmbedField{
			{Name: "🔹 ShareBot", Value: "Online 🟢", Inline: true},
			{Name: "💬 سؤالك", Value: clampField(question)},
			{Name: "📦 المخرجات", Value: clampField(note)},
		},
		Timestamp: time.Now(),
	}
}

// improvedEmbed builds the card confirming an improve result.
func improvedEmbed(language, filename string) *Embed {
	return &Embed{
		Title:       "🛠️ تم تحسين الكود",
		Description: "تم إرسال النسخة المحسّنة.",
		Color:       colorOnline,
		Fields: []EmbedField{
			{Name: "اللغة", Value: language, Inline: true},
			{Name: "الملف", Value: filename, Inline: true},
		},
		Timestamp: time.Now(),
	}
}

// clampField fits text into one embed field value: "—" when empty,
// truncated with an ellipsis when over the platform limit. Truncation is
// rune-safe so Arabic text is never cut mid-character.
func clampField(text string) string {
	if text == "" {
		return "—"
	}
	runes := []rune(text)
	if len(runes) <= fieldValueMax {
		return text
	}
	return string(runes[:fieldValueMax-3]) + "..."
}
