package bot

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestClampField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "empty becomes dash", text: "", want: "—"},
		{name: "short passes through", text: "سؤال قصير", want: "سؤال قصير"},
		{name: "exactly at limit passes through", text: strings.Repeat("a", fieldValueMax), want: strings.Repeat("a", fieldValueMax)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := clampField(tt.text); got != tt.want {
				t.Errorf("clampField(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestClampFieldTruncates(t *testing.T) {
	t.Parallel()

	got := clampField(strings.Repeat("x", fieldValueMax+100))
	if len([]rune(got)) != fieldValueMax {
		t.Errorf("clamped length = %d runes, want %d", len([]rune(got)), fieldValueMax)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("clamped value %q should end with an ellipsis", got)
	}
}

func TestClampFieldRuneSafe(t *testing.T) {
	t.Parallel()

	// Multi-byte text longer than the limit must not be cut mid-character.
	got := clampField(strings.Repeat("سؤال طويل جدا ", 200))
	if !utf8.ValidString(got) {
		t.Errorf("clamped value is not valid UTF-8: %q", got)
	}
	if len([]rune(got)) != fieldValueMax {
		t.Errorf("clamped length = %d runes, want %d", len([]rune(got)), fieldValueMax)
	}
}

func TestStatusEmbed(t *testing.T) {
	t.Parallel()

	e := statusEmbed("سؤالي", "الناتج")
	if e.Title != "| ShareBot Status" {
		t.Errorf("Title = %q, want the status title", e.Title)
	}
	if e.Color != colorOnline {
		t.Errorf("Color = %#x, want %#x", e.Color, colorOnline)
	}
	if len(e.Fields) != 3 {
		t.Fatalf("embed has %d fields, want 3", len(e.Fields))
	}
	if e.Fields[1].Value != "سؤالي" || e.Fields[2].Value != "الناتج" {
		t.Errorf("fields = %+v, want the question and outcome", e.Fields)
	}
	if e.Timestamp.IsZero() {
		t.Error("Timestamp should be set")
	}
}

func TestImprovedEmbed(t *testing.T) {
	t.Parallel()

	e := improvedEmbed("js", "improved_20240131_154502.js")
	if len(e.Fields) != 2 {
		t.Fatalf("embed has %d fields, want 2", len(e.Fields))
	}
	if e.Fields[0].Value != "js" {
		t.Errorf("language field = %q, want js", e.Fields[0].Value)
	}
	if e.Fields[1].Value != "improved_20240131_154502.js" {
		t.Errorf("file field = %q, want the delivered name", e.Fields[1].Value)
	}
}
