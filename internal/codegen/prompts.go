package codegen

import (
	"github.com/sharebot0/sharebot/internal/lang"
)

// Prompt templates are wire format: the model is told to answer with exactly
// one fenced block, and the extractor depends on that shape. All three
// builders are pure functions of their inputs with no control flow beyond
// field substitution; an unknown language falls back to txt.

// FirstPassPrompt builds the first-pass generation instruction: return code
// in the given language for this request only, as a single fenced block
// opening with the language-tagged fence.
func FirstPassPrompt(language lang.Tag, question string) string {
	l := normalize(language)
	return "المهمة: أعد كود " + l + " فقط استجابةً للطلب التالي.\n\n" +
		"- كتلة كود واحدة فقط.\n\n" +
		"- ابدأ بـ ```" + l + "\n وانتهِ بـ \n```.\n\n" +
		question
}

// StrictRetryPrompt builds the stricter format-only instruction used after
// first-pass extraction fails: a bare output skeleton with a placeholder
// block, then the literal question.
func StrictRetryPrompt(language lang.Tag, question string) string {
	l := normalize(language)
	return "STRICT OUTPUT:\n\n```" + l + "\n\n<code>\n\n```\n\n" + question
}

// ImprovePrompt builds the improvement instruction: the change description
// and requested edits, followed by the existing code in a single fenced
// block carrying its language tag.
func ImprovePrompt(language lang.Tag, code, description, changes string) string {
	l := normalize(language)
	return "حسّن الكود التالي:\n\n" + description + "\n\n" + changes + "\n\n" +
		"```" + l + "\n\n" + code + "\n\n```"
}

func normalize(language lang.Tag) string {
	if language == "" {
		return string(lang.Default)
	}
	return string(language)
}
