// Package intent classifies an inbound chat message into exactly one request
// kind: a full-project request, a single-file code request, or a plain
// question to answer in prose.
package intent

import (
	"regexp"
	"strings"
)

// Kind is the classification of a user request.
type Kind int

const (
	// PlainQuestion is the fallback: answer with text, no code delivery.
	PlainQuestion Kind = iota

	// CodeRequest asks for a single generated source file.
	CodeRequest

	// ProjectRequest asks for a packaged multi-file project.
	ProjectRequest
)

// String implements fmt.Stringer for logging.
func (k Kind) String() string {
	switch k {
	case ProjectRequest:
		return "project_request"
	case CodeRequest:
		return "code_request"
	default:
		return "plain_question"
	}
}

var (
	// projectTriggers match the fixed "build me a project" phrase, in its two
	// accepted spellings, anchored at the start of the message.
	projectTriggers = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^اصنع مشروع`),
		regexp.MustCompile(`(?i)^أصنع مشروع`),
	}

	// codeKeywords are localized code/script terms in word-boundary position.
	codeKeywords = regexp.MustCompile(`(^|\s)(كود|code|script|ا اصنع كود|أرسل كود|اكتب كود|سو كود|سكريبت)(\s|$)`)

	// techTokens are bare references to a known language or technology.
	techTokens = regexp.MustCompile(`\b(js|javascript|ts|typescript|py|python|html|css|json|sql|bash|sh|regex|express|discord\.js)\b`)
)

// Classify assigns exactly one Kind to the stripped message text.
// Project detection runs first: the project trigger implies code intent and
// must not fall through to PlainQuestion. The remaining checks are
// order-independent.
func Classify(text string) Kind {
	for _, re := range projectTriggers {
		if re.MatchString(text) {
			return ProjectRequest
		}
	}

	s := strings.ToLower(text)
	if codeKeywords.MatchString(s) || techTokens.MatchString(s) || strings.Contains(s, "```") {
		return CodeRequest
	}
	return PlainQuestion
}
