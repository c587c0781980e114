package artifact

import (
	"time"

	"github.com/sharebot0/sharebot/internal/lang"
)

// Artifact is a single generated or improved piece of source code plus its
// language tag.
//
// Artifacts are immutable once created; a later generation or improvement
// supersedes an artifact rather than mutating it. Length mirrors the size of
// Code and exists only for ranking during extraction.
//
// Zero values:
//   - Language: "" (invalid, use New)
//   - Code: "" (invalid, use New)
//   - Length: 0
//   - CreatedAt: zero time
type Artifact struct {
	Language  lang.Tag
	Code      string
	Length    int
	CreatedAt time.Time
}

// New creates an Artifact for the given language and code body.
func New(language lang.Tag, code string) *Artifact {
	return &Artifact{
		Language:  language,
		Code:      code,
		Length:    len(code),
		CreatedAt: time.Now(),
	}
}
