// Package extract parses fenced code regions out of free-form model output
// and selects the best candidate for an expected language.
package extract

import (
	"regexp"
	"strings"

	"github.com/sharebot0/sharebot/internal/artifact"
	"github.com/sharebot0/sharebot/internal/lang"
)

// fenceRe matches one fenced region: an optional language label on the
// opening fence, then the body up to the closing fence. (?s) lets the body
// span lines.
var fenceRe = regexp.MustCompile("(?s)```([\\w.+-]*)\\n(.*?)```")

// block is one non-empty fenced region as encountered in the input.
type block struct {
	label string // lowercased fence label, "txt" when absent
	code  string // trimmed body
}

// blocks scans text for fenced regions, dropping those whose body is empty
// or whitespace-only. Order of appearance is preserved.
func blocks(text string) []block {
	var out []block
	for _, m := range fenceRe.FindAllStringSubmatch(text, -1) {
		label := strings.ToLower(m[1])
		if label == "" {
			label = string(lang.Default)
		}
		code := strings.TrimSpace(m[2])
		if code == "" {
			continue
		}
		out = append(out, block{label: label, code: code})
	}
	return out
}

// Best returns the single best code artifact in text for the preferred
// language, or false when no usable fenced region exists.
//
// Regions whose label equals the preferred tag, or shares its canonical
// extension, form the preferred partition; when that partition is empty all
// regions compete. Within the chosen partition the longest trimmed body
// wins, ties going to the region encountered first.
//
// The artifact's language is the winning region's own label when recognized,
// txt otherwise — it reflects what the model actually labeled, not what the
// caller asked for.
func Best(text string, preferred lang.Tag) (*artifact.Artifact, bool) {
	all := blocks(text)
	if len(all) == 0 {
		return nil, false
	}

	candidates := all
	if matching := filterMatching(all, preferred); len(matching) > 0 {
		candidates = matching
	}

	pick := candidates[0]
	for _, b := range candidates[1:] {
		if len(b.code) > len(pick.code) {
			pick = b
		}
	}
	return artifact.New(lang.FromLabel(pick.label), pick.code), true
}

// filterMatching keeps the blocks whose label matches preferred by equality
// or by shared canonical extension.
func filterMatching(all []block, preferred lang.Tag) []block {
	var matching []block
	for _, b := range all {
		if b.label == string(preferred) {
			matching = append(matching, b)
			continue
		}
		if ext := lang.Ext(b.label); ext != "" && ext == preferred.Extension() {
			matching = append(matching, b)
		}
	}
	return matching
}
