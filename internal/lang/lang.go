// Package lang defines the closed set of language tags the bot can deliver
// code in, the canonical file extension for each tag, and inference of a tag
// from free-form request text.
package lang

import (
	"regexp"
	"strings"
)

// Tag identifies a target programming language.
// The zero value is not valid; use Default for the fallback tag.
type Tag string

// The closed enumeration of supported tags.
// Every tag maps to exactly one canonical file extension.
const (
	JS   Tag = "js"
	TS   Tag = "ts"
	PY   Tag = "py"
	HTML Tag = "html"
	CSS  Tag = "css"
	JSON Tag = "json"
	SQL  Tag = "sql"
	SH   Tag = "sh"
	YML  Tag = "yml"
	Java Tag = "java"
	C    Tag = "c"
	CPP  Tag = "cpp"
	CS   Tag = "cs"
	PHP  Tag = "php"
	XML  Tag = "xml"
	TXT  Tag = "txt"
)

// Default is the tag used when nothing else matches.
const Default = TXT

// extensions maps every recognized label (canonical tags plus common
// aliases as emitted by models in fence headers) to its canonical extension.
var extensions = map[string]string{
	"js": "js", "javascript": "js", "node": "js",
	"ts": "ts", "typescript": "ts",
	"py": "py", "python": "py",
	"html": "html", "htm": "html",
	"css":  "css",
	"json": "json",
	"sql":  "sql",
	"sh":   "sh", "bash": "sh",
	"yml": "yml", "yaml": "yml",
	"java": "java",
	"c":    "c",
	"cpp":  "cpp",
	"cs":   "cs",
	"php":  "php",
	"xml":  "xml",
	"txt":  "txt",
}

// Ext returns the canonical file extension for a label, or "" if the label
// is not recognized. Labels are matched case-insensitively.
func Ext(label string) string {
	return extensions[strings.ToLower(label)]
}

// Known reports whether label is a recognized language label (canonical tag
// or alias).
func Known(label string) bool {
	return Ext(label) != ""
}

// Extension returns the canonical file extension for t, falling back to
// "txt" for unrecognized tags.
func (t Tag) Extension() string {
	if ext := Ext(string(t)); ext != "" {
		return ext
	}
	return string(Default)
}

// guess holds one ordered inference rule. Patterns are not mutually
// exclusive, so rule order is load-bearing: the first match wins.
type guess struct {
	re  *regexp.Regexp
	tag Tag
}

// guesses is evaluated top to bottom against lowercased request text.
// Do not re-sort: a request mentioning both "python" and "html" must resolve
// to whichever rule appears first here.
var guesses = []guess{
	{regexp.MustCompile(`typescript|\bts\b`), TS},
	{regexp.MustCompile(`javascript|\bjs\b|node|discord\.js|جافا ?سكريبت`), JS},
	{regexp.MustCompile(`python|\bpy\b|بايثون`), PY},
	{regexp.MustCompile(`\bhtml\b`), HTML},
	{regexp.MustCompile(`\bcss\b`), CSS},
	{regexp.MustCompile(`\bsql\b`), SQL},
	{regexp.MustCompile(`\bjson\b`), JSON},
	{regexp.MustCompile(`\bbash\b|\bsh\b`), SH},
	{regexp.MustCompile(`\bjava\b|جافا`), Java},
	{regexp.MustCompile(`\bcpp\b|\bc\+\+`), CPP},
	{regexp.MustCompile(`\bcsharp\b|\bcs\b`), CS},
	{regexp.MustCompile(`\bphp\b`), PHP},
	{regexp.MustCompile(`\bxml\b`), XML},
}

// Guess infers a language tag from free-form request text.
// It is a pure total function: every input maps to exactly one tag from the
// closed enumeration, defaulting to txt when no rule matches.
func Guess(text string) Tag {
	s := strings.ToLower(text)
	for _, g := range guesses {
		if g.re.MatchString(s) {
			return g.tag
		}
	}
	return Default
}

// FromLabel normalizes a fence label to a tag for delivered artifacts:
// the label itself when recognized, txt otherwise. The label is kept as
// written (lowercased) rather than canonicalized, so a "python" fence stays
// "python" and still resolves to the .py extension.
func FromLabel(label string) Tag {
	l := strings.ToLower(label)
	if Known(l) {
		return Tag(l)
	}
	return Default
}

// mainFiles names the conventional entry file for project delivery.
var mainFiles = map[Tag]string{
	PY:   "main.py",
	HTML: "index.html",
	CSS:  "style.css",
	JSON: "data.json",
	SQL:  "schema.sql",
	SH:   "script.sh",
	Java: "Main.java",
	C:    "main.c",
	CPP:  "main.cpp",
	CS:   "Program.cs",
	PHP:  "index.php",
	XML:  "file.xml",
	TXT:  "readme.txt",
}

// MainFilename returns the canonical main source filename for a project in
// language t, defaulting to "index.<tag>" for tags without a fixed name.
// Alias tags ("python", "bash") resolve through their canonical extension,
// so a python-labeled artifact still yields main.py.
func MainFilename(t Tag) string {
	key := t
	if ext := Ext(string(t)); ext != "" {
		key = Tag(ext)
	}
	if name, ok := mainFiles[key]; ok {
		return name
	}
	return "index." + string(t)
}
