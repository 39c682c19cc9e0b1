// Package classify maps file paths to a binary/text disposition and a
// logical language tag based on the file extension alone. No content
// sniffing: classification must stay cheap enough to run before a file is
// ever opened.
package classify

import (
	"path/filepath"
	"strings"
)

// Language is the logical language classification of a file. The set is
// closed; anything not covered by the extension table is LangUnknown,
// never an empty value.
type Language string

const (
	LangPython     Language = "python"
	LangJavaScript Language = "javascript"
	LangTypeScript Language = "typescript"
	LangDart       Language = "dart"
	LangJava       Language = "java"
	LangGo         Language = "go"
	LangC          Language = "c"
	LangCPP        Language = "cpp"
	LangShell      Language = "shell"
	LangKotlin     Language = "kotlin"
	LangRust       Language = "rust"
	LangUnknown    Language = "unknown"
)

func (l Language) String() string { return string(l) }

var binaryExtensions = map[string]struct{}{
	".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".bmp": {}, ".ico": {}, ".svg": {},
	".pdf": {}, ".zip": {}, ".tar": {}, ".gz": {}, ".7z": {},
	".exe": {}, ".dll": {}, ".so": {}, ".dylib": {},
	".ttf": {}, ".otf": {}, ".woff": {}, ".woff2": {},
	".mp3": {}, ".mp4": {}, ".avi": {}, ".mov": {},
}

var languageByExtension = map[string]Language{
	".py":   LangPython,
	".js":   LangJavaScript,
	".jsx":  LangJavaScript,
	".ts":   LangTypeScript,
	".tsx":  LangTypeScript,
	".dart": LangDart,
	".java": LangJava,
	".go":   LangGo,
	".c":    LangC,
	".h":    LangC,
	".cpp":  LangCPP,
	".hpp":  LangCPP,
	".sh":   LangShell,
	".kt":   LangKotlin,
	".rs":   LangRust,
}

// Classifier resolves paths against the built-in extension tables plus any
// configured additions. A zero-value Classifier uses the built-ins only.
type Classifier struct {
	extraBinary    map[string]struct{}
	extraLanguages map[string]Language
}

// Option customises a Classifier.
type Option func(*Classifier)

// WithBinaryExtensions registers additional extensions (with leading dot)
// to treat as binary.
func WithBinaryExtensions(exts []string) Option {
	return func(c *Classifier) {
		for _, ext := range exts {
			c.extraBinary[strings.ToLower(ext)] = struct{}{}
		}
	}
}

// WithLanguageOverrides registers or overrides extension to language
// mappings.
func WithLanguageOverrides(overrides map[string]string) Option {
	return func(c *Classifier) {
		for ext, lang := range overrides {
			c.extraLanguages[strings.ToLower(ext)] = Language(lang)
		}
	}
}

// New builds a Classifier with the given options applied.
func New(opts ...Option) *Classifier {
	c := &Classifier{
		extraBinary:    map[string]struct{}{},
		extraLanguages: map[string]Language{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify reports whether the path looks binary and which language it
// carries. Pure and total: every input yields a value, unknown extensions
// map to LangUnknown.
func (c *Classifier) Classify(path string) (bool, Language) {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := binaryExtensions[ext]; ok {
		return true, c.language(ext)
	}
	if c != nil {
		if _, ok := c.extraBinary[ext]; ok {
			return true, c.language(ext)
		}
	}
	return false, c.language(ext)
}

func (c *Classifier) language(ext string) Language {
	if c != nil {
		if lang, ok := c.extraLanguages[ext]; ok {
			return lang
		}
	}
	if lang, ok := languageByExtension[ext]; ok {
		return lang
	}
	return LangUnknown
}
