package protoline

import (
	"io"
	"strings"
)

// Kind represents the leading keyword of a significant line
type Kind string

const (
	KindPackage  Kind = "package"
	KindImport   Kind = "import"
	KindMessage  Kind = "message"
	KindExtend   Kind = "extend"
	KindRequired Kind = "required"
	KindOptional Kind = "optional"
	KindRepeated Kind = "repeated"
	KindClose    Kind = "}"
	KindUnknown  Kind = "unknown"
)

const (
	optionKeyword = "option "
	commentPrefix = "//"
	terminator    = ";"
)

// Line is a normalized, classified source line
type Line struct {
	Number int      // 1-based line number in the source file
	Text   string   // normalized text
	Tokens []string // Text split on single spaces
	Kind   Kind
}

// Keyword returns the first token of the line
func (l Line) Keyword() string {
	if len(l.Tokens) == 0 {
		return ""
	}
	return l.Tokens[0]
}

// Arg returns the token at position i, reporting whether it exists
func (l Line) Arg(i int) (string, bool) {
	if i < 0 || i >= len(l.Tokens) {
		return "", false
	}
	return l.Tokens[i], true
}

// IsField reports whether the line declares a field
func (l Line) IsField() bool {
	switch l.Kind {
	case KindRequired, KindOptional, KindRepeated:
		return true
	}
	return false
}

// IsSignificant reports whether a raw line carries a declaration.
// Blank lines, comments and compiler options are not significant.
func IsSignificant(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, optionKeyword) {
		return false
	}
	return !strings.HasPrefix(trimmed, commentPrefix)
}

// Normalize trims a line and removes statement terminators
func Normalize(line string) string {
	return strings.ReplaceAll(strings.TrimSpace(line), terminator, "")
}

// Classify normalizes a raw line and tags it with its Kind
func Classify(number int, raw string) Line {
	text := Normalize(raw)
	tokens := strings.Split(text, " ")
	// Trailing empty tokens are dropped, inner ones are kept
	for len(tokens) > 1 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}

	return Line{
		Number: number,
		Text:   text,
		Tokens: tokens,
		Kind:   kindOf(tokens[0]),
	}
}

func kindOf(keyword string) Kind {
	switch Kind(keyword) {
	case KindPackage, KindImport, KindMessage, KindExtend,
		KindRequired, KindOptional, KindRepeated, KindClose:
		return Kind(keyword)
	default:
		return KindUnknown
	}
}

// Split classifies every significant line of content. Lines have no length
// limit.
func Split(content string) []Line {
	var lines []Line

	number := 0
	for raw := range strings.Lines(content) {
		number++
		if !IsSignificant(raw) {
			continue
		}
		lines = append(lines, Classify(number, raw))
	}

	return lines
}

// Read classifies every significant line read from r
func Read(r io.Reader) ([]Line, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Split(string(data)), nil
}
