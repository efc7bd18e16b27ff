package yamlconv

import (
	"math"
	"strconv"
	"strings"
)

// The serializer renders a Value back to YAML text. Rendering is relative:
// every container produces an unindented block and the parent prefixes each
// line, so nesting depth accumulates one indent width per level. The first
// line of a container inside a sequence shares the dash's line.

// reservedWords are plain tokens a reader would type, so a string spelling
// one must be quoted.
var reservedWords = map[string]bool{
	"true": true, "false": true, "null": true,
	"yes": true, "no": true, "on": true, "off": true,
}

const quotedChars = ":{}[],&*#?|!-%@`"

// needsQuoting decides whether a scalar string must be double-quoted to
// survive a round trip through the parser.
func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	if s[0] >= '0' && s[0] <= '9' {
		return true
	}
	if s == "~" || floatRe.MatchString(s) {
		return true
	}
	if strings.ContainsAny(s, quotedChars) {
		return true
	}
	if reservedWords[strings.ToLower(s)] {
		return true
	}
	if strings.ContainsAny(s, "\n\r") {
		return true
	}
	if strings.TrimSpace(s) != s {
		return true
	}
	return false
}

// quoteString wraps s in double quotes, escaping the sequences the parser
// decodes.
func quoteString(s string) string {
	var out strings.Builder
	out.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			out.WriteString(`\\`)
		case '"':
			out.WriteString(`\"`)
		case '\n':
			out.WriteString(`\n`)
		case '\r':
			out.WriteString(`\r`)
		case '\t':
			out.WriteString(`\t`)
		default:
			out.WriteByte(c)
		}
	}
	out.WriteByte('"')
	return out.String()
}

// formatNumber renders a number as decimal text, without a fractional part
// when the value is integral.
func formatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// scalarText renders a non-container value (or an empty container, which
// stays inline as [] / {}).
func scalarText(v *Value) string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindNumber:
		return formatNumber(v.Num)
	case KindString:
		if needsQuoting(v.Str) {
			return quoteString(v.Str)
		}
		return v.Str
	case KindSequence:
		return "[]"
	default:
		return "{}"
	}
}

// renderKey renders a mapping key, quoted under the same rule as string
// values.
func renderKey(k string) string {
	if needsQuoting(k) {
		return quoteString(k)
	}
	return k
}

// inlineable reports whether v renders on the same line as its key or dash.
func inlineable(v *Value) bool {
	return isScalar(v) || v.isEmpty()
}

// render produces the YAML block for v, without indentation of its own and
// without a trailing newline.
func render(v *Value, indentWidth int) string {
	if inlineable(v) {
		return scalarText(v)
	}

	pad := strings.Repeat(" ", indentWidth)
	var lines []string

	switch v.Kind {
	case KindSequence:
		for _, item := range v.Seq {
			if inlineable(item) {
				lines = append(lines, "- "+scalarText(item))
				continue
			}
			sub := strings.Split(render(item, indentWidth), "\n")
			lines = append(lines, "- "+sub[0])
			for _, l := range sub[1:] {
				lines = append(lines, pad+l)
			}
		}
	case KindMapping:
		for _, e := range v.Map {
			if inlineable(e.Val) {
				lines = append(lines, renderKey(e.Key)+": "+scalarText(e.Val))
				continue
			}
			lines = append(lines, renderKey(e.Key)+":")
			for _, l := range strings.Split(render(e.Val, indentWidth), "\n") {
				lines = append(lines, pad+l)
			}
		}
	}
	return strings.Join(lines, "\n")
}
