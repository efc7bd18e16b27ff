package yamlconv

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	integerRe = regexp.MustCompile(`^-?\d+$`)
	floatRe   = regexp.MustCompile(`^-?\d*\.\d+$`)
)

// parseScalar converts a raw text token into a typed Value. The rules are
// checked in order; anything unclassifiable falls through to a plain string,
// so scalar typing never fails.
func parseScalar(s string) *Value {
	s = strings.TrimSpace(s)

	switch s {
	case "", "null", "~":
		return nullValue()
	case "true":
		return boolValue(true)
	case "false":
		return boolValue(false)
	}

	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return stringValue(decodeEscapes(s[1 : len(s)-1]))
	}
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		// Single-quoted strings are literal, no escape decoding.
		return stringValue(s[1 : len(s)-1])
	}

	if integerRe.MatchString(s) || floatRe.MatchString(s) {
		f, err := strconv.ParseFloat(s, 64)
		if err == nil {
			return numberValue(f)
		}
	}

	return stringValue(s)
}

// decodeEscapes decodes the escape sequences recognized inside double-quoted
// scalars: \\ \" \n \r \t. Unknown escapes are kept verbatim.
func decodeEscapes(s string) string {
	if !strings.Contains(s, "\\") {
		return s
	}

	var out strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			out.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case '\\':
			out.WriteByte('\\')
		case '"':
			out.WriteByte('"')
		case 'n':
			out.WriteByte('\n')
		case 'r':
			out.WriteByte('\r')
		case 't':
			out.WriteByte('\t')
		default:
			out.WriteByte('\\')
			out.WriteByte(s[i])
		}
	}
	return out.String()
}

// unquoteKey strips a matching pair of surrounding quotes from a mapping key.
// Double-quoted keys get escape decoding, single-quoted keys are literal.
func unquoteKey(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return decodeEscapes(s[1 : len(s)-1])
	}
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return s[1 : len(s)-1]
	}
	return s
}
