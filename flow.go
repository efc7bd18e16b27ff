package yamlconv

import "strings"

// Flow collection parsing: the inline [...]/{...} syntax. The scan is
// character by character, tracking whether we are inside a quoted string and
// how deeply brackets are nested, the same technique the block parser uses to
// find top-level colons.

// parseFlow parses text that starts with '[' or '{'. line is the 1-based
// source line for error reporting.
func parseFlow(s string, line int) (*Value, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "["):
		return parseFlowSequence(s, line)
	case strings.HasPrefix(s, "{"):
		return parseFlowMapping(s, line)
	default:
		return nil, &FlowError{Line: line, Msg: "expected '[' or '{'"}
	}
}

func parseFlowSequence(s string, line int) (*Value, error) {
	if !strings.HasSuffix(s, "]") || !balancedFlow(s) {
		return nil, &FlowError{Line: line, Msg: "unclosed '['"}
	}

	out := newSequence()
	inner := strings.TrimSpace(s[1 : len(s)-1])
	if inner == "" {
		return out, nil
	}

	for _, item := range splitTopLevel(inner, ',') {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		val, err := parseFlowItem(item, line)
		if err != nil {
			return nil, err
		}
		out.append(val)
	}
	return out, nil
}

func parseFlowMapping(s string, line int) (*Value, error) {
	if !strings.HasSuffix(s, "}") || !balancedFlow(s) {
		return nil, &FlowError{Line: line, Msg: "unclosed '{'"}
	}

	out := newMapping()
	inner := strings.TrimSpace(s[1 : len(s)-1])
	if inner == "" {
		return out, nil
	}

	for _, entry := range splitTopLevel(inner, ',') {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		colon := indexTopLevel(entry, ':')
		if colon < 0 {
			return nil, &FlowError{Line: line, Msg: "missing ':' in mapping entry"}
		}
		key := unquoteKey(entry[:colon])
		val, err := parseFlowItem(strings.TrimSpace(entry[colon+1:]), line)
		if err != nil {
			return nil, err
		}
		out.set(key, val)
	}
	return out, nil
}

// parseFlowItem dispatches one comma-separated item: nested collections
// recurse, everything else goes through the scalar typer.
func parseFlowItem(item string, line int) (*Value, error) {
	if strings.HasPrefix(item, "[") || strings.HasPrefix(item, "{") {
		return parseFlow(item, line)
	}
	return parseScalar(item), nil
}

// splitTopLevel splits s on sep occurrences at bracket depth zero, outside
// quoted strings. Escaped quotes do not terminate a string.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	inString := false
	quote := byte(0)
	start := 0

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			if c == '\\' {
				i++
			} else if c == quote {
				inString = false
			}
			continue
		}
		switch c {
		case '"', '\'':
			inString = true
			quote = c
		case '[', '{':
			depth++
		case ']', '}':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

// indexTopLevel returns the index of the first sep at depth zero outside
// quotes, or -1.
func indexTopLevel(s string, sep byte) int {
	depth := 0
	inString := false
	quote := byte(0)

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			if c == '\\' {
				i++
			} else if c == quote {
				inString = false
			}
			continue
		}
		switch c {
		case '"', '\'':
			inString = true
			quote = c
		case '[', '{':
			depth++
		case ']', '}':
			depth--
		case sep:
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// balancedFlow reports whether every bracket opened in s is closed by its
// end. Quoted brackets do not count.
func balancedFlow(s string) bool {
	depth := 0
	inString := false
	quote := byte(0)

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			if c == '\\' {
				i++
			} else if c == quote {
				inString = false
			}
			continue
		}
		switch c {
		case '"', '\'':
			inString = true
			quote = c
		case '[', '{':
			depth++
		case ']', '}':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0 && !inString
}
