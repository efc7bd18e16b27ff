package yamlconv

import "strings"

// Block scalar reading: the | (literal) and > (folded) multi-line forms with
// their chomping indicators.

const (
	chompClip  = 0 // default: collapse trailing newlines to exactly one
	chompStrip = '-'
	chompKeep  = '+'
)

// isBlockIndicator reports whether a trimmed value token introduces a block
// scalar: | or > followed only by an optional chomping modifier and digits.
func isBlockIndicator(s string) bool {
	if s == "" || (s[0] != '|' && s[0] != '>') {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if c != '-' && c != '+' && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

// readBlockScalar consumes the lines of a block scalar. i is the index of
// the line carrying the indicator and baseIndent that line's indentation.
// It returns the decoded string and the index of the last consumed line so
// the caller can resume its scan.
func readBlockScalar(lines []string, i, baseIndent int, indicator string) (string, int) {
	folded := indicator[0] == '>'
	chomp := byte(chompClip)
	for k := 1; k < len(indicator); k++ {
		if indicator[k] == chompStrip || indicator[k] == chompKeep {
			chomp = indicator[k]
		}
	}

	// Collect content lines: everything more indented than the indicator
	// line. Blank lines always belong to the block.
	var content []string
	stripWidth := -1
	last := i
	for j := i + 1; j < len(lines); j++ {
		line := lines[j]
		if strings.TrimSpace(line) == "" {
			content = append(content, "")
			last = j
			continue
		}
		indent := countIndent(line)
		if indent <= baseIndent {
			break
		}
		if stripWidth < 0 {
			stripWidth = indent
		}
		if indent >= stripWidth {
			content = append(content, line[stripWidth:])
		} else {
			content = append(content, line[indent:])
		}
		last = j
	}

	if len(content) == 0 {
		return "", i
	}

	body := strings.Join(content, "\n") + "\n"
	if folded {
		body = foldNewlines(body)
	}

	switch chomp {
	case chompStrip:
		body = strings.TrimRight(body, "\n")
	case chompKeep:
		// Trailing newlines kept verbatim.
	default:
		body = strings.TrimRight(body, "\n") + "\n"
	}
	return body, last
}

// foldNewlines implements folded (>) post-processing: single newlines become
// spaces while a blank line survives as a literal newline. The blank line is
// parked in a sentinel so the single-newline replacement cannot touch it.
func foldNewlines(body string) string {
	trailing := len(body) - len(strings.TrimRight(body, "\n"))
	kept := body[:len(body)-trailing]

	kept = strings.ReplaceAll(kept, "\n\n", "\x00")
	kept = strings.ReplaceAll(kept, "\n", " ")
	kept = strings.ReplaceAll(kept, "\x00", "\n")
	return kept + body[len(body)-trailing:]
}
