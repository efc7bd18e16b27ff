package yamlconv

import "fmt"

// Parse errors carry the 1-based line number of the offending input line.
// Any of these aborts the whole parse; there is no partial document.

// SyntaxError reports a line the block parser could not classify.
type SyntaxError struct {
	Line int
	Text string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid syntax at line %d: %q", e.Line, e.Text)
}

// MissingKeyError reports a mapping line with an empty key.
type MissingKeyError struct {
	Line int
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing key at line %d", e.Line)
}

// UndefinedAliasError reports an alias that refers to an anchor that was
// never bound.
type UndefinedAliasError struct {
	Name string
	Line int
}

func (e *UndefinedAliasError) Error() string {
	return fmt.Sprintf("undefined alias %q at line %d", e.Name, e.Line)
}

// AmbiguousAliasError reports a bare alias in a position where it cannot be
// placed (the current container is not a sequence).
type AmbiguousAliasError struct {
	Line int
}

func (e *AmbiguousAliasError) Error() string {
	return fmt.Sprintf("ambiguous alias placement at line %d", e.Line)
}

// FlowError reports a malformed inline collection.
type FlowError struct {
	Line int
	Msg  string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("invalid flow collection at line %d: %s", e.Line, e.Msg)
}
