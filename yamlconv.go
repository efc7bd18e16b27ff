// Package yamlconv implements conversion between YAML and JSON documents.
//
// The YAML side is a hand-written parser and serializer for a practical
// subset of the format: indentation-sensitive block structure, inline (flow)
// collections, anchors and aliases, merge keys, and literal/folded block
// scalars. Both directions share one data model, the Value tagged union.
//
// # Parsing Pipeline
//
// The parser drives a line cursor with an indentation-keyed container stack
// and dispatches each line to one of:
//
//  1. Flow Parser: inline [...] and {...} collections.
//
//  2. Block Scalar Reader: | (literal) and > (folded) multi-line strings.
//
//  3. Anchor Registry: &name bindings, *name aliases, <<: merge keys.
//
//  4. Scalar Typer: null/bool/number/string classification.
//
// Serialization is the reverse walk: a recursive renderer with depth-based
// indentation and a quoting classifier deciding which strings need quotes.
package yamlconv

import (
	"github.com/pkg/errors"
)

// ValidationResult is the outcome of ValidateYAML. Error is empty when Valid.
type ValidationResult struct {
	Valid bool
	Error string
}

// Parse parses yamlText into its Value. Input containing several ---
// separated documents yields a Sequence of the documents; input with a
// single logical document yields that document's Value directly, not wrapped
// in a list.
func Parse(yamlText string) (*Value, error) {
	docs, err := parseDocuments(yamlText)
	if err != nil {
		return nil, err
	}
	switch len(docs) {
	case 0:
		return nullValue(), nil
	case 1:
		return docs[0], nil
	default:
		seq := newSequence()
		seq.Seq = append(seq.Seq, docs...)
		return seq, nil
	}
}

// Render serializes a Value to YAML text with the given indent width,
// terminated by a newline.
func Render(v *Value, indentWidth int) string {
	if indentWidth <= 0 {
		indentWidth = 2
	}
	return render(v, indentWidth) + "\n"
}

// ValidateYAML parses yamlText and reports success or the parse failure.
// It never returns an error itself.
func ValidateYAML(yamlText string) ValidationResult {
	if _, err := parseDocuments(yamlText); err != nil {
		return ValidationResult{Valid: false, Error: err.Error()}
	}
	return ValidationResult{Valid: true}
}

// YAMLToJSON converts yamlText to JSON text, 2-space indented when pretty.
// Parse failures are returned wrapped with an "invalid YAML" context.
func YAMLToJSON(yamlText string, pretty bool) (string, error) {
	val, err := Parse(yamlText)
	if err != nil {
		return "", errors.Wrap(err, "invalid YAML")
	}
	return valueToJSON(val, pretty), nil
}

// JSONToYAML converts jsonText to YAML text rendered with indentWidth
// spaces per level (2 when zero or negative). JSON failures are returned
// wrapped with an "invalid JSON" context.
func JSONToYAML(jsonText string, indentWidth int) (string, error) {
	val, err := valueFromJSON(jsonText)
	if err != nil {
		return "", err
	}
	return Render(val, indentWidth), nil
}
