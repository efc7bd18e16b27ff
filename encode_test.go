package yamlconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeedsQuoting(t *testing.T) {
	quoted := []string{
		"", "123abc", "42", "yes", "No", "TRUE", "null", "off",
		"a:b", "a#b", "-flag", "&x", "*x", "a,b", "[x", "{x", "a|b",
		"line\nbreak", " padded", "padded ", "a?b", "a%b", "a@b", "a`b",
		".5", "~",
	}
	for _, s := range quoted {
		assert.True(t, needsQuoting(s), "%q should need quoting", s)
	}

	plain := []string{"hello", "hello world", "snake_case", "Mixed Case", "a.b", "v1.2.3x"}
	for _, s := range plain {
		assert.False(t, needsQuoting(s), "%q should not need quoting", s)
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "42", formatNumber(42))
	assert.Equal(t, "-7", formatNumber(-7))
	assert.Equal(t, "0", formatNumber(0))
	assert.Equal(t, "3.14", formatNumber(3.14))
	assert.Equal(t, "-0.5", formatNumber(-0.5))
}

func TestRenderScalars(t *testing.T) {
	m := newMapping()
	m.set("a", nullValue())
	m.set("b", boolValue(false))
	m.set("c", numberValue(2.5))
	m.set("d", stringValue("plain"))
	m.set("e", stringValue("yes"))

	want := "a: null\nb: false\nc: 2.5\nd: plain\ne: \"yes\"\n"
	assert.Equal(t, want, Render(m, 2))
}

func TestRenderEmptyContainers(t *testing.T) {
	m := newMapping()
	m.set("seq", newSequence())
	m.set("map", newMapping())
	assert.Equal(t, "seq: []\nmap: {}\n", Render(m, 2))
}

func TestRenderSequenceOfScalars(t *testing.T) {
	m := newMapping()
	seq := newSequence()
	seq.append(numberValue(1))
	seq.append(stringValue("two"))
	m.set("items", seq)

	assert.Equal(t, "items:\n  - 1\n  - two\n", Render(m, 2))
}

func TestRenderSequenceOfMappingsSharesDashLine(t *testing.T) {
	item := newMapping()
	item.set("name", stringValue("x"))
	item.set("age", numberValue(1))
	seq := newSequence()
	seq.append(item)

	assert.Equal(t, "- name: x\n  age: 1\n", Render(seq, 2))
}

func TestRenderNestedSequences(t *testing.T) {
	inner := newSequence()
	inner.append(numberValue(1))
	inner.append(numberValue(2))
	outer := newSequence()
	outer.append(inner)

	assert.Equal(t, "- - 1\n  - 2\n", Render(outer, 2))
}

func TestRenderDeepNesting(t *testing.T) {
	leaf := newMapping()
	leaf.set("c", numberValue(1))
	mid := newMapping()
	mid.set("b", leaf)
	root := newMapping()
	root.set("a", mid)

	assert.Equal(t, "a:\n  b:\n    c: 1\n", Render(root, 2))
}

func TestRenderIndentWidth(t *testing.T) {
	seq := newSequence()
	seq.append(numberValue(1))
	m := newMapping()
	m.set("items", seq)

	assert.Equal(t, "items:\n    - 1\n", Render(m, 4))
}

func TestRenderQuotedKeys(t *testing.T) {
	m := newMapping()
	m.set("a: b", numberValue(1))
	m.set("", numberValue(2))

	assert.Equal(t, "\"a: b\": 1\n\"\": 2\n", Render(m, 2))
}

func TestRenderQuotesNumberLikeStrings(t *testing.T) {
	m := newMapping()
	m.set("dot", stringValue(".5"))
	m.set("tilde", stringValue("~"))
	assert.Equal(t, "dot: \".5\"\ntilde: \"~\"\n", Render(m, 2))

	back, err := Parse(Render(m, 2))
	require.NoError(t, err)
	assert.True(t, back.equal(m))
}

func TestRenderStringEscapes(t *testing.T) {
	m := newMapping()
	m.set("s", stringValue("a\nb\t\"c\""))
	assert.Equal(t, "s: \"a\\nb\\t\\\"c\\\"\"\n", Render(m, 2))
}

func TestRenderTopLevelScalar(t *testing.T) {
	assert.Equal(t, "null\n", Render(nullValue(), 2))
	assert.Equal(t, "true\n", Render(boolValue(true), 2))
	assert.Equal(t, "\"42\"\n", Render(stringValue("42"), 2))
}

func TestRenderParseRoundTrip(t *testing.T) {
	item := newMapping()
	item.set("name", stringValue("x"))
	item.set("tags", func() *Value {
		s := newSequence()
		s.append(stringValue("one"))
		s.append(stringValue("two"))
		return s
	}())
	seq := newSequence()
	seq.append(item)
	root := newMapping()
	root.set("list", seq)
	root.set("count", numberValue(1))

	text := Render(root, 2)
	back, err := Parse(text)
	require.NoError(t, err)
	assert.True(t, back.equal(root), "round trip mismatch:\n%s", text)
}
