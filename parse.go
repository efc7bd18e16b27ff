package yamlconv

import "strings"

// The block parser drives a line cursor over the input and a stack of open
// containers keyed by indentation. Each line is classified and dispatched to
// the flow parser, the block scalar reader, the anchor registry, or the
// scalar typer. A frame is popped as soon as a line's indentation falls back
// to or below the frame's own column.

type frame struct {
	node   *Value
	indent int
}

type parser struct {
	lines   []string
	anchors map[string]*Value

	docs  []*Value
	root  *Value
	stack []frame
}

// parseDocuments parses yamlText into its ordered list of documents. The
// anchor registry spans the whole invocation; the cursor state resets at
// every --- separator.
func parseDocuments(text string) ([]*Value, error) {
	p := &parser{
		lines:   strings.Split(text, "\n"),
		anchors: map[string]*Value{},
	}
	p.reset()

	for i := 0; i < len(p.lines); i++ {
		raw := p.lines[i]
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if trimmed == "---" {
			p.flush()
			p.reset()
			continue
		}
		if trimmed == "..." {
			p.flush()
			p.reset()
			continue
		}

		indent := countIndent(raw)
		for len(p.stack) > 1 && p.stack[len(p.stack)-1].indent >= indent {
			p.stack = p.stack[:len(p.stack)-1]
		}
		cur := p.stack[len(p.stack)-1].node
		lineNo := i + 1

		next, err := p.dispatchLine(cur, trimmed, indent, i, lineNo)
		if err != nil {
			return nil, err
		}
		i = next
	}

	p.flush()
	return p.docs, nil
}

func (p *parser) reset() {
	p.root = newMapping()
	p.stack = []frame{{node: p.root, indent: -1}}
}

func (p *parser) flush() {
	if !p.root.isEmpty() {
		p.docs = append(p.docs, p.root)
	}
}

// dispatchLine handles one content line. It returns the index of the last
// line consumed (block scalars span several).
func (p *parser) dispatchLine(cur *Value, content string, indent, i, lineNo int) (int, error) {
	anchor := ""
	if strings.HasPrefix(content, "&") {
		anchor, content = extractAnchor(content)
	}

	// Bare alias line: only legal as a sequence element.
	if strings.HasPrefix(content, "*") && indexTopLevel(content, ':') < 0 {
		if cur.Kind != KindSequence {
			return i, &AmbiguousAliasError{Line: lineNo}
		}
		val, err := p.resolveAlias(strings.TrimSpace(content[1:]), lineNo)
		if err != nil {
			return i, err
		}
		cur.append(val)
		return i, nil
	}

	if strings.HasPrefix(content, "<<:") {
		return i, p.mergeKey(cur, strings.TrimSpace(content[3:]), lineNo)
	}

	if content == "-" || strings.HasPrefix(content, "- ") {
		return p.sequenceItem(cur, content, anchor, indent, i, lineNo)
	}

	if colon := indexTopLevel(content, ':'); colon >= 0 {
		return p.mappingEntry(cur, content, colon, anchor, indent, i, lineNo)
	}

	return i, &SyntaxError{Line: lineNo, Text: content}
}

// mappingEntry handles a key: value line. keyIndent is the column the key
// starts at; nested containers opened by an empty value are stacked there.
func (p *parser) mappingEntry(cur *Value, content string, colon int, lineAnchor string, keyIndent, i, lineNo int) (int, error) {
	if cur.Kind != KindMapping {
		return i, &SyntaxError{Line: lineNo, Text: content}
	}

	key := unquoteKey(content[:colon])
	if key == "" {
		return i, &MissingKeyError{Line: lineNo}
	}
	valText := strings.TrimSpace(content[colon+1:])

	anchor := lineAnchor
	if strings.HasPrefix(valText, "&") {
		anchor, valText = extractAnchor(valText)
	}

	val, next, err := p.readValue(valText, keyIndent, i, lineNo)
	if err != nil {
		return i, err
	}
	cur.set(key, val)
	p.bind(anchor, val)
	return next, nil
}

// sequenceItem handles a "- item" line. The current container must be a
// sequence; two mapping fallbacks cover same-indent lists under a pending
// key and the scalar-to-pair coercion.
func (p *parser) sequenceItem(cur *Value, content, lineAnchor string, indent, i, lineNo int) (int, error) {
	if cur.Kind == KindMapping {
		switch {
		case cur == p.root && cur.isEmpty():
			// A top-level list: the document root becomes a sequence.
			*cur = Value{Kind: KindSequence, Seq: []*Value{}}
		case len(cur.Map) > 0 && cur.Map[len(cur.Map)-1].Val.Kind == KindNull:
			// "key:" with items at the same indent as the key.
			seq := newSequence()
			cur.Map[len(cur.Map)-1].Val = seq
			cur = seq
		case len(cur.Map) > 0 && cur.Map[len(cur.Map)-1].Val.Kind == KindSequence:
			// Later items of a same-indent list.
			cur = cur.Map[len(cur.Map)-1].Val
		case len(cur.Map) > 0 && isScalar(cur.Map[len(cur.Map)-1].Val):
			// A dash under a key that already holds a bare scalar coerces
			// the existing value and the new item into a pair.
			last := cur.Map[len(cur.Map)-1]
			seq := newSequence()
			seq.append(last.Val)
			last.Val = seq
			cur = seq
		default:
			return i, &SyntaxError{Line: lineNo, Text: content}
		}
	}
	if cur.Kind != KindSequence {
		return i, &SyntaxError{Line: lineNo, Text: content}
	}

	// The item's column is wherever its text starts after the dash, so a
	// wider "-   key: x" pad still anchors nested lines correctly.
	itemText := ""
	itemCol := indent + 2
	if content != "-" {
		rest := content[1:]
		itemCol = indent + 1 + (len(rest) - len(strings.TrimLeft(rest, " ")))
		itemText = strings.TrimSpace(rest)
	}

	anchor := lineAnchor
	if strings.HasPrefix(itemText, "&") {
		before := len(itemText)
		anchor, itemText = extractAnchor(itemText)
		itemCol += before - len(itemText)
	}

	// "- - x": the item is itself a sequence whose first element sits on
	// this line.
	if itemText == "-" || strings.HasPrefix(itemText, "- ") {
		nested := newSequence()
		cur.append(nested)
		p.stack = append(p.stack, frame{node: nested, indent: indent})
		p.bind(anchor, nested)
		return p.sequenceItem(nested, itemText, "", itemCol, i, lineNo)
	}

	// An item that is itself a key: value opens a mapping that collects the
	// item's remaining keys, which sit deeper than the dash.
	if colon := indexTopLevel(itemText, ':'); colon >= 0 && !strings.HasPrefix(itemText, "*") &&
		!strings.HasPrefix(itemText, "[") && !strings.HasPrefix(itemText, "{") {
		m := newMapping()
		cur.append(m)
		p.stack = append(p.stack, frame{node: m, indent: indent})
		p.bind(anchor, m)
		return p.mappingEntry(m, itemText, colon, "", itemCol, i, lineNo)
	}

	val, next, err := p.readValue(itemText, indent, i, lineNo)
	if err != nil {
		return i, err
	}
	cur.append(val)
	p.bind(anchor, val)
	return next, nil
}

// readValue dispatches a value token shared by mapping entries and sequence
// items: flow collection, block scalar, nested structure, alias, or plain
// scalar. baseIndent anchors nested frames and block scalar boundaries.
func (p *parser) readValue(valText string, baseIndent, i, lineNo int) (*Value, int, error) {
	switch {
	case strings.HasPrefix(valText, "[") || strings.HasPrefix(valText, "{"):
		val, err := parseFlow(valText, lineNo)
		return val, i, err

	case isBlockIndicator(valText):
		text, last := readBlockScalar(p.lines, i, baseIndent, valText)
		return stringValue(text), last, nil

	case valText == "":
		container := p.peekNested(i, baseIndent)
		if container == nil {
			return nullValue(), i, nil
		}
		p.stack = append(p.stack, frame{node: container, indent: baseIndent})
		return container, i, nil

	case strings.HasPrefix(valText, "*"):
		val, err := p.resolveAlias(strings.TrimSpace(valText[1:]), lineNo)
		return val, i, err

	default:
		return parseScalar(valText), i, nil
	}
}

// peekNested looks past line i for a more-indented line and decides whether
// an empty value opens a sequence, a mapping, or nothing.
func (p *parser) peekNested(i, baseIndent int) *Value {
	for j := i + 1; j < len(p.lines); j++ {
		trimmed := strings.TrimSpace(p.lines[j])
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if trimmed == "---" || trimmed == "..." {
			return nil
		}
		if countIndent(p.lines[j]) <= baseIndent {
			return nil
		}
		if trimmed == "-" || strings.HasPrefix(trimmed, "- ") {
			return newSequence()
		}
		return newMapping()
	}
	return nil
}

// mergeKey splices a referenced mapping's entries into cur, left to right:
// merged keys overwrite earlier entries, later entries overwrite merged ones.
func (p *parser) mergeKey(cur *Value, rest string, lineNo int) error {
	if cur.Kind != KindMapping {
		return &SyntaxError{Line: lineNo, Text: "<<: " + rest}
	}

	var src *Value
	switch {
	case strings.HasPrefix(rest, "*"):
		resolved, err := p.resolveAlias(strings.TrimSpace(rest[1:]), lineNo)
		if err != nil {
			return err
		}
		src = resolved
	case strings.HasPrefix(rest, "{"):
		parsed, err := parseFlow(rest, lineNo)
		if err != nil {
			return err
		}
		src = parsed
	default:
		return &SyntaxError{Line: lineNo, Text: "<<: " + rest}
	}

	// Non-mapping merge sources are silently ignored.
	if src.Kind != KindMapping {
		return nil
	}
	for _, e := range src.Map {
		cur.set(e.Key, e.Val.deepCopy())
	}
	return nil
}

func (p *parser) bind(name string, val *Value) {
	if name != "" {
		p.anchors[name] = val
	}
}

// resolveAlias returns a deep copy of the value bound to name. Aliases are
// snapshots, not shared references.
func (p *parser) resolveAlias(name string, lineNo int) (*Value, error) {
	bound, ok := p.anchors[name]
	if !ok {
		return nil, &UndefinedAliasError{Name: name, Line: lineNo}
	}
	return bound.deepCopy(), nil
}

func isScalar(v *Value) bool {
	return v.Kind != KindSequence && v.Kind != KindMapping
}

// extractAnchor splits a leading &name token from s.
func extractAnchor(s string) (name, rest string) {
	end := 1
	for end < len(s) && s[end] != ' ' && s[end] != '\t' {
		end++
	}
	return s[1:end], strings.TrimSpace(s[end:])
}

func countIndent(line string) int {
	indent := 0
	for indent < len(line) && line[indent] == ' ' {
		indent++
	}
	return indent
}
