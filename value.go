package yamlconv

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Value is the universal in-memory representation shared by the parser and
// the serializer. Exactly one payload field is meaningful, selected by Kind.
//
// A Mapping keeps its entries in insertion order; keys are unique. Sequence
// and Mapping hold child pointers so that the anchor registry can refer to
// live nodes while a parse is still filling them in.
type Value struct {
	Kind Kind
	Bool bool
	Num  float64
	Str  string
	Seq  []*Value
	Map  []*MapEntry
}

// MapEntry is a single key/value pair of a Mapping.
type MapEntry struct {
	Key string
	Val *Value
}

func nullValue() *Value { return &Value{Kind: KindNull} }

func boolValue(b bool) *Value { return &Value{Kind: KindBool, Bool: b} }

func numberValue(f float64) *Value { return &Value{Kind: KindNumber, Num: f} }

func stringValue(s string) *Value { return &Value{Kind: KindString, Str: s} }

func newSequence() *Value { return &Value{Kind: KindSequence, Seq: []*Value{}} }

func newMapping() *Value { return &Value{Kind: KindMapping, Map: []*MapEntry{}} }

// isEmpty reports whether a container has no children. Scalars are never
// considered empty for document-flushing purposes.
func (v *Value) isEmpty() bool {
	switch v.Kind {
	case KindSequence:
		return len(v.Seq) == 0
	case KindMapping:
		return len(v.Map) == 0
	default:
		return false
	}
}

// get returns the entry value stored under key, or nil.
func (v *Value) get(key string) *Value {
	for _, e := range v.Map {
		if e.Key == key {
			return e.Val
		}
	}
	return nil
}

// set stores val under key. A duplicate key reuses the existing entry's
// position (last write wins, plain JSON-object semantics).
func (v *Value) set(key string, val *Value) {
	for _, e := range v.Map {
		if e.Key == key {
			e.Val = val
			return
		}
	}
	v.Map = append(v.Map, &MapEntry{Key: key, Val: val})
}

// append adds an element to a Sequence.
func (v *Value) append(val *Value) {
	v.Seq = append(v.Seq, val)
}

// deepCopy returns a structural clone of v. Alias and merge resolution splice
// copies rather than sharing subtrees, so aliased nodes stay independently
// mutable.
func (v *Value) deepCopy() *Value {
	switch v.Kind {
	case KindSequence:
		out := newSequence()
		for _, item := range v.Seq {
			out.Seq = append(out.Seq, item.deepCopy())
		}
		return out
	case KindMapping:
		out := newMapping()
		for _, e := range v.Map {
			out.Map = append(out.Map, &MapEntry{Key: e.Key, Val: e.Val.deepCopy()})
		}
		return out
	default:
		clone := *v
		return &clone
	}
}

// equal reports structural equality, used by tests and the idempotence
// checks. NaN is never produced by the parser so float comparison is direct.
func (v *Value) equal(o *Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindNull:
		return true
	case KindBool:
		return v.Bool == o.Bool
	case KindNumber:
		return v.Num == o.Num
	case KindString:
		return v.Str == o.Str
	case KindSequence:
		if len(v.Seq) != len(o.Seq) {
			return false
		}
		for i := range v.Seq {
			if !v.Seq[i].equal(o.Seq[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(v.Map) != len(o.Map) {
			return false
		}
		for i := range v.Map {
			if v.Map[i].Key != o.Map[i].Key || !v.Map[i].Val.equal(o.Map[i].Val) {
				return false
			}
		}
		return true
	}
	return false
}
