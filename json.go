package yamlconv

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// The JSON bridge. Reading goes through a jsoniter Iterator so that object
// keys are seen in document order, which the ordered Mapping requires;
// encoding/json would lose that order. Writing drives a jsoniter Stream,
// which also handles pretty indentation.

var prettyJSON = jsoniter.Config{IndentionStep: 2, EscapeHTML: false}.Froze()
var compactJSON = jsoniter.Config{EscapeHTML: false}.Froze()

// valueFromJSON parses JSON text into a Value.
func valueFromJSON(text string) (*Value, error) {
	iter := jsoniter.ParseString(jsoniter.ConfigDefault, text)
	val := readJSONValue(iter)
	if iter.Error != nil && iter.Error != io.EOF {
		return nil, errors.Wrap(iter.Error, "invalid JSON")
	}
	if val == nil {
		return nil, errors.New("invalid JSON: empty input")
	}
	if iter.Error == nil {
		// Only whitespace may follow the value. WhatIsNext skips it and
		// flags EOF when the input is fully consumed.
		iter.WhatIsNext()
		if iter.Error != io.EOF {
			return nil, errors.New("invalid JSON: trailing content after value")
		}
	}
	return val, nil
}

func readJSONValue(iter *jsoniter.Iterator) *Value {
	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		iter.ReadNil()
		return nullValue()
	case jsoniter.BoolValue:
		return boolValue(iter.ReadBool())
	case jsoniter.NumberValue:
		return numberValue(iter.ReadFloat64())
	case jsoniter.StringValue:
		return stringValue(iter.ReadString())
	case jsoniter.ArrayValue:
		out := newSequence()
		iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			out.append(readJSONValue(it))
			return it.Error == nil
		})
		return out
	case jsoniter.ObjectValue:
		out := newMapping()
		iter.ReadObjectCB(func(it *jsoniter.Iterator, field string) bool {
			out.set(field, readJSONValue(it))
			return it.Error == nil
		})
		return out
	default:
		iter.ReportError("readJSONValue", "unexpected token")
		return nil
	}
}

// valueToJSON serializes a Value as JSON text, 2-space indented when pretty.
func valueToJSON(v *Value, pretty bool) string {
	api := compactJSON
	if pretty {
		api = prettyJSON
	}
	stream := api.BorrowStream(nil)
	defer api.ReturnStream(stream)

	writeJSONValue(stream, v)
	return string(stream.Buffer())
}

func writeJSONValue(stream *jsoniter.Stream, v *Value) {
	switch v.Kind {
	case KindNull:
		stream.WriteNil()
	case KindBool:
		stream.WriteBool(v.Bool)
	case KindNumber:
		stream.WriteRaw(formatNumber(v.Num))
	case KindString:
		stream.WriteString(v.Str)
	case KindSequence:
		stream.WriteArrayStart()
		for i, item := range v.Seq {
			if i > 0 {
				stream.WriteMore()
			}
			writeJSONValue(stream, item)
		}
		stream.WriteArrayEnd()
	case KindMapping:
		stream.WriteObjectStart()
		for i, e := range v.Map {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectField(e.Key)
			writeJSONValue(stream, e.Val)
		}
		stream.WriteObjectEnd()
	}
}
