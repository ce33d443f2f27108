package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field is a JSON object member kept verbatim.
type Field struct {
	Key   string
	Value json.RawMessage
}

// Fields holds object members this program does not interpret, in the order
// they were read, so hand-added keys survive a save.
type Fields []Field

// Clone returns a copy that shares no storage with f.
func (f Fields) Clone() Fields {
	if f == nil {
		return nil
	}
	c := make(Fields, len(f))
	for i, field := range f {
		c[i] = Field{Key: field.Key, Value: append(json.RawMessage(nil), field.Value...)}
	}
	return c
}

// decodeObject walks the members of a JSON object. known is called for each
// member and reports whether it consumed it; the rest are returned as Fields.
// A JSON null yields ok=false and no error.
func decodeObject(data []byte, known func(key string, raw json.RawMessage) (bool, error)) (extra Fields, ok bool, err error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, false, err
	}
	if tok == nil {
		return nil, false, nil
	}
	if delim, isDelim := tok.(json.Delim); !isDelim || delim != '{' {
		return nil, false, fmt.Errorf("expected object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, false, err
		}
		key, isString := keyTok.(string)
		if !isString {
			return nil, false, fmt.Errorf("expected member name, got %v", keyTok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, false, fmt.Errorf("member %q: %w", key, err)
		}

		used, err := known(key, raw)
		if err != nil {
			return nil, false, fmt.Errorf("member %q: %w", key, err)
		}
		if !used {
			extra = append(extra, Field{Key: key, Value: raw})
		}
	}
	if _, err := dec.Token(); err != nil {
		return nil, false, err
	}
	return extra, true, nil
}

// objectWriter builds a JSON object member by member.
type objectWriter struct {
	buf bytes.Buffer
	n   int
}

func (w *objectWriter) value(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("member %q: %w", key, err)
	}
	return w.raw(key, raw)
}

func (w *objectWriter) raw(key string, raw json.RawMessage) error {
	name, err := json.Marshal(key)
	if err != nil {
		return err
	}
	if w.n == 0 {
		w.buf.WriteByte('{')
	} else {
		w.buf.WriteByte(',')
	}
	w.n++
	w.buf.Write(name)
	w.buf.WriteByte(':')
	w.buf.Write(raw)
	return nil
}

func (w *objectWriter) extra(fields Fields) error {
	for _, f := range fields {
		if err := w.raw(f.Key, f.Value); err != nil {
			return err
		}
	}
	return nil
}

func (w *objectWriter) bytes() []byte {
	if w.n == 0 {
		return []byte("{}")
	}
	w.buf.WriteByte('}')
	return w.buf.Bytes()
}
