package recordcheck

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Record is a fully validated, immutable record instance. Values are typed by
// field kind: string and enum -> string, integer -> int64, float -> float64,
// boolean -> bool, timestamp -> time.Time, nested record -> Record,
// sequence -> []any. Absent optional fields hold nil.
type Record struct {
	schema *RecordSchema
	values []any
}

// IsZero reports whether r is the zero Record (no schema).
func (r Record) IsZero() bool { return r.schema == nil }

// Name returns the record type name.
func (r Record) Name() string {
	if r.schema == nil {
		return ""
	}
	return r.schema.name
}

// Schema returns the schema r was validated against.
func (r Record) Schema() *RecordSchema { return r.schema }

// Fields returns the field names in declaration order.
func (r Record) Fields() []string {
	if r.schema == nil {
		return nil
	}
	out := make([]string, len(r.schema.fields))
	for i, f := range r.schema.fields {
		out[i] = f.Name
	}
	return out
}

// Get returns the value of the named field. Sequences are returned as copies.
func (r Record) Get(name string) (any, bool) {
	if r.schema == nil {
		return nil, false
	}
	i, ok := r.schema.index[name]
	if !ok {
		return nil, false
	}
	if s, ok := r.values[i].([]any); ok {
		return append([]any(nil), s...), true
	}
	return r.values[i], true
}

// Has reports whether the named field holds a non-nil value.
func (r Record) Has(name string) bool {
	v, ok := r.Get(name)
	return ok && v != nil
}

// GetString returns a string or enum field; "" when absent or of another kind.
func (r Record) GetString(name string) string {
	v, _ := r.Get(name)
	s, _ := v.(string)
	return s
}

// GetInt returns an integer field.
func (r Record) GetInt(name string) int64 {
	v, _ := r.Get(name)
	i, _ := v.(int64)
	return i
}

// GetFloat returns a float field.
func (r Record) GetFloat(name string) float64 {
	v, _ := r.Get(name)
	f, _ := v.(float64)
	return f
}

// GetBool returns a boolean field.
func (r Record) GetBool(name string) bool {
	v, _ := r.Get(name)
	b, _ := v.(bool)
	return b
}

// GetTime returns a timestamp field.
func (r Record) GetTime(name string) time.Time {
	v, _ := r.Get(name)
	t, _ := v.(time.Time)
	return t
}

// GetRecord returns a nested record field.
func (r Record) GetRecord(name string) Record {
	v, _ := r.Get(name)
	rec, _ := v.(Record)
	return rec
}

// GetRecords returns the record elements of a sequence field.
func (r Record) GetRecords(name string) []Record {
	v, _ := r.Get(name)
	items, _ := v.([]any)
	out := make([]Record, 0, len(items))
	for _, it := range items {
		if rec, ok := it.(Record); ok {
			out = append(out, rec)
		}
	}
	return out
}

// Len returns the element count of a sequence field.
func (r Record) Len(name string) int {
	v, _ := r.Get(name)
	items, _ := v.([]any)
	return len(items)
}

// Map returns a deep copy as plain maps and slices, nested records included.
// Unset optional fields are left out unless they are nullable, so the map
// validates again to an equal record.
func (r Record) Map() map[string]any {
	if r.schema == nil {
		return nil
	}
	out := make(map[string]any, len(r.values))
	for i, f := range r.schema.fields {
		if r.values[i] == nil && !f.Nullable {
			continue
		}
		out[f.Name] = plain(r.values[i])
	}
	return out
}

func plain(v any) any {
	switch t := v.(type) {
	case Record:
		return t.Map()
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = plain(t[i])
		}
		return out
	default:
		return v
	}
}

// Decode projects the record into out (a pointer to a struct or map) using
// mapstructure tags.
func (r Record) Decode(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: false,
		ZeroFields:       true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(r.Map())
}

// Equal reports whether both records share a schema and hold equal values.
// Timestamps compare by instant.
func (r Record) Equal(o Record) bool {
	if r.schema != o.schema || len(r.values) != len(o.values) {
		return false
	}
	for i := range r.values {
		if !valueEqual(r.values[i], o.values[i]) {
			return false
		}
	}
	return true
}

func valueEqual(a, b any) bool {
	switch x := a.(type) {
	case Record:
		y, ok := b.(Record)
		return ok && x.Equal(y)
	case time.Time:
		y, ok := b.(time.Time)
		return ok && x.Equal(y)
	case []any:
		y, ok := b.([]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !valueEqual(x[i], y[i]) {
				return false
			}
		}
		return true
	default:
		return reflect.DeepEqual(a, b)
	}
}

// String renders one "<path>: <value>" line per field in declaration order.
// Nested records and sequences are flattened with the same path convention
// used in issues.
func (r Record) String() string {
	var b strings.Builder
	r.render(&b, Root())
	return strings.TrimSuffix(b.String(), "\n")
}

func (r Record) render(b *strings.Builder, at PathRef) {
	if r.schema == nil {
		return
	}
	for i, f := range r.schema.fields {
		renderValue(b, at.Field(f.Name), r.values[i])
	}
}

func renderValue(b *strings.Builder, at PathRef, v any) {
	switch t := v.(type) {
	case Record:
		t.render(b, at)
		return
	case []any:
		if len(t) == 0 {
			b.WriteString(at.String() + ": []\n")
			return
		}
		for i := range t {
			renderValue(b, at.Index(i), t[i])
		}
		return
	}
	b.WriteString(at.String())
	b.WriteString(": ")
	b.WriteString(FormatValue(v))
	b.WriteByte('\n')
}

// FormatValue renders a typed field value the way Record.String does.
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case time.Time:
		return timestamps.Encode(t)
	case Record:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}
