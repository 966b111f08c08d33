package recordcheck

import "strings"

// Report is the outcome of one validation: either a Record or a non-empty,
// ordered list of Issues, never both.
type Report struct {
	name   string
	value  Record
	issues Issues
}

// OK reports whether validation succeeded.
func (r Report) OK() bool { return len(r.issues) == 0 && !r.value.IsZero() }

// Name returns the validated record type name.
func (r Report) Name() string { return r.name }

// Record returns the validated instance; the zero Record on failure.
func (r Report) Record() Record { return r.value }

// Issues returns a copy of the failures in report order; nil on success.
func (r Report) Issues() Issues {
	if len(r.issues) == 0 {
		return nil
	}
	return append(Issues(nil), r.issues...)
}

// Err returns the Issues as an error, or nil on success.
func (r Report) Err() error {
	if len(r.issues) == 0 {
		return nil
	}
	return r.Issues()
}

// String is Render(r).
func (r Report) String() string { return Render(r) }

// Render produces the text form of a report. Failures give one
// "<path>: <message>" line per issue in report order, with root-level issues
// labelled by the record name; success gives the record's own rendering.
func Render(r Report) string {
	if r.OK() {
		return r.value.String()
	}
	var b strings.Builder
	for i, it := range r.issues {
		if i > 0 {
			b.WriteByte('\n')
		}
		path := it.Path
		if path == "" {
			path = r.name
		}
		if path == "" {
			b.WriteString(it.Message)
			continue
		}
		b.WriteString(path)
		b.WriteString(": ")
		b.WriteString(it.Message)
	}
	return b.String()
}

// Decode projects a successful report's record into T (via Record.Decode).
// On failure the error is the report's Issues.
func Decode[T any](r Report) (T, error) {
	var out T
	if !r.OK() {
		return out, r.Err()
	}
	if err := r.value.Decode(&out); err != nil {
		return out, err
	}
	return out, nil
}
