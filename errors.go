package recordcheck

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes. The taxonomy maps onto them as follows:
// missing field -> required; type coercion -> invalid_type / invalid_enum;
// range -> out_of_range; cross-field rule -> invariant.
const (
	CodeRequired    = "required"
	CodeInvalidType = "invalid_type"
	CodeInvalidEnum = "invalid_enum"
	CodeOutOfRange  = "out_of_range"
	CodeInvariant   = "invariant"
	CodeUnknownKey  = "unknown_key"
	// CodeSchema reports a missing or unusable schema at validation time.
	CodeSchema = "schema"
	// CodeDependencyUnavailable is used by invariants whose service is missing from ctx.
	CodeDependencyUnavailable = "dependency_unavailable"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // Dotted/indexed path from the root record (e.g. crew[1].age); empty for the root.
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, permitted tags, etc.
	// Rule records the invariant name for CodeInvariant issues.
	Rule string
	// Params carries structured parameters (e.g., {"min":1, "max":20, "got":32}).
	Params map[string]any
}

// Pointer renders Path as a JSON Pointer (crew[1].age -> /crew/1/age).
func (it Issue) Pointer() string { return ParsePath(it.Path).Pointer() }

// String renders "<path>: <message>", or just the message at the root.
func (it Issue) String() string {
	if it.Path == "" {
		return it.Message
	}
	return it.Path + ": " + it.Message
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		path := it.Path
		if path == "" {
			path = "<root>"
		}
		// e.g. out_of_range at crew_size
		fmt.Fprintf(b, "%s at %s", it.Code, path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// rebase prefixes every issue path with base; child root issues land on base itself.
func rebase(base PathRef, child Issues) Issues {
	out := make(Issues, 0, len(child))
	for _, it := range child {
		it.Path = base.Join(it.Path).String()
		out = append(out, it)
	}
	return out
}

// SchemaError reports an internally inconsistent schema definition. It is a
// programming error surfaced by Build, never by validation.
type SchemaError struct {
	Record string
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	switch {
	case e.Record != "" && e.Field != "":
		return fmt.Sprintf("recordcheck: schema %s: field %s: %s", e.Record, e.Field, e.Reason)
	case e.Field != "":
		return fmt.Sprintf("recordcheck: field %s: %s", e.Field, e.Reason)
	case e.Record != "":
		return fmt.Sprintf("recordcheck: schema %s: %s", e.Record, e.Reason)
	default:
		return "recordcheck: " + e.Reason
	}
}
