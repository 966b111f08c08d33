package recordcheck

import (
	"fmt"
	"strconv"
	"strings"
)

// PathRef builds field paths in a chain-safe way and creates Issues.
// The zero value is the record root.
type PathRef struct {
	segs []pathSeg
}

type pathSeg struct {
	name  string
	index int // valid when name == ""
}

// Root returns the empty path.
func Root() PathRef { return PathRef{} }

// Field appends a named field segment.
func (p PathRef) Field(name string) PathRef {
	if name == "" {
		return p
	}
	return PathRef{segs: append(append([]pathSeg{}, p.segs...), pathSeg{name: name})}
}

// Index appends a sequence index segment.
func (p PathRef) Index(i int) PathRef {
	return PathRef{segs: append(append([]pathSeg{}, p.segs...), pathSeg{index: i})}
}

// Join appends a relative path in dotted/indexed form (as produced by String).
func (p PathRef) Join(rel string) PathRef {
	if rel == "" {
		return p
	}
	child := ParsePath(rel)
	return PathRef{segs: append(append([]pathSeg{}, p.segs...), child.segs...)}
}

// IsRoot reports whether the path has no segments.
func (p PathRef) IsRoot() bool { return len(p.segs) == 0 }

// String renders the dotted/indexed form, e.g. crew[2].years_experience.
func (p PathRef) String() string {
	var b strings.Builder
	for i, s := range p.segs {
		if s.name == "" {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s.index))
			b.WriteByte(']')
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s.name)
	}
	return b.String()
}

// Pointer renders the RFC 6901 JSON Pointer form, e.g. /crew/2/years_experience.
func (p PathRef) Pointer() string {
	if len(p.segs) == 0 {
		return "/"
	}
	parts := make([]string, len(p.segs))
	for i, s := range p.segs {
		if s.name == "" {
			parts[i] = strconv.Itoa(s.index)
			continue
		}
		// escape '~' -> '~0', '/' -> '~1' per RFC6901
		parts[i] = strings.ReplaceAll(strings.ReplaceAll(s.name, "~", "~0"), "/", "~1")
	}
	return "/" + strings.Join(parts, "/")
}

// Issue creates an Issue at this path. kv is an alternating key/value list
// stored in Params.
func (p PathRef) Issue(code, msg string, kv ...any) Issue {
	var m map[string]any
	if len(kv) >= 2 {
		m = make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			m[fmt.Sprint(kv[i])] = kv[i+1]
		}
	}
	return Issue{Path: p.String(), Code: code, Message: msg, Params: m}
}

// ParsePath parses the dotted/indexed form produced by PathRef.String.
// Malformed index brackets are kept as part of the field name.
func ParsePath(s string) PathRef {
	var p PathRef
	for _, part := range strings.Split(s, ".") {
		if part == "" {
			continue
		}
		name := part
		var idx []int
		for strings.HasSuffix(name, "]") {
			open := strings.LastIndexByte(name, '[')
			if open < 0 {
				break
			}
			n, err := strconv.Atoi(name[open+1 : len(name)-1])
			if err != nil {
				break
			}
			idx = append([]int{n}, idx...)
			name = name[:open]
		}
		if name != "" {
			p.segs = append(p.segs, pathSeg{name: name})
		}
		for _, i := range idx {
			p.segs = append(p.segs, pathSeg{index: i})
		}
	}
	return p
}
