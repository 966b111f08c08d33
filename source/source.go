// Package source loads raw keyword data for validation from JSON or YAML.
//
// Loaders only parse; they never coerce. Numbers in JSON are kept as
// json.Number so integer fields do not lose precision through float64.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format selects the document syntax.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

var (
	// ErrNotObject is returned when a document (or list element) is not a mapping.
	ErrNotObject = errors.New("source: document is not an object")
	// ErrTrailingData is returned when a JSON input holds more than one value.
	ErrTrailingData = errors.New("source: trailing data after JSON value")
)

// FormatOf guesses the format from a file extension; anything other than
// .yaml or .yml is read as JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// ParseFormat maps a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("source: unknown format %q", s)
}

// JSON reads a single JSON object.
func JSON(r io.Reader) (map[string]any, error) {
	v, err := decodeJSON(r)
	if err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return m, nil
}

// JSONBytes is JSON over a byte slice.
func JSONBytes(b []byte) (map[string]any, error) { return JSON(bytes.NewReader(b)) }

// YAML reads the first document of a YAML stream as an object.
func YAML(r io.Reader) (map[string]any, error) {
	var v any
	if err := yaml.NewDecoder(r).Decode(&v); err != nil {
		return nil, fmt.Errorf("source: decode yaml: %w", err)
	}
	m := toStringMap(v)
	if m == nil {
		return nil, ErrNotObject
	}
	return m, nil
}

// YAMLBytes is YAML over a byte slice.
func YAMLBytes(b []byte) (map[string]any, error) { return YAML(bytes.NewReader(b)) }

// Records reads every record in r. A JSON input may be an object or an array
// of objects; a YAML input may additionally hold several documents.
func Records(f Format, r io.Reader) ([]map[string]any, error) {
	var docs []any
	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		for {
			var v any
			err := dec.Decode(&v)
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return nil, fmt.Errorf("source: decode yaml: %w", err)
			}
			docs = append(docs, v)
		}
	default:
		v, err := decodeJSON(r)
		if err != nil {
			return nil, err
		}
		docs = append(docs, v)
	}

	var out []map[string]any
	for _, d := range docs {
		if list, ok := d.([]any); ok {
			for _, e := range list {
				m := toStringMap(e)
				if m == nil {
					return nil, ErrNotObject
				}
				out = append(out, m)
			}
			continue
		}
		m := toStringMap(d)
		if m == nil {
			return nil, ErrNotObject
		}
		out = append(out, m)
	}
	return out, nil
}

// File reads all records from path, picking the format from its extension.
func File(path string) ([]map[string]any, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return Records(FormatOf(path), fh)
}

func decodeJSON(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("source: decode json: %w", err)
	}
	if dec.More() {
		return nil, ErrTrailingData
	}
	return v, nil
}

// toStringMap converts decoded mappings (which may be map[any]any for
// non-string YAML keys) into map[string]any recursively. Non-map values
// return nil.
func toStringMap(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalize(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[fmt.Sprint(k)] = normalize(vv)
		}
		return out
	default:
		return nil
	}
}

func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return toStringMap(t)
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalize(t[i])
		}
		return arr
	default:
		return v
	}
}
