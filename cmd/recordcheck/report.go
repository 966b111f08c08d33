package main

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	rc "github.com/reoring/recordcheck"
)

type issueJSON struct {
	Path    string         `json:"path"`
	Pointer string         `json:"pointer"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Hint    string         `json:"hint,omitempty"`
	Rule    string         `json:"rule,omitempty"`
	Params  map[string]any `json:"params,omitempty"`
}

type reportJSON struct {
	Source string         `json:"source,omitempty"`
	Record string         `json:"record"`
	OK     bool           `json:"ok"`
	Value  map[string]any `json:"value,omitempty"`
	Issues []issueJSON    `json:"issues,omitempty"`
}

func toJSON(source string, r rc.Report) reportJSON {
	out := reportJSON{Source: source, Record: r.Name(), OK: r.OK()}
	if r.OK() {
		out.Value = r.Record().Map()
		return out
	}
	for _, it := range r.Issues() {
		out.Issues = append(out.Issues, issueJSON{
			Path:    it.Path,
			Pointer: it.Pointer(),
			Code:    it.Code,
			Message: it.Message,
			Hint:    it.Hint,
			Rule:    it.Rule,
			Params:  it.Params,
		})
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// logReport records one validation outcome.
func (c *cli) logReport(source string, r rc.Report) {
	if r.OK() {
		c.log.Info("record valid", "source", source, "record", r.Name())
		return
	}
	c.log.Warn("record invalid", "source", source, "record", r.Name(), "issues", len(r.Issues()))
	for _, it := range r.Issues() {
		c.log.Debug("issue", "path", it.Path, "code", it.Code, "rule", it.Rule)
	}
}
