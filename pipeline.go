package recordcheck

import (
	"context"
	"sort"

	"github.com/reoring/recordcheck/i18n"
)

// Validate runs the two-phase pipeline: every declared field through the
// field validator (issues aggregated in declaration order), then, only when
// all fields passed, the invariants in declared order, stopping at the first
// failure. raw is read as currently observed; nothing is cached between calls.
func Validate(ctx context.Context, s *RecordSchema, raw map[string]any, opts ...Options) Report {
	if s == nil {
		return Report{issues: Issues{{Code: CodeSchema, Message: i18n.T(CodeSchema, nil)}}}
	}
	rec, iss := validateRecord(ctx, Root(), s, raw, lastOpt(opts))
	if len(iss) > 0 {
		return Report{name: s.name, issues: iss}
	}
	return Report{name: s.name, value: rec}
}

func validateRecord(ctx context.Context, at PathRef, s *RecordSchema, raw map[string]any, opt Options) (Record, Issues) {
	if s == nil {
		return Record{}, Issues{at.Issue(CodeSchema, i18n.T(CodeSchema, nil))}
	}
	values := make([]any, len(s.fields))
	var iss Issues
	for i, c := range s.fields {
		v, present := raw[c.Name]
		tv, fi := validateField(ctx, at.Field(c.Name), c, v, present, opt)
		if len(fi) > 0 {
			iss = AppendIssues(iss, fi...)
			if opt.FailFast {
				return Record{}, iss
			}
			continue
		}
		values[i] = tv
	}

	policy := s.unknown
	if opt.Unknown != nil {
		policy = *opt.Unknown
	}
	if policy == UnknownStrict {
		iss = AppendIssues(iss, collectUnknown(at, s, raw)...)
	}
	if len(iss) > 0 {
		if opt.FailFast {
			return Record{}, iss[:1]
		}
		return Record{}, iss
	}

	rec := Record{schema: s, values: values}
	if it, failed := runInvariants(ctx, at, s, rec); failed {
		return Record{}, Issues{it}
	}
	return rec, nil
}

// collectUnknown reports undeclared keys in key-sorted order.
func collectUnknown(at PathRef, s *RecordSchema, raw map[string]any) Issues {
	var uks []string
	for k := range raw {
		if _, known := s.index[k]; !known {
			uks = append(uks, k)
		}
	}
	sort.Strings(uks)
	var iss Issues
	for _, k := range uks {
		iss = AppendIssues(iss, at.Field(k).Issue(CodeUnknownKey, i18n.T(CodeUnknownKey, nil)))
	}
	return iss
}

// runInvariants evaluates invariants in order and returns the first violation.
// A rule may return Issues to point at a specific path; only the first entry
// is kept.
func runInvariants(ctx context.Context, at PathRef, s *RecordSchema, rec Record) (Issue, bool) {
	for _, inv := range s.invariants {
		err := inv.Check(ctx, rec)
		if err == nil {
			continue
		}
		it := at.Issue(CodeInvariant, err.Error(), "rule", inv.Name)
		if child, ok := AsIssues(err); ok && len(child) > 0 {
			it = rebase(at, child[:1])[0]
			if it.Code == "" {
				it.Code = CodeInvariant
			}
			params := make(map[string]any, len(it.Params)+1)
			for k, v := range it.Params {
				params[k] = v
			}
			if _, ok := params["rule"]; !ok {
				params["rule"] = inv.Name
			}
			it.Params = params
		}
		it.Rule = inv.Name
		return it, true
	}
	return Issue{}, false
}
