package recordcheck

import "context"

// Invariant is a named cross-field rule evaluated against a record whose
// fields all validated. A non-nil error is the violation; its message is
// reported verbatim.
type Invariant struct {
	Name  string
	Check func(ctx context.Context, r Record) error
}

// RecordSchema is an immutable, ordered set of field constraints plus
// cross-field invariants. Build it once and share it freely.
type RecordSchema struct {
	name       string
	fields     []*Constraint
	index      map[string]int
	invariants []Invariant
	unknown    UnknownPolicy
}

// NewRecordSchema validates the definition and returns the schema. Errors are
// *SchemaError values and indicate a programming mistake. Defaults are checked
// against their own field here, so a bad default never reaches validation.
func NewRecordSchema(name string, fields []Constraint, invariants []Invariant, unknown UnknownPolicy) (*RecordSchema, error) {
	s := &RecordSchema{
		name:    name,
		fields:  make([]*Constraint, 0, len(fields)),
		index:   make(map[string]int, len(fields)),
		unknown: unknown,
	}
	for _, f := range fields {
		if err := f.check(false); err != nil {
			se := err.(*SchemaError)
			se.Record = name
			return nil, se
		}
		if _, dup := s.index[f.Name]; dup {
			return nil, &SchemaError{Record: name, Field: f.Name, Reason: "duplicate field name"}
		}
		if f.HasDefault {
			if _, iss := validateField(context.Background(), Root(), &f, f.Default, true, Options{}); len(iss) > 0 {
				return nil, &SchemaError{Record: name, Field: f.Name, Reason: "default fails its own constraint: " + iss[0].Code}
			}
		}
		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, f.clone())
	}
	seen := make(map[string]struct{}, len(invariants))
	for _, inv := range invariants {
		if inv.Check == nil {
			return nil, &SchemaError{Record: name, Reason: "invariant " + inv.Name + " has no check"}
		}
		if _, dup := seen[inv.Name]; dup && inv.Name != "" {
			return nil, &SchemaError{Record: name, Reason: "duplicate invariant " + inv.Name}
		}
		seen[inv.Name] = struct{}{}
		s.invariants = append(s.invariants, inv)
	}
	return s, nil
}

// MustRecordSchema is like NewRecordSchema but panics on error.
func MustRecordSchema(name string, fields []Constraint, invariants []Invariant, unknown UnknownPolicy) *RecordSchema {
	s, err := NewRecordSchema(name, fields, invariants, unknown)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the record type name.
func (s *RecordSchema) Name() string { return s.name }

// UnknownPolicy returns how undeclared keys are treated.
func (s *RecordSchema) UnknownPolicy() UnknownPolicy { return s.unknown }

// Fields returns copies of the field constraints in declaration order.
func (s *RecordSchema) Fields() []Constraint {
	out := make([]Constraint, len(s.fields))
	for i, f := range s.fields {
		out[i] = *f.clone()
	}
	return out
}

// Field looks up a field constraint by name.
func (s *RecordSchema) Field(name string) (Constraint, bool) {
	i, ok := s.index[name]
	if !ok {
		return Constraint{}, false
	}
	return *s.fields[i].clone(), true
}

// Invariants returns the invariant names in evaluation order.
func (s *RecordSchema) Invariants() []string {
	out := make([]string, len(s.invariants))
	for i, inv := range s.invariants {
		out[i] = inv.Name
	}
	return out
}
