package recordcheck

// Kind is the declared type of a field.
type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindFloat
	KindBool
	KindTimestamp
	KindEnum
	KindRecord
	KindSequence
)

var kindNames = [...]string{
	KindString:    "string",
	KindInteger:   "integer",
	KindFloat:     "float",
	KindBool:      "boolean",
	KindTimestamp: "timestamp",
	KindEnum:      "enum",
	KindRecord:    "record",
	KindSequence:  "sequence",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// UnknownPolicy controls how undeclared keys in raw data are handled.
type UnknownPolicy int

const (
	UnknownStrip  UnknownPolicy = iota // Ignore undeclared keys.
	UnknownStrict                      // Report undeclared keys as unknown_key issues.
)

// Options bundles validation options. When several are passed the last wins.
type Options struct {
	// FailFast stops field validation at the first issue instead of
	// aggregating every field failure.
	FailFast bool
	// Unknown overrides the schema's UnknownPolicy when non-nil.
	Unknown *UnknownPolicy
}

// Policy returns a pointer suitable for Options.Unknown.
func Policy(p UnknownPolicy) *UnknownPolicy { return &p }

func lastOpt(opts []Options) Options {
	if len(opts) == 0 {
		return Options{}
	}
	return opts[len(opts)-1]
}
