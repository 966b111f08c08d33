// Package recordcheck validates raw keyword data against declared record
// schemas.
//
// A RecordSchema is an ordered list of field Constraints (kind, bounds,
// required/default) plus cross-field Invariants. Validate runs two phases:
//
//   - every field is coerced to its declared kind and bounds-checked; all
//     field failures are collected in declaration order;
//   - only when every field passed, invariants run in declared order and the
//     first failing one is reported.
//
// Nested records and sequences recurse; their issues are merged into the
// parent report with prefixed paths such as crew[1].age. The result is a
// Report holding either an immutable Record or a non-empty list of Issues.
//
// Design policy:
//   - Keep the validation core in the root package; builders live in dsl/,
//     reusable invariants in rules/, timestamp parsing in codec/.
//   - Schemas are immutable after Build and safe for concurrent use.
//   - Data problems are returned as Issues, never as panics. Inconsistent
//     schema definitions fail at Build time with *SchemaError.
//
// Typical usage:
//
//	station := dsl.Object("SpaceStation").
//	    Field("station_id", dsl.String().Len(3, 10)).Required().
//	    Field("crew_size", dsl.Int().Range(1, 20)).Required().
//	    Field("is_operational", dsl.Bool()).Default(true).
//	    MustBuild()
//
//	rep := recordcheck.Validate(ctx, station, raw)
//	if !rep.OK() {
//	    fmt.Println(recordcheck.Render(rep))
//	}
package recordcheck
