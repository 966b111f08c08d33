// Package dsl provides a fluent builder for recordcheck record schemas.
//
// Overview
//   - Builder API: declare a record with Object(name).Field(..).Required()/Default(..)/Optional(),
//     then Build()/MustBuild().
//   - Field types: String()/Int()/Float()/Bool()/Timestamp()/Enum(..)/EnumOf[T](..)/RecordOf(s)/ArrayOf(elem),
//     bounded with Len/MinLen/MaxLen, Range/Min/Max, Items/MinItems/MaxItems; Nullable() accepts null.
//   - Invariants: Invariant(name, fn) or Rule(inv) with constructors from the rules package; they run
//     in declared order after every field validated, and the first failure is reported.
//   - Unknown keys: ignored by default; UnknownStrict() reports them as unknown_key issues.
//
// Definition mistakes (min > max, bounds on the wrong kind, duplicate field names, Require of an
// undeclared field) are reported by Build as errors, never at validation time.
//
// Example (quickstart)
//
//	crew := dsl.Object("CrewMember").
//	    Field("name", dsl.String().Len(2, 50)).Required().
//	    Field("rank", dsl.Enum("cadet", "captain")).Required().
//	    Field("is_active", dsl.Bool()).Default(true).
//	    MustBuild()
//
//	mission := dsl.Object("SpaceMission").
//	    Field("mission_id", dsl.String().Len(5, 15)).Required().
//	    Field("crew", dsl.ArrayOf(dsl.RecordOf(crew)).Items(1, 12)).Required().
//	    Rule(rules.HasPrefix("mission_id", "M", `Mission ID must start with "M"`)).
//	    MustBuild()
//
//	rep := mission.Validate(ctx, raw)
//	if !rep.OK() {
//	    fmt.Println(rep) // crew[1].name: value out of range
//	}
package dsl
