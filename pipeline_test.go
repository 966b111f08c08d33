package recordcheck_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rc "github.com/reoring/recordcheck"
	"github.com/reoring/recordcheck/dsl"
	"github.com/reoring/recordcheck/i18n"
)

func crewSchema() *rc.RecordSchema {
	return dsl.Object("Crew").
		Field("id", dsl.String().Len(3, 10)).Required().
		Field("age", dsl.Int().Range(18, 80)).Required().
		Field("active", dsl.Bool()).Default(true).
		MustBuild()
}

func shipSchema(invs ...rc.Invariant) *rc.RecordSchema {
	b := dsl.Object("Ship").
		Field("name", dsl.String().Len(1, 20)).Required().
		Field("size", dsl.Int().Range(1, 5)).Required().
		Field("crew", dsl.ArrayOf(dsl.RecordOf(crewSchema())).Items(1, 3)).Required()
	for _, inv := range invs {
		b.Rule(inv)
	}
	return b.MustBuild()
}

func crew(id string, age int) map[string]any { return map[string]any{"id": id, "age": age} }

func TestValidate_NilSchema(t *testing.T) {
	r := rc.Validate(ctx, nil, map[string]any{})
	require.False(t, r.OK())
	require.Len(t, r.Issues(), 1)
	assert.Equal(t, rc.CodeSchema, r.Issues()[0].Code)
}

func TestValidate_OK(t *testing.T) {
	r := shipSchema().Validate(ctx, map[string]any{"name": "Ark", "size": 2, "crew": []any{crew("C01", 30)}})
	require.True(t, r.OK(), r.String())
	assert.Empty(t, r.Issues())
	assert.NoError(t, r.Err())
	rec := r.Record()
	assert.Equal(t, "Ship", rec.Name())
	assert.Equal(t, int64(2), rec.GetInt("size"))
	members := rec.GetRecords("crew")
	require.Len(t, members, 1)
	assert.True(t, members[0].GetBool("active"))
}

func TestValidate_AggregatesInOrderWithNestedPaths(t *testing.T) {
	raw := map[string]any{
		"size": 9,
		"crew": []any{crew("C01", 30), crew("X", 12)},
	}
	r := shipSchema().Validate(ctx, raw)
	iss := r.Issues()
	require.Len(t, iss, 4)
	paths := []string{iss[0].Path, iss[1].Path, iss[2].Path, iss[3].Path}
	assert.Equal(t, []string{"name", "size", "crew[1].id", "crew[1].age"}, paths)
	assert.Equal(t, "/crew/1/age", iss[3].Pointer())
	assert.Equal(t, "name: field is required\nsize: value out of range\ncrew[1].id: value out of range\ncrew[1].age: value out of range", rc.Render(r))
	assert.True(t, r.Record().IsZero())
}

func TestValidate_FailFast(t *testing.T) {
	raw := map[string]any{"size": 9, "crew": []any{crew("X", 12)}}
	r := shipSchema().Validate(ctx, raw, rc.Options{FailFast: true})
	require.Len(t, r.Issues(), 1)
	assert.Equal(t, "name", r.Issues()[0].Path)
}

func TestValidate_UnknownKeys(t *testing.T) {
	raw := map[string]any{"name": "Ark", "size": 9, "crew": []any{crew("C01", 30)}, "zz": 1, "aa": 2}

	r := shipSchema().Validate(ctx, raw)
	require.Len(t, r.Issues(), 1)

	r = shipSchema().Validate(ctx, raw, rc.Options{Unknown: rc.Policy(rc.UnknownStrict)})
	iss := r.Issues()
	require.Len(t, iss, 3)
	assert.Equal(t, "size", iss[0].Path)
	assert.Equal(t, "aa", iss[1].Path)
	assert.Equal(t, "zz", iss[2].Path)
	assert.Equal(t, rc.CodeUnknownKey, iss[2].Code)

	// last option wins
	r = shipSchema().Validate(ctx, raw, rc.Options{Unknown: rc.Policy(rc.UnknownStrict)}, rc.Options{})
	assert.Len(t, r.Issues(), 1)
}

func TestValidate_InvariantsOnlyAfterFields(t *testing.T) {
	calls := 0
	inv := rc.Invariant{Name: "count", Check: func(context.Context, rc.Record) error {
		calls++
		return errors.New("never satisfied")
	}}
	s := shipSchema(inv)

	r := s.Validate(ctx, map[string]any{"name": "Ark", "size": 0, "crew": []any{crew("C01", 30)}})
	require.Len(t, r.Issues(), 1)
	assert.Equal(t, rc.CodeOutOfRange, r.Issues()[0].Code)
	assert.Equal(t, 0, calls)

	r = s.Validate(ctx, map[string]any{"name": "Ark", "size": 1, "crew": []any{crew("C01", 30)}})
	require.Len(t, r.Issues(), 1)
	it := r.Issues()[0]
	assert.Equal(t, rc.CodeInvariant, it.Code)
	assert.Equal(t, "", it.Path)
	assert.Equal(t, "count", it.Rule)
	assert.Equal(t, "never satisfied", it.Message)
	assert.Equal(t, "Ship: never satisfied", r.String())
	assert.Equal(t, 1, calls)
}

func TestValidate_InvariantIssuesArePositioned(t *testing.T) {
	inv := rc.Invariant{Name: "crew_ids", Check: func(_ context.Context, r rc.Record) error {
		for i, m := range r.GetRecords("crew") {
			if m.GetString("id") == "BAD" {
				return rc.Issues{
					rc.Root().Field("crew").Index(i).Field("id").Issue("", "banned id"),
					rc.Root().Issue("", "ignored"),
				}
			}
		}
		return nil
	}}
	r := shipSchema(inv).Validate(ctx, map[string]any{"name": "Ark", "size": 1, "crew": []any{crew("C01", 30), crew("BAD", 30)}})
	iss := r.Issues()
	require.Len(t, iss, 1)
	assert.Equal(t, "crew[1].id", iss[0].Path)
	assert.Equal(t, rc.CodeInvariant, iss[0].Code)
	assert.Equal(t, "crew_ids", iss[0].Rule)
	assert.Equal(t, "crew_ids", iss[0].Params["rule"])
}

var bannedName = rc.Issues{rc.Root().Field("name").Issue(rc.CodeInvariant, "name is banned", "name", "Nemo")}

func TestValidate_SharedInvariantIssuesUntouched(t *testing.T) {
	s := shipSchema(rc.Invariant{Name: "no_nemo", Check: func(_ context.Context, r rc.Record) error {
		if r.GetString("name") == "Nemo" {
			return bannedName
		}
		return nil
	}})
	raw := map[string]any{"name": "Nemo", "size": 1, "crew": []any{crew("C01", 30)}}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			iss := s.Validate(ctx, raw).Issues()
			assert.Len(t, iss, 1)
			assert.Equal(t, map[string]any{"name": "Nemo", "rule": "no_nemo"}, iss[0].Params)
		}()
	}
	wg.Wait()

	assert.Equal(t, map[string]any{"name": "Nemo"}, bannedName[0].Params)
}

func TestValidate_NestedInvariantPrefixed(t *testing.T) {
	inner := dsl.Object("Inner").
		Field("n", dsl.Int()).Required().
		Invariant("even", func(_ context.Context, r rc.Record) error {
			if r.GetInt("n")%2 != 0 {
				return errors.New("n must be even")
			}
			return nil
		}).
		MustBuild()
	outer := dsl.Object("Outer").
		Field("items", dsl.ArrayOf(dsl.RecordOf(inner))).Required().
		MustBuild()
	r := outer.Validate(ctx, map[string]any{"items": []any{map[string]any{"n": 2}, map[string]any{"n": 3}}})
	iss := r.Issues()
	require.Len(t, iss, 1)
	assert.Equal(t, "items[1]", iss[0].Path)
	assert.Equal(t, "items[1]: n must be even", r.String())
}

func TestValidate_DoesNotMutateInput(t *testing.T) {
	raw := map[string]any{"name": "Ark", "size": 1, "crew": []any{crew("C01", 30)}}
	r := shipSchema().Validate(ctx, raw)
	require.True(t, r.OK())
	_, has := raw["crew"].([]any)[0].(map[string]any)["active"]
	assert.False(t, has)
	assert.Len(t, raw, 3)
}

func TestValidate_Deterministic(t *testing.T) {
	raw := map[string]any{"size": "x", "crew": []any{crew("X", 12)}, "b": 1, "a": 2}
	opt := rc.Options{Unknown: rc.Policy(rc.UnknownStrict)}
	first := shipSchema().Validate(ctx, raw, opt).Issues()
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, shipSchema().Validate(ctx, raw, opt).Issues())
	}
}

func TestValidate_RecordAsNestedInput(t *testing.T) {
	member := crewSchema().Validate(ctx, crew("C01", 30))
	require.True(t, member.OK())
	r := shipSchema().Validate(ctx, map[string]any{"name": "Ark", "size": 1, "crew": []any{member.Record()}})
	require.True(t, r.OK(), r.String())
	assert.Equal(t, "C01", r.Record().GetRecords("crew")[0].GetString("id"))
}

func TestValidate_Translated(t *testing.T) {
	i18n.SetLanguage("ja")
	t.Cleanup(func() { i18n.SetLanguage("en") })
	r := crewSchema().Validate(ctx, map[string]any{"id": "C01"})
	require.Len(t, r.Issues(), 1)
	assert.Equal(t, "必須フィールドです", r.Issues()[0].Message)
}

func TestHelpers(t *testing.T) {
	s := crewSchema()
	assert.True(t, rc.Is(ctx, s, crew("C01", 30)))
	assert.False(t, rc.Is(ctx, s, crew("C01", 3)))

	rec, ok := rc.SafeValidate(ctx, s, crew("C01", 30))
	assert.True(t, ok)
	assert.Equal(t, int64(30), rec.GetInt("age"))

	_, ok = rc.SafeValidate(ctx, s, nil)
	assert.False(t, ok)

	type member struct {
		ID     string `mapstructure:"id"`
		Age    int    `mapstructure:"age"`
		Active bool   `mapstructure:"active"`
	}
	m, err := rc.ValidateInto[member](ctx, s, crew("C01", 30))
	require.NoError(t, err)
	assert.Equal(t, member{ID: "C01", Age: 30, Active: true}, m)

	_, err = rc.ValidateInto[member](ctx, s, crew("C01", 3))
	iss, ok := rc.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, "age", iss[0].Path)
	assert.Equal(t, "out_of_range at age", err.Error())
}

type clock interface{ Year() int }

type fixedClock int

func (c fixedClock) Year() int { return int(c) }

func TestServiceInjection(t *testing.T) {
	s := dsl.Object("Log").
		Field("year", dsl.Int()).Required().
		Invariant("not_future", func(ctx context.Context, r rc.Record) error {
			c, err := rc.RequireService[clock](ctx)
			if err != nil {
				return err
			}
			if r.GetInt("year") > int64(c.Year()) {
				return errors.New("year is in the future")
			}
			return nil
		}).
		MustBuild()
	raw := map[string]any{"year": 2030}

	r := s.Validate(ctx, raw)
	require.Len(t, r.Issues(), 1)
	assert.Equal(t, rc.CodeDependencyUnavailable, r.Issues()[0].Code)
	assert.Equal(t, "not_future", r.Issues()[0].Rule)
	assert.Equal(t, "dependency unavailable", r.Issues()[0].Message)

	i18n.SetLanguage("ja")
	t.Cleanup(func() { i18n.SetLanguage("en") })
	r = s.Validate(ctx, raw)
	require.Len(t, r.Issues(), 1)
	assert.Equal(t, "依存先サービスが利用できません", r.Issues()[0].Message)
	i18n.SetLanguage("en")

	withClock := rc.WithService[clock](ctx, fixedClock(2026))
	r = s.Validate(withClock, raw)
	require.Len(t, r.Issues(), 1)
	assert.Equal(t, "year is in the future", r.Issues()[0].Message)

	assert.True(t, s.Validate(withClock, map[string]any{"year": 2020}).OK())

	got, ok := rc.Service[clock](withClock)
	require.True(t, ok)
	assert.Equal(t, 2026, got.Year())
}
