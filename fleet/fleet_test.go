package fleet_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rc "github.com/reoring/recordcheck"
	"github.com/reoring/recordcheck/fleet"
)

var ctx = context.Background()

func TestStation_Valid(t *testing.T) {
	r := fleet.Station.Validate(ctx, fleet.StationInput())
	require.True(t, r.OK(), r.String())

	want := `station_id: ISS001
name: International Space Station
crew_size: 6
power_level: 85.5
oxygen_level: 92.3
last_maintenance: 2026-01-27T12:09:00Z
is_operational: true
notes: null`
	assert.Equal(t, want, rc.Render(r))

	st, err := fleet.ParseStation(ctx, fleet.StationInput())
	require.NoError(t, err)
	assert.Equal(t, 6, st.CrewSize)
	assert.True(t, st.IsOperational)
	assert.Nil(t, st.Notes)
	assert.True(t, st.LastMaintenance.Equal(time.Date(2026, 1, 27, 12, 9, 0, 0, time.UTC)))
	assert.Equal(t, "ID: ISS001\nName: International Space Station\nCrew: 6 people\nPower: 85.5%\nOxygen: 92.3%\nStatus: Operational", st.Summary())
}

func TestStation_CrewOutOfRange(t *testing.T) {
	in := fleet.StationInput()
	in["crew_size"] = 32
	r := fleet.Station.Validate(ctx, in)
	require.False(t, r.OK())
	iss := r.Issues()
	require.Len(t, iss, 1)
	assert.Equal(t, "crew_size", iss[0].Path)
	assert.Equal(t, rc.CodeOutOfRange, iss[0].Code)
	assert.Equal(t, "crew_size: value out of range", r.String())
}

func TestStation_AggregatesFieldErrors(t *testing.T) {
	in := fleet.StationInput()
	in["crew_size"] = 32
	in["power_level"] = 120.0
	delete(in, "name")
	r := fleet.Station.Validate(ctx, in)
	iss := r.Issues()
	require.Len(t, iss, 3)
	assert.Equal(t, []string{"name", "crew_size", "power_level"}, []string{iss[0].Path, iss[1].Path, iss[2].Path})
	assert.Equal(t, rc.CodeRequired, iss[0].Code)
	assert.Equal(t, "name: field is required\ncrew_size: value out of range\npower_level: value out of range", r.String())
}

func TestStation_DefaultsIdempotent(t *testing.T) {
	omitted := fleet.Station.Validate(ctx, fleet.StationInput())
	explicit := fleet.StationInput()
	explicit["is_operational"] = true
	explicit["notes"] = nil
	given := fleet.Station.Validate(ctx, explicit)
	require.True(t, omitted.OK())
	require.True(t, given.OK())
	assert.True(t, omitted.Record().Equal(given.Record()))
}

func TestStation_Deterministic(t *testing.T) {
	in := fleet.StationInput()
	in["oxygen_level"] = -1
	a := fleet.Station.Validate(ctx, in)
	b := fleet.Station.Validate(ctx, in)
	assert.Equal(t, a.Issues(), b.Issues())
}

func TestContact(t *testing.T) {
	r := fleet.Contact.Validate(ctx, fleet.ContactInput())
	require.True(t, r.OK(), r.String())

	c, err := fleet.ParseContact(ctx, fleet.ContactInput())
	require.NoError(t, err)
	assert.Equal(t, fleet.Radio, c.ContactType)
	assert.False(t, c.IsVerified)
	assert.Equal(t, "ID: AC_2024_001\nType: radio\nLocation: Area 51, Nevada\nSignal: 8.5/10\nDuration: 45 minutes\nWitnesses: 5\nMessage: 'Greetings from Zeta Reticuli'", c.Summary())
}

func TestContact_Invariants(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(m map[string]any)
		rule   string
		msg    string
	}{
		{"id prefix", func(m map[string]any) { m["contact_id"] = "XX_2024_001" }, "contact_id_prefix", `Contact ID must start with "AC" (Alien Contact)`},
		{"physical unverified", func(m map[string]any) { m["contact_type"] = "physical" }, "physical_verified", "Physical contact reports must be verified"},
		{"telepathic one witness", func(m map[string]any) { m["contact_type"] = fleet.Telepathic; m["witness_count"] = 1 }, "telepathic_witnesses", "Telepathic contact requires at least 3 witnesses"},
		{"strong signal without message", func(m map[string]any) { delete(m, "message_received") }, "strong_signal_message", "Strong signals (> 7.0) should include received messages"},
		{"first failing rule wins", func(m map[string]any) { m["contact_id"] = "XX_2024_001"; m["contact_type"] = "physical" }, "contact_id_prefix", `Contact ID must start with "AC" (Alien Contact)`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := fleet.ContactInput()
			tc.mutate(in)
			r := fleet.Contact.Validate(ctx, in)
			iss := r.Issues()
			require.Len(t, iss, 1, r.String())
			assert.Equal(t, rc.CodeInvariant, iss[0].Code)
			assert.Equal(t, tc.rule, iss[0].Rule)
			assert.Equal(t, tc.msg, iss[0].Message)
			assert.Equal(t, "AlienContact: "+tc.msg, r.String())
		})
	}

	in := fleet.ContactInput()
	in["contact_type"] = "physical"
	in["is_verified"] = true
	assert.True(t, fleet.Contact.Validate(ctx, in).OK())

	in = fleet.ContactInput()
	in["signal_strength"] = 7.0
	delete(in, "message_received")
	assert.True(t, fleet.Contact.Validate(ctx, in).OK())
}

func TestContact_FieldErrorsSkipInvariants(t *testing.T) {
	in := fleet.ContactInput()
	in["contact_id"] = "XX"
	in["contact_type"] = "smoke"
	iss := fleet.Contact.Validate(ctx, in).Issues()
	require.Len(t, iss, 2)
	assert.Equal(t, rc.CodeOutOfRange, iss[0].Code)
	assert.Equal(t, rc.CodeInvalidEnum, iss[1].Code)
	assert.Equal(t, "contact_type", iss[1].Path)
}

func TestMission_Valid(t *testing.T) {
	m, err := fleet.ParseMission(ctx, fleet.MissionInput(fleet.Crew()))
	require.NoError(t, err)
	assert.Equal(t, "planned", m.MissionStatus)
	require.Len(t, m.Crew, 3)
	assert.Equal(t, fleet.Commander, m.Crew[0].Rank)
	assert.True(t, m.Crew[2].IsActive)

	want := `Mission: Mars Colony Establishment
ID: M2024_MARS
Destination: Mars
Duration: 900 days
Budget: $2500.0M
Crew size: 3
Crew members:
- Sarah Connor (commander) - Mission Command
- John Smith (lieutenant) - Navigation
- Alice Johnson (officer) - Engineering`
	assert.Equal(t, want, m.Summary())
}

func TestMission_MutatedCrewRevalidated(t *testing.T) {
	crew := fleet.Crew()
	in := fleet.MissionInput(crew)
	require.True(t, fleet.Mission.Validate(ctx, in).OK())

	crew[0]["rank"] = fleet.Cadet
	r := fleet.Mission.Validate(ctx, in)
	require.Len(t, r.Issues(), 1)
	assert.Equal(t, "crew_leader", r.Issues()[0].Rule)
	assert.Equal(t, "Must have at least one Commander or Captain", r.Issues()[0].Message)

	crew[0]["rank"] = fleet.Commander
	crew[1]["is_active"] = false
	r = fleet.Mission.Validate(ctx, in)
	require.Len(t, r.Issues(), 1)
	assert.Equal(t, "All crew members must be active", r.Issues()[0].Message)
}

func TestMission_ExperienceBoundary(t *testing.T) {
	const msg = "Long missions (> 365 days) need 50% experienced crew (5+ years)"

	// 1 of 3 experienced
	crew := fleet.Crew()
	crew[2]["years_experience"] = 2
	r := fleet.Mission.Validate(ctx, fleet.MissionInput(crew))
	require.Len(t, r.Issues(), 1)
	assert.Equal(t, msg, r.Issues()[0].Message)
	assert.Equal(t, "long_mission_experience", r.Issues()[0].Rule)

	// same crew on a short mission
	in := fleet.MissionInput(crew)
	in["duration_days"] = 365
	assert.True(t, fleet.Mission.Validate(ctx, in).OK())

	// exactly half: 1 of 2
	half := fleet.Crew()[:2]
	assert.True(t, fleet.Mission.Validate(ctx, fleet.MissionInput(half)).OK())

	// exactly 5 years counts as experienced
	crew = fleet.Crew()
	crew[2]["years_experience"] = 2
	crew[1]["years_experience"] = fleet.Experienced
	assert.True(t, fleet.Mission.Validate(ctx, fleet.MissionInput(crew)).OK())
	crew[1]["years_experience"] = fleet.Experienced - 1
	assert.False(t, fleet.Mission.Validate(ctx, fleet.MissionInput(crew)).OK())
}

func TestMission_NestedPaths(t *testing.T) {
	crew := fleet.Crew()
	crew[1]["age"] = 17
	crew[2]["rank"] = "admiral"
	r := fleet.Mission.Validate(ctx, fleet.MissionInput(crew))
	iss := r.Issues()
	require.Len(t, iss, 2)
	assert.Equal(t, "crew[1].age", iss[0].Path)
	assert.Equal(t, "/crew/1/age", iss[0].Pointer())
	assert.Equal(t, "crew[2].rank", iss[1].Path)
	assert.Equal(t, "crew[1].age: value out of range\ncrew[2].rank: cannot interpret value as enum", r.String())
}

func TestMission_CrewCount(t *testing.T) {
	r := fleet.Mission.Validate(ctx, fleet.MissionInput(nil))
	iss := r.Issues()
	require.Len(t, iss, 1)
	assert.Equal(t, "crew", iss[0].Path)
	assert.Equal(t, rc.CodeOutOfRange, iss[0].Code)
}

func TestMember(t *testing.T) {
	m, err := fleet.ParseMember(ctx, fleet.Crew()[1])
	require.NoError(t, err)
	assert.Equal(t, "John Smith (lieutenant) - Navigation", m.Summary())

	_, err = fleet.ParseMember(ctx, map[string]any{"member_id": "X"})
	var iss rc.Issues
	require.ErrorAs(t, err, &iss)
	assert.Equal(t, "member_id", iss[0].Path)
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"contact", "crew", "mission", "station"}, fleet.Names())

	k, ok := fleet.Lookup("SpaceStation")
	require.True(t, ok)
	assert.Equal(t, "station", k.Name)

	k, ok = fleet.Lookup("MISSION")
	require.True(t, ok)
	r := k.Schema.Validate(ctx, fleet.MissionInput(fleet.Crew()))
	require.True(t, r.OK())
	s, err := k.Summary(r.Record())
	require.NoError(t, err)
	assert.Contains(t, s, "Crew size: 3")

	_, ok = fleet.Lookup("rocket")
	assert.False(t, ok)
}

func TestScenarios(t *testing.T) {
	outcomes := map[string]bool{}
	for _, sc := range fleet.Scenarios() {
		k, ok := fleet.Lookup(sc.Kind)
		require.True(t, ok, sc.Kind)
		outcomes[sc.Title] = k.Schema.Validate(ctx, sc.Input).OK()
	}
	assert.Equal(t, map[string]bool{
		"valid station":                        true,
		"station crew out of range":            false,
		"valid contact report":                 true,
		"telepathic contact with one witness":  false,
		"valid mission":                        true,
		"mission without a commander":          false,
		"long mission with inexperienced crew": false,
		"mission with inactive crew":           false,
	}, outcomes)
}
