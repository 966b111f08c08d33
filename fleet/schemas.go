// Package fleet defines the space station, alien contact and crew mission
// records, their typed Go projections and the demo scenarios.
package fleet

import (
	"github.com/reoring/recordcheck/dsl"
	"github.com/reoring/recordcheck/rules"
)

// ContactType classifies an alien contact report.
type ContactType string

const (
	Radio      ContactType = "radio"
	Visual     ContactType = "visual"
	Physical   ContactType = "physical"
	Telepathic ContactType = "telepathic"
)

// Rank is a crew member's rank.
type Rank string

const (
	Cadet      Rank = "cadet"
	Officer    Rank = "officer"
	Lieutenant Rank = "lieutenant"
	Captain    Rank = "captain"
	Commander  Rank = "commander"
)

// Station validates a space station report.
var Station = dsl.Object("SpaceStation").
	Field("station_id", dsl.String().Len(3, 10)).Required().
	Field("name", dsl.String().Len(1, 50)).Required().
	Field("crew_size", dsl.Int().Range(1, 20)).Required().
	Field("power_level", dsl.Float().Range(0, 100)).Required().
	Field("oxygen_level", dsl.Float().Range(0, 100)).Required().
	Field("last_maintenance", dsl.Timestamp()).Required().
	Field("is_operational", dsl.Bool()).Default(true).
	Field("notes", dsl.String().MaxLen(200).Nullable()).Default(nil).
	MustBuild()

// Contact validates an alien contact log entry.
var Contact = dsl.Object("AlienContact").
	Field("contact_id", dsl.String().Len(5, 15)).Required().
	Field("timestamp", dsl.Timestamp()).Required().
	Field("location", dsl.String().Len(3, 100)).Required().
	Field("contact_type", dsl.EnumOf(Radio, Visual, Physical, Telepathic)).Required().
	Field("signal_strength", dsl.Float().Range(0, 10)).Required().
	Field("duration_minutes", dsl.Int().Range(1, 1440)).Required().
	Field("witness_count", dsl.Int().Range(1, 100)).Required().
	Field("message_received", dsl.String().MaxLen(500).Nullable()).Default(nil).
	Field("is_verified", dsl.Bool()).Default(false).
	Rule(rules.Named("contact_id_prefix",
		rules.HasPrefix("contact_id", "AC", `Contact ID must start with "AC" (Alien Contact)`))).
	Rule(rules.Implies("physical_verified",
		rules.In("contact_type", string(Physical)), rules.IsTrue("is_verified"),
		"Physical contact reports must be verified")).
	Rule(rules.Implies("telepathic_witnesses",
		rules.In("contact_type", string(Telepathic)), rules.If("witness_count", rules.Ge, 3),
		"Telepathic contact requires at least 3 witnesses")).
	Rule(rules.Named("strong_signal_message",
		rules.Requires(rules.If("signal_strength", rules.Gt, 7.0), "message_received",
			"Strong signals (> 7.0) should include received messages"))).
	MustBuild()

// Member validates a single crew member.
var Member = dsl.Object("CrewMember").
	Field("member_id", dsl.String().Len(3, 10)).Required().
	Field("name", dsl.String().Len(2, 50)).Required().
	Field("rank", dsl.EnumOf(Cadet, Officer, Lieutenant, Captain, Commander)).Required().
	Field("age", dsl.Int().Range(18, 80)).Required().
	Field("specialization", dsl.String().Len(3, 30)).Required().
	Field("years_experience", dsl.Int().Range(0, 50)).Required().
	Field("is_active", dsl.Bool()).Default(true).
	MustBuild()

// Experienced is the years of experience that count a member as experienced.
const Experienced = 5

// Mission validates a space mission with its crew.
var Mission = dsl.Object("SpaceMission").
	Field("mission_id", dsl.String().Len(5, 15)).Required().
	Field("mission_name", dsl.String().Len(3, 100)).Required().
	Field("destination", dsl.String().Len(3, 50)).Required().
	Field("launch_date", dsl.Timestamp()).Required().
	Field("duration_days", dsl.Int().Range(1, 3650)).Required().
	Field("crew", dsl.ArrayOf(dsl.RecordOf(Member)).Items(1, 12)).Required().
	Field("mission_status", dsl.String()).Default("planned").
	Field("budget_millions", dsl.Float().Range(1, 10000)).Required().
	Rule(rules.Named("mission_id_prefix",
		rules.HasPrefix("mission_id", "M", `Mission ID must start with "M"`))).
	Rule(rules.Named("crew_leader",
		rules.AnyElemIn("crew", "rank", []string{string(Captain), string(Commander)},
			"Must have at least one Commander or Captain"))).
	Rule(rules.Named("long_mission_experience",
		rules.When(rules.If("duration_days", rules.Gt, 365),
			rules.Fraction("crew", 0.5, rules.If("years_experience", rules.Ge, Experienced),
				"Long missions (> 365 days) need 50% experienced crew (5+ years)")))).
	Rule(rules.Named("crew_active",
		rules.AllElem("crew", rules.IsTrue("is_active"), "All crew members must be active"))).
	MustBuild()
