package fleet

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	rc "github.com/reoring/recordcheck"
)

// SpaceStation is the typed form of a validated Station record.
type SpaceStation struct {
	StationID       string    `mapstructure:"station_id"`
	Name            string    `mapstructure:"name"`
	CrewSize        int       `mapstructure:"crew_size"`
	PowerLevel      float64   `mapstructure:"power_level"`
	OxygenLevel     float64   `mapstructure:"oxygen_level"`
	LastMaintenance time.Time `mapstructure:"last_maintenance"`
	IsOperational   bool      `mapstructure:"is_operational"`
	Notes           *string   `mapstructure:"notes"`
}

func (s SpaceStation) Summary() string {
	status := "Operational"
	if !s.IsOperational {
		status = "Out of order"
	}
	return strings.Join([]string{
		"ID: " + s.StationID,
		"Name: " + s.Name,
		fmt.Sprintf("Crew: %d people", s.CrewSize),
		"Power: " + decimal(s.PowerLevel) + "%",
		"Oxygen: " + decimal(s.OxygenLevel) + "%",
		"Status: " + status,
	}, "\n")
}

// AlienContact is the typed form of a validated Contact record.
type AlienContact struct {
	ContactID       string      `mapstructure:"contact_id"`
	Timestamp       time.Time   `mapstructure:"timestamp"`
	Location        string      `mapstructure:"location"`
	ContactType     ContactType `mapstructure:"contact_type"`
	SignalStrength  float64     `mapstructure:"signal_strength"`
	DurationMinutes int         `mapstructure:"duration_minutes"`
	WitnessCount    int         `mapstructure:"witness_count"`
	MessageReceived *string     `mapstructure:"message_received"`
	IsVerified      bool        `mapstructure:"is_verified"`
}

func (c AlienContact) Summary() string {
	msg := "none"
	if c.MessageReceived != nil {
		msg = "'" + *c.MessageReceived + "'"
	}
	return strings.Join([]string{
		"ID: " + c.ContactID,
		"Type: " + string(c.ContactType),
		"Location: " + c.Location,
		"Signal: " + decimal(c.SignalStrength) + "/10",
		fmt.Sprintf("Duration: %d minutes", c.DurationMinutes),
		fmt.Sprintf("Witnesses: %d", c.WitnessCount),
		"Message: " + msg,
	}, "\n")
}

// CrewMember is the typed form of a validated Member record.
type CrewMember struct {
	MemberID        string `mapstructure:"member_id"`
	Name            string `mapstructure:"name"`
	Rank            Rank   `mapstructure:"rank"`
	Age             int    `mapstructure:"age"`
	Specialization  string `mapstructure:"specialization"`
	YearsExperience int    `mapstructure:"years_experience"`
	IsActive        bool   `mapstructure:"is_active"`
}

func (m CrewMember) Summary() string {
	return fmt.Sprintf("%s (%s) - %s", m.Name, m.Rank, m.Specialization)
}

// SpaceMission is the typed form of a validated Mission record.
type SpaceMission struct {
	MissionID      string       `mapstructure:"mission_id"`
	MissionName    string       `mapstructure:"mission_name"`
	Destination    string       `mapstructure:"destination"`
	LaunchDate     time.Time    `mapstructure:"launch_date"`
	DurationDays   int          `mapstructure:"duration_days"`
	Crew           []CrewMember `mapstructure:"crew"`
	MissionStatus  string       `mapstructure:"mission_status"`
	BudgetMillions float64      `mapstructure:"budget_millions"`
}

func (m SpaceMission) Summary() string {
	lines := []string{
		"Mission: " + m.MissionName,
		"ID: " + m.MissionID,
		"Destination: " + m.Destination,
		fmt.Sprintf("Duration: %d days", m.DurationDays),
		"Budget: $" + decimal(m.BudgetMillions) + "M",
		fmt.Sprintf("Crew size: %d", len(m.Crew)),
		"Crew members:",
	}
	for _, c := range m.Crew {
		lines = append(lines, "- "+c.Summary())
	}
	return strings.Join(lines, "\n")
}

// ParseStation validates raw and returns the typed station.
func ParseStation(ctx context.Context, raw map[string]any) (SpaceStation, error) {
	return rc.ValidateInto[SpaceStation](ctx, Station, raw)
}

// ParseContact validates raw and returns the typed contact report.
func ParseContact(ctx context.Context, raw map[string]any) (AlienContact, error) {
	return rc.ValidateInto[AlienContact](ctx, Contact, raw)
}

// ParseMember validates raw and returns the typed crew member.
func ParseMember(ctx context.Context, raw map[string]any) (CrewMember, error) {
	return rc.ValidateInto[CrewMember](ctx, Member, raw)
}

// ParseMission validates raw and returns the typed mission.
func ParseMission(ctx context.Context, raw map[string]any) (SpaceMission, error) {
	return rc.ValidateInto[SpaceMission](ctx, Mission, raw)
}

// decimal prints a float with at least one fractional digit (2500 -> 2500.0).
func decimal(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
