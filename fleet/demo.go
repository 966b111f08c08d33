package fleet

// Scenario is one demo input replayed by the CLI.
type Scenario struct {
	Title string
	Kind  string
	Input map[string]any
}

// Crew returns the three-member crew used by the mission demos. Each call
// returns fresh maps so callers may mutate them.
func Crew() []map[string]any {
	return []map[string]any{
		{
			"member_id": "CREW_001", "name": "Sarah Connor", "rank": Commander,
			"age": 32, "specialization": "Mission Command", "years_experience": 12,
		},
		{
			"member_id": "CREW_002", "name": "John Smith", "rank": Lieutenant,
			"age": 26, "specialization": "Navigation", "years_experience": 3,
		},
		{
			"member_id": "CREW_003", "name": "Alice Johnson", "rank": Officer,
			"age": 27, "specialization": "Engineering", "years_experience": 6,
		},
	}
}

// StationInput is the valid station from the demo.
func StationInput() map[string]any {
	return map[string]any{
		"station_id":       "ISS001",
		"name":             "International Space Station",
		"crew_size":        6,
		"power_level":      85.5,
		"oxygen_level":     92.3,
		"last_maintenance": "2026-01-27T12:09",
	}
}

// ContactInput is the valid radio contact from the demo.
func ContactInput() map[string]any {
	return map[string]any{
		"contact_id":       "AC_2024_001",
		"timestamp":        "2026-01-27T12:09",
		"location":         "Area 51, Nevada",
		"contact_type":     Radio,
		"signal_strength":  8.5,
		"duration_minutes": 45,
		"witness_count":    5,
		"message_received": "Greetings from Zeta Reticuli",
	}
}

// MissionInput is the valid Mars mission from the demo, with crew as given.
func MissionInput(crew []map[string]any) map[string]any {
	members := make([]any, len(crew))
	for i, c := range crew {
		members[i] = c
	}
	return map[string]any{
		"mission_id":      "M2024_MARS",
		"mission_name":    "Mars Colony Establishment",
		"destination":     "Mars",
		"launch_date":     "2026-01-27T12:09",
		"duration_days":   900,
		"crew":            members,
		"budget_millions": 2500.0,
	}
}

// Scenarios returns the demo inputs in replay order.
func Scenarios() []Scenario {
	overcrowded := StationInput()
	overcrowded["crew_size"] = 32

	telepathic := ContactInput()
	telepathic["contact_type"] = Telepathic
	telepathic["witness_count"] = 1

	demoted := Crew()
	demoted[0]["rank"] = Cadet

	rookies := Crew()
	rookies[2]["years_experience"] = 2

	retired := Crew()
	retired[1]["is_active"] = false

	return []Scenario{
		{Title: "valid station", Kind: "station", Input: StationInput()},
		{Title: "station crew out of range", Kind: "station", Input: overcrowded},
		{Title: "valid contact report", Kind: "contact", Input: ContactInput()},
		{Title: "telepathic contact with one witness", Kind: "contact", Input: telepathic},
		{Title: "valid mission", Kind: "mission", Input: MissionInput(Crew())},
		{Title: "mission without a commander", Kind: "mission", Input: MissionInput(demoted)},
		{Title: "long mission with inexperienced crew", Kind: "mission", Input: MissionInput(rookies)},
		{Title: "mission with inactive crew", Kind: "mission", Input: MissionInput(retired)},
	}
}
