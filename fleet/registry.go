package fleet

import (
	"sort"
	"strings"

	rc "github.com/reoring/recordcheck"
)

// Kind ties a record schema to its short name and its typed summary.
type Kind struct {
	Name    string
	Schema  *rc.RecordSchema
	Summary func(rc.Record) (string, error)
}

type summarizer interface{ Summary() string }

func summarize[T summarizer](r rc.Record) (string, error) {
	var v T
	if err := r.Decode(&v); err != nil {
		return "", err
	}
	return v.Summary(), nil
}

var kinds = map[string]Kind{
	"station": {Name: "station", Schema: Station, Summary: summarize[SpaceStation]},
	"contact": {Name: "contact", Schema: Contact, Summary: summarize[AlienContact]},
	"crew":    {Name: "crew", Schema: Member, Summary: summarize[CrewMember]},
	"mission": {Name: "mission", Schema: Mission, Summary: summarize[SpaceMission]},
}

// Lookup finds a kind by short name ("station") or record name ("SpaceStation"),
// ignoring case.
func Lookup(name string) (Kind, bool) {
	if k, ok := kinds[strings.ToLower(name)]; ok {
		return k, true
	}
	for _, k := range kinds {
		if strings.EqualFold(k.Schema.Name(), name) {
			return k, true
		}
	}
	return Kind{}, false
}

// Names lists the short kind names, sorted.
func Names() []string {
	out := make([]string, 0, len(kinds))
	for n := range kinds {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
