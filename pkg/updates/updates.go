// Package updates classifies the pending patches reported by the package
// manager into the flags published on the Node.
package updates

// Category is the advisory category of a patch.
type Category string

const (
	CategorySecurity    Category = "security"
	CategoryRecommended Category = "recommended"
	CategoryOptional    Category = "optional"
	CategoryFeature     Category = "feature"
	CategoryOther       Category = "other"
)

func parseCategory(s string) Category {
	switch c := Category(s); c {
	case CategorySecurity, CategoryRecommended, CategoryOptional, CategoryFeature:
		return c
	}
	return CategoryOther
}

// Interactivity is the attention a patch asks for when it is applied.
type Interactivity string

const (
	InteractivityNone    Interactivity = "none"
	InteractivityMessage Interactivity = "message"
	InteractivityReboot  Interactivity = "reboot"
	InteractivityRestart Interactivity = "restart"
)

func parseInteractivity(s string) Interactivity {
	switch i := Interactivity(s); i {
	case InteractivityMessage, InteractivityReboot, InteractivityRestart:
		return i
	}
	return InteractivityNone
}

// Record is one pending patch.
type Record struct {
	Name          string
	Category      Category
	Interactivity Interactivity
}

func (r Record) IsSecurity() bool {
	return r.Category == CategorySecurity
}

func (r Record) IsDisruptive() bool {
	return r.Interactivity != InteractivityNone
}

// Summary aggregates the records of one listing. HasSecurityUpdates and
// HasDisruptiveUpdates are only ever set together with HasUpdates.
type Summary struct {
	HasUpdates           bool
	HasSecurityUpdates   bool
	HasDisruptiveUpdates bool
}

// Summarize folds records into a Summary.
func Summarize(records []Record) Summary {
	var s Summary
	for _, r := range records {
		s.HasUpdates = true
		if r.IsSecurity() {
			s.HasSecurityUpdates = true
		}
		if r.IsDisruptive() {
			s.HasDisruptiveUpdates = true
		}
	}
	return s
}
