package model

type Status string

const (
	StatusUpcoming Status = "Upcoming"
	StatusPast     Status = "Past"
	StatusCanceled Status = "Canceled"
	StatusToday    Status = "Today"
)

var statusLabels = map[Status]string{
	StatusUpcoming: "Avenir",
	StatusPast:     "Passé",
	StatusCanceled: "Annulé",
	StatusToday:    "Aujourd'hui",
}

func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label is the French name shown to users.
func (s Status) Label() string {
	return statusLabels[s]
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// FilterCriteria narrows and orders an event list. Empty sets and an empty
// status match everything.
type FilterCriteria struct {
	Categories []string
	Countries  []string
	Status     Status
	SortOrder  SortOrder
}

// DefaultFilterCriteria is what the dashboard starts with.
func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{
		SortOrder: SortAsc,
		Status:    StatusUpcoming,
	}
}
