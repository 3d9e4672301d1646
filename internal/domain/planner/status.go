package planner

import "strings"

type Status string

const (
	StatusPlanned Status = "planned"
	StatusPosted  Status = "posted"
	StatusSkipped Status = "skipped"
)

var allStatuses = []Status{StatusPlanned, StatusPosted, StatusSkipped}

func Statuses() []Status {
	out := make([]Status, len(allStatuses))
	copy(out, allStatuses)
	return out
}

func (s Status) Valid() bool {
	for _, v := range allStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ParseStatus accepts a status name, ignoring surrounding space.
func ParseStatus(raw string) (Status, bool) {
	s := Status(strings.TrimSpace(raw))
	return s, s.Valid()
}
