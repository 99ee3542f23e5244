package booking

import (
	"strings"
	"time"
)

type Viewpoint int

const (
	ViewpointBooker Viewpoint = iota
	ViewpointOwner
)

func (v Viewpoint) String() string {
	if v == ViewpointOwner {
		return "owner"
	}
	return "booker"
}

type StateFilter string

const (
	StateAll      StateFilter = "ALL"
	StateCurrent  StateFilter = "CURRENT"
	StatePast     StateFilter = "PAST"
	StateFuture   StateFilter = "FUTURE"
	StateWaiting  StateFilter = "WAITING"
	StateRejected StateFilter = "REJECTED"
)

var stateFilters = []StateFilter{StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected}

// ParseStateFilter is case-insensitive. An empty value means ALL.
func ParseStateFilter(text string) (StateFilter, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return StateAll, nil
	}
	upper := strings.ToUpper(trimmed)
	for _, f := range stateFilters {
		if string(f) == upper {
			return f, nil
		}
	}
	return "", unknownState(text)
}

type SortField string

const (
	SortByStart SortField = "start"
	SortByID    SortField = "id"
)

type OrderTerm struct {
	Field SortField
	Desc  bool
}

// Query is a storage-agnostic predicate over bookings. Nil bounds and an empty
// status set do not constrain the result.
type Query struct {
	Viewpoint Viewpoint
	SubjectID int64

	Statuses []Status

	StartAfter      *time.Time // start > t
	StartAtOrBefore *time.Time // start <= t
	EndBefore       *time.Time // end < t
	EndAtOrAfter    *time.Time // end >= t

	Order []OrderTerm
}

var defaultOrder = []OrderTerm{
	{Field: SortByStart, Desc: true},
	{Field: SortByID, Desc: false},
}

func Classify(viewpoint Viewpoint, filter StateFilter, subjectID int64, now time.Time) Query {
	q := Query{
		Viewpoint: viewpoint,
		SubjectID: subjectID,
		Order:     defaultOrder,
	}

	switch filter {
	case StateCurrent:
		q.StartAtOrBefore = &now
		q.EndAtOrAfter = &now
	case StatePast:
		q.EndBefore = &now
		q.Statuses = []Status{StatusApproved}
	case StateFuture:
		q.StartAfter = &now
	case StateWaiting:
		q.Statuses = []Status{StatusWaiting}
	case StateRejected:
		q.Statuses = []Status{StatusRejected, StatusCanceled}
	}

	return q
}
