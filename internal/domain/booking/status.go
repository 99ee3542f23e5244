package booking

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	StatusCanceled Status = "CANCELED"
)

// legal edges; anything not listed is rejected
var transitions = map[Status][]Status{
	StatusWaiting: {StatusApproved, StatusRejected, StatusCanceled},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected, StatusCanceled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Decision int

const (
	DecisionReject Decision = iota
	DecisionApprove
)

func DecisionFromApproved(approved bool) Decision {
	if approved {
		return DecisionApprove
	}
	return DecisionReject
}

func (d Decision) Target() Status {
	if d == DecisionApprove {
		return StatusApproved
	}
	return StatusRejected
}
