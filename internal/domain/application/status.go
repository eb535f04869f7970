package application

// Status is the lifecycle state of an application. Transitions only move
// forward: draft -> submitted -> under_review -> approved|rejected, and
// approved -> funded. Nothing leaves funded or rejected.
type Status string

const (
	StatusDraft       Status = "draft"
	StatusSubmitted   Status = "submitted"
	StatusUnderReview Status = "under_review"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
	StatusFunded      Status = "funded"
)

var transitions = map[Status][]Status{
	StatusDraft:       {StatusSubmitted},
	StatusSubmitted:   {StatusUnderReview},
	StatusUnderReview: {StatusApproved, StatusRejected},
	StatusApproved:    {StatusFunded},
	StatusRejected:    {},
	StatusFunded:      {},
}

// CanTransitionTo reports whether moving from s to next is a legal
// forward transition.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Decided reports whether the status represents a review decision.
func (s Status) Decided() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusFunded
}

// Terminal reports whether no further transitions are permitted.
func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}

func ValidStatus(s string) bool {
	_, ok := transitions[Status(s)]
	return ok
}

// DecidedStatuses are the states counted as application history for
// credit evaluation.
var DecidedStatuses = []Status{StatusApproved, StatusFunded, StatusRejected}
