package domain

import "errors"

type RequestStatus string

// remember to add new statuses to the validRequestStatuses map
const (
	RequestStatusDraft    RequestStatus = "draft"
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

var validRequestStatuses = map[RequestStatus]struct{}{
	RequestStatusDraft:    {},
	RequestStatusPending:  {},
	RequestStatusApproved: {},
	RequestStatusRejected: {},
}

func ToRequestStatus(s string) (RequestStatus, error) {
	status := RequestStatus(s)
	if _, ok := validRequestStatuses[status]; ok {
		return status, nil
	}

	return "", errors.New("invalid request status")
}

// requestTransitions is the full transition table of the review state machine.
// Approved and rejected are terminal.
var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusDraft:   {RequestStatusPending},
	RequestStatusPending: {RequestStatusApproved, RequestStatusRejected},
}

func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range requestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Open reports whether a request still awaits a review decision.
func (s RequestStatus) Open() bool {
	return s == RequestStatusDraft || s == RequestStatusPending
}

// Transition validates a status change against the transition table.
func (s RequestStatus) Transition(next RequestStatus) (RequestStatus, error) {
	if !s.CanTransitionTo(next) {
		return "", ErrInvalidTransition
	}
	return next, nil
}
