package bookings

import "fmt"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

// Statuses lists every status in lifecycle order.
var Statuses = []Status{StatusPending, StatusApproved, StatusRejected, StatusCancelled}

// IsValid checks if the booking status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// BlocksNewRequest reports whether a booking in this status stops the same comedian
// from requesting the same show again. Only a cancelled booking frees the pair.
func (s Status) BlocksNewRequest() bool {
	return s != StatusCancelled
}

func ParseStatus(value string) (Status, error) {
	status := Status(value)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid status %q: must be one of %v", value, Statuses)
	}
	return status, nil
}

// Actor is the party a transition must be performed by.
type Actor int

const (
	ActorShowOwner Actor = iota + 1
	ActorRequester
)

func (a Actor) String() string {
	switch a {
	case ActorShowOwner:
		return "show owner"
	case ActorRequester:
		return "requester"
	default:
		return "unknown"
	}
}

type transition struct {
	from Status
	to   Status
}

// transitions is the complete set of allowed status changes. Anything absent is invalid.
var transitions = map[transition]Actor{
	{StatusPending, StatusApproved}:   ActorShowOwner,
	{StatusPending, StatusRejected}:   ActorShowOwner,
	{StatusPending, StatusCancelled}:  ActorRequester,
	{StatusApproved, StatusCancelled}: ActorRequester,
}

// RequiredActor returns who may move a booking from one status to another.
// ok is false when the move is not allowed for anyone.
func RequiredActor(from, to Status) (actor Actor, ok bool) {
	actor, ok = transitions[transition{from: from, to: to}]
	return actor, ok
}
