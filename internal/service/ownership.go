package service

import "fmt"

// NotOwnerError is returned when the authenticated user is not the owner of
// the resource an operation targets.
type NotOwnerError struct {
	Action  string
	Subject string
}

func (e *NotOwnerError) Error() string {
	return fmt.Sprintf("Not authorized to %s %s", e.Action, e.Subject)
}

// checkOwnership compares a resource's owner id against the requester's id.
// Callers must resolve the resource first so that a missing resource
// surfaces as not-found before any ownership verdict.
func checkOwnership(ownerID, requesterID, action, subject string) error {
	if ownerID == requesterID {
		return nil
	}
	return &NotOwnerError{Action: action, Subject: subject}
}
