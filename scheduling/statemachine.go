package scheduling

import (
	"fmt"
	"time"

	"github.com/phucnvzeud/center-x-sub000/models"
)

// Transition applies one status change to the session identified by
// sessionID. Pending is the only non-terminal status, but edits are not
// one-shot: a recorded session may be corrected to any other status later.
// Future-dated sessions are rejected here, not at the UI, since the operation
// is reachable directly at the service boundary.
//
// A compensatory session is appended only when the session was still pending,
// the new status is in the vocabulary's absence class, and the caller asked
// for it explicitly; the engine never infers intent from the status alone.
// The returned pointers alias sched.Sessions entries.
func Transition(sched *models.Schedule, vocab Vocabulary, sessionID string, newStatus models.SessionStatus, notes string, requestCompensatory bool, holidays map[string]bool, now time.Time) (*models.Session, *models.Session, error) {
	idx := indexByID(sched.Sessions, sessionID)
	if idx < 0 {
		return nil, nil, &NotFoundError{Kind: "session", ID: sessionID}
	}
	if !vocab.Valid(newStatus) {
		return nil, nil, &InvalidTransitionError{SessionID: sessionID, Message: fmt.Sprintf("unsupported status %q", newStatus)}
	}
	if sched.Sessions[idx].Date.After(DateOnly(now)) {
		return nil, nil, &InvalidTransitionError{SessionID: sessionID, Message: "session date is in the future"}
	}

	previous := sched.Sessions[idx].Status
	sched.Sessions[idx].Status = newStatus
	sched.Sessions[idx].Notes = notes

	var compensatory *models.Session
	if requestCompensatory && previous == vocab.Pending && vocab.IsAbsence(newStatus) {
		comp, err := AppendCompensatory(sched, vocab, holidays)
		if err != nil {
			return nil, nil, err
		}
		compensatory = comp
	}
	return &sched.Sessions[indexByID(sched.Sessions, sessionID)], compensatory, nil
}

func indexByID(sessions []models.Session, id string) int {
	for i := range sessions {
		if sessions[i].ID == id {
			return i
		}
	}
	return -1
}
