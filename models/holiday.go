package models

import "time"

// Holiday is one date of the global holiday calendar. Holidays are created by
// administrators and can be applied retroactively to every schedule owner.
type Holiday struct {
	ID        string    `bson:"id" json:"id"`
	Date      time.Time `bson:"date" json:"date"`
	Name      string    `bson:"name" json:"name"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// ApplyOutcome classifies the effect of applying a holiday to one owner.
type ApplyOutcome string

const (
	// ApplyConverted means a pending session on the holiday date was marked
	// as a holiday break.
	ApplyConverted ApplyOutcome = "converted"
	// ApplyExcluded means the date was added to the owner's exception list so
	// future generation and compensation skip it.
	ApplyExcluded ApplyOutcome = "excluded"
	// ApplyUnchanged means the holiday was already reflected on the owner.
	ApplyUnchanged ApplyOutcome = "unchanged"
	// ApplyFailed means this owner could not be updated; Err holds the cause.
	ApplyFailed ApplyOutcome = "failed"
)

// ApplyResult is the per-owner record of a best-effort holiday application
// batch. One owner failing never aborts the rest of the batch.
type ApplyResult struct {
	OwnerID   string       `json:"ownerId"`
	OwnerKind string       `json:"ownerKind"` // "course" or "kindergarten"
	Outcome   ApplyOutcome `json:"outcome"`
	SessionID string       `json:"sessionId,omitempty"`
	Err       string       `json:"error,omitempty"`
}
