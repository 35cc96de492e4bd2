package repository

import "errors"

// ErrVersionConflict is returned when an optimistic session-list write loses
// its version check to a concurrent edit of the same owner. Callers reload
// the aggregate and retry.
var ErrVersionConflict = errors.New("repository: version conflict")
