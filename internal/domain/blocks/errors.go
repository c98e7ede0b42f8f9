package blocks

import (
	"errors"
	"fmt"
)

// ValidationError rejects a block before it enters the in-memory
// collection; an invalid block is never persisted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid block: %s: %s", e.Field, e.Reason)
}

// ErrSaveInFlight is returned by Save while a previous save is still
// running. The request is remembered: one trailing re-save runs as soon
// as the in-flight save finishes, so no mutation is lost.
var ErrSaveInFlight = errors.New("save already in flight")

// ErrNotLoaded is returned by Save before any article has been loaded
// into the store.
var ErrNotLoaded = errors.New("no article loaded")
