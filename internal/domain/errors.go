package domain

import (
	"fmt"
)

// ErrDocumentNotFound is returned by repositories when no document exists
// for the requested id.
type ErrDocumentNotFound struct {
	ID string
}

func (e *ErrDocumentNotFound) Error() string {
	return fmt.Sprintf("document not found with ID: %s", e.ID)
}

// ErrNotPermutation reports a reorder whose id-set does not match the
// current blocks. Accepting one silently would drop or duplicate blocks, so
// the caller's contract violation is surfaced instead.
type ErrNotPermutation struct {
	Have int
	Got  int
}

func (e *ErrNotPermutation) Error() string {
	return fmt.Sprintf("reorder is not a permutation of the current blocks (have %d blocks, got %d)", e.Have, e.Got)
}

// ErrUnknownBlockType reports an AddBlock call with a type outside the
// closed set. This is a programming error in the caller, not a runtime
// condition the editor recovers from.
type ErrUnknownBlockType struct {
	Type string
}

func (e *ErrUnknownBlockType) Error() string {
	return fmt.Sprintf("unknown block type: %s", e.Type)
}
