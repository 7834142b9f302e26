package fixedcol

import "fmt"

// ErrCapacityExceeded indicates that an allocating operation would exceed a
// container's construction-time capacity.
//
// The failed operation has no effect; the caller may free or remove elements
// and retry.
type ErrCapacityExceeded struct {
	Capacity int
}

func (e *ErrCapacityExceeded) Error() string {
	return fmt.Sprintf("capacity exceeded: %d slots", e.Capacity)
}

// ErrInvalidIndex indicates an index that is out of range, refers to a freed
// slot, or was never registered with the container.
type ErrInvalidIndex struct {
	Index Index
}

func (e *ErrInvalidIndex) Error() string {
	return fmt.Sprintf("invalid index: %d", e.Index)
}
