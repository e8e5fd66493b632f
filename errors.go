package array

import "errors"

var (
	// ErrIndexOutOfBounds signals an invalid positional index passed to a
	// checked accessor or mutator.
	ErrIndexOutOfBounds = errors.New("array: index out of bounds")

	// ErrInvalidConfig signals an invalid tree Config.
	ErrInvalidConfig = errors.New("array: invalid configuration")

	// ErrAllocationFailed is returned by an Allocator that could not obtain
	// storage for a new node. Every public mutation that can allocate
	// guarantees the tree is left exactly as it was before the call.
	ErrAllocationFailed = errors.New("array: node allocation failed")

	// ErrElementCopyFailed is returned when a Mover's element construction
	// (Cloner.Clone, or an emplace step of FillFrom) fails. Every public
	// mutation that can copy an element guarantees the tree is left exactly
	// as it was before the call.
	ErrElementCopyFailed = errors.New("array: element copy failed")
)
