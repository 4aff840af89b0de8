package list

import "errors"

var (
	// ErrAlloc indicates the heap could not supply a node.
	ErrAlloc = errors.New("list: node allocation failed")

	// ErrInvalidRef indicates use of a node that has already been released.
	ErrInvalidRef = errors.New("list: invalid node reference")

	// ErrNilSlot indicates a nil head slot was passed to Init.
	ErrNilSlot = errors.New("list: nil head slot")

	// ErrSlotInUse indicates Init was given a slot that already heads a chain.
	ErrSlotInUse = errors.New("list: head slot already holds a chain")
)
