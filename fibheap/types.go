package fibheap

import "errors"

// maxDegree bounds the consolidation buffer: log_phi(MaxInt32) ≈ 45.
const maxDegree = 45

// Sentinel errors for the fibheap package.
var (
	// ErrEmpty indicates Peek or Poll was called on an empty heap.
	ErrEmpty = errors.New("fibheap: heap is empty")

	// ErrKeyIncrease indicates DecreaseKey was called with a key larger
	// than the node's current key.
	ErrKeyIncrease = errors.New("fibheap: new key is larger than current key")

	// ErrNilNode indicates a nil *Node handle was passed to DecreaseKey or Remove.
	ErrNilNode = errors.New("fibheap: node handle is nil")

	// ErrForeignNode indicates a *Node handle belongs to a different heap.
	ErrForeignNode = errors.New("fibheap: node does not belong to this heap")
)
