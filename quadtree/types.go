package quadtree

import "errors"

// Sentinel errors for the quadtree package.
var (
	// ErrInvalidOptions indicates MaxLevels<-1 or MaxRegionsPerNode<1.
	ErrInvalidOptions = errors.New("quadtree: invalid options")

	// ErrNullBounds indicates the tree was asked to operate over a null root region.
	ErrNullBounds = errors.New("quadtree: root bounds must not be null")
)

// Options configures a Tree's capacity and depth limits.
type Options struct {
	// MaxRegionsPerNode is how many regions a leaf holds before it splits.
	// Must be >= 1. Default 10.
	MaxRegionsPerNode int

	// MaxLevels bounds tree depth; -1 means unbounded.
	MaxLevels int
}

// DefaultOptions returns MaxRegionsPerNode=10, MaxLevels=-1 (unbounded).
func DefaultOptions() Options {
	return Options{MaxRegionsPerNode: 10, MaxLevels: -1}
}

// Validate reports ErrInvalidOptions if MaxLevels<-1 or MaxRegionsPerNode<1.
func (o Options) Validate() error {
	if o.MaxLevels < -1 {
		return ErrInvalidOptions
	}
	if o.MaxRegionsPerNode < 1 {
		return ErrInvalidOptions
	}
	return nil
}
