package rtree

import (
	"errors"

	"github.com/katalvlaran/mapmatch/geo"
)

// Sentinel errors for the rtree package.
var (
	// ErrInvalidOptions indicates Options failed Validate.
	ErrInvalidOptions = errors.New("rtree: invalid options")

	// ErrNullRegion indicates a null geo.Region was supplied where a
	// concrete bounding box is required.
	ErrNullRegion = errors.New("rtree: region must not be null")

	// ErrEmptyInput indicates a bulk-build function was called with no
	// entries.
	ErrEmptyInput = errors.New("rtree: bulk build requires at least one entry")

	// ErrPackedImmutable indicates Insert was called on a Packed tree
	// after it was built: the packed variant is a fault to mutate.
	ErrPackedImmutable = errors.New("rtree: packed tree is immutable after build")
)

// Selector chooses, among an internal node's entries, the index of the
// child that should receive region during insertion. pointsToLeaves is
// true when the entries' children are themselves leaf nodes (i.e. the
// decision is being made one level above the leaves).
type Selector func(entries []entry, region geo.Region, pointsToLeaves bool) int

// Splitter partitions an overflowing node's entries (len == MaxChildren+1)
// into two valid groups, each respecting Options.MinChildren.
type Splitter func(entries []entry, opts Options) (group1, group2 []entry)

// Options configures a dynamic Tree.
type Options struct {
	// MaxChildren is the maximum number of entries a node may hold before
	// it must split. Default 8.
	MaxChildren int
	// MinChildren is the minimum number of entries a non-root node must
	// hold after a split or condense. Default: 40% of MaxChildren,
	// rounded down, minimum 2.
	MinChildren int
	// FillFactor is the target fill ratio used by STR bulk build to
	// compute each leaf's capacity. Default 0.4.
	FillFactor float64
}

// DefaultOptions returns the package's default tuning: MaxChildren=8,
// MinChildren=3 (≈40% of 8), FillFactor=0.4.
func DefaultOptions() Options {
	return Options{MaxChildren: 8, MinChildren: 3, FillFactor: 0.4}
}

// Validate reports ErrInvalidOptions when MaxChildren<4, MinChildren<2,
// MinChildren > MaxChildren/2, or FillFactor is outside (0,1].
func (o Options) Validate() error {
	if o.MaxChildren < 4 {
		return ErrInvalidOptions
	}
	if o.MinChildren < 2 || o.MinChildren > o.MaxChildren/2 {
		return ErrInvalidOptions
	}
	if o.FillFactor <= 0 || o.FillFactor > 1 {
		return ErrInvalidOptions
	}
	return nil
}
