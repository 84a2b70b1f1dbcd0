// Package rtree implements the R-Tree family: a dynamic R-Tree with
// pluggable child-selection and split strategies, an STR (sort-tile-recurse)
// bulk loader that produces a dynamic tree ready for further inserts, and a
// Hilbert-packed static variant that is immutable once built.
//
// Every traversal — Insert's descent, Delete's search, Query, and the
// packed variant's search — is iterative over an explicit stack; the tree
// can be deep enough that recursion would be a liability.
package rtree
