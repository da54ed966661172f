package model

import "github.com/limaJavier/allensat/pkg/allen"

// indexer interface is design to give a unique DIMACS variable to every literal's proposition and vice versa
type indexer interface {
	// Returns the unique index of the atom (from, to, relation)
	Index(from, to uint64, relation allen.Relation) uint64
	// Returns the atom's attributes from a unique index
	Attributes(index uint64) (from uint64, to uint64, relation allen.Relation)
	// Returns the index of the auxiliary variable of an expression, registering it on first use
	ExpressionIndex(key ExpressionKey) uint64
	// Number of variables reserved for atoms
	BaseVariables() uint64
	// Number of expressions registered so far
	Expressions() uint64
}

func newIndexer(intervals uint64) indexer {
	return &indexerImplementation{
		intervals:   intervals,
		expressions: make(map[ExpressionKey]uint64),
	}
}
