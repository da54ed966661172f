package model

import "github.com/limaJavier/allensat/pkg/allen"

type indexerImplementation struct {
	intervals   uint64
	expressions map[ExpressionKey]uint64
}

func (indexer *indexerImplementation) Index(from, to uint64, relation allen.Relation) uint64 {
	return from + indexer.intervals*to + indexer.intervals*indexer.intervals*uint64(relation) + 1
}

func (indexer *indexerImplementation) Attributes(index uint64) (from, to uint64, relation allen.Relation) {
	index = index - 1
	from = index % indexer.intervals
	index = index / indexer.intervals

	to = index % indexer.intervals
	index = index / indexer.intervals

	relation = allen.Relation(index)

	return from, to, relation
}

func (indexer *indexerImplementation) ExpressionIndex(key ExpressionKey) uint64 {
	if index, ok := indexer.expressions[key]; ok {
		return index
	}
	index := indexer.BaseVariables() + uint64(len(indexer.expressions)) + 1
	indexer.expressions[key] = index
	return index
}

func (indexer *indexerImplementation) BaseVariables() uint64 {
	return indexer.intervals * indexer.intervals * allen.Relations
}

func (indexer *indexerImplementation) Expressions() uint64 {
	return uint64(len(indexer.expressions))
}
