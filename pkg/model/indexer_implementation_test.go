package model

import (
	"math/rand"
	"testing"

	"github.com/limaJavier/allensat/pkg/allen"
	"github.com/stretchr/testify/assert"
)

func TestIndexAndAttributes(t *testing.T) {
	for range 10 {
		//** Arrange
		var Intervals uint64 = uint64(rand.Intn(30) + 1)
		indexer := newIndexer(Intervals)

		indices := make(map[uint64]bool)
		for from := range Intervals {
			for to := range Intervals {
				for _, relation := range allen.All() {
					//** Act
					index := indexer.Index(from, to, relation)
					derivedFrom, derivedTo, derivedRelation := indexer.Attributes(index)

					//** Assert
					assert.False(t, indices[index], "index %v must be unique", index)
					assert.True(t, index >= 1 && index <= indexer.BaseVariables())
					assert.Equal(t, from, derivedFrom)
					assert.Equal(t, to, derivedTo)
					assert.Equal(t, relation, derivedRelation)
					indices[index] = true
				}
			}
		}
		assert.Len(t, indices, int(indexer.BaseVariables()))
	}
}

func TestExpressionIndex(t *testing.T) {
	//** Arrange
	indexer := newIndexer(3)
	first := ExpressionKey{Left: Atom{1, 2, allen.Before}, Right: Atom{0, 2, allen.Before}}
	second := ExpressionKey{Left: Atom{1, 2, allen.Meets}, Right: Atom{0, 2, allen.Before}}

	//** Act
	firstIndex := indexer.ExpressionIndex(first)
	secondIndex := indexer.ExpressionIndex(second)
	repeatedIndex := indexer.ExpressionIndex(first)

	//** Assert
	assert.Equal(t, indexer.BaseVariables()+1, firstIndex)
	assert.Equal(t, indexer.BaseVariables()+2, secondIndex)
	assert.Equal(t, firstIndex, repeatedIndex)
	assert.Equal(t, uint64(2), indexer.Expressions())
}
