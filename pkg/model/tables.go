package model

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/limaJavier/allensat/pkg/allen"
	"github.com/samber/lo"
)

// TimeIntervalsGroup describes the intervals of the network, identified by the indices [0, TotalTimeIntervals)
type TimeIntervalsGroup struct {
	TotalTimeIntervals uint64
}

// IntervalRelations maps an ordered pair of intervals (from, to) to the relations allowed between them
type IntervalRelations map[[2]uint64]allen.Set

// TernaryConstraints maps a pair of relations (r1, r2) to the relations admissible for their composition
type TernaryConstraints map[[2]allen.Relation]allen.Set

// InverseRelationships maps a relation to its inverse
type InverseRelationships map[allen.Relation]allen.Relation

type MissingInverseError struct {
	Relation allen.Relation
	From, To uint64
}

func (err *MissingInverseError) Error() string {
	return fmt.Sprintf("inverse relationships table has no entry for \"%v\" (declared between intervals %v and %v)", err.Relation, err.From, err.To)
}

type MissingCompositionError struct {
	First, Second allen.Relation
	Triple        [3]uint64
}

func (err *MissingCompositionError) Error() string {
	return fmt.Sprintf("ternary constraints table has no entry for (\"%v\", \"%v\") required by triple %v", err.First, err.Second, err.Triple)
}

// DefaultTernaryConstraints returns the full composition table of Allen's Interval Algebra
func DefaultTernaryConstraints() TernaryConstraints {
	table := make(TernaryConstraints, allen.Relations*allen.Relations)
	for _, r1 := range allen.All() {
		for _, r2 := range allen.All() {
			table[[2]allen.Relation{r1, r2}] = allen.Compose(r1, r2)
		}
	}
	return table
}

// DefaultInverseRelationships returns the inverse of every basic relation
func DefaultInverseRelationships() InverseRelationships {
	return lo.SliceToMap(allen.All(), func(relation allen.Relation) (allen.Relation, allen.Relation) {
		return relation, relation.Inverse()
	})
}

// ExtendIntervalRelations returns a new map holding every declared pair plus its reverse pair, whose relations
// are the inverses of the declared ones. When both directions of a pair are declared the results are merged by
// union. The input map is left untouched
func ExtendIntervalRelations(relations IntervalRelations, inverses InverseRelationships) (IntervalRelations, error) {
	extended := make(IntervalRelations, 2*len(relations))
	for pair, set := range relations {
		extended[pair] = extended[pair].Union(set)
	}

	// Iterate in a fixed order so that the reported error (if any) is deterministic
	for _, pair := range sortedPairs(relations) {
		from, to := pair[0], pair[1]

		var inverseSet allen.Set
		for relation := range relations[pair].All() {
			inverse, ok := inverses[relation]
			if !ok {
				return nil, &MissingInverseError{Relation: relation, From: from, To: to}
			}
			inverseSet = inverseSet.Add(inverse)
		}

		reverse := [2]uint64{to, from}
		extended[reverse] = extended[reverse].Union(inverseSet)
	}

	return extended, nil
}

func sortedPairs(relations IntervalRelations) [][2]uint64 {
	pairs := lo.Keys(relations)
	slices.SortFunc(pairs, func(a, b [2]uint64) int {
		if a[0] != b[0] {
			return cmp.Compare(a[0], b[0])
		}
		return cmp.Compare(a[1], b[1])
	})
	return pairs
}
