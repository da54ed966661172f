package allen

import (
	"iter"
	"math/bits"
	"strings"
)

// Set is a set of basic relations (a general Allen relation), stored as a bitset so that iteration
// always follows the ascending order of the enumeration
type Set uint16

// Universal set, i.e. no information about the pair
const Full Set = 1<<Relations - 1

func NewSet(relations ...Relation) Set {
	var set Set
	for _, relation := range relations {
		set = set.Add(relation)
	}
	return set
}

func (set Set) Add(relation Relation) Set {
	if !relation.Valid() {
		return set
	}
	return set | 1<<relation
}

func (set Set) Contains(relation Relation) bool {
	return relation.Valid() && set&(1<<relation) != 0
}

func (set Set) Union(other Set) Set {
	return set | other
}

func (set Set) Intersect(other Set) Set {
	return set & other
}

func (set Set) Len() int {
	return bits.OnesCount16(uint16(set))
}

func (set Set) Empty() bool {
	return set&Full == 0
}

// Inverse maps every relation of the set to its inverse
func (set Set) Inverse() Set {
	var inverse Set
	for relation := range set.All() {
		inverse = inverse.Add(relation.Inverse())
	}
	return inverse
}

// All iterates the relations of the set in ascending order
func (set Set) All() iter.Seq[Relation] {
	return func(yield func(Relation) bool) {
		for relation := range Relation(Relations) {
			if set.Contains(relation) && !yield(relation) {
				return
			}
		}
	}
}

func (set Set) Relations() []Relation {
	relations := make([]Relation, 0, set.Len())
	for relation := range set.All() {
		relations = append(relations, relation)
	}
	return relations
}

func (set Set) String() string {
	var builder strings.Builder
	builder.WriteString("{")
	for i, relation := range set.Relations() {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(relation.String())
	}
	builder.WriteString("}")
	return builder.String()
}
