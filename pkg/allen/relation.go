package allen

import (
	"fmt"
	"strings"
)

// Relation is one of the 13 basic relations of Allen's Interval Algebra
type Relation uint8

const (
	Before Relation = iota
	Meets
	Overlaps
	Starts
	During
	Finishes
	Equals
	FinishedBy
	Contains
	StartedBy
	OverlappedBy
	MetBy
	After
)

// Total number of basic relations
const Relations = 13

var names = [Relations]string{
	"before",
	"meets",
	"overlaps",
	"starts",
	"during",
	"finishes",
	"equals",
	"finished-by",
	"contains",
	"started-by",
	"overlapped-by",
	"met-by",
	"after",
}

var symbols = [Relations]string{"<", "m", "o", "s", "d", "f", "=", "fi", "di", "si", "oi", "mi", ">"}

var lookup = func() map[string]Relation {
	lookup := make(map[string]Relation, 3*Relations)
	for relation := range Relation(Relations) {
		name := names[relation]
		lookup[name] = relation
		lookup[strings.ReplaceAll(name, "-", "_")] = relation
		lookup[strings.ReplaceAll(name, "-", "")] = relation // Matches camelCase after lowering
		lookup[symbols[relation]] = relation
	}
	return lookup
}()

// All returns every basic relation in ascending order
func All() []Relation {
	relations := make([]Relation, Relations)
	for i := range relations {
		relations[i] = Relation(i)
	}
	return relations
}

// Parse resolves a relation from its name ("met-by", "met_by", "metBy") or its symbol ("mi")
func Parse(value string) (Relation, error) {
	trimmed := strings.TrimSpace(value)
	if relation, ok := lookup[trimmed]; ok {
		return relation, nil
	}
	if relation, ok := lookup[strings.ToLower(trimmed)]; ok {
		return relation, nil
	}
	return 0, fmt.Errorf("unknown allen relation \"%v\"", value)
}

func (relation Relation) Valid() bool {
	return relation < Relations
}

func (relation Relation) String() string {
	if !relation.Valid() {
		return fmt.Sprintf("relation(%d)", uint8(relation))
	}
	return names[relation]
}

// Symbol returns the conventional short notation of the relation
func (relation Relation) Symbol() string {
	if !relation.Valid() {
		return "?"
	}
	return symbols[relation]
}

// Inverse returns the relation obtained by swapping the two intervals. The enumeration is laid out so that
// the inverse of the i-th relation is the (12-i)-th one
func (relation Relation) Inverse() Relation {
	return Relations - 1 - relation
}
