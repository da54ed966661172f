package model

type constraintState struct {
	declared  IntervalRelations
	relations IntervalRelations // Extended interval relations
	inverses  InverseRelationships
	pairs     [][2]uint64 // Keys of relations in ascending order
}

func newConstraintState(declared, relations IntervalRelations, inverses InverseRelationships) constraintState {
	return constraintState{
		declared:  declared,
		relations: relations,
		inverses:  inverses,
		pairs:     sortedPairs(relations),
	}
}

// At least one of the allowed relations holds between every related pair
func atLeastOneConstraints(state constraintState) ([]Clause, error) {
	clauses := make([]Clause, 0, len(state.pairs))
	for _, pair := range state.pairs {
		clause := make(Clause, 0, state.relations[pair].Len())
		for relation := range state.relations[pair].All() {
			clause = append(clause, NewBaseLiteral(pair[0], pair[1], relation, false))
		}
		clauses = append(clauses, clause)
	}
	return clauses, nil
}

// Basic relations are mutually exclusive
func atMostOneConstraints(state constraintState) ([]Clause, error) {
	clauses := make([]Clause, 0)
	for _, pair := range state.pairs {
		relations := state.relations[pair].Relations()
		for i := range len(relations) - 1 {
			for j := i + 1; j < len(relations); j++ {
				clauses = append(clauses, Clause{
					NewBaseLiteral(pair[0], pair[1], relations[i], true),
					NewBaseLiteral(pair[0], pair[1], relations[j], true),
				})
			}
		}
	}
	return clauses, nil
}

// r(a, b) => inverse(r)(b, a) for every declared pair. Together with the exactly-one constraints on both
// directions this also fixes every relation derived for the reverse pair
func inverseConstraints(state constraintState) ([]Clause, error) {
	clauses := make([]Clause, 0)
	for _, pair := range sortedPairs(state.declared) {
		for relation := range state.declared[pair].All() {
			inverse, ok := state.inverses[relation]
			if !ok {
				return nil, &MissingInverseError{Relation: relation, From: pair[0], To: pair[1]}
			}
			clauses = append(clauses, Clause{
				NewBaseLiteral(pair[0], pair[1], relation, true),
				NewBaseLiteral(pair[1], pair[0], inverse, false),
			})
		}
	}
	return clauses, nil
}

// Ordered so that the encoding of a given input is reproducible
var companionConstraints = []func(state constraintState) ([]Clause, error){
	atLeastOneConstraints,
	atMostOneConstraints,
	inverseConstraints,
}
