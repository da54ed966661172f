package model

import "github.com/limaJavier/allensat/pkg/allen"

func verify(scenario Scenario, modelInput ModelInput) bool {
	//** Extend input
	relations, err := ExtendIntervalRelations(modelInput.Relations, modelInput.InverseRelationships)
	if err != nil {
		return false
	}

	// Check that the scenario relates exactly the pairs of the network
	if len(scenario) != len(relations) {
		return false
	}

	// Check that every pair of the scenario is related in the network and holds one of the allowed relations
	for pair, relation := range scenario {
		allowed, ok := relations[pair]
		if !ok || !allowed.Contains(relation) {
			return false
		}
	}

	// Check that the reverse of every declared pair holds the inverse relation
	for pair := range modelInput.Relations {
		relation := scenario[pair]
		inverse, ok := modelInput.InverseRelationships[relation]
		if !ok || scenario[[2]uint64{pair[1], pair[0]}] != inverse {
			return false
		}
	}

	// Check that every triple is closed under composition
	n := modelInput.Group.TotalTimeIntervals
	for i := range n {
		for j := range n {
			for k := range n {
				if i == j || j == k || i == k {
					continue
				}
				if !closed(scenario, modelInput.TernaryConstraints, i, j, k) {
					return false
				}
			}
		}
	}

	return true
}

// Checks whether the relation between t1 and t3 is admissible by the composition of (t1, t2) and (t2, t3).
// Triples with an unrelated pair are trivially closed
func closed(scenario Scenario, composition TernaryConstraints, t1, t2, t3 uint64) bool {
	r12, ok12 := scenario[[2]uint64{t1, t2}]
	r23, ok23 := scenario[[2]uint64{t2, t3}]
	r13, ok13 := scenario[[2]uint64{t1, t3}]
	if !ok12 || !ok23 || !ok13 {
		return true
	}

	admissible, ok := composition[[2]allen.Relation{r12, r23}]
	return ok && admissible.Contains(r13)
}
