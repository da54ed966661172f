package model

import (
	"github.com/limaJavier/allensat/pkg/allen"
	"github.com/limaJavier/allensat/pkg/sat"

	"golang.org/x/sync/errgroup"
)

// Scenario assigns one basic relation to every related pair of intervals
type Scenario map[[2]uint64]allen.Relation

// Encoding is the CNF translation of an interval network together with the information needed to read its models
type Encoding struct {
	SAT       sat.SAT
	Relations IntervalRelations // Extended interval relations
	indexer   indexer
}

// Encode translates the network into CNF: the companion constraints (exactly one relation per pair, inverse
// consistency) followed by the expression reference clauses
func Encode(input ModelInput) (Encoding, error) {
	generator, err := NewExpressionReference(input.Group, input.Relations, input.TernaryConstraints, input.InverseRelationships)
	if err != nil {
		return Encoding{}, err
	}

	state := newConstraintState(input.Relations, generator.Relations(), input.InverseRelationships)
	indexer := newIndexer(input.Group.TotalTimeIntervals)

	families, err := collectConstraints(state)
	if err != nil {
		return Encoding{}, err
	}

	satInstance := sat.SAT{Clauses: [][]int64{}}
	for _, clauses := range families {
		for _, clause := range clauses {
			satInstance.Clauses = append(satInstance.Clauses, encodeClause(indexer, clause))
		}
	}
	for clause, err := range generator.Clauses() {
		if err != nil {
			return Encoding{}, err
		}
		satInstance.Clauses = append(satInstance.Clauses, encodeClause(indexer, clause))
	}
	satInstance.Variables = indexer.BaseVariables() + indexer.Expressions()

	return Encoding{
		SAT:       satInstance,
		Relations: generator.Relations(),
		indexer:   indexer,
	}, nil
}

// Execute constraints functions on different goroutines; results keep the order of companionConstraints
func collectConstraints(state constraintState) ([][]Clause, error) {
	families := make([][]Clause, len(companionConstraints))

	var group errgroup.Group
	for i, constraint := range companionConstraints {
		group.Go(func() error {
			clauses, err := constraint(state)
			families[i] = clauses
			return err
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return families, nil
}

func encodeClause(indexer indexer, clause Clause) []int64 {
	encoded := make([]int64, 0, len(clause))
	for _, literal := range clause {
		encoded = append(encoded, encodeLiteral(indexer, literal))
	}
	return encoded
}

func encodeLiteral(indexer indexer, literal Literal) int64 {
	var variable int64
	switch literal := literal.(type) {
	case BaseLiteral:
		variable = int64(indexer.Index(literal.From, literal.To, literal.Relation))
	case ExpressionLiteral:
		variable = int64(indexer.ExpressionIndex(literal.Key()))
	}

	if literal.IsNegated() {
		return -variable
	}
	return variable
}

// Expressions returns the number of auxiliary variables introduced by the encoding
func (encoding Encoding) Expressions() uint64 {
	return encoding.indexer.Expressions()
}

// Variable returns the DIMACS variable of an atom
func (encoding Encoding) Variable(atom Atom) uint64 {
	return encoding.indexer.Index(atom.From, atom.To, atom.Relation)
}

// Decode reads a scenario out of a model of the encoding. Only atoms whose relation is allowed for their pair
// are taken into account, every other atom is unconstrained
func (encoding Encoding) Decode(solution sat.SATSolution) Scenario {
	scenario := make(Scenario, len(encoding.Relations))
	for _, variable := range solution {
		if variable <= 0 || uint64(variable) > encoding.indexer.BaseVariables() {
			continue
		}

		from, to, relation := encoding.indexer.Attributes(uint64(variable))
		if encoding.Relations[[2]uint64{from, to}].Contains(relation) {
			scenario[[2]uint64{from, to}] = relation
		}
	}
	return scenario
}
