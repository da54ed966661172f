package model

import (
	"iter"

	"github.com/limaJavier/allensat/pkg/allen"
)

// ExpressionReference generates the transitivity clauses of an interval network. For every triple of intervals
// (t1, t2, t3) and every relation r12 allowed between t1 and t2 it states that some relation r23 between t2 and t3
// together with some relation r13 between t1 and t3 must be admissible by the composition r12 ∘ r23. Each
// conjunction of the two base literals is replaced by an auxiliary expression literal (Tseitin encoding)
type ExpressionReference struct {
	total       uint64
	relations   IntervalRelations // Extended: holds both directions of every declared pair
	composition TernaryConstraints
}

// NewExpressionReference extends the interval relations with their inverses. A relation without inverse aborts
// the construction, hence no clause is ever produced from an inconsistent inverse table
func NewExpressionReference(group TimeIntervalsGroup, relations IntervalRelations, composition TernaryConstraints, inverses InverseRelationships) (*ExpressionReference, error) {
	extended, err := ExtendIntervalRelations(relations, inverses)
	if err != nil {
		return nil, err
	}

	return &ExpressionReference{
		total:       group.TotalTimeIntervals,
		relations:   extended,
		composition: composition,
	}, nil
}

// GenerateExpressionReference is a shorthand for NewExpressionReference(...).Clauses()
func GenerateExpressionReference(input ModelInput) (iter.Seq2[Clause, error], error) {
	generator, err := NewExpressionReference(input.Group, input.Relations, input.TernaryConstraints, input.InverseRelationships)
	if err != nil {
		return nil, err
	}
	return generator.Clauses(), nil
}

// Relations returns the extended interval relations the generator works with
func (generator *ExpressionReference) Relations() IntervalRelations {
	return generator.relations
}

// Clauses lazily enumerates the clauses of every triple (i, j, k) of pairwise distinct intervals, in ascending
// lexicographic order. Clauses of a triple are only yielded once the whole triple has been synthesized; if the
// composition table lacks an entry the error is yielded (with a nil clause) and the sequence ends
func (generator *ExpressionReference) Clauses() iter.Seq2[Clause, error] {
	return func(yield func(Clause, error) bool) {
		n := generator.total
		for i := range n {
			for j := range n {
				for k := range n {
					if i == j || j == k || i == k {
						continue
					}

					clauses, err := generator.Triple(i, j, k)
					if err != nil {
						yield(nil, err)
						return
					}
					for _, clause := range clauses {
						if !yield(clause, nil) {
							return
						}
					}
				}
			}
		}
	}
}

// Triple synthesizes the clauses of a single triple. It returns no clauses if any of the pairs (t1, t2),
// (t2, t3) or (t1, t3) has no declared relation
func (generator *ExpressionReference) Triple(t1, t2, t3 uint64) ([]Clause, error) {
	relations12, ok := generator.relations[[2]uint64{t1, t2}]
	if !ok {
		return nil, nil
	}
	relations23, ok := generator.relations[[2]uint64{t2, t3}]
	if !ok {
		return nil, nil
	}
	relations13, ok := generator.relations[[2]uint64{t1, t3}]
	if !ok {
		return nil, nil
	}

	clauses := make([]Clause, 0)
	for r12 := range relations12.All() {
		// r12(t1, t2) implies at least one of the expressions appended below
		clause := Clause{NewBaseLiteral(t1, t2, r12, true)}

		for r23 := range relations23.All() {
			composition, ok := generator.composition[[2]allen.Relation{r12, r23}]
			if !ok {
				return nil, &MissingCompositionError{First: r12, Second: r23, Triple: [3]uint64{t1, t2, t3}}
			}

			for r13 := range composition.All() {
				literal23 := NewBaseLiteral(t2, t3, r23, false)
				literal13 := NewBaseLiteral(t1, t3, r13, false)

				// (r23 ∧ r13) => e
				leftRight := Clause{
					NewBaseLiteral(t2, t3, r23, true),
					NewBaseLiteral(t1, t3, r13, true),
					NewExpressionLiteral(literal23, literal13, false),
				}
				// e => r23
				rightLeft1 := Clause{
					literal23,
					NewExpressionLiteral(literal23, literal13, true),
				}
				// e => r13
				rightLeft2 := Clause{
					literal13,
					NewExpressionLiteral(literal23, literal13, true),
				}

				clauses = append(clauses, leftRight, rightLeft1, rightLeft2)
			}

			for r13 := range composition.All() {
				if relations13.Contains(r13) {
					clause = append(clause, NewExpressionLiteral(
						NewBaseLiteral(t2, t3, r23, false),
						NewBaseLiteral(t1, t3, r13, false),
						false,
					))
				}
			}
		}

		clauses = append(clauses, clause)
	}

	return clauses, nil
}
