package model

import (
	"fmt"
	"strings"

	"github.com/limaJavier/allensat/pkg/allen"
)

// Atom is the proposition "Relation holds from interval From to interval To"
type Atom struct {
	From     uint64
	To       uint64
	Relation allen.Relation
}

func (atom Atom) String() string {
	return fmt.Sprintf("%v(%v,%v)", atom.Relation, atom.From, atom.To)
}

// Literal is either a BaseLiteral or an ExpressionLiteral
type Literal interface {
	IsNegated() bool
	String() string
	literal()
}

// BaseLiteral is a signed Atom
type BaseLiteral struct {
	Atom
	Negated bool
}

func NewBaseLiteral(from, to uint64, relation allen.Relation, negated bool) BaseLiteral {
	return BaseLiteral{Atom: Atom{From: from, To: to, Relation: relation}, Negated: negated}
}

func (literal BaseLiteral) IsNegated() bool { return literal.Negated }

func (literal BaseLiteral) String() string {
	if literal.Negated {
		return "¬" + literal.Atom.String()
	}
	return literal.Atom.String()
}

func (BaseLiteral) literal() {}

// ExpressionKey identifies the auxiliary variable standing for the conjunction Left ∧ Right
type ExpressionKey struct {
	Left  Atom
	Right Atom
}

// ExpressionLiteral is an auxiliary proposition equivalent to the conjunction of two base propositions.
// Only the ordered pair of atoms identifies the underlying variable; Negated applies to the expression itself
type ExpressionLiteral struct {
	Left    Atom
	Right   Atom
	Negated bool
}

// NewExpressionLiteral builds the expression for left ∧ right. The constituents' polarities do not take part in
// the expression's identity and are discarded
func NewExpressionLiteral(left, right BaseLiteral, negated bool) ExpressionLiteral {
	return ExpressionLiteral{Left: left.Atom, Right: right.Atom, Negated: negated}
}

func (literal ExpressionLiteral) Key() ExpressionKey {
	return ExpressionKey{Left: literal.Left, Right: literal.Right}
}

func (literal ExpressionLiteral) IsNegated() bool { return literal.Negated }

func (literal ExpressionLiteral) String() string {
	expression := fmt.Sprintf("[%v ∧ %v]", literal.Left, literal.Right)
	if literal.Negated {
		return "¬" + expression
	}
	return expression
}

func (ExpressionLiteral) literal() {}

// Clause is a disjunction of literals
type Clause []Literal

func (clause Clause) String() string {
	parts := make([]string, len(clause))
	for i, literal := range clause {
		parts[i] = literal.String()
	}
	return strings.Join(parts, " ∨ ")
}
