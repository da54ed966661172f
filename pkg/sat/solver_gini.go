package sat

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
)

type giniSolver struct{}

// NewGiniSolver returns an in-process solver, which requires no external executable
func NewGiniSolver() SATSolver {
	return &giniSolver{}
}

func (solver *giniSolver) Solve(sat SAT) (SATSolution, error) {
	g := gini.New()
	var known uint64 // Highest variable the solver has seen
	for _, clause := range sat.Clauses {
		for _, literal := range clause {
			if literal == 0 || uint64(abs(literal)) > sat.Variables {
				return nil, fmt.Errorf("literal %v is out of range: instance declares %v variables", literal, sat.Variables)
			}
			g.Add(z.Dimacs2Lit(int(literal)))
			known = max(known, uint64(abs(literal)))
		}
		g.Add(z.LitNull) // Terminate clause
	}

	switch g.Solve() {
	case satisfiable:
		solution := make(SATSolution, 0, sat.Variables)
		for variable := uint64(1); variable <= sat.Variables; variable++ {
			// Variables absent from every clause are unconstrained, hence set to false
			if variable <= known && g.Value(z.Var(variable).Pos()) {
				solution = append(solution, int64(variable))
			} else {
				solution = append(solution, -int64(variable))
			}
		}
		return solution, nil
	case unsatisfiable:
		return nil, nil
	}
	return nil, fmt.Errorf("gini could not decide the instance")
}

func abs(value int64) int64 {
	if value < 0 {
		return -value
	}
	return value
}
