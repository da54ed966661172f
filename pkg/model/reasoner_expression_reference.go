package model

import "github.com/limaJavier/allensat/pkg/sat"

type expressionReferenceReasoner struct {
	solver sat.SATSolver
}

func NewExpressionReferenceReasoner(solver sat.SATSolver) Reasoner {
	return &expressionReferenceReasoner{
		solver: solver,
	}
}

func (reasoner *expressionReferenceReasoner) Build(modelInput ModelInput) (Scenario, uint64, uint64, error) {
	//** Build SAT instance
	encoding, err := Encode(modelInput)
	if err != nil {
		return nil, 0, 0, err
	}
	variables, clauses := encoding.SAT.Variables, uint64(len(encoding.SAT.Clauses))

	//** Solve SAT instance
	solution, err := reasoner.solver.Solve(encoding.SAT)
	if err != nil {
		return nil, variables, clauses, err
	} else if solution == nil { // Return nil if the SAT instance is not satisfiable
		return nil, variables, clauses, nil
	}

	return encoding.Decode(solution), variables, clauses, nil
}

func (reasoner *expressionReferenceReasoner) Verify(scenario Scenario, modelInput ModelInput) bool {
	return verify(scenario, modelInput)
}
