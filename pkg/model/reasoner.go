package model

type Reasoner interface {
	// Build finds a scenario of the network; a nil scenario (and nil error) means the network is inconsistent
	Build(
		modelInput ModelInput,
	) (scenario Scenario, variables uint64, clauses uint64, err error)

	Verify(
		scenario Scenario,
		modelInput ModelInput,
	) bool
}
