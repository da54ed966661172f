package sat

import (
	"fmt"
	"io"
	"strings"
)

// SATSolution holds one signed DIMACS literal per assigned variable
type SATSolution []int64

type SAT struct {
	Variables uint64
	Clauses   [][]int64
}

// WriteDIMACS writes the instance in DIMACS-CNF format
func (s SAT) WriteDIMACS(writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "p cnf %d %d\n", s.Variables, len(s.Clauses)); err != nil {
		return err
	}
	for _, clause := range s.Clauses {
		for _, literal := range clause {
			if _, err := fmt.Fprintf(writer, "%d ", literal); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(writer, "0\n"); err != nil {
			return err
		}
	}
	return nil
}

func (s SAT) ToDIMACS() string {
	var builder strings.Builder
	s.WriteDIMACS(&builder) // strings.Builder never fails
	return builder.String()
}

// Satisfies checks that the solution is free of contradictions and satisfies every clause
func (s SAT) Satisfies(solution SATSolution) bool {
	// Make sure there are no duplicates nor contradictions
	literals := make(map[int64]bool)
	for _, literal := range solution {
		if literals[literal] || literals[-literal] {
			return false
		}
		literals[literal] = true
	}

	// Check that all clauses are satisfied
	for _, clause := range s.Clauses {
		satisfied := false
		for _, literal := range clause {
			if literals[literal] {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}

	return true
}
