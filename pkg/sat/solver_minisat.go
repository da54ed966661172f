package sat

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

type minisatSolver struct{}

func NewMinisatSolver() SATSolver {
	return &minisatSolver{}
}

func (solver *minisatSolver) Solve(sat SAT) (SATSolution, error) {
	minisatPath, err := getExecutablePath("minisatPath")
	if err != nil {
		return nil, err
	}

	// Create a temporary file to hold the DIMACS content
	inputTempFile, err := os.CreateTemp("", "dimacs-*.cnf")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(inputTempFile.Name()) // Ensure the file is removed after execution

	outputTempFile, err := os.CreateTemp("", "minisat_output-*.txt")
	if err != nil {
		inputTempFile.Close()
		return nil, fmt.Errorf("failed to create temporary file: %w", err)
	}
	outputTempFile.Close() // Minisat writes to it by name
	defer os.Remove(outputTempFile.Name())

	// Write the DIMACS content to the temporary file
	if err := sat.WriteDIMACS(inputTempFile); err != nil {
		inputTempFile.Close()
		return nil, fmt.Errorf("failed to write DIMACS to temporary file: %w", err)
	}
	if err := inputTempFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temporary file: %w", err)
	}

	cmd := exec.Command(minisatPath, "-verb=0", inputTempFile.Name(), outputTempFile.Name())

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	// Exit-code of 10 stands for satisfiable and exit-code 20 stands for unsatisfiable
	err = cmd.Run()
	if cmd.ProcessState == nil {
		return nil, fmt.Errorf("cannot run minisat: %w", err)
	} else if err != nil && cmd.ProcessState.ExitCode() != 10 && cmd.ProcessState.ExitCode() != 20 {
		return nil, fmt.Errorf("an error occurred during minisat execution: %v : %v", err.Error(), stderr.String())
	} else if cmd.ProcessState.ExitCode() == 20 {
		return nil, nil
	}

	output, err := os.ReadFile(outputTempFile.Name())
	if err != nil {
		return nil, fmt.Errorf("failed to read output file: %w", err)
	}
	return parseMinisatSolution(string(output))
}

// Minisat's result file holds a status line ("SAT"/"UNSAT") followed by the zero-terminated assignment
func parseMinisatSolution(solverOutput string) (SATSolution, error) {
	lines := strings.SplitN(solverOutput, "\n", 2)
	if len(lines) < 2 || strings.TrimSpace(lines[0]) != "SAT" {
		return nil, fmt.Errorf("unexpected minisat output: %q", solverOutput)
	}

	solution := make(SATSolution, 0)
	for _, valueStr := range strings.Fields(lines[1]) {
		value, err := strconv.ParseInt(valueStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid literal in solver output: %w", err)
		}
		if value == 0 {
			break
		}
		solution = append(solution, value)
	}
	return solution, nil
}
