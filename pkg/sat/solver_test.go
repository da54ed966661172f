package sat

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGini(t *testing.T) {
	solver := NewGiniSolver()
	t.Run("Satisfiable instances", func(t *testing.T) {
		satisfiableExecution(t, solver)
	})
	t.Run("Unsatisfiable instances", func(t *testing.T) {
		unsatisfiableExecution(t, solver)
	})
	t.Run("Random instances", func(t *testing.T) {
		randomExecution(t, solver)
	})
	t.Run("Out of range literal", func(t *testing.T) {
		_, err := solver.Solve(SAT{Variables: 1, Clauses: [][]int64{{1, -2}}})
		assert.Error(t, err)
	})
}

func TestKissat(t *testing.T) {
	requireExecutable(t, "kissatPath")
	solver := NewKissatSolver()
	t.Run("Satisfiable instances", func(t *testing.T) {
		satisfiableExecution(t, solver)
	})
	t.Run("Unsatisfiable instances", func(t *testing.T) {
		unsatisfiableExecution(t, solver)
	})
}

func TestMinisat(t *testing.T) {
	requireExecutable(t, "minisatPath")
	solver := NewMinisatSolver()
	t.Run("Satisfiable instances", func(t *testing.T) {
		satisfiableExecution(t, solver)
	})
	t.Run("Unsatisfiable instances", func(t *testing.T) {
		unsatisfiableExecution(t, solver)
	})
}

func TestToDIMACS(t *testing.T) {
	//** Arrange
	instance := SAT{
		Variables: 3,
		Clauses:   [][]int64{{1, -2}, {2, 3}, {-1}},
	}

	//** Act
	dimacs := instance.ToDIMACS()
	parsed, err := parseDIMACS(strings.NewReader(dimacs))

	//** Assert
	require.NoError(t, err)
	assert.Equal(t, "p cnf 3 3\n1 -2 0\n2 3 0\n-1 0\n", dimacs)
	assert.Equal(t, instance, parsed)
}

func TestSatisfies(t *testing.T) {
	instance := SAT{Variables: 2, Clauses: [][]int64{{1, 2}, {-1}}}

	assert.True(t, instance.Satisfies(SATSolution{-1, 2}))
	assert.False(t, instance.Satisfies(SATSolution{1, 2}))
	assert.False(t, instance.Satisfies(SATSolution{-1, -2}))
	assert.False(t, instance.Satisfies(SATSolution{-1, 2, -2}))
}

func TestParseSolution(t *testing.T) {
	output := "c comment\ns SATISFIABLE\nv 1 -2 3\nv -4 5 0\n"

	solution, err := ParseSolution(output)

	require.NoError(t, err)
	assert.Equal(t, SATSolution{1, -2, 3, -4, 5}, solution)

	_, err = ParseSolution("v 1 x 0\n")
	assert.Error(t, err)
}

func TestParseMinisatSolution(t *testing.T) {
	solution, err := parseMinisatSolution("SAT\n-1 2 -3 0\n")
	require.NoError(t, err)
	assert.Equal(t, SATSolution{-1, 2, -3}, solution)

	_, err = parseMinisatSolution("UNSAT\n")
	assert.Error(t, err)
}

func TestGetExecutablePath(t *testing.T) {
	//** Arrange
	previous := ConfigPath
	t.Cleanup(func() { ConfigPath = previous })
	ConfigPath = filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(ConfigPath, []byte(`{"kissatPath": "/opt/kissat"}`), 0666))

	//** Act
	path, err := getExecutablePath("kissatPath")
	_, missingErr := getExecutablePath("minisatPath")

	//** Assert
	require.NoError(t, err)
	assert.Equal(t, "/opt/kissat", path)
	assert.Error(t, missingErr)
}

var satisfiableInstances = []SAT{
	{Variables: 1, Clauses: [][]int64{{1}}},
	{Variables: 3, Clauses: [][]int64{{1, 2}, {-1, 3}, {-3, -2}, {2, 3}}},
	{Variables: 4, Clauses: [][]int64{{1, -2, 4}, {-1}, {2}, {-4, 3}}},
	{Variables: 5, Clauses: [][]int64{{1}}}, // Variables that never appear in a clause
}

var unsatisfiableInstances = []SAT{
	{Variables: 1, Clauses: [][]int64{{1}, {-1}}},
	{Variables: 2, Clauses: [][]int64{{1, 2}, {-1, 2}, {1, -2}, {-1, -2}}},
}

func satisfiableExecution(t *testing.T, solver SATSolver) {
	for _, instance := range satisfiableInstances {
		//** Act
		solution, err := solver.Solve(instance)

		//** Assert
		require.NoError(t, err)
		require.NotNil(t, solution)
		assert.True(t, instance.Satisfies(solution), "instance %v, solution %v", instance, solution)
	}
}

func unsatisfiableExecution(t *testing.T, solver SATSolver) {
	for _, instance := range unsatisfiableInstances {
		solution, err := solver.Solve(instance)

		require.NoError(t, err)
		assert.Nil(t, solution)
	}
}

func randomExecution(t *testing.T, solver SATSolver) {
	for range 20 {
		//** Arrange
		instance := generateSATInstance(uint64(rand.IntN(15)+1), rand.IntN(40)+1)

		//** Act
		solution, err := solver.Solve(instance)

		//** Assert
		require.NoError(t, err)
		if solution != nil {
			assert.True(t, instance.Satisfies(solution))
			assert.Len(t, solution, int(instance.Variables))
		} else {
			assert.False(t, bruteForceSatisfiable(instance))
		}
	}
}

func requireExecutable(t *testing.T, key string) {
	path, err := getExecutablePath(key)
	if err != nil {
		t.Skipf("solver not configured: %v", err)
	}
	if _, err := exec.LookPath(path); err != nil {
		t.Skipf("solver executable not found: %v", err)
	}
}

func generateSATInstance(literals uint64, clauses int) SAT {
	satInstance := SAT{
		Variables: literals,
		Clauses:   make([][]int64, clauses),
	}

	for i := range clauses {
		satInstance.Clauses[i] = make([]int64, 0, literals)
		for j := range literals {
			if rand.Float32() < 0.3 {
				var sign int64 = 1
				if rand.Float32() < 0.5 {
					sign = -1
				}
				satInstance.Clauses[i] = append(satInstance.Clauses[i], sign*(1+int64(j)))
			}
		}

		if len(satInstance.Clauses[i]) == 0 {
			var sign int64 = 1
			if rand.Float32() < 0.5 {
				sign = -1
			}
			satInstance.Clauses[i] = append(satInstance.Clauses[i], sign*(1+rand.Int64N(int64(literals))))
		}
	}

	return satInstance
}

func bruteForceSatisfiable(instance SAT) bool {
	for assignment := range uint64(1) << instance.Variables {
		solution := make(SATSolution, 0, instance.Variables)
		for variable := range instance.Variables {
			if assignment&(1<<variable) != 0 {
				solution = append(solution, int64(variable+1))
			} else {
				solution = append(solution, -int64(variable+1))
			}
		}
		if instance.Satisfies(solution) {
			return true
		}
	}
	return false
}

func parseDIMACS(reader io.Reader) (SAT, error) {
	var sat SAT
	scanner := bufio.NewScanner(reader)

	for scanner.Scan() {
		line := scanner.Text()
		// Skip comments
		if strings.HasPrefix(line, "c") {
			continue
		}
		// Problem line
		if strings.HasPrefix(line, "p cnf") {
			parts := strings.Fields(line)
			if len(parts) != 4 {
				return SAT{}, fmt.Errorf("invalid problem line: %s", line)
			}
			vars, err := strconv.ParseUint(parts[2], 10, 64)
			if err != nil {
				return SAT{}, fmt.Errorf("invalid variable count: %w", err)
			}
			sat.Variables = vars
			continue
		}
		// Clause line
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		var clause []int64
		for _, litStr := range fields {
			lit, err := strconv.ParseInt(litStr, 10, 64)
			if err != nil {
				return SAT{}, fmt.Errorf("invalid literal '%s': %w", litStr, err)
			}
			if lit == 0 {
				break
			}
			clause = append(clause, lit)
		}
		if len(clause) > 0 {
			sat.Clauses = append(sat.Clauses, clause)
		}
	}

	return sat, scanner.Err()
}
