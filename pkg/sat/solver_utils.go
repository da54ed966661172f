package sat

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// ConfigPath points to a JSON file mapping solver keys (e.g. "kissatPath") to executables
var ConfigPath = "config.json"

// ParseSolution extracts the assignment from the "v" lines of a solver's output (SAT-competition format)
func ParseSolution(solverOutput string) (SATSolution, error) {
	values := lo.Reduce(
		lo.Filter(strings.Split(solverOutput, "\n"), func(line string, _ int) bool {
			return len(line) > 0 && line[0] == 'v'
		}),
		func(values []string, line string, _ int) []string {
			return append(values, strings.Fields(line[1:])...)
		},
		[]string{},
	)

	solution := make(SATSolution, 0, len(values))
	for _, valueStr := range values {
		value, err := strconv.ParseInt(valueStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid literal in solver output: %w", err)
		}
		if value == 0 { // Terminator
			break
		}
		solution = append(solution, value)
	}
	return solution, nil
}

func getExecutablePath(solver string) (string, error) {
	bytes, err := os.ReadFile(ConfigPath)
	if err != nil {
		return "", fmt.Errorf("cannot read solver config: %w", err)
	}
	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return "", fmt.Errorf("cannot parse solver config: %w", err)
	}

	var config map[string]string
	if err := mapstructure.Decode(inputJson, &config); err != nil {
		return "", fmt.Errorf("cannot decode solver config: %w", err)
	}

	path, ok := config[solver]
	if !ok {
		return "", fmt.Errorf("solver \"%v\" is not present in config", solver)
	}
	return path, nil
}
