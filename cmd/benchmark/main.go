package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/limaJavier/allensat/pkg/model"
	"github.com/limaJavier/allensat/pkg/sat"

	"github.com/samber/lo"
)

type SolverType int

const (
	gini SolverType = iota
	kissat
	minisat
)

type ResultType int

const (
	solved ResultType = iota
	unsatisfiable
	failed
)

var (
	solverTypes = map[SolverType]string{
		gini:    "gini",
		kissat:  "kissat",
		minisat: "minisat",
	}
	solverFactories = map[SolverType]func() sat.SATSolver{
		gini:    sat.NewGiniSolver,
		kissat:  sat.NewKissatSolver,
		minisat: sat.NewMinisatSolver,
	}
	resultTypes = map[ResultType]string{
		solved:        "solved",
		unsatisfiable: "unsatisfiable",
		failed:        "failed",
	}
)

type TestMetadata struct {
	Name      string
	Intervals uint64
	Density   float64
	Extra     int
	Pairs     int
	Seed      uint64
}

type BenchmarkResult struct {
	Solver    SolverType
	Test      TestMetadata
	Variables uint64
	Clauses   int
	Encoding  time.Duration
	Solving   time.Duration
	Result    ResultType
}

func main() {
	outPtr := flag.String("out", "benchmark_results.csv", "Path to the CSV file where the results will be written")
	seedPtr := flag.Uint64("seed", 1, "Seed used to draw the random networks")
	externalPtr := flag.Bool("external", false, "Also benchmark the external solvers (kissat, minisat) configured in config.json")
	configPtr := flag.String("config", "config.json", "Path to the config.json file holding the solvers' executables")
	flag.Parse()
	sat.ConfigPath = *configPtr

	solvers := []SolverType{gini}
	if *externalPtr {
		solvers = append(solvers, kissat, minisat)
	}

	tests := getTests(*seedPtr)
	results := make([]BenchmarkResult, 0, len(tests)*len(solvers))
	for _, test := range tests {
		input := model.RandomNetwork(rand.New(rand.NewPCG(test.Seed, test.Intervals)), test.Intervals, test.Density, test.Extra)

		for _, solver := range solvers {
			log.Printf("Benchmarking test \"%v\" with solver \"%v\"\n", test.Name, solverTypes[solver])
			results = append(results, measure(solver, test, input))
		}
	}

	file, err := os.Create(*outPtr)
	if err != nil {
		log.Fatalf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	if err := toCsv(file, results); err != nil {
		log.Fatalf("cannot write CSV file: %v", err)
	}
}

func getTests(seed uint64) []TestMetadata {
	sizes := []uint64{5, 10, 15, 20}
	densities := []float64{0.3, 0.6, 1}
	extras := []int{0, 2, 4}

	tests := make([]TestMetadata, 0, len(sizes)*len(densities)*len(extras))
	for _, size := range sizes {
		for _, density := range densities {
			for _, extra := range extras {
				tests = append(tests, TestMetadata{
					Name:      fmt.Sprintf("n%d-d%.1f-e%d", size, density, extra),
					Intervals: size,
					Density:   density,
					Extra:     extra,
					Seed:      seed,
				})
			}
		}
	}
	return tests
}

func measure(solverType SolverType, test TestMetadata, input model.ModelInput) BenchmarkResult {
	result := BenchmarkResult{Solver: solverType, Test: test}
	result.Test.Pairs = len(input.Relations)

	start := time.Now()
	encoding, err := model.Encode(input)
	result.Encoding = time.Since(start)
	if err != nil {
		log.Printf("an error occurred during the encoding of test \"%v\": %v", test.Name, err)
		result.Result = failed
		return result
	}
	result.Variables, result.Clauses = encoding.SAT.Variables, len(encoding.SAT.Clauses)

	start = time.Now()
	solution, err := solverFactories[solverType]().Solve(encoding.SAT)
	result.Solving = time.Since(start)

	switch {
	case err != nil:
		log.Printf("an error occurred while solving test \"%v\" with solver \"%v\": %v", test.Name, solverTypes[solverType], err)
		result.Result = failed
	case solution == nil:
		result.Result = unsatisfiable
	default:
		result.Result = solved
	}
	return result
}

func toCsv(writer io.Writer, results []BenchmarkResult) error {
	csvWriter := csv.NewWriter(writer)

	header := []string{"Solver", "Test", "Intervals", "Density", "Extra", "Pairs", "Variables", "Clauses", "Encoding(ms)", "Solving(ms)", "Result"}
	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}

	records := lo.Map(results, func(result BenchmarkResult, _ int) []string {
		return []string{
			solverTypes[result.Solver],
			result.Test.Name,
			fmt.Sprintf("%d", result.Test.Intervals),
			fmt.Sprintf("%.2f", result.Test.Density),
			fmt.Sprintf("%d", result.Test.Extra),
			fmt.Sprintf("%d", result.Test.Pairs),
			fmt.Sprintf("%d", result.Variables),
			fmt.Sprintf("%d", result.Clauses),
			fmt.Sprintf("%d", result.Encoding.Milliseconds()),
			fmt.Sprintf("%d", result.Solving.Milliseconds()),
			resultTypes[result.Result],
		}
	})
	if err := csvWriter.WriteAll(records); err != nil {
		return fmt.Errorf("cannot write CSV records: %w", err)
	}
	return nil
}
