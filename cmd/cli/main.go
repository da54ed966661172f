package main

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/limaJavier/allensat/pkg/allen"
	"github.com/limaJavier/allensat/pkg/model"
	"github.com/limaJavier/allensat/pkg/sat"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var (
	filePath    string
	inputFormat string
	outFilePath string
	solverName  string
	configPath  string

	validFormats = []string{"json", "yaml"}
	solvers      = map[string]func() sat.SATSolver{
		"gini":    sat.NewGiniSolver,
		"kissat":  sat.NewKissatSolver,
		"minisat": sat.NewMinisatSolver,
	}
)

var rootCmd = &cobra.Command{
	Use:   "allensat",
	Short: "Translate Allen interval networks into SAT",
	Long: `allensat reads a network of time intervals related by Allen's Interval Algebra and translates it
into CNF using the expression reference encoding. The CNF can be written in DIMACS format or solved to obtain
a consistent scenario.`,
	SilenceUsage: true,
}

var clausesCmd = &cobra.Command{
	Use:   "clauses",
	Short: "Print the expression reference clauses of the network, one per line",
	Run: func(cmd *cobra.Command, args []string) {
		input := loadInput()

		clauses, err := model.GenerateExpressionReference(input)
		if err != nil {
			log.Fatalf("cannot generate clauses: %v", err)
		}

		withOutput(func(writer io.Writer) error {
			for clause, err := range clauses {
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintln(writer, clause); err != nil {
					return err
				}
			}
			return nil
		})
	},
}

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Write the CNF encoding of the network in DIMACS format",
	Run: func(cmd *cobra.Command, args []string) {
		input := loadInput()

		encoding, err := model.Encode(input)
		if err != nil {
			log.Fatalf("an error occurred during encoding: %v", err)
		}

		withOutput(encoding.SAT.WriteDIMACS)
		log.Printf("Variables: %v (auxiliary: %v)", encoding.SAT.Variables, encoding.Expressions())
		log.Printf("Clauses: %v", len(encoding.SAT.Clauses))
	},
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Find a consistent scenario of the network",
	PreRun: func(cmd *cobra.Command, args []string) {
		if _, ok := solvers[solverName]; !ok {
			log.Fatalf("%v is not a valid solver, allowed values are: %v", solverName, strings.Join(validSolvers(), ", "))
		}
		if configPath != "" {
			sat.ConfigPath = configPath
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		input := loadInput()

		reasoner := model.NewExpressionReferenceReasoner(solvers[solverName]())
		scenario, variables, clauses, err := reasoner.Build(input)
		if err != nil {
			log.Fatalf("an error occurred during scenario construction: %v", err)
		}
		log.Printf("Variables: %v", variables)
		log.Printf("Clauses: %v", clauses)

		if scenario == nil {
			fmt.Println("Not satisfiable")
			os.Exit(20)
		}

		// Verify scenario correctness
		if !reasoner.Verify(scenario, input) {
			log.Print("Verification failed")
			os.Exit(15)
		}

		// Marshal output into json
		scenarioJson, err := json.Marshal(scenarioOutput(scenario))
		if err != nil {
			log.Fatalf("an error occurred while building output json: %v", err)
		}

		withOutput(func(writer io.Writer) error {
			_, err := fmt.Fprintln(writer, string(scenarioJson))
			return err
		})
		os.Exit(10)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&filePath, "file", "f", "", "Path to the input network")
	rootCmd.PersistentFlags().StringVar(&inputFormat, "format", "", "Input format: \"json\" or \"yaml\"; inferred from the file extension if empty")
	rootCmd.PersistentFlags().StringVarP(&outFilePath, "out", "o", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	rootCmd.MarkPersistentFlagRequired("file")

	solveCmd.Flags().StringVarP(&solverName, "solver", "s", "gini", "SAT-Solver to use: \"gini\" (in-process), \"kissat\" or \"minisat\"")
	solveCmd.Flags().StringVar(&configPath, "config", "", "Path to the config.json file holding the solvers' executables")

	rootCmd.AddCommand(clausesCmd, encodeCmd, solveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}

func validSolvers() []string {
	names := lo.Keys(solvers)
	slices.Sort(names)
	return names
}

func loadInput() model.ModelInput {
	format := strings.ToLower(inputFormat)
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(filePath)), ".")
		if format == "yml" {
			format = "yaml"
		}
	}
	if !slices.Contains(validFormats, format) {
		log.Fatalf("%v is not a valid input format", format)
	}

	var input model.ModelInput
	var err error
	if format == "yaml" {
		input, err = model.InputFromYaml(filePath)
	} else {
		input, err = model.InputFromJson(filePath)
	}
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}
	return input
}

// Writes to the output file or, if none was given, to the Standard Output
func withOutput(write func(io.Writer) error) {
	if outFilePath == "" {
		if err := write(os.Stdout); err != nil {
			log.Fatalf("an error occurred while writing the output: %v", err)
		}
		return
	}

	file, err := os.Create(outFilePath)
	if err != nil {
		log.Fatalf("cannot create output file: %v", err)
	}
	if err := write(file); err != nil {
		file.Close()
		log.Fatalf("an error occurred while writing to the output file: %v", err)
	}
	if err := file.Close(); err != nil {
		log.Fatalf("an error occurred while writing to the output file: %v", err)
	}
}

type relationOutput struct {
	From     uint64 `json:"from"`
	To       uint64 `json:"to"`
	Relation string `json:"relation"`
}

func scenarioOutput(scenario model.Scenario) []relationOutput {
	output := lo.MapToSlice(scenario, func(pair [2]uint64, relation allen.Relation) relationOutput {
		return relationOutput{From: pair[0], To: pair[1], Relation: relation.String()}
	})
	slices.SortFunc(output, func(a, b relationOutput) int {
		if a.From != b.From {
			return cmp.Compare(a.From, b.From)
		}
		return cmp.Compare(a.To, b.To)
	})
	return output
}
