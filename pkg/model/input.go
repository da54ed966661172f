package model

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/limaJavier/allensat/pkg/allen"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

type RawRelation struct {
	From      uint64
	To        uint64
	Relations []string
}

type RawTernaryConstraint struct {
	First  string
	Second string
	Result []string
}

type RawInverseRelationship struct {
	Relation string
	Inverse  string
}

type RawModelInput struct {
	TotalTimeIntervals   uint64
	Relations            []RawRelation
	TernaryConstraints   []RawTernaryConstraint
	InverseRelationships []RawInverseRelationship
}

type ModelInput struct {
	Group                TimeIntervalsGroup
	Relations            IntervalRelations
	TernaryConstraints   TernaryConstraints
	InverseRelationships InverseRelationships
}

func InputFromJson(file string) (ModelInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return ModelInput{}, err
	}
	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return ModelInput{}, err
	}
	return decodeInput(inputJson)
}

func InputFromYaml(file string) (ModelInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return ModelInput{}, err
	}
	var inputYaml map[string]any
	if err := yaml.Unmarshal(bytes, &inputYaml); err != nil {
		return ModelInput{}, err
	}
	return decodeInput(inputYaml)
}

func decodeInput(document map[string]any) (ModelInput, error) {
	var rawInput RawModelInput
	if err := mapstructure.Decode(document, &rawInput); err != nil {
		return ModelInput{}, fmt.Errorf("cannot decode input: %w", err)
	}
	return ProcessRawInput(rawInput)
}

// ProcessRawInput validates the raw input and resolves relation names. Tables that are not present in the raw
// input default to the ones of Allen's Interval Algebra
func ProcessRawInput(rawInput RawModelInput) (ModelInput, error) {
	input := ModelInput{
		Group:     TimeIntervalsGroup{TotalTimeIntervals: rawInput.TotalTimeIntervals},
		Relations: make(IntervalRelations, len(rawInput.Relations)),
	}

	//** Manage interval relations
	for _, rawRelation := range rawInput.Relations {
		from, to := rawRelation.From, rawRelation.To
		if from >= rawInput.TotalTimeIntervals || to >= rawInput.TotalTimeIntervals {
			return ModelInput{}, fmt.Errorf("relation between intervals %v and %v is out of range: there are %v intervals", from, to, rawInput.TotalTimeIntervals)
		} else if from == to {
			return ModelInput{}, fmt.Errorf("interval %v cannot be related to itself", from)
		}

		key := [2]uint64{from, to}
		// Make sure that there can only be one declaration for each ordered pair
		if _, ok := input.Relations[key]; ok {
			return ModelInput{}, fmt.Errorf("duplicate relation declaration for intervals %v and %v", from, to)
		}

		set, err := parseSet(rawRelation.Relations)
		if err != nil {
			return ModelInput{}, fmt.Errorf("invalid relation between intervals %v and %v: %w", from, to, err)
		} else if set.Empty() {
			return ModelInput{}, fmt.Errorf("relation between intervals %v and %v must allow at least one relation", from, to)
		}
		input.Relations[key] = set
	}

	//** Manage ternary constraints
	if len(rawInput.TernaryConstraints) == 0 {
		input.TernaryConstraints = DefaultTernaryConstraints()
	} else {
		input.TernaryConstraints = make(TernaryConstraints, len(rawInput.TernaryConstraints))
		for _, rawConstraint := range rawInput.TernaryConstraints {
			first, err := allen.Parse(rawConstraint.First)
			if err != nil {
				return ModelInput{}, fmt.Errorf("invalid ternary constraint: %w", err)
			}
			second, err := allen.Parse(rawConstraint.Second)
			if err != nil {
				return ModelInput{}, fmt.Errorf("invalid ternary constraint: %w", err)
			}

			key := [2]allen.Relation{first, second}
			if _, ok := input.TernaryConstraints[key]; ok {
				return ModelInput{}, fmt.Errorf("duplicate ternary constraint for (\"%v\", \"%v\")", first, second)
			}

			result, err := parseSet(rawConstraint.Result)
			if err != nil {
				return ModelInput{}, fmt.Errorf("invalid ternary constraint for (\"%v\", \"%v\"): %w", first, second, err)
			}
			input.TernaryConstraints[key] = result
		}
	}

	//** Manage inverse relationships
	if len(rawInput.InverseRelationships) == 0 {
		input.InverseRelationships = DefaultInverseRelationships()
	} else {
		input.InverseRelationships = make(InverseRelationships, len(rawInput.InverseRelationships))
		for _, rawInverse := range rawInput.InverseRelationships {
			relation, err := allen.Parse(rawInverse.Relation)
			if err != nil {
				return ModelInput{}, fmt.Errorf("invalid inverse relationship: %w", err)
			}
			inverse, err := allen.Parse(rawInverse.Inverse)
			if err != nil {
				return ModelInput{}, fmt.Errorf("invalid inverse relationship: %w", err)
			}

			if _, ok := input.InverseRelationships[relation]; ok {
				return ModelInput{}, fmt.Errorf("duplicate inverse relationship for \"%v\"", relation)
			}
			input.InverseRelationships[relation] = inverse
		}
	}

	return input, nil
}

func parseSet(names []string) (allen.Set, error) {
	var set allen.Set
	for _, name := range lo.Uniq(names) {
		relation, err := allen.Parse(name)
		if err != nil {
			return 0, err
		}
		set = set.Add(relation)
	}
	return set, nil
}
