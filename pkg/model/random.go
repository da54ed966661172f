package model

import (
	"math/rand/v2"

	"github.com/limaJavier/allensat/pkg/allen"
)

// RandomNetwork draws concrete intervals and relates a random subset of pairs (each with probability density)
// with their true relation widened by up to extra random relations. The resulting network is always consistent
func RandomNetwork(rng *rand.Rand, intervals uint64, density float64, extra int) ModelInput {
	concrete := make([]allen.Interval, intervals)
	for i := range concrete {
		start := rng.IntN(4 * int(intervals+1))
		concrete[i] = allen.Interval{Start: start, End: start + 1 + rng.IntN(2*int(intervals+1))}
	}

	relations := make(IntervalRelations)
	for i := range intervals {
		for j := i + 1; j < intervals; j++ {
			if rng.Float64() >= density {
				continue
			}
			set := allen.NewSet(allen.Between(concrete[i], concrete[j]))
			for range extra {
				set = set.Add(allen.Relation(rng.IntN(allen.Relations)))
			}
			relations[[2]uint64{i, j}] = set
		}
	}

	return ModelInput{
		Group:                TimeIntervalsGroup{TotalTimeIntervals: intervals},
		Relations:            relations,
		TernaryConstraints:   DefaultTernaryConstraints(),
		InverseRelationships: DefaultInverseRelationships(),
	}
}
