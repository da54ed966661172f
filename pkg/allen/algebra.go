package allen

import "fmt"

// Interval is a concrete time interval with Start < End
type Interval struct {
	Start int
	End   int
}

func (interval Interval) Valid() bool {
	return interval.Start < interval.End
}

// Between returns the basic relation holding from interval a to interval b
func Between(a, b Interval) Relation {
	switch {
	case a.End < b.Start:
		return Before
	case a.End == b.Start:
		return Meets
	case a.Start == b.Start && a.End == b.End:
		return Equals
	case a.Start < b.Start && b.Start < a.End && a.End < b.End:
		return Overlaps
	case a.Start == b.Start && a.End < b.End:
		return Starts
	case a.Start > b.Start && a.End < b.End:
		return During
	case a.Start > b.Start && a.End == b.End:
		return Finishes
	}
	// Every remaining configuration is the inverse of one of the cases above
	return Between(b, a).Inverse()
}

// Highest endpoint (exclusive) used to enumerate configurations of three intervals: six distinct endpoints
// are enough to realize every ordering of them
const compositionEndpoints = 6

var composition = buildComposition()

func buildComposition() [Relations][Relations]Set {
	intervals := make([]Interval, 0)
	for start := range compositionEndpoints {
		for end := start + 1; end < compositionEndpoints; end++ {
			intervals = append(intervals, Interval{start, end})
		}
	}

	var table [Relations][Relations]Set
	for _, a := range intervals {
		for _, b := range intervals {
			first := Between(a, b)
			for _, c := range intervals {
				second := Between(b, c)
				table[first][second] = table[first][second].Add(Between(a, c))
			}
		}
	}
	return table
}

// Compose returns the relations admissible between a and c when first holds between a and b and second
// holds between b and c
func Compose(first, second Relation) Set {
	if !first.Valid() || !second.Valid() {
		panic(fmt.Sprintf("cannot compose invalid relations %v and %v", first, second))
	}
	return composition[first][second]
}

// ComposeSets lifts Compose to general relations
func ComposeSets(first, second Set) Set {
	var result Set
	for r1 := range first.All() {
		for r2 := range second.All() {
			result = result.Union(Compose(r1, r2))
		}
	}
	return result
}
