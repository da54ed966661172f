package allen

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	scenarios := map[string]Relation{
		"before":        Before,
		"met-by":        MetBy,
		"met_by":        MetBy,
		"metBy":         MetBy,
		"OverlappedBy":  OverlappedBy,
		" finished-by ": FinishedBy,
		"<":             Before,
		">":             After,
		"=":             Equals,
		"di":            Contains,
		"mi":            MetBy,
	}

	for value, expected := range scenarios {
		relation, err := Parse(value)
		require.NoError(t, err, value)
		assert.Equal(t, expected, relation, value)
	}

	_, err := Parse("sometimes")
	assert.Error(t, err)
}

func TestNamesRoundTrip(t *testing.T) {
	for _, relation := range All() {
		parsed, err := Parse(relation.String())
		require.NoError(t, err)
		assert.Equal(t, relation, parsed)

		parsed, err = Parse(relation.Symbol())
		require.NoError(t, err)
		assert.Equal(t, relation, parsed)
	}
}

func TestInverseIsInvolutive(t *testing.T) {
	g := NewWithT(t)

	for _, relation := range All() {
		g.Expect(relation.Inverse().Inverse()).To(Equal(relation))
	}
	g.Expect(Before.Inverse()).To(Equal(After))
	g.Expect(Meets.Inverse()).To(Equal(MetBy))
	g.Expect(During.Inverse()).To(Equal(Contains))
	g.Expect(Starts.Inverse()).To(Equal(StartedBy))
	g.Expect(Finishes.Inverse()).To(Equal(FinishedBy))
	g.Expect(Equals.Inverse()).To(Equal(Equals))
}

func TestBetween(t *testing.T) {
	b := Interval{2, 5}
	scenarios := []struct {
		a        Interval
		expected Relation
	}{
		{Interval{0, 1}, Before},
		{Interval{0, 2}, Meets},
		{Interval{0, 3}, Overlaps},
		{Interval{2, 3}, Starts},
		{Interval{3, 4}, During},
		{Interval{3, 5}, Finishes},
		{Interval{2, 5}, Equals},
		{Interval{1, 5}, FinishedBy},
		{Interval{1, 6}, Contains},
		{Interval{2, 6}, StartedBy},
		{Interval{3, 6}, OverlappedBy},
		{Interval{5, 6}, MetBy},
		{Interval{6, 7}, After},
	}

	for _, scenario := range scenarios {
		assert.Equal(t, scenario.expected, Between(scenario.a, b), "%v vs %v", scenario.a, b)
		assert.Equal(t, scenario.expected.Inverse(), Between(b, scenario.a), "%v vs %v", b, scenario.a)
	}
}

func TestCompose(t *testing.T) {
	g := NewWithT(t)

	g.Expect(Compose(Before, Before)).To(Equal(NewSet(Before)))
	g.Expect(Compose(Meets, Meets)).To(Equal(NewSet(Before)))
	g.Expect(Compose(Equals, Overlaps)).To(Equal(NewSet(Overlaps)))
	g.Expect(Compose(During, During)).To(Equal(NewSet(During)))
	g.Expect(Compose(Before, After)).To(Equal(Full))
	g.Expect(Compose(During, Contains)).To(Equal(Full))
	g.Expect(Compose(Overlaps, Overlaps)).To(Equal(NewSet(Before, Meets, Overlaps)))
	g.Expect(Compose(Starts, StartedBy)).To(Equal(NewSet(Starts, Equals, StartedBy)))
	g.Expect(Compose(Before, During)).To(Equal(NewSet(Before, Meets, Overlaps, Starts, During)))
}

func TestComposeIsNeverEmptyAndRespectsInverse(t *testing.T) {
	for _, r1 := range All() {
		for _, r2 := range All() {
			composed := Compose(r1, r2)
			assert.False(t, composed.Empty(), "%v ∘ %v", r1, r2)
			// (r1 ∘ r2)⁻¹ = r2⁻¹ ∘ r1⁻¹
			assert.Equal(t, composed.Inverse(), Compose(r2.Inverse(), r1.Inverse()), "%v ∘ %v", r1, r2)
		}
		assert.Equal(t, NewSet(r1), Compose(r1, Equals))
		assert.Equal(t, NewSet(r1), Compose(Equals, r1))
	}
}

func TestSet(t *testing.T) {
	set := NewSet(After, Before, Equals)

	assert.Equal(t, 3, set.Len())
	assert.True(t, set.Contains(Before))
	assert.False(t, set.Contains(Meets))
	assert.Equal(t, []Relation{Before, Equals, After}, set.Relations())
	assert.Equal(t, "{before, equals, after}", set.String())
	assert.Equal(t, set, set.Inverse())
	assert.Equal(t, NewSet(Before, Meets, Equals, After), set.Union(NewSet(Meets)))
	assert.Equal(t, NewSet(Equals), set.Intersect(NewSet(Equals, During)))
	assert.True(t, Set(0).Empty())
	assert.Equal(t, Relations, Full.Len())
	assert.Equal(t, set, set.Add(Relation(Relations)))
}
