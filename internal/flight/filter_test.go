package flight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterRecords() []Flight {
	return []Flight{
		{ID: "a", Airline: Airline{Code: "AA", Name: "American Airlines"}, Price: Price{Amount: 100, Currency: "USD"}, TotalStops: 0, IsNonstop: true, DurationMinutes: 120},
		{ID: "b", Airline: Airline{Code: "BB", Name: "Blue Bird"}, Price: Price{Amount: 300, Currency: "USD"}, TotalStops: 2, DurationMinutes: 420},
	}
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestApplyFilters_NeutralCriteriaPassEverything(t *testing.T) {
	records := filterRecords()

	// fully neutral: zero value
	assert.Equal(t, records, ApplyFilters(records, FilterOptions{}))

	// explicitly neutral: any stops, empty airlines, nil maximums
	neutral := FilterOptions{Stops: StopsAny, Airlines: []string{}, PriceMax: nil, DurationMax: nil}
	assert.Equal(t, records, ApplyFilters(records, neutral))
}

func TestApplyFilters_Stops(t *testing.T) {
	records := filterRecords()

	nonstop := ApplyFilters(records, FilterOptions{Stops: StopsNonstop})
	require.Len(t, nonstop, 1)
	assert.Equal(t, "a", nonstop[0].ID)

	atMostOne := ApplyFilters(records, FilterOptions{Stops: StopsAtMostOne})
	require.Len(t, atMostOne, 1)
	assert.Equal(t, "a", atMostOne[0].ID)

	atMostTwo := ApplyFilters(records, FilterOptions{Stops: StopsAtMostTwo})
	assert.Len(t, atMostTwo, 2)

	// unknown values impose no constraint
	assert.Len(t, ApplyFilters(records, FilterOptions{Stops: "bogus"}), 2)
}

func TestApplyFilters_PriceMax(t *testing.T) {
	records := filterRecords()

	cheap := ApplyFilters(records, FilterOptions{PriceMax: floatPtr(150)})
	require.Len(t, cheap, 1)
	assert.Equal(t, "a", cheap[0].ID)
}

func TestApplyFilters_PriceMaxExcludesUnknownPrice(t *testing.T) {
	records := []Flight{
		{ID: "known", Price: Price{Amount: 80}},
		{ID: "unknown", Price: Price{Amount: 0}},
	}

	// without a cap the unknown price passes
	assert.Len(t, ApplyFilters(records, FilterOptions{}), 2)

	capped := ApplyFilters(records, FilterOptions{PriceMax: floatPtr(100)})
	require.Len(t, capped, 1)
	assert.Equal(t, "known", capped[0].ID)
}

func TestApplyFilters_DurationMax(t *testing.T) {
	records := filterRecords()

	short := ApplyFilters(records, FilterOptions{DurationMax: intPtr(180)})
	require.Len(t, short, 1)
	assert.Equal(t, "a", short[0].ID)
}

func TestApplyFilters_Airlines(t *testing.T) {
	records := filterRecords()

	only := ApplyFilters(records, FilterOptions{Airlines: []string{"BB"}})
	require.Len(t, only, 1)
	assert.Equal(t, "b", only[0].ID)

	// case-insensitive membership
	lower := ApplyFilters(records, FilterOptions{Airlines: []string{"bb"}})
	require.Len(t, lower, 1)
	assert.Equal(t, "b", lower[0].ID)

	none := ApplyFilters(records, FilterOptions{Airlines: []string{"ZZ"}})
	assert.Empty(t, none)
}

// An empty airline list means "no airline restriction", not "exclude all".
// The UI represents "user deselected everything" by omitting the constraint,
// so the engine must treat the empty list as neutral.
func TestApplyFilters_EmptyAirlineListIsUnconstrained(t *testing.T) {
	records := filterRecords()

	assert.Equal(t, records, ApplyFilters(records, FilterOptions{Airlines: []string{}}))
	assert.Equal(t, records, ApplyFilters(records, FilterOptions{Airlines: nil}))
}

func TestApplyFilters_CriteriaCombineWithAnd(t *testing.T) {
	records := filterRecords()

	// nonstop AND cheap: only "a" satisfies both
	got := ApplyFilters(records, FilterOptions{Stops: StopsNonstop, PriceMax: floatPtr(150)})
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)

	// nonstop AND airline BB: nothing satisfies both
	assert.Empty(t, ApplyFilters(records, FilterOptions{Stops: StopsNonstop, Airlines: []string{"BB"}}))
}

func TestApplyFilters_PreservesOrderAndIsIdempotent(t *testing.T) {
	records := []Flight{
		{ID: "1", Price: Price{Amount: 500}, TotalStops: 1, DurationMinutes: 100},
		{ID: "2", Price: Price{Amount: 100}, TotalStops: 0, DurationMinutes: 200},
		{ID: "3", Price: Price{Amount: 300}, TotalStops: 0, DurationMinutes: 300},
	}
	criteria := FilterOptions{Stops: StopsAtMostOne, PriceMax: floatPtr(400)}

	once := ApplyFilters(records, criteria)
	require.Equal(t, []string{"2", "3"}, []string{once[0].ID, once[1].ID})

	twice := ApplyFilters(once, criteria)
	assert.Equal(t, once, twice)
}

func TestApplyFilters_DoesNotMutateInput(t *testing.T) {
	records := filterRecords()

	ApplyFilters(records, FilterOptions{Stops: StopsNonstop})

	assert.Equal(t, filterRecords(), records)
}
