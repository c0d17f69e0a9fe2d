package systm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []LibraryItem {
	return []LibraryItem{
		{
			ContentID: "c-hammer", Name: "The Hammer", Sport: "Cycling",
			Channel: "The Sufferfest", Category: "Climbing", Level: "Advanced",
			Intensity: "High", Duration: 3600,
			Metrics: Metrics{TSS: 95, Ratings: Ratings{NM: 2, AC: 3, MAP: 5, FTP: 4}},
		},
		{
			ContentID: "c-primers", Name: "Primers", Sport: "Cycling",
			Channel: "The Sufferfest", Category: "Speed", Level: "Intermediate",
			Intensity: "Low", Duration: 3000,
			Metrics: Metrics{TSS: 45, Ratings: Ratings{NM: 4, AC: 3, MAP: 2, FTP: 1}},
		},
		{
			ContentID: "c-norecord", Name: "Recharger", Sport: "Cycling",
			Channel: "NoVid", Level: "Basic", Intensity: "Low", Duration: 1800,
			// no metrics on the wire; normalized to zeros
			Metrics: Metrics{},
		},
		{
			ContentID: "c-prorides", Name: "Col du Galibier", Sport: "Cycling",
			Channel: "ProRides", Category: "Climbing", Level: "Advanced",
			Intensity: "High", Duration: 5400,
			Metrics: Metrics{TSS: 130, Ratings: Ratings{NM: 1, AC: 2, MAP: 4, FTP: 5}},
		},
		{
			ContentID: "c-yoga", Name: "Hip Openers", Sport: "Yoga",
			Level: "Basic", Duration: 1200,
			Metrics: Metrics{},
		},
	}
}

func TestQueryLibrary_NilFilterReturnsAll(t *testing.T) {
	catalog := testCatalog()
	result := queryLibrary(catalog, nil, modeLibrary)
	assert.Len(t, result, len(catalog))
}

func TestQueryLibrary_DurationAndTSSSortAscending(t *testing.T) {
	maxDuration := 60
	result := queryLibrary(testCatalog(), &LibraryFilter{
		Sport:       "cycling",
		MaxDuration: &maxDuration,
		SortBy:      "tss",
	}, modeLibrary)

	// ProRides ride is 90 min, out; yoga is not cycling.
	require.Len(t, result, 3)
	assert.Equal(t, "Recharger", result[0].Name) // tss 0
	assert.Equal(t, "Primers", result[1].Name)   // tss 45
	assert.Equal(t, "The Hammer", result[2].Name)
}

func TestQueryLibrary_DurationBoundsInclusive(t *testing.T) {
	// The Hammer is exactly 60 minutes; both bounds include it.
	sixty := 60
	result := queryLibrary(testCatalog(), &LibraryFilter{MinDuration: &sixty, MaxDuration: &sixty}, modeLibrary)
	require.Len(t, result, 1)
	assert.Equal(t, "The Hammer", result[0].Name)
}

func TestQueryLibrary_ImpossibleFilterYieldsEmpty(t *testing.T) {
	minTSS := 1000
	result := queryLibrary(testCatalog(), &LibraryFilter{MinTSS: &minTSS}, modeLibrary)
	assert.Empty(t, result)
}

func TestQueryLibrary_MissingTSSBehavesAsZero(t *testing.T) {
	minTSS := 1
	result := queryLibrary(testCatalog(), &LibraryFilter{Sport: "Cycling", MinTSS: &minTSS}, modeLibrary)
	for _, item := range result {
		assert.NotEqual(t, "Recharger", item.Name)
	}

	maxTSS := 50
	result = queryLibrary(testCatalog(), &LibraryFilter{Sport: "Cycling", MaxTSS: &maxTSS}, modeLibrary)
	names := itemNames(result)
	assert.Contains(t, names, "Recharger")
	assert.Contains(t, names, "Primers")
	assert.NotContains(t, names, "The Hammer")
}

func TestQueryLibrary_FourDPFocus(t *testing.T) {
	result := queryLibrary(testCatalog(), &LibraryFilter{FourDPFocus: "FTP"}, modeCycling)
	names := itemNames(result)

	// rating 4 and 5 are in, 1 is out, missing ratings (0) are out
	assert.Contains(t, names, "The Hammer")
	assert.Contains(t, names, "Col du Galibier")
	assert.NotContains(t, names, "Primers")
	assert.NotContains(t, names, "Recharger")

	// focus is case-insensitive
	lower := queryLibrary(testCatalog(), &LibraryFilter{FourDPFocus: "ftp"}, modeCycling)
	assert.Equal(t, itemNames(result), itemNames(lower))

	// ignored on the generic library path
	generic := queryLibrary(testCatalog(), &LibraryFilter{FourDPFocus: "FTP"}, modeLibrary)
	assert.Len(t, generic, len(testCatalog()))
}

func TestQueryLibrary_ChannelMatching(t *testing.T) {
	// cycling mode matches channels by substring
	result := queryLibrary(testCatalog(), &LibraryFilter{Channel: "sufferfest"}, modeCycling)
	require.Len(t, result, 2)

	// the generic path wants the exact name
	result = queryLibrary(testCatalog(), &LibraryFilter{Channel: "sufferfest"}, modeLibrary)
	assert.Empty(t, result)
	result = queryLibrary(testCatalog(), &LibraryFilter{Channel: "the sufferfest"}, modeLibrary)
	assert.Len(t, result, 2)
}

func TestQueryLibrary_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	result := queryLibrary(testCatalog(), &LibraryFilter{Search: "hammer"}, modeLibrary)
	require.Len(t, result, 1)
	assert.Equal(t, "The Hammer", result[0].Name)
}

func TestQueryLibrary_SortDurationDescending(t *testing.T) {
	result := queryLibrary(testCatalog(), &LibraryFilter{SortBy: "duration", SortDirection: "desc"}, modeLibrary)
	require.NotEmpty(t, result)
	for i := 1; i < len(result); i++ {
		assert.GreaterOrEqual(t, result[i-1].Duration, result[i].Duration)
	}
}

func TestQueryLibrary_SortIsStable(t *testing.T) {
	catalog := []LibraryItem{
		{ContentID: "a", Name: "Alpha", Duration: 1800},
		{ContentID: "b", Name: "Bravo", Duration: 1800},
		{ContentID: "c", Name: "Charlie", Duration: 1800},
	}
	result := queryLibrary(catalog, &LibraryFilter{SortBy: "duration"}, modeLibrary)
	require.Len(t, result, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{result[0].ContentID, result[1].ContentID, result[2].ContentID})
}

func TestQueryLibrary_Deterministic(t *testing.T) {
	filter := &LibraryFilter{Sport: "Cycling", SortBy: "tss", SortDirection: "desc"}
	first := queryLibrary(testCatalog(), filter, modeLibrary)
	second := queryLibrary(testCatalog(), filter, modeLibrary)
	assert.Equal(t, itemNames(first), itemNames(second))
}

func TestQueryLibrary_LevelSort(t *testing.T) {
	result := queryLibrary(testCatalog(), &LibraryFilter{SortBy: "level"}, modeLibrary)
	require.Len(t, result, len(testCatalog()))
	// basic (1) before intermediate (2) before advanced (3)
	assert.Equal(t, "Basic", result[0].Level)
	assert.Equal(t, "Basic", result[1].Level)
	assert.Equal(t, "Intermediate", result[2].Level)
	assert.Equal(t, "Advanced", result[3].Level)
	assert.Equal(t, "Advanced", result[4].Level)

	// unknown levels order before known ones
	withUnknown := []LibraryItem{
		{ContentID: "x", Level: "Intermediate"},
		{ContentID: "y", Level: "Mystery"},
	}
	sorted := queryLibrary(withUnknown, &LibraryFilter{SortBy: "level"}, modeLibrary)
	assert.Equal(t, "y", sorted[0].ContentID)

	// cycling search leaves the order untouched for level sort
	cycling := queryLibrary(testCatalog(), &LibraryFilter{SortBy: "level"}, modeCycling)
	assert.Equal(t, itemNames(testCatalog()), itemNames(cycling))
}

func TestQueryLibrary_LimitAppliedAfterSort(t *testing.T) {
	result := queryLibrary(testCatalog(), &LibraryFilter{SortBy: "duration", SortDirection: "desc", Limit: 2}, modeLibrary)
	require.Len(t, result, 2)
	// the two longest, not the first two of the unsorted set
	assert.Equal(t, "Col du Galibier", result[0].Name)
	assert.Equal(t, "The Hammer", result[1].Name)

	// limit larger than the result set is a no-op
	result = queryLibrary(testCatalog(), &LibraryFilter{Limit: 100}, modeLibrary)
	assert.Len(t, result, len(testCatalog()))
}

func TestQueryLibrary_UnknownSortKeyLeavesOrder(t *testing.T) {
	result := queryLibrary(testCatalog(), &LibraryFilter{SortBy: "nonsense"}, modeLibrary)
	assert.Equal(t, itemNames(testCatalog()), itemNames(result))
}

func itemNames(items []LibraryItem) []string {
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	return names
}
