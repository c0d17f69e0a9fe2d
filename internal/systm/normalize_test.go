package systm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNormalizeMetrics_MissingBlockIsAllZero(t *testing.T) {
	m := normalizeMetrics(nil)
	assert.Equal(t, Metrics{}, m)
	assert.Equal(t, 0, m.TSS)
	assert.Equal(t, Ratings{}, m.Ratings)
}

func TestNormalizeMetrics_PartialRatings(t *testing.T) {
	tss := 80
	nm := 3
	m := normalizeMetrics(&metricsRaw{
		TSS:     &tss,
		Ratings: &ratingsRaw{NM: &nm},
	})
	assert.Equal(t, 80, m.TSS)
	assert.Equal(t, Ratings{NM: 3}, m.Ratings)
}

func TestNormalizeLibraryItem_Defaults(t *testing.T) {
	item := normalizeLibraryItem(&libraryContentRaw{
		ID:   "abc",
		Name: "Some Workout",
	})
	assert.Equal(t, "abc", item.ContentID)
	assert.Equal(t, "Some Workout", item.Name)
	assert.Equal(t, "", item.Channel)
	assert.Equal(t, 0, item.Duration)
	require.NotNil(t, item.Tags)
	assert.Empty(t, item.Tags)
	require.NotNil(t, item.Descriptions)
	assert.Empty(t, item.Descriptions)
	assert.Equal(t, Metrics{}, item.Metrics)
}

func TestNormalizeLibraryItem_ChannelIDMapsToName(t *testing.T) {
	item := normalizeLibraryItem(&libraryContentRaw{
		ID:      "abc",
		Name:    "GCN Special",
		Channel: strPtr("zG7zYnMbH9"),
	})
	assert.Equal(t, "ProRides", item.Channel)

	// unknown channel ids pass through untouched
	item = normalizeLibraryItem(&libraryContentRaw{
		ID:      "abc",
		Name:    "Mystery",
		Channel: strPtr("something-else"),
	})
	assert.Equal(t, "something-else", item.Channel)
}

func TestNormalizeWorkout(t *testing.T) {
	duration := 3600
	w := normalizeWorkout(&workoutRaw{
		ID:              "w1",
		Name:            "Nine Hammers",
		Sport:           strPtr("Cycling"),
		Level:           strPtr("Advanced"),
		DurationSeconds: &duration,
		Triggers:        strPtr(`[{"time":0,"value":0.5,"type":"ftp"}]`),
	})
	assert.Equal(t, "w1", w.ID)
	assert.Equal(t, "Cycling", w.Sport)
	assert.Equal(t, 3600, w.DurationSeconds)
	require.NotNil(t, w.Equipment)
	assert.Empty(t, w.Equipment)

	triggers := w.GraphTriggers()
	require.Len(t, triggers, 1)
	assert.Equal(t, 0.5, triggers[0].Value)
	assert.Equal(t, "ftp", triggers[0].Type)
}

func TestGraphTriggers_ColumnarFormat(t *testing.T) {
	w := Workout{Triggers: `{"time":[0,60,120],"value":[0.5,1.2,0.8],"type":["ftp","map","ftp"]}`}
	triggers := w.GraphTriggers()
	require.Len(t, triggers, 3)
	assert.Equal(t, GraphTrigger{Time: 60, Value: 1.2, Type: "map"}, triggers[1])
}

func TestGraphTriggers_BadPayloadMeansNoData(t *testing.T) {
	assert.Nil(t, (&Workout{}).GraphTriggers())
	assert.Nil(t, (&Workout{Triggers: "not json"}).GraphTriggers())
	assert.Nil(t, (&Workout{Triggers: `{"time":[],"value":[],"type":[]}`}).GraphTriggers())
}

func TestNormalizeCalendarEntry(t *testing.T) {
	day := 3
	entry := normalizeCalendarEntry(&userPlanItemRaw{
		Day:         &day,
		PlannedDate: strPtr("2026-09-01"),
		AgendaID:    strPtr("agenda-1"),
		Prospects: []prospectRaw{
			{
				Name:      strPtr("The Hammer"),
				ContentID: strPtr("c1"),
				Intensity: &prospectIntensityRaw{Master: floatPtr(0.9)},
			},
		},
		Plan: &planInfoRaw{ID: "p1", Name: "Base Plan"},
	})
	assert.Equal(t, 3, entry.Day)
	assert.Equal(t, "agenda-1", entry.AgendaID)
	require.Len(t, entry.Prospects, 1)
	assert.Equal(t, "The Hammer", entry.Prospects[0].Name)
	assert.Equal(t, 0.9, entry.Prospects[0].Intensity.Master)
	require.NotNil(t, entry.Plan)
	assert.Equal(t, "Base Plan", entry.Plan.Name)
}

func floatPtr(f float64) *float64 { return &f }

func TestNormalizeTestDetails_ProfileOnlyWhenComplete(t *testing.T) {
	nm, ac, mapW, ftp := 600, 350, 300, 250
	details := normalizeTestDetails(&activityRaw{
		ID:      "a1",
		Name:    "Full Frontal",
		Profile: &fitnessProfileRaw{NM: &nm, AC: &ac, MAP: &mapW, FTP: &ftp},
	})
	require.NotNil(t, details.Profile)
	assert.Equal(t, RiderProfile{NM: 600, AC: 350, MAP: 300, FTP: 250}, *details.Profile)

	// a partial profile is dropped whole
	details = normalizeTestDetails(&activityRaw{
		ID:      "a1",
		Name:    "Full Frontal",
		Profile: &fitnessProfileRaw{NM: &nm},
	})
	assert.Nil(t, details.Profile)

	require.NotNil(t, details.Power)
	assert.Empty(t, details.Power)
	require.NotNil(t, details.PowerBests)
}

func TestNormalization_Idempotent(t *testing.T) {
	tss := 45
	raw := &libraryContentRaw{
		ID:      "abc",
		Name:    "Primers",
		Channel: strPtr("MvDmhsvEBR"),
		Metrics: &metricsRaw{TSS: &tss},
	}
	once := normalizeLibraryItem(raw)

	// feed the normalized values back through a raw record; nothing changes
	channel := once.Channel
	again := normalizeLibraryItem(&libraryContentRaw{
		ID:      once.ContentID,
		Name:    once.Name,
		Channel: &channel,
		Tags:    once.Tags,
		Metrics: &metricsRaw{TSS: &once.Metrics.TSS},
	})
	assert.Equal(t, once, again)
}
