package systm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeartRateZones(t *testing.T) {
	zones := HeartRateZones(160)
	require.Len(t, zones, 5)

	assert.Equal(t, HeartRateZone{Zone: 1, Name: "Recovery", Min: 0, Max: intPtr(111)}, zones[0])
	assert.Equal(t, HeartRateZone{Zone: 2, Name: "Endurance", Min: 113, Max: intPtr(140)}, zones[1])
	assert.Equal(t, HeartRateZone{Zone: 3, Name: "Tempo", Min: 140, Max: intPtr(152)}, zones[2])
	assert.Equal(t, HeartRateZone{Zone: 4, Name: "Threshold", Min: 153, Max: intPtr(160)}, zones[3])

	// the top zone is open ended
	assert.Equal(t, 5, zones[4].Zone)
	assert.Equal(t, "Max", zones[4].Name)
	assert.Equal(t, 161, zones[4].Min)
	assert.Nil(t, zones[4].Max)
}

func TestHeartRateZones_NoLTHR(t *testing.T) {
	assert.Nil(t, HeartRateZones(0))
	assert.Nil(t, HeartRateZones(-5))
}

const mostRecentTestOKResponse = `{
  "data": {
    "mostRecentTest": {
      "status": "success",
      "fitnessTestRidden": true,
      "riderType": {"name": "Attacker", "description": "Strong short efforts"},
      "riderWeakness": {"name": "Sustained Efforts", "weaknessSummary": "FTP lags the rest"},
      "power5s": {"status": "ok", "graphValue": 8.5, "value": 905},
      "power1m": {"status": "ok", "graphValue": 7.2, "value": 402},
      "power5m": {"status": "ok", "graphValue": 6.1, "value": 310},
      "power20m": {"status": "ok", "graphValue": 5.4, "value": 255},
      "lactateThresholdHeartRate": 160,
      "startTime": "2026-08-01T10:00:00Z",
      "endTime": "2026-08-01T11:05:00Z"
    }
  }
}`

func TestClient_EnhancedRiderProfile(t *testing.T) {
	client, _ := authenticatedClient(t, map[string]string{
		"MostRecentTest": mostRecentTestOKResponse,
	})

	profile, err := client.EnhancedRiderProfile(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 905, profile.NM)
	assert.Equal(t, 402, profile.AC)
	assert.Equal(t, 310, profile.MAP)
	assert.Equal(t, 255, profile.FTP)
	assert.Equal(t, 8.5, profile.Power5s.GraphValue)
	assert.Equal(t, "Attacker", profile.RiderType.Name)
	assert.Equal(t, "FTP lags the rest", profile.RiderWeakness.WeaknessSummary)
	assert.Equal(t, 160.0, profile.LTHR)

	require.Len(t, profile.HeartRateZones, 5)
	assert.Equal(t, "Threshold", profile.HeartRateZones[3].Name)
}

func TestClient_EnhancedRiderProfile_NoTestRidden(t *testing.T) {
	client, _ := authenticatedClient(t, map[string]string{
		"MostRecentTest": `{"data": {"mostRecentTest": {"status": "success", "fitnessTestRidden": false}}}`,
	})

	_, err := client.EnhancedRiderProfile(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_FitnessTestHistory(t *testing.T) {
	client, captured := authenticatedClient(t, map[string]string{
		"GetWorkoutActivities": `{"data": {"getWorkoutActivities": {
			"count": 7,
			"activities": [
				{"id": "a1", "name": "Full Frontal", "completedDate": "2026-08-01T11:05:00Z", "durationSeconds": 3600, "tss": 95,
				 "testResults": {"power20m": {"value": 255}, "lactateThresholdHeartRate": 160}},
				{"id": "a2", "name": "Half Monty", "completedDate": "2026-05-10T09:10:00Z", "durationSeconds": 2700}
			]
		}}}`,
	})

	tests, total, err := client.FitnessTestHistory(context.Background(), 1, 15)
	require.NoError(t, err)
	assert.Equal(t, 7, total)
	require.Len(t, tests, 2)
	assert.Equal(t, "Full Frontal", tests[0].Name)
	require.NotNil(t, tests[0].TestResults)
	assert.Equal(t, 255, tests[0].TestResults.Power20m.Value)
	assert.Nil(t, tests[1].TestResults)

	// the query pins the two fitness test workout ids and pages 1-indexed
	last := (*captured)[len(*captured)-1]
	ids := last.Variables["workoutIds"].([]any)
	assert.ElementsMatch(t, []any{FullFrontalWorkoutID, HalfMontyWorkoutID}, ids)
	page := last.Variables["pageInformation"].(map[string]any)
	assert.Equal(t, float64(1), page["page"])
	assert.Equal(t, float64(15), page["pageSize"])
}

func TestClient_FitnessTestHistory_DefaultsPaging(t *testing.T) {
	client, captured := authenticatedClient(t, map[string]string{
		"GetWorkoutActivities": `{"data": {"getWorkoutActivities": {"count": 0, "activities": []}}}`,
	})

	_, _, err := client.FitnessTestHistory(context.Background(), 0, -3)
	require.NoError(t, err)

	last := (*captured)[len(*captured)-1]
	page := last.Variables["pageInformation"].(map[string]any)
	assert.Equal(t, float64(1), page["page"])
	assert.Equal(t, float64(15), page["pageSize"])
}

func TestClient_FitnessTestDetails(t *testing.T) {
	client, _ := authenticatedClient(t, map[string]string{
		"GetActivity": `{"data": {"activity": {
			"id": "a1", "name": "Full Frontal", "durationSeconds": 3600,
			"power": [250, 260, 270], "heartRate": [150, 155, 160],
			"powerBests": [{"duration": 5, "value": 905}],
			"profile": {"nm": 905, "ac": 402, "map": 310, "ftp": 255},
			"analysis": "{\"verdict\": \"solid\"}"
		}}}`,
	})

	details, err := client.FitnessTestDetails(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "Full Frontal", details.Name)
	assert.Equal(t, []int{250, 260, 270}, details.Power)
	require.NotNil(t, details.Cadence)
	assert.Empty(t, details.Cadence)
	require.Len(t, details.PowerBests, 1)
	assert.Equal(t, 905, details.PowerBests[0].Value)
	require.NotNil(t, details.Profile)
	assert.Equal(t, 255, details.Profile.FTP)
	assert.Equal(t, map[string]any{"verdict": "solid"}, details.AnalysisData())
}

func TestClient_FitnessTestDetails_NotFound(t *testing.T) {
	client, _ := authenticatedClient(t, map[string]string{
		"GetActivity": `{"data": {"activity": null}}`,
	})

	_, err := client.FitnessTestDetails(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}
