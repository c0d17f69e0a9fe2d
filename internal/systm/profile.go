package systm

import (
	"context"
	"encoding/json"
	"fmt"
)

// HeartRateZones derives the five training zones from the lactate threshold
// heart rate, matching the athlete profile UI ranges:
// Z1 Recovery < 70%, Z2 Endurance 70-87%, Z3 Tempo 88-95%,
// Z4 Threshold 96-100%, Z5 Max > 100%. A non-positive LTHR yields no zones.
// Zones are always derived, never stored.
func HeartRateZones(lthr float64) []HeartRateZone {
	if lthr <= 0 {
		return nil
	}

	minEndurance := int(lthr * 0.70)
	maxEndurance := int(lthr*0.87) + 1
	minTempo := int(lthr * 0.88)
	maxTempo := int(lthr * 0.95)
	minThreshold := int(lthr * 0.96)
	maxThreshold := int(lthr * 1.00)

	return []HeartRateZone{
		{Zone: 1, Name: "Recovery", Min: 0, Max: intPtr(max(minEndurance-1, 0))},
		{Zone: 2, Name: "Endurance", Min: minEndurance + 1, Max: intPtr(maxEndurance)},
		{Zone: 3, Name: "Tempo", Min: minTempo, Max: intPtr(maxTempo)},
		{Zone: 4, Name: "Threshold", Min: minThreshold, Max: intPtr(maxThreshold)},
		{Zone: 5, Name: "Max", Min: maxThreshold + 1, Max: nil},
	}
}

func intPtr(i int) *int {
	return &i
}

// EnhancedRiderProfile fetches the most recent fitness test and assembles the
// full profile: watts plus scores per metric, rider type, weakness analysis,
// LTHR and derived heart rate zones. Returns ErrNotFound (wrapped) when no
// fitness test has been ridden yet.
func (c *Client) EnhancedRiderProfile(ctx context.Context) (*EnhancedRiderProfile, error) {
	data, err := c.call(ctx, mostRecentTestQuery, nil, "MostRecentTest", true)
	if err != nil {
		return nil, err
	}

	var resp mostRecentTestResponseRaw
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal most recent test response: %w", err)
	}

	test := resp.MostRecentTest
	if !test.FitnessTestRidden {
		return nil, fmt.Errorf("rider profile: %w", ErrNotFound)
	}

	power5s := normalizePowerTestValue(test.Power5s)
	power1m := normalizePowerTestValue(test.Power1m)
	power5m := normalizePowerTestValue(test.Power5m)
	power20m := normalizePowerTestValue(test.Power20m)
	lthr := floatOrZero(test.LactateThresholdHeartRate)

	return &EnhancedRiderProfile{
		RiderProfile: RiderProfile{
			NM:  power5s.Value,
			AC:  power1m.Value,
			MAP: power5m.Value,
			FTP: power20m.Value,
		},
		Power5s:        power5s,
		Power1m:        power1m,
		Power5m:        power5m,
		Power20m:       power20m,
		LTHR:           lthr,
		HeartRateZones: HeartRateZones(lthr),
		RiderType:      normalizeRiderType(test.RiderType),
		RiderWeakness:  normalizeRiderWeakness(test.RiderWeakness),
		StartTime:      strOrEmpty(test.StartTime),
		EndTime:        strOrEmpty(test.EndTime),
	}, nil
}

// FitnessTestHistory pages through completed Full Frontal and Half Monty
// activities. Page is 1-indexed. Returns the page of results plus the total
// count of fitness tests.
func (c *Client) FitnessTestHistory(ctx context.Context, page, pageSize int) ([]FitnessTestResult, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 15
	}

	variables := map[string]any{
		"workoutIds":      []string{FullFrontalWorkoutID, HalfMontyWorkoutID},
		"pageInformation": map[string]any{"page": page, "pageSize": pageSize},
	}

	data, err := c.call(ctx, workoutActivitiesQuery, variables, "GetWorkoutActivities", true)
	if err != nil {
		return nil, 0, err
	}

	var resp workoutActivitiesResponseRaw
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, 0, fmt.Errorf("unmarshal workout activities response: %w", err)
	}

	results := make([]FitnessTestResult, 0, len(resp.GetWorkoutActivities.Activities))
	for i := range resp.GetWorkoutActivities.Activities {
		results = append(results, normalizeTestResult(&resp.GetWorkoutActivities.Activities[i]))
	}
	return results, resp.GetWorkoutActivities.Count, nil
}

// FitnessTestDetails fetches one test activity by id, including the raw
// power/cadence/heart-rate series and the power duration curve. Returns
// ErrNotFound (wrapped) for an unknown activity id.
func (c *Client) FitnessTestDetails(ctx context.Context, activityID string) (*FitnessTestDetails, error) {
	variables := map[string]any{
		"activityId": activityID,
	}

	data, err := c.call(ctx, getActivityQuery, variables, "GetActivity", true)
	if err != nil {
		return nil, err
	}

	var resp getActivityResponseRaw
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal activity response: %w", err)
	}

	if resp.Activity == nil {
		return nil, fmt.Errorf("activity %s: %w", activityID, ErrNotFound)
	}
	return normalizeTestDetails(resp.Activity), nil
}
