package mcp

import (
	"fmt"
	"time"

	"github.com/2beens/systm-mcp/internal/systm"
)

// WorkoutItem is one library entry as returned by the workout listing tools.
type WorkoutItem struct {
	ContentID   string        `json:"contentId"`
	WorkoutID   string        `json:"workoutId,omitempty"`
	Name        string        `json:"name"`
	Channel     string        `json:"channel,omitempty"`
	Sport       string        `json:"sport,omitempty"`
	Category    string        `json:"category,omitempty"`
	Level       string        `json:"level,omitempty"`
	Duration    string        `json:"duration"`
	Intensity   string        `json:"intensity,omitempty"`
	TSS         int           `json:"tss"`
	IF          float64       `json:"intensityFactor"`
	Ratings     systm.Ratings `json:"ratings"`
}

// WorkoutsResult is the output of get_workouts and get_cycling_workouts.
type WorkoutsResult struct {
	Total    int           `json:"total"`
	Workouts []WorkoutItem `json:"workouts"`
}

func newWorkoutsResult(items []systm.LibraryItem) WorkoutsResult {
	out := make([]WorkoutItem, 0, len(items))
	for i := range items {
		it := &items[i]
		out = append(out, WorkoutItem{
			ContentID: it.ContentID,
			WorkoutID: it.WorkoutID,
			Name:      it.Name,
			Channel:   it.Channel,
			Sport:     it.Sport,
			Category:  it.Category,
			Level:     it.Level,
			Duration:  formatDuration(it.Duration),
			Intensity: it.Intensity,
			TSS:       it.Metrics.TSS,
			IF:        it.Metrics.IntensityFactor,
			Ratings:   it.Metrics.Ratings,
		})
	}
	return WorkoutsResult{Total: len(out), Workouts: out}
}

// WorkoutDetailsResult is the output of get_workout_details.
type WorkoutDetailsResult struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	Sport            string              `json:"sport,omitempty"`
	Level            string              `json:"level,omitempty"`
	Duration         string              `json:"duration"`
	ShortDescription string              `json:"shortDescription,omitempty"`
	Details          string              `json:"details,omitempty"`
	TSS              int                 `json:"tss"`
	IF               float64             `json:"intensityFactor"`
	Ratings          systm.Ratings       `json:"ratings"`
	Equipment        []systm.Equipment   `json:"equipment"`
	Descriptions     []systm.Description `json:"descriptions"`
	IntervalCount    int                 `json:"intervalCount"`
}

func newWorkoutDetailsResult(w *systm.Workout) WorkoutDetailsResult {
	return WorkoutDetailsResult{
		ID:               w.ID,
		Name:             w.Name,
		Sport:            w.Sport,
		Level:            w.Level,
		Duration:         formatDuration(w.DurationSeconds),
		ShortDescription: w.ShortDescription,
		Details:          w.Details,
		TSS:              w.Metrics.TSS,
		IF:               w.Metrics.IntensityFactor,
		Ratings:          w.Metrics.Ratings,
		Equipment:        w.Equipment,
		Descriptions:     w.Descriptions,
		IntervalCount:    len(w.GraphTriggers()),
	}
}

// CalendarResult is the output of get_calendar.
type CalendarResult struct {
	StartDate string                `json:"startDate"`
	EndDate   string                `json:"endDate"`
	Total     int                   `json:"total"`
	Entries   []systm.CalendarEntry `json:"entries"`
}

func newCalendarResult(startDate, endDate string, entries []systm.CalendarEntry) CalendarResult {
	return CalendarResult{
		StartDate: startDate,
		EndDate:   endDate,
		Total:     len(entries),
		Entries:   entries,
	}
}

// ScheduleResult is the output of schedule_workout.
type ScheduleResult struct {
	AgendaID  string `json:"agendaId"`
	ContentID string `json:"contentId"`
	Date      string `json:"date"`
	Message   string `json:"message"`
}

// RescheduleResult is the output of reschedule_workout.
type RescheduleResult struct {
	AgendaID string `json:"agendaId"`
	NewDate  string `json:"newDate"`
	Message  string `json:"message"`
}

// RemoveResult is the output of remove_workout.
type RemoveResult struct {
	AgendaID string `json:"agendaId"`
	Message  string `json:"message"`
}

// TestHistoryItem is one fitness test summary in get_fitness_test_history output.
type TestHistoryItem struct {
	ID            string                    `json:"id"`
	Name          string                    `json:"name"`
	CompletedDate string                    `json:"completedDate,omitempty"`
	Duration      string                    `json:"duration"`
	DistanceKm    float64                   `json:"distanceKm"`
	TSS           int                       `json:"tss"`
	IF            float64                   `json:"intensityFactor"`
	TestResults   *systm.FitnessTestResults `json:"testResults,omitempty"`
}

// TestHistoryResult is the output of get_fitness_test_history.
type TestHistoryResult struct {
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
	Tests    []TestHistoryItem `json:"tests"`
}

func newTestHistoryResult(tests []systm.FitnessTestResult, total, page, pageSize int) TestHistoryResult {
	out := make([]TestHistoryItem, 0, len(tests))
	for i := range tests {
		t := &tests[i]
		out = append(out, TestHistoryItem{
			ID:            t.ID,
			Name:          t.Name,
			CompletedDate: formatDate(t.CompletedDate),
			Duration:      formatDuration(t.DurationSeconds),
			DistanceKm:    t.DistanceKm,
			TSS:           t.TSS,
			IF:            t.IntensityFactor,
			TestResults:   t.TestResults,
		})
	}
	return TestHistoryResult{Total: total, Page: page, PageSize: pageSize, Tests: out}
}

// TestDetailsResult is the output of get_fitness_test_details. The raw power,
// cadence and heart rate series are summarized by length; the power duration
// curve and the parsed analysis blob come through as is.
type TestDetailsResult struct {
	ID            string                    `json:"id"`
	Name          string                    `json:"name"`
	CompletedDate string                    `json:"completedDate,omitempty"`
	Duration      string                    `json:"duration"`
	DistanceKm    float64                   `json:"distanceKm"`
	TSS           int                       `json:"tss"`
	IF            float64                   `json:"intensityFactor"`
	Notes         string                    `json:"notes,omitempty"`
	TestResults   *systm.FitnessTestResults `json:"testResults,omitempty"`
	Profile       *systm.RiderProfile       `json:"profile,omitempty"`
	Samples       int                       `json:"samples"`
	PowerBests    []systm.PowerBest         `json:"powerBests"`
	Analysis      map[string]any            `json:"analysis,omitempty"`
}

func newTestDetailsResult(d *systm.FitnessTestDetails) TestDetailsResult {
	return TestDetailsResult{
		ID:            d.ID,
		Name:          d.Name,
		CompletedDate: formatDate(d.CompletedDate),
		Duration:      formatDuration(d.DurationSeconds),
		DistanceKm:    d.DistanceKm,
		TSS:           d.TSS,
		IF:            d.IntensityFactor,
		Notes:         d.Notes,
		TestResults:   d.TestResults,
		Profile:       d.Profile,
		Samples:       len(d.Power),
		PowerBests:    d.PowerBests,
		Analysis:      d.AnalysisData(),
	}
}

// formatDuration renders seconds as "1h 30m" or "45m".
func formatDuration(seconds int) string {
	if seconds <= 0 {
		return "0m"
	}
	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// formatDate renders an ISO date or timestamp as e.g. "January 02, 2026".
// Unparseable input comes back unchanged.
func formatDate(date string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Format("January 02, 2006")
		}
	}
	return date
}
