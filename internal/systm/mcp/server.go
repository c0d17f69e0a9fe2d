package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server exposing the SYSTM training tools: workout
// library search, workout details, calendar read/write, rider profile and
// fitness test history. Used by cmd/systm_mcp over stdio.
func NewServer(client trainingClient) *mcp.Server {
	h := NewHandler(client)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "wahoo-systm",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_workouts",
		Description: "Searches the whole SYSTM workout library across all sports (Cycling, Yoga, Strength, Running, Swimming, Mental Training). Optional filters: sport, min/max duration (minutes), min/max TSS, name search; sortable by name, duration, tss or level. Use when looking for any workout, or non-cycling content.",
	}, h.GetWorkoutsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_cycling_workouts",
		Description: "Searches cycling workouts only, with cycling-specific filters: channel (e.g. Sufferfest, ProRides), category, intensity, 4DP focus (NM, AC, MAP, FTP - only workouts heavily targeting that system), plus duration/TSS/name filters. Use when picking a ride.",
	}, h.GetCyclingWorkoutsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_workout_details",
		Description: "Returns full details for one workout: descriptions, equipment, training metrics, 4DP ratings and the interval structure. Arg: workout_id (a workout id or content id from the library tools).",
	}, h.GetWorkoutDetailsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_calendar",
		Description: "Returns planned workouts on the training calendar for a date range. Args: start_date, end_date (YYYY-MM-DD); optional timezone. Use when reviewing the training plan.",
	}, h.GetCalendarTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "schedule_workout",
		Description: "Schedules a workout on the training calendar. Args: content_id (from the library tools), date (YYYY-MM-DD); optional timezone. Returns the agenda id of the new entry.",
	}, h.ScheduleWorkoutTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "reschedule_workout",
		Description: "Moves a scheduled workout to a new date. Args: agenda_id (from get_calendar or schedule_workout), new_date (YYYY-MM-DD); optional timezone.",
	}, h.RescheduleWorkoutTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "remove_workout",
		Description: "Removes a scheduled workout from the training calendar. Arg: agenda_id (from get_calendar or schedule_workout).",
	}, h.RemoveWorkoutTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_rider_profile",
		Description: "Returns the rider's 4DP power profile from the most recent fitness test: NM/AC/MAP/FTP watts and scores, rider type, weakness analysis, LTHR and derived heart rate zones. Falls back to the basic profile when no test was ridden.",
	}, h.GetRiderProfileTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_fitness_test_history",
		Description: "Returns completed Full Frontal and Half Monty fitness tests, newest first, paginated. Optional args: page (default 1), page_size (default 15). Use when reviewing fitness progression.",
	}, h.GetFitnessTestHistoryTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_fitness_test_details",
		Description: "Returns the full record of one fitness test: results, power duration curve, sample count and post-test analysis. Arg: activity_id (from get_fitness_test_history).",
	}, h.GetFitnessTestDetailsTool())

	return s
}
