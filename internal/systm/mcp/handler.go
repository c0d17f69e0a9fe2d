package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/systm-mcp/internal/systm"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	defaultLimit    = 50
	defaultPageSize = 15
)

// trainingClient is the slice of the SYSTM client the tool handlers need.
type trainingClient interface {
	RiderProfile() *systm.RiderProfile
	EnhancedRiderProfile(ctx context.Context) (*systm.EnhancedRiderProfile, error)
	WorkoutLibrary(ctx context.Context, filter *systm.LibraryFilter) ([]systm.LibraryItem, error)
	CyclingWorkouts(ctx context.Context, filter *systm.LibraryFilter) ([]systm.LibraryItem, error)
	WorkoutDetails(ctx context.Context, workoutID string) (*systm.Workout, error)
	Calendar(ctx context.Context, startDate, endDate, timeZone string) ([]systm.CalendarEntry, error)
	ScheduleWorkout(ctx context.Context, contentID, date, timeZone string) (string, error)
	RescheduleWorkout(ctx context.Context, agendaID, newDate, timeZone string) error
	RemoveWorkout(ctx context.Context, agendaID string) error
	FitnessTestHistory(ctx context.Context, page, pageSize int) ([]systm.FitnessTestResult, int, error)
	FitnessTestDetails(ctx context.Context, activityID string) (*systm.FitnessTestDetails, error)
}

// Handler handles MCP tool requests and responses: parses input, calls the client, formats MCP result.
type Handler struct {
	client trainingClient
}

// NewHandler builds a handler backed by the given client.
func NewHandler(client trainingClient) *Handler {
	return &Handler{
		client: client,
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) (*mcp.CallToolResult, any, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error()), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}, nil, nil
}

func validDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// WorkoutsInput is the input for get_workouts.
type WorkoutsInput struct {
	Sport         string `json:"sport,omitempty" jsonschema:"Filter by sport (e.g. Cycling, Yoga, Strength)"`
	MinDuration   *int   `json:"min_duration,omitempty" jsonschema:"Minimum duration in minutes (inclusive)"`
	MaxDuration   *int   `json:"max_duration,omitempty" jsonschema:"Maximum duration in minutes (inclusive)"`
	MinTSS        *int   `json:"min_tss,omitempty" jsonschema:"Minimum training stress score (inclusive)"`
	MaxTSS        *int   `json:"max_tss,omitempty" jsonschema:"Maximum training stress score (inclusive)"`
	Search        string `json:"search,omitempty" jsonschema:"Case-insensitive substring match on workout name"`
	SortBy        string `json:"sort_by,omitempty" jsonschema:"Sort field: name (default), duration, tss, level"`
	SortDirection string `json:"sort_direction,omitempty" jsonschema:"Sort direction: asc (default) or desc"`
	Limit         int    `json:"limit,omitempty" jsonschema:"Max results to return, default 50"`
}

// GetWorkoutsTool returns the MCP tool handler for get_workouts.
func (h *Handler) GetWorkoutsTool() func(context.Context, *mcp.CallToolRequest, WorkoutsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WorkoutsInput) (*mcp.CallToolResult, any, error) {
		filter := &systm.LibraryFilter{
			Sport:         in.Sport,
			MinDuration:   in.MinDuration,
			MaxDuration:   in.MaxDuration,
			MinTSS:        in.MinTSS,
			MaxTSS:        in.MaxTSS,
			Search:        in.Search,
			SortBy:        in.SortBy,
			SortDirection: in.SortDirection,
			Limit:         limitOrDefault(in.Limit),
		}
		items, err := h.client.WorkoutLibrary(ctx, filter)
		if err != nil {
			return errorResult("Error fetching workouts: " + err.Error()), nil, nil
		}
		return jsonResult(newWorkoutsResult(items))
	}
}

// CyclingWorkoutsInput is the input for get_cycling_workouts.
type CyclingWorkoutsInput struct {
	Channel       string `json:"channel,omitempty" jsonschema:"Filter by channel, substring match (e.g. Sufferfest, ProRides)"`
	Category      string `json:"category,omitempty" jsonschema:"Filter by category (e.g. Climbing, Speed)"`
	Intensity     string `json:"intensity,omitempty" jsonschema:"Filter by intensity (e.g. High, Low)"`
	FourDPFocus   string `json:"four_dp_focus,omitempty" jsonschema:"Only workouts heavily targeting the given energy system: NM, AC, MAP or FTP"`
	MinDuration   *int   `json:"min_duration,omitempty" jsonschema:"Minimum duration in minutes (inclusive)"`
	MaxDuration   *int   `json:"max_duration,omitempty" jsonschema:"Maximum duration in minutes (inclusive)"`
	MinTSS        *int   `json:"min_tss,omitempty" jsonschema:"Minimum training stress score (inclusive)"`
	MaxTSS        *int   `json:"max_tss,omitempty" jsonschema:"Maximum training stress score (inclusive)"`
	Search        string `json:"search,omitempty" jsonschema:"Case-insensitive substring match on workout name"`
	SortBy        string `json:"sort_by,omitempty" jsonschema:"Sort field: name (default), duration, tss"`
	SortDirection string `json:"sort_direction,omitempty" jsonschema:"Sort direction: asc (default) or desc"`
	Limit         int    `json:"limit,omitempty" jsonschema:"Max results to return, default 50"`
}

// GetCyclingWorkoutsTool returns the MCP tool handler for get_cycling_workouts.
func (h *Handler) GetCyclingWorkoutsTool() func(context.Context, *mcp.CallToolRequest, CyclingWorkoutsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in CyclingWorkoutsInput) (*mcp.CallToolResult, any, error) {
		filter := &systm.LibraryFilter{
			Channel:       in.Channel,
			Category:      in.Category,
			Intensity:     in.Intensity,
			FourDPFocus:   in.FourDPFocus,
			MinDuration:   in.MinDuration,
			MaxDuration:   in.MaxDuration,
			MinTSS:        in.MinTSS,
			MaxTSS:        in.MaxTSS,
			Search:        in.Search,
			SortBy:        in.SortBy,
			SortDirection: in.SortDirection,
			Limit:         limitOrDefault(in.Limit),
		}
		items, err := h.client.CyclingWorkouts(ctx, filter)
		if err != nil {
			return errorResult("Error fetching cycling workouts: " + err.Error()), nil, nil
		}
		return jsonResult(newWorkoutsResult(items))
	}
}

// WorkoutDetailsInput is the input for get_workout_details.
type WorkoutDetailsInput struct {
	WorkoutID string `json:"workout_id" jsonschema:"Workout id (or content id) from the library"`
}

// GetWorkoutDetailsTool returns the MCP tool handler for get_workout_details.
func (h *Handler) GetWorkoutDetailsTool() func(context.Context, *mcp.CallToolRequest, WorkoutDetailsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WorkoutDetailsInput) (*mcp.CallToolResult, any, error) {
		if in.WorkoutID == "" {
			return errorResult("workout_id is required"), nil, nil
		}
		workout, err := h.client.WorkoutDetails(ctx, in.WorkoutID)
		if err != nil {
			if errors.Is(err, systm.ErrNotFound) {
				return errorResult(fmt.Sprintf("Workout %s not found", in.WorkoutID)), nil, nil
			}
			return errorResult("Error fetching workout details: " + err.Error()), nil, nil
		}
		return jsonResult(newWorkoutDetailsResult(workout))
	}
}

// CalendarInput is the input for get_calendar.
type CalendarInput struct {
	StartDate string `json:"start_date" jsonschema:"Start date (YYYY-MM-DD)"`
	EndDate   string `json:"end_date" jsonschema:"End date (YYYY-MM-DD)"`
	TimeZone  string `json:"timezone,omitempty" jsonschema:"IANA timezone name, default UTC"`
}

// GetCalendarTool returns the MCP tool handler for get_calendar.
func (h *Handler) GetCalendarTool() func(context.Context, *mcp.CallToolRequest, CalendarInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in CalendarInput) (*mcp.CallToolResult, any, error) {
		if !validDate(in.StartDate) {
			return errorResult("Invalid start_date: use YYYY-MM-DD"), nil, nil
		}
		if !validDate(in.EndDate) {
			return errorResult("Invalid end_date: use YYYY-MM-DD"), nil, nil
		}
		entries, err := h.client.Calendar(ctx, in.StartDate, in.EndDate, in.TimeZone)
		if err != nil {
			return errorResult("Error fetching calendar: " + err.Error()), nil, nil
		}
		return jsonResult(newCalendarResult(in.StartDate, in.EndDate, entries))
	}
}

// ScheduleWorkoutInput is the input for schedule_workout.
type ScheduleWorkoutInput struct {
	ContentID string `json:"content_id" jsonschema:"Content id of the workout to schedule (from the library)"`
	Date      string `json:"date" jsonschema:"Target date (YYYY-MM-DD)"`
	TimeZone  string `json:"timezone,omitempty" jsonschema:"IANA timezone name, default UTC"`
}

// ScheduleWorkoutTool returns the MCP tool handler for schedule_workout.
func (h *Handler) ScheduleWorkoutTool() func(context.Context, *mcp.CallToolRequest, ScheduleWorkoutInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ScheduleWorkoutInput) (*mcp.CallToolResult, any, error) {
		if in.ContentID == "" {
			return errorResult("content_id is required"), nil, nil
		}
		if !validDate(in.Date) {
			return errorResult("Invalid date: use YYYY-MM-DD"), nil, nil
		}
		agendaID, err := h.client.ScheduleWorkout(ctx, in.ContentID, in.Date, in.TimeZone)
		if err != nil {
			return errorResult("Error scheduling workout: " + err.Error()), nil, nil
		}
		return jsonResult(ScheduleResult{
			AgendaID:  agendaID,
			ContentID: in.ContentID,
			Date:      in.Date,
			Message:   "Workout scheduled for " + formatDate(in.Date),
		})
	}
}

// RescheduleWorkoutInput is the input for reschedule_workout.
type RescheduleWorkoutInput struct {
	AgendaID string `json:"agenda_id" jsonschema:"Agenda id of the calendar entry to move"`
	NewDate  string `json:"new_date" jsonschema:"New target date (YYYY-MM-DD)"`
	TimeZone string `json:"timezone,omitempty" jsonschema:"IANA timezone name, default UTC"`
}

// RescheduleWorkoutTool returns the MCP tool handler for reschedule_workout.
func (h *Handler) RescheduleWorkoutTool() func(context.Context, *mcp.CallToolRequest, RescheduleWorkoutInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in RescheduleWorkoutInput) (*mcp.CallToolResult, any, error) {
		if in.AgendaID == "" {
			return errorResult("agenda_id is required"), nil, nil
		}
		if !validDate(in.NewDate) {
			return errorResult("Invalid new_date: use YYYY-MM-DD"), nil, nil
		}
		if err := h.client.RescheduleWorkout(ctx, in.AgendaID, in.NewDate, in.TimeZone); err != nil {
			return errorResult("Error rescheduling workout: " + err.Error()), nil, nil
		}
		return jsonResult(RescheduleResult{
			AgendaID: in.AgendaID,
			NewDate:  in.NewDate,
			Message:  "Workout moved to " + formatDate(in.NewDate),
		})
	}
}

// RemoveWorkoutInput is the input for remove_workout.
type RemoveWorkoutInput struct {
	AgendaID string `json:"agenda_id" jsonschema:"Agenda id of the calendar entry to remove"`
}

// RemoveWorkoutTool returns the MCP tool handler for remove_workout.
func (h *Handler) RemoveWorkoutTool() func(context.Context, *mcp.CallToolRequest, RemoveWorkoutInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in RemoveWorkoutInput) (*mcp.CallToolResult, any, error) {
		if in.AgendaID == "" {
			return errorResult("agenda_id is required"), nil, nil
		}
		if err := h.client.RemoveWorkout(ctx, in.AgendaID); err != nil {
			return errorResult("Error removing workout: " + err.Error()), nil, nil
		}
		return jsonResult(RemoveResult{
			AgendaID: in.AgendaID,
			Message:  "Workout removed from the calendar",
		})
	}
}

// GetRiderProfileTool returns the MCP tool handler for get_rider_profile.
func (h *Handler) GetRiderProfileTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		profile, err := h.client.EnhancedRiderProfile(ctx)
		if err != nil {
			if errors.Is(err, systm.ErrNotFound) {
				// No test ridden yet; fall back to the 4DP numbers from login.
				basic := h.client.RiderProfile()
				if basic == nil {
					return errorResult("No fitness test results found. Ride a Full Frontal or Half Monty test first."), nil, nil
				}
				return jsonResult(basic)
			}
			return errorResult("Error fetching rider profile: " + err.Error()), nil, nil
		}
		return jsonResult(profile)
	}
}

// FitnessTestHistoryInput is the input for get_fitness_test_history.
type FitnessTestHistoryInput struct {
	Page     int `json:"page,omitempty" jsonschema:"Page number, 1-indexed, default 1"`
	PageSize int `json:"page_size,omitempty" jsonschema:"Results per page, default 15"`
}

// GetFitnessTestHistoryTool returns the MCP tool handler for get_fitness_test_history.
func (h *Handler) GetFitnessTestHistoryTool() func(context.Context, *mcp.CallToolRequest, FitnessTestHistoryInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in FitnessTestHistoryInput) (*mcp.CallToolResult, any, error) {
		page := in.Page
		if page < 1 {
			page = 1
		}
		pageSize := in.PageSize
		if pageSize < 1 {
			pageSize = defaultPageSize
		}
		tests, total, err := h.client.FitnessTestHistory(ctx, page, pageSize)
		if err != nil {
			return errorResult("Error fetching fitness test history: " + err.Error()), nil, nil
		}
		return jsonResult(newTestHistoryResult(tests, total, page, pageSize))
	}
}

// FitnessTestDetailsInput is the input for get_fitness_test_details.
type FitnessTestDetailsInput struct {
	ActivityID string `json:"activity_id" jsonschema:"Activity id of the fitness test (from get_fitness_test_history)"`
}

// GetFitnessTestDetailsTool returns the MCP tool handler for get_fitness_test_details.
func (h *Handler) GetFitnessTestDetailsTool() func(context.Context, *mcp.CallToolRequest, FitnessTestDetailsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in FitnessTestDetailsInput) (*mcp.CallToolResult, any, error) {
		if in.ActivityID == "" {
			return errorResult("activity_id is required"), nil, nil
		}
		details, err := h.client.FitnessTestDetails(ctx, in.ActivityID)
		if err != nil {
			if errors.Is(err, systm.ErrNotFound) {
				return errorResult(fmt.Sprintf("Fitness test activity %s not found", in.ActivityID)), nil, nil
			}
			return errorResult("Error fetching fitness test details: " + err.Error()), nil, nil
		}
		return jsonResult(newTestDetailsResult(details))
	}
}

func limitOrDefault(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	return limit
}
