package systm

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Calendar returns the planned workouts between startDate and endDate
// (inclusive, YYYY-MM-DD). The timeZone defaults to UTC when empty.
func (c *Client) Calendar(ctx context.Context, startDate, endDate, timeZone string) ([]CalendarEntry, error) {
	if timeZone == "" {
		timeZone = "UTC"
	}

	variables := map[string]any{
		"startDate":   startDate,
		"endDate":     endDate,
		"queryParams": map[string]any{"limit": 1000},
		"timezone":    timeZone,
	}

	data, err := c.call(ctx, userPlansRangeQuery, variables, "GetUserPlansRange", true)
	if err != nil {
		return nil, err
	}

	var resp userPlanResponseRaw
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal user plan response: %w", err)
	}

	entries := make([]CalendarEntry, 0, len(resp.UserPlan))
	for i := range resp.UserPlan {
		entries = append(entries, normalizeCalendarEntry(&resp.UserPlan[i]))
	}
	return entries, nil
}

// ScheduleWorkout puts a library workout (by content id, not workout id) on
// the remote calendar and returns the server issued agenda id. The UTC
// default for timeZone is applied here, by the client, not by the server.
func (c *Client) ScheduleWorkout(ctx context.Context, contentID, date, timeZone string) (string, error) {
	if timeZone == "" {
		timeZone = "UTC"
	}

	variables := map[string]any{
		"contentId": contentID,
		"date":      date,
		"timeZone":  timeZone,
	}

	data, err := c.call(ctx, addAgendaMutation, variables, "AddAgenda", true)
	if err != nil {
		return "", err
	}

	var resp addAgendaResponseRaw
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("unmarshal add agenda response: %w", err)
	}

	if !statusSuccess(resp.AddAgenda.Status) {
		return "", &ScheduleError{Message: statusMessage(resp.AddAgenda.Message)}
	}
	if resp.AddAgenda.AgendaID == nil || *resp.AddAgenda.AgendaID == "" {
		return "", &ScheduleError{Message: "response missing agenda id"}
	}

	log.Debugf("systm api: scheduled %s on %s (%s)", contentID, date, timeZone)

	return *resp.AddAgenda.AgendaID, nil
}

// RescheduleWorkout moves an existing calendar entry to a new date. Whether
// the agenda id exists is decided solely by the remote system.
func (c *Client) RescheduleWorkout(ctx context.Context, agendaID, newDate, timeZone string) error {
	if timeZone == "" {
		timeZone = "UTC"
	}

	variables := map[string]any{
		"agendaId": agendaID,
		"date":     newDate,
		"timeZone": timeZone,
	}

	data, err := c.call(ctx, moveAgendaMutation, variables, "MoveAgenda", true)
	if err != nil {
		return err
	}

	var resp moveAgendaResponseRaw
	if err := json.Unmarshal(data, &resp); err != nil {
		return fmt.Errorf("unmarshal move agenda response: %w", err)
	}

	if !statusSuccess(resp.MoveAgenda.Status) {
		return &RescheduleError{Message: statusMessage(resp.MoveAgenda.Message)}
	}
	return nil
}

// RemoveWorkout deletes a calendar entry by its agenda id. The client holds
// no further reference to it afterwards.
func (c *Client) RemoveWorkout(ctx context.Context, agendaID string) error {
	variables := map[string]any{
		"agendaId": agendaID,
	}

	data, err := c.call(ctx, deleteAgendaMutation, variables, "DeleteAgenda", true)
	if err != nil {
		return err
	}

	var resp deleteAgendaResponseRaw
	if err := json.Unmarshal(data, &resp); err != nil {
		return fmt.Errorf("unmarshal delete agenda response: %w", err)
	}

	if !statusSuccess(resp.DeleteAgenda.Status) {
		return &RemoveError{Message: statusMessage(resp.DeleteAgenda.Message)}
	}
	return nil
}
