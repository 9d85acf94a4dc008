package attendance

import (
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/aggregate"
)

// RecordResponse is the view model for a single attendance row.
type RecordResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	Date         string  `json:"date"`
	CheckIn      *string `json:"check_in,omitempty"`
	CheckOut     *string `json:"check_out,omitempty"`
	Status       Status  `json:"status"`
	Notes        *string `json:"notes,omitempty"`
	EmployeeName *string `json:"employee_name,omitempty"`
}

func NewRecordResponse(r Record) RecordResponse {
	return RecordResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		Date:         r.Date.Format("2006-01-02"),
		CheckIn:      formatTimestamp(r.CheckIn),
		CheckOut:     formatTimestamp(r.CheckOut),
		Status:       r.Status,
		Notes:        r.Notes,
		EmployeeName: r.EmployeeName,
	}
}

func formatTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

// ListResponse bundles a period's rows with their derived stats.
type ListResponse struct {
	Records []RecordResponse                 `json:"records"`
	Stats   aggregate.AttendanceStatusCounts `json:"stats"`
	Rate    int                              `json:"attendance_rate"`
}

func NewListResponse(records []Record) ListResponse {
	resp := ListResponse{Records: make([]RecordResponse, 0, len(records))}
	statuses := make([]string, 0, len(records))
	for _, r := range records {
		resp.Records = append(resp.Records, NewRecordResponse(r))
		statuses = append(statuses, string(r.Status))
	}
	resp.Stats = aggregate.CountStatuses(statuses)
	resp.Rate = aggregate.AttendanceRate(resp.Stats)
	return resp
}
