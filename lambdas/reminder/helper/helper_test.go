package helper

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gateway "timesheet.app/timesheet/gateway/v1"
	"timesheet.app/timesheet/timesheet/core"
	"timesheet.app/timesheet/timesheet/model"
)

var employees = []model.Employee{
	{ID: 1, FirstName: "Mario", LastName: "Rossi", Role: model.RoleManager},
	{ID: 4, FirstName: "Luca", LastName: "Bianchi", Role: model.RoleEmployee},
	{ID: 5, FirstName: "Anna", LastName: "Verdi", Role: model.RoleEmployee},
}

func fullWeek(employeeID int, monday time.Time) []model.TimeEntry {
	var out []model.TimeEntry
	for i := 0; i < 5; i++ {
		out = append(out, model.TimeEntry{
			EmployeeID: employeeID, ProjectID: 1, SubProjectID: 1,
			Date: core.DateKey(monday.AddDate(0, 0, i)), Hours: 8,
		})
	}
	return out
}

func TestFindIncomplete(t *testing.T) {
	monday := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	week := core.WeekDays(monday)

	split := []model.TimeEntry{
		{EmployeeID: 5, Date: "2024-06-03", Hours: 4},
		{EmployeeID: 5, Date: "2024-06-03", Hours: 4},
		{EmployeeID: 5, Date: "2024-06-04", Hours: 8},
		{EmployeeID: 5, Date: "2024-06-05", Hours: 8},
		{EmployeeID: 5, Date: "2024-06-06", Hours: 8},
		{EmployeeID: 5, Date: "2024-06-07", Hours: 8},
	}

	tests := []struct {
		name    string
		entries []model.TimeEntry
		want    map[string][]string
	}{
		{
			name:    "nobody worked",
			entries: nil,
			want: map[string][]string{
				"Luca Bianchi": {"2024-06-03", "2024-06-04", "2024-06-05", "2024-06-06", "2024-06-07"},
				"Anna Verdi":   {"2024-06-03", "2024-06-04", "2024-06-05", "2024-06-06", "2024-06-07"},
			},
		},
		{
			name:    "complete weeks",
			entries: append(fullWeek(4, monday), split...),
			want:    map[string][]string{},
		},
		{
			name:    "one short day",
			entries: append(fullWeek(4, monday)[1:], split...),
			want:    map[string][]string{"Luca Bianchi": {"2024-06-03"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := map[string][]string{}
			for _, r := range FindIncomplete(tt.entries, employees, week) {
				assert.Equal(t, "2024-06-03", r.WeekStart)
				got[r.EmployeeName] = r.Days
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRemindSpanningMonths(t *testing.T) {
	var months []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch q.Get("action") {
		case "getTimesheets":
			months = append(months, q.Get("anno")+"-"+q.Get("mese"))
			_ = json.NewEncoder(w).Encode(map[string]any{"timesheets": []model.TimeEntry{}})
		case "getEmployees":
			_ = json.NewEncoder(w).Encode(map[string]any{"employees": employees})
		}
	}))
	defer srv.Close()

	// 2024-07-31 is a Wednesday, its week ends in August
	day := time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC)
	reminders, err := Remind(context.Background(), gateway.NewGatewayClient(srv.URL, 0), nil, day, time.UTC, true)
	require.NoError(t, err)
	assert.Len(t, reminders, 2)
	assert.ElementsMatch(t, []string{"2024-7", "2024-8"}, months)
}
