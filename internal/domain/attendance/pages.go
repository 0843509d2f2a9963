package attendance

import (
	"fmt"

	"hris/internal/dashboard"
	"hris/internal/table"
)

func DailyLogsPage() *dashboard.Definition {
	return &dashboard.Definition{
		Slug:        SlugDailyLogs,
		Section:     Section,
		Title:       "Attendance Logs",
		Description: "Monitor daily check-ins, check-outs, and biometric data.",
		Columns:     []string{"Employee", "Date", "Shift", "Check In", "Check Out", "Duration", "Method", "Status", "Action"},
		Fixture:     "daily_logs",
		Filters: []dashboard.Filter{{
			Name:    "dept",
			Label:   "Department",
			Default: "All",
			All:     "All",
			Field:   "dept",
			Options: []dashboard.Option{
				{Label: "All Departments", Value: "All"},
				{Label: "Engineering", Value: "Engineering"},
				{Label: "Marketing", Value: "Marketing"},
				{Label: "HR", Value: "HR"},
			},
		}},
		Key:   dashboard.KeyField("id"),
		Cells: dailyLogCells,
	}
}

func dailyLogCells(r table.Record) []table.Cell {
	status := Status(r.String("status"))
	checkIn := table.Cell{Text: r.String("checkIn")}
	if status == StatusLate {
		checkIn.Tone = "red"
	}
	return []table.Cell{
		{Text: r.String("employeeName"), Detail: r.String("employeeId")},
		{Text: r.String("date")},
		{Text: r.String("shift")},
		checkIn,
		{Text: r.String("checkOut")},
		{Text: r.String("duration")},
		MethodBadge(Method(r.String("method"))).Cell(),
		Statuses.Resolve(status).Cell(),
		{Text: "Edit", Tone: "blue"},
	}
}

func ShiftSchedulingPage() *dashboard.Definition {
	columns := []string{"Employee"}
	for _, day := range WeekDays {
		columns = append(columns, weekDayLabels[day])
	}
	columns = append(columns, "Total Hrs")
	return &dashboard.Definition{
		Slug:        SlugShiftScheduling,
		Section:     Section,
		Title:       "Shift Roster",
		Description: "Plan weekly shifts and track scheduled hours.",
		Columns:     columns,
		Fixture:     "shift_roster",
		Key:         dashboard.KeyField("id"),
		Cells:       rosterCells,
		Edits:       map[string]dashboard.EditFunc{"shift": ChangeShift},
	}
}

func rosterCells(r table.Record) []table.Cell {
	schedule, _ := r["schedule"].(map[string]any)
	cells := []table.Cell{{Text: r.String("employee.name"), Detail: r.String("employee.role")}}
	for _, day := range WeekDays {
		code := ShiftCode(table.Text(schedule[day]))
		b := ShiftBadges.Resolve(code)
		cell := b.Cell()
		if shift, ok := Shifts[code]; ok {
			cell.Detail = shift.Time
		}
		cells = append(cells, cell)
	}
	return append(cells, table.Cell{Text: fmt.Sprintf("%dh", TotalHours(schedule))})
}

func Pages() []*dashboard.Definition {
	return []*dashboard.Definition{DailyLogsPage(), ShiftSchedulingPage()}
}
