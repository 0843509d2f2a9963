package leave

import (
	"hris/internal/dashboard"
	"hris/internal/table"
)

func RequestsPage() *dashboard.Definition {
	return &dashboard.Definition{
		Slug:        SlugList,
		Section:     Section,
		Title:       "Leave Requests",
		Description: "Manage employee leave applications and approvals.",
		Columns:     []string{"Employee", "Leave Type", "Duration", "Dates", "Reason", "Status", "Actions"},
		Fixture:     "leave_requests",
		Filters: []dashboard.Filter{{
			Name:    "status",
			Label:   "Status",
			Default: string(StatusPending),
			All:     "all",
			Field:   "status",
			Options: []dashboard.Option{
				{Label: "Pending", Value: string(StatusPending)},
				{Label: "Approved", Value: string(StatusApproved)},
				{Label: "Rejected", Value: string(StatusRejected)},
				{Label: "All", Value: "all"},
			},
		}},
		Key:   dashboard.KeyField("id"),
		Cells: requestCells,
		Edits: map[string]dashboard.EditFunc{"status": Decide},
	}
}

func requestCells(r table.Record) []table.Cell {
	duration := table.Cell{Text: "-"}
	if days, err := RequestDays(r); err == nil {
		duration.Text = DurationLabel(days)
	}
	status := Status(r.String("status"))
	actions := table.Cell{Text: "View", Tone: "blue"}
	if status == StatusPending {
		actions = table.Cell{Text: "Approve / Reject", Tone: "green"}
	}
	return []table.Cell{
		{Text: r.String("employee.name"), Detail: "Applied: " + r.String("appliedOn")},
		Types.Resolve(Type(r.String("type"))).Cell(),
		duration,
		{Text: r.String("fromDate"), Detail: "to " + r.String("toDate")},
		{Text: r.String("reason")},
		Statuses.Resolve(status).Cell(),
		actions,
	}
}
