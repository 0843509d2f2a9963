package admin

import (
	"hris/internal/dashboard"
	"hris/internal/domain/badge"
	"hris/internal/table"
)

func UserManagementPage() *dashboard.Definition {
	return &dashboard.Definition{
		Slug:        SlugUserManagement,
		Section:     Section,
		Title:       "User Management",
		Description: "System users, their roles and last activity.",
		Columns:     []string{"User", "Role", "Status", "Last Login", "Actions"},
		Fixture:     "users",
		Filters: []dashboard.Filter{{
			Name:    "role",
			Label:   "Role",
			Default: "All",
			All:     "All",
			Field:   "role",
			Options: []dashboard.Option{
				{Label: "All Roles", Value: "All"},
				{Label: "Super Admin", Value: "Super Admin"},
				{Label: "HR Manager", Value: "HR Manager"},
				{Label: "Payroll Admin", Value: "Payroll Admin"},
				{Label: "Employee", Value: "Employee"},
			},
		}},
		Key: dashboard.KeyField("id"),
		Cells: func(r table.Record) []table.Cell {
			return []table.Cell{
				{Text: r.String("name"), Detail: r.String("email")},
				RoleBadge(r.String("role")).Cell(),
				badge.RecordStatuses.Resolve(badge.RecordStatus(r.String("status"))).Cell(),
				{Text: r.String("lastLogin")},
				{Text: "Edit", Tone: badge.ToneBlue},
			}
		},
	}
}

func RolesPage() *dashboard.Definition {
	return &dashboard.Definition{
		Slug:        SlugRoles,
		Section:     Section,
		Title:       "Roles & Permissions",
		Description: "Access levels granted to each role.",
		Columns:     []string{"Role", "Description", "Users", "Access Level", "Status", "Actions"},
		Fixture:     "roles",
		Key:         dashboard.KeyField("id"),
		Cells: func(r table.Record) []table.Cell {
			return []table.Cell{
				{Text: r.String("name"), Detail: r.String("id")},
				{Text: r.String("description")},
				{Text: r.String("users")},
				AccessLevels.Resolve(AccessLevel(r.String("accessLevel"))).Cell(),
				badge.RecordStatuses.Resolve(badge.RecordStatus(r.String("status"))).Cell(),
				{Text: "Configure", Tone: badge.ToneBlue},
			}
		},
	}
}

func Pages() []*dashboard.Definition {
	return []*dashboard.Definition{UserManagementPage(), RolesPage()}
}
