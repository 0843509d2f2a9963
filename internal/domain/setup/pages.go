package setup

import (
	"strings"

	"hris/internal/dashboard"
	"hris/internal/domain/badge"
	"hris/internal/table"
)

func DepartmentsPage() *dashboard.Definition {
	return &dashboard.Definition{
		Slug:        SlugDepartments,
		Section:     Section,
		Title:       "Departments",
		Description: "Organizational units, their heads and cost centers.",
		Columns:     []string{"Department", "Head of Department", "Employees", "Cost Center", "Status", "Actions"},
		Fixture:     "departments",
		Key:         dashboard.KeyField("id"),
		Cells: func(r table.Record) []table.Cell {
			return []table.Cell{
				{Text: r.String("name"), Detail: r.String("id")},
				{Text: r.String("hod")},
				{Text: r.String("employees")},
				{Text: r.String("costCenter")},
				badge.RecordStatuses.Resolve(badge.RecordStatus(r.String("status"))).Cell(),
				{Text: "Edit", Tone: badge.ToneBlue},
			}
		},
	}
}

func DesignationsPage() *dashboard.Definition {
	return &dashboard.Definition{
		Slug:        SlugDesignations,
		Section:     Section,
		Title:       "Designations",
		Description: "Job titles and grades used across departments.",
		Columns:     []string{"Designation", "Grade", "Department", "Description", "Actions"},
		Fixture:     "designations",
		Key:         dashboard.KeyField("id"),
		Cells: func(r table.Record) []table.Cell {
			return []table.Cell{
				{Text: r.String("title"), Detail: r.String("id")},
				GradeBadge(r.String("grade")).Cell(),
				{Text: r.String("department")},
				{Text: r.String("description")},
				{Text: "Edit", Tone: badge.ToneBlue},
			}
		},
	}
}

func HolidaysPage() *dashboard.Definition {
	return &dashboard.Definition{
		Slug:        SlugHolidays,
		Section:     Section,
		Title:       "Holiday Calendar",
		Description: "Public and optional holidays for the year.",
		Columns:     []string{"Date", "Day", "Holiday", "Type", "Recurring", "Actions"},
		Fixture:     "holidays",
		Filters: []dashboard.Filter{{
			Name:    "year",
			Label:   "Year",
			Default: "2023",
			All:     "All",
			Match: func(r table.Record, year string) bool {
				return strings.HasPrefix(r.String("date"), year+"-")
			},
			Options: []dashboard.Option{
				{Label: "2023", Value: "2023"},
				{Label: "2024", Value: "2024"},
				{Label: "All Years", Value: "All"},
			},
		}},
		Key:   dashboard.KeyField("id"),
		Cells: holidayCells,
	}
}

func holidayCells(r table.Record) []table.Cell {
	recurring := table.Cell{Text: "No", Tone: badge.ToneGray}
	if v, _ := r.Get("recurring"); v == true {
		recurring = table.Cell{Text: "Yearly", Tone: badge.ToneGreen}
	}
	return []table.Cell{
		{Text: r.String("date")},
		{Text: r.String("day")},
		{Text: r.String("name")},
		HolidayTypes.Resolve(HolidayType(r.String("type"))).Cell(),
		recurring,
		{Text: "Edit", Tone: badge.ToneBlue},
	}
}

func SalaryComponentsPage() *dashboard.Definition {
	return &dashboard.Definition{
		Slug:        SlugSalaryComponents,
		Section:     Section,
		Title:       "Salary Components",
		Description: "Earnings and deductions that make up a payslip.",
		Columns:     []string{"Component", "Type", "Calculation", "Value", "Taxable", "Status", "Actions"},
		Fixture:     "salary_components",
		Key:         dashboard.KeyField("id"),
		Cells:       componentCells,
	}
}

func componentCells(r table.Record) []table.Cell {
	taxable, _ := r.Get("isTaxable")
	return []table.Cell{
		{Text: r.String("name"), Detail: r.String("id")},
		ComponentTypes.Resolve(ComponentType(r.String("type"))).Cell(),
		{Text: r.String("calculation")},
		{Text: r.String("value")},
		TaxableBadge(taxable == true).Cell(),
		badge.RecordStatuses.Resolve(badge.RecordStatus(r.String("status"))).Cell(),
		{Text: "Edit", Tone: badge.ToneBlue},
	}
}

func Pages() []*dashboard.Definition {
	return []*dashboard.Definition{DepartmentsPage(), DesignationsPage(), HolidaysPage(), SalaryComponentsPage()}
}
