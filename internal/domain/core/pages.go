package core

import (
	"hris/internal/dashboard"
	"hris/internal/domain/badge"
	"hris/internal/domain/setup"
	"hris/internal/table"
)

func EmployeeDirectoryPage() *dashboard.Definition {
	return &dashboard.Definition{
		Slug:        SlugEmployeeDirectory,
		Section:     Section,
		Title:       "Employee Directory",
		Description: "Everyone in the organization, by department and status.",
		Columns:     []string{"Employee", "Role", "Department", "Contact", "Status", "Actions"},
		Fixture:     "employees",
		Filters: []dashboard.Filter{
			{
				Name:    "dept",
				Label:   "Department",
				Default: "All",
				All:     "All",
				Field:   "dept",
				Options: []dashboard.Option{
					{Label: "All Departments", Value: "All"},
					{Label: "Engineering", Value: "Engineering"},
					{Label: "Operations", Value: "Operations"},
					{Label: "Product", Value: "Product"},
					{Label: "Marketing", Value: "Marketing"},
					{Label: "Management", Value: "Management"},
					{Label: "Human Resources", Value: "Human Resources"},
				},
			},
			{
				Name:    "status",
				Label:   "Status",
				Default: "All",
				All:     "All",
				Field:   "status",
				Options: []dashboard.Option{
					{Label: "All Statuses", Value: "All"},
					{Label: "Active", Value: string(EmploymentActive)},
					{Label: "On Leave", Value: string(EmploymentOnLeave)},
					{Label: "Inactive", Value: string(EmploymentInactive)},
				},
			},
		},
		Key:   dashboard.KeyField("id"),
		Cells: employeeCells,
	}
}

func employeeCells(r table.Record) []table.Cell {
	name := r.String("name")
	return []table.Cell{
		{Text: "(" + Initials(name) + ") " + name, Detail: r.String("email")},
		{Text: r.String("role")},
		{Text: r.String("dept")},
		{Text: ContactLine(r.String("email"), r.String("phone"))},
		EmploymentStatuses.Resolve(EmploymentStatus(r.String("status"))).Cell(),
		{Text: "View Profile", Tone: badge.ToneBlue},
	}
}

func ContractsFilesPage() *dashboard.Definition {
	return &dashboard.Definition{
		Slug:        SlugContractsFiles,
		Section:     Section,
		Title:       "Contracts & Files",
		Description: "Employee contracts, legal documents and onboarding files.",
		Columns:     []string{"Document", "Category", "Size", "Uploaded By", "Date", "Actions"},
		Fixture:     "documents",
		Filters: []dashboard.Filter{{
			Name:    "category",
			Label:   "Category",
			Default: "All",
			All:     "All",
			Field:   "category",
			Options: []dashboard.Option{
				{Label: "All", Value: "All"},
				{Label: "Contracts", Value: "Contracts"},
				{Label: "Legal", Value: "Legal"},
				{Label: "Onboarding", Value: "Onboarding"},
				{Label: "Identity", Value: "Identity"},
			},
		}},
		Key:   dashboard.KeyField("id"),
		Cells: documentCells,
	}
}

func documentCells(r table.Record) []table.Cell {
	kind := DocumentTypes.Resolve(DocumentType(r.String("type")))
	return []table.Cell{
		{Text: kind.Icon + " " + r.String("name"), Tone: kind.Tone, Detail: r.String("id")},
		{Text: r.String("category")},
		{Text: r.String("size")},
		{Text: r.String("uploadedBy")},
		{Text: r.String("uploadedOn")},
		{Text: "Download", Tone: badge.ToneBlue},
	}
}

// OrgStructurePage shows departments and designations side by side, each in
// its own table with its own search and pagination.
func OrgStructurePage() *dashboard.Definition {
	return &dashboard.Definition{
		Slug:        SlugOrgStructure,
		Section:     Section,
		Title:       "Organization Structure",
		Description: "Manage company departments and job designations.",
		Panels: []*dashboard.Definition{
			{
				Slug:        setup.SlugDepartments,
				Section:     Section,
				Title:       "Departments",
				Description: "Department management",
				Columns:     []string{"ID", "Name", "Head of Dept", "Actions"},
				Fixture:     "departments",
				Key:         dashboard.KeyField("id"),
				Cells: func(r table.Record) []table.Cell {
					return []table.Cell{
						{Text: r.String("id")},
						{Text: r.String("name")},
						{Text: r.String("hod")},
						{Text: "Edit · Delete", Tone: badge.ToneBlue},
					}
				},
			},
			{
				Slug:        setup.SlugDesignations,
				Section:     Section,
				Title:       "Designations",
				Description: "Designation management",
				Columns:     []string{"ID", "Job Title", "Grade", "Actions"},
				Fixture:     "designations",
				Key:         dashboard.KeyField("id"),
				Cells: func(r table.Record) []table.Cell {
					return []table.Cell{
						{Text: r.String("id")},
						{Text: r.String("title")},
						setup.GradeBadge(r.String("grade")).Cell(),
						{Text: "Edit · Delete", Tone: badge.ToneBlue},
					}
				},
			},
		},
	}
}

func Pages() []*dashboard.Definition {
	return []*dashboard.Definition{EmployeeDirectoryPage(), ContractsFilesPage(), OrgStructurePage()}
}
