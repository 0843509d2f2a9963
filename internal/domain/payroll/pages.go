package payroll

import (
	"strings"

	"github.com/shopspring/decimal"

	"hris/internal/dashboard"
	"hris/internal/domain/badge"
	"hris/internal/table"
)

func PayslipHistoryPage() *dashboard.Definition {
	return &dashboard.Definition{
		Slug:        SlugPayslipHistory,
		Section:     Section,
		Title:       "Payslip History",
		Description: "Browse processed payslips by period and payment status.",
		Columns:     []string{"Pay Period", "Employee", "Department", "Net Pay", "Payment Date", "Status", "Actions"},
		Fixture:     "payslips",
		Filters: []dashboard.Filter{
			{
				Name:    "month",
				Label:   "Month",
				Default: "All",
				All:     "All",
				Match: func(r table.Record, month string) bool {
					return strings.HasPrefix(r.String("period"), month)
				},
				Options: []dashboard.Option{
					{Label: "All Months", Value: "All"},
					{Label: "October", Value: "Oct"},
					{Label: "September", Value: "Sep"},
					{Label: "August", Value: "Aug"},
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
					{Label: "Paid", Value: string(PaymentPaid)},
					{Label: "Pending", Value: string(PaymentPending)},
					{Label: "Failed", Value: string(PaymentFailed)},
				},
			},
		},
		Key:   dashboard.KeyField("id"),
		Cells: payslipCells,
	}
}

func payslipCells(r table.Record) []table.Cell {
	return []table.Cell{
		{Text: r.String("period"), Detail: r.String("id")},
		{Text: r.String("employee.name"), Detail: r.String("employee.id")},
		{Text: r.String("employee.dept")},
		{Text: FormatMoney(amount(r, "netPay"))},
		{Text: r.String("dateProcessed")},
		PaymentStatuses.Resolve(PaymentStatus(r.String("status"))).Cell(),
		{Text: "Download", Tone: badge.ToneBlue},
	}
}

func BankReportsPage() *dashboard.Definition {
	return &dashboard.Definition{
		Slug:        SlugBankReports,
		Section:     Section,
		Title:       "Bank Transfer Files",
		Description: "Generated salary transfer batches for the bank.",
		Columns:     []string{"Batch ID", "Target Bank", "Pay Period", "Employees", "Total Amount", "Generated On", "Status", "Actions"},
		Fixture:     "bank_files",
		Filters: []dashboard.Filter{{
			Name:    "status",
			Label:   "Status",
			Default: "All",
			All:     "All",
			Field:   "status",
			Options: []dashboard.Option{
				{Label: "All", Value: "All"},
				{Label: "Generated", Value: string(BankFileGenerated)},
				{Label: "Downloaded", Value: string(BankFileDownloaded)},
				{Label: "Archived", Value: string(BankFileArchived)},
			},
		}},
		Key:   dashboard.KeyField("id"),
		Cells: bankFileCells,
	}
}

func bankFileCells(r table.Record) []table.Cell {
	format := BankFileFormats.Resolve(BankFileFormat(r.String("format")))
	return []table.Cell{
		{Text: r.String("id"), Tone: format.Tone, Detail: format.Label},
		{Text: r.String("bank")},
		{Text: r.String("period")},
		{Text: r.String("employees")},
		{Text: FormatMoney(amount(r, "totalAmount"))},
		{Text: r.String("generatedOn")},
		BankFileStatuses.Resolve(BankFileStatus(r.String("status"))).Cell(),
		{Text: "Download", Tone: badge.ToneBlue},
	}
}

func RunPayrollPage() *dashboard.Definition {
	return &dashboard.Definition{
		Slug:        SlugRunPayroll,
		Section:     Section,
		Title:       "Review Payroll",
		Description: "Review salaries and add ad-hoc bonuses before processing.",
		Columns:     []string{"Employee", "Basic Pay", "Allowances", "Deductions", "Bonus (Adhoc)", "Net Salary"},
		Fixture:     "payroll_preview",
		Key:         dashboard.KeyField("id"),
		Cells:       previewCells,
		Edits:       map[string]dashboard.EditFunc{"bonus": ApplyBonus},
	}
}

func previewCells(r table.Record) []table.Cell {
	deductions := amount(r, "deductions")
	bonus := amount(r, "bonus")
	bonusCell := table.Cell{Text: FormatMoney(bonus)}
	if bonus.GreaterThan(decimal.Zero) {
		bonusCell.Tone = badge.ToneGreen
	}
	return []table.Cell{
		{Text: r.String("name"), Detail: r.String("role")},
		{Text: FormatMoney(amount(r, "basic"))},
		{Text: "+" + FormatMoney(amount(r, "allowances")), Tone: badge.ToneGreen},
		{Text: "-" + FormatMoney(deductions), Tone: badge.ToneRed},
		bonusCell,
		{Text: FormatMoney(PreviewNet(r)), Tone: badge.ToneIndigo},
	}
}

func Pages() []*dashboard.Definition {
	return []*dashboard.Definition{PayslipHistoryPage(), BankReportsPage(), RunPayrollPage()}
}
