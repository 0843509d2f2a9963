package payroll

import "hris/internal/domain/badge"

const Section = "payroll"

const (
	SlugPayslipHistory = "payslip-history"
	SlugBankReports    = "bank-reports"
	SlugRunPayroll     = "run-payroll"
)

const (
	ElementTypeEarning   = "earning"
	ElementTypeDeduction = "deduction"
)

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
	PaymentFailed  PaymentStatus = "failed"
)

var PaymentStatuses = badge.NewMapping("payment status", badge.Neutral, map[PaymentStatus]badge.Badge{
	PaymentPaid:    {Label: "Paid", Tone: badge.ToneEmerald},
	PaymentPending: {Label: "Pending", Tone: badge.ToneAmber},
	PaymentFailed:  {Label: "Failed", Tone: badge.ToneRed},
})

type BankFileStatus string

const (
	BankFileGenerated  BankFileStatus = "generated"
	BankFileDownloaded BankFileStatus = "downloaded"
	BankFileArchived   BankFileStatus = "archived"
)

var BankFileStatuses = badge.NewMapping("bank file status", badge.Neutral, map[BankFileStatus]badge.Badge{
	BankFileGenerated:  {Label: "Generated", Tone: badge.ToneBlue},
	BankFileDownloaded: {Label: "Downloaded", Tone: badge.TonePurple},
	BankFileArchived:   {Label: "Archived", Tone: badge.ToneSlate},
})

type BankFileFormat string

const (
	FormatCSV BankFileFormat = "CSV"
	FormatXML BankFileFormat = "XML"
	FormatTXT BankFileFormat = "TXT"
)

var BankFileFormats = badge.NewMapping("bank file format", badge.Neutral, map[BankFileFormat]badge.Badge{
	FormatCSV: {Label: "CSV", Tone: badge.ToneGreen},
	FormatXML: {Label: "XML", Tone: badge.ToneOrange},
	FormatTXT: {Label: "TXT", Tone: badge.ToneGray},
})
