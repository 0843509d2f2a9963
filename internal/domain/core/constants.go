package core

import "hris/internal/domain/badge"

const Section = "hr"

const (
	SlugEmployeeDirectory = "employee-directory"
	SlugContractsFiles    = "contracts-files"
	SlugOrgStructure      = "org-structure"
)

type EmploymentStatus string

const (
	EmploymentActive   EmploymentStatus = "Active"
	EmploymentOnLeave  EmploymentStatus = "On Leave"
	EmploymentInactive EmploymentStatus = "Inactive"
)

var EmploymentStatuses = badge.NewMapping("employment status", badge.Neutral, map[EmploymentStatus]badge.Badge{
	EmploymentActive:   {Label: "Active", Tone: badge.ToneGreen},
	EmploymentOnLeave:  {Label: "On Leave", Tone: badge.ToneAmber},
	EmploymentInactive: {Label: "Inactive", Tone: badge.ToneGray},
})

type DocumentType string

const (
	DocumentPDF  DocumentType = "pdf"
	DocumentDOCX DocumentType = "docx"
	DocumentDOC  DocumentType = "doc"
	DocumentJPG  DocumentType = "jpg"
	DocumentPNG  DocumentType = "png"
	DocumentZIP  DocumentType = "zip"
	DocumentRAR  DocumentType = "rar"
	DocumentTXT  DocumentType = "txt"
)

// Unknown types fall back to a generic file icon.
var DocumentTypes = badge.NewMapping("document type", badge.Badge{Tone: badge.ToneGray, Icon: "▤"}, map[DocumentType]badge.Badge{
	DocumentPDF:  {Label: "PDF", Tone: badge.ToneRed, Icon: "▤"},
	DocumentDOCX: {Label: "Word", Tone: badge.ToneBlue, Icon: "▤"},
	DocumentDOC:  {Label: "Word", Tone: badge.ToneBlue, Icon: "▤"},
	DocumentJPG:  {Label: "Image", Tone: badge.TonePurple, Icon: "▨"},
	DocumentPNG:  {Label: "Image", Tone: badge.TonePurple, Icon: "▨"},
	DocumentZIP:  {Label: "Archive", Tone: badge.ToneYellow, Icon: "▦"},
	DocumentRAR:  {Label: "Archive", Tone: badge.ToneYellow, Icon: "▦"},
	DocumentTXT:  {Label: "Text", Tone: badge.ToneGray, Icon: "▤"},
})
