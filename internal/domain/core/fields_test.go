package core

import (
	"testing"

	"hris/internal/table"
)

func TestInitials(t *testing.T) {
	cases := map[string]string{
		"Sarah Connor":       "SC",
		"chrisjen avasarala": "CA",
		"Mary Jane Watson":   "MJ",
		"Cher":               "C",
		"":                   "?",
		"  42 Douglas  ":     "D",
	}
	for in, want := range cases {
		if got := Initials(in); got != want {
			t.Fatalf("Initials(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestContactLine(t *testing.T) {
	if got := ContactLine("a@b.c", "+1 2"); got != "a@b.c · +1 2" {
		t.Fatalf("unexpected contact line %q", got)
	}
	if got := ContactLine("", " +1 2 "); got != "+1 2" {
		t.Fatalf("unexpected contact line %q", got)
	}
}

func TestStatusFilter(t *testing.T) {
	page := EmployeeDirectoryPage()
	status, ok := page.Filter("status")
	if !ok {
		t.Fatalf("expected status filter")
	}
	rows := []table.Record{
		{"id": 1, "status": "Active"},
		{"id": 2, "status": "On Leave"},
		{"id": 3, "status": "Inactive"},
	}
	got := status.Apply(rows, string(EmploymentOnLeave))
	if len(got) != 1 || got[0].String("id") != "2" {
		t.Fatalf("unexpected filter result %v", got)
	}
}

func TestUnknownDocumentTypeFallsBack(t *testing.T) {
	cells := documentCells(table.Record{"type": "exe", "name": "setup"})
	if cells[0].Tone != "gray" {
		t.Fatalf("expected gray fallback, got %q", cells[0].Tone)
	}
	if _, err := DocumentTypes.Lookup("exe"); err == nil {
		t.Fatalf("expected lookup error for unknown type")
	}
}

func TestCellsMatchColumns(t *testing.T) {
	for _, page := range Pages() {
		if got := len(page.Cells(table.Record{})); got != len(page.Columns) {
			t.Fatalf("%s: %d cells for %d columns", page.Slug, got, len(page.Columns))
		}
	}
}

func TestOrgStructureHasTwoTables(t *testing.T) {
	page := OrgStructurePage()
	tables := page.Tables()
	if len(tables) != 2 || tables[0].Fixture != "departments" || tables[1].Fixture != "designations" {
		t.Fatalf("unexpected tables %+v", tables)
	}
	cells := tables[1].Cells(table.Record{"id": "DES-003", "title": "Engineering Manager", "grade": "M1"})
	if len(cells) != len(tables[1].Columns) || cells[2].Text != "M1" {
		t.Fatalf("unexpected designation cells %+v", cells)
	}
}
