package setup

import (
	"testing"

	"hris/internal/table"
)

func TestHolidayYearFilter(t *testing.T) {
	year, ok := HolidaysPage().Filter("year")
	if !ok {
		t.Fatalf("expected year filter")
	}
	rows := []table.Record{
		{"id": "a", "date": "2023-01-01"},
		{"id": "b", "date": "2024-01-01"},
		{"id": "c", "date": "20235-01-01"},
	}
	got := year.Apply(rows, "2023")
	if len(got) != 1 || got[0].String("id") != "a" {
		t.Fatalf("unexpected filter result %v", got)
	}
	if got := year.Apply(rows, "All"); len(got) != 3 {
		t.Fatalf("expected all rows, got %d", len(got))
	}
}

func TestGradeBadge(t *testing.T) {
	if b := GradeBadge("M1"); b.Tone != "purple" {
		t.Fatalf("expected purple management grade, got %q", b.Tone)
	}
	if b := GradeBadge("L3"); b.Tone != "indigo" {
		t.Fatalf("expected indigo grade, got %q", b.Tone)
	}
	if b := GradeBadge(""); b.Tone != "gray" {
		t.Fatalf("expected gray fallback, got %q", b.Tone)
	}
}

func TestComponentCells(t *testing.T) {
	cells := componentCells(table.Record{"name": "PF", "type": "Deduction", "isTaxable": false, "status": "Inactive"})
	if cells[1].Text != "- Deduction" || cells[1].Tone != "red" {
		t.Fatalf("unexpected type cell %+v", cells[1])
	}
	if cells[4].Text != "Non-taxable" {
		t.Fatalf("unexpected taxable cell %+v", cells[4])
	}
	if cells[5].Text != "Inactive" {
		t.Fatalf("unexpected status cell %+v", cells[5])
	}
}

func TestRecurringCell(t *testing.T) {
	if got := holidayCells(table.Record{"recurring": true})[4].Text; got != "Yearly" {
		t.Fatalf("expected Yearly, got %q", got)
	}
	if got := holidayCells(table.Record{})[4].Text; got != "No" {
		t.Fatalf("expected No, got %q", got)
	}
}

func TestCellsMatchColumns(t *testing.T) {
	for _, page := range Pages() {
		if got := len(page.Cells(table.Record{})); got != len(page.Columns) {
			t.Fatalf("%s: %d cells for %d columns", page.Slug, got, len(page.Columns))
		}
	}
}
