package payroll

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"hris/internal/dashboard"
	"hris/internal/table"
)

func TestComputePayroll(t *testing.T) {
	gross, deductions, net := ComputePayroll(decimal.NewFromInt(1000), []InputLine{
		{Type: ElementTypeEarning, Amount: decimal.NewFromInt(200)},
		{Type: ElementTypeDeduction, Amount: decimal.NewFromInt(50)},
		{Type: "other", Amount: decimal.NewFromInt(999)},
	})
	if !gross.Equal(decimal.NewFromInt(1200)) {
		t.Fatalf("expected gross 1200, got %s", gross)
	}
	if !deductions.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected deductions 50, got %s", deductions)
	}
	if !net.Equal(decimal.NewFromInt(1150)) {
		t.Fatalf("expected net 1150, got %s", net)
	}
}

func previewRows() []table.Record {
	return []table.Record{
		{"id": 1, "name": "Alice Johnson", "basic": 5000, "allowances": 1200, "deductions": 300, "bonus": 0, "net": 5900},
		{"id": 2, "name": "Mark Smith", "basic": 3000, "allowances": 500, "deductions": 150, "bonus": 0, "net": 3350},
	}
}

func TestApplyBonusRecomputesNet(t *testing.T) {
	rows := previewRows()
	out, err := ApplyBonus(rows, "1", "250.50")
	if err != nil {
		t.Fatalf("apply bonus: %v", err)
	}
	if got := out[0].Float("bonus"); got != 250.5 {
		t.Fatalf("expected bonus 250.5, got %v", got)
	}
	if got := out[0].Float("net"); got != 6150.5 {
		t.Fatalf("expected net 6150.5, got %v", got)
	}
	if rows[0].Float("bonus") != 0 {
		t.Fatalf("input rows must not be modified")
	}
	if out[1].Float("net") != 3350 {
		t.Fatalf("other rows must be unchanged")
	}
}

func TestApplyBonusRejectsBadInput(t *testing.T) {
	if _, err := ApplyBonus(previewRows(), "1", "-5"); !errors.Is(err, ErrInvalidBonus) {
		t.Fatalf("expected ErrInvalidBonus, got %v", err)
	}
	if _, err := ApplyBonus(previewRows(), "1", "ten"); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if _, err := ApplyBonus(previewRows(), "99", "10"); !errors.Is(err, dashboard.ErrRowNotFound) {
		t.Fatalf("expected ErrRowNotFound, got %v", err)
	}
}

func TestApplyBonusEmptyClears(t *testing.T) {
	rows := previewRows()
	rows[0]["bonus"] = 100
	out, err := ApplyBonus(rows, "1", "")
	if err != nil {
		t.Fatalf("apply bonus: %v", err)
	}
	if out[0].Float("net") != 5900 {
		t.Fatalf("expected net 5900, got %v", out[0].Float("net"))
	}
}

func TestTotals(t *testing.T) {
	if got := Totals(previewRows()); !got.Equal(decimal.NewFromInt(9250)) {
		t.Fatalf("expected 9250, got %s", got)
	}
}

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"5900":     "$5,900.00",
		"186450.5": "$186,450.50",
		"0":        "$0.00",
		"-12.3":    "-$12.30",
	}
	for in, want := range cases {
		if got := FormatMoney(decimal.RequireFromString(in)); got != want {
			t.Fatalf("FormatMoney(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestPayslipMonthFilter(t *testing.T) {
	page := PayslipHistoryPage()
	month, ok := page.Filter("month")
	if !ok {
		t.Fatalf("expected month filter")
	}
	rows := []table.Record{{"period": "Oct 2023"}, {"period": "Sep 2023"}}
	if got := month.Apply(rows, "Sep"); len(got) != 1 || got[0].String("period") != "Sep 2023" {
		t.Fatalf("unexpected filter result %v", got)
	}
	if got := month.Apply(rows, "All"); len(got) != 2 {
		t.Fatalf("expected all rows, got %d", len(got))
	}
}

func TestCellsMatchColumns(t *testing.T) {
	record := table.Record{
		"id": "X", "period": "Oct 2023", "status": "paid", "format": "CSV",
		"netPay": 5900, "basic": 1, "allowances": 1, "deductions": 1, "bonus": 1,
		"employee": map[string]any{"name": "Alice", "id": "EMP001", "dept": "Engineering"},
	}
	for _, page := range Pages() {
		if got := len(page.Cells(record)); got != len(page.Columns) {
			t.Fatalf("%s: %d cells for %d columns", page.Slug, got, len(page.Columns))
		}
	}
}
