package payroll

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"hris/internal/dashboard"
	"hris/internal/table"
)

type InputLine struct {
	Type   string
	Amount decimal.Decimal
}

func ComputePayroll(baseSalary decimal.Decimal, inputs []InputLine) (gross, deductions, net decimal.Decimal) {
	gross = baseSalary
	for _, input := range inputs {
		switch input.Type {
		case ElementTypeEarning:
			gross = gross.Add(input.Amount)
		case ElementTypeDeduction:
			deductions = deductions.Add(input.Amount)
		}
	}
	net = gross.Sub(deductions)
	return gross, deductions, net
}

// PreviewNet is the net salary of a review row: basic + allowances + bonus - deductions.
func PreviewNet(r table.Record) decimal.Decimal {
	_, _, net := ComputePayroll(amount(r, "basic"), []InputLine{
		{Type: ElementTypeEarning, Amount: amount(r, "allowances")},
		{Type: ElementTypeEarning, Amount: amount(r, "bonus")},
		{Type: ElementTypeDeduction, Amount: amount(r, "deductions")},
	})
	return net
}

// ParseBonus accepts a plain amount. An empty value means zero.
func ParseBonus(raw string) (decimal.Decimal, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return decimal.Zero, nil
	}
	bonus, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	if bonus.IsNegative() {
		return decimal.Zero, ErrInvalidBonus
	}
	return bonus, nil
}

// ApplyBonus sets the ad-hoc bonus of the row with id rowKey and recomputes its net.
func ApplyBonus(records []table.Record, rowKey, value string) ([]table.Record, error) {
	bonus, err := ParseBonus(value)
	if err != nil {
		return nil, err
	}
	idx, err := dashboard.FindRow(records, "id", rowKey)
	if err != nil {
		return nil, err
	}
	out := append([]table.Record(nil), records...)
	row := out[idx].Clone()
	row["bonus"] = bonus.InexactFloat64()
	row["net"] = PreviewNet(row).InexactFloat64()
	out[idx] = row
	return out, nil
}

// Totals sums net salaries across the review rows.
func Totals(records []table.Record) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(PreviewNet(r))
	}
	return total
}

var printer = message.NewPrinter(language.English)

func FormatMoney(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	return sign + printer.Sprintf("$%.2f", d.InexactFloat64())
}

func amount(r table.Record, field string) decimal.Decimal {
	value, ok := r.Get(field)
	if !ok || value == nil {
		return decimal.Zero
	}
	switch v := value.(type) {
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case float64:
		return decimal.NewFromFloat(v)
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Zero
		}
		return d
	}
	return decimal.Zero
}
