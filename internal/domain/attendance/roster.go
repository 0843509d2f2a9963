package attendance

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"hris/internal/dashboard"
	"hris/internal/table"
)

var (
	ErrInvalidShiftChange = errors.New("shift change must look like day=code")
	ErrUnknownShift       = errors.New("unknown shift code")
	ErrUnknownDay         = errors.New("unknown week day")
)

// TotalHours sums the hours of every scheduled shift. Unknown codes count zero.
func TotalHours(schedule map[string]any) int {
	total := 0
	for _, code := range schedule {
		if shift, ok := Shifts[ShiftCode(table.Text(code))]; ok {
			total += shift.Hours
		}
	}
	return total
}

// ChangeShift applies a "day=code" change to the roster row with id rowKey.
func ChangeShift(records []table.Record, rowKey, value string) ([]table.Record, error) {
	day, code, ok := strings.Cut(value, "=")
	if !ok {
		return nil, ErrInvalidShiftChange
	}
	day = strings.ToLower(strings.TrimSpace(day))
	code = strings.ToUpper(strings.TrimSpace(code))
	if _, known := weekDayLabels[day]; !known {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDay, day)
	}
	if _, known := Shifts[ShiftCode(code)]; !known {
		return nil, fmt.Errorf("%w: %s", ErrUnknownShift, code)
	}

	idx, err := dashboard.FindRow(records, "id", rowKey)
	if err != nil {
		return nil, err
	}
	out := append([]table.Record(nil), records...)
	row := out[idx].Clone()
	schedule := map[string]any{}
	if current, ok := row["schedule"].(map[string]any); ok {
		schedule = maps.Clone(current)
	}
	schedule[day] = code
	row["schedule"] = schedule
	out[idx] = row
	return out, nil
}
