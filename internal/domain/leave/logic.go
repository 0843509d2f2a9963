package leave

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"hris/internal/dashboard"
	"hris/internal/table"
)

const displayDate = "Jan 02, 2006"

var (
	ErrNotPending      = errors.New("leave request is not pending")
	ErrInvalidDecision = errors.New("decision must be approved or rejected")
)

// CalculateDays returns inclusive day count between start and end.
func CalculateDays(start, end time.Time) (float64, error) {
	if end.Before(start) {
		return 0, errors.New("end date before start date")
	}
	return end.Sub(start).Hours()/24 + 1, nil
}

// RequestDays prefers the stored day count and falls back to the date range.
func RequestDays(r table.Record) (float64, error) {
	if days := r.Float("days"); days > 0 {
		return days, nil
	}
	start, err := time.Parse(displayDate, r.String("fromDate"))
	if err != nil {
		return 0, fmt.Errorf("parse fromDate: %w", err)
	}
	end, err := time.Parse(displayDate, r.String("toDate"))
	if err != nil {
		return 0, fmt.Errorf("parse toDate: %w", err)
	}
	return CalculateDays(start, end)
}

func DurationLabel(days float64) string {
	unit := "Days"
	if days == 1 {
		unit = "Day"
	}
	return strconv.FormatFloat(days, 'f', -1, 64) + " " + unit
}

// Decide approves or rejects the pending request with id rowKey.
func Decide(records []table.Record, rowKey, value string) ([]table.Record, error) {
	decision := Status(value)
	if decision != StatusApproved && decision != StatusRejected {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDecision, value)
	}
	idx, err := dashboard.FindRow(records, "id", rowKey)
	if err != nil {
		return nil, err
	}
	if Status(records[idx].String("status")) != StatusPending {
		return nil, fmt.Errorf("%w: %s", ErrNotPending, rowKey)
	}
	out := append([]table.Record(nil), records...)
	row := out[idx].Clone()
	row["status"] = string(decision)
	out[idx] = row
	return out, nil
}
