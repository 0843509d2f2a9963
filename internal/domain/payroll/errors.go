package payroll

import "errors"

var (
	ErrInvalidBonus  = errors.New("bonus must be a non-negative amount")
	ErrInvalidAmount = errors.New("invalid amount")
)
