package dashboard

import "errors"

var (
	ErrPageNotFound       = errors.New("page not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrUnknownFilter      = errors.New("unknown filter")
	ErrInvalidFilterValue = errors.New("invalid filter value")
	ErrUnknownAction      = errors.New("unknown action")
	ErrUnknownPanel       = errors.New("unknown panel")
	ErrUnknownEdit        = errors.New("unknown row edit")
	ErrRowNotFound        = errors.New("row not found")
	ErrStillLoading       = errors.New("page is still loading")
)
