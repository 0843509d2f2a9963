package shared

import (
	"net/http"
	"strings"
)

// Viewport reads the width and format query parameters of a view request.
type Viewport struct {
	Width  int
	Format string
}

const (
	FormatJSON = "json"
	FormatText = "text"
)

func ParseViewport(r *http.Request, v *Validator) Viewport {
	query := r.URL.Query()
	format := strings.ToLower(strings.TrimSpace(query.Get("format")))
	if format == "" {
		format = FormatJSON
	}
	v.Enum("format", format, []string{FormatJSON, FormatText}, "must be json or text")
	return Viewport{
		Width:  v.Int("width", query.Get("width"), 0, 0),
		Format: format,
	}
}
