package dashboard

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"hris/internal/table"
)

// Loader supplies the authoritative dataset of a page.
type Loader interface {
	Load(ctx context.Context, fixture string) ([]table.Record, error)
}

type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Filter is a page-level dropdown or tab applied before the table search.
type Filter struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Default string   `json:"default"`
	Options []Option `json:"options"`

	// Field is compared for equality with the selected value unless Match is set.
	Field string                          `json:"-"`
	All   string                          `json:"-"`
	Match func(table.Record, string) bool `json:"-"`
}

func (f Filter) Valid(value string) bool {
	for _, option := range f.Options {
		if option.Value == value {
			return true
		}
	}
	return false
}

func (f Filter) Apply(records []table.Record, value string) []table.Record {
	if f.All != "" && value == f.All {
		return records
	}
	out := make([]table.Record, 0, len(records))
	for _, record := range records {
		if f.matches(record, value) {
			out = append(out, record)
		}
	}
	return out
}

func (f Filter) matches(record table.Record, value string) bool {
	if f.Match != nil {
		return f.Match(record, value)
	}
	return record.String(f.Field) == value
}

// EditFunc returns the dataset with one row changed. It must not modify
// records in place.
type EditFunc func(records []table.Record, rowKey, value string) ([]table.Record, error)

type Definition struct {
	Slug        string
	Section     string
	Title       string
	Description string
	Columns     []string
	Fixture     string
	Filters     []Filter
	Key         table.KeyFunc
	Cells       table.CellsFunc
	Edits       map[string]EditFunc

	// Panels are the tables of a page that shows more than one. Each panel
	// is a table definition of its own; the page then needs no fixture.
	Panels []*Definition
}

// Tables returns the panels of the page, or the page itself.
func (d *Definition) Tables() []*Definition {
	if len(d.Panels) > 0 {
		return d.Panels
	}
	return []*Definition{d}
}

// Table resolves one table of the page by slug. The empty name selects the first.
func (d *Definition) Table(name string) (*Definition, error) {
	tables := d.Tables()
	if name == "" {
		return tables[0], nil
	}
	for _, t := range tables {
		if t.Slug == name {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownPanel, name)
}

func (d *Definition) Filter(name string) (Filter, bool) {
	for _, f := range d.Filters {
		if f.Name == name {
			return f, true
		}
	}
	return Filter{}, false
}

func (d *Definition) validate() error {
	if strings.TrimSpace(d.Slug) == "" {
		return fmt.Errorf("page definition without slug")
	}
	if len(d.Panels) > 0 {
		return d.validatePanels()
	}
	switch {
	case d.Fixture == "":
		return fmt.Errorf("page %s: fixture is required", d.Slug)
	case d.Cells == nil:
		return fmt.Errorf("page %s: cell renderer is required", d.Slug)
	}
	for _, f := range d.Filters {
		if !f.Valid(f.Default) {
			return fmt.Errorf("page %s: filter %s default %q is not an option", d.Slug, f.Name, f.Default)
		}
	}
	return nil
}

func (d *Definition) validatePanels() error {
	seen := make(map[string]bool, len(d.Panels))
	for _, panel := range d.Panels {
		if len(panel.Panels) > 0 {
			return fmt.Errorf("page %s: panel %s has panels of its own", d.Slug, panel.Slug)
		}
		if err := panel.validate(); err != nil {
			return fmt.Errorf("page %s: %w", d.Slug, err)
		}
		if seen[panel.Slug] {
			return fmt.Errorf("page %s: duplicate panel %q", d.Slug, panel.Slug)
		}
		seen[panel.Slug] = true
	}
	return nil
}

type Summary struct {
	Slug        string    `json:"slug"`
	Section     string    `json:"section"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Columns     []string  `json:"columns"`
	Filters     []Filter  `json:"filters,omitempty"`
	Edits       []string  `json:"edits,omitempty"`
	Panels      []Summary `json:"panels,omitempty"`
}

func (d *Definition) Summary() Summary {
	s := Summary{
		Slug:        d.Slug,
		Section:     d.Section,
		Title:       d.Title,
		Description: d.Description,
		Columns:     d.Columns,
		Filters:     d.Filters,
	}
	for name := range d.Edits {
		s.Edits = append(s.Edits, name)
	}
	slices.Sort(s.Edits)
	for _, panel := range d.Panels {
		s.Panels = append(s.Panels, panel.Summary())
	}
	return s
}

// KeyField returns a KeyFunc reading one field.
func KeyField(field string) table.KeyFunc {
	return func(r table.Record) string { return r.String(field) }
}

// FindRow returns the index of the row whose key field equals rowKey.
func FindRow(records []table.Record, field, rowKey string) (int, error) {
	for i, record := range records {
		if record.String(field) == rowKey {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrRowNotFound, rowKey)
}
