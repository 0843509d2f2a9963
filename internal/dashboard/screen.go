package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"sync"

	"golang.org/x/sync/errgroup"

	"hris/internal/table"
)

const (
	ActionNext   = "next"
	ActionPrev   = "prev"
	ActionReload = "reload"
)

// Command is one batch of user interactions on one table of the page. Fields
// are applied in order: filters, search, page size, page, action. The batch
// is checked as a whole first, so a rejected command changes nothing.
type Command struct {
	// Panel selects the table on a page with several. Empty means the first.
	Panel   string            `json:"panel,omitempty"`
	Filters map[string]string `json:"filters,omitempty"`
	Search  *string           `json:"search,omitempty"`
	PerPage string            `json:"perPage,omitempty"`
	Page    int               `json:"page,omitempty"`
	Action  string            `json:"action,omitempty"`
}

type MountOptions struct {
	// OnEmit is told about every page delivered by a table.
	OnEmit func(slug string)
}

// panel is one table of a screen with its own dataset, filters and page state.
type panel struct {
	def       *Definition
	table     *table.Table
	all       []table.Record
	filters   map[string]string
	visible   []table.Record
	emissions int
}

// Screen is one mounted page. It owns the datasets and the filter values and
// keeps the page slice last delivered by each of its tables.
type Screen struct {
	mu     sync.Mutex
	def    *Definition
	loader Loader
	onEmit func(string)
	panels []*panel

	loading bool
	loadErr error
	gen     int
	loaded  chan struct{}
	cancel  context.CancelFunc
}

func Mount(def *Definition, loader Loader, opts MountOptions) *Screen {
	s := &Screen{
		def:    def,
		loader: loader,
		onEmit: opts.OnEmit,
		loaded: make(chan struct{}),
	}
	for _, t := range def.Tables() {
		s.panels = append(s.panels, s.newPanel(t))
	}
	return s
}

func (s *Screen) newPanel(def *Definition) *panel {
	p := &panel{def: def, filters: make(map[string]string, len(def.Filters))}
	for _, f := range def.Filters {
		p.filters[f.Name] = f.Default
	}
	p.table = table.New(table.Options{
		Title:       def.Title,
		Description: def.Description,
		Columns:     def.Columns,
		OnVisiblePageChange: func(slice []table.Record) {
			s.receive(p, slice)
		},
	})
	return p
}

func (s *Screen) Definition() *Definition { return s.def }

// Start fetches the datasets in the background. A running fetch is superseded.
func (s *Screen) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = cancel
	s.gen++
	gen := s.gen
	s.loading = true
	for _, p := range s.panels {
		p.table.SetLoading(true)
	}
	select {
	case <-s.loaded:
		s.loaded = make(chan struct{})
	default:
	}
	done := s.loaded
	s.mu.Unlock()

	go func() {
		records := make([][]table.Record, len(s.panels))
		group, groupCtx := errgroup.WithContext(ctx)
		for i, p := range s.panels {
			group.Go(func() error {
				loaded, err := s.loader.Load(groupCtx, p.def.Fixture)
				records[i] = loaded
				return err
			})
		}
		err := group.Wait()

		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.gen {
			return
		}
		defer close(done)
		s.loading = false
		for _, p := range s.panels {
			p.table.SetLoading(false)
		}
		if err != nil {
			slog.Warn("page load failed", "page", s.def.Slug, "err", err)
			s.loadErr = err
			for _, p := range s.panels {
				p.all = nil
				p.table.SetData(nil)
			}
			return
		}
		s.loadErr = nil
		for i, p := range s.panels {
			p.all = records[i]
			p.reapply()
		}
	}()
}

// Wait blocks until the latest fetch has finished.
func (s *Screen) Wait(ctx context.Context) error {
	s.mu.Lock()
	done := s.loaded
	s.mu.Unlock()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Screen) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Screen) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Screen) Apply(ctx context.Context, cmd Command) error {
	reload, err := s.apply(cmd)
	if err != nil {
		return err
	}
	if reload {
		s.Start(ctx)
	}
	return nil
}

func (s *Screen) apply(cmd Command) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.panel(cmd.Panel)
	if err != nil {
		return false, err
	}
	size, err := p.check(cmd)
	if err != nil {
		return false, err
	}

	if len(cmd.Filters) > 0 {
		maps.Copy(p.filters, cmd.Filters)
		p.reapply()
	}
	if cmd.Search != nil {
		p.table.SetSearch(*cmd.Search)
	}
	if size != nil {
		if err := p.table.SetPageSize(*size); err != nil {
			return false, err
		}
	}
	if cmd.Page != 0 {
		if err := p.table.GoToPage(cmd.Page); err != nil {
			return false, err
		}
	}
	switch cmd.Action {
	case ActionNext:
		p.table.NextPage()
	case ActionPrev:
		p.table.PrevPage()
	case ActionReload:
		return true, nil
	}
	return false, nil
}

func (s *Screen) panel(name string) (*panel, error) {
	def, err := s.def.Table(name)
	if err != nil {
		return nil, err
	}
	for _, p := range s.panels {
		if p.def == def {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownPanel, name)
}

// check validates cmd against the state it would produce and returns the
// parsed page size, if any. It changes nothing.
func (p *panel) check(cmd Command) (*table.PageSize, error) {
	for name, value := range cmd.Filters {
		f, ok := p.def.Filter(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownFilter, name)
		}
		if !f.Valid(value) {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidFilterValue, name, value)
		}
	}
	var size *table.PageSize
	if cmd.PerPage != "" {
		parsed, err := table.ParsePageSize(cmd.PerPage)
		if err != nil {
			return nil, err
		}
		size = &parsed
	}
	switch cmd.Action {
	case "", ActionNext, ActionPrev, ActionReload:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, cmd.Action)
	}
	if cmd.Page != 0 {
		filters := maps.Clone(p.filters)
		maps.Copy(filters, cmd.Filters)
		search := p.table.Search()
		if cmd.Search != nil {
			search = *cmd.Search
		}
		count := p.table.PageCountWith(p.filtered(filters), search, size)
		if cmd.Page < 1 || cmd.Page > count {
			return nil, fmt.Errorf("%w: %d of %d", table.ErrPageOutOfRange, cmd.Page, count)
		}
	}
	return size, nil
}

// Edit runs the row edit named field on the first table that has one and
// hands the new dataset to that table.
func (s *Screen) Edit(rowKey, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading {
		return ErrStillLoading
	}
	for _, p := range s.panels {
		edit, ok := p.def.Edits[field]
		if !ok {
			continue
		}
		updated, err := edit(p.all, rowKey, value)
		if err != nil {
			return err
		}
		p.all = updated
		p.reapply()
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownEdit, field)
}

type PanelSnapshot struct {
	Panel     string            `json:"panel"`
	Filters   map[string]string `json:"filters,omitempty"`
	Emissions int               `json:"emissions"`
	View      table.View        `json:"view"`
}

type Snapshot struct {
	Page      string            `json:"page"`
	Section   string            `json:"section"`
	Filters   map[string]string `json:"filters,omitempty"`
	Emissions int               `json:"emissions"`
	Error     string            `json:"error,omitempty"`
	View      table.View        `json:"view"`
	// Panels is set on pages with several tables. The fields above then
	// describe the first one.
	Panels []PanelSnapshot `json:"panels,omitempty"`
}

// Tables returns every table of the snapshot in page order.
func (s Snapshot) Tables() []PanelSnapshot {
	if len(s.Panels) > 0 {
		return s.Panels
	}
	return []PanelSnapshot{{Panel: s.Page, Filters: s.Filters, Emissions: s.Emissions, View: s.View}}
}

// Snapshot lays out the last delivered pages for a viewport width.
func (s *Screen) Snapshot(width, breakpoint int) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	layout := table.LayoutFor(width, breakpoint)
	panels := make([]PanelSnapshot, 0, len(s.panels))
	for _, p := range s.panels {
		grid := table.BuildGrid(p.visible, p.def.Key, p.def.Cells)
		panels = append(panels, PanelSnapshot{
			Panel:     p.def.Slug,
			Filters:   maps.Clone(p.filters),
			Emissions: p.emissions,
			View:      p.table.View(grid, layout),
		})
	}
	snap := Snapshot{
		Page:      s.def.Slug,
		Section:   s.def.Section,
		Filters:   panels[0].Filters,
		Emissions: panels[0].Emissions,
		View:      panels[0].View,
	}
	if len(panels) > 1 {
		snap.Panels = panels
	}
	if s.loadErr != nil {
		snap.Error = "data unavailable"
	}
	return snap
}

func (p *panel) filtered(filters map[string]string) []table.Record {
	records := p.all
	for _, f := range p.def.Filters {
		records = f.Apply(records, filters[f.Name])
	}
	return records
}

func (p *panel) reapply() {
	p.table.SetData(p.filtered(p.filters))
}

// receive runs with s.mu held, or during Mount before the screen is shared.
func (s *Screen) receive(p *panel, slice []table.Record) {
	p.visible = slice
	p.emissions++
	if s.onEmit != nil {
		s.onEmit(s.def.Slug)
	}
}
