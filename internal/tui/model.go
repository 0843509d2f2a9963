// Package tui is the terminal front end of the dashboard: one mounted page
// at a time, laid out as a table or as cards depending on the window width.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hris/internal/dashboard"
	"hris/internal/render"
	"hris/internal/table"
)

const DefaultBreakpoint = 100

type Options struct {
	Registry   *dashboard.Registry
	Loader     dashboard.Loader
	Page       string
	Breakpoint int
}

type loadedMsg struct {
	screen *dashboard.Screen
}

type Model struct {
	ctx        context.Context
	pages      []*dashboard.Definition
	loader     dashboard.Loader
	breakpoint int
	keys       KeyMap

	current   int
	screen    *dashboard.Screen
	panel     int
	sizeIndex []int
	search    textinput.Model
	searching bool
	status    string

	width  int
	height int
}

func New(ctx context.Context, opts Options) (Model, error) {
	pages := opts.Registry.All()
	current := 0
	if opts.Page != "" {
		def, err := opts.Registry.Get(opts.Page)
		if err != nil {
			return Model{}, err
		}
		for i, p := range pages {
			if p == def {
				current = i
			}
		}
	}
	breakpoint := opts.Breakpoint
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	search := textinput.New()
	search.Prompt = "Search: "
	search.Placeholder = "type to filter rows"

	model := Model{
		ctx:        ctx,
		pages:      pages,
		loader:     opts.Loader,
		breakpoint: breakpoint,
		keys:       DefaultKeyMap,
		current:    current,
		search:     search,
	}
	model.mount()
	return model, nil
}

func (model Model) Init() tea.Cmd {
	return waitFor(model.ctx, model.screen)
}

func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height

	case loadedMsg:
		if message.screen != model.screen {
			return model, nil
		}
		model.status = ""

	case tea.KeyMsg:
		if model.searching {
			return model.handleSearchKeys(message)
		}
		return model.handleKeys(message)
	}
	return model, nil
}

func (model Model) handleSearchKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.SearchDone):
		model.searching = false
		model.search.Blur()
		return model, nil
	case key.Matches(message, model.keys.SearchCancel):
		model.searching = false
		model.search.Blur()
		model.search.SetValue("")
		empty := ""
		model.apply(dashboard.Command{Search: &empty})
		return model, nil
	}
	var cmd tea.Cmd
	model.search, cmd = model.search.Update(message)
	value := model.search.Value()
	model.apply(dashboard.Command{Search: &value})
	return model, cmd
}

func (model Model) handleKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		model.screen.Close()
		return model, tea.Quit
	case key.Matches(message, model.keys.NextTab):
		return model.switchTo(model.current + 1)
	case key.Matches(message, model.keys.PrevTab):
		return model.switchTo(model.current - 1)
	case key.Matches(message, model.keys.NextPanel):
		model.focusPanel(model.panel + 1)
	case key.Matches(message, model.keys.Search):
		model.searching = true
		return model, model.search.Focus()
	case key.Matches(message, model.keys.NextPage):
		model.apply(dashboard.Command{Action: dashboard.ActionNext})
	case key.Matches(message, model.keys.PrevPage):
		model.apply(dashboard.Command{Action: dashboard.ActionPrev})
	case key.Matches(message, model.keys.PageSize):
		next := (model.sizeIndex[model.panel] + 1) % len(table.PageSizeOptions)
		if model.apply(dashboard.Command{PerPage: table.PageSizeOptions[next].String()}) {
			model.sizeIndex[model.panel] = next
		}
	case key.Matches(message, model.keys.Filter):
		model.cycleFilter()
	case key.Matches(message, model.keys.Reload):
		model.apply(dashboard.Command{Action: dashboard.ActionReload})
		return model, waitFor(model.ctx, model.screen)
	}
	return model, nil
}

func (model Model) switchTo(index int) (tea.Model, tea.Cmd) {
	n := len(model.pages)
	if n == 0 {
		return model, nil
	}
	model.screen.Close()
	model.current = ((index % n) + n) % n
	model.mount()
	return model, waitFor(model.ctx, model.screen)
}

func (model *Model) mount() {
	def := model.pages[model.current]
	model.screen = dashboard.Mount(def, model.loader, dashboard.MountOptions{})
	model.screen.Start(model.ctx)
	model.panel = 0
	model.sizeIndex = make([]int, len(def.Tables()))
	model.searching = false
	model.search.Blur()
	model.search.SetValue("")
	model.status = ""
}

// focusPanel moves commands to another table of a page with several and
// shows that table's search text.
func (model *Model) focusPanel(index int) {
	n := len(model.sizeIndex)
	if n < 2 {
		return
	}
	model.panel = ((index % n) + n) % n
	tables := model.screen.Snapshot(0, 0).Tables()
	model.search.SetValue(tables[model.panel].View.Header.Search)
	model.status = ""
}

// focused returns the table commands go to and the name that selects it.
func (model Model) focused() (*dashboard.Definition, string) {
	def := model.screen.Definition()
	tables := def.Tables()
	if len(tables) == 1 {
		return tables[0], ""
	}
	return tables[model.panel], tables[model.panel].Slug
}

func (model *Model) cycleFilter() {
	def, _ := model.focused()
	if len(def.Filters) == 0 {
		return
	}
	f := def.Filters[0]
	selected := model.screen.Snapshot(0, 0).Tables()[model.panel].Filters[f.Name]
	next := 0
	for i, option := range f.Options {
		if option.Value == selected {
			next = (i + 1) % len(f.Options)
		}
	}
	model.apply(dashboard.Command{Filters: map[string]string{f.Name: f.Options[next].Value}})
}

func (model *Model) apply(cmd dashboard.Command) bool {
	_, cmd.Panel = model.focused()
	if err := model.screen.Apply(model.ctx, cmd); err != nil {
		model.status = err.Error()
		return false
	}
	model.status = ""
	return true
}

func (model Model) View() string {
	var b strings.Builder
	b.WriteString(model.tabs())
	b.WriteString("\n\n")

	tables := model.screen.Snapshot(model.width, model.breakpoint).Tables()
	if filters := model.filterLine(tables[model.panel]); filters != "" {
		b.WriteString(filters)
		b.WriteByte('\n')
	}
	if model.searching {
		b.WriteString(model.search.View())
		b.WriteString("\n")
	}
	renderer := render.New(model.width)
	marker := lipgloss.NewStyle().Bold(true).Foreground(render.DefaultTheme.Tones["blue"])
	for i, t := range tables {
		if i > 0 {
			b.WriteString("\n")
		}
		if len(tables) > 1 && i == model.panel {
			b.WriteString(marker.Render("▸ " + t.View.Header.Title))
			b.WriteString("\n")
		}
		b.WriteString(renderer.Render(t.View))
	}
	if model.status != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(render.DefaultTheme.Tones["red"]).Render(model.status))
	}
	b.WriteString("\n")
	b.WriteString(model.helpLine())
	return b.String()
}

func (model Model) tabs() string {
	active := lipgloss.NewStyle().Bold(true).Underline(true)
	inactive := lipgloss.NewStyle().Foreground(render.DefaultTheme.FaintText)
	parts := make([]string, 0, len(model.pages))
	for i, def := range model.pages {
		if i == model.current {
			parts = append(parts, active.Render(def.Title))
			continue
		}
		parts = append(parts, inactive.Render(def.Title))
	}
	line := strings.Join(parts, " │ ")
	if model.width > 0 {
		line = lipgloss.NewStyle().MaxWidth(model.width).Render(line)
	}
	return line
}

func (model Model) filterLine(snap dashboard.PanelSnapshot) string {
	def, _ := model.focused()
	parts := make([]string, 0, len(def.Filters))
	for _, f := range def.Filters {
		label := snap.Filters[f.Name]
		for _, option := range f.Options {
			if option.Value == label {
				label = option.Label
			}
		}
		parts = append(parts, f.Label+": "+label)
	}
	return strings.Join(parts, "   ")
}

func (model Model) helpLine() string {
	parts := make([]string, 0, len(model.keys.help()))
	for _, binding := range model.keys.help() {
		h := binding.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return lipgloss.NewStyle().Foreground(render.DefaultTheme.FaintText).Render(strings.Join(parts, " · "))
}

func waitFor(ctx context.Context, screen *dashboard.Screen) tea.Cmd {
	return func() tea.Msg {
		_ = screen.Wait(ctx)
		return loadedMsg{screen: screen}
	}
}
