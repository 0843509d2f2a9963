package table

import "fmt"

type Layout string

const (
	LayoutTable Layout = "table"
	LayoutCards Layout = "cards"
)

// LayoutFor picks cards below the breakpoint. A width of zero means unknown
// and falls back to the table layout.
func LayoutFor(width, breakpoint int) Layout {
	if width > 0 && width < breakpoint {
		return LayoutCards
	}
	return LayoutTable
}

type Header struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	ShowSearch  bool   `json:"showSearch"`
	Search      string `json:"search"`
}

type Skeleton struct {
	Columns int `json:"columns"`
	Rows    int `json:"rows"`
}

type CardField struct {
	Label string `json:"label"`
	Cell  Cell   `json:"cell"`
}

type Card struct {
	Key    string      `json:"key"`
	Index  int         `json:"index"`
	Fields []CardField `json:"fields"`
}

type PageSizeChoice struct {
	Label    string `json:"label"`
	Value    int    `json:"value"`
	Selected bool   `json:"selected"`
}

type Footer struct {
	PageSizes    []PageSizeChoice `json:"pageSizes,omitempty"`
	ItemsPerPage int              `json:"itemsPerPage"`
	CurrentPage  int              `json:"currentPage"`
	PageCount    int              `json:"pageCount"`
	ShowPager    bool             `json:"showPager"`
	CanPrev      bool             `json:"canPrev"`
	CanNext      bool             `json:"canNext"`
}

// View is everything a renderer needs to draw the table once.
type View struct {
	Header        Header    `json:"header"`
	Columns       []string  `json:"columns"`
	Layout        Layout    `json:"layout"`
	State         PageState `json:"state"`
	Loading       bool      `json:"loading"`
	Skeleton      *Skeleton `json:"skeleton,omitempty"`
	Rows          []Row     `json:"rows,omitempty"`
	Cards         []Card    `json:"cards,omitempty"`
	NoData        bool      `json:"noData"`
	Footer        *Footer   `json:"footer,omitempty"`
	SearchSummary string    `json:"searchSummary,omitempty"`
	TotalCount    int       `json:"totalCount"`
	FilteredCount int       `json:"filteredCount"`
}

// View lays out grid, the row content the parent built from the last
// delivered page, in the requested layout.
func (t *Table) View(grid Grid, layout Layout) View {
	columns := t.columns
	if columns == nil {
		columns = []string{}
	}
	v := View{
		Header: Header{
			Title:       t.title,
			Description: t.description,
			ShowSearch:  !t.loading,
			Search:      t.search,
		},
		Columns:       columns,
		Layout:        layout,
		State:         t.page,
		Loading:       t.loading,
		TotalCount:    len(t.data),
		FilteredCount: len(t.filtered),
	}

	switch {
	case t.loading:
		v.Skeleton = &Skeleton{Columns: len(columns), Rows: t.page.ItemsPerPage}
	case layout == LayoutCards:
		v.Cards = cardsFor(grid, columns)
	default:
		v.Rows = grid.Rows
	}

	if !t.loading && (len(grid.Rows) == 0 || len(t.visible) == 0) {
		v.NoData = true
	}
	if t.search == "" && !t.loading && len(t.data) > 0 {
		v.Footer = t.footer()
	}
	if t.search != "" {
		v.SearchSummary = searchSummary(len(t.filtered), t.search)
	}
	return v
}

func (t *Table) footer() *Footer {
	f := &Footer{
		ItemsPerPage: t.page.ItemsPerPage,
		CurrentPage:  t.page.CurrentPage,
		PageCount:    t.page.PageCount,
		ShowPager:    t.page.PageCount > 1,
		CanPrev:      t.page.CurrentPage > 1,
		CanNext:      t.page.CurrentPage < t.page.PageCount,
	}
	if len(t.data) > DefaultItemsPerPage {
		f.PageSizes = make([]PageSizeChoice, 0, len(PageSizeOptions))
		for _, option := range PageSizeOptions {
			value := int(option)
			if option == PageSizeAll {
				value = len(t.data)
			}
			f.PageSizes = append(f.PageSizes, PageSizeChoice{
				Label:    option.String(),
				Value:    value,
				Selected: option == t.size,
			})
		}
	}
	return f
}

func cardsFor(grid Grid, columns []string) []Card {
	cards := make([]Card, 0, len(grid.Rows))
	for _, row := range grid.Rows {
		card := Card{Key: row.Key, Index: row.Index, Fields: make([]CardField, 0, len(row.Cells))}
		for i, cell := range row.Cells {
			label := ""
			if i < len(columns) {
				label = columns[i]
			}
			card.Fields = append(card.Fields, CardField{Label: label, Cell: cell})
		}
		cards = append(cards, card)
	}
	return cards
}

func searchSummary(count int, search string) string {
	plural := "s"
	if count == 1 {
		plural = ""
	}
	return fmt.Sprintf("%d result%s found for search %q", count, plural, search)
}
