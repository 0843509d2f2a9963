// Package table implements the paged, searchable table shared by every
// dashboard page. A Table owns its search text and page state; the parent
// owns the dataset and learns about the visible page through a callback.
package table

import "fmt"

type Options struct {
	Title       string
	Description string
	Columns     []string
	// OnVisiblePageChange receives the visible page whenever its content
	// differs from the previously delivered page.
	OnVisiblePageChange func([]Record)
}

type PageState struct {
	ItemsPerPage int `json:"itemsPerPage"`
	CurrentPage  int `json:"currentPage"`
	PageCount    int `json:"pageCount"`
}

// Table is not safe for concurrent use; callers serialize access.
type Table struct {
	title       string
	description string
	columns     []string
	onChange    func([]Record)

	data    []Record
	search  string
	loading bool
	page    PageState
	size    PageSize

	filtered []Record
	visible  []Record

	last    fingerprint
	emitted bool
}

func New(opts Options) *Table {
	t := &Table{
		title:       opts.Title,
		description: opts.Description,
		columns:     opts.Columns,
		onChange:    opts.OnVisiblePageChange,
		data:        []Record{},
		page: PageState{
			ItemsPerPage: DefaultItemsPerPage,
			CurrentPage:  1,
			PageCount:    1,
		},
		size: DefaultItemsPerPage,
	}
	t.refresh()
	return t
}

// SetData replaces the dataset wholesale. nil is treated as empty.
func (t *Table) SetData(data []Record) {
	if data == nil {
		data = []Record{}
	}
	t.data = data
	t.refresh()
}

func (t *Table) SetLoading(loading bool) {
	t.loading = loading
}

func (t *Table) SetSearch(search string) {
	if search == t.search {
		return
	}
	t.search = search
	t.refresh()
}

// SetPageSize applies a selector option and returns to the first page.
// PageSizeAll uses the length of the unfiltered dataset.
func (t *Table) SetPageSize(size PageSize) error {
	n := int(size)
	if size == PageSizeAll {
		n = len(t.data)
	} else if !validPageSize(size) {
		return fmt.Errorf("%w: %d", ErrInvalidPageSize, n)
	}
	if n < 1 {
		n = 1
	}
	t.page.ItemsPerPage = n
	t.page.CurrentPage = 1
	t.size = size
	t.refresh()
	return nil
}

func (t *Table) GoToPage(n int) error {
	if n < 1 || n > t.page.PageCount {
		return fmt.Errorf("%w: %d of %d", ErrPageOutOfRange, n, t.page.PageCount)
	}
	if n == t.page.CurrentPage {
		return nil
	}
	t.page.CurrentPage = n
	t.refresh()
	return nil
}

func (t *Table) NextPage() bool {
	if t.page.CurrentPage+1 > t.page.PageCount {
		return false
	}
	t.page.CurrentPage++
	t.refresh()
	return true
}

func (t *Table) PrevPage() bool {
	if t.page.CurrentPage-1 < 1 {
		return false
	}
	t.page.CurrentPage--
	t.refresh()
	return true
}

// PageCountWith reports the page count the table would have after
// SetData(data), SetSearch(search) and, when size is not nil,
// SetPageSize(*size). The table is left unchanged.
func (t *Table) PageCountWith(data []Record, search string, size *PageSize) int {
	perPage := t.page.ItemsPerPage
	if size != nil {
		perPage = int(*size)
		if *size == PageSizeAll {
			perPage = len(data)
		}
		perPage = max(perPage, 1)
	}
	return pageCount(len(Filter(data, search)), perPage)
}

func (t *Table) State() PageState { return t.page }

// PageSize is the selector option last applied.
func (t *Table) PageSize() PageSize { return t.size }

func (t *Table) Search() string { return t.search }

func (t *Table) Loading() bool { return t.loading }

func (t *Table) Columns() []string { return t.columns }

func (t *Table) DataLen() int { return len(t.data) }

func (t *Table) Filtered() []Record { return append([]Record(nil), t.filtered...) }

func (t *Table) Visible() []Record { return append([]Record{}, t.visible...) }

// refresh recomputes filtered data, page count and the visible slice, in that
// order, then delivers the slice if its content changed.
func (t *Table) refresh() {
	t.filtered = Filter(t.data, t.search)
	t.page.PageCount = pageCount(len(t.filtered), t.page.ItemsPerPage)
	if t.page.CurrentPage > t.page.PageCount || t.page.CurrentPage < 1 {
		t.page.CurrentPage = 1
	}
	t.visible = pageSlice(t.filtered, t.page)
	t.emit()
}

func (t *Table) emit() {
	fp := fingerprintOf(t.visible)
	if t.emitted && fp == t.last {
		return
	}
	t.last = fp
	t.emitted = true
	if t.onChange != nil {
		t.onChange(t.Visible())
	}
}

func pageCount(filtered, perPage int) int {
	if perPage < 1 {
		return 1
	}
	count := (filtered + perPage - 1) / perPage
	if count < 1 {
		return 1
	}
	return count
}

func pageSlice(filtered []Record, page PageState) []Record {
	start := (page.CurrentPage - 1) * page.ItemsPerPage
	if start >= len(filtered) {
		return []Record{}
	}
	end := min(start+page.ItemsPerPage, len(filtered))
	out := make([]Record, end-start)
	copy(out, filtered[start:end])
	return out
}

func validPageSize(size PageSize) bool {
	for _, option := range PageSizeOptions {
		if option == size {
			return true
		}
	}
	return false
}
