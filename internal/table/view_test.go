package table

import "testing"

func sampleGrid(records []Record) Grid {
	return BuildGrid(records,
		func(r Record) string { return r.String("id") },
		func(r Record) []Cell {
			return []Cell{{Text: r.String("name")}, {Text: r.String("dept"), Tone: "blue"}}
		})
}

func TestViewTableLayout(t *testing.T) {
	tbl, rec := newRecorded([]string{"Name", "Dept"})
	tbl.SetData(makeRecords(25))
	view := tbl.View(sampleGrid(rec.latest), LayoutTable)

	if view.Layout != LayoutTable || len(view.Rows) != 10 || view.Cards != nil {
		t.Fatalf("unexpected table view: layout=%s rows=%d cards=%d", view.Layout, len(view.Rows), len(view.Cards))
	}
	if view.NoData {
		t.Fatal("did not expect no data fallback")
	}
	if !view.Header.ShowSearch {
		t.Fatal("expected search box when not loading")
	}
	if view.Footer == nil {
		t.Fatal("expected footer")
	}
	if !view.Footer.ShowPager || view.Footer.CanPrev || !view.Footer.CanNext {
		t.Fatalf("unexpected pager state %+v", view.Footer)
	}
	if len(view.Footer.PageSizes) != 6 {
		t.Fatalf("expected 6 page size options, got %d", len(view.Footer.PageSizes))
	}
	all := view.Footer.PageSizes[5]
	if all.Label != "ALL" || all.Value != 25 {
		t.Fatalf("unexpected ALL option %+v", all)
	}
	if !view.Footer.PageSizes[0].Selected {
		t.Fatal("expected 10 to be selected")
	}
}

func TestViewCardLayoutUsesColumnLabels(t *testing.T) {
	tbl, rec := newRecorded([]string{"Name"})
	tbl.SetData(makeRecords(3))
	view := tbl.View(sampleGrid(rec.latest), LayoutCards)

	if len(view.Cards) != 3 || view.Rows != nil {
		t.Fatalf("expected 3 cards, got %d (rows %d)", len(view.Cards), len(view.Rows))
	}
	fields := view.Cards[0].Fields
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[0].Label != "Name" || fields[0].Cell.Text != "Employee 01" {
		t.Fatalf("unexpected first field %+v", fields[0])
	}
	if fields[1].Label != "" {
		t.Fatalf("expected empty label beyond known columns, got %q", fields[1].Label)
	}
}

func TestViewWithoutColumns(t *testing.T) {
	tbl := New(Options{})
	tbl.SetLoading(true)
	view := tbl.View(Grid{}, LayoutCards)
	if view.Columns == nil || len(view.Columns) != 0 {
		t.Fatalf("expected empty column list, got %v", view.Columns)
	}
	if view.Skeleton == nil || view.Skeleton.Columns != 0 || view.Skeleton.Rows != 10 {
		t.Fatalf("unexpected skeleton %+v", view.Skeleton)
	}
}

func TestViewLoading(t *testing.T) {
	tbl, _ := newRecorded([]string{"Name", "Dept"})
	tbl.SetData(makeRecords(25))
	tbl.SetLoading(true)
	view := tbl.View(Grid{}, LayoutTable)

	if view.Header.ShowSearch {
		t.Fatal("expected search box hidden while loading")
	}
	if view.Skeleton == nil || view.Skeleton.Columns != 2 {
		t.Fatalf("unexpected skeleton %+v", view.Skeleton)
	}
	if view.NoData || view.Footer != nil || view.Rows != nil {
		t.Fatal("expected only the skeleton while loading")
	}
}

func TestViewEmptyDataset(t *testing.T) {
	tbl, _ := newRecorded([]string{"Name"})
	tbl.SetData(nil)
	view := tbl.View(Grid{}, LayoutTable)
	if !view.NoData {
		t.Fatal("expected no data fallback")
	}
	if view.Footer != nil {
		t.Fatal("expected no pagination for empty data")
	}
}

func TestFooterHidesPageSizesForSmallData(t *testing.T) {
	tbl, rec := newRecorded([]string{"Name"})
	tbl.SetData(makeRecords(10))
	view := tbl.View(sampleGrid(rec.latest), LayoutTable)
	if view.Footer == nil {
		t.Fatal("expected footer")
	}
	if view.Footer.PageSizes != nil {
		t.Fatal("expected page size selector hidden for 10 records")
	}
	if view.Footer.ShowPager {
		t.Fatal("expected pager hidden for a single page")
	}
}

func TestFooterSelectsOnlyTheChosenPageSize(t *testing.T) {
	tbl, rec := newRecorded([]string{"Name"})
	tbl.SetData(makeRecords(20))

	selected := func(view View) []string {
		var labels []string
		for _, choice := range view.Footer.PageSizes {
			if choice.Selected {
				labels = append(labels, choice.Label)
			}
		}
		return labels
	}

	if err := tbl.SetPageSize(20); err != nil {
		t.Fatalf("set page size: %v", err)
	}
	if got := selected(tbl.View(sampleGrid(rec.latest), LayoutTable)); len(got) != 1 || got[0] != "20" {
		t.Fatalf("expected only 20 selected, got %v", got)
	}
	if err := tbl.SetPageSize(PageSizeAll); err != nil {
		t.Fatalf("set page size: %v", err)
	}
	if got := selected(tbl.View(sampleGrid(rec.latest), LayoutTable)); len(got) != 1 || got[0] != "ALL" {
		t.Fatalf("expected only ALL selected, got %v", got)
	}
}

func TestPageCountWithLeavesTableUnchanged(t *testing.T) {
	tbl, _ := newRecorded(nil)
	tbl.SetData(makeRecords(25))
	before := tbl.State()

	if got := tbl.PageCountWith(makeRecords(25), "", nil); got != 3 {
		t.Fatalf("expected 3 pages, got %d", got)
	}
	size := PageSize(20)
	if got := tbl.PageCountWith(makeRecords(25), "Employee 1", &size); got != 1 {
		t.Fatalf("expected 1 page for 10 matches of 20, got %d", got)
	}
	all := PageSizeAll
	if got := tbl.PageCountWith(nil, "", &all); got != 1 {
		t.Fatalf("expected 1 page for empty data, got %d", got)
	}
	if tbl.State() != before || tbl.Search() != "" {
		t.Fatalf("expected state unchanged, got %+v", tbl.State())
	}
}

func TestLayoutFor(t *testing.T) {
	if LayoutFor(0, 80) != LayoutTable {
		t.Fatal("unknown width should use table layout")
	}
	if LayoutFor(60, 80) != LayoutCards {
		t.Fatal("narrow width should use cards")
	}
	if LayoutFor(80, 80) != LayoutTable {
		t.Fatal("width at the breakpoint should use table layout")
	}
}

func TestRecordPaths(t *testing.T) {
	r := Record{"employee": map[string]any{"name": "Alice", "pay": 12.5}, "days": 2, "amount": "3.25"}
	if r.String("employee.name") != "Alice" {
		t.Fatalf("unexpected name %q", r.String("employee.name"))
	}
	if r.Float("employee.pay") != 12.5 || r.Float("days") != 2 || r.Float("amount") != 3.25 {
		t.Fatal("unexpected numeric values")
	}
	if r.String("employee.missing") != "" || r.String("days.x") != "" {
		t.Fatal("expected empty text for missing paths")
	}
}
