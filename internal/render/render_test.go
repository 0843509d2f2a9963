package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"hris/internal/table"
)

func sampleView() table.View {
	return table.View{
		Header:  table.Header{Title: "People", ShowSearch: true},
		Columns: []string{"Name", "Status"},
		Layout:  table.LayoutTable,
		Rows: []table.Row{
			{Key: "1", Cells: []table.Cell{{Text: "Alice Johnson"}, {Text: "Active", Tone: "green"}}},
			{Key: "2", Cells: []table.Cell{{Text: "Mark Smith", Detail: "EMP002"}, {Text: "Inactive", Tone: "slate"}}},
		},
		Footer: &table.Footer{CurrentPage: 1, PageCount: 3, ShowPager: true, CanNext: true},
	}
}

func TestRenderTable(t *testing.T) {
	out := ansi.Strip(New(80).Render(sampleView()))
	for _, want := range []string{"People", "Search:", "Name", "Status", "Alice Johnson", "Inactive", "  1 / 3 ›"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "EMP002") {
		t.Fatalf("table rows must not show details:\n%s", out)
	}
}

func TestRenderCards(t *testing.T) {
	v := sampleView()
	v.Layout = table.LayoutCards
	v.Rows = nil
	v.Cards = []table.Card{{Key: "2", Fields: []table.CardField{
		{Label: "Name", Cell: table.Cell{Text: "Mark Smith", Detail: "EMP002"}},
		{Label: "", Cell: table.Cell{Text: "Extra"}},
	}}}
	out := ansi.Strip(New(40).Render(v))
	if !strings.Contains(out, "Name: Mark Smith (EMP002)") {
		t.Fatalf("expected labelled card line:\n%s", out)
	}
	if !strings.Contains(out, "\nExtra\n") {
		t.Fatalf("expected unlabelled field:\n%s", out)
	}
}

func TestRenderSkeletonAndNoData(t *testing.T) {
	v := table.View{Header: table.Header{Title: "People"}, Columns: []string{"A", "B"}, Loading: true, Skeleton: &table.Skeleton{Columns: 2, Rows: 3}}
	out := ansi.Strip(New(20).Render(v))
	if got := strings.Count(out, "░░░░░░░░"); got != 6 {
		t.Fatalf("expected 3 skeleton rows of 2 cells, got %d:\n%s", got, out)
	}
	if strings.Contains(out, "Search:") {
		t.Fatalf("search must be hidden while loading")
	}

	v = table.View{Columns: []string{"A"}, NoData: true}
	if out := ansi.Strip(New(20).Render(v)); !strings.Contains(out, NoDataText) {
		t.Fatalf("expected no-data text:\n%s", out)
	}
}

func TestRenderSearchSummary(t *testing.T) {
	v := sampleView()
	v.Footer = nil
	v.SearchSummary = `1 result found for search "ali"`
	out := ansi.Strip(New(80).Render(v))
	if !strings.Contains(out, v.SearchSummary) {
		t.Fatalf("expected summary:\n%s", out)
	}
}

func TestFooter(t *testing.T) {
	f := table.Footer{
		PageSizes: []table.PageSizeChoice{
			{Label: "10", Value: 10, Selected: true},
			{Label: "20", Value: 20},
			{Label: "ALL", Value: 25},
		},
		CurrentPage: 3,
		PageCount:   3,
		ShowPager:   true,
		CanPrev:     true,
	}
	if got := Footer(f); got != "Rows: [10] 20 ALL   ‹ 3 / 3  " {
		t.Fatalf("unexpected footer %q", got)
	}
	if got := Footer(table.Footer{CurrentPage: 1, PageCount: 1}); got != "" {
		t.Fatalf("expected empty footer, got %q", got)
	}
}

func TestShrinkFitsWidth(t *testing.T) {
	widths := shrink([]int{30, 10, 5}, 30)
	if got := totalWidth(widths); got > 30 {
		t.Fatalf("expected total <= 30, got %d (%v)", got, widths)
	}
	widths = shrink([]int{5, 5}, 3)
	if widths[0] != minColumnWidth || widths[1] != minColumnWidth {
		t.Fatalf("expected minimum widths, got %v", widths)
	}
}

func TestPadTruncates(t *testing.T) {
	if got := pad("Alice Johnson", 6); got != "Alice…" {
		t.Fatalf("unexpected truncation %q", got)
	}
	if got := pad("Al", 4); got != "Al  " {
		t.Fatalf("unexpected padding %q", got)
	}
}
