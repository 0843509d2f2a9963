package table

// Cell is the neutral content of one table cell. Tone names a semantic color
// understood by the renderers; Detail is an optional secondary line.
type Cell struct {
	Text   string `json:"text"`
	Tone   string `json:"tone,omitempty"`
	Detail string `json:"detail,omitempty"`
}

type Row struct {
	Key   string `json:"key"`
	Index int    `json:"index"`
	Cells []Cell `json:"cells"`
}

// Grid is the ordered row content a parent produces from the visible page.
// The table lays the same grid out either as table rows or as cards.
type Grid struct {
	Rows []Row `json:"rows"`
}

type KeyFunc func(Record) string

type CellsFunc func(Record) []Cell

func BuildGrid(records []Record, key KeyFunc, cells CellsFunc) Grid {
	grid := Grid{Rows: make([]Row, 0, len(records))}
	for i, record := range records {
		row := Row{Index: i}
		if key != nil {
			row.Key = key(record)
		}
		if cells != nil {
			row.Cells = cells(record)
		}
		grid.Rows = append(grid.Rows, row)
	}
	return grid
}
