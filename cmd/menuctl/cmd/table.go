package cmd

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// tableData is a rendered table: headers, string cells and optional per
// column alignment.
type tableData struct {
	Headers []string
	Rows    [][]string
	Align   []tw.Align
}

func writeTable(w io.Writer, data tableData) error {
	config := tablewriter.Config{}
	if len(data.Align) > 0 {
		config.Header.Alignment = tw.CellAlignment{PerColumn: data.Align}
		config.Row.Alignment = tw.CellAlignment{PerColumn: data.Align}
	}

	table := tablewriter.NewTable(w, tablewriter.WithConfig(config))

	headers := make([]any, len(data.Headers))
	for i, h := range data.Headers {
		headers[i] = h
	}
	table.Header(headers...)

	for _, row := range data.Rows {
		cells := make([]any, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		if err := table.Append(cells...); err != nil {
			return err
		}
	}

	return table.Render()
}
