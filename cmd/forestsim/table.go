package main

import (
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

// column describes one table column. Numeric columns are right-aligned.
type column struct {
	title   string
	numeric bool
}

// forestStyle is the rounded style with headers and footers left in their
// given case. Colour is only applied for terminals.
func forestStyle(colorize bool) table.Style {
	style := table.StyleRounded
	style.Format.Header = text.FormatDefault
	style.Format.Footer = text.FormatDefault
	if colorize {
		style.Color.Header = text.Colors{text.Bold, text.FgGreen}
		style.Color.Footer = text.Colors{text.Italic, text.FgHiBlack}
	}
	return style
}

// renderTable lays out rows under columns. A non-empty footer is appended as
// a summary line.
func renderTable(columns []column, rows []table.Row, footer table.Row, colorize bool) string {
	if len(columns) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(forestStyle(colorize))

	header := make(table.Row, len(columns))
	configs := make([]table.ColumnConfig, len(columns))
	for i, c := range columns {
		header[i] = c.title
		configs[i] = table.ColumnConfig{Number: i + 1, AlignHeader: text.AlignLeft}
		if c.numeric {
			configs[i].Align = text.AlignRight
			configs[i].AlignFooter = text.AlignRight
		}
	}
	tw.AppendHeader(header)
	tw.AppendRows(rows)
	if len(footer) > 0 {
		tw.AppendFooter(footer)
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
