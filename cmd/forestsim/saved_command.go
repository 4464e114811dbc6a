package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"forestsim/internal/store"
)

var savedColumns = []column{
	{title: "Forest"},
	{title: "Trees", numeric: true},
	{title: "Avg Height", numeric: true},
}

func newSavedCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "saved",
		Short: "List forests saved in the data directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			st, err := store.Open(cfg)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			names, err := st.List()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(names) == 0 {
				fmt.Fprintf(out, "No saved forests in %s\n", st.Dir())
				return nil
			}

			var total int
			rows := make([]table.Row, 0, len(names))
			for _, name := range names {
				f, err := st.Load(contextOf(cmd), name)
				if err != nil {
					rows = append(rows, table.Row{name, "-", "unreadable"})
					continue
				}
				total += f.Len()
				rows = append(rows, table.Row{name, f.Len(), fmt.Sprintf("%.2f", f.AverageHeight())})
			}
			footer := table.Row{fmt.Sprintf("%d saved", len(names)), total, ""}
			fmt.Fprintln(out, renderTable(savedColumns, rows, footer, shouldColorize(out)))
			return nil
		},
	}
}
