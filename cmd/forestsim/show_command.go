package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"forestsim/internal/config"
	"forestsim/internal/forest"
	"forestsim/internal/store"
	"forestsim/internal/textutil"
)

type forestView struct {
	Forest  *forest.Forest `json:"forest" yaml:"forest"`
	Summary forest.Summary `json:"summary" yaml:"summary"`
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	var from string
	var format string

	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Print one forest without starting the shell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			f, err := loadForView(cmd, cfg, args[0], from)
			if err != nil {
				return err
			}
			return writeForest(cmd, f, format)
		},
	}

	cmd.Flags().StringVar(&from, "from", "csv", "Source to read: csv or db")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, table, json or yaml")
	return cmd
}

func loadForView(cmd *cobra.Command, cfg *config.Config, name, from string) (*forest.Forest, error) {
	switch strings.ToLower(strings.TrimSpace(from)) {
	case "csv", "":
		f := forest.New(name)
		result, err := f.LoadCSV(cfg.CSVPath(name))
		if err != nil {
			if errors.Is(err, forest.ErrSourceNotFound) {
				return nil, fmt.Errorf("error opening/reading %s.csv", name)
			}
			return nil, err
		}
		for _, problem := range result.Problems {
			fmt.Fprintf(cmd.ErrOrStderr(), "Invalid data format in CSV file: %s\n", problem.Text)
		}
		return f, nil
	case "db":
		st, err := store.Open(cfg)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		f, err := st.Load(contextOf(cmd), name)
		if err != nil {
			return nil, fmt.Errorf("error opening/reading %s: %w", store.FileName(name), err)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("unsupported source %q (use csv or db)", from)
	}
}

func writeForest(cmd *cobra.Command, f *forest.Forest, format string) error {
	out := cmd.OutOrStdout()
	switch format = strings.ToLower(strings.TrimSpace(format)); format {
	case "text", "":
		return f.Display(out)
	case "table":
		fmt.Fprintf(out, "Forest name: %s\n", f.Name)
		fmt.Fprintln(out, renderForestTable(f, shouldColorize(out)))
		return nil
	case "json", "yaml":
		return writeStructured(out, format, forestView{Forest: f, Summary: f.Summary()})
	default:
		return fmt.Errorf("unsupported format %q (use text, table, json or yaml)", format)
	}
}

var treeColumns = []column{
	{title: "#", numeric: true},
	{title: "Species"},
	{title: "Planted", numeric: true},
	{title: "Height", numeric: true},
	{title: "Growth", numeric: true},
}

// renderForestTable lists the trees with a footer carrying the tree count and
// average height.
func renderForestTable(f *forest.Forest, colorize bool) string {
	rows := make([]table.Row, 0, f.Len())
	for i, tree := range f.Trees {
		rows = append(rows, table.Row{
			i,
			textutil.Title(string(tree.Species)),
			tree.YearOfPlanting,
			fmt.Sprintf("%.2f'", tree.Height),
			fmt.Sprintf("%.1f%%", tree.GrowthPercent()),
		})
	}
	summary := f.Summary()
	footer := table.Row{"", fmt.Sprintf("%d trees", summary.Count), "avg", fmt.Sprintf("%.2f'", summary.AverageHeight), ""}
	return renderTable(treeColumns, rows, footer, colorize)
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
