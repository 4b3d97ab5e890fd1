package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"aafkit/internal/aaf"
	"aafkit/internal/aaf/catalog"
)

type classRow struct {
	Name       string `json:"name"`
	ID         string `json:"id"`
	Parent     string `json:"parent,omitempty"`
	Concrete   bool   `json:"concrete"`
	Discovered bool   `json:"discovered"`
	Properties int    `json:"properties"`
}

func newClassesCommand(ctx *commandContext) *cobra.Command {
	var metaOnly bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "classes <file>",
		Short: "List the class catalog after MetaDictionary loading",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withFile(cmd, args[0], func(_ context.Context, _ *run, f *aaf.File) error {
				rows := classRows(f.Catalog().Classes(), metaOnly)
				if asJSON {
					return writeJSON(cmd, rows)
				}
				out := cmd.OutOrStdout()
				if len(rows) == 0 {
					fmt.Fprintln(out, "No classes discovered in the MetaDictionary")
					return nil
				}
				table := make([][]string, 0, len(rows))
				for _, r := range rows {
					table = append(table, []string{
						r.Name,
						r.Parent,
						yesNo(r.Concrete),
						yesNo(r.Discovered),
						fmt.Sprint(r.Properties),
					})
				}
				fmt.Fprintln(out, renderTable("",
					[]string{"Class", "Parent", "Concrete", "Discovered", "Properties"},
					table,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
				))
				stats := f.MetaStats
				fmt.Fprintf(out, "%d classes; MetaDictionary defined %d, named %d, rejected %d; properties added %d, skipped %d\n",
					len(rows), stats.ClassesDefined, stats.ClassesNamed, stats.ClassesRejected,
					stats.PropertiesAdded, stats.PropertiesSkipped)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&metaOnly, "meta-only", false, "Only list classes discovered in the file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}

// classRows lists classes sorted by label. metaOnly keeps classes the
// MetaDictionary defined or extended.
func classRows(classes []*catalog.Class, metaOnly bool) []classRow {
	rows := make([]classRow, 0, len(classes))
	for _, cls := range classes {
		extended := false
		for _, p := range cls.Properties() {
			if p.Meta {
				extended = true
				break
			}
		}
		if metaOnly && !cls.Meta && !extended {
			continue
		}
		row := classRow{
			Name:       cls.Label(),
			ID:         cls.ID.String(),
			Concrete:   cls.Concrete,
			Discovered: cls.Meta,
			Properties: len(cls.Properties()),
		}
		if cls.Parent != nil && cls.Parent != cls {
			row.Parent = cls.Parent.Label()
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows
}
