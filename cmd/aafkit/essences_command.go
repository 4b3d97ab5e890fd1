package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"aafkit/internal/aaf"
	"aafkit/internal/timeline"
)

func newEssencesCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "essences <file>",
		Short: "List the essences the composition references",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withFile(cmd, args[0], func(runCtx context.Context, r *run, f *aaf.File) error {
				model, err := r.interpret(runCtx, f)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, struct {
						Audio []*timeline.Essence `json:"audio"`
						Video []*timeline.Essence `json:"video"`
					}{model.AudioEssences, model.VideoEssences})
				}
				renderEssences(cmd.OutOrStdout(), model)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}

func renderEssences(w io.Writer, m *timeline.Model) {
	essences := append(append([]*timeline.Essence(nil), m.AudioEssences...), m.VideoEssences...)
	if len(essences) == 0 {
		fmt.Fprintln(w, "No essences referenced")
		return
	}
	rows := make([][]string, 0, len(essences))
	for _, e := range essences {
		rows = append(rows, []string{
			titleLabel(e.Kind.String()),
			e.UniqueName,
			e.Type.String(),
			sampleFormatLabel(e.Channels),
			sampleFormatLabel(e.SampleRate),
			sampleFormatLabel(e.SampleSize),
			fmt.Sprint(e.Length),
			formatBytes(essenceBytes(e)),
			yesNo(e.Embedded),
			essenceLocation(e),
		})
	}
	fmt.Fprintln(w, renderTable("", []string{"Kind", "Name", "Type", "Channels", "Rate", "Bits", "Length", "Size", "Embedded", "Location"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight, alignLeft, alignLeft},
	))
}

func essenceLocation(e *timeline.Essence) string {
	switch {
	case e.Embedded:
		return ""
	case e.UsablePath != "":
		return e.UsablePath
	case e.OriginalPath != "":
		return e.OriginalPath + " (missing)"
	default:
		return "(unknown)"
	}
}

// essenceBytes is the sample data size, or -1 when the format is incomplete.
func essenceBytes(e *timeline.Essence) int64 {
	if e.Length <= 0 || e.Channels <= 0 || e.SampleSize <= 0 {
		return -1
	}
	return e.Length * int64(e.Channels) * int64((e.SampleSize+7)/8)
}
