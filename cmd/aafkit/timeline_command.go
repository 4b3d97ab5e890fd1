package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"aafkit/internal/aaf"
	"aafkit/internal/aaf/aaferr"
	"aafkit/internal/logging"
	"aafkit/internal/textutil"
	"aafkit/internal/timeline"
)

func newTimelineCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	var compress bool
	var output string
	var showDiagnostics bool

	cmd := &cobra.Command{
		Use:   "timeline <file>",
		Short: "Interpret the top-level composition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if compress && strings.TrimSpace(output) == "" {
				return errors.New("--compress requires --output")
			}
			return ctx.withFile(cmd, args[0], func(runCtx context.Context, r *run, f *aaf.File) error {
				model, err := r.interpret(runCtx, f)
				if err != nil {
					return err
				}

				switch {
				case strings.TrimSpace(output) != "":
					written, err := exportJSON(strings.TrimSpace(output), model,
						compress || r.cfg.Export.Compress, r.cfg.Export.CompressionLevel)
					if err != nil {
						return err
					}
					logging.NewComponentLogger(r.logger, "cli").Info("timeline exported",
						logging.String(logging.FieldEventType, "timeline_exported"),
						logging.String("output", written),
					)
					fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", written)
				case asJSON:
					if err := writeJSON(cmd, model); err != nil {
						return err
					}
				default:
					renderTimeline(cmd.OutOrStdout(), model)
				}

				renderDiagnostics(cmd.ErrOrStderr(), f.Diagnostics(), showDiagnostics)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the timeline model as JSON")
	cmd.Flags().BoolVar(&compress, "compress", false, "zstd compress the --output file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the JSON model to this file")
	cmd.Flags().BoolVar(&showDiagnostics, "diagnostics", false, "List every diagnostic instead of a summary")
	return cmd
}

func renderTimeline(w io.Writer, m *timeline.Model) {
	summary := section{title: "Composition"}
	summary.add("Name", m.Composition)
	summary.add("File", m.File)
	summary.add("Product", m.Product)
	summary.add("Vendor", m.Vendor)
	summary.add("Edit rate", formatRate(m.EditRate))
	summary.add("Start", formatTimecode(m.Timecode.Start, m.Timecode.FPS, m.Timecode.Drop))
	summary.add("End", formatTimecode(m.Timecode.End, m.Timecode.FPS, m.Timecode.Drop))
	summary.add("Length", fmt.Sprintf("%d (%s)", m.Length, formatDuration(m.Length, m.EditRate)))
	summary.add("Sample rate", sampleFormatLabel(m.SampleRate))
	summary.add("Sample size", sampleFormatLabel(m.SampleSize))
	summary.add("Tracks", fmt.Sprintf("%d audio, %d video", len(m.AudioTracks), len(m.VideoTracks)))
	summary.add("Essences", fmt.Sprintf("%d audio, %d video", len(m.AudioEssences), len(m.VideoEssences)))
	writeSections(w, summary)

	tracks := append(append([]*timeline.Track(nil), m.AudioTracks...), m.VideoTracks...)
	for _, t := range tracks {
		fmt.Fprintln(w)
		fmt.Fprintln(w, renderTable(trackTitle(t), []string{"Item", "Position", "Length", "Offset", "Name", "Essences", "Gain", "Mute"},
			trackRows(m, t),
			[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignLeft, alignLeft, alignRight, alignLeft},
		))
	}

	if len(m.Markers) > 0 {
		rows := make([][]string, 0, len(m.Markers))
		for _, mk := range m.Markers {
			rows = append(rows, []string{
				fmt.Sprint(mk.Start),
				fmt.Sprint(mk.Length),
				mk.Name,
				mk.Comment,
				fmt.Sprintf("#%02x%02x%02x", mk.Color[0]>>8, mk.Color[1]>>8, mk.Color[2]>>8),
			})
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, renderTable("Markers", []string{"Start", "Length", "Name", "Comment", "Colour"}, rows,
			[]columnAlignment{alignRight, alignRight}))
	}
	if len(m.Comments) > 0 {
		comments := section{title: "Comments"}
		for _, c := range m.Comments {
			comments.add(c.Name, c.Text)
		}
		fmt.Fprintln(w)
		writeSections(w, comments)
	}
}

func trackTitle(t *timeline.Track) string {
	title := fmt.Sprintf("%s %d", titleLabel(t.Kind.String()), t.Number)
	if t.Name != "" {
		title += " " + t.Name
	}
	if t.Format != timeline.FormatUnset {
		title += " (" + t.Format.String() + ")"
	}
	if t.Gain != nil {
		title += " gain " + levelLabel(t.Gain)
	}
	return title
}

func trackRows(m *timeline.Model, t *timeline.Track) [][]string {
	rows := make([][]string, 0, len(t.Items))
	for _, it := range t.Items {
		switch {
		case it.Clip != nil:
			c := it.Clip
			names := make([]string, 0, len(c.Essences))
			for _, e := range m.ClipEssences(t.Kind, c) {
				names = append(names, e.UniqueName)
			}
			gain := ""
			if c.Gain != nil {
				gain = levelLabel(c.Gain)
			}
			if c.Automation != nil {
				gain = strings.TrimSpace(gain + " auto")
			}
			rows = append(rows, []string{
				"clip",
				fmt.Sprint(c.Position),
				fmt.Sprint(c.Length),
				fmt.Sprint(c.EssenceOffset),
				c.Name,
				strings.Join(names, ", "),
				gain,
				textutil.Ternary(c.Mute, "muted", ""),
			})
		case it.Transition != nil:
			tr := it.Transition
			rows = append(rows, []string{
				tr.Fade.String(),
				fmt.Sprint(tr.Position),
				fmt.Sprint(tr.Length),
				"",
				tr.Interpolation.String(),
				"",
				"",
				"",
			})
		}
	}
	return rows
}

// levelLabel renders a constant level in dB and an automated one by its
// point count.
func levelLabel(l *timeline.Level) string {
	if l.Kind == timeline.LevelVariable {
		return fmt.Sprintf("%d points", len(l.Points))
	}
	v := l.Value()
	if v <= 0 {
		return "-inf dB"
	}
	return fmt.Sprintf("%+.1f dB", 20*math.Log10(v))
}

func sampleFormatLabel(v int) string {
	switch {
	case v < 0:
		return "mixed"
	case v == 0:
		return "-"
	default:
		return fmt.Sprint(v)
	}
}

// renderDiagnostics reports what the reader dropped or defaulted.
func renderDiagnostics(w io.Writer, d *aaferr.Diagnostics, full bool) {
	records := d.Report()
	if len(records) == 0 {
		return
	}
	if full {
		rows := make([][]string, 0, len(records))
		for _, rec := range records {
			rows = append(rows, []string{rec.Level.String(), string(rec.Kind), rec.Path, rec.Message})
		}
		fmt.Fprintln(w, renderTable("Diagnostics", []string{"Level", "Kind", "Path", "Message"}, rows, nil))
		return
	}
	counts := d.Counts()
	kinds := make([]string, 0, len(counts))
	for kind := range counts {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)
	parts := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		parts = append(parts, fmt.Sprintf("%s %d", kind, counts[aaferr.Kind(kind)]))
	}
	fmt.Fprintf(w, "Diagnostics: %d (%s); rerun with --diagnostics for details\n", len(records), strings.Join(parts, ", "))
}
