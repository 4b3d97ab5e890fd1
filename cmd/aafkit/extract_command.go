package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"aafkit/internal/aaf"
	"aafkit/internal/aaf/types"
	"aafkit/internal/cfb"
	"aafkit/internal/essence"
	"aafkit/internal/fileutil"
	"aafkit/internal/logging"
	"aafkit/internal/textutil"
	"aafkit/internal/timeline"
)

type extraction struct {
	written []string
	skipped int
	failed  int
}

func newExtractCommand(ctx *commandContext) *cobra.Command {
	var dir string
	var clips bool
	var external bool

	cmd := &cobra.Command{
		Use:   "extract <file>",
		Short: "Write embedded audio essence to WAV files",
		Long: "Write every embedded audio essence to the extraction directory. With --clips each\n" +
			"clip of each audio track is cut from its essence and written on its own. With\n" +
			"--external, external essence files that were located are copied alongside.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withFile(cmd, args[0], func(runCtx context.Context, r *run, f *aaf.File) error {
				target := strings.TrimSpace(dir)
				if target == "" {
					target = r.cfg.Paths.ExtractDir
				}
				if err := fileutil.EnsureDir(target); err != nil {
					return err
				}

				model, err := r.interpret(runCtx, f)
				if err != nil {
					return err
				}
				logger := logging.NewComponentLogger(logging.WithContext(runCtx, r.logger), "extract")

				var result extraction
				if clips {
					result = extractClips(runCtx, logger, f.Container(), model, target, r.cfg.Media.ForbidNonLatinFilenames)
				} else {
					result = extractEssences(runCtx, logger, f.Container(), model, target, external)
				}
				if err := runCtx.Err(); err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				for _, path := range result.written {
					fmt.Fprintln(out, path)
				}
				fmt.Fprintf(out, "Extracted %d file(s) to %s", len(result.written), target)
				if result.skipped > 0 {
					fmt.Fprintf(out, "; %d external essence(s) skipped", result.skipped)
				}
				fmt.Fprintln(out)
				if result.failed > 0 {
					return fmt.Errorf("%d extraction(s) failed; see the log for details", result.failed)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Extraction directory (default paths.extract_dir)")
	cmd.Flags().BoolVar(&clips, "clips", false, "Extract one file per clip instead of whole essences")
	cmd.Flags().BoolVar(&external, "external", false, "Also copy located external essence files")
	return cmd
}

func extractEssences(ctx context.Context, logger *slog.Logger, c cfb.Container, m *timeline.Model, dir string, external bool) extraction {
	var result extraction
	sampler := logging.NewProgressSampler(25)
	total := len(m.AudioEssences)
	for i, e := range m.AudioEssences {
		if ctx.Err() != nil {
			break
		}
		if !e.Embedded && (!external || e.UsablePath == "") {
			result.skipped++
			logger.Info("external essence skipped",
				logging.String("essence", e.UniqueName),
				logging.String("path", e.UsablePath),
			)
			continue
		}
		path, err := extractEssence(c, m, e, dir)
		if err != nil {
			result.failed++
			logging.WarnWithContext(logger, "essence extraction failed", "extract_failed",
				logging.String("essence", e.UniqueName),
				logging.Error(err),
			)
			continue
		}
		result.written = append(result.written, path)
		logProgress(logger, sampler, i+1, total, "essences", path)
	}
	return result
}

func extractClips(ctx context.Context, logger *slog.Logger, c cfb.Container, m *timeline.Model, dir string, forbidNonLatin bool) extraction {
	var result extraction
	namer := &essence.Namer{ForbidNonLatin: forbidNonLatin, Fallback: m.Composition}
	sampler := logging.NewProgressSampler(25)

	total, done := 0, 0
	for _, t := range m.AudioTracks {
		total += len(t.Clips())
	}

	for _, t := range m.AudioTracks {
		for n, clip := range t.Clips() {
			if ctx.Err() != nil {
				return result
			}
			done++
			for ch, e := range m.ClipEssences(timeline.KindAudio, clip) {
				if !e.Embedded {
					result.skipped++
					continue
				}
				rate := types.Rational{Numerator: int32(e.SampleRate), Denominator: 1}
				offset := types.Rescale(clip.EssenceOffset, t.EditRate, rate)
				length := types.Rescale(clip.Length, t.EditRate, rate)
				name := clipFileName(t, n, clip, e, ch, len(clip.Essences))
				path, err := essence.ExtractClip(c, e.Source(m), dir, namer.Name(name), offset, length)
				if err != nil {
					result.failed++
					logging.WarnWithContext(logger, "clip extraction failed", "extract_failed",
						logging.String("track", fmt.Sprintf("A%d", t.Number)),
						logging.Int64("position", clip.Position),
						logging.String("essence", e.UniqueName),
						logging.Error(err),
					)
					continue
				}
				result.written = append(result.written, path)
			}
			logProgress(logger, sampler, done, total, "clips", "")
		}
	}
	return result
}

// extractEssence writes embedded essence out of the container and copies
// located external files unchanged.
func extractEssence(c cfb.Container, m *timeline.Model, e *timeline.Essence, dir string) (string, error) {
	if e.Embedded {
		return essence.ExtractEmbedded(c, e.Source(m), dir)
	}
	dst := filepath.Join(dir, filepath.Base(e.UsablePath))
	if err := fileutil.CopyFileVerified(e.UsablePath, dst); err != nil {
		return "", fmt.Errorf("copy %s: %w", e.UsablePath, err)
	}
	return dst, nil
}

// clipFileName is A<track>_<clip>_<name>, with a channel suffix for
// multichannel clips. Unnamed clips fall back to the essence name.
func clipFileName(t *timeline.Track, n int, clip *timeline.Clip, e *timeline.Essence, channel, channels int) string {
	name := fmt.Sprintf("A%d_%03d", t.Number, n+1)
	if label := textutil.FirstNonEmpty(clip.Name, e.Name); label != "" {
		name += "_" + label
	}
	if channels > 1 {
		name += fmt.Sprintf("_ch%d", channel+1)
	}
	return name
}

func logProgress(logger *slog.Logger, sampler *logging.ProgressSampler, done, total int, item, output string) {
	if total == 0 {
		return
	}
	percent := float64(done) * 100 / float64(total)
	if !sampler.ShouldLog(percent, item) {
		return
	}
	attrs := []logging.Attr{
		logging.String(logging.FieldEventType, "extract_progress"),
		logging.Float64("progress_percent", percent),
		logging.Int("done", done),
		logging.Int("total", total),
	}
	if output != "" {
		attrs = append(attrs, logging.String("output", output))
	}
	logger.Info("extraction progress", logging.Args(attrs...)...)
}
