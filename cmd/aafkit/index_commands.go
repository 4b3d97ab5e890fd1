package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"aafkit/internal/index"
	"aafkit/internal/logging"
)

func newIndexCommand(ctx *commandContext) *cobra.Command {
	indexCmd := &cobra.Command{
		Use:   "index",
		Short: "Maintain the searchable index of interpreted files",
	}

	indexCmd.AddCommand(newIndexAddCommand(ctx))
	indexCmd.AddCommand(newIndexListCommand(ctx))
	indexCmd.AddCommand(newIndexSearchCommand(ctx))
	indexCmd.AddCommand(newIndexRemoveCommand(ctx))

	return indexCmd
}

func (c *commandContext) withIndex(fn func(*index.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := index.Open(cfg.Paths.IndexDB)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

func newIndexAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <file>...",
		Short: "Interpret files and record their timelines",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := ctx.startRun()
			if err != nil {
				return err
			}
			defer r.close()
			runCtx := r.context(cmd.Context())
			logger := logging.NewComponentLogger(r.logger, "index")

			return ctx.withIndex(func(store *index.Store) error {
				out := cmd.OutOrStdout()
				failed := 0
				for _, path := range args {
					if err := runCtx.Err(); err != nil {
						return err
					}
					rec, err := indexFile(cmd, r, path)
					if err == nil {
						err = store.Record(runCtx, rec)
					}
					if err != nil {
						failed++
						logging.ErrorWithContext(logger, "file not indexed", "index_failed",
							logging.String(logging.FieldFile, path),
							logging.Error(err),
						)
						continue
					}
					clips := 0
					for _, t := range rec.Tracks {
						clips += len(t.Clips)
					}
					logger.Info("file indexed",
						logging.String(logging.FieldEventType, "file_indexed"),
						logging.String(logging.FieldFile, rec.Path),
						logging.String("composition", rec.Composition.Name),
						logging.Int("clips", clips),
					)
					fmt.Fprintf(out, "Indexed %s: %q, %d track(s), %d clip(s)\n",
						rec.Path, rec.Composition.Name, len(rec.Tracks), clips)
				}
				if failed > 0 {
					return fmt.Errorf("%d of %d file(s) could not be indexed", failed, len(args))
				}
				return nil
			})
		},
	}
}

func indexFile(cmd *cobra.Command, r *run, path string) (index.RunRecord, error) {
	ctx := r.context(cmd.Context())
	f, err := r.openFile(ctx, path)
	if err != nil {
		return index.RunRecord{}, err
	}
	defer f.Close()
	model, err := r.interpret(ctx, f)
	if err != nil {
		return index.RunRecord{}, err
	}
	return runRecord(model), nil
}

func newIndexListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List indexed files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withIndex(func(store *index.Store) error {
				files, err := store.Files(cmd.Context())
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, files)
				}
				out := cmd.OutOrStdout()
				if len(files) == 0 {
					fmt.Fprintln(out, "No files indexed")
					return nil
				}
				rows := make([][]string, 0, len(files))
				for _, f := range files {
					rows = append(rows, []string{
						f.Path,
						f.Composition,
						f.Vendor,
						fmt.Sprint(f.Tracks),
						fmt.Sprint(f.Clips),
						fmt.Sprint(f.Essences),
						f.IndexedAt.Local().Format("2006-01-02 15:04"),
					})
				}
				fmt.Fprintln(out, renderTable("", []string{"Path", "Composition", "Vendor", "Tracks", "Clips", "Essences", "Indexed"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft},
				))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}

func newIndexSearchCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search <term>...",
		Short: "Find clips whose name or essence names start with every term",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := strings.Join(args, " ")
			if strings.TrimSpace(term) == "" {
				return errors.New("search term is required")
			}
			return ctx.withIndex(func(store *index.Store) error {
				hits, err := store.Search(cmd.Context(), term)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, hits)
				}
				out := cmd.OutOrStdout()
				if len(hits) == 0 {
					fmt.Fprintf(out, "No clips match %q\n", term)
					return nil
				}
				rows := make([][]string, 0, len(hits))
				for _, h := range hits {
					rows = append(rows, []string{
						filepath.Base(h.Path),
						h.Composition,
						fmt.Sprintf("%s %d", titleLabel(h.TrackKind), h.TrackNumber),
						fmt.Sprint(h.Position),
						fmt.Sprint(h.Length),
						h.ClipName,
						strings.Join(h.EssenceNames, ", "),
					})
				}
				fmt.Fprintln(out, renderTable("", []string{"File", "Composition", "Track", "Position", "Length", "Clip", "Essences"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight},
				))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}

func newIndexRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <file>",
		Short: "Drop a file from the index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve %s: %w", args[0], err)
			}
			return ctx.withIndex(func(store *index.Store) error {
				removed, err := store.Remove(cmd.Context(), path)
				if err != nil {
					return err
				}
				if !removed {
					return fmt.Errorf("%s is not indexed", path)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", path)
				return nil
			})
		},
	}
}
