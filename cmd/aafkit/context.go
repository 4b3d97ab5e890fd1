package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"aafkit/internal/aaf"
	"aafkit/internal/aaf/types"
	"aafkit/internal/cfb"
	"aafkit/internal/config"
	"aafkit/internal/logging"
	"aafkit/internal/timeline"
)

type globalFlags struct {
	config         string
	logLevel       string
	mediaLocations []string
	trace          bool
	quiet          bool
}

// containerOpener opens the compound file behind an AAF path.
type containerOpener func(path string) (cfb.Container, error)

func openContainerFile(path string) (cfb.Container, error) {
	f, err := cfb.Open(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

type commandContext struct {
	flags *globalFlags
	open  containerOpener

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(flags *globalFlags, open containerOpener) *commandContext {
	if open == nil {
		open = openContainerFile
	}
	return &commandContext{
		flags: flags,
		open:  open,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		if err := c.applyFlags(cfg); err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// applyFlags layers the global flags over the loaded file. Flag media
// locations are searched before configured ones.
func (c *commandContext) applyFlags(cfg *config.Config) error {
	if level := strings.TrimSpace(c.flags.logLevel); level != "" {
		cfg.Logging.Level = strings.ToLower(level)
	}
	if c.flags.trace {
		cfg.Logging.Trace = true
	}
	if len(c.flags.mediaLocations) > 0 {
		locations := make([]string, 0, len(c.flags.mediaLocations)+len(cfg.Media.SearchLocations))
		for _, loc := range c.flags.mediaLocations {
			if strings.TrimSpace(loc) == "" {
				continue
			}
			expanded, err := config.ExpandPath(strings.TrimSpace(loc))
			if err != nil {
				return fmt.Errorf("--media-location: %w", err)
			}
			locations = append(locations, expanded)
		}
		cfg.Media.SearchLocations = append(locations, cfg.Media.SearchLocations...)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("command line flags: %w", err)
	}
	return nil
}

// run is one logged invocation: a console logger teed into the per-run
// JSON log.
type run struct {
	id     string
	cfg    *config.Config
	logger *slog.Logger
	log    *logging.RunLog
	open   containerOpener
}

func (c *commandContext) startRun() (*run, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	if c.flags.quiet {
		logger = logging.WithLevelOverride(logger, slog.LevelWarn)
	}

	id := uuid.NewString()
	runLog, err := logging.OpenRunLog(cfg.RunLogDir(), id, slog.LevelDebug)
	if err != nil {
		return nil, err
	}
	logger = logging.TeeLogger(logger, runLog.Handler())
	logging.PruneRunLogs(logging.NewComponentLogger(logger, "cli"), cfg, runLog.Path)

	return &run{id: id, cfg: cfg, logger: logger, log: runLog, open: c.open}, nil
}

func (r *run) close() {
	_ = r.log.Close()
}

func (r *run) context(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return logging.WithRunID(ctx, r.id)
}

// openFile parses path into an AAF file. The caller closes it.
func (r *run) openFile(ctx context.Context, path string) (*aaf.File, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	container, err := r.open(abs)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	logger := logging.WithContext(logging.WithFile(ctx, abs), r.logger)
	f, err := aaf.OpenContainer(ctx, container, aaf.Options{Logger: logger})
	if err != nil {
		_ = container.Close()
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	f.Path = abs
	if r.cfg.Logging.TraceMeta {
		traceMeta(logging.NewComponentLogger(logger, "metadict"), f)
		traceOperations(logging.NewComponentLogger(logger, "dictionary"), f)
	}
	return f, nil
}

// interpret builds the timeline model of f with the configured options.
func (r *run) interpret(ctx context.Context, f *aaf.File) (*timeline.Model, error) {
	logger := logging.WithContext(logging.WithFile(ctx, f.Path), r.logger)
	return timeline.Interpret(ctx, f, timelineOptions(r.cfg, r.id, logger))
}

func timelineOptions(cfg *config.Config, runID string, logger *slog.Logger) timeline.Options {
	return timeline.Options{
		Logger:                           logger,
		Trace:                            cfg.Logging.Trace,
		RunID:                            runID,
		MediaLocations:                   cfg.Media.SearchLocations,
		ForbidNonLatin:                   cfg.Media.ForbidNonLatinFilenames,
		ResolveIncludeDisabledClips:      cfg.Vendor.ResolveIncludeDisabledClips,
		ProToolsRemoveSampleAccurateEdit: cfg.Vendor.ProToolsRemoveSampleAccurateEdit,
		ProToolsReplaceClipFades:         cfg.Vendor.ProToolsReplaceClipFades,
		IgnoreAvidFadeCurve:              !cfg.Vendor.AvidFadeCurveOverride,
	}
}

// withFile runs fn against the parsed file at path inside a logged run.
func (c *commandContext) withFile(cmd *cobra.Command, path string, fn func(context.Context, *run, *aaf.File) error) error {
	r, err := c.startRun()
	if err != nil {
		return err
	}
	defer r.close()

	ctx := r.context(cmd.Context())
	f, err := r.openFile(ctx, path)
	if err != nil {
		return err
	}
	defer f.Close()
	return fn(ctx, r, f)
}

// traceMeta logs every class and property the MetaDictionary added.
func traceMeta(logger *slog.Logger, f *aaf.File) {
	for _, cls := range f.Catalog().Classes() {
		if cls.Meta {
			parent := ""
			if cls.Parent != nil {
				parent = cls.Parent.Label()
			}
			logger.Debug("meta class",
				logging.String("class", cls.Label()),
				logging.String("auid", cls.ID.String()),
				logging.String("parent", parent),
				logging.Bool("concrete", cls.Concrete),
			)
		}
		for _, prop := range cls.Properties() {
			if !prop.Meta {
				continue
			}
			logger.Debug("meta property",
				logging.String("class", cls.Label()),
				logging.String("property", prop.Name),
				logging.String("pid", fmt.Sprintf("0x%04x", prop.PID)),
				logging.String("type", prop.Type.String()),
				logging.Bool("required", prop.Required),
			)
		}
	}
}

// traceOperations logs each OperationDefinition with the parameters it
// declares.
func traceOperations(logger *slog.Logger, f *aaf.File) {
	for _, op := range f.OperationDefinitions() {
		name, _ := op.Text(types.PIDDefinitionObjectName)
		params, err := f.ParametersDefined(op)
		if err != nil {
			logger.Debug("operation definition unreadable",
				logging.String("path", op.Path()),
				logging.Error(err),
			)
			continue
		}
		labels := make([]string, len(params))
		for i, id := range params {
			labels[i] = types.DefinitionName(id)
		}
		logger.Debug("operation definition",
			logging.String("operation", name),
			logging.String("parameters", strings.Join(labels, ", ")),
		)
	}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
