package aaf

import (
	"context"
	"fmt"
	"log/slog"

	"aafkit/internal/aaf/aaferr"
	"aafkit/internal/aaf/catalog"
	"aafkit/internal/aaf/metadict"
	"aafkit/internal/aaf/resolver"
	"aafkit/internal/aaf/types"
	"aafkit/internal/cfb"
	"aafkit/internal/logging"
)

// Options configures Open.
type Options struct {
	Logger      *slog.Logger
	Diagnostics *aaferr.Diagnostics
}

// File is a parsed AAF file.
type File struct {
	Path string

	Root           *resolver.Object
	MetaDictionary *resolver.Object
	Header         *resolver.Object
	Content        *resolver.Object
	Dictionary     *resolver.Object
	Mobs           []*resolver.Object
	EssenceData    []*resolver.Object

	Info           HeaderInfo
	Identification Identification
	Vendor         Vendor
	MetaStats      metadict.Stats

	container cfb.Container
	sess      *resolver.Session
	logger    *slog.Logger
	mobsByID  map[types.MobID]*resolver.Object
	dataByID  map[types.MobID]*resolver.Object
}

// Open parses the AAF file at path.
func Open(ctx context.Context, path string, opts Options) (*File, error) {
	container, err := cfb.Open(path)
	if err != nil {
		return nil, err
	}
	f, err := OpenContainer(ctx, container, opts)
	if err != nil {
		_ = container.Close()
		return nil, err
	}
	f.Path = path
	return f, nil
}

// OpenContainer parses an AAF object tree held by an already opened
// container. The File takes ownership of container.
func OpenContainer(ctx context.Context, container cfb.Container, opts Options) (*File, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logging.NewComponentLogger(logger, "aaf")

	cat, err := catalog.Baseline()
	if err != nil {
		return nil, aaferr.Wrap(aaferr.ErrSchema, "aaf", "bootstrap catalog", "", err)
	}
	sess := resolver.NewSession(container, cat, resolver.Options{Logger: logger, Diagnostics: opts.Diagnostics})
	f := &File{
		Path:      container.Name(),
		container: container,
		sess:      sess,
		logger:    logger,
	}

	if f.Root, err = sess.DecodeRoot(); err != nil {
		return nil, aaferr.Wrap(aaferr.ErrSchema, "aaf", "decode root", container.Name(), err)
	}
	if err := sess.ResolveProperty(f.Root, types.PIDRootMetaDictionary); err != nil {
		return nil, aaferr.Wrap(aaferr.ErrReferenceResolution, "aaf", "resolve metadictionary", "", err)
	}
	if f.MetaStats, err = metadict.Load(sess, f.Root); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := sess.ResolveProperty(f.Root, types.PIDRootHeader); err != nil {
		return nil, aaferr.Wrap(aaferr.ErrReferenceResolution, "aaf", "resolve header", "", err)
	}
	if err := f.setShortcuts(); err != nil {
		return nil, err
	}
	f.readHeader()
	f.readIdentification()
	f.Vendor = DetectVendor(f.Identification.ProductName)

	logger.Info("aaf file parsed",
		logging.String(logging.FieldEventType, "aaf_parsed"),
		logging.String("file", f.Path),
		logging.Int("objects", len(sess.Objects())),
		logging.Int("mobs", len(f.Mobs)),
		logging.Int("essence_data", len(f.EssenceData)),
		logging.Int("classes", cat.Len()),
		logging.Int("classes_discovered", f.MetaStats.ClassesDefined),
		logging.String("product", f.Identification.ProductName),
		logging.Int("diagnostics", sess.Diagnostics().Len()),
	)
	return f, nil
}

// Close releases the underlying container.
func (f *File) Close() error {
	if f == nil || f.container == nil {
		return nil
	}
	return f.container.Close()
}

func (f *File) Session() *resolver.Session { return f.sess }

func (f *File) Catalog() *catalog.Catalog { return f.sess.Catalog() }

func (f *File) Container() cfb.Container { return f.container }

func (f *File) Diagnostics() *aaferr.Diagnostics { return f.sess.Diagnostics() }

func (f *File) Logger() *slog.Logger { return f.logger }

func (f *File) setShortcuts() error {
	var err error
	if f.MetaDictionary, err = f.Root.Strong(types.PIDRootMetaDictionary); err != nil {
		return err
	}
	if f.Header, err = f.Root.Strong(types.PIDRootHeader); err != nil {
		return aaferr.Wrap(aaferr.ErrMissingRequiredProperty, "aaf", "resolve header", "", err)
	}
	if f.Content, err = f.Header.Strong(types.PIDHeaderContent); err != nil {
		return aaferr.Wrap(aaferr.ErrMissingRequiredProperty, "aaf", "resolve content storage", "", err)
	}
	if f.Dictionary, err = f.Header.Strong(types.PIDHeaderDictionary); err != nil {
		f.warn(f.Header.Path(), err)
	}
	if f.Mobs, err = f.Content.Collection(types.PIDContentStorageMobs); err != nil {
		f.warn(f.Content.Path(), err)
	}
	if f.EssenceData, err = f.Content.Collection(types.PIDContentStorageEssenceData); err != nil && !aaferr.IsAbsent(err) {
		f.warn(f.Content.Path(), err)
	}

	f.mobsByID = make(map[types.MobID]*resolver.Object, len(f.Mobs))
	for _, mob := range f.Mobs {
		if id, err := mob.MobID(types.PIDMobMobID); err == nil {
			f.mobsByID[id] = mob
		}
	}
	f.dataByID = make(map[types.MobID]*resolver.Object, len(f.EssenceData))
	for _, data := range f.EssenceData {
		if id, err := data.MobID(types.PIDEssenceDataMobID); err == nil {
			f.dataByID[id] = data
		}
	}
	return nil
}

func (f *File) warn(path string, err error) {
	f.sess.Diagnostics().Record(slog.LevelWarn, path, err)
	logging.WarnWithContext(f.logger, "aaf structure incomplete", "aaf_structure",
		logging.String("path", path),
		logging.String(logging.FieldErrorHint, "the file may have been written by a non-conforming producer"),
		logging.Error(err),
	)
}

// Mob returns the Mob whose MobID is id.
func (f *File) Mob(id types.MobID) (*resolver.Object, bool) {
	mob, ok := f.mobsByID[id]
	return mob, ok
}

// EssenceDataFor returns the EssenceData object holding the samples of the
// SourceMob id.
func (f *File) EssenceDataFor(id types.MobID) (*resolver.Object, bool) {
	data, ok := f.dataByID[id]
	return data, ok
}

// MobsOf returns the Mobs that are instances of class, in file order.
func (f *File) MobsOf(class types.AUID) []*resolver.Object {
	var out []*resolver.Object
	for _, mob := range f.Mobs {
		if mob.IsA(class) {
			out = append(out, mob)
		}
	}
	return out
}

// IsEditProtocol reports whether the Header declares the Edit Protocol
// operational pattern.
func (f *File) IsEditProtocol() bool {
	return f.Info.OperationalPattern == types.OPEditProtocol
}

func (f *File) String() string {
	return fmt.Sprintf("%s (%s, %d mobs)", f.Path, f.Identification.ProductName, len(f.Mobs))
}
