package metadict

import (
	"fmt"
	"log/slog"

	"aafkit/internal/aaf/aaferr"
	"aafkit/internal/aaf/catalog"
	"aafkit/internal/aaf/resolver"
	"aafkit/internal/aaf/types"
	"aafkit/internal/logging"
)

// Stats summarises what a Load added to the catalog.
type Stats struct {
	ClassDefinitions  int
	ClassesDefined    int
	ClassesNamed      int
	ClassesRejected   int
	PropertiesAdded   int
	PropertiesSkipped int
}

// anchors are the classes allowed to name themselves as parent.
var anchors = map[types.AUID]bool{
	types.ClassInterchangeObject: true,
	types.ClassMetaDefinition:    true,
	types.ClassMetaDictionary:    true,
}

type loader struct {
	sess   *resolver.Session
	cat    *catalog.Catalog
	meta   *resolver.Object
	logger *slog.Logger
	done   map[resolver.ObjectID]*catalog.Class
	active map[resolver.ObjectID]bool
	stats  Stats
}

// Load walks MetaDictionary::ClassDefinitions of the already resolved root
// and registers every class and property the catalog does not know yet.
// Definitions that cannot be interpreted are reported to the session
// diagnostics and skipped; only a missing MetaDictionary is fatal.
func Load(sess *resolver.Session, root *resolver.Object) (Stats, error) {
	meta, err := root.Strong(types.PIDRootMetaDictionary)
	if err != nil {
		return Stats{}, aaferr.Wrap(aaferr.ErrMissingRequiredProperty, "metadict", "load", "root has no MetaDictionary", err)
	}
	defs, err := meta.Collection(types.PIDMetaDictionaryClassDefinitions)
	if err != nil {
		return Stats{}, aaferr.Wrap(aaferr.ErrMissingRequiredProperty, "metadict", "load", "MetaDictionary has no ClassDefinitions", err)
	}
	l := &loader{
		sess:   sess,
		cat:    sess.Catalog(),
		meta:   meta,
		logger: logging.NewComponentLogger(sess.Logger(), "metadict"),
		done:   make(map[resolver.ObjectID]*catalog.Class, len(defs)),
		active: make(map[resolver.ObjectID]bool),
	}
	l.stats.ClassDefinitions = len(defs)
	for _, def := range defs {
		if _, err := l.class(def); err != nil {
			l.stats.ClassesRejected++
			sess.Diagnostics().Record(slog.LevelWarn, def.Path(), err)
			l.logger.Warn("class definition rejected",
				logging.String("path", def.Path()),
				logging.Error(err),
			)
		}
	}
	l.logger.Debug("metadictionary loaded",
		logging.Int("class_definitions", l.stats.ClassDefinitions),
		logging.Int("classes_defined", l.stats.ClassesDefined),
		logging.Int("properties_added", l.stats.PropertiesAdded),
		logging.Int("properties_skipped", l.stats.PropertiesSkipped),
	)
	return l.stats, nil
}

func (l *loader) class(def *resolver.Object) (*catalog.Class, error) {
	if cls, ok := l.done[def.ID]; ok {
		return cls, nil
	}
	if l.active[def.ID] {
		return nil, aaferr.Wrap(aaferr.ErrSchema, "metadict", "resolve parent",
			fmt.Sprintf("%s: class inheritance cycle", def.Path()), nil)
	}
	l.active[def.ID] = true
	defer delete(l.active, def.ID)

	id, err := def.AUID(types.PIDMetaDefinitionIdentification)
	if err != nil {
		return nil, err
	}
	parent, err := l.parent(def, id)
	if err != nil {
		return nil, err
	}
	name, _ := def.Text(types.PIDMetaDefinitionName)

	cls, known := l.cat.Class(id)
	switch {
	case !known:
		concrete, err := def.Bool(types.PIDClassDefinitionIsConcrete)
		if err != nil {
			return nil, err
		}
		cls, err = l.cat.Define(id, concrete, parent)
		if err != nil {
			return nil, err
		}
		cls.Name = name
		cls.Meta = true
		l.stats.ClassesDefined++
		l.logger.Debug("class discovered",
			logging.String("class", cls.Label()),
			logging.String("parent", parent.Label()),
		)
	case cls.Name == "" && name != "":
		cls.Name = name
		l.stats.ClassesNamed++
	}
	l.done[def.ID] = cls

	if !def.Has(types.PIDClassDefinitionProperties) {
		return cls, nil
	}
	props, err := def.Collection(types.PIDClassDefinitionProperties)
	if err != nil {
		return cls, err
	}
	for _, prop := range props {
		if err := l.property(cls, prop); err != nil {
			l.sess.Diagnostics().Record(slog.LevelWarn, prop.Path(), err)
		}
	}
	return cls, nil
}

// parent resolves ClassDefinition::ParentClass. A parent not declared in the
// file is looked up in the catalog by its identification.
func (l *loader) parent(def *resolver.Object, id types.AUID) (*catalog.Class, error) {
	ref, err := def.WeakRef(types.PIDClassDefinitionParentClass)
	if err != nil {
		return nil, err
	}
	target, err := l.sess.ResolveWeak(l.meta, types.PIDMetaDictionaryClassDefinitions, ref)
	if err != nil {
		parentID, perr := types.ParseAUID(ref.Identification)
		if perr == nil {
			if cls, ok := l.cat.Class(parentID); ok {
				return cls, nil
			}
		}
		return nil, err
	}
	if target == def {
		if anchors[id] {
			return nil, nil
		}
		return nil, aaferr.Wrap(aaferr.ErrSchema, "metadict", "resolve parent",
			fmt.Sprintf("%s: class %s names itself as parent", def.Path(), id), nil)
	}
	return l.class(target)
}

func (l *loader) property(cls *catalog.Class, prop *resolver.Object) error {
	pid, err := prop.Uint16(types.PIDPropertyDefinitionLocalIdentification)
	if err != nil {
		return err
	}
	optional, err := prop.Bool(types.PIDPropertyDefinitionIsOptional)
	if err != nil {
		return err
	}
	if _, exists := cls.Property(pid); exists {
		l.stats.PropertiesSkipped++
		return nil
	}
	name, _ := prop.Text(types.PIDMetaDefinitionName)
	def := catalog.PropertyDef{
		PID:      pid,
		Name:     name,
		Type:     l.propertyType(prop),
		Required: !optional,
		Meta:     true,
	}
	if _, err := cls.AddProperty(def); err != nil {
		return err
	}
	l.stats.PropertiesAdded++
	l.logger.Debug("property discovered",
		logging.String("class", cls.Label()),
		logging.String("property", name),
		logging.String("pid", fmt.Sprintf("0x%04x", pid)),
	)
	return nil
}

// propertyType follows PropertyDefinition::Type into TypeDefinitions. When
// the referenced definition is absent the weak reference key is used as is.
func (l *loader) propertyType(prop *resolver.Object) types.AUID {
	ref, err := prop.WeakRef(types.PIDPropertyDefinitionType)
	if err != nil {
		return types.AUID{}
	}
	if typeDef, err := l.sess.ResolveWeak(l.meta, types.PIDMetaDictionaryTypeDefinitions, ref); err == nil {
		if id, err := typeDef.AUID(types.PIDMetaDefinitionIdentification); err == nil {
			return id
		}
	}
	id, _ := types.ParseAUID(ref.Identification)
	return id
}
