package resolver

import (
	"context"
	"fmt"
	"log/slog"

	"aafkit/internal/aaf/aaferr"
	"aafkit/internal/aaf/catalog"
	"aafkit/internal/aaf/property"
	"aafkit/internal/aaf/types"
	"aafkit/internal/cfb"
	"aafkit/internal/logging"
)

const propertiesStream = "properties"

// Options configures a Session.
type Options struct {
	Logger      *slog.Logger
	Diagnostics *aaferr.Diagnostics
}

// Session owns the object arena of one container.
type Session struct {
	container cfb.Container
	catalog   *catalog.Catalog
	logger    *slog.Logger
	diag      *aaferr.Diagnostics
	objects   []*Object
}

// NewSession prepares an empty arena over container.
func NewSession(container cfb.Container, cat *catalog.Catalog, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	diag := opts.Diagnostics
	if diag == nil {
		diag = &aaferr.Diagnostics{}
	}
	return &Session{
		container: container,
		catalog:   cat,
		logger:    logging.NewComponentLogger(logger, "resolver"),
		diag:      diag,
	}
}

func (s *Session) Container() cfb.Container { return s.container }

func (s *Session) Catalog() *catalog.Catalog { return s.catalog }

func (s *Session) Diagnostics() *aaferr.Diagnostics { return s.diag }

func (s *Session) Logger() *slog.Logger { return s.logger }

// Object returns the object registered under id, or nil.
func (s *Session) Object(id ObjectID) *Object {
	if id < 0 || int(id) >= len(s.objects) {
		return nil
	}
	return s.objects[id]
}

// Objects returns the arena in allocation order.
func (s *Session) Objects() []*Object {
	return s.objects
}

// DecodeRoot decodes the Root object without resolving its references, so the
// MetaDictionary can be loaded before the Header is parsed.
func (s *Session) DecodeRoot() (*Object, error) {
	root := s.container.Root()
	if root.CLSID != types.ClassRoot {
		return nil, aaferr.Wrap(aaferr.ErrSchema, "resolver", "decode root",
			fmt.Sprintf("root storage class %s is not the AAF Root class", root.CLSID), nil)
	}
	return s.decode(root, nil, 0)
}

// Parse decodes the object stored at node and recursively resolves its
// strong references.
func (s *Session) Parse(node *cfb.Node, parent *Object, ownerPID uint16) (*Object, error) {
	obj, err := s.decode(node, parent, ownerPID)
	if err != nil {
		return nil, err
	}
	for _, p := range obj.props {
		if !p.Value.Form.IsStrong() {
			continue
		}
		if err := s.resolve(obj, p); err != nil {
			s.report(slog.LevelError, obj.Path(), err)
		}
	}
	return obj, nil
}

// ResolveProperty resolves the strong reference pid of obj in place. It is a
// no-op when the property is already resolved.
func (s *Session) ResolveProperty(obj *Object, pid uint16) error {
	p, ok := obj.Property(pid)
	if !ok {
		return obj.absent(pid)
	}
	if !p.Value.Form.IsStrong() {
		return obj.wrap(pid, fmt.Errorf("%w: stored form %s is not a strong reference", aaferr.ErrMalformedStream, p.Value.Form))
	}
	return s.resolve(obj, p)
}

func (s *Session) decode(node *cfb.Node, parent *Object, ownerPID uint16) (*Object, error) {
	cls, ok := s.catalog.Class(node.CLSID)
	if !ok {
		return nil, aaferr.Wrap(aaferr.ErrSchema, "resolver", "decode object",
			fmt.Sprintf("%s: unknown class %s", node.Path(), node.CLSID), nil)
	}
	obj := &Object{
		ID:       ObjectID(len(s.objects)),
		Name:     node.Name,
		Class:    cls,
		Parent:   parent,
		OwnerPID: ownerPID,
		node:     node,
		sess:     s,
	}
	stream, ok := node.Child(propertiesStream)
	if !ok {
		return nil, aaferr.Wrap(aaferr.ErrMalformedStream, "resolver", "decode object",
			fmt.Sprintf("%s: no properties stream", node.Path()), nil)
	}
	raw, err := s.container.Stream(stream)
	if err != nil {
		return nil, aaferr.Wrap(aaferr.ErrMalformedStream, "resolver", "decode object", node.Path(), err)
	}
	entries, err := property.DecodeIndex(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", node.Path(), err)
	}
	obj.props = make([]*Property, 0, len(entries))
	for _, entry := range entries {
		def, ok := cls.Property(entry.PID)
		if !ok {
			s.report(slog.LevelWarn, node.Path(), aaferr.Wrap(aaferr.ErrSchema, "resolver", "decode object",
				fmt.Sprintf("unknown pid 0x%04x on %s", entry.PID, cls.Label()), nil))
			continue
		}
		obj.props = append(obj.props, &Property{
			PID:   entry.PID,
			Def:   def,
			Value: property.Value{Form: entry.Form, Data: entry.Data},
		})
	}
	s.objects = append(s.objects, obj)
	for _, def := range obj.MissingRequired() {
		s.logger.Debug("required property absent",
			logging.String("path", node.Path()),
			logging.String("class", cls.Label()),
			logging.String("property", def.Name),
		)
	}
	return obj, nil
}

func (s *Session) resolve(obj *Object, p *Property) error {
	if p.resolved {
		return nil
	}
	name, err := p.Value.Text()
	if err != nil {
		return obj.wrap(p.PID, err)
	}
	switch p.Value.Form {
	case property.FormStrongRef:
		child, ok := obj.node.Child(name)
		if !ok {
			return obj.wrap(p.PID, fmt.Errorf("%w: child node %q not found", aaferr.ErrReferenceResolution, name))
		}
		member, err := s.Parse(child, obj, p.PID)
		if err != nil {
			return obj.wrap(p.PID, err)
		}
		p.members = []ObjectID{member.ID}
	case property.FormStrongRefSet:
		if err := s.resolveSet(obj, p, name); err != nil {
			return err
		}
	case property.FormStrongRefVector:
		if err := s.resolveVector(obj, p, name); err != nil {
			return err
		}
	}
	p.resolved = true
	return nil
}

func (s *Session) indexStream(obj *Object, name string) ([]byte, error) {
	node, ok := obj.node.Child(property.IndexStreamName(name))
	if !ok {
		return nil, fmt.Errorf("%w: index stream %q not found", aaferr.ErrReferenceResolution, property.IndexStreamName(name))
	}
	return s.container.Stream(node)
}

func (s *Session) resolveSet(obj *Object, p *Property, name string) error {
	raw, err := s.indexStream(obj, name)
	if err != nil {
		return obj.wrap(p.PID, err)
	}
	idx, err := property.DecodeSetIndex(raw)
	if err != nil {
		return obj.wrap(p.PID, err)
	}
	p.members = make([]ObjectID, 0, len(idx.Entries))
	p.bySetKey = make(map[string]ObjectID, len(idx.Entries))
	for _, entry := range idx.Entries {
		member, err := s.parseMember(obj, p, name, entry.LocalKey, len(p.members))
		if err != nil {
			s.report(slog.LevelError, obj.Path(), err)
			continue
		}
		member.Key = entry.Identification
		p.members = append(p.members, member.ID)
		p.bySetKey[string(entry.Identification)] = member.ID
	}
	return nil
}

func (s *Session) resolveVector(obj *Object, p *Property, name string) error {
	raw, err := s.indexStream(obj, name)
	if err != nil {
		return obj.wrap(p.PID, err)
	}
	idx, err := property.DecodeVectorIndex(raw)
	if err != nil {
		return obj.wrap(p.PID, err)
	}
	p.members = make([]ObjectID, 0, len(idx.LocalKeys))
	p.byLocal = make(map[uint32]ObjectID, len(idx.LocalKeys))
	for _, key := range idx.LocalKeys {
		member, err := s.parseMember(obj, p, name, key, len(p.members))
		if err != nil {
			s.report(slog.LevelError, obj.Path(), err)
			continue
		}
		p.members = append(p.members, member.ID)
		p.byLocal[key] = member.ID
	}
	return nil
}

func (s *Session) parseMember(obj *Object, p *Property, name string, localKey uint32, index int) (*Object, error) {
	memberName := property.MemberName(name, localKey)
	node, ok := obj.node.Child(memberName)
	if !ok {
		return nil, obj.wrap(p.PID, fmt.Errorf("%w: member node %q not found", aaferr.ErrReferenceResolution, memberName))
	}
	member, err := s.Parse(node, obj, p.PID)
	if err != nil {
		return nil, obj.wrap(p.PID, err)
	}
	member.LocalKey = localKey
	member.Index = index
	return member, nil
}

// ResolveWeak finds the member of target's collection targetPID that ref
// points at. Sets match on identification bytes; vectors match the member
// local key against the reference's property index.
func (s *Session) ResolveWeak(target *Object, targetPID uint16, ref property.WeakRef) (*Object, error) {
	if target == nil {
		return nil, fmt.Errorf("%w: no target collection", aaferr.ErrReferenceResolution)
	}
	p, ok := target.Property(targetPID)
	if !ok {
		return nil, fmt.Errorf("%w: %w", aaferr.ErrReferenceResolution, target.absent(targetPID))
	}
	if !p.resolved {
		return nil, fmt.Errorf("%w: target collection %s is not resolved", aaferr.ErrReferenceResolution, target.propertyName(targetPID))
	}
	var (
		id    ObjectID
		found bool
	)
	switch p.Value.Form {
	case property.FormStrongRefSet:
		id, found = p.bySetKey[string(ref.Identification)]
	case property.FormStrongRefVector:
		id, found = p.byLocal[uint32(ref.ReferencedPropertyIndex)]
	default:
		return nil, fmt.Errorf("%w: target %s is not a collection", aaferr.ErrReferenceResolution, target.propertyName(targetPID))
	}
	if !found {
		return nil, fmt.Errorf("%w: no member of %s matches the weak reference", aaferr.ErrReferenceResolution, target.propertyName(targetPID))
	}
	return s.Object(id), nil
}

func (s *Session) report(level slog.Level, path string, err error) {
	s.diag.Record(level, path, err)
	s.logger.Log(context.Background(), level, "object graph branch dropped",
		logging.String("path", path),
		logging.String("error_kind", string(aaferr.Classify(err))),
		logging.Error(err),
	)
}
