package resolver

import (
	"fmt"

	"aafkit/internal/aaf/aaferr"
	"aafkit/internal/aaf/catalog"
	"aafkit/internal/aaf/property"
	"aafkit/internal/aaf/types"
	"aafkit/internal/cfb"
)

// ObjectID is the arena handle of a parsed object.
type ObjectID int

// Property is one decoded property of an object.
type Property struct {
	PID   uint16
	Def   *catalog.PropertyDef
	Value property.Value

	resolved bool
	members  []ObjectID
	bySetKey map[string]ObjectID
	byLocal  map[uint32]ObjectID
}

// Resolved reports whether a strong reference has been replaced by its
// parsed objects.
func (p *Property) Resolved() bool {
	return p.resolved
}

// Object is one node of the object graph.
type Object struct {
	ID    ObjectID
	Name  string
	Class *catalog.Class
	// Parent is the owning object; nil for the Root.
	Parent *Object
	// OwnerPID is the property of Parent that owns this object.
	OwnerPID uint16
	// Index is the position inside the owning set or vector.
	Index int
	// LocalKey is the member key of set and vector entries.
	LocalKey uint32
	// Key holds the identification bytes of set members.
	Key []byte

	node  *cfb.Node
	props []*Property
	sess  *Session
}

// Node returns the container node backing the object.
func (o *Object) Node() *cfb.Node {
	return o.node
}

// Path returns the container path of the object.
func (o *Object) Path() string {
	return o.node.Path()
}

// IsA reports whether the object's class is id or derives from it.
func (o *Object) IsA(id types.AUID) bool {
	return o.Class.IsA(id)
}

// Properties returns the decoded properties in stream order.
func (o *Object) Properties() []*Property {
	return o.props
}

// Property returns the decoded property pid.
func (o *Object) Property(pid uint16) (*Property, bool) {
	for _, p := range o.props {
		if p.PID == pid {
			return p, true
		}
	}
	return nil, false
}

func (o *Object) Has(pid uint16) bool {
	_, ok := o.Property(pid)
	return ok
}

func (o *Object) propertyName(pid uint16) string {
	if def, ok := o.Class.Property(pid); ok && def.Name != "" {
		return def.Name
	}
	return fmt.Sprintf("0x%04x", pid)
}

// absent builds the error returned for a property that is not present:
// missing-required when the class declares it required, otherwise
// missing-optional.
func (o *Object) absent(pid uint16) error {
	name := o.propertyName(pid)
	if def, ok := o.Class.Property(pid); ok && def.Required {
		return aaferr.Missing(o.Path(), o.Class.Label()+"::"+name)
	}
	return fmt.Errorf("%w: %s: %s::%s", aaferr.ErrMissingOptionalProperty, o.Path(), o.Class.Label(), name)
}

// MissingRequired lists required properties visible on the class that the
// object does not carry.
func (o *Object) MissingRequired() []*catalog.PropertyDef {
	var missing []*catalog.PropertyDef
	for cls := o.Class; cls != nil; cls = cls.Parent {
		for _, def := range cls.Properties() {
			if def.Required && !o.Has(def.PID) {
				missing = append(missing, def)
			}
		}
	}
	return missing
}

// Value returns the raw value of pid.
func (o *Object) Value(pid uint16) (property.Value, error) {
	p, ok := o.Property(pid)
	if !ok {
		return property.Value{}, o.absent(pid)
	}
	return p.Value, nil
}

func (o *Object) wrap(pid uint16, err error) error {
	return fmt.Errorf("%s: %s::%s: %w", o.Path(), o.Class.Label(), o.propertyName(pid), err)
}

func readValue[T any](o *Object, pid uint16, read func(property.Value) (T, error)) (T, error) {
	var zero T
	v, err := o.Value(pid)
	if err != nil {
		return zero, err
	}
	out, err := read(v)
	if err != nil {
		return zero, o.wrap(pid, err)
	}
	return out, nil
}

func (o *Object) Uint8(pid uint16) (uint8, error) {
	return readValue(o, pid, property.Value.Uint8)
}

func (o *Object) Uint16(pid uint16) (uint16, error) {
	return readValue(o, pid, property.Value.Uint16)
}

func (o *Object) Uint32(pid uint16) (uint32, error) {
	return readValue(o, pid, property.Value.Uint32)
}

func (o *Object) Int32(pid uint16) (int32, error) {
	return readValue(o, pid, property.Value.Int32)
}

func (o *Object) Int64(pid uint16) (int64, error) {
	return readValue(o, pid, property.Value.Int64)
}

func (o *Object) Bool(pid uint16) (bool, error) {
	return readValue(o, pid, property.Value.Bool)
}

func (o *Object) AUID(pid uint16) (types.AUID, error) {
	return readValue(o, pid, property.Value.AUID)
}

func (o *Object) MobID(pid uint16) (types.MobID, error) {
	return readValue(o, pid, property.Value.MobID)
}

func (o *Object) Rational(pid uint16) (types.Rational, error) {
	return readValue(o, pid, property.Value.Rational)
}

func (o *Object) TimeStamp(pid uint16) (types.TimeStamp, error) {
	return readValue(o, pid, property.Value.TimeStamp)
}

func (o *Object) VersionType(pid uint16) (types.VersionType, error) {
	return readValue(o, pid, property.Value.VersionType)
}

func (o *Object) ProductVersion(pid uint16) (types.ProductVersion, error) {
	return readValue(o, pid, property.Value.ProductVersion)
}

func (o *Object) Text(pid uint16) (string, error) {
	return readValue(o, pid, property.Value.Text)
}

func (o *Object) Indirect(pid uint16) (property.Indirect, error) {
	return readValue(o, pid, property.Value.Indirect)
}

func (o *Object) WeakRef(pid uint16) (property.WeakRef, error) {
	return readValue(o, pid, property.Value.WeakRef)
}

// WeakRefList decodes the index stream of a weak-reference set or vector.
func (o *Object) WeakRefList(pid uint16) (property.WeakRefList, error) {
	v, err := o.Value(pid)
	if err != nil {
		return property.WeakRefList{}, err
	}
	if v.Form != property.FormWeakRefSet && v.Form != property.FormWeakRefVector {
		return property.WeakRefList{}, o.wrap(pid, fmt.Errorf("%w: stored form is %s", aaferr.ErrMalformedStream, v.Form))
	}
	name, err := v.Text()
	if err != nil {
		return property.WeakRefList{}, o.wrap(pid, err)
	}
	raw, err := o.sess.indexStream(o, name)
	if err != nil {
		return property.WeakRefList{}, o.wrap(pid, err)
	}
	list, err := property.DecodeWeakRefList(raw)
	if err != nil {
		return property.WeakRefList{}, o.wrap(pid, err)
	}
	return list, nil
}

// Strong returns the object owned by a single strong reference.
func (o *Object) Strong(pid uint16) (*Object, error) {
	members, err := o.members(pid, property.FormStrongRef)
	if err != nil {
		return nil, err
	}
	if len(members) != 1 {
		return nil, o.absent(pid)
	}
	return members[0], nil
}

// Collection returns the members of a strong-reference set or vector in
// file order. An empty collection yields an empty, non-nil slice.
func (o *Object) Collection(pid uint16) ([]*Object, error) {
	return o.members(pid, property.FormStrongRefSet, property.FormStrongRefVector)
}

func (o *Object) members(pid uint16, forms ...property.StoredForm) ([]*Object, error) {
	p, ok := o.Property(pid)
	if !ok {
		return nil, o.absent(pid)
	}
	match := false
	for _, f := range forms {
		if p.Value.Form == f {
			match = true
		}
	}
	if !match {
		return nil, o.wrap(pid, fmt.Errorf("%w: stored form is %s", aaferr.ErrMalformedStream, p.Value.Form))
	}
	if !p.resolved {
		return nil, o.wrap(pid, fmt.Errorf("%w: reference not resolved", aaferr.ErrReferenceResolution))
	}
	out := make([]*Object, 0, len(p.members))
	for _, id := range p.members {
		out = append(out, o.sess.Object(id))
	}
	return out, nil
}

// Siblings returns the members of the collection that owns o.
func (o *Object) Siblings() []*Object {
	if o.Parent == nil {
		return nil
	}
	members, err := o.Parent.Collection(o.OwnerPID)
	if err != nil {
		return nil
	}
	return members
}

// Prev returns the previous member of the owning vector.
func (o *Object) Prev() *Object {
	siblings := o.Siblings()
	if o.Index <= 0 || o.Index > len(siblings) {
		return nil
	}
	return siblings[o.Index-1]
}

// Next returns the next member of the owning vector.
func (o *Object) Next() *Object {
	siblings := o.Siblings()
	if o.Index+1 >= len(siblings) {
		return nil
	}
	return siblings[o.Index+1]
}

// Ancestor returns the nearest ancestor that is an instance of id.
func (o *Object) Ancestor(id types.AUID) *Object {
	for cur := o.Parent; cur != nil; cur = cur.Parent {
		if cur.IsA(id) {
			return cur
		}
	}
	return nil
}

// Weak resolves the weak reference held in pid against the collection held
// by target's targetPID property.
func (o *Object) Weak(pid uint16, target *Object, targetPID uint16) (*Object, error) {
	ref, err := o.WeakRef(pid)
	if err != nil {
		return nil, err
	}
	obj, err := o.sess.ResolveWeak(target, targetPID, ref)
	if err != nil {
		return nil, o.wrap(pid, err)
	}
	return obj, nil
}
