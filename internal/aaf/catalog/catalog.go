package catalog

import (
	"fmt"

	"aafkit/internal/aaf/aaferr"
	"aafkit/internal/aaf/types"
)

// PropertyDef describes one property slot on a class.
type PropertyDef struct {
	PID      uint16
	Name     string
	Type     types.AUID
	Required bool
	// Meta marks properties discovered in the file's MetaDictionary.
	Meta  bool
	Class *Class
}

// Class is one AAF class definition.
type Class struct {
	ID       types.AUID
	Name     string
	Concrete bool
	// Meta marks classes discovered in the file's MetaDictionary.
	Meta       bool
	Parent     *Class
	properties []*PropertyDef
}

// Properties returns the class's own property definitions in declaration order.
func (c *Class) Properties() []*PropertyDef {
	return c.properties
}

// OwnProperty looks pid up on c only.
func (c *Class) OwnProperty(pid uint16) (*PropertyDef, bool) {
	for _, def := range c.properties {
		if def.PID == pid {
			return def, true
		}
	}
	return nil, false
}

// Property looks pid up on c, then on each ancestor. First match wins.
func (c *Class) Property(pid uint16) (*PropertyDef, bool) {
	for cls := c; cls != nil; cls = cls.Parent {
		if def, ok := cls.OwnProperty(pid); ok {
			return def, true
		}
	}
	return nil, false
}

// PropertyByName searches c and its ancestors for a property called name.
func (c *Class) PropertyByName(name string) (*PropertyDef, bool) {
	for cls := c; cls != nil; cls = cls.Parent {
		for _, def := range cls.properties {
			if def.Name == name {
				return def, true
			}
		}
	}
	return nil, false
}

// AddProperty appends def to c. A PID already visible on c is rejected.
func (c *Class) AddProperty(def PropertyDef) (*PropertyDef, error) {
	if existing, ok := c.Property(def.PID); ok {
		return nil, aaferr.Wrap(aaferr.ErrSchema, "catalog", "add property",
			fmt.Sprintf("pid 0x%04x already defined on %s by %s", def.PID, c.Label(), existing.Class.Label()), nil)
	}
	stored := def
	stored.Class = c
	c.properties = append(c.properties, &stored)
	return &stored, nil
}

// IsA reports whether c is id or derives from it.
func (c *Class) IsA(id types.AUID) bool {
	for cls := c; cls != nil; cls = cls.Parent {
		if cls.ID == id {
			return true
		}
	}
	return false
}

// Label returns the class name, or its AUID when unnamed.
func (c *Class) Label() string {
	if c == nil {
		return "<nil>"
	}
	if c.Name != "" {
		return c.Name
	}
	return c.ID.String()
}

// Catalog holds every class known to a parse session.
type Catalog struct {
	classes map[types.AUID]*Class
	order   []*Class
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{classes: make(map[types.AUID]*Class)}
}

// Define registers a new class under parent (nil for a forest root).
func (c *Catalog) Define(id types.AUID, concrete bool, parent *Class) (*Class, error) {
	if _, exists := c.classes[id]; exists {
		return nil, aaferr.Wrap(aaferr.ErrSchema, "catalog", "define class",
			fmt.Sprintf("class %s already defined", id), nil)
	}
	cls := &Class{ID: id, Concrete: concrete, Parent: parent}
	c.classes[id] = cls
	c.order = append(c.order, cls)
	return cls, nil
}

// Class looks a class up by identifier.
func (c *Catalog) Class(id types.AUID) (*Class, bool) {
	cls, ok := c.classes[id]
	return cls, ok
}

// Property resolves pid on the class identified by id, walking ancestors.
func (c *Catalog) Property(id types.AUID, pid uint16) (*PropertyDef, bool) {
	cls, ok := c.classes[id]
	if !ok {
		return nil, false
	}
	return cls.Property(pid)
}

// Classes returns every class in definition order.
func (c *Catalog) Classes() []*Class {
	out := make([]*Class, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of registered classes.
func (c *Catalog) Len() int {
	return len(c.order)
}
