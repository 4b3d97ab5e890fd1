package catalog

import (
	"fmt"

	"aafkit/internal/aaf/aaferr"
	"aafkit/internal/aaf/types"
)

const (
	required = true
	optional = false
)

type propSpec struct {
	pid      uint16
	name     string
	required bool
}

type classSpec struct {
	id       types.AUID
	name     string
	parent   types.AUID
	concrete bool
	props    []propSpec
}

// Baseline returns a catalog seeded with the built-in schema. Baseline
// property types are left zero; the MetaDictionary fills types only for the
// properties it adds.
func Baseline() (*Catalog, error) {
	c := New()
	for _, entry := range baseline {
		var parent *Class
		if !entry.parent.IsZero() {
			p, ok := c.Class(entry.parent)
			if !ok {
				return nil, aaferr.Wrap(aaferr.ErrSchema, "catalog", "bootstrap",
					fmt.Sprintf("%s declared before its parent %s", entry.name, entry.parent), nil)
			}
			parent = p
		}
		cls, err := c.Define(entry.id, entry.concrete, parent)
		if err != nil {
			return nil, err
		}
		cls.Name = entry.name
		for _, prop := range entry.props {
			if _, err := cls.AddProperty(PropertyDef{PID: prop.pid, Name: prop.name, Required: prop.required}); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}
