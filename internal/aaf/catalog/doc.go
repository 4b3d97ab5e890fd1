// Package catalog is the registry of AAF class and property definitions.
//
// Baseline builds the Edit Protocol schema from a data table; the
// MetaDictionary loader later extends it with classes and properties declared
// inside the file. Classes form two single-inheritance forests (object classes
// under InterchangeObject, meta classes under MetaDefinition) and property
// lookups walk from a class up through its ancestors.
package catalog
