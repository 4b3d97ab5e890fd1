// Package aaf opens AAF files and exposes the resolved object graph.
//
// Open runs the parse pipeline in a fixed order: the baseline catalog is
// built, the Root object is decoded, the MetaDictionary is resolved and merged
// into the catalog, and only then is the Header tree parsed so that objects of
// file-declared classes can be decoded. Failing to resolve the Root, the
// MetaDictionary or the Header is fatal; every other problem is recorded in
// the File's diagnostics and the affected branch is left out of the graph.
//
// A File is read-only once Open returns and may be interpreted any number of
// times.
package aaf
