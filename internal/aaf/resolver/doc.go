// Package resolver rebuilds the AAF object graph from a compound-file
// container.
//
// Session is an arena: every parsed object gets a stable ObjectID in a flat
// registry and is owned by exactly one strong-reference property (or is the
// Root). Strong references are resolved in place while parsing; set members
// keep their identification bytes and vector members their local keys so
// weak references can later be resolved through per-collection lookup tables
// without allocating.
//
// Failures below the Root are contained. A collection member that cannot be
// parsed is reported to the session diagnostics and skipped; a single strong
// reference that cannot be parsed leaves its property unresolved so accessors
// report it as missing.
package resolver
