// Package cfb exposes compound-file containers as a tree of named nodes.
//
// File opens an on-disk compound file through mscfb; Memory builds the same
// tree in memory for fixtures. Both satisfy Container, which is the only
// surface the AAF parser depends on: the root node, child lookup by name,
// and stream bytes.
package cfb
