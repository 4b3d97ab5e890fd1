// Package property decodes the binary property streams attached to every AAF
// object node.
//
// A node's "properties" stream is an index of (pid, stored form, length)
// triples followed by the packed values. Strong-reference sets and vectors
// carry their own "<name> index" streams, and weak references are small
// records naming a target collection and a key. Value wraps raw bytes with
// typed accessors that return an error, never a reinterpretation, when the
// size does not match the requested type.
package property
