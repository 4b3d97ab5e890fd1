// Package types holds the fixed-layout AAF value types (AUID, MobID,
// Rational, TimeStamp, version records) together with the well-known
// identifiers used to recognise classes, properties and definitions.
//
// All decoding is little-endian and fails closed: a byte slice whose length
// does not match the declared layout yields ErrSize instead of a partially
// filled value.
package types
