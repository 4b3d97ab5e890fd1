// Package index persists interpreted AAF files in a SQLite catalogue so
// compositions, tracks, clips and essences can be listed and searched
// without reopening the source files.
//
// Every Record call replaces whatever was stored for the same file path.
// Writers serialize on a lock file beside the database, so two aafkit
// processes indexing at once never interleave their transactions.
//
// The schema is versioned in schema.go. A version mismatch is reported as
// ErrSchemaMismatch; users delete the database to adopt the new schema.
package index
