// Package textutil provides text helpers for names that end up on disk or in
// the index.
//
// The primary use cases are:
//   - Sanitizing essence names for safe filesystem use
//   - Detecting names written in non-Latin scripts
//   - Splitting search terms into case-folded tokens
package textutil
