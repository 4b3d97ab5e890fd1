// Package aaferr defines the error taxonomy shared by the AAF parser and the
// timeline interpreter.
//
// Failures are tagged with one of the exported sentinel markers through Wrap,
// so callers can classify them with errors.Is while the message keeps the
// component, operation and object path that produced them. Diagnostics
// aggregates the non-fatal failures of a session into a report that is
// returned alongside a partial result.
package aaferr
