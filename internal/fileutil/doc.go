// Package fileutil holds the small file helpers used when writing extracted
// essence: directory creation, atomic writes and verified copies.
package fileutil
