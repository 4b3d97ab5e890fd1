// Command aafkit inspects AAF files from the command line.
//
// It prints header and class catalog summaries, renders the interpreted
// timeline as a table or JSON, extracts embedded essence to WAV and keeps a
// searchable SQLite index of previously read files.
package main
