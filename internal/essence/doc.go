// Package essence reads and writes the audio payloads an AAF composition
// points at.
//
// It parses WAVE and AIFC headers (descriptor summaries, embedded streams
// and external files), locates external media from the URL recorded in a
// NetworkLocator, builds unique export file names and extracts embedded
// audio to WAV files, either whole or trimmed to a clip range.
package essence
