// Package timeline interprets a parsed AAF object graph as an editorial
// timeline.
//
// Interpret selects the top-level CompositionMob and walks its slots,
// following SourceClips through MasterMobs and SourceMobs down to the
// essence descriptors. The walk produces a Model of audio and video tracks,
// clips, transitions, gain and pan levels, markers and essence entries.
//
// The interpreter never aborts on a malformed branch. A Component, MobSlot
// or Mob that cannot be interpreted is reported to the diagnostics collector
// and the walk continues with its siblings, so a mostly well-formed file
// still yields a usable model. Vendor specific conventions for DaVinci
// Resolve, Pro Tools and Avid are applied according to Options.
//
// The Model is independent of the parse session except for the container
// nodes of embedded essence, which stay valid while the aaf.File is open.
package timeline
