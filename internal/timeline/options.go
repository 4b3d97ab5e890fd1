package timeline

import (
	"log/slog"

	"aafkit/internal/aaf/aaferr"
)

// Options tunes a single interpretation run.
type Options struct {
	Logger *slog.Logger
	// Diagnostics receives dropped branches; defaults to the file's
	// collector.
	Diagnostics *aaferr.Diagnostics
	// Trace logs every visited object at debug level.
	Trace bool
	// RunID tags log records and the model. It is left empty when unset, so
	// repeated runs with the same options produce equal models.
	RunID string

	// MediaLocations are searched for external essence files.
	MediaLocations []string
	// ForbidNonLatin replaces non-Latin essence names with
	// <composition>_<n>.
	ForbidNonLatin bool

	// ResolveIncludeDisabledClips imports DaVinci Resolve disabled clips
	// as muted clips instead of skipping them.
	ResolveIncludeDisabledClips bool
	// ProToolsRemoveSampleAccurateEdit drops the short pad clips Pro Tools
	// writes around sample-accurate edits.
	ProToolsRemoveSampleAccurateEdit bool
	// ProToolsReplaceClipFades turns rendered fade clips into transitions.
	ProToolsReplaceClipFades bool
	// IgnoreAvidFadeCurve disables the _FADE_CURVE tagged value override.
	IgnoreAvidFadeCurve bool
}
