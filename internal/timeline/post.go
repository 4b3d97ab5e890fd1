package timeline

import (
	"errors"

	"aafkit/internal/aaf"
	"aafkit/internal/aaf/types"
	"aafkit/internal/essence"
	"aafkit/internal/logging"
)

// finish runs once the walk is over: essences are located and measured,
// vendor clean-ups applied and the composition lengths computed.
func (in *interpreter) finish() {
	in.locateEssences()
	in.retrieveAudioFormats()
	in.nameEssences()

	if in.file.Vendor == aaf.VendorProTools {
		for _, t := range in.model.AudioTracks {
			if in.opts.ProToolsRemoveSampleAccurateEdit {
				in.removeSampleAccurateEdits(t)
			}
			if in.opts.ProToolsReplaceClipFades {
				in.replaceClipFades(t)
			}
		}
	}
	in.computeLengths()
}

func (in *interpreter) locateEssences() {
	for _, e := range in.model.allEssences() {
		if e.Embedded || e.OriginalPath == "" {
			continue
		}
		path, err := essence.Locate(e.OriginalPath, in.opts.MediaLocations, in.file.Path)
		if err != nil {
			msg := "essence file not found"
			if !errors.Is(err, essence.ErrNotFound) {
				msg = "essence location failed"
			}
			logging.WarnWithContext(in.logger, msg, "essence_locate",
				logging.String("essence", e.Name),
				logging.String("original_path", e.OriginalPath),
				logging.String(logging.FieldImpact, "essence stays unlinked"),
				logging.String(logging.FieldErrorHint, "add its directory with --media-location"),
				logging.Error(err),
			)
			continue
		}
		e.UsablePath = path
	}
}

// retrieveAudioFormats decodes the WAVE and AIFC headers of audio
// essences: from the embedded stream first, then the descriptor summary,
// then the located external file.
func (in *interpreter) retrieveAudioFormats() {
	c := in.file.Container()
	for _, e := range in.model.AudioEssences {
		if e.Type != essence.TypeWAVE && e.Type != essence.TypeAIFC {
			continue
		}
		var f essence.Format
		var err error
		if e.Embedded && e.Node != nil && c != nil {
			if sec, serr := c.Section(e.Node); serr == nil {
				f, err = essence.Parse(sec)
			} else {
				err = serr
			}
		}
		if !f.Complete() && len(e.Summary) > 0 {
			if sf, serr := essence.ParseBytes(e.Summary); serr == nil {
				f = merge(f, sf)
			} else if err == nil {
				err = serr
			}
		}
		if !f.Complete() && e.UsablePath != "" && essence.IsAudioFile(e.UsablePath) {
			if ff, ferr := essence.ParseFile(e.UsablePath); ferr == nil {
				f = merge(f, ff)
			} else if err == nil {
				err = ferr
			}
		}
		if f.Channels == 0 || f.SampleRate == 0 {
			e.Type = essence.TypeUnknown
			logging.WarnWithContext(in.logger, "audio essence format unknown", "essence_format",
				logging.String("essence", e.Name),
				logging.String(logging.FieldImpact, "essence cannot be extracted"),
				logging.Error(err),
			)
			continue
		}
		e.Channels = f.Channels
		e.SampleRate = f.SampleRate
		e.SampleSize = f.SampleSize
		if f.SampleCount > 0 {
			e.Length = f.SampleCount
		}
		e.DataOffset = f.DataOffset
	}

	seen := false
	for _, e := range in.model.AudioEssences {
		if e.Type == essence.TypeUnknown {
			continue
		}
		if !seen {
			seen = true
			in.model.SampleRate, in.model.SampleSize = e.SampleRate, e.SampleSize
			continue
		}
		if in.model.SampleRate != e.SampleRate {
			in.model.SampleRate = -1
		}
		if in.model.SampleSize != e.SampleSize {
			in.model.SampleSize = -1
		}
	}
}

// merge fills the fields of a left unknown with those of b.
func merge(a, b essence.Format) essence.Format {
	if a.Type == essence.TypeUnknown {
		a.Type = b.Type
	}
	if a.Channels == 0 {
		a.Channels = b.Channels
	}
	if a.SampleRate == 0 {
		a.SampleRate = b.SampleRate
	}
	if a.SampleSize == 0 {
		a.SampleSize = b.SampleSize
	}
	if a.SampleCount == 0 {
		a.SampleCount = b.SampleCount
	}
	return a
}

func (in *interpreter) nameEssences() {
	namer := essence.Namer{ForbidNonLatin: in.opts.ForbidNonLatin, Fallback: in.model.Composition}
	for _, e := range in.model.allEssences() {
		e.UniqueName = namer.Name(e.Name)
	}
}

// computeLengths derives the track-kind and composition lengths from the
// track cursors. The composition runs at the timecode edit rate.
func (in *interpreter) computeLengths() {
	m := in.model
	m.AudioLength, m.AudioEditRate = tracksLength(m.AudioTracks)
	m.VideoLength, m.VideoEditRate = tracksLength(m.VideoTracks)

	m.EditRate = m.Timecode.EditRate
	m.Start = m.Timecode.Start
	var length int64
	if !m.AudioEditRate.IsZero() {
		length = types.Rescale(m.AudioLength, m.AudioEditRate, m.EditRate)
	}
	if !m.VideoEditRate.IsZero() {
		length = max(length, types.Rescale(m.VideoLength, m.VideoEditRate, m.EditRate))
	}
	m.Length = length
	m.Timecode.End = m.Start + m.Length
}

func tracksLength(tracks []*Track) (int64, types.Rational) {
	if len(tracks) == 0 {
		return 0, types.Rational{}
	}
	var length int64
	for _, t := range tracks {
		length = max(length, t.Position)
	}
	return length, tracks[0].EditRate
}
