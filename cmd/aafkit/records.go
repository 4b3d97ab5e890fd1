package main

import (
	"aafkit/internal/index"
	"aafkit/internal/textutil"
	"aafkit/internal/timeline"
)

// runRecord flattens an interpreted model into the rows the index stores.
func runRecord(m *timeline.Model) index.RunRecord {
	rec := index.RunRecord{
		RunID:   m.RunID,
		Path:    m.File,
		Product: m.Product,
		Vendor:  m.Vendor,
		Composition: index.CompositionRecord{
			Name:       m.Composition,
			EditRate:   m.EditRate.String(),
			Start:      m.Start,
			Length:     m.Length,
			SampleRate: m.SampleRate,
			SampleSize: m.SampleSize,
		},
	}
	for _, tracks := range [][]*timeline.Track{m.AudioTracks, m.VideoTracks} {
		for _, t := range tracks {
			tr := index.TrackRecord{
				Kind:   t.Kind.String(),
				Number: t.Number,
				Name:   t.Name,
				Format: t.Format.String(),
			}
			for _, c := range t.Clips() {
				clip := index.ClipRecord{
					Position:      c.Position,
					Length:        c.Length,
					EssenceOffset: c.EssenceOffset,
					Name:          c.Name,
					Mute:          c.Mute,
				}
				for _, e := range m.ClipEssences(t.Kind, c) {
					clip.EssenceNames = append(clip.EssenceNames, e.UniqueName)
				}
				tr.Clips = append(tr.Clips, clip)
			}
			rec.Tracks = append(rec.Tracks, tr)
		}
	}
	for _, e := range append(append([]*timeline.Essence(nil), m.AudioEssences...), m.VideoEssences...) {
		rec.Essences = append(rec.Essences, index.EssenceRecord{
			Kind:       e.Kind.String(),
			Name:       e.Name,
			UniqueName: e.UniqueName,
			Type:       e.Type.String(),
			Embedded:   e.Embedded,
			Path:       textutil.FirstNonEmpty(e.UsablePath, e.OriginalPath),
			Channels:   e.Channels,
			SampleRate: e.SampleRate,
			SampleSize: e.SampleSize,
			Length:     e.Length,
		})
	}
	return rec
}
