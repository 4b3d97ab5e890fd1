package timeline

import (
	"encoding/binary"
	"strings"

	"aafkit/internal/aaf/property"
	"aafkit/internal/aaf/resolver"
	"aafkit/internal/aaf/types"
	"aafkit/internal/logging"
)

// Dynamic properties DaVinci Resolve declares in the MetaDictionary for its
// markers.
const (
	resolveMarkerUser  = "CommentMarkerUser"
	resolveMarkerColor = "CommentMarkerColor"
)

// Pro Tools names the clips it renders around edits.
const (
	proToolsSampleAccuratePrefix = "sample accurate edit"
	proToolsFadePrefix           = "fade "
)

// parseResolveSelector handles disabled clips: Resolve stores them as the
// alternate of a Selector whose Selected is a Filler.
func (in *interpreter) parseResolveSelector(sel, selected *resolver.Object) error {
	if !selected.IsA(types.ClassFiller) || !sel.Has(types.PIDSelectorAlternates) {
		return in.component(selected)
	}
	alternates, err := sel.Collection(types.PIDSelectorAlternates)
	if err != nil || len(alternates) == 0 {
		return in.component(selected)
	}
	if !in.opts.ResolveIncludeDisabledClips {
		in.logger.Debug("disabled clip skipped",
			logging.String("path", alternates[0].Path()),
		)
		return in.component(selected)
	}
	in.ctx.clipMute = true
	err = in.component(alternates[0])
	in.ctx.clipMute = false
	return err
}

func (in *interpreter) parseResolveMarker(marker *resolver.Object) error {
	pos, err := marker.Int64(types.PIDEventPosition)
	if err != nil {
		return need(err)
	}
	m := Marker{Start: pos, EditRate: in.model.MarkerEditRate}
	if length, err := marker.Int64(types.PIDComponentLength); err == nil {
		m.Length = length
	}
	if comment, err := marker.Text(types.PIDEventComment); err == nil {
		m.Comment = comment
	}
	if v, ok := dynamicValue(marker, resolveMarkerUser); ok {
		if name, err := v.Text(); err == nil {
			m.Name = name
		}
	}
	if v, ok := dynamicValue(marker, resolveMarkerColor); ok && len(v.Data) >= 6 {
		for i := range m.Color {
			m.Color[i] = binary.LittleEndian.Uint16(v.Data[2*i:])
		}
	}
	in.model.Markers = append(in.model.Markers, m)
	return nil
}

// dynamicValue reads a property declared by the file's MetaDictionary,
// whose PID differs from file to file.
func dynamicValue(obj *resolver.Object, name string) (property.Value, bool) {
	def, ok := obj.Class.PropertyByName(name)
	if !ok {
		return property.Value{}, false
	}
	v, err := obj.Value(def.PID)
	if err != nil {
		return property.Value{}, false
	}
	return v, true
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// adjacentClips returns the clips right before and after item i when they
// touch it.
func adjacentClips(t *Track, i int) (prev, next *Clip) {
	c := t.Items[i].Clip
	if i > 0 {
		if p := t.Items[i-1].Clip; p != nil && p.Position+p.Length == c.Position {
			prev = p
		}
	}
	if i+1 < len(t.Items) {
		if n := t.Items[i+1].Clip; n != nil && c.Position+c.Length == n.Position {
			next = n
		}
	}
	return prev, next
}

// removeSampleAccurateEdits drops the pad clips Pro Tools inserts around
// edits that do not fall on a frame boundary, handing their length to the
// clip they pad.
func (in *interpreter) removeSampleAccurateEdits(t *Track) {
	removed := 0
	for i := 0; i < len(t.Items); i++ {
		c := t.Items[i].Clip
		if c == nil || !hasPrefixFold(c.Name, proToolsSampleAccuratePrefix) {
			continue
		}
		prev, next := adjacentClips(t, i)
		switch {
		case prev != nil:
			prev.Length += c.Length
		case next != nil:
			next.Position = c.Position
			next.Length += c.Length
			next.EssenceOffset = max(0, next.EssenceOffset-c.Length)
		default:
			continue
		}
		t.Items = append(t.Items[:i], t.Items[i+1:]...)
		i--
		removed++
	}
	if removed > 0 {
		in.logger.Info("pro tools sample accurate edits removed",
			logging.String(logging.FieldEventType, "protools_sample_accurate_edit"),
			logging.Int("track", t.Number),
			logging.Int("removed", removed),
		)
	}
}

// replaceClipFades turns the fade clips Pro Tools renders into Transitions.
// The neighbouring clips are stretched over the fade so the Transition
// overlaps them.
func (in *interpreter) replaceClipFades(t *Track) {
	replaced := 0
	for i := range t.Items {
		c := t.Items[i].Clip
		if c == nil || !hasPrefixFold(c.Name, proToolsFadePrefix) {
			continue
		}
		prev, next := adjacentClips(t, i)
		var fade FadeKind
		switch {
		case prev != nil && next != nil:
			fade = CrossFade
		case next != nil:
			fade = FadeIn
		case prev != nil:
			fade = FadeOut
		default:
			continue
		}
		if prev != nil {
			prev.Length += c.Length
		}
		if next != nil {
			next.Position = c.Position
			next.Length += c.Length
			next.EssenceOffset = max(0, next.EssenceOffset-c.Length)
		}
		t.Items[i] = Item{Transition: &Transition{
			Fade:          fade,
			Interpolation: InterpolationLinear,
			Position:      c.Position,
			Length:        c.Length,
			CutPoint:      c.Length / 2,
			Points:        defaultFadeCurve(fade),
		}}
		replaced++
	}
	if replaced > 0 {
		in.logger.Info("pro tools clip fades replaced",
			logging.String(logging.FieldEventType, "protools_clip_fade"),
			logging.Int("track", t.Number),
			logging.Int("replaced", replaced),
		)
	}
}
