package timeline

import (
	"aafkit/internal/aaf"
	"aafkit/internal/aaf/aaferr"
	"aafkit/internal/aaf/resolver"
	"aafkit/internal/aaf/types"
)

// component interprets one Component. The returned error drops the
// component only; callers walking siblings report it and move on.
func (in *interpreter) component(obj *resolver.Object) error {
	in.trace(obj)
	switch {
	case obj.IsA(types.ClassSequence):
		return in.parseSequence(obj)
	case obj.IsA(types.ClassSourceClip):
		return in.parseSourceClip(obj)
	case obj.IsA(types.ClassOperationGroup):
		return in.parseOperationGroup(obj)
	case obj.IsA(types.ClassFiller):
		return in.parseFiller(obj)
	case obj.IsA(types.ClassSelector):
		return in.parseSelector(obj)
	case obj.IsA(types.ClassNestedScope):
		return in.parseNestedScope(obj)
	case obj.IsA(types.ClassTimecode):
		return in.parseTimecode(obj)
	case obj.IsA(types.ClassTransition):
		return in.parseTransition(obj)
	case obj.IsA(types.ClassDescriptiveMarker):
		return in.parseDescriptiveMarker(obj)
	case obj.IsA(types.ClassEssenceGroup):
		return aaferr.Unsupported(obj.Path(), "EssenceGroup")
	default:
		return aaferr.Unsupported(obj.Path(), obj.Class.Label())
	}
}

// visit interprets obj and reports it when it has to be dropped.
func (in *interpreter) visit(obj *resolver.Object) {
	if err := in.component(obj); err != nil {
		in.drop(obj, err)
	}
}

func (in *interpreter) parseSequence(seq *resolver.Object) error {
	components, err := seq.Collection(types.PIDSequenceComponents)
	if err != nil {
		return need(err)
	}
	for _, c := range components {
		in.visit(c)
	}
	return nil
}

func (in *interpreter) parseFiller(filler *resolver.Object) error {
	dataDef, err := in.file.DataDefinition(filler, types.PIDComponentDataDefinition)
	if err != nil {
		return need(err)
	}
	parent := filler.Parent
	switch {
	case parent.IsA(types.ClassTimelineMobSlot):
		// An empty track.
		return nil
	case parent.IsA(types.ClassSequence), parent.IsA(types.ClassSelector):
		length, err := filler.Int64(types.PIDComponentLength)
		if err != nil {
			return need(err)
		}
		switch {
		case types.IsSound(dataDef):
			if in.ctx.track == nil {
				return noTrack(filler)
			}
			in.ctx.track.Position += length
		case types.IsPicture(dataDef):
			if in.ctx.videoTrack == nil {
				return noTrack(filler)
			}
			in.ctx.videoTrack.Position += length
		}
		return nil
	default:
		return aaferr.Unsupported(filler.Path(), "Filler inside "+parent.Class.Label())
	}
}

func (in *interpreter) parseSelector(sel *resolver.Object) error {
	selected, err := sel.Strong(types.PIDSelectorSelected)
	if err != nil {
		return need(err)
	}
	if in.file.Vendor == aaf.VendorResolve {
		return in.parseResolveSelector(sel, selected)
	}
	// Alternates are kept by the producer but never played.
	return in.component(selected)
}

// parseNestedScope walks every slot of the scope from the same start
// position; the track cursor ends at the longest one.
func (in *interpreter) parseNestedScope(scope *resolver.Object) error {
	slots, err := scope.Collection(types.PIDNestedScopeSlots)
	if err != nil {
		return need(err)
	}
	track, video := in.ctx.track, in.ctx.videoTrack
	var start, videoStart, end, videoEnd int64
	if track != nil {
		start, end = track.Position, track.Position
	}
	if video != nil {
		videoStart, videoEnd = video.Position, video.Position
	}
	for _, s := range slots {
		if track != nil {
			track.Position = start
		}
		if video != nil {
			video.Position = videoStart
		}
		in.visit(s)
		if track != nil {
			end = max(end, track.Position)
		}
		if video != nil {
			videoEnd = max(videoEnd, video.Position)
		}
	}
	if track != nil {
		track.Position = end
	}
	if video != nil {
		video.Position = videoEnd
	}
	return nil
}

func (in *interpreter) parseTimecode(tc *resolver.Object) error {
	start, err := tc.Int64(types.PIDTimecodeStart)
	if err != nil {
		return need(err)
	}
	fps, err := tc.Uint16(types.PIDTimecodeFPS)
	if err != nil {
		return need(err)
	}
	drop, err := tc.Bool(types.PIDTimecodeDrop)
	if err != nil {
		return need(err)
	}
	slot := tc.Ancestor(types.ClassMobSlot)
	if slot == nil {
		return aaferr.Wrap(aaferr.ErrReferenceResolution, "timeline", "timecode", tc.Path()+": no enclosing MobSlot", nil)
	}
	rate, err := slot.Rational(types.PIDTimelineMobSlotEditRate)
	if err != nil {
		return need(err)
	}
	if in.haveTimecode {
		return aaferr.Unsupported(tc.Path(), "second Timecode ignored")
	}
	in.haveTimecode = true
	in.model.Timecode = Timecode{Start: start, FPS: fps, Drop: drop, EditRate: rate}
	return nil
}

func (in *interpreter) parseTransition(tr *resolver.Object) error {
	dataDef, err := in.file.DataDefinition(tr, types.PIDComponentDataDefinition)
	if err != nil {
		return need(err)
	}
	if !types.IsSound(dataDef) {
		return aaferr.Unsupported(tr.Path(), "Transition outside an audio track")
	}
	length, err := tr.Int64(types.PIDComponentLength)
	if err != nil {
		return need(err)
	}
	track := in.ctx.track
	if track == nil {
		return noTrack(tr)
	}
	fade, ok := classifyFade(tr.Prev(), tr.Next())
	if !ok {
		return aaferr.Wrap(aaferr.ErrUnsupportedConstruct, "timeline", "transition", tr.Path()+": cannot tell fade in, fade out or cross fade", nil)
	}

	t := &Transition{
		Fade:          fade,
		Interpolation: InterpolationLinear,
		Position:      track.Position - length,
		Length:        length,
	}
	if cut, err := tr.Int64(types.PIDTransitionCutPoint); err == nil {
		t.CutPoint = cut
	} else if isMissing(err) {
		t.CutPoint = length / 2
		in.warn(tr, "transition cut point missing, using the midpoint")
	} else {
		return err
	}

	group, err := tr.Strong(types.PIDTransitionOperationGroup)
	switch {
	case err == nil:
		in.ctx.transition = t
		if err := in.parseOperationGroup(group); err != nil {
			in.report(group, "transition effect ignored", err)
		}
		in.ctx.transition = nil
	case isMissing(err):
		in.warn(tr, "transition has no effect, using a linear curve")
	default:
		in.report(tr, "transition effect unreadable", err)
	}
	if len(t.Points) == 0 {
		t.Interpolation = InterpolationLinear
		t.Points = defaultFadeCurve(fade)
	}

	track.Items = append(track.Items, Item{Transition: t})
	track.Position -= length
	return nil
}

// classifyFade types a Transition from its neighbours in the Sequence.
func classifyFade(prev, next *resolver.Object) (FadeKind, bool) {
	switch {
	case prev != nil && prev.IsA(types.ClassFiller):
		return FadeIn, true
	case next != nil && next.IsA(types.ClassFiller):
		return FadeOut, true
	case prev != nil && next != nil:
		return CrossFade, true
	default:
		return 0, false
	}
}

func defaultFadeCurve(fade FadeKind) []Point {
	zero := types.Rational{Numerator: 0, Denominator: 1}
	one := types.Rational{Numerator: 1, Denominator: 1}
	if fade == FadeOut {
		return []Point{{Time: zero, Value: one}, {Time: one, Value: zero}}
	}
	return []Point{{Time: zero, Value: zero}, {Time: one, Value: one}}
}

func (in *interpreter) parseDescriptiveMarker(marker *resolver.Object) error {
	if in.file.Vendor != aaf.VendorResolve {
		return aaferr.Unsupported(marker.Path(), "DescriptiveMarker")
	}
	return in.parseResolveMarker(marker)
}

func noTrack(obj *resolver.Object) error {
	return aaferr.Wrap(aaferr.ErrReferenceResolution, "timeline", obj.Class.Label(), obj.Path()+": no track in progress", nil)
}

// isMissing reports an absent property, whether or not the schema
// requires it.
func isMissing(err error) bool {
	switch aaferr.Classify(err) {
	case aaferr.KindMissing, aaferr.KindAbsent:
		return true
	default:
		return false
	}
}
