package timeline

import (
	"fmt"

	"aafkit/internal/aaf"
	"aafkit/internal/aaf/aaferr"
	"aafkit/internal/aaf/resolver"
	"aafkit/internal/aaf/types"
)

const avidFadeCurveTag = "_FADE_CURVE"

// avidFadeCurves maps the _FADE_CURVE tagged value onto interpolations.
var avidFadeCurves = map[int32]Interpolation{
	0: InterpolationLinear,
	1: InterpolationPower,
	2: InterpolationLog,
}

func (in *interpreter) parseOperationGroup(group *resolver.Object) error {
	mob := group.Ancestor(types.ClassMob)
	if mob == nil || !mob.IsA(types.ClassCompositionMob) {
		return aaferr.Unsupported(group.Path(), "OperationGroup outside a CompositionMob")
	}
	op, err := in.file.OperationDefinition(group, types.PIDOperationGroupOperation)
	if err != nil {
		return need(err)
	}
	if group.Parent != nil && group.Parent.IsA(types.ClassTransition) {
		return in.parseTransitionEffect(group, op)
	}
	if op == types.OperationDefAudioChannelCombiner {
		return in.parseChannelCombiner(group)
	}

	var opErr error
	switch op {
	case types.OperationDefMonoAudioGain:
		opErr = in.parseLevel(group, op, types.ParameterDefAmplitude)
	case types.OperationDefMonoAudioPan:
		opErr = in.parseLevel(group, op, types.ParameterDefPan)
	default:
		opErr = aaferr.Unsupported(group.Path(), "operation "+types.DefinitionName(op))
	}
	if opErr != nil {
		in.report(group, "operation ignored", opErr)
	}

	// The inputs are walked even when the effect itself is not understood.
	if group.Has(types.PIDOperationGroupInputSegments) {
		inputs, err := group.Collection(types.PIDOperationGroupInputSegments)
		if err != nil {
			in.report(group, "input segments unreadable", err)
		}
		for _, seg := range inputs {
			in.visit(seg)
		}
	}

	if op == types.OperationDefMonoAudioGain && !in.trackScoped(group) {
		in.ctx.resetClipLevels()
	}
	return nil
}

// trackScoped decides whether a level belongs to the track or to the next
// clip. Nested OperationGroups are skipped; a TimelineMobSlot of the
// top-level composition above them makes the level track-scoped.
func (in *interpreter) trackScoped(group *resolver.Object) bool {
	obj := group
	for obj != nil && obj.IsA(types.ClassOperationGroup) {
		obj = obj.Parent
	}
	if obj == nil || !obj.IsA(types.ClassTimelineMobSlot) {
		return false
	}
	return !in.ctx.derivation && obj.Parent != nil && obj.Parent.IsA(types.ClassCompositionMob)
}

func (in *interpreter) parseChannelCombiner(group *resolver.Object) error {
	inputs, err := group.Collection(types.PIDOperationGroupInputSegments)
	if err != nil {
		return need(err)
	}
	track := in.ctx.track
	if track == nil {
		return noTrack(group)
	}

	in.ctx.combined = true
	in.ctx.combinedTotal = len(inputs)
	in.ctx.combinedChannel = 0
	for _, seg := range inputs {
		in.visit(seg)
		in.ctx.combinedChannel++
	}
	in.ctx.resetCombined()

	format, ok := formatForChannels(len(inputs))
	if !ok {
		return aaferr.Unsupported(group.Path(), fmt.Sprintf("%d channel AudioChannelCombiner", len(inputs)))
	}
	if track.Format != FormatUnset && track.Format != format {
		return aaferr.Wrap(aaferr.ErrUnsupportedConstruct, "timeline", "channel combiner",
			fmt.Sprintf("%s: %s clip on a %s track", group.Path(), format, track.Format), nil)
	}
	track.Format = format
	return nil
}

// parseTransitionEffect reads the fade curve of the Transition in
// progress. Without a usable Level parameter the caller keeps its default
// curve.
func (in *interpreter) parseTransitionEffect(group *resolver.Object, op types.AUID) error {
	t := in.ctx.transition
	if t == nil {
		return aaferr.Wrap(aaferr.ErrReferenceResolution, "timeline", "transition effect", group.Path()+": no transition in progress", nil)
	}
	if op != types.OperationDefMonoAudioDissolve {
		return aaferr.Unsupported(group.Path(), "transition operation "+types.DefinitionName(op))
	}
	param, ok := in.file.Parameter(group, types.ParameterDefLevel)
	if !ok || !param.IsA(types.ClassVaryingValue) {
		return nil
	}
	points, err := controlPoints(param)
	if err != nil {
		return err
	}
	t.Interpolation = in.interpolation(param, group)
	t.Points = points
	return nil
}

// parseLevel reads the gain or pan parameter of group.
func (in *interpreter) parseLevel(group *resolver.Object, op, paramDef types.AUID) error {
	param, ok := in.file.Parameter(group, paramDef)
	if !ok {
		return aaferr.Missing(group.Path(), "parameter "+types.DefinitionName(paramDef))
	}
	track := in.ctx.track
	if track == nil {
		return noTrack(group)
	}

	var level *Level
	switch {
	case param.IsA(types.ClassConstantValue):
		ind, err := param.Indirect(types.PIDConstantValueValue)
		if err != nil {
			return need(err)
		}
		v, err := ind.Rational()
		if err != nil {
			return err
		}
		level = &Level{Kind: LevelConstant, Points: []Point{{Value: v}}}
	case param.IsA(types.ClassVaryingValue):
		points, err := controlPoints(param)
		if err != nil {
			return err
		}
		level = &Level{Kind: LevelVariable, Interpolation: in.interpolation(param, group), Points: points}
		// Two identical points are a constant level.
		if len(points) == 2 && points[0].Value == points[1].Value {
			level.Kind = LevelConstant
		}
	default:
		return aaferr.Unsupported(param.Path(), param.Class.Label())
	}

	if op == types.OperationDefMonoAudioPan {
		if track.Pan != nil && param.IsA(types.ClassVaryingValue) {
			return aaferr.Wrap(aaferr.ErrMalformedStream, "timeline", "pan", param.Path()+": track pan already set", nil)
		}
		track.Pan = level
		return nil
	}
	return in.applyGain(group, param, level)
}

func (in *interpreter) applyGain(group, param *resolver.Object, level *Level) error {
	varying := param.IsA(types.ClassVaryingValue)
	if level.Kind == LevelConstant && level.Value() == 1 {
		if varying || in.file.Vendor == aaf.VendorResolve {
			return nil
		}
	}
	track := in.ctx.track
	if in.trackScoped(group) {
		if varying && track.Gain != nil {
			return aaferr.Wrap(aaferr.ErrMalformedStream, "timeline", "gain", param.Path()+": track gain already set", nil)
		}
		track.Gain = level
		return nil
	}
	if level.Kind == LevelConstant {
		if in.ctx.clipGain != nil {
			return aaferr.Wrap(aaferr.ErrMalformedStream, "timeline", "gain", param.Path()+": clip gain already set", nil)
		}
		in.ctx.clipGain = level
		return nil
	}
	if in.ctx.clipAutomation != nil {
		return aaferr.Wrap(aaferr.ErrMalformedStream, "timeline", "gain", param.Path()+": clip automation already set", nil)
	}
	in.ctx.clipAutomation = level
	return nil
}

// interpolation returns the curve of a VaryingValue. The Avid _FADE_CURVE
// tagged value wins over the InterpolationDefinition when present.
func (in *interpreter) interpolation(param, group *resolver.Object) Interpolation {
	if curve, ok := in.avidFadeCurve(group); ok {
		return curve
	}
	id, err := in.file.InterpolationDefinition(param, types.PIDVaryingValueInterpolation)
	if err != nil {
		in.warn(param, "interpolation definition missing, using linear")
		return InterpolationLinear
	}
	interp, ok := interpolationFromDef(id)
	if !ok {
		in.warn(param, "unknown interpolation "+id.String()+", using linear")
	}
	return interp
}

func (in *interpreter) avidFadeCurve(group *resolver.Object) (Interpolation, bool) {
	if in.opts.IgnoreAvidFadeCurve {
		return 0, false
	}
	for _, obj := range []*resolver.Object{group, group.Parent} {
		if obj == nil || !obj.IsA(types.ClassComponent) {
			continue
		}
		tv, ok := aaf.TaggedValue(obj, types.PIDComponentAttributes, avidFadeCurveTag)
		if !ok {
			continue
		}
		ind, err := tv.Indirect(types.PIDTaggedValueValue)
		if err != nil {
			continue
		}
		v, err := ind.Int32()
		if err != nil {
			continue
		}
		if curve, ok := avidFadeCurves[v]; ok {
			return curve, true
		}
	}
	return 0, false
}

func controlPoints(param *resolver.Object) ([]Point, error) {
	list, err := param.Collection(types.PIDVaryingValuePointList)
	if err != nil {
		return nil, need(err)
	}
	points := make([]Point, 0, len(list))
	for _, cp := range list {
		t, err := cp.Rational(types.PIDControlPointTime)
		if err != nil {
			return nil, need(err)
		}
		ind, err := cp.Indirect(types.PIDControlPointValue)
		if err != nil {
			return nil, need(err)
		}
		v, err := ind.Rational()
		if err != nil {
			return nil, err
		}
		points = append(points, Point{Time: t, Value: v})
	}
	if len(points) == 0 {
		return nil, aaferr.Missing(param.Path(), "VaryingValue::PointList")
	}
	return points, nil
}
