package timeline

import (
	"context"
	"testing"

	"aafkit/internal/aaf"
	"aafkit/internal/aaf/types"
	"aafkit/internal/testsupport"
)

const sampleRate = 48000

func dataDef(o *testsupport.Obj, id types.AUID) *testsupport.Obj {
	return o.WeakAUID(types.PIDComponentDataDefinition, types.PIDDefinitionObjectIdentification, id)
}

func sound(class types.AUID) *testsupport.Obj {
	return dataDef(testsupport.NewObject(class), types.DataDefSound)
}

func clipTo(master types.MobID, slot uint32, start, length int64) *testsupport.Obj {
	return sound(types.ClassSourceClip).
		Int64(types.PIDComponentLength, length).
		Int64(types.PIDSourceClipStartTime, start).
		MobID(types.PIDSourceReferenceSourceID, master).
		Uint32(types.PIDSourceReferenceSourceMobSlotID, slot)
}

func filler(length int64) *testsupport.Obj {
	return sound(types.ClassFiller).Int64(types.PIDComponentLength, length)
}

func sequence(components ...*testsupport.Obj) *testsupport.Obj {
	return sound(types.ClassSequence).Vector(types.PIDSequenceComponents, components...)
}

func transition(length int64) *testsupport.Obj {
	return sound(types.ClassTransition).Int64(types.PIDComponentLength, length)
}

func operation(op types.AUID, inputs ...*testsupport.Obj) *testsupport.Obj {
	return sound(types.ClassOperationGroup).
		WeakAUID(types.PIDOperationGroupOperation, types.PIDDefinitionObjectIdentification, op).
		Vector(types.PIDOperationGroupInputSegments, inputs...)
}

func constant(param types.AUID, num, den int32) *testsupport.Obj {
	return testsupport.NewObject(types.ClassConstantValue).
		WeakAUID(types.PIDParameterDefinition, types.PIDDefinitionObjectIdentification, param).
		IndirectRational(types.PIDConstantValueValue, num, den)
}

func point(tNum, tDen, vNum, vDen int32) *testsupport.Obj {
	return testsupport.NewObject(types.ClassControlPoint).
		Rational(types.PIDControlPointTime, tNum, tDen).
		IndirectRational(types.PIDControlPointValue, vNum, vDen)
}

func varying(param, interp types.AUID, points ...*testsupport.Obj) *testsupport.Obj {
	return testsupport.NewObject(types.ClassVaryingValue).
		WeakAUID(types.PIDParameterDefinition, types.PIDDefinitionObjectIdentification, param).
		WeakAUID(types.PIDVaryingValueInterpolation, types.PIDDefinitionObjectIdentification, interp).
		Vector(types.PIDVaryingValuePointList, points...)
}

func timelineSlot(id uint32, num, den int32, segment *testsupport.Obj) *testsupport.Obj {
	return testsupport.NewObject(types.ClassTimelineMobSlot).
		Uint32(types.PIDMobSlotSlotID, id).
		Rational(types.PIDTimelineMobSlotEditRate, num, den).
		Int64(types.PIDTimelineMobSlotOrigin, 0).
		Strong(types.PIDMobSlotSegment, segment)
}

func audioSlot(id uint32, segment *testsupport.Obj) *testsupport.Obj {
	return timelineSlot(id, sampleRate, 1, segment)
}

func timecodeSlot(start int64) *testsupport.Obj {
	tc := dataDef(testsupport.NewObject(types.ClassTimecode), types.DataDefTimecode).
		Int64(types.PIDComponentLength, 1<<20).
		Int64(types.PIDTimecodeStart, start).
		Uint16(types.PIDTimecodeFPS, 25).
		Bool(types.PIDTimecodeDrop, false)
	return timelineSlot(100, 25, 1, tc)
}

func composition(name string, slots ...*testsupport.Obj) *testsupport.Obj {
	return testsupport.NewObject(types.ClassCompositionMob).
		MobID(types.PIDMobMobID, testsupport.TestMobID(1)).
		Text(types.PIDMobName, name).
		AUID(types.PIDMobUsageCode, types.UsageTopLevel).
		Vector(types.PIDMobSlots, slots...)
}

// media builds a MasterMob named name with one slot per channel, the
// SourceMob behind it and the embedded EssenceData. Mob IDs are derived
// from n.
type media struct {
	masterID types.MobID
	sourceID types.MobID
	mobs     []*testsupport.Obj
	data     *testsupport.Obj
}

func pcmMedia(n byte, name string, channels int, rate int32, frames int64) media {
	m := media{masterID: testsupport.TestMobID(n), sourceID: testsupport.TestMobID(n + 100)}
	desc := testsupport.NewObject(types.ClassPCMDescriptor).
		Int64(types.PIDFileDescriptorLength, frames).
		Rational(types.PIDFileDescriptorSampleRate, rate, 1).
		Uint32(types.PIDSoundDescriptorChannels, 1).
		Uint32(types.PIDSoundDescriptorQuantizationBits, 16).
		Rational(types.PIDSoundDescriptorAudioSamplingRate, rate, 1)
	return m.build(name, channels, frames, desc, testsupport.PCM(1, 16, int(frames)))
}

func waveMedia(n byte, name string, frames int64) media {
	m := media{masterID: testsupport.TestMobID(n), sourceID: testsupport.TestMobID(n + 100)}
	desc := testsupport.NewObject(types.ClassWAVEDescriptor).
		Rational(types.PIDFileDescriptorSampleRate, sampleRate, 1).
		Data(types.PIDWAVEDescriptorSummary, testsupport.WAVE(2, sampleRate, 24, 0))
	return m.build(name, 1, frames, desc, testsupport.WAVE(2, sampleRate, 24, int(frames)))
}

func (m media) build(name string, channels int, frames int64, desc *testsupport.Obj, payload []byte) media {
	var masterSlots, sourceSlots []*testsupport.Obj
	for ch := 1; ch <= channels; ch++ {
		id := uint32(ch)
		masterSlots = append(masterSlots, audioSlot(id, clipTo(m.sourceID, id, 0, frames)))
		sourceSlots = append(sourceSlots, audioSlot(id, sound(types.ClassSourceClip).
			Int64(types.PIDComponentLength, frames).
			Int64(types.PIDSourceClipStartTime, 0).
			Uint32(types.PIDSourceReferenceSourceMobSlotID, 0)))
	}
	master := testsupport.NewObject(types.ClassMasterMob).
		MobID(types.PIDMobMobID, m.masterID).
		Text(types.PIDMobName, name).
		Vector(types.PIDMobSlots, masterSlots...)
	source := testsupport.NewObject(types.ClassSourceMob).
		MobID(types.PIDMobMobID, m.sourceID).
		Text(types.PIDMobName, name).
		TimeStamp(types.PIDMobCreationTime, types.TimeStamp{Year: 2023, Month: 11, Day: 2, Hour: 8, Minute: 4, Second: 9}).
		Strong(types.PIDSourceMobEssenceDescription, desc).
		Vector(types.PIDMobSlots, sourceSlots...)
	m.mobs = []*testsupport.Obj{master, source}
	m.data = testsupport.NewObject(types.ClassEssenceData).
		MobID(types.PIDEssenceDataMobID, m.sourceID).
		DataStream(types.PIDEssenceDataData, "Data-2702", payload)
	return m
}

func (m media) add(fx *testsupport.FileFixture) {
	fx.Mobs = append(fx.Mobs, m.mobs...)
	fx.EssenceData = append(fx.EssenceData, m.data)
}

func open(t *testing.T, fx *testsupport.FileFixture) *aaf.File {
	t.Helper()
	f, err := aaf.OpenContainer(context.Background(), fx.Build(), aaf.Options{})
	if err != nil {
		t.Fatalf("OpenContainer: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func interpret(t *testing.T, fx *testsupport.FileFixture, opts Options) (*Model, *aaf.File) {
	t.Helper()
	f := open(t, fx)
	m, err := Interpret(context.Background(), f, opts)
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}
	return m, f
}

func onlyTrack(t *testing.T, m *Model) *Track {
	t.Helper()
	if len(m.AudioTracks) != 1 {
		t.Fatalf("expected one audio track, got %d", len(m.AudioTracks))
	}
	return m.AudioTracks[0]
}
