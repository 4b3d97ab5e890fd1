package testsupport

import (
	"aafkit/internal/aaf/types"
	"aafkit/internal/cfb"
)

// ProjectRate is the sample rate and audio edit rate of NewProject.
const ProjectRate = 48000

// NewProject returns a Pro Tools style file with one composition named
// "Reel 1": a 25 fps timecode track starting at 90000 and one mono audio
// track holding two clips of the embedded 16-bit PCM essence "Interview".
func NewProject() *cfb.Memory {
	const frames = 96000
	masterID, sourceID := TestMobID(2), TestMobID(102)

	sound := func(class types.AUID) *Obj {
		return NewObject(class).
			WeakAUID(types.PIDComponentDataDefinition, types.PIDDefinitionObjectIdentification, types.DataDefSound)
	}
	clip := func(target types.MobID, slot uint32, start, length int64) *Obj {
		return sound(types.ClassSourceClip).
			Int64(types.PIDComponentLength, length).
			Int64(types.PIDSourceClipStartTime, start).
			MobID(types.PIDSourceReferenceSourceID, target).
			Uint32(types.PIDSourceReferenceSourceMobSlotID, slot)
	}
	slot := func(id uint32, num int32, segment *Obj) *Obj {
		return NewObject(types.ClassTimelineMobSlot).
			Uint32(types.PIDMobSlotSlotID, id).
			Rational(types.PIDTimelineMobSlotEditRate, num, 1).
			Int64(types.PIDTimelineMobSlotOrigin, 0).
			Strong(types.PIDMobSlotSegment, segment)
	}

	desc := NewObject(types.ClassPCMDescriptor).
		Int64(types.PIDFileDescriptorLength, frames).
		Rational(types.PIDFileDescriptorSampleRate, ProjectRate, 1).
		Uint32(types.PIDSoundDescriptorChannels, 1).
		Uint32(types.PIDSoundDescriptorQuantizationBits, 16).
		Rational(types.PIDSoundDescriptorAudioSamplingRate, ProjectRate, 1)
	master := NewObject(types.ClassMasterMob).
		MobID(types.PIDMobMobID, masterID).
		Text(types.PIDMobName, "Interview").
		Vector(types.PIDMobSlots, slot(1, ProjectRate, clip(sourceID, 1, 0, frames)))
	source := NewObject(types.ClassSourceMob).
		MobID(types.PIDMobMobID, sourceID).
		Text(types.PIDMobName, "Interview").
		Strong(types.PIDSourceMobEssenceDescription, desc).
		Vector(types.PIDMobSlots, slot(1, ProjectRate, sound(types.ClassSourceClip).
			Int64(types.PIDComponentLength, frames).
			Int64(types.PIDSourceClipStartTime, 0).
			Uint32(types.PIDSourceReferenceSourceMobSlotID, 0)))
	data := NewObject(types.ClassEssenceData).
		MobID(types.PIDEssenceDataMobID, sourceID).
		DataStream(types.PIDEssenceDataData, "Data-2702", PCM(1, 16, frames))

	timecode := NewObject(types.ClassTimecode).
		WeakAUID(types.PIDComponentDataDefinition, types.PIDDefinitionObjectIdentification, types.DataDefTimecode).
		Int64(types.PIDComponentLength, 1<<20).
		Int64(types.PIDTimecodeStart, 90000).
		Uint16(types.PIDTimecodeFPS, 25).
		Bool(types.PIDTimecodeDrop, false)
	track := sound(types.ClassSequence).Vector(types.PIDSequenceComponents,
		clip(masterID, 1, 0, ProjectRate),
		sound(types.ClassFiller).Int64(types.PIDComponentLength, ProjectRate/2),
		clip(masterID, 1, ProjectRate, ProjectRate/2),
	)
	comp := NewObject(types.ClassCompositionMob).
		MobID(types.PIDMobMobID, TestMobID(1)).
		Text(types.PIDMobName, "Reel 1").
		AUID(types.PIDMobUsageCode, types.UsageTopLevel).
		Vector(types.PIDMobSlots,
			slot(100, 25, timecode),
			slot(1, ProjectRate, track).
				Text(types.PIDMobSlotSlotName, "DIA 1").
				Uint32(types.PIDMobSlotPhysicalTrackNumber, 1),
		)

	fx := NewFile()
	fx.CompanyName = "Avid Technology, Inc."
	fx.ProductName = "Pro Tools"
	fx.Mobs = []*Obj{master, source, comp}
	fx.EssenceData = []*Obj{data}
	return fx.Build()
}
