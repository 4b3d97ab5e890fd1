package timeline

import (
	"fmt"
	"slices"

	"aafkit/internal/aaf/aaferr"
	"aafkit/internal/aaf/resolver"
	"aafkit/internal/aaf/types"
	"aafkit/internal/essence"
	"aafkit/internal/logging"
)

// maxQuantizationBits bounds SoundDescriptor::QuantizationBits.
const maxQuantizationBits = 1 << 15

// sourceRef is the decoded SourceReference part of a SourceClip.
type sourceRef struct {
	dataDef  types.AUID
	mob      *resolver.Object
	sourceID types.MobID
	slotID   uint32
	refMob   *resolver.Object
	refSlot  *resolver.Object
}

func (in *interpreter) parseSourceClip(sc *resolver.Object) error {
	ref, err := in.sourceReference(sc)
	if err != nil {
		return err
	}
	switch {
	case ref.mob.IsA(types.ClassCompositionMob):
		return in.parseCompositionClip(sc, ref)
	case ref.mob.IsA(types.ClassMasterMob):
		return in.parseMasterClip(sc, ref)
	default:
		return aaferr.Unsupported(sc.Path(), "SourceClip inside "+ref.mob.Class.Label())
	}
}

func (in *interpreter) sourceReference(sc *resolver.Object) (sourceRef, error) {
	var ref sourceRef
	var err error
	if ref.dataDef, err = in.file.DataDefinition(sc, types.PIDComponentDataDefinition); err != nil {
		return ref, need(err)
	}
	if ref.mob = sc.Ancestor(types.ClassMob); ref.mob == nil {
		return ref, aaferr.Wrap(aaferr.ErrReferenceResolution, "timeline", "source clip", sc.Path()+": no enclosing Mob", nil)
	}
	if _, err := ref.mob.MobID(types.PIDMobMobID); err != nil {
		return ref, need(err)
	}
	if ref.slotID, err = sc.Uint32(types.PIDSourceReferenceSourceMobSlotID); err != nil {
		return ref, need(err)
	}
	ref.sourceID, err = sc.MobID(types.PIDSourceReferenceSourceID)
	switch {
	case err == nil:
	case aaferr.IsAbsent(err):
		// A SourceReference without SourceID points into its own Mob.
		return ref, nil
	default:
		return ref, err
	}

	mob, ok := in.file.Mob(ref.sourceID)
	if !ok {
		return ref, aaferr.Wrap(aaferr.ErrReferenceResolution, "timeline", "source clip",
			fmt.Sprintf("%s: no mob %s", sc.Path(), ref.sourceID), nil)
	}
	ref.refMob = mob
	slot, err := mobSlot(mob, ref.slotID)
	if err != nil {
		return ref, err
	}
	ref.refSlot = slot
	return ref, nil
}

// mobSlot returns the slot of mob whose SlotID is id.
func mobSlot(mob *resolver.Object, id uint32) (*resolver.Object, error) {
	slots, err := mob.Collection(types.PIDMobSlots)
	if err != nil {
		return nil, need(err)
	}
	for _, slot := range slots {
		if n, err := slot.Uint32(types.PIDMobSlotSlotID); err == nil && n == id {
			return slot, nil
		}
	}
	return nil, aaferr.Wrap(aaferr.ErrReferenceResolution, "timeline", "mob slot",
		fmt.Sprintf("%s: no slot %d", mob.Path(), id), nil)
}

func (in *interpreter) parseCompositionClip(sc *resolver.Object, ref sourceRef) error {
	length, err := sc.Int64(types.PIDComponentLength)
	if err != nil {
		return need(err)
	}
	start, err := sc.Int64(types.PIDSourceClipStartTime)
	if err != nil {
		return need(err)
	}
	if ref.refMob == nil {
		return aaferr.Unsupported(sc.Path(), "SourceClip without SourceID in a CompositionMob")
	}

	if ref.refMob.IsA(types.ClassCompositionMob) {
		return in.parseDerivation(sc, ref, length, start)
	}
	if !ref.refMob.IsA(types.ClassMasterMob) {
		return aaferr.Unsupported(sc.Path(), "SourceClip to "+ref.refMob.Class.Label())
	}

	switch {
	case types.IsSound(ref.dataDef):
		return in.parseAudioClip(sc, ref, length, start)
	case types.IsPicture(ref.dataDef):
		return in.parseVideoClip(sc, ref, length, start)
	default:
		return aaferr.Unsupported(sc.Path(), "SourceClip data definition "+types.DefinitionName(ref.dataDef))
	}
}

// parseDerivation follows a SourceClip into another CompositionMob. The
// clip is created at the end of the chain; the outermost SourceClip then
// sets its length, offset and levels.
func (in *interpreter) parseDerivation(sc *resolver.Object, ref sourceRef, length, start int64) error {
	saved := in.ctx
	in.ctx = walkContext{track: saved.track, videoTrack: saved.videoTrack, derivation: true}
	err := in.parseMobSlot(ref.refSlot)
	clip, videoClip := in.ctx.clip, in.ctx.videoClip
	in.ctx = saved
	if err != nil {
		in.report(ref.refSlot, "derivation chain incomplete", err)
	}

	switch {
	case types.IsSound(ref.dataDef):
		in.ctx.clip = clip
		if clip == nil || in.ctx.derivation {
			return nil
		}
		clip.Length = length
		clip.EssenceOffset = start
		in.ctx.takeClipLevels(clip)
		if in.ctx.track != nil {
			in.ctx.track.Position += length
		}
	case types.IsPicture(ref.dataDef):
		in.ctx.videoClip = videoClip
		if videoClip == nil || in.ctx.derivation {
			return nil
		}
		videoClip.Length = length
		videoClip.EssenceOffset = start
		if in.ctx.videoTrack != nil {
			in.ctx.videoTrack.Position += length
		}
	}
	return nil
}

func (in *interpreter) parseAudioClip(sc *resolver.Object, ref sourceRef, length, start int64) error {
	track := in.ctx.track
	if track == nil {
		return noTrack(sc)
	}

	if in.ctx.combined && in.ctx.combinedChannel > 0 {
		clip := in.ctx.clip
		if clip == nil {
			return aaferr.Wrap(aaferr.ErrReferenceResolution, "timeline", "combined clip", sc.Path()+": first channel missing", nil)
		}
		if clip.Length != length {
			return aaferr.Wrap(aaferr.ErrMalformedStream, "timeline", "combined clip",
				fmt.Sprintf("%s: channel length %d, first channel %d", sc.Path(), length, clip.Length), nil)
		}
		if clip.MasterMobID != ref.sourceID {
			return aaferr.Wrap(aaferr.ErrMalformedStream, "timeline", "combined clip",
				sc.Path()+": channel refers to another master mob", nil)
		}
		return in.parseMasterSlot(ref, clip, nil)
	}

	name, _ := ref.refMob.Text(types.PIDMobName)
	clip := &Clip{
		Position:      track.Position,
		Length:        length,
		EssenceOffset: start,
		MasterMobID:   ref.sourceID,
		Name:          name,
	}
	in.ctx.takeClipLevels(clip)
	track.Items = append(track.Items, Item{Clip: clip})
	in.ctx.clip = clip
	if !in.ctx.derivation {
		track.Position += length
	}

	if !in.ctx.combined {
		if track.Format != FormatUnset && track.Format != FormatMono {
			in.report(sc, "mono clip on a multichannel track", aaferr.Wrap(aaferr.ErrUnsupportedConstruct, "timeline", "source clip",
				fmt.Sprintf("%s: mono clip on a %s track", sc.Path(), track.Format), nil))
		} else {
			track.Format = FormatMono
		}
	}
	return in.parseMasterSlot(ref, clip, nil)
}

func (in *interpreter) parseVideoClip(sc *resolver.Object, ref sourceRef, length, start int64) error {
	track := in.ctx.videoTrack
	if track == nil {
		return noTrack(sc)
	}
	if len(track.Items) > 0 {
		return aaferr.Unsupported(sc.Path(), "more than one video clip")
	}
	name, _ := ref.refMob.Text(types.PIDMobName)
	clip := &Clip{
		Position:      track.Position,
		Length:        length,
		EssenceOffset: start,
		MasterMobID:   ref.sourceID,
		Name:          name,
	}
	track.Items = append(track.Items, Item{Clip: clip})
	in.ctx.videoClip = clip
	if !in.ctx.derivation {
		track.Position += length
	}
	return in.parseMasterSlot(ref, nil, clip)
}

// parseMasterSlot walks the referenced MasterMob slot with clip as the clip
// in progress. Errors are reported; the clip is kept without essence.
func (in *interpreter) parseMasterSlot(ref sourceRef, clip, videoClip *Clip) error {
	saved := in.ctx
	in.ctx = walkContext{
		track:      saved.track,
		videoTrack: saved.videoTrack,
		clip:       clip,
		videoClip:  videoClip,
		derivation: saved.derivation,
	}
	if err := in.parseMobSlot(ref.refSlot); err != nil {
		in.report(ref.refSlot, "clip essence unresolved", err)
	}
	in.ctx = saved
	return nil
}

// parseMasterClip resolves the SourceMob behind a MasterMob slot into an
// Essence and links it to the clip in progress.
func (in *interpreter) parseMasterClip(sc *resolver.Object, ref sourceRef) error {
	masterID, _ := ref.mob.MobID(types.PIDMobMobID)
	slot := sc.Ancestor(types.ClassMobSlot)
	if slot == nil {
		return aaferr.Wrap(aaferr.ErrReferenceResolution, "timeline", "master clip", sc.Path()+": no enclosing MobSlot", nil)
	}
	masterSlotID, err := slot.Uint32(types.PIDMobSlotSlotID)
	if err != nil {
		return need(err)
	}
	if ref.refMob == nil {
		return aaferr.Unsupported(sc.Path(), "MasterMob SourceClip without SourceID")
	}

	var (
		kind  Kind
		clip  *Clip
		index map[essenceKey]int
	)
	switch {
	case types.IsSound(ref.dataDef):
		kind, clip, index = KindAudio, in.ctx.clip, in.audioByKey
	case types.IsPicture(ref.dataDef):
		kind, clip, index = KindVideo, in.ctx.videoClip, in.videoByKey
	default:
		return aaferr.Unsupported(sc.Path(), "MasterMob data definition "+types.DefinitionName(ref.dataDef))
	}
	if clip == nil {
		return aaferr.Wrap(aaferr.ErrReferenceResolution, "timeline", "master clip", sc.Path()+": no clip in progress", nil)
	}

	key := essenceKey{mob: ref.sourceID, slot: ref.slotID}
	if idx, ok := index[key]; ok {
		if !slices.Contains(clip.Essences, idx) {
			clip.Essences = append(clip.Essences, idx)
		}
		in.logger.Debug("essence already parsed",
			logging.String("path", sc.Path()),
			logging.Int("essence", idx),
		)
		return nil
	}

	if !ref.refMob.IsA(types.ClassSourceMob) {
		return aaferr.Unsupported(sc.Path(), "MasterMob SourceClip to "+ref.refMob.Class.Label())
	}

	name, _ := ref.mob.Text(types.PIDMobName)
	e := &Essence{
		Kind:            kind,
		Name:            name,
		MasterMobID:     masterID,
		MasterMobSlotID: masterSlotID,
		SourceMobID:     ref.sourceID,
		SourceMobSlotID: ref.slotID,
	}

	var idx int
	if kind == KindAudio {
		idx = len(in.model.AudioEssences)
		in.model.AudioEssences = append(in.model.AudioEssences, e)
		in.ctx.essence = e
		defer func() { in.ctx.essence = nil }()
	} else {
		idx = len(in.model.VideoEssences)
		in.model.VideoEssences = append(in.model.VideoEssences, e)
		in.ctx.videoEssence = e
		defer func() { in.ctx.videoEssence = nil }()
	}
	index[key] = idx
	clip.Essences = append(clip.Essences, idx)

	if err := in.parseSourceMob(ref.refMob, e); err != nil {
		in.report(ref.refMob, "source mob incomplete", err)
	}
	if err := in.parseMobSlot(ref.refSlot); err != nil {
		in.report(ref.refSlot, "source slot origin unknown", err)
	}
	if data, ok := in.file.EssenceDataFor(ref.sourceID); ok {
		if err := in.parseEssenceData(data, e); err != nil {
			in.report(data, "embedded essence unreadable", err)
		}
	}
	return nil
}

func (in *interpreter) parseSourceMob(mob *resolver.Object, e *Essence) error {
	in.trace(mob)
	if _, err := mob.MobID(types.PIDMobMobID); err != nil {
		return need(err)
	}
	if ts, err := mob.TimeStamp(types.PIDMobCreationTime); err == nil {
		e.OriginationDate = ts.DateString()
		e.OriginationTime = ts.ClockString()
	} else {
		in.report(mob, "creation time unreadable", need(err))
	}
	desc, err := mob.Strong(types.PIDSourceMobEssenceDescription)
	if err != nil {
		return need(err)
	}
	return in.parseDescriptor(desc, e)
}

// parseDescriptor copies the essence description into e. An unsupported
// descriptor leaves the essence in place with an unknown type.
func (in *interpreter) parseDescriptor(desc *resolver.Object, e *Essence) error {
	in.trace(desc)
	var err error
	switch {
	case desc.IsA(types.ClassAES3PCMDescriptor):
		err = aaferr.Unsupported(desc.Path(), "AES3PCMDescriptor")
	case desc.IsA(types.ClassPCMDescriptor):
		err = in.parsePCMDescriptor(desc, e)
	case desc.IsA(types.ClassWAVEDescriptor):
		e.Type = essence.TypeWAVE
		err = in.parseSummary(desc, types.PIDWAVEDescriptorSummary, e)
	case desc.IsA(types.ClassAIFCDescriptor):
		e.Type = essence.TypeAIFC
		err = in.parseSummary(desc, types.PIDAIFCDescriptorSummary, e)
	case desc.IsA(types.ClassSoundDescriptor):
		err = aaferr.Unsupported(desc.Path(), "compressed SoundDescriptor")
	case desc.IsA(types.ClassMultipleDescriptor):
		err = aaferr.Unsupported(desc.Path(), "MultipleDescriptor")
	case desc.IsA(types.ClassDigitalImageDescriptor):
		err = in.parseImageDescriptor(desc, e)
	default:
		err = aaferr.Unsupported(desc.Path(), desc.Class.Label())
	}
	if err != nil {
		in.report(desc, "essence descriptor ignored", err)
	}
	in.parseLocators(desc, e)
	return nil
}

func (in *interpreter) parsePCMDescriptor(desc *resolver.Object, e *Essence) error {
	e.Type = essence.TypePCM
	length, err := desc.Int64(types.PIDFileDescriptorLength)
	if err != nil {
		return need(err)
	}
	channels, err := desc.Uint32(types.PIDSoundDescriptorChannels)
	if err != nil {
		return need(err)
	}
	rate, err := desc.Rational(types.PIDFileDescriptorSampleRate)
	if err != nil {
		return need(err)
	}
	if rate.Denominator != 1 {
		return aaferr.Wrap(aaferr.ErrMalformedStream, "timeline", "pcm descriptor",
			fmt.Sprintf("%s: sample rate %s is not integral", desc.Path(), rate), nil)
	}
	bits, err := desc.Uint32(types.PIDSoundDescriptorQuantizationBits)
	if err != nil {
		return need(err)
	}
	if bits >= maxQuantizationBits {
		return aaferr.Wrap(aaferr.ErrMalformedStream, "timeline", "pcm descriptor",
			fmt.Sprintf("%s: quantization bits %d", desc.Path(), bits), nil)
	}
	e.Length = length
	e.Channels = int(channels)
	e.SampleRate = int(rate.Numerator)
	e.SampleSize = int(bits)
	return nil
}

// parseSummary keeps the WAVE or AIFC header copy; it is decoded once the
// walk is over, when the embedded stream is known too.
func (in *interpreter) parseSummary(desc *resolver.Object, pid uint16, e *Essence) error {
	v, err := desc.Value(pid)
	if err != nil {
		return need(err)
	}
	e.Summary = v.Data
	if length, err := desc.Int64(types.PIDFileDescriptorLength); err == nil {
		e.Length = length
	}
	return nil
}

func (in *interpreter) parseImageDescriptor(desc *resolver.Object, e *Essence) error {
	rate, err := desc.Rational(types.PIDFileDescriptorSampleRate)
	if err != nil {
		return need(err)
	}
	e.FrameRate = rate
	if length, err := desc.Int64(types.PIDFileDescriptorLength); err == nil {
		e.Length = length
	}
	if !desc.Has(types.PIDDigitalImageDescriptorStoredHeight) {
		in.warn(desc, "image descriptor has no stored height")
	}
	if !desc.Has(types.PIDDigitalImageDescriptorStoredWidth) {
		in.warn(desc, "image descriptor has no stored width")
	}
	return nil
}

// parseLocators takes the first NetworkLocator URL as the original path.
func (in *interpreter) parseLocators(desc *resolver.Object, e *Essence) {
	if !desc.Has(types.PIDEssenceDescriptorLocator) {
		return
	}
	locators, err := desc.Collection(types.PIDEssenceDescriptorLocator)
	if err != nil {
		in.report(desc, "locators unreadable", err)
		return
	}
	for _, loc := range locators {
		switch {
		case loc.IsA(types.ClassNetworkLocator):
			url, err := loc.Text(types.PIDNetworkLocatorURLString)
			if err != nil {
				in.report(loc, "locator skipped", need(err))
				continue
			}
			if e.OriginalPath == "" && url != "" {
				e.OriginalPath = url
			}
		case loc.IsA(types.ClassTextLocator):
			in.report(loc, "locator skipped", aaferr.Unsupported(loc.Path(), "TextLocator"))
		default:
			in.report(loc, "locator skipped", aaferr.Unsupported(loc.Path(), loc.Class.Label()))
		}
	}
}

// parseEssenceData attaches the embedded data stream to e.
func (in *interpreter) parseEssenceData(data *resolver.Object, e *Essence) error {
	v, err := data.Value(types.PIDEssenceDataData)
	if err != nil {
		return need(err)
	}
	name, err := v.StreamName()
	if err != nil {
		return err
	}
	node := data.Node()
	if node == nil {
		return aaferr.Wrap(aaferr.ErrReferenceResolution, "timeline", "essence data", data.Path()+": no storage", nil)
	}
	stream, ok := node.Child(name)
	if !ok {
		return aaferr.Wrap(aaferr.ErrReferenceResolution, "timeline", "essence data",
			fmt.Sprintf("%s: no stream %q", data.Path(), name), nil)
	}
	e.Node = stream
	e.Embedded = true
	return nil
}
