package timeline

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"aafkit/internal/aaf/aaferr"
	"aafkit/internal/aaf/resolver"
	"aafkit/internal/aaf/types"
	"aafkit/internal/essence"
	"aafkit/internal/testsupport"
)

func TestInterpretPlacesClipsAndFillers(t *testing.T) {
	dialog := pcmMedia(2, "Dialog", 1, sampleRate, 200000)
	fx := testsupport.NewFile()
	dialog.add(fx)
	fx.Mobs = append(fx.Mobs, composition("Reel 1",
		timecodeSlot(90000),
		audioSlot(1, sequence(
			clipTo(dialog.masterID, 1, 1000, 48000),
			filler(96000),
			clipTo(dialog.masterID, 1, 5000, 24000),
		)).Text(types.PIDMobSlotSlotName, "DIA 1").Uint32(types.PIDMobSlotPhysicalTrackNumber, 1),
	))

	m, _ := interpret(t, fx, Options{RunID: "run-1"})

	if m.Composition != "Reel 1" || m.RunID != "run-1" {
		t.Fatalf("unexpected model identity %q %q", m.Composition, m.RunID)
	}
	track := onlyTrack(t, m)
	if track.Name != "DIA 1" || track.Number != 1 || track.Format != FormatMono {
		t.Fatalf("unexpected track %+v", track)
	}
	if track.Position != 168000 {
		t.Fatalf("track cursor = %d, want 168000", track.Position)
	}
	clips := track.Clips()
	if len(clips) != 2 {
		t.Fatalf("expected 2 clips, got %d", len(clips))
	}
	if clips[0].Position != 0 || clips[0].Length != 48000 || clips[0].EssenceOffset != 1000 {
		t.Fatalf("unexpected first clip %+v", clips[0])
	}
	if clips[1].Position != 144000 || clips[1].EssenceOffset != 5000 {
		t.Fatalf("unexpected second clip %+v", clips[1])
	}

	if len(m.AudioEssences) != 1 {
		t.Fatalf("expected the essence to be shared, got %d", len(m.AudioEssences))
	}
	for i, c := range clips {
		if !reflect.DeepEqual(c.Essences, []int{0}) {
			t.Fatalf("clip %d essences = %v", i, c.Essences)
		}
	}
	e := m.AudioEssences[0]
	if !e.Embedded || e.Type != essence.TypePCM || e.UniqueName != "Dialog" {
		t.Fatalf("unexpected essence %+v", e)
	}
	if e.MasterMobID != dialog.masterID || e.SourceMobID != dialog.sourceID || e.SourceMobSlotID != 1 {
		t.Fatalf("unexpected essence ids %+v", e)
	}
	if e.OriginationDate != "2023:11:02" || e.OriginationTime != "08:04:09" {
		t.Fatalf("unexpected origination %s %s", e.OriginationDate, e.OriginationTime)
	}
	if m.SampleRate != sampleRate || m.SampleSize != 16 {
		t.Fatalf("global format = %d/%d", m.SampleRate, m.SampleSize)
	}

	if m.Timecode.Start != 90000 || m.Timecode.FPS != 25 {
		t.Fatalf("unexpected timecode %+v", m.Timecode)
	}
	if m.AudioLength != 168000 || m.Length != 87 || m.Timecode.End != 90087 {
		t.Fatalf("lengths: audio %d composition %d end %d", m.AudioLength, m.Length, m.Timecode.End)
	}
}

func TestInterpretFillerPlacement(t *testing.T) {
	tests := []struct {
		name       string
		components func(master types.MobID) []*testsupport.Obj
		clipPos    int64
		clipLen    int64
		cursor     int64
	}{
		{
			name: "leading filler",
			components: func(master types.MobID) []*testsupport.Obj {
				return []*testsupport.Obj{filler(100), clipTo(master, 1, 0, 200)}
			},
			clipPos: 100, clipLen: 200, cursor: 300,
		},
		{
			name: "filler on both sides",
			components: func(master types.MobID) []*testsupport.Obj {
				return []*testsupport.Obj{filler(100), clipTo(master, 1, 0, 200), filler(50)}
			},
			clipPos: 100, clipLen: 200, cursor: 350,
		},
		{
			name: "trailing filler",
			components: func(master types.MobID) []*testsupport.Obj {
				return []*testsupport.Obj{clipTo(master, 1, 0, 200), filler(50)}
			},
			clipPos: 0, clipLen: 200, cursor: 250,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dialog := pcmMedia(2, "Dialog", 1, sampleRate, 48000)
			fx := testsupport.NewFile()
			dialog.add(fx)
			fx.Mobs = append(fx.Mobs, composition("Gaps", audioSlot(1, sequence(tt.components(dialog.masterID)...))))

			m, _ := interpret(t, fx, Options{})
			track := onlyTrack(t, m)
			clips := track.Clips()
			if len(clips) != 1 {
				t.Fatalf("expected 1 clip, got %d", len(clips))
			}
			if clips[0].Position != tt.clipPos || clips[0].Length != tt.clipLen {
				t.Fatalf("clip at %d+%d, want %d+%d", clips[0].Position, clips[0].Length, tt.clipPos, tt.clipLen)
			}
			if track.Position != tt.cursor {
				t.Fatalf("track cursor = %d, want %d", track.Position, tt.cursor)
			}
		})
	}
}

func TestInterpretChannelCombiner(t *testing.T) {
	surround := pcmMedia(3, "Music", 6, sampleRate, 48000)
	var inputs []*testsupport.Obj
	for ch := uint32(1); ch <= 6; ch++ {
		inputs = append(inputs, clipTo(surround.masterID, ch, 0, 4800))
	}
	fx := testsupport.NewFile()
	surround.add(fx)
	fx.Mobs = append(fx.Mobs, composition("Mix",
		audioSlot(1, sequence(operation(types.OperationDefAudioChannelCombiner, inputs...))),
	))

	m, _ := interpret(t, fx, Options{})

	track := onlyTrack(t, m)
	if track.Format != Format51 {
		t.Fatalf("track format = %s", track.Format)
	}
	clips := track.Clips()
	if len(clips) != 1 || track.Position != 4800 {
		t.Fatalf("expected one 4800 long clip, got %d clips, cursor %d", len(clips), track.Position)
	}
	if len(m.AudioEssences) != 6 || !reflect.DeepEqual(clips[0].Essences, []int{0, 1, 2, 3, 4, 5}) {
		t.Fatalf("clip essences = %v of %d", clips[0].Essences, len(m.AudioEssences))
	}
	names := map[string]bool{}
	for _, e := range m.AudioEssences {
		names[e.UniqueName] = true
	}
	if len(names) != 6 || !names["Music"] || !names["Music_5"] {
		t.Fatalf("unique names %v", names)
	}
}

func TestInterpretRejectsCombinerOnMonoTrack(t *testing.T) {
	stereo := pcmMedia(4, "Stereo", 2, sampleRate, 48000)
	fx := testsupport.NewFile()
	stereo.add(fx)
	fx.Mobs = append(fx.Mobs, composition("Mix",
		audioSlot(1, sequence(
			clipTo(stereo.masterID, 1, 0, 100),
			operation(types.OperationDefAudioChannelCombiner,
				clipTo(stereo.masterID, 1, 0, 100),
				clipTo(stereo.masterID, 2, 0, 100),
			),
		)),
	))

	m, f := interpret(t, fx, Options{})

	track := onlyTrack(t, m)
	if track.Format != FormatMono {
		t.Fatalf("track format = %s, want mono", track.Format)
	}
	if f.Diagnostics().Counts()[aaferr.KindUnsupported] == 0 {
		t.Fatalf("expected an unsupported diagnostic, got %+v", f.Diagnostics().Report())
	}
}

func TestInterpretClassifiesFades(t *testing.T) {
	dialog := pcmMedia(2, "Dialog", 1, sampleRate, 48000)
	fx := testsupport.NewFile()
	dialog.add(fx)
	fx.Mobs = append(fx.Mobs, composition("Fades",
		audioSlot(1, sequence(
			filler(10),
			transition(10),
			clipTo(dialog.masterID, 1, 0, 100),
			transition(20).Int64(types.PIDTransitionCutPoint, 4),
			filler(50),
		)),
	))

	m, f := interpret(t, fx, Options{})

	transitions := onlyTrack(t, m).Transitions()
	if len(transitions) != 2 {
		t.Fatalf("expected 2 transitions, got %d", len(transitions))
	}
	in, out := transitions[0], transitions[1]
	if in.Fade != FadeIn || in.Position != 0 || in.Length != 10 || in.CutPoint != 5 {
		t.Fatalf("unexpected fade in %+v", in)
	}
	if out.Fade != FadeOut || out.Position != 80 || out.CutPoint != 4 {
		t.Fatalf("unexpected fade out %+v", out)
	}
	if out.Points[0].Value.Float64() != 1 || out.Points[1].Value.Float64() != 0 {
		t.Fatalf("fade out curve %+v", out.Points)
	}
	if in.Interpolation != InterpolationLinear {
		t.Fatalf("interpolation = %s", in.Interpolation)
	}
	if onlyTrack(t, m).Position != 130 {
		t.Fatalf("cursor = %d, want 130", onlyTrack(t, m).Position)
	}

	warned := false
	for _, d := range f.Diagnostics().Report() {
		if d.Kind == aaferr.KindOther && d.Message == "transition cut point missing, using the midpoint" {
			warned = true
		}
	}
	if !warned {
		t.Fatal("expected a cut point fallback warning")
	}
}

func TestClassifyFade(t *testing.T) {
	tests := []struct {
		name       string
		prev, next bool
		prevFiller bool
		nextFiller bool
		want       FadeKind
		ok         bool
	}{
		{name: "filler before", prev: true, next: true, prevFiller: true, want: FadeIn, ok: true},
		{name: "filler after", prev: true, next: true, nextFiller: true, want: FadeOut, ok: true},
		{name: "between clips", prev: true, next: true, want: CrossFade, ok: true},
		{name: "first in sequence", next: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev, next := neighbours(t, tt.prev, tt.prevFiller, tt.next, tt.nextFiller)
			got, ok := classifyFade(prev, next)
			if got != tt.want || ok != tt.ok {
				t.Fatalf("classifyFade = %v, %v; want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestInterpretDropsOnlyBrokenComponent(t *testing.T) {
	dialog := pcmMedia(2, "Dialog", 1, sampleRate, 48000)
	broken := sound(types.ClassSourceClip).
		Int64(types.PIDSourceClipStartTime, 0).
		MobID(types.PIDSourceReferenceSourceID, dialog.masterID).
		Uint32(types.PIDSourceReferenceSourceMobSlotID, 1)
	fx := testsupport.NewFile()
	dialog.add(fx)
	fx.Mobs = append(fx.Mobs, composition("Broken",
		audioSlot(1, sequence(broken, clipTo(dialog.masterID, 1, 0, 300))),
	))

	m, f := interpret(t, fx, Options{})

	clips := onlyTrack(t, m).Clips()
	if len(clips) != 1 || clips[0].Position != 0 || clips[0].Length != 300 {
		t.Fatalf("expected the valid clip at 0, got %+v", clips)
	}
	if f.Diagnostics().Counts()[aaferr.KindMissing] == 0 {
		t.Fatalf("expected a missing property diagnostic, got %+v", f.Diagnostics().Report())
	}
}

func TestInterpretIsRepeatable(t *testing.T) {
	dialog := pcmMedia(2, "Dialog", 1, sampleRate, 48000)
	fx := testsupport.NewFile()
	dialog.add(fx)
	fx.Mobs = append(fx.Mobs, composition("Twice",
		timecodeSlot(0),
		audioSlot(1, sequence(filler(10), clipTo(dialog.masterID, 1, 0, 300))),
	))
	f := open(t, fx)

	first, err := Interpret(context.Background(), f, Options{})
	if err != nil {
		t.Fatalf("first Interpret: %v", err)
	}
	if first.RunID != "" {
		t.Fatalf("expected no run id without one in the options, got %q", first.RunID)
	}
	second, err := Interpret(context.Background(), f, Options{})
	if err != nil {
		t.Fatalf("second Interpret: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("models differ:\n%+v\n%+v", first, second)
	}
}

func TestInterpretGainScope(t *testing.T) {
	dialog := pcmMedia(2, "Dialog", 1, sampleRate, 48000)
	trackGain := operation(types.OperationDefMonoAudioGain, sequence(clipTo(dialog.masterID, 1, 0, 100))).
		Vector(types.PIDOperationGroupParameters, constant(types.ParameterDefAmplitude, 1, 2))
	clipGain := operation(types.OperationDefMonoAudioGain, clipTo(dialog.masterID, 1, 0, 100)).
		Vector(types.PIDOperationGroupParameters, constant(types.ParameterDefAmplitude, 1, 4))

	fx := testsupport.NewFile()
	dialog.add(fx)
	fx.Mobs = append(fx.Mobs, composition("Gain",
		audioSlot(1, trackGain).Uint32(types.PIDMobSlotPhysicalTrackNumber, 1),
		audioSlot(2, sequence(clipGain, clipTo(dialog.masterID, 1, 0, 100))).Uint32(types.PIDMobSlotPhysicalTrackNumber, 2),
	))

	m, _ := interpret(t, fx, Options{})

	if len(m.AudioTracks) != 2 {
		t.Fatalf("expected 2 tracks, got %d", len(m.AudioTracks))
	}
	first, second := m.AudioTracks[0], m.AudioTracks[1]
	if first.Gain == nil || first.Gain.Value() != 0.5 || first.Gain.Kind != LevelConstant {
		t.Fatalf("track gain = %+v", first.Gain)
	}
	if c := first.Clips()[0]; c.Gain != nil {
		t.Fatalf("track-scoped gain leaked onto the clip: %+v", c.Gain)
	}
	if second.Gain != nil {
		t.Fatalf("clip-scoped gain set on the track: %+v", second.Gain)
	}
	clips := second.Clips()
	if len(clips) != 2 || clips[0].Gain == nil || clips[0].Gain.Value() != 0.25 {
		t.Fatalf("clip gain missing: %+v", clips)
	}
	if clips[1].Gain != nil {
		t.Fatalf("clip gain must not carry over: %+v", clips[1].Gain)
	}
}

func TestInterpretGainAutomationAndPan(t *testing.T) {
	dialog := pcmMedia(2, "Dialog", 1, sampleRate, 48000)
	automation := operation(types.OperationDefMonoAudioGain, clipTo(dialog.masterID, 1, 0, 100)).
		Vector(types.PIDOperationGroupParameters, varying(types.ParameterDefAmplitude, types.InterpolationDefLog,
			point(0, 1, 1, 1), point(1, 2, 1, 2), point(1, 1, 1, 1)))
	pan := operation(types.OperationDefMonoAudioPan, sequence(automation)).
		Vector(types.PIDOperationGroupParameters, constant(types.ParameterDefPan, 1, 2))

	fx := testsupport.NewFile()
	dialog.add(fx)
	fx.Mobs = append(fx.Mobs, composition("Automation", audioSlot(1, pan)))

	m, _ := interpret(t, fx, Options{})

	track := onlyTrack(t, m)
	if track.Pan == nil || track.Pan.Value() != 0.5 {
		t.Fatalf("pan = %+v", track.Pan)
	}
	c := track.Clips()[0]
	if c.Automation == nil || c.Automation.Kind != LevelVariable || len(c.Automation.Points) != 3 {
		t.Fatalf("automation = %+v", c.Automation)
	}
	if c.Automation.Interpolation != InterpolationLog {
		t.Fatalf("interpolation = %s", c.Automation.Interpolation)
	}
}

func TestInterpretAvidFadeCurve(t *testing.T) {
	build := func(value func(*testsupport.Obj) *testsupport.Obj) *testsupport.FileFixture {
		dialog := pcmMedia(2, "Dialog", 1, sampleRate, 48000)
		dissolve := operation(types.OperationDefMonoAudioDissolve).
			Vector(types.PIDOperationGroupParameters, varying(types.ParameterDefLevel, types.InterpolationDefLinear,
				point(0, 1, 0, 1), point(1, 1, 1, 1))).
			Vector(types.PIDComponentAttributes, value(testsupport.NewObject(types.ClassTaggedValue).
				Text(types.PIDTaggedValueName, "_FADE_CURVE")))
		fx := testsupport.NewFile()
		fx.ProductName = "Media Composer"
		dialog.add(fx)
		fx.Mobs = append(fx.Mobs, composition("Avid",
			audioSlot(1, sequence(
				filler(10),
				transition(10).Int64(types.PIDTransitionCutPoint, 5).Strong(types.PIDTransitionOperationGroup, dissolve),
				clipTo(dialog.masterID, 1, 0, 100),
			)),
		))
		return fx
	}

	logCurve := func(o *testsupport.Obj) *testsupport.Obj { return o.IndirectInt32(types.PIDTaggedValueValue, 2) }
	// "\x02" encodes to the same four payload bytes as Int32 2.
	textCurve := func(o *testsupport.Obj) *testsupport.Obj { return o.IndirectText(types.PIDTaggedValueValue, "\x02") }

	tests := []struct {
		name  string
		value func(*testsupport.Obj) *testsupport.Obj
		opts  Options
		want  Interpolation
	}{
		{"override", logCurve, Options{}, InterpolationLog},
		{"override ignored", logCurve, Options{IgnoreAvidFadeCurve: true}, InterpolationLinear},
		{"string payload", textCurve, Options{}, InterpolationLinear},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := interpret(t, build(tt.value), tt.opts)
			if got := onlyTrack(t, m).Transitions()[0].Interpolation; got != tt.want {
				t.Fatalf("interpolation = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestInterpretWithoutComposition(t *testing.T) {
	fx := testsupport.NewFile()
	pcmMedia(2, "Dialog", 1, sampleRate, 48000).add(fx)
	f := open(t, fx)

	_, err := Interpret(context.Background(), f, Options{})
	if !errors.Is(err, ErrNoComposition) || !errors.Is(err, aaferr.ErrMissingRequiredProperty) {
		t.Fatalf("expected ErrNoComposition, got %v", err)
	}
}

func TestInterpretHonoursCancellation(t *testing.T) {
	fx := testsupport.NewFile()
	fx.Mobs = append(fx.Mobs, composition("Cancelled"))
	f := open(t, fx)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Interpret(ctx, f, Options{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestInterpretReadsEmbeddedWave(t *testing.T) {
	music := waveMedia(5, "Music", 1000)
	dialog := pcmMedia(2, "Dialog", 1, 44100, 1000)
	fx := testsupport.NewFile()
	music.add(fx)
	dialog.add(fx)
	fx.Mobs = append(fx.Mobs, composition("Formats",
		audioSlot(1, sequence(clipTo(music.masterID, 1, 0, 10), clipTo(dialog.masterID, 1, 0, 10))),
	))

	m, _ := interpret(t, fx, Options{})

	var wave *Essence
	for _, e := range m.AudioEssences {
		if e.Name == "Music" {
			wave = e
		}
	}
	if wave == nil || wave.Type != essence.TypeWAVE {
		t.Fatalf("wave essence missing: %+v", m.AudioEssences)
	}
	if wave.Channels != 2 || wave.SampleSize != 24 || wave.Length != 1000 || wave.DataOffset == 0 {
		t.Fatalf("unexpected wave format %+v", wave)
	}
	if m.SampleRate != -1 || m.SampleSize != -1 {
		t.Fatalf("mismatched essences must give -1, got %d/%d", m.SampleRate, m.SampleSize)
	}
}

func TestInterpretVideoTrack(t *testing.T) {
	videoID, videoSource := testsupport.TestMobID(9), testsupport.TestMobID(109)
	picture := func(o *testsupport.Obj) *testsupport.Obj { return dataDef(o, types.DataDefPicture) }
	videoClip := func(id types.MobID, slot uint32) *testsupport.Obj {
		return picture(testsupport.NewObject(types.ClassSourceClip)).
			Int64(types.PIDComponentLength, 250).
			Int64(types.PIDSourceClipStartTime, 0).
			MobID(types.PIDSourceReferenceSourceID, id).
			Uint32(types.PIDSourceReferenceSourceMobSlotID, slot)
	}
	fx := testsupport.NewFile()
	fx.Mobs = append(fx.Mobs,
		testsupport.NewObject(types.ClassMasterMob).
			MobID(types.PIDMobMobID, videoID).
			Text(types.PIDMobName, "Picture").
			Vector(types.PIDMobSlots, timelineSlot(1, 25, 1, videoClip(videoSource, 1))),
		testsupport.NewObject(types.ClassSourceMob).
			MobID(types.PIDMobMobID, videoSource).
			TimeStamp(types.PIDMobCreationTime, types.TimeStamp{Year: 2024, Month: 1, Day: 1}).
			Strong(types.PIDSourceMobEssenceDescription, testsupport.NewObject(types.ClassCDCIDescriptor).
				Rational(types.PIDFileDescriptorSampleRate, 25, 1).
				Uint32(types.PIDDigitalImageDescriptorStoredHeight, 1080).
				Uint32(types.PIDDigitalImageDescriptorStoredWidth, 1920).
				Vector(types.PIDEssenceDescriptorLocator, testsupport.NewObject(types.ClassNetworkLocator).
					Text(types.PIDNetworkLocatorURLString, "file:///nowhere/Picture.mxf"))).
			Vector(types.PIDMobSlots, timelineSlot(1, 25, 1, picture(testsupport.NewObject(types.ClassSourceClip)).
				Int64(types.PIDComponentLength, 250).
				Uint32(types.PIDSourceReferenceSourceMobSlotID, 0))),
		composition("Picture", timecodeSlot(0), timelineSlot(2, 25, 1, picture(testsupport.NewObject(types.ClassSequence)).
			Vector(types.PIDSequenceComponents, videoClip(videoID, 1)))),
	)

	m, _ := interpret(t, fx, Options{})

	if len(m.VideoTracks) != 1 || len(m.VideoEssences) != 1 {
		t.Fatalf("expected one video track and essence, got %d/%d", len(m.VideoTracks), len(m.VideoEssences))
	}
	e := m.VideoEssences[0]
	if e.FrameRate != (types.Rational{Numerator: 25, Denominator: 1}) || e.OriginalPath != "file:///nowhere/Picture.mxf" {
		t.Fatalf("unexpected video essence %+v", e)
	}
	if e.Embedded || e.UsablePath != "" {
		t.Fatalf("video essence must stay external and unlocated: %+v", e)
	}
	if m.VideoLength != 250 || m.Length != 250 {
		t.Fatalf("video length %d, composition %d", m.VideoLength, m.Length)
	}
}

func neighbours(t *testing.T, prev, prevFiller, next, nextFiller bool) (p, n *resolver.Object) {
	t.Helper()
	components := []*testsupport.Obj{}
	kind := func(isFiller bool) *testsupport.Obj {
		if isFiller {
			return filler(10)
		}
		return sound(types.ClassSourceClip).Int64(types.PIDComponentLength, 10)
	}
	if prev {
		components = append(components, kind(prevFiller))
	}
	components = append(components, transition(4))
	if next {
		components = append(components, kind(nextFiller))
	}
	fx := testsupport.NewFile()
	fx.Mobs = append(fx.Mobs, composition("Neighbours", audioSlot(1, sequence(components...))))
	f := open(t, fx)
	mob, ok := f.Mob(testsupport.TestMobID(1))
	if !ok {
		t.Fatal("composition not found")
	}
	slots, _ := mob.Collection(types.PIDMobSlots)
	seq, err := slots[0].Strong(types.PIDMobSlotSegment)
	if err != nil {
		t.Fatalf("segment: %v", err)
	}
	members, _ := seq.Collection(types.PIDSequenceComponents)
	for _, c := range members {
		if c.IsA(types.ClassTransition) {
			return c.Prev(), c.Next()
		}
	}
	t.Fatal("transition not found")
	return nil, nil
}

func TestInterpretReadsUserComments(t *testing.T) {
	comment := func(name, text string) *testsupport.Obj {
		return testsupport.NewObject(types.ClassTaggedValue).
			Text(types.PIDTaggedValueName, name).
			IndirectText(types.PIDTaggedValueValue, text)
	}
	broken := testsupport.NewObject(types.ClassTaggedValue).Text(types.PIDTaggedValueName, "Orphan")

	fx := testsupport.NewFile()
	fx.Mobs = append(fx.Mobs, composition("Reel 2").
		Vector(types.PIDMobUserComments, comment("Scene", "42A"), broken, comment("Mixer", "Ada")))
	m, _ := interpret(t, fx, Options{})

	want := []Comment{{Name: "Scene", Text: "42A"}, {Name: "Mixer", Text: "Ada"}}
	if len(m.Comments) != len(want) {
		t.Fatalf("expected %d comments, got %+v", len(want), m.Comments)
	}
	for i, c := range m.Comments {
		if c != want[i] {
			t.Errorf("comment %d: got %+v want %+v", i, c, want[i])
		}
	}
}
