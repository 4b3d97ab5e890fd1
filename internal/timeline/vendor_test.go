package timeline

import (
	"testing"

	"aafkit/internal/aaf/types"
	"aafkit/internal/logging"
	"aafkit/internal/testsupport"
)

func clipItem(name string, position, length, offset int64) Item {
	return Item{Clip: &Clip{Name: name, Position: position, Length: length, EssenceOffset: offset}}
}

func TestRemoveSampleAccurateEdits(t *testing.T) {
	track := &Track{Number: 1, Items: []Item{
		clipItem("Dialog", 0, 100, 0),
		clipItem("Sample Accurate Edit", 100, 7, 0),
		clipItem("Music", 200, 50, 10),
		clipItem("sample accurate edit 2", 250, 3, 0),
		clipItem("sample accurate edit 3", 400, 5, 0),
		clipItem("Ambience", 405, 20, 2),
	}}
	in := &interpreter{logger: logging.NewNop()}

	in.removeSampleAccurateEdits(track)

	clips := track.Clips()
	if len(clips) != 3 {
		t.Fatalf("expected 3 clips left, got %d", len(clips))
	}
	if clips[0].Length != 107 {
		t.Fatalf("padded clip length = %d, want 107", clips[0].Length)
	}
	if clips[1].Length != 53 {
		t.Fatalf("trailing pad not merged: %+v", clips[1])
	}
	amb := clips[2]
	if amb.Position != 400 || amb.Length != 25 || amb.EssenceOffset != 0 {
		t.Fatalf("leading pad not merged: %+v", amb)
	}
}

func TestRemoveSampleAccurateEditsKeepsIsolatedPad(t *testing.T) {
	track := &Track{Items: []Item{
		clipItem("Dialog", 0, 100, 0),
		clipItem("sample accurate edit", 150, 4, 0),
	}}
	in := &interpreter{logger: logging.NewNop()}

	in.removeSampleAccurateEdits(track)

	if len(track.Items) != 2 {
		t.Fatalf("isolated pad must stay, got %d items", len(track.Items))
	}
}

func TestReplaceClipFades(t *testing.T) {
	track := &Track{Items: []Item{
		clipItem("fade in", 0, 10, 0),
		clipItem("Dialog", 10, 100, 50),
		clipItem("Fade 2", 110, 20, 0),
		clipItem("Music", 130, 100, 5),
		clipItem("fade out", 230, 30, 0),
		clipItem("Fade lonely", 500, 30, 0),
	}}
	in := &interpreter{logger: logging.NewNop()}

	in.replaceClipFades(track)

	transitions := track.Transitions()
	if len(transitions) != 3 {
		t.Fatalf("expected 3 transitions, got %d", len(transitions))
	}
	want := []struct {
		fade     FadeKind
		position int64
		cut      int64
	}{
		{FadeIn, 0, 5},
		{CrossFade, 110, 10},
		{FadeOut, 230, 15},
	}
	for i, w := range want {
		tr := transitions[i]
		if tr.Fade != w.fade || tr.Position != w.position || tr.CutPoint != w.cut {
			t.Fatalf("transition %d = %+v, want %+v", i, tr, w)
		}
	}
	if transitions[2].Points[0].Value.Float64() != 1 {
		t.Fatalf("fade out must start at unity: %+v", transitions[2].Points)
	}

	clips := track.Clips()
	if len(clips) != 3 || clips[2].Name != "Fade lonely" {
		t.Fatalf("unexpected clips left %+v", clips)
	}
	dialog, music := clips[0], clips[1]
	if dialog.Position != 0 || dialog.Length != 130 || dialog.EssenceOffset != 40 {
		t.Fatalf("dialog not stretched: %+v", dialog)
	}
	if music.Position != 110 || music.Length != 150 || music.EssenceOffset != 0 {
		t.Fatalf("music not stretched: %+v", music)
	}
}

func TestProToolsPassesFollowOptions(t *testing.T) {
	dialog := pcmMedia(2, "Dialog", 1, sampleRate, 48000)
	pad := pcmMedia(3, "Sample Accurate Edit", 1, sampleRate, 48000)
	build := func() *testsupport.FileFixture {
		fx := testsupport.NewFile()
		fx.ProductName = "Pro Tools"
		dialog.add(fx)
		pad.add(fx)
		fx.Mobs = append(fx.Mobs, composition("Session",
			audioSlot(1, sequence(
				clipTo(dialog.masterID, 1, 0, 100),
				clipTo(pad.masterID, 1, 0, 3),
			)),
		))
		return fx
	}

	m, _ := interpret(t, build(), Options{})
	if n := len(onlyTrack(t, m).Clips()); n != 2 {
		t.Fatalf("pass disabled: expected 2 clips, got %d", n)
	}

	m, _ = interpret(t, build(), Options{ProToolsRemoveSampleAccurateEdit: true})
	clips := onlyTrack(t, m).Clips()
	if len(clips) != 1 || clips[0].Length != 103 {
		t.Fatalf("pass enabled: unexpected clips %+v", clips)
	}
}

func TestResolveDisabledClip(t *testing.T) {
	build := func() *testsupport.FileFixture {
		dialog := pcmMedia(2, "Dialog", 1, sampleRate, 48000)
		selector := sound(types.ClassSelector).
			Int64(types.PIDComponentLength, 200).
			Strong(types.PIDSelectorSelected, filler(200)).
			Vector(types.PIDSelectorAlternates, clipTo(dialog.masterID, 1, 0, 200))
		fx := testsupport.NewFile()
		fx.ProductName = "DaVinci Resolve"
		dialog.add(fx)
		fx.Mobs = append(fx.Mobs, composition("Timeline 1",
			audioSlot(1, sequence(selector, clipTo(dialog.masterID, 1, 0, 50))),
		))
		return fx
	}

	m, _ := interpret(t, build(), Options{})
	clips := onlyTrack(t, m).Clips()
	if len(clips) != 1 || clips[0].Position != 200 || clips[0].Mute {
		t.Fatalf("disabled clip should be skipped: %+v", clips)
	}

	m, _ = interpret(t, build(), Options{ResolveIncludeDisabledClips: true})
	clips = onlyTrack(t, m).Clips()
	if len(clips) != 2 || !clips[0].Mute || clips[1].Mute {
		t.Fatalf("disabled clip should be muted: %+v", clips)
	}
	if clips[1].Position != 200 {
		t.Fatalf("following clip at %d, want 200", clips[1].Position)
	}
}

func TestResolveMarkers(t *testing.T) {
	colorPID, userPID := uint16(0xffd0), uint16(0xffd1)
	colorID := types.AUID{Data1: 0xd0d0d0d0}
	userID := types.AUID{Data1: 0xd1d1d1d1}

	color := []byte{0xff, 0xff, 0x00, 0x00, 0x80, 0x00}
	marker := testsupport.NewObject(types.ClassDescriptiveMarker).
		Int64(types.PIDEventPosition, 125).
		Int64(types.PIDComponentLength, 1).
		Text(types.PIDEventComment, "check sync").
		Text(userPID, "Editor").
		Data(colorPID, color)
	dataDef(marker, types.DataDefDescriptiveMetadata)

	events := testsupport.NewObject(types.ClassEventMobSlot).
		Uint32(types.PIDMobSlotSlotID, 1000).
		Rational(types.PIDEventMobSlotEditRate, 25, 1).
		Strong(types.PIDMobSlotSegment, dataDef(testsupport.NewObject(types.ClassSequence), types.DataDefDescriptiveMetadata).
			Vector(types.PIDSequenceComponents, marker))

	fx := testsupport.NewFile()
	fx.ProductName = "DaVinci Resolve"
	fx.ClassDefinitions = append(fx.ClassDefinitions, testsupport.ClassDefinition(
		types.ClassDescriptiveMarker, types.ClassCommentMarker, "DescriptiveMarker", true,
		testsupport.PropertyDefinition(colorID, "CommentMarkerColor", colorPID, true, types.AUID{Data1: 0xc010}),
		testsupport.PropertyDefinition(userID, "CommentMarkerUser", userPID, true, types.TypeString),
	))
	fx.Mobs = append(fx.Mobs, composition("Timeline 1", timecodeSlot(0), events))

	m, _ := interpret(t, fx, Options{})

	if len(m.Markers) != 1 {
		t.Fatalf("expected one marker, got %d", len(m.Markers))
	}
	got := m.Markers[0]
	if got.Start != 125 || got.Length != 1 || got.Comment != "check sync" || got.Name != "Editor" {
		t.Fatalf("unexpected marker %+v", got)
	}
	if got.Color != [3]uint16{0xffff, 0, 0x80} {
		t.Fatalf("marker color = %v", got.Color)
	}
	if got.EditRate != (types.Rational{Numerator: 25, Denominator: 1}) || m.MarkerEditRate != got.EditRate {
		t.Fatalf("marker edit rate = %v", got.EditRate)
	}
}
