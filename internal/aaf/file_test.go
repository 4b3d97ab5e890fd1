package aaf

import (
	"context"
	"errors"
	"testing"

	"aafkit/internal/aaf/aaferr"
	"aafkit/internal/aaf/resolver"
	"aafkit/internal/aaf/types"
	"aafkit/internal/testsupport"
)

func TestOpenContainerReadsHeaderAndIdentification(t *testing.T) {
	fx := testsupport.NewFile()
	fx.ProductName = "DaVinci Resolve"
	fx.Mobs = append(fx.Mobs,
		testsupport.NewObject(types.ClassMasterMob).
			MobID(types.PIDMobMobID, testsupport.TestMobID(7)).
			Text(types.PIDMobName, "Dialog").
			Vector(types.PIDMobSlots),
	)

	f, err := OpenContainer(context.Background(), fx.Build(), Options{})
	if err != nil {
		t.Fatalf("OpenContainer: %v", err)
	}
	defer f.Close()

	if f.Info.ByteOrder != 0x4949 || f.Info.ObjectModelVersion != 1 {
		t.Fatalf("unexpected header info %+v", f.Info)
	}
	if !f.IsEditProtocol() {
		t.Fatal("expected edit protocol operational pattern")
	}
	if f.Identification.CompanyName != "Fixture Co" || f.Identification.Date.Year != 2024 {
		t.Fatalf("unexpected identification %+v", f.Identification)
	}
	if f.Vendor != VendorResolve {
		t.Fatalf("Vendor = %s", f.Vendor)
	}
	mob, ok := f.Mob(testsupport.TestMobID(7))
	if !ok {
		t.Fatal("mob lookup failed")
	}
	if name, _ := mob.Text(types.PIDMobName); name != "Dialog" {
		t.Fatalf("mob name = %q", name)
	}
	if got := len(f.MobsOf(types.ClassMob)); got != 1 {
		t.Fatalf("MobsOf(Mob) = %d", got)
	}
	if got := len(f.MobsOf(types.ClassCompositionMob)); got != 0 {
		t.Fatalf("MobsOf(CompositionMob) = %d", got)
	}
}

func TestDefinitionLookupFallsBackToReferenceKey(t *testing.T) {
	fx := testsupport.NewFile()
	fx.DataDefinitions = nil
	filler := testsupport.NewObject(types.ClassFiller).
		WeakAUID(types.PIDComponentDataDefinition, types.PIDDefinitionObjectIdentification, types.DataDefSound).
		Int64(types.PIDComponentLength, 10)
	slot := testsupport.NewObject(types.ClassTimelineMobSlot).
		Uint32(types.PIDMobSlotSlotID, 1).
		Rational(types.PIDTimelineMobSlotEditRate, 48000, 1).
		Int64(types.PIDTimelineMobSlotOrigin, 0).
		Strong(types.PIDMobSlotSegment, filler)
	fx.Mobs = append(fx.Mobs, testsupport.NewObject(types.ClassCompositionMob).
		MobID(types.PIDMobMobID, testsupport.TestMobID(1)).
		Vector(types.PIDMobSlots, slot))
	f, err := OpenContainer(context.Background(), fx.Build(), Options{})
	if err != nil {
		t.Fatalf("OpenContainer: %v", err)
	}
	mob, _ := f.Mob(testsupport.TestMobID(1))
	slots, _ := mob.Collection(types.PIDMobSlots)
	segment, err := slots[0].Strong(types.PIDMobSlotSegment)
	if err != nil {
		t.Fatalf("Segment: %v", err)
	}
	id, err := f.DataDefinition(segment, types.PIDComponentDataDefinition)
	if err != nil || !types.IsSound(id) {
		t.Fatalf("DataDefinition = %s, %v", id, err)
	}
}

func TestOpenContainerFailsWithoutHeader(t *testing.T) {
	root := testsupport.NewObject(types.ClassRoot).
		Strong(types.PIDRootMetaDictionary, testsupport.NewObject(types.ClassMetaDictionary).
			Set(types.PIDMetaDictionaryClassDefinitions, types.PIDMetaDefinitionIdentification).
			Set(types.PIDMetaDictionaryTypeDefinitions, types.PIDMetaDefinitionIdentification))
	_, err := OpenContainer(context.Background(), testsupport.Build(root), Options{})
	if err == nil {
		t.Fatal("expected failure without Header")
	}
	if !errors.Is(err, aaferr.ErrReferenceResolution) && !errors.Is(err, aaferr.ErrMissingRequiredProperty) {
		t.Fatalf("unexpected error class %v", err)
	}
}

func TestOpenContainerRecordsMissingIdentificationFields(t *testing.T) {
	fx := testsupport.NewFile()
	fx.OperationalPattern = types.AUID{}
	diag := &aaferr.Diagnostics{}
	f, err := OpenContainer(context.Background(), fx.Build(), Options{Diagnostics: diag})
	if err != nil {
		t.Fatalf("OpenContainer: %v", err)
	}
	if f.IsEditProtocol() {
		t.Fatal("operational pattern should be unset")
	}
	// OperationalPattern and the optional Identification fields are absent
	// but optional, so nothing reaches the diagnostics.
	if diag.Len() != 0 {
		t.Fatalf("unexpected diagnostics %+v", diag.Report())
	}
}

func TestDetectVendor(t *testing.T) {
	tests := []struct {
		product string
		want    Vendor
	}{
		{"DaVinci Resolve", VendorResolve},
		{"Pro Tools", VendorProTools},
		{"Pro Tools Ultimate", VendorProTools},
		{"Media Composer", VendorAvid},
		{"Avid Media Composer", VendorAvid},
		{"Logic Pro", VendorUnknown},
		{"", VendorUnknown},
	}
	for _, tt := range tests {
		if got := DetectVendor(tt.product); got != tt.want {
			t.Errorf("DetectVendor(%q) = %s, want %s", tt.product, got, tt.want)
		}
	}
}

func operationDefinition(t *testing.T, f *File, id types.AUID) *resolver.Object {
	t.Helper()
	for _, op := range f.OperationDefinitions() {
		if got, err := op.AUID(types.PIDDefinitionObjectIdentification); err == nil && got == id {
			return op
		}
	}
	t.Fatalf("operation definition %s not found", types.DefinitionName(id))
	return nil
}

func TestParametersDefined(t *testing.T) {
	fx := testsupport.NewFile()
	custom := types.AUID{Data1: 0xabcdef01}
	fx.OperationDefinitions = append(fx.OperationDefinitions,
		testsupport.Definition(types.ClassOperationDefinition, custom).
			WeakAUID(types.PIDOperationDefinitionDataDefinition, types.PIDDefinitionObjectIdentification, types.DataDefSound).
			Uint32(types.PIDOperationDefinitionNumberInputs, 1).
			WeakAUIDSet(types.PIDOperationDefinitionParametersDefined, types.PIDDefinitionObjectIdentification,
				types.ParameterDefLevel, types.AUID{Data1: 0x77}))
	f, err := OpenContainer(context.Background(), fx.Build(), Options{})
	if err != nil {
		t.Fatalf("OpenContainer: %v", err)
	}
	defer f.Close()

	tests := []struct {
		op   types.AUID
		want []types.AUID
	}{
		{types.OperationDefMonoAudioGain, []types.AUID{types.ParameterDefAmplitude}},
		{types.OperationDefMonoAudioPan, []types.AUID{types.ParameterDefPan}},
		{types.OperationDefVideoDissolve, nil},
		// Definitions absent from the dictionary come back from the reference key.
		{custom, []types.AUID{types.ParameterDefLevel, {Data1: 0x77}}},
	}
	for _, tt := range tests {
		t.Run(types.DefinitionName(tt.op), func(t *testing.T) {
			got, err := f.ParametersDefined(operationDefinition(t, f, tt.op))
			if err != nil {
				t.Fatalf("ParametersDefined: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("parameter %d: got %s want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParametersDefinedRejectsMalformedIndex(t *testing.T) {
	fx := testsupport.NewFile()
	op := types.AUID{Data1: 0xbad}
	// 0x04000000 entries of zero-length identifications.
	fx.OperationDefinitions = append(fx.OperationDefinitions,
		testsupport.Definition(types.ClassOperationDefinition, op).
			WeakAUID(types.PIDOperationDefinitionDataDefinition, types.PIDDefinitionObjectIdentification, types.DataDefSound).
			Uint32(types.PIDOperationDefinitionNumberInputs, 1).
			WeakSetIndex(types.PIDOperationDefinitionParametersDefined, []byte{0x00, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00}))

	f, err := OpenContainer(context.Background(), fx.Build(), Options{})
	if err != nil {
		t.Fatalf("OpenContainer: %v", err)
	}
	defer f.Close()
	params, err := f.ParametersDefined(operationDefinition(t, f, op))
	if !errors.Is(err, aaferr.ErrMalformedStream) {
		t.Fatalf("expected ErrMalformedStream, got %v (%d parameters)", err, len(params))
	}
}
