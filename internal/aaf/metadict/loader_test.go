package metadict

import (
	"errors"
	"testing"

	"aafkit/internal/aaf/aaferr"
	"aafkit/internal/aaf/catalog"
	"aafkit/internal/aaf/resolver"
	"aafkit/internal/aaf/types"
	"aafkit/internal/testsupport"
)

var (
	vendorClip   = types.AUID{Data1: 0x0badc0de, Data2: 1}
	vendorMarker = types.AUID{Data1: 0x0badc0de, Data2: 2}
	vendorType   = types.AUID{Data1: 0x0badc0de, Data2: 0x10}
)

func load(t *testing.T, f *testsupport.FileFixture) (*resolver.Session, Stats) {
	t.Helper()
	cat, err := catalog.Baseline()
	if err != nil {
		t.Fatalf("Baseline: %v", err)
	}
	sess := resolver.NewSession(f.Build(), cat, resolver.Options{})
	root, err := sess.DecodeRoot()
	if err != nil {
		t.Fatalf("DecodeRoot: %v", err)
	}
	if err := sess.ResolveProperty(root, types.PIDRootMetaDictionary); err != nil {
		t.Fatalf("resolve MetaDictionary: %v", err)
	}
	stats, err := Load(sess, root)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return sess, stats
}

func TestLoadDiscoversCustomClassesAndProperties(t *testing.T) {
	f := testsupport.NewFile()
	f.TypeDefinitions = append(f.TypeDefinitions,
		testsupport.TypeDefinition(types.ClassTypeDefinitionInteger, vendorType, "VendorInt"))
	// Declared child-first so the parent is built through recursion.
	f.ClassDefinitions = append(f.ClassDefinitions,
		testsupport.ClassDefinition(vendorMarker, vendorClip, "VendorMarker", true),
		testsupport.ClassDefinition(vendorClip, types.ClassSourceClip, "VendorClip", false,
			testsupport.PropertyDefinition(types.AUID{Data1: 0xfff0}, "VendorFlags", 0xfff0, true, vendorType),
			testsupport.PropertyDefinition(types.AUID{Data1: 0xfff1}, "VendorTag", 0xfff1, false, types.AUID{Data1: 0x99}),
		),
	)

	sess, stats := load(t, f)
	cat := sess.Catalog()

	clip, ok := cat.Class(vendorClip)
	if !ok {
		t.Fatal("VendorClip not defined")
	}
	if !clip.Meta || clip.Concrete || clip.Name != "VendorClip" || clip.Parent.ID != types.ClassSourceClip {
		t.Fatalf("unexpected VendorClip %+v", clip)
	}
	marker, ok := cat.Class(vendorMarker)
	if !ok || marker.Parent != clip || !marker.IsA(types.ClassComponent) {
		t.Fatalf("unexpected VendorMarker %+v", marker)
	}

	flags, ok := marker.Property(0xfff0)
	if !ok {
		t.Fatal("VendorFlags not visible through inheritance")
	}
	if !flags.Meta || flags.Required || flags.Type != vendorType || flags.Class != clip {
		t.Fatalf("unexpected VendorFlags %+v", flags)
	}
	tag, _ := clip.Property(0xfff1)
	if tag == nil || !tag.Required || tag.Type != (types.AUID{Data1: 0x99}) {
		t.Fatalf("unexpected VendorTag %+v", tag)
	}
	if stats.ClassesDefined != 2 || stats.PropertiesAdded != 2 || stats.ClassesRejected != 0 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestLoadKeepsBaselineDefinitions(t *testing.T) {
	f := testsupport.NewFile()
	f.ClassDefinitions = append(f.ClassDefinitions,
		testsupport.ClassDefinition(types.ClassComponent, types.ClassInterchangeObject, "Component", false,
			// Length is optional in the baseline; a redeclaration must not change it.
			testsupport.PropertyDefinition(types.AUID{Data1: 0x0202}, "Length", types.PIDComponentLength, false, types.AUID{}),
			// DataDefinition is declared on Component already.
			testsupport.PropertyDefinition(types.AUID{Data1: 0x0201}, "Renamed", types.PIDComponentDataDefinition, true, types.AUID{}),
		),
		testsupport.ClassDefinition(types.ClassSourceClip, types.ClassComponent, "SourceClip", true,
			// DataDefinition is inherited from Component.
			testsupport.PropertyDefinition(types.AUID{Data1: 0x0201}, "Shadow", types.PIDComponentDataDefinition, true, types.AUID{}),
		),
	)
	baseline, _ := catalog.Baseline()
	want, _ := baseline.Property(types.ClassComponent, types.PIDComponentLength)

	sess, stats := load(t, f)
	got, ok := sess.Catalog().Property(types.ClassComponent, types.PIDComponentLength)
	if !ok || got.Required != want.Required || got.Meta || got.Name != want.Name {
		t.Fatalf("baseline Length altered: %+v", got)
	}
	dataDef, _ := sess.Catalog().Property(types.ClassSourceClip, types.PIDComponentDataDefinition)
	if dataDef.Name != "DataDefinition" || dataDef.Class.ID != types.ClassComponent {
		t.Fatalf("inherited DataDefinition shadowed: %+v", dataDef)
	}
	if stats.PropertiesSkipped != 3 || stats.PropertiesAdded != 0 || stats.ClassesDefined != 0 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestLoadRejectsSelfParentedClass(t *testing.T) {
	f := testsupport.NewFile()
	f.ClassDefinitions = append(f.ClassDefinitions,
		testsupport.ClassDefinition(types.ClassInterchangeObject, types.ClassInterchangeObject, "InterchangeObject", false),
		testsupport.ClassDefinition(vendorClip, vendorClip, "Loop", true),
	)
	sess, stats := load(t, f)
	if _, ok := sess.Catalog().Class(vendorClip); ok {
		t.Fatal("self-parented class must not be defined")
	}
	if stats.ClassesRejected != 1 {
		t.Fatalf("expected one rejected class, got %+v", stats)
	}
	report := sess.Diagnostics().Report()
	if len(report) != 1 || report[0].Kind != aaferr.KindSchema {
		t.Fatalf("unexpected diagnostics %+v", report)
	}
}

func TestLoadRejectsInheritanceCycle(t *testing.T) {
	f := testsupport.NewFile()
	f.ClassDefinitions = append(f.ClassDefinitions,
		testsupport.ClassDefinition(vendorClip, vendorMarker, "A", true),
		testsupport.ClassDefinition(vendorMarker, vendorClip, "B", true),
	)
	sess, stats := load(t, f)
	if sess.Catalog().Len() != mustBaselineLen(t) {
		t.Fatal("cyclic classes must not be defined")
	}
	if stats.ClassesRejected != 2 {
		t.Fatalf("expected both classes rejected, got %+v", stats)
	}
}

func TestLoadRequiresMetaDictionary(t *testing.T) {
	cat, _ := catalog.Baseline()
	root := testsupport.NewObject(types.ClassRoot).
		Strong(types.PIDRootHeader, testsupport.NewObject(types.ClassHeader))
	sess := resolver.NewSession(testsupport.Build(root), cat, resolver.Options{})
	obj, err := sess.DecodeRoot()
	if err != nil {
		t.Fatalf("DecodeRoot: %v", err)
	}
	if _, err := Load(sess, obj); !errors.Is(err, aaferr.ErrMissingRequiredProperty) {
		t.Fatalf("expected missing MetaDictionary, got %v", err)
	}
}

func mustBaselineLen(t *testing.T) int {
	t.Helper()
	cat, err := catalog.Baseline()
	if err != nil {
		t.Fatalf("Baseline: %v", err)
	}
	return cat.Len()
}
