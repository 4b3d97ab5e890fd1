package testsupport

import (
	"aafkit/internal/aaf/types"
	"aafkit/internal/cfb"
)

// FileFixture assembles the top-level objects of an AAF file: Root,
// MetaDictionary, Header, Identification, ContentStorage and Dictionary.
type FileFixture struct {
	CompanyName        string
	ProductName        string
	OperationalPattern types.AUID

	ClassDefinitions []*Obj
	TypeDefinitions  []*Obj
	Mobs             []*Obj
	EssenceData      []*Obj

	DataDefinitions          []*Obj
	OperationDefinitions     []*Obj
	ParameterDefinitions     []*Obj
	InterpolationDefinitions []*Obj
}

var operationParameters = map[types.AUID][]types.AUID{
	types.OperationDefMonoAudioGain:   {types.ParameterDefAmplitude},
	types.OperationDefStereoAudioGain: {types.ParameterDefAmplitude},
	types.OperationDefMonoAudioPan:    {types.ParameterDefPan},
}

// NewFile returns a fixture carrying the well-known definitions.
func NewFile() *FileFixture {
	f := &FileFixture{
		CompanyName:        "Fixture Co",
		ProductName:        "Fixture Editor",
		OperationalPattern: types.OPEditProtocol,
	}
	for _, id := range []types.AUID{
		types.DataDefSound, types.DataDefPicture, types.DataDefTimecode,
		types.DataDefLegacySound, types.DataDefLegacyPicture, types.DataDefLegacyTimecode,
		types.DataDefDescriptiveMetadata,
	} {
		f.DataDefinitions = append(f.DataDefinitions, Definition(types.ClassDataDefinition, id))
	}
	for _, id := range []types.AUID{
		types.OperationDefMonoAudioGain, types.OperationDefMonoAudioPan, types.OperationDefStereoAudioGain,
		types.OperationDefMonoAudioMixdown, types.OperationDefMonoAudioDissolve, types.OperationDefStereoAudioDissolve,
		types.OperationDefTwoParameterMonoAudioDissolve, types.OperationDefAudioChannelCombiner,
		types.OperationDefVideoDissolve,
	} {
		def := Definition(types.ClassOperationDefinition, id).
			WeakAUID(types.PIDOperationDefinitionDataDefinition, types.PIDDefinitionObjectIdentification, types.DataDefSound).
			Uint32(types.PIDOperationDefinitionNumberInputs, 1)
		if params, ok := operationParameters[id]; ok {
			def.WeakAUIDSet(types.PIDOperationDefinitionParametersDefined, types.PIDDefinitionObjectIdentification, params...)
		}
		f.OperationDefinitions = append(f.OperationDefinitions, def)
	}
	for _, id := range []types.AUID{types.ParameterDefAmplitude, types.ParameterDefPan, types.ParameterDefLevel} {
		f.ParameterDefinitions = append(f.ParameterDefinitions, Definition(types.ClassParameterDefinition, id).
			AUID(types.PIDParameterDefinitionType, types.TypeRational))
	}
	for _, id := range []types.AUID{
		types.InterpolationDefNone, types.InterpolationDefLinear, types.InterpolationDefConstant,
		types.InterpolationDefBSpline, types.InterpolationDefLog, types.InterpolationDefPower,
	} {
		f.InterpolationDefinitions = append(f.InterpolationDefinitions, Definition(types.ClassInterpolationDefinition, id))
	}
	return f
}

// Definition builds a DefinitionObject subclass instance named after its AUID.
func Definition(class, id types.AUID) *Obj {
	return NewObject(class).
		AUID(types.PIDDefinitionObjectIdentification, id).
		Text(types.PIDDefinitionObjectName, types.DefinitionName(id))
}

// Build writes the fixture into an in-memory container.
func (f *FileFixture) Build() *cfb.Memory {
	stamp := types.TimeStamp{Year: 2024, Month: 3, Day: 14, Hour: 9, Minute: 30, Second: 5}

	ident := NewObject(types.ClassIdentification).
		Text(types.PIDIdentificationCompanyName, f.CompanyName).
		Text(types.PIDIdentificationProductName, f.ProductName).
		Text(types.PIDIdentificationProductVersionString, "1.0").
		AUID(types.PIDIdentificationProductID, types.AUID{Data1: 0x1234}).
		TimeStamp(types.PIDIdentificationDate, stamp).
		AUID(types.PIDIdentificationGenerationAUID, types.AUID{Data1: 0x5678})

	content := NewObject(types.ClassContentStorage).
		Set(types.PIDContentStorageMobs, types.PIDMobMobID, f.Mobs...).
		Set(types.PIDContentStorageEssenceData, types.PIDEssenceDataMobID, f.EssenceData...)

	dict := NewObject(types.ClassDictionary).
		Set(types.PIDDictionaryDataDefinitions, types.PIDDefinitionObjectIdentification, f.DataDefinitions...).
		Set(types.PIDDictionaryOperationDefinitions, types.PIDDefinitionObjectIdentification, f.OperationDefinitions...).
		Set(types.PIDDictionaryParameterDefinitions, types.PIDDefinitionObjectIdentification, f.ParameterDefinitions...).
		Set(types.PIDDictionaryInterpolationDefinitions, types.PIDDefinitionObjectIdentification, f.InterpolationDefinitions...)

	header := NewObject(types.ClassHeader).
		Uint16(types.PIDHeaderByteOrder, 0x4949).
		TimeStamp(types.PIDHeaderLastModified, stamp).
		Data(types.PIDHeaderVersion, []byte{1, 1}).
		Uint32(types.PIDHeaderObjectModelVersion, 1).
		Strong(types.PIDHeaderContent, content).
		Strong(types.PIDHeaderDictionary, dict).
		Vector(types.PIDHeaderIdentificationList, ident)
	if !f.OperationalPattern.IsZero() {
		header.AUID(types.PIDHeaderOperationalPattern, f.OperationalPattern)
	}

	meta := NewObject(types.ClassMetaDictionary).
		Set(types.PIDMetaDictionaryClassDefinitions, types.PIDMetaDefinitionIdentification, f.ClassDefinitions...).
		Set(types.PIDMetaDictionaryTypeDefinitions, types.PIDMetaDefinitionIdentification, f.TypeDefinitions...)

	root := NewObject(types.ClassRoot).
		Strong(types.PIDRootMetaDictionary, meta).
		Strong(types.PIDRootHeader, header)
	return Build(root)
}

// ClassDefinition builds a MetaDictionary ClassDefinition whose parent is
// referenced by AUID within the ClassDefinitions set.
func ClassDefinition(id, parent types.AUID, name string, concrete bool, props ...*Obj) *Obj {
	obj := NewObject(types.ClassClassDefinition).
		AUID(types.PIDMetaDefinitionIdentification, id).
		Text(types.PIDMetaDefinitionName, name).
		WeakAUID(types.PIDClassDefinitionParentClass, types.PIDMetaDefinitionIdentification, parent).
		Bool(types.PIDClassDefinitionIsConcrete, concrete)
	if len(props) > 0 {
		obj.Set(types.PIDClassDefinitionProperties, types.PIDMetaDefinitionIdentification, props...)
	}
	return obj
}

// PropertyDefinition builds a MetaDictionary PropertyDefinition.
func PropertyDefinition(id types.AUID, name string, pid uint16, optional bool, typeID types.AUID) *Obj {
	return NewObject(types.ClassPropertyDefinition).
		AUID(types.PIDMetaDefinitionIdentification, id).
		Text(types.PIDMetaDefinitionName, name).
		WeakAUID(types.PIDPropertyDefinitionType, types.PIDMetaDefinitionIdentification, typeID).
		Bool(types.PIDPropertyDefinitionIsOptional, optional).
		Uint16(types.PIDPropertyDefinitionLocalIdentification, pid)
}

// TypeDefinition builds a minimal MetaDictionary TypeDefinition entry.
func TypeDefinition(class, id types.AUID, name string) *Obj {
	return NewObject(class).
		AUID(types.PIDMetaDefinitionIdentification, id).
		Text(types.PIDMetaDefinitionName, name)
}
