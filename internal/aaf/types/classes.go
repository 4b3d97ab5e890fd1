package types

// Class identifiers of the baseline object model.
var (
	ClassInterchangeObject       = objectClass(0x0100)
	ClassComponent               = objectClass(0x0200)
	ClassSegment                 = objectClass(0x0300)
	ClassEdgeCode                = objectClass(0x0400)
	ClassEssenceGroup            = objectClass(0x0500)
	ClassEvent                   = objectClass(0x0600)
	ClassGPITrigger              = objectClass(0x0700)
	ClassCommentMarker           = objectClass(0x0800)
	ClassFiller                  = objectClass(0x0900)
	ClassOperationGroup          = objectClass(0x0a00)
	ClassNestedScope             = objectClass(0x0b00)
	ClassPulldown                = objectClass(0x0c00)
	ClassScopeReference          = objectClass(0x0d00)
	ClassSelector                = objectClass(0x0e00)
	ClassSequence                = objectClass(0x0f00)
	ClassSourceReference         = objectClass(0x1000)
	ClassSourceClip              = objectClass(0x1100)
	ClassTextClip                = objectClass(0x1200)
	ClassHTMLClip                = objectClass(0x1300)
	ClassTimecode                = objectClass(0x1400)
	ClassTimecodeStream          = objectClass(0x1500)
	ClassTimecodeStream12M       = objectClass(0x1600)
	ClassTransition              = objectClass(0x1700)
	ClassContentStorage          = objectClass(0x1800)
	ClassControlPoint            = objectClass(0x1900)
	ClassDefinitionObject        = objectClass(0x1a00)
	ClassDataDefinition          = objectClass(0x1b00)
	ClassOperationDefinition     = objectClass(0x1c00)
	ClassParameterDefinition     = objectClass(0x1d00)
	ClassPluginDefinition        = objectClass(0x1e00)
	ClassCodecDefinition         = objectClass(0x1f00)
	ClassContainerDefinition     = objectClass(0x2000)
	ClassInterpolationDefinition = objectClass(0x2100)
	ClassDictionary              = objectClass(0x2200)
	ClassEssenceData             = objectClass(0x2300)
	ClassEssenceDescriptor       = objectClass(0x2400)
	ClassFileDescriptor          = objectClass(0x2500)
	ClassAIFCDescriptor          = objectClass(0x2600)
	ClassDigitalImageDescriptor  = objectClass(0x2700)
	ClassCDCIDescriptor          = objectClass(0x2800)
	ClassRGBADescriptor          = objectClass(0x2900)
	ClassHTMLDescriptor          = objectClass(0x2a00)
	ClassTIFFDescriptor          = objectClass(0x2b00)
	ClassWAVEDescriptor          = objectClass(0x2c00)
	ClassFilmDescriptor          = objectClass(0x2d00)
	ClassTapeDescriptor          = objectClass(0x2e00)
	ClassHeader                  = objectClass(0x2f00)
	ClassIdentification          = objectClass(0x3000)
	ClassLocator                 = objectClass(0x3100)
	ClassNetworkLocator          = objectClass(0x3200)
	ClassTextLocator             = objectClass(0x3300)
	ClassMob                     = objectClass(0x3400)
	ClassCompositionMob          = objectClass(0x3500)
	ClassMasterMob               = objectClass(0x3600)
	ClassSourceMob               = objectClass(0x3700)
	ClassMobSlot                 = objectClass(0x3800)
	ClassEventMobSlot            = objectClass(0x3900)
	ClassStaticMobSlot           = objectClass(0x3a00)
	ClassTimelineMobSlot         = objectClass(0x3b00)
	ClassParameter               = objectClass(0x3c00)
	ClassConstantValue           = objectClass(0x3d00)
	ClassVaryingValue            = objectClass(0x3e00)
	ClassTaggedValue             = objectClass(0x3f00)
	ClassKLVData                 = objectClass(0x4000)
	ClassDescriptiveMarker       = objectClass(0x4100)
	ClassSoundDescriptor         = objectClass(0x4200)
	ClassDataEssenceDescriptor   = objectClass(0x4300)
	ClassMultipleDescriptor      = objectClass(0x4400)
	ClassDescriptiveClip         = objectClass(0x4500)
	ClassAES3PCMDescriptor       = objectClass(0x4700)
	ClassPCMDescriptor           = objectClass(0x4800)
	ClassPhysicalDescriptor      = objectClass(0x4900)
	ClassImportDescriptor        = objectClass(0x4a00)
	ClassRecordingDescriptor     = objectClass(0x4b00)
	ClassTaggedValueDefinition   = objectClass(0x4c00)
	ClassKLVDataDefinition       = objectClass(0x4d00)
	ClassAuxiliaryDescriptor     = objectClass(0x4e00)
	ClassRIFFChunk               = objectClass(0x4f00)
	ClassBWFImportDescriptor     = objectClass(0x5000)
	ClassMPEGVideoDescriptor     = objectClass(0x5100)
	ClassDescriptiveFramework    = objectClass(0x7f00)
)

// Class identifiers of the meta model.
var (
	ClassClassDefinition                     = metaClass(0x0201)
	ClassPropertyDefinition                  = metaClass(0x0202)
	ClassTypeDefinition                      = metaClass(0x0203)
	ClassTypeDefinitionInteger               = metaClass(0x0204)
	ClassTypeDefinitionStrongObjectReference = metaClass(0x0205)
	ClassTypeDefinitionWeakObjectReference   = metaClass(0x0206)
	ClassTypeDefinitionEnumeration           = metaClass(0x0207)
	ClassTypeDefinitionFixedArray            = metaClass(0x0208)
	ClassTypeDefinitionVariableArray         = metaClass(0x0209)
	ClassTypeDefinitionSet                   = metaClass(0x020a)
	ClassTypeDefinitionString                = metaClass(0x020b)
	ClassTypeDefinitionStream                = metaClass(0x020c)
	ClassTypeDefinitionRecord                = metaClass(0x020d)
	ClassTypeDefinitionRename                = metaClass(0x020e)
	ClassTypeDefinitionExtendibleEnumeration = metaClass(0x0220)
	ClassTypeDefinitionIndirect              = metaClass(0x0221)
	ClassTypeDefinitionOpaque                = metaClass(0x0222)
	ClassTypeDefinitionCharacter             = metaClass(0x0223)
	ClassMetaDefinition                      = metaClass(0x0224)
	ClassMetaDictionary                      = metaClass(0x0225)
	ClassRoot                                = AUID{0xb3b398a5, 0x1c90, 0x11d4, [8]byte{0x80, 0x53, 0x08, 0x00, 0x36, 0x21, 0x08, 0x04}}
)

var (
	smpteObjectClass = [8]byte{0x06, 0x0e, 0x2b, 0x34, 0x02, 0x06, 0x01, 0x01}
	smpteLabel       = [8]byte{0x06, 0x0e, 0x2b, 0x34, 0x04, 0x01, 0x01, 0x01}
	smpteLabelV5     = [8]byte{0x06, 0x0e, 0x2b, 0x34, 0x04, 0x01, 0x01, 0x05}
)

func objectClass(code uint16) AUID {
	return AUID{Data1: 0x0d010101, Data2: 0x0101, Data3: code, Data4: smpteObjectClass}
}

func metaClass(code uint16) AUID {
	return AUID{Data1: 0x0d010101, Data2: code, Data3: 0x0000, Data4: smpteObjectClass}
}
