package types

// Property identifiers of the baseline object and meta models, grouped by
// the class that declares them.
const (
	PIDInterchangeObjectObjClass   uint16 = 0x0101
	PIDInterchangeObjectGeneration uint16 = 0x0102

	PIDRootMetaDictionary uint16 = 0x0001
	PIDRootHeader         uint16 = 0x0002

	PIDHeaderByteOrder          uint16 = 0x3b01
	PIDHeaderLastModified       uint16 = 0x3b02
	PIDHeaderContent            uint16 = 0x3b03
	PIDHeaderDictionary         uint16 = 0x3b04
	PIDHeaderVersion            uint16 = 0x3b05
	PIDHeaderIdentificationList uint16 = 0x3b06
	PIDHeaderObjectModelVersion uint16 = 0x3b07
	PIDHeaderOperationalPattern uint16 = 0x3b09
	PIDHeaderEssenceContainers  uint16 = 0x3b0a
	PIDHeaderDescriptiveSchemes uint16 = 0x3b0b

	PIDIdentificationCompanyName          uint16 = 0x3c01
	PIDIdentificationProductName          uint16 = 0x3c02
	PIDIdentificationProductVersion       uint16 = 0x3c03
	PIDIdentificationProductVersionString uint16 = 0x3c04
	PIDIdentificationProductID            uint16 = 0x3c05
	PIDIdentificationDate                 uint16 = 0x3c06
	PIDIdentificationToolkitVersion       uint16 = 0x3c07
	PIDIdentificationPlatform             uint16 = 0x3c08
	PIDIdentificationGenerationAUID       uint16 = 0x3c09

	PIDDictionaryOperationDefinitions     uint16 = 0x2603
	PIDDictionaryParameterDefinitions     uint16 = 0x2604
	PIDDictionaryDataDefinitions          uint16 = 0x2605
	PIDDictionaryPluginDefinitions        uint16 = 0x2606
	PIDDictionaryCodecDefinitions         uint16 = 0x2607
	PIDDictionaryContainerDefinitions     uint16 = 0x2608
	PIDDictionaryInterpolationDefinitions uint16 = 0x2609
	PIDDictionaryKLVDataDefinitions       uint16 = 0x260a
	PIDDictionaryTaggedValueDefinitions   uint16 = 0x260b

	PIDContentStorageMobs        uint16 = 0x1901
	PIDContentStorageEssenceData uint16 = 0x1902

	PIDMobMobID        uint16 = 0x4401
	PIDMobName         uint16 = 0x4402
	PIDMobSlots        uint16 = 0x4403
	PIDMobLastModified uint16 = 0x4404
	PIDMobCreationTime uint16 = 0x4405
	PIDMobUserComments uint16 = 0x4406
	PIDMobKLVData      uint16 = 0x4407
	PIDMobUsageCode    uint16 = 0x4408
	PIDMobAttributes   uint16 = 0x4409

	PIDCompositionMobDefaultFadeLength uint16 = 0x4501
	PIDCompositionMobDefFadeType       uint16 = 0x4502
	PIDCompositionMobDefFadeEditUnit   uint16 = 0x4503
	PIDCompositionMobRendering         uint16 = 0x4504

	PIDSourceMobEssenceDescription uint16 = 0x4701

	PIDMobSlotSlotID              uint16 = 0x4801
	PIDMobSlotSlotName            uint16 = 0x4802
	PIDMobSlotSegment             uint16 = 0x4803
	PIDMobSlotPhysicalTrackNumber uint16 = 0x4804

	PIDTimelineMobSlotEditRate uint16 = 0x4b01
	PIDTimelineMobSlotOrigin   uint16 = 0x4b02
	PIDTimelineMobSlotMarkIn   uint16 = 0x4b03
	PIDTimelineMobSlotMarkOut  uint16 = 0x4b04
	PIDTimelineMobSlotUserPos  uint16 = 0x4b05

	PIDEventMobSlotEditRate        uint16 = 0x4901
	PIDEventMobSlotEventSlotOrigin uint16 = 0x4902

	PIDKLVDataValue uint16 = 0x5101

	PIDTaggedValueName  uint16 = 0x5001
	PIDTaggedValueValue uint16 = 0x5003

	PIDParameterDefinition uint16 = 0x4c01

	PIDConstantValueValue uint16 = 0x4d01

	PIDVaryingValueInterpolation uint16 = 0x4e01
	PIDVaryingValuePointList     uint16 = 0x4e02

	PIDControlPointValue    uint16 = 0x1a02
	PIDControlPointTime     uint16 = 0x1a03
	PIDControlPointEditHint uint16 = 0x1a04

	PIDNetworkLocatorURLString uint16 = 0x4001

	PIDTextLocatorName uint16 = 0x4101

	PIDComponentDataDefinition uint16 = 0x0201
	PIDComponentLength         uint16 = 0x0202
	PIDComponentKLVData        uint16 = 0x0203
	PIDComponentUserComments   uint16 = 0x0204
	PIDComponentAttributes     uint16 = 0x0205

	PIDTransitionOperationGroup uint16 = 0x1801
	PIDTransitionCutPoint       uint16 = 0x1802

	PIDSequenceComponents uint16 = 0x1001

	PIDSourceReferenceSourceID          uint16 = 0x1101
	PIDSourceReferenceSourceMobSlotID   uint16 = 0x1102
	PIDSourceReferenceChannelIDs        uint16 = 0x1103
	PIDSourceReferenceMonoSourceSlotIDs uint16 = 0x1104

	PIDSourceClipStartTime     uint16 = 0x1201
	PIDSourceClipFadeInLength  uint16 = 0x1202
	PIDSourceClipFadeInType    uint16 = 0x1203
	PIDSourceClipFadeOutLength uint16 = 0x1204
	PIDSourceClipFadeOutType   uint16 = 0x1205

	PIDEventPosition uint16 = 0x0601
	PIDEventComment  uint16 = 0x0602

	PIDCommentMarkerAnnotation uint16 = 0x0901

	PIDDescriptiveMarkerDescribedSlots uint16 = 0x6102
	PIDDescriptiveMarkerDescription    uint16 = 0x6101

	PIDGPITriggerActiveState uint16 = 0x0801

	PIDTimecodeStart uint16 = 0x1501
	PIDTimecodeFPS   uint16 = 0x1502
	PIDTimecodeDrop  uint16 = 0x1503

	PIDTimecodeStreamSampleRate uint16 = 0x1601
	PIDTimecodeStreamSource     uint16 = 0x1602
	PIDTimecodeStreamSourceType uint16 = 0x1603

	PIDTimecodeStream12MIncludeSync uint16 = 0x1701

	PIDEdgeCodeStart      uint16 = 0x0401
	PIDEdgeCodeFilmKind   uint16 = 0x0402
	PIDEdgeCodeCodeFormat uint16 = 0x0403
	PIDEdgeCodeHeader     uint16 = 0x0404

	PIDPulldownInputSegment      uint16 = 0x0d01
	PIDPulldownPulldownKind      uint16 = 0x0d02
	PIDPulldownPulldownDirection uint16 = 0x0d03
	PIDPulldownPhaseFrame        uint16 = 0x0d04

	PIDOperationGroupOperation      uint16 = 0x0b01
	PIDOperationGroupInputSegments  uint16 = 0x0b02
	PIDOperationGroupParameters     uint16 = 0x0b03
	PIDOperationGroupBypassOverride uint16 = 0x0b04
	PIDOperationGroupRendering      uint16 = 0x0b05

	PIDNestedScopeSlots uint16 = 0x0c01

	PIDScopeReferenceRelativeScope uint16 = 0x0e01
	PIDScopeReferenceRelativeSlot  uint16 = 0x0e02

	PIDSelectorSelected   uint16 = 0x0f01
	PIDSelectorAlternates uint16 = 0x0f02

	PIDEssenceGroupChoices    uint16 = 0x0501
	PIDEssenceGroupStillFrame uint16 = 0x0502

	PIDEssenceDescriptorLocator uint16 = 0x2f01

	PIDFileDescriptorSampleRate      uint16 = 0x3001
	PIDFileDescriptorLength          uint16 = 0x3002
	PIDFileDescriptorContainerFormat uint16 = 0x3004
	PIDFileDescriptorCodecDefinition uint16 = 0x3005
	PIDFileDescriptorLinkedSlotID    uint16 = 0x3006

	PIDDigitalImageDescriptorCompression            uint16 = 0x3201
	PIDDigitalImageDescriptorStoredHeight           uint16 = 0x3202
	PIDDigitalImageDescriptorStoredWidth            uint16 = 0x3203
	PIDDigitalImageDescriptorSampledHeight          uint16 = 0x3204
	PIDDigitalImageDescriptorSampledWidth           uint16 = 0x3205
	PIDDigitalImageDescriptorSampledXOffset         uint16 = 0x3206
	PIDDigitalImageDescriptorSampledYOffset         uint16 = 0x3207
	PIDDigitalImageDescriptorDisplayHeight          uint16 = 0x3208
	PIDDigitalImageDescriptorDisplayWidth           uint16 = 0x3209
	PIDDigitalImageDescriptorDisplayXOffset         uint16 = 0x320a
	PIDDigitalImageDescriptorDisplayYOffset         uint16 = 0x320b
	PIDDigitalImageDescriptorFrameLayout            uint16 = 0x320c
	PIDDigitalImageDescriptorVideoLineMap           uint16 = 0x320d
	PIDDigitalImageDescriptorImageAspectRatio       uint16 = 0x320e
	PIDDigitalImageDescriptorAlphaTransparency      uint16 = 0x320f
	PIDDigitalImageDescriptorTransferCharacteristic uint16 = 0x3210
	PIDDigitalImageDescriptorImageAlignmentFactor   uint16 = 0x3211
	PIDDigitalImageDescriptorFieldDominance         uint16 = 0x3212
	PIDDigitalImageDescriptorFieldStartOffset       uint16 = 0x3213
	PIDDigitalImageDescriptorFieldEndOffset         uint16 = 0x3214
	PIDDigitalImageDescriptorColorPrimaries         uint16 = 0x3219
	PIDDigitalImageDescriptorCodingEquations        uint16 = 0x321a

	PIDCDCIDescriptorComponentWidth        uint16 = 0x3301
	PIDCDCIDescriptorHorizontalSubsampling uint16 = 0x3302
	PIDCDCIDescriptorColorSiting           uint16 = 0x3303
	PIDCDCIDescriptorBlackReferenceLevel   uint16 = 0x3304
	PIDCDCIDescriptorWhiteReferenceLevel   uint16 = 0x3305
	PIDCDCIDescriptorColorRange            uint16 = 0x3306
	PIDCDCIDescriptorPaddingBits           uint16 = 0x3307
	PIDCDCIDescriptorVerticalSubsampling   uint16 = 0x3308
	PIDCDCIDescriptorAlphaSamplingWidth    uint16 = 0x3309
	PIDCDCIDescriptorReversedByteOrder     uint16 = 0x330b

	PIDRGBADescriptorPixelLayout     uint16 = 0x3401
	PIDRGBADescriptorPalette         uint16 = 0x3403
	PIDRGBADescriptorPaletteLayout   uint16 = 0x3404
	PIDRGBADescriptorComponentMaxRef uint16 = 0x3406
	PIDRGBADescriptorComponentMinRef uint16 = 0x3407
	PIDRGBADescriptorAlphaMaxRef     uint16 = 0x3408
	PIDRGBADescriptorAlphaMinRef     uint16 = 0x3409

	PIDTapeDescriptorFormFactor      uint16 = 0x3a01
	PIDTapeDescriptorVideoSignal     uint16 = 0x3a02
	PIDTapeDescriptorTapeFormat      uint16 = 0x3a03
	PIDTapeDescriptorLength          uint16 = 0x3a04
	PIDTapeDescriptorManufacturerID  uint16 = 0x3a05
	PIDTapeDescriptorModel           uint16 = 0x3a06
	PIDTapeDescriptorTapeBatchNumber uint16 = 0x3a07
	PIDTapeDescriptorTapeStock       uint16 = 0x3a08

	PIDFilmDescriptorFilmFormat           uint16 = 0x3901
	PIDFilmDescriptorFrameRate            uint16 = 0x3902
	PIDFilmDescriptorPerforationsPerFrame uint16 = 0x3903
	PIDFilmDescriptorFilmAspectRatio      uint16 = 0x3904
	PIDFilmDescriptorManufacturer         uint16 = 0x3905
	PIDFilmDescriptorModel                uint16 = 0x3906
	PIDFilmDescriptorFilmGaugeFormat      uint16 = 0x3907
	PIDFilmDescriptorFilmBatchNumber      uint16 = 0x3908

	PIDWAVEDescriptorSummary uint16 = 0x3801

	PIDAIFCDescriptorSummary uint16 = 0x3101

	PIDTIFFDescriptorIsUniform     uint16 = 0x3701
	PIDTIFFDescriptorIsContiguous  uint16 = 0x3702
	PIDTIFFDescriptorLeadingLines  uint16 = 0x3703
	PIDTIFFDescriptorTrailingLines uint16 = 0x3704
	PIDTIFFDescriptorJPEGTableID   uint16 = 0x3705
	PIDTIFFDescriptorSummary       uint16 = 0x3706

	PIDSoundDescriptorQuantizationBits  uint16 = 0x3d01
	PIDSoundDescriptorLocked            uint16 = 0x3d02
	PIDSoundDescriptorAudioSamplingRate uint16 = 0x3d03
	PIDSoundDescriptorAudioRefLevel     uint16 = 0x3d04
	PIDSoundDescriptorElectroSpatial    uint16 = 0x3d05
	PIDSoundDescriptorCompression       uint16 = 0x3d06
	PIDSoundDescriptorChannels          uint16 = 0x3d07
	PIDSoundDescriptorDialNorm          uint16 = 0x3d0c

	PIDPCMDescriptorAverageBPS            uint16 = 0x3d09
	PIDPCMDescriptorBlockAlign            uint16 = 0x3d0a
	PIDPCMDescriptorSequenceOffset        uint16 = 0x3d0b
	PIDPCMDescriptorPeakEnvelopeVersion   uint16 = 0x3d29
	PIDPCMDescriptorPeakEnvelopeFormat    uint16 = 0x3d2a
	PIDPCMDescriptorPointsPerPeakValue    uint16 = 0x3d2b
	PIDPCMDescriptorPeakEnvelopeBlockSize uint16 = 0x3d2c
	PIDPCMDescriptorPeakChannels          uint16 = 0x3d2d
	PIDPCMDescriptorPeakFrames            uint16 = 0x3d2e
	PIDPCMDescriptorPeakOfPeaksPosition   uint16 = 0x3d2f
	PIDPCMDescriptorPeakEnvelopeTimestamp uint16 = 0x3d30
	PIDPCMDescriptorPeakEnvelopeData      uint16 = 0x3d31
	PIDPCMDescriptorChannelAssignment     uint16 = 0x3d32

	PIDAES3PCMDescriptorEmphasis               uint16 = 0x3d0d
	PIDAES3PCMDescriptorBlockStartOffset       uint16 = 0x3d0f
	PIDAES3PCMDescriptorAuxBitsMode            uint16 = 0x3d08
	PIDAES3PCMDescriptorChannelStatusMode      uint16 = 0x3d10
	PIDAES3PCMDescriptorFixedChannelStatusData uint16 = 0x3d11
	PIDAES3PCMDescriptorUserDataMode           uint16 = 0x3d12
	PIDAES3PCMDescriptorFixedUserData          uint16 = 0x3d13

	PIDMultipleDescriptorFileDescriptors uint16 = 0x3f01

	PIDDataEssenceDescriptorDataEssenceCoding uint16 = 0x3e01

	PIDAuxiliaryDescriptorMimeType uint16 = 0x4e11
	PIDAuxiliaryDescriptorCharSet  uint16 = 0x4e12

	PIDDefinitionObjectIdentification uint16 = 0x1b01
	PIDDefinitionObjectName           uint16 = 0x1b02
	PIDDefinitionObjectDescription    uint16 = 0x1b03

	PIDContainerDefinitionEssenceIsIdentified uint16 = 0x2401

	PIDOperationDefinitionDataDefinition    uint16 = 0x1e01
	PIDOperationDefinitionIsTimeWarp        uint16 = 0x1e02
	PIDOperationDefinitionDegradeTo         uint16 = 0x1e03
	PIDOperationDefinitionOperationCategory uint16 = 0x1e06
	PIDOperationDefinitionNumberInputs      uint16 = 0x1e07
	PIDOperationDefinitionBypass            uint16 = 0x1e08
	PIDOperationDefinitionParametersDefined uint16 = 0x1e09

	PIDParameterDefinitionType         uint16 = 0x1f01
	PIDParameterDefinitionDisplayUnits uint16 = 0x1f03

	PIDCodecDefinitionFileDescriptorClass uint16 = 0x2301
	PIDCodecDefinitionDataDefinitions     uint16 = 0x2302

	PIDPluginDefinitionPluginCategory     uint16 = 0x2203
	PIDPluginDefinitionVersionNumber      uint16 = 0x2204
	PIDPluginDefinitionVersionString      uint16 = 0x2205
	PIDPluginDefinitionManufacturer       uint16 = 0x2206
	PIDPluginDefinitionManufacturerInfo   uint16 = 0x2207
	PIDPluginDefinitionManufacturerID     uint16 = 0x2208
	PIDPluginDefinitionPlatform           uint16 = 0x2209
	PIDPluginDefinitionMinPlatformVersion uint16 = 0x220a
	PIDPluginDefinitionMaxPlatformVersion uint16 = 0x220b
	PIDPluginDefinitionEngine             uint16 = 0x220c
	PIDPluginDefinitionMinEngineVersion   uint16 = 0x220d
	PIDPluginDefinitionMaxEngineVersion   uint16 = 0x220e
	PIDPluginDefinitionPluginAPI          uint16 = 0x220f
	PIDPluginDefinitionMinPluginAPI       uint16 = 0x2210
	PIDPluginDefinitionMaxPluginAPI       uint16 = 0x2211
	PIDPluginDefinitionSoftwareOnly       uint16 = 0x2212
	PIDPluginDefinitionAccelerator        uint16 = 0x2213
	PIDPluginDefinitionLocators           uint16 = 0x2214
	PIDPluginDefinitionAuthentication     uint16 = 0x2215
	PIDPluginDefinitionDefinitionObject   uint16 = 0x2216

	PIDKLVDataDefinitionKLVDataType uint16 = 0x4d12

	PIDEssenceDataMobID       uint16 = 0x2701
	PIDEssenceDataData        uint16 = 0x2702
	PIDEssenceDataSampleIndex uint16 = 0x2b01

	PIDMetaDefinitionIdentification uint16 = 0x0005
	PIDMetaDefinitionName           uint16 = 0x0006
	PIDMetaDefinitionDescription    uint16 = 0x0007

	PIDClassDefinitionParentClass uint16 = 0x0008
	PIDClassDefinitionProperties  uint16 = 0x0009
	PIDClassDefinitionIsConcrete  uint16 = 0x000a

	PIDPropertyDefinitionType                uint16 = 0x000b
	PIDPropertyDefinitionIsOptional          uint16 = 0x000c
	PIDPropertyDefinitionLocalIdentification uint16 = 0x000d
	PIDPropertyDefinitionIsUniqueIdentifier  uint16 = 0x000e

	PIDTypeDefinitionEnumerationElementType   uint16 = 0x0014
	PIDTypeDefinitionEnumerationElementNames  uint16 = 0x0015
	PIDTypeDefinitionEnumerationElementValues uint16 = 0x0016

	PIDTypeDefinitionExtendibleEnumerationExtElementNames  uint16 = 0x001f
	PIDTypeDefinitionExtendibleEnumerationExtElementValues uint16 = 0x0020

	PIDTypeDefinitionFixedArrayFixedElementType uint16 = 0x0017
	PIDTypeDefinitionFixedArrayElementCount     uint16 = 0x0018

	PIDTypeDefinitionIntegerSize     uint16 = 0x000f
	PIDTypeDefinitionIntegerIsSigned uint16 = 0x0010

	PIDTypeDefinitionRecordMemberTypes uint16 = 0x001c
	PIDTypeDefinitionRecordMemberNames uint16 = 0x001d

	PIDTypeDefinitionRenameRenamedType uint16 = 0x001e

	PIDTypeDefinitionSetSetElementType uint16 = 0x001b

	PIDTypeDefinitionStringStringElementType uint16 = 0x001a

	PIDTypeDefinitionStrongObjectReferenceStrongReferencedType uint16 = 0x0011

	PIDTypeDefinitionVariableArrayVariableElementType uint16 = 0x0019

	PIDTypeDefinitionWeakObjectReferenceWeakReferencedType uint16 = 0x0012
	PIDTypeDefinitionWeakObjectReferenceTargetSet          uint16 = 0x0013

	PIDMetaDictionaryClassDefinitions uint16 = 0x0003
	PIDMetaDictionaryTypeDefinitions  uint16 = 0x0004

	PIDHTMLClipBeginAnchor uint16 = 0x1401
	PIDHTMLClipEndAnchor   uint16 = 0x1402

	PIDDescriptiveClipDescribedSlotIDs uint16 = 0x6103

	PIDRIFFChunkChunkID     uint16 = 0x4f01
	PIDRIFFChunkChunkLength uint16 = 0x4f02
	PIDRIFFChunkChunkData   uint16 = 0x4f03

	PIDBWFImportDescriptorFileSecurityReport    uint16 = 0x3d15
	PIDBWFImportDescriptorFileSecurityWave      uint16 = 0x3d16
	PIDBWFImportDescriptorBextCodingHistory     uint16 = 0x3d21
	PIDBWFImportDescriptorQltyBasicData         uint16 = 0x3d22
	PIDBWFImportDescriptorQltyStartOfModulation uint16 = 0x3d23
	PIDBWFImportDescriptorQltyQualityEvent      uint16 = 0x3d24
	PIDBWFImportDescriptorQltyEndOfModulation   uint16 = 0x3d25
	PIDBWFImportDescriptorQltyQualityParameter  uint16 = 0x3d26
	PIDBWFImportDescriptorQltyOperatorComment   uint16 = 0x3d27
	PIDBWFImportDescriptorQltyCueSheet          uint16 = 0x3d28
	PIDBWFImportDescriptorUnknownBWFChunks      uint16 = 0x3d33
)
