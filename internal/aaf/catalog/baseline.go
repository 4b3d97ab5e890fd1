package catalog

import "aafkit/internal/aaf/types"

// baseline mirrors the Edit Protocol object model plus the meta model used to
// describe it. Parents always precede their children.
var baseline = []classSpec{
	{id: types.ClassInterchangeObject, name: "InterchangeObject", parent: types.AUID{}, concrete: false, props: []propSpec{
		{types.PIDInterchangeObjectObjClass, "ObjClass", required},
		{types.PIDInterchangeObjectGeneration, "Generation", optional},
	}},
	{id: types.ClassRoot, name: "Root", parent: types.ClassInterchangeObject, concrete: true, props: []propSpec{
		{types.PIDRootMetaDictionary, "MetaDictionary", required},
		{types.PIDRootHeader, "Header", required},
	}},
	{id: types.ClassHeader, name: "Header", parent: types.ClassInterchangeObject, concrete: true, props: []propSpec{
		{types.PIDHeaderByteOrder, "ByteOrder", required},
		{types.PIDHeaderLastModified, "LastModified", required},
		{types.PIDHeaderContent, "Content", required},
		{types.PIDHeaderDictionary, "Dictionary", required},
		{types.PIDHeaderVersion, "Version", required},
		{types.PIDHeaderIdentificationList, "IdentificationList", required},
		{types.PIDHeaderObjectModelVersion, "ObjectModelVersion", optional},
		{types.PIDHeaderOperationalPattern, "OperationalPattern", optional},
		{types.PIDHeaderEssenceContainers, "EssenceContainers", optional},
		{types.PIDHeaderDescriptiveSchemes, "DescriptiveSchemes", optional},
	}},
	{id: types.ClassIdentification, name: "Identification", parent: types.ClassInterchangeObject, concrete: true, props: []propSpec{
		{types.PIDIdentificationCompanyName, "CompanyName", required},
		{types.PIDIdentificationProductName, "ProductName", required},
		{types.PIDIdentificationProductVersion, "ProductVersion", optional},
		{types.PIDIdentificationProductVersionString, "ProductVersionString", required},
		{types.PIDIdentificationProductID, "ProductID", required},
		{types.PIDIdentificationDate, "Date", required},
		{types.PIDIdentificationToolkitVersion, "ToolkitVersion", optional},
		{types.PIDIdentificationPlatform, "Platform", optional},
		{types.PIDIdentificationGenerationAUID, "GenerationAUID", required},
	}},
	{id: types.ClassDictionary, name: "Dictionary", parent: types.ClassInterchangeObject, concrete: true, props: []propSpec{
		{types.PIDDictionaryOperationDefinitions, "OperationDefinitions", optional},
		{types.PIDDictionaryParameterDefinitions, "ParameterDefinitions", optional},
		{types.PIDDictionaryDataDefinitions, "DataDefinitions", optional},
		{types.PIDDictionaryPluginDefinitions, "PluginDefinitions", optional},
		{types.PIDDictionaryCodecDefinitions, "CodecDefinitions", optional},
		{types.PIDDictionaryContainerDefinitions, "ContainerDefinitions", optional},
		{types.PIDDictionaryInterpolationDefinitions, "InterpolationDefinitions", optional},
		{types.PIDDictionaryKLVDataDefinitions, "KLVDataDefinitions", optional},
		{types.PIDDictionaryTaggedValueDefinitions, "TaggedValueDefinitions", optional},
	}},
	{id: types.ClassContentStorage, name: "ContentStorage", parent: types.ClassInterchangeObject, concrete: true, props: []propSpec{
		{types.PIDContentStorageMobs, "Mobs", required},
		{types.PIDContentStorageEssenceData, "EssenceData", required},
	}},
	{id: types.ClassMob, name: "Mob", parent: types.ClassInterchangeObject, concrete: false, props: []propSpec{
		{types.PIDMobMobID, "MobID", required},
		{types.PIDMobName, "Name", optional},
		{types.PIDMobSlots, "Slots", required},
		{types.PIDMobLastModified, "LastModified", required},
		{types.PIDMobCreationTime, "CreationTime", required},
		{types.PIDMobUserComments, "UserComments", optional},
		{types.PIDMobKLVData, "KLVData", optional},
		{types.PIDMobUsageCode, "UsageCode", optional},
		{types.PIDMobAttributes, "Attributes", optional},
	}},
	{id: types.ClassCompositionMob, name: "CompositionMob", parent: types.ClassMob, concrete: true, props: []propSpec{
		{types.PIDCompositionMobDefaultFadeLength, "DefaultFadeLength", optional},
		{types.PIDCompositionMobDefFadeType, "DefFadeType", optional},
		{types.PIDCompositionMobDefFadeEditUnit, "DefFadeEditUnit", optional},
		{types.PIDCompositionMobRendering, "Rendering", optional},
	}},
	{id: types.ClassMasterMob, name: "MasterMob", parent: types.ClassMob, concrete: true, props: []propSpec{}},
	{id: types.ClassSourceMob, name: "SourceMob", parent: types.ClassMob, concrete: true, props: []propSpec{
		{types.PIDSourceMobEssenceDescription, "EssenceDescription", required},
	}},
	{id: types.ClassMobSlot, name: "MobSlot", parent: types.ClassInterchangeObject, concrete: false, props: []propSpec{
		{types.PIDMobSlotSlotID, "SlotID", required},
		{types.PIDMobSlotSlotName, "SlotName", optional},
		{types.PIDMobSlotSegment, "Segment", required},
		{types.PIDMobSlotPhysicalTrackNumber, "PhysicalTrackNumber", optional},
	}},
	{id: types.ClassTimelineMobSlot, name: "TimelineMobSlot", parent: types.ClassMobSlot, concrete: true, props: []propSpec{
		{types.PIDTimelineMobSlotEditRate, "EditRate", required},
		{types.PIDTimelineMobSlotOrigin, "Origin", required},
		{types.PIDTimelineMobSlotMarkIn, "MarkIn", optional},
		{types.PIDTimelineMobSlotMarkOut, "MarkOut", optional},
		{types.PIDTimelineMobSlotUserPos, "UserPos", optional},
	}},
	{id: types.ClassEventMobSlot, name: "EventMobSlot", parent: types.ClassMobSlot, concrete: true, props: []propSpec{
		{types.PIDEventMobSlotEditRate, "EditRate", required},
		{types.PIDEventMobSlotEventSlotOrigin, "EventSlotOrigin", optional},
	}},
	{id: types.ClassStaticMobSlot, name: "StaticMobSlot", parent: types.ClassMobSlot, concrete: true, props: []propSpec{}},
	{id: types.ClassKLVData, name: "KLVData", parent: types.ClassInterchangeObject, concrete: true, props: []propSpec{
		{types.PIDKLVDataValue, "Value", required},
	}},
	{id: types.ClassTaggedValue, name: "TaggedValue", parent: types.ClassInterchangeObject, concrete: true, props: []propSpec{
		{types.PIDTaggedValueName, "Name", required},
		{types.PIDTaggedValueValue, "Value", required},
	}},
	{id: types.ClassParameter, name: "Parameter", parent: types.ClassInterchangeObject, concrete: false, props: []propSpec{
		{types.PIDParameterDefinition, "Definition", required},
	}},
	{id: types.ClassConstantValue, name: "ConstantValue", parent: types.ClassParameter, concrete: true, props: []propSpec{
		{types.PIDConstantValueValue, "Value", required},
	}},
	{id: types.ClassVaryingValue, name: "VaryingValue", parent: types.ClassParameter, concrete: true, props: []propSpec{
		{types.PIDVaryingValueInterpolation, "Interpolation", required},
		{types.PIDVaryingValuePointList, "PointList", required},
	}},
	{id: types.ClassControlPoint, name: "ControlPoint", parent: types.ClassInterchangeObject, concrete: true, props: []propSpec{
		{types.PIDControlPointValue, "Value", required},
		{types.PIDControlPointTime, "Time", required},
		{types.PIDControlPointEditHint, "EditHint", optional},
	}},
	{id: types.ClassLocator, name: "Locator", parent: types.ClassInterchangeObject, concrete: false, props: []propSpec{}},
	{id: types.ClassNetworkLocator, name: "NetworkLocator", parent: types.ClassLocator, concrete: true, props: []propSpec{
		{types.PIDNetworkLocatorURLString, "URLString", required},
	}},
	{id: types.ClassTextLocator, name: "TextLocator", parent: types.ClassLocator, concrete: true, props: []propSpec{
		{types.PIDTextLocatorName, "Name", required},
	}},
	{id: types.ClassComponent, name: "Component", parent: types.ClassInterchangeObject, concrete: false, props: []propSpec{
		{types.PIDComponentDataDefinition, "DataDefinition", required},
		{types.PIDComponentLength, "Length", optional},
		{types.PIDComponentKLVData, "KLVData", optional},
		{types.PIDComponentUserComments, "UserComments", optional},
		{types.PIDComponentAttributes, "Attributes", optional},
	}},
	{id: types.ClassTransition, name: "Transition", parent: types.ClassComponent, concrete: true, props: []propSpec{
		{types.PIDTransitionOperationGroup, "OperationGroup", required},
		{types.PIDTransitionCutPoint, "CutPoint", required},
	}},
	{id: types.ClassSegment, name: "Segment", parent: types.ClassComponent, concrete: false, props: []propSpec{}},
	{id: types.ClassSequence, name: "Sequence", parent: types.ClassSegment, concrete: true, props: []propSpec{
		{types.PIDSequenceComponents, "Components", required},
	}},
	{id: types.ClassFiller, name: "Filler", parent: types.ClassSegment, concrete: true, props: []propSpec{}},
	{id: types.ClassSourceReference, name: "SourceReference", parent: types.ClassSegment, concrete: false, props: []propSpec{
		{types.PIDSourceReferenceSourceID, "SourceID", optional},
		{types.PIDSourceReferenceSourceMobSlotID, "SourceMobSlotID", required},
		{types.PIDSourceReferenceChannelIDs, "ChannelIDs", optional},
		{types.PIDSourceReferenceMonoSourceSlotIDs, "MonoSourceSlotIDs", optional},
	}},
	{id: types.ClassSourceClip, name: "SourceClip", parent: types.ClassSourceReference, concrete: true, props: []propSpec{
		{types.PIDSourceClipStartTime, "StartTime", optional},
		{types.PIDSourceClipFadeInLength, "FadeInLength", optional},
		{types.PIDSourceClipFadeInType, "FadeInType", optional},
		{types.PIDSourceClipFadeOutLength, "FadeOutLength", optional},
		{types.PIDSourceClipFadeOutType, "FadeOutType", optional},
	}},
	{id: types.ClassEvent, name: "Event", parent: types.ClassSegment, concrete: false, props: []propSpec{
		{types.PIDEventPosition, "Position", required},
		{types.PIDEventComment, "Comment", optional},
	}},
	{id: types.ClassCommentMarker, name: "CommentMarker", parent: types.ClassEvent, concrete: true, props: []propSpec{
		{types.PIDCommentMarkerAnnotation, "Annotation", optional},
	}},
	{id: types.ClassDescriptiveMarker, name: "DescriptiveMarker", parent: types.ClassCommentMarker, concrete: true, props: []propSpec{
		{types.PIDDescriptiveMarkerDescribedSlots, "DescribedSlots", optional},
		{types.PIDDescriptiveMarkerDescription, "Description", optional},
	}},
	{id: types.ClassGPITrigger, name: "GPITrigger", parent: types.ClassEvent, concrete: true, props: []propSpec{
		{types.PIDGPITriggerActiveState, "ActiveState", required},
	}},
	{id: types.ClassTimecode, name: "Timecode", parent: types.ClassSegment, concrete: true, props: []propSpec{
		{types.PIDTimecodeStart, "Start", required},
		{types.PIDTimecodeFPS, "FPS", required},
		{types.PIDTimecodeDrop, "Drop", required},
	}},
	{id: types.ClassTimecodeStream, name: "TimecodeStream", parent: types.ClassSegment, concrete: false, props: []propSpec{
		{types.PIDTimecodeStreamSampleRate, "SampleRate", required},
		{types.PIDTimecodeStreamSource, "Source", required},
		{types.PIDTimecodeStreamSourceType, "SourceType", required},
	}},
	{id: types.ClassTimecodeStream12M, name: "TimecodeStream12M", parent: types.ClassTimecodeStream, concrete: true, props: []propSpec{
		{types.PIDTimecodeStream12MIncludeSync, "IncludeSync", optional},
	}},
	{id: types.ClassEdgeCode, name: "EdgeCode", parent: types.ClassSegment, concrete: true, props: []propSpec{
		{types.PIDEdgeCodeStart, "Start", required},
		{types.PIDEdgeCodeFilmKind, "FilmKind", required},
		{types.PIDEdgeCodeCodeFormat, "CodeFormat", required},
		{types.PIDEdgeCodeHeader, "Header", optional},
	}},
	{id: types.ClassPulldown, name: "Pulldown", parent: types.ClassSegment, concrete: true, props: []propSpec{
		{types.PIDPulldownInputSegment, "InputSegment", required},
		{types.PIDPulldownPulldownKind, "PulldownKind", required},
		{types.PIDPulldownPulldownDirection, "PulldownDirection", required},
		{types.PIDPulldownPhaseFrame, "PhaseFrame", required},
	}},
	{id: types.ClassOperationGroup, name: "OperationGroup", parent: types.ClassSegment, concrete: true, props: []propSpec{
		{types.PIDOperationGroupOperation, "Operation", required},
		{types.PIDOperationGroupInputSegments, "InputSegments", optional},
		{types.PIDOperationGroupParameters, "Parameters", optional},
		{types.PIDOperationGroupBypassOverride, "BypassOverride", optional},
		{types.PIDOperationGroupRendering, "Rendering", optional},
	}},
	{id: types.ClassNestedScope, name: "NestedScope", parent: types.ClassSegment, concrete: true, props: []propSpec{
		{types.PIDNestedScopeSlots, "Slots", required},
	}},
	{id: types.ClassScopeReference, name: "ScopeReference", parent: types.ClassSegment, concrete: true, props: []propSpec{
		{types.PIDScopeReferenceRelativeScope, "RelativeScope", required},
		{types.PIDScopeReferenceRelativeSlot, "RelativeSlot", required},
	}},
	{id: types.ClassSelector, name: "Selector", parent: types.ClassSegment, concrete: true, props: []propSpec{
		{types.PIDSelectorSelected, "Selected", required},
		{types.PIDSelectorAlternates, "Alternates", optional},
	}},
	{id: types.ClassEssenceGroup, name: "EssenceGroup", parent: types.ClassSegment, concrete: true, props: []propSpec{
		{types.PIDEssenceGroupChoices, "Choices", required},
		{types.PIDEssenceGroupStillFrame, "StillFrame", optional},
	}},
	{id: types.ClassDescriptiveFramework, name: "DescriptiveFramework", parent: types.ClassInterchangeObject, concrete: false, props: []propSpec{}},
	{id: types.ClassEssenceDescriptor, name: "EssenceDescriptor", parent: types.ClassInterchangeObject, concrete: false, props: []propSpec{
		{types.PIDEssenceDescriptorLocator, "Locator", optional},
	}},
	{id: types.ClassFileDescriptor, name: "FileDescriptor", parent: types.ClassEssenceDescriptor, concrete: false, props: []propSpec{
		{types.PIDFileDescriptorSampleRate, "SampleRate", required},
		{types.PIDFileDescriptorLength, "Length", required},
		{types.PIDFileDescriptorContainerFormat, "ContainerFormat", optional},
		{types.PIDFileDescriptorCodecDefinition, "CodecDefinition", optional},
		{types.PIDFileDescriptorLinkedSlotID, "LinkedSlotID", optional},
	}},
	{id: types.ClassDigitalImageDescriptor, name: "DigitalImageDescriptor", parent: types.ClassFileDescriptor, concrete: false, props: []propSpec{
		{types.PIDDigitalImageDescriptorCompression, "Compression", optional},
		{types.PIDDigitalImageDescriptorStoredHeight, "StoredHeight", required},
		{types.PIDDigitalImageDescriptorStoredWidth, "StoredWidth", required},
		{types.PIDDigitalImageDescriptorSampledHeight, "SampledHeight", optional},
		{types.PIDDigitalImageDescriptorSampledWidth, "SampledWidth", optional},
		{types.PIDDigitalImageDescriptorSampledXOffset, "SampledXOffset", optional},
		{types.PIDDigitalImageDescriptorSampledYOffset, "SampledYOffset", optional},
		{types.PIDDigitalImageDescriptorDisplayHeight, "DisplayHeight", optional},
		{types.PIDDigitalImageDescriptorDisplayWidth, "DisplayWidth", optional},
		{types.PIDDigitalImageDescriptorDisplayXOffset, "DisplayXOffset", optional},
		{types.PIDDigitalImageDescriptorDisplayYOffset, "DisplayYOffset", optional},
		{types.PIDDigitalImageDescriptorFrameLayout, "FrameLayout", required},
		{types.PIDDigitalImageDescriptorVideoLineMap, "VideoLineMap", required},
		{types.PIDDigitalImageDescriptorImageAspectRatio, "ImageAspectRatio", required},
		{types.PIDDigitalImageDescriptorAlphaTransparency, "AlphaTransparency", optional},
		{types.PIDDigitalImageDescriptorTransferCharacteristic, "TransferCharacteristic", optional},
		{types.PIDDigitalImageDescriptorImageAlignmentFactor, "ImageAlignmentFactor", optional},
		{types.PIDDigitalImageDescriptorFieldDominance, "FieldDominance", optional},
		{types.PIDDigitalImageDescriptorFieldStartOffset, "FieldStartOffset", optional},
		{types.PIDDigitalImageDescriptorFieldEndOffset, "FieldEndOffset", optional},
		{types.PIDDigitalImageDescriptorColorPrimaries, "ColorPrimaries", optional},
		{types.PIDDigitalImageDescriptorCodingEquations, "CodingEquations", optional},
	}},
	{id: types.ClassCDCIDescriptor, name: "CDCIDescriptor", parent: types.ClassDigitalImageDescriptor, concrete: true, props: []propSpec{
		{types.PIDCDCIDescriptorComponentWidth, "ComponentWidth", required},
		{types.PIDCDCIDescriptorHorizontalSubsampling, "HorizontalSubsampling", required},
		{types.PIDCDCIDescriptorColorSiting, "ColorSiting", optional},
		{types.PIDCDCIDescriptorBlackReferenceLevel, "BlackReferenceLevel", optional},
		{types.PIDCDCIDescriptorWhiteReferenceLevel, "WhiteReferenceLevel", optional},
		{types.PIDCDCIDescriptorColorRange, "ColorRange", optional},
		{types.PIDCDCIDescriptorPaddingBits, "PaddingBits", optional},
		{types.PIDCDCIDescriptorVerticalSubsampling, "VerticalSubsampling", optional},
		{types.PIDCDCIDescriptorAlphaSamplingWidth, "AlphaSamplingWidth", optional},
		{types.PIDCDCIDescriptorReversedByteOrder, "ReversedByteOrder", optional},
	}},
	{id: types.ClassRGBADescriptor, name: "RGBADescriptor", parent: types.ClassDigitalImageDescriptor, concrete: true, props: []propSpec{
		{types.PIDRGBADescriptorPixelLayout, "PixelLayout", required},
		{types.PIDRGBADescriptorPalette, "Palette", optional},
		{types.PIDRGBADescriptorPaletteLayout, "PaletteLayout", optional},
		{types.PIDRGBADescriptorComponentMaxRef, "ComponentMaxRef", optional},
		{types.PIDRGBADescriptorComponentMinRef, "ComponentMinRef", optional},
		{types.PIDRGBADescriptorAlphaMaxRef, "AlphaMaxRef", optional},
		{types.PIDRGBADescriptorAlphaMinRef, "AlphaMinRef", optional},
	}},
	{id: types.ClassTapeDescriptor, name: "TapeDescriptor", parent: types.ClassEssenceDescriptor, concrete: true, props: []propSpec{
		{types.PIDTapeDescriptorFormFactor, "FormFactor", optional},
		{types.PIDTapeDescriptorVideoSignal, "VideoSignal", optional},
		{types.PIDTapeDescriptorTapeFormat, "TapeFormat", optional},
		{types.PIDTapeDescriptorLength, "Length", optional},
		{types.PIDTapeDescriptorManufacturerID, "ManufacturerID", optional},
		{types.PIDTapeDescriptorModel, "Model", optional},
		{types.PIDTapeDescriptorTapeBatchNumber, "TapeBatchNumber", optional},
		{types.PIDTapeDescriptorTapeStock, "TapeStock", optional},
	}},
	{id: types.ClassFilmDescriptor, name: "FilmDescriptor", parent: types.ClassEssenceDescriptor, concrete: true, props: []propSpec{
		{types.PIDFilmDescriptorFilmFormat, "FilmFormat", optional},
		{types.PIDFilmDescriptorFrameRate, "FrameRate", optional},
		{types.PIDFilmDescriptorPerforationsPerFrame, "PerforationsPerFrame", optional},
		{types.PIDFilmDescriptorFilmAspectRatio, "FilmAspectRatio", optional},
		{types.PIDFilmDescriptorManufacturer, "Manufacturer", optional},
		{types.PIDFilmDescriptorModel, "Model", optional},
		{types.PIDFilmDescriptorFilmGaugeFormat, "FilmGaugeFormat", optional},
		{types.PIDFilmDescriptorFilmBatchNumber, "FilmBatchNumber", optional},
	}},
	{id: types.ClassWAVEDescriptor, name: "WAVEDescriptor", parent: types.ClassFileDescriptor, concrete: true, props: []propSpec{
		{types.PIDWAVEDescriptorSummary, "Summary", required},
	}},
	{id: types.ClassAIFCDescriptor, name: "AIFCDescriptor", parent: types.ClassFileDescriptor, concrete: true, props: []propSpec{
		{types.PIDAIFCDescriptorSummary, "Summary", required},
	}},
	{id: types.ClassTIFFDescriptor, name: "TIFFDescriptor", parent: types.ClassFileDescriptor, concrete: true, props: []propSpec{
		{types.PIDTIFFDescriptorIsUniform, "IsUniform", required},
		{types.PIDTIFFDescriptorIsContiguous, "IsContiguous", required},
		{types.PIDTIFFDescriptorLeadingLines, "LeadingLines", optional},
		{types.PIDTIFFDescriptorTrailingLines, "TrailingLines", optional},
		{types.PIDTIFFDescriptorJPEGTableID, "JPEGTableID", optional},
		{types.PIDTIFFDescriptorSummary, "Summary", required},
	}},
	{id: types.ClassSoundDescriptor, name: "SoundDescriptor", parent: types.ClassFileDescriptor, concrete: true, props: []propSpec{
		{types.PIDSoundDescriptorQuantizationBits, "QuantizationBits", required},
		{types.PIDSoundDescriptorLocked, "Locked", optional},
		{types.PIDSoundDescriptorAudioSamplingRate, "AudioSamplingRate", required},
		{types.PIDSoundDescriptorAudioRefLevel, "AudioRefLevel", optional},
		{types.PIDSoundDescriptorElectroSpatial, "ElectroSpatial", optional},
		{types.PIDSoundDescriptorCompression, "Compression", optional},
		{types.PIDSoundDescriptorChannels, "Channels", required},
		{types.PIDSoundDescriptorDialNorm, "DialNorm", optional},
	}},
	{id: types.ClassPCMDescriptor, name: "PCMDescriptor", parent: types.ClassSoundDescriptor, concrete: true, props: []propSpec{
		{types.PIDPCMDescriptorAverageBPS, "AverageBPS", required},
		{types.PIDPCMDescriptorBlockAlign, "BlockAlign", required},
		{types.PIDPCMDescriptorSequenceOffset, "SequenceOffset", optional},
		{types.PIDPCMDescriptorPeakEnvelopeVersion, "PeakEnvelopeVersion", optional},
		{types.PIDPCMDescriptorPeakEnvelopeFormat, "PeakEnvelopeFormat", optional},
		{types.PIDPCMDescriptorPointsPerPeakValue, "PointsPerPeakValue", optional},
		{types.PIDPCMDescriptorPeakEnvelopeBlockSize, "PeakEnvelopeBlockSize", optional},
		{types.PIDPCMDescriptorPeakChannels, "PeakChannels", optional},
		{types.PIDPCMDescriptorPeakFrames, "PeakFrames", optional},
		{types.PIDPCMDescriptorPeakOfPeaksPosition, "PeakOfPeaksPosition", optional},
		{types.PIDPCMDescriptorPeakEnvelopeTimestamp, "PeakEnvelopeTimestamp", optional},
		{types.PIDPCMDescriptorPeakEnvelopeData, "PeakEnvelopeData", optional},
		{types.PIDPCMDescriptorChannelAssignment, "ChannelAssignment", optional},
	}},
	{id: types.ClassAES3PCMDescriptor, name: "AES3PCMDescriptor", parent: types.ClassPCMDescriptor, concrete: true, props: []propSpec{
		{types.PIDAES3PCMDescriptorEmphasis, "Emphasis", optional},
		{types.PIDAES3PCMDescriptorBlockStartOffset, "BlockStartOffset", optional},
		{types.PIDAES3PCMDescriptorAuxBitsMode, "AuxBitsMode", optional},
		{types.PIDAES3PCMDescriptorChannelStatusMode, "ChannelStatusMode", optional},
		{types.PIDAES3PCMDescriptorFixedChannelStatusData, "FixedChannelStatusData", optional},
		{types.PIDAES3PCMDescriptorUserDataMode, "UserDataMode", optional},
		{types.PIDAES3PCMDescriptorFixedUserData, "FixedUserData", optional},
	}},
	{id: types.ClassMultipleDescriptor, name: "MultipleDescriptor", parent: types.ClassFileDescriptor, concrete: true, props: []propSpec{
		{types.PIDMultipleDescriptorFileDescriptors, "FileDescriptors", required},
	}},
	{id: types.ClassDataEssenceDescriptor, name: "DataEssenceDescriptor", parent: types.ClassFileDescriptor, concrete: true, props: []propSpec{
		{types.PIDDataEssenceDescriptorDataEssenceCoding, "DataEssenceCoding", optional},
	}},
	{id: types.ClassPhysicalDescriptor, name: "PhysicalDescriptor", parent: types.ClassEssenceDescriptor, concrete: false, props: []propSpec{}},
	{id: types.ClassImportDescriptor, name: "ImportDescriptor", parent: types.ClassPhysicalDescriptor, concrete: true, props: []propSpec{}},
	{id: types.ClassRecordingDescriptor, name: "RecordingDescriptor", parent: types.ClassPhysicalDescriptor, concrete: true, props: []propSpec{}},
	{id: types.ClassAuxiliaryDescriptor, name: "AuxiliaryDescriptor", parent: types.ClassPhysicalDescriptor, concrete: true, props: []propSpec{
		{types.PIDAuxiliaryDescriptorMimeType, "MimeType", required},
		{types.PIDAuxiliaryDescriptorCharSet, "CharSet", optional},
	}},
	{id: types.ClassDefinitionObject, name: "DefinitionObject", parent: types.ClassInterchangeObject, concrete: false, props: []propSpec{
		{types.PIDDefinitionObjectIdentification, "Identification", required},
		{types.PIDDefinitionObjectName, "Name", required},
		{types.PIDDefinitionObjectDescription, "Description", optional},
	}},
	{id: types.ClassDataDefinition, name: "DataDefinition", parent: types.ClassDefinitionObject, concrete: true, props: []propSpec{}},
	{id: types.ClassContainerDefinition, name: "ContainerDefinition", parent: types.ClassDefinitionObject, concrete: true, props: []propSpec{
		{types.PIDContainerDefinitionEssenceIsIdentified, "EssenceIsIdentified", optional},
	}},
	{id: types.ClassOperationDefinition, name: "OperationDefinition", parent: types.ClassDefinitionObject, concrete: true, props: []propSpec{
		{types.PIDOperationDefinitionDataDefinition, "DataDefinition", required},
		{types.PIDOperationDefinitionIsTimeWarp, "IsTimeWarp", optional},
		{types.PIDOperationDefinitionDegradeTo, "DegradeTo", optional},
		{types.PIDOperationDefinitionOperationCategory, "OperationCategory", optional},
		{types.PIDOperationDefinitionNumberInputs, "NumberInputs", required},
		{types.PIDOperationDefinitionBypass, "Bypass", optional},
		{types.PIDOperationDefinitionParametersDefined, "ParametersDefined", optional},
	}},
	{id: types.ClassParameterDefinition, name: "ParameterDefinition", parent: types.ClassDefinitionObject, concrete: true, props: []propSpec{
		{types.PIDParameterDefinitionType, "Type", required},
		{types.PIDParameterDefinitionDisplayUnits, "DisplayUnits", optional},
	}},
	{id: types.ClassInterpolationDefinition, name: "InterpolationDefinition", parent: types.ClassDefinitionObject, concrete: true, props: []propSpec{}},
	{id: types.ClassCodecDefinition, name: "CodecDefinition", parent: types.ClassDefinitionObject, concrete: true, props: []propSpec{
		{types.PIDCodecDefinitionFileDescriptorClass, "FileDescriptorClass", required},
		{types.PIDCodecDefinitionDataDefinitions, "DataDefinitions", required},
	}},
	{id: types.ClassPluginDefinition, name: "PluginDefinition", parent: types.ClassDefinitionObject, concrete: true, props: []propSpec{
		{types.PIDPluginDefinitionPluginCategory, "PluginCategory", required},
		{types.PIDPluginDefinitionVersionNumber, "VersionNumber", required},
		{types.PIDPluginDefinitionVersionString, "VersionString", optional},
		{types.PIDPluginDefinitionManufacturer, "Manufacturer", optional},
		{types.PIDPluginDefinitionManufacturerInfo, "ManufacturerInfo", optional},
		{types.PIDPluginDefinitionManufacturerID, "ManufacturerID", optional},
		{types.PIDPluginDefinitionPlatform, "Platform", optional},
		{types.PIDPluginDefinitionMinPlatformVersion, "MinPlatformVersion", optional},
		{types.PIDPluginDefinitionMaxPlatformVersion, "MaxPlatformVersion", optional},
		{types.PIDPluginDefinitionEngine, "Engine", optional},
		{types.PIDPluginDefinitionMinEngineVersion, "MinEngineVersion", optional},
		{types.PIDPluginDefinitionMaxEngineVersion, "MaxEngineVersion", optional},
		{types.PIDPluginDefinitionPluginAPI, "PluginAPI", optional},
		{types.PIDPluginDefinitionMinPluginAPI, "MinPluginAPI", optional},
		{types.PIDPluginDefinitionMaxPluginAPI, "MaxPluginAPI", optional},
		{types.PIDPluginDefinitionSoftwareOnly, "SoftwareOnly", optional},
		{types.PIDPluginDefinitionAccelerator, "Accelerator", optional},
		{types.PIDPluginDefinitionLocators, "Locators", optional},
		{types.PIDPluginDefinitionAuthentication, "Authentication", optional},
		{types.PIDPluginDefinitionDefinitionObject, "DefinitionObject", optional},
	}},
	{id: types.ClassTaggedValueDefinition, name: "TaggedValueDefinition", parent: types.ClassDefinitionObject, concrete: true, props: []propSpec{}},
	{id: types.ClassKLVDataDefinition, name: "KLVDataDefinition", parent: types.ClassDefinitionObject, concrete: true, props: []propSpec{
		{types.PIDKLVDataDefinitionKLVDataType, "KLVDataType", optional},
	}},
	{id: types.ClassEssenceData, name: "EssenceData", parent: types.ClassInterchangeObject, concrete: true, props: []propSpec{
		{types.PIDEssenceDataMobID, "MobID", required},
		{types.PIDEssenceDataData, "Data", required},
		{types.PIDEssenceDataSampleIndex, "SampleIndex", optional},
	}},
	{id: types.ClassMetaDefinition, name: "MetaDefinition", parent: types.AUID{}, concrete: false, props: []propSpec{
		{types.PIDMetaDefinitionIdentification, "Identification", required},
		{types.PIDMetaDefinitionName, "Name", required},
		{types.PIDMetaDefinitionDescription, "Description", optional},
	}},
	{id: types.ClassClassDefinition, name: "ClassDefinition", parent: types.ClassMetaDefinition, concrete: true, props: []propSpec{
		{types.PIDClassDefinitionParentClass, "ParentClass", required},
		{types.PIDClassDefinitionProperties, "Properties", optional},
		{types.PIDClassDefinitionIsConcrete, "IsConcrete", required},
	}},
	{id: types.ClassPropertyDefinition, name: "PropertyDefinition", parent: types.ClassMetaDefinition, concrete: true, props: []propSpec{
		{types.PIDPropertyDefinitionType, "Type", required},
		{types.PIDPropertyDefinitionIsOptional, "IsOptional", required},
		{types.PIDPropertyDefinitionLocalIdentification, "LocalIdentification", required},
		{types.PIDPropertyDefinitionIsUniqueIdentifier, "IsUniqueIdentifier", optional},
	}},
	{id: types.ClassTypeDefinition, name: "TypeDefinition", parent: types.ClassMetaDefinition, concrete: false, props: []propSpec{}},
	{id: types.ClassTypeDefinitionCharacter, name: "TypeDefinitionCharacter", parent: types.ClassTypeDefinition, concrete: true, props: []propSpec{}},
	{id: types.ClassTypeDefinitionEnumeration, name: "TypeDefinitionEnumeration", parent: types.ClassTypeDefinition, concrete: true, props: []propSpec{
		{types.PIDTypeDefinitionEnumerationElementType, "ElementType", required},
		{types.PIDTypeDefinitionEnumerationElementNames, "ElementNames", required},
		{types.PIDTypeDefinitionEnumerationElementValues, "ElementValues", required},
	}},
	{id: types.ClassTypeDefinitionExtendibleEnumeration, name: "TypeDefinitionExtendibleEnumeration", parent: types.ClassTypeDefinition, concrete: true, props: []propSpec{
		{types.PIDTypeDefinitionExtendibleEnumerationExtElementNames, "ExtElementNames", required},
		{types.PIDTypeDefinitionExtendibleEnumerationExtElementValues, "ExtElementValues", required},
	}},
	{id: types.ClassTypeDefinitionFixedArray, name: "TypeDefinitionFixedArray", parent: types.ClassTypeDefinition, concrete: true, props: []propSpec{
		{types.PIDTypeDefinitionFixedArrayFixedElementType, "FixedElementType", required},
		{types.PIDTypeDefinitionFixedArrayElementCount, "ElementCount", required},
	}},
	{id: types.ClassTypeDefinitionIndirect, name: "TypeDefinitionIndirect", parent: types.ClassTypeDefinition, concrete: true, props: []propSpec{}},
	{id: types.ClassTypeDefinitionInteger, name: "TypeDefinitionInteger", parent: types.ClassTypeDefinition, concrete: true, props: []propSpec{
		{types.PIDTypeDefinitionIntegerSize, "Size", required},
		{types.PIDTypeDefinitionIntegerIsSigned, "IsSigned", required},
	}},
	{id: types.ClassTypeDefinitionOpaque, name: "TypeDefinitionOpaque", parent: types.ClassTypeDefinitionIndirect, concrete: true, props: []propSpec{}},
	{id: types.ClassTypeDefinitionRecord, name: "TypeDefinitionRecord", parent: types.ClassTypeDefinition, concrete: true, props: []propSpec{
		{types.PIDTypeDefinitionRecordMemberTypes, "MemberTypes", required},
		{types.PIDTypeDefinitionRecordMemberNames, "MemberNames", required},
	}},
	{id: types.ClassTypeDefinitionRename, name: "TypeDefinitionRename", parent: types.ClassTypeDefinition, concrete: true, props: []propSpec{
		{types.PIDTypeDefinitionRenameRenamedType, "RenamedType", required},
	}},
	{id: types.ClassTypeDefinitionSet, name: "TypeDefinitionSet", parent: types.ClassTypeDefinition, concrete: true, props: []propSpec{
		{types.PIDTypeDefinitionSetSetElementType, "SetElementType", required},
	}},
	{id: types.ClassTypeDefinitionStream, name: "TypeDefinitionStream", parent: types.ClassTypeDefinition, concrete: true, props: []propSpec{}},
	{id: types.ClassTypeDefinitionString, name: "TypeDefinitionString", parent: types.ClassTypeDefinition, concrete: true, props: []propSpec{
		{types.PIDTypeDefinitionStringStringElementType, "StringElementType", required},
	}},
	{id: types.ClassTypeDefinitionStrongObjectReference, name: "TypeDefinitionStrongObjectReference", parent: types.ClassTypeDefinition, concrete: true, props: []propSpec{
		{types.PIDTypeDefinitionStrongObjectReferenceStrongReferencedType, "StrongReferencedType", required},
	}},
	{id: types.ClassTypeDefinitionVariableArray, name: "TypeDefinitionVariableArray", parent: types.ClassTypeDefinition, concrete: true, props: []propSpec{
		{types.PIDTypeDefinitionVariableArrayVariableElementType, "VariableElementType", required},
	}},
	{id: types.ClassTypeDefinitionWeakObjectReference, name: "TypeDefinitionWeakObjectReference", parent: types.ClassTypeDefinition, concrete: true, props: []propSpec{
		{types.PIDTypeDefinitionWeakObjectReferenceWeakReferencedType, "WeakReferencedType", required},
		{types.PIDTypeDefinitionWeakObjectReferenceTargetSet, "TargetSet", required},
	}},
	{id: types.ClassMetaDictionary, name: "MetaDictionary", parent: types.AUID{}, concrete: true, props: []propSpec{
		{types.PIDMetaDictionaryClassDefinitions, "ClassDefinitions", optional},
		{types.PIDMetaDictionaryTypeDefinitions, "TypeDefinitions", optional},
	}},
	{id: types.ClassTextClip, name: "TextClip", parent: types.ClassSourceReference, concrete: false, props: []propSpec{}},
	{id: types.ClassHTMLClip, name: "HTMLClip", parent: types.ClassTextClip, concrete: true, props: []propSpec{
		{types.PIDHTMLClipBeginAnchor, "BeginAnchor", optional},
		{types.PIDHTMLClipEndAnchor, "EndAnchor", optional},
	}},
	{id: types.ClassDescriptiveClip, name: "DescriptiveClip", parent: types.ClassSourceClip, concrete: true, props: []propSpec{
		{types.PIDDescriptiveClipDescribedSlotIDs, "DescribedSlotIDs", optional},
	}},
	{id: types.ClassHTMLDescriptor, name: "HTMLDescriptor", parent: types.ClassFileDescriptor, concrete: true, props: []propSpec{}},
	{id: types.ClassMPEGVideoDescriptor, name: "MPEGVideoDescriptor", parent: types.ClassCDCIDescriptor, concrete: true, props: []propSpec{}},
	{id: types.ClassRIFFChunk, name: "RIFFChunk", parent: types.ClassInterchangeObject, concrete: true, props: []propSpec{
		{types.PIDRIFFChunkChunkID, "ChunkID", required},
		{types.PIDRIFFChunkChunkLength, "ChunkLength", required},
		{types.PIDRIFFChunkChunkData, "ChunkData", required},
	}},
	{id: types.ClassBWFImportDescriptor, name: "BWFImportDescriptor", parent: types.ClassImportDescriptor, concrete: true, props: []propSpec{
		{types.PIDBWFImportDescriptorFileSecurityReport, "FileSecurityReport", optional},
		{types.PIDBWFImportDescriptorFileSecurityWave, "FileSecurityWave", optional},
		{types.PIDBWFImportDescriptorBextCodingHistory, "BextCodingHistory", optional},
		{types.PIDBWFImportDescriptorQltyBasicData, "QltyBasicData", optional},
		{types.PIDBWFImportDescriptorQltyStartOfModulation, "QltyStartOfModulation", optional},
		{types.PIDBWFImportDescriptorQltyQualityEvent, "QltyQualityEvent", optional},
		{types.PIDBWFImportDescriptorQltyEndOfModulation, "QltyEndOfModulation", optional},
		{types.PIDBWFImportDescriptorQltyQualityParameter, "QltyQualityParameter", optional},
		{types.PIDBWFImportDescriptorQltyOperatorComment, "QltyOperatorComment", optional},
		{types.PIDBWFImportDescriptorQltyCueSheet, "QltyCueSheet", optional},
		{types.PIDBWFImportDescriptorUnknownBWFChunks, "UnknownBWFChunks", optional},
	}},
}
