package types

// Data definitions.
var (
	DataDefPicture             = AUID{0x01030202, 0x0100, 0x0000, smpteLabel}
	DataDefSound               = AUID{0x01030202, 0x0200, 0x0000, smpteLabel}
	DataDefTimecode            = AUID{0x01030201, 0x0100, 0x0000, smpteLabel}
	DataDefEdgecode            = AUID{0x01030201, 0x0200, 0x0000, smpteLabel}
	DataDefDescriptiveMetadata = AUID{0x01030201, 0x1000, 0x0000, smpteLabel}
	DataDefLegacyPicture       = AUID{0x6f3c8ce1, 0x6cef, 0x11d2, [8]byte{0x80, 0x7d, 0x00, 0x60, 0x08, 0x14, 0x3e, 0x6f}}
	DataDefLegacySound         = AUID{0x78e1ebe1, 0x6cef, 0x11d2, [8]byte{0x80, 0x7d, 0x00, 0x60, 0x08, 0x14, 0x3e, 0x6f}}
	DataDefLegacyTimecode      = AUID{0x7f275e81, 0x77e5, 0x11d2, [8]byte{0x80, 0x7f, 0x00, 0x60, 0x08, 0x14, 0x3e, 0x6f}}
)

// IsSound reports whether id is the modern or the legacy sound data definition.
func IsSound(id AUID) bool {
	return id == DataDefSound || id == DataDefLegacySound
}

// IsPicture reports whether id is the modern or the legacy picture data definition.
func IsPicture(id AUID) bool {
	return id == DataDefPicture || id == DataDefLegacyPicture
}

// IsTimecode reports whether id is the modern or the legacy timecode data definition.
func IsTimecode(id AUID) bool {
	return id == DataDefTimecode || id == DataDefLegacyTimecode
}

var avidAudioEffect = [8]byte{0x8a, 0x38, 0x00, 0x50, 0x04, 0x0e, 0xf7, 0xd2}

// Operation definitions.
var (
	OperationDefMonoAudioGain                 = AUID{0x9d2ea893, 0x0968, 0x11d3, avidAudioEffect}
	OperationDefMonoAudioPan                  = AUID{0x9d2ea890, 0x0968, 0x11d3, avidAudioEffect}
	OperationDefStereoAudioGain               = AUID{0x9d2ea894, 0x0968, 0x11d3, avidAudioEffect}
	OperationDefMonoAudioMixdown              = AUID{0x8d896ad0, 0x2261, 0x11d3, [8]byte{0x8a, 0x4c, 0x00, 0x50, 0x04, 0x0e, 0xf7, 0xd2}}
	OperationDefMonoAudioDissolve             = AUID{0x0c3bea44, 0xfc05, 0x11d2, [8]byte{0x8a, 0x29, 0x00, 0x50, 0x04, 0x0e, 0xf7, 0xd2}}
	OperationDefStereoAudioDissolve           = AUID{0x0c3bea43, 0xfc05, 0x11d2, [8]byte{0x8a, 0x29, 0x00, 0x50, 0x04, 0x0e, 0xf7, 0xd2}}
	OperationDefVideoDissolve                 = AUID{0x0c3bea40, 0xfc05, 0x11d2, [8]byte{0x8a, 0x29, 0x00, 0x50, 0x04, 0x0e, 0xf7, 0xd2}}
	OperationDefTwoParameterMonoAudioDissolve = AUID{0x2311bd90, 0xb5da, 0x11d3, [8]byte{0x8a, 0x4a, 0x00, 0x50, 0x04, 0x0e, 0xf7, 0xd2}}
	OperationDefAudioChannelCombiner          = AUID{0x04300201, 0x0000, 0x0000, [8]byte{0x06, 0x0e, 0x2b, 0x34, 0x04, 0x01, 0x01, 0x0a}}
)

var avidParameter = [8]byte{0x8a, 0x4c, 0x00, 0x50, 0x04, 0x0e, 0xf7, 0xd2}

// Parameter definitions.
var (
	ParameterDefAmplitude = AUID{0xe4962320, 0x2267, 0x11d3, avidParameter}
	ParameterDefPan       = AUID{0xe4962322, 0x2267, 0x11d3, avidParameter}
	ParameterDefLevel     = AUID{0xe4962323, 0x2267, 0x11d3, avidParameter}
)

var interpolationLabel = [8]byte{0x80, 0xa9, 0x00, 0x60, 0x08, 0x14, 0x3e, 0x6f}

// Interpolation definitions.
var (
	InterpolationDefNone     = AUID{0x5b6c85a3, 0x0ede, 0x11d3, interpolationLabel}
	InterpolationDefLinear   = AUID{0x5b6c85a4, 0x0ede, 0x11d3, interpolationLabel}
	InterpolationDefConstant = AUID{0x5b6c85a5, 0x0ede, 0x11d3, interpolationLabel}
	InterpolationDefBSpline  = AUID{0x5b6c85a6, 0x0ede, 0x11d3, interpolationLabel}
	InterpolationDefLog      = AUID{0x15829ec3, 0x1f24, 0x458a, [8]byte{0x96, 0x0d, 0xc6, 0x5b, 0xb2, 0x3c, 0x2a, 0xa1}}
	InterpolationDefPower    = AUID{0xc09153f7, 0xbd18, 0x4e5a, [8]byte{0xad, 0x09, 0xcb, 0xdd, 0x65, 0x4f, 0xa0, 0x01}}
)

// Mob usage codes.
var (
	UsageSubClip      = AUID{0x0d010102, 0x0101, 0x0100, smpteLabelV5}
	UsageAdjustedClip = AUID{0x0d010102, 0x0101, 0x0200, smpteLabelV5}
	UsageTopLevel     = AUID{0x0d010102, 0x0101, 0x0300, smpteLabelV5}
	UsageLowerLevel   = AUID{0x0d010102, 0x0101, 0x0400, smpteLabelV5}
	UsageTemplate     = AUID{0x0d010102, 0x0101, 0x0500, smpteLabelV5}
)

// Operational patterns.
var (
	OPEditProtocol  = AUID{0x0d011201, 0x0100, 0x0000, smpteLabelV5}
	OPUnconstrained = AUID{0x0d011201, 0x0200, 0x0000, smpteLabelV5}
)

// Type identifiers carried by indirect values.
var (
	TypeRational = AUID{0x03010100, 0x0000, 0x0000, [8]byte{0x06, 0x0e, 0x2b, 0x34, 0x01, 0x04, 0x01, 0x01}}
	TypeString   = AUID{0x01100200, 0x0000, 0x0000, [8]byte{0x06, 0x0e, 0x2b, 0x34, 0x01, 0x04, 0x01, 0x01}}
	TypeInt32    = AUID{0x01010700, 0x0000, 0x0000, [8]byte{0x06, 0x0e, 0x2b, 0x34, 0x01, 0x04, 0x01, 0x01}}
)

var definitionNames = map[AUID]string{
	DataDefPicture:             "Picture",
	DataDefSound:               "Sound",
	DataDefTimecode:            "Timecode",
	DataDefEdgecode:            "Edgecode",
	DataDefDescriptiveMetadata: "DescriptiveMetadata",
	DataDefLegacyPicture:       "LegacyPicture",
	DataDefLegacySound:         "LegacySound",
	DataDefLegacyTimecode:      "LegacyTimecode",

	OperationDefMonoAudioGain:                 "MonoAudioGain",
	OperationDefMonoAudioPan:                  "MonoAudioPan",
	OperationDefStereoAudioGain:               "StereoAudioGain",
	OperationDefMonoAudioMixdown:              "MonoAudioMixdown",
	OperationDefMonoAudioDissolve:             "MonoAudioDissolve",
	OperationDefStereoAudioDissolve:           "StereoAudioDissolve",
	OperationDefVideoDissolve:                 "VideoDissolve",
	OperationDefTwoParameterMonoAudioDissolve: "TwoParameterMonoAudioDissolve",
	OperationDefAudioChannelCombiner:          "AudioChannelCombiner",

	ParameterDefAmplitude: "Amplitude",
	ParameterDefPan:       "Pan",
	ParameterDefLevel:     "Level",

	InterpolationDefNone:     "None",
	InterpolationDefLinear:   "Linear",
	InterpolationDefConstant: "Constant",
	InterpolationDefBSpline:  "BSpline",
	InterpolationDefLog:      "Log",
	InterpolationDefPower:    "Power",

	UsageSubClip:      "SubClip",
	UsageAdjustedClip: "AdjustedClip",
	UsageTopLevel:     "TopLevel",
	UsageLowerLevel:   "LowerLevel",
	UsageTemplate:     "Template",

	OPEditProtocol:  "EditProtocol",
	OPUnconstrained: "Unconstrained",
}

// DefinitionName returns a short label for a well-known definition, or the
// AUID text when the identifier is not known.
func DefinitionName(id AUID) string {
	if name, ok := definitionNames[id]; ok {
		return name
	}
	return id.String()
}
