package timeline

import (
	"aafkit/internal/aaf/types"
	"aafkit/internal/cfb"
	"aafkit/internal/essence"
)

// Kind separates audio from video tracks and essences.
type Kind int

const (
	KindAudio Kind = iota
	KindVideo
)

func (k Kind) String() string {
	if k == KindVideo {
		return "video"
	}
	return "audio"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Format is the channel layout of an audio track.
type Format int

const (
	FormatUnset  Format = 0
	FormatMono   Format = 1
	FormatStereo Format = 2
	Format51     Format = 6
	Format71     Format = 8
)

func (f Format) String() string {
	switch f {
	case FormatMono:
		return "mono"
	case FormatStereo:
		return "stereo"
	case Format51:
		return "5.1"
	case Format71:
		return "7.1"
	default:
		return ""
	}
}

func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// formatForChannels maps an AudioChannelCombiner input count to a layout.
func formatForChannels(n int) (Format, bool) {
	switch n {
	case 2:
		return FormatStereo, true
	case 6:
		return Format51, true
	case 8:
		return Format71, true
	default:
		return FormatUnset, false
	}
}

// Interpolation is the curve between control points.
type Interpolation int

const (
	InterpolationNone Interpolation = iota
	InterpolationLinear
	InterpolationLog
	InterpolationConstant
	InterpolationPower
	InterpolationBSpline
)

var interpolationNames = map[Interpolation]string{
	InterpolationNone:     "none",
	InterpolationLinear:   "linear",
	InterpolationLog:      "log",
	InterpolationConstant: "constant",
	InterpolationPower:    "power",
	InterpolationBSpline:  "bspline",
}

func (i Interpolation) String() string {
	return interpolationNames[i]
}

func (i Interpolation) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func interpolationFromDef(id types.AUID) (Interpolation, bool) {
	switch id {
	case types.InterpolationDefNone:
		return InterpolationNone, true
	case types.InterpolationDefLinear:
		return InterpolationLinear, true
	case types.InterpolationDefLog:
		return InterpolationLog, true
	case types.InterpolationDefConstant:
		return InterpolationConstant, true
	case types.InterpolationDefPower:
		return InterpolationPower, true
	case types.InterpolationDefBSpline:
		return InterpolationBSpline, true
	default:
		return InterpolationLinear, false
	}
}

// LevelKind tells a fixed level from an automated one.
type LevelKind int

const (
	LevelConstant LevelKind = iota
	LevelVariable
)

func (k LevelKind) String() string {
	if k == LevelVariable {
		return "variable"
	}
	return "constant"
}

func (k LevelKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Point is one control point; Time is normalized to the component length.
type Point struct {
	Time  types.Rational `json:"time"`
	Value types.Rational `json:"value"`
}

// Level is a gain or pan value, either constant (one point) or automated.
type Level struct {
	Kind          LevelKind     `json:"kind"`
	Interpolation Interpolation `json:"interpolation"`
	Points        []Point       `json:"points"`
}

// Value returns the first point value, which is the whole level when it is
// constant.
func (l *Level) Value() float64 {
	if l == nil || len(l.Points) == 0 {
		return 1
	}
	return l.Points[0].Value.Float64()
}

// FadeKind classifies a Transition by its neighbours.
type FadeKind int

const (
	FadeIn FadeKind = iota + 1
	FadeOut
	CrossFade
)

func (k FadeKind) String() string {
	switch k {
	case FadeIn:
		return "fade_in"
	case FadeOut:
		return "fade_out"
	case CrossFade:
		return "xfade"
	default:
		return ""
	}
}

func (k FadeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Transition overlaps the end of the previous item and the start of the
// next one; it does not add to the track length.
type Transition struct {
	Fade          FadeKind      `json:"fade"`
	Interpolation Interpolation `json:"interpolation"`
	Position      int64         `json:"position"`
	Length        int64         `json:"length"`
	CutPoint      int64         `json:"cut_point"`
	Points        []Point       `json:"points"`
}

// Clip is a placed piece of essence on a track. Positions and lengths are
// in track edit units.
type Clip struct {
	Position      int64       `json:"position"`
	Length        int64       `json:"length"`
	EssenceOffset int64       `json:"essence_offset"`
	Gain          *Level      `json:"gain,omitempty"`
	Automation    *Level      `json:"automation,omitempty"`
	Mute          bool        `json:"mute,omitempty"`
	MasterMobID   types.MobID `json:"master_mob_id"`
	// Essences indexes the model's essence list of the track kind; one
	// entry per channel.
	Essences []int `json:"essences"`
	// Name is the master mob name, used by the vendor passes.
	Name string `json:"name,omitempty"`
}

// Item is either a Clip or a Transition.
type Item struct {
	Clip       *Clip       `json:"clip,omitempty"`
	Transition *Transition `json:"transition,omitempty"`
}

// Track is one audio or video track of the composition.
type Track struct {
	Kind     Kind           `json:"kind"`
	Number   int            `json:"number"`
	Name     string         `json:"name,omitempty"`
	EditRate types.Rational `json:"edit_rate"`
	Format   Format         `json:"format,omitempty"`
	Gain     *Level         `json:"gain,omitempty"`
	Pan      *Level         `json:"pan,omitempty"`
	Items    []Item         `json:"items"`
	// Position is the cursor after the last item.
	Position int64 `json:"position"`
}

// Clips returns the clips of the track in timeline order.
func (t *Track) Clips() []*Clip {
	var out []*Clip
	for _, it := range t.Items {
		if it.Clip != nil {
			out = append(out, it.Clip)
		}
	}
	return out
}

// Transitions returns the transitions of the track in timeline order.
func (t *Track) Transitions() []*Transition {
	var out []*Transition
	for _, it := range t.Items {
		if it.Transition != nil {
			out = append(out, it.Transition)
		}
	}
	return out
}

// Essence is one source file, either embedded in the container or
// external.
type Essence struct {
	Kind       Kind   `json:"kind"`
	Name       string `json:"name"`
	UniqueName string `json:"unique_name"`

	MasterMobID     types.MobID `json:"master_mob_id"`
	MasterMobSlotID uint32      `json:"master_mob_slot_id"`
	SourceMobID     types.MobID `json:"source_mob_id"`
	SourceMobSlotID uint32      `json:"source_mob_slot_id"`

	// OriginalPath is the NetworkLocator URL of external essence.
	OriginalPath string `json:"original_path,omitempty"`
	// UsablePath is the located external file.
	UsablePath string `json:"usable_path,omitempty"`
	Embedded   bool   `json:"embedded"`

	Type       essence.Type `json:"type"`
	Channels   int          `json:"channels,omitempty"`
	SampleRate int          `json:"sample_rate,omitempty"`
	SampleSize int          `json:"sample_size,omitempty"`
	// Length is the descriptor length in samples.
	Length     int64 `json:"length,omitempty"`
	DataOffset int64 `json:"data_offset,omitempty"`

	FrameRate     types.Rational `json:"frame_rate,omitzero"`
	SlotEditRate  types.Rational `json:"slot_edit_rate,omitzero"`
	TimeReference int64          `json:"time_reference,omitempty"`

	OriginationDate string `json:"origination_date,omitempty"`
	OriginationTime string `json:"origination_time,omitempty"`

	Node    *cfb.Node `json:"-"`
	Summary []byte    `json:"-"`
}

// Format returns the audio layout known for the essence.
func (e *Essence) Format() essence.Format {
	return essence.Format{
		Type:        e.Type,
		Channels:    e.Channels,
		SampleRate:  e.SampleRate,
		SampleSize:  e.SampleSize,
		SampleCount: e.Length,
		DataOffset:  e.DataOffset,
	}
}

// Source prepares the essence for extraction.
func (e *Essence) Source(m *Model) essence.Source {
	return essence.Source{
		Name:         e.UniqueName,
		Node:         e.Node,
		Format:       e.Format(),
		Originator:   m.Product,
		Description:  m.Composition,
		CreationDate: e.OriginationDate,
	}
}

// Timecode is the composition start timecode.
type Timecode struct {
	Start    int64          `json:"start"`
	End      int64          `json:"end"`
	FPS      uint16         `json:"fps"`
	Drop     bool           `json:"drop"`
	EditRate types.Rational `json:"edit_rate"`
}

// Marker is a named location, currently written by DaVinci Resolve only.
type Marker struct {
	Start    int64          `json:"start"`
	Length   int64          `json:"length"`
	EditRate types.Rational `json:"edit_rate"`
	Name     string         `json:"name,omitempty"`
	Comment  string         `json:"comment,omitempty"`
	Color    [3]uint16      `json:"color"`
}

// Comment is one CompositionMob user comment.
type Comment struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Model is the interpreted editorial timeline of one file.
type Model struct {
	RunID       string `json:"run_id,omitempty"`
	File        string `json:"file"`
	Product     string `json:"product,omitempty"`
	Vendor      string `json:"vendor"`
	Composition string `json:"composition"`

	// Start and Length are in composition edit units.
	Start    int64          `json:"start"`
	Length   int64          `json:"length"`
	EditRate types.Rational `json:"edit_rate"`
	Timecode Timecode       `json:"timecode"`

	AudioLength   int64          `json:"audio_length"`
	AudioEditRate types.Rational `json:"audio_edit_rate"`
	VideoLength   int64          `json:"video_length"`
	VideoEditRate types.Rational `json:"video_edit_rate"`

	// SampleRate and SampleSize are shared by every audio essence: 0 when
	// there is no audio essence, -1 when two essences disagree.
	SampleRate int `json:"sample_rate"`
	SampleSize int `json:"sample_size"`

	AudioTracks   []*Track   `json:"audio_tracks"`
	VideoTracks   []*Track   `json:"video_tracks"`
	AudioEssences []*Essence `json:"audio_essences"`
	VideoEssences []*Essence `json:"video_essences"`

	Markers        []Marker       `json:"markers,omitempty"`
	MarkerEditRate types.Rational `json:"marker_edit_rate,omitzero"`
	Comments       []Comment      `json:"comments,omitempty"`
}

// Essences returns the essence list for kind.
func (m *Model) Essences(kind Kind) []*Essence {
	if kind == KindVideo {
		return m.VideoEssences
	}
	return m.AudioEssences
}

func (m *Model) allEssences() []*Essence {
	out := make([]*Essence, 0, len(m.AudioEssences)+len(m.VideoEssences))
	out = append(out, m.AudioEssences...)
	return append(out, m.VideoEssences...)
}

// ClipEssences returns the essences a clip of kind points at.
func (m *Model) ClipEssences(kind Kind, c *Clip) []*Essence {
	list := m.Essences(kind)
	out := make([]*Essence, 0, len(c.Essences))
	for _, idx := range c.Essences {
		if idx >= 0 && idx < len(list) {
			out = append(out, list[idx])
		}
	}
	return out
}

// AudioTrack returns the audio track with the given number.
func (m *Model) AudioTrack(number int) (*Track, bool) {
	for _, t := range m.AudioTracks {
		if t.Number == number {
			return t, true
		}
	}
	return nil, false
}

// ClipCount counts the clips of every track.
func (m *Model) ClipCount() int {
	n := 0
	for _, t := range m.AudioTracks {
		n += len(t.Clips())
	}
	for _, t := range m.VideoTracks {
		n += len(t.Clips())
	}
	return n
}
