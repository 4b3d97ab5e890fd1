package essence

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
)

// Type is the container family of an audio essence.
type Type int

const (
	TypeUnknown Type = iota
	TypePCM
	TypeWAVE
	TypeAIFC
)

func (t Type) String() string {
	switch t {
	case TypePCM:
		return "pcm"
	case TypeWAVE:
		return "wave"
	case TypeAIFC:
		return "aifc"
	default:
		return "unknown"
	}
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// AIFC headers are read from at most this many leading bytes.
const aifcHeaderLimit = 1 << 20

// ErrNotAudio reports bytes that are neither a WAVE nor an AIFC header.
var ErrNotAudio = errors.New("not a WAVE or AIFC stream")

// Format describes the sample layout of an audio stream.
type Format struct {
	Type       Type
	Channels   int
	SampleRate int
	SampleSize int
	// SampleCount is per channel; zero when the header omits the data size.
	SampleCount int64
	// DataOffset is the byte offset of the first sample.
	DataOffset int64
}

// Complete reports whether every field needed for extraction is known.
func (f Format) Complete() bool {
	return f.Channels > 0 && f.SampleRate > 0 && f.SampleSize > 0 && f.SampleCount > 0
}

// BlockAlign is the byte size of one frame across all channels.
func (f Format) BlockAlign() int {
	return f.Channels * (f.SampleSize / 8)
}

// Parse detects the container of r and reads its header.
func Parse(r io.ReadSeeker) (Format, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return Format{}, fmt.Errorf("%w: %w", ErrNotAudio, err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return Format{}, err
	}
	switch string(magic[:]) {
	case "RIFF":
		return ParseWAVE(r)
	case "FORM":
		data, err := io.ReadAll(io.LimitReader(r, aifcHeaderLimit))
		if err != nil {
			return Format{}, err
		}
		return ParseAIFC(data)
	default:
		return Format{}, ErrNotAudio
	}
}

// ParseBytes is Parse over an in-memory header such as a descriptor
// Summary.
func ParseBytes(b []byte) (Format, error) {
	return Parse(bytes.NewReader(b))
}

// ParseWAVE reads the fmt and data chunk headers of a RIFF/WAVE stream.
// A summary without a data chunk yields a zero SampleCount.
func ParseWAVE(r io.ReadSeeker) (Format, error) {
	dec := wav.NewDecoder(r)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return Format{}, fmt.Errorf("wave header: %w", err)
	}
	if dec.NumChans == 0 {
		return Format{}, fmt.Errorf("wave header: %w: no fmt chunk", ErrNotAudio)
	}
	f := Format{
		Type:       TypeWAVE,
		Channels:   int(dec.NumChans),
		SampleRate: int(dec.SampleRate),
		SampleSize: int(dec.BitDepth),
	}
	if err := dec.FwdToPCM(); err != nil || dec.PCMChunk == nil {
		return f, nil
	}
	offset, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return f, err
	}
	f.DataOffset = offset
	if align := f.BlockAlign(); align > 0 {
		f.SampleCount = int64(dec.PCMSize) / int64(align)
	}
	return f, nil
}

// ParseAIFC reads the COMM and SSND chunks of a big-endian AIFF/AIFC
// stream.
func ParseAIFC(b []byte) (Format, error) {
	if len(b) < 12 || string(b[0:4]) != "FORM" {
		return Format{}, ErrNotAudio
	}
	kind := string(b[8:12])
	if kind != "AIFC" && kind != "AIFF" {
		return Format{}, fmt.Errorf("%w: form type %q", ErrNotAudio, kind)
	}
	f := Format{Type: TypeAIFC}
	var frames uint32
	seenComm := false
	pos := 12
	for pos+8 <= len(b) {
		id := string(b[pos : pos+4])
		size := int(binary.BigEndian.Uint32(b[pos+4 : pos+8]))
		body := pos + 8
		switch id {
		case "COMM":
			if body+18 > len(b) {
				return f, fmt.Errorf("aifc: truncated COMM chunk")
			}
			f.Channels = int(binary.BigEndian.Uint16(b[body : body+2]))
			frames = binary.BigEndian.Uint32(b[body+2 : body+6])
			f.SampleSize = int(binary.BigEndian.Uint16(b[body+6 : body+8]))
			f.SampleRate = int(extendedToFloat(b[body+8 : body+18]))
			seenComm = true
		case "SSND":
			if body+8 > len(b) {
				f.DataOffset = int64(body)
				break
			}
			offset := int64(binary.BigEndian.Uint32(b[body : body+4]))
			f.DataOffset = int64(body) + 8 + offset
		}
		next := body + size
		if size%2 == 1 {
			next++
		}
		if next <= pos {
			break
		}
		pos = next
	}
	if !seenComm {
		return f, fmt.Errorf("aifc: %w: no COMM chunk", ErrNotAudio)
	}
	f.SampleCount = int64(frames)
	return f, nil
}

// extendedToFloat converts an 80-bit IEEE 754 extended value.
func extendedToFloat(b []byte) float64 {
	exp := int(binary.BigEndian.Uint16(b[0:2]))
	mant := binary.BigEndian.Uint64(b[2:10])
	sign := 1.0
	if exp&0x8000 != 0 {
		sign = -1
		exp &= 0x7fff
	}
	if exp == 0 && mant == 0 {
		return 0
	}
	return sign * float64(mant) * math.Pow(2, float64(exp-16383-63))
}

// Extensions that ParseFile accepts.
var audioExtensions = map[string]bool{
	".wav": true, ".wave": true, ".aif": true, ".aiff": true, ".aifc": true,
}

// IsAudioFile reports whether path carries an extension ParseFile reads.
func IsAudioFile(path string) bool {
	return audioExtensions[strings.ToLower(filepath.Ext(path))]
}

// ParseFile reads the header of an external audio file.
func ParseFile(path string) (Format, error) {
	if !IsAudioFile(path) {
		return Format{}, fmt.Errorf("%s: %w", path, ErrNotAudio)
	}
	fh, err := os.Open(path)
	if err != nil {
		return Format{}, err
	}
	defer fh.Close()
	f, err := Parse(fh)
	if err != nil {
		return Format{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}
