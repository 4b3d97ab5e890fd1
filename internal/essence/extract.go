package essence

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"aafkit/internal/cfb"
	"aafkit/internal/fileutil"
	"aafkit/internal/textutil"
)

// wavPCM is the WAVE format tag for integer PCM.
const wavPCM = 1

// Frames converted per encoder write.
const extractBlockFrames = 4096

// ErrNotEmbedded reports an extraction request for external essence.
var ErrNotEmbedded = errors.New("essence is not embedded")

// Source is an embedded audio stream ready for extraction.
type Source struct {
	// Name is the file name stem, usually the unique essence name.
	Name   string
	Node   *cfb.Node
	Format Format

	Originator   string
	Description  string
	CreationDate string
}

func (s Source) metadata() *wav.Metadata {
	if s.Originator == "" && s.Description == "" && s.CreationDate == "" {
		return nil
	}
	return &wav.Metadata{
		Title:        s.Name,
		Software:     s.Originator,
		Comments:     strings.ReplaceAll(s.Description, "\n", " "),
		CreationDate: s.CreationDate,
	}
}

// ExtractEmbedded writes the whole embedded stream into dir. WAVE and AIFC
// payloads are copied as stored; raw PCM is wrapped in a WAVE header.
func ExtractEmbedded(c cfb.Container, src Source, dir string) (string, error) {
	if src.Node == nil {
		return "", fmt.Errorf("extract %s: %w", src.Name, ErrNotEmbedded)
	}
	sec, err := c.Section(src.Node)
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", src.Name, err)
	}
	switch src.Format.Type {
	case TypeWAVE:
		dst := outputPath(dir, src.Name, ".wav", ".wav", ".wave")
		return dst, fileutil.WriteAtomic(dst, func(w *os.File) error {
			_, err := io.Copy(w, sec)
			return err
		})
	case TypeAIFC:
		dst := outputPath(dir, src.Name, ".aif", ".aif", ".aiff", ".aifc")
		return dst, fileutil.WriteAtomic(dst, func(w *os.File) error {
			_, err := io.Copy(w, sec)
			return err
		})
	case TypePCM:
		dst := outputPath(dir, src.Name, ".wav", ".wav", ".wave")
		return dst, writeWAV(dst, sec, src.Format, false, src.metadata())
	default:
		return "", fmt.Errorf("extract %s: unsupported essence type %s", src.Name, src.Format.Type)
	}
}

// ExtractClip writes length samples starting at offset, both counted per
// channel, into dir as a WAVE file named name.
func ExtractClip(c cfb.Container, src Source, dir, name string, offset, length int64) (string, error) {
	if src.Node == nil {
		return "", fmt.Errorf("extract clip %s: %w", name, ErrNotEmbedded)
	}
	f := src.Format
	if f.Type == TypeUnknown {
		return "", fmt.Errorf("extract clip %s: unsupported essence type %s", name, f.Type)
	}
	align := int64(f.BlockAlign())
	if align <= 0 || f.SampleRate <= 0 {
		return "", fmt.Errorf("extract clip %s: incomplete audio format", name)
	}
	if offset < 0 || length <= 0 {
		return "", fmt.Errorf("extract clip %s: invalid range %d+%d", name, offset, length)
	}
	start := f.DataOffset + offset*align
	size := length * align
	if start+size > src.Node.Size {
		return "", fmt.Errorf("extract clip %s: range of %d bytes exceeds the %d byte stream",
			name, start+size-f.DataOffset, src.Node.Size-f.DataOffset)
	}
	sec, err := c.Section(src.Node)
	if err != nil {
		return "", fmt.Errorf("extract clip %s: %w", name, err)
	}
	dst := outputPath(dir, name, ".wav", ".wav", ".wave")
	return dst, writeWAV(dst, io.NewSectionReader(sec, start, size), f, f.Type == TypeAIFC, src.metadata())
}

func outputPath(dir, name, ext string, known ...string) string {
	file := textutil.SanitizeFileName(name)
	if file == "" {
		file = "unknown"
	}
	lower := strings.ToLower(filepath.Ext(file))
	for _, k := range known {
		if lower == k {
			return filepath.Join(dir, file)
		}
	}
	return filepath.Join(dir, file+ext)
}

// writeWAV re-encodes raw interleaved samples through the wav encoder.
func writeWAV(dst string, r io.Reader, f Format, bigEndian bool, meta *wav.Metadata) error {
	bytesPerSample := f.SampleSize / 8
	switch bytesPerSample {
	case 1, 2, 3, 4:
	default:
		return fmt.Errorf("write %s: unsupported sample size %d", dst, f.SampleSize)
	}
	return fileutil.WriteAtomic(dst, func(w *os.File) error {
		enc := wav.NewEncoder(w, f.SampleRate, f.SampleSize, f.Channels, wavPCM)
		enc.Metadata = meta
		buf := &audio.IntBuffer{
			Format:         &audio.Format{NumChannels: f.Channels, SampleRate: f.SampleRate},
			SourceBitDepth: f.SampleSize,
		}
		raw := make([]byte, extractBlockFrames*f.BlockAlign())
		wrote := false
		for {
			n, err := io.ReadFull(r, raw)
			if n > 0 {
				n -= n % f.BlockAlign()
				buf.Data = decodeSamples(buf.Data[:0], raw[:n], bytesPerSample, bigEndian)
				if werr := enc.Write(buf); werr != nil {
					return werr
				}
				wrote = true
			}
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			if err != nil {
				return err
			}
		}
		if !wrote {
			if err := enc.Write(buf); err != nil {
				return err
			}
		}
		return enc.Close()
	})
}

// decodeSamples converts packed samples to ints in the layout the wav
// encoder expects: unsigned 8-bit, signed otherwise.
func decodeSamples(dst []int, raw []byte, size int, bigEndian bool) []int {
	var order binary.ByteOrder = binary.LittleEndian
	if bigEndian {
		order = binary.BigEndian
	}
	for i := 0; i+size <= len(raw); i += size {
		s := raw[i : i+size]
		var v int
		switch size {
		case 1:
			v = int(s[0])
			if bigEndian {
				// AIFC 8-bit samples are signed.
				v = int(int8(s[0])) + 128
			}
		case 2:
			v = int(int16(order.Uint16(s)))
		case 3:
			var u uint32
			if bigEndian {
				u = uint32(s[0])<<16 | uint32(s[1])<<8 | uint32(s[2])
			} else {
				u = uint32(s[2])<<16 | uint32(s[1])<<8 | uint32(s[0])
			}
			v = int(int32(u<<8) >> 8)
		case 4:
			v = int(int32(order.Uint32(s)))
		}
		dst = append(dst, v)
	}
	return dst
}
