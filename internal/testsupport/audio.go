package testsupport

import (
	"encoding/binary"
	"math"
)

// WAVE returns a canonical RIFF/WAVE file holding frames of 16-bit or wider
// PCM. Sample i of channel c carries the value i*channels+c so extracted
// ranges can be checked. With frames < 0 the data chunk is omitted, the way
// some producers write descriptor summaries.
func WAVE(channels, rate, bits, frames int) []byte {
	align := channels * bits / 8
	var data []byte
	if frames > 0 {
		data = pcmLE(channels, bits, frames)
	}
	out := []byte("RIFF")
	size := 4 + 8 + 16
	if frames >= 0 {
		size += 8 + len(data)
	}
	out = binary.LittleEndian.AppendUint32(out, uint32(size))
	out = append(out, "WAVEfmt "...)
	out = binary.LittleEndian.AppendUint32(out, 16)
	out = binary.LittleEndian.AppendUint16(out, 1)
	out = binary.LittleEndian.AppendUint16(out, uint16(channels))
	out = binary.LittleEndian.AppendUint32(out, uint32(rate))
	out = binary.LittleEndian.AppendUint32(out, uint32(rate*align))
	out = binary.LittleEndian.AppendUint16(out, uint16(align))
	out = binary.LittleEndian.AppendUint16(out, uint16(bits))
	if frames >= 0 {
		out = append(out, "data"...)
		out = binary.LittleEndian.AppendUint32(out, uint32(len(data)))
		out = append(out, data...)
	}
	return out
}

// PCM returns raw little-endian interleaved samples in the WAVE layout.
func PCM(channels, bits, frames int) []byte {
	return pcmLE(channels, bits, frames)
}

func pcmLE(channels, bits, frames int) []byte {
	size := bits / 8
	out := make([]byte, 0, channels*size*frames)
	for i := 0; i < frames*channels; i++ {
		v := uint32(i)
		for b := 0; b < size; b++ {
			out = append(out, byte(v>>(8*b)))
		}
	}
	return out
}

// AIFC returns a big-endian AIFC file with a COMM and an SSND chunk.
func AIFC(channels, rate, bits, frames int) []byte {
	size := bits / 8
	data := make([]byte, 0, channels*size*frames)
	for i := 0; i < frames*channels; i++ {
		v := uint32(i)
		for b := size - 1; b >= 0; b-- {
			data = append(data, byte(v>>(8*b)))
		}
	}

	comm := binary.BigEndian.AppendUint16(nil, uint16(channels))
	comm = binary.BigEndian.AppendUint32(comm, uint32(frames))
	comm = binary.BigEndian.AppendUint16(comm, uint16(bits))
	comm = append(comm, extended(float64(rate))...)
	comm = append(comm, "NONE"...)
	comm = append(comm, 0, 0)

	ssnd := binary.BigEndian.AppendUint32(nil, 0)
	ssnd = binary.BigEndian.AppendUint32(ssnd, 0)
	ssnd = append(ssnd, data...)

	body := []byte("AIFC")
	body = append(body, "COMM"...)
	body = binary.BigEndian.AppendUint32(body, uint32(len(comm)))
	body = append(body, comm...)
	body = append(body, "SSND"...)
	body = binary.BigEndian.AppendUint32(body, uint32(len(ssnd)))
	body = append(body, ssnd...)

	out := []byte("FORM")
	out = binary.BigEndian.AppendUint32(out, uint32(len(body)))
	return append(out, body...)
}

// extended encodes a positive integral value as an 80-bit IEEE 754 float.
func extended(v float64) []byte {
	out := make([]byte, 10)
	if v == 0 {
		return out
	}
	exp := int(math.Floor(math.Log2(v)))
	mant := uint64(v * math.Pow(2, float64(63-exp)))
	binary.BigEndian.PutUint16(out[0:2], uint16(exp+16383))
	binary.BigEndian.PutUint64(out[2:10], mant)
	return out
}
