package property

import (
	"encoding/binary"
	"fmt"

	"aafkit/internal/aaf/aaferr"
)

const (
	// ByteOrderLittle is the byte-order mark of a little-endian stream.
	ByteOrderLittle = 0x4c

	propertyHeaderSize = 4
	propertyEntrySize  = 6
	setHeaderSize      = 15
	vectorHeaderSize   = 12
	weakRefHeaderSize  = 5
	weakListHeaderSize = 7
)

// Entry is one decoded property triple.
type Entry struct {
	PID  uint16
	Form StoredForm
	Data []byte
}

func malformed(operation, format string, args ...any) error {
	return aaferr.Wrap(aaferr.ErrMalformedStream, "property", operation, fmt.Sprintf(format, args...), nil)
}

// DecodeIndex splits a properties stream into its entries.
func DecodeIndex(b []byte) ([]Entry, error) {
	if len(b) < propertyHeaderSize {
		return nil, malformed("decode index", "stream of %d bytes is shorter than its header", len(b))
	}
	if b[0] != ByteOrderLittle {
		return nil, malformed("decode index", "unsupported byte order 0x%02x", b[0])
	}
	count := int(binary.LittleEndian.Uint16(b[2:4]))
	valuesAt := propertyHeaderSize + count*propertyEntrySize
	if valuesAt > len(b) {
		return nil, malformed("decode index", "%d entries do not fit in %d bytes", count, len(b))
	}
	entries := make([]Entry, 0, count)
	offset := valuesAt
	for i := 0; i < count; i++ {
		at := propertyHeaderSize + i*propertyEntrySize
		pid := binary.LittleEndian.Uint16(b[at:])
		form := StoredForm(binary.LittleEndian.Uint16(b[at+2:]))
		length := int(binary.LittleEndian.Uint16(b[at+4:]))
		if offset+length > len(b) {
			return nil, malformed("decode index", "value of pid 0x%04x overruns stream (%d+%d > %d)", pid, offset, length, len(b))
		}
		entries = append(entries, Entry{PID: pid, Form: form, Data: b[offset : offset+length]})
		offset += length
	}
	return entries, nil
}

// SetEntry is one member of a strong-reference set index.
type SetEntry struct {
	LocalKey       uint32
	ReferenceCount uint32
	Identification []byte
}

// SetIndex is a decoded "<name> index" stream of a strong-reference set.
type SetIndex struct {
	FirstFreeKey       uint32
	LastFreeKey        uint32
	IdentificationPID  uint16
	IdentificationSize uint8
	Entries            []SetEntry
}

// DecodeSetIndex decodes a strong-reference set index stream.
func DecodeSetIndex(b []byte) (SetIndex, error) {
	if len(b) < setHeaderSize {
		return SetIndex{}, malformed("decode set index", "stream of %d bytes is shorter than its header", len(b))
	}
	count := int(binary.LittleEndian.Uint32(b[0:4]))
	idx := SetIndex{
		FirstFreeKey:       binary.LittleEndian.Uint32(b[4:8]),
		LastFreeKey:        binary.LittleEndian.Uint32(b[8:12]),
		IdentificationPID:  binary.LittleEndian.Uint16(b[12:14]),
		IdentificationSize: b[14],
	}
	entrySize := 8 + int(idx.IdentificationSize)
	if count < 0 || setHeaderSize+count*entrySize > len(b) {
		return SetIndex{}, malformed("decode set index", "%d entries of %d bytes do not fit in %d bytes", count, entrySize, len(b))
	}
	idx.Entries = make([]SetEntry, 0, count)
	for i := 0; i < count; i++ {
		at := setHeaderSize + i*entrySize
		idx.Entries = append(idx.Entries, SetEntry{
			LocalKey:       binary.LittleEndian.Uint32(b[at:]),
			ReferenceCount: binary.LittleEndian.Uint32(b[at+4:]),
			Identification: b[at+8 : at+entrySize],
		})
	}
	return idx, nil
}

// VectorIndex is a decoded "<name> index" stream of a strong-reference vector.
type VectorIndex struct {
	FirstFreeKey uint32
	LastFreeKey  uint32
	LocalKeys    []uint32
}

// DecodeVectorIndex decodes a strong-reference vector index stream.
func DecodeVectorIndex(b []byte) (VectorIndex, error) {
	if len(b) < vectorHeaderSize {
		return VectorIndex{}, malformed("decode vector index", "stream of %d bytes is shorter than its header", len(b))
	}
	count := int(binary.LittleEndian.Uint32(b[0:4]))
	idx := VectorIndex{
		FirstFreeKey: binary.LittleEndian.Uint32(b[4:8]),
		LastFreeKey:  binary.LittleEndian.Uint32(b[8:12]),
	}
	if count < 0 || vectorHeaderSize+count*4 > len(b) {
		return VectorIndex{}, malformed("decode vector index", "%d entries do not fit in %d bytes", count, len(b))
	}
	idx.LocalKeys = make([]uint32, 0, count)
	for i := 0; i < count; i++ {
		idx.LocalKeys = append(idx.LocalKeys, binary.LittleEndian.Uint32(b[vectorHeaderSize+i*4:]))
	}
	return idx, nil
}

// WeakRef is a non-owning reference into a set or vector.
type WeakRef struct {
	// ReferencedPropertyIndex names the target collection; vector lookups
	// also compare it against member local keys.
	ReferencedPropertyIndex uint16
	IdentificationPID       uint16
	Identification          []byte
}

// DecodeWeakRef decodes a single weak reference value.
func DecodeWeakRef(b []byte) (WeakRef, error) {
	if len(b) < weakRefHeaderSize {
		return WeakRef{}, malformed("decode weak reference", "value of %d bytes is shorter than its header", len(b))
	}
	size := int(b[4])
	if weakRefHeaderSize+size != len(b) {
		return WeakRef{}, malformed("decode weak reference", "identification of %d bytes in a %d byte value", size, len(b))
	}
	return WeakRef{
		ReferencedPropertyIndex: binary.LittleEndian.Uint16(b[0:2]),
		IdentificationPID:       binary.LittleEndian.Uint16(b[2:4]),
		Identification:          b[weakRefHeaderSize:],
	}, nil
}

// WeakRefList is a decoded weak-reference set or vector index stream.
type WeakRefList struct {
	IdentificationPID uint16
	Identifications   [][]byte
}

// DecodeWeakRefList decodes the index stream of a weak-reference set or vector.
func DecodeWeakRefList(b []byte) (WeakRefList, error) {
	if len(b) < weakListHeaderSize {
		return WeakRefList{}, malformed("decode weak reference list", "stream of %d bytes is shorter than its header", len(b))
	}
	count := int(binary.LittleEndian.Uint32(b[0:4]))
	list := WeakRefList{IdentificationPID: binary.LittleEndian.Uint16(b[4:6])}
	size := int(b[6])
	if count > 0 && size == 0 {
		return WeakRefList{}, malformed("decode weak reference list", "%d entries with an empty identification", count)
	}
	if count < 0 || (size > 0 && count > (len(b)-weakListHeaderSize)/size) {
		return WeakRefList{}, malformed("decode weak reference list", "%d entries of %d bytes do not fit in %d bytes", count, size, len(b))
	}
	list.Identifications = make([][]byte, 0, count)
	for i := 0; i < count; i++ {
		at := weakListHeaderSize + i*size
		list.Identifications = append(list.Identifications, b[at:at+size])
	}
	return list, nil
}

// IndexStreamName returns the name of the index stream for a collection.
func IndexStreamName(name string) string {
	return name + " index"
}

// MemberName returns the node name of the collection member with localKey.
func MemberName(name string, localKey uint32) string {
	return fmt.Sprintf("%s{%x}", name, localKey)
}
