package property

import (
	"encoding/binary"
	"errors"
	"testing"

	"aafkit/internal/aaf/aaferr"
	"aafkit/internal/aaf/types"
)

func indexStream(entries ...Entry) []byte {
	b := []byte{ByteOrderLittle, 0x20, 0, 0}
	binary.LittleEndian.PutUint16(b[2:], uint16(len(entries)))
	for _, e := range entries {
		b = binary.LittleEndian.AppendUint16(b, e.PID)
		b = binary.LittleEndian.AppendUint16(b, uint16(e.Form))
		b = binary.LittleEndian.AppendUint16(b, uint16(len(e.Data)))
	}
	for _, e := range entries {
		b = append(b, e.Data...)
	}
	return b
}

func TestDecodeIndex(t *testing.T) {
	raw := indexStream(
		Entry{PID: types.PIDComponentLength, Form: FormData, Data: []byte{100, 0, 0, 0, 0, 0, 0, 0}},
		Entry{PID: types.PIDMobName, Form: FormData, Data: EncodeString("Edit")},
	)
	entries, err := DecodeIndex(raw)
	if err != nil {
		t.Fatalf("DecodeIndex: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	length, err := Value{Form: entries[0].Form, Data: entries[0].Data}.Int64()
	if err != nil || length != 100 {
		t.Fatalf("Int64 = %d, %v", length, err)
	}
	name, err := Value{Form: entries[1].Form, Data: entries[1].Data}.Text()
	if err != nil || name != "Edit" {
		t.Fatalf("Text = %q, %v", name, err)
	}
}

func TestDecodeIndexRejectsMalformedStreams(t *testing.T) {
	good := indexStream(Entry{PID: 1, Form: FormData, Data: []byte{1, 2, 3, 4}})
	cases := map[string][]byte{
		"short header": {ByteOrderLittle, 0},
		"big endian":   append([]byte{0x42}, good[1:]...),
		"truncated":    good[:len(good)-1],
		"count":        {ByteOrderLittle, 0, 5, 0, 1, 0, 0x82, 0, 0, 0},
	}
	for name, raw := range cases {
		if _, err := DecodeIndex(raw); !errors.Is(err, aaferr.ErrMalformedStream) {
			t.Fatalf("%s: expected malformed stream error, got %v", name, err)
		}
	}
}

func TestDecodeSetIndex(t *testing.T) {
	b := make([]byte, setHeaderSize)
	binary.LittleEndian.PutUint32(b[0:], 2)
	binary.LittleEndian.PutUint16(b[12:], types.PIDMobMobID)
	b[14] = 2
	b = binary.LittleEndian.AppendUint32(b, 7)
	b = binary.LittleEndian.AppendUint32(b, 1)
	b = append(b, 0xaa, 0xbb)
	b = binary.LittleEndian.AppendUint32(b, 9)
	b = binary.LittleEndian.AppendUint32(b, 1)
	b = append(b, 0xcc, 0xdd)

	idx, err := DecodeSetIndex(b)
	if err != nil {
		t.Fatalf("DecodeSetIndex: %v", err)
	}
	if len(idx.Entries) != 2 || idx.Entries[1].LocalKey != 9 || idx.Entries[1].Identification[0] != 0xcc {
		t.Fatalf("unexpected set index %+v", idx)
	}
	if _, err := DecodeSetIndex(b[:len(b)-1]); !errors.Is(err, aaferr.ErrMalformedStream) {
		t.Fatalf("expected malformed error, got %v", err)
	}
}

func TestEmptyCollectionsDecodeToEmptySlices(t *testing.T) {
	set, err := DecodeSetIndex(make([]byte, setHeaderSize))
	if err != nil || set.Entries == nil || len(set.Entries) != 0 {
		t.Fatalf("expected empty non-nil set entries, got %+v, %v", set.Entries, err)
	}
	vec, err := DecodeVectorIndex(make([]byte, vectorHeaderSize))
	if err != nil || vec.LocalKeys == nil || len(vec.LocalKeys) != 0 {
		t.Fatalf("expected empty non-nil vector keys, got %+v, %v", vec.LocalKeys, err)
	}
}

func TestDecodeWeakRef(t *testing.T) {
	id := types.DataDefSound.Bytes()
	b := binary.LittleEndian.AppendUint16(nil, 3)
	b = binary.LittleEndian.AppendUint16(b, types.PIDDefinitionObjectIdentification)
	b = append(b, byte(len(id)))
	b = append(b, id...)

	ref, err := Value{Form: FormWeakRef, Data: b}.WeakRef()
	if err != nil {
		t.Fatalf("WeakRef: %v", err)
	}
	got, _ := types.ParseAUID(ref.Identification)
	if ref.ReferencedPropertyIndex != 3 || got != types.DataDefSound {
		t.Fatalf("unexpected weak ref %+v", ref)
	}
	if _, err := (Value{Form: FormData, Data: b}).WeakRef(); err == nil {
		t.Fatal("expected stored form mismatch")
	}
}

func weakListStream(count uint32, keyPID uint16, size uint8, keys ...[]byte) []byte {
	b := binary.LittleEndian.AppendUint32(nil, count)
	b = binary.LittleEndian.AppendUint16(b, keyPID)
	b = append(b, size)
	for _, k := range keys {
		b = append(b, k...)
	}
	return b
}

func TestDecodeWeakRefList(t *testing.T) {
	amp, pan := types.ParameterDefAmplitude.Bytes(), types.ParameterDefPan.Bytes()
	list, err := DecodeWeakRefList(weakListStream(2, types.PIDDefinitionObjectIdentification, 16, amp, pan))
	if err != nil {
		t.Fatalf("DecodeWeakRefList: %v", err)
	}
	if list.IdentificationPID != types.PIDDefinitionObjectIdentification || len(list.Identifications) != 2 {
		t.Fatalf("unexpected list %+v", list)
	}
	if got, _ := types.ParseAUID(list.Identifications[1]); got != types.ParameterDefPan {
		t.Fatalf("second identification = %s", got)
	}

	empty, err := DecodeWeakRefList(weakListStream(0, 0, 0))
	if err != nil || empty.Identifications == nil || len(empty.Identifications) != 0 {
		t.Fatalf("expected an empty non-nil list, got %+v %v", empty, err)
	}
}

func TestDecodeWeakRefListRejectsMalformedStreams(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{"short header", []byte{1, 0, 0, 0, 0, 0}},
		{"zero size with entries", []byte{0x00, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00}},
		{"zero size with max count", weakListStream(0xffffffff, 0, 0)},
		{"count beyond data", weakListStream(3, 0, 16, types.ParameterDefAmplitude.Bytes())},
		{"max count", weakListStream(0xffffffff, 0, 16, types.ParameterDefAmplitude.Bytes())},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := DecodeWeakRefList(tt.in)
			if !errors.Is(err, aaferr.ErrMalformedStream) {
				t.Fatalf("expected ErrMalformedStream, got %v (%d entries)", err, len(list.Identifications))
			}
		})
	}
}

func TestAccessorsFailClosed(t *testing.T) {
	v := Value{Form: FormData, Data: []byte{1, 2, 3}}
	if _, err := v.Uint32(); !errors.Is(err, aaferr.ErrMalformedStream) || !errors.Is(err, types.ErrSize) {
		t.Fatalf("expected size mismatch, got %v", err)
	}
	if _, err := v.Rational(); err == nil {
		t.Fatal("expected Rational to reject 3 bytes")
	}
	if _, err := v.AUID(); err == nil {
		t.Fatal("expected AUID to reject 3 bytes")
	}
	if _, err := v.Text(); err == nil {
		t.Fatal("expected odd-length string to fail")
	}
}

func TestIndirectRational(t *testing.T) {
	b := []byte{ByteOrderLittle}
	b = append(b, types.TypeRational.Bytes()...)
	b = binary.LittleEndian.AppendUint32(b, uint32(1))
	b = binary.LittleEndian.AppendUint32(b, uint32(2))

	ind, err := Value{Form: FormData, Data: b}.Indirect()
	if err != nil {
		t.Fatalf("Indirect: %v", err)
	}
	r, err := ind.Rational()
	if err != nil || r != (types.Rational{Numerator: 1, Denominator: 2}) {
		t.Fatalf("Rational = %v, %v", r, err)
	}
	if _, err := ind.Text(); err == nil {
		t.Fatal("expected declared type mismatch")
	}
	if _, err := ind.Int32(); err == nil {
		t.Fatal("expected declared type mismatch for Int32")
	}
}

func TestIndirectInt32(t *testing.T) {
	int32Payload := append([]byte{ByteOrderLittle}, types.TypeInt32.Bytes()...)
	int32Payload = binary.LittleEndian.AppendUint32(int32Payload, uint32(2))
	textPayload := append([]byte{ByteOrderLittle}, types.TypeString.Bytes()...)
	textPayload = append(textPayload, 0x32, 0x00, 0x00, 0x00)
	untyped := append([]byte{ByteOrderLittle}, make([]byte, 16)...)
	untyped = binary.LittleEndian.AppendUint32(untyped, uint32(5))

	tests := []struct {
		name    string
		data    []byte
		want    int32
		wantErr bool
	}{
		{name: "declared int32", data: int32Payload, want: 2},
		{name: "undeclared type", data: untyped, want: 5},
		{name: "declared string of four bytes", data: textPayload, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ind, err := Value{Form: FormData, Data: tt.data}.Indirect()
			if err != nil {
				t.Fatalf("Indirect: %v", err)
			}
			got, err := ind.Int32()
			if tt.wantErr {
				if !errors.Is(err, aaferr.ErrMalformedStream) {
					t.Fatalf("Int32 = %d, %v; want type mismatch", got, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("Int32 = %d, %v; want %d", got, err, tt.want)
			}
		})
	}
}

func TestStreamName(t *testing.T) {
	v := Value{Form: FormDataStream, Data: append([]byte{ByteOrderLittle}, EncodeString("Data-2702")...)}
	name, err := v.StreamName()
	if err != nil || name != "Data-2702" {
		t.Fatalf("StreamName = %q, %v", name, err)
	}
}
