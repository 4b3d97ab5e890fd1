package property

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"golang.org/x/text/encoding/unicode"

	"aafkit/internal/aaf/aaferr"
	"aafkit/internal/aaf/types"
)

// Value is the raw payload of one property together with its stored form.
type Value struct {
	Form StoredForm
	Data []byte
}

func (v Value) mismatch(kind string, err error) error {
	return aaferr.Wrap(aaferr.ErrMalformedStream, "property", "read "+kind,
		fmt.Sprintf("%s value of %d bytes", v.Form, len(v.Data)), err)
}

func (v Value) fixed(kind string, size int) ([]byte, error) {
	if len(v.Data) != size {
		return nil, v.mismatch(kind, fmt.Errorf("%w: want %d bytes", types.ErrSize, size))
	}
	return v.Data, nil
}

func (v Value) Uint8() (uint8, error) {
	b, err := v.fixed("uint8", 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (v Value) Uint16() (uint16, error) {
	b, err := v.fixed("uint16", 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (v Value) Uint32() (uint32, error) {
	b, err := v.fixed("uint32", 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (v Value) Int32() (int32, error) {
	n, err := v.Uint32()
	return int32(n), err
}

func (v Value) Int64() (int64, error) {
	b, err := v.fixed("int64", 8)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b)), nil
}

// Bool decodes the one-byte boolean type.
func (v Value) Bool() (bool, error) {
	n, err := v.Uint8()
	return n != 0, err
}

func (v Value) AUID() (types.AUID, error) {
	id, err := types.ParseAUID(v.Data)
	if err != nil {
		return id, v.mismatch("AUID", err)
	}
	return id, nil
}

func (v Value) MobID() (types.MobID, error) {
	id, err := types.ParseMobID(v.Data)
	if err != nil {
		return id, v.mismatch("MobID", err)
	}
	return id, nil
}

func (v Value) Rational() (types.Rational, error) {
	r, err := types.ParseRational(v.Data)
	if err != nil {
		return r, v.mismatch("Rational", err)
	}
	return r, nil
}

func (v Value) TimeStamp() (types.TimeStamp, error) {
	ts, err := types.ParseTimeStamp(v.Data)
	if err != nil {
		return ts, v.mismatch("TimeStamp", err)
	}
	return ts, nil
}

func (v Value) VersionType() (types.VersionType, error) {
	ver, err := types.ParseVersionType(v.Data)
	if err != nil {
		return ver, v.mismatch("VersionType", err)
	}
	return ver, nil
}

func (v Value) ProductVersion() (types.ProductVersion, error) {
	ver, err := types.ParseProductVersion(v.Data)
	if err != nil {
		return ver, v.mismatch("ProductVersion", err)
	}
	return ver, nil
}

// Text decodes a null-terminated UTF-16LE string.
func (v Value) Text() (string, error) {
	s, err := DecodeString(v.Data)
	if err != nil {
		return "", v.mismatch("string", err)
	}
	return s, nil
}

// StreamName returns the data-stream name held by a DataStream value, whose
// first byte is a byte-order mark.
func (v Value) StreamName() (string, error) {
	if len(v.Data) < 1 {
		return "", v.mismatch("stream name", types.ErrSize)
	}
	s, err := DecodeString(v.Data[1:])
	if err != nil {
		return "", v.mismatch("stream name", err)
	}
	return s, nil
}

// WeakRef decodes a single weak reference.
func (v Value) WeakRef() (WeakRef, error) {
	if v.Form != FormWeakRef {
		return WeakRef{}, v.mismatch("weak reference", fmt.Errorf("stored form is %s", v.Form))
	}
	return DecodeWeakRef(v.Data)
}

// Indirect decodes a byte-order mark, a type AUID and the typed payload.
func (v Value) Indirect() (Indirect, error) {
	if len(v.Data) < 17 {
		return Indirect{}, v.mismatch("indirect", fmt.Errorf("%w: want at least 17 bytes", types.ErrSize))
	}
	typ, err := types.ParseAUID(v.Data[1:17])
	if err != nil {
		return Indirect{}, v.mismatch("indirect", err)
	}
	return Indirect{Type: typ, Value: Value{Form: FormData, Data: v.Data[17:]}}, nil
}

// Indirect is a value carrying its own type identifier.
type Indirect struct {
	Type types.AUID
	Value
}

// Rational reads an indirect Rational, checking the declared type when it
// is set.
func (i Indirect) Rational() (types.Rational, error) {
	if !i.Type.IsZero() && i.Type != types.TypeRational {
		return types.Rational{}, i.mismatch("indirect Rational", fmt.Errorf("declared type %s", i.Type))
	}
	return i.Value.Rational()
}

// Int32 reads an indirect Int32.
func (i Indirect) Int32() (int32, error) {
	if !i.Type.IsZero() && i.Type != types.TypeInt32 {
		return 0, i.mismatch("indirect Int32", fmt.Errorf("declared type %s", i.Type))
	}
	return i.Value.Int32()
}

// Text reads an indirect string.
func (i Indirect) Text() (string, error) {
	if !i.Type.IsZero() && i.Type != types.TypeString {
		return "", i.mismatch("indirect string", fmt.Errorf("declared type %s", i.Type))
	}
	return i.Value.Text()
}

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// DecodeString converts UTF-16LE bytes to UTF-8, stopping at the first null
// code unit.
func DecodeString(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", fmt.Errorf("%w: odd UTF-16 length %d", types.ErrSize, len(b))
	}
	for i := 0; i+1 < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			b = b[:i]
			break
		}
	}
	out, err := utf16le.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(bytes.TrimRight(out, "\x00")), nil
}

// EncodeString produces the null-terminated UTF-16LE form of s.
func EncodeString(s string) []byte {
	out, err := utf16le.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return []byte{0, 0}
	}
	return append(out, 0, 0)
}
