package types

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrSize reports a raw value whose length does not match its declared type.
var ErrSize = errors.New("value size mismatch")

func sizeError(kind string, want, got int) error {
	return fmt.Errorf("%w: %s wants %d bytes, got %d", ErrSize, kind, want, got)
}

// AUID is a 16-byte identifier stored with GUID field layout.
type AUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// ParseAUID decodes a 16-byte little-endian AUID.
func ParseAUID(b []byte) (AUID, error) {
	if len(b) != 16 {
		return AUID{}, sizeError("AUID", 16, len(b))
	}
	var id AUID
	id.Data1 = binary.LittleEndian.Uint32(b[0:4])
	id.Data2 = binary.LittleEndian.Uint16(b[4:6])
	id.Data3 = binary.LittleEndian.Uint16(b[6:8])
	copy(id.Data4[:], b[8:16])
	return id, nil
}

// Bytes returns the on-disk encoding of the AUID.
func (a AUID) Bytes() []byte {
	b := make([]byte, 16)
	binary.LittleEndian.PutUint32(b[0:4], a.Data1)
	binary.LittleEndian.PutUint16(b[4:6], a.Data2)
	binary.LittleEndian.PutUint16(b[6:8], a.Data3)
	copy(b[8:], a.Data4[:])
	return b
}

func (a AUID) IsZero() bool {
	return a == AUID{}
}

func (a AUID) String() string {
	return fmt.Sprintf("{%08x-%04x-%04x-%02x%02x-%02x%02x%02x%02x%02x%02x}",
		a.Data1, a.Data2, a.Data3,
		a.Data4[0], a.Data4[1], a.Data4[2], a.Data4[3],
		a.Data4[4], a.Data4[5], a.Data4[6], a.Data4[7])
}

func (a AUID) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// MobID is a 32-byte SMPTE UMID identifying a Mob.
type MobID [32]byte

// ParseMobID decodes a 32-byte MobID.
func ParseMobID(b []byte) (MobID, error) {
	var id MobID
	if len(b) != len(id) {
		return id, sizeError("MobID", len(id), len(b))
	}
	copy(id[:], b)
	return id, nil
}

func (m MobID) IsZero() bool {
	return m == MobID{}
}

// Material returns the material number part of the UMID.
func (m MobID) Material() AUID {
	id, _ := ParseAUID(m[16:])
	return id
}

func (m MobID) String() string {
	var sb strings.Builder
	sb.WriteString("urn:smpte:umid:")
	for i := 0; i < len(m); i += 4 {
		if i > 0 {
			sb.WriteByte('.')
		}
		fmt.Fprintf(&sb, "%02x%02x%02x%02x", m[i], m[i+1], m[i+2], m[i+3])
	}
	return sb.String()
}

func (m MobID) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Rational is a signed fraction such as an edit rate or a gain value.
type Rational struct {
	Numerator   int32 `json:"numerator"`
	Denominator int32 `json:"denominator"`
}

// ParseRational decodes an 8-byte numerator/denominator pair.
func ParseRational(b []byte) (Rational, error) {
	if len(b) != 8 {
		return Rational{}, sizeError("Rational", 8, len(b))
	}
	return Rational{
		Numerator:   int32(binary.LittleEndian.Uint32(b[0:4])),
		Denominator: int32(binary.LittleEndian.Uint32(b[4:8])),
	}, nil
}

// Float64 returns the fraction as a float; a zero denominator yields 0.
func (r Rational) Float64() float64 {
	if r.Denominator == 0 {
		return 0
	}
	return float64(r.Numerator) / float64(r.Denominator)
}

func (r Rational) IsZero() bool {
	return r.Numerator == 0 && r.Denominator == 0
}

func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.Numerator, r.Denominator)
}

// Rescale converts value expressed in units of from into units of to,
// truncating toward zero.
func Rescale(value int64, from, to Rational) int64 {
	if from.Numerator == 0 || to.Denominator == 0 {
		return 0
	}
	num := value * int64(from.Denominator) * int64(to.Numerator)
	den := int64(from.Numerator) * int64(to.Denominator)
	return num / den
}

// TimeStamp is the packed AAF date/time record.
type TimeStamp struct {
	Year     int16
	Month    uint8
	Day      uint8
	Hour     uint8
	Minute   uint8
	Second   uint8
	Fraction uint8
}

// ParseTimeStamp decodes an 8-byte TimeStamp.
func ParseTimeStamp(b []byte) (TimeStamp, error) {
	if len(b) != 8 {
		return TimeStamp{}, sizeError("TimeStamp", 8, len(b))
	}
	return TimeStamp{
		Year:     int16(binary.LittleEndian.Uint16(b[0:2])),
		Month:    b[2],
		Day:      b[3],
		Hour:     b[4],
		Minute:   b[5],
		Second:   b[6],
		Fraction: b[7],
	}, nil
}

// Time converts the stamp to UTC; Fraction is in 1/250 second units.
func (ts TimeStamp) Time() time.Time {
	nsec := int(ts.Fraction) * int(time.Second/250)
	return time.Date(int(ts.Year), time.Month(ts.Month), int(ts.Day),
		int(ts.Hour), int(ts.Minute), int(ts.Second), nsec, time.UTC)
}

// DateString formats the date as YYYY:MM:DD, zeroing out-of-range fields.
func (ts TimeStamp) DateString() string {
	year := int(ts.Year)
	if year < 0 || year > 9999 {
		year = 0
	}
	return fmt.Sprintf("%04d:%02d:%02d", year, clamp99(ts.Month), clamp99(ts.Day))
}

// ClockString formats the time of day as HH:MM:SS.
func (ts TimeStamp) ClockString() string {
	return fmt.Sprintf("%02d:%02d:%02d", clamp99(ts.Hour), clamp99(ts.Minute), clamp99(ts.Second))
}

func clamp99(v uint8) uint8 {
	if v > 99 {
		return 0
	}
	return v
}

// VersionType is a two-byte major/minor version.
type VersionType struct {
	Major int8
	Minor int8
}

func ParseVersionType(b []byte) (VersionType, error) {
	if len(b) != 2 {
		return VersionType{}, sizeError("VersionType", 2, len(b))
	}
	return VersionType{Major: int8(b[0]), Minor: int8(b[1])}, nil
}

func (v VersionType) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// ProductVersion is the Identification product version record. Some writers
// pad it to ten bytes.
type ProductVersion struct {
	Major      uint16
	Minor      uint16
	Tertiary   uint16
	PatchLevel uint16
	Type       uint8
}

func ParseProductVersion(b []byte) (ProductVersion, error) {
	if len(b) != 9 && len(b) != 10 {
		return ProductVersion{}, sizeError("ProductVersion", 9, len(b))
	}
	return ProductVersion{
		Major:      binary.LittleEndian.Uint16(b[0:2]),
		Minor:      binary.LittleEndian.Uint16(b[2:4]),
		Tertiary:   binary.LittleEndian.Uint16(b[4:6]),
		PatchLevel: binary.LittleEndian.Uint16(b[6:8]),
		Type:       b[8],
	}, nil
}

func (v ProductVersion) String() string {
	return fmt.Sprintf("%d.%d.%d.%d-%d", v.Major, v.Minor, v.Tertiary, v.PatchLevel, v.Type)
}
