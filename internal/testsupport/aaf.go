package testsupport

import (
	"encoding/binary"
	"fmt"

	"aafkit/internal/aaf/property"
	"aafkit/internal/aaf/types"
	"aafkit/internal/cfb"
)

// Obj describes an AAF object to be written into an in-memory container.
type Obj struct {
	Class   types.AUID
	props   []fixtureProp
	streams map[string][]byte
}

type fixtureProp struct {
	pid     uint16
	form    property.StoredForm
	data    []byte
	members []*Obj
	keyPID  uint16
	keySize uint8
}

// NewObject starts an object of the given class.
func NewObject(class types.AUID) *Obj {
	return &Obj{Class: class}
}

func (o *Obj) add(p fixtureProp) *Obj {
	o.props = append(o.props, p)
	return o
}

// Data sets a raw DATA property.
func (o *Obj) Data(pid uint16, data []byte) *Obj {
	return o.add(fixtureProp{pid: pid, form: property.FormData, data: data})
}

// Raw sets a property with an arbitrary stored form.
func (o *Obj) Raw(pid uint16, form property.StoredForm, data []byte) *Obj {
	return o.add(fixtureProp{pid: pid, form: form, data: data})
}

func (o *Obj) Text(pid uint16, s string) *Obj {
	return o.Data(pid, property.EncodeString(s))
}

func (o *Obj) Uint8(pid uint16, v uint8) *Obj {
	return o.Data(pid, []byte{v})
}

func (o *Obj) Bool(pid uint16, v bool) *Obj {
	if v {
		return o.Uint8(pid, 1)
	}
	return o.Uint8(pid, 0)
}

func (o *Obj) Uint16(pid uint16, v uint16) *Obj {
	return o.Data(pid, binary.LittleEndian.AppendUint16(nil, v))
}

func (o *Obj) Uint32(pid uint16, v uint32) *Obj {
	return o.Data(pid, binary.LittleEndian.AppendUint32(nil, v))
}

func (o *Obj) Int64(pid uint16, v int64) *Obj {
	return o.Data(pid, binary.LittleEndian.AppendUint64(nil, uint64(v)))
}

func (o *Obj) AUID(pid uint16, id types.AUID) *Obj {
	return o.Data(pid, id.Bytes())
}

func (o *Obj) MobID(pid uint16, id types.MobID) *Obj {
	return o.Data(pid, id[:])
}

func (o *Obj) Rational(pid uint16, num, den int32) *Obj {
	return o.Data(pid, rationalBytes(num, den))
}

func (o *Obj) TimeStamp(pid uint16, ts types.TimeStamp) *Obj {
	b := binary.LittleEndian.AppendUint16(nil, uint16(ts.Year))
	b = append(b, ts.Month, ts.Day, ts.Hour, ts.Minute, ts.Second, ts.Fraction)
	return o.Data(pid, b)
}

// IndirectRational sets an Indirect value holding a Rational.
func (o *Obj) IndirectRational(pid uint16, num, den int32) *Obj {
	b := append([]byte{property.ByteOrderLittle}, types.TypeRational.Bytes()...)
	return o.Data(pid, append(b, rationalBytes(num, den)...))
}

// IndirectInt32 sets an Indirect value holding an Int32.
func (o *Obj) IndirectInt32(pid uint16, v int32) *Obj {
	b := append([]byte{property.ByteOrderLittle}, types.TypeInt32.Bytes()...)
	return o.Data(pid, binary.LittleEndian.AppendUint32(b, uint32(v)))
}

// IndirectText sets an Indirect value holding a string.
func (o *Obj) IndirectText(pid uint16, s string) *Obj {
	b := append([]byte{property.ByteOrderLittle}, types.TypeString.Bytes()...)
	return o.Data(pid, append(b, property.EncodeString(s)...))
}

// DataStream names a stream child of the object and stores data in it.
func (o *Obj) DataStream(pid uint16, name string, data []byte) *Obj {
	if o.streams == nil {
		o.streams = make(map[string][]byte)
	}
	o.streams[name] = data
	return o.add(fixtureProp{pid: pid, form: property.FormDataStream, data: append([]byte{property.ByteOrderLittle}, property.EncodeString(name)...)})
}

// WeakSet references the member of a set whose identification is key.
func (o *Obj) WeakSet(pid, keyPID uint16, key []byte) *Obj {
	return o.add(fixtureProp{pid: pid, form: property.FormWeakRef, data: WeakRefBytes(0, keyPID, key)})
}

// WeakAUID references a definition by its AUID.
func (o *Obj) WeakAUID(pid, keyPID uint16, id types.AUID) *Obj {
	return o.WeakSet(pid, keyPID, id.Bytes())
}

// WeakAUIDSet holds a weak-reference set naming each of ids by its
// keyPID identification.
func (o *Obj) WeakAUIDSet(pid, keyPID uint16, ids ...types.AUID) *Obj {
	keys := make([][]byte, len(ids))
	for i, id := range ids {
		keys[i] = id.Bytes()
	}
	return o.WeakSetIndex(pid, WeakRefListBytes(keyPID, keys))
}

// WeakSetIndex holds a weak-reference set whose index stream is index,
// written as given.
func (o *Obj) WeakSetIndex(pid uint16, index []byte) *Obj {
	name := fmt.Sprintf("w%04x", pid)
	if o.streams == nil {
		o.streams = make(map[string][]byte)
	}
	o.streams[property.IndexStreamName(name)] = index
	return o.add(fixtureProp{pid: pid, form: property.FormWeakRefSet, data: property.EncodeString(name)})
}

// WeakVector references the vector member whose local key is index.
func (o *Obj) WeakVector(pid uint16, index uint16) *Obj {
	return o.add(fixtureProp{pid: pid, form: property.FormWeakRef, data: WeakRefBytes(index, 0, nil)})
}

// Strong owns child through a single strong reference.
func (o *Obj) Strong(pid uint16, child *Obj) *Obj {
	return o.add(fixtureProp{pid: pid, form: property.FormStrongRef, members: []*Obj{child}})
}

// Vector owns members through an ordered strong-reference vector.
func (o *Obj) Vector(pid uint16, members ...*Obj) *Obj {
	if members == nil {
		members = []*Obj{}
	}
	return o.add(fixtureProp{pid: pid, form: property.FormStrongRefVector, members: members})
}

// Set owns members through a strong-reference set keyed by each member's
// keyPID value.
func (o *Obj) Set(pid, keyPID uint16, members ...*Obj) *Obj {
	var size uint8
	for _, m := range members {
		size = uint8(len(m.value(keyPID)))
	}
	if members == nil {
		members = []*Obj{}
	}
	return o.add(fixtureProp{pid: pid, form: property.FormStrongRefSet, members: members, keyPID: keyPID, keySize: size})
}

func (o *Obj) value(pid uint16) []byte {
	for _, p := range o.props {
		if p.pid == pid {
			return p.data
		}
	}
	return nil
}

// Build writes root (an object of class Root) into a fresh in-memory
// container.
func Build(root *Obj) *cfb.Memory {
	mem := cfb.NewMemory("fixture.aaf", root.Class)
	writeObject(mem, mem.Root(), root)
	return mem
}

func writeObject(mem *cfb.Memory, node *cfb.Node, obj *Obj) {
	entries := make([]property.Entry, 0, len(obj.props))
	for _, p := range obj.props {
		data := p.data
		if p.form.IsStrong() {
			name := fmt.Sprintf("r%04x", p.pid)
			data = property.EncodeString(name)
			switch p.form {
			case property.FormStrongRef:
				child := mem.AddStorage(node, name, p.members[0].Class)
				writeObject(mem, child, p.members[0])
			case property.FormStrongRefVector:
				mem.AddStream(node, property.IndexStreamName(name), VectorIndexBytes(len(p.members)))
				for i, m := range p.members {
					child := mem.AddStorage(node, property.MemberName(name, uint32(i)), m.Class)
					writeObject(mem, child, m)
				}
			case property.FormStrongRefSet:
				keys := make([][]byte, len(p.members))
				for i, m := range p.members {
					keys[i] = m.value(p.keyPID)
				}
				mem.AddStream(node, property.IndexStreamName(name), SetIndexBytes(p.keyPID, p.keySize, keys))
				for i, m := range p.members {
					child := mem.AddStorage(node, property.MemberName(name, uint32(i)), m.Class)
					writeObject(mem, child, m)
				}
			}
		}
		entries = append(entries, property.Entry{PID: p.pid, Form: p.form, Data: data})
	}
	mem.AddStream(node, "properties", PropertiesBytes(entries))
	for name, data := range obj.streams {
		mem.AddStream(node, name, data)
	}
}

// PropertiesBytes encodes a properties stream.
func PropertiesBytes(entries []property.Entry) []byte {
	b := []byte{property.ByteOrderLittle, 0x20}
	b = binary.LittleEndian.AppendUint16(b, uint16(len(entries)))
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

// SetIndexBytes encodes a strong-reference set index with local keys 0..n-1.
func SetIndexBytes(keyPID uint16, keySize uint8, keys [][]byte) []byte {
	b := binary.LittleEndian.AppendUint32(nil, uint32(len(keys)))
	b = binary.LittleEndian.AppendUint32(b, uint32(len(keys)))
	b = binary.LittleEndian.AppendUint32(b, 0xffffffff)
	b = binary.LittleEndian.AppendUint16(b, keyPID)
	b = append(b, keySize)
	for i, key := range keys {
		b = binary.LittleEndian.AppendUint32(b, uint32(i))
		b = binary.LittleEndian.AppendUint32(b, 1)
		b = append(b, key...)
	}
	return b
}

// VectorIndexBytes encodes a strong-reference vector index with local keys
// 0..n-1.
func VectorIndexBytes(n int) []byte {
	b := binary.LittleEndian.AppendUint32(nil, uint32(n))
	b = binary.LittleEndian.AppendUint32(b, uint32(n))
	b = binary.LittleEndian.AppendUint32(b, 0xffffffff)
	for i := 0; i < n; i++ {
		b = binary.LittleEndian.AppendUint32(b, uint32(i))
	}
	return b
}

// WeakRefBytes encodes a weak reference value.
func WeakRefBytes(index, keyPID uint16, key []byte) []byte {
	b := binary.LittleEndian.AppendUint16(nil, index)
	b = binary.LittleEndian.AppendUint16(b, keyPID)
	b = append(b, uint8(len(key)))
	return append(b, key...)
}

// WeakRefListBytes encodes the index stream of a weak-reference set or
// vector. Every key must have the same length.
func WeakRefListBytes(keyPID uint16, keys [][]byte) []byte {
	var size uint8
	if len(keys) > 0 {
		size = uint8(len(keys[0]))
	}
	b := binary.LittleEndian.AppendUint32(nil, uint32(len(keys)))
	b = binary.LittleEndian.AppendUint16(b, keyPID)
	b = append(b, size)
	for _, key := range keys {
		b = append(b, key...)
	}
	return b
}

func rationalBytes(num, den int32) []byte {
	b := binary.LittleEndian.AppendUint32(nil, uint32(num))
	return binary.LittleEndian.AppendUint32(b, uint32(den))
}

// TestMobID returns a MobID whose material number ends in n.
func TestMobID(n byte) types.MobID {
	var id types.MobID
	copy(id[:12], []byte{0x06, 0x0a, 0x2b, 0x34, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x0f, 0x00})
	id[12] = 0x13
	id[31] = n
	return id
}
