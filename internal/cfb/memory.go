package cfb

import (
	"bytes"
	"fmt"
	"io"

	"aafkit/internal/aaf/types"
)

// Memory is an in-memory container.
type Memory struct {
	name string
	root *Node
}

// NewMemory returns an empty container whose root storage has the given CLSID.
func NewMemory(name string, rootCLSID types.AUID) *Memory {
	root := newNode("Root Entry", true)
	root.CLSID = rootCLSID
	return &Memory{name: name, root: root}
}

// AddStorage creates a storage node under parent.
func (m *Memory) AddStorage(parent *Node, name string, clsid types.AUID) *Node {
	node := newNode(name, true)
	node.CLSID = clsid
	parent.adopt(node)
	return node
}

// AddStream creates a stream node under parent.
func (m *Memory) AddStream(parent *Node, name string, data []byte) *Node {
	node := newNode(name, false)
	node.Size = int64(len(data))
	node.source = data
	parent.adopt(node)
	return node
}

func (m *Memory) Name() string { return m.name }

func (m *Memory) Root() *Node { return m.root }

func (m *Memory) Stream(n *Node) ([]byte, error) {
	data, ok := n.source.([]byte)
	if !ok {
		return nil, fmt.Errorf("%s is not a stream", n.Path())
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *Memory) Section(n *Node) (*io.SectionReader, error) {
	data, ok := n.source.([]byte)
	if !ok {
		return nil, fmt.Errorf("%s is not a stream", n.Path())
	}
	return io.NewSectionReader(bytes.NewReader(data), 0, int64(len(data))), nil
}

func (m *Memory) Close() error { return nil }
