package cfb

import (
	"io"
	"strings"

	"aafkit/internal/aaf/types"
)

// Container is a read-only view of a compound file.
type Container interface {
	// Name identifies the container, usually the file path.
	Name() string
	Root() *Node
	// Stream returns the full contents of a stream node.
	Stream(n *Node) ([]byte, error)
	// Section returns a random-access reader over a stream node.
	Section(n *Node) (*io.SectionReader, error)
	Close() error
}

// Node is a storage or stream entry.
type Node struct {
	Name    string
	CLSID   types.AUID
	Storage bool
	Size    int64

	parent   *Node
	children []*Node
	byName   map[string]*Node
	source   any
}

func newNode(name string, storage bool) *Node {
	n := &Node{Name: name, Storage: storage}
	if storage {
		n.byName = make(map[string]*Node)
	}
	return n
}

func (n *Node) adopt(child *Node) {
	child.parent = n
	n.children = append(n.children, child)
	n.byName[child.Name] = child
}

// Child returns the direct child called name.
func (n *Node) Child(name string) (*Node, bool) {
	if n == nil || n.byName == nil {
		return nil, false
	}
	child, ok := n.byName[name]
	return child, ok
}

// Children returns the direct children in directory order.
func (n *Node) Children() []*Node {
	return n.children
}

func (n *Node) Parent() *Node {
	return n.parent
}

// Path returns the slash-separated path of n below the root.
func (n *Node) Path() string {
	if n == nil {
		return ""
	}
	var parts []string
	for cur := n; cur != nil && cur.parent != nil; cur = cur.parent {
		parts = append(parts, cur.Name)
	}
	if len(parts) == 0 {
		return "/"
	}
	var sb strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		sb.WriteByte('/')
		sb.WriteString(parts[i])
	}
	return sb.String()
}

// Lookup walks a slash-separated path from n.
func (n *Node) Lookup(path string) (*Node, bool) {
	cur := n
	for _, part := range strings.Split(strings.Trim(path, "/"), "/") {
		if part == "" {
			continue
		}
		next, ok := cur.Child(part)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}
