package cfb

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/richardlehane/mscfb"
	oletypes "github.com/richardlehane/msoleps/types"

	"aafkit/internal/aaf/types"
)

// File is a compound file opened from disk.
type File struct {
	path string
	f    *os.File
	root *Node
}

// Open reads the directory of the compound file at path. Stream contents are
// read on demand.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open container: %w", err)
	}
	r, err := mscfb.New(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("read compound file %s: %w", path, err)
	}
	root, err := buildTree(r.File)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("read compound file %s: %w", path, err)
	}
	return &File{path: path, f: f, root: root}, nil
}

func buildTree(entries []*mscfb.File) (*Node, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("empty directory")
	}
	root := newNode(entries[0].Name, true)
	root.CLSID = parseCLSID(entries[0].ID())
	byPath := map[string]*Node{"": root}
	for _, entry := range entries[1:] {
		parent, ok := byPath[strings.Join(entry.Path, "/")]
		if !ok {
			return nil, fmt.Errorf("entry %q has no parent storage %q", entry.Name, strings.Join(entry.Path, "/"))
		}
		storage := entry.FileInfo().IsDir()
		node := newNode(entry.Name, storage)
		node.source = entry
		if storage {
			node.CLSID = parseCLSID(entry.ID())
			byPath[strings.Join(append(append([]string{}, entry.Path...), entry.Name), "/")] = node
		} else {
			node.Size = entry.Size
		}
		parent.adopt(node)
	}
	return root, nil
}

// parseCLSID converts the registry-format GUID string into an AUID. A
// malformed CLSID maps to the zero AUID, which no class uses.
func parseCLSID(s string) types.AUID {
	g, err := oletypes.GuidFromString(s)
	if err != nil {
		return types.AUID{}
	}
	return types.AUID{Data1: g.DataA, Data2: g.DataB, Data3: g.DataC, Data4: g.DataD}
}

func (c *File) Name() string { return c.path }

func (c *File) Root() *Node { return c.root }

func (c *File) Stream(n *Node) ([]byte, error) {
	sec, err := c.Section(n)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, sec.Size())
	if _, err := io.ReadFull(sec, buf); err != nil {
		return nil, fmt.Errorf("read stream %s: %w", n.Path(), err)
	}
	return buf, nil
}

func (c *File) Section(n *Node) (*io.SectionReader, error) {
	entry, ok := n.source.(*mscfb.File)
	if !ok || n.Storage {
		return nil, fmt.Errorf("%s is not a stream", n.Path())
	}
	return io.NewSectionReader(entry, 0, n.Size), nil
}

func (c *File) Close() error {
	if c.f == nil {
		return nil
	}
	err := c.f.Close()
	c.f = nil
	return err
}
