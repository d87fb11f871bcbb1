// Package memdom is a headless in-memory display surface.
//
// It implements host.Surface with plain Go structs, which makes mounted
// output directly inspectable: tests assert on tags, attributes, text
// values, and child order without a browser. Node identity and ownership
// follow DOM rules - a node created by a Document belongs to that
// Document and appears in lookups only once attached to its tree.
package memdom

import (
	"fmt"
	"sort"
	"strings"

	"github.com/verdin-dev/verdin/pkg/host"
)

// NodeKind discriminates element and text nodes.
type NodeKind uint8

const (
	ElementNode NodeKind = iota
	TextNode
)

// Node is a node in the in-memory document.
type Node struct {
	Kind     NodeKind
	Tag      string            // For ElementNode
	Attrs    map[string]string // For ElementNode
	Text     string            // For TextNode
	Children []*Node
}

// Document is an in-memory document tree implementing host.Surface.
type Document struct {
	root *Node
}

// NewDocument creates an empty document with a root element.
func NewDocument() *Document {
	return &Document{
		root: &Node{Kind: ElementNode, Tag: "#document"},
	}
}

// Root returns the document root. Nodes are found by LookupNode only if
// they are reachable from here.
func (d *Document) Root() *Node {
	return d.root
}

// LookupNode implements host.Surface. It resolves id against the id
// attribute of attached element nodes, depth-first.
func (d *Document) LookupNode(id string) (host.Node, bool) {
	if n := d.GetElementByID(id); n != nil {
		return n, true
	}
	return nil, false
}

// CreateElement implements host.Surface. The node is detached until
// appended.
func (d *Document) CreateElement(tag string) host.Node {
	return &Node{
		Kind:  ElementNode,
		Tag:   tag,
		Attrs: make(map[string]string),
	}
}

// CreateText implements host.Surface.
func (d *Document) CreateText(value string) host.Node {
	return &Node{
		Kind: TextNode,
		Text: value,
	}
}

// SetAttribute implements host.Surface.
func (d *Document) SetAttribute(n host.Node, key, value string) {
	node := n.(*Node)
	if node.Kind != ElementNode {
		panic("memdom: SetAttribute on non-element node")
	}
	node.Attrs[key] = value
}

// AppendChild implements host.Surface.
func (d *Document) AppendChild(parent, child host.Node) {
	p := parent.(*Node)
	c := child.(*Node)
	if p.Kind != ElementNode {
		panic("memdom: AppendChild on non-element parent")
	}
	p.Children = append(p.Children, c)
}

// GetElementByID returns the first attached element whose id attribute
// equals id, or nil.
func (d *Document) GetElementByID(id string) *Node {
	if id == "" {
		return nil
	}
	return findByID(d.root, id)
}

func findByID(n *Node, id string) *Node {
	if n == nil {
		return nil
	}
	if n.Kind == ElementNode && n.Attrs["id"] == id {
		return n
	}
	for _, child := range n.Children {
		if found := findByID(child, id); found != nil {
			return found
		}
	}
	return nil
}

// String returns a compact HTML-like form of the subtree, with attributes
// in sorted order. Intended for test failure messages, not for output.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	if n.Kind == TextNode {
		b.WriteString(n.Text)
		return
	}
	fmt.Fprintf(b, "<%s", n.Tag)
	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, " %s=%q", k, n.Attrs[k])
	}
	b.WriteString(">")
	for _, child := range n.Children {
		child.write(b)
	}
	fmt.Fprintf(b, "</%s>", n.Tag)
}
