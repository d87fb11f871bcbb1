// Package host defines the boundary between the virtual tree and the
// native display surface.
//
// The mounter depends on exactly five host operations: look up a node by
// identifier, create an element, create a text node, set a string
// attribute, and append a child. Any environment offering them can be
// substituted - the real browser DOM (pkg/host/browser), a headless
// in-memory document for tests (pkg/host/memdom), or any other node API.
package host

// Node is an opaque handle to a node owned by the display surface. The
// core never inspects it; it only hands handles back to the surface that
// created them.
type Node any

// Surface is the native display surface. Implementations are not
// required to be safe for concurrent use; the mounter drives a surface
// from a single goroutine.
type Surface interface {
	// LookupNode resolves an identifier to an existing node in the live
	// tree. The second result is false if no such node exists.
	LookupNode(id string) (Node, bool)

	// CreateElement creates a detached element node for the given tag.
	CreateElement(tag string) Node

	// CreateText creates a detached text node with the given value.
	CreateText(value string) Node

	// SetAttribute sets a string attribute on an element node.
	SetAttribute(n Node, key, value string)

	// AppendChild appends child as the last child of parent.
	AppendChild(parent, child Node)
}
