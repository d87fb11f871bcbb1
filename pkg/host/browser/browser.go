//go:build js && wasm

// Package browser adapts the real browser DOM to host.Surface for
// wasm builds. Handles are js.Value references to live DOM nodes.
package browser

import (
	"syscall/js"

	"github.com/verdin-dev/verdin/pkg/host"
)

// Surface drives the browser document.
type Surface struct {
	doc js.Value
}

// New returns a surface over the global document.
func New() *Surface {
	return &Surface{doc: js.Global().Get("document")}
}

// LookupNode implements host.Surface via document.getElementById.
func (s *Surface) LookupNode(id string) (host.Node, bool) {
	v := s.doc.Call("getElementById", id)
	if !v.Truthy() {
		return nil, false
	}
	return v, true
}

// CreateElement implements host.Surface.
func (s *Surface) CreateElement(tag string) host.Node {
	return s.doc.Call("createElement", tag)
}

// CreateText implements host.Surface.
func (s *Surface) CreateText(value string) host.Node {
	return s.doc.Call("createTextNode", value)
}

// SetAttribute implements host.Surface.
func (s *Surface) SetAttribute(n host.Node, key, value string) {
	n.(js.Value).Call("setAttribute", key, value)
}

// AppendChild implements host.Surface.
func (s *Surface) AppendChild(parent, child host.Node) {
	parent.(js.Value).Call("appendChild", child.(js.Value))
}
