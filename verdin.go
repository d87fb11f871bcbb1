// Package verdin provides the public API for the Verdin virtual-DOM
// engine.
//
// This is the recommended import for applications:
//
//	import "github.com/verdin-dev/verdin"
//
// Build a tree with the element factories, wrap reusable fragments in
// components, and mount the result onto a display surface:
//
//	app := verdin.Func(func() *verdin.Node {
//	    return verdin.Div(verdin.ID("app"),
//	        verdin.H1(verdin.Text("Welcome")),
//	    )
//	})
//	err := verdin.Render(app, "mount-point")
//
// Render is available on js/wasm builds and mounts onto the browser
// document. On any platform, MountTo mounts onto an explicit surface and
// RenderHTML serializes a tree as markup.
package verdin

import (
	"io"

	"github.com/verdin-dev/verdin/pkg/host"
	"github.com/verdin-dev/verdin/pkg/mount"
	"github.com/verdin-dev/verdin/pkg/render"
	"github.com/verdin-dev/verdin/pkg/vdom"
)

// Node is a node in the virtual tree.
type Node = vdom.VNode

// Props holds string-valued attributes.
type Props = vdom.Props

// Attr is a single string attribute.
type Attr = vdom.Attr

// Component is anything that can render to a Node.
type Component = vdom.Component

// Surface is the native display surface boundary.
type Surface = host.Surface

// Construction errors.
var ErrInvalidTag = vdom.ErrInvalidTag

// Mount errors.
var (
	ErrMountPointNotFound  = mount.ErrMountPointNotFound
	ErrRenderDepthExceeded = vdom.ErrRenderDepthExceeded
)

// Func creates a component from a render function.
func Func(render func() *Node) Component {
	return vdom.Func(render)
}

// NewElement creates an element node, failing with ErrInvalidTag if tag
// is empty.
func NewElement(tag string, props Props, children ...*Node) (*Node, error) {
	return vdom.NewElement(tag, props, children...)
}

// Text creates a text node.
func Text(content string) *Node {
	return vdom.Text(content)
}

// Comp wraps a component instance in a component-reference node.
func Comp(c Component) *Node {
	return vdom.Comp(c)
}

// MountTo mounts root under the node identified by mountPointID on the
// given surface.
func MountTo(surface Surface, root *Node, mountPointID string, opts ...mount.Option) error {
	return mount.New(surface, opts...).Mount(root, mountPointID)
}

// RenderHTML serializes a tree as HTML to w, resolving any component
// references.
func RenderHTML(w io.Writer, root *Node) error {
	return render.NewRenderer(render.Config{}).RenderToWriter(w, root)
}

// Element factories, re-exported from pkg/vdom.
var (
	Div    = vdom.Div
	Span   = vdom.Span
	P      = vdom.P
	H1     = vdom.H1
	H2     = vdom.H2
	H3     = vdom.H3
	Ul     = vdom.Ul
	Ol     = vdom.Ol
	Li     = vdom.Li
	Button = vdom.Button
	Input  = vdom.Input
	Form   = vdom.Form
	Img    = vdom.Img
	Main   = vdom.Main
	Header = vdom.Header
	Footer = vdom.Footer
	Nav    = vdom.Nav
	Textf  = vdom.Textf
)

// Attribute helpers, re-exported from pkg/vdom.
var (
	ID    = vdom.ID
	Class = vdom.Class
	Href  = vdom.Href
	Src   = vdom.Src
	Alt   = vdom.Alt
	Data  = vdom.Data
)
