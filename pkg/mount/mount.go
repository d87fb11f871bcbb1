// Package mount walks a virtual tree and creates the corresponding
// native nodes on a host surface.
//
// Mounting is one-shot: the full native subtree is constructed in memory
// first, then attached under the mount point in a single append, so a
// failed mount leaves the live tree untouched. There is no diffing and
// no update path; a new UI means a new tree and a new mount.
package mount

import (
	"errors"
	"fmt"

	"github.com/verdin-dev/verdin/pkg/host"
	"github.com/verdin-dev/verdin/pkg/vdom"
)

// Option configures a Mounter.
type Option func(*Mounter)

// WithMaxRenderDepth bounds consecutive component renders during
// resolution. n <= 0 selects vdom.DefaultMaxRenderDepth.
func WithMaxRenderDepth(n int) Option {
	return func(m *Mounter) {
		m.maxRenderDepth = n
	}
}

// Mounter resolves virtual trees into native nodes on a single surface.
type Mounter struct {
	surface        host.Surface
	maxRenderDepth int
}

// New creates a Mounter bound to the given surface.
func New(surface host.Surface, opts ...Option) *Mounter {
	m := &Mounter{
		surface:        surface,
		maxRenderDepth: vdom.DefaultMaxRenderDepth,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.maxRenderDepth <= 0 {
		m.maxRenderDepth = vdom.DefaultMaxRenderDepth
	}
	return m
}

// Mount resolves root (through any component references) into native
// nodes and attaches the result under the node identified by
// mountPointID.
//
// Failures are typed and recoverable: a *MountPointNotFoundError when
// the identifier resolves to nothing, a *RenderDepthExceededError when a
// component chain never reaches an element or text node. In both cases
// nothing has been attached. A component that renders nil panics; host
// node creation is assumed infallible.
func (m *Mounter) Mount(root *vdom.VNode, mountPointID string) error {
	if root == nil {
		return fmt.Errorf("mount: nil root node")
	}

	built, err := m.build(root)
	if err != nil {
		return err
	}

	target, ok := m.surface.LookupNode(mountPointID)
	if !ok {
		return &MountPointNotFoundError{ID: mountPointID}
	}

	m.surface.AppendChild(target, built)
	return nil
}

// build creates the native subtree for node, depth-first in pre-order.
// Component references are transparent: they resolve to their rendered
// output and produce no native node of their own.
func (m *Mounter) build(node *vdom.VNode) (host.Node, error) {
	node, err := vdom.Resolve(node, m.maxRenderDepth)
	if err != nil {
		if errors.Is(err, vdom.ErrRenderDepthExceeded) {
			return nil, &RenderDepthExceededError{Limit: m.maxRenderDepth}
		}
		return nil, err
	}
	if node == nil {
		return nil, fmt.Errorf("mount: nil child node")
	}

	switch node.Kind {
	case vdom.KindText:
		return m.surface.CreateText(node.Text), nil

	case vdom.KindElement:
		native := m.surface.CreateElement(node.Tag)
		// Attribute names are unique, so map iteration order is fine.
		for key, value := range node.Props {
			m.surface.SetAttribute(native, key, value)
		}
		for _, child := range node.Children {
			builtChild, err := m.build(child)
			if err != nil {
				return nil, err
			}
			m.surface.AppendChild(native, builtChild)
		}
		return native, nil

	default:
		return nil, fmt.Errorf("mount: unknown node kind %d", node.Kind)
	}
}
