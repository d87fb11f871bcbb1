package vdom

import "errors"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <h1>, etc.
	KindText                   // Plain text node
	KindComponent              // Deferred component subtree
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// ErrInvalidTag is returned when an element is constructed with an empty
// tag name.
var ErrInvalidTag = errors.New("vdom: empty element tag")

// ErrRenderDepthExceeded is returned by Resolve when a component chain
// does not reach an element or text node within the depth bound.
var ErrRenderDepthExceeded = errors.New("vdom: component render depth exceeded")

// DefaultMaxRenderDepth is the default bound on consecutive component
// renders during resolution.
const DefaultMaxRenderDepth = 1000

// Props holds string-valued attributes. Keys are unique; attribute order
// carries no meaning.
type Props map[string]string

// VNode is a node in the virtual tree. Exactly one variant is populated,
// selected by Kind: Tag/Props/Children for elements, Text for text nodes,
// Comp for component references. A node has a single owner (its parent)
// and is never shared between trees.
type VNode struct {
	Kind     VKind     // Node type
	Tag      string    // Element tag name (e.g., "div")
	Props    Props     // String attributes
	Children []*VNode  // Child nodes, in render order
	Text     string    // For KindText
	Comp     Component // For KindComponent
}

// Attr represents a single string attribute.
type Attr struct {
	Key   string
	Value string
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Component is anything that can render to a VNode. Render must be
// callable any number of times and depend only on the component's own
// fields; it has no error channel, and returning nil is a programming
// error.
type Component interface {
	Render() *VNode
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func() *VNode
}

// Render implements Component.
func (f *FuncComponent) Render() *VNode {
	return f.render()
}

// Func creates a component from a render function.
func Func(render func() *VNode) Component {
	return &FuncComponent{render: render}
}

// NewElement creates an element node. It fails with ErrInvalidTag if tag
// is empty. The props map is copied; nil children are skipped.
func NewElement(tag string, props Props, children ...*VNode) (*VNode, error) {
	if tag == "" {
		return nil, ErrInvalidTag
	}
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props, len(props)),
		Children: make([]*VNode, 0, len(children)),
	}
	for k, v := range props {
		node.Props[k] = v
	}
	for _, child := range children {
		if child != nil {
			node.Children = append(node.Children, child)
		}
	}
	return node, nil
}

// Comp wraps a component instance in a component-reference node. The
// node takes exclusive ownership of the instance.
func Comp(c Component) *VNode {
	return &VNode{
		Kind: KindComponent,
		Comp: c,
	}
}

// Resolve follows component references until an element or text node is
// reached. Non-component nodes are returned as-is. A chain longer than
// limit fails with ErrRenderDepthExceeded; limit <= 0 selects
// DefaultMaxRenderDepth. A component that renders nil panics, since
// Render has no error channel.
func Resolve(node *VNode, limit int) (*VNode, error) {
	if limit <= 0 {
		limit = DefaultMaxRenderDepth
	}
	for hops := 0; node != nil && node.Kind == KindComponent; hops++ {
		if hops >= limit {
			return nil, ErrRenderDepthExceeded
		}
		next := node.Comp.Render()
		if next == nil {
			panic("vdom: component rendered nil")
		}
		node = next
	}
	return node, nil
}

// Equal reports whether two trees are structurally identical: same kinds,
// tags, attributes, text values, and child order. Component references
// compare by instance identity; Resolve them first to compare output.
func Equal(a, b *VNode) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindText:
		return a.Text == b.Text
	case KindComponent:
		return a.Comp == b.Comp
	}
	if a.Tag != b.Tag || len(a.Props) != len(b.Props) || len(a.Children) != len(b.Children) {
		return false
	}
	for k, v := range a.Props {
		if bv, ok := b.Props[k]; !ok || bv != v {
			return false
		}
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}
