package mount_test

import (
	"errors"
	"testing"

	"github.com/verdin-dev/verdin/pkg/host/memdom"
	"github.com/verdin-dev/verdin/pkg/mount"
	"github.com/verdin-dev/verdin/pkg/vdom"
)

// newDoc returns a document with an attached mount point <div id="root">.
func newDoc(t *testing.T) (*memdom.Document, *memdom.Node) {
	t.Helper()
	doc := memdom.NewDocument()
	mp := doc.CreateElement("div").(*memdom.Node)
	doc.SetAttribute(mp, "id", "root")
	doc.AppendChild(doc.Root(), mp)
	return doc, mp
}

func TestMountStructuralFidelity(t *testing.T) {
	doc, mp := newDoc(t)

	root := vdom.Div(
		vdom.ID("panel"),
		vdom.Class("wide"),
		vdom.H1("Welcome"),
		vdom.Ul(
			vdom.Li("one"),
			vdom.Li("two"),
		),
	)

	if err := mount.New(doc).Mount(root, "root"); err != nil {
		t.Fatalf("Mount() error = %v", err)
	}

	if len(mp.Children) != 1 {
		t.Fatalf("mount point has %d children, want 1", len(mp.Children))
	}

	panel := mp.Children[0]
	if panel.Tag != "div" || panel.Attrs["id"] != "panel" || panel.Attrs["class"] != "wide" {
		t.Errorf("panel = %s", panel)
	}
	if len(panel.Children) != 2 {
		t.Fatalf("panel has %d children, want 2", len(panel.Children))
	}

	h1 := panel.Children[0]
	if h1.Tag != "h1" || len(h1.Children) != 1 || h1.Children[0].Text != "Welcome" {
		t.Errorf("h1 = %s", h1)
	}

	ul := panel.Children[1]
	if ul.Tag != "ul" || len(ul.Children) != 2 {
		t.Fatalf("ul = %s", ul)
	}
	for i, want := range []string{"one", "two"} {
		li := ul.Children[i]
		if li.Tag != "li" || li.Children[0].Text != want {
			t.Errorf("li[%d] = %s, want text %q", i, li, want)
		}
	}
}

func TestMountTextRoot(t *testing.T) {
	doc, mp := newDoc(t)

	if err := mount.New(doc).Mount(vdom.Text("plain"), "root"); err != nil {
		t.Fatalf("Mount() error = %v", err)
	}

	if len(mp.Children) != 1 {
		t.Fatalf("mount point has %d children, want 1", len(mp.Children))
	}
	got := mp.Children[0]
	if got.Kind != memdom.TextNode || got.Text != "plain" {
		t.Errorf("child = %v, want text %q", got, "plain")
	}
}

func TestMountZeroChildren(t *testing.T) {
	doc, mp := newDoc(t)

	if err := mount.New(doc).Mount(vdom.Div(vdom.ID("empty")), "root"); err != nil {
		t.Fatalf("Mount() error = %v", err)
	}

	div := mp.Children[0]
	if len(div.Children) != 0 {
		t.Errorf("div has %d children, want 0", len(div.Children))
	}
}

// A component reference produces no native node of its own: mounting a
// component that renders a single text node attaches exactly that text
// node.
func TestMountComponentTransparency(t *testing.T) {
	doc, mp := newDoc(t)

	hello := vdom.Func(func() *vdom.VNode { return vdom.Text("hello") })

	if err := mount.New(doc).Mount(vdom.Comp(hello), "root"); err != nil {
		t.Fatalf("Mount() error = %v", err)
	}

	if len(mp.Children) != 1 {
		t.Fatalf("mount point has %d children, want 1", len(mp.Children))
	}
	got := mp.Children[0]
	if got.Kind != memdom.TextNode || got.Text != "hello" {
		t.Errorf("child = %v, want the text node %q and nothing else", got, "hello")
	}
}

// Wrapping a subtree in N layers of pass-through components yields the
// same native structure as mounting the subtree directly.
func TestMountComponentChainEquivalence(t *testing.T) {
	subtree := func() *vdom.VNode {
		return vdom.Div(vdom.Class("x"), vdom.Span("inner"))
	}

	docDirect, mpDirect := newDoc(t)
	if err := mount.New(docDirect).Mount(subtree(), "root"); err != nil {
		t.Fatalf("direct Mount() error = %v", err)
	}

	wrapped := subtree()
	for i := 0; i < 7; i++ {
		inner := wrapped
		wrapped = vdom.Comp(vdom.Func(func() *vdom.VNode { return inner }))
	}

	docWrapped, mpWrapped := newDoc(t)
	if err := mount.New(docWrapped).Mount(wrapped, "root"); err != nil {
		t.Fatalf("wrapped Mount() error = %v", err)
	}

	if got, want := mpWrapped.String(), mpDirect.String(); got != want {
		t.Errorf("wrapped tree = %s, want %s", got, want)
	}
}

func TestMountNestedComponents(t *testing.T) {
	doc, mp := newDoc(t)

	item := func(label string) vdom.Component {
		return vdom.Func(func() *vdom.VNode { return vdom.Li(label) })
	}
	list := vdom.Func(func() *vdom.VNode {
		return vdom.Ul(
			vdom.Comp(item("a")),
			vdom.Comp(item("b")),
		)
	})

	if err := mount.New(doc).Mount(vdom.Comp(list), "root"); err != nil {
		t.Fatalf("Mount() error = %v", err)
	}

	ul := mp.Children[0]
	if ul.Tag != "ul" || len(ul.Children) != 2 {
		t.Fatalf("ul = %s", ul)
	}
	if ul.Children[0].Children[0].Text != "a" || ul.Children[1].Children[0].Text != "b" {
		t.Errorf("ul = %s", ul)
	}
}

func TestMountPointNotFound(t *testing.T) {
	doc, mp := newDoc(t)

	err := mount.New(doc).Mount(vdom.Div(vdom.Span("x")), "missing")
	if err == nil {
		t.Fatal("Mount() succeeded, want MountPointNotFoundError")
	}

	var notFound *mount.MountPointNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Mount() error = %T, want *MountPointNotFoundError", err)
	}
	if notFound.ID != "missing" {
		t.Errorf("ID = %q, want %q", notFound.ID, "missing")
	}
	if !errors.Is(err, mount.ErrMountPointNotFound) {
		t.Error("error should match ErrMountPointNotFound")
	}

	// All-or-nothing: the failed mount attached nothing anywhere.
	if len(mp.Children) != 0 {
		t.Errorf("mount point has %d children after failed mount, want 0", len(mp.Children))
	}
	if len(doc.Root().Children) != 1 {
		t.Errorf("document root has %d children after failed mount, want 1", len(doc.Root().Children))
	}
}

func TestMountRenderDepthExceeded(t *testing.T) {
	doc, mp := newDoc(t)

	var self vdom.Component
	self = vdom.Func(func() *vdom.VNode { return vdom.Comp(self) })

	m := mount.New(doc, mount.WithMaxRenderDepth(25))
	err := m.Mount(vdom.Comp(self), "root")
	if err == nil {
		t.Fatal("Mount() succeeded, want RenderDepthExceededError")
	}

	var depth *mount.RenderDepthExceededError
	if !errors.As(err, &depth) {
		t.Fatalf("Mount() error = %T, want *RenderDepthExceededError", err)
	}
	if depth.Limit != 25 {
		t.Errorf("Limit = %d, want 25", depth.Limit)
	}
	if !errors.Is(err, vdom.ErrRenderDepthExceeded) {
		t.Error("error should match vdom.ErrRenderDepthExceeded")
	}

	if len(mp.Children) != 0 {
		t.Errorf("mount point has %d children after failed mount, want 0", len(mp.Children))
	}
}

func TestMountDepthFailureInChild(t *testing.T) {
	doc, mp := newDoc(t)

	var self vdom.Component
	self = vdom.Func(func() *vdom.VNode { return vdom.Comp(self) })

	root := vdom.Div(
		vdom.Span("fine"),
		vdom.Comp(self),
	)

	err := mount.New(doc, mount.WithMaxRenderDepth(10)).Mount(root, "root")
	if !errors.Is(err, vdom.ErrRenderDepthExceeded) {
		t.Fatalf("Mount() error = %v, want depth exceeded", err)
	}

	// The sibling that built successfully must not leak into the live tree.
	if len(mp.Children) != 0 {
		t.Errorf("mount point has %d children after failed mount, want 0", len(mp.Children))
	}
}

func TestMountNilRoot(t *testing.T) {
	doc, _ := newDoc(t)
	if err := mount.New(doc).Mount(nil, "root"); err == nil {
		t.Fatal("Mount(nil) succeeded, want error")
	}
}

func TestMountNilRenderPanics(t *testing.T) {
	doc, _ := newDoc(t)

	defer func() {
		if recover() == nil {
			t.Fatal("Mount() did not panic on nil render")
		}
	}()
	mount.New(doc).Mount(vdom.Comp(vdom.Func(func() *vdom.VNode { return nil })), "root")
}

func TestMountSequential(t *testing.T) {
	doc, mp := newDoc(t)
	m := mount.New(doc)

	if err := m.Mount(vdom.Span("first"), "root"); err != nil {
		t.Fatalf("first Mount() error = %v", err)
	}
	if err := m.Mount(vdom.Span("second"), "root"); err != nil {
		t.Fatalf("second Mount() error = %v", err)
	}

	if len(mp.Children) != 2 {
		t.Fatalf("mount point has %d children, want 2", len(mp.Children))
	}
	if mp.Children[0].Children[0].Text != "first" || mp.Children[1].Children[0].Text != "second" {
		t.Errorf("mount point = %s", mp)
	}
}
