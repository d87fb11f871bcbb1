// Package vtest provides test helpers for asserting on mounted trees.
//
// It binds the mounter to the headless memdom surface so tests can mount
// a virtual tree and compare the resulting native structure against an
// expected component-free tree.
package vtest

import (
	"fmt"
	"testing"

	"github.com/verdin-dev/verdin/pkg/host/memdom"
	"github.com/verdin-dev/verdin/pkg/mount"
	"github.com/verdin-dev/verdin/pkg/vdom"
)

// MountPointID is the id attribute of the mount point MustMount creates.
const MountPointID = "root"

// MustMount mounts root into a fresh in-memory document and returns the
// mount point. The mounted subtree is its only child. Fails the test on
// any mount error.
func MustMount(t *testing.T, root *vdom.VNode, opts ...mount.Option) *memdom.Node {
	t.Helper()

	doc := memdom.NewDocument()
	mp := doc.CreateElement("div").(*memdom.Node)
	doc.SetAttribute(mp, "id", MountPointID)
	doc.AppendChild(doc.Root(), mp)

	if err := mount.New(doc, opts...).Mount(root, MountPointID); err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return mp
}

// AssertTree fails the test unless the native tree rooted at got is
// structurally identical to want: same tags, attribute sets, text
// values, and child order. want must be component-free.
func AssertTree(t *testing.T, got *memdom.Node, want *vdom.VNode) {
	t.Helper()
	assertNode(t, got, want, "root")
}

func assertNode(t *testing.T, got *memdom.Node, want *vdom.VNode, path string) {
	t.Helper()

	if got == nil || want == nil {
		if (got == nil) != (want == nil) {
			t.Fatalf("%s: got %v, want %v", path, got, want)
		}
		return
	}

	switch want.Kind {
	case vdom.KindText:
		if got.Kind != memdom.TextNode {
			t.Fatalf("%s: got %s, want text %q", path, got, want.Text)
		}
		if got.Text != want.Text {
			t.Errorf("%s: text = %q, want %q", path, got.Text, want.Text)
		}

	case vdom.KindElement:
		if got.Kind != memdom.ElementNode {
			t.Fatalf("%s: got text %q, want <%s>", path, got.Text, want.Tag)
		}
		if got.Tag != want.Tag {
			t.Errorf("%s: tag = %q, want %q", path, got.Tag, want.Tag)
		}
		if len(got.Attrs) != len(want.Props) {
			t.Errorf("%s: %d attributes, want %d (%s)", path, len(got.Attrs), len(want.Props), got)
		}
		for k, v := range want.Props {
			if got.Attrs[k] != v {
				t.Errorf("%s: attr %q = %q, want %q", path, k, got.Attrs[k], v)
			}
		}
		if len(got.Children) != len(want.Children) {
			t.Fatalf("%s: %d children, want %d (%s)", path, len(got.Children), len(want.Children), got)
		}
		for i := range want.Children {
			assertNode(t, got.Children[i], want.Children[i], fmt.Sprintf("%s/%s[%d]", path, want.Tag, i))
		}

	default:
		t.Fatalf("%s: expected tree contains unresolved %v node", path, want.Kind)
	}
}
