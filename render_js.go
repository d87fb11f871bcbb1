//go:build js && wasm

package verdin

import (
	"github.com/verdin-dev/verdin/pkg/host/browser"
	"github.com/verdin-dev/verdin/pkg/mount"
)

// Render is the one-shot entry point for wasm builds: it renders root
// and mounts the result under the browser element with the given id.
// The bootstrap script invokes this once after the module loads.
func Render(root Component, mountPointID string, opts ...mount.Option) error {
	return MountTo(browser.New(), Comp(root), mountPointID, opts...)
}
