package mount

import (
	"errors"
	"fmt"

	"github.com/verdin-dev/verdin/pkg/vdom"
)

// ErrMountPointNotFound matches any MountPointNotFoundError via errors.Is.
var ErrMountPointNotFound = errors.New("mount: mount point not found")

// MountPointNotFoundError is returned when the mount-point identifier
// does not resolve to an existing node in the host surface. The live
// tree is untouched when this is returned.
type MountPointNotFoundError struct {
	ID string
}

// Error implements the error interface.
func (e *MountPointNotFoundError) Error() string {
	return fmt.Sprintf("mount: mount point %q not found", e.ID)
}

// Unwrap supports errors.Is(err, ErrMountPointNotFound).
func (e *MountPointNotFoundError) Unwrap() error {
	return ErrMountPointNotFound
}

// RenderDepthExceededError is returned when a component chain fails to
// resolve to an element or text node within the configured bound.
type RenderDepthExceededError struct {
	Limit int
}

// Error implements the error interface.
func (e *RenderDepthExceededError) Error() string {
	return fmt.Sprintf("mount: component chain exceeded %d consecutive renders", e.Limit)
}

// Unwrap supports errors.Is(err, vdom.ErrRenderDepthExceeded).
func (e *RenderDepthExceededError) Unwrap() error {
	return vdom.ErrRenderDepthExceeded
}
