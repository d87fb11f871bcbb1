// Package build produces the loadable artifact for a Verdin project:
// a wasm module, the bootstrap page that loads it, and the static files,
// all written to the configured output directory.
package build

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/verdin-dev/verdin/internal/config"
	"github.com/verdin-dev/verdin/internal/errors"
)

// WasmBinaryName is the name of the compiled module inside the output
// directory.
const WasmBinaryName = "app.wasm"

// Result contains the result of a build.
type Result struct {
	// Success indicates if the build succeeded.
	Success bool

	// Duration is how long the build took.
	Duration time.Duration

	// Output is the compiler output.
	Output string

	// Error is the build error, if any.
	Error error
}

// Builder compiles a project to a wasm module and assembles the output
// directory.
type Builder struct {
	config *config.Config
}

// NewBuilder creates a Builder for the given project configuration.
func NewBuilder(cfg *config.Config) *Builder {
	return &Builder{config: cfg}
}

// Build runs the full pipeline: compile the wasm module, write the
// bootstrap page and loader, and copy static files.
func (b *Builder) Build(ctx context.Context) Result {
	start := time.Now()
	out := b.config.OutputPath()

	if err := os.MkdirAll(out, 0755); err != nil {
		return Result{Duration: time.Since(start), Error: errors.New("E203").Wrap(err)}
	}

	if result := b.compile(ctx, out); !result.Success {
		result.Duration = time.Since(start)
		return result
	}

	if err := b.copyWasmExec(out); err != nil {
		return Result{Duration: time.Since(start), Error: err}
	}

	if err := writeBootstrap(out, b.config.Name, b.config.MountID); err != nil {
		return Result{Duration: time.Since(start), Error: errors.New("E203").Wrap(err)}
	}

	if err := b.copyStatic(out); err != nil {
		return Result{Duration: time.Since(start), Error: errors.New("E203").Wrap(err)}
	}

	return Result{Success: true, Duration: time.Since(start)}
}

// compile runs go build for js/wasm.
func (b *Builder) compile(ctx context.Context, out string) Result {
	args := []string{"build", "-o", filepath.Join(out, WasmBinaryName)}
	if len(b.config.Build.Tags) > 0 {
		args = append(args, "-tags", strings.Join(b.config.Build.Tags, ","))
	}
	if b.config.Build.LDFlags != "" {
		args = append(args, "-ldflags", b.config.Build.LDFlags)
	}
	args = append(args, b.config.Build.Entry)

	cmd := exec.CommandContext(ctx, "go", args...)
	cmd.Dir = b.config.Dir()
	cmd.Env = append(os.Environ(), "GOOS=js", "GOARCH=wasm")

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	if err := cmd.Run(); err != nil {
		return Result{
			Output: buf.String(),
			Error:  errors.New("E201").WithDetail(buf.String()).Wrap(err),
		}
	}
	return Result{Success: true, Output: buf.String()}
}

// copyWasmExec copies the Go runtime's wasm bootstrap script into the
// output directory. Newer toolchains ship it in lib/wasm, older ones in
// misc/wasm.
func (b *Builder) copyWasmExec(out string) error {
	goroot, err := exec.Command("go", "env", "GOROOT").Output()
	if err != nil {
		return errors.New("E202").Wrap(err)
	}
	root := strings.TrimSpace(string(goroot))

	for _, rel := range []string{"lib/wasm/wasm_exec.js", "misc/wasm/wasm_exec.js"} {
		src := filepath.Join(root, filepath.FromSlash(rel))
		if _, err := os.Stat(src); err == nil {
			return copyFile(src, filepath.Join(out, "wasm_exec.js"))
		}
	}
	return errors.New("E204").WithDetail("GOROOT: " + root)
}

// copyStatic copies the project's static directory into out/static.
func (b *Builder) copyStatic(out string) error {
	src := b.config.StaticPath()
	info, err := os.Stat(src)
	if err != nil || !info.IsDir() {
		// No static dir is fine.
		return nil
	}
	return copyDir(src, filepath.Join(out, "static"))
}

func copyDir(src, dst string) error {
	return filepath.Walk(src, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if info.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		return copyFile(p, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
