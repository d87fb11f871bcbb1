package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/verdin-dev/verdin/internal/config"
	"github.com/verdin-dev/verdin/internal/dev"
)

func previewCmd() *cobra.Command {
	var (
		port        int
		host        string
		openBrowser bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Start the preview server",
		Long: `Start the local preview server with hot reload.

The preview server builds the wasm module, serves the output
directory, watches for file changes, rebuilds, and refreshes
connected browsers.

Examples:
  verdin preview
  verdin preview --port=8080
  verdin preview --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(port, host, openBrowser)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from verdin.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from verdin.json)")
	cmd.Flags().BoolVarP(&openBrowser, "open", "o", false, "Open browser on start")

	return cmd
}

func runPreview(port int, host string, openBrowser bool) error {
	if _, err := exec.LookPath("go"); err != nil {
		errorMsg("Go is not installed or not in PATH")
		info("Install Go from https://go.dev/dl/")
		return err
	}

	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	if port > 0 {
		cfg.Preview.Port = port
	}
	if host != "" {
		cfg.Preview.Host = host
	}
	if openBrowser {
		cfg.Preview.OpenBrowser = true
	}

	printBanner()
	fmt.Println("  preview")
	fmt.Println()

	server := dev.NewServer(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println("\n\n  Shutting down...")
		cancel()
	}()

	if cfg.Preview.OpenBrowser {
		go func() {
			time.Sleep(500 * time.Millisecond)
			openURL(cfg.PreviewURL())
		}()
	}

	info("Serving on %s", cfg.PreviewURL())
	fmt.Println()

	return server.Start(ctx)
}

// openURL opens a URL in the default browser.
func openURL(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}
