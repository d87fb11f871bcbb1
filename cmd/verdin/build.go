package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/verdin-dev/verdin/internal/build"
	"github.com/verdin-dev/verdin/internal/config"
)

func buildCmd() *cobra.Command {
	var (
		output string
		clean  bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the deployable output directory",
		Long: `Build the application for deployment.

This command:
  • Compiles the app to a wasm module
  • Writes the bootstrap page and wasm loader
  • Copies static files

Examples:
  verdin build
  verdin build --output=dist
  verdin build --clean`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(output, clean)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default from verdin.json)")
	cmd.Flags().BoolVar(&clean, "clean", false, "Clean output directory before build")

	return cmd
}

func runBuild(output string, clean bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	if output != "" {
		cfg.Build.Output = output
	}

	fmt.Println("  Building...")
	fmt.Println()

	if clean {
		if err := os.RemoveAll(cfg.OutputPath()); err != nil {
			return err
		}
	}

	builder := build.NewBuilder(cfg)
	result := builder.Build(context.Background())
	if !result.Success {
		if result.Output != "" {
			errorMsg("Build failed:")
			fmt.Fprintln(os.Stderr, result.Output)
		}
		return result.Error
	}

	success("Built in %s", result.Duration.Round(time.Millisecond))
	info("Output: %s", cfg.OutputPath())
	return nil
}
