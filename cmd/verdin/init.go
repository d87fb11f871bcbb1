package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/verdin-dev/verdin/internal/config"
)

func initCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a new project in the current directory",
		Long: `Create a verdin.json configuration file and a starter app
package in the current directory.

Examples:
  verdin init
  verdin init --name=my-app`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(name)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Project name (default: directory name)")

	return cmd
}

func runInit(name string) error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	configPath := filepath.Join(dir, config.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		warn("%s already exists, leaving it untouched", config.ConfigFileName)
		return nil
	}

	if name == "" {
		name = filepath.Base(dir)
	}

	cfg := config.New()
	cfg.Name = name
	if err := cfg.SaveTo(configPath); err != nil {
		return err
	}
	success("Wrote %s", config.ConfigFileName)

	appDir := filepath.Join(dir, "app")
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return err
	}
	mainPath := filepath.Join(appDir, "main.go")
	if _, err := os.Stat(mainPath); os.IsNotExist(err) {
		if err := os.WriteFile(mainPath, []byte(starterApp), 0644); err != nil {
			return err
		}
		success("Wrote app/main.go")
	}

	if err := os.MkdirAll(filepath.Join(dir, "public"), 0755); err != nil {
		return err
	}

	fmt.Println()
	info("Next steps:")
	info("  verdin preview")
	return nil
}

const starterApp = `//go:build js && wasm

package main

import verdin "github.com/verdin-dev/verdin"

type App struct{}

func (App) Render() *verdin.Node {
	return verdin.Div(
		verdin.H1("Welcome"),
		verdin.P("Edit app/main.go to get started."),
	)
}

func main() {
	if err := verdin.Render(App{}, "app"); err != nil {
		panic(err)
	}
	select {}
}
`
