package build

import (
	"html/template"
	"os"
	"path/filepath"
)

// bootstrapTemplate is the index.html written into the output directory.
// It loads wasm_exec.js, instantiates the module, and provides the mount
// point element.
var bootstrapTemplate = template.Must(template.New("bootstrap").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>{{.Title}}</title>
    <script src="wasm_exec.js"></script>
    <script>
        const go = new Go();
        WebAssembly.instantiateStreaming(fetch("app.wasm"), go.importObject)
            .then((result) => { go.run(result.instance); })
            .catch((err) => { console.error("failed to load app.wasm:", err); });
    </script>
</head>
<body>
    <div id="{{.MountID}}"></div>
</body>
</html>
`))

type bootstrapData struct {
	Title   string
	MountID string
}

// writeBootstrap writes the index.html bootstrap page into the output
// directory.
func writeBootstrap(out, title, mountID string) error {
	if title == "" {
		title = "Verdin App"
	}
	if mountID == "" {
		mountID = "app"
	}

	f, err := os.Create(filepath.Join(out, "index.html"))
	if err != nil {
		return err
	}
	defer f.Close()

	return bootstrapTemplate.Execute(f, bootstrapData{Title: title, MountID: mountID})
}
