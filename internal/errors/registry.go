package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Config errors (E101-E119)

	"E101": {
		Category: CategoryConfig,
		Message:  "No verdin.json found",
		Detail:   "Verdin commands run inside a project directory containing a verdin.json configuration file.",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Failed to read or parse verdin.json",
		Detail:   "The configuration file exists but could not be read or is not valid JSON.",
	},

	// Build errors (E201-E219)

	"E201": {
		Category: CategoryBuild,
		Message:  "Build failed",
		Detail:   "The Go compiler reported errors while building the wasm module.",
	},
	"E202": {
		Category: CategoryBuild,
		Message:  "Go toolchain not found",
		Detail:   "Building a wasm module requires the go command on PATH.",
	},
	"E203": {
		Category: CategoryBuild,
		Message:  "Failed to write build output",
		Detail:   "The output directory could not be created or written.",
	},
	"E204": {
		Category: CategoryBuild,
		Message:  "wasm_exec.js not found",
		Detail:   "The wasm bootstrap script was not found in the Go installation (looked in lib/wasm and misc/wasm).",
	},

	// Deploy errors (E301-E319)

	"E301": {
		Category: CategoryDeploy,
		Message:  "No deploy bucket configured",
		Detail:   "Deploying requires deploy.bucket to be set in verdin.json.",
	},
	"E302": {
		Category: CategoryDeploy,
		Message:  "Upload failed",
		Detail:   "One or more files could not be uploaded to the bucket.",
	},
}
