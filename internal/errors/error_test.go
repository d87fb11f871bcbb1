package errors

import (
	stderrors "errors"
	"testing"
)

func TestNewFromRegistry(t *testing.T) {
	err := New("E101")
	if err.Code != "E101" {
		t.Errorf("Code = %q, want E101", err.Code)
	}
	if err.Category != CategoryConfig {
		t.Errorf("Category = %q, want config", err.Category)
	}
	if err.Message == "" || err.Detail == "" {
		t.Error("registered error should carry message and detail")
	}
}

func TestNewUnknownCode(t *testing.T) {
	err := New("E999")
	if err.Code != "E999" {
		t.Errorf("Code = %q, want E999", err.Code)
	}
	if err.Message != "Unknown error" {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestErrorString(t *testing.T) {
	if got := New("E201").Error(); got != "E201: Build failed" {
		t.Errorf("Error() = %q", got)
	}
	if got := Newf(CategoryCLI, "bad flag %q", "-x").Error(); got != `bad flag "-x"` {
		t.Errorf("Error() = %q", got)
	}
}

func TestWrapUnwrap(t *testing.T) {
	inner := stderrors.New("disk full")
	err := New("E203").Wrap(inner)

	if !stderrors.Is(err, inner) {
		t.Error("wrapped error should match with errors.Is")
	}
}

func TestWithDetailAndSuggestion(t *testing.T) {
	err := New("E301").
		WithDetail("bucket missing").
		WithSuggestion("set deploy.bucket")

	if err.Detail != "bucket missing" {
		t.Errorf("Detail = %q", err.Detail)
	}
	if err.Suggestion != "set deploy.bucket" {
		t.Errorf("Suggestion = %q", err.Suggestion)
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E102") != nil {
		t.Error("FromError(nil) should be nil")
	}

	ve := New("E101")
	if got := FromError(ve, "E102"); got != ve {
		t.Error("FromError should pass through VerdinError unchanged")
	}

	plain := stderrors.New("boom")
	got := FromError(plain, "E102")
	if got.Code != "E102" || !stderrors.Is(got, plain) {
		t.Errorf("FromError = %v", got)
	}
}

func TestRegistryCodesMatchCategories(t *testing.T) {
	prefixes := map[byte]Category{
		'1': CategoryConfig,
		'2': CategoryBuild,
		'3': CategoryDeploy,
	}

	for code, template := range registry {
		want, ok := prefixes[code[1]]
		if !ok {
			t.Errorf("code %s has unexpected number range", code)
			continue
		}
		if template.Category != want {
			t.Errorf("code %s category = %q, want %q", code, template.Category, want)
		}
	}
}
