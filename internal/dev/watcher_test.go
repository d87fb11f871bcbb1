package dev

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want ChangeType
	}{
		{"app/main.go", ChangeSource},
		{"public/site.CSS", ChangeStyle},
		{"public/logo.png", ChangeStatic},
		{"README.md", ChangeStatic},
	}

	for _, tt := range tests {
		if got := classify(tt.path); got != tt.want {
			t.Errorf("classify(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestShouldIgnore(t *testing.T) {
	w := NewWatcher(WatcherConfig{})

	tests := []struct {
		path string
		want bool
	}{
		{"app/main_test.go", true},
		{"proj/.git", true},
		{"proj/dist", true},
		{"app/main.go", false},
		{"public/site.css", false},
	}

	for _, tt := range tests {
		if got := w.shouldIgnore(tt.path); got != tt.want {
			t.Errorf("shouldIgnore(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestWatcherDetectsChange(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "main.go")
	if err := os.WriteFile(file, []byte("package main"), 0644); err != nil {
		t.Fatal(err)
	}

	w := NewWatcher(WatcherConfig{
		Paths:    []string{dir},
		Interval: 10 * time.Millisecond,
	})

	changes := make(chan Change, 8)
	w.OnChange(func(c Change) { changes <- c })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)
	defer w.Stop()

	// Give the initial scan time to record the baseline, then touch the
	// file with a timestamp firmly in the future.
	time.Sleep(50 * time.Millisecond)
	future := time.Now().Add(10 * time.Second)
	if err := os.Chtimes(file, future, future); err != nil {
		t.Fatal(err)
	}

	select {
	case c := <-changes:
		if c.Path != file {
			t.Errorf("change path = %q, want %q", c.Path, file)
		}
		if c.Type != ChangeSource {
			t.Errorf("change type = %v, want ChangeSource", c.Type)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no change detected")
	}
}

func TestWatcherIgnoresTestFiles(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "main_test.go")
	if err := os.WriteFile(file, []byte("package main"), 0644); err != nil {
		t.Fatal(err)
	}

	w := NewWatcher(WatcherConfig{
		Paths:    []string{dir},
		Interval: 10 * time.Millisecond,
	})

	changes := make(chan Change, 8)
	w.OnChange(func(c Change) { changes <- c })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)
	defer w.Stop()

	time.Sleep(50 * time.Millisecond)
	future := time.Now().Add(10 * time.Second)
	if err := os.Chtimes(file, future, future); err != nil {
		t.Fatal(err)
	}

	select {
	case c := <-changes:
		t.Fatalf("unexpected change for ignored file: %v", c)
	case <-time.After(200 * time.Millisecond):
	}
}
