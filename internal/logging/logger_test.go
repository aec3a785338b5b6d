package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")

	opts := DefaultOptions()
	opts.File = path
	opts.Level = "debug"

	log, closeFn, err := New(opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	log.Infow("session started", "session", "abc")
	log.Debugf("tick %d", 1)

	if err := closeFn(); err != nil {
		t.Fatalf("close error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	out := string(content)
	for _, want := range []string{"session started", "abc", "tick 1", "INFO", "DEBUG"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")

	opts := DefaultOptions()
	opts.File = path
	opts.Level = "warn"

	log, closeFn, err := New(opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	log.Info("hidden")
	log.Warn("visible")
	_ = closeFn()

	content, _ := os.ReadFile(path)
	if strings.Contains(string(content), "hidden") {
		t.Error("info entry written at warn level")
	}
	if !strings.Contains(string(content), "visible") {
		t.Error("warn entry missing at warn level")
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	opts := DefaultOptions()
	opts.File = filepath.Join(t.TempDir(), "test.log")
	opts.Level = "loud"

	if _, _, err := New(opts); err == nil {
		t.Error("New() should reject an unknown level")
	}
}
