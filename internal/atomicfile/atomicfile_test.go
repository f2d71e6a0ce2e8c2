package atomicfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	if err := WriteFile(path, []byte(`{"a":1}`), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back: %v", err)
	}
	if string(got) != `{"a":1}` {
		t.Errorf("got %q", got)
	}

	t.Run("overwrite keeps mode", func(t *testing.T) {
		if err := os.Chmod(path, 0o600); err != nil {
			t.Fatalf("chmod: %v", err)
		}
		if err := WriteFile(path, []byte(`{}`), 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		st, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if st.Mode().Perm() != 0o600 {
			t.Errorf("mode = %v, want 0600", st.Mode().Perm())
		}
	})

	t.Run("no temp files left", func(t *testing.T) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("readdir: %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("expected only out.json, got %d entries", len(entries))
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		if err := WriteFile(filepath.Join(dir, "nope", "out.json"), []byte(`{}`), 0); err == nil {
			t.Fatal("expected error")
		}
	})
}
