package serializer

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir(%q) failed: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestFileWriterCommitsOnClose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	w, err := NewFileWriter(FormatJSON, path)
	if err != nil {
		t.Fatalf("NewFileWriter failed: %v", err)
	}

	if err := w.Serialize(context.Background(), sample{Name: "Chili", Count: 1}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	// output must not exist before Close commits
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("output file exists before Close: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	want := "{\n\t\"name\": \"Chili\",\n\t\"count\": 1\n}\n"
	if string(data) != want {
		t.Errorf("output = %q, want %q", data, want)
	}

	// no temp residue
	if names := listDir(t, dir); len(names) != 1 || names[0] != "out.json" {
		t.Errorf("unexpected directory contents: %v", names)
	}
}

func TestFileWriterCloseWithoutSerializeLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	w, err := NewFileWriter(FormatJSON, path)
	if err != nil {
		t.Fatalf("NewFileWriter failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if names := listDir(t, dir); len(names) != 0 {
		t.Errorf("expected empty directory, got %v", names)
	}
}

func TestFileWriterFailedSerializeLeavesNoPartialOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	w, err := NewFileWriter(FormatJSON, path)
	if err != nil {
		t.Fatalf("NewFileWriter failed: %v", err)
	}

	// channels cannot be marshaled to JSON
	if err := w.Serialize(context.Background(), make(chan int)); err == nil {
		t.Fatal("expected serialization error")
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if names := listDir(t, dir); len(names) != 0 {
		t.Errorf("expected empty directory after failed serialize, got %v", names)
	}
}

func TestFileWriterOverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	w, err := NewFileWriter(FormatJSON, path)
	if err != nil {
		t.Fatalf("NewFileWriter failed: %v", err)
	}
	if err := w.Serialize(context.Background(), sample{Name: "new"}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) == "old" {
		t.Error("output was not replaced")
	}
}

func TestFileWriterUnwritableDirectory(t *testing.T) {
	if _, err := NewFileWriter(FormatJSON, filepath.Join(t.TempDir(), "missing", "out.json")); err == nil {
		t.Error("expected error for missing output directory")
	}
}

func TestFileWriterRejectsUnknownFormat(t *testing.T) {
	if _, err := NewFileWriter(Format("csv"), filepath.Join(t.TempDir(), "out.csv")); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	for _, path := range []string{"", "-", "  "} {
		s, err := NewFileWriterOrStdout(FormatJSON, path)
		if err != nil {
			t.Fatalf("NewFileWriterOrStdout(%q) failed: %v", path, err)
		}
		if _, ok := s.(*Writer); !ok {
			t.Errorf("expected stdout Writer for path %q, got %T", path, s)
		}
	}

	s, err := NewFileWriterOrStdout(FormatJSON, filepath.Join(t.TempDir(), "out.json"))
	if err != nil {
		t.Fatalf("NewFileWriterOrStdout failed: %v", err)
	}
	fw, ok := s.(*FileWriter)
	if !ok {
		t.Fatalf("expected FileWriter, got %T", s)
	}
	if err := fw.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

func TestFileWriterSerializeAfterClose(t *testing.T) {
	w, err := NewFileWriter(FormatJSON, filepath.Join(t.TempDir(), "out.json"))
	if err != nil {
		t.Fatalf("NewFileWriter failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := w.Serialize(context.Background(), sample{}); err == nil {
		t.Error("expected error serializing after Close")
	}
	// double Close is a no-op
	if err := w.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}
