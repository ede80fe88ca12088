package armin

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/fatmove/fatmove/internal/fsops"
)

func listDirs(t *testing.T, root string) []string {
	t.Helper()
	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("failed to read %s: %v", root, err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names
}

func TestRename(t *testing.T) {
	root := t.TempDir()
	dirs := []string{
		"Armin van Buuren - A State Of Trance 800 (2017-02-09)",
		"Armin van Buuren - A State Of Trance 800.1 (2017-02-12)",
		"Armin van Buuren - A State Of Trance 1050",
		"Aly and Fila - FSOE 450",
		"Armin van Buuren - Embrace",
	}
	for _, dir := range dirs {
		if err := os.Mkdir(filepath.Join(root, dir), 0755); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
	}
	// A plain file with a matching name must be left alone.
	if err := os.WriteFile(filepath.Join(root, "Armin van Buuren - A State Of Trance 799"), []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	if err := Rename(fsops.NewRealFS(), root, &bytes.Buffer{}); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}

	got := listDirs(t, root)
	want := []string{
		"1050",
		"800",
		"800.1",
		"Aly and Fila - FSOE 450",
		"Armin van Buuren - Embrace",
	}
	sort.Strings(want)
	if len(got) != len(want) {
		t.Fatalf("directories = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("directories = %v, want %v", got, want)
			break
		}
	}
}

func TestRenameMissingRoot(t *testing.T) {
	err := Rename(fsops.NewRealFS(), filepath.Join(t.TempDir(), "nope"), nil)
	if err == nil {
		t.Fatal("expected error for missing root")
	}
}
