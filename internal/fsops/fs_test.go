package fsops

import (
	iofs "io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestExists(t *testing.T) {
	fs := NewRealFS()
	root := t.TempDir()

	exists, err := fs.Exists(root)
	if err != nil || !exists {
		t.Errorf("Exists(%s) = (%v, %v), want (true, nil)", root, exists, err)
	}

	exists, err = fs.Exists(filepath.Join(root, "ghost"))
	if err != nil || exists {
		t.Errorf("Exists(ghost) = (%v, %v), want (false, nil)", exists, err)
	}
}

func TestMkdirAllAndRemove(t *testing.T) {
	fs := NewRealFS()
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")

	if err := fs.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	info, err := fs.Stat(nested)
	if err != nil || !info.IsDir() {
		t.Fatalf("Stat(%s) = (%v, %v)", nested, info, err)
	}

	if err := fs.Remove(nested); err != nil {
		t.Errorf("Remove failed: %v", err)
	}
	if err := fs.RemoveAll(filepath.Join(root, "a")); err != nil {
		t.Errorf("RemoveAll failed: %v", err)
	}
	if exists, _ := fs.Exists(filepath.Join(root, "a")); exists {
		t.Error("RemoveAll left the tree behind")
	}
}

func TestRename(t *testing.T) {
	fs := NewRealFS()
	root := t.TempDir()
	oldPath := filepath.Join(root, "old")
	newPath := filepath.Join(root, "new")
	if err := os.WriteFile(oldPath, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	if err := fs.Rename(oldPath, newPath); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	if exists, _ := fs.Exists(oldPath); exists {
		t.Error("old path still exists")
	}
	if exists, _ := fs.Exists(newPath); !exists {
		t.Error("new path missing")
	}
}

func TestWalkDirPreOrder(t *testing.T) {
	fs := NewRealFS()
	root := t.TempDir()
	for _, dir := range []string{"a", "a/b", "c"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0755); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
	}
	if err := os.WriteFile(filepath.Join(root, "a", "f.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	var visited []string
	err := fs.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		visited = append(visited, rel)
		return nil
	})
	if err != nil {
		t.Fatalf("WalkDir failed: %v", err)
	}

	want := []string{".", "a", "a/b", "a/f.txt", "c"}
	if !reflect.DeepEqual(visited, want) {
		t.Errorf("visited = %v, want %v", visited, want)
	}
}

func TestReadDirSorted(t *testing.T) {
	fs := NewRealFS()
	root := t.TempDir()
	for _, name := range []string{"zz", "aa", "mm"} {
		if err := os.Mkdir(filepath.Join(root, name), 0755); err != nil {
			t.Fatalf("failed to create %s: %v", name, err)
		}
	}

	entries, err := fs.ReadDir(root)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	want := []string{"aa", "mm", "zz"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("names = %v, want %v", names, want)
	}
}
