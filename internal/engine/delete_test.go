package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fatmove/fatmove/internal/config"
)

func TestDeleteSourcesPolicyNo(t *testing.T) {
	root := t.TempDir()
	source := filepath.Join(root, "a.mp3")
	writeFile(t, source)

	te := newTestEngine(nil, "")
	te.engine.deleteSources(&Request{
		Sources:  []string{source},
		Settings: &config.Settings{DeleteSources: config.No},
	})

	if _, err := os.Stat(source); err != nil {
		t.Errorf("source removed despite policy no: %v", err)
	}
}

func TestDeleteSourcesPolicyYes(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "a.mp3")
	dir := filepath.Join(root, "album")
	writeFile(t, file)
	writeFile(t, filepath.Join(dir, "b.mp3"))

	te := newTestEngine(nil, "")
	te.engine.deleteSources(&Request{
		Sources:  []string{file, dir},
		Settings: &config.Settings{DeleteSources: config.Yes},
	})

	if _, err := os.Stat(file); !os.IsNotExist(err) {
		t.Errorf("file not removed: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("directory not removed recursively: %v", err)
	}
}

func TestDeleteSourcesPromptDeclinedStops(t *testing.T) {
	root := t.TempDir()
	first := filepath.Join(root, "a.mp3")
	second := filepath.Join(root, "b.mp3")
	writeFile(t, first)
	writeFile(t, second)

	te := newTestEngine(nil, "n\n")
	te.engine.deleteSources(&Request{
		Sources:     []string{first, second},
		Settings:    &config.Settings{DeleteSources: config.Prompt},
		Interactive: true,
	})

	if _, err := os.Stat(first); err != nil {
		t.Errorf("declined source removed: %v", err)
	}
	if _, err := os.Stat(second); err != nil {
		t.Errorf("deletion continued past a declined prompt: %v", err)
	}
}

func TestDeleteSourcesPromptNonInteractiveSkips(t *testing.T) {
	root := t.TempDir()
	source := filepath.Join(root, "a.mp3")
	writeFile(t, source)

	te := newTestEngine(nil, "")
	te.engine.deleteSources(&Request{
		Sources:  []string{source},
		Settings: &config.Settings{DeleteSources: config.Prompt},
	})

	if _, err := os.Stat(source); err != nil {
		t.Errorf("non-interactive prompt policy removed a source: %v", err)
	}
}

func TestDeleteSourcesMissingPathReported(t *testing.T) {
	te := newTestEngine(nil, "")
	te.engine.deleteSources(&Request{
		Sources:  []string{filepath.Join(t.TempDir(), "ghost")},
		Settings: &config.Settings{DeleteSources: config.Yes},
	})

	if te.errOut.Len() == 0 {
		t.Error("expected diagnostic for missing source")
	}
}
