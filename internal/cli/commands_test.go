package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatmove/fatmove/internal/config"
)

func TestRootCommandRegistration(t *testing.T) {
	want := map[string]bool{
		"devices": false,
		"config":  false,
	}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestTransferFlagDefaults(t *testing.T) {
	tests := []struct {
		flag string
		want string
	}{
		{"no-fatsort", "false"},
		{"non-interactive", "false"},
		{"config-file", "config.ini"},
		{"default", "false"},
		{"armin", "false"},
		{"dry-run", "false"},
	}

	for _, tt := range tests {
		f := rootCmd.Flags().Lookup(tt.flag)
		if f == nil {
			t.Errorf("flag --%s not defined", tt.flag)
			continue
		}
		if f.DefValue != tt.want {
			t.Errorf("flag --%s default = %q, want %q", tt.flag, f.DefValue, tt.want)
		}
	}

	for _, name := range []string{"verbose", "quiet"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("persistent flag --%s not defined", name)
		}
	}
}

func TestConfigInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"config", "init", path})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("settings file not written: %v", err)
	}

	// The generated file must load for every profile.
	for _, profile := range []string{config.ProfileDefault, config.ProfileUser, config.ProfileArmin} {
		if _, err := config.Load(path, profile); err != nil {
			t.Errorf("generated file does not load profile %s: %v", profile, err)
		}
	}
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	if err := os.WriteFile(path, []byte("[user]\n"), 0644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	rootCmd.SetArgs([]string{"config", "init", path})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err == nil {
		t.Error("expected error when overwriting without --force")
	}
}

func TestPrintCount(t *testing.T) {
	if got := PrintCount(1, "file", "files"); got != "1 file" {
		t.Errorf("PrintCount(1) = %q", got)
	}
	if got := PrintCount(3, "file", "files"); got != "3 files" {
		t.Errorf("PrintCount(3) = %q", got)
	}
	if got := PrintCount(0, "directory", "directories"); got != "0 directories" {
		t.Errorf("PrintCount(0) = %q", got)
	}
}
