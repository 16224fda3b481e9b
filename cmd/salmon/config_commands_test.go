package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigInitWritesSample(t *testing.T) {
	base := t.TempDir()
	t.Setenv("HOME", base)
	target := filepath.Join(base, "salmon", "config.toml")

	stdout, _, err := runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, "Wrote sample configuration to "+target) {
		t.Fatalf("unexpected output:\n%s", stdout)
	}
	content, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "[tools]") {
		t.Fatalf("sample config missing tools section:\n%s", content)
	}
}

func TestConfigInitRefusesExistingFile(t *testing.T) {
	base := t.TempDir()
	t.Setenv("HOME", base)
	target := filepath.Join(base, "config.toml")
	if err := os.WriteFile(target, []byte("# keep"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected an error without --overwrite")
	}
	content, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "# keep" {
		t.Fatal("existing file must not be touched")
	}
}

func TestConfigInitOverwrite(t *testing.T) {
	base := t.TempDir()
	t.Setenv("HOME", base)
	target := filepath.Join(base, "config.toml")
	if err := os.WriteFile(target, []byte("# stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatal(err)
	}
	content, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "[tools]") {
		t.Fatal("expected the sample configuration after overwrite")
	}
}

func TestConfigValidateDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	stdout, _, err := runCLI(t, []string{"config", "validate"}, "")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, "Configuration valid") {
		t.Fatalf("unexpected output:\n%s", stdout)
	}
	if !strings.Contains(stdout, "defaults were used") {
		t.Fatalf("expected defaults notice:\n%s", stdout)
	}
}
