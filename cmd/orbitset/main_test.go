package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateAndList(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "small")

	out, err := execute(t, "generate",
		"--output", dir, "--count", "1", "--seed", "3",
		"--families", "class1,class9", "--workers", "2")
	if err != nil {
		t.Fatalf("generate failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "samples: 4") {
		t.Errorf("unexpected summary:\n%s", out)
	}
	for _, name := range []string{"labels.csv", "metadata.json", "realistic/class9/class9_0.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}

	out, err = execute(t, "list", "--data", root)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, dir) {
		t.Errorf("list should show the dataset:\n%s", out)
	}
}

func TestGenerateRejectsBadFlags(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "bad")
	if _, err := execute(t, "generate", "--output", dir, "--families", "class10"); err == nil {
		t.Error("expected an error for an unknown class")
	}
	if _, err := execute(t, "generate", "--output", dir, "--preset", "nope"); err == nil {
		t.Error("expected an error for an unknown preset")
	}
}

func TestConfigFileWithFlagOverride(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "orbitset.yaml")

	if _, err := execute(t, "init-config", path, "--preset", "smoke"); err != nil {
		t.Fatalf("init-config failed: %v", err)
	}
	if _, err := execute(t, "init-config", path); err == nil {
		t.Error("init-config should refuse to overwrite")
	}

	dir := filepath.Join(root, "from-config")
	out, err := execute(t, "generate", "--config", path,
		"--output", dir, "--count", "1", "--regimes", "clean", "--families", "class3", "--seed", "9")
	if err != nil {
		t.Fatalf("generate failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "samples: 1") {
		t.Errorf("flags should override the file:\n%s", out)
	}
}

func TestFamiliesAndPresets(t *testing.T) {
	out, err := execute(t, "families")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"class1", "class5B", "2400", "petal", "dots+loop"} {
		if !strings.Contains(out, want) {
			t.Errorf("families output missing %q:\n%s", want, out)
		}
	}

	out, err = execute(t, "presets")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"reference", "smoke", "thumbnails"} {
		if !strings.Contains(out, want) {
			t.Errorf("presets output missing %q", want)
		}
	}
}

func TestPreviewAndInspect(t *testing.T) {
	out, err := execute(t, "preview", "class5A", "--seed", "1", "--width", "40", "--height", "20")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "class5A") || !strings.ContainsRune(out, '⠀') {
		t.Errorf("unexpected preview:\n%s", out)
	}

	if _, err := execute(t, "preview", "class5A", "--regime", "noisy"); err == nil {
		t.Error("expected an error for an unknown regime")
	}

	out, err = execute(t, "inspect", "class9", "--seed", "2")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "radial maxima") || !strings.Contains(out, "petals:") {
		t.Errorf("unexpected inspect output:\n%s", out)
	}
}
