package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/mandel"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	orig := mandel.Logger()
	t.Cleanup(func() { mandel.SetLogger(orig) })

	var out bytes.Buffer
	cmd := mainCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "view.png")
	out, err := execute(t,
		"--width", "96", "--height", "64", "--zoom", "24",
		"--commands", "zoom-in*2,pan-left,increase-budget",
		"--caption", "-o", path)
	if err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, out)
	}
	if !strings.Contains(out, "4 commands") {
		t.Errorf("summary = %q, want 4 commands", out)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("DecodeConfig() error = %v", err)
	}
	if cfg.Width != 96 || cfg.Height != 64 {
		t.Errorf("PNG size = %dx%d, want 96x64", cfg.Width, cfg.Height)
	}
}

func TestRender_Thumbnail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thumb.png")
	if out, err := execute(t, "--width", "96", "--height", "64", "--zoom", "24", "--thumb-width", "48", "-o", path); err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, out)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("DecodeConfig() error = %v", err)
	}
	if cfg.Width != 48 || cfg.Height != 32 {
		t.Errorf("PNG size = %dx%d, want 48x32", cfg.Width, cfg.Height)
	}
}

func TestRender_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad script", []string{"--commands", "spin"}},
		{"bad size", []string{"--width", "0"}},
		{"bad julia", []string{"--julia", "x"}},
		{"extra args", []string{"foo"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"-o", filepath.Join(t.TempDir(), "x.png")}, tt.args...)
			if _, err := execute(t, args...); err == nil {
				t.Error("Execute() succeeded, want error")
			}
		})
	}
}

func TestRender_List(t *testing.T) {
	out, err := execute(t, "--list")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, c := range mandel.Commands() {
		if !strings.Contains(out, c.String()) {
			t.Errorf("--list output missing %q", c)
		}
	}
}
