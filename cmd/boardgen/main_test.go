package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/board"
	"github.com/gogpu/board/document"
)

func TestScenesRenderInEveryFormat(t *testing.T) {
	for _, name := range sceneNames() {
		t.Run(name, func(t *testing.T) {
			b := document.New()
			scenes[name].build(b, document.DefaultStyleSettings())
			if b.Len() == 0 {
				t.Fatal("scene is empty")
			}
			for _, format := range document.Formats() {
				var buf bytes.Buffer
				if err := b.Write(&buf, format); err != nil {
					t.Errorf("Write(%s) error: %v", format, err)
				}
				if buf.Len() == 0 {
					t.Errorf("Write(%s) wrote nothing", format)
				}
			}
		})
	}
}

func TestLookupSceneUnknown(t *testing.T) {
	if _, err := lookupScene("mandelbrot"); err == nil || !strings.Contains(err.Error(), "starburst") {
		t.Errorf("lookupScene error = %v, want list of scenes", err)
	}
}

func TestClippingSceneClips(t *testing.T) {
	b := document.New()
	buildClipping(b, document.DefaultStyleSettings())
	var buf bytes.Buffer
	if err := b.Write(&buf, "svg"); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(buf.String(), "<clipPath"); got != 2 {
		t.Errorf("clip paths = %d, want 2", got)
	}
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	style := filepath.Join(dir, "style.toml")
	if err := os.WriteFile(style, []byte("[shape]\nline_width = 2.0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		args   []string
		file   string
		prefix string
	}{
		{"by extension", []string{"render", "--scene", "starburst", "--out"}, "a.svg", "<?xml"},
		{"explicit format", []string{"render", "-s", "tiling", "-f", "eps", "--page", "A4", "--margin", "10", "-o"}, "b.out", "%!PS"},
		{"with style", []string{"render", "--scene", "gouraud", "--style", style, "--out"}, "c.fig", "#FIG 3.2"},
		{"tikz", []string{"render", "--scene", "clipping", "--out"}, "d.tex", "% Created with"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(dir, tt.file)
			var stdout bytes.Buffer
			args := append([]string{"boardgen"}, tt.args...)
			if err := newApp(&stdout, io.Discard).Run(append(args, out)); err != nil {
				t.Fatalf("Run() error: %v", err)
			}
			data, err := os.ReadFile(out)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.HasPrefix(string(data), tt.prefix) {
				t.Errorf("%s does not start with %q", tt.file, tt.prefix)
			}
			if !strings.Contains(stdout.String(), "wrote "+out) {
				t.Errorf("stdout = %q", stdout.String())
			}
		})
	}
}

func TestRenderCommandErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
	}{
		{"unknown scene", []string{"render", "--scene", "nope", "--out", filepath.Join(dir, "x.svg")}},
		{"unknown extension", []string{"render", "--out", filepath.Join(dir, "x.png")}},
		{"unknown page", []string{"render", "--page", "B12", "--out", filepath.Join(dir, "x.svg")}},
		{"missing style", []string{"render", "--style", filepath.Join(dir, "none.toml"), "--out", filepath.Join(dir, "x.svg")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer
			if err := newApp(&stdout, io.Discard).Run(append([]string{"boardgen"}, tt.args...)); err == nil {
				t.Error("Run() succeeded")
			}
		})
	}
}

func TestListCommands(t *testing.T) {
	var stdout bytes.Buffer
	if err := newApp(&stdout, io.Discard).Run([]string{"boardgen", "scenes"}); err != nil {
		t.Fatal(err)
	}
	for _, name := range sceneNames() {
		if !strings.Contains(stdout.String(), name) {
			t.Errorf("scenes output lacks %s", name)
		}
	}

	stdout.Reset()
	if err := newApp(&stdout, io.Discard).Run([]string{"boardgen", "formats"}); err != nil {
		t.Fatal(err)
	}
	if got := stdout.String(); got != "eps\nfig\nsvg\ntikz\n" {
		t.Errorf("formats output = %q", got)
	}
}

func TestVerboseRender(t *testing.T) {
	t.Cleanup(func() { board.SetLogger(nil) })

	out := filepath.Join(t.TempDir(), "v.svg")
	var stdout, stderr bytes.Buffer
	args := []string{"boardgen", "--verbose", "render", "--scene", "shapes", "--out", out}
	if err := newApp(&stdout, &stderr).Run(args); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	for _, want := range []string{"document: written", "boardgen: rendered"} {
		if !strings.Contains(stderr.String(), want) {
			t.Errorf("stderr lacks %q:\n%s", want, stderr.String())
		}
	}
	if _, err := os.Stat(out); err != nil {
		t.Error(err)
	}
}

func TestVersionFlag(t *testing.T) {
	for _, arg := range []string{"--version", "-v"} {
		t.Run(arg, func(t *testing.T) {
			var stdout bytes.Buffer
			if err := newApp(&stdout, io.Discard).Run([]string{"boardgen", arg}); err != nil {
				t.Fatalf("Run() error: %v", err)
			}
			if !strings.Contains(stdout.String(), board.Version) {
				t.Errorf("stdout = %q, want version %s", stdout.String(), board.Version)
			}
		})
	}
}
