package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/median-cut-mcp/internal/imaging"
	"github.com/ironsheep/median-cut-mcp/internal/quantize"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestOptionsFromEnv(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		wantTarget  int
		wantMatcher quantize.MatcherKind
		wantDebug   bool
	}{
		{"defaults", nil, imaging.DefaultSampleTarget, quantize.MatcherLinear, false},
		{"debug", map[string]string{"MEDIANCUT_LOG_LEVEL": "DEBUG"}, imaging.DefaultSampleTarget, quantize.MatcherLinear, true},
		{"target", map[string]string{"MEDIANCUT_SAMPLE_TARGET": " 5000 "}, 5000, quantize.MatcherLinear, false},
		{"no downsampling", map[string]string{"MEDIANCUT_SAMPLE_TARGET": "0"}, 0, quantize.MatcherLinear, false},
		{"kdtree", map[string]string{"MEDIANCUT_MATCHER": "kdtree"}, imaging.DefaultSampleTarget, quantize.MatcherKDTree, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := optionsFromEnv(envFrom(tt.env))
			if err != nil {
				t.Fatalf("optionsFromEnv failed: %v", err)
			}
			if opts.SampleTarget != tt.wantTarget || opts.Matcher != tt.wantMatcher || opts.Debug != tt.wantDebug {
				t.Errorf("got %+v", opts)
			}
		})
	}
}

func TestOptionsFromEnv_Invalid(t *testing.T) {
	if _, err := optionsFromEnv(envFrom(map[string]string{"MEDIANCUT_SAMPLE_TARGET": "lots"})); err == nil {
		t.Error("expected error for a non-numeric sample target")
	}
	_, err := optionsFromEnv(envFrom(map[string]string{"MEDIANCUT_MATCHER": "octree"}))
	if !errors.Is(err, quantize.ErrInvalidParameter) {
		t.Errorf("got %v, want ErrInvalidParameter", err)
	}
}

func writeTwoColorPNG(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			c := color.RGBA{0, 0, 0, 255}
			if x >= 5 {
				c = color.RGBA{200, 100, 50, 255}
			}
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "in.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

func TestRunQuantize(t *testing.T) {
	in := writeTwoColorPNG(t)
	opts, _ := optionsFromEnv(envFrom(nil))

	var out bytes.Buffer
	if err := runQuantize([]string{in, "2"}, opts, &out); err != nil {
		t.Fatalf("runQuantize failed: %v", err)
	}

	want := "Color: (0, 0, 0)\nColor: (200, 100, 50)\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

func TestRunQuantize_WritesOutput(t *testing.T) {
	in := writeTwoColorPNG(t)
	outPath := filepath.Join(t.TempDir(), "out.png")
	opts, _ := optionsFromEnv(envFrom(nil))

	var out bytes.Buffer
	if err := runQuantize([]string{in, "3", outPath}, opts, &out); err != nil {
		t.Fatalf("runQuantize failed: %v", err)
	}
	if strings.Count(out.String(), "Color: ") != 2 {
		t.Errorf("expected 2 palette lines, got %q", out.String())
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("output not written: %v", err)
	}
}

func TestRunQuantize_BadArgs(t *testing.T) {
	opts, _ := optionsFromEnv(envFrom(nil))

	tests := []struct {
		name string
		args []string
	}{
		{"too few", []string{"in.png"}},
		{"too many", []string{"a", "2", "b", "c"}},
		{"bad count", []string{"in.png", "many"}},
		{"zero count", []string{writeTwoColorPNG(t), "0"}},
		{"missing file", []string{"/nonexistent/in.png", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := runQuantize(tt.args, opts, &bytes.Buffer{}); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
