package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/sigil"
)

func TestRunWritesSVG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "cat.svg")
	require.NoError(t, run([]string{"-o", out, "cat"}, &bytes.Buffer{}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<circle")
	assert.Contains(t, string(data), ">c</text>")
}

func TestRunModes(t *testing.T) {
	dir := t.TempDir()
	for _, m := range sigil.Modes() {
		t.Run(string(m), func(t *testing.T) {
			out := filepath.Join(dir, string(m)+".commands")
			require.NoError(t, run([]string{"-mode", string(m), "-o", out, "sigil"}, &bytes.Buffer{}))
			data, err := os.ReadFile(out)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(string(data), "Begin"))
		})
	}
}

func TestRunOutlineAndGrid(t *testing.T) {
	out := filepath.Join(t.TempDir(), "cat.commands")
	require.NoError(t, run([]string{"-outline", "-grid", "100", "-o", out, "cat"}, &bytes.Buffer{}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Path")
	assert.NotContains(t, string(data), "Text")
}

func TestRunVerbose(t *testing.T) {
	defer sigil.SetLogger(nil)

	var stderr bytes.Buffer
	out := filepath.Join(t.TempDir(), "cat.svg")
	require.NoError(t, run([]string{"-v", "-o", out, "cat"}, &stderr))
	assert.Contains(t, stderr.String(), "sigil: composed")
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
	}{
		{"no name", []string{}},
		{"two names", []string{"a", "b"}},
		{"bad mode", []string{"-mode", "runes", "-o", filepath.Join(dir, "x.svg"), "cat"}},
		{"bad identifier", []string{"-o", filepath.Join(dir, "x.svg"), "9lives"}},
		{"unknown format", []string{"-o", filepath.Join(dir, "x.bmp"), "cat"}},
		{"dense grid", []string{"-grid", "0.001", "-labels", "-o", filepath.Join(dir, "x.svg"), "cat"}},
		{"missing font", []string{"-font", filepath.Join(dir, "none.ttf"), "-o", filepath.Join(dir, "x.svg"), "cat"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, run(tt.args, &bytes.Buffer{}))
		})
	}
}
