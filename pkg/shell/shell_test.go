package shell

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gardar/phototable/pkg/phototable"
)

func quietConfig() phototable.Config {
	cfg := phototable.DefaultConfig()
	cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return cfg
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewGray(image.Rect(0, 0, w, h))))
}

func TestShellRun(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "docs")
	writePNG(t, filepath.Join(src, "a.png"), 40, 30)
	writePNG(t, filepath.Join(src, "b.png"), 30, 30)
	require.NoError(t, os.WriteFile(filepath.Join(src, "c.jpg"), []byte("broken"), 0o644))

	var buf bytes.Buffer
	sh := New(strings.NewReader(src+"\n"+out+"\n"), &buf, quietConfig())
	summary, err := sh.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2/3 processed", summary.String())

	text := buf.String()
	assert.Contains(t, text, "Source folder [images]: ")
	assert.Contains(t, text, "Output folder [.]: ")
	assert.Contains(t, text, "[0/3]")
	assert.Contains(t, text, "[1/3] a.png -> page 1")
	assert.Contains(t, text, "[2/3] b.png -> page 2")
	assert.Contains(t, text, "[3/3] c.jpg skipped: invalid image")
	assert.Contains(t, text, "2/3 processed")
	assert.Contains(t, text, "Skipped 1 file(s):")
	assert.Contains(t, text, filepath.Join(out, "Фототаблица.docx"))
	assert.Contains(t, text, filepath.Join(out, "Оглавление.docx"))
	assert.FileExists(t, filepath.Join(out, "Фототаблица.docx"))
}

func TestShellDefaults(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()
	writePNG(t, filepath.Join(src, "only.png"), 10, 10)

	var buf bytes.Buffer
	sh := New(strings.NewReader("\n\n"), &buf, quietConfig())
	sh.DefaultSource = src
	sh.DefaultOutput = out

	summary, err := sh.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1/1 processed", summary.String())
	assert.Equal(t, filepath.Join(out, "Оглавление.docx"), summary.IndexPath)
	assert.NotContains(t, buf.String(), "Skipped")
}

func TestShellRepromptsForSource(t *testing.T) {
	src := t.TempDir()
	missing := filepath.Join(src, "nope")
	writePNG(t, filepath.Join(src, "a.png"), 10, 10)

	var buf bytes.Buffer
	input := strings.Join([]string{missing, src, t.TempDir()}, "\n") + "\n"
	sh := New(strings.NewReader(input), &buf, quietConfig())

	summary, err := sh.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Contains(t, buf.String(), "source folder does not exist")
	assert.Equal(t, 2, strings.Count(buf.String(), "Source folder"))
}

func TestShellErrors(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "no input", input: "", wantErr: ErrNoInput},
		{name: "source never valid", input: file + "\n" + file + "\n" + file + "\n", wantErr: phototable.ErrSourceNotDir},
		{name: "input ends at output", input: t.TempDir() + "\n", wantErr: ErrNoInput},
		{name: "output not writable", input: t.TempDir() + "\n" + filepath.Join(file, "out") + "\n", wantErr: phototable.ErrOutputUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			sh := New(strings.NewReader(tt.input), &buf, quietConfig())
			sh.DefaultSource = ""
			summary, err := sh.Run(context.Background())
			assert.Nil(t, summary)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Contains(t, buf.String(), "Error: ")
		})
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, &phototable.Summary{
		Total:          3,
		Succeeded:      2,
		Skipped:        []phototable.Skip{{Name: "c.jpg", Reason: "invalid image"}},
		PhototablePath: "out/Фототаблица.docx",
		IndexPath:      "out/Оглавление.docx",
		PDFPath:        "out/Фототаблица.pdf",
	})

	assert.Equal(t, strings.Join([]string{
		"2/3 processed",
		"Skipped 1 file(s):",
		"  c.jpg: invalid image",
		"Created out/Фототаблица.docx and out/Оглавление.docx",
		"Created out/Фототаблица.pdf",
		"",
	}, "\n"), buf.String())
}
