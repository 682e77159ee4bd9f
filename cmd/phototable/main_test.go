package main

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// execute runs the command tree with args and returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writePNG(t *testing.T, path string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewGray(image.Rect(0, 0, 12, 9))))
}

func TestRunCommand(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writePNG(t, filepath.Join(src, "a.png"))
	writePNG(t, filepath.Join(src, "b.png"))
	require.NoError(t, os.WriteFile(filepath.Join(src, "c.jpg"), []byte("nope"), 0o644))

	out, err := execute(t, "", "run", "--source", src, "--output", dst, "--pdf")
	require.NoError(t, err)
	assert.Contains(t, out, "[0/3]")
	assert.Contains(t, out, "2/3 processed")
	assert.FileExists(t, filepath.Join(dst, "Фототаблица.docx"))
	assert.FileExists(t, filepath.Join(dst, "Оглавление.docx"))
	assert.FileExists(t, filepath.Join(dst, "Фототаблица.pdf"))
}

func TestRunCommandCreatesDefaultSource(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := execute(t, "", "run")
	require.NoError(t, err)
	assert.Contains(t, out, "Created folder 'images'")
	assert.DirExists(t, "images")
	assert.NoFileExists(t, "Фототаблица.docx")
}

func TestRunCommandMissingSource(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	_, err := execute(t, "", "run", "--source", missing, "--output", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source folder does not exist")
	assert.NoDirExists(t, missing)
}

func TestInteractiveCommand(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writePNG(t, filepath.Join(src, "only.png"))

	out, err := execute(t, src+"\n"+dst+"\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Source folder [images]: ")
	assert.Contains(t, out, "1/1 processed")
	assert.FileExists(t, filepath.Join(dst, "Оглавление.docx"))
}

func TestConfigCommand(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(`
source: photos
labels:
  title: Photo table
font:
  name: Times New Roman
image:
  max_pixels: 2000
`), 0o644))

	tests := []struct {
		name  string
		args  []string
		env   map[string]string
		check func(t *testing.T, s settings)
	}{
		{
			name: "defaults",
			args: []string{"config"},
			check: func(t *testing.T, s settings) {
				assert.Equal(t, "images", s.Source)
				assert.Equal(t, ".", s.Output)
				assert.Equal(t, "Фототаблица.docx", s.Documents.Phototable)
				assert.Equal(t, "Оглавление.docx", s.Documents.Index)
				assert.Equal(t, "Arial", s.Font.Name)
				assert.Equal(t, 14.0, s.Font.Size)
				assert.Equal(t, 6.0, s.Image.MaxWidth)
				assert.Equal(t, 8.5, s.Image.MaxHeight)
				assert.False(t, s.PDF)
			},
		},
		{
			name: "config file",
			args: []string{"config", "--config", cfgFile},
			check: func(t *testing.T, s settings) {
				assert.Equal(t, "photos", s.Source)
				assert.Equal(t, "Photo table", s.Labels.Title)
				assert.Equal(t, "Times New Roman", s.Font.Name)
				assert.Equal(t, 2000, s.Image.MaxPixels)
				assert.Equal(t, "Имя файла", s.Labels.FileColumn)
			},
		},
		{
			name: "environment",
			args: []string{"config", "--config", cfgFile},
			env: map[string]string{
				"PHOTOTABLE_SOURCE":          "scans",
				"PHOTOTABLE_IMAGE_MAX_WIDTH": "5.5",
				"PHOTOTABLE_PDF":             "true",
			},
			check: func(t *testing.T, s settings) {
				assert.Equal(t, "scans", s.Source)
				assert.Equal(t, 5.5, s.Image.MaxWidth)
				assert.True(t, s.PDF)
			},
		},
		{
			name: "flags win",
			args: []string{"config", "--source", "flagged", "--output", "out"},
			env:  map[string]string{"PHOTOTABLE_SOURCE": "scans"},
			check: func(t *testing.T, s settings) {
				assert.Equal(t, "flagged", s.Source)
				assert.Equal(t, "out", s.Output)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			out, err := execute(t, "", tt.args...)
			require.NoError(t, err)

			var s settings
			require.NoError(t, yaml.Unmarshal([]byte(out), &s))
			tt.check(t, s)
		})
	}
}

func TestConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
		want string
	}{
		{name: "missing config file", args: []string{"config", "--config", filepath.Join(t.TempDir(), "none.yaml")}, want: "failed to read config"},
		{name: "bad log level", args: []string{"config"}, env: map[string]string{"PHOTOTABLE_LOG_LEVEL": "loud"}, want: "invalid log level"},
		{name: "bad log format", args: []string{"config"}, env: map[string]string{"PHOTOTABLE_LOG_FORMAT": "xml"}, want: "invalid log format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := execute(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
