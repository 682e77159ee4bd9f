package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/gardar/phototable/pkg/phototable"
)

const (
	envPrefix     = "PHOTOTABLE"
	configName    = "phototable"
	defaultSource = "images"
	defaultOutput = "."
)

// settings mirrors the config file. Every key has a default so that
// environment variables can override any of them.
type settings struct {
	Source    string           `mapstructure:"source" yaml:"source"`
	Output    string           `mapstructure:"output" yaml:"output"`
	PDF       bool             `mapstructure:"pdf" yaml:"pdf"`
	Documents documentSettings `mapstructure:"documents" yaml:"documents"`
	Labels    labelSettings    `mapstructure:"labels" yaml:"labels"`
	Font      fontSettings     `mapstructure:"font" yaml:"font"`
	Image     imageSettings    `mapstructure:"image" yaml:"image"`
	Log       logSettings      `mapstructure:"log" yaml:"log"`
}

type documentSettings struct {
	Phototable string `mapstructure:"phototable" yaml:"phototable"`
	Index      string `mapstructure:"index" yaml:"index"`
	PDF        string `mapstructure:"pdf" yaml:"pdf"`
}

type labelSettings struct {
	Title      string `mapstructure:"title" yaml:"title"`
	IndexTitle string `mapstructure:"index_title" yaml:"index_title"`
	FileColumn string `mapstructure:"file_column" yaml:"file_column"`
	PageColumn string `mapstructure:"page_column" yaml:"page_column"`
}

type fontSettings struct {
	Name string  `mapstructure:"name" yaml:"name"`
	Size float64 `mapstructure:"size" yaml:"size"`
}

type imageSettings struct {
	MaxWidth    float64 `mapstructure:"max_width" yaml:"max_width"`
	MaxHeight   float64 `mapstructure:"max_height" yaml:"max_height"`
	MaxPixels   int     `mapstructure:"max_pixels" yaml:"max_pixels"`
	JPEGQuality int     `mapstructure:"jpeg_quality" yaml:"jpeg_quality"`
}

type logSettings struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// setDefaults registers the built-in values with v.
func setDefaults(v *viper.Viper) {
	d := phototable.DefaultConfig()
	v.SetDefault("source", defaultSource)
	v.SetDefault("output", defaultOutput)
	v.SetDefault("pdf", d.PDF)
	v.SetDefault("documents.phototable", d.PhototableName)
	v.SetDefault("documents.index", d.IndexName)
	v.SetDefault("documents.pdf", d.PDFName)
	v.SetDefault("labels.title", d.Labels.Title)
	v.SetDefault("labels.index_title", d.Labels.IndexTitle)
	v.SetDefault("labels.file_column", d.Labels.FileColumn)
	v.SetDefault("labels.page_column", d.Labels.PageColumn)
	v.SetDefault("font.name", d.Font.Name)
	v.SetDefault("font.size", d.Font.Size)
	v.SetDefault("image.max_width", d.MaxWidth)
	v.SetDefault("image.max_height", d.MaxHeight)
	v.SetDefault("image.max_pixels", d.MaxPixels)
	v.SetDefault("image.jpeg_quality", d.JPEGQuality)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
}

// readConfig locates and reads the config file. A missing file is not an
// error unless it was named explicitly.
func readConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", configName))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// loadSettings decodes the merged flags, environment, file and defaults.
func loadSettings(v *viper.Viper) (*settings, error) {
	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &s, nil
}

// phototableConfig converts the settings to the assembler's config.
func (s *settings) phototableConfig(logger *slog.Logger) phototable.Config {
	return phototable.Config{
		PhototableName: s.Documents.Phototable,
		IndexName:      s.Documents.Index,
		PDF:            s.PDF,
		PDFName:        s.Documents.PDF,
		Labels: phototable.Labels{
			Title:      s.Labels.Title,
			IndexTitle: s.Labels.IndexTitle,
			FileColumn: s.Labels.FileColumn,
			PageColumn: s.Labels.PageColumn,
		},
		Font: phototable.FontConfig{
			Name: s.Font.Name,
			Size: s.Font.Size,
		},
		MaxWidth:    s.Image.MaxWidth,
		MaxHeight:   s.Image.MaxHeight,
		MaxPixels:   s.Image.MaxPixels,
		JPEGQuality: s.Image.JPEGQuality,
		Logger:      logger,
	}
}

// newLogger builds the slog logger described by the log settings.
func newLogger(w io.Writer, s logSettings) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", s.Level, err)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(s.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q (want text or json)", s.Format)
	}
}
