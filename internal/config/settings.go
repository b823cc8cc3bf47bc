package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/handiism/chordlyrics/internal/catalog"
	"github.com/handiism/chordlyrics/internal/convert"
	"github.com/handiism/chordlyrics/internal/lyrics"
	"github.com/handiism/chordlyrics/internal/render"
	"gopkg.in/yaml.v3"
)

// Settings holds all configuration options.
type Settings struct {
	// Catalog settings
	CatalogPath string `json:"catalog_path" yaml:"catalog_path"` // empty: embedded sample songs

	// Lyrics service settings
	LyricsAPIURL        string  `json:"lyrics_api_url" yaml:"lyrics_api_url"`
	RequestTimeout      float64 `json:"request_timeout" yaml:"request_timeout"` // seconds
	FetchMaxRetries     int     `json:"fetch_max_retries" yaml:"fetch_max_retries"`
	FetchRetryCooldown  float64 `json:"fetch_retry_cooldown" yaml:"fetch_retry_cooldown"`
	FetchRetryExponent  float64 `json:"fetch_retry_exponent" yaml:"fetch_retry_exponent"`
	MaxConcurrentImport int     `json:"max_concurrent_import" yaml:"max_concurrent_import"`

	// Converter settings
	ConvertMaxLines int    `json:"convert_max_lines" yaml:"convert_max_lines"`
	DefaultKey      string `json:"default_key" yaml:"default_key"`
	DefaultTempo    string `json:"default_tempo" yaml:"default_tempo"`

	// Output settings
	RenderFormat string `json:"render_format" yaml:"render_format"` // text, chordpro
	ShowHeader   bool   `json:"show_header" yaml:"show_header"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		LyricsAPIURL:        "https://api.lyrics.ovh",
		RequestTimeout:      15,
		FetchMaxRetries:     3,
		FetchRetryCooldown:  0.2,
		FetchRetryExponent:  4.0,
		MaxConcurrentImport: 4,

		ConvertMaxLines: 20,
		DefaultKey:      "C",
		DefaultTempo:    "120",

		RenderFormat: "text",
		ShowHeader:   true,
	}
}

// DefaultPath returns the per-user settings file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "chordlyrics", "config.json")
}

// Load reads settings from a JSON or YAML file. Files ending in .yaml or
// .yml are decoded as YAML. Missing fields keep their default value and a
// missing file yields the defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if isYAML(path) {
		err = yaml.Unmarshal(data, settings)
	} else {
		err = json.Unmarshal(data, settings)
	}
	if err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON or YAML file, chosen by extension.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ToConvertOptions converts settings to converter options.
func (s *Settings) ToConvertOptions() convert.Options {
	opts := convert.DefaultOptions()
	if s.ConvertMaxLines > 0 {
		opts.MaxLines = s.ConvertMaxLines
	}
	if s.DefaultKey != "" {
		opts.DefaultKey = s.DefaultKey
	}
	if s.DefaultTempo != "" {
		opts.DefaultTempo = s.DefaultTempo
	}
	return opts
}

// ToClientOptions converts settings to lyrics client options.
func (s *Settings) ToClientOptions() lyrics.Options {
	return lyrics.Options{
		BaseURL:       s.LyricsAPIURL,
		Timeout:       time.Duration(s.RequestTimeout * float64(time.Second)),
		MaxRetries:    s.FetchMaxRetries,
		RetryCooldown: time.Duration(s.FetchRetryCooldown * float64(time.Second)),
		RetryExponent: s.FetchRetryExponent,
	}
}

// ToRenderer builds the configured renderer. Unknown formats fall back to
// plain text.
func (s *Settings) ToRenderer() *render.Renderer {
	format, err := render.ParseFormat(s.RenderFormat)
	if err != nil {
		format = render.FormatText
	}
	return render.NewRenderer(format, s.ShowHeader)
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// OpenCatalog loads the configured song catalog, or the embedded sample
// songs when no path is set.
func (s *Settings) OpenCatalog() (*catalog.Catalog, error) {
	if s.CatalogPath == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(s.CatalogPath)
}
