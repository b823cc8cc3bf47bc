package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "none.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(DefaultSettings(), s); diff != "" {
		t.Errorf("settings differ from defaults (-want +got):\n%s", diff)
	}
}

func TestLoad_JSONKeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"render_format":"chordpro","convert_max_lines":8}`), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.RenderFormat != "chordpro" || s.ConvertMaxLines != 8 {
		t.Errorf("overrides not applied: %+v", s)
	}
	if s.LyricsAPIURL != "https://api.lyrics.ovh" {
		t.Errorf("LyricsAPIURL = %q, want default", s.LyricsAPIURL)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := "default_key: G\nfetch_max_retries: 5\nshow_header: false\n"
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.DefaultKey != "G" || s.FetchMaxRetries != 5 || s.ShowHeader {
		t.Errorf("YAML not applied: %+v", s)
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"default_key":`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	for _, name := range []string{"nested/config.json", "nested/config.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			want := DefaultSettings()
			want.CatalogPath = "/srv/songs.json"
			want.RenderFormat = "chordpro"

			if err := want.Save(path); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("round trip (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSettings_Conversions(t *testing.T) {
	s := DefaultSettings()
	s.ConvertMaxLines = 0
	s.DefaultKey = "D"

	opts := s.ToConvertOptions()
	if opts.MaxLines != 20 || opts.DefaultKey != "D" || len(opts.Progressions) != 4 {
		t.Errorf("ToConvertOptions() = %+v", opts)
	}

	client := s.ToClientOptions()
	if client.Timeout != 15*time.Second || client.RetryCooldown != 200*time.Millisecond || client.MaxRetries != 3 {
		t.Errorf("ToClientOptions() = %+v", client)
	}

	if s.ToRenderer() == nil {
		t.Error("ToRenderer() returned nil")
	}
}

func TestSettings_OpenCatalog(t *testing.T) {
	s := DefaultSettings()
	cat, err := s.OpenCatalog()
	if err != nil {
		t.Fatalf("OpenCatalog (embedded): %v", err)
	}
	if cat.Len() == 0 {
		t.Error("embedded catalog is empty")
	}

	path := filepath.Join(t.TempDir(), "songs.json")
	data := `{"songs":[{"id":"x","title":"Mine","artist":"Me","key":"D","lines":[]}]}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	s.CatalogPath = path
	cat, err = s.OpenCatalog()
	if err != nil {
		t.Fatalf("OpenCatalog (file): %v", err)
	}
	if cat.Len() != 1 {
		t.Errorf("Len() = %d, want 1", cat.Len())
	}

	s.CatalogPath = filepath.Join(t.TempDir(), "missing.json")
	if _, err := s.OpenCatalog(); err == nil {
		t.Error("expected an error for a missing catalog file")
	}
}
