// Package config provides configuration management for chordlyrics.
//
// This package handles:
//   - Loading and saving settings from JSON or YAML files
//   - Default configuration values
//   - Conversion to converter, lyrics client and renderer options
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Embedded sample catalog
//	// Lyrics from api.lyrics.ovh, 3 retries
//	// Converted songs capped at 20 lines, key C, 120 BPM
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.yaml")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.RenderFormat = "chordpro"
//	err := settings.Save("/path/to/config.json")
package config
