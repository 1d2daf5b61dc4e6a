// Package settings persists the user's output-format choice in a small JSON
// file, loaded lazily and saved explicitly on change.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const keyOutputFormat = "output_format"

// DefaultFormat is used whenever the settings file is missing, unreadable, or
// holds an unknown value.
const DefaultFormat = "txt"

// SupportedFormats lists the chapter file formats, in menu order.
var SupportedFormats = []string{"txt", "md"}

// IsSupported reports whether format is one of the supported output formats.
func IsSupported(format string) bool {
	for _, f := range SupportedFormats {
		if f == format {
			return true
		}
	}
	return false
}

// Settings reads and writes the settings file at a fixed path.
type Settings struct {
	path string
}

func New(path string) *Settings {
	return &Settings{path: path}
}

// OutputFormat returns the persisted output format. Any problem reading or
// validating the file silently falls back to DefaultFormat.
func (s *Settings) OutputFormat() string {
	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("json")
	v.SetDefault(keyOutputFormat, DefaultFormat)

	if err := v.ReadInConfig(); err != nil {
		return DefaultFormat
	}
	format := v.GetString(keyOutputFormat)
	if !IsSupported(format) {
		return DefaultFormat
	}
	return format
}

// SetOutputFormat validates and persists a new output format.
func (s *Settings) SetOutputFormat(format string) error {
	if !IsSupported(format) {
		return fmt.Errorf("unsupported output format %q", format)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create settings dir: %w", err)
		}
	}

	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("json")
	v.Set(keyOutputFormat, format)
	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
