package config

import (
	"os"
	"strconv"
)

type Config struct {
	// Output root: one subdirectory per processed book.
	MediaDir string

	// Persisted user settings (output format).
	SettingsFile string

	// Segmentation
	MaxChapters   int
	MinBlockChars int

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		MediaDir:     envOr("CHAPTERIZE_MEDIA_DIR", "media"),
		SettingsFile: envOr("CHAPTERIZE_SETTINGS_FILE", "settings.json"),

		MaxChapters:   envInt("CHAPTERIZE_MAX_CHAPTERS", 14),
		MinBlockChars: envInt("CHAPTERIZE_MIN_BLOCK_CHARS", 100),

		PDFFallbackPdftotext: envBool("CHAPTERIZE_PDFTOTEXT_FALLBACK", true),
	}

	if cfg.MaxChapters <= 0 {
		cfg.MaxChapters = 14
	}
	if cfg.MinBlockChars <= 0 {
		cfg.MinBlockChars = 100
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
