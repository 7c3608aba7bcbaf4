package config

import (
	"os"
	"strings"
)

const (
	defaultAddr        = ":8080"
	defaultDatabaseURL = "ppetrack.db"
	defaultExcluded    = "condemned,lost,stolen"
	defaultUploadsDir  = "./uploads"
	defaultStaticBase  = "/static/uploads"
)

type Config struct {
	Addr        string
	DatabaseURL string

	// SiteFilter keeps only import rows whose location contains it
	// (case-insensitive); empty disables the filter.
	SiteFilter string

	// ExcludedConditions is the vocabulary marking items permanently
	// unavailable; matching rows are skipped on import.
	ExcludedConditions []string

	UploadsDir string
	StaticBase string
}

func Load() *Config {
	excluded := strings.Split(getEnv("EXCLUDED_CONDITIONS", defaultExcluded), ",")
	for i := range excluded {
		excluded[i] = strings.TrimSpace(excluded[i])
	}

	return &Config{
		Addr:               getEnv("ADDR", defaultAddr),
		DatabaseURL:        getEnv("DATABASE_URL", defaultDatabaseURL),
		SiteFilter:         strings.TrimSpace(os.Getenv("SITE_FILTER")),
		ExcludedConditions: excluded,
		UploadsDir:         getEnv("UPLOADS_DIR", defaultUploadsDir),
		StaticBase:         getEnv("STATIC_BASE", defaultStaticBase),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
