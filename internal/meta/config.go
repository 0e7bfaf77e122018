package meta

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

const (
	DefaultSiteName       = "Diario Digital"
	DefaultSiteURL        = "https://diario.example.com"
	DefaultDescriptionMax = 160
)

type Config struct {
	SiteName       string
	SiteURL        string
	ImageBaseURL   string
	DefaultImage   string
	DescriptionMax int

	// LegacyImagePrefix is replaced by ImagePrefix in image references
	// while storage objects are migrated between buckets. Empty disables it.
	LegacyImagePrefix string
	ImagePrefix       string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		SiteName:          os.Getenv("SITE_NAME"),
		SiteURL:           os.Getenv("SITE_URL"),
		ImageBaseURL:      os.Getenv("IMAGE_BASE_URL"),
		DefaultImage:      os.Getenv("DEFAULT_IMAGE"),
		LegacyImagePrefix: os.Getenv("LEGACY_IMAGE_PREFIX"),
		ImagePrefix:       os.Getenv("IMAGE_PREFIX"),
	}

	if max := os.Getenv("DESCRIPTION_MAX"); max != "" {
		v, err := strconv.Atoi(max)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("invalid DESCRIPTION_MAX %q: must be a positive number", max)
		}
		cfg.DescriptionMax = v
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	if c.SiteName == "" {
		c.SiteName = DefaultSiteName
	}
	if c.SiteURL == "" {
		c.SiteURL = DefaultSiteURL
	}
	c.SiteURL = strings.TrimRight(c.SiteURL, "/")

	u, err := url.Parse(c.SiteURL)
	if err != nil {
		return fmt.Errorf("invalid SITE_URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid SITE_URL %q: scheme must be http or https", c.SiteURL)
	}

	if c.ImageBaseURL == "" {
		c.ImageBaseURL = c.SiteURL
	}
	c.ImageBaseURL = strings.TrimRight(c.ImageBaseURL, "/")

	if c.DefaultImage == "" {
		c.DefaultImage = c.SiteURL + "/og-default.jpg"
	}
	if c.DescriptionMax <= 0 {
		c.DescriptionMax = DefaultDescriptionMax
	}
	return nil
}
