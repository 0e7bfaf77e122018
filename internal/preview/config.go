package preview

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Branding     Branding
	FetchTimeout time.Duration
}

// LoadConfig reads branding from the environment. siteName comes from the
// meta configuration so both stay in step.
func LoadConfig(siteName string) (*Config, error) {
	cfg := &Config{
		Branding: Branding{
			SiteName:        siteName,
			Tagline:         os.Getenv("BRAND_TAGLINE"),
			Initials:        os.Getenv("BRAND_INITIALS"),
			Color:           os.Getenv("BRAND_COLOR"),
			DefaultCategory: os.Getenv("BRAND_DEFAULT_CATEGORY"),
		},
		FetchTimeout: defaultFetchTimeout,
	}

	if cfg.Branding.Tagline == "" {
		cfg.Branding.Tagline = "Noticias al instante"
	}

	if v := os.Getenv("IMAGE_FETCH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid IMAGE_FETCH_TIMEOUT %q", v)
		}
		cfg.FetchTimeout = d
	}
	return cfg, nil
}
