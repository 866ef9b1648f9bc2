package serpjson

import (
	"net/url"
	"strings"
)

// Defaults for Config.
const (
	DefaultEngine = "google"
	DefaultOrigin = "https://www.google.com"
)

// Config controls how result pages are interpreted.
type Config struct {
	// Engine is reported in SearchMetadata.Engine.
	Engine string `yaml:"engine"`

	// Origin prefixes the tracking path of organic results to build
	// OrganicResult.RedirectLink.
	Origin string `yaml:"origin"`

	// Selectors replaces the candidate list of individual selector keys
	// (e.g. "organic.title"). Keys not listed keep their defaults.
	Selectors map[string][]string `yaml:"selectors"`
}

// DefaultConfig returns the configuration for Google result pages.
func DefaultConfig() *Config {
	return &Config{
		Engine: DefaultEngine,
		Origin: DefaultOrigin,
	}
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Engine) == "" {
		return Errorf(EINVALID, "config engine required")
	}
	u, err := url.Parse(c.Origin)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Errorf(EINVALID, "config origin must be an absolute URL: %q", c.Origin)
	}
	for key, candidates := range c.Selectors {
		if len(candidates) == 0 {
			return Errorf(EINVALID, "selector %q has no candidates", key)
		}
		for _, css := range candidates {
			if strings.TrimSpace(css) == "" {
				return Errorf(EINVALID, "selector %q has a blank candidate", key)
			}
		}
	}
	return nil
}
