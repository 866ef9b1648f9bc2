// Package yaml loads serpjson configuration files.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/fwojciec/serpjson"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads the YAML file at path over serpjson.DefaultConfig.
// An empty path returns the defaults. Unknown fields are rejected.
func LoadConfig(path string) (*serpjson.Config, error) {
	cfg := serpjson.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, serpjson.Errorf(serpjson.ENOTFOUND, "config file not found: %s", path)
	} else if err != nil {
		return nil, err
	}

	if err := decode(b, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(b []byte, cfg *serpjson.Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return serpjson.Errorf(serpjson.EINVALID, "parse config: %v", err)
	}
	return nil
}
