// Package fs provides file-based input and output for result pages.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/serpjson"
)

// OutputPath converts an HTML snapshot path to the name of its JSON output.
// Example: snapshots/coffee.html → coffee.json
func OutputPath(input string) string {
	base := filepath.Base(input)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base + ".json"
}

// ReadFile reads an HTML snapshot from disk.
func ReadFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", serpjson.Errorf(serpjson.ENOTFOUND, "file not found: %s", path)
	} else if err != nil {
		return "", err
	}
	if strings.TrimSpace(string(b)) == "" {
		return "", serpjson.Errorf(serpjson.EINVALID, "file is empty: %s", path)
	}
	return string(b), nil
}
